package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"quadratic-api/internal/quadratic"
)

func runIntersect(cmd *cobra.Command, args []string) {
	eqs := make([]quadratic.Equation, len(args))
	for i, arg := range args {
		eq, err := parseTriple(arg)
		if err != nil {
			log.Fatalf("Invalid equation %d: %v", i, err)
		}
		eqs[i] = eq
	}

	if len(eqs) == 2 {
		pair, err := quadratic.Intersect(eqs[0], eqs[1])
		if err != nil {
			log.Fatalf("Failed to intersect: %v", err)
		}
		printPair(pair)
		return
	}

	multi, err := quadratic.IntersectAll(eqs)
	if err != nil {
		log.Fatalf("Failed to intersect: %v", err)
	}
	fmt.Print(multi.Report())
}

// parseTriple reads one "a,b,c" argument into an Equation.
func parseTriple(arg string) (quadratic.Equation, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 3 {
		return quadratic.Equation{}, fmt.Errorf("want a,b,c, got %q", arg)
	}

	vals := make([]float64, 3)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return quadratic.Equation{}, fmt.Errorf("%q is not a number", part)
		}
		vals[i] = f
	}

	return quadratic.Equation{A: vals[0], B: vals[1], C: vals[2]}, nil
}

func printPair(pair quadratic.PairIntersection) {
	fmt.Printf("Equation 1: %s\n", pair.Equation1)
	fmt.Printf("Equation 2: %s\n", pair.Equation2)
	fmt.Printf("Difference: %s\n", pair.Difference)
	fmt.Printf("%s\n", pair.Relationship.Description())
	if pair.Infinite {
		fmt.Println("Intersections: infinite")
		return
	}
	for _, p := range pair.Points {
		fmt.Printf("  Point: (%.3f, %.3f)\n", p.X, p.Y)
	}
}

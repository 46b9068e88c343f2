package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"quadratic-api/internal/quadratic"
)

func runSolve(cmd *cobra.Command, args []string) {
	a, err := parseCoefficient("a", args[0])
	if err != nil {
		log.Fatalf("Invalid argument: %v", err)
	}
	b, err := parseCoefficient("b", args[1])
	if err != nil {
		log.Fatalf("Invalid argument: %v", err)
	}
	c, err := parseCoefficient("c", args[2])
	if err != nil {
		log.Fatalf("Invalid argument: %v", err)
	}

	an, err := quadratic.Solve(a, b, c)
	if err != nil {
		log.Fatalf("Failed to solve: %v", err)
	}

	printAnalysis(an)
}

func parseCoefficient(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("coefficient %s: %q is not a number", name, s)
	}
	return f, nil
}

func printAnalysis(an quadratic.Analysis) {
	fmt.Printf("Equation: %s\n", an.EquationString)
	fmt.Printf("Discriminant: %g\n", an.Discriminant)
	fmt.Printf("Roots (%s):\n", an.RootsType)
	fmt.Printf("  x1 = %s\n", an.Roots[0])
	fmt.Printf("  x2 = %s\n", an.Roots[1])
	fmt.Printf("Vertex: (%g, %g)\n", an.Vertex.X, an.Vertex.Y)
	fmt.Printf("Axis of symmetry: x = %g\n", an.AxisOfSymmetry)
	fmt.Printf("Opens: %s\n", an.Direction)
}

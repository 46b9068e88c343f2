package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/spf13/cobra"

	"quadratic-api/internal/quadratic"
)

func runBatch(cmd *cobra.Command, args []string) {
	eqs, err := readBatchFile(args[0])
	if err != nil {
		log.Fatalf("Failed to load batch: %v", err)
	}

	solved := 0
	for i, eq := range eqs {
		an, err := quadratic.Solve(eq.A, eq.B, eq.C)
		if err != nil {
			fmt.Printf("[%d] error: %v\n", i, err)
			continue
		}
		solved++
		fmt.Printf("[%d] %s  roots: %s, %s\n", i, an.EquationString, an.Roots[0], an.Roots[1])
	}

	rate := math.Round(float64(solved)/float64(len(eqs))*10000) / 100
	fmt.Printf("\nSolved %d/%d equations (%.2f%%)\n", solved, len(eqs), rate)
}

// readBatchFile loads a JSON array of {a, b, c} objects, the same shape the
// samples command emits.
func readBatchFile(path string) ([]quadratic.Equation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var eqs []quadratic.Equation
	if err := json.Unmarshal(raw, &eqs); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(eqs) == 0 {
		return nil, fmt.Errorf("no equations found in %s", path)
	}
	return eqs, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"quadratic-api/internal/quadratic"
)

func runSamples(cmd *cobra.Command, args []string) {
	difficulty, err := quadratic.ParseDifficulty(sampleDifficulty)
	if err != nil {
		log.Fatalf("Invalid difficulty: %v", err)
	}
	if sampleCount < 1 {
		log.Fatalf("Invalid count %d: must be at least 1", sampleCount)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	eqs := quadratic.GenerateSamples(rng, sampleCount, difficulty)

	out, err := json.MarshalIndent(eqs, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode samples: %v", err)
	}
	fmt.Println(string(out))
}

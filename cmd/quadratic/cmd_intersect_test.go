package main

import (
	"testing"

	"quadratic-api/internal/quadratic"
)

func TestParseTriple(t *testing.T) {
	tests := []struct {
		input string
		want  quadratic.Equation
	}{
		{"1,-3,2", quadratic.Equation{A: 1, B: -3, C: 2}},
		{"1, -3, 2", quadratic.Equation{A: 1, B: -3, C: 2}},
		{"-0.5,0,4.25", quadratic.Equation{A: -0.5, B: 0, C: 4.25}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseTriple(tt.input)
			if err != nil {
				t.Fatalf("parseTriple(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseTriple(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTripleRejectsBadInput(t *testing.T) {
	tests := []string{
		"1,-3",
		"1,-3,2,5",
		"1,two,3",
		"",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := parseTriple(input); err == nil {
				t.Errorf("parseTriple(%q) succeeded, want error", input)
			}
		})
	}
}

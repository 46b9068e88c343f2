package quadratic

import (
	"errors"
	"testing"
)

func TestEquationString(t *testing.T) {
	tests := []struct {
		name string
		eq   Equation
		want string
	}{
		{name: "all terms", eq: Equation{A: 1, B: -5, C: 6}, want: "x² - 5x + 6 = 0"},
		{name: "negative monic", eq: Equation{A: -1, B: 1, C: -1}, want: "-x² + x - 1 = 0"},
		{name: "missing linear term", eq: Equation{A: 2, B: 0, C: -8}, want: "2x² - 8 = 0"},
		{name: "missing constant term", eq: Equation{A: 1, B: 3, C: 0}, want: "x² + 3x = 0"},
		{name: "bare square", eq: Equation{A: 1, B: 0, C: 0}, want: "x² = 0"},
		{name: "unit linear coefficient", eq: Equation{A: 1, B: 1, C: 1}, want: "x² + x + 1 = 0"},
		{name: "negative unit linear coefficient", eq: Equation{A: 3, B: -1, C: 2}, want: "3x² - x + 2 = 0"},
		{name: "decimal coefficients", eq: Equation{A: 2.5, B: -1.5, C: 0.5}, want: "2.5x² - 1.5x + 0.5 = 0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.eq.String(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEquationValidate(t *testing.T) {
	if err := (Equation{A: 1, B: 2, C: 3}).Validate(); err != nil {
		t.Fatalf("expected valid equation, got %v", err)
	}

	err := (Equation{A: 0, B: 2, C: 3}).Validate()
	if err == nil {
		t.Fatal("expected error for zero leading coefficient")
	}
	if !errors.Is(err, ErrNotQuadratic) {
		t.Fatalf("expected ErrNotQuadratic, got %v", err)
	}
	if got := err.Error(); got != ErrNotQuadratic.Error() {
		t.Fatalf("expected bare message %q, got %q", ErrNotQuadratic.Error(), got)
	}
}

func TestInvalidEquationErrorNamesIndex(t *testing.T) {
	err := error(&InvalidEquationError{Index: 2})

	if !errors.Is(err, ErrNotQuadratic) {
		t.Fatalf("expected ErrNotQuadratic through wrapper, got %v", err)
	}

	want := "equation 2: coefficient 'a' cannot be zero for a quadratic equation"
	if got := err.Error(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	var invalid *InvalidEquationError
	if !errors.As(err, &invalid) {
		t.Fatal("expected InvalidEquationError via errors.As")
	}
	if invalid.Index != 2 {
		t.Fatalf("expected index 2, got %d", invalid.Index)
	}
}

func TestEquationDiscriminantAndEvaluate(t *testing.T) {
	eq := Equation{A: 1, B: -5, C: 6}

	if got := eq.Discriminant(); got != 1 {
		t.Fatalf("expected discriminant 1, got %v", got)
	}

	tests := []struct {
		x, want float64
	}{
		{x: 0, want: 6},
		{x: 2, want: 0},
		{x: 3, want: 0},
		{x: 2.5, want: -0.25},
	}
	for _, tc := range tests {
		if got := eq.Evaluate(tc.x); got != tc.want {
			t.Fatalf("f(%v): expected %v, got %v", tc.x, tc.want, got)
		}
	}
}

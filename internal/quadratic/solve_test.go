package quadratic

import (
	"errors"
	"math"
	"testing"

	"quadratic-api/internal/testutil"
)

func TestSolveTwoDistinctRealRoots(t *testing.T) {
	an, err := Solve(1, -5, 6)
	if err != nil {
		t.Fatalf("solving: %v", err)
	}

	if an.Discriminant != 1 {
		t.Fatalf("expected discriminant 1, got %v", an.Discriminant)
	}
	if an.RootsType != TwoDistinctRealRoots {
		t.Fatalf("expected %q, got %q", TwoDistinctRealRoots, an.RootsType)
	}

	// Ascending order, exact values.
	if an.Roots[0].Real != 2 || an.Roots[1].Real != 3 {
		t.Fatalf("expected roots 2 and 3, got %v and %v", an.Roots[0].Real, an.Roots[1].Real)
	}
	if an.Roots[0].Imag != 0 || an.Roots[1].Imag != 0 {
		t.Fatalf("expected exactly zero imaginary parts, got %v and %v", an.Roots[0].Imag, an.Roots[1].Imag)
	}

	if an.Vertex.X != 2.5 || an.Vertex.Y != -0.25 {
		t.Fatalf("expected vertex (2.5, -0.25), got (%v, %v)", an.Vertex.X, an.Vertex.Y)
	}
	if an.AxisOfSymmetry != 2.5 {
		t.Fatalf("expected axis of symmetry 2.5, got %v", an.AxisOfSymmetry)
	}
	if an.Direction != DirectionUpward {
		t.Fatalf("expected direction %q, got %q", DirectionUpward, an.Direction)
	}
	if an.EquationString != "x² - 5x + 6 = 0" {
		t.Fatalf("expected equation string %q, got %q", "x² - 5x + 6 = 0", an.EquationString)
	}
}

func TestSolveRepeatedRoot(t *testing.T) {
	an, err := Solve(1, -4, 4)
	if err != nil {
		t.Fatalf("solving: %v", err)
	}

	if an.Discriminant != 0 {
		t.Fatalf("expected discriminant 0, got %v", an.Discriminant)
	}
	if an.RootsType != OneRepeatedRealRoot {
		t.Fatalf("expected %q, got %q", OneRepeatedRealRoot, an.RootsType)
	}
	if an.Roots[0] != an.Roots[1] {
		t.Fatalf("expected equal roots, got %v and %v", an.Roots[0], an.Roots[1])
	}
	if an.Roots[0].Real != 2 || an.Roots[0].Imag != 0 {
		t.Fatalf("expected root 2+0i, got %v", an.Roots[0])
	}
}

func TestSolveComplexConjugates(t *testing.T) {
	an, err := Solve(1, 2, 5)
	if err != nil {
		t.Fatalf("solving: %v", err)
	}

	if an.Discriminant != -16 {
		t.Fatalf("expected discriminant -16, got %v", an.Discriminant)
	}
	if an.RootsType != ComplexConjugateRoots {
		t.Fatalf("expected %q, got %q", ComplexConjugateRoots, an.RootsType)
	}

	r1, r2 := an.Roots[0], an.Roots[1]
	if r1.Real != -1 || r1.Imag != 2 {
		t.Fatalf("expected first root -1+2i, got %v", r1)
	}
	if r2.Real != r1.Real || r2.Imag != -r1.Imag {
		t.Fatalf("expected exact conjugates, got %v and %v", r1, r2)
	}
	if r1.IsReal() {
		t.Fatal("expected complex root to not display as real")
	}
}

func TestSolveDownwardParabola(t *testing.T) {
	an, err := Solve(-1, 0, 1)
	if err != nil {
		t.Fatalf("solving: %v", err)
	}

	if an.Direction != DirectionDownward {
		t.Fatalf("expected direction %q, got %q", DirectionDownward, an.Direction)
	}
	// Roots of -x² + 1: ±1 ascending.
	if an.Roots[0].Real != -1 || an.Roots[1].Real != 1 {
		t.Fatalf("expected roots -1 and 1, got %v and %v", an.Roots[0].Real, an.Roots[1].Real)
	}
}

func TestSolveRejectsZeroLeadingCoefficient(t *testing.T) {
	_, err := Solve(0, 2, 3)
	if err == nil {
		t.Fatal("expected error for a=0")
	}
	if !errors.Is(err, ErrNotQuadratic) {
		t.Fatalf("expected ErrNotQuadratic, got %v", err)
	}
}

// A dominant b annihilates the small root under the textbook formula;
// deriving it from the product of roots keeps it accurate.
func TestSolveStableUnderLargeB(t *testing.T) {
	an, err := Solve(1, 1e8, 1)
	if err != nil {
		t.Fatalf("solving: %v", err)
	}

	big, small := an.Roots[0].Real, an.Roots[1].Real
	if big >= small || small >= 0 {
		t.Fatalf("expected two negative roots in ascending order, got %v and %v", big, small)
	}

	// The small root is -1e-8 to within relative precision; the naive
	// formula collapses it to 0.
	testutil.InDelta(t, -1e-8, small, 1e-16)
	testutil.InDelta(t, -1e8, big, 0.1)

	// Relative residual, since the leading terms reach 1e16 for the big root.
	for _, r := range an.Roots {
		x := r.Real
		scale := math.Abs(an.Equation.A*x*x) + math.Abs(an.Equation.B*x) + math.Abs(an.Equation.C)
		if rel := math.Abs(an.Equation.Evaluate(x)) / scale; rel > 1e-12 {
			t.Fatalf("root %v does not satisfy the equation, relative residual %v", x, rel)
		}
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	first, err := Solve(2, -3.5, 0.25)
	if err != nil {
		t.Fatalf("solving: %v", err)
	}
	second, err := Solve(2, -3.5, 0.25)
	if err != nil {
		t.Fatalf("solving again: %v", err)
	}

	if first != second {
		t.Fatalf("expected identical analyses, got %+v and %+v", first, second)
	}
}

func TestRootString(t *testing.T) {
	tests := []struct {
		name string
		root Root
		want string
	}{
		{name: "real", root: Root{Real: 3}, want: "3.000000"},
		{name: "negative real", root: Root{Real: -2.5}, want: "-2.500000"},
		{name: "near-real displays as real", root: Root{Real: 1, Imag: 1e-12}, want: "1.000000"},
		{name: "positive imaginary", root: Root{Real: -1, Imag: 2}, want: "-1.000000 + 2.000000i"},
		{name: "negative imaginary", root: Root{Real: -1, Imag: -2}, want: "-1.000000 - 2.000000i"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.root.String(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

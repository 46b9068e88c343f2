package quadratic

import (
	"fmt"
	"math"
)

// displayTolerance is the |Imag| threshold below which a root renders as a
// plain real number. It affects formatting only; stored values always keep
// the exact imaginary part.
const displayTolerance = 1e-9

// Root is one solution of a quadratic equation. Imag is exactly 0 when the
// discriminant is non-negative; a negative discriminant yields a conjugate
// pair sharing Real with negated Imag.
type Root struct {
	Real float64 `json:"real"`
	Imag float64 `json:"imag"`
}

// IsReal reports whether the root displays as a real number.
func (r Root) IsReal() bool {
	return math.Abs(r.Imag) < displayTolerance
}

// String formats the root at six decimal places, e.g. "3.000000" or
// "-1.000000 + 2.000000i".
func (r Root) String() string {
	if r.IsReal() {
		return fmt.Sprintf("%.6f", r.Real)
	}
	if r.Imag < 0 {
		return fmt.Sprintf("%.6f - %.6fi", r.Real, -r.Imag)
	}
	return fmt.Sprintf("%.6f + %.6fi", r.Real, r.Imag)
}

// Vertex is the extremum of the parabola y = ax² + bx + c.
type Vertex struct {
	X float64
	Y float64
}

// Opening directions, decided by the sign of a.
const (
	DirectionUpward   = "upward"
	DirectionDownward = "downward"
)

// Root classifications, decided by the sign of the discriminant.
const (
	TwoDistinctRealRoots  = "two distinct real roots"
	OneRepeatedRealRoot   = "one repeated real root"
	ComplexConjugateRoots = "two complex conjugate roots"
)

// Analysis is the complete closed-form solution of one quadratic equation.
// Equation and Vertex are embedded, so coefficients and vertex coordinates
// read directly off the analysis.
type Analysis struct {
	Equation
	EquationString string
	Discriminant   float64
	Roots          [2]Root
	RootsType      string
	Vertex
	AxisOfSymmetry float64
	Direction      string
}

// Solve computes the full analysis of ax² + bx + c = 0. It is deterministic
// and side-effect free: identical coefficients always produce an identical
// Analysis.
//
// Real roots with a positive discriminant avoid the cancellation-prone
// −b ± √disc numerator: the root that would subtract nearly equal values is
// recovered from the product of roots (c/a) instead, so it stays accurate
// when |b| dominates 4ac. Roots are returned in ascending order.
func Solve(a, b, c float64) (Analysis, error) {
	eq := Equation{A: a, B: b, C: c}
	if err := eq.Validate(); err != nil {
		return Analysis{}, err
	}

	an := Analysis{
		Equation:       eq,
		EquationString: eq.String(),
		Discriminant:   eq.Discriminant(),
	}

	switch d := an.Discriminant; {
	case d > 0:
		q := -(b + math.Copysign(math.Sqrt(d), b)) / 2
		r1, r2 := q/a, c/q
		if r1 > r2 {
			r1, r2 = r2, r1
		}
		an.Roots = [2]Root{{Real: r1}, {Real: r2}}
		an.RootsType = TwoDistinctRealRoots
	case d == 0:
		r := -b / (2 * a)
		an.Roots = [2]Root{{Real: r}, {Real: r}}
		an.RootsType = OneRepeatedRealRoot
	default:
		re := -b / (2 * a)
		im := math.Sqrt(-d) / (2 * a)
		an.Roots = [2]Root{{Real: re, Imag: im}, {Real: re, Imag: -im}}
		an.RootsType = ComplexConjugateRoots
	}

	x := -b / (2 * a)
	an.Vertex = Vertex{X: x, Y: eq.Evaluate(x)}
	an.AxisOfSymmetry = x

	if a > 0 {
		an.Direction = DirectionUpward
	} else {
		an.Direction = DirectionDownward
	}

	return an, nil
}

// Package quadratic implements the analysis of quadratic equations: roots,
// vertex geometry, pairwise parabola intersections, and descriptive
// statistics over collections of solved equations. Everything here is pure
// computation on plain values; transport, storage, and caching live with the
// callers.
package quadratic

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotQuadratic is returned whenever a leading coefficient of zero would
// degenerate an equation to linear or constant form.
var ErrNotQuadratic = errors.New("coefficient 'a' cannot be zero for a quadratic equation")

// InvalidEquationError wraps ErrNotQuadratic with the position the offending
// equation held in a batch or intersection input. Index is -1 when the call
// concerned a single equation.
type InvalidEquationError struct {
	Index int
}

func (e *InvalidEquationError) Error() string {
	if e.Index < 0 {
		return ErrNotQuadratic.Error()
	}
	return fmt.Sprintf("equation %d: %s", e.Index, ErrNotQuadratic.Error())
}

func (e *InvalidEquationError) Unwrap() error { return ErrNotQuadratic }

// Equation holds the coefficients of ax² + bx + c = 0.
type Equation struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// Validate rejects degenerate equations (a == 0).
func (e Equation) Validate() error {
	if e.A == 0 {
		return &InvalidEquationError{Index: -1}
	}
	return nil
}

// Discriminant returns b² − 4ac.
func (e Equation) Discriminant() float64 {
	return e.B*e.B - 4*e.A*e.C
}

// Evaluate returns ax² + bx + c at the given x.
func (e Equation) Evaluate(x float64) float64 {
	return e.A*x*x + e.B*x + e.C
}

// String renders the equation with conventional sign placement: unit
// coefficients are implicit and zero terms are dropped, e.g. Equation{1, -5, 6}
// prints as "x² - 5x + 6 = 0".
func (e Equation) String() string {
	terms := make([]string, 0, 3)

	switch e.A {
	case 1:
		terms = append(terms, "x²")
	case -1:
		terms = append(terms, "-x²")
	default:
		terms = append(terms, fmt.Sprintf("%gx²", e.A))
	}

	switch {
	case e.B == 1:
		terms = append(terms, "+ x")
	case e.B == -1:
		terms = append(terms, "- x")
	case e.B > 0:
		terms = append(terms, fmt.Sprintf("+ %gx", e.B))
	case e.B < 0:
		terms = append(terms, fmt.Sprintf("- %gx", -e.B))
	}

	switch {
	case e.C > 0:
		terms = append(terms, fmt.Sprintf("+ %g", e.C))
	case e.C < 0:
		terms = append(terms, fmt.Sprintf("- %g", -e.C))
	}

	return strings.Join(terms, " ") + " = 0"
}

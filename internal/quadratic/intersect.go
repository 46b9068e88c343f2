package quadratic

import (
	"fmt"
	"math"
)

// pointTolerance bounds the per-coordinate distance under which two
// intersection points count as the same point.
const pointTolerance = 1e-6

// Relationship classifies how two parabolas relate to each other.
type Relationship string

const (
	// RelationshipIdentical: same curve, every point is shared.
	RelationshipIdentical Relationship = "identical"
	// RelationshipParallel: same shape shifted vertically, no intersection.
	RelationshipParallel Relationship = "parallel"
	// RelationshipLinear: equal leading coefficients, the difference is
	// linear and crosses once.
	RelationshipLinear Relationship = "linear"
	// RelationshipTangent: the curves touch at exactly one point.
	RelationshipTangent Relationship = "tangent"
	// RelationshipTwoPoints: the curves cross at two points.
	RelationshipTwoPoints Relationship = "two_points"
	// RelationshipNoReal: the difference has complex roots only.
	RelationshipNoReal Relationship = "no_real"
)

// Description returns the human-readable summary used in reports.
func (r Relationship) Description() string {
	switch r {
	case RelationshipIdentical:
		return "The equations are identical - infinite intersections"
	case RelationshipParallel:
		return "No intersections - equations are parallel"
	case RelationshipLinear:
		return "One intersection - linear difference"
	case RelationshipTangent:
		return "One intersection - equations are tangent"
	case RelationshipTwoPoints:
		return "Two intersections"
	case RelationshipNoReal:
		return "No real intersections - complex roots"
	}
	return string(r)
}

// Point is an intersection point in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PairIntersection describes where and how two parabolas meet. Identical
// equations share every point: Infinite is set and Points stays empty, since
// the intersection set cannot be enumerated.
type PairIntersection struct {
	Equation1    Equation
	Equation2    Equation
	Difference   string
	Relationship Relationship
	Points       []Point
	Infinite     bool
	// Discriminant of the difference equation. When the leading
	// coefficients match this collapses to (b1−b2)².
	Discriminant float64
}

// Intersect finds the intersection of two parabolas by classifying their
// difference equation (a1−a2)x² + (b1−b2)x + (c1−c2) = 0. Intersection y
// values are always evaluated against eq1.
func Intersect(eq1, eq2 Equation) (PairIntersection, error) {
	if err := eq1.Validate(); err != nil {
		return PairIntersection{}, err
	}
	if err := eq2.Validate(); err != nil {
		return PairIntersection{}, err
	}
	return intersect(eq1, eq2), nil
}

// intersect assumes both equations are already validated.
func intersect(eq1, eq2 Equation) PairIntersection {
	da, db, dc := eq1.A-eq2.A, eq1.B-eq2.B, eq1.C-eq2.C

	res := PairIntersection{
		Equation1:    eq1,
		Equation2:    eq2,
		Difference:   formatDifference(da, db, dc),
		Discriminant: db*db - 4*da*dc,
	}

	switch {
	case da == 0 && db == 0 && dc == 0:
		res.Relationship = RelationshipIdentical
		res.Infinite = true
	case da == 0 && db == 0:
		res.Relationship = RelationshipParallel
	case da == 0:
		x := -dc / db
		res.Relationship = RelationshipLinear
		res.Points = []Point{{X: x, Y: eq1.Evaluate(x)}}
	case res.Discriminant < 0:
		res.Relationship = RelationshipNoReal
	case res.Discriminant == 0:
		x := -db / (2 * da)
		res.Relationship = RelationshipTangent
		res.Points = []Point{{X: x, Y: eq1.Evaluate(x)}}
	default:
		sq := math.Sqrt(res.Discriminant)
		x1 := (-db + sq) / (2 * da)
		x2 := (-db - sq) / (2 * da)
		res.Relationship = RelationshipTwoPoints
		res.Points = []Point{
			{X: x1, Y: eq1.Evaluate(x1)},
			{X: x2, Y: eq1.Evaluate(x2)},
		}
	}

	return res
}

// formatDifference renders a difference equation, which unlike Equation may
// have a zero leading coefficient.
func formatDifference(da, db, dc float64) string {
	if da != 0 {
		return Equation{A: da, B: db, C: dc}.String()
	}

	switch {
	case db == 0 && dc == 0:
		return "0 = 0"
	case db == 0:
		return fmt.Sprintf("%g = 0", dc)
	}

	var s string
	switch db {
	case 1:
		s = "x"
	case -1:
		s = "-x"
	default:
		s = fmt.Sprintf("%gx", db)
	}
	switch {
	case dc > 0:
		s += fmt.Sprintf(" + %g", dc)
	case dc < 0:
		s += fmt.Sprintf(" - %g", -dc)
	}
	return s + " = 0"
}

// PairResult tags a PairIntersection with the positions its equations held in
// the input slice.
type PairResult struct {
	Index1 int
	Index2 int
	PairIntersection
}

// UniquePoint is a deduplicated intersection point together with the number
// of pairwise results that produced it.
type UniquePoint struct {
	Point
	Occurrences int
}

// MultiIntersection aggregates every pairwise intersection of an equation set.
type MultiIntersection struct {
	TotalEquations int
	Pairs          []PairResult
	UniquePoints   []UniquePoint
	Relationships  map[Relationship]int
	// Concurrent lists the unique points produced by more than one pair;
	// n parabolas through a single point yield n·(n−1)/2 occurrences.
	Concurrent []UniquePoint
}

// IntersectAll intersects every pair of eqs, visiting pairs in index order
// (i < j). Every equation is validated before any pairwise work, so a single
// degenerate input rejects the whole call, naming its position. Duplicate
// points fold into their first occurrence within pointTolerance; the visit
// order therefore fixes which coordinate representative survives.
func IntersectAll(eqs []Equation) (MultiIntersection, error) {
	if len(eqs) < 2 {
		return MultiIntersection{}, fmt.Errorf("need at least 2 equations, got %d", len(eqs))
	}
	for i, eq := range eqs {
		if eq.A == 0 {
			return MultiIntersection{}, &InvalidEquationError{Index: i}
		}
	}

	multi := MultiIntersection{
		TotalEquations: len(eqs),
		Relationships:  make(map[Relationship]int),
	}

	var unique []UniquePoint
	for i := 0; i < len(eqs); i++ {
		for j := i + 1; j < len(eqs); j++ {
			pair := intersect(eqs[i], eqs[j])
			multi.Pairs = append(multi.Pairs, PairResult{
				Index1:           i,
				Index2:           j,
				PairIntersection: pair,
			})
			multi.Relationships[pair.Relationship]++

			for _, p := range pair.Points {
				if k := indexOfPoint(unique, p); k >= 0 {
					unique[k].Occurrences++
				} else {
					unique = append(unique, UniquePoint{Point: p, Occurrences: 1})
				}
			}
		}
	}

	multi.UniquePoints = unique
	for _, up := range unique {
		if up.Occurrences > 1 {
			multi.Concurrent = append(multi.Concurrent, up)
		}
	}

	return multi, nil
}

func indexOfPoint(points []UniquePoint, p Point) int {
	for i, u := range points {
		if math.Abs(u.X-p.X) < pointTolerance && math.Abs(u.Y-p.Y) < pointTolerance {
			return i
		}
	}
	return -1
}

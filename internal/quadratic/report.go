package quadratic

import (
	"fmt"
	"strings"
)

// Report renders the multi-equation intersection analysis as a plain-text
// document, points at three decimal places.
func (m MultiIntersection) Report() string {
	var b strings.Builder

	b.WriteString("INTERSECTION ANALYSIS REPORT\n")
	b.WriteString("============================\n\n")
	fmt.Fprintf(&b, "Total Equations: %d\n", m.TotalEquations)
	fmt.Fprintf(&b, "Total Pairs Analyzed: %d\n", len(m.Pairs))
	fmt.Fprintf(&b, "Unique Intersection Points: %d\n", len(m.UniquePoints))

	b.WriteString("\nINTERSECTION SUMMARY:\n")
	for _, pair := range m.Pairs {
		fmt.Fprintf(&b, "\n%s & %s\n", pair.Equation1, pair.Equation2)
		fmt.Fprintf(&b, "  Type: %s\n", pair.Relationship.Description())
		if pair.Infinite {
			b.WriteString("  Intersections: infinite\n")
		} else {
			fmt.Fprintf(&b, "  Intersections: %d\n", len(pair.Points))
		}
		for _, p := range pair.Points {
			fmt.Fprintf(&b, "    Point: (%.3f, %.3f)\n", p.X, p.Y)
		}
	}

	if len(m.Concurrent) > 0 {
		b.WriteString("\nCOMMON INTERSECTION POINTS:\n")
		for _, up := range m.Concurrent {
			fmt.Fprintf(&b, "  (%.3f, %.3f) - %d pairs\n", up.X, up.Y, up.Occurrences)
		}
	}

	if patterns := m.patterns(); len(patterns) > 0 {
		b.WriteString("\nPATTERNS DETECTED:\n")
		for _, p := range patterns {
			fmt.Fprintf(&b, "  - %s\n", p)
		}
	}

	return b.String()
}

func (m MultiIntersection) patterns() []string {
	var out []string
	if n := len(m.Concurrent); n > 0 {
		out = append(out, fmt.Sprintf("found %d point(s) where multiple equation pairs intersect", n))
	}
	if n := m.Relationships[RelationshipTangent]; n > 0 {
		out = append(out, fmt.Sprintf("%d pair(s) of equations are tangent to each other", n))
	}
	return out
}

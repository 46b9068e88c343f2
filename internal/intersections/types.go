package intersections

import (
	"github.com/go-playground/validator/v10"

	"quadratic-api/internal/quadratic"
)

// validate checks request DTOs against their struct tags.
var validate = validator.New()

// RequestEquation is one parabola in an intersection request.
type RequestEquation struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// IntersectRequest is the JSON body for POST /intersections. Two equations
// get the pair response; three or more get the aggregated multi response.
type IntersectRequest struct {
	Equations []RequestEquation `json:"equations" validate:"max=50"`
}

func (r *IntersectRequest) Validate() error {
	return validate.Struct(r)
}

// PairResponse is the JSON response for exactly two equations.
type PairResponse struct {
	Equation1         string            `json:"equation1"`
	Equation2         string            `json:"equation2"`
	Difference        string            `json:"difference"`
	Relationship      string            `json:"relationship"`
	Description       string            `json:"description"`
	Points            []quadratic.Point `json:"points"`
	IntersectionCount int               `json:"intersection_count"`
	Infinite          bool              `json:"infinite"`
	Discriminant      float64           `json:"discriminant"`
}

// NewPairResponse maps a core pair intersection onto the wire shape.
func NewPairResponse(pi quadratic.PairIntersection) PairResponse {
	points := pi.Points
	if points == nil {
		points = []quadratic.Point{}
	}
	return PairResponse{
		Equation1:         pi.Equation1.String(),
		Equation2:         pi.Equation2.String(),
		Difference:        pi.Difference,
		Relationship:      string(pi.Relationship),
		Description:       pi.Relationship.Description(),
		Points:            points,
		IntersectionCount: len(points),
		Infinite:          pi.Infinite,
		Discriminant:      pi.Discriminant,
	}
}

// MultiPair is one analysed pair inside a multi-equation response.
type MultiPair struct {
	Index1       int               `json:"index1"`
	Index2       int               `json:"index2"`
	Equation1    string            `json:"equation1"`
	Equation2    string            `json:"equation2"`
	Relationship string            `json:"relationship"`
	Points       []quadratic.Point `json:"points"`
	Infinite     bool              `json:"infinite,omitempty"`
}

// MultiPoint is a deduplicated intersection point with the number of pairs
// that produced it.
type MultiPoint struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Occurrences int     `json:"occurrences"`
}

// MultiResponse is the JSON response for three or more equations.
type MultiResponse struct {
	TotalEquations   int            `json:"total_equations"`
	TotalPairs       int            `json:"total_pairs"`
	Pairs            []MultiPair    `json:"pairs"`
	UniquePoints     []MultiPoint   `json:"unique_points"`
	Relationships    map[string]int `json:"relationships"`
	ConcurrentPoints []MultiPoint   `json:"concurrent_points"`
}

// NewMultiResponse maps a core multi intersection onto the wire shape.
func NewMultiResponse(multi quadratic.MultiIntersection) MultiResponse {
	pairs := make([]MultiPair, 0, len(multi.Pairs))
	for _, pr := range multi.Pairs {
		points := pr.Points
		if points == nil {
			points = []quadratic.Point{}
		}
		pairs = append(pairs, MultiPair{
			Index1:       pr.Index1,
			Index2:       pr.Index2,
			Equation1:    pr.Equation1.String(),
			Equation2:    pr.Equation2.String(),
			Relationship: string(pr.Relationship),
			Points:       points,
			Infinite:     pr.Infinite,
		})
	}

	relationships := make(map[string]int, len(multi.Relationships))
	for rel, count := range multi.Relationships {
		relationships[string(rel)] = count
	}

	return MultiResponse{
		TotalEquations:   multi.TotalEquations,
		TotalPairs:       len(multi.Pairs),
		Pairs:            pairs,
		UniquePoints:     toMultiPoints(multi.UniquePoints),
		Relationships:    relationships,
		ConcurrentPoints: toMultiPoints(multi.Concurrent),
	}
}

func toMultiPoints(points []quadratic.UniquePoint) []MultiPoint {
	out := make([]MultiPoint, 0, len(points))
	for _, up := range points {
		out = append(out, MultiPoint{X: up.X, Y: up.Y, Occurrences: up.Occurrences})
	}
	return out
}

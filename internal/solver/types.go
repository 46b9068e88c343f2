package solver

import (
	"github.com/go-playground/validator/v10"

	"quadratic-api/internal/history"
	"quadratic-api/internal/quadratic"
)

// validate checks request DTOs against their struct tags.
var validate = validator.New()

// SolveRequest is the JSON body for POST /solve.
type SolveRequest struct {
	A        float64 `json:"a"`
	B        float64 `json:"b"`
	C        float64 `json:"c"`
	ClientID string  `json:"client_id,omitempty" validate:"omitempty,max=128"`
}

func (r *SolveRequest) Validate() error {
	return validate.Struct(r)
}

// SolveResponse is the JSON shape of a full analysis. Roots always carry both
// parts; real roots have imag 0.
type SolveResponse struct {
	Equation       string            `json:"equation"`
	A              float64           `json:"a"`
	B              float64           `json:"b"`
	C              float64           `json:"c"`
	Discriminant   float64           `json:"discriminant"`
	RootsType      string            `json:"roots_type"`
	Roots          [2]quadratic.Root `json:"roots"`
	Vertex         [2]float64        `json:"vertex"`
	AxisOfSymmetry float64           `json:"axis_of_symmetry"`
	Direction      string            `json:"direction"`
	RecordID       string            `json:"record_id,omitempty"`
	Cached         bool              `json:"cached"`
}

// NewSolveResponse maps a core analysis onto the wire shape.
func NewSolveResponse(an quadratic.Analysis) SolveResponse {
	return SolveResponse{
		Equation:       an.EquationString,
		A:              an.A,
		B:              an.B,
		C:              an.C,
		Discriminant:   an.Discriminant,
		RootsType:      an.RootsType,
		Roots:          an.Roots,
		Vertex:         [2]float64{an.X, an.Y},
		AxisOfSymmetry: an.AxisOfSymmetry,
		Direction:      an.Direction,
	}
}

// BatchEquation is one coefficient triple in a batch request.
type BatchEquation struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// BatchRequest is the JSON body for POST /solve/batch.
type BatchRequest struct {
	Equations []BatchEquation `json:"equations" validate:"max=100"`
	ClientID  string          `json:"client_id,omitempty" validate:"omitempty,max=128"`
}

func (r *BatchRequest) Validate() error {
	return validate.Struct(r)
}

// BatchResult is one successful solve, tagged with its position in the
// request so callers can line results up with their input.
type BatchResult struct {
	Index int `json:"index"`
	SolveResponse
}

// BatchError reports one failed equation by its position in the request.
type BatchError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// BatchResponse is the JSON response for POST /solve/batch. One bad equation
// never fails the batch; it lands in Errors and the rest proceed.
type BatchResponse struct {
	Results        []BatchResult `json:"results"`
	Errors         []BatchError  `json:"errors"`
	TotalProcessed int           `json:"total_processed"`
	SuccessRate    float64       `json:"success_rate"`
}

// HistoryResponse is the JSON response for GET /equations.
type HistoryResponse struct {
	Equations []history.Record `json:"equations"`
	Count     int              `json:"count"`
}

// DeleteResponse reports how many records DELETE /equations removed.
type DeleteResponse struct {
	Deleted int `json:"deleted"`
}

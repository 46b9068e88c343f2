package history

import (
	"time"

	"github.com/google/uuid"

	"quadratic-api/internal/quadratic"
)

// Record is one solved equation as persisted in the history store.
type Record struct {
	ID           string            `json:"id"`
	A            float64           `json:"a"`
	B            float64           `json:"b"`
	C            float64           `json:"c"`
	Equation     string            `json:"equation"`
	Discriminant float64           `json:"discriminant"`
	RootsType    string            `json:"roots_type"`
	Roots        [2]quadratic.Root `json:"roots"`
	VertexX      float64           `json:"vertex_x"`
	VertexY      float64           `json:"vertex_y"`
	SolvedAt     time.Time         `json:"solved_at"`
	ClientID     string            `json:"client_id,omitempty"`
}

// NewRecord snapshots an analysis into a record with a fresh id and a UTC
// timestamp. clientID may be empty.
func NewRecord(an quadratic.Analysis, clientID string) Record {
	return Record{
		ID:           uuid.NewString(),
		A:            an.A,
		B:            an.B,
		C:            an.C,
		Equation:     an.EquationString,
		Discriminant: an.Discriminant,
		RootsType:    an.RootsType,
		Roots:        an.Roots,
		VertexX:      an.X,
		VertexY:      an.Y,
		SolvedAt:     time.Now().UTC(),
		ClientID:     clientID,
	}
}

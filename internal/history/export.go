package history

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{
	"id", "a", "b", "c", "equation", "discriminant", "roots_type",
	"root1_real", "root1_imag", "root2_real", "root2_imag",
	"vertex_x", "vertex_y", "solved_at", "client_id",
}

// ExportFilename returns the download filename for an export taken at ts,
// e.g. equations_export_20250114_153042.csv.
func ExportFilename(format string, ts time.Time) string {
	return fmt.Sprintf("equations_export_%s.%s", ts.Format("20060102_150405"), format)
}

// ExportJSON writes every record to w as an indented JSON array, oldest
// first, and reports how many records were written.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) (int, error) {
	records, err := s.All(ctx)
	if err != nil {
		return 0, err
	}
	if records == nil {
		records = []Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return 0, fmt.Errorf("encode export: %w", err)
	}
	return len(records), nil
}

// ExportCSV writes every record to w as CSV with a header row, oldest first,
// and reports how many records were written.
func (s *Store) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	records, err := s.All(ctx)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.ID,
			formatFloat(rec.A),
			formatFloat(rec.B),
			formatFloat(rec.C),
			rec.Equation,
			formatFloat(rec.Discriminant),
			rec.RootsType,
			formatFloat(rec.Roots[0].Real),
			formatFloat(rec.Roots[0].Imag),
			formatFloat(rec.Roots[1].Real),
			formatFloat(rec.Roots[1].Imag),
			formatFloat(rec.VertexX),
			formatFloat(rec.VertexY),
			rec.SolvedAt.Format(time.RFC3339Nano),
			rec.ClientID,
		}
		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("write csv row for %s: %w", rec.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flush csv export: %w", err)
	}
	return len(records), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"quadratic-api/internal/quadratic"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("expected in-memory store to open, got %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("expected clean close, got %v", err)
		}
	})
	return s
}

func recordAt(t *testing.T, a, b, c float64, solvedAt time.Time) Record {
	t.Helper()
	an, err := quadratic.Solve(a, b, c)
	if err != nil {
		t.Fatalf("expected solve to succeed, got %v", err)
	}
	rec := NewRecord(an, "")
	rec.SolvedAt = solvedAt
	return rec
}

func TestStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	an, err := quadratic.Solve(1, -5, 6)
	if err != nil {
		t.Fatalf("expected solve to succeed, got %v", err)
	}
	rec := NewRecord(an, "client-7")

	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("expected put to succeed, got %v", err)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("expected get to succeed, got %v", err)
	}
	if got.ID != rec.ID {
		t.Fatalf("expected id %q, got %q", rec.ID, got.ID)
	}
	if got.A != 1 || got.B != -5 || got.C != 6 {
		t.Fatalf("expected coefficients (1, -5, 6), got (%v, %v, %v)", got.A, got.B, got.C)
	}
	if got.Equation != "x² - 5x + 6 = 0" {
		t.Fatalf("expected formatted equation, got %q", got.Equation)
	}
	if got.Discriminant != 1 {
		t.Fatalf("expected discriminant 1, got %v", got.Discriminant)
	}
	if got.Roots != rec.Roots {
		t.Fatalf("expected roots %v, got %v", rec.Roots, got.Roots)
	}
	if got.VertexX != 2.5 || got.VertexY != -0.25 {
		t.Fatalf("expected vertex (2.5, -0.25), got (%v, %v)", got.VertexX, got.VertexY)
	}
	if !got.SolvedAt.Equal(rec.SolvedAt) {
		t.Fatalf("expected solved_at %v, got %v", rec.SolvedAt, got.SolvedAt)
	}
	if got.ClientID != "client-7" {
		t.Fatalf("expected client id %q, got %q", "client-7", got.ClientID)
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreRecentNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC)

	oldest := recordAt(t, 1, -5, 6, base)
	middle := recordAt(t, 1, -4, 4, base.Add(time.Second))
	newest := recordAt(t, 1, 2, 5, base.Add(2*time.Second))

	// Insertion order deliberately differs from solve-time order.
	for _, rec := range []Record{middle, newest, oldest} {
		if err := s.Put(ctx, rec); err != nil {
			t.Fatalf("expected put to succeed, got %v", err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("expected recent to succeed, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != newest.ID || got[1].ID != middle.ID {
		t.Fatalf("expected newest-first order [%s, %s], got [%s, %s]",
			newest.ID, middle.ID, got[0].ID, got[1].ID)
	}
}

func TestStoreRecentLimitBeyondCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC)

	if err := s.Put(ctx, recordAt(t, 2, 0, -8, base)); err != nil {
		t.Fatalf("expected put to succeed, got %v", err)
	}

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("expected recent to succeed, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
}

func TestStoreAllOldestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC)

	first := recordAt(t, 1, 0, -1, base)
	second := recordAt(t, 1, 0, 1, base.Add(time.Second))
	for _, rec := range []Record{second, first} {
		if err := s.Put(ctx, rec); err != nil {
			t.Fatalf("expected put to succeed, got %v", err)
		}
	}

	got, err := s.All(ctx)
	if err != nil {
		t.Fatalf("expected all to succeed, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Fatalf("expected oldest-first order [%s, %s], got [%s, %s]",
			first.ID, second.ID, got[0].ID, got[1].ID)
	}
}

func TestStoreCountAndClear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC)

	recs := []Record{
		recordAt(t, 1, -3, 2, base),
		recordAt(t, 2, 0, -8, base.Add(time.Second)),
		recordAt(t, 1, 2, 5, base.Add(2*time.Second)),
	}
	for _, rec := range recs {
		if err := s.Put(ctx, rec); err != nil {
			t.Fatalf("expected put to succeed, got %v", err)
		}
	}

	count, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("expected count to succeed, got %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 records, got %d", count)
	}

	deleted, err := s.Clear(ctx)
	if err != nil {
		t.Fatalf("expected clear to succeed, got %v", err)
	}
	if deleted != 3 {
		t.Fatalf("expected 3 deletions, got %d", deleted)
	}

	count, err = s.Count(ctx)
	if err != nil {
		t.Fatalf("expected count to succeed, got %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty store after clear, got %d records", count)
	}

	// The id index must be gone too.
	if _, err := s.Get(ctx, recs[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after clear, got %v", err)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	cfg := Config{Dir: dir}

	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("expected persistent store to open, got %v", err)
	}
	rec := recordAt(t, 1, -5, 6, time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC))
	if err := s.Put(ctx, rec); err != nil {
		t.Fatalf("expected put to succeed, got %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("expected clean close, got %v", err)
	}

	s, err = Open(cfg)
	if err != nil {
		t.Fatalf("expected reopen to succeed, got %v", err)
	}
	defer s.Close()

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("expected record to survive reopen, got %v", err)
	}
	if got.Equation != "x² - 5x + 6 = 0" {
		t.Fatalf("expected stored equation, got %q", got.Equation)
	}
}

func TestStoreRejectsMissingDir(t *testing.T) {
	if _, err := Open(Config{}); err == nil {
		t.Fatal("expected error for persistent store without dir, got nil")
	}
}

package testutil

import (
	"math"
	"testing"
)

// InDelta fails the test unless got is within delta of want.
func InDelta(t testing.TB, want, got, delta float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(want-got) > delta {
		t.Fatalf("expected %v ± %v, got %v", want, delta, got)
	}
}

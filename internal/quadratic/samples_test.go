package quadratic

import (
	"math"
	"math/rand"
	"testing"
)

func TestGenerateSamplesEasy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	eqs := GenerateSamples(rng, 50, DifficultyEasy)

	if len(eqs) != 50 {
		t.Fatalf("expected 50 equations, got %d", len(eqs))
	}
	for i, eq := range eqs {
		if eq.A != 1 && eq.A != -1 {
			t.Fatalf("equation %d: expected monic leading coefficient, got %v", i, eq.A)
		}
		if eq.B != math.Trunc(eq.B) || eq.B < -10 || eq.B > 10 {
			t.Fatalf("equation %d: expected integer b in [-10, 10], got %v", i, eq.B)
		}
		if eq.C != math.Trunc(eq.C) || eq.C < -10 || eq.C > 10 {
			t.Fatalf("equation %d: expected integer c in [-10, 10], got %v", i, eq.C)
		}
	}
}

func TestGenerateSamplesHard(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	eqs := GenerateSamples(rng, 50, DifficultyHard)

	for i, eq := range eqs {
		if eq.A == 0 {
			t.Fatalf("equation %d: generated zero leading coefficient", i)
		}
		if eq.A < -5 || eq.A > 5 || eq.B < -10 || eq.B > 10 || eq.C < -10 || eq.C > 10 {
			t.Fatalf("equation %d: coefficients out of range: %+v", i, eq)
		}
		for _, v := range []float64{eq.A, eq.B, eq.C} {
			if math.Round(v*10)/10 != v {
				t.Fatalf("equation %d: expected one-decimal coefficient, got %v", i, v)
			}
		}
	}
}

func TestGenerateSamplesMixedAlwaysSolvable(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	eqs := GenerateSamples(rng, 100, DifficultyMixed)

	if len(eqs) != 100 {
		t.Fatalf("expected 100 equations, got %d", len(eqs))
	}
	for i, eq := range eqs {
		if err := eq.Validate(); err != nil {
			t.Fatalf("equation %d: %v", i, err)
		}
		if _, err := Solve(eq.A, eq.B, eq.C); err != nil {
			t.Fatalf("equation %d: %v", i, err)
		}
	}
}

func TestGenerateSamplesDeterministicPerSeed(t *testing.T) {
	first := GenerateSamples(rand.New(rand.NewSource(7)), 20, DifficultyMixed)
	second := GenerateSamples(rand.New(rand.NewSource(7)), 20, DifficultyMixed)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical draws at %d, got %+v and %+v", i, first[i], second[i])
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{in: "easy", want: DifficultyEasy},
		{in: "hard", want: DifficultyHard},
		{in: "mixed", want: DifficultyMixed},
		{in: "", want: DifficultyMixed},
		{in: "brutal", wantErr: true},
	}

	for _, tc := range tests {
		t.Run("input "+tc.in, func(t *testing.T) {
			got, err := ParseDifficulty(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsing %q: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

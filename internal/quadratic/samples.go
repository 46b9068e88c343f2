package quadratic

import (
	"fmt"
	"math"
	"math/rand"
)

// Difficulty selects the coefficient ranges used for sample generation.
type Difficulty string

const (
	DifficultyEasy  Difficulty = "easy"
	DifficultyHard  Difficulty = "hard"
	DifficultyMixed Difficulty = "mixed"
)

// ParseDifficulty validates a difficulty name; the empty string defaults to
// mixed.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyHard, DifficultyMixed:
		return Difficulty(s), nil
	case "":
		return DifficultyMixed, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, hard, or mixed)", s)
}

// GenerateSamples produces count random equations with a guaranteed non-zero
// leading coefficient. Easy equations are monic (±x²) with integer b and c in
// [−10, 10]; hard equations use one-decimal coefficients; mixed flips a coin
// between the easy shape and a smaller hard shape per equation.
func GenerateSamples(rng *rand.Rand, count int, difficulty Difficulty) []Equation {
	eqs := make([]Equation, 0, count)

	for range count {
		var eq Equation
		switch difficulty {
		case DifficultyEasy:
			eq = easySample(rng)
		case DifficultyHard:
			eq = hardSample(rng, 5, 10)
		default:
			if rng.Intn(2) == 0 {
				eq = easySample(rng)
			} else {
				eq = hardSample(rng, 3, 8)
			}
		}
		eqs = append(eqs, eq)
	}

	return eqs
}

func easySample(rng *rand.Rand) Equation {
	a := 1.0
	if rng.Intn(2) == 1 {
		a = -1.0
	}
	return Equation{
		A: a,
		B: float64(rng.Intn(21) - 10),
		C: float64(rng.Intn(21) - 10),
	}
}

func hardSample(rng *rand.Rand, aRange, bcRange float64) Equation {
	a := roundTenth(uniform(rng, aRange))
	for a == 0 {
		a = roundTenth(uniform(rng, aRange))
	}
	return Equation{
		A: a,
		B: roundTenth(uniform(rng, bcRange)),
		C: roundTenth(uniform(rng, bcRange)),
	}
}

// uniform draws from [−limit, limit).
func uniform(rng *rand.Rand, limit float64) float64 {
	return (rng.Float64()*2 - 1) * limit
}

func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10
}

package quadratic

import "math"

// nearTolerance bounds how close two coefficients must be to count as equal
// for relationship detection.
const nearTolerance = 1e-6

// CoefficientStats are descriptive statistics for one value across a set of
// solved equations. StdDev is the population standard deviation.
type CoefficientStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
}

// ComplexityBuckets partitions equations by how hard they look to solve by
// hand: simple is monic with |b| and |c| at most 10, moderate is any other
// all-integer triple, complex is everything else.
type ComplexityBuckets struct {
	Simple   int `json:"simple"`
	Moderate int `json:"moderate"`
	Complex  int `json:"complex"`
}

// Patterns collects structurally notable equations by their position in the
// summarized slice.
type Patterns struct {
	PerfectSquares      []int `json:"perfect_squares"`
	Factorable          []int `json:"factorable"`
	IntegerCoefficients []int `json:"integer_coefficients"`
	DecimalCoefficients []int `json:"decimal_coefficients"`
}

// Summary aggregates a collection of solved equations.
type Summary struct {
	Total          int               `json:"total_equations"`
	RealRoots      int               `json:"real_roots_count"`
	ComplexRoots   int               `json:"complex_roots_count"`
	PerfectSquares int               `json:"perfect_squares"`
	Upward         int               `json:"upward_parabolas"`
	Downward       int               `json:"downward_parabolas"`
	MissingLinear  int               `json:"missing_linear_term"`
	MissingConst   int               `json:"missing_constant_term"`
	A              CoefficientStats  `json:"a_distribution"`
	B              CoefficientStats  `json:"b_distribution"`
	C              CoefficientStats  `json:"c_distribution"`
	Discriminant   CoefficientStats  `json:"discriminant_distribution"`
	Complexity     ComplexityBuckets `json:"complexity"`
	Patterns       Patterns          `json:"patterns"`
}

// Summarize computes descriptive statistics over solved equations. An empty
// input yields the zero Summary.
func Summarize(analyses []Analysis) Summary {
	s := Summary{Total: len(analyses)}
	if s.Total == 0 {
		return s
	}

	as := make([]float64, len(analyses))
	bs := make([]float64, len(analyses))
	cs := make([]float64, len(analyses))
	ds := make([]float64, len(analyses))

	for i, an := range analyses {
		eq := an.Equation
		as[i], bs[i], cs[i], ds[i] = eq.A, eq.B, eq.C, an.Discriminant

		if an.Discriminant >= 0 {
			s.RealRoots++
		} else {
			s.ComplexRoots++
		}
		if an.Discriminant == 0 {
			s.PerfectSquares++
			s.Patterns.PerfectSquares = append(s.Patterns.PerfectSquares, i)
		}
		if an.Direction == DirectionUpward {
			s.Upward++
		} else {
			s.Downward++
		}
		if eq.B == 0 {
			s.MissingLinear++
		}
		if eq.C == 0 {
			s.MissingConst++
		}

		allInteger := isInteger(eq.A) && isInteger(eq.B) && isInteger(eq.C)
		switch {
		case eq.A == 1 && math.Abs(eq.B) <= 10 && math.Abs(eq.C) <= 10:
			s.Complexity.Simple++
		case allInteger:
			s.Complexity.Moderate++
		default:
			s.Complexity.Complex++
		}

		if allInteger {
			s.Patterns.IntegerCoefficients = append(s.Patterns.IntegerCoefficients, i)
		} else {
			s.Patterns.DecimalCoefficients = append(s.Patterns.DecimalCoefficients, i)
		}

		r1, r2 := an.Roots[0], an.Roots[1]
		if r1.Imag == 0 && r2.Imag == 0 && isInteger(r1.Real) && isInteger(r2.Real) {
			s.Patterns.Factorable = append(s.Patterns.Factorable, i)
		}
	}

	s.A = describe(as)
	s.B = describe(bs)
	s.C = describe(cs)
	s.Discriminant = describe(ds)

	return s
}

func describe(values []float64) CoefficientStats {
	st := CoefficientStats{Min: values[0], Max: values[0]}

	var sum float64
	for _, v := range values {
		sum += v
		st.Min = math.Min(st.Min, v)
		st.Max = math.Max(st.Max, v)
	}
	st.Mean = sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - st.Mean
		sq += d * d
	}
	st.StdDev = math.Sqrt(sq / float64(len(values)))

	return st
}

func isInteger(f float64) bool {
	return f == math.Trunc(f)
}

// EquationPair indexes two equations in a summarized slice.
type EquationPair struct {
	I int `json:"i"`
	J int `json:"j"`
}

// RelationshipSet lists pairwise coefficient relationships across a set of
// solved equations.
type RelationshipSet struct {
	// SimilarDiscriminants pairs equations whose discriminants differ by
	// less than nearTolerance.
	SimilarDiscriminants []EquationPair `json:"similar_discriminants"`
	// ParallelParabolas pairs equations sharing a leading coefficient
	// within nearTolerance.
	ParallelParabolas []EquationPair `json:"parallel_parabolas"`
}

// Relationships scans every pair of solved equations for coefficient
// relationships, visiting pairs in index order.
func Relationships(analyses []Analysis) RelationshipSet {
	var set RelationshipSet

	for i := 0; i < len(analyses); i++ {
		for j := i + 1; j < len(analyses); j++ {
			if math.Abs(analyses[i].Discriminant-analyses[j].Discriminant) < nearTolerance {
				set.SimilarDiscriminants = append(set.SimilarDiscriminants, EquationPair{I: i, J: j})
			}
			if math.Abs(analyses[i].Equation.A-analyses[j].Equation.A) < nearTolerance {
				set.ParallelParabolas = append(set.ParallelParabolas, EquationPair{I: i, J: j})
			}
		}
	}

	return set
}

package calc

import "math"

// Root kinds reported by SolveQuadratic.
const (
	RootsTwoReal  = "two_real_solutions"
	RootsOneReal  = "one_real_solution"
	RootsComplex  = "complex_solutions"
	RootsLinear   = "linear"
	RootsNone     = "no_solution"
	RootsInfinite = "infinite_solutions"
)

// QuadraticResult describes the solutions of ax² + bx + c = 0.
type QuadraticResult struct {
	Type          string     `json:"type"`
	Solutions     []float64  `json:"solutions,omitempty"`
	Discriminant  float64    `json:"discriminant,omitempty"`
	RealPart      float64    `json:"real_part,omitempty"`
	ImaginaryPart float64    `json:"imaginary_part,omitempty"`
}

// SolveQuadratic solves ax² + bx + c = 0, degrading to the linear case
// when a is zero. Complex roots are reported as a conjugate pair via the
// real and imaginary parts.
func SolveQuadratic(a, b, c float64) QuadraticResult {
	if a == 0 {
		if b == 0 {
			if c != 0 {
				return QuadraticResult{Type: RootsNone}
			}
			return QuadraticResult{Type: RootsInfinite}
		}
		return QuadraticResult{Type: RootsLinear, Solutions: []float64{-c / b}}
	}

	disc := b*b - 4*a*c
	switch {
	case disc > 0:
		sq := math.Sqrt(disc)
		return QuadraticResult{
			Type:         RootsTwoReal,
			Solutions:    []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)},
			Discriminant: disc,
		}
	case disc == 0:
		return QuadraticResult{
			Type:         RootsOneReal,
			Solutions:    []float64{-b / (2 * a)},
			Discriminant: disc,
		}
	default:
		return QuadraticResult{
			Type:          RootsComplex,
			Discriminant:  disc,
			RealPart:      -b / (2 * a),
			ImaginaryPart: math.Sqrt(-disc) / (2 * a),
		}
	}
}

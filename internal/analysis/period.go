package analysis

import "math"

// Regime labels the long-run behavior of an orbit.
type Regime string

const (
	Periodic Regime = "periodic"
	Chaotic  Regime = "chaotic"
	Marginal Regime = "marginal"
)

// Classify maps a Lyapunov exponent to a regime. Estimates within tol
// of zero are reported as marginal rather than forced to a side.
// A -Inf exponent (superstable cycle) classifies as periodic.
func Classify(lambda, tol float64) Regime {
	switch {
	case lambda > tol:
		return Chaotic
	case lambda < -tol:
		return Periodic
	default:
		return Marginal
	}
}

// DetectPeriod finds the smallest period p <= maxPeriod under which the
// settled orbit window repeats within tol. Returns 0 when nothing fits,
// which in practice means chaos or a transient that has not died out.
//
// Candidates are scanned exhaustively rather than as powers of two so
// odd cycles (the period-3 window near r = 3.83) are found as well.
func DetectPeriod(window []float64, maxPeriod int, tol float64) int {
	if maxPeriod > len(window)/2 {
		maxPeriod = len(window) / 2
	}
	for p := 1; p <= maxPeriod; p++ {
		if repeats(window, p, tol) {
			return p
		}
	}
	return 0
}

func repeats(window []float64, p int, tol float64) bool {
	for i := 0; i+p < len(window); i++ {
		if math.Abs(window[i]-window[i+p]) > tol {
			return false
		}
	}
	return true
}

// CycleValues returns the p values visited by a settled period-p orbit,
// in visiting order.
func CycleValues(window []float64, p int) []float64 {
	if p <= 0 || len(window) < p {
		return nil
	}
	return append([]float64(nil), window[len(window)-p:]...)
}

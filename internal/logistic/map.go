package logistic

// Map applies one step of the logistic recurrence x' = r*x*(1-x).
// Arguments are not validated: x outside [0,1] or r outside (0,4] are
// mathematically fine and simply iterate a map that may diverge.
func Map(x, r float64) float64 {
	return r * x * (1 - x)
}

// Derivative evaluates f'(x) = r*(1-2x), the local stretch factor
// accumulated by Lyapunov estimates.
func Derivative(x, r float64) float64 {
	return r * (1 - 2*x)
}

// FixedPoint returns the nontrivial fixed point x* = 1 - 1/r.
// The origin is a fixed point for every r.
func FixedPoint(r float64) float64 {
	return 1 - 1/r
}

package logistic

import "math"

// Exponent estimates the Lyapunov exponent at a single parameter value
// by averaging log|f'(x)| along the orbit. The state is updated before
// each accumulation, so the arbitrary starting point is never counted.
//
// The derivative term is deliberately unguarded: an orbit landing
// exactly on x = 0.5 contributes log(0) = -Inf, which propagates
// through the average and flags a superstable cycle.
func Exponent(r, x0 float64, steps int) float64 {
	x := x0
	sum := 0.0
	for i := 0; i < steps; i++ {
		x = Map(x, r)
		sum += math.Log(math.Abs(Derivative(x, r)))
	}
	return sum / float64(steps)
}

// Spectrum pairs a parameter grid with per-parameter Lyapunov
// estimates. R and Lambda always have equal length.
type Spectrum struct {
	R      []float64
	Lambda []float64
}

// SpectrumSweep estimates Lyapunov exponents over an evenly spaced
// parameter grid.
type SpectrumSweep struct {
	RMin       float64
	RMax       float64
	Steps      int     // parameter grid size
	X0         float64 // shared initial state
	Iterations int     // accumulation steps per parameter
	Workers    int     // 0 means runtime.NumCPU(), 1 forces serial
}

// Run computes one exponent per grid point. Columns are independent,
// so the grid is chunked across workers with fixed result placement.
func (s SpectrumSweep) Run() (*Spectrum, error) {
	if s.Iterations <= 0 {
		return nil, ErrStepCount
	}
	grid, err := paramGrid(s.RMin, s.RMax, s.Steps)
	if err != nil {
		return nil, err
	}

	spec := &Spectrum{
		R:      grid,
		Lambda: make([]float64, len(grid)),
	}
	parallelFor(len(grid), s.Workers, func(start, end int) {
		for i := start; i < end; i++ {
			spec.Lambda[i] = Exponent(grid[i], s.X0, s.Iterations)
		}
	})
	return spec, nil
}

package logistic

import "gonum.org/v1/gonum/floats"

// Point is one (r, x) attractor sample from a parameter sweep.
type Point struct {
	R float64 `json:"r"`
	X float64 `json:"x"`
}

// paramGrid returns steps evenly spaced parameter values over
// [rMin, rMax], validating the sweep bounds.
func paramGrid(rMin, rMax float64, steps int) ([]float64, error) {
	if steps < 2 {
		return nil, ErrGridSize
	}
	if rMin >= rMax {
		return nil, ErrGridOrder
	}
	if rMin <= 0 || rMax > 4 {
		return nil, ErrParamRange
	}
	return floats.Span(make([]float64, steps), rMin, rMax), nil
}

// Ensemble advances one state per parameter value in lockstep. It is
// the elementwise analogue of iterating each parameter separately and
// lets a whole grid be burned in and sampled with two calls.
type Ensemble struct {
	R []float64
	X []float64
}

// NewEnsemble builds a grid of steps parameter values spaced evenly
// over [rMin, rMax], every state seeded with x0.
func NewEnsemble(rMin, rMax float64, steps int, x0 float64) (*Ensemble, error) {
	grid, err := paramGrid(rMin, rMax, steps)
	if err != nil {
		return nil, err
	}
	e := &Ensemble{
		R: grid,
		X: make([]float64, steps),
	}
	for i := range e.X {
		e.X[i] = x0
	}
	return e, nil
}

// Step advances every state by one map application.
func (e *Ensemble) Step() {
	for i, x := range e.X {
		e.X[i] = Map(x, e.R[i])
	}
}

// Burn advances the ensemble n steps, discarding the transient.
func (e *Ensemble) Burn(n int) {
	for i := 0; i < n; i++ {
		e.Step()
	}
}

// Collect advances the ensemble steps more times and records every
// (r, x) pair produced. The result holds exactly len(e.R)*steps points,
// grouped by sampling step.
func (e *Ensemble) Collect(steps int) []Point {
	out := make([]Point, 0, len(e.R)*steps)
	for s := 0; s < steps; s++ {
		e.Step()
		for i, x := range e.X {
			out = append(out, Point{R: e.R[i], X: x})
		}
	}
	return out
}

// Sweep describes a full attractor sampling pass: a parameter grid, a
// shared initial state, a discarded burn-in, and a sampling window.
type Sweep struct {
	RMin    float64
	RMax    float64
	Steps   int     // parameter grid size
	X0      float64 // shared initial state
	BurnIn  int     // transient steps discarded per parameter
	Samples int     // recorded steps per parameter
	Workers int     // 0 means runtime.NumCPU(), 1 forces serial
}

// Run executes the sweep and returns exactly Steps*Samples points,
// ordered by parameter and then by sampling step. Parameter columns
// are independent, so the grid is chunked across workers and every
// point lands at a fixed offset; results are identical at any worker
// count.
func (s Sweep) Run() ([]Point, error) {
	if s.BurnIn < 0 || s.Samples <= 0 {
		return nil, ErrStepCount
	}
	grid, err := paramGrid(s.RMin, s.RMax, s.Steps)
	if err != nil {
		return nil, err
	}

	out := make([]Point, len(grid)*s.Samples)
	parallelFor(len(grid), s.Workers, func(start, end int) {
		for i := start; i < end; i++ {
			r := grid[i]
			x := Advance(s.X0, r, s.BurnIn)
			for k := 0; k < s.Samples; k++ {
				x = Map(x, r)
				out[i*s.Samples+k] = Point{R: r, X: x}
			}
		}
	})
	return out, nil
}

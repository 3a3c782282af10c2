// Package logistic implements the logistic map recurrence and the
// iteration machinery built on top of it.
//
// The map is x' = r*x*(1-x) with control parameter r in (0, 4]:
//
//   - [Map]: one application of the recurrence
//   - [Iterate]: ordered trajectory from an initial state
//   - [Ensemble]: lockstep iteration over a whole parameter grid
//   - [Sweep]: burn-in plus attractor sampling for bifurcation diagrams
//   - [SpectrumSweep]: Lyapunov exponent estimates across a parameter grid
//
// # Example
//
//	orbit := logistic.Iterate(3.2, 0.2, 100)
//	lambda := logistic.Exponent(3.2, 0.2, 1000)
//
// # Thread Safety
//
// Ensemble instances are NOT thread-safe. Sweep and SpectrumSweep manage
// their own worker pools internally and produce identical results at any
// worker count.
package logistic

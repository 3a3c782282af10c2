// Package analysis characterizes logistic map behavior.
//
// The package includes tools for classifying orbits and locating the
// landmarks of the period-doubling route to chaos:
//
//   - [DetectPeriod]: cycle length of a settled orbit
//   - [Classify]: dynamical regime from a Lyapunov exponent
//   - [BifurcationPoints]: period-doubling onsets of the cascade
//   - [FeigenbaumDeltas]: onset gap ratios approaching delta
//   - [PowerSpectrum], [DominantPeriod]: spectral cross-checks
//   - [Summarize]: descriptive statistics for plot annotations
//
// # Chaos Detection
//
// A positive Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := logistic.Exponent(3.9, 0.5, 2000)
//	if analysis.Classify(lambda, 1e-3) == analysis.Chaotic {
//	    // sensitive dependence on initial conditions
//	}
package analysis

package analysis

import "github.com/san-kum/logmap/internal/logistic"

// FeigenbaumDelta is the universal constant the cascade gap ratios
// converge to.
const FeigenbaumDelta = 4.669201609102990

// Cascade landmarks annotated on bifurcation diagrams.
const (
	PeriodDoublingOnset = 3.0
	OnsetOfChaos        = 3.5699456
	PeriodThreeWindow   = 3.8284
)

const (
	cascadeBurn   = 50_000
	cascadeWindow = 256
	cascadeTol    = 1e-6
	maxDoublings  = 4
)

// BifurcationPoints locates the parameter values where the attractor
// period doubles (1 -> 2 at r = 3, then 2 -> 4, ...), up to n onsets.
// Each onset is bisected inside a bracket predicted from the geometric
// decay of cascade gaps. n is capped at 4: past that the gaps shrink
// below what settled-orbit period detection resolves.
func BifurcationPoints(n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n > maxDoublings {
		n = maxDoublings
	}

	points := make([]float64, 0, n)
	period := 1
	for k := 0; k < n; k++ {
		var lo, hi float64
		switch k {
		case 0:
			lo, hi = 2.8, 3.2
		case 1:
			lo, hi = points[0]+0.08, points[0]+0.50
		default:
			pred := (points[k-1] - points[k-2]) / FeigenbaumDelta
			lo, hi = points[k-1]+0.4*pred, points[k-1]+1.15*pred
		}
		points = append(points, bisectOnset(lo, hi, 2*period))
		period *= 2
	}
	return points
}

// FeigenbaumDeltas returns the ratios of consecutive onset gaps.
func FeigenbaumDeltas(points []float64) []float64 {
	if len(points) < 3 {
		return nil
	}
	deltas := make([]float64, 0, len(points)-2)
	for i := 2; i < len(points); i++ {
		prev := points[i-1] - points[i-2]
		cur := points[i] - points[i-1]
		if cur == 0 {
			continue
		}
		deltas = append(deltas, prev/cur)
	}
	return deltas
}

// bisectOnset shrinks a bracket known to contain the parameter where
// the settled period first reaches target.
func bisectOnset(lo, hi float64, target int) float64 {
	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		if settledPeriod(mid) >= target {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2
}

// settledPeriod burns in from the critical point x = 0.5, which lies in
// the basin of the attracting cycle for every r, then detects the
// period of the remaining window.
func settledPeriod(r float64) int {
	x := logistic.Advance(0.5, r, cascadeBurn)
	window := logistic.Iterate(r, x, cascadeWindow)
	return DetectPeriod(window, 64, cascadeTol)
}

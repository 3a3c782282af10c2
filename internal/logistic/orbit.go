package logistic

import "math"

// Orbit is an ordered trajectory of map iterates, index 0 holding the
// initial state.
type Orbit []float64

// Clone returns a copy of the orbit.
func (o Orbit) Clone() Orbit {
	c := make(Orbit, len(o))
	copy(c, o)
	return c
}

// Last returns the final iterate, or NaN for an empty orbit.
func (o Orbit) Last() float64 {
	if len(o) == 0 {
		return math.NaN()
	}
	return o[len(o)-1]
}

// Tail returns the final n iterates, or the whole orbit when n exceeds
// its length. The result aliases the orbit.
func (o Orbit) Tail(n int) Orbit {
	if n >= len(o) {
		return o
	}
	return o[len(o)-n:]
}

// Bounded reports whether every iterate lies inside [0, limit] and is
// not NaN.
func (o Orbit) Bounded(limit float64) bool {
	for _, x := range o {
		if x < 0 || x > limit || math.IsNaN(x) {
			return false
		}
	}
	return true
}

// Iterate produces the trajectory x0, f(x0), f(f(x0)), ... under
// repeated application of the map at parameter r. The result has
// length steps+1 and is bit-identical across calls with the same
// arguments.
func Iterate(r, x0 float64, steps int) Orbit {
	orbit := make(Orbit, steps+1)
	orbit[0] = x0
	x := x0
	for i := 1; i <= steps; i++ {
		x = Map(x, r)
		orbit[i] = x
	}
	return orbit
}

// Advance iterates without recording history and returns the final
// state. Used for burn-in where the transient is discarded.
func Advance(x, r float64, steps int) float64 {
	for i := 0; i < steps; i++ {
		x = Map(x, r)
	}
	return x
}

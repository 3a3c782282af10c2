package logistic

import (
	"math"
	"testing"
)

func TestIterateLength(t *testing.T) {
	tests := []struct {
		steps int
		want  int
	}{
		{0, 1},
		{1, 2},
		{100, 101},
	}
	for _, tt := range tests {
		orbit := Iterate(3.2, 0.2, tt.steps)
		if len(orbit) != tt.want {
			t.Errorf("Iterate steps=%d: length %d, want %d", tt.steps, len(orbit), tt.want)
		}
		if orbit[0] != 0.2 {
			t.Errorf("Iterate steps=%d: orbit[0] = %v, want initial state", tt.steps, orbit[0])
		}
	}
}

func TestIterateDeterminism(t *testing.T) {
	a := Iterate(3.9, 0.2, 500)
	b := Iterate(3.9, 0.2, 500)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("iterate not reproducible at step %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestIterateStaysInUnitInterval(t *testing.T) {
	for _, r := range []float64{0.5, 2.8, 3.5, 3.9, 4.0} {
		orbit := Iterate(r, 0.2, 1000)
		if !orbit.Bounded(1.0) {
			t.Errorf("r=%v: orbit left [0,1]", r)
		}
	}
}

func TestFixedPointConvergence(t *testing.T) {
	// At r=2.8 the fixed point 1-1/r attracts with |f'| = 0.8.
	orbit := Iterate(2.8, 0.2, 201)
	last, prev := orbit[201], orbit[200]
	if math.Abs(last-prev) >= 1e-6 {
		t.Errorf("still moving after 200 steps: |x201-x200| = %v", math.Abs(last-prev))
	}
	if want := FixedPoint(2.8); math.Abs(last-want) > 1e-4 {
		t.Errorf("settled at %v, want near fixed point %v", last, want)
	}
}

func TestTwoCycle(t *testing.T) {
	orbit := Iterate(3.2, 0.2, 400)
	a, b, c := orbit[398], orbit[399], orbit[400]
	if math.Abs(a-c) >= 1e-6 {
		t.Errorf("period 2 not reached: |x398-x400| = %v", math.Abs(a-c))
	}
	if math.Abs(a-b) <= 0.01 {
		t.Errorf("cycle collapsed to a fixed point: |x398-x399| = %v", math.Abs(a-b))
	}
}

func TestSensitiveDependence(t *testing.T) {
	// Chaotic regime: a 1e-9 perturbation must blow up past 0.1
	// within 50 iterations.
	a := Iterate(3.9, 0.2, 50)
	b := Iterate(3.9, 0.2+1e-9, 50)
	maxSep := 0.0
	for i := range a {
		if sep := math.Abs(a[i] - b[i]); sep > maxSep {
			maxSep = sep
		}
	}
	if maxSep <= 0.1 {
		t.Errorf("trajectories separated by only %v after 50 steps", maxSep)
	}
}

func TestAdvanceMatchesIterate(t *testing.T) {
	orbit := Iterate(3.7, 0.3, 250)
	if got := Advance(0.3, 3.7, 250); got != orbit.Last() {
		t.Errorf("Advance = %v, Iterate last = %v", got, orbit.Last())
	}
}

func TestOrbitTail(t *testing.T) {
	orbit := Iterate(3.2, 0.2, 10)
	tail := orbit.Tail(3)
	if len(tail) != 3 {
		t.Fatalf("tail length %d, want 3", len(tail))
	}
	if tail[2] != orbit[10] {
		t.Error("tail does not end at the final iterate")
	}
	if got := orbit.Tail(100); len(got) != len(orbit) {
		t.Errorf("oversized tail length %d, want whole orbit", len(got))
	}
}

func TestOrbitClone(t *testing.T) {
	orbit := Iterate(3.2, 0.2, 5)
	c := orbit.Clone()
	c[0] = -1
	if orbit[0] == -1 {
		t.Error("clone shares backing array")
	}
}

func TestOrbitLastEmpty(t *testing.T) {
	if !math.IsNaN(Orbit{}.Last()) {
		t.Error("empty orbit should report NaN")
	}
}

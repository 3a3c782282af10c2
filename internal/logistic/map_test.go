package logistic

import (
	"math"
	"testing"
)

func TestMapRange(t *testing.T) {
	params := []float64{0.5, 1.0, 2.8, 3.2, 3.57, 3.9, 4.0}
	for _, r := range params {
		for i := 0; i <= 1000; i++ {
			x := float64(i) / 1000
			y := Map(x, r)
			if y < 0 || y > r/4 {
				t.Fatalf("Map(%v, %v) = %v outside [0, r/4]", x, r, y)
			}
		}
	}
}

func TestMapPeak(t *testing.T) {
	for _, r := range []float64{1.0, 2.5, 3.7, 4.0} {
		if got := Map(0.5, r); math.Abs(got-r/4) > 1e-15 {
			t.Errorf("Map(0.5, %v) = %v, want %v", r, got, r/4)
		}
	}
}

func TestMapFixedPoints(t *testing.T) {
	for _, r := range []float64{1.5, 2.8, 3.2, 4.0} {
		if got := Map(0, r); got != 0 {
			t.Errorf("Map(0, %v) = %v, want 0", r, got)
		}
		p := FixedPoint(r)
		if got := Map(p, r); math.Abs(got-p) > 1e-12 {
			t.Errorf("Map(%v, %v) = %v, want the fixed point back", p, r, got)
		}
	}
}

func TestFixedPointValue(t *testing.T) {
	if got, want := FixedPoint(2.8), 1-1/2.8; math.Abs(got-want) > 1e-15 {
		t.Errorf("FixedPoint(2.8) = %v, want %v", got, want)
	}
}

func TestDerivative(t *testing.T) {
	tests := []struct {
		x, r, want float64
	}{
		{0.5, 3.2, 0},
		{0, 3.2, 3.2},
		{1, 3.2, -3.2},
		{0.25, 2.0, 1.0},
	}
	for _, tt := range tests {
		if got := Derivative(tt.x, tt.r); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("Derivative(%v, %v) = %v, want %v", tt.x, tt.r, got, tt.want)
		}
	}
}

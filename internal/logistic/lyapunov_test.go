package logistic

import (
	"errors"
	"math"
	"testing"
)

func TestExponentSigns(t *testing.T) {
	tests := []struct {
		name    string
		r       float64
		chaotic bool
	}{
		{"stable fixed point", 2.8, false},
		{"two cycle", 3.2, false},
		{"four cycle", 3.5, false},
		{"chaos", 3.9, true},
		{"full chaos", 4.0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lambda := Exponent(tt.r, 0.2, 2000)
			if tt.chaotic && lambda <= 0 {
				t.Errorf("r=%v: lambda = %v, want positive", tt.r, lambda)
			}
			if !tt.chaotic && lambda >= 0 {
				t.Errorf("r=%v: lambda = %v, want negative", tt.r, lambda)
			}
		})
	}
}

func TestExponentKnownValue(t *testing.T) {
	// At r=2.8 the orbit settles on the fixed point where
	// |f'| = |2-r| = 0.8, so lambda converges to ln(0.8).
	lambda := Exponent(2.8, 0.2, 5000)
	if want := math.Log(0.8); math.Abs(lambda-want) > 0.01 {
		t.Errorf("lambda = %v, want about %v", lambda, want)
	}
}

func TestExponentSuperstable(t *testing.T) {
	// At r=2 a dyadic start collapses exactly onto x=0.5 where the
	// derivative vanishes. log(0) = -Inf must pass through undamped.
	lambda := Exponent(2.0, 0.25, 50)
	if !math.IsInf(lambda, -1) {
		t.Errorf("lambda = %v, want -Inf on a superstable orbit", lambda)
	}
}

func TestExponentDeterminism(t *testing.T) {
	a := Exponent(3.9, 0.2, 1000)
	b := Exponent(3.9, 0.2, 1000)
	if a != b {
		t.Errorf("exponent not reproducible: %v != %v", a, b)
	}
}

func TestSpectrumSweep(t *testing.T) {
	sweep := SpectrumSweep{RMin: 2.5, RMax: 4.0, Steps: 151, X0: 0.5, Iterations: 1000, Workers: 1}
	spec, err := sweep.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(spec.R) != 151 || len(spec.Lambda) != 151 {
		t.Fatalf("grid sizes %d/%d, want 151", len(spec.R), len(spec.Lambda))
	}

	at := func(r float64) float64 {
		for i := range spec.R {
			if math.Abs(spec.R[i]-r) < 1e-9 {
				return spec.Lambda[i]
			}
		}
		t.Fatalf("r=%v not on the grid", r)
		return 0
	}
	if l := at(2.8); l >= 0 {
		t.Errorf("lambda(2.8) = %v, want negative", l)
	}
	if l := at(3.9); l <= 0 {
		t.Errorf("lambda(3.9) = %v, want positive", l)
	}
}

func TestSpectrumSweepDeterministicAcrossWorkers(t *testing.T) {
	sweep := SpectrumSweep{RMin: 2.5, RMax: 4.0, Steps: 64, X0: 0.5, Iterations: 500}

	sweep.Workers = 1
	serial, err := sweep.Run()
	if err != nil {
		t.Fatalf("serial run: %v", err)
	}
	sweep.Workers = 8
	parallel, err := sweep.Run()
	if err != nil {
		t.Fatalf("parallel run: %v", err)
	}
	for i := range serial.Lambda {
		if serial.Lambda[i] != parallel.Lambda[i] {
			t.Fatalf("lambda %d differs: %v vs %v", i, serial.Lambda[i], parallel.Lambda[i])
		}
	}
}

func TestSpectrumSweepValidation(t *testing.T) {
	_, err := SpectrumSweep{RMin: 2.5, RMax: 4.0, Steps: 10, Iterations: 0}.Run()
	if !errors.Is(err, ErrStepCount) {
		t.Errorf("got %v, want ErrStepCount", err)
	}
	_, err = SpectrumSweep{RMin: 0, RMax: 4.0, Steps: 10, Iterations: 100}.Run()
	if !errors.Is(err, ErrParamRange) {
		t.Errorf("got %v, want ErrParamRange", err)
	}
}

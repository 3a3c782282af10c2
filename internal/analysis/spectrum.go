package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/stat"
)

// FFT computes the discrete Fourier transform of a power-of-two length
// signal by recursive radix-2 decimation.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

// PowerSpectrum returns squared magnitudes for bins 0 through Nyquist,
// zero-padding the signal to the next power of two. The Nyquist bin is
// kept: a 2-cycle puts all of its energy there.
func PowerSpectrum(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	f := FFT(padded)
	ps := make([]float64, n/2+1)
	for i := range ps {
		m := cmplx.Abs(f[i])
		ps[i] = m * m
	}
	return ps
}

// DominantPeriod returns the repeat length of the strongest spectral
// line in a settled orbit window. The mean is removed first so the DC
// bin does not mask the cycle. Returns 0 when no oscillation stands
// out, which covers fixed points.
//
// This is a cross-check, not a period detector: a cycle whose energy
// concentrates in a subharmonic reports that subharmonic (a 4-cycle
// split into two tight bands reports the band alternation, 2).
func DominantPeriod(window []float64) int {
	if len(window) < 4 {
		return 0
	}
	mean := stat.Mean(window, nil)
	centered := make([]float64, len(window))
	for i, v := range window {
		centered[i] = v - mean
	}

	ps := PowerSpectrum(centered)
	peak := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if ps[peak] < 1e-12 {
		return 0
	}

	n := 1
	for n < len(window) {
		n *= 2
	}
	return int(math.Round(float64(n) / float64(peak)))
}

package analysis_test

import (
	"math"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/logmap/internal/analysis"
)

var _ = Describe("FFT", func() {
	It("transforms a pure cosine into a single line", func() {
		n := 64
		signal := make([]float64, n)
		for i := range signal {
			signal[i] = math.Cos(2 * math.Pi * 4 * float64(i) / float64(n))
		}
		f := analysis.FFT(signal)
		Expect(cmplx.Abs(f[4])).To(BeNumerically("~", float64(n)/2, 1e-9))
		for k := 1; k < n/2; k++ {
			if k == 4 {
				continue
			}
			Expect(cmplx.Abs(f[k])).To(BeNumerically("<", 1e-9))
		}
	})

	It("preserves the mean in the DC bin", func() {
		f := analysis.FFT([]float64{1, 1, 1, 1})
		Expect(cmplx.Abs(f[0])).To(BeNumerically("~", 4, 1e-12))
	})

	It("panics on a non power of two length", func() {
		Expect(func() { analysis.FFT(make([]float64, 6)) }).To(Panic())
	})
})

var _ = Describe("PowerSpectrum", func() {
	It("keeps the Nyquist bin", func() {
		ps := analysis.PowerSpectrum([]float64{1, -1, 1, -1, 1, -1, 1, -1})
		Expect(ps).To(HaveLen(5))
		Expect(ps[4]).To(BeNumerically(">", ps[1]))
	})

	It("pads to the next power of two", func() {
		ps := analysis.PowerSpectrum(make([]float64, 100))
		Expect(ps).To(HaveLen(65))
	})
})

var _ = Describe("DominantPeriod", func() {
	It("agrees with direct detection on a 2-cycle", func() {
		Expect(analysis.DominantPeriod(settled(3.2))).To(Equal(2))
	})

	It("finds the odd cycle in the period-3 window", func() {
		Expect(analysis.DominantPeriod(settled(3.83))).To(Equal(3))
	})

	It("reports no line for a flat orbit", func() {
		Expect(analysis.DominantPeriod(settled(2.8))).To(BeZero())
	})
})

var _ = Describe("Summarize", func() {
	It("computes the annotation statistics", func() {
		s := analysis.Summarize([]float64{0.2, 0.4, 0.6, 0.8})
		Expect(s.Mean).To(BeNumerically("~", 0.5, 1e-12))
		Expect(s.Min).To(Equal(0.2))
		Expect(s.Max).To(Equal(0.8))
		Expect(s.Std).To(BeNumerically(">", 0))
	})

	It("is zero for an empty orbit", func() {
		Expect(analysis.Summarize(nil)).To(Equal(analysis.Summary{}))
	})
})

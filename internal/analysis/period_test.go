package analysis_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/logmap/internal/analysis"
	"github.com/san-kum/logmap/internal/logistic"
)

// settled burns past the transient from the critical point and returns
// a window of the attractor.
func settled(r float64) logistic.Orbit {
	x := logistic.Advance(0.5, r, 20000)
	return logistic.Iterate(r, x, 256)
}

var _ = Describe("DetectPeriod", func() {
	It("finds the fixed point at r=2.8", func() {
		Expect(analysis.DetectPeriod(settled(2.8), 32, 1e-6)).To(Equal(1))
	})

	It("finds the 2-cycle at r=3.2", func() {
		Expect(analysis.DetectPeriod(settled(3.2), 32, 1e-6)).To(Equal(2))
	})

	It("finds the 4-cycle at r=3.5", func() {
		Expect(analysis.DetectPeriod(settled(3.5), 32, 1e-6)).To(Equal(4))
	})

	It("finds the 8-cycle at r=3.55", func() {
		Expect(analysis.DetectPeriod(settled(3.55), 32, 1e-6)).To(Equal(8))
	})

	It("finds the odd window at r=3.83", func() {
		Expect(analysis.DetectPeriod(settled(3.83), 32, 1e-6)).To(Equal(3))
	})

	It("reports nothing in the chaotic regime", func() {
		Expect(analysis.DetectPeriod(settled(3.9), 32, 1e-6)).To(BeZero())
	})

	It("reports nothing at the accumulation point", func() {
		Expect(analysis.DetectPeriod(settled(analysis.OnsetOfChaos), 32, 1e-6)).To(BeZero())
	})

	It("caps the candidate scan at half the window", func() {
		window := []float64{0.1, 0.2, 0.1, 0.2}
		Expect(analysis.DetectPeriod(window, 100, 1e-9)).To(Equal(2))
	})
})

var _ = Describe("CycleValues", func() {
	It("returns the distinct branch values in visiting order", func() {
		window := settled(3.2)
		values := analysis.CycleValues(window, 2)
		Expect(values).To(HaveLen(2))
		Expect(math.Abs(values[0] - values[1])).To(BeNumerically(">", 0.25))
	})

	It("is empty for a nonsense period", func() {
		Expect(analysis.CycleValues(settled(3.2), 0)).To(BeEmpty())
	})
})

var _ = Describe("Classify", func() {
	It("marks the periodic regime", func() {
		lambda := logistic.Exponent(2.8, 0.5, 2000)
		Expect(lambda).To(BeNumerically("<", 0))
		Expect(analysis.Classify(lambda, 1e-3)).To(Equal(analysis.Periodic))
	})

	It("marks the chaotic regime", func() {
		lambda := logistic.Exponent(3.9, 0.5, 2000)
		Expect(lambda).To(BeNumerically(">", 0))
		Expect(analysis.Classify(lambda, 1e-3)).To(Equal(analysis.Chaotic))
	})

	It("treats near-zero estimates as marginal", func() {
		Expect(analysis.Classify(5e-4, 1e-3)).To(Equal(analysis.Marginal))
		Expect(analysis.Classify(-5e-4, 1e-3)).To(Equal(analysis.Marginal))
	})

	It("classifies superstable -Inf as periodic", func() {
		Expect(analysis.Classify(math.Inf(-1), 1e-3)).To(Equal(analysis.Periodic))
	})
})

package analysis_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/logmap/internal/analysis"
)

var _ = Describe("BifurcationPoints", func() {
	It("locates the first onsets of the cascade", func() {
		points := analysis.BifurcationPoints(4)
		Expect(points).To(HaveLen(4))
		Expect(points[0]).To(BeNumerically("~", 3.0, 0.005))
		Expect(points[1]).To(BeNumerically("~", 3.4495, 0.01))
		Expect(points[2]).To(BeNumerically("~", 3.5441, 0.01))
		Expect(points[3]).To(BeNumerically("~", 3.5644, 0.005))
	})

	It("keeps the onsets strictly increasing", func() {
		points := analysis.BifurcationPoints(4)
		for i := 1; i < len(points); i++ {
			Expect(points[i]).To(BeNumerically(">", points[i-1]))
		}
	})

	It("caps the request at what detection resolves", func() {
		Expect(analysis.BifurcationPoints(20)).To(HaveLen(4))
	})

	It("is empty for a non-positive request", func() {
		Expect(analysis.BifurcationPoints(0)).To(BeEmpty())
	})
})

var _ = Describe("FeigenbaumDeltas", func() {
	It("yields gap ratios near delta", func() {
		deltas := analysis.FeigenbaumDeltas(analysis.BifurcationPoints(4))
		Expect(deltas).To(HaveLen(2))
		for _, d := range deltas {
			Expect(d).To(BeNumerically("~", analysis.FeigenbaumDelta, 0.6))
		}
	})

	It("needs at least three onsets", func() {
		Expect(analysis.FeigenbaumDeltas([]float64{3.0, 3.45})).To(BeEmpty())
	})
})

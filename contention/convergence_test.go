package contention

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func processorsWithAverage(avg float64, n int) []Processor {
	procs := make([]Processor, n)
	for i := range procs {
		procs[i].CumulativeAverage = avg
	}

	return procs
}

var _ = Describe("convergenceMonitor", func() {
	var m *convergenceMonitor

	BeforeEach(func() {
		m = &convergenceMonitor{
			warmUpCycles: 5,
			threshold:    DefaultConvergenceThreshold,
		}
	})

	It("should compute w_bar from the cumulative averages", func() {
		m.update(0, []Processor{
			{CumulativeAverage: 1},
			{CumulativeAverage: 3},
		})

		Expect(m.wBar).To(Equal(1.0))
	})

	It("should not converge during the warm-up", func() {
		for cycle := 0; cycle < 5; cycle++ {
			Expect(m.update(cycle, processorsWithAverage(1, 2))).To(BeFalse())
		}

		Expect(m.diff()).To(Equal(0.0))
		Expect(m.update(5, processorsWithAverage(1, 2))).To(BeTrue())
	})

	It("should converge when w_bar changes by less than the threshold", func() {
		m.update(10, processorsWithAverage(3, 2))

		Expect(m.update(11, processorsWithAverage(3.0001, 2))).To(BeTrue())
	})

	It("should not converge when w_bar changes by more than the threshold", func() {
		m.update(10, processorsWithAverage(3, 2))

		Expect(m.update(11, processorsWithAverage(3.1, 2))).To(BeFalse())
	})

	It("should not converge when w_bar drops to zero", func() {
		m.wBar = 0.5

		Expect(m.update(10, processorsWithAverage(1, 1))).To(BeFalse())
		Expect(m.diff()).To(Equal(0.5))
	})

	It("should converge when w_bar stays at zero", func() {
		m.wBar = 0.5
		m.update(10, processorsWithAverage(1, 1))

		Expect(m.update(11, processorsWithAverage(1, 1))).To(BeTrue())
	})

	It("should never converge on NaN", func() {
		m.update(10, processorsWithAverage(2, 1))

		Expect(m.update(11, processorsWithAverage(math.NaN(), 1))).To(BeFalse())
		Expect(m.update(12, processorsWithAverage(math.NaN(), 1))).To(BeFalse())
		Expect(m.update(13, processorsWithAverage(1, 1))).To(BeFalse())
	})

	It("should never converge on infinity", func() {
		m.update(10, processorsWithAverage(2, 1))

		Expect(m.update(11, processorsWithAverage(math.Inf(1), 1))).To(BeFalse())
		Expect(m.update(12, processorsWithAverage(math.Inf(1), 1))).To(BeFalse())
	})
})

package contention

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

func processorIDs(processors []Processor) []int {
	ids := make([]int, len(processors))
	for i, p := range processors {
		ids[i] = p.ID
	}

	return ids
}

var _ = Describe("Cycle resolution", func() {
	var (
		mockCtrl *gomock.Controller
		sampler  *MockSampler
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		sampler = NewMockSampler(mockCtrl)
		sampler.EXPECT().Seed().Return(int64(0)).AnyTimes()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	Context("with uniform requests", func() {
		var s *Simulation

		BeforeEach(func() {
			gomock.InOrder(
				sampler.EXPECT().UniformModuleIndex(2).Return(0),
				sampler.EXPECT().UniformModuleIndex(2).Return(0),
				sampler.EXPECT().UniformModuleIndex(2).Return(1),
			)

			var err error
			s, err = MakeBuilder().
				WithProcessors(3).
				WithModules(2).
				WithSampler(sampler).
				Build("sim")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should grant the first requester and move waiters to the front", func() {
			gomock.InOrder(
				sampler.EXPECT().UniformModuleIndex(2).Return(1),
				sampler.EXPECT().UniformModuleIndex(2).Return(0),
			)

			finished, err := s.Step()

			Expect(err).NotTo(HaveOccurred())
			Expect(finished).To(BeFalse())
			Expect(s.State()).To(Equal(StateRunning))
			Expect(s.Cycle()).To(Equal(1))
			Expect(processorIDs(s.Processors())).To(Equal([]int{1, 0, 2}))

			procs := s.Processors()
			Expect(procs[0]).To(Equal(Processor{ID: 1, PendingRequest: 0, WaitCount: 1}))
			Expect(procs[1]).To(Equal(Processor{
				ID: 0, PendingRequest: 1, GrantedCount: 1, CumulativeAverage: 1,
			}))
			Expect(procs[2]).To(Equal(Processor{
				ID: 2, PendingRequest: 0, GrantedCount: 1, CumulativeAverage: 1,
			}))

			Expect(s.Modules()).To(Equal([]MemoryModule{{true}, {true}}))
			Expect(s.WBar()).To(BeNumerically("~", -1.0/3, 1e-12))
		})

		It("should give the waiter priority in the next cycle", func() {
			gomock.InOrder(
				sampler.EXPECT().UniformModuleIndex(2).Return(1),
				sampler.EXPECT().UniformModuleIndex(2).Return(0),
				sampler.EXPECT().UniformModuleIndex(2).Return(1),
				sampler.EXPECT().UniformModuleIndex(2).Return(1),
			)

			_, err := s.Step()
			Expect(err).NotTo(HaveOccurred())
			_, err = s.Step()
			Expect(err).NotTo(HaveOccurred())

			Expect(processorIDs(s.Processors())).To(Equal([]int{2, 1, 0}))

			procs := s.Processors()
			Expect(procs[0].WaitCount).To(Equal(1))
			Expect(procs[0].CumulativeAverage).To(Equal(1.0))
			Expect(procs[1].WaitCount).To(Equal(1))
			Expect(procs[1].CumulativeAverage).To(Equal(2.0))
			Expect(procs[2].GrantedCount).To(Equal(2.0))
			Expect(procs[2].CumulativeAverage).To(Equal(1.0))
			Expect(s.WBar()).To(BeNumerically("~", 1.0/3, 1e-12))
		})
	})

	Context("with normal requests", func() {
		It("should sample around the previous request and fold into range", func() {
			sampler.EXPECT().UniformModuleIndex(6).Return(2)

			s, err := MakeBuilder().
				WithProcessors(1).
				WithModules(6).
				WithDistribution(DistributionNormal).
				WithSampler(sampler).
				Build("sim")
			Expect(err).NotTo(HaveOccurred())

			gomock.InOrder(
				sampler.EXPECT().NormalValue(2.0, 1.0).Return(-3.6),
				sampler.EXPECT().NormalValue(4.0, 1.0).Return(13.4),
				sampler.EXPECT().NormalValue(1.0, 1.0).Return(0.4),
			)

			_, err = s.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Processors()[0].PendingRequest).To(Equal(4))

			_, err = s.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Processors()[0].PendingRequest).To(Equal(1))

			_, err = s.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Processors()[0].PendingRequest).To(Equal(0))
		})
	})
})

type shortResolver struct{}

func (shortResolver) resolve(int) ([]Processor, []Processor, error) {
	return []Processor{{ID: 0}}, nil, nil
}

var _ = Describe("Invariant violation", func() {
	It("should detect groups that lose processors", func() {
		pop := newPopulation(3, 1)
		err := pop.checkPartition(7, []Processor{{ID: 0}}, []Processor{{ID: 1}})

		var violation *InvariantViolationError
		Expect(errors.As(err, &violation)).To(BeTrue())
		Expect(*violation).To(Equal(InvariantViolationError{
			Cycle: 7, Served: 1, Waited: 1, Processors: 3,
		}))
		Expect(err).To(MatchError(
			"simulation invariant violated: cycle 7 served 1 + waited 1 != 3 processors"))
	})

	It("should fail the simulation and report the violation", func() {
		s, err := MakeBuilder().WithProcessors(2).WithSeed(1).Build("broken")
		Expect(err).NotTo(HaveOccurred())
		s.resolver = shortResolver{}

		result, err := s.Run()

		Expect(errors.Is(err, ErrInvariantViolation)).To(BeTrue())
		Expect(result.State).To(Equal(StateFailed))
		Expect(s.State().Terminal()).To(BeTrue())

		finished, err := s.Step()
		Expect(finished).To(BeTrue())
		Expect(err).NotTo(HaveOccurred())
	})
})

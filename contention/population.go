package contention

import (
	"github.com/sarchlab/memcontention/sampling"
)

// Processor is one agent that requests memory modules.
type Processor struct {
	// ID identifies the processor independent of its position in the
	// priority order.
	ID int

	// PendingRequest is the index of the module the processor waits for.
	PendingRequest int

	// WaitCount is the total number of cycles the processor has been denied.
	// It is never reset.
	WaitCount int

	// GrantedCount is the number of cycles the processor has been served.
	GrantedCount float64

	// CumulativeAverage is (cycle+1)/GrantedCount at the latest grant, zero
	// before the first one.
	CumulativeAverage float64
}

// MemoryModule is a shared resource that serves one processor per cycle.
type MemoryModule struct {
	Occupied bool
}

// population holds the processors in priority order and the modules. The
// waited and served buffers are sized once and reused every cycle.
type population struct {
	processors []Processor
	modules    []MemoryModule

	waited []Processor
	served []Processor
}

func newPopulation(numProcessors, numModules int) *population {
	p := &population{
		processors: make([]Processor, numProcessors),
		modules:    make([]MemoryModule, numModules),
		waited:     make([]Processor, 0, numProcessors),
		served:     make([]Processor, 0, numProcessors),
	}

	for i := range p.processors {
		p.processors[i].ID = i
	}

	return p
}

// assignInitialRequests gives every processor a uniformly distributed first
// request, whatever distribution is used afterwards.
func (p *population) assignInitialRequests(sampler sampling.Sampler) {
	for i := range p.processors {
		p.processors[i].PendingRequest = sampler.UniformModuleIndex(len(p.modules))
	}
}

func (p *population) resetModules() {
	for i := range p.modules {
		p.modules[i].Occupied = false
	}
}

// checkPartition verifies that the two groups of a cycle account for every
// processor exactly once by count.
func (p *population) checkPartition(cycle int, waited, served []Processor) error {
	if len(waited)+len(served) != len(p.processors) {
		return &InvariantViolationError{
			Cycle:      cycle,
			Served:     len(served),
			Waited:     len(waited),
			Processors: len(p.processors),
		}
	}

	return nil
}

// reorder makes the processors that waited go first, followed by the ones
// that were served. Both groups keep their relative order.
func (p *population) reorder(cycle int, waited, served []Processor) error {
	if err := p.checkPartition(cycle, waited, served); err != nil {
		return err
	}

	n := copy(p.processors, waited)
	copy(p.processors[n:], served)

	return nil
}

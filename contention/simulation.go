package contention

import (
	"fmt"

	"github.com/sarchlab/memcontention/sampling"
	"github.com/sarchlab/memcontention/sim/hooking"
)

// Result is the outcome of a single simulation run.
type Result struct {
	ID           string
	Processors   int
	Modules      int
	Distribution Distribution
	Seed         int64
	Cycles       int
	WBar         float64
	State        State
}

// Snapshot is a copy of the observable state of a simulation.
type Snapshot struct {
	ID           string
	State        string
	Distribution string
	Cycle        int
	WBar         float64
	Processors   []Processor
	Modules      []MemoryModule
}

// Simulation runs one (processors, modules, distribution) trial. It is not
// safe for concurrent use; independent simulations share no state.
type Simulation struct {
	hooking.HookableBase

	id           string
	distribution Distribution
	sampler      sampling.Sampler
	maxCycles    int

	population *population
	resolver   resolver
	monitor    convergenceMonitor

	state State
	cycle int
}

// ID returns the name of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *Simulation) State() State {
	return s.state
}

// Cycle returns the number of cycles completed so far.
func (s *Simulation) Cycle() int {
	return s.cycle
}

// WBar returns the most recently computed w_bar.
func (s *Simulation) WBar() float64 {
	return s.monitor.wBar
}

// Processors returns the processors in their current priority order. The
// returned slice is owned by the simulation and changes on every step.
func (s *Simulation) Processors() []Processor {
	return s.population.processors
}

// Modules returns the memory modules.
func (s *Simulation) Modules() []MemoryModule {
	return s.population.modules
}

// Run steps the simulation until it converges or reaches the cycle limit.
func (s *Simulation) Run() (Result, error) {
	if s.state.Terminal() {
		panic("contention: simulation " + s.id + " has already finished")
	}

	for {
		finished, err := s.Step()
		if err != nil {
			return s.Result(), err
		}

		if finished {
			return s.Result(), nil
		}
	}
}

// Step resolves one cycle, reorders the processors and checks for
// convergence. It returns true once the simulation reaches a terminal state.
func (s *Simulation) Step() (bool, error) {
	switch s.state {
	case StateInit:
		s.state = StateRunning
	case StateRunning:
	default:
		return true, nil
	}

	waited, served, err := s.resolver.resolve(s.cycle)
	if err == nil {
		err = s.population.reorder(s.cycle, waited, served)
	}

	if err != nil {
		s.finish(StateFailed)
		return true, fmt.Errorf("simulation %s: %w", s.id, err)
	}

	converged := s.monitor.update(s.cycle, s.population.processors)
	s.traceCycleEnd(len(served), len(waited))
	s.cycle++

	switch {
	case converged:
		s.finish(StateConverged)
	case s.cycle >= s.maxCycles:
		s.finish(StateCycleLimitReached)
	default:
		return false, nil
	}

	return true, nil
}

// Result reports the current outcome.
func (s *Simulation) Result() Result {
	return Result{
		ID:           s.id,
		Processors:   len(s.population.processors),
		Modules:      len(s.population.modules),
		Distribution: s.distribution,
		Seed:         s.sampler.Seed(),
		Cycles:       s.cycle,
		WBar:         s.monitor.wBar,
		State:        s.state,
	}
}

// Snapshot copies the current state of the simulation.
func (s *Simulation) Snapshot() *Snapshot {
	snap := &Snapshot{
		ID:           s.id,
		State:        s.state.String(),
		Distribution: s.distribution.String(),
		Cycle:        s.cycle,
		WBar:         s.monitor.wBar,
		Processors:   make([]Processor, len(s.population.processors)),
		Modules:      make([]MemoryModule, len(s.population.modules)),
	}

	copy(snap.Processors, s.population.processors)
	copy(snap.Modules, s.population.modules)

	return snap
}

func (s *Simulation) finish(state State) {
	s.state = state

	if s.NumHooks() == 0 {
		return
	}

	s.InvokeHook(hooking.HookCtx{
		Domain: s,
		Pos:    hooking.HookPosRunEnd,
		Item: hooking.RunEnd{
			RunID:      s.id,
			Processors: len(s.population.processors),
			Modules:    len(s.population.modules),
			Cycles:     s.cycle,
			WBar:       s.monitor.wBar,
			State:      state.String(),
		},
	})
}

func (s *Simulation) traceCycleEnd(served, waited int) {
	if s.NumHooks() == 0 {
		return
	}

	s.InvokeHook(hooking.HookCtx{
		Domain: s,
		Pos:    hooking.HookPosCycleEnd,
		Item: hooking.CycleEnd{
			RunID:  s.id,
			Cycle:  s.cycle,
			Served: served,
			Waited: waited,
			WBar:   s.monitor.wBar,
		},
	})
}

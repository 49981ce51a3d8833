package contention

import (
	"log"
	"math"

	"github.com/sarchlab/memcontention/sim/hooking"
)

// A resolver grants or denies every pending request of one cycle and splits
// the processors into the ones that waited and the ones that were served.
type resolver interface {
	resolve(cycle int) (waited, served []Processor, err error)
}

type cycleResolver struct {
	*Simulation
}

func (r cycleResolver) resolve(cycle int) (waited, served []Processor, err error) {
	pop := r.population
	pop.resetModules()

	waited = pop.waited[:0]
	served = pop.served[:0]

	for i := range pop.processors {
		proc := &pop.processors[i]
		module := proc.PendingRequest
		mod := &pop.modules[module]

		if mod.Occupied {
			proc.WaitCount++
			waited = append(waited, *proc)
			r.traceAccess(hooking.HookPosWait, cycle, proc.ID, module)

			continue
		}

		mod.Occupied = true
		proc.PendingRequest = r.nextRequest(module)
		proc.GrantedCount++
		proc.CumulativeAverage = float64(cycle+1) / proc.GrantedCount
		served = append(served, *proc)
		r.traceAccess(hooking.HookPosGrant, cycle, proc.ID, module)
	}

	pop.waited = waited
	pop.served = served

	if err := pop.checkPartition(cycle, waited, served); err != nil {
		return nil, nil, err
	}

	return waited, served, nil
}

// nextRequest draws the module a just-served processor will ask for next.
func (r cycleResolver) nextRequest(prev int) int {
	numModules := len(r.population.modules)

	var next int

	switch r.distribution {
	case DistributionUniform:
		next = r.sampler.UniformModuleIndex(numModules)
	case DistributionNormal:
		x := r.sampler.NormalValue(float64(prev), float64(numModules)/6.0)
		next = int(math.Mod(math.Abs(math.Round(x)), float64(numModules)))
	default:
		log.Panicf("contention: unknown distribution %s", r.distribution)
	}

	if next < 0 || next >= numModules {
		log.Panicf("contention: request %d out of range [0, %d)",
			next, numModules)
	}

	return next
}

func (r cycleResolver) traceAccess(
	pos *hooking.HookPos,
	cycle, processorID, module int,
) {
	if r.NumHooks() == 0 {
		return
	}

	r.InvokeHook(hooking.HookCtx{
		Domain: r.Simulation,
		Pos:    pos,
		Item: hooking.Access{
			RunID:       r.id,
			Cycle:       cycle,
			ProcessorID: processorID,
			Module:      module,
		},
	})
}

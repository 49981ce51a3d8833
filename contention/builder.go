package contention

import (
	"time"

	"github.com/sarchlab/memcontention/sampling"
)

// Defaults used by MakeBuilder.
const (
	DefaultMaxCycles            = 1000000
	DefaultWarmUpCycles         = 5000
	DefaultConvergenceThreshold = 0.0001
	MaxModules                  = 2048
)

// Builder constructs Simulations.
type Builder struct {
	numProcessors int
	numModules    int
	distribution  Distribution

	sampler sampling.Sampler
	seed    int64
	seedSet bool

	maxCycles    int
	warmUpCycles int
	threshold    float64
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		numProcessors: 1,
		numModules:    1,
		distribution:  DistributionUniform,
		maxCycles:     DefaultMaxCycles,
		warmUpCycles:  DefaultWarmUpCycles,
		threshold:     DefaultConvergenceThreshold,
	}
}

// WithProcessors sets the number of processors.
func (b Builder) WithProcessors(n int) Builder {
	b.numProcessors = n
	return b
}

// WithModules sets the number of memory modules.
func (b Builder) WithModules(n int) Builder {
	b.numModules = n
	return b
}

// WithDistribution sets how served processors pick their next module.
func (b Builder) WithDistribution(d Distribution) Builder {
	b.distribution = d
	return b
}

// WithSampler sets the sampler. It takes precedence over WithSeed.
func (b Builder) WithSampler(s sampling.Sampler) Builder {
	b.sampler = s
	return b
}

// WithSeed seeds the default sampler. Without a seed, the sampler is seeded
// from the wall clock when the simulation is built.
func (b Builder) WithSeed(seed int64) Builder {
	b.seed = seed
	b.seedSet = true

	return b
}

// WithMaxCycles sets the cycle budget.
func (b Builder) WithMaxCycles(n int) Builder {
	b.maxCycles = n
	return b
}

// WithWarmUpCycles sets the number of cycles to run before convergence is
// checked.
func (b Builder) WithWarmUpCycles(n int) Builder {
	b.warmUpCycles = n
	return b
}

// WithConvergenceThreshold sets the relative w_bar change under which the
// simulation is considered converged.
func (b Builder) WithConvergenceThreshold(t float64) Builder {
	b.threshold = t
	return b
}

// Validate checks the parameters without building anything.
func (b Builder) Validate() error {
	switch {
	case b.numProcessors < 1:
		return &ConfigError{"processors", b.numProcessors, "must be at least 1"}
	case b.numModules < 1:
		return &ConfigError{"modules", b.numModules, "must be at least 1"}
	case !b.distribution.valid():
		return &ConfigError{"distribution", b.distribution.String(), "is unknown"}
	case b.maxCycles < 1:
		return &ConfigError{"max cycles", b.maxCycles, "must be at least 1"}
	case b.warmUpCycles < 0:
		return &ConfigError{"warm-up cycles", b.warmUpCycles, "must not be negative"}
	case !(b.threshold > 0):
		return &ConfigError{"convergence threshold", b.threshold, "must be positive"}
	}

	return nil
}

// Build creates the simulation and assigns every processor its first
// request.
func (b Builder) Build(name string) (*Simulation, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	sampler := b.sampler
	if sampler == nil {
		seed := b.seed
		if !b.seedSet {
			seed = time.Now().UnixNano()
		}

		sampler = sampling.NewPolarSampler(seed)
	}

	s := &Simulation{
		id:           name,
		distribution: b.distribution,
		sampler:      sampler,
		maxCycles:    b.maxCycles,
		population:   newPopulation(b.numProcessors, b.numModules),
		monitor: convergenceMonitor{
			warmUpCycles: b.warmUpCycles,
			threshold:    b.threshold,
		},
		state: StateInit,
	}
	s.resolver = cycleResolver{Simulation: s}

	s.population.assignInitialRequests(sampler)

	return s, nil
}

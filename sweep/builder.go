package sweep

import (
	"fmt"

	"github.com/sarchlab/memcontention/contention"
	"github.com/sarchlab/memcontention/monitoring"
	"github.com/sarchlab/memcontention/sampling"
	"github.com/sarchlab/memcontention/sim/hooking"
	"github.com/sarchlab/memcontention/sim/id"
)

// Builder can be used to build a sweep.
type Builder struct {
	numProcessors int
	distribution  contention.Distribution
	minModules    int
	maxModules    int
	parallelism   int
	maxCycles     int
	warmUpCycles  int
	seed          int64
	seedSet       bool
	hooks         []hooking.Hook
	progress      *monitoring.ProgressBar
}

// MakeBuilder creates a builder that sweeps from 1 to contention.MaxModules
// modules, one run at a time.
func MakeBuilder() Builder {
	return Builder{
		numProcessors: 1,
		distribution:  contention.DistributionUniform,
		minModules:    1,
		maxModules:    contention.MaxModules,
		parallelism:   1,
		maxCycles:     contention.DefaultMaxCycles,
		warmUpCycles:  contention.DefaultWarmUpCycles,
	}
}

// WithProcessors sets the number of processors of every run.
func (b Builder) WithProcessors(n int) Builder {
	b.numProcessors = n
	return b
}

// WithDistribution sets the request distribution of every run.
func (b Builder) WithDistribution(d contention.Distribution) Builder {
	b.distribution = d
	return b
}

// WithModuleRange sets the inclusive range of module counts.
func (b Builder) WithModuleRange(minModules, maxModules int) Builder {
	b.minModules = minModules
	b.maxModules = maxModules

	return b
}

// WithParallelism sets how many runs may execute at the same time.
func (b Builder) WithParallelism(n int) Builder {
	b.parallelism = n
	return b
}

// WithMaxCycles sets the cycle budget of every run.
func (b Builder) WithMaxCycles(n int) Builder {
	b.maxCycles = n
	return b
}

// WithWarmUpCycles sets the number of cycles every run completes before
// checking for convergence.
func (b Builder) WithWarmUpCycles(n int) Builder {
	b.warmUpCycles = n
	return b
}

// WithSeed makes the sweep reproducible. Every run receives its own seed
// derived from the root seed.
func (b Builder) WithSeed(seed int64) Builder {
	b.seed = seed
	b.seedSet = true

	return b
}

// WithHook attaches a hook to every run. The hook must be safe for concurrent
// use when the parallelism is larger than one.
func (b Builder) WithHook(h hooking.Hook) Builder {
	b.hooks = append(b.hooks[:len(b.hooks):len(b.hooks)], h)
	return b
}

// WithProgressBar tracks the runs on the given progress bar.
func (b Builder) WithProgressBar(p *monitoring.ProgressBar) Builder {
	b.progress = p
	return b
}

// Build validates the parameters and creates the sweep.
func (b Builder) Build() (*Sweep, error) {
	switch {
	case b.minModules < 1:
		return nil, &contention.ConfigError{
			Field: "min modules", Value: b.minModules, Reason: "must be at least 1"}
	case b.maxModules < b.minModules:
		return nil, &contention.ConfigError{
			Field: "max modules", Value: b.maxModules, Reason: "must not be below min modules"}
	case b.maxModules > contention.MaxModules:
		return nil, &contention.ConfigError{
			Field: "max modules", Value: b.maxModules, Reason: fmt.Sprintf("must not exceed %d", contention.MaxModules)}
	case b.parallelism < 1:
		return nil, &contention.ConfigError{
			Field: "parallelism", Value: b.parallelism, Reason: "must be at least 1"}
	}

	template := contention.MakeBuilder().
		WithProcessors(b.numProcessors).
		WithDistribution(b.distribution).
		WithMaxCycles(b.maxCycles).
		WithWarmUpCycles(b.warmUpCycles)

	if err := template.WithModules(b.minModules).Validate(); err != nil {
		return nil, err
	}

	seeds := sampling.NewTimeSeedSource()
	if b.seedSet {
		seeds = sampling.NewSeedSource(b.seed)
	}

	idGenerator := id.NewIDGenerator("run-")
	if b.parallelism > 1 {
		idGenerator = id.NewParallelIDGenerator("run-")
	}

	if b.progress != nil {
		b.progress.Total = uint64(b.maxModules - b.minModules + 1)
	}

	return &Sweep{
		template:    template,
		minModules:  b.minModules,
		maxModules:  b.maxModules,
		parallelism: b.parallelism,
		seeds:       seeds,
		hooks:       b.hooks,
		progress:    b.progress,
		idGenerator: idGenerator,
	}, nil
}

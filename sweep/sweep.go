// Package sweep runs one contention simulation per module count and reports
// the results in ascending module order.
package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/sarchlab/memcontention/contention"
	"github.com/sarchlab/memcontention/monitoring"
	"github.com/sarchlab/memcontention/sampling"
	"github.com/sarchlab/memcontention/sim/hooking"
	"github.com/sarchlab/memcontention/sim/id"
	"golang.org/x/sync/errgroup"
)

// EmitFunc receives the results of a sweep, one module count at a time and in
// ascending order. Returning an error stops the sweep.
type EmitFunc func(result contention.Result) error

// Sweep runs independent simulations over a range of module counts.
type Sweep struct {
	template    contention.Builder
	minModules  int
	maxModules  int
	parallelism int
	seeds       *sampling.SeedSource
	hooks       []hooking.Hook
	progress    *monitoring.ProgressBar
	idGenerator id.IDGenerator
}

// NumRuns returns the number of simulations the sweep performs.
func (s *Sweep) NumRuns() int {
	return s.maxModules - s.minModules + 1
}

// Seeds returns the source that seeds every run.
func (s *Sweep) Seeds() *sampling.SeedSource {
	return s.seeds
}

type job struct {
	index      int
	numModules int
	seed       int64
	name       string
}

// Run executes the sweep. Runs are independent and may execute in parallel,
// but every run's seed is drawn before any run starts, so the results do not
// depend on scheduling.
func (s *Sweep) Run(ctx context.Context, emit EmitFunc) error {
	jobs := s.plan()
	ordered := &orderedEmitter{
		emit:    emit,
		results: make([]*contention.Result, len(jobs)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := s.runOne(j)
			if err != nil {
				return err
			}

			return ordered.add(j.index, result)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

// RunAll executes the sweep and collects every result.
func (s *Sweep) RunAll(ctx context.Context) ([]contention.Result, error) {
	results := make([]contention.Result, 0, s.NumRuns())

	err := s.Run(ctx, func(r contention.Result) error {
		results = append(results, r)
		return nil
	})

	return results, err
}

func (s *Sweep) plan() []job {
	jobs := make([]job, 0, s.NumRuns())

	for m := s.minModules; m <= s.maxModules; m++ {
		jobs = append(jobs, job{
			index:      m - s.minModules,
			numModules: m,
			seed:       s.seeds.Next(),
			name:       s.idGenerator.Generate(),
		})
	}

	return jobs
}

func (s *Sweep) runOne(j job) (contention.Result, error) {
	if s.progress != nil {
		s.progress.IncrementInProgress(1)
		defer s.progress.MoveInProgressToFinished(1)
	}

	sim, err := s.template.
		WithModules(j.numModules).
		WithSeed(j.seed).
		Build(j.name)
	if err != nil {
		return contention.Result{}, fmt.Errorf("sweep: modules=%d: %w", j.numModules, err)
	}

	for _, h := range s.hooks {
		sim.AcceptHook(h)
	}

	result, err := sim.Run()
	if err != nil {
		return result, fmt.Errorf("sweep: modules=%d: %w", j.numModules, err)
	}

	return result, nil
}

// orderedEmitter holds back results until every smaller module count has
// been emitted.
type orderedEmitter struct {
	lock    sync.Mutex
	emit    EmitFunc
	results []*contention.Result
	next    int
	err     error
}

func (e *orderedEmitter) add(index int, result contention.Result) error {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.err != nil {
		return e.err
	}

	e.results[index] = &result

	for e.next < len(e.results) && e.results[e.next] != nil {
		if err := e.emit(*e.results[e.next]); err != nil {
			e.err = err
			return err
		}

		e.results[e.next] = nil
		e.next++
	}

	return nil
}

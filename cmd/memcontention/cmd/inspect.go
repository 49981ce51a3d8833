package cmd

import (
	"fmt"
	"time"

	"github.com/sarchlab/memcontention/contention"
	"github.com/sarchlab/memcontention/monitoring"
	"github.com/sarchlab/memcontention/sim/hooking"
	"github.com/spf13/cobra"
)

type inspectOptions struct {
	numModules int
	seed       int64
	maxCycles  int
	depth      int
}

func newInspectCmd() *cobra.Command {
	opts := &inspectOptions{}

	inspectCmd := &cobra.Command{
		Use:   "inspect <processors> <distribution>",
		Short: "Run a single simulation and print its final state as JSON.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	flags := inspectCmd.Flags()
	flags.IntVarP(&opts.numModules, "modules", "m", 1,
		"Number of memory modules.")
	flags.Int64Var(&opts.seed, "seed", 0,
		"Seed of the simulation. A time-based seed is used if not set.")
	flags.IntVar(&opts.maxCycles, "max-cycles", contention.DefaultMaxCycles,
		"Cycle budget of the simulation.")
	flags.IntVar(&opts.depth, "depth", 4,
		"Maximum nesting depth of the printed state.")

	return inspectCmd
}

func runInspect(cmd *cobra.Command, args []string, opts *inspectOptions) error {
	numProcessors, d, err := parseProcessorsAndDistribution(args)
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if cmd.Flags().Changed("seed") {
		seed = opts.seed
	}

	s, err := contention.MakeBuilder().
		WithProcessors(numProcessors).
		WithModules(opts.numModules).
		WithDistribution(d).
		WithSeed(seed).
		WithMaxCycles(opts.maxCycles).
		Build(fmt.Sprintf("inspect-p%d-m%d", numProcessors, opts.numModules))
	if err != nil {
		return err
	}

	utilization := hooking.NewModuleUtilizationTracer(opts.numModules)
	grants := hooking.NewGrantCountTracer()
	s.AcceptHook(utilization)
	s.AcceptHook(grants)

	if _, err := s.Run(); err != nil {
		return err
	}

	report := &inspection{
		Simulation:      s.Snapshot(),
		MeanUtilization: utilization.MeanUtilization(),
	}

	for m := 0; m < opts.numModules; m++ {
		report.ModuleUtilization = append(report.ModuleUtilization,
			utilization.Utilization(m))
	}

	for _, id := range grants.ProcessorIDs() {
		report.Grants = append(report.Grants, grants.GrantCount(id))
		report.Waits = append(report.Waits, grants.WaitCount(id))
	}

	return monitoring.DumpState(cmd.OutOrStdout(), report, opts.depth)
}

// inspection is what the inspect command prints. Grants and Waits are
// indexed by processor ID.
type inspection struct {
	Simulation        *contention.Snapshot
	MeanUtilization   float64
	ModuleUtilization []float64
	Grants            []uint64
	Waits             []uint64
}

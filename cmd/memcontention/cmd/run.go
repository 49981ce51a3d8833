package cmd

import (
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/sarchlab/memcontention/contention"
	"github.com/sarchlab/memcontention/monitoring"
	"github.com/sarchlab/memcontention/sim/hooking"
	"github.com/sarchlab/memcontention/sweep"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

type sweepOptions struct {
	minModules  int
	maxModules  int
	seed        int64
	parallelism int
	maxCycles   int
	logInterval int
	verbose     bool
}

func (o *sweepOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&o.minModules, "min-modules", 1,
		"Smallest number of memory modules to simulate.")
	flags.IntVar(&o.maxModules, "max-modules", contention.MaxModules,
		"Largest number of memory modules to simulate.")
	flags.Int64Var(&o.seed, "seed", 0,
		"Root seed of the sweep. A time-based seed is used if not set.")
	flags.IntVar(&o.parallelism, "parallel", 1,
		"Number of module counts to simulate at the same time.")
	flags.IntVar(&o.maxCycles, "max-cycles", contention.DefaultMaxCycles,
		"Cycle budget of every simulation.")
	flags.IntVar(&o.logInterval, "log-interval", 0,
		"Log every N cycles of every run when verbose. 0 logs run summaries only.")
	flags.BoolVarP(&o.verbose, "verbose", "v", false,
		"Print module counts and log progress to stderr.")
}

func newRunCmd() *cobra.Command {
	opts := &sweepOptions{}

	runCmd := &cobra.Command{
		Use:   "run <processors> <distribution>",
		Short: "Sweep over module counts and print w_bar for each.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, args, opts)
		},
	}

	opts.bind(runCmd)

	return runCmd
}

func runSweep(cmd *cobra.Command, args []string, opts *sweepOptions) error {
	numProcessors, d, err := parseProcessorsAndDistribution(args)
	if err != nil {
		return err
	}

	b := sweep.MakeBuilder().
		WithProcessors(numProcessors).
		WithDistribution(d).
		WithModuleRange(opts.minModules, opts.maxModules).
		WithParallelism(opts.parallelism).
		WithMaxCycles(opts.maxCycles)

	if cmd.Flags().Changed("seed") {
		b = b.WithSeed(opts.seed)
	}

	var (
		logger *log.Logger
		bar    *monitoring.ProgressBar
	)

	if opts.verbose {
		logger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
		bar = monitoring.NewProgressBar("sweep", "sweep", 0)
		b = b.WithHook(hooking.NewCycleLogger(logger, opts.logInterval)).
			WithProgressBar(bar)

		registerResourceReport(logger)
	}

	s, err := b.Build()
	if err != nil {
		return err
	}

	if logger != nil {
		logger.Printf("sweeping %d module counts with %d processors, "+
			"%s distribution, root seed %d",
			s.NumRuns(), numProcessors, d, s.Seeds().Root())
	}

	out := cmd.OutOrStdout()

	return s.Run(cmd.Context(), func(r contention.Result) error {
		if opts.verbose {
			_, err := fmt.Fprintf(out, "%d %.4f\n", r.Modules, r.WBar)
			if r.State == contention.StateCycleLimitReached {
				color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(),
					"modules=%d did not converge within %d cycles\n",
					r.Modules, r.Cycles)
			}

			logger.Print(bar.String())

			return err
		}

		_, err := fmt.Fprintf(out, "%.4f\n", r.WBar)

		return err
	})
}

func registerResourceReport(logger *log.Logger) {
	reporter, err := monitoring.NewResourceReporter(logger)
	if err != nil {
		logger.Printf("resource reporting disabled: %v", err)
		return
	}

	atexit.Register(reporter.Report)
}

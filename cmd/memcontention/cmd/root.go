// Package cmd provides the command-line interface of memcontention.
package cmd

import (
	"errors"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/sarchlab/memcontention/contention"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// Exit statuses.
const (
	ExitOK                 = 0
	ExitInvalidInput       = 1
	ExitInvariantViolation = 2
)

// newRootCmd creates the base command. Called with two arguments it behaves
// like the run subcommand.
func newRootCmd() *cobra.Command {
	opts := &sweepOptions{}

	rootCmd := &cobra.Command{
		Use:   "memcontention <processors> <distribution>",
		Short: "Simulate processors contending for shared memory modules.",
		Long: `memcontention simulates a fixed number of processors ` +
			`competing for shared memory modules and prints the converged ` +
			`w_bar for every module count from 1 to 2048. The distribution ` +
			`is "u" or "uniform" for uniform requests and anything else, ` +
			`including "U", for normal requests.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, args, opts)
		},
	}

	opts.bind(rootCmd)

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newInspectCmd())

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		atexit.Exit(exitCode(err))
	}

	atexit.Exit(ExitOK)
}

func exitCode(err error) int {
	if errors.Is(err, contention.ErrInvariantViolation) {
		return ExitInvariantViolation
	}

	return ExitInvalidInput
}

func parseProcessorsAndDistribution(
	args []string,
) (int, contention.Distribution, error) {
	numProcessors, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, &contention.ConfigError{
			Field:  "processors",
			Value:  args[0],
			Reason: "must be an integer",
		}
	}

	if numProcessors < 1 {
		return 0, 0, &contention.ConfigError{
			Field:  "processors",
			Value:  numProcessors,
			Reason: "must be at least 1",
		}
	}

	d, err := contention.ParseDistribution(args[1])
	if err != nil {
		return 0, 0, err
	}

	return numProcessors, d, nil
}

package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/sarchlab/memcontention/contention"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func execute(args ...string) (string, string, error) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

var _ = Describe("memcontention", func() {
	It("should print one w_bar per module count", func() {
		stdout, _, err := execute("1", "u", "--max-modules", "3", "--seed", "1")

		Expect(err).NotTo(HaveOccurred())
		Expect(stdout).To(Equal("0.0000\n0.0000\n0.0000\n"))
	})

	It("should print module counts and log when verbose", func() {
		stdout, stderr, err := execute("run", "1", "n",
			"--min-modules", "3", "--max-modules", "4", "--seed", "2", "-v")

		Expect(err).NotTo(HaveOccurred())
		Expect(stdout).To(Equal("3 0.0000\n4 0.0000\n"))
		Expect(stderr).To(ContainSubstring("sweeping 2 module counts"))
		Expect(stderr).To(ContainSubstring("finished Converged"))
	})

	It("should run in parallel", func() {
		stdout, _, err := execute("run", "2", "u",
			"--max-modules", "4", "--seed", "5", "--parallel", "2",
			"--max-cycles", "100")

		Expect(err).NotTo(HaveOccurred())
		Expect(bytes.Count([]byte(stdout), []byte("\n"))).To(Equal(4))
	})

	DescribeTable("should reject invalid input",
		func(args ...string) {
			_, _, err := execute(args...)

			Expect(err).To(HaveOccurred())
			Expect(exitCode(err)).To(Equal(ExitInvalidInput))
		},
		Entry("zero processors", "0", "u"),
		Entry("non-numeric processors", "abc", "u"),
		Entry("empty distribution", "4", ""),
		Entry("too many modules", "4", "u", "--max-modules", "5000"),
		Entry("missing arguments", "4"),
	)

	It("should report invalid configuration errors", func() {
		_, _, err := execute("0", "u")

		Expect(errors.Is(err, contention.ErrInvalidConfig)).To(BeTrue())
	})

	It("should use a distinct status for invariant violations", func() {
		err := fmt.Errorf("run: %w", &contention.InvariantViolationError{})

		Expect(exitCode(err)).To(Equal(ExitInvariantViolation))
	})

	It("should print the state of a single run", func() {
		stdout, _, err := execute("inspect", "2", "u",
			"-m", "2", "--seed", "3", "--max-cycles", "10")

		Expect(err).NotTo(HaveOccurred())
		Expect(stdout).NotTo(BeEmpty())
	})
})

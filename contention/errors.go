package contention

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when a simulation is configured with
	// values outside their allowed range.
	ErrInvalidConfig = errors.New("invalid simulation configuration")

	// ErrInvariantViolation is returned when the waited and served groups of
	// a cycle do not add up to the processor count. It indicates a bug, not a
	// recoverable condition.
	ErrInvariantViolation = errors.New("simulation invariant violated")
)

// ConfigError describes a rejected configuration value.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s = %#v: %s",
		ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidConfig).
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// InvariantViolationError reports a cycle whose groups lost or duplicated
// processors.
type InvariantViolationError struct {
	Cycle      int
	Served     int
	Waited     int
	Processors int
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf(
		"%s: cycle %d served %d + waited %d != %d processors",
		ErrInvariantViolation, e.Cycle, e.Served, e.Waited, e.Processors)
}

// Unwrap allows errors.Is(err, ErrInvariantViolation).
func (e *InvariantViolationError) Unwrap() error {
	return ErrInvariantViolation
}

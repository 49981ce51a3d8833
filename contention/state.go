package contention

// State is the lifecycle state of a Simulation.
type State int

// The states a Simulation moves through. A simulation starts in StateInit,
// runs in StateRunning and ends in one of the terminal states.
const (
	StateInit State = iota
	StateRunning
	StateConverged
	StateCycleLimitReached
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateRunning:
		return "Running"
	case StateConverged:
		return "Converged"
	case StateCycleLimitReached:
		return "CycleLimitReached"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Terminal returns true if the simulation can no longer make progress.
func (s State) Terminal() bool {
	return s == StateConverged || s == StateCycleLimitReached || s == StateFailed
}

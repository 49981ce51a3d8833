package hooking

// A list of hook poses a contention simulation triggers.
var (
	HookPosGrant    = &HookPos{Name: "HookPosGrant"}
	HookPosWait     = &HookPos{Name: "HookPosWait"}
	HookPosCycleEnd = &HookPos{Name: "HookPosCycleEnd"}
	HookPosRunEnd   = &HookPos{Name: "HookPosRunEnd"}
)

// Access is passed to the hook when a processor is granted or denied a
// module.
type Access struct {
	RunID       string
	Cycle       int
	ProcessorID int
	Module      int
}

// CycleEnd is passed to the hook after a cycle has been resolved and the
// processors have been reordered.
type CycleEnd struct {
	RunID  string
	Cycle  int
	Served int
	Waited int
	WBar   float64
}

// RunEnd is passed to the hook when a run reaches a terminal state.
type RunEnd struct {
	RunID      string
	Processors int
	Modules    int
	Cycles     int
	WBar       float64
	State      string
}

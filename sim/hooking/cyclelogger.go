package hooking

import (
	"log"
)

// LogHookBase provides the common logic for all hooks that write to a logger.
type LogHookBase struct {
	*log.Logger
}

// CycleLogger prints a line every Interval cycles and a summary when a run
// ends.
type CycleLogger struct {
	LogHookBase
	Interval int
}

// NewCycleLogger creates a CycleLogger that writes to the given logger. An
// interval of zero only logs run summaries.
func NewCycleLogger(logger *log.Logger, interval int) *CycleLogger {
	return &CycleLogger{
		LogHookBase: LogHookBase{Logger: logger},
		Interval:    interval,
	}
}

// Func writes the log line.
func (h *CycleLogger) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosCycleEnd:
		e := ctx.Item.(CycleEnd)
		if h.Interval <= 0 || (e.Cycle+1)%h.Interval != 0 {
			return
		}

		h.Printf("%s cycle=%d served=%d waited=%d w_bar=%.6f",
			e.RunID, e.Cycle, e.Served, e.Waited, e.WBar)
	case HookPosRunEnd:
		e := ctx.Item.(RunEnd)
		h.Printf("%s p=%d m=%d finished %s after %d cycles, w_bar=%.4f",
			e.RunID, e.Processors, e.Modules, e.State, e.Cycles, e.WBar)
	}
}

package hooking

// ModuleUtilizationTracer records how many cycles each module spends serving
// a processor.
type ModuleUtilizationTracer struct {
	busyCycles []uint64
	cycles     int
}

// NewModuleUtilizationTracer creates a tracer for the given number of
// modules.
func NewModuleUtilizationTracer(numModules int) *ModuleUtilizationTracer {
	return &ModuleUtilizationTracer{
		busyCycles: make([]uint64, numModules),
	}
}

// Func records grants and cycle ends.
func (t *ModuleUtilizationTracer) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosGrant:
		a := ctx.Item.(Access)
		t.busyCycles[a.Module]++
	case HookPosCycleEnd:
		t.cycles++
	}
}

// BusyCycles returns the number of cycles a module has been occupied.
func (t *ModuleUtilizationTracer) BusyCycles(module int) uint64 {
	return t.busyCycles[module]
}

// Cycles returns the number of cycles observed.
func (t *ModuleUtilizationTracer) Cycles() int {
	return t.cycles
}

// Utilization returns the fraction of observed cycles a module was occupied.
func (t *ModuleUtilizationTracer) Utilization(module int) float64 {
	if t.cycles == 0 {
		return 0
	}

	return float64(t.busyCycles[module]) / float64(t.cycles)
}

// MeanUtilization returns the utilization averaged over all modules.
func (t *ModuleUtilizationTracer) MeanUtilization() float64 {
	if t.cycles == 0 || len(t.busyCycles) == 0 {
		return 0
	}

	var total uint64
	for _, b := range t.busyCycles {
		total += b
	}

	return float64(total) / float64(t.cycles) / float64(len(t.busyCycles))
}

package contention

import "math"

// convergenceMonitor tracks w_bar across cycles and decides when it has
// settled.
type convergenceMonitor struct {
	warmUpCycles int
	threshold    float64

	wBar     float64
	prevWBar float64
}

// update recomputes w_bar from the processors and reports whether the run has
// converged. Convergence is never reported before the warm-up has passed.
func (m *convergenceMonitor) update(cycle int, processors []Processor) bool {
	sum := 0.0
	for i := range processors {
		sum += processors[i].CumulativeAverage
	}

	m.prevWBar = m.wBar
	m.wBar = sum/float64(len(processors)) - 1

	if cycle < m.warmUpCycles {
		return false
	}

	return m.diff() < m.threshold
}

// diff is the relative change of w_bar since the previous cycle. When w_bar
// is zero the ratio is undefined and the absolute change is used instead, so
// a run that stays at zero converges and a drop to zero does not. NaN never
// compares below the threshold.
func (m *convergenceMonitor) diff() float64 {
	if m.wBar == 0 {
		return math.Abs(m.prevWBar)
	}

	return math.Abs(1 - m.prevWBar/m.wBar)
}

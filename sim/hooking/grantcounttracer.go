package hooking

import (
	"sort"
	"sync"
)

// GrantCountTracer counts how many times each processor is granted and denied
// a module.
type GrantCountTracer struct {
	lock sync.Mutex

	seen         map[int]bool
	processorIDs []int
	grants       map[int]uint64
	waits        map[int]uint64
}

// NewGrantCountTracer creates a new GrantCountTracer.
func NewGrantCountTracer() *GrantCountTracer {
	t := &GrantCountTracer{
		seen:   make(map[int]bool),
		grants: make(map[int]uint64),
		waits:  make(map[int]uint64),
	}

	return t
}

// Func counts the access carried by the hook context.
func (t *GrantCountTracer) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosGrant:
		t.count(ctx.Item.(Access), t.grants)
	case HookPosWait:
		t.count(ctx.Item.(Access), t.waits)
	}
}

func (t *GrantCountTracer) count(a Access, counter map[int]uint64) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if !t.seen[a.ProcessorID] {
		t.seen[a.ProcessorID] = true
		t.processorIDs = append(t.processorIDs, a.ProcessorID)
	}

	counter[a.ProcessorID]++
}

// ProcessorIDs returns the IDs of all processors seen, in ascending order.
func (t *GrantCountTracer) ProcessorIDs() []int {
	t.lock.Lock()
	defer t.lock.Unlock()

	ids := make([]int, len(t.processorIDs))
	copy(ids, t.processorIDs)
	sort.Ints(ids)

	return ids
}

// GrantCount returns the number of grants recorded for a processor.
func (t *GrantCountTracer) GrantCount(processorID int) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.grants[processorID]
}

// WaitCount returns the number of denied cycles recorded for a processor.
func (t *GrantCountTracer) WaitCount(processorID int) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.waits[processorID]
}

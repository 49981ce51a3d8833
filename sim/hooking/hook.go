// Package hooking lets observers attach to a running contention simulation.
//
// A Hookable domain, such as a simulation, calls every registered Hook at
// well-known positions. The item passed along depends on the position, see
// events.go.
package hooking

// HookPos names a position at which hooks are triggered.
type HookPos struct {
	Name string
}

// HookCtx carries what a hook needs to know about where it was triggered.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
}

// Hookable is implemented by everything hooks can be attached to.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(hook Hook)

	// NumHooks returns the number of hooks registered.
	NumHooks() int

	// Hooks returns all the hooks registered.
	Hooks() []Hook
}

// Hook is invoked by a Hookable domain.
type Hook interface {
	Func(ctx HookCtx)
}

// HookableBase implements Hookable. Embed it to make a type hookable.
type HookableBase struct {
	hookList []Hook
}

// NumHooks returns the number of hooks registered.
func (h *HookableBase) NumHooks() int {
	return len(h.hookList)
}

// Hooks returns all the hooks registered.
func (h *HookableBase) Hooks() []Hook {
	return h.hookList
}

// AcceptHook registers a hook. Registering the same hook twice panics.
func (h *HookableBase) AcceptHook(hook Hook) {
	for _, existing := range h.hookList {
		if existing == hook {
			panic("hooking: hook registered twice")
		}
	}

	h.hookList = append(h.hookList, hook)
}

// InvokeHook calls the registered hooks in registration order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hookList {
		hook.Func(ctx)
	}
}

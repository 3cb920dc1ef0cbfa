// Package spec is an in-process spec harness for Ebitengine games.
//
// Specs are plain functions registered before the run starts. The harness
// executes them one per frame tick against a live scene tree, isolates
// failures per spec, prints a colored pass/fail tally and stops the game
// loop when the queue is exhausted.
//
// The engine's game loop has no suspension point inside Update, so a spec
// cannot block waiting for an animation or a timer. Instead a spec calls
// T.Wait, which ends the current invocation and schedules the same spec to
// run again from the top after the given delay. The spec reads T.Iteration
// to recover its progress across those replays.
package spec

// Routine is a spec body. It runs against the handle passed in and signals
// failure by panicking, normally through the T assertion helpers.
type Routine func(t *T)

// Registry holds the ordered spec queue and the optional focused override.
// Registration order is execution order. Duplicate routines are allowed and
// run independently. The registry is append-only within a process lifetime.
type Registry struct {
	routines []Routine
	focused  Routine
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		routines: make([]Routine, 0),
	}
}

// Register appends a routine to the queue.
func (r *Registry) Register(routine Routine) {
	r.routines = append(r.routines, routine)
}

// Focus sets the focused override. When set, it is the only spec executed
// and the run stops after its first completed attempt. A later call replaces
// an earlier one.
func (r *Registry) Focus(routine Routine) {
	r.focused = routine
}

// Focused returns the focused override, or nil.
func (r *Registry) Focused() Routine {
	return r.focused
}

// ClearFocus removes the focused override.
func (r *Registry) ClearFocus() {
	r.focused = nil
}

// Lookup returns the routine at the given ordinal. The second return value
// is false when the index is past the end of the queue, which is the
// run-exhausted signal.
func (r *Registry) Lookup(index int) (Routine, bool) {
	if index < 0 || index >= len(r.routines) {
		return nil, false
	}
	return r.routines[index], true
}

// Len returns the number of registered routines.
func (r *Registry) Len() int {
	return len(r.routines)
}

// defaultRegistry backs the package-level registration surface. Spec files
// register themselves from init functions, then the runner picks the
// registry up via Default.
var defaultRegistry = NewRegistry()

// Register appends a routine to the default registry.
func Register(routine Routine) {
	defaultRegistry.Register(routine)
}

// Focus sets the focused override on the default registry.
func Focus(routine Routine) {
	defaultRegistry.Focus(routine)
}

// Default returns the package-level registry.
func Default() *Registry {
	return defaultRegistry
}

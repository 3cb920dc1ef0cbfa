package spec

// State tracks scheduler progress for a run. It is owned by the Scheduler
// and passed by reference into the T handle; there is no ambient singleton.
//
// iteration, wantsReplay and delay are reset at test boundaries only, never
// between replays of the same spec, so a replaying spec observes a
// monotonically increasing iteration value.
type State struct {
	index       int     // ordinal of the next spec in the registry
	iteration   int     // replay counter for the spec currently executing
	wantsReplay bool    // set by the running spec to request re-invocation
	delay       float64 // seconds that must elapse before the next invocation
}

// Index returns the ordinal of the next spec to run.
func (s *State) Index() int {
	return s.index
}

// Iteration returns the replay counter for the current spec.
func (s *State) Iteration() int {
	return s.iteration
}

// Delay returns the seconds to wait before the next invocation.
func (s *State) Delay() float64 {
	return s.delay
}

// WantsReplay reports whether the current spec requested a replay.
func (s *State) WantsReplay() bool {
	return s.wantsReplay
}

// requestReplay records a replay request with the given delay.
func (s *State) requestReplay(delaySeconds float64) {
	s.wantsReplay = true
	s.delay = delaySeconds
}

// resetBoundary resets the per-spec fields at a test boundary.
func (s *State) resetBoundary() {
	s.iteration = 0
	s.delay = 0
	s.wantsReplay = false
}

package spec

import (
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/zurustar/ebispec/pkg/logger"
	"github.com/zurustar/ebispec/pkg/scene"
)

// invocation outcome of a single spec attempt.
type outcome int

const (
	outcomePass outcome = iota
	outcomeReplay
	outcomeFail
)

// Scheduler owns a run: the registry, the per-spec progress state, the
// pass/fail tally and the cleanup between specs. It is driven from the game
// loop thread only; Advance is never called concurrently.
type Scheduler struct {
	registry *Registry
	state    State
	summary  Summary
	reporter *Reporter
	root     *scene.Node
	log      *slog.Logger

	// startOnce guards the one-time run setup. Single-threaded in practice;
	// the Once is an initialization formality.
	startOnce sync.Once
	done      bool
}

// NewScheduler creates a scheduler for the given registry. Specs run against
// root, and progress is written through reporter.
func NewScheduler(registry *Registry, root *scene.Node, reporter *Reporter) *Scheduler {
	return &Scheduler{
		registry: registry,
		reporter: reporter,
		root:     root,
		log:      logger.Get(),
	}
}

// Start performs the one-time run setup. Drivers call it before the first
// frame; later calls are no-ops.
func (s *Scheduler) Start() {
	s.startOnce.Do(func() {
		s.reporter.Begin()
		s.log.Debug("spec run started", "registered", s.registry.Len(), "focused", s.registry.Focused() != nil)
	})
}

// Done reports whether the run has finished and printed its summary.
func (s *Scheduler) Done() bool {
	return s.done
}

// Summary returns the tally accumulated so far.
func (s *Scheduler) Summary() Summary {
	return s.summary
}

// Delay returns the seconds of frame time that must elapse before the next
// invocation fires.
func (s *Scheduler) Delay() float64 {
	return s.state.delay
}

// State returns the scheduler progress state.
func (s *Scheduler) State() *State {
	return &s.state
}

// Advance runs one spec attempt. It selects the active routine (the focused
// override wins over the queue ordinal), invokes it inside the recovery
// boundary and then either schedules a replay of the same spec, or records
// the result, advances the ordinal and cleans up for the next spec. When no
// routine remains the run finishes.
func (s *Scheduler) Advance() {
	if s.done {
		return
	}

	focused := s.registry.Focused()
	routine := focused
	if routine == nil {
		var ok bool
		routine, ok = s.registry.Lookup(s.state.index)
		if !ok {
			s.finish()
			return
		}
	}

	switch s.invoke(routine) {
	case outcomeReplay:
		// Same spec again on the next qualifying frame; the ordinal does not
		// advance and the iteration counter keeps growing.
		s.state.wantsReplay = false
		s.state.iteration++
		return
	case outcomePass:
		s.summary.Passes++
		s.reporter.Pass()
	case outcomeFail:
		// A failing spec is never replayed, even if it requested a replay
		// earlier in the same invocation.
		s.summary.Failures++
		s.reporter.Fail()
	}

	s.state.index++
	s.cleanup()

	if focused != nil {
		// Focused mode is single-shot: one completed attempt ends the run.
		s.finish()
	}
}

// invoke runs one spec body inside the recovery boundary. A replayToken
// unwind becomes outcomeReplay; any other panic is a spec failure and is
// reported with a filtered stack trace. Nothing propagates to the caller.
func (s *Scheduler) invoke(routine Routine) (out outcome) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(replayToken); ok {
			out = outcomeReplay
			return
		}
		s.reporter.Failure(r, debug.Stack())
		out = outcomeFail
	}()

	routine(&T{root: s.root, state: &s.state})

	if s.state.wantsReplay {
		return outcomeReplay
	}
	return outcomePass
}

// cleanup resets per-spec state at a test boundary. Replays of the same spec
// never reach here.
func (s *Scheduler) cleanup() {
	s.state.resetBoundary()
	s.registry.ClearFocus()
	s.root.RemoveAllChildren()
}

// finish prints the summary once and marks the run complete. The driver is
// responsible for turning the completed run into a game-loop termination.
func (s *Scheduler) finish() {
	if s.done {
		return
	}
	s.done = true
	s.reporter.Summary(s.summary)
	s.log.Debug("spec run finished", "passes", s.summary.Passes, "failures", s.summary.Failures)
}

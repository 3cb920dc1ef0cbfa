package spec

import (
	"fmt"
	"math"

	"github.com/zurustar/ebispec/pkg/scene"
)

// replayToken is the panic value used by Wait to unwind out of a spec body.
// The scheduler's recovery boundary absorbs it and schedules a replay
// instead of recording a failure.
type replayToken struct{}

// failure is the panic value produced by the assertion helpers.
type failure struct {
	msg string
}

func (f failure) String() string {
	return f.msg
}

// T is the handle passed to every spec routine. It exposes the scene root
// the spec runs against and the replay/assertion surface.
type T struct {
	root  *scene.Node
	state *State
}

// Root returns the root scene node. Objects a spec creates should be
// attached under it; they are removed at the next test boundary.
func (t *T) Root() *scene.Node {
	return t.root
}

// Iteration returns how many times the current spec has been replayed.
// The first invocation observes 0, the invocation after the first Wait
// observes 1, and so on. The counter resets when the next spec begins.
func (t *T) Iteration() int {
	return t.state.iteration
}

// Wait ends the current invocation and schedules the same spec to run again
// from the top once delaySeconds of frame time have elapsed. Code after the
// call does not execute in this invocation; the spec is expected to branch
// on Iteration when it runs again.
func (t *T) Wait(delaySeconds float64) {
	t.state.requestReplay(delaySeconds)
	panic(replayToken{})
}

// Failf fails the spec immediately with a formatted message.
func (t *T) Failf(format string, args ...any) {
	panic(failure{msg: fmt.Sprintf(format, args...)})
}

// ApproxEq fails the spec unless |a - b| <= epsilon.
func (t *T) ApproxEq(a, b, epsilon float64) {
	if math.Abs(a-b) > epsilon {
		t.Failf("assertion failed: |%v - %v| <= %v", a, b, epsilon)
	}
}

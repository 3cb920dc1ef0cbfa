// Command ebispec-demo runs a small example suite against the harness.
// It doubles as a smoke test: run it with --headless in CI.
package main

import (
	"fmt"
	"os"

	"github.com/zurustar/ebispec/pkg/app"
	"github.com/zurustar/ebispec/pkg/scene"
	"github.com/zurustar/ebispec/pkg/spec"
)

// arithmeticSpec checks the tolerance assertion on plain values.
func arithmeticSpec(t *spec.T) {
	t.ApproxEq(0.1+0.2, 0.3, 1e-9)
}

// sceneChildrenSpec attaches a few nodes and checks the tree shape.
func sceneChildrenSpec(t *spec.T) {
	for i := 0; i < 3; i++ {
		t.Root().AddChild(scene.NewNode(fmt.Sprintf("box-%d", i), nil))
	}
	t.ApproxEq(float64(t.Root().ChildCount()), 3, 0)
	if t.Root().Child("box-1") == nil {
		t.Failf("box-1 not found under root")
	}
}

// movingNodeSpec simulates an animation across frames. Each invocation runs
// from the top; the iteration counter tells the spec where it left off.
func movingNodeSpec(t *spec.T) {
	const (
		stepX  = 8.0
		frames = 10
	)

	if t.Iteration() == 0 {
		mover := scene.NewNode("mover", nil)
		mover.SetPosition(0, 100)
		t.Root().AddChild(mover)
		t.Wait(0.02)
	}

	mover := t.Root().Child("mover")
	if mover == nil {
		t.Failf("mover disappeared between frames")
	}

	if t.Iteration() <= frames {
		x, y := mover.Position()
		mover.SetPosition(x+stepX, y)
		t.Wait(0.02)
	}

	x, _ := mover.Position()
	t.ApproxEq(x, stepX*frames, 0.001)
}

// delayedCheckSpec waits a longer interval once, then verifies the scene was
// untouched while it waited.
func delayedCheckSpec(t *spec.T) {
	if t.Iteration() == 0 {
		t.Root().AddChild(scene.NewNode("marker", nil))
		t.Wait(0.25)
	}
	if t.Root().Child("marker") == nil {
		t.Failf("marker did not survive the wait")
	}
	t.ApproxEq(float64(t.Iteration()), 1, 0)
}

func main() {
	spec.Register(arithmeticSpec)
	spec.Register(sceneChildrenSpec)
	spec.Register(movingNodeSpec)
	spec.Register(delayedCheckSpec)

	application := app.New(spec.Default())
	sum, err := application.Run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if sum.Failures > 0 {
		os.Exit(1)
	}
}

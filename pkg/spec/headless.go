package spec

import (
	"fmt"
	"time"
)

// DefaultFrameStep is the simulated frame duration used by the headless
// runner, matching the 60 TPS game loop.
const DefaultFrameStep = 1.0 / 60

// RunHeadless drives the scheduler to completion without a display, feeding
// the driver a fixed simulated frame step. Suites that wait on frame time
// complete almost immediately because the simulated clock runs as fast as
// the loop does.
//
// A positive timeout bounds the wall-clock duration of the run; it is the
// only protection against a spec that requests replays forever.
func RunHeadless(sched *Scheduler, step float64, timeout time.Duration) error {
	if step <= 0 {
		step = DefaultFrameStep
	}

	sched.Start()

	start := time.Now()
	driver := NewDriver(sched)
	for !sched.Done() {
		if timeout > 0 && time.Since(start) >= timeout {
			return fmt.Errorf("spec run timed out after %v", timeout)
		}
		driver.OnFrame(step)
	}
	return nil
}

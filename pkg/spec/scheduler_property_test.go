package spec

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/zurustar/ebispec/pkg/scene"
)

// drainScheduler advances the scheduler until the run completes, bounded by
// a frame budget so a broken scheduler fails the property instead of hanging.
func drainScheduler(sched *Scheduler, maxFrames int) bool {
	driver := NewDriver(sched)
	for i := 0; i < maxFrames; i++ {
		if sched.Done() {
			return true
		}
		driver.OnFrame(DefaultFrameStep)
	}
	return sched.Done()
}

func TestPropertyReplayInvocationCount(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("a spec replaying K times runs K+1 times and passes once", prop.ForAll(
		func(k int) bool {
			reg := NewRegistry()
			var iterations []int
			reg.Register(func(st *T) {
				iterations = append(iterations, st.Iteration())
				if st.Iteration() < k {
					st.Wait(0)
				}
			})

			root := scene.NewNode("root", nil)
			sched := NewScheduler(reg, root, NewReporter(&bytes.Buffer{}, false))
			if !drainScheduler(sched, k*2+50) {
				return false
			}

			if len(iterations) != k+1 {
				return false
			}
			for i, it := range iterations {
				if it != i {
					return false
				}
			}
			sum := sched.Summary()
			return sum.Passes == 1 && sum.Failures == 0
		},
		gen.IntRange(0, 30),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestPropertyTallyMatchesRegisteredCount(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("passes+failures equals the number of spec slots", prop.ForAll(
		func(outcomes []bool) bool {
			reg := NewRegistry()
			wantFailures := 0
			for _, pass := range outcomes {
				pass := pass
				if !pass {
					wantFailures++
				}
				reg.Register(func(st *T) {
					if !pass {
						st.Failf("planned failure")
					}
				})
			}

			root := scene.NewNode("root", nil)
			sched := NewScheduler(reg, root, NewReporter(&bytes.Buffer{}, false))
			if !drainScheduler(sched, len(outcomes)+50) {
				return false
			}

			sum := sched.Summary()
			return sum.Total() == len(outcomes) && sum.Failures == wantFailures
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("summary line always reports total and failures", prop.ForAll(
		func(passes, failures int) bool {
			var buf bytes.Buffer
			r := NewReporter(&buf, false)
			r.Summary(Summary{Passes: passes, Failures: failures})
			want := fmt.Sprintf("%d examples, %d failures", passes+failures, failures)
			return strings.Contains(buf.String(), want)
		},
		gen.IntRange(0, 499),
		gen.IntRange(0, 499),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestPropertyCleanupLeavesNoResidue(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("every spec starts with a clean root and iteration 0", prop.ForAll(
		func(childCounts []int) bool {
			reg := NewRegistry()
			clean := true
			for _, count := range childCounts {
				count := count
				reg.Register(func(st *T) {
					if st.Iteration() == 0 && (st.Root().ChildCount() != 0) {
						clean = false
					}
					for i := 0; i < count; i++ {
						st.Root().AddChild(scene.NewNode(fmt.Sprintf("n%d", i), nil))
					}
					if st.Iteration() < 2 {
						st.Wait(0)
					}
				})
			}

			root := scene.NewNode("root", nil)
			sched := NewScheduler(reg, root, NewReporter(&bytes.Buffer{}, false))
			if !drainScheduler(sched, len(childCounts)*5+50) {
				return false
			}

			return clean && root.ChildCount() == 0
		},
		gen.SliceOfN(5, gen.IntRange(0, 8)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

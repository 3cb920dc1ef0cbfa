package spec

// Driver is the per-frame entry point. It accumulates elapsed frame time and
// asks the scheduler to advance once the pending delay has been satisfied.
// This is the only place real time enters the harness; the scheduler itself
// only reads and writes the delay value.
type Driver struct {
	sched   *Scheduler
	elapsed float64
}

// NewDriver creates a driver for the scheduler.
func NewDriver(sched *Scheduler) *Driver {
	return &Driver{sched: sched}
}

// OnFrame is called once per game tick with the seconds elapsed since the
// previous tick. At most one spec invocation happens per satisfied delay
// window.
func (d *Driver) OnFrame(delta float64) {
	if d.sched.Done() {
		return
	}

	d.elapsed += delta
	if d.elapsed > d.sched.Delay() {
		d.elapsed = 0
		d.sched.Advance()
	}
}

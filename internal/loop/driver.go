// Package loop drives a per-frame step from a display refresh scheduler,
// throttled to a fixed frame-rate ceiling.
package loop

import "time"

// MinFrameInterval is the shortest gap between two accepted ticks (~30 FPS).
const MinFrameInterval = 33 * time.Millisecond

type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Driver reschedules itself on every refresh while Running. It is meant to
// be used from the goroutine that flushes its Scheduler.
type Driver struct {
	sched Scheduler
	step  func(now time.Duration)
	ready func() bool

	state    State
	handle   Handle
	last     time.Duration
	accepted uint64
	skipped  uint64
}

// NewDriver builds a stopped driver. ready reports whether the target
// surface is usable; a nil ready always is.
func NewDriver(sched Scheduler, step func(now time.Duration), ready func() bool) *Driver {
	if ready == nil {
		ready = func() bool { return true }
	}
	return &Driver{sched: sched, step: step, ready: ready}
}

// Start moves the driver to Running. Starting a running driver does nothing.
func (d *Driver) Start() {
	if d.state == Running {
		return
	}
	d.state = Running
	d.handle = d.sched.RequestFrame(d.tick)
}

// Stop cancels the outstanding tick. A tick already executing completes.
func (d *Driver) Stop() {
	if d.handle != 0 {
		d.sched.CancelFrame(d.handle)
		d.handle = 0
	}
	d.state = Stopped
}

func (d *Driver) State() State { return d.state }

// Accepted is the number of ticks that ran the step.
func (d *Driver) Accepted() uint64 { return d.accepted }

// Skipped is the number of ticks rejected by the frame-rate ceiling.
func (d *Driver) Skipped() uint64 { return d.skipped }

func (d *Driver) tick(now time.Duration) {
	d.handle = 0
	if d.state != Running {
		return
	}
	if !d.ready() {
		d.state = Stopped
		return
	}

	if now-d.last < MinFrameInterval {
		d.skipped++
		d.reschedule()
		return
	}
	d.last = now
	d.accepted++
	d.step(now)
	d.reschedule()
}

func (d *Driver) reschedule() {
	// The step may have torn the driver down.
	if d.state != Running {
		return
	}
	d.handle = d.sched.RequestFrame(d.tick)
}

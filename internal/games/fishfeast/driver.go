package fishfeast

import (
	"time"

	"github.com/vovakirdan/fishfeast/internal/core"
)

// Driver runs a session on a frame scheduler.
//
// Every frame it samples the intent once, steps the session with the
// clamped frame delta and reports the result. While paused it keeps
// requesting frames without stepping so a resume is picked up on the next
// frame. Once the run is over it stops requesting, which ends the loop.
type Driver struct {
	session *Session
	sched   core.Scheduler
	clock   core.FrameClock

	intent  func() core.Intent
	onFrame func(StepResult)

	pending bool
}

// NewDriver binds a session to a scheduler. intent is sampled once per
// frame; onFrame, if non-nil, receives every step result.
func NewDriver(session *Session, sched core.Scheduler, intent func() core.Intent, onFrame func(StepResult)) *Driver {
	if intent == nil {
		intent = func() core.Intent { return core.Intent{} }
	}
	return &Driver{
		session: session,
		sched:   sched,
		intent:  intent,
		onFrame: onFrame,
	}
}

// Start begins a new run and schedules the first frame.
func (d *Driver) Start() {
	d.session.Start()
	d.clock.Reset()
	d.request()
}

// Restart begins a new run after game over.
func (d *Driver) Restart() {
	d.session.Restart()
	d.clock.Reset()
	d.request()
}

// TogglePause pauses or resumes the session. The frame loop keeps running
// while paused. The clock is reset on resume so the pause is not simulated.
func (d *Driver) TogglePause() {
	d.session.TogglePause()
	if d.session.Phase() == PhaseRunning {
		d.clock.Reset()
	}
	d.request()
}

// Active reports whether a frame callback is outstanding.
func (d *Driver) Active() bool {
	return d.pending
}

// request schedules the next frame unless one is already outstanding.
func (d *Driver) request() {
	if d.pending {
		return
	}
	switch d.session.Phase() {
	case PhaseRunning, PhasePaused:
	default:
		return
	}
	d.pending = true
	d.sched.RequestFrame(d.frame)
}

func (d *Driver) frame(ts time.Duration) {
	d.pending = false

	switch d.session.Phase() {
	case PhasePaused:
		d.request()
		return
	case PhaseRunning:
	default:
		return
	}

	dt := d.clock.Delta(ts)
	res := d.session.Step(dt, d.intent())
	if d.onFrame != nil {
		d.onFrame(res)
	}
	d.request()
}

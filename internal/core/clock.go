package core

import "time"

// MaxFrameDelta bounds the simulated time of a single frame in seconds.
// Large gaps (e.g. after the terminal was suspended) are clamped to it.
const MaxFrameDelta = 0.033

// Scheduler delivers frame callbacks, the way a display-refresh loop does.
// Each RequestFrame yields at most one callback. Timestamps passed to
// callbacks increase monotonically. Not requesting is how a loop stops.
type Scheduler interface {
	RequestFrame(cb func(ts time.Duration))
}

// FrameClock turns monotonically increasing frame timestamps into clamped
// deltas. The first frame after Reset has a delta of zero.
type FrameClock struct {
	last    time.Duration
	started bool
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.last = 0
	c.started = false
}

// Delta returns the seconds elapsed since the previous call, clamped to
// [0, MaxFrameDelta].
func (c *FrameClock) Delta(ts time.Duration) float64 {
	if !c.started {
		c.started = true
		c.last = ts
		return 0
	}
	dt := (ts - c.last).Seconds()
	c.last = ts
	return ClampF(dt, 0, MaxFrameDelta)
}

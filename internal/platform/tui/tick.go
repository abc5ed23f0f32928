// Package tui provides the Bubble Tea front-end for Fish Feast.
// It maps keys and mouse drags to steering, drives the game from terminal
// ticks, and renders the screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameScheduler turns terminal ticks into frame callbacks.
// It holds at most one requested callback; a tick with nothing requested
// is dropped, which is how the tick loop winds down.
type frameScheduler struct {
	pending func(time.Duration)
	origin  time.Time
}

// RequestFrame stores cb for the next tick.
func (f *frameScheduler) RequestFrame(cb func(ts time.Duration)) {
	f.pending = cb
}

// Waiting reports whether a callback is queued.
func (f *frameScheduler) Waiting() bool {
	return f.pending != nil
}

// Fire runs the queued callback with the time since the first tick.
func (f *frameScheduler) Fire(t time.Time) bool {
	cb := f.pending
	if cb == nil {
		return false
	}
	f.pending = nil

	if f.origin.IsZero() {
		f.origin = t
	}
	ts := t.Sub(f.origin)
	if ts < 0 {
		ts = 0
	}
	cb(ts)
	return true
}

package tui

import (
	"testing"
	"time"
)

func TestFrameScheduler(t *testing.T) {
	var f frameScheduler
	start := time.Now()

	if f.Fire(start) {
		t.Error("Fire with nothing requested should do nothing")
	}

	var got []time.Duration
	cb := func(ts time.Duration) { got = append(got, ts) }

	f.RequestFrame(cb)
	if !f.Waiting() {
		t.Fatal("RequestFrame should queue the callback")
	}
	f.Fire(start)
	if f.Waiting() {
		t.Error("Fire should consume the callback")
	}

	f.RequestFrame(cb)
	f.Fire(start.Add(20 * time.Millisecond))

	if len(got) != 2 || got[0] != 0 || got[1] != 20*time.Millisecond {
		t.Errorf("timestamps = %v, expected [0 20ms]", got)
	}
}

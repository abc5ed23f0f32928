package fishfeast

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/fishfeast/internal/core"
)

// fakeScheduler queues frame callbacks until the test fires them.
type fakeScheduler struct {
	queue []func(time.Duration)
}

func (f *fakeScheduler) RequestFrame(cb func(time.Duration)) {
	f.queue = append(f.queue, cb)
}

func (f *fakeScheduler) fire(t *testing.T, ts time.Duration) {
	t.Helper()
	if len(f.queue) == 0 {
		t.Fatal("no frame requested")
	}
	cb := f.queue[0]
	f.queue = f.queue[1:]
	cb(ts)
}

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestDriverRunsFrames(t *testing.T) {
	sched := &fakeScheduler{}
	s := NewSession(testArena, 1, 0)

	frames := 0
	d := NewDriver(s, sched, nil, func(StepResult) { frames++ })
	d.Start()

	if !d.Active() || len(sched.queue) != 1 {
		t.Fatalf("Start should request one frame, got %d", len(sched.queue))
	}

	sched.fire(t, 0)
	if got := s.State().ElapsedMS; got != 0 {
		t.Errorf("first frame elapsed = %v, expected 0", got)
	}

	sched.fire(t, 16*time.Millisecond)
	if got := s.State().ElapsedMS; !approxEq(got, 16) {
		t.Errorf("elapsed = %v, expected 16", got)
	}

	// Long gaps are clamped
	sched.fire(t, 2*time.Second)
	if got := s.State().ElapsedMS; !approxEq(got, 16+core.MaxFrameDelta*1000) {
		t.Errorf("elapsed = %v, expected clamped frame", got)
	}

	if frames != 3 {
		t.Errorf("onFrame called %d times, expected 3", frames)
	}
	if len(sched.queue) != 1 {
		t.Errorf("expected exactly one pending frame, got %d", len(sched.queue))
	}
}

func TestDriverPauseKeepsTicking(t *testing.T) {
	sched := &fakeScheduler{}
	s := NewSession(testArena, 1, 0)
	d := NewDriver(s, sched, nil, nil)

	d.Start()
	sched.fire(t, 0)
	sched.fire(t, 16*time.Millisecond)
	elapsed := s.State().ElapsedMS

	d.TogglePause()
	if len(sched.queue) != 1 {
		t.Fatalf("pause should not double-request, queue = %d", len(sched.queue))
	}
	for i := 0; i < 5; i++ {
		sched.fire(t, time.Duration(100+i*16)*time.Millisecond)
	}
	if s.State().ElapsedMS != elapsed {
		t.Error("paused frames advanced the simulation")
	}
	if !d.Active() {
		t.Fatal("paused loop should keep requesting frames")
	}

	d.TogglePause()
	sched.fire(t, 10*time.Second) // first frame after resume has zero delta
	sched.fire(t, 10*time.Second+16*time.Millisecond)
	if got := s.State().ElapsedMS; !approxEq(got, elapsed+16) {
		t.Errorf("elapsed = %v, expected %v", got, elapsed+16)
	}
}

func TestDriverStopsOnGameOver(t *testing.T) {
	sched := &fakeScheduler{}
	s := NewSession(testArena, 1, 0)

	var last StepResult
	d := NewDriver(s, sched, nil, func(r StepResult) { last = r })
	d.Start()

	s.lives = 1
	w := s.World()
	w.Enemies = []Fish{{Pos: w.Player.Pos, Radius: 60}}

	sched.fire(t, 0)
	if !last.Events.GameOver {
		t.Fatalf("expected game over, got %+v", last)
	}
	if d.Active() || len(sched.queue) != 0 {
		t.Error("loop should stop after game over")
	}

	// Pause does nothing once the run is over
	d.TogglePause()
	if len(sched.queue) != 0 {
		t.Error("pause after game over should not request frames")
	}

	d.Restart()
	if !d.Active() || s.Phase() != PhaseRunning {
		t.Error("Restart should start a new loop")
	}
}

func TestDriverSamplesIntent(t *testing.T) {
	sched := &fakeScheduler{}
	s := NewSession(testArena, 1, 0)

	calls := 0
	d := NewDriver(s, sched, func() core.Intent {
		calls++
		return core.Intent{Right: true}
	}, nil)
	d.Start()

	for i := 0; i < 4; i++ {
		sched.fire(t, time.Duration(i*16)*time.Millisecond)
	}
	if calls != 4 {
		t.Errorf("intent sampled %d times, expected 4", calls)
	}
	if s.World().Player.Vel.X <= 0 {
		t.Error("player should be steering right")
	}
}

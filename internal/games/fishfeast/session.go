// Package fishfeast implements Fish Feast, an arcade growth game.
// The player steers a fish around a bounded arena, eats smaller fish and
// food to grow, and loses a life on every collision with a bigger fish.
package fishfeast

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/fishfeast/internal/core"
)

// Phase is the session's position in Idle -> Running <-> Paused -> GameOver.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns a lowercase name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "over"
	default:
		return "unknown"
	}
}

// State is the score and lifecycle bookkeeping of a session.
type State struct {
	Score     int
	Best      int
	Lives     int
	Wave      int
	ElapsedMS float64
	Phase     Phase
}

// Running reports whether the simulation advances on each step.
func (s State) Running() bool {
	return s.Phase == PhaseRunning
}

// GameOver reports whether the run has ended.
func (s State) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Events counts what happened during one step.
type Events struct {
	EnemiesEaten int
	FoodEaten    int
	Hits         int
	Culled       int
	WaveBurst    bool
	GameOver     bool
}

// StepResult is returned by Session.Step after each simulation tick.
type StepResult struct {
	State  State
	Events Events
}

// Session owns one world and its score state across runs.
// Best survives resets; everything else is recreated by Start.
type Session struct {
	arena Arena
	rng   *rand.Rand
	world *World

	score   int
	best    int
	lives   int
	wave    int
	elapsed float64 // ms
	phase   Phase
}

// NewSession creates an idle session. best is the persisted best score.
func NewSession(arena Arena, seed int64, best int) *Session {
	s := &Session{
		arena: arena,
		rng:   rand.New(rand.NewSource(seed)),
		best:  max(best, 0),
	}
	s.reset()
	return s
}

// reset creates a fresh world and zeroes the run counters.
func (s *Session) reset() {
	s.score = 0
	s.lives = StartingLives
	s.elapsed = 0
	s.wave = 0
	s.world = NewWorld(s.arena, s.rng, 0)
}

// Start resets the session and begins running.
func (s *Session) Start() {
	s.reset()
	s.phase = PhaseRunning
}

// Restart begins a new run after game over. It behaves like Start.
func (s *Session) Restart() {
	s.Start()
}

// TogglePause flips between Running and Paused.
// It does nothing when no run is in progress.
func (s *Session) TogglePause() {
	switch s.phase {
	case PhaseRunning:
		s.phase = PhasePaused
	case PhasePaused:
		s.phase = PhaseRunning
	}
}

// SetArena resizes the playfield. Entities keep their positions; the
// player and food are pulled back inside on the next step.
func (s *Session) SetArena(arena Arena) {
	s.arena = arena
	s.world.Arena = arena
}

// World returns the session's world.
func (s *Session) World() *World {
	return s.world
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// State returns the current score state.
func (s *Session) State() State {
	return State{
		Score:     s.score,
		Best:      s.best,
		Lives:     s.lives,
		Wave:      s.wave,
		ElapsedMS: s.elapsed,
		Phase:     s.phase,
	}
}

// Step advances a running session by dt seconds with the given steering.
// dt is clamped to [0, core.MaxFrameDelta] and a NaN or infinite dt counts
// as 0. Outside PhaseRunning it is a no-op.
func (s *Session) Step(dt float64, in core.Intent) StepResult {
	if s.phase != PhaseRunning {
		return StepResult{State: s.State()}
	}

	if math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	dt = core.ClampF(dt, 0, core.MaxFrameDelta)
	events := s.advance(dt, in)
	return StepResult{State: s.State(), Events: events}
}

// endRun moves the session to game over. The final score is folded into best.
func (s *Session) endRun() {
	s.phase = PhaseGameOver
	if s.score > s.best {
		s.best = s.score
	}
}

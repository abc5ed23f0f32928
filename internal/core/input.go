package core

import "time"

// Direction is one of the four steering intents.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// opposite returns the direction pointing the other way.
func (d Direction) opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Action represents a semantic session command, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Enter/Space - start a run from the title card
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - new run after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intent is the steering state read once per simulation step.
type Intent struct {
	Up, Down, Left, Right bool
}

// Any reports whether at least one direction is active.
func (i Intent) Any() bool {
	return i.Up || i.Down || i.Left || i.Right
}

// set turns on the flag for d.
func (i *Intent) set(d Direction) {
	switch d {
	case DirUp:
		i.Up = true
	case DirDown:
		i.Down = true
	case DirLeft:
		i.Left = true
	case DirRight:
		i.Right = true
	}
}

// Sampler merges keyboard and pointer-drag input into a single live Intent.
//
// Keys come in two flavours. Sources that report releases use KeyDown/KeyUp.
// Terminals only report presses (with auto-repeat), so KeyPress marks a
// direction as held for the hold window after its last press.
//
// Pointer drags track one pointer at a time. Each move compares the new
// position against the previous one; an offset beyond the dead zone on an
// axis sets that axis' intent, anything inside clears it.
type Sampler struct {
	deadZone float64
	hold     time.Duration

	held    [4]bool
	expires [4]time.Time

	dragging  bool
	pointerID int
	last      Vec2
	drag      Intent
}

// NewSampler creates a sampler with the given drag dead zone (display units)
// and key hold window.
func NewSampler(deadZone float64, hold time.Duration) *Sampler {
	return &Sampler{
		deadZone: deadZone,
		hold:     hold,
	}
}

// KeyDown marks a direction as held until KeyUp.
func (s *Sampler) KeyDown(d Direction) {
	s.held[d] = true
}

// KeyUp releases a direction held with KeyDown or KeyPress.
func (s *Sampler) KeyUp(d Direction) {
	s.held[d] = false
	s.expires[d] = time.Time{}
}

// KeyPress records a press without a matching release.
// The opposite direction's hold window is cut short.
func (s *Sampler) KeyPress(d Direction, now time.Time) {
	s.expires[d] = now.Add(s.hold)
	s.expires[d.opposite()] = time.Time{}
}

// PointerDown starts tracking a drag, discarding any drag in progress.
func (s *Sampler) PointerDown(id int, p Vec2) {
	s.dragging = true
	s.pointerID = id
	s.last = p
	s.drag = Intent{}
}

// PointerMove updates drag intents when p belongs to the tracked pointer.
func (s *Sampler) PointerMove(id int, p Vec2) {
	if !s.dragging || id != s.pointerID {
		return
	}

	dx := p.X - s.last.X
	dy := p.Y - s.last.Y
	s.drag = Intent{
		Left:  dx < -s.deadZone,
		Right: dx > s.deadZone,
		Up:    dy < -s.deadZone,
		Down:  dy > s.deadZone,
	}
	s.last = p
}

// PointerUp ends the drag of the tracked pointer and clears its intents.
func (s *Sampler) PointerUp(id int) {
	if !s.dragging || id != s.pointerID {
		return
	}
	s.dragging = false
	s.drag = Intent{}
}

// Reset drops every key and pointer state.
func (s *Sampler) Reset() {
	*s = Sampler{deadZone: s.deadZone, hold: s.hold}
}

// Intent returns the merged intent at time now.
func (s *Sampler) Intent(now time.Time) Intent {
	in := s.drag
	for d := DirUp; d <= DirRight; d++ {
		if s.held[d] || now.Before(s.expires[d]) {
			in.set(d)
		}
	}
	return in
}

package fishfeast

import "github.com/vovakirdan/fishfeast/internal/core"

// Fish is a circular actor: the player, an enemy or a food item.
type Fish struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64

	// Cosmetic HSL colour
	Hue   float64
	Sat   float64
	Light float64

	IsPlayer  bool
	MouthOpen float64 // bite animation in [0, 1]
}

// newPlayer creates the player fish at the given position.
func newPlayer(pos core.Vec2) Fish {
	return Fish{
		Pos:      pos,
		Radius:   PlayerStartRadius,
		Hue:      160,
		Sat:      80,
		Light:    60,
		IsPlayer: true,
	}
}

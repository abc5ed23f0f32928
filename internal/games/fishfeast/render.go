package fishfeast

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/fishfeast/internal/core"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Body glyphs by role.
const (
	glyphPlayer    = '█'
	glyphDangerous = '▓'
	glyphEdible    = '░'
	glyphFood      = '•'
	glyphPlayerDot = '@'
)

// currentArrows are indexed by octant, starting east and turning clockwise
// in screen coordinates (y grows downward).
var currentArrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Projection maps arena units onto screen cells below the HUD.
type Projection struct {
	ScaleX float64 // arena units per column
	ScaleY float64 // arena units per row
}

// NewProjection fits the arena onto a cols x rows screen.
func NewProjection(arena Arena, cols, rows int) Projection {
	playRows := max(1, rows-hudRows)
	cols = max(1, cols)
	return Projection{
		ScaleX: arena.W / float64(cols),
		ScaleY: arena.H / float64(playRows),
	}
}

// ToCell returns the screen cell containing p.
func (p Projection) ToCell(v core.Vec2) (int, int) {
	return int(math.Floor(v.X / p.ScaleX)), hudRows + int(math.Floor(v.Y/p.ScaleY))
}

// ToArena returns the arena position at the centre of a screen cell.
func (p Projection) ToArena(col, row int) core.Vec2 {
	return core.Vec2{
		X: (float64(col) + 0.5) * p.ScaleX,
		Y: (float64(row-hudRows) + 0.5) * p.ScaleY,
	}
}

// Render draws the session onto dst: water, food, enemies, the player on
// top, then the HUD and any phase overlay.
func Render(dst *core.Screen, s *Session, proj Projection) {
	dst.Clear()
	w := s.World()
	st := s.State()

	renderWater(dst, st.ElapsedMS)

	for i := range w.Food {
		renderFood(dst, &w.Food[i], proj)
	}
	for i := range w.Enemies {
		e := &w.Enemies[i]
		body := glyphEdible
		if e.Radius >= w.Player.Radius*EatThreshold {
			body = glyphDangerous
		}
		renderFish(dst, e, proj, body)
	}
	renderFish(dst, &w.Player, proj, glyphPlayer)

	renderHUD(dst, st, w.Current)

	switch st.Phase {
	case PhaseIdle:
		renderOverlay(dst, "FISH FEAST", "Eat smaller fish, avoid bigger ones", "Press Enter to start")
	case PhasePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case PhaseGameOver:
		renderOverlay(dst, "Game Over",
			fmt.Sprintf("Score: %d  Best: %d", st.Score, st.Best),
			"Press R to restart")
	}
}

// setPlay writes a cell inside the playfield only.
func setPlay(dst *core.Screen, x, y int, r rune, c core.Color) {
	if y < hudRows {
		return
	}
	dst.SetColored(x, y, r, c)
}

// renderWater draws the depth gradient and three drifting caustic bands.
func renderWater(dst *core.Screen, elapsedMS float64) {
	w, h := dst.Width(), dst.Height()
	playRows := h - hudRows
	if playRows <= 0 {
		return
	}
	t := elapsedMS * 0.001

	for y := hudRows; y < h; y++ {
		depth := float64(y-hudRows) / float64(playRows)
		if depth < 0.6 {
			continue
		}
		color := core.ColorDeepTeal
		if depth >= 0.8 {
			color = core.ColorNavy
		}
		for x := 0; x < w; x++ {
			if (x*7+y*13)%11 == 0 {
				dst.SetColored(x, y, '.', color)
			}
		}
	}

	for band := 0; band < 3; band++ {
		phase := float64(band) * 2.1
		row := hudRows + (band+1)*playRows/4 + int(math.Round(math.Sin(t*0.5+phase)))
		for x := 0; x < w; x++ {
			if math.Sin(float64(x)*0.3+t*2+phase) > 0.6 {
				setPlay(dst, x, row, '~', core.ColorSeafoam)
			}
		}
	}
}

// renderFood draws a food item as a single glyph.
func renderFood(dst *core.Screen, f *Fish, proj Projection) {
	x, y := proj.ToCell(f.Pos)
	setPlay(dst, x, y, glyphFood, core.HueColor(f.Hue, f.Light))
}

// renderFish draws an elongated ellipse with a tail behind and a head in
// front. Fish smaller than a cell collapse to one glyph.
func renderFish(dst *core.Screen, f *Fish, proj Projection, body rune) {
	color := core.HueColor(f.Hue, f.Light)
	cx, cy := proj.ToCell(f.Pos)
	facing := 1
	if f.Vel.X < 0 {
		facing = -1
	}

	rx := f.Radius * 1.6 / proj.ScaleX
	ry := f.Radius / proj.ScaleY

	if rx < 1 {
		glyph := '>'
		if facing < 0 {
			glyph = '<'
		}
		if f.IsPlayer {
			glyph = glyphPlayerDot
		}
		setPlay(dst, cx, cy, glyph, color)
		return
	}
	ry = math.Max(ry, 0.5)

	spanX := int(math.Ceil(rx))
	spanY := int(math.Ceil(ry))
	for dy := -spanY; dy <= spanY; dy++ {
		for dx := -spanX; dx <= spanX; dx++ {
			nx := float64(dx) / rx
			ny := float64(dy) / ry
			if nx*nx+ny*ny <= 1 {
				setPlay(dst, cx+dx, cy+dy, body, color)
			}
		}
	}

	reach := int(rx) + 1
	tail, head := '>', '>'
	if f.MouthOpen > 0.3 {
		head = '<'
	}
	if facing < 0 {
		tail, head = '<', '<'
		if f.MouthOpen > 0.3 {
			head = '>'
		}
	}
	setPlay(dst, cx-facing*reach, cy, tail, color)
	setPlay(dst, cx+facing*reach, cy, head, color)
}

// renderHUD draws score, best, lives, wave and the current direction.
func renderHUD(dst *core.Screen, st State, current core.Vec2) {
	hud := fmt.Sprintf(" Score: %d  Best: %d  Lives: %s  Wave: %d  Current: %c",
		st.Score, st.Best, strings.Repeat("♥", max(0, st.Lives)), st.Wave, currentArrow(current))
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// currentArrow picks the arrow closest to the current's direction.
func currentArrow(c core.Vec2) rune {
	if c.Len() < 1 {
		return '·'
	}
	octant := int(math.Round(c.Angle()/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return currentArrows[octant]
}

// renderOverlay draws a boxed message centred on the playfield.
func renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := hudRows + (dst.Height()-hudRows-boxH)/2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, l := range lines {
		x := (dst.Width() - len([]rune(l))) / 2
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightCyan
		}
		dst.DrawTextColored(x, boxY+2+i, l, color)
	}
}

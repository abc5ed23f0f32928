package fishfeast

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/fishfeast/internal/core"
)

// Arena is the playfield size in display units.
type Arena struct {
	W, H float64
}

// ArenaForScreen sizes the arena for a screen of cols x rows cells.
// The first row is reserved for the HUD.
func ArenaForScreen(cols, rows int, cellW, cellH, minW, minH float64) Arena {
	playRows := rows - hudRows
	if playRows < 1 {
		playRows = 1
	}
	return Arena{
		W: math.Max(minW, float64(cols)*cellW),
		H: math.Max(minH, float64(playRows)*cellH),
	}
}

// Center returns the middle of the arena.
func (a Arena) Center() core.Vec2 {
	return core.Vec2{X: a.W * 0.5, Y: a.H * 0.5}
}

// World owns the player, the enemy and food pools, and the ambient current.
// Pools are unordered; removal swaps with the last element.
type World struct {
	Arena   Arena
	Player  Fish
	Enemies []Fish
	Food    []Fish
	Current core.Vec2

	rng *rand.Rand
}

// NewWorld creates a world with the player centred and the initial pools
// spawned for the given wave.
func NewWorld(arena Arena, rng *rand.Rand, wave int) *World {
	w := &World{
		Arena:   arena,
		Player:  newPlayer(arena.Center()),
		Enemies: make([]Fish, 0, InitialEnemies+WaveBurst),
		Food:    make([]Fish, 0, InitialFood),
		rng:     rng,
	}
	w.UpdateCurrent(0)
	for i := 0; i < InitialEnemies; i++ {
		w.SpawnEnemy(wave)
	}
	for i := 0; i < InitialFood; i++ {
		w.SpawnFood()
	}
	return w
}

// randRange returns a uniform value in [min, max).
func (w *World) randRange(min, max float64) float64 {
	return w.rng.Float64()*(max-min) + min
}

// SpawnEnemy adds an enemy just outside the left or right edge, swimming
// toward the middle band of the arena. Enemies grow with the wave number.
func (w *World) SpawnEnemy(wave int) {
	x := -EnemySpawnMargin
	if w.rng.Float64() >= 0.5 {
		x = w.Arena.W + EnemySpawnMargin
	}
	y := w.randRange(0, w.Arena.H)
	r := w.randRange(EnemyMinRadius, EnemyMaxRadius) + float64(wave)*WaveRadiusBonus

	targetX := w.randRange(w.Arena.W*0.2, w.Arena.W*0.8)
	speed := w.randRange(20, 60) + r*0.6
	dirX := targetX - x
	dirY := w.randRange(-100, 100)
	length := math.Hypot(dirX, dirY)
	if length == 0 {
		length = 1
	}

	w.Enemies = append(w.Enemies, Fish{
		Pos:    core.Vec2{X: x, Y: y},
		Vel:    core.Vec2{X: dirX / length * speed, Y: dirY / length * speed * 0.5},
		Radius: r,
		Hue:    w.randRange(180, 230),
		Sat:    w.randRange(50, 70),
		Light:  w.randRange(45, 65),
	})
}

// SpawnFood adds a slow food item at a random interior position.
func (w *World) SpawnFood() {
	w.Food = append(w.Food, Fish{
		Pos: core.Vec2{
			X: w.randRange(FoodSpawnMargin, w.Arena.W-FoodSpawnMargin),
			Y: w.randRange(FoodSpawnMargin, w.Arena.H-FoodSpawnMargin),
		},
		Vel: core.Vec2{
			X: w.randRange(-FoodMaxSpeed, FoodMaxSpeed),
			Y: w.randRange(-FoodMaxSpeed, FoodMaxSpeed),
		},
		Radius: w.randRange(FoodMinRadius, FoodMaxRadius),
		Hue:    w.randRange(15, 55),
		Sat:    90,
		Light:  60,
	})
}

// UpdateCurrent recomputes the ambient current from elapsed milliseconds.
// Two sinusoids per axis keep it smooth and bounded (|x| <= 30, |y| <= 24).
func (w *World) UpdateCurrent(elapsedMS float64) {
	t := elapsedMS * 0.001
	w.Current = core.Vec2{
		X: math.Sin(t*0.6)*20 + math.Sin(t*1.7)*10,
		Y: math.Cos(t*0.9)*16 + math.Sin(t*1.1)*8,
	}
}

// keepInBounds pins f inside the arena, inset by its radius plus padding,
// and bounces the offending velocity component back inward.
func (w *World) keepInBounds(f *Fish) {
	margin := f.Radius + BoundsPadding

	if f.Pos.X < margin {
		f.Pos.X = margin
		f.Vel.X = math.Abs(f.Vel.X) * BounceDamping
	}
	if f.Pos.X > w.Arena.W-margin {
		f.Pos.X = w.Arena.W - margin
		f.Vel.X = -math.Abs(f.Vel.X) * BounceDamping
	}
	if f.Pos.Y < margin {
		f.Pos.Y = margin
		f.Vel.Y = math.Abs(f.Vel.Y) * BounceDamping
	}
	if f.Pos.Y > w.Arena.H-margin {
		f.Pos.Y = w.Arena.H - margin
		f.Vel.Y = -math.Abs(f.Vel.Y) * BounceDamping
	}
}

// offscreen reports whether p is more than CullMargin outside the arena.
func (w *World) offscreen(p core.Vec2) bool {
	return p.X < -CullMargin || p.X > w.Arena.W+CullMargin ||
		p.Y < -CullMargin || p.Y > w.Arena.H+CullMargin
}

// removeEnemy drops enemy i by swapping in the last element.
// Safe while iterating from the end of the pool.
func (w *World) removeEnemy(i int) {
	last := len(w.Enemies) - 1
	w.Enemies[i] = w.Enemies[last]
	w.Enemies = w.Enemies[:last]
}

// removeFood drops food item i by swapping in the last element.
func (w *World) removeFood(i int) {
	last := len(w.Food) - 1
	w.Food[i] = w.Food[last]
	w.Food = w.Food[:last]
}

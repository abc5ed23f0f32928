package fishfeast

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/fishfeast/internal/core"
)

func newTestWorld(seed int64) *World {
	return &World{Arena: testArena, rng: rand.New(rand.NewSource(seed))}
}

func TestKeepInBounds(t *testing.T) {
	const r = 10.0
	margin := r + BoundsPadding

	tests := []struct {
		name    string
		pos     core.Vec2
		vel     core.Vec2
		wantPos core.Vec2
		wantVel core.Vec2
	}{
		{
			name: "left wall", pos: core.Vec2{X: 3, Y: 300}, vel: core.Vec2{X: -100, Y: 5},
			wantPos: core.Vec2{X: margin, Y: 300}, wantVel: core.Vec2{X: 70, Y: 5},
		},
		{
			name: "right wall", pos: core.Vec2{X: 799, Y: 300}, vel: core.Vec2{X: 100, Y: 5},
			wantPos: core.Vec2{X: 800 - margin, Y: 300}, wantVel: core.Vec2{X: -70, Y: 5},
		},
		{
			name: "top wall", pos: core.Vec2{X: 400, Y: -20}, vel: core.Vec2{X: 5, Y: -50},
			wantPos: core.Vec2{X: 400, Y: margin}, wantVel: core.Vec2{X: 5, Y: 35},
		},
		{
			name: "bottom wall", pos: core.Vec2{X: 400, Y: 600}, vel: core.Vec2{X: 5, Y: 50},
			wantPos: core.Vec2{X: 400, Y: 600 - margin}, wantVel: core.Vec2{X: 5, Y: -35},
		},
		{
			name: "already moving inward", pos: core.Vec2{X: 1, Y: 300}, vel: core.Vec2{X: 40, Y: 0},
			wantPos: core.Vec2{X: margin, Y: 300}, wantVel: core.Vec2{X: 28, Y: 0},
		},
		{
			name: "corner", pos: core.Vec2{X: 0, Y: 0}, vel: core.Vec2{X: -10, Y: -20},
			wantPos: core.Vec2{X: margin, Y: margin}, wantVel: core.Vec2{X: 7, Y: 14},
		},
		{
			name: "inside", pos: core.Vec2{X: 400, Y: 300}, vel: core.Vec2{X: -10, Y: 20},
			wantPos: core.Vec2{X: 400, Y: 300}, wantVel: core.Vec2{X: -10, Y: 20},
		},
	}

	w := newTestWorld(1)
	for _, tc := range tests {
		for _, isPlayer := range []bool{true, false} {
			f := Fish{Pos: tc.pos, Vel: tc.vel, Radius: r, IsPlayer: isPlayer}
			w.keepInBounds(&f)

			if !approxEq(f.Pos.X, tc.wantPos.X) || !approxEq(f.Pos.Y, tc.wantPos.Y) {
				t.Errorf("%s (player=%v): Pos = %+v, expected %+v", tc.name, isPlayer, f.Pos, tc.wantPos)
			}
			if !approxEq(f.Vel.X, tc.wantVel.X) || !approxEq(f.Vel.Y, tc.wantVel.Y) {
				t.Errorf("%s (player=%v): Vel = %+v, expected %+v", tc.name, isPlayer, f.Vel, tc.wantVel)
			}
		}
	}
}

func TestSpawnEnemy(t *testing.T) {
	for _, wave := range []int{0, 1, 7} {
		w := newTestWorld(int64(wave) + 11)
		bonus := float64(wave) * WaveRadiusBonus

		for i := 0; i < 200; i++ {
			w.SpawnEnemy(wave)
		}

		left, right := 0, 0
		for i, e := range w.Enemies {
			switch e.Pos.X {
			case -EnemySpawnMargin:
				left++
				if e.Vel.X <= 0 {
					t.Errorf("wave %d enemy %d: left spawn swims away, Vel = %+v", wave, i, e.Vel)
				}
			case testArena.W + EnemySpawnMargin:
				right++
				if e.Vel.X >= 0 {
					t.Errorf("wave %d enemy %d: right spawn swims away, Vel = %+v", wave, i, e.Vel)
				}
			default:
				t.Errorf("wave %d enemy %d: X = %v, expected an edge spawn", wave, i, e.Pos.X)
			}

			if e.Pos.Y < 0 || e.Pos.Y >= testArena.H {
				t.Errorf("wave %d enemy %d: Y = %v outside arena", wave, i, e.Pos.Y)
			}
			if e.Radius < EnemyMinRadius+bonus || e.Radius >= EnemyMaxRadius+bonus {
				t.Errorf("wave %d enemy %d: Radius = %v, expected [%v, %v)",
					wave, i, e.Radius, EnemyMinRadius+bonus, EnemyMaxRadius+bonus)
			}

			// Speed is U[20,60) + r*0.6; the vertical part is halved
			maxSpeed := 60 + e.Radius*0.6
			if e.Vel.Len() > maxSpeed || math.Abs(e.Vel.Y) > 0.5*maxSpeed {
				t.Errorf("wave %d enemy %d: Vel = %+v too fast", wave, i, e.Vel)
			}
			if e.Hue < 180 || e.Hue >= 230 {
				t.Errorf("wave %d enemy %d: Hue = %v", wave, i, e.Hue)
			}
		}

		if left == 0 || right == 0 {
			t.Errorf("wave %d: spawns on one side only (left %d, right %d)", wave, left, right)
		}
	}
}

func TestSpawnEnemyHeadsForMiddleBand(t *testing.T) {
	w := newTestWorld(5)
	for i := 0; i < 200; i++ {
		w.SpawnEnemy(0)
	}

	// Targets lie in [0.2W, 0.8W], so the horizontal run from either edge
	// is at least 0.2W+40 while the vertical offset is at most 100, halved.
	minDX := testArena.W*0.2 + EnemySpawnMargin
	for i, e := range w.Enemies {
		ratio := math.Abs(e.Vel.Y) / math.Abs(e.Vel.X)
		if ratio > 0.5*100/minDX+1e-9 {
			t.Errorf("enemy %d: heading %+v misses the band", i, e.Vel)
		}
	}
}

func TestSpawnFood(t *testing.T) {
	w := newTestWorld(3)
	for i := 0; i < 500; i++ {
		w.SpawnFood()
	}

	for i, f := range w.Food {
		if f.Pos.X < FoodSpawnMargin || f.Pos.X >= testArena.W-FoodSpawnMargin ||
			f.Pos.Y < FoodSpawnMargin || f.Pos.Y >= testArena.H-FoodSpawnMargin {
			t.Errorf("food %d: Pos = %+v outside the spawn margin", i, f.Pos)
		}
		if f.Radius < FoodMinRadius || f.Radius >= FoodMaxRadius {
			t.Errorf("food %d: Radius = %v", i, f.Radius)
		}
		if math.Abs(f.Vel.X) > FoodMaxSpeed || math.Abs(f.Vel.Y) > FoodMaxSpeed {
			t.Errorf("food %d: Vel = %+v", i, f.Vel)
		}
		if f.Hue < 15 || f.Hue >= 55 || f.Sat != 90 || f.Light != 60 {
			t.Errorf("food %d: colour = %v/%v/%v", i, f.Hue, f.Sat, f.Light)
		}
	}
}

func TestUpdateCurrent(t *testing.T) {
	tests := []struct {
		elapsedMS float64
		expected  core.Vec2
	}{
		{0, core.Vec2{X: 0, Y: 16}},
		{1000, core.Vec2{
			X: math.Sin(0.6)*20 + math.Sin(1.7)*10,
			Y: math.Cos(0.9)*16 + math.Sin(1.1)*8,
		}},
		{12500, core.Vec2{
			X: math.Sin(12.5*0.6)*20 + math.Sin(12.5*1.7)*10,
			Y: math.Cos(12.5*0.9)*16 + math.Sin(12.5*1.1)*8,
		}},
	}

	w := newTestWorld(1)
	for _, tc := range tests {
		w.UpdateCurrent(tc.elapsedMS)
		if !approxEq(w.Current.X, tc.expected.X) || !approxEq(w.Current.Y, tc.expected.Y) {
			t.Errorf("UpdateCurrent(%v) = %+v, expected %+v", tc.elapsedMS, w.Current, tc.expected)
		}
		if math.Abs(w.Current.X) > 30 || math.Abs(w.Current.Y) > 24 {
			t.Errorf("UpdateCurrent(%v) = %+v out of bounds", tc.elapsedMS, w.Current)
		}
	}

	// At t = 1s the current points right and down
	w.UpdateCurrent(1000)
	if w.Current.X <= 0 || w.Current.Y <= 0 {
		t.Errorf("Current at 1s = %+v", w.Current)
	}
}

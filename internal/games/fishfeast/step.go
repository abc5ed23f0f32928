package fishfeast

import (
	"math"

	"github.com/vovakirdan/fishfeast/internal/core"
)

// advance runs one simulation frame of dt seconds.
// A hit that takes the last life ends the run immediately; food, pacing and
// waves are left untouched for that frame.
func (s *Session) advance(dt float64, in core.Intent) Events {
	var ev Events
	w := s.world

	s.elapsed += dt * 1000
	w.UpdateCurrent(s.elapsed)

	p := &w.Player
	p.MouthOpen = math.Max(0, p.MouthOpen-MouthDecay)

	steer(p, in, dt)
	p.Vel = p.Vel.Add(w.Current.Scale(PlayerCurrentFactor * dt))
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	w.keepInBounds(p)

	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := &w.Enemies[i]
		e.Vel = e.Vel.Add(w.Current.Scale(EnemyCurrentFactor * dt))
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))

		if w.offscreen(e.Pos) {
			w.removeEnemy(i)
			ev.Culled++
			continue
		}

		if !core.CirclesOverlap(e.Pos, p.Pos, e.Radius+p.Radius*EnemyReach) {
			continue
		}

		if e.Radius < p.Radius*EatThreshold {
			gained := math.Min(e.Radius*EnemyGrowthFactor, EnemyGrowthCap)
			p.Radius = math.Min(p.Radius+gained*EnemyGrowthRate, EnemyEatRadiusCap)
			s.score += int(math.Round(10 + e.Radius))
			p.MouthOpen = 1
			w.removeEnemy(i)
			ev.EnemiesEaten++
			continue
		}

		s.lives--
		p.Radius = math.Max(PlayerMinRadius, p.Radius*HitShrink)
		p.Vel = core.Vec2{
			X: -core.Sign(e.Vel.X) * KnockbackSpeed,
			Y: -core.Sign(e.Vel.Y) * KnockbackSpeed,
		}
		w.removeEnemy(i)
		ev.Hits++

		if s.lives <= 0 {
			s.lives = 0
			s.endRun()
			ev.GameOver = true
			return ev
		}
	}

	for i := len(w.Food) - 1; i >= 0; i-- {
		f := &w.Food[i]
		f.Vel = f.Vel.Add(w.Current.Scale(FoodCurrentFactor * dt))
		f.Pos = f.Pos.Add(f.Vel.Scale(dt))
		w.keepInBounds(f)

		if !core.CirclesOverlap(f.Pos, p.Pos, f.Radius+p.Radius*FoodReach) {
			continue
		}

		p.Radius = math.Min(p.Radius+f.Radius*FoodGrowthRate, PlayerMaxRadius)
		s.score += max(1, int(math.Round(f.Radius)))
		p.MouthOpen = 1
		w.removeFood(i)
		ev.FoodEaten++
	}

	// Pools refill by at most one per frame
	if len(w.Enemies) < EnemyFloor {
		w.SpawnEnemy(s.wave)
	}
	if len(w.Food) < FoodFloor {
		w.SpawnFood()
	}

	wave := int(s.elapsed / WavePeriodMS)
	if wave != s.wave {
		s.wave = wave
		for i := 0; i < WaveBurst; i++ {
			w.SpawnEnemy(wave)
		}
		ev.WaveBurst = true
	}

	if s.score > s.best {
		s.best = s.score
	}

	return ev
}

// steer applies held directions as acceleration, then drag once.
func steer(p *Fish, in core.Intent, dt float64) {
	a := PlayerAccel * dt
	if in.Up {
		p.Vel.Y -= a
	}
	if in.Down {
		p.Vel.Y += a
	}
	if in.Left {
		p.Vel.X -= a
	}
	if in.Right {
		p.Vel.X += a
	}
	p.Vel = p.Vel.Scale(PlayerDrag)
}

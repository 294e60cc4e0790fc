package system

import (
	"math"

	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
)

// updateEnemies advances every per-kind state machine. Patrol reversal
// is not here: it happens when the collision sweep hits a wall.
func (s *Simulation) updateEnemies(dt float64) {
	for _, e := range s.entities {
		if e.Dead || e.IsPlayer || e.IsBullet {
			continue
		}

		switch st := e.Behavior.(type) {
		case *entity.PlantState:
			s.updatePlant(e, st, dt)
		case *entity.HopperState:
			s.updateHopper(e, st, dt)
		case *entity.DinoState:
			s.updateDino(e, st, dt)
		case *entity.BombState:
			s.updateBomb(e, st, dt)
		case *entity.PopSpikeState:
			s.updatePopSpike(st, dt)
		case *entity.OrbitState:
			st.Angle = math.Mod(st.Angle+s.tuning.Enemy.Orbit.Speed*dt, 2*math.Pi)
		case *entity.TurtleState:
			s.updateTurtle(e, st, dt)
		case *entity.LightningState:
			s.updateLightning(st, dt)
		}
	}
}

// updatePlant cycles hidden -> extending -> out -> retracting.
// It will not come out while the player stands right beside the pipe.
func (s *Simulation) updatePlant(e *entity.Entity, st *entity.PlantState, dt float64) {
	cfg := s.tuning.Enemy.Plant
	speed := cfg.Speed * s.ts

	switch st.Phase {
	case entity.PlantHidden:
		st.Timer += dt
		if st.Timer >= cfg.HiddenTime && !s.playerNear(e, cfg.SafeRange) {
			st.Phase = entity.PlantExtending
			st.Timer = 0
		}
	case entity.PlantExtending:
		st.Offset += speed * dt
		if st.Offset >= e.H {
			st.Offset = e.H
			st.Phase = entity.PlantOut
			st.Timer = 0
		}
	case entity.PlantOut:
		st.Timer += dt
		if st.Timer >= cfg.OutTime {
			st.Phase = entity.PlantRetracting
			st.Timer = 0
		}
	case entity.PlantRetracting:
		st.Offset -= speed * dt
		if st.Offset <= 0 {
			st.Offset = 0
			st.Phase = entity.PlantHidden
			st.Timer = 0
		}
	}
	e.Y = st.HomeY - st.Offset
}

// playerNear reports whether the player's centre is within r tiles
// horizontally of e's centre
func (s *Simulation) playerNear(e *entity.Entity, r float64) bool {
	p := s.player
	if p.Dead {
		return false
	}
	return math.Abs(p.CenterX()-e.CenterX()) <= r*s.ts
}

// plantHead is the lethal box at the top of a plant; ok is false while the
// plant is less than half out
func plantHead(e *entity.Entity, st *entity.PlantState, headRatio float64) (entity.Rect, bool) {
	if st.Offset < e.H*0.5 {
		return entity.Rect{}, false
	}
	return entity.Rect{X: e.X, Y: e.Y, W: e.W, H: e.H * headRatio}, true
}

func (s *Simulation) updateHopper(e *entity.Entity, st *entity.HopperState, dt float64) {
	if !e.Grounded {
		return
	}
	st.Timer += dt
	if st.Timer >= s.tuning.Enemy.Hopper.Interval {
		e.VY = -s.tuning.Enemy.Hopper.JumpForce * s.ts
		st.Timer = 0
	}
}

// updateDino breathes a fireball at the player on a fixed interval
// when the player is within range
func (s *Simulation) updateDino(e *entity.Entity, st *entity.DinoState, dt float64) {
	cfg := s.tuning.Enemy.Dino
	st.Timer += dt
	if st.Timer < cfg.Interval {
		return
	}
	st.Timer = 0
	if !s.playerNear(e, cfg.Range) {
		return
	}

	dir := 1
	if s.player.CenterX() < e.CenterX() {
		dir = -1
	}
	e.Facing = dir
	s.queue(ShootIntent{
		Owner:   e,
		Variant: entity.BulletFireball,
		Dir:     dir,
		Speed:   cfg.FireballSpeed,
		Enemy:   true,
	})
}

// updateBomb walks until the player comes close, then burns its fuse.
// An exploded bomb is dead and never re-ignites.
func (s *Simulation) updateBomb(e *entity.Entity, st *entity.BombState, dt float64) {
	cfg := s.tuning.Enemy.Bomb
	switch st.Phase {
	case entity.BombWalking:
		if s.playerWithin(e.CenterX(), e.CenterY(), cfg.TriggerRange*s.ts) {
			s.ignite(e, st, 0)
		}
	case entity.BombIgnited:
		st.Timer -= dt
		if st.Timer <= 0 {
			s.explode(e, st)
		}
	}
}

// ignite lights the fuse; kickDir != 0 sends the bomb sliding that way
func (s *Simulation) ignite(e *entity.Entity, st *entity.BombState, kickDir int) {
	if st.Phase != entity.BombWalking {
		return
	}
	cfg := s.tuning.Enemy.Bomb
	st.Phase = entity.BombIgnited
	st.Timer = cfg.Fuse
	e.VX = float64(kickDir) * cfg.KickSpeed * s.ts
}

// explode hurts the player and kills enemies inside the blast radius and
// clears destructible tiles whose centre it covers
func (s *Simulation) explode(e *entity.Entity, st *entity.BombState) {
	st.Phase = entity.BombExploded
	st.Timer = 0
	e.Dead = true
	e.VX = 0

	radius := s.tuning.Enemy.Bomb.Radius * s.ts
	cx, cy := e.CenterX(), e.CenterY()

	if s.playerWithin(cx, cy, radius) {
		s.damagePlayer()
	}
	for _, o := range s.entities {
		if o == e || o.Dead || !o.IsEnemy || o.Def.Hazard {
			continue
		}
		if math.Hypot(o.CenterX()-cx, o.CenterY()-cy) <= radius {
			o.Dead = true
		}
	}

	left := s.stage.TileCoord(cx - radius)
	right := s.stage.TileCoord(cx + radius)
	top := s.stage.TileCoord(cy - radius)
	bottom := s.stage.TileCoord(cy + radius)
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if !s.stage.DestructibleOf(s.stage.GetTile(col, row)) {
				continue
			}
			tx := (float64(col) + 0.5) * s.ts
			ty := (float64(row) + 0.5) * s.ts
			if math.Hypot(tx-cx, ty-cy) <= radius {
				s.stage.SetTile(col, row, entity.TileEmpty)
			}
		}
	}

	s.cue(CueBump)
	s.queue(BurstIntent{X: cx, Y: cy, Kind: entity.ParticleSpark, Count: 16})
	s.queue(BurstIntent{X: cx, Y: cy, Kind: entity.ParticleSmoke, Count: 8})
}

func (s *Simulation) playerWithin(x, y, r float64) bool {
	p := s.player
	if p.Dead {
		return false
	}
	return math.Hypot(p.CenterX()-x, p.CenterY()-y) <= r
}

func (s *Simulation) updatePopSpike(st *entity.PopSpikeState, dt float64) {
	cfg := s.tuning.Enemy.Spike
	st.Timer += dt
	switch st.Phase {
	case entity.SpikeHidden:
		if st.Timer >= cfg.HiddenTime {
			st.Phase = entity.SpikeWarning
			st.Timer = 0
		}
	case entity.SpikeWarning:
		if st.Timer >= cfg.WarningTime {
			st.Phase = entity.SpikeActive
			st.Timer = 0
		}
	case entity.SpikeActive:
		if st.Timer >= cfg.ActiveTime {
			st.Phase = entity.SpikeHidden
			st.Timer = 0
		}
	}
}

// orbitBall returns the centre of a rotating spike's ball
func orbitBall(e *entity.Entity, st *entity.OrbitState) (float64, float64) {
	return e.CenterX() + st.Radius*math.Cos(st.Angle), e.CenterY() + st.Radius*math.Sin(st.Angle)
}

func (s *Simulation) updateTurtle(e *entity.Entity, st *entity.TurtleState, dt float64) {
	if st.KickGrace > 0 {
		st.KickGrace = math.Max(0, st.KickGrace-dt)
	}
	if !st.Flying || st.Shell {
		return
	}
	cfg := s.tuning.Enemy.Turtle
	st.FlyTimer += dt
	e.VY = cfg.FlySpeed * s.ts * math.Cos(2*math.Pi*st.FlyTimer/cfg.FlyPeriod)
}

func (s *Simulation) updateLightning(st *entity.LightningState, dt float64) {
	cfg := s.tuning.Enemy.Lightning
	st.Timer += dt
	if st.On && st.Timer >= cfg.OnTime {
		st.On = false
		st.Timer = 0
	} else if !st.On && st.Timer >= cfg.OffTime {
		st.On = true
		st.Timer = 0
	}
}

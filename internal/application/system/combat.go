package system

import (
	"math"

	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
)

// resolveCombat reacts to overlaps after movement.
//
// Entities are visited in live-list order. One killed earlier in the pass is
// skipped by later checks. Whether the player is stomping is decided once
// from the velocity at the start of the pass, so landing on two enemies in
// the same step stomps both. After the first hit the player is either
// invincible or dead, which turns every later touch into a no-op.
func (s *Simulation) resolveCombat() {
	p := s.player
	stomping := p.VY > 0

	for _, e := range s.entities {
		if p.Dead || s.won {
			break
		}
		if e == p || e.Dead || e.IsBullet {
			continue
		}

		// The orbiting ball is checked on its own geometry, not the pivot box
		if st, ok := e.Behavior.(*entity.OrbitState); ok {
			bx, by := orbitBall(e, st)
			if p.Rect().IntersectsCircle(bx, by, st.BallRadius) {
				s.damagePlayer()
			}
			continue
		}
		if e.Def.Category == entity.CategoryDecoration && !e.Def.Solid {
			continue
		}
		if !p.Overlaps(e) {
			continue
		}
		s.touch(p, e, stomping)
	}

	s.resolveShells()
}

// touch handles one player/entity overlap in priority order
func (s *Simulation) touch(p, e *entity.Entity, stomping bool) {
	def := e.Def
	switch {
	case def.Win:
		s.won = true
		p.VX = 0
		s.cue(CueWin)
	case def.Kind == entity.KindSpring:
		// only when coming down onto the top half
		if stomping && p.Bottom() <= e.Y+e.H/2 {
			p.Y = e.Y - p.H
			p.VY = -def.BounceForce * s.ts
			p.JumpCount = 1
			p.Grounded = false
			s.cue(CueJump)
		}
	case def.Kind == entity.KindBoostPad:
		p.VX = float64(p.Facing) * def.BoostSpeed * s.ts
	case def.Solid:
		s.pushOut(p, e)
	case e.IsCollectible:
		s.collect(p, e)
	case e.IsEnemy:
		s.enemyContact(p, e, stomping)
	}
}

// pushOut separates the player from a solid object along the axis of
// least penetration
func (s *Simulation) pushOut(p, e *entity.Entity) {
	ox := math.Min(p.Right(), e.Right()) - math.Max(p.X, e.X)
	oy := math.Min(p.Bottom(), e.Bottom()) - math.Max(p.Y, e.Y)
	if ox <= 0 || oy <= 0 {
		return
	}

	if ox < oy {
		if p.CenterX() < e.CenterX() {
			p.X -= ox
		} else {
			p.X += ox
		}
		p.VX = 0
		return
	}

	if p.CenterY() < e.CenterY() {
		// standing on top counts as floor
		p.Y -= oy
		if p.VY > 0 {
			p.VY = 0
		}
		p.Grounded = true
		p.JumpCount = 0
	} else {
		p.Y += oy
		if p.VY < 0 {
			p.VY = 0
		}
	}
}

func (s *Simulation) collect(p, e *entity.Entity) {
	e.Dead = true
	s.award(e.Def.Points)

	switch e.Def.Variant {
	case entity.VariantGrow:
		s.grow(p)
		s.cue(CuePowerup)
	case entity.VariantFire:
		s.grow(p)
		p.CanShoot = true
		s.cue(CuePowerup)
	default:
		s.cue(CueCoin)
		s.queue(BurstIntent{X: e.CenterX(), Y: e.CenterY(), Kind: entity.ParticleCoin, Count: 4})
	}
}

// enemyContact resolves a touch between the player and an enemy or hazard
func (s *Simulation) enemyContact(p, e *entity.Entity, stomping bool) {
	// Kinds that hurt on touch whatever the direction
	switch st := e.Behavior.(type) {
	case *entity.PlantState:
		if head, ok := plantHead(e, st, s.tuning.Enemy.Plant.HeadRatio); ok && p.Rect().Intersects(head) {
			s.damagePlayer()
		}
		return
	case *entity.PopSpikeState:
		if st.Phase == entity.SpikeActive {
			s.damagePlayer()
		}
		return
	case *entity.LightningState:
		if st.On {
			s.damagePlayer()
		}
		return
	case *entity.BombState:
		if st.Phase == entity.BombIgnited {
			s.damagePlayer()
			return
		}
	}
	if e.Def.Hazard {
		return
	}

	if stomping && s.isStomp(p, e) {
		s.stomp(p, e)
		return
	}

	if t, ok := e.Behavior.(*entity.TurtleState); ok && t.Shell {
		if !s.shellMoving(e) {
			s.kickShell(p, e, t)
			return
		}
		if t.KickGrace > 0 {
			return
		}
	}
	s.damagePlayer()
}

// isStomp reports whether the player's bottom lies in the top StompRatio of
// the enemy's box
func (s *Simulation) isStomp(p, e *entity.Entity) bool {
	ratio := e.Def.StompRatio
	if ratio <= 0 {
		ratio = 0.5
	}
	return p.Bottom() <= e.Y+e.H*ratio
}

func (s *Simulation) stomp(p, e *entity.Entity) {
	switch st := e.Behavior.(type) {
	case *entity.TurtleState:
		switch {
		case !st.Shell:
			st.Shell = true
			st.Flying = false
			e.HasGravity = true
			e.VX = 0
			e.VY = 0
			s.award(e.Def.Points)
		case s.shellMoving(e):
			e.VX = 0
		default:
			s.kickShell(p, e, st)
		}
	case *entity.BombState:
		dir := p.Facing
		if e.CenterX() > p.CenterX() {
			dir = 1
		} else if e.CenterX() < p.CenterX() {
			dir = -1
		}
		s.ignite(e, st, dir)
	default:
		e.Dead = true
		s.award(e.Def.Points)
		s.queue(BurstIntent{X: e.CenterX(), Y: e.CenterY(), Kind: entity.ParticleSmoke, Count: 5})
	}

	p.VY = -s.tuning.Player.StompBounce * s.ts
	p.Grounded = false
	s.cue(CueStomp)
}

// kickShell sends an idle shell sliding away from the player
func (s *Simulation) kickShell(p, e *entity.Entity, st *entity.TurtleState) {
	dir := p.Facing
	if e.CenterX() > p.CenterX() {
		dir = 1
	} else if e.CenterX() < p.CenterX() {
		dir = -1
	}
	cfg := s.tuning.Enemy.Turtle
	e.VX = float64(dir) * cfg.ShellSpeed * s.ts
	e.Facing = dir
	st.KickGrace = cfg.KickGrace
	s.cue(CueStomp)
}

func (s *Simulation) shellMoving(e *entity.Entity) bool {
	return e.IsShell() && math.Abs(e.VX) > s.tuning.Enemy.Turtle.MovingShell*s.ts
}

// resolveShells lets sliding shells knock out the enemies they hit
func (s *Simulation) resolveShells() {
	for _, sh := range s.entities {
		if sh.Dead || !s.shellMoving(sh) {
			continue
		}
		for _, o := range s.entities {
			if o == sh || o.Dead || !o.IsEnemy || o.Def.Hazard {
				continue
			}
			r, ok := s.hurtRect(o)
			if !ok || !sh.Rect().Intersects(r) {
				continue
			}
			o.Dead = true
			s.award(o.Def.Points)
			s.cue(CueStomp)
		}
	}
}

// hurtRect is the part of an enemy that can be hit by shells and bullets
func (s *Simulation) hurtRect(e *entity.Entity) (entity.Rect, bool) {
	if st, ok := e.Behavior.(*entity.PlantState); ok {
		if st.Offset <= 0 {
			return entity.Rect{}, false
		}
		return entity.Rect{X: e.X, Y: e.Y, W: e.W, H: st.Offset}, true
	}
	return e.Rect(), true
}

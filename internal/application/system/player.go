package system

import (
	"math"

	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
)

// updatePlayer runs the player's ability state machine from input.
// Contact flags (Grounded, InWater, FrictionMultiplier) are the ones the
// previous step's collision pass left behind.
func (s *Simulation) updatePlayer(in Input, dt float64) {
	p := s.player
	if p.Dead {
		return
	}

	// Timers
	if p.InvincibleTimer > 0 {
		p.InvincibleTimer = math.Max(0, p.InvincibleTimer-dt)
	}
	if p.ShootCooldown > 0 {
		p.ShootCooldown = math.Max(0, p.ShootCooldown-dt)
	}

	s.updateCrouch(p, in)
	s.handleMovement(p, in, dt)
	s.handleJump(p, in)
	s.handleShoot(p, in)
}

// handleMovement accelerates toward run speed, or applies friction when no
// direction is held. Both scale with the surface's friction multiplier.
func (s *Simulation) handleMovement(p *entity.Entity, in Input, dt float64) {
	pt := s.tuning.Player
	run := pt.RunSpeed * s.ts
	fm := p.FrictionMultiplier

	dir := in.Direction()
	if dir != 0 {
		p.Facing = dir
	}
	if p.Crouching && p.Grounded {
		dir = 0
	}

	// Boosted well past run speed: bleed it off instead of clamping
	if math.Abs(p.VX) > 3*run {
		p.VX *= math.Pow(pt.BoostDecay, dt*60)
		return
	}

	if dir != 0 {
		p.VX += float64(dir) * pt.Acceleration * s.ts * fm * dt
	} else {
		k := 1 - (1-pt.Friction)*fm
		p.VX *= math.Pow(k, dt*60)
		if math.Abs(p.VX) < 1 {
			p.VX = 0
		}
	}

	if p.VX > run {
		p.VX = run
	} else if p.VX < -run {
		p.VX = -run
	}
}

// handleJump covers the three vertical states: swimming strokes, a ground
// jump, and one double jump while airborne
func (s *Simulation) handleJump(p *entity.Entity, in Input) {
	pt := s.tuning.Player

	switch {
	case p.InWater:
		if in.JumpPressed() || in.DoubleJumpPressed() {
			p.VY = -pt.SwimStroke * s.ts
			s.cue(CueJump)
		}
	case p.Grounded:
		if in.JumpPressed() {
			p.VY = -pt.JumpForce * s.ts
			p.JumpCount = 1
			p.Grounded = false
			s.cue(CueJump)
		}
	default:
		if in.DoubleJumpPressed() && p.JumpCount < 2 {
			p.VY = -pt.DoubleJumpForce * s.ts
			p.JumpCount = 2
			s.cue(CueJump)
		}
	}
}

func (s *Simulation) handleShoot(p *entity.Entity, in Input) {
	if !in.ShootPressed() || !p.CanShoot || p.ShootCooldown > 0 {
		return
	}
	speed := s.tuning.Projectile.FireballSpeed
	if s.weapon == entity.BulletBanana {
		speed = s.tuning.Projectile.BananaSpeed
	}
	s.queue(ShootIntent{
		Owner:   p,
		Variant: s.weapon,
		Dir:     p.Facing,
		Speed:   speed,
	})
	p.ShootCooldown = s.tuning.Player.ShootCooldown
	s.cue(CueShoot)
}

// updateCrouch lowers the box while down is held on the ground and stands
// back up only when there is room overhead. The bottom edge never moves.
func (s *Simulation) updateCrouch(p *entity.Entity, in Input) {
	standing := s.standingHeight(p)
	want := in.Now.Down && p.Grounded && !p.InWater

	switch {
	case want && !p.Crouching:
		p.Crouching = true
		p.SetHeightKeepBottom(standing * s.tuning.Player.CrouchRatio)
	case !want && p.Crouching && s.hasHeadroom(p, standing):
		p.Crouching = false
		p.SetHeightKeepBottom(standing)
	}
}

func (s *Simulation) standingHeight(p *entity.Entity) float64 {
	if p.Big {
		return s.tuning.Player.BigHeight * s.ts
	}
	return s.tuning.Player.SmallHeight * s.ts
}

func (s *Simulation) hasHeadroom(p *entity.Entity, h float64) bool {
	return !s.rectSolid(p.X, p.Bottom()-h, p.W, h)
}

// grow makes the player big. Without room to stand it grows crouched.
func (s *Simulation) grow(p *entity.Entity) {
	if p.Big {
		return
	}
	p.Big = true
	big := s.standingHeight(p)
	if p.Crouching || !s.hasHeadroom(p, big) {
		p.Crouching = true
		p.SetHeightKeepBottom(big * s.tuning.Player.CrouchRatio)
		return
	}
	p.SetHeightKeepBottom(big)
}

// shrink returns a big player to small size and drops fire power
func (s *Simulation) shrink(p *entity.Entity) {
	p.Big = false
	p.CanShoot = false
	p.Crouching = false
	p.SetHeightKeepBottom(s.tuning.Player.SmallHeight * s.ts)
}

// damagePlayer shrinks a big player or kills a small one.
// Invincibility and death both absorb further hits in the same step.
func (s *Simulation) damagePlayer() {
	p := s.player
	if p.Dead || p.IsInvincible() {
		return
	}
	if p.Big {
		s.shrink(p)
		p.InvincibleTimer = s.tuning.Player.InvincibleTime
		s.cue(CueBump)
		return
	}
	s.killPlayer()
}

func (s *Simulation) killPlayer() {
	p := s.player
	if p.Dead {
		return
	}
	p.Dead = true
	p.VX = 0
	s.cue(CueDie)
}

package system

import (
	"math"

	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
)

// stepPhysics integrates every moving entity, then the particles
func (s *Simulation) stepPhysics(dt float64) {
	for _, e := range s.entities {
		if e.Dead || e.IsBullet || e.Static() {
			continue
		}
		s.integrate(e, dt)
	}
	s.stepParticles(dt)
}

// integrate applies gravity and water, then moves X before Y.
// Contact flags are cleared between the two axes and rebuilt by the Y sweep
// and the overlap pass.
func (s *Simulation) integrate(e *entity.Entity, dt float64) {
	pt := s.tuning.Physics

	if e.HasGravity {
		gravity := pt.Gravity * s.ts
		terminal := pt.MaxFallSpeed * s.ts
		if e.InWater {
			gravity *= pt.WaterGravityFactor
			terminal *= pt.WaterTerminalFactor
		}
		e.VY += gravity * dt
		if e.VY > terminal {
			e.VY = terminal
		}
	}
	if e.InWater {
		drag := math.Pow(pt.WaterDrag, dt*60)
		e.VX *= drag
		e.VY *= drag
	}

	hurt := s.moveX(e, e.VX*dt)

	e.Grounded = false
	e.InWater = false
	e.FrictionMultiplier = 1

	if s.moveY(e, e.VY*dt) {
		hurt = true
	}

	if e.Dead {
		return
	}
	s.overlapTiles(e, hurt)
}

func (s *Simulation) stepParticles(dt float64) {
	gravity := s.tuning.Physics.ParticleGravity * s.ts
	live := s.particles[:0]
	for _, p := range s.particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.VY += gravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		live = append(live, p)
	}
	s.particles = live
}

func (s *Simulation) spawnBurst(b BurstIntent) {
	life := s.tuning.Physics.ParticleLife
	c := entity.ParticleColors[b.Kind]
	for i := 0; i < b.Count; i++ {
		s.particles = append(s.particles, entity.Particle{
			X:       b.X,
			Y:       b.Y,
			VX:      (s.rng.Float64()*2 - 1) * 3 * s.ts,
			VY:      -(2 + s.rng.Float64()*4) * s.ts,
			Color:   c,
			Life:    life,
			MaxLife: life,
		})
	}
}

package system

import (
	"math"

	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
)

// spawnBullet creates a bullet just outside the owner's box on its
// facing side, vertically centred
func (s *Simulation) spawnBullet(it ShootIntent) *entity.Entity {
	pt := s.tuning.Projectile
	o := it.Owner
	size := pt.Size * s.ts
	dir := it.Dir
	if dir == 0 {
		dir = 1
	}

	kind := entity.KindFireball
	if it.Variant == entity.BulletBanana {
		kind = entity.KindBanana
	}

	x := o.Right()
	if dir < 0 {
		x = o.X - size
	}
	b := &entity.Entity{
		ID:                 s.newID(),
		Kind:               kind,
		Def:                s.stage.Registry.ByKind(kind),
		X:                  x,
		Y:                  o.CenterY() - size/2,
		W:                  size,
		H:                  size,
		VX:                 float64(dir) * it.Speed * s.ts,
		IsBullet:           true,
		IsEnemy:            it.Enemy,
		Facing:             dir,
		FrictionMultiplier: 1,
		Behavior:           &entity.BulletState{Variant: it.Variant, Life: pt.Lifetime},
	}
	if it.Variant == entity.BulletBanana {
		b.HasGravity = true
		b.VY = -pt.BananaLift * s.ts
	}
	return b
}

// updateProjectiles moves bullets and retires them on tile impact, entity
// impact, leaving the map or running out of life
func (s *Simulation) updateProjectiles(dt float64) {
	for _, b := range s.entities {
		if !b.IsBullet || b.Dead {
			continue
		}
		st, ok := b.Behavior.(*entity.BulletState)
		if !ok {
			b.Dead = true
			continue
		}

		st.Life -= dt
		if st.Life <= 0 {
			b.Dead = true
			continue
		}

		switch st.Variant {
		case entity.BulletBanana:
			b.VY += s.tuning.Physics.Gravity * s.ts * dt
			s.moveX(b, b.VX*dt)
			if !b.Dead {
				s.moveY(b, b.VY*dt)
			}
		default:
			s.moveFireball(b, dt)
		}

		if b.Dead {
			continue
		}
		if b.Right() < 0 || b.X > s.stage.PixelWidth() || b.Bottom() < 0 || b.Y > s.stage.PixelHeight() {
			b.Dead = true
			continue
		}
		s.bulletHits(b)
	}
}

// moveFireball flies straight, probing the tile under its centre after
// every substep
func (s *Simulation) moveFireball(b *entity.Entity, dt float64) {
	dx, dy := b.VX*dt, b.VY*dt
	d := dx
	if math.Abs(dy) > math.Abs(d) {
		d = dy
	}
	n, _ := s.substeps(d)
	for i := 0; i < n; i++ {
		b.X += dx / float64(n)
		b.Y += dy / float64(n)
		if s.stage.IsSolidAt(b.CenterX(), b.CenterY()) {
			b.Dead = true
			return
		}
	}
}

// bulletHits applies the first hit on a target of the opposite side.
// Enemy bullets only hurt the player, player bullets only hurt enemies.
func (s *Simulation) bulletHits(b *entity.Entity) {
	for _, t := range s.entities {
		if t == b || t.Dead || t.IsBullet {
			continue
		}
		if !t.IsPlayer && !t.IsEnemy {
			continue
		}
		if t.IsEnemy == b.IsEnemy {
			continue
		}

		if t.IsPlayer {
			if !b.Overlaps(t) {
				continue
			}
			b.Dead = true
			s.damagePlayer()
			return
		}

		if t.Def.Hazard {
			continue
		}
		r, ok := s.hurtRect(t)
		if !ok || !b.Rect().Intersects(r) {
			continue
		}
		b.Dead = true
		t.Dead = true
		s.award(t.Def.Points)
		s.cue(CueStomp)
		s.queue(BurstIntent{X: t.CenterX(), Y: t.CenterY(), Kind: entity.ParticleSpark, Count: 6})
		return
	}
}

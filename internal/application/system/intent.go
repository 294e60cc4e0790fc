package system

import "github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"

// Intent is a spawn request raised mid-step and applied at the end of it,
// so the live entity list never grows while it is being walked
type Intent interface {
	isIntent()
}

// ShootIntent asks for a bullet fired by Owner
type ShootIntent struct {
	Owner   *entity.Entity
	Variant entity.BulletVariant
	Dir     int     // -1 for left, 1 for right
	Speed   float64 // tiles/s
	Enemy   bool
}

func (ShootIntent) isIntent() {}

// BurstIntent asks for a particle burst centred at X, Y (pixels)
type BurstIntent struct {
	X, Y  float64
	Kind  entity.ParticleKind
	Count int
}

func (BurstIntent) isIntent() {}

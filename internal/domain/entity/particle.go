package entity

import "image/color"

// ParticleKind selects the palette of a particle
type ParticleKind int

const (
	ParticleDebris ParticleKind = iota
	ParticleSpark
	ParticleSmoke
	ParticleCoin
)

// ParticleColors maps particle kinds to their colors
var ParticleColors = map[ParticleKind]color.RGBA{
	ParticleDebris: {176, 96, 48, 255},
	ParticleSpark:  {255, 180, 60, 255},
	ParticleSmoke:  {160, 160, 160, 255},
	ParticleCoin:   {255, 215, 0, 255},
}

// Particle is a visual-only fragment. It never collides.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   color.RGBA
	Life    float64 // seconds left
	MaxLife float64
}

// Alpha returns the remaining opacity (0-1) for rendering
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	a := p.Life / p.MaxLife
	if a < 0 {
		return 0
	}
	return a
}

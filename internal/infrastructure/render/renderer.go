// Package render draws the simulation onto an ebiten image with flat
// colored shapes. It implements system.DrawSink.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Niaki1412/Super-Mario-Game/internal/application/system"
	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
)

var (
	colorUnknown  = color.RGBA{255, 0, 255, 255}
	colorOutline  = color.RGBA{0, 0, 0, 90}
	colorBall     = color.RGBA{90, 90, 110, 255}
	colorChain    = color.RGBA{140, 140, 150, 255}
	colorBigHat   = color.RGBA{220, 40, 40, 255}
	colorFireSuit = color.RGBA{255, 250, 240, 255}
)

// Palette maps every drawable kind to its fill color
var Palette = map[entity.Kind]color.RGBA{
	entity.KindGround:    {150, 90, 40, 255},
	entity.KindBrick:     {184, 80, 40, 255},
	entity.KindQuestion:  {240, 180, 30, 255},
	entity.KindUsedBlock: {120, 90, 60, 255},
	entity.KindHardBlock: {110, 110, 120, 255},
	entity.KindPipe:      {40, 170, 60, 255},
	entity.KindWater:     {40, 100, 220, 140},
	entity.KindLava:      {240, 80, 20, 255},
	entity.KindIce:       {170, 220, 255, 255},
	entity.KindSpikes:    {200, 200, 210, 255},
	entity.KindCloud:     {250, 250, 250, 255},

	entity.KindPlayer:        {60, 120, 230, 255},
	entity.KindGoomba:        {140, 80, 40, 255},
	entity.KindTurtle:        {60, 180, 80, 255},
	entity.KindFlyingTurtle:  {90, 210, 120, 255},
	entity.KindPlant:         {30, 150, 50, 255},
	entity.KindHopper:        {170, 60, 170, 255},
	entity.KindFireDino:      {210, 70, 40, 255},
	entity.KindBomb:          {30, 30, 30, 255},
	entity.KindPopSpike:      {180, 180, 190, 255},
	entity.KindRotatingSpike: {90, 90, 110, 255},
	entity.KindLightning:     {250, 240, 90, 255},
	entity.KindCoin:          {255, 215, 0, 255},
	entity.KindGem:           {80, 230, 230, 255},
	entity.KindMushroom:      {230, 60, 60, 255},
	entity.KindFireFlower:    {255, 140, 0, 255},
	entity.KindGoal:          {240, 240, 240, 255},
	entity.KindSpring:        {230, 60, 120, 255},
	entity.KindBoostPad:      {255, 120, 200, 255},
	entity.KindCrate:         {160, 110, 60, 255},
	entity.KindBush:          {50, 160, 60, 200},
	entity.KindSign:          {190, 150, 90, 255},
	entity.KindFireball:      {255, 120, 0, 255},
	entity.KindBanana:        {250, 220, 60, 255},
}

// KindColor returns the fill color for a kind, magenta when unknown
func KindColor(k entity.Kind) color.RGBA {
	if c, ok := Palette[k]; ok {
		return c
	}
	return colorUnknown
}

// Fade scales every channel by a in [0,1]. ebiten colors are premultiplied.
func Fade(c color.RGBA, a float64) color.RGBA {
	if a <= 0 {
		return color.RGBA{}
	}
	if a >= 1 {
		return c
	}
	return color.RGBA{
		uint8(float64(c.R) * a),
		uint8(float64(c.G) * a),
		uint8(float64(c.B) * a),
		uint8(float64(c.A) * a),
	}
}

// EntityColor picks the fill for a snapshot from its state
func EntityColor(s system.Snapshot) color.RGBA {
	c := KindColor(s.Kind)
	switch {
	case s.IsPlayer && s.CanShoot:
		c = colorFireSuit
	case s.Shell:
		c = color.RGBA{c.R / 2, c.G / 2, c.B / 2, 255}
	case s.Kind == entity.KindBomb && s.Phase == entity.BombIgnited.String():
		c = color.RGBA{220, 40, 20, 255}
	case s.Kind == entity.KindLightning && s.Phase == "off":
		c = Fade(c, 0.25)
	case s.Kind == entity.KindPopSpike && s.Phase != entity.SpikeActive.String():
		c = Fade(c, 0.5)
	}
	if s.Invincible {
		c = Fade(c, 0.5)
	}
	return c
}

// Renderer draws onto a single target image
type Renderer struct {
	screen *ebiten.Image
}

// New creates a renderer targeting screen
func New(screen *ebiten.Image) *Renderer {
	return &Renderer{screen: screen}
}

// DrawTile fills one tile. Question blocks get a mark.
func (r *Renderer) DrawTile(id int, def *entity.ElementDef, x, y, size float64) {
	c := colorUnknown
	if def != nil {
		c = KindColor(def.Kind)
	}
	fillRect(r.screen, x, y, size, size, c)
	vector.StrokeRect(r.screen, float32(x), float32(y), float32(size), float32(size), 1, colorOutline, false)

	if id == entity.TileQuestion {
		ebitenutil.DebugPrintAt(r.screen, "?", int(x+size/2)-3, int(y+size/2)-8)
	}
}

// DrawEntity draws an entity box at screen position x, y
func (r *Renderer) DrawEntity(s system.Snapshot, x, y float64) {
	if s.HasBall {
		r.drawOrbit(s, x, y)
		return
	}

	c := EntityColor(s)
	switch s.Kind {
	case entity.KindCoin, entity.KindFireball, entity.KindBanana, entity.KindGem:
		vector.DrawFilledCircle(r.screen, float32(x+s.W/2), float32(y+s.H/2), float32(s.W/2), c, true)
	default:
		fillRect(r.screen, x, y, s.W, s.H, c)
	}

	if s.IsPlayer && s.Big {
		fillRect(r.screen, x, y, s.W, s.H/6, colorBigHat)
	}
	if s.Text != "" {
		ebitenutil.DebugPrintAt(r.screen, s.Text, int(x), int(y)-16)
	}
}

// drawOrbit draws the pivot, the chain and the ball. x, y is the pivot
// box in screen space; the ball position is in world space, so it is
// shifted by the same camera offset.
func (r *Renderer) drawOrbit(s system.Snapshot, x, y float64) {
	camX := s.X - x
	cx, cy := x+s.W/2, y+s.H/2
	bx, by := s.BallX-camX, s.BallY
	fillRect(r.screen, x, y, s.W, s.H, KindColor(s.Kind))
	vector.StrokeLine(r.screen, float32(cx), float32(cy), float32(bx), float32(by), 2, colorChain, true)
	vector.DrawFilledCircle(r.screen, float32(bx), float32(by), float32(s.BallRadius), colorBall, true)
}

// DrawParticle draws a fading 3px square
func (r *Renderer) DrawParticle(p entity.Particle, x, y float64) {
	fillRect(r.screen, x-1.5, y-1.5, 3, 3, Fade(p.Color, p.Alpha()))
}

// Text prints debug text at a screen position
func (r *Renderer) Text(s string, x, y int) {
	ebitenutil.DebugPrintAt(r.screen, s, x, y)
}

// Overlay tints the whole screen
func (r *Renderer) Overlay(c color.RGBA) {
	b := r.screen.Bounds()
	fillRect(r.screen, 0, 0, float64(b.Dx()), float64(b.Dy()), c)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

var _ system.DrawSink = (*Renderer)(nil)

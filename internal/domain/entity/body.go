package entity

import "math"

// Epsilon keeps box edges from spilling into the next tile when the
// box ends exactly on a tile boundary
const Epsilon = 0.001

// Rect is an axis-aligned box in pixels
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether two boxes overlap with positive area
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// IntersectsCircle reports whether the box touches a circle
func (r Rect) IntersectsCircle(cx, cy, radius float64) bool {
	nx := math.Max(r.X, math.Min(cx, r.X+r.W))
	ny := math.Max(r.Y, math.Min(cy, r.Y+r.H))
	dx := cx - nx
	dy := cy - ny
	return dx*dx+dy*dy < radius*radius
}

// Entity is a dynamic simulation object: player, enemy, collectible,
// trigger, decoration or bullet. Position is the top-left corner in pixels,
// velocity is in pixels per second.
type Entity struct {
	ID   EntityID
	Kind Kind
	Def  *ElementDef

	X, Y   float64
	W, H   float64
	VX, VY float64

	IsPlayer      bool
	IsEnemy       bool
	IsBullet      bool
	IsCollectible bool
	Dead          bool
	Grounded      bool
	HasGravity    bool
	InWater       bool
	Crouching     bool
	CanShoot      bool
	Big           bool

	Facing             int // +1 right, -1 left
	InvincibleTimer    float64
	ShootCooldown      float64
	JumpCount          int
	FrictionMultiplier float64

	// Text is the optional label of a sign
	Text string

	Behavior Behavior
}

// NewEntity creates an entity from its definition, sized in tiles and
// standing on the bottom edge of tile (tx, ty)
func NewEntity(id EntityID, def *ElementDef, tx, ty, tileSize int) *Entity {
	ts := float64(tileSize)
	w := def.Width * ts
	h := def.Height * ts
	e := &Entity{
		ID:                 id,
		Kind:               def.Kind,
		Def:                def,
		X:                  float64(tx)*ts + (ts-w)/2,
		Y:                  float64(ty+1)*ts - h,
		W:                  w,
		H:                  h,
		IsEnemy:            def.Category == CategoryEnemy,
		IsCollectible:      def.Category == CategoryCollectible,
		HasGravity:         def.Gravity,
		Facing:             -1,
		FrictionMultiplier: 1,
	}
	switch {
	case def.Kind == KindMushroom:
		e.Facing = 1
		e.VX = def.Speed * ts
	case e.IsEnemy:
		e.VX = -def.Speed * ts
	}
	return e
}

// NewPlayer creates the player entity with its box bottom at pixel y
func NewPlayer(id EntityID, def *ElementDef, x, bottom float64, tileSize int) *Entity {
	ts := float64(tileSize)
	return &Entity{
		ID:                 id,
		Kind:               KindPlayer,
		Def:                def,
		X:                  x,
		Y:                  bottom - def.Height*ts,
		W:                  def.Width * ts,
		H:                  def.Height * ts,
		IsPlayer:           true,
		HasGravity:         true,
		Facing:             1,
		FrictionMultiplier: 1,
	}
}

// Rect returns the bounding box
func (e *Entity) Rect() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// Overlaps reports whether two entity boxes intersect
func (e *Entity) Overlaps(o *Entity) bool {
	return e.Rect().Intersects(o.Rect())
}

// Bottom returns the bottom edge
func (e *Entity) Bottom() float64 { return e.Y + e.H }

// Right returns the right edge
func (e *Entity) Right() float64 { return e.X + e.W }

// CenterX returns the horizontal center
func (e *Entity) CenterX() float64 { return e.X + e.W/2 }

// CenterY returns the vertical center
func (e *Entity) CenterY() float64 { return e.Y + e.H/2 }

// SetHeightKeepBottom resizes the box vertically without moving its bottom edge
func (e *Entity) SetHeightKeepBottom(h float64) {
	bottom := e.Bottom()
	e.H = h
	e.Y = bottom - h
}

// IsInvincible returns true while damage is blocked
func (e *Entity) IsInvincible() bool {
	return e.InvincibleTimer > 0
}

// IsShell reports whether a turtle is in its shell
func (e *Entity) IsShell() bool {
	t, ok := e.Behavior.(*TurtleState)
	return ok && t.Shell
}

// Patrols reports whether the entity turns around on walls instead of stopping
func (e *Entity) Patrols() bool {
	return e.IsEnemy || e.Kind == KindMushroom
}

// Static reports whether the entity is skipped by physics
func (e *Entity) Static() bool {
	if e.Def == nil {
		return false
	}
	return e.Def.Static || e.Def.Category == CategoryDecoration
}

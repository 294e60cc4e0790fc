package system

import (
	"math"

	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
)

const eps = entity.Epsilon

// moveX moves an entity horizontally, split into substeps no longer than
// MaxSubstep tiles so a fast box cannot skip over a one-tile wall.
// Reports whether any substep left the box on a lava or lethal tile.
func (s *Simulation) moveX(e *entity.Entity, dx float64) (hurt bool) {
	if dx == 0 {
		return false
	}
	n, step := s.substeps(dx)
	for i := 0; i < n; i++ {
		stopped := s.sweepX(e, step)
		hurt = hurt || s.touchesHazard(e)
		if stopped {
			return hurt
		}
	}
	return hurt
}

// moveY moves an entity vertically with substeps, like moveX
func (s *Simulation) moveY(e *entity.Entity, dy float64) (hurt bool) {
	if dy == 0 {
		return false
	}
	n, step := s.substeps(dy)
	for i := 0; i < n; i++ {
		stopped := s.sweepY(e, step)
		hurt = hurt || s.touchesHazard(e)
		if stopped {
			return hurt
		}
	}
	return hurt
}

func (s *Simulation) substeps(d float64) (int, float64) {
	maxStep := s.tuning.Physics.MaxSubstep * s.ts
	n := int(math.Ceil(math.Abs(d) / maxStep))
	if n < 1 {
		n = 1
	}
	return n, d / float64(n)
}

// sweepX applies one horizontal substep and resolves the leading column.
// Returns true if the entity was stopped.
func (s *Simulation) sweepX(e *entity.Entity, dx float64) bool {
	e.X += dx
	ts := s.ts
	top := s.stage.TileCoord(e.Y)
	bottom := s.stage.TileCoord(e.Y + e.H - eps)

	if dx > 0 {
		if e.Right() > s.stage.PixelWidth() {
			e.X = s.stage.PixelWidth() - e.W
			s.hitWall(e)
			return true
		}
		col := s.stage.TileCoord(e.Right() - eps)
		for row := top; row <= bottom; row++ {
			if s.stage.IsSolid(s.stage.GetTile(col, row)) {
				e.X = float64(col)*ts - e.W
				s.hitWall(e)
				return true
			}
		}
		return false
	}

	if e.X < 0 {
		e.X = 0
		s.hitWall(e)
		return true
	}
	col := s.stage.TileCoord(e.X)
	for row := top; row <= bottom; row++ {
		if s.stage.IsSolid(s.stage.GetTile(col, row)) {
			e.X = float64(col+1) * ts
			s.hitWall(e)
			return true
		}
	}
	return false
}

// sweepY applies one vertical substep and resolves the leading row
func (s *Simulation) sweepY(e *entity.Entity, dy float64) bool {
	e.Y += dy
	ts := s.ts
	left := s.stage.TileCoord(e.X)
	right := s.stage.TileCoord(e.X + e.W - eps)

	if dy > 0 {
		if e.Bottom() > s.stage.PixelHeight() {
			e.Y = s.stage.PixelHeight() - e.H
			s.land(e)
			s.fellOut(e)
			return true
		}
		row := s.stage.TileCoord(e.Bottom() - eps)
		for col := left; col <= right; col++ {
			if s.stage.IsSolid(s.stage.GetTile(col, row)) {
				e.Y = float64(row)*ts - e.H
				s.land(e)
				return true
			}
		}
		return false
	}

	if e.Y < 0 {
		e.Y = 0
		s.hitCeiling(e)
		return true
	}
	row := s.stage.TileCoord(e.Y)
	for _, col := range s.headColumns(e, left, right) {
		if s.stage.IsSolid(s.stage.GetTile(col, row)) {
			e.Y = float64(row+1) * ts
			s.hitCeiling(e)
			if e.IsPlayer {
				s.bumpTile(e, col, row)
			}
			return true
		}
	}
	return false
}

// headColumns orders the columns under a rising head so the one holding
// the entity's centre is tried first; that tile takes the bump.
func (s *Simulation) headColumns(e *entity.Entity, left, right int) []int {
	center := s.stage.TileCoord(e.CenterX())
	cols := make([]int, 0, right-left+1)
	cols = append(cols, center)
	for col := left; col <= right; col++ {
		if col != center {
			cols = append(cols, col)
		}
	}
	return cols
}

func (s *Simulation) hitWall(e *entity.Entity) {
	switch {
	case e.IsBullet:
		e.Dead = true
	case e.Patrols():
		e.VX = -e.VX
		if e.VX > 0 {
			e.Facing = 1
		} else if e.VX < 0 {
			e.Facing = -1
		}
	default:
		e.VX = 0
	}
}

func (s *Simulation) land(e *entity.Entity) {
	if e.IsBullet {
		e.Dead = true
		return
	}
	e.VY = 0
	e.Grounded = true
	if e.IsPlayer {
		e.JumpCount = 0
	}
}

func (s *Simulation) hitCeiling(e *entity.Entity) {
	if e.IsBullet {
		e.Dead = true
		return
	}
	if e.VY < 0 {
		e.VY = 0
	}
}

// fellOut handles a box reaching the bottom edge of the map: it is a pit
func (s *Simulation) fellOut(e *entity.Entity) {
	if e.IsPlayer {
		s.killPlayer()
		return
	}
	e.Dead = true
}

// bumpTile applies the side effect of the player's head hitting a tile
func (s *Simulation) bumpTile(p *entity.Entity, col, row int) {
	def := s.stage.DefAt(col, row)
	if def == nil {
		return
	}
	cx := (float64(col) + 0.5) * s.ts
	cy := (float64(row) + 0.5) * s.ts

	switch {
	case def.Variant == entity.VariantQuestion:
		s.stage.SetTile(col, row, entity.SpentTileID)
		s.award(def.Points)
		s.cue(CueCoin)
		s.queue(BurstIntent{X: cx, Y: cy - s.ts, Kind: entity.ParticleCoin, Count: 6})
	case def.Destructible && p.Big:
		s.stage.SetTile(col, row, entity.TileEmpty)
		s.award(def.Points)
		s.cue(CueBump)
		s.queue(BurstIntent{X: cx, Y: cy, Kind: entity.ParticleDebris, Count: 8})
	default:
		s.cue(CueBump)
	}
}

// overlapTiles is the liquid and hazard pass over every tile the box covers.
// Water sets InWater, ice under the bottom edge lowers FrictionMultiplier.
// Lava and lethal tiles hurt at most once per step, whether they are under
// the final box or were crossed by a substep (swept).
func (s *Simulation) overlapTiles(e *entity.Entity, swept bool) {
	left := s.stage.TileCoord(e.X)
	right := s.stage.TileCoord(e.X + e.W - eps)
	top := s.stage.TileCoord(e.Y)
	bottom := s.stage.TileCoord(e.Y + e.H - eps)

	hurt := swept
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			id := s.stage.GetTile(col, row)
			if s.stage.LiquidOf(id) == entity.LiquidWater {
				e.InWater = true
			}
			if s.hazardous(id) {
				hurt = true
			}
		}
	}

	below := s.stage.TileCoord(e.Bottom() + eps)
	for col := left; col <= right; col++ {
		if f := s.stage.FrictionOf(s.stage.GetTile(col, below)); f < e.FrictionMultiplier {
			e.FrictionMultiplier = f
		}
	}

	if hurt {
		s.tileDamage(e)
	}
}

func (s *Simulation) hazardous(id int) bool {
	return s.stage.LiquidOf(id) == entity.LiquidLava || s.stage.IsLethal(id)
}

// touchesHazard reports whether the box overlaps a lava or lethal tile
func (s *Simulation) touchesHazard(e *entity.Entity) bool {
	left := s.stage.TileCoord(e.X)
	right := s.stage.TileCoord(e.X + e.W - eps)
	top := s.stage.TileCoord(e.Y)
	bottom := s.stage.TileCoord(e.Y + e.H - eps)
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if s.hazardous(s.stage.GetTile(col, row)) {
				return true
			}
		}
	}
	return false
}

func (s *Simulation) tileDamage(e *entity.Entity) {
	if e.IsPlayer {
		s.damagePlayer()
		return
	}
	e.Dead = true
}

// rectSolid reports whether any tile under the box is solid
func (s *Simulation) rectSolid(x, y, w, h float64) bool {
	left := s.stage.TileCoord(x)
	right := s.stage.TileCoord(x + w - eps)
	top := s.stage.TileCoord(y)
	bottom := s.stage.TileCoord(y + h - eps)
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			if s.stage.IsSolid(s.stage.GetTile(col, row)) {
				return true
			}
		}
	}
	return false
}

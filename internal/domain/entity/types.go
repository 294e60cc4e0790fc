package entity

import "math"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Stage is the tile world: the map's tile grid plus the element registry.
// Every lookup is total: out-of-range coordinates and unknown ids read as empty.
type Stage struct {
	Width    int // tiles
	Height   int // tiles
	TileSize int // pixels
	Tiles    [][]int
	Registry *Registry
}

// NewStage creates a stage over the given grid. Width is the longest row.
func NewStage(tiles [][]int, tileSize int, reg *Registry) *Stage {
	width := 0
	for _, row := range tiles {
		if len(row) > width {
			width = len(row)
		}
	}
	if tileSize <= 0 {
		tileSize = 32
	}
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Stage{
		Width:    width,
		Height:   len(tiles),
		TileSize: tileSize,
		Tiles:    tiles,
		Registry: reg,
	}
}

// GetTile returns the tile id at the given tile coordinates
func (s *Stage) GetTile(tx, ty int) int {
	if tx < 0 || ty < 0 || ty >= len(s.Tiles) {
		return TileEmpty
	}
	row := s.Tiles[ty]
	if tx >= len(row) {
		return TileEmpty
	}
	return row[tx]
}

// SetTile replaces the tile id at the given tile coordinates.
// Writes outside the grid are ignored.
func (s *Stage) SetTile(tx, ty, id int) {
	if tx < 0 || ty < 0 || ty >= len(s.Tiles) || tx >= len(s.Tiles[ty]) {
		return
	}
	s.Tiles[ty][tx] = id
}

// TileCoord converts a pixel coordinate to a tile coordinate
func (s *Stage) TileCoord(p float64) int {
	return int(math.Floor(p / float64(s.TileSize)))
}

// TileAt returns the tile id at the given pixel coordinates
func (s *Stage) TileAt(px, py float64) int {
	return s.GetTile(s.TileCoord(px), s.TileCoord(py))
}

// Def returns the definition of a tile id, or nil for empty and unknown ids
func (s *Stage) Def(id int) *ElementDef {
	if id == TileEmpty || s.Registry == nil {
		return nil
	}
	return s.Registry.ByID(id)
}

// DefAt returns the definition of the tile at tile coordinates
func (s *Stage) DefAt(tx, ty int) *ElementDef {
	return s.Def(s.GetTile(tx, ty))
}

// IsSolid reports whether a tile id blocks movement
func (s *Stage) IsSolid(id int) bool {
	d := s.Def(id)
	return d != nil && d.Solid
}

// IsLethal reports whether a tile id damages on overlap
func (s *Stage) IsLethal(id int) bool {
	d := s.Def(id)
	return d != nil && d.Lethal
}

// LiquidOf returns the liquid type of a tile id
func (s *Stage) LiquidOf(id int) Liquid {
	if d := s.Def(id); d != nil {
		return d.Liquid
	}
	return LiquidNone
}

// FrictionOf returns the friction multiplier of a tile id
func (s *Stage) FrictionOf(id int) float64 {
	if d := s.Def(id); d != nil {
		return d.Friction
	}
	return 1
}

// DestructibleOf reports whether a tile id can be broken
func (s *Stage) DestructibleOf(id int) bool {
	d := s.Def(id)
	return d != nil && d.Destructible
}

// PointsOf returns the score awarded by a tile id
func (s *Stage) PointsOf(id int) int {
	if d := s.Def(id); d != nil {
		return d.Points
	}
	return 0
}

// IsSolidAt checks if the tile at pixel coordinates is solid
func (s *Stage) IsSolidAt(px, py float64) bool {
	return s.IsSolid(s.TileAt(px, py))
}

// PixelWidth returns the map width in pixels
func (s *Stage) PixelWidth() float64 {
	return float64(s.Width * s.TileSize)
}

// PixelHeight returns the map height in pixels
func (s *Stage) PixelHeight() float64 {
	return float64(s.Height * s.TileSize)
}

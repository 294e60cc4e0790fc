package system

import (
	"github.com/charmbracelet/log"

	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/config"
)

// LoadStage converts a GameMap into a Stage. The tile grid is copied,
// so breaking bricks never writes back into the map.
func LoadStage(m *config.GameMap, reg *entity.Registry) *entity.Stage {
	tiles := make([][]int, len(m.Tiles))
	for y, row := range m.Tiles {
		tiles[y] = make([]int, len(row))
		copy(tiles[y], row)
	}
	return entity.NewStage(tiles, m.TileSize, reg)
}

// populate creates the player and one entity per known map object.
// The player is always first in the live list; the rest keep map order.
func (s *Simulation) populate(m *config.GameMap, logger *log.Logger) {
	reg := s.stage.Registry
	ts := s.stage.TileSize

	var start *config.MapObject
	objects := make([]*entity.Entity, 0, len(m.Objects))
	for i := range m.Objects {
		o := m.Objects[i]
		def := reg.ByName(o.Type)
		if def == nil {
			logger.Debug("skipping unknown object", "type", o.Type, "x", o.X, "y", o.Y)
			continue
		}

		switch def.Kind {
		case entity.KindPlayerStart:
			if start == nil {
				start = &o
			}
			continue
		case entity.KindPlayer, entity.KindFireball, entity.KindBanana:
			logger.Debug("skipping object that cannot be placed", "type", o.Type)
			continue
		}

		e := entity.NewEntity(0, def, o.X, o.Y, ts)
		e.Text = o.Text
		e.Behavior = s.newBehavior(e)
		objects = append(objects, e)
	}

	// Player at the first start marker, or one tile in from the bottom-left
	tx, ty := 1, s.stage.Height-2
	if start != nil {
		tx, ty = start.X, start.Y
	} else {
		logger.Debug("map has no player start, using default", "x", tx, "y", ty)
	}
	pdef := reg.ByKind(entity.KindPlayer)
	if pdef == nil {
		pdef = &entity.ElementDef{Name: "Player", Kind: entity.KindPlayer, Gravity: true, Width: 0.75, Height: s.tuning.Player.SmallHeight}
	}
	w := pdef.Width * s.ts
	x := float64(tx)*s.ts + (s.ts-w)/2
	bottom := float64(ty+1) * s.ts
	s.player = entity.NewPlayer(s.newID(), pdef, x, bottom, ts)
	s.player.SetHeightKeepBottom(s.tuning.Player.SmallHeight * s.ts)

	s.entities = make([]*entity.Entity, 0, len(objects)+16)
	s.entities = append(s.entities, s.player)
	for _, e := range objects {
		e.ID = s.newID()
		s.entities = append(s.entities, e)
	}

	logger.Debug("stage loaded",
		"name", m.Name,
		"width", s.stage.Width,
		"height", s.stage.Height,
		"entities", len(s.entities))
}

// newBehavior converts an object into its typed per-kind state
func (s *Simulation) newBehavior(e *entity.Entity) entity.Behavior {
	et := s.tuning.Enemy
	switch e.Kind {
	case entity.KindPlant:
		// start fully retracted into the pipe below
		home := e.Y + e.H
		e.Y = home
		return &entity.PlantState{Phase: entity.PlantHidden, HomeY: home}
	case entity.KindHopper:
		return &entity.HopperState{}
	case entity.KindFireDino:
		return &entity.DinoState{}
	case entity.KindBomb:
		return &entity.BombState{Phase: entity.BombWalking}
	case entity.KindPopSpike:
		return &entity.PopSpikeState{Phase: entity.SpikeHidden}
	case entity.KindRotatingSpike:
		return &entity.OrbitState{
			Radius:     et.Orbit.Radius * s.ts,
			BallRadius: et.Orbit.BallRadius * s.ts,
		}
	case entity.KindTurtle:
		return &entity.TurtleState{}
	case entity.KindFlyingTurtle:
		e.HasGravity = false
		return &entity.TurtleState{Flying: true}
	case entity.KindLightning:
		return &entity.LightningState{}
	}
	return nil
}

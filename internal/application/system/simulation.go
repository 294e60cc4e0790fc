package system

import (
	"errors"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/config"
)

// ErrNilMap is returned when a simulation is created without a map
var ErrNilMap = errors.New("simulation: nil map")

// DefaultViewportWidth is used when Options.ViewportWidth is zero
const DefaultViewportWidth = 640

// Options configures a Simulation
type Options struct {
	Seed          int64
	ViewportWidth float64              // pixels
	Weapon        entity.BulletVariant // what the player shoots once powered up
	Registry      *entity.Registry
	Audio         AudioSink
	Logger        *log.Logger
}

// Simulation owns the whole world state and advances it one step at a time.
// It is not safe for concurrent use.
type Simulation struct {
	stage     *entity.Stage
	tuning    config.Tuning
	ts        float64 // tile size in pixels
	entities  []*entity.Entity
	player    *entity.Entity
	particles []entity.Particle
	intents   []Intent
	rng       *rand.Rand
	audio     AudioSink
	weapon    entity.BulletVariant
	nextID    entity.EntityID

	viewportW float64
	cameraX   float64

	score     int
	stepScore int
	won       bool
	finished  bool
	frame     int
	elapsed   float64
}

// NewSimulation builds a simulation over a copy of the map's tile grid
func NewSimulation(m *config.GameMap, tuning config.Tuning, opts Options) (*Simulation, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	vw := opts.ViewportWidth
	if vw <= 0 {
		vw = DefaultViewportWidth
	}

	stage := LoadStage(m, opts.Registry)
	s := &Simulation{
		stage:     stage,
		tuning:    tuning,
		ts:        float64(stage.TileSize),
		rng:       rand.New(rand.NewSource(opts.Seed)),
		audio:     opts.Audio,
		weapon:    opts.Weapon,
		viewportW: vw,
	}
	s.populate(m, logger)
	s.updateCamera()
	return s, nil
}

// Step advances the simulation by dt seconds.
// Once the player has died or reached the goal, Step does nothing.
func (s *Simulation) Step(dt float64, in Input) StepResult {
	if s.finished || dt <= 0 {
		return StepResult{}
	}
	s.stepScore = 0
	s.frame++
	s.elapsed += dt

	s.purge()

	s.updatePlayer(in, dt)
	s.updateEnemies(dt)

	s.stepPhysics(dt)

	s.resolveCombat()

	s.updateProjectiles(dt)
	s.applyIntents()

	s.updateCamera()

	res := StepResult{ScoreDelta: s.stepScore}
	switch {
	case s.player.Dead:
		res.Died = true
		s.finished = true
	case s.won:
		res.Won = true
		s.finished = true
	}
	return res
}

// purge drops dead entities from the previous step. The player stays.
func (s *Simulation) purge() {
	live := s.entities[:0]
	for _, e := range s.entities {
		if e.IsPlayer || !e.Dead {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	s.entities = live
}

func (s *Simulation) applyIntents() {
	for _, in := range s.intents {
		switch it := in.(type) {
		case ShootIntent:
			s.entities = append(s.entities, s.spawnBullet(it))
		case BurstIntent:
			s.spawnBurst(it)
		}
	}
	s.intents = s.intents[:0]
}

func (s *Simulation) queue(it Intent) {
	s.intents = append(s.intents, it)
}

func (s *Simulation) cue(c Cue) {
	if s.audio != nil {
		s.audio.Cue(c)
	}
}

func (s *Simulation) award(points int) {
	s.score += points
	s.stepScore += points
}

func (s *Simulation) newID() entity.EntityID {
	s.nextID++
	return s.nextID
}

// SetAudio replaces the audio sink. nil discards cues.
func (s *Simulation) SetAudio(a AudioSink) {
	s.audio = a
}

// Stage returns the tile world
func (s *Simulation) Stage() *entity.Stage { return s.stage }

// Score returns the total score
func (s *Simulation) Score() int { return s.score }

// CameraX returns the horizontal scroll offset in pixels
func (s *Simulation) CameraX() float64 { return s.cameraX }

// Finished reports whether the player has died or won
func (s *Simulation) Finished() bool { return s.finished }

// Won reports whether the goal was reached
func (s *Simulation) Won() bool { return s.won }

// Frame returns the number of steps taken
func (s *Simulation) Frame() int { return s.frame }

// Elapsed returns simulated seconds
func (s *Simulation) Elapsed() float64 { return s.elapsed }

// Player returns a snapshot of the player
func (s *Simulation) Player() Snapshot { return snapshotOf(s.player) }

// Snapshots returns every live entity, in update order
func (s *Simulation) Snapshots() []Snapshot {
	out := make([]Snapshot, 0, len(s.entities))
	for _, e := range s.entities {
		if e.Dead && !e.IsPlayer {
			continue
		}
		out = append(out, snapshotOf(e))
	}
	return out
}

// Particles returns a copy of the live particles
func (s *Simulation) Particles() []entity.Particle {
	out := make([]entity.Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// Draw emits draw intents for everything inside a viewW x viewH viewport
// at the current camera offset. Only the horizontal axis scrolls.
func (s *Simulation) Draw(sink DrawSink, viewW, viewH float64) {
	if sink == nil {
		return
	}
	ts := s.ts
	camX := s.cameraX

	startTX := int(math.Floor(camX / ts))
	endTX := int(math.Floor((camX + viewW) / ts))
	endTY := int(math.Floor(viewH / ts))
	for ty := 0; ty <= endTY && ty < s.stage.Height; ty++ {
		for tx := startTX; tx <= endTX && tx < s.stage.Width; tx++ {
			id := s.stage.GetTile(tx, ty)
			if id == entity.TileEmpty {
				continue
			}
			sink.DrawTile(id, s.stage.Def(id), float64(tx)*ts-camX, float64(ty)*ts, ts)
		}
	}

	for _, e := range s.entities {
		if e.IsPlayer || e.Dead {
			continue
		}
		if e.Right() < camX-ts || e.X > camX+viewW+ts {
			continue
		}
		sink.DrawEntity(snapshotOf(e), e.X-camX, e.Y)
	}
	sink.DrawEntity(snapshotOf(s.player), s.player.X-camX, s.player.Y)

	for _, p := range s.particles {
		sink.DrawParticle(p, p.X-camX, p.Y)
	}
}

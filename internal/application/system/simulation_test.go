package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/config"
)

const testDT = 1.0 / 60.0

var tileRunes = map[rune]int{
	'.': entity.TileEmpty,
	'#': entity.TileGround,
	'B': entity.TileBrick,
	'?': entity.TileQuestion,
	'H': entity.TileHardBlock,
	'P': entity.TilePipe,
	'W': entity.TileWater,
	'L': entity.TileLava,
	'I': entity.TileIce,
	'^': entity.TileSpikes,
}

// createTestMap builds a 32px map from ASCII rows
func createTestMap(rows ...string) *config.GameMap {
	tiles := make([][]int, len(rows))
	for y, row := range rows {
		tiles[y] = make([]int, 0, len(row))
		for _, ch := range row {
			tiles[y] = append(tiles[y], tileRunes[ch])
		}
	}
	return &config.GameMap{Name: "test", TileSize: 32, Tiles: tiles}
}

// flatMap is 10x5 tiles with ground on the bottom row.
// Objects at y=3 stand on it with their bottom at 128.
func flatMap() *config.GameMap {
	return createTestMap(
		"..........",
		"..........",
		"..........",
		"..........",
		"##########",
	)
}

func obj(typ string, x, y int) config.MapObject {
	return config.MapObject{Type: typ, X: x, Y: y}
}

func createTestSim(t *testing.T, m *config.GameMap, objects ...config.MapObject) *Simulation {
	t.Helper()
	m.Objects = append(m.Objects, objects...)
	s, err := NewSimulation(m, config.DefaultTuning(), Options{Seed: 1, ViewportWidth: 320})
	require.NoError(t, err)
	return s
}

// findKind returns the first live entity of a kind
func findKind(s *Simulation, k entity.Kind) *entity.Entity {
	for _, e := range s.entities {
		if e.Kind == k && !e.Dead {
			return e
		}
	}
	return nil
}

func countBullets(s *Simulation) int {
	n := 0
	for _, e := range s.entities {
		if e.IsBullet && !e.Dead {
			n++
		}
	}
	return n
}

type cueRecorder struct {
	cues []Cue
}

func (r *cueRecorder) Cue(c Cue) { r.cues = append(r.cues, c) }

func (r *cueRecorder) count(c Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func withRecorder(s *Simulation) *cueRecorder {
	r := &cueRecorder{}
	s.SetAudio(r)
	return r
}

// settle runs idle steps so everything lands
func settle(s *Simulation, n int) {
	for i := 0; i < n; i++ {
		s.Step(testDT, Input{})
	}
}

func TestNewSimulation_NilMap(t *testing.T) {
	s, err := NewSimulation(nil, config.DefaultTuning(), Options{})
	assert.ErrorIs(t, err, ErrNilMap)
	assert.Nil(t, s)
}

func TestNewSimulation_PlayerAtStart(t *testing.T) {
	s := createTestSim(t, flatMap(),
		obj("Goomba", 6, 3),
		obj("Player Start", 2, 3),
		obj("Player Start", 8, 3),
	)

	require.NotNil(t, s.player)
	assert.Same(t, s.player, s.entities[0], "player leads the live list")
	assert.Equal(t, 1, countPlayers(s))
	assert.InDelta(t, 2*32+(32-24)/2.0, s.player.X, 1e-9)
	assert.InDelta(t, 128, s.player.Bottom(), 1e-9)
	assert.InDelta(t, 0.95*32, s.player.H, 1e-9)

	g := findKind(s, entity.KindGoomba)
	require.NotNil(t, g)
	assert.NotEqual(t, s.player.ID, g.ID)
}

func countPlayers(s *Simulation) int {
	n := 0
	for _, e := range s.entities {
		if e.IsPlayer {
			n++
		}
	}
	return n
}

func TestNewSimulation_DefaultStart(t *testing.T) {
	s := createTestSim(t, flatMap())

	assert.InDelta(t, 32+4, s.player.X, 1e-9)
	assert.InDelta(t, 128, s.player.Bottom(), 1e-9)
}

func TestNewSimulation_SkipsUnknownObjects(t *testing.T) {
	s := createTestSim(t, flatMap(),
		obj("Dragon", 4, 3),
		obj("Coin", 5, 2),
		obj("Fireball", 6, 3),
	)

	assert.Len(t, s.entities, 2)
	assert.NotNil(t, findKind(s, entity.KindCoin))
}

func TestNewSimulation_CopiesTiles(t *testing.T) {
	m := flatMap()
	s := createTestSim(t, m)

	s.stage.SetTile(0, 4, entity.TileEmpty)
	assert.Equal(t, entity.TileGround, m.Tiles[4][0])
}

func TestNewSimulation_RaggedRows(t *testing.T) {
	m := createTestMap(
		"....",
		"..",
		"####",
	)
	s := createTestSim(t, m, obj("Player Start", 3, 1))
	settle(s, 30)

	assert.False(t, s.player.Dead)
	assert.True(t, s.player.Grounded)
	assert.Equal(t, entity.TileEmpty, s.stage.GetTile(3, 1))
}

func TestStep_DiedFiresOnce(t *testing.T) {
	s := createTestSim(t, flatMap(), obj("Player Start", 2, 3))
	rec := withRecorder(s)

	s.killPlayer()
	s.killPlayer()
	res := s.Step(testDT, Input{})
	assert.True(t, res.Died)
	assert.True(t, s.Finished())

	res = s.Step(testDT, Input{})
	assert.False(t, res.Died)
	assert.Equal(t, 1, rec.count(CueDie))
}

func TestStep_IgnoresNonPositiveDelta(t *testing.T) {
	s := createTestSim(t, flatMap(), obj("Player Start", 2, 1))
	y := s.player.Y

	s.Step(0, Input{})
	s.Step(-1, Input{})
	assert.Equal(t, y, s.player.Y)
	assert.Equal(t, 0, s.Frame())
}

func TestStep_DeadRemovedAtNextStep(t *testing.T) {
	s := createTestSim(t, flatMap(), obj("Player Start", 1, 3), obj("Coin", 7, 1))
	coin := findKind(s, entity.KindCoin)
	require.NotNil(t, coin)

	coin.Dead = true
	assert.Contains(t, s.entities, coin, "still in the live list until the next step")
	assert.Len(t, s.Snapshots(), 1)

	s.Step(testDT, Input{})
	assert.NotContains(t, s.entities, coin)
}

func TestStep_PlayerNeverPurged(t *testing.T) {
	s := createTestSim(t, flatMap(), obj("Player Start", 1, 3))
	s.player.Dead = true
	s.purge()
	assert.Contains(t, s.entities, s.player)
}

func TestSimulation_Deterministic(t *testing.T) {
	build := func() *Simulation {
		m := createTestMap(
			"..........",
			"...B..?...",
			"..........",
			"..........",
			"##########",
		)
		return createTestSim(t, m,
			obj("Player Start", 3, 3),
			obj("Goomba", 8, 3),
			obj("Mushroom", 1, 3),
		)
	}
	a, b := build(), build()
	a.grow(a.player)
	b.grow(b.player)

	prev := Keys{}
	for i := 0; i < 240; i++ {
		now := Keys{Right: i%90 < 60, Jump: i%40 == 0, DoubleJump: i%40 == 10}
		in := NewInput(now, prev)
		ra := a.Step(testDT, in)
		rb := b.Step(testDT, in)
		require.Equal(t, ra, rb, "frame %d", i)
		prev = now
	}

	assert.Equal(t, a.Snapshots(), b.Snapshots())
	assert.Equal(t, a.Particles(), b.Particles())
	assert.Equal(t, a.Score(), b.Score())
}

type drawCounter struct {
	tiles, entities, particles int
	players                    int
}

func (d *drawCounter) DrawTile(int, *entity.ElementDef, float64, float64, float64) { d.tiles++ }
func (d *drawCounter) DrawEntity(snap Snapshot, _, _ float64) {
	d.entities++
	if snap.IsPlayer {
		d.players++
	}
}
func (d *drawCounter) DrawParticle(entity.Particle, float64, float64) { d.particles++ }

func TestSimulation_Draw(t *testing.T) {
	s := createTestSim(t, flatMap(), obj("Player Start", 1, 3), obj("Coin", 3, 2))
	s.queue(BurstIntent{X: 50, Y: 50, Kind: entity.ParticleDebris, Count: 3})
	s.applyIntents()

	d := &drawCounter{}
	s.Draw(d, 320, 160)

	assert.Equal(t, 10, d.tiles, "ground row only")
	assert.Equal(t, 2, d.entities)
	assert.Equal(t, 1, d.players)
	assert.Equal(t, 3, d.particles)

	assert.NotPanics(t, func() { s.Draw(nil, 320, 160) })
}

func TestSimulation_NilAudioDiscards(t *testing.T) {
	s := createTestSim(t, flatMap(), obj("Player Start", 1, 3))
	s.SetAudio(nil)
	assert.NotPanics(t, func() { s.cue(CueJump) })
}

func TestCue_String(t *testing.T) {
	names := []string{"jump", "bump", "coin", "stomp", "powerup", "shoot", "die", "win"}
	for i, want := range names {
		assert.Equal(t, want, Cue(i).String())
	}
	assert.Equal(t, "unknown", Cue(99).String())
}

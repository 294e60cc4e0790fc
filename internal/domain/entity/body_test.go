package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRect_Intersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 2, 2, 2}, true},
		{"touching edges", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"apart", Rect{0, 0, 10, 10}, Rect{20, 20, 5, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a))
		})
	}
}

func TestRect_IntersectsCircle(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, r.IntersectsCircle(5, 5, 1), "center inside")
	assert.True(t, r.IntersectsCircle(12, 5, 3), "reaches right edge")
	assert.False(t, r.IntersectsCircle(14, 5, 3), "short of right edge")
	assert.False(t, r.IntersectsCircle(13, 13, 4), "corner gap")
	assert.True(t, r.IntersectsCircle(12, 12, 3), "corner overlap")
}

func TestNewEntity_Placement(t *testing.T) {
	reg := DefaultRegistry()
	def := reg.ByKind(KindGoomba)
	require.NotNil(t, def)

	e := NewEntity(7, def, 3, 4, 32)

	assert.Equal(t, EntityID(7), e.ID)
	assert.Equal(t, KindGoomba, e.Kind)
	assert.InDelta(t, 0.9*32, e.W, 1e-9)
	assert.InDelta(t, 0.9*32, e.H, 1e-9)
	// centered in its tile, standing on the tile's bottom edge
	assert.InDelta(t, 3*32+(32-e.W)/2, e.X, 1e-9)
	assert.InDelta(t, 5*32.0, e.Bottom(), 1e-9)
	assert.True(t, e.IsEnemy)
	assert.True(t, e.HasGravity)
	assert.Less(t, e.VX, 0.0, "enemies start walking left")
	assert.Equal(t, 1.0, e.FrictionMultiplier)
}

func TestNewEntity_Mushroom(t *testing.T) {
	def := DefaultRegistry().ByKind(KindMushroom)
	e := NewEntity(1, def, 0, 0, 32)

	assert.True(t, e.IsCollectible)
	assert.False(t, e.IsEnemy)
	assert.Greater(t, e.VX, 0.0)
	assert.Equal(t, 1, e.Facing)
	assert.True(t, e.Patrols())
}

func TestNewEntity_Static(t *testing.T) {
	reg := DefaultRegistry()

	coin := NewEntity(1, reg.ByKind(KindCoin), 0, 0, 32)
	assert.True(t, coin.Static())
	assert.Equal(t, 0.0, coin.VX)

	bush := NewEntity(2, reg.ByKind(KindBush), 0, 0, 32)
	assert.True(t, bush.Static())

	goomba := NewEntity(3, reg.ByKind(KindGoomba), 0, 0, 32)
	assert.False(t, goomba.Static())
}

func TestNewPlayer(t *testing.T) {
	def := DefaultRegistry().ByKind(KindPlayer)
	p := NewPlayer(1, def, 40, 320, 32)

	assert.True(t, p.IsPlayer)
	assert.True(t, p.HasGravity)
	assert.Equal(t, 1, p.Facing)
	assert.Equal(t, 40.0, p.X)
	assert.InDelta(t, 320, p.Bottom(), 1e-9)
	assert.False(t, p.Big)
	assert.False(t, p.IsInvincible())
}

func TestEntity_SetHeightKeepBottom(t *testing.T) {
	e := &Entity{X: 0, Y: 100, W: 10, H: 20}

	e.SetHeightKeepBottom(40)
	assert.Equal(t, 40.0, e.H)
	assert.Equal(t, 120.0, e.Bottom())
	assert.Equal(t, 80.0, e.Y)

	e.SetHeightKeepBottom(10)
	assert.Equal(t, 120.0, e.Bottom())
}

func TestEntity_IsShell(t *testing.T) {
	e := &Entity{}
	assert.False(t, e.IsShell())

	e.Behavior = &TurtleState{}
	assert.False(t, e.IsShell())

	e.Behavior = &TurtleState{Shell: true}
	assert.True(t, e.IsShell())

	e.Behavior = &BombState{}
	assert.False(t, e.IsShell())
}

func TestEntity_Centers(t *testing.T) {
	e := &Entity{X: 10, Y: 20, W: 4, H: 6}
	assert.Equal(t, 12.0, e.CenterX())
	assert.Equal(t, 23.0, e.CenterY())
	assert.Equal(t, 14.0, e.Right())
	assert.True(t, e.Overlaps(&Entity{X: 13, Y: 25, W: 4, H: 4}))
	assert.False(t, e.Overlaps(&Entity{X: 14, Y: 20, W: 4, H: 4}))
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "extending", PlantExtending.String())
	assert.Equal(t, "ignited", BombIgnited.String())
	assert.Equal(t, "warning", SpikeWarning.String())
	assert.Equal(t, "unknown", SpikePhase(9).String())
}

func TestParticle_Alpha(t *testing.T) {
	p := Particle{Life: 0.5, MaxLife: 1}
	assert.Equal(t, 0.5, p.Alpha())

	p.Life = -1
	assert.Equal(t, 0.0, p.Alpha())

	assert.Equal(t, 0.0, (&Particle{}).Alpha())
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestStage() *Stage {
	// 3x3 stage: solid corners, spikes bottom-center, ragged last row
	tiles := [][]int{
		{TileGround, TileEmpty, TileBrick},
		{TileEmpty, TileWater, TileEmpty},
		{TileGround, TileSpikes},
	}
	return NewStage(tiles, 16, nil)
}

func TestNewStage(t *testing.T) {
	stage := createTestStage()

	assert.Equal(t, 3, stage.Width)
	assert.Equal(t, 3, stage.Height)
	assert.Equal(t, 16, stage.TileSize)
	require.NotNil(t, stage.Registry)
	assert.Equal(t, 48.0, stage.PixelWidth())
	assert.Equal(t, 48.0, stage.PixelHeight())
}

func TestNewStage_DefaultTileSize(t *testing.T) {
	stage := NewStage([][]int{{1}}, 0, nil)
	assert.Equal(t, 32, stage.TileSize)
}

func TestStage_GetTile(t *testing.T) {
	stage := createTestStage()

	tests := []struct {
		name   string
		tx, ty int
		want   int
	}{
		{"top-left ground", 0, 0, TileGround},
		{"top-center empty", 1, 0, TileEmpty},
		{"center water", 1, 1, TileWater},
		{"bottom-center spikes", 1, 2, TileSpikes},
		{"negative x", -1, 0, TileEmpty},
		{"negative y", 0, -1, TileEmpty},
		{"x too large", 10, 0, TileEmpty},
		{"y too large", 0, 10, TileEmpty},
		{"ragged row", 2, 2, TileEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stage.GetTile(tt.tx, tt.ty))
		})
	}
}

func TestStage_SetTile(t *testing.T) {
	stage := createTestStage()

	stage.SetTile(2, 0, TileEmpty)
	assert.Equal(t, TileEmpty, stage.GetTile(2, 0))

	// out of range writes are dropped
	assert.NotPanics(t, func() {
		stage.SetTile(-1, 0, TileGround)
		stage.SetTile(2, 2, TileGround)
		stage.SetTile(0, 9, TileGround)
	})
	assert.Equal(t, TileEmpty, stage.GetTile(2, 2))
}

func TestStage_TileAt(t *testing.T) {
	stage := createTestStage()

	assert.Equal(t, TileGround, stage.TileAt(0, 0))
	assert.Equal(t, TileGround, stage.TileAt(15.9, 15.9))
	assert.Equal(t, TileEmpty, stage.TileAt(16, 0))
	assert.Equal(t, TileWater, stage.TileAt(20, 20))
	// negative pixels floor to tile -1, not 0
	assert.Equal(t, TileEmpty, stage.TileAt(-0.5, 0))
}

func TestStage_Attributes(t *testing.T) {
	stage := createTestStage()

	assert.True(t, stage.IsSolid(TileGround))
	assert.True(t, stage.IsSolid(TileBrick))
	assert.False(t, stage.IsSolid(TileWater))
	assert.False(t, stage.IsSolid(TileEmpty))
	assert.False(t, stage.IsSolid(999), "unknown ids read as empty")

	assert.True(t, stage.IsLethal(TileSpikes))
	assert.True(t, stage.IsLethal(TileLava))
	assert.False(t, stage.IsLethal(TileGround))

	assert.Equal(t, LiquidWater, stage.LiquidOf(TileWater))
	assert.Equal(t, LiquidLava, stage.LiquidOf(TileLava))
	assert.Equal(t, LiquidNone, stage.LiquidOf(TileGround))

	assert.Equal(t, 0.25, stage.FrictionOf(TileIce))
	assert.Equal(t, 1.0, stage.FrictionOf(TileGround))
	assert.Equal(t, 1.0, stage.FrictionOf(TileEmpty))

	assert.True(t, stage.DestructibleOf(TileBrick))
	assert.False(t, stage.DestructibleOf(TileHardBlock))
	assert.Equal(t, 50, stage.PointsOf(TileBrick))
	assert.Equal(t, 0, stage.PointsOf(999))

	assert.NotNil(t, stage.Def(TileCloud))
	assert.Nil(t, stage.Def(TileEmpty))
}

func TestStage_IsSolidAt(t *testing.T) {
	stage := createTestStage()

	assert.True(t, stage.IsSolidAt(8, 8))
	assert.False(t, stage.IsSolidAt(24, 8))
	assert.False(t, stage.IsSolidAt(-100, -100))
}

func TestRegistry_Lookups(t *testing.T) {
	reg := DefaultRegistry()

	ground := reg.ByID(TileGround)
	require.NotNil(t, ground)
	assert.Equal(t, KindGround, ground.Kind)

	goomba := reg.ByName("Goomba")
	require.NotNil(t, goomba)
	assert.Equal(t, CategoryEnemy, goomba.Category)
	assert.Equal(t, goomba, reg.ByKind(KindGoomba))

	assert.Nil(t, reg.ByID(0), "objects are not reachable by id")
	assert.Nil(t, reg.ByName("Nope"))

	// zero friction and size default to 1
	assert.Equal(t, 1.0, ground.Friction)
	assert.Equal(t, 1.0, ground.Width)
	assert.Equal(t, 1.0, reg.ByKind(KindCrate).Height)
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "enemy", CategoryEnemy.String())
	assert.Equal(t, "decoration", CategoryDecoration.String())
	assert.Equal(t, "unknown", Category(42).String())
}

func TestParseBulletVariant(t *testing.T) {
	tests := []struct {
		in   string
		want BulletVariant
		ok   bool
	}{
		{"", BulletFireball, true},
		{"fireball", BulletFireball, true},
		{"banana", BulletBanana, true},
		{"laser", BulletFireball, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseBulletVariant(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if ok && tt.in != "" {
				assert.Equal(t, tt.in, got.String())
			}
		})
	}
}

package render

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/Niaki1412/Super-Mario-Game/internal/application/system"
	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
)

func TestPalette_CoversDefaultElements(t *testing.T) {
	for _, def := range entity.DefaultElements() {
		if def.Kind == entity.KindPlayerStart {
			continue
		}
		_, ok := Palette[def.Kind]
		assert.True(t, ok, "no color for %s", def.Name)
	}
}

func TestKindColor_Unknown(t *testing.T) {
	assert.Equal(t, colorUnknown, KindColor(entity.Kind(999)))
	assert.Equal(t, Palette[entity.KindCoin], KindColor(entity.KindCoin))
}

func TestFade(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}

	tests := []struct {
		name string
		a    float64
		want color.RGBA
	}{
		{"opaque", 1, c},
		{"above one", 2, c},
		{"gone", 0, color.RGBA{}},
		{"negative", -1, color.RGBA{}},
		{"half", 0.5, color.RGBA{100, 50, 25, 127}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fade(c, tt.a))
		})
	}
}

func TestEntityColor(t *testing.T) {
	turtle := Palette[entity.KindTurtle]
	lightning := Palette[entity.KindLightning]

	tests := []struct {
		name string
		snap system.Snapshot
		want color.RGBA
	}{
		{"plain goomba", system.Snapshot{Kind: entity.KindGoomba}, Palette[entity.KindGoomba]},
		{"fire player", system.Snapshot{Kind: entity.KindPlayer, IsPlayer: true, CanShoot: true}, colorFireSuit},
		{"shell", system.Snapshot{Kind: entity.KindTurtle, Shell: true}, color.RGBA{turtle.R / 2, turtle.G / 2, turtle.B / 2, 255}},
		{"lit bomb", system.Snapshot{Kind: entity.KindBomb, Phase: "ignited"}, color.RGBA{220, 40, 20, 255}},
		{"lightning off", system.Snapshot{Kind: entity.KindLightning, Phase: "off"}, Fade(lightning, 0.25)},
		{"lightning on", system.Snapshot{Kind: entity.KindLightning, Phase: "on"}, lightning},
		{"invincible player", system.Snapshot{Kind: entity.KindPlayer, IsPlayer: true, Invincible: true}, Fade(Palette[entity.KindPlayer], 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EntityColor(tt.snap))
		})
	}
}

func TestRenderer_DrawsWithoutPanicking(t *testing.T) {
	img := ebiten.NewImage(320, 240)
	r := New(img)
	reg := entity.NewRegistry(entity.DefaultElements())

	assert.NotPanics(t, func() {
		r.DrawTile(entity.TileQuestion, reg.ByID(entity.TileQuestion), 0, 0, 32)
		r.DrawTile(42, nil, 32, 0, 32)
		r.DrawEntity(system.Snapshot{Kind: entity.KindCoin, W: 19, H: 25}, 10, 10)
		r.DrawEntity(system.Snapshot{Kind: entity.KindSign, W: 32, H: 32, Text: "hi"}, 40, 40)
		r.DrawEntity(system.Snapshot{
			Kind: entity.KindRotatingSpike, X: 100, W: 16, H: 16,
			HasBall: true, BallX: 150, BallY: 60, BallRadius: 8,
		}, 60, 50)
		r.DrawParticle(entity.Particle{Color: color.RGBA{255, 0, 0, 255}, Life: 0.3, MaxLife: 0.6}, 5, 5)
		r.Overlay(color.RGBA{0, 0, 0, 128})
		r.Text("score", 0, 0)
	})
}

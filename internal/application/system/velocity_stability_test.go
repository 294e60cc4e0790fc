package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
)

// Speeds on flat ground must not drift frame to frame

func TestVelocityStability_IdlePlayer(t *testing.T) {
	s := createTestSim(t, wideMap(), obj("Player Start", 4, 3))
	p := s.player
	x := p.X

	for i := 0; i < 120; i++ {
		s.Step(testDT, Input{})
		require.Zero(t, p.VX, "frame %d", i)
		require.True(t, p.Grounded, "frame %d", i)
	}
	assert.Equal(t, x, p.X)
}

func TestVelocityStability_Running(t *testing.T) {
	s := createTestSim(t, wideMap(), obj("Player Start", 1, 3))
	p := s.player
	right := NewInput(Keys{Right: true}, Keys{Right: true})

	stepN(s, testDT, 15)
	for i := 0; i < 60; i++ {
		s.Step(testDT, right)
		if i < 10 {
			continue
		}
		require.Equal(t, runSpeed, p.VX, "frame %d", i)
		require.True(t, p.Grounded, "frame %d", i)
	}
}

func TestVelocityStability_Walkers(t *testing.T) {
	s := createTestSim(t, wideMap(),
		obj("Player Start", 0, 3),
		obj("Goomba", 20, 3),
		obj("Mushroom", 10, 3),
	)
	g := findKind(s, entity.KindGoomba)
	m := findKind(s, entity.KindMushroom)

	for i := 0; i < 120; i++ {
		s.Step(testDT, Input{})
		require.Equal(t, -1.5*ts, g.VX, "frame %d", i)
		require.Equal(t, 2.5*ts, m.VX, "frame %d", i)
		require.Zero(t, g.VY, "frame %d", i)
		require.Zero(t, m.VY, "frame %d", i)
	}
}

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"
	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/config"
)

var shootPress = NewInput(Keys{Shoot: true}, Keys{})

func TestSpawnBullet_Geometry(t *testing.T) {
	s := createTestSim(t, flatMap(), obj("Player Start", 3, 3))
	p := s.player

	tests := []struct {
		name  string
		dir   int
		wantX float64
	}{
		{name: "right", dir: 1, wantX: p.Right()},
		{name: "left", dir: -1, wantX: p.X - 0.4*ts},
		{name: "zero means right", dir: 0, wantX: p.Right()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := s.spawnBullet(ShootIntent{Owner: p, Variant: entity.BulletFireball, Dir: tt.dir, Speed: 10})

			assert.True(t, b.IsBullet)
			assert.False(t, b.IsEnemy)
			assert.Equal(t, entity.KindFireball, b.Kind)
			assert.InDelta(t, tt.wantX, b.X, 1e-9)
			assert.InDelta(t, p.CenterY(), b.CenterY(), 1e-9)
			assert.InDelta(t, 0.4*ts, b.W, 1e-9)
			assert.InDelta(t, 0.4*ts, b.H, 1e-9)
			assert.False(t, b.HasGravity)
			assert.Zero(t, b.VY)

			dir := tt.dir
			if dir == 0 {
				dir = 1
			}
			assert.InDelta(t, float64(dir)*10*ts, b.VX, 1e-9)
			st := b.Behavior.(*entity.BulletState)
			assert.InDelta(t, 3, st.Life, 1e-9)
		})
	}
}

func TestFireball_DiesOnWall(t *testing.T) {
	m := createTestMap(
		"..........",
		"..........",
		"..........",
		"......#...",
		"##########",
	)
	s := createTestSim(t, m, obj("Player Start", 2, 3))
	s.player.CanShoot = true

	s.Step(testDT, shootPress)
	require.Equal(t, 1, countBullets(s))
	b := findKind(s, entity.KindFireball)

	for i := 0; i < 60 && !b.Dead; i++ {
		s.Step(testDT, Input{})
	}
	require.True(t, b.Dead)
	assert.Less(t, b.CenterX(), 6*ts+10*ts/60, "stopped at the wall")

	s.Step(testDT, Input{})
	assert.NotContains(t, s.entities, b)
}

func TestFireball_FastSubsteps(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		vx, vy float64
		check  func(t *testing.T, b *entity.Entity)
	}{
		{
			name: "leftward through a one-tile wall",
			x:    4 * ts, y: 3 * ts,
			vx: -40 * ts,
			check: func(t *testing.T, b *entity.Entity) {
				assert.GreaterOrEqual(t, b.CenterX(), 2*ts)
				assert.Less(t, b.CenterX(), 3*ts)
			},
		},
		{
			name: "mostly downward into the ground",
			x:    6 * ts, y: 1 * ts,
			vx: 1, vy: 40 * ts,
			check: func(t *testing.T, b *entity.Entity) {
				assert.GreaterOrEqual(t, b.CenterY(), 4*ts)
				assert.Less(t, b.CenterY(), 5*ts)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := createTestMap(
				"..........",
				"..........",
				"..........",
				"..#.......",
				"##########",
			)
			s := createTestSim(t, m, obj("Player Start", 8, 3))
			b := s.spawnBullet(ShootIntent{Owner: s.player, Variant: entity.BulletFireball, Dir: -1, Speed: 10})
			b.X, b.Y = tt.x, tt.y
			b.VX, b.VY = tt.vx, tt.vy

			s.moveFireball(b, 0.1)

			require.True(t, b.Dead)
			tt.check(t, b)
		})
	}
}

func TestFireball_Targets(t *testing.T) {
	tests := []struct {
		name     string
		object   string
		setup    func(e *entity.Entity)
		wantDead bool
	}{
		{name: "goomba", object: "Goomba", wantDead: true},
		{name: "hopper", object: "Hopper", wantDead: true},
		{name: "pop-up spike", object: "Pop-up Spike", setup: func(e *entity.Entity) {
			e.Behavior.(*entity.PopSpikeState).Phase = entity.SpikeActive
		}, wantDead: false},
		{name: "lightning", object: "Lightning Trap", wantDead: false},
		{name: "hidden plant", object: "Piranha Plant", wantDead: false},
		{name: "plant out", object: "Piranha Plant", setup: func(e *entity.Entity) {
			st := e.Behavior.(*entity.PlantState)
			st.Phase = entity.PlantOut
			st.Offset = e.H
			e.Y = st.HomeY - e.H
		}, wantDead: true},
		{name: "coin", object: "Coin", wantDead: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestSim(t, wideMap(), obj("Player Start", 2, 3), obj(tt.object, 7, 3))
			target := s.entities[1]
			if tt.setup != nil {
				tt.setup(target)
			}
			s.player.CanShoot = true

			s.Step(testDT, shootPress)
			for i := 0; i < 40; i++ {
				s.Step(testDT, Input{})
			}

			assert.Equal(t, tt.wantDead, target.Dead)
			if tt.wantDead {
				assert.Equal(t, target.Def.Points, s.Score())
			}
		})
	}
}

func TestFireball_EnemyBulletHitsOnlyPlayer(t *testing.T) {
	s := createTestSim(t, wideMap(),
		obj("Player Start", 2, 3),
		obj("Goomba", 5, 3),
		obj("Fire Dino", 8, 3),
	)
	dino := findKind(s, entity.KindFireDino)
	goomba := findKind(s, entity.KindGoomba)
	dino.VX = 0
	goomba.VX = 0

	s.queue(ShootIntent{Owner: dino, Variant: entity.BulletFireball, Dir: -1, Speed: 10, Enemy: true})
	s.applyIntents()
	require.Equal(t, 1, countBullets(s))

	var res StepResult
	for i := 0; i < 60 && !res.Died; i++ {
		res = s.Step(testDT, Input{})
	}

	assert.True(t, res.Died)
	assert.False(t, goomba.Dead, "enemy fire passes through enemies")
	assert.False(t, dino.Dead)
}

func TestBanana_Arcs(t *testing.T) {
	m := wideMap()
	m.Objects = append(m.Objects, obj("Player Start", 2, 3))
	s, err := NewSimulation(m, config.DefaultTuning(), Options{Seed: 1, Weapon: entity.BulletBanana})
	require.NoError(t, err)
	s.player.CanShoot = true

	s.Step(testDT, shootPress)
	b := findKind(s, entity.KindBanana)
	require.NotNil(t, b)
	assert.True(t, b.HasGravity)
	assert.InDelta(t, -8*ts, b.VY, 1e-9)
	assert.InDelta(t, 7*ts, b.VX, 1e-9)

	minY := b.Y
	for i := 0; i < 120 && !b.Dead; i++ {
		s.Step(testDT, Input{})
		if b.Y < minY {
			minY = b.Y
		}
	}
	assert.True(t, b.Dead, "lands and is retired")
	assert.Less(t, minY, s.player.Y+s.player.H/2-0.2*ts, "rose before falling")
}

func TestBullet_Lifetime(t *testing.T) {
	s := createTestSim(t, wideMap(), obj("Player Start", 2, 3))
	b := s.spawnBullet(ShootIntent{Owner: s.player, Variant: entity.BulletFireball, Dir: 1, Speed: 1})
	s.entities = append(s.entities, b)

	stepN(s, testDT, 170)
	assert.False(t, b.Dead)

	stepN(s, testDT, 20)
	assert.True(t, b.Dead)
}

func TestBullet_OutOfBounds(t *testing.T) {
	s := createTestSim(t, flatMap(), obj("Player Start", 1, 3))
	s.player.CanShoot = true
	s.player.Facing = -1

	s.Step(testDT, shootPress)
	b := findKind(s, entity.KindFireball)
	require.NotNil(t, b)
	assert.Less(t, b.VX, 0.0)

	for i := 0; i < 20 && !b.Dead; i++ {
		s.Step(testDT, Input{})
	}
	assert.True(t, b.Dead)
}

package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tuning is the root config for tuning.yaml.
// Distances are in tiles, times in seconds, per-frame factors refer to 60 Hz.
type Tuning struct {
	Physics    PhysicsTuning    `yaml:"physics"`
	Player     PlayerTuning     `yaml:"player"`
	Enemy      EnemyTuning      `yaml:"enemy"`
	Projectile ProjectileTuning `yaml:"projectile"`
}

type PhysicsTuning struct {
	Gravity             float64 `yaml:"gravity"`
	MaxFallSpeed        float64 `yaml:"max_fall_speed"`
	WaterGravityFactor  float64 `yaml:"water_gravity_factor"`
	WaterTerminalFactor float64 `yaml:"water_terminal_factor"`
	WaterDrag           float64 `yaml:"water_drag"`
	MaxSubstep          float64 `yaml:"max_substep"` // longest single collision sweep
	ParticleGravity     float64 `yaml:"particle_gravity"`
	ParticleLife        float64 `yaml:"particle_life"`
}

type PlayerTuning struct {
	RunSpeed        float64 `yaml:"run_speed"`
	Acceleration    float64 `yaml:"acceleration"`
	Friction        float64 `yaml:"friction"`
	BoostDecay      float64 `yaml:"boost_decay"`
	JumpForce       float64 `yaml:"jump_force"`
	DoubleJumpForce float64 `yaml:"double_jump_force"`
	SwimStroke      float64 `yaml:"swim_stroke"`
	StompBounce     float64 `yaml:"stomp_bounce"`
	InvincibleTime  float64 `yaml:"invincible_time"`
	ShootCooldown   float64 `yaml:"shoot_cooldown"`
	SmallHeight     float64 `yaml:"small_height"`
	BigHeight       float64 `yaml:"big_height"`
	CrouchRatio     float64 `yaml:"crouch_ratio"`
}

type EnemyTuning struct {
	Plant     PlantTuning     `yaml:"plant"`
	Hopper    HopperTuning    `yaml:"hopper"`
	Dino      DinoTuning      `yaml:"dino"`
	Bomb      BombTuning      `yaml:"bomb"`
	Spike     SpikeTuning     `yaml:"spike"`
	Orbit     OrbitTuning     `yaml:"orbit"`
	Lightning LightningTuning `yaml:"lightning"`
	Turtle    TurtleTuning    `yaml:"turtle"`
}

type PlantTuning struct {
	Speed      float64 `yaml:"speed"`
	HiddenTime float64 `yaml:"hidden_time"`
	OutTime    float64 `yaml:"out_time"`
	SafeRange  float64 `yaml:"safe_range"` // player this close keeps it in the pipe
	HeadRatio  float64 `yaml:"head_ratio"` // lethal top fraction of the plant
}

type HopperTuning struct {
	Interval  float64 `yaml:"interval"`
	JumpForce float64 `yaml:"jump_force"`
}

type DinoTuning struct {
	Interval      float64 `yaml:"interval"`
	Range         float64 `yaml:"range"`
	FireballSpeed float64 `yaml:"fireball_speed"`
}

type BombTuning struct {
	Fuse         float64 `yaml:"fuse"`
	TriggerRange float64 `yaml:"trigger_range"`
	Radius       float64 `yaml:"radius"`
	KickSpeed    float64 `yaml:"kick_speed"`
}

type SpikeTuning struct {
	HiddenTime  float64 `yaml:"hidden_time"`
	WarningTime float64 `yaml:"warning_time"`
	ActiveTime  float64 `yaml:"active_time"`
}

type OrbitTuning struct {
	Radius     float64 `yaml:"radius"`
	Speed      float64 `yaml:"speed"` // rad/s
	BallRadius float64 `yaml:"ball_radius"`
}

type LightningTuning struct {
	OffTime float64 `yaml:"off_time"`
	OnTime  float64 `yaml:"on_time"`
}

type TurtleTuning struct {
	ShellSpeed  float64 `yaml:"shell_speed"`
	MovingShell float64 `yaml:"moving_shell"` // |vx| above this makes a shell lethal
	KickGrace   float64 `yaml:"kick_grace"`
	FlySpeed    float64 `yaml:"fly_speed"`
	FlyPeriod   float64 `yaml:"fly_period"`
}

type ProjectileTuning struct {
	FireballSpeed float64 `yaml:"fireball_speed"`
	BananaSpeed   float64 `yaml:"banana_speed"`
	BananaLift    float64 `yaml:"banana_lift"`
	Lifetime      float64 `yaml:"lifetime"`
	Size          float64 `yaml:"size"`
}

// Fingerprint is a short hash of every tuning value. Replays carry it so a
// playback under different tuning can be detected.
func (t Tuning) Fingerprint() string {
	data, err := yaml.Marshal(t)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}

// ErrInvalidTuning is returned by Validate
var ErrInvalidTuning = errors.New("invalid tuning")

// Validate rejects values that would stall or explode the simulation
func (t *Tuning) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"physics.gravity", t.Physics.Gravity},
		{"physics.max_fall_speed", t.Physics.MaxFallSpeed},
		{"physics.max_substep", t.Physics.MaxSubstep},
		{"player.run_speed", t.Player.RunSpeed},
		{"player.jump_force", t.Player.JumpForce},
		{"player.small_height", t.Player.SmallHeight},
		{"player.big_height", t.Player.BigHeight},
		{"projectile.lifetime", t.Projectile.Lifetime},
		{"projectile.size", t.Projectile.Size},
		{"enemy.plant.speed", t.Enemy.Plant.Speed},
		{"enemy.orbit.speed", t.Enemy.Orbit.Speed},
		{"enemy.turtle.fly_period", t.Enemy.Turtle.FlyPeriod},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, c.name, c.value)
		}
	}

	factors := []struct {
		name  string
		value float64
	}{
		{"physics.water_drag", t.Physics.WaterDrag},
		{"player.friction", t.Player.Friction},
		{"player.boost_decay", t.Player.BoostDecay},
		{"player.crouch_ratio", t.Player.CrouchRatio},
	}
	for _, f := range factors {
		if f.value <= 0 || f.value > 1 {
			return fmt.Errorf("%w: %s must be in (0, 1], got %v", ErrInvalidTuning, f.name, f.value)
		}
	}
	return nil
}

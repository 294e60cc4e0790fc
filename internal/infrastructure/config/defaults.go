package config

import (
	_ "embed"
)

//go:embed defaults/tuning.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the built-in tuning
func DefaultTuning() Tuning {
	return Tuning{
		Physics: PhysicsTuning{
			Gravity:             56,
			MaxFallSpeed:        28,
			WaterGravityFactor:  0.3,
			WaterTerminalFactor: 0.3,
			WaterDrag:           0.95,
			MaxSubstep:          0.5,
			ParticleGravity:     30,
			ParticleLife:        0.6,
		},
		Player: PlayerTuning{
			RunSpeed:        7.5,
			Acceleration:    45,
			Friction:        0.8,
			BoostDecay:      0.97,
			JumpForce:       20,
			DoubleJumpForce: 16,
			SwimStroke:      9,
			StompBounce:     12,
			InvincibleTime:  2,
			ShootCooldown:   0.4,
			SmallHeight:     0.95,
			BigHeight:       1.9,
			CrouchRatio:     0.6,
		},
		Enemy: EnemyTuning{
			Plant: PlantTuning{
				Speed:      2,
				HiddenTime: 2,
				OutTime:    1.5,
				SafeRange:  1.5,
				HeadRatio:  0.4,
			},
			Hopper: HopperTuning{
				Interval:  1.2,
				JumpForce: 18,
			},
			Dino: DinoTuning{
				Interval:      2.5,
				Range:         8,
				FireballSpeed: 6,
			},
			Bomb: BombTuning{
				Fuse:         2,
				TriggerRange: 3,
				Radius:       2.5,
				KickSpeed:    6,
			},
			Spike: SpikeTuning{
				HiddenTime:  2,
				WarningTime: 0.5,
				ActiveTime:  1.5,
			},
			Orbit: OrbitTuning{
				Radius:     2,
				Speed:      3,
				BallRadius: 0.3,
			},
			Lightning: LightningTuning{
				OffTime: 2,
				OnTime:  1,
			},
			Turtle: TurtleTuning{
				ShellSpeed:  13,
				MovingShell: 1,
				KickGrace:   0.25,
				FlySpeed:    2,
				FlyPeriod:   2,
			},
		},
		Projectile: ProjectileTuning{
			FireballSpeed: 10,
			BananaSpeed:   7,
			BananaLift:    8,
			Lifetime:      3,
			Size:          0.4,
		},
	}
}

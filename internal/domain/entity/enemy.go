package entity

// Behavior is the per-type state attached to an entity.
// Each enemy, hazard and bullet type owns exactly one variant.
type Behavior interface {
	behavior()
}

// PlantPhase is the cycle of a piranha plant
type PlantPhase int

const (
	PlantHidden PlantPhase = iota
	PlantExtending
	PlantOut
	PlantRetracting
)

// String returns the string representation of the phase
func (p PlantPhase) String() string {
	switch p {
	case PlantHidden:
		return "hidden"
	case PlantExtending:
		return "extending"
	case PlantOut:
		return "out"
	case PlantRetracting:
		return "retracting"
	default:
		return "unknown"
	}
}

// PlantState drives a piranha plant. Offset is how far (pixels) the plant
// has risen above its hidden position HomeY.
type PlantState struct {
	Phase  PlantPhase
	Timer  float64
	Offset float64
	HomeY  float64
}

// HopperState drives a bouncing hopper
type HopperState struct {
	Timer float64
}

// DinoState drives a fire-breathing dino
type DinoState struct {
	Timer float64
}

// BombPhase is the lifecycle of a bob-omb
type BombPhase int

const (
	BombWalking BombPhase = iota
	BombIgnited
	BombExploded
)

// String returns the string representation of the phase
func (p BombPhase) String() string {
	switch p {
	case BombWalking:
		return "walking"
	case BombIgnited:
		return "ignited"
	case BombExploded:
		return "exploded"
	default:
		return "unknown"
	}
}

// BombState drives a bob-omb. Timer is the remaining fuse once ignited.
type BombState struct {
	Phase BombPhase
	Timer float64
}

// SpikePhase is the cycle of a pop-up spike
type SpikePhase int

const (
	SpikeHidden SpikePhase = iota
	SpikeWarning
	SpikeActive
)

// String returns the string representation of the phase
func (p SpikePhase) String() string {
	switch p {
	case SpikeHidden:
		return "hidden"
	case SpikeWarning:
		return "warning"
	case SpikeActive:
		return "active"
	default:
		return "unknown"
	}
}

// PopSpikeState drives a pop-up spike
type PopSpikeState struct {
	Phase SpikePhase
	Timer float64
}

// OrbitState drives a rotating spike ball around its pivot
type OrbitState struct {
	Angle      float64 // radians
	Radius     float64 // pixels
	BallRadius float64 // pixels
}

// TurtleState drives turtles and flying turtles
type TurtleState struct {
	Shell     bool
	Flying    bool
	FlyTimer  float64
	KickGrace float64 // seconds the kicked shell ignores the kicker
}

// LightningState drives a lightning trap
type LightningState struct {
	On    bool
	Timer float64
}

// BulletVariant selects projectile physics
type BulletVariant int

const (
	BulletFireball BulletVariant = iota // straight, point probe
	BulletBanana                        // arcing, full tile collision
)

// String returns the string representation of the variant
func (v BulletVariant) String() string {
	switch v {
	case BulletFireball:
		return "fireball"
	case BulletBanana:
		return "banana"
	default:
		return "unknown"
	}
}

// ParseBulletVariant is the inverse of String. Empty selects the fireball.
func ParseBulletVariant(s string) (BulletVariant, bool) {
	switch s {
	case "", "fireball":
		return BulletFireball, true
	case "banana":
		return BulletBanana, true
	default:
		return BulletFireball, false
	}
}

// BulletState tracks a live projectile
type BulletState struct {
	Variant BulletVariant
	Life    float64 // seconds left
}

func (*PlantState) behavior()     {}
func (*HopperState) behavior()    {}
func (*DinoState) behavior()      {}
func (*BombState) behavior()      {}
func (*PopSpikeState) behavior()  {}
func (*OrbitState) behavior()     {}
func (*TurtleState) behavior()    {}
func (*LightningState) behavior() {}
func (*BulletState) behavior()    {}

package system

import "github.com/Niaki1412/Super-Mario-Game/internal/domain/entity"

// Cue is a named audio event
type Cue int

const (
	CueJump Cue = iota
	CueBump
	CueCoin
	CueStomp
	CuePowerup
	CueShoot
	CueDie
	CueWin
)

// String returns the string representation of the cue
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueBump:
		return "bump"
	case CueCoin:
		return "coin"
	case CueStomp:
		return "stomp"
	case CuePowerup:
		return "powerup"
	case CueShoot:
		return "shoot"
	case CueDie:
		return "die"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

// AudioSink receives audio cues. Implementations must not block.
type AudioSink interface {
	Cue(c Cue)
}

// AudioFunc adapts a function to AudioSink
type AudioFunc func(c Cue)

// Cue calls f(c)
func (f AudioFunc) Cue(c Cue) { f(c) }

// DrawSink receives draw intents in screen coordinates
type DrawSink interface {
	DrawTile(id int, def *entity.ElementDef, x, y, size float64)
	DrawEntity(snap Snapshot, x, y float64)
	DrawParticle(p entity.Particle, x, y float64)
}

// StepResult reports what happened during one step
type StepResult struct {
	ScoreDelta int
	Died       bool
	Won        bool
}

// Snapshot is a read-only view of an entity for drawing
type Snapshot struct {
	ID         entity.EntityID
	Kind       entity.Kind
	Name       string
	X, Y, W, H float64
	VX, VY     float64
	Facing     int
	IsPlayer   bool
	IsBullet   bool
	IsEnemy    bool
	Big        bool
	CanShoot   bool
	Crouching  bool
	InWater    bool
	Invincible bool
	Shell      bool
	Dead       bool
	// Phase is the behavior phase name, empty for stateless entities
	Phase string
	Text  string

	// Ball is set for rotating spikes
	HasBall    bool
	BallX      float64
	BallY      float64
	BallRadius float64
}

func snapshotOf(e *entity.Entity) Snapshot {
	snap := Snapshot{
		ID:         e.ID,
		Kind:       e.Kind,
		X:          e.X,
		Y:          e.Y,
		W:          e.W,
		H:          e.H,
		VX:         e.VX,
		VY:         e.VY,
		Facing:     e.Facing,
		IsPlayer:   e.IsPlayer,
		IsBullet:   e.IsBullet,
		IsEnemy:    e.IsEnemy,
		Big:        e.Big,
		CanShoot:   e.CanShoot,
		Crouching:  e.Crouching,
		InWater:    e.InWater,
		Invincible: e.IsInvincible(),
		Shell:      e.IsShell(),
		Dead:       e.Dead,
		Text:       e.Text,
	}
	if e.Def != nil {
		snap.Name = e.Def.Name
	}

	switch st := e.Behavior.(type) {
	case *entity.PlantState:
		snap.Phase = st.Phase.String()
	case *entity.BombState:
		snap.Phase = st.Phase.String()
	case *entity.PopSpikeState:
		snap.Phase = st.Phase.String()
	case *entity.LightningState:
		if st.On {
			snap.Phase = "on"
		} else {
			snap.Phase = "off"
		}
	case *entity.OrbitState:
		snap.HasBall = true
		snap.BallX, snap.BallY = orbitBall(e, st)
		snap.BallRadius = st.BallRadius
	}
	return snap
}

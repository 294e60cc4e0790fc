package replay

import "github.com/Niaki1412/Super-Mario-Game/internal/application/system"

// Version is written into every replay file
const Version = "2.0"

// FrameInput records the held keys for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	D  bool `json:"d,omitempty"`  // Down
	J  bool `json:"j,omitempty"`  // Jump
	DJ bool `json:"dj,omitempty"` // DoubleJump
	S  bool `json:"s,omitempty"`  // Shoot
}

// Keys converts the frame back to simulation keys
func (fi FrameInput) Keys() system.Keys {
	return system.Keys{
		Left:       fi.L,
		Right:      fi.R,
		Down:       fi.D,
		Jump:       fi.J,
		DoubleJump: fi.DJ,
		Shoot:      fi.S,
	}
}

// FrameFromKeys records keys as frame f
func FrameFromKeys(f int, k system.Keys) FrameInput {
	return FrameInput{
		F:  f,
		L:  k.Left,
		R:  k.Right,
		D:  k.Down,
		J:  k.Jump,
		DJ: k.DoubleJump,
		S:  k.Shoot,
	}
}

// ReplayData contains all data needed to replay a game session.
// Seed, Weapon and DT must match the recording run for the replay to
// reproduce it. Tuning is the fingerprint of the tuning it was recorded with.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	Weapon    string       `json:"weapon,omitempty"`
	DT        float64      `json:"dt"`
	Tuning    string       `json:"tuning,omitempty"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Niaki1412/Super-Mario-Game/internal/application/system"
)

// Controls supplies the held action keys and the scene's one-shot
// commands for the current frame
type Controls interface {
	Keys() system.Keys
	PausePressed() bool
	RestartPressed() bool
	SavePressed() bool
}

// KeyMap binds each action to one or more keyboard keys
type KeyMap struct {
	Left       []ebiten.Key
	Right      []ebiten.Key
	Down       []ebiten.Key
	Jump       []ebiten.Key
	DoubleJump []ebiten.Key
	Shoot      []ebiten.Key
}

// DefaultKeyMap uses arrows or WASD to move, Space to jump and X for the
// second jump. Binding both jumps to the same key also works: a press on
// the ground jumps, a press in the air double-jumps.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:       []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:      []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Down:       []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Jump:       []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
		DoubleJump: []ebiten.Key{ebiten.KeyX},
		Shoot:      []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ},
	}
}

// Keyboard reads Controls from ebiten's keyboard state
type Keyboard struct {
	Map KeyMap
}

// NewKeyboard creates keyboard controls with the default bindings
func NewKeyboard() *Keyboard {
	return &Keyboard{Map: DefaultKeyMap()}
}

// Keys implements Controls
func (k *Keyboard) Keys() system.Keys {
	return system.Keys{
		Left:       anyPressed(k.Map.Left),
		Right:      anyPressed(k.Map.Right),
		Down:       anyPressed(k.Map.Down),
		Jump:       anyPressed(k.Map.Jump),
		DoubleJump: anyPressed(k.Map.DoubleJump),
		Shoot:      anyPressed(k.Map.Shoot),
	}
}

// PausePressed implements Controls
func (k *Keyboard) PausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
}

// RestartPressed implements Controls
func (k *Keyboard) RestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

// SavePressed implements Controls
func (k *Keyboard) SavePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF5)
}

func anyPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

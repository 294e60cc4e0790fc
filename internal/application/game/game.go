// Package game provides the ebiten loop that drives the current Scene.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Niaki1412/Super-Mario-Game/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	frames  int

	// closing reports a window close request. The host must call
	// ebiten.SetWindowClosingHandled(true) for it to ever be true.
	closing func() bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
		closing: ebiten.IsWindowBeingClosed,
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene and handles scene transitions.
// A close request gives the scene its OnExit before the loop stops.
func (g *Game) Update() error {
	if g.closing() {
		g.current.OnExit()
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	g.frames++

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the fixed step passed to the scene.
func (g *Game) SetDT(dt float64) {
	if dt > 0 {
		g.dt = dt
	}
}

// Frames returns how many updates the scenes have run
func (g *Game) Frames() int {
	return g.frames
}

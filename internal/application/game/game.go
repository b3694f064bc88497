// Package game runs the ebiten loop and switches between scenes.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/personality/internal/application/scene"
)

// defaultFramerate is used when no positive framerate is configured
const defaultFramerate = 60

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	closed  bool
}

// New creates a Game stepping at a fixed 1/framerate seconds per update.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, framerate int) *Game {
	if framerate <= 0 {
		framerate = defaultFramerate
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(framerate),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the current scene once, after the loop has stopped
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}

// DT returns the fixed step in seconds
func (g *Game) DT() float64 {
	return g.dt
}

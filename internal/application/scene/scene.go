// Package scene defines the screens the game loop switches between.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one game screen. The game loop delegates Update and Draw to the
// current scene and switches when Update returns a next scene.
type Scene interface {
	// Update advances the scene by dt seconds.
	// A non-nil next replaces this scene; an error ends the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the game ends.
	// Recordings are flushed here.
	OnExit()
}

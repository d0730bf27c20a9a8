// Package scene defines the screen contract shared by the roguelike.
//
// A run moves main menu -> dungeon map -> card battle -> result and back to
// the map, or to the menu after a defeat. cmd/game drives the scene
// switcher instead. Screens link to each other through constructor
// callbacks so that no screen package imports another.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen hosted by game.Game.
//
// The host calls Update once per tick and Draw once per frame. A screen
// moves on by returning the next Scene from Update; the host then calls
// OnExit on it and OnEnter on the next one.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game; ebiten.Termination ends it cleanly.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Subscriptions and recordings are released here.
	OnExit()
}

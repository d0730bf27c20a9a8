// Package game hosts the roguelike's scenes inside ebiten.
//
// cmd/battle starts it on the main menu and cmd/game on the scene switcher.
// The host only swaps scenes; the menu, map, battle and result screens
// decide among themselves what comes next.
package game

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/roguelike/internal/application/scene"
)

// Game is the ebiten.Game for both binaries. It owns the active scene,
// feeds it a fixed dt derived from the configured TPS and runs OnExit
// exactly once per scene, including on shutdown.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	closed  bool
}

// New hosts initialScene at a logical screenW x screenH resolution.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update runs one tick of the current scene and swaps in the scene it
// returns, logging the transition. When the scene ends the game with
// ebiten.Termination the scene is exited before the error is passed on.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, ebiten.Termination) {
			g.Close()
		}
		return err
	}

	if next != nil {
		log.Printf("[Game] %T -> %T", g.current, next)
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
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Close exits the current scene. Safe to call more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}

// SetTPS sets the delta time used for updates from a tick rate.
func (g *Game) SetTPS(tps int) {
	if tps <= 0 {
		return
	}
	g.dt = 1.0 / float64(tps)
}

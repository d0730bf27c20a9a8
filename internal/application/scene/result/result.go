// Package result provides the battle result screen.
package result

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/roguelike/internal/application/scene"
	"github.com/younwookim/roguelike/internal/application/state"
)

var (
	colorVictory = color.RGBA{0, 100, 0, 255}
	colorDefeat  = color.RGBA{100, 0, 0, 255}
)

// Result shows the outcome of a battle and waits to move on
type Result struct {
	outcome  state.BattlePhase
	turns    int
	playerHP int
	screenW  int
	screenH  int

	// next builds the scene that follows the result
	next func() (scene.Scene, error)

	// replaced in tests
	pressed func(ebiten.Key) bool
	closing func() bool
}

// New creates a result screen for a finished battle
func New(outcome state.BattlePhase, turns, playerHP, screenW, screenH int, next func() (scene.Scene, error)) *Result {
	return &Result{
		outcome:  outcome,
		turns:    turns,
		playerHP: playerHP,
		screenW:  screenW,
		screenH:  screenH,
		next:     next,
		pressed:  inpututil.IsKeyJustPressed,
		closing:  ebiten.IsWindowBeingClosed,
	}
}

// Outcome returns the battle result shown
func (r *Result) Outcome() state.BattlePhase {
	return r.outcome
}

// Update waits for continue or quit (implements scene.Scene)
func (r *Result) Update(_ float64) (scene.Scene, error) {
	if r.pressed(ebiten.KeyEscape) || r.closing() {
		return nil, ebiten.Termination
	}
	if r.pressed(ebiten.KeyZ) || r.pressed(ebiten.KeySpace) {
		next, err := r.next()
		if err != nil {
			return nil, fmt.Errorf("failed to continue: %w", err)
		}
		return next, nil
	}
	return nil, nil
}

// Draw renders the result overlay
func (r *Result) Draw(screen *ebiten.Image) {
	c := colorDefeat
	title := "DEFEAT"
	if r.outcome == state.PhaseVictory {
		c = colorVictory
		title = "VICTORY"
	}
	screen.Fill(c)

	text := fmt.Sprintf("%s\n\nTurns: %d\nHP left: %d\n\nPress Z to continue\nPress ESC to quit",
		title, r.turns, r.playerHP)
	ebitenutil.DebugPrintAt(screen, text, r.screenW/2-90, r.screenH/2-40)
}

// OnEnter is called when entering this scene
func (r *Result) OnEnter() {}

// OnExit is called when leaving this scene
func (r *Result) OnExit() {}

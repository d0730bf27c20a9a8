// Package menu provides the main menu screen.
package menu

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/roguelike/internal/application/scene"
	"github.com/younwookim/roguelike/internal/application/system"
)

var (
	colorBG     = color.RGBA{0, 0, 0, 255}
	colorButton = color.RGBA{100, 100, 100, 255}
)

// Button is a clickable labelled rectangle
type Button struct {
	Label string
	Rect  image.Rectangle
}

// Menu buttons, top to bottom
var (
	NewGameButton  = Button{Label: "New Game", Rect: image.Rect(300, 200, 500, 250)}
	ContinueButton = Button{Label: "Continue", Rect: image.Rect(300, 270, 500, 320)}
	ExitButton     = Button{Label: "Exit", Rect: image.Rect(300, 340, 500, 390)}
)

// Menu is the title screen
type Menu struct {
	title   string
	buttons []Button

	// newGame builds the first scene of a fresh run
	newGame func() (scene.Scene, error)

	// replaced in tests
	click   func() (image.Point, bool)
	closing func() bool
}

// New creates the main menu
func New(title string, newGame func() (scene.Scene, error)) *Menu {
	return &Menu{
		title:   title,
		buttons: []Button{NewGameButton, ContinueButton, ExitButton},
		newGame: newGame,
		click:   system.JustClicked,
		closing: ebiten.IsWindowBeingClosed,
	}
}

// Update handles button clicks (implements scene.Scene)
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	if m.closing() {
		return nil, ebiten.Termination
	}
	p, ok := m.click()
	if !ok {
		return nil, nil
	}

	switch {
	case p.In(NewGameButton.Rect):
		next, err := m.newGame()
		if err != nil {
			return nil, fmt.Errorf("failed to start new game: %w", err)
		}
		return next, nil
	case p.In(ContinueButton.Rect):
		// Runs are not saved, so there is nothing to continue.
		log.Printf("[Menu] continue: no saved run")
	case p.In(ExitButton.Rect):
		return nil, ebiten.Termination
	}
	return nil, nil
}

// Draw renders the title and buttons
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, m.title, 350, 100)

	for _, b := range m.buttons {
		r := b.Rect
		ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), colorButton)
		ebitenutil.DebugPrintAt(screen, b.Label, r.Min.X+r.Dx()/2-len(b.Label)*3, r.Min.Y+r.Dy()/2-8)
	}
}

// OnEnter is called when entering this scene
func (m *Menu) OnEnter() {}

// OnExit is called when leaving this scene
func (m *Menu) OnExit() {}

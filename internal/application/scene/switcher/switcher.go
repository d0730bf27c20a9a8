// Package switcher provides the scene switcher screen.
package switcher

import (
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/roguelike/internal/application/loop"
	"github.com/younwookim/roguelike/internal/application/replay"
	"github.com/younwookim/roguelike/internal/application/scene"
	"github.com/younwookim/roguelike/internal/application/state"
	"github.com/younwookim/roguelike/internal/application/system"
	"github.com/younwookim/roguelike/internal/domain/entity"
)

// Switcher runs the loop controller under ebiten, one Tick per Update
type Switcher struct {
	controller *loop.Controller
	renderer   *FrameRenderer
	keys       string

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a switcher screen.
// If recordPath is not empty, raw input will be recorded.
func New(controller *loop.Controller, renderer *FrameRenderer, recordPath string) *Switcher {
	s := &Switcher{
		controller:     controller,
		renderer:       renderer,
		keys:           keyHelp(controller.Scenes().Registry()),
		recordFilename: recordPath,
	}

	if recordPath != "" {
		s.recorder = replay.NewRecorder()
		controller.OnInput = s.recorder.RecordFrame
		log.Printf("[Switcher] recording enabled: %s", recordPath)
	}
	return s
}

// Update advances the loop by one tick (implements scene.Scene)
func (s *Switcher) Update(_ float64) (scene.Scene, error) {
	s.controller.Tick()
	if s.controller.State() == state.StateStopped {
		return nil, ebiten.Termination
	}
	return nil, nil
}

// Draw renders the current scene color and a help line
func (s *Switcher) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)

	current := s.controller.Scenes().Current()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Scene: %s (frame %d)", current, s.controller.Frame()), 10, 10)
	ebitenutil.DebugPrintAt(screen, s.keys, 10, 30)
}

// OnEnter is called when entering this scene
func (s *Switcher) OnEnter() {
	log.Printf("[Switcher] start on %s", s.controller.Scenes().Current())
}

// OnExit is called when leaving this scene
func (s *Switcher) OnExit() {
	s.saveRecording()
}

// Controller returns the driven loop controller
func (s *Switcher) Controller() *loop.Controller {
	return s.controller
}

// saveRecording saves the current recording to file
func (s *Switcher) saveRecording() {
	if s.recorder == nil {
		return
	}
	s.recorder.Stop()

	if err := s.recorder.Save(s.recordFilename); err != nil {
		log.Printf("[Switcher] failed to save recording: %v", err)
	} else {
		log.Printf("[Switcher] recording saved: %s (%d frames)", s.recordFilename, s.recorder.FrameCount())
	}
}

func keyHelp(reg *entity.SceneRegistry) string {
	parts := make([]string, 0, reg.Len())
	for i, sc := range reg.Scenes() {
		if i >= len(system.DefaultSceneKeys) {
			break
		}
		parts = append(parts, fmt.Sprintf("%s: %s", system.DefaultSceneKeys[i], sc.Name))
	}
	return strings.Join(parts, " | ") + " | Close window: Quit"
}

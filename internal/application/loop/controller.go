// Package loop drives the scene switcher one tick at a time.
//
// Each tick reads one batch of raw input, turns it into intents, applies
// scene changes in order and renders the current scene. The controller
// knows nothing about ebiten windows; input and output go through the
// system.InputSource and Renderer collaborators.
package loop

import (
	"context"
	"image/color"
	"log"
	"time"

	"github.com/younwookim/roguelike/internal/application/event"
	"github.com/younwookim/roguelike/internal/application/state"
	"github.com/younwookim/roguelike/internal/application/system"
	"github.com/younwookim/roguelike/internal/domain/entity"
)

// DefaultTPS is the nominal tick rate
const DefaultTPS = 60

// Renderer draws one frame
type Renderer interface {
	Clear(bg color.Color)
	Fill(c color.Color)
	Present()
}

// SceneChanged is the payload of event.TopicSceneChanged
type SceneChanged struct {
	From entity.Scene
	To   entity.Scene
}

// Controller owns the loop state and the collaborators of the switcher
type Controller struct {
	input      system.InputSource
	dispatcher *system.InputDispatcher
	scenes     *system.SceneManager
	renderer   Renderer
	bus        *event.Bus
	background color.Color

	state state.LoopState
	frame int

	// OnInput, if set, sees each raw batch before it is dispatched
	OnInput func(raw []system.RawEvent)
}

// NewController creates a running controller. bus may be nil.
func NewController(
	input system.InputSource,
	dispatcher *system.InputDispatcher,
	scenes *system.SceneManager,
	renderer Renderer,
	bus *event.Bus,
	background color.Color,
) *Controller {
	if bus != nil {
		bus.Ensure(event.TopicSceneChanged, event.TopicQuit)
	}
	return &Controller{
		input:      input,
		dispatcher: dispatcher,
		scenes:     scenes,
		renderer:   renderer,
		bus:        bus,
		background: background,
		state:      state.StateRunning,
	}
}

// Tick runs one iteration of the loop. It does nothing once stopped.
func (c *Controller) Tick() {
	if c.state == state.StateStopped {
		return
	}

	raw := c.input.ReadInput()
	if c.OnInput != nil {
		c.OnInput(raw)
	}

	intents := c.dispatcher.Dispatch(raw)
	if system.IsQuit(intents) {
		c.Stop()
		return
	}

	for _, intent := range intents {
		si, ok := intent.(system.SceneIntent)
		if !ok {
			continue
		}
		from := c.scenes.Current()
		if err := c.scenes.ChangeScene(si.Scene); err != nil {
			continue
		}
		c.publish(event.TopicSceneChanged, SceneChanged{From: from, To: si.Scene})
	}

	c.renderer.Clear(c.background)
	c.renderer.Fill(c.scenes.Current().Color)
	c.renderer.Present()
	c.frame++
}

// Stop requests loop exit
func (c *Controller) Stop() {
	if c.state == state.StateStopped {
		return
	}
	c.state = state.StateStopped
	log.Printf("[Loop] stopped after %d frames on %s", c.frame, c.scenes.Current())
	c.publish(event.TopicQuit, c.frame)
}

// Run ticks at tps until the loop stops or ctx is done
func (c *Controller) Run(ctx context.Context, tps int) error {
	if tps <= 0 {
		tps = DefaultTPS
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for c.state == state.StateRunning {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Tick()
		}
	}
	return nil
}

// State returns the loop state
func (c *Controller) State() state.LoopState {
	return c.state
}

// Frame returns the number of rendered frames
func (c *Controller) Frame() int {
	return c.frame
}

// Scenes returns the scene manager
func (c *Controller) Scenes() *system.SceneManager {
	return c.scenes
}

func (c *Controller) publish(topic event.Topic, payload any) {
	if c.bus == nil {
		return
	}
	if err := c.bus.Publish(topic, payload); err != nil {
		log.Printf("[Loop] publish %s: %v", topic, err)
	}
}

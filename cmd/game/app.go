package main

import (
	"fmt"
	"log"

	"github.com/younwookim/roguelike/configs"
	"github.com/younwookim/roguelike/internal/application/event"
	"github.com/younwookim/roguelike/internal/application/loop"
	"github.com/younwookim/roguelike/internal/application/replay"
	"github.com/younwookim/roguelike/internal/application/system"
	"github.com/younwookim/roguelike/internal/infrastructure/config"
)

// newLoader reads configs from dir, or from the embedded tables if dir is empty
func newLoader(dir string) *config.Loader {
	if dir != "" {
		return config.NewLoader(dir)
	}
	return config.NewFSLoader(configs.FS, "configs")
}

// inputSource picks the replay file if one is given, else the keyboard
func inputSource(replayPath string) (system.InputSource, error) {
	if replayPath == "" {
		return system.NewKeyboardInput(), nil
	}
	data, err := replay.LoadReplay(replayPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load replay %s: %w", replayPath, err)
	}
	log.Printf("[Main] replaying %s (%d frames)", replayPath, len(data.Frames))
	return replay.NewReplayer(*data), nil
}

// newController wires the scene switcher collaborators
func newController(cfg *config.GameConfig, src system.InputSource, renderer loop.Renderer, bus *event.Bus) (*loop.Controller, error) {
	reg, err := system.LoadSceneRegistry(cfg)
	if err != nil {
		return nil, err
	}
	return loop.NewController(
		src,
		system.NewInputDispatcher(reg, system.DefaultSceneKeys),
		system.NewSceneManager(reg),
		renderer,
		bus,
		cfg.Display.Background.Color(),
	), nil
}

// logSceneChanges prints every applied transition
func logSceneChanges(bus *event.Bus) error {
	_, err := bus.Subscribe(event.TopicSceneChanged, func(e event.Event) {
		sc := e.Payload.(loop.SceneChanged)
		log.Printf("[Main] %s -> %s", sc.From, sc.To)
	})
	return err
}

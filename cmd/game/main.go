package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/roguelike/internal/application/event"
	"github.com/younwookim/roguelike/internal/application/game"
	"github.com/younwookim/roguelike/internal/application/scene/switcher"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play input back from a recorded file")
	headlessFlag := flag.Bool("headless", false, "Run without a window (requires -replay)")
	configFlag := flag.String("config", "", "Config directory (defaults to the embedded tables)")
	flag.Parse()

	if *headlessFlag && *replayFlag == "" {
		log.Fatalf("-headless needs -replay: there is no keyboard without a window")
	}

	cfg, err := newLoader(*configFlag).LoadGame()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	src, err := inputSource(*replayFlag)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}

	bus := event.NewBus()
	renderer := switcher.NewFrameRenderer()
	controller, err := newController(cfg, src, renderer, bus)
	if err != nil {
		log.Fatalf("Failed to build scenes: %v", err)
	}
	if err := logSceneChanges(bus); err != nil {
		log.Fatalf("Failed to subscribe: %v", err)
	}

	sw := switcher.New(controller, renderer, *recordFlag)

	if *headlessFlag {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sw.OnEnter()
		err := controller.Run(ctx, cfg.Display.Framerate)
		sw.OnExit()
		if err != nil {
			log.Fatalf("Headless run interrupted: %v", err)
		}
		log.Printf("[Main] finished on %s after %d frames", controller.Scenes().Current(), controller.Frame())
		return
	}

	g := game.New(sw, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetTPS(cfg.Display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

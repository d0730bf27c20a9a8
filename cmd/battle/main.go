package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/roguelike/configs"
	"github.com/younwookim/roguelike/internal/application/event"
	"github.com/younwookim/roguelike/internal/application/game"
	"github.com/younwookim/roguelike/internal/application/system"
	"github.com/younwookim/roguelike/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	seedFlag := flag.Int64("seed", 0, "RNG seed (0 picks one from the clock)")
	enemyFlag := flag.String("enemy", "", "Enemy to fight (defaults to the first configured)")
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg, err := config.NewFSLoader(configs.FS, "configs").LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bus := event.NewBus()
	bus.Ensure(event.TopicBattleOver)
	_, err = bus.Subscribe(event.TopicBattleOver, func(e event.Event) {
		over := e.Payload.(system.BattleOver)
		log.Printf("[Main] battle over: %s on turn %d", over.Result, over.Turn)
	})
	if err != nil {
		log.Fatalf("Failed to subscribe: %v", err)
	}

	s := newSession(cfg, *enemyFlag, seed, bus)
	first, err := s.mainMenu()
	if err != nil {
		log.Fatalf("Failed to open menu: %v", err)
	}
	log.Printf("[Main] seed %d", seed)

	display := cfg.Game.Display
	g := game.New(first, display.ScreenWidth, display.ScreenHeight)
	g.SetTPS(display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title + " - Battle")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

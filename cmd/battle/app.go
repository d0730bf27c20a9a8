package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/younwookim/roguelike/internal/application/event"
	"github.com/younwookim/roguelike/internal/application/scene"
	battlescene "github.com/younwookim/roguelike/internal/application/scene/battle"
	"github.com/younwookim/roguelike/internal/application/scene/dungeon"
	"github.com/younwookim/roguelike/internal/application/scene/menu"
	"github.com/younwookim/roguelike/internal/application/scene/result"
	"github.com/younwookim/roguelike/internal/application/state"
	"github.com/younwookim/roguelike/internal/application/system"
	"github.com/younwookim/roguelike/internal/domain/entity"
	"github.com/younwookim/roguelike/internal/infrastructure/config"
)

var errNoRun = errors.New("no run in progress")

// session runs menu -> map -> battle -> result -> map.
// A run's player carries HP across battles until defeat sends it back to the menu.
type session struct {
	cfg     *config.Configs
	enemy   string
	rng     *rand.Rand
	bus     *event.Bus
	battles int

	player  *entity.Combatant
	dungeon *entity.Dungeon
}

func newSession(cfg *config.Configs, enemy string, seed int64, bus *event.Bus) *session {
	return &session{
		cfg:   cfg,
		enemy: enemy,
		rng:   rand.New(rand.NewSource(seed)),
		bus:   bus,
	}
}

// mainMenu creates the title screen
func (s *session) mainMenu() (scene.Scene, error) {
	return menu.New(s.cfg.Game.Display.Title, s.newGame), nil
}

// newGame starts a run with a fresh player and floor
func (s *session) newGame() (scene.Scene, error) {
	s.player = system.LoadPlayer(s.cfg.Battle, s.rng)
	s.dungeon = entity.NewDungeon()
	log.Printf("[Session] new run: %s with %d HP", s.player.Name, s.player.HP)
	return s.dungeonMap()
}

// dungeonMap creates the map screen for the current run
func (s *session) dungeonMap() (scene.Scene, error) {
	if s.player == nil {
		return nil, errNoRun
	}
	return dungeon.New(s.dungeon, s.player, s.newBattle), nil
}

// newBattle creates a battle scene against a fresh enemy
func (s *session) newBattle() (scene.Scene, error) {
	if s.player == nil {
		return nil, errNoRun
	}
	enemy, err := system.LoadEnemy(s.cfg.Battle, s.enemy, s.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to load enemy: %w", err)
	}
	s.player.ResetDeck(s.rng)
	s.battles++

	b := system.NewBattle(s.player, enemy, s.rng, s.bus, s.cfg.Battle.HandSize)
	display := s.cfg.Game.Display
	return battlescene.New(b, s.bus, battlescene.Options{
		ScreenW:       display.ScreenWidth,
		ScreenH:       display.ScreenHeight,
		MessageFrames: s.cfg.Battle.MessageFrames,
		OnFinish:      s.finish,
	}), nil
}

func (s *session) finish(b *system.Battle) scene.Scene {
	display := s.cfg.Game.Display
	return result.New(b.Phase(), b.Turn(), b.Player.HP, display.ScreenWidth, display.ScreenHeight, s.afterBattle(b.Phase()))
}

// afterBattle picks the scene behind the result screen.
// Victory returns to the map, defeat ends the run.
func (s *session) afterBattle(outcome state.BattlePhase) func() (scene.Scene, error) {
	if outcome == state.PhaseVictory {
		return s.dungeonMap
	}
	log.Printf("[Session] run over after %d battles", s.battles)
	s.player = nil
	s.dungeon = nil
	return s.mainMenu
}

package system

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/younwookim/roguelike/internal/domain/entity"
	"github.com/younwookim/roguelike/internal/infrastructure/config"
)

var ErrUnknownEnemy = errors.New("unknown enemy")

// LoadSceneRegistry converts the ordered scene table into a registry
func LoadSceneRegistry(cfg *config.GameConfig) (*entity.SceneRegistry, error) {
	scenes := make([]entity.Scene, len(cfg.Scenes))
	for i, s := range cfg.Scenes {
		scenes[i] = entity.Scene{Name: s.Name, Color: s.Color.Color()}
	}
	reg, err := entity.NewSceneRegistry(scenes)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene registry: %w", err)
	}
	return reg, nil
}

// LoadDeck expands the deck entries into cards and shuffles them
func LoadDeck(cfg *config.BattleConfig, rng *rand.Rand) []entity.Card {
	var deck []entity.Card
	for _, entry := range cfg.Player.Deck {
		c := cfg.Cards[entry.Card]
		for i := 0; i < entry.Copies; i++ {
			deck = append(deck, entity.Card{
				Name:   entry.Card,
				Cost:   c.Cost,
				Damage: c.Damage,
				Block:  c.Block,
			})
		}
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// LoadPlayer creates the player combatant with a shuffled starting deck
func LoadPlayer(cfg *config.BattleConfig, rng *rand.Rand) *entity.Combatant {
	p := cfg.Player
	return entity.NewCombatant(p.Name, p.MaxHP, p.MaxEnergy, LoadDeck(cfg, rng))
}

// LoadEnemy creates the named enemy. An empty name picks the first one.
func LoadEnemy(cfg *config.BattleConfig, name string, rng *rand.Rand) (*entity.Enemy, error) {
	if name == "" {
		if len(cfg.Enemies) == 0 {
			return nil, fmt.Errorf("%w: no enemies configured", ErrUnknownEnemy)
		}
		name = cfg.Enemies[0].Name
	}
	e, ok := cfg.Enemy(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEnemy, name)
	}

	actions := make([]entity.Action, len(e.Actions))
	for i, a := range e.Actions {
		actions[i] = entity.Action{Name: a.Name, Damage: a.Damage}
	}
	return entity.NewEnemy(e.Name, e.MaxHP, actions, rng), nil
}

package system

import (
	"log"
	"math/rand"

	"github.com/younwookim/roguelike/internal/application/event"
	"github.com/younwookim/roguelike/internal/application/state"
	"github.com/younwookim/roguelike/internal/domain/entity"
)

// DefaultHandSize is the number of cards drawn at the start of each turn
const DefaultHandSize = 5

// TurnStarted is the payload of event.TopicTurnStarted
type TurnStarted struct {
	Turn int
}

// CardPlayed is the payload of event.TopicCardPlayed
type CardPlayed struct {
	Actor  string
	Target string
	Card   entity.Card
}

// EnemyActed is the payload of event.TopicEnemyActed
type EnemyActed struct {
	Enemy  string
	Action entity.Action
	Lost   int
}

// BattleOver is the payload of event.TopicBattleOver
type BattleOver struct {
	Result state.BattlePhase
	Turn   int
}

// Battle runs a one-on-one card battle between the player and an enemy
type Battle struct {
	Player *entity.Combatant
	Enemy  *entity.Enemy

	rng      *rand.Rand
	bus      *event.Bus
	handSize int
	turn     int
	phase    state.BattlePhase
}

// NewBattle creates a battle. bus may be nil.
func NewBattle(player *entity.Combatant, enemy *entity.Enemy, rng *rand.Rand, bus *event.Bus, handSize int) *Battle {
	if handSize <= 0 {
		handSize = DefaultHandSize
	}
	if bus != nil {
		bus.Ensure(event.TopicTurnStarted, event.TopicCardPlayed, event.TopicEnemyActed, event.TopicBattleOver)
	}
	return &Battle{
		Player:   player,
		Enemy:    enemy,
		rng:      rng,
		bus:      bus,
		handSize: handSize,
		phase:    state.PhaseAwaitingPlayer,
	}
}

// Start begins the first player turn
func (b *Battle) Start() {
	b.turn = 0
	b.phase = state.PhaseAwaitingPlayer
	b.startPlayerTurn()
}

// PlayCard plays the card at index against the enemy.
// Returns false if it is not the player's turn or the play is invalid.
func (b *Battle) PlayCard(index int) bool {
	if b.phase != state.PhaseAwaitingPlayer {
		return false
	}
	card, ok := b.Player.PlayCard(&b.Enemy.Combatant, index)
	if !ok {
		return false
	}
	b.publish(event.TopicCardPlayed, CardPlayed{
		Actor:  b.Player.Name,
		Target: b.Enemy.Name,
		Card:   card,
	})
	b.checkOutcome()
	return true
}

// EndPlayerTurn discards the hand, lets the enemy act and starts the next
// player turn if nobody has won.
func (b *Battle) EndPlayerTurn() {
	if b.phase != state.PhaseAwaitingPlayer {
		return
	}
	b.Player.EndTurn()

	b.phase = state.PhaseEnemyTurn
	action, lost := b.Enemy.Act(b.Player, b.rng)
	b.publish(event.TopicEnemyActed, EnemyActed{
		Enemy:  b.Enemy.Name,
		Action: action,
		Lost:   lost,
	})
	if b.checkOutcome() {
		return
	}

	b.phase = state.PhaseAwaitingPlayer
	b.startPlayerTurn()
}

// Phase returns the current battle phase
func (b *Battle) Phase() state.BattlePhase {
	return b.phase
}

// Turn returns the current turn number, starting at 1
func (b *Battle) Turn() int {
	return b.turn
}

// IsOver returns true once either side is defeated
func (b *Battle) IsOver() bool {
	return b.phase.IsTerminal()
}

func (b *Battle) startPlayerTurn() {
	b.turn++
	b.Player.StartTurn(b.handSize, b.rng)
	b.publish(event.TopicTurnStarted, TurnStarted{Turn: b.turn})
}

// checkOutcome moves to a terminal phase if a side is down.
// Defeat is checked first.
func (b *Battle) checkOutcome() bool {
	switch {
	case b.Player.IsDefeated():
		b.phase = state.PhaseDefeat
	case b.Enemy.IsDefeated():
		b.phase = state.PhaseVictory
	default:
		return false
	}
	log.Printf("[Battle] %s on turn %d", b.phase, b.turn)
	b.publish(event.TopicBattleOver, BattleOver{Result: b.phase, Turn: b.turn})
	return true
}

func (b *Battle) publish(topic event.Topic, payload any) {
	if b.bus == nil {
		return
	}
	if err := b.bus.Publish(topic, payload); err != nil {
		log.Printf("[Battle] publish %s: %v", topic, err)
	}
}

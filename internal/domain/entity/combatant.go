package entity

import "math/rand"

// Card is a playable card
type Card struct {
	Name   string
	Cost   int
	Damage int
	Block  int
}

// Combatant is a battle participant with a deck cycle.
// Cards only move between Deck, Hand and Discard; the multiset of all
// three is fixed at creation.
type Combatant struct {
	Name      string
	HP        int
	MaxHP     int
	Energy    int
	MaxEnergy int
	Block     int

	Deck    []Card
	Hand    []Card
	Discard []Card
}

// NewCombatant creates a combatant at full health and energy
func NewCombatant(name string, maxHP, maxEnergy int, deck []Card) *Combatant {
	d := make([]Card, len(deck))
	copy(d, deck)
	return &Combatant{
		Name:      name,
		HP:        maxHP,
		MaxHP:     maxHP,
		Energy:    maxEnergy,
		MaxEnergy: maxEnergy,
		Deck:      d,
	}
}

// DrawCards moves up to n cards from the deck into the hand.
// An empty deck is refilled from the shuffled discard pile first.
func (c *Combatant) DrawCards(n int, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		if len(c.Deck) == 0 {
			c.Deck, c.Discard = c.Discard, nil
			rng.Shuffle(len(c.Deck), func(a, b int) {
				c.Deck[a], c.Deck[b] = c.Deck[b], c.Deck[a]
			})
		}
		if len(c.Deck) == 0 {
			continue
		}
		last := len(c.Deck) - 1
		c.Hand = append(c.Hand, c.Deck[last])
		c.Deck = c.Deck[:last]
	}
}

// StartTurn refills energy, draws a hand and drops block
func (c *Combatant) StartTurn(handSize int, rng *rand.Rand) {
	c.Energy = c.MaxEnergy
	c.DrawCards(handSize, rng)
	c.Block = 0
}

// EndTurn discards the whole hand
func (c *Combatant) EndTurn() {
	c.Discard = append(c.Discard, c.Hand...)
	c.Hand = nil
}

// PlayCard plays the card at index against target.
// Returns false without touching either side if the index is out of range
// or there is not enough energy.
func (c *Combatant) PlayCard(target *Combatant, index int) (Card, bool) {
	if index < 0 || index >= len(c.Hand) {
		return Card{}, false
	}
	card := c.Hand[index]
	if c.Energy < card.Cost {
		return Card{}, false
	}

	c.Energy -= card.Cost
	// Outgoing damage ignores the target's block.
	target.TakeDamage(card.Damage)
	c.Block += card.Block

	c.Hand = append(c.Hand[:index], c.Hand[index+1:]...)
	c.Discard = append(c.Discard, card)
	return card, true
}

// TakeDamage removes hp directly, clamped at zero
func (c *Combatant) TakeDamage(amount int) {
	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}
}

// AbsorbAttack applies an incoming attack through block first.
// Returns the hp actually lost.
func (c *Combatant) AbsorbAttack(damage int) int {
	lost := max(0, damage-c.Block)
	c.Block = max(0, c.Block-damage)
	before := c.HP
	c.TakeDamage(lost)
	return before - c.HP
}

// ResetDeck gathers hand and discard back into a shuffled deck and clears
// block and energy for a new battle. HP is kept.
func (c *Combatant) ResetDeck(rng *rand.Rand) {
	c.Deck = append(c.Deck, c.Hand...)
	c.Deck = append(c.Deck, c.Discard...)
	c.Hand, c.Discard = nil, nil
	rng.Shuffle(len(c.Deck), func(a, b int) {
		c.Deck[a], c.Deck[b] = c.Deck[b], c.Deck[a]
	})
	c.Block = 0
	c.Energy = c.MaxEnergy
}

// IsDefeated returns true once hp reaches zero
func (c *Combatant) IsDefeated() bool {
	return c.HP <= 0
}

// CardCount returns the total number of cards owned
func (c *Combatant) CardCount() int {
	return len(c.Deck) + len(c.Hand) + len(c.Discard)
}

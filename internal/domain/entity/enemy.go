package entity

import "math/rand"

// Action is a single enemy move
type Action struct {
	Name   string
	Damage int
}

// Enemy is a combatant that picks one action per turn
type Enemy struct {
	Combatant
	Actions []Action
	Intent  Action // next action, shown to the player
}

// NewEnemy creates an enemy and pre-chooses its first action.
// Enemies do not use energy.
func NewEnemy(name string, maxHP int, actions []Action, rng *rand.Rand) *Enemy {
	a := make([]Action, len(actions))
	copy(a, actions)
	e := &Enemy{
		Combatant: *NewCombatant(name, maxHP, 0, nil),
		Actions:   a,
	}
	e.ChooseAction(rng)
	return e
}

// ChooseAction picks the next intent uniformly at random
func (e *Enemy) ChooseAction(rng *rand.Rand) {
	if len(e.Actions) == 0 {
		e.Intent = Action{}
		return
	}
	e.Intent = e.Actions[rng.Intn(len(e.Actions))]
}

// Act performs the current intent against player and chooses the next one.
// Returns the performed action and the hp the player lost.
func (e *Enemy) Act(player *Combatant, rng *rand.Rand) (Action, int) {
	if len(e.Actions) == 0 {
		return Action{}, 0
	}
	action := e.Intent
	lost := player.AbsorbAttack(action.Damage)
	e.ChooseAction(rng)
	return action, lost
}

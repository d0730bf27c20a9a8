package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestActions() []Action {
	return []Action{
		{Name: "Attack", Damage: 10},
		{Name: "Defend", Damage: 5},
		{Name: "Strong Attack", Damage: 15},
	}
}

func TestNewEnemy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	enemy := NewEnemy("Slime", 50, createTestActions(), rng)

	require.NotNil(t, enemy)
	assert.Equal(t, "Slime", enemy.Name)
	assert.Equal(t, 50, enemy.HP)
	assert.Equal(t, 50, enemy.MaxHP)
	assert.Equal(t, 0, enemy.MaxEnergy)
	assert.Contains(t, createTestActions(), enemy.Intent, "first intent is pre-chosen")
}

func TestEnemy_Act(t *testing.T) {
	t.Run("block absorbs part of the hit", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		enemy := NewEnemy("Slime", 50, []Action{{Name: "Attack", Damage: 10}}, rng)
		player := NewCombatant("Player", 100, 3, nil)
		player.Block = 5

		action, lost := enemy.Act(player, rng)

		assert.Equal(t, "Attack", action.Name)
		assert.Equal(t, 5, lost)
		assert.Equal(t, 95, player.HP)
		assert.Equal(t, 0, player.Block)
	})

	t.Run("uses the pre-chosen intent", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		enemy := NewEnemy("Slime", 50, createTestActions(), rng)
		player := NewCombatant("Player", 100, 3, nil)
		intent := enemy.Intent

		action, lost := enemy.Act(player, rng)

		assert.Equal(t, intent, action)
		assert.Equal(t, intent.Damage, lost)
		assert.Contains(t, createTestActions(), enemy.Intent)
	})

	t.Run("no actions does nothing", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		enemy := NewEnemy("Rock", 10, nil, rng)
		player := NewCombatant("Player", 100, 3, nil)

		action, lost := enemy.Act(player, rng)

		assert.Equal(t, Action{}, action)
		assert.Equal(t, 0, lost)
		assert.Equal(t, 100, player.HP)
	})
}

func TestEnemy_ChooseAction_CoversAllActions(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	enemy := NewEnemy("Slime", 50, createTestActions(), rng)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		enemy.ChooseAction(rng)
		seen[enemy.Intent.Name] = true
	}

	assert.Len(t, seen, 3)
}

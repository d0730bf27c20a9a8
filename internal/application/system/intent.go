package system

import "github.com/younwookim/roguelike/internal/domain/entity"

// Intent represents an action requested by input for the current tick
type Intent interface {
	isIntent()
}

// QuitIntent requests the loop to stop. It overrides every other intent of its tick.
type QuitIntent struct{}

func (QuitIntent) isIntent() {}

// SceneIntent requests a switch to Scene
type SceneIntent struct {
	Scene entity.Scene
}

func (SceneIntent) isIntent() {}

// PlayCardIntent requests playing the hand card at Index
type PlayCardIntent struct {
	Index int
}

func (PlayCardIntent) isIntent() {}

// EndTurnIntent requests ending the player's turn
type EndTurnIntent struct{}

func (EndTurnIntent) isIntent() {}

// IsQuit reports whether intents is the collapsed quit result
func IsQuit(intents []Intent) bool {
	if len(intents) != 1 {
		return false
	}
	_, ok := intents[0].(QuitIntent)
	return ok
}

package state

// LoopState represents the state of the scene switcher loop
type LoopState int

const (
	StateRunning LoopState = iota
	StateStopped
)

// String returns the string representation of the loop state
func (s LoopState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// BattlePhase represents where a card battle currently is
type BattlePhase int

const (
	PhaseAwaitingPlayer BattlePhase = iota
	PhaseEnemyTurn
	PhaseVictory
	PhaseDefeat
)

// String returns the string representation of the battle phase
func (p BattlePhase) String() string {
	switch p {
	case PhaseAwaitingPlayer:
		return "AwaitingPlayer"
	case PhaseEnemyTurn:
		return "EnemyTurn"
	case PhaseVictory:
		return "Victory"
	case PhaseDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true once the battle has a winner
func (p BattlePhase) IsTerminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

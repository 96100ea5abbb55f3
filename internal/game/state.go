// Package game provides the turn engine and the terminal game loop.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default state: the player may move around.
	StateExplore State = iota
	// StateCombat means the player stands in a room with a living enemy.
	StateCombat
	// StateVictory is terminal: the player has left the cave.
	StateVictory
	// StateDefeat is terminal: the player has died.
	StateDefeat
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateCombat:
		return "combat"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the game has ended.
func (s State) IsTerminal() bool {
	return s == StateVictory || s == StateDefeat
}

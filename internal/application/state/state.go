package state

// GameState represents the current state of a play session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Simulating reports whether the simulation advances in this state
func (s GameState) Simulating() bool {
	return s == StatePlaying
}

// TogglePause switches between Playing and Paused. Other states are kept.
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}

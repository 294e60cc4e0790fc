package state

// GameState represents the current state of a play session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateGameOver
	StateStageClear
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
	case StateStageClear:
		return "StageClear"
	default:
		return "Unknown"
	}
}

// Finished reports whether the run has ended
func (s GameState) Finished() bool {
	return s == StateGameOver || s == StateStageClear
}

// TogglePause flips between Playing and Paused. Finished states stay put.
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

// AfterStep returns the state following a simulation step.
// A death wins over reaching the goal in the same step.
func (s GameState) AfterStep(died, won bool) GameState {
	if s != StatePlaying {
		return s
	}
	switch {
	case died:
		return StateGameOver
	case won:
		return StateStageClear
	default:
		return s
	}
}

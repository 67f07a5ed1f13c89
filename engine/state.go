package engine

// State is the lifecycle state of a game
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// validTransitions lists the states reachable from each state
// Idle -> Idle is the reset of a fresh board
var validTransitions = map[State][]State{
	StateIdle:     {StateRunning, StateIdle},
	StateRunning:  {StatePaused, StateGameOver, StateIdle},
	StatePaused:   {StateRunning, StateIdle},
	StateGameOver: {StateIdle},
}

// CanTransition checks if a state transition is valid
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

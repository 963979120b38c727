package manager

// GameState is the phase of a play session
type GameState int

const (
	Ready GameState = iota
	Playing
	GameOver
	Win
)

func (s GameState) String() string {
	switch s {
	case Ready:
		return "Ready"
	case Playing:
		return "Playing"
	case GameOver:
		return "GameOver"
	case Win:
		return "Win"
	default:
		return "Unknown"
	}
}

// StatusMessage is the player-facing line shown for a state
func StatusMessage(s GameState) string {
	switch s {
	case Ready:
		return "Ready?\nmove with directional keys"
	case Playing:
		return "Game on"
	case GameOver:
		return "Game over\npress space to reset"
	case Win:
		return "You win!\npress space to reset"
	default:
		return ""
	}
}

// StateChange is emitted on every transition
type StateChange struct {
	From   GameState
	To     GameState
	Status string
}

var validTransitions = map[GameState][]GameState{
	Ready:    {Playing},
	Playing:  {GameOver, Win},
	GameOver: {Ready},
	Win:      {Ready},
}

type StateManager struct {
	state GameState
}

func NewStateManager() *StateManager {
	return &StateManager{state: Ready}
}

func (sm *StateManager) State() GameState {
	return sm.state
}

// MovementAllowed is true only while playing
func (sm *StateManager) MovementAllowed() bool {
	return sm.state == Playing
}

// CanTransition reports whether from -> to is an edge of the state machine
func (sm *StateManager) CanTransition(from, to GameState) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves to the given state if the edge exists
func (sm *StateManager) Transition(to GameState) (StateChange, bool) {
	if !sm.CanTransition(sm.state, to) {
		return StateChange{}, false
	}
	change := StateChange{From: sm.state, To: to, Status: StatusMessage(to)}
	sm.state = to
	return change, true
}

// Reset handles the external restart signal. Only a finished game goes back
// to Ready; from Ready or Playing it returns false and nothing changes.
func (sm *StateManager) Reset() (StateChange, bool) {
	return sm.Transition(Ready)
}

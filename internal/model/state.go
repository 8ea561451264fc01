package model

// State mirrors the engine's element state machine.
type State int

const (
	// StateVoidPending means no pending state
	StateVoidPending State = iota

	// StateNull is the initial state, no resources allocated
	StateNull

	// StateReady means resources are allocated but no data flows
	StateReady

	// StatePaused means the pipeline is prerolled and holds the first frame
	StatePaused

	// StatePlaying means the clock is running and data flows
	StatePlaying
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case StateVoidPending:
		return "VOID_PENDING"
	case StateNull:
		return "NULL"
	case StateReady:
		return "READY"
	case StatePaused:
		return "PAUSED"
	case StatePlaying:
		return "PLAYING"
	default:
		return "UNKNOWN"
	}
}

package core

// EventKind tags the observable outcome of a transition so collaborators
// can pick audio and visual cues without diffing state.
type EventKind int

const (
	EventStarted EventKind = iota
	EventMoved
	EventRotated
	EventDropped
	EventHardDropped
	EventLineCleared
	EventTetrisCleared
	EventLeveledUp
	EventGameOver
	EventRejected
)

// String returns the wire name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventMoved:
		return "moved"
	case EventRotated:
		return "rotated"
	case EventDropped:
		return "dropped"
	case EventHardDropped:
		return "hardDropped"
	case EventLineCleared:
		return "lineCleared"
	case EventTetrisCleared:
		return "tetrisCleared"
	case EventLeveledUp:
		return "leveledUp"
	case EventGameOver:
		return "gameOver"
	case EventRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Reason explains why a transition was rejected.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonNotRunning
	ReasonGameOver
	ReasonCollision
)

// String returns the wire name of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNotRunning:
		return "not-running"
	case ReasonGameOver:
		return "game-over"
	case ReasonCollision:
		return "collision"
	default:
		return ""
	}
}

// Event is one emitted tag. Rows is set on line-clear events; Reason is
// set on rejections.
type Event struct {
	Kind   EventKind `json:"kind"`
	Rows   int       `json:"rows,omitempty"`
	Reason Reason    `json:"reason,omitempty"`
}

func rejected(r Reason) []Event {
	return []Event{{Kind: EventRejected, Reason: r}}
}

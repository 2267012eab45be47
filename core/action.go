package core

import "time"

// Op enumerates the discrete inbound actions the core accepts. Each op
// maps 1:1 to a transition.
type Op int

const (
	OpStart Op = iota
	OpMoveLeft
	OpMoveRight
	OpRotate
	OpSoftDrop
	OpHardDrop
	OpTick
)

// String returns the wire name of the op.
func (o Op) String() string {
	switch o {
	case OpStart:
		return "start"
	case OpMoveLeft:
		return "moveLeft"
	case OpMoveRight:
		return "moveRight"
	case OpRotate:
		return "rotate"
	case OpSoftDrop:
		return "softDrop"
	case OpHardDrop:
		return "hardDrop"
	case OpTick:
		return "tick"
	default:
		return "unknown"
	}
}

// Action is one discrete input or timer event. Elapsed is set by the
// clock collaborator for OpTick; a tick behaves exactly like a soft drop
// and the transition does not depend on the elapsed value.
type Action struct {
	Op      Op
	Elapsed time.Duration
}

// Tick builds a tick action carrying the collaborator's elapsed time.
func Tick(elapsed time.Duration) Action {
	return Action{Op: OpTick, Elapsed: elapsed}
}

package server

import (
	"fmt"
	"time"

	"github.com/plus3/blockfall/core"
)

// ClientMessage is one inbound action from the player.
type ClientMessage struct {
	Op        string `json:"op"`
	ElapsedMs int64  `json:"elapsedMs,omitempty"`
}

// ServerMessage carries the post-transition snapshot and the events the
// transition emitted; one is written after every applied action. Events
// is always an array on the wire, never null. A gravity lock that clears
// no rows and does not end the game emits no events, so clients wanting
// a lock cue should diff snapshots: the active piece is replaced by the
// previous on-deck piece.
type ServerMessage struct {
	Snapshot core.Snapshot `json:"snapshot"`
	Events   []core.Event  `json:"events"`
}

var opNames = map[string]core.Op{
	core.OpStart.String():     core.OpStart,
	core.OpMoveLeft.String():  core.OpMoveLeft,
	core.OpMoveRight.String(): core.OpMoveRight,
	core.OpRotate.String():    core.OpRotate,
	core.OpSoftDrop.String():  core.OpSoftDrop,
	core.OpHardDrop.String():  core.OpHardDrop,
	core.OpTick.String():      core.OpTick,
}

// action translates the wire message into a core action.
func (m ClientMessage) action() (core.Action, error) {
	op, ok := opNames[m.Op]
	if !ok {
		return core.Action{}, fmt.Errorf("unknown op %q", m.Op)
	}
	return core.Action{Op: op, Elapsed: time.Duration(m.ElapsedMs) * time.Millisecond}, nil
}

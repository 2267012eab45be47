package core

import (
	"math"
	"time"
)

// InitialInterval is the auto-drop period at level 0. Each level
// multiplies it by 0.8.
const InitialInterval = 500 * time.Millisecond

// baseScores is the award per simultaneous row clear before the level
// multiplier, indexed by rows cleared. Four is the maximum a single
// piece can complete.
var baseScores = [...]int{0, 40, 100, 300, 1200}

// Session is the complete state of one play. It is an immutable value:
// transitions never mutate a session, they return the next one. The zero
// value is the idle, not-started state.
type Session struct {
	Board    Board
	Active   Piece
	Next     Kind
	Score    int
	Rows     int
	Level    int
	Interval time.Duration // auto-drop period; 0 when not ticking
	Started  bool
	Over     bool
}

// NewSession returns the idle pre-start state.
func NewSession() Session {
	return Session{}
}

// Apply computes the transition for one action. It returns the next
// session value and the ordered events the transition emitted. A
// transition that is not valid in the current state returns the session
// unchanged with a single rejection event; transitions never fail.
//
// src supplies piece kinds for OpStart and for the respawn at the end of
// a lock sequence. Callers must serialize Apply calls for a session.
func Apply(s Session, a Action, src Source) (Session, []Event) {
	switch a.Op {
	case OpStart:
		return start(src)
	case OpMoveLeft:
		return move(s, -1)
	case OpMoveRight:
		return move(s, +1)
	case OpRotate:
		return rotate(s)
	case OpSoftDrop, OpTick:
		return softDrop(s, src)
	case OpHardDrop:
		return hardDrop(s, src)
	default:
		panic("core: unknown op " + a.Op.String())
	}
}

// gate rejects transitions outside the Running state.
func gate(s Session) (Reason, bool) {
	if s.Over {
		return ReasonGameOver, false
	}
	if !s.Started {
		return ReasonNotRunning, false
	}
	return ReasonNone, true
}

// start replaces the session wholesale: empty board, zero score, fresh
// active and on-deck pieces, initial drop interval. No state survives a
// restart.
func start(src Source) (Session, []Event) {
	s := Session{
		Active:   Spawn(src.Next()),
		Next:     src.Next(),
		Interval: InitialInterval,
		Started:  true,
	}
	return s, []Event{{Kind: EventStarted}}
}

func move(s Session, dir int) (Session, []Event) {
	if r, ok := gate(s); !ok {
		return s, rejected(r)
	}
	cand := s.Active
	cand.X += dir
	if s.Board.Collides(cand) {
		return s, rejected(ReasonCollision)
	}
	s.Active = cand
	return s, []Event{{Kind: EventMoved}}
}

// rotate tries the next rotation index at the same anchor. There is no
// wall-kick correction: a rotation that would collide is rejected as-is,
// even against a wall or the stack.
func rotate(s Session) (Session, []Event) {
	if r, ok := gate(s); !ok {
		return s, rejected(r)
	}
	cand := s.Active
	cand.Rotation = (cand.Rotation + 1) % 4
	if s.Board.Collides(cand) {
		return s, rejected(ReasonCollision)
	}
	s.Active = cand
	return s, []Event{{Kind: EventRotated}}
}

func softDrop(s Session, src Source) (Session, []Event) {
	if r, ok := gate(s); !ok {
		return s, rejected(r)
	}
	cand := s.Active
	cand.Y++
	if !s.Board.Collides(cand) {
		s.Active = cand
		return s, []Event{{Kind: EventDropped}}
	}
	return lock(s, src)
}

func hardDrop(s Session, src Source) (Session, []Event) {
	if r, ok := gate(s); !ok {
		return s, rejected(r)
	}
	for {
		cand := s.Active
		cand.Y++
		if s.Board.Collides(cand) {
			break
		}
		s.Active = cand
	}
	next, events := lock(s, src)
	return next, append([]Event{{Kind: EventHardDropped}}, events...)
}

// lock runs the full lock sequence: merge the active piece, clear
// complete rows, award points and advance the level, promote the on-deck
// piece, and detect game over when the fresh piece cannot enter the
// board.
func lock(s Session, src Source) (Session, []Event) {
	s.Board = s.Board.merge(s.Active)

	var cleared int
	s.Board, cleared = s.Board.clearFull()

	var events []Event
	if cleared > 0 {
		n := min(cleared, len(baseScores)-1)
		s.Score += baseScores[n] * (s.Level + 1)
		s.Rows += cleared
		if lvl := s.Rows / 10; lvl > s.Level {
			s.Level = lvl
			s.Interval = intervalFor(lvl)
			events = append(events, Event{Kind: EventLeveledUp})
		}
		kind := EventLineCleared
		if cleared >= 4 {
			kind = EventTetrisCleared
		}
		events = append(events, Event{Kind: kind, Rows: cleared})
	}

	s.Active = Spawn(s.Next)
	s.Next = src.Next()

	if s.Board.Collides(s.Active) {
		s.Over = true
		s.Interval = 0
		events = append(events, Event{Kind: EventGameOver})
	}
	return s, events
}

// intervalFor is the drop interval at the given level:
// InitialInterval * 0.8^level.
func intervalFor(level int) time.Duration {
	return time.Duration(float64(InitialInterval) * math.Pow(0.8, float64(level)))
}

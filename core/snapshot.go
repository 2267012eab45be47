package core

// Snapshot is the read model collaborators consume after every
// transition. It is a plain copy of the session with the drop interval
// flattened to milliseconds (0 means the clock is stopped), suitable for
// JSON encoding on the play server.
type Snapshot struct {
	Board    Board `json:"board"`
	Active   Piece `json:"active"`
	Next     Kind  `json:"next"`
	Score    int   `json:"score"`
	Rows     int   `json:"rows"`
	Level    int   `json:"level"`
	Interval int64 `json:"intervalMs"`
	Started  bool  `json:"started"`
	Over     bool  `json:"over"`
}

// Snapshot returns the session's read model. The board is copied by
// value, so the snapshot never aliases live state.
func (s Session) Snapshot() Snapshot {
	return Snapshot{
		Board:    s.Board,
		Active:   s.Active,
		Next:     s.Next,
		Score:    s.Score,
		Rows:     s.Rows,
		Level:    s.Level,
		Interval: s.Interval.Milliseconds(),
		Started:  s.Started,
		Over:     s.Over,
	}
}

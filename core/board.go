package core

// Board dimensions. Row 0 is the top row.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is a single board cell. Occupied cells carry the color of the
// piece that locked there and are permanent until their row clears.
type Cell struct {
	Occupied bool  `json:"occupied"`
	Color    Color `json:"color,omitzero"`
}

// Board is the playfield, row-major with row 0 at the top. It is a value
// type: copying a session copies its board, so snapshots never alias live
// state. The falling piece is not part of the board until it locks.
type Board [BoardHeight][BoardWidth]Cell

// Collides reports whether the piece placement overlaps a wall, the
// floor, or an occupied cell. Mask cells above the visible board
// (negative row) are still bounded horizontally but have no occupancy;
// only the bottom and occupancy checks can block them on the way down.
func (b Board) Collides(p Piece) bool {
	m := p.Mask()
	for i := range 4 {
		for j := range 4 {
			if !m[i][j] {
				continue
			}
			x := p.X + j
			y := p.Y + i
			if x < 0 || x >= BoardWidth || y >= BoardHeight {
				return true
			}
			if y >= 0 && b[y][x].Occupied {
				return true
			}
		}
	}
	return false
}

// merge bakes the piece's occupied cells into the board with the kind's
// color. Cells above the visible board are dropped.
func (b Board) merge(p Piece) Board {
	m := p.Mask()
	c := p.Kind.Color()
	for i := range 4 {
		for j := range 4 {
			if !m[i][j] {
				continue
			}
			y := p.Y + i
			if y < 0 {
				continue
			}
			b[y][p.X+j] = Cell{Occupied: true, Color: c}
		}
	}
	return b
}

// clearFull removes every fully occupied row and inserts an empty row at
// the top for each, shifting the rows above down. The scan re-checks the
// same index after a removal because the shift pulls the row above into
// that slot. Returns the new board and the number of rows removed.
func (b Board) clearFull() (Board, int) {
	cleared := 0
	y := 0
	for y < BoardHeight {
		if !b.rowFull(y) {
			y++
			continue
		}
		for yy := y; yy > 0; yy-- {
			b[yy] = b[yy-1]
		}
		b[0] = [BoardWidth]Cell{}
		cleared++
	}
	return b, cleared
}

func (b Board) rowFull(y int) bool {
	for x := range BoardWidth {
		if !b[y][x].Occupied {
			return false
		}
	}
	return true
}

// Package core implements the falling-block game state machine: a grid,
// an active piece, and the rules for movement, rotation, locking, line
// clearing, scoring and difficulty progression. The package is UI-agnostic
// and side-effect free: every transition takes a session value and an
// action and returns the next session value plus the events it emitted.
// Rendering, input devices, audio and timers are external collaborators.
package core

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// NumKinds is the number of distinct piece kinds.
const NumKinds = 7

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Color is the RGBA color tag a piece leaves behind in occupied cells.
// The core never interprets it; renderers do.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

var kindColors = [NumKinds]Color{
	{102, 191, 255, 255}, // I
	{255, 203, 0, 255},   // O
	{135, 60, 190, 255},  // T
	{0, 158, 47, 255},    // S
	{255, 109, 194, 255}, // Z
	{0, 121, 241, 255},   // J
	{255, 161, 0, 255},   // L
}

// Color returns the color tag for the kind.
func (k Kind) Color() Color {
	return kindColors[k]
}

// Mask is a 4x4 occupancy grid. True cells are part of the piece;
// Mask[row][col] with row 0 at the top.
type Mask [4][4]bool

var baseMasks = [NumKinds]Mask{
	{ // I
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	{ // O
		{false, false, false, false},
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	{ // T
		{false, false, false, false},
		{false, true, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	{ // S
		{false, false, false, false},
		{false, true, true, false},
		{true, true, false, false},
		{false, false, false, false},
	},
	{ // Z
		{false, false, false, false},
		{true, true, false, false},
		{false, true, true, false},
		{false, false, false, false},
	},
	{ // J
		{false, false, false, false},
		{true, false, false, false},
		{true, true, true, false},
		{false, false, false, false},
	},
	{ // L
		{false, false, false, false},
		{false, false, true, false},
		{true, true, true, false},
		{false, false, false, false},
	},
}

// kindMasks holds the four rotation states of every kind, precomputed at
// package init. Rotation i is the base mask rotated i times clockwise.
var kindMasks [NumKinds][4]Mask

func init() {
	for k := range kindMasks {
		m := baseMasks[k]
		for r := range 4 {
			kindMasks[k][r] = m
			m = m.rotated()
		}
	}
}

// rotated returns the mask turned 90 degrees clockwise.
func (m Mask) rotated() Mask {
	var out Mask
	for i := range 4 {
		for j := range 4 {
			out[j][3-i] = m[i][j]
		}
	}
	return out
}

// columnExtent returns the leftmost and rightmost occupied columns.
func (m Mask) columnExtent() (minCol, maxCol int) {
	minCol, maxCol = 3, 0
	for i := range 4 {
		for j := range 4 {
			if !m[i][j] {
				continue
			}
			if j < minCol {
				minCol = j
			}
			if j > maxCol {
				maxCol = j
			}
		}
	}
	return minCol, maxCol
}

// RotationMask returns the precomputed occupancy mask for the kind at the
// given rotation index. The index wraps modulo 4.
func (k Kind) RotationMask(rotation int) Mask {
	return kindMasks[k][((rotation%4)+4)%4]
}

// Piece is the active falling piece: its kind, rotation index and
// top-left anchor position in board coordinates. The anchor may place
// mask rows above the visible board (negative y).
type Piece struct {
	Kind     Kind `json:"kind"`
	Rotation int  `json:"rotation"`
	X        int  `json:"x"`
	Y        int  `json:"y"`
}

// Mask returns the occupancy mask for the piece's current rotation.
func (p Piece) Mask() Mask {
	return p.Kind.RotationMask(p.Rotation)
}

// Spawn returns the kind's entry placement: rotation 0, anchor row 0,
// with the occupied extent of the mask centered horizontally.
func Spawn(k Kind) Piece {
	minCol, maxCol := kindMasks[k][0].columnExtent()
	width := maxCol - minCol + 1
	return Piece{Kind: k, X: (BoardWidth-width)/2 - minCol}
}

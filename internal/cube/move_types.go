package cube

// SliceType represents middle slice moves
type SliceType int

const (
	NoSlice SliceType = iota
	MSlice            // between L and R, follows L's direction
	ESlice            // between U and D, follows D's direction
	SSlice            // between F and B, follows F's direction
)

// RotationType represents whole-cube rotations
type RotationType int

const (
	NoRotation RotationType = iota
	XRotation               // around the R face axis
	YRotation               // around the U face axis
	ZRotation               // around the F face axis
)

// Move represents a single move in 3x3x3 notation: a face turn, a middle
// slice turn, or a whole-cube rotation, each optionally primed or doubled.
type Move struct {
	Face      Face         // which face to turn (R, L, U, D, F, B)
	Clockwise bool         // true for clockwise, false for counter-clockwise
	Double    bool         // true for 180-degree turns
	Slice     SliceType    // for slice turns (M, E, S)
	Rotation  RotationType // for cube rotations (x, y, z)
}

// MoveType identifies the permutation family a move belongs to
type MoveType int

const (
	MoveR MoveType = iota
	MoveL
	MoveU
	MoveD
	MoveF
	MoveB
	MoveM
	MoveE
	MoveS
	MoveX
	MoveY
	MoveZ
)

// Coord represents a sticker coordinate
type Coord struct {
	Face Face
	Row  int
	Col  int
}

// stickerIndex converts (face, row, col) to a flat index over the 54
// stickers
func stickerIndex(face Face, row, col int) int {
	return int(face)*9 + row*3 + col
}

// Permutation maps each source sticker index to its destination
type Permutation []int

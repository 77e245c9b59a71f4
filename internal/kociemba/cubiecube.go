package kociemba

// Corner identifies one of the 8 cubie corners by its solved-position name.
type Corner int

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
	NumCorners = 8
)

// Edge identifies one of the 12 cubie edges by its solved-position name.
type Edge int

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
	NumEdges = 12
)

// Face identifies one of the six faces a move can turn.
type Face int

const (
	FaceU Face = iota
	FaceR
	FaceF
	FaceD
	FaceL
	FaceB
	NumFaces = 6
)

func (f Face) String() string {
	return [...]string{"U", "R", "F", "D", "L", "B"}[f]
}

// Move is one of the 18 face turns: each face times {CW, half, CCW}.
type Move int

const (
	MoveU Move = iota
	MoveU2
	MoveU3
	MoveR
	MoveR2
	MoveR3
	MoveF
	MoveF2
	MoveF3
	MoveD
	MoveD2
	MoveD3
	MoveL
	MoveL2
	MoveL3
	MoveB
	MoveB2
	MoveB3
	NumMoves = 18
)

// moveFace returns the face a move turns.
func (m Move) moveFace() Face { return Face(m / 3) }

// moveNames holds the move-string tokens, indexed by Move.
var moveNames = [NumMoves]string{
	"U", "U2", "U'",
	"R", "R2", "R'",
	"F", "F2", "F'",
	"D", "D2", "D'",
	"L", "L2", "L'",
	"B", "B2", "B'",
}

func (m Move) String() string { return moveNames[m] }

// phase2Moves lists the 10 moves in the G1 subgroup: the six
// quarter/half U-D turns plus the four R/F/L/B half turns.
var phase2Moves = [10]Move{
	MoveU, MoveU2, MoveU3,
	MoveR2,
	MoveF2,
	MoveD, MoveD2, MoveD3,
	MoveL2,
	MoveB2,
}

// isPhase2Move reports whether a raw move index (0..17) belongs to G1.
var isPhase2Move [NumMoves]bool

func init() {
	for _, m := range phase2Moves {
		isPhase2Move[m] = true
	}
}

// CubieCube is the full cube state: a permutation plus orientation for
// each of the 8 corners and 12 edges.
type CubieCube struct {
	CP [NumCorners]Corner // CP[i] = which corner cubie sits at position i
	CO [NumCorners]int8   // corner orientation, 0..2, clockwise twist count
	EP [NumEdges]Edge     // EP[i] = which edge cubie sits at position i
	EO [NumEdges]int8     // edge orientation, 0..1, flipped or not
}

// Solved returns the identity cube.
func Solved() CubieCube {
	var c CubieCube
	for i := range c.CP {
		c.CP[i] = Corner(i)
	}
	for i := range c.EP {
		c.EP[i] = Edge(i)
	}
	return c
}

// IsSolved reports whether every piece is in place and correctly oriented.
func (c *CubieCube) IsSolved() bool {
	for i := 0; i < NumCorners; i++ {
		if c.CP[i] != Corner(i) || c.CO[i] != 0 {
			return false
		}
	}
	for i := 0; i < NumEdges; i++ {
		if c.EP[i] != Edge(i) || c.EO[i] != 0 {
			return false
		}
	}
	return true
}

// Multiply composes c := a * b, i.e. apply the moves of b to the cube
// already transformed by a. Corner orientations 3..5 mark a state seen
// through a reflection (the symmetry subsystem produces these); the
// orientation arithmetic below keeps composition exact for those states
// too, and ordinary cubes (orientations 0..2) take only the first branch.
func Multiply(a, b CubieCube) CubieCube {
	var r CubieCube
	for i := 0; i < NumCorners; i++ {
		r.CP[i] = a.CP[b.CP[i]]
		oriA := a.CO[b.CP[i]]
		oriB := b.CO[i]
		var ori int8
		switch {
		case oriA < 3 && oriB < 3:
			ori = oriA + oriB
			if ori >= 3 {
				ori -= 3
			}
		case oriA < 3:
			// b carries a reflection: result stays reflected
			ori = oriA + oriB
			if ori >= 6 {
				ori -= 3
			}
		case oriB < 3:
			// a carries a reflection: result stays reflected
			ori = oriA - oriB
			if ori < 3 {
				ori += 3
			}
		default:
			// two reflections cancel
			ori = oriA - oriB
			if ori < 0 {
				ori += 3
			}
		}
		r.CO[i] = ori
	}
	for i := 0; i < NumEdges; i++ {
		r.EP[i] = a.EP[b.EP[i]]
		r.EO[i] = (a.EO[b.EP[i]] + b.EO[i]) % 2
	}
	return r
}

// Inverse returns the cube state that undoes c. A reflected corner
// orientation (3..5) is its own twist inverse.
func (c CubieCube) Inverse() CubieCube {
	var r CubieCube
	for i := 0; i < NumCorners; i++ {
		r.CP[c.CP[i]] = Corner(i)
	}
	for i := 0; i < NumCorners; i++ {
		ori := c.CO[int(r.CP[i])]
		if ori >= 3 {
			r.CO[i] = ori
		} else {
			r.CO[i] = (3 - ori) % 3
		}
	}
	for i := 0; i < NumEdges; i++ {
		r.EP[c.EP[i]] = Edge(i)
	}
	for i := 0; i < NumEdges; i++ {
		r.EO[i] = c.EO[int(r.EP[i])]
	}
	return r
}

// basicMoveCubes holds the CubieCube transformation for one clockwise
// quarter turn of each of the six faces. All 18 move cubes are derived from
// these by repeated multiplication (see moveCubes below).
var basicMoveCubes = [NumFaces]CubieCube{
	// U
	{
		CP: [8]Corner{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		CO: [8]int8{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
		EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// R
	{
		CP: [8]Corner{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		CO: [8]int8{2, 0, 0, 1, 1, 0, 0, 2},
		EP: [12]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
		EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// F
	{
		CP: [8]Corner{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		CO: [8]int8{1, 2, 0, 0, 2, 1, 0, 0},
		EP: [12]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		EO: [12]int8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	// D
	{
		CP: [8]Corner{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		CO: [8]int8{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
		EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// L
	{
		CP: [8]Corner{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		CO: [8]int8{0, 1, 2, 0, 0, 2, 1, 0},
		EP: [12]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
		EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// B
	{
		CP: [8]Corner{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		CO: [8]int8{0, 0, 1, 2, 0, 0, 2, 1},
		EP: [12]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		EO: [12]int8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// moveCubes holds the CubieCube transformation for all 18 moves, built
// once from basicMoveCubes by repeated self-multiplication.
var moveCubes [NumMoves]CubieCube

func init() {
	for f := 0; f < NumFaces; f++ {
		base := basicMoveCubes[f]
		cur := base
		moveCubes[f*3+0] = cur    // quarter CW
		cur = Multiply(cur, base) // half turn
		moveCubes[f*3+1] = cur
		cur = Multiply(cur, base) // quarter CCW
		moveCubes[f*3+2] = cur
	}
}

// ApplyMove returns the cube obtained by turning the given move.
func (c CubieCube) ApplyMove(m Move) CubieCube {
	return Multiply(c, moveCubes[m])
}

// ApplyMoves applies a sequence of moves in order.
func (c CubieCube) ApplyMoves(moves []Move) CubieCube {
	for _, m := range moves {
		c = c.ApplyMove(m)
	}
	return c
}

package kociemba

// Move-successor tables let the search step a coordinate forward under a
// move without touching a full CubieCube. Each table exploits
// the fact that a coordinate's next value depends only on its own current
// value and the fixed move cube, not on the rest of the cube state: the
// builder reconstructs the projection of the cube a coordinate describes,
// composes it with each move, and records the resulting coordinate.
//
// Tables are flat row-major slices indexed [coord*NumMoves + move], which
// is also their on-disk layout.

var (
	twistMove       []uint16 // TwistCoordCount x NumMoves
	flipMove        []uint16 // FlipCoordCount x NumMoves
	sliceSortedMove []uint16 // SliceSortedCoordCount x NumMoves
	uEdgesMove      []uint16 // SliceSortedCoordCount x NumMoves
	dEdgesMove      []uint16 // SliceSortedCoordCount x NumMoves
	cornersMove     []uint16 // CornersCoordCount x NumMoves
	udEdgesMove     []uint16 // UDEdgesCoordCount x NumMoves, phase-2 moves only
)

// udEdgesMoveUnset fills the columns of udEdgesMove that phase 2 never
// consults: ud_edges is meaningless after a quarter turn of R, F, L or B.
const udEdgesMoveUnset = 0xFFFF

func buildTwistMove() {
	twistMove = make([]uint16, TwistCoordCount*NumMoves)
	cc := Solved()
	for t := 0; t < TwistCoordCount; t++ {
		cc.CO = SetTwist(t)
		for m := 0; m < NumMoves; m++ {
			twistMove[t*NumMoves+m] = uint16(Twist(Multiply(cc, moveCubes[m]).CO))
		}
	}
}

func buildFlipMove() {
	flipMove = make([]uint16, FlipCoordCount*NumMoves)
	cc := Solved()
	for f := 0; f < FlipCoordCount; f++ {
		cc.EO = SetFlip(f)
		for m := 0; m < NumMoves; m++ {
			flipMove[f*NumMoves+m] = uint16(Flip(Multiply(cc, moveCubes[m]).EO))
		}
	}
}

func buildSliceSortedMove() {
	sliceSortedMove = make([]uint16, SliceSortedCoordCount*NumMoves)
	cc := Solved()
	for s := 0; s < SliceSortedCoordCount; s++ {
		cc.EP = SetSliceSorted(s)
		for m := 0; m < NumMoves; m++ {
			sliceSortedMove[s*NumMoves+m] = uint16(SliceSorted(Multiply(cc, moveCubes[m]).EP))
		}
	}
}

func buildUEdgesMove() {
	uEdgesMove = make([]uint16, SliceSortedCoordCount*NumMoves)
	cc := Solved()
	for u := 0; u < SliceSortedCoordCount; u++ {
		cc.EP = SetUEdges(u)
		for m := 0; m < NumMoves; m++ {
			uEdgesMove[u*NumMoves+m] = uint16(UEdges(Multiply(cc, moveCubes[m]).EP))
		}
	}
}

func buildDEdgesMove() {
	dEdgesMove = make([]uint16, SliceSortedCoordCount*NumMoves)
	cc := Solved()
	for d := 0; d < SliceSortedCoordCount; d++ {
		cc.EP = SetDEdges(d)
		for m := 0; m < NumMoves; m++ {
			dEdgesMove[d*NumMoves+m] = uint16(DEdges(Multiply(cc, moveCubes[m]).EP))
		}
	}
}

func buildCornersMove() {
	cornersMove = make([]uint16, CornersCoordCount*NumMoves)
	cc := Solved()
	for c := 0; c < CornersCoordCount; c++ {
		cc.CP = SetCorners(c)
		for m := 0; m < NumMoves; m++ {
			cornersMove[c*NumMoves+m] = uint16(Corners(Multiply(cc, moveCubes[m]).CP))
		}
	}
}

func buildUDEdgesMove() {
	udEdgesMove = make([]uint16, UDEdgesCoordCount*NumMoves)
	for i := range udEdgesMove {
		udEdgesMove[i] = udEdgesMoveUnset
	}
	cc := Solved()
	for u := 0; u < UDEdgesCoordCount; u++ {
		cc.EP = SetUDEdges(u)
		for _, m := range phase2Moves {
			udEdgesMove[u*NumMoves+int(m)] = uint16(UDEdges(Multiply(cc, moveCubes[m]).EP))
		}
	}
}

// sliceCombMove steps the 495-value slice-location projection: the sorted
// coordinate of (comb, perm 0) moved by m, discarding the resulting perm.
func sliceCombMove(comb int, m Move) int {
	return int(sliceSortedMove[comb*24*NumMoves+int(m)]) / 24
}

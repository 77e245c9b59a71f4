package kociemba

// Symmetry subsystem: the cube's 48 rotational/reflective
// symmetries, generated from four basic ones. The 16-element subgroup that
// fixes the U-D axis (and therefore the phase-1 goal) partitions the
// flip×slice and corners coordinate spaces into equivalence classes, which
// shrinks the pruning tables by roughly the group order. The remaining
// symmetries (notably the 120-degree rotation about the URF-DBL diagonal,
// index 16, and its square, index 32) seed the worker pool with relabeled
// but equivalent search problems.

const (
	// SymCount is the full symmetry group order.
	SymCount = 48
	// SymD4hCount is the order of the subgroup preserving the phase-1 goal.
	SymD4hCount = 16

	// FlipSliceClassCount is the number of flip×slice equivalence classes
	// under the 16 D4h symmetries.
	FlipSliceClassCount = 64430
	// CornersClassCount is the number of corner-permutation equivalence
	// classes under the 16 D4h symmetries.
	CornersClassCount = 2768
)

// The four generating symmetries.
var (
	// symURF3 rotates the whole cube 120 degrees about the URF-DBL axis.
	symURF3 = CubieCube{
		CP: [NumCorners]Corner{URF, DFR, DLF, UFL, UBR, DRB, DBL, ULB},
		CO: [NumCorners]int8{1, 2, 1, 2, 2, 1, 2, 1},
		EP: [NumEdges]Edge{UF, FR, DF, FL, UB, BR, DB, BL, UR, DR, DL, UL},
		EO: [NumEdges]int8{1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 1, 1},
	}
	// symF2 rotates 180 degrees about the F-B axis.
	symF2 = CubieCube{
		CP: [NumCorners]Corner{DLF, DFR, DRB, DBL, UFL, URF, UBR, ULB},
		EP: [NumEdges]Edge{DL, DF, DR, DB, UL, UF, UR, UB, FL, FR, BR, BL},
	}
	// symU4 rotates 90 degrees about the U-D axis.
	symU4 = CubieCube{
		CP: [NumCorners]Corner{UBR, URF, UFL, ULB, DRB, DFR, DLF, DBL},
		EP: [NumEdges]Edge{UB, UR, UF, UL, DB, DR, DF, DL, BR, FR, FL, BL},
		EO: [NumEdges]int8{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1},
	}
	// symLR2 mirrors left-right; the reflected corner orientations use the
	// 3..5 range Multiply understands.
	symLR2 = CubieCube{
		CP: [NumCorners]Corner{UFL, URF, UBR, ULB, DLF, DFR, DRB, DBL},
		CO: [NumCorners]int8{3, 3, 3, 3, 3, 3, 3, 3},
		EP: [NumEdges]Edge{UL, UF, UR, UB, DL, DF, DR, DB, FL, FR, BR, BL},
	}
)

// symCubes[s] is the cube transformation of symmetry s. The index packs
// the generator exponents as 16*urf3 + 8*f2 + 2*u4 + lr2, so indices 0..15
// are exactly the D4h subgroup.
var symCubes [SymCount]CubieCube

// symInv[s] is the index of the inverse of symCubes[s].
var symInv [SymCount]int

// conjMove[m][s] is the move whose cube equals s^-1 * m * s: the move
// that, performed on the unrotated cube, matches performing m on the cube
// relabeled by s. Workers use it to translate solutions found in a rotated
// frame back to the caller's frame.
var conjMove [NumMoves][SymCount]Move

func init() {
	cc := Solved()
	i := 0
	for urf3 := 0; urf3 < 3; urf3++ {
		for f2 := 0; f2 < 2; f2++ {
			for u4 := 0; u4 < 4; u4++ {
				for lr2 := 0; lr2 < 2; lr2++ {
					symCubes[i] = cc
					i++
					cc = Multiply(cc, symLR2)
				}
				cc = Multiply(cc, symU4)
			}
			cc = Multiply(cc, symF2)
		}
		cc = Multiply(cc, symURF3)
	}

	identity := Solved()
	for s := 0; s < SymCount; s++ {
		for t := 0; t < SymCount; t++ {
			if Multiply(symCubes[s], symCubes[t]) == identity {
				symInv[s] = t
				break
			}
		}
	}

	for m := 0; m < NumMoves; m++ {
		for s := 0; s < SymCount; s++ {
			prod := Multiply(Multiply(symCubes[symInv[s]], moveCubes[m]), symCubes[s])
			for cand := 0; cand < NumMoves; cand++ {
				if moveCubes[cand] == prod {
					conjMove[m][s] = Move(cand)
					break
				}
			}
		}
	}
}

// conjugate returns s * cc * s^-1: the state cc as seen after relabeling
// the whole cube by symmetry s.
func conjugate(cc CubieCube, s int) CubieCube {
	return Multiply(Multiply(symCubes[s], cc), symCubes[symInv[s]])
}

// Coordinate-level conjugation tables, precomputed so the table builders
// and the pruning lookups stay pure array indexing.
//
// twistConj[t*SymD4hCount+s] is the twist coordinate of the conjugate by s
// of a cube with twist t; udEdgesConj likewise for the ud_edges coordinate.
var (
	twistConj   []uint16 // TwistCoordCount x SymD4hCount
	udEdgesConj []uint16 // UDEdgesCoordCount x SymD4hCount
)

// Flip×slice equivalence classes. flipSliceClassIdx maps a raw flipslice
// index (sliceComb*FlipCoordCount + flip) to its dense class number;
// flipSliceSym to the D4h symmetry conjugating that raw coordinate onto
// the class representative; flipSliceRep to the representative's raw
// index.
var (
	flipSliceClassIdx []uint16 // SliceCombCount*FlipCoordCount entries
	flipSliceSym      []uint8
	flipSliceRep      []uint32 // FlipSliceClassCount entries
	flipSliceSelfSym  []uint16 // 16-bit self-symmetry mask per class
)

// Corner-permutation equivalence classes, same layout as flipslice.
var (
	cornersClassIdx []uint16 // CornersCoordCount entries
	cornersSym      []uint8
	cornersRep      []uint16 // CornersClassCount entries
	cornersSelfSym  []uint16
)

func buildTwistConj() {
	twistConj = make([]uint16, TwistCoordCount*SymD4hCount)
	cc := Solved()
	for t := 0; t < TwistCoordCount; t++ {
		cc.CO = SetTwist(t)
		for s := 0; s < SymD4hCount; s++ {
			twistConj[t*SymD4hCount+s] = uint16(Twist(conjugate(cc, s).CO))
		}
	}
}

func buildUDEdgesConj() {
	udEdgesConj = make([]uint16, UDEdgesCoordCount*SymD4hCount)
	cc := Solved()
	for u := 0; u < UDEdgesCoordCount; u++ {
		cc.EP = SetUDEdges(u)
		for s := 0; s < SymD4hCount; s++ {
			udEdgesConj[u*SymD4hCount+s] = uint16(UDEdges(conjugate(cc, s).EP))
		}
	}
}

// flipSliceIndex packs (sliceComb, flip) into a raw flipslice index.
func flipSliceIndex(sliceComb, flip int) int {
	return sliceComb*FlipCoordCount + flip
}

func buildFlipSliceClasses() {
	n := SliceCombCount * FlipCoordCount
	flipSliceClassIdx = make([]uint16, n)
	flipSliceSym = make([]uint8, n)
	flipSliceRep = make([]uint32, 0, FlipSliceClassCount)
	flipSliceSelfSym = make([]uint16, 0, FlipSliceClassCount)
	for i := range flipSliceClassIdx {
		flipSliceClassIdx[i] = 0xFFFF
	}

	cc := Solved()
	for sliceComb := 0; sliceComb < SliceCombCount; sliceComb++ {
		epBase := SetSliceSorted(sliceComb * 24)
		for flip := 0; flip < FlipCoordCount; flip++ {
			idx := flipSliceIndex(sliceComb, flip)
			if flipSliceClassIdx[idx] != 0xFFFF {
				continue
			}
			cls := uint16(len(flipSliceRep))
			flipSliceClassIdx[idx] = cls
			flipSliceSym[idx] = 0
			flipSliceRep = append(flipSliceRep, uint32(idx))

			cc.EP = epBase
			cc.EO = SetFlip(flip)
			var selfMask uint16
			for s := 0; s < SymD4hCount; s++ {
				d := conjugate(cc, s)
				idx2 := flipSliceIndex(SliceSorted(d.EP)/24, Flip(d.EO))
				if idx2 == idx {
					selfMask |= 1 << uint(s)
				}
				if flipSliceClassIdx[idx2] == 0xFFFF {
					flipSliceClassIdx[idx2] = cls
					// conjugating idx2 by inv(s) recovers the representative
					flipSliceSym[idx2] = uint8(symInv[s])
				}
			}
			flipSliceSelfSym = append(flipSliceSelfSym, selfMask)
		}
	}
}

func buildCornersClasses() {
	cornersClassIdx = make([]uint16, CornersCoordCount)
	cornersSym = make([]uint8, CornersCoordCount)
	cornersRep = make([]uint16, 0, CornersClassCount)
	cornersSelfSym = make([]uint16, 0, CornersClassCount)
	for i := range cornersClassIdx {
		cornersClassIdx[i] = 0xFFFF
	}

	cc := Solved()
	for c := 0; c < CornersCoordCount; c++ {
		if cornersClassIdx[c] != 0xFFFF {
			continue
		}
		cls := uint16(len(cornersRep))
		cornersClassIdx[c] = cls
		cornersSym[c] = 0
		cornersRep = append(cornersRep, uint16(c))

		cc.CP = SetCorners(c)
		var selfMask uint16
		for s := 0; s < SymD4hCount; s++ {
			d := conjugate(cc, s)
			c2 := Corners(d.CP)
			if c2 == c {
				selfMask |= 1 << uint(s)
			}
			if cornersClassIdx[c2] == 0xFFFF {
				cornersClassIdx[c2] = cls
				cornersSym[c2] = uint8(symInv[s])
			}
		}
		cornersSelfSym = append(cornersSelfSym, selfMask)
	}
}

// flipSliceClass returns the dense class index of a raw (sliceComb, flip)
// pair together with the symmetry that conjugates it onto the class
// representative.
func flipSliceClass(sliceComb, flip int) (cls int, sym int) {
	idx := flipSliceIndex(sliceComb, flip)
	return int(flipSliceClassIdx[idx]), int(flipSliceSym[idx])
}

// cornersClass returns the dense class index of a corners coordinate
// together with the symmetry conjugating it onto the representative.
func cornersClass(c int) (cls int, sym int) {
	return int(cornersClassIdx[c]), int(cornersSym[c])
}

// flipSliceSelfSymmetries reports the 16-bit mask of D4h symmetries fixing
// the representative of a flipslice class. The pruning-table
// builder uses it to visit each orbit once.
func flipSliceSelfSymmetries(cls int) uint16 {
	return flipSliceSelfSym[cls]
}

func cornersSelfSymmetries(cls int) uint16 {
	return cornersSelfSym[cls]
}

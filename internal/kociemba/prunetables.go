package kociemba

// Pruning tables: for every (symmetry class, raw coordinate)
// pair, the BFS depth to the phase goal, stored as depth mod 3 in two bits
// with 3 as the not-yet-filled sentinel. Exact distances are recovered
// from the mod-3 residue by comparing against a neighbour whose distance
// is already known: BFS depth changes by at most one per move, so the
// residue disambiguates {d-1, d, d+1}. The fill runs forward sweeps
// (expand filled entries) until the table is more than 60% full, then
// switches to backward sweeps (adopt a filled successor) for the rest, and
// forward sweeps use the class representatives'
// self-symmetries so each orbit is visited once.

// depth3Table packs four 2-bit entries per byte.
type depth3Table []byte

const depth3Unfilled = 3

func newDepth3Table(n int) depth3Table {
	t := make(depth3Table, (n+3)/4)
	for i := range t {
		t[i] = 0xFF // every entry at the sentinel
	}
	return t
}

func (t depth3Table) get(i int) int {
	return int(t[i>>2]>>(uint(i&3)*2)) & 3
}

func (t depth3Table) set(i, v int) {
	shift := uint(i&3) * 2
	t[i>>2] = t[i>>2]&^(3<<shift) | byte(v)<<shift
}

var (
	// phase1Prune is indexed by flipsliceClass*TwistCoordCount + twist,
	// with the twist conjugated into the representative's frame.
	phase1Prune depth3Table
	// phase2Prune is indexed by cornersClass*UDEdgesCoordCount + udEdges,
	// conjugated likewise.
	phase2Prune depth3Table
	// cornSliceDepth holds exact distances for the corners x slice-permutation
	// projection of phase 2 (40320 x 24 bytes). The main phase-2 table
	// ignores the slice permutation, so this closes the gap where corners
	// and ud_edges are solved but the slice edges are still permuted.
	cornSliceDepth []uint8
)

// phase1PruneIndex maps raw phase-1 coordinates to a phase1Prune entry.
func phase1PruneIndex(flip, sliceComb, twist int) int {
	cls, s := flipSliceClass(sliceComb, flip)
	return cls*TwistCoordCount + int(twistConj[twist*SymD4hCount+s])
}

// phase2PruneIndex maps raw phase-2 coordinates to a phase2Prune entry.
func phase2PruneIndex(corners, udEdges int) int {
	cls, s := cornersClass(corners)
	return cls*UDEdgesCoordCount + int(udEdgesConj[udEdges*SymD4hCount+s])
}

func buildPhase1Prune() {
	total := FlipSliceClassCount * TwistCoordCount
	phase1Prune = newDepth3Table(total)

	// the solved flip/twist/slice state is the single goal entry
	phase1Prune.set(0, 0)
	filled := 1

	depth := 0
	backward := false
	for filled < total {
		if !backward && filled > total/10*6 {
			backward = true
		}
		mark := depth % 3
		next := (depth + 1) % 3
		for cls := 0; cls < FlipSliceClassCount; cls++ {
			rep := int(flipSliceRep[cls])
			flip := rep % FlipCoordCount
			comb := rep / FlipCoordCount
			base := cls * TwistCoordCount
			for twist := 0; twist < TwistCoordCount; twist++ {
				if backward {
					if phase1Prune.get(base+twist) != depth3Unfilled {
						continue
					}
					for m := Move(0); m < NumMoves; m++ {
						flip1 := int(flipMove[flip*NumMoves+int(m)])
						comb1 := sliceCombMove(comb, m)
						twist1 := int(twistMove[twist*NumMoves+int(m)])
						if phase1Prune.get(phase1PruneIndex(flip1, comb1, twist1)) == mark {
							phase1Prune.set(base+twist, next)
							filled++
							break
						}
					}
					continue
				}
				if phase1Prune.get(base+twist) != mark {
					continue
				}
				for m := Move(0); m < NumMoves; m++ {
					flip1 := int(flipMove[flip*NumMoves+int(m)])
					comb1 := sliceCombMove(comb, m)
					twist1 := int(twistMove[twist*NumMoves+int(m)])
					cls1, s1 := flipSliceClass(comb1, flip1)
					twist1Rep := int(twistConj[twist1*SymD4hCount+s1])
					idx1 := cls1*TwistCoordCount + twist1Rep
					if phase1Prune.get(idx1) == depth3Unfilled {
						phase1Prune.set(idx1, next)
						filled++
						// symmetric twists of a self-symmetric class sit at
						// the same depth
						if mask := flipSliceSelfSymmetries(cls1); mask != 1 {
							for s := 1; s < SymD4hCount; s++ {
								if mask&(1<<uint(s)) == 0 {
									continue
								}
								alt := cls1*TwistCoordCount + int(twistConj[twist1Rep*SymD4hCount+s])
								if phase1Prune.get(alt) == depth3Unfilled {
									phase1Prune.set(alt, next)
									filled++
								}
							}
						}
					}
				}
			}
		}
		depth++
	}
}

func buildPhase2Prune() {
	total := CornersClassCount * UDEdgesCoordCount
	phase2Prune = newDepth3Table(total)

	phase2Prune.set(0, 0)
	filled := 1

	depth := 0
	backward := false
	for filled < total {
		if !backward && filled > total/10*6 {
			backward = true
		}
		mark := depth % 3
		next := (depth + 1) % 3
		for cls := 0; cls < CornersClassCount; cls++ {
			rep := int(cornersRep[cls])
			base := cls * UDEdgesCoordCount
			for ud := 0; ud < UDEdgesCoordCount; ud++ {
				if backward {
					if phase2Prune.get(base+ud) != depth3Unfilled {
						continue
					}
					for _, m := range phase2Moves {
						corners1 := int(cornersMove[rep*NumMoves+int(m)])
						ud1 := int(udEdgesMove[ud*NumMoves+int(m)])
						if phase2Prune.get(phase2PruneIndex(corners1, ud1)) == mark {
							phase2Prune.set(base+ud, next)
							filled++
							break
						}
					}
					continue
				}
				if phase2Prune.get(base+ud) != mark {
					continue
				}
				for _, m := range phase2Moves {
					corners1 := int(cornersMove[rep*NumMoves+int(m)])
					ud1 := int(udEdgesMove[ud*NumMoves+int(m)])
					cls1, s1 := cornersClass(corners1)
					ud1Rep := int(udEdgesConj[ud1*SymD4hCount+s1])
					idx1 := cls1*UDEdgesCoordCount + ud1Rep
					if phase2Prune.get(idx1) == depth3Unfilled {
						phase2Prune.set(idx1, next)
						filled++
						if mask := cornersSelfSymmetries(cls1); mask != 1 {
							for s := 1; s < SymD4hCount; s++ {
								if mask&(1<<uint(s)) == 0 {
									continue
								}
								alt := cls1*UDEdgesCoordCount + int(udEdgesConj[ud1Rep*SymD4hCount+s])
								if phase2Prune.get(alt) == depth3Unfilled {
									phase2Prune.set(alt, next)
									filled++
								}
							}
						}
					}
				}
			}
		}
		depth++
	}
}

func buildCornSliceDepth() {
	const n = CornersCoordCount * 24
	cornSliceDepth = make([]uint8, n)
	for i := range cornSliceDepth {
		cornSliceDepth[i] = 0xFF
	}
	cornSliceDepth[0] = 0
	frontier := []int{0}
	depth := uint8(0)
	for len(frontier) > 0 {
		depth++
		var nextFrontier []int
		for _, idx := range frontier {
			corners, slice := idx/24, idx%24
			for _, m := range phase2Moves {
				corners1 := int(cornersMove[corners*NumMoves+int(m)])
				slice1 := int(sliceSortedMove[slice*NumMoves+int(m)])
				idx1 := corners1*24 + slice1
				if cornSliceDepth[idx1] == 0xFF {
					cornSliceDepth[idx1] = depth
					nextFrontier = append(nextFrontier, idx1)
				}
			}
		}
		frontier = nextFrontier
	}
}

// distanceStep resolves a successor's exact distance from its parent's:
// BFS depth moves by at most one per move, so the stored residue picks
// exactly one of {parent-1, parent, parent+1}.
func distanceStep(parent, mod3 int) int {
	switch mod3 {
	case parent % 3:
		return parent
	case (parent + 1) % 3:
		return parent + 1
	default:
		return parent - 1
	}
}

// phase1Distance walks from the given raw coordinates down to the phase-1
// goal, counting steps: every non-goal state has a successor one closer,
// identified by its mod-3 residue.
func phase1Distance(flip, sliceComb, twist int) int {
	d := 0
	for flip != 0 || sliceComb != 0 || twist != 0 {
		cur := phase1Prune.get(phase1PruneIndex(flip, sliceComb, twist))
		want := (cur + 2) % 3
		for m := Move(0); m < NumMoves; m++ {
			flip1 := int(flipMove[flip*NumMoves+int(m)])
			comb1 := sliceCombMove(sliceComb, m)
			twist1 := int(twistMove[twist*NumMoves+int(m)])
			if phase1Prune.get(phase1PruneIndex(flip1, comb1, twist1)) == want {
				flip, sliceComb, twist = flip1, comb1, twist1
				d++
				break
			}
		}
	}
	return d
}

// phase2Distance is the walk-down counterpart for the corners x ud_edges
// projection of phase 2.
func phase2Distance(corners, udEdges int) int {
	d := 0
	for corners != 0 || udEdges != 0 {
		cur := phase2Prune.get(phase2PruneIndex(corners, udEdges))
		want := (cur + 2) % 3
		for _, m := range phase2Moves {
			corners1 := int(cornersMove[corners*NumMoves+int(m)])
			ud1 := int(udEdgesMove[udEdges*NumMoves+int(m)])
			if phase2Prune.get(phase2PruneIndex(corners1, ud1)) == want {
				corners, udEdges = corners1, ud1
				d++
				break
			}
		}
	}
	return d
}

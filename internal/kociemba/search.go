package kociemba

// Two-phase IDA*: phase 1 drives the cube into the G1 subgroup
// (flip, twist and slice location all zero), phase 2 solves within G1
// using only the 10 subgroup-preserving moves. Both phases step raw
// coordinates through the move tables (no CubieCube is touched inside
// the search) and prune against the symmetry-reduced distance tables.
// Exact distances ride along each path via the mod-3 residue scheme
// (distanceStep), seeded once per search by a walk to the goal.

// maxSearchDepth bounds the per-solve move stack.
const maxSearchDepth = 30

// axis groups opposite-face pairs (U/D, R/L, F/B) into the same bucket,
// which the Face enum ordering (U,R,F,D,L,B) makes a simple mod-3.
func axis(f Face) int { return int(f) % 3 }

// moveAllowed applies the standard redundant-branch rules: never
// repeat a face, and when two successive moves are on opposite faces keep
// only the canonical face order.
func moveAllowed(m Move, lastFace Face, hasLast bool) bool {
	if !hasLast {
		return true
	}
	f := m.moveFace()
	if f == lastFace {
		return false
	}
	if axis(f) == axis(lastFace) && int(f) < int(lastFace) {
		return false
	}
	return true
}

// searchState is the per-worker coordinate vector: the
// phase-1 coordinates plus the phase-2 coordinates carried through phase 1
// so the handoff needs no cube reconstruction.
type searchState struct {
	flip, twist, sliceSorted int
	corners, uEdges, dEdges  int
}

func stateOf(cc CubieCube) searchState {
	return searchState{
		flip:        Flip(cc.EO),
		twist:       Twist(cc.CO),
		sliceSorted: SliceSorted(cc.EP),
		corners:     Corners(cc.CP),
		uEdges:      UEdges(cc.EP),
		dEdges:      DEdges(cc.EP),
	}
}

func (s searchState) apply(m Move) searchState {
	mi := int(m)
	return searchState{
		flip:        int(flipMove[s.flip*NumMoves+mi]),
		twist:       int(twistMove[s.twist*NumMoves+mi]),
		sliceSorted: int(sliceSortedMove[s.sliceSorted*NumMoves+mi]),
		corners:     int(cornersMove[s.corners*NumMoves+mi]),
		uEdges:      int(uEdgesMove[s.uEdges*NumMoves+mi]),
		dEdges:      int(dEdgesMove[s.dEdges*NumMoves+mi]),
	}
}

// twoPhaseSearch runs the two-phase search from one seeded variant of the
// input cube. better is called with every complete solution shorter than
// the shared target; it returns the new length to beat, or a value <= 0
// to end the search. target reads the shared best-so-far length (an
// atomic, consulted at every frame), and stop is polled at the top of
// every DFS frame.
type twoPhaseSearch struct {
	stop   func() bool
	target func() int
	better func(moves []Move) int

	aborted bool
	moves1  [maxSearchDepth]Move
	moves2  [maxSearchDepth]Move
}

func (t *twoPhaseSearch) halted() bool {
	return t.aborted || t.stop()
}

// run searches for solutions strictly shorter than the shared target,
// reporting each improvement through better.
func (t *twoPhaseSearch) run(start searchState) {
	d1 := phase1Distance(start.flip, start.sliceSorted/24, start.twist)

	// Iterative deepening over the phase-1 bound. Every phase-1 solution
	// is enumerated exactly once across iterations: only paths entering G1
	// at exactly the current bound, never through a final G1-preserving
	// move (such a path is a shorter phase-1 solution plus a move that
	// belongs to phase 2). Phase 1 keeps going past its optimum, since
	// longer phase-1 solutions often lead to shorter totals, and stops once the
	// bound reaches the best total found minus one.
	for bound := d1; bound <= maxSearchDepth && bound < t.target(); bound++ {
		if t.halted() {
			return
		}
		t.phase1(start, d1, 0, bound)
	}
}

func (t *twoPhaseSearch) phase1(s searchState, dist, depth, bound int) {
	if t.halted() || bound >= t.target() {
		return
	}
	if depth == bound {
		if dist == 0 && (depth == 0 || !isPhase2Move[t.moves1[depth-1]]) {
			t.phase2Start(s, depth)
		}
		return
	}
	hasLast := depth > 0
	var lastFace Face
	if hasLast {
		lastFace = t.moves1[depth-1].moveFace()
	}
	for m := Move(0); m < NumMoves; m++ {
		if !moveAllowed(m, lastFace, hasLast) {
			continue
		}
		next := s.apply(m)
		nd := distanceStep(dist, phase1Prune.get(phase1PruneIndex(next.flip, next.sliceSorted/24, next.twist)))
		if depth+1+nd > bound {
			continue
		}
		t.moves1[depth] = m
		t.phase1(next, nd, depth+1, bound)
	}
}

// phase2Start runs phase 2 from the G1 coset a phase-1 terminal reached.
// The coordinates carried through phase 1 describe the coset completely:
// corners, the merged ud_edges, and the slice-edge permutation.
func (t *twoPhaseSearch) phase2Start(s searchState, d1 int) {
	corners := s.corners
	udEdges := MergeUDEdges(s.uEdges, s.dEdges)
	slice := s.sliceSorted

	if corners == 0 && udEdges == 0 && slice == 0 {
		t.report(d1, 0)
		return
	}

	dist := phase2Distance(corners, udEdges)
	lower := dist
	if cs := int(cornSliceDepth[corners*24+slice]); cs > lower {
		lower = cs
	}

	hasLast := d1 > 0
	var lastFace Face
	if hasLast {
		lastFace = t.moves1[d1-1].moveFace()
	}
	for bound := lower; d1+bound < t.target(); bound++ {
		if t.halted() {
			return
		}
		if t.phase2(corners, udEdges, slice, dist, 0, bound, d1, lastFace, hasLast) {
			// the shortest phase-2 completion for this coset is found;
			// longer ones cannot improve the total
			return
		}
	}
}

func (t *twoPhaseSearch) phase2(corners, udEdges, slice, dist, depth, bound, d1 int, lastFace Face, hasLast bool) bool {
	if t.halted() {
		return true
	}
	if depth == bound {
		if corners == 0 && udEdges == 0 && slice == 0 {
			t.report(d1, depth)
			return true
		}
		return false
	}
	found := false
	for _, m := range phase2Moves {
		if !moveAllowed(m, lastFace, hasLast) {
			continue
		}
		mi := int(m)
		corners1 := int(cornersMove[corners*NumMoves+mi])
		udEdges1 := int(udEdgesMove[udEdges*NumMoves+mi])
		slice1 := int(sliceSortedMove[slice*NumMoves+mi])
		nd := distanceStep(dist, phase2Prune.get(phase2PruneIndex(corners1, udEdges1)))
		if depth+1+nd > bound || depth+1+int(cornSliceDepth[corners1*24+slice1]) > bound {
			continue
		}
		t.moves2[depth] = m
		if t.phase2(corners1, udEdges1, slice1, nd, depth+1, bound, d1, m.moveFace(), true) {
			found = true
			break
		}
	}
	return found
}

func (t *twoPhaseSearch) report(d1, d2 int) {
	moves := make([]Move, 0, d1+d2)
	moves = append(moves, t.moves1[:d1]...)
	moves = append(moves, t.moves2[:d2]...)
	if t.better(moves) <= 0 {
		t.aborted = true
	}
}

package kociemba

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireFullTables builds every table including the large pruning tables.
// The build takes on the order of a minute cold, so the tests that need it
// are skipped in -short runs.
func requireFullTables(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("pruning-table construction is too slow for -short")
	}
	require.NoError(t, EnsureTables(""))
}

func TestPhase1PruneGoalIsZero(t *testing.T) {
	requireFullTables(t)
	assert.Zero(t, phase1Prune.get(phase1PruneIndex(0, 0, 0)))
	assert.Zero(t, phase1Distance(0, 0, 0))
}

func TestPhase2PruneGoalIsZero(t *testing.T) {
	requireFullTables(t)
	assert.Zero(t, phase2Prune.get(phase2PruneIndex(0, 0)))
	assert.Zero(t, phase2Distance(0, 0))
	assert.Zero(t, cornSliceDepth[0])
}

// Admissibility: the stored distance never exceeds the length of
// a known move sequence reaching the state, so walking any scramble
// backwards bounds the table value.
func TestPhase1DistanceIsAdmissible(t *testing.T) {
	requireFullTables(t)
	rng := rand.New(rand.NewPCG(41, 42))
	for i := 0; i < 200; i++ {
		n := rng.IntN(14)
		cc := randomCube(rng, n)
		d := phase1Distance(Flip(cc.EO), SliceSorted(cc.EP)/24, Twist(cc.CO))
		require.LessOrEqual(t, d, n, "a %d-move scramble cannot be more than %d moves from G1", n, n)
	}
}

func TestPhase2DistanceIsAdmissible(t *testing.T) {
	requireFullTables(t)
	rng := rand.New(rand.NewPCG(43, 44))
	for i := 0; i < 200; i++ {
		n := rng.IntN(14)
		cc := Solved()
		for j := 0; j < n; j++ {
			cc = cc.ApplyMove(phase2Moves[rng.IntN(len(phase2Moves))])
		}
		d := phase2Distance(Corners(cc.CP), UDEdges(cc.EP))
		require.LessOrEqual(t, d, n)
		require.LessOrEqual(t, int(cornSliceDepth[Corners(cc.CP)*24+SliceSorted(cc.EP)]), n)
	}
}

// Consecutive states along any move sequence differ by at most one in
// stored distance; this is what lets the search carry exact distances via
// the mod-3 residues.
func TestPhase1DistanceChangesByAtMostOnePerMove(t *testing.T) {
	requireFullTables(t)
	rng := rand.New(rand.NewPCG(45, 46))
	for i := 0; i < 50; i++ {
		cc := randomCube(rng, 18)
		d := phase1Distance(Flip(cc.EO), SliceSorted(cc.EP)/24, Twist(cc.CO))
		for m := Move(0); m < NumMoves; m++ {
			moved := cc.ApplyMove(m)
			d1 := phase1Distance(Flip(moved.EO), SliceSorted(moved.EP)/24, Twist(moved.CO))
			require.LessOrEqual(t, d-1, d1)
			require.LessOrEqual(t, d1, d+1)
			// and the residue agrees with the exact distance
			require.Equal(t, d1%3, phase1Prune.get(phase1PruneIndex(Flip(moved.EO), SliceSorted(moved.EP)/24, Twist(moved.CO))))
			require.Equal(t, d1, distanceStep(d, d1%3))
		}
	}
}

func TestPhase1DistanceZeroExactlyOnG1(t *testing.T) {
	requireFullTables(t)
	rng := rand.New(rand.NewPCG(47, 48))
	for i := 0; i < 100; i++ {
		cc := randomG1Cube(rng, 20)
		require.Zero(t, phase1Distance(Flip(cc.EO), SliceSorted(cc.EP)/24, Twist(cc.CO)))
	}
	for i := 0; i < 100; i++ {
		cc := randomCube(rng, 20)
		inG1 := Flip(cc.EO) == 0 && Twist(cc.CO) == 0 && SliceSorted(cc.EP) < 24
		d := phase1Distance(Flip(cc.EO), SliceSorted(cc.EP)/24, Twist(cc.CO))
		require.Equal(t, inG1, d == 0)
	}
}

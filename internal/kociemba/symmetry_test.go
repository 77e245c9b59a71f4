package kociemba

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The symmetry and move tables build in a few seconds; the expensive
// pruning tables are not needed here, so the tests that only exercise
// coordinates, classes and move tables share this lighter setup.
var lightTablesOnce sync.Once

func requireLightTables(t *testing.T) {
	t.Helper()
	lightTablesOnce.Do(func() {
		buildTwistMove()
		buildFlipMove()
		buildSliceSortedMove()
		buildUEdgesMove()
		buildDEdgesMove()
		buildCornersMove()
		buildUDEdgesMove()
		buildTwistConj()
		buildUDEdgesConj()
		buildFlipSliceClasses()
		buildCornersClasses()
	})
}

func TestSymmetryGroupHas48DistinctElements(t *testing.T) {
	seen := map[CubieCube]bool{}
	for s := 0; s < SymCount; s++ {
		assert.False(t, seen[symCubes[s]], "symmetry %d duplicates an earlier element", s)
		seen[symCubes[s]] = true
	}
	assert.True(t, symCubes[0].IsSolved())
}

func TestSymmetryInverses(t *testing.T) {
	identity := Solved()
	for s := 0; s < SymCount; s++ {
		assert.Equal(t, identity, Multiply(symCubes[s], symCubes[symInv[s]]))
		assert.Equal(t, identity, Multiply(symCubes[symInv[s]], symCubes[s]))
	}
}

func TestConjMoveMatchesCubeConjugation(t *testing.T) {
	for m := 0; m < NumMoves; m++ {
		for s := 0; s < SymCount; s++ {
			want := Multiply(Multiply(symCubes[symInv[s]], moveCubes[m]), symCubes[s])
			assert.Equal(t, want, moveCubes[conjMove[m][s]], "move %s under symmetry %d", Move(m), s)
		}
	}
}

func TestConjugationDistributesOverMoves(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	for i := 0; i < 40; i++ {
		cc := randomCube(rng, 20)
		s := rng.IntN(SymCount)
		m := Move(rng.IntN(NumMoves))
		// s*(c*m)*s^-1 == (s*c*s^-1) * (s*m*s^-1)
		left := conjugate(cc.ApplyMove(m), s)
		right := Multiply(conjugate(cc, s), conjugate(moveCubes[m], s))
		assert.Equal(t, left, right)
	}
}

func TestTwistConjMatchesCubeConjugation(t *testing.T) {
	requireLightTables(t)
	rng := rand.New(rand.NewPCG(23, 24))
	cc := Solved()
	for i := 0; i < 300; i++ {
		twist := rng.IntN(TwistCoordCount)
		s := rng.IntN(SymD4hCount)
		cc.CO = SetTwist(twist)
		require.Equal(t, Twist(conjugate(cc, s).CO), int(twistConj[twist*SymD4hCount+s]))
	}
}

func TestUDEdgesConjMatchesCubeConjugation(t *testing.T) {
	requireLightTables(t)
	rng := rand.New(rand.NewPCG(25, 26))
	cc := Solved()
	for i := 0; i < 300; i++ {
		ud := rng.IntN(UDEdgesCoordCount)
		s := rng.IntN(SymD4hCount)
		cc.EP = SetUDEdges(ud)
		require.Equal(t, UDEdges(conjugate(cc, s).EP), int(udEdgesConj[ud*SymD4hCount+s]))
	}
}

func TestFlipSliceClassCountMatches(t *testing.T) {
	requireLightTables(t)
	assert.Equal(t, FlipSliceClassCount, len(flipSliceRep))
	for i, cls := range flipSliceClassIdx {
		require.NotEqual(t, uint16(0xFFFF), cls, "raw flipslice %d was never classified", i)
	}
}

func TestCornersClassCountMatches(t *testing.T) {
	requireLightTables(t)
	assert.Equal(t, CornersClassCount, len(cornersRep))
	for i, cls := range cornersClassIdx {
		require.NotEqual(t, uint16(0xFFFF), cls, "corners coordinate %d was never classified", i)
	}
}

func TestFlipSliceSymRecoversRepresentative(t *testing.T) {
	requireLightTables(t)
	rng := rand.New(rand.NewPCG(27, 28))
	cc := Solved()
	for i := 0; i < 300; i++ {
		sliceComb := rng.IntN(SliceCombCount)
		flip := rng.IntN(FlipCoordCount)
		cls, s := flipSliceClass(sliceComb, flip)

		cc.EP = SetSliceSorted(sliceComb * 24)
		cc.EO = SetFlip(flip)
		d := conjugate(cc, s)
		got := flipSliceIndex(SliceSorted(d.EP)/24, Flip(d.EO))
		require.Equal(t, int(flipSliceRep[cls]), got)
	}
}

func TestCornersSymRecoversRepresentative(t *testing.T) {
	requireLightTables(t)
	rng := rand.New(rand.NewPCG(29, 30))
	cc := Solved()
	for i := 0; i < 300; i++ {
		c := rng.IntN(CornersCoordCount)
		cls, s := cornersClass(c)
		cc.CP = SetCorners(c)
		require.Equal(t, int(cornersRep[cls]), Corners(conjugate(cc, s).CP))
	}
}

func TestSelfSymmetriesFixRepresentative(t *testing.T) {
	requireLightTables(t)
	cc := Solved()
	for cls := 0; cls < 500; cls++ {
		rep := int(flipSliceRep[cls])
		cc.EP = SetSliceSorted(rep / FlipCoordCount * 24)
		cc.EO = SetFlip(rep % FlipCoordCount)
		mask := flipSliceSelfSymmetries(cls)
		require.NotZero(t, mask&1, "identity must fix every representative")
		for s := 0; s < SymD4hCount; s++ {
			d := conjugate(cc, s)
			fixed := flipSliceIndex(SliceSorted(d.EP)/24, Flip(d.EO)) == rep
			require.Equal(t, mask&(1<<uint(s)) != 0, fixed, "class %d symmetry %d", cls, s)
		}
	}
}

package kociemba

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolvedCubeEncodesToZero(t *testing.T) {
	cc := Solved()
	assert.Zero(t, Twist(cc.CO))
	assert.Zero(t, Flip(cc.EO))
	assert.Zero(t, SliceSorted(cc.EP))
	assert.Zero(t, Corners(cc.CP))
	assert.Zero(t, UDEdges(cc.EP))
}

func TestTwistRoundTrip(t *testing.T) {
	for v := 0; v < TwistCoordCount; v++ {
		co := SetTwist(v)
		sum := 0
		for _, o := range co {
			sum += int(o)
		}
		require.Zero(t, sum%3, "twist %d violates the orientation invariant", v)
		require.Equal(t, v, Twist(co))
	}
}

func TestFlipRoundTrip(t *testing.T) {
	for v := 0; v < FlipCoordCount; v++ {
		eo := SetFlip(v)
		sum := 0
		for _, o := range eo {
			sum += int(o)
		}
		require.Zero(t, sum%2, "flip %d violates the orientation invariant", v)
		require.Equal(t, v, Flip(eo))
	}
}

func TestCornersRoundTrip(t *testing.T) {
	for v := 0; v < CornersCoordCount; v++ {
		require.Equal(t, v, Corners(SetCorners(v)))
	}
}

func TestUDEdgesRoundTrip(t *testing.T) {
	for v := 0; v < UDEdgesCoordCount; v++ {
		require.Equal(t, v, UDEdges(SetUDEdges(v)))
	}
}

func TestSortedEdgeCoordinateRoundTrips(t *testing.T) {
	for v := 0; v < SliceSortedCoordCount; v++ {
		require.Equal(t, v, SliceSorted(SetSliceSorted(v)), "slice_sorted %d", v)
		require.Equal(t, v, UEdges(SetUEdges(v)), "u_edges %d", v)
		require.Equal(t, v, DEdges(SetDEdges(v)), "d_edges %d", v)
	}
}

func TestSliceSortedBelow24MeansSliceOccupied(t *testing.T) {
	for v := 0; v < 24; v++ {
		ep := SetSliceSorted(v)
		for pos := 8; pos < 12; pos++ {
			assert.GreaterOrEqual(t, int(ep[pos]), int(FR), "value %d must keep the slice edges in the slice", v)
		}
	}
}

func TestCoordinatesOfScrambledCubeStayInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for i := 0; i < 200; i++ {
		cc := randomCube(rng, 30)
		assert.Less(t, Twist(cc.CO), TwistCoordCount)
		assert.Less(t, Flip(cc.EO), FlipCoordCount)
		assert.Less(t, SliceSorted(cc.EP), SliceSortedCoordCount)
		assert.Less(t, UEdges(cc.EP), SliceSortedCoordCount)
		assert.Less(t, DEdges(cc.EP), SliceSortedCoordCount)
		assert.Less(t, Corners(cc.CP), CornersCoordCount)
	}
}

// randomG1Cube scrambles within the phase-2 subgroup only, so the slice
// edges never leave the slice and ud_edges stays meaningful.
func randomG1Cube(rng *rand.Rand, n int) CubieCube {
	cc := Solved()
	for i := 0; i < n; i++ {
		cc = cc.ApplyMove(phase2Moves[rng.IntN(len(phase2Moves))])
	}
	return cc
}

func TestMergeUDEdgesMatchesDirectEncoding(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	for i := 0; i < 200; i++ {
		cc := randomG1Cube(rng, 30)
		require.Equal(t, UDEdges(cc.EP), MergeUDEdges(UEdges(cc.EP), DEdges(cc.EP)))
	}
}

package cube

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestQuarterTurnCycles(t *testing.T) {
	// Four quarter turns of any layer must return to the start
	notations := []string{"R", "L", "U", "D", "F", "B", "M", "E", "S", "x", "y", "z"}
	for _, n := range notations {
		t.Run(n, func(t *testing.T) {
			cube := NewCube()
			move, err := ParseMove(n)
			if err != nil {
				t.Fatal(err)
			}
			for i := 0; i < 4; i++ {
				if i > 0 && cube.IsSolved() && move.Rotation == NoRotation {
					t.Fatalf("%s repeated %d times should not be solved", n, i)
				}
				cube.ApplyMove(move)
			}
			if !cube.IsSolved() {
				t.Errorf("%s applied four times should restore the cube", n)
			}
		})
	}
}

func TestMoveAndInverseCancel(t *testing.T) {
	notations := []string{"R", "L", "U", "D", "F", "B", "M", "E", "S", "x", "y", "z"}
	for _, n := range notations {
		cube := NewCube()
		move, _ := ParseMove(n)
		inverse := move
		inverse.Clockwise = !move.Clockwise

		cube.ApplyMove(move)
		cube.ApplyMove(inverse)
		if !cube.IsSolved() {
			t.Errorf("%s followed by its inverse should restore the cube", n)
		}
	}
}

func TestDoubleMoveEqualsTwoQuarters(t *testing.T) {
	notations := []string{"R", "U", "F", "M", "E", "S", "x", "y", "z"}
	for _, n := range notations {
		a := NewCube()
		b := NewCube()
		move, _ := ParseMove(n)
		double, _ := ParseMove(n + "2")

		a.ApplyMove(move)
		a.ApplyMove(move)
		b.ApplyMove(double)

		if a.FaceletString() != b.FaceletString() {
			t.Errorf("%s %s and %s2 should produce the same state", n, n, n)
		}
	}
}

func TestRMoveMovesFrontColumnUp(t *testing.T) {
	cube := NewCube()
	frontColor := cube.Faces[Front][0][0]
	upColor := cube.Faces[Up][0][0]

	move, _ := ParseMove("R")
	cube.ApplyMove(move)

	// R lifts the front right column onto Up
	for r := 0; r < 3; r++ {
		if cube.Faces[Up][r][2] != frontColor {
			t.Errorf("Up right column row %d = %v, want front color %v", r, cube.Faces[Up][r][2], frontColor)
		}
	}
	// and drops the up right column onto Back (inverted)
	for r := 0; r < 3; r++ {
		if cube.Faces[Back][r][0] != upColor {
			t.Errorf("Back left column row %d = %v, want up color %v", r, cube.Faces[Back][r][0], upColor)
		}
	}
	// centers never move
	if cube.Faces[Front][1][1] != frontColor {
		t.Error("front center must not move")
	}
}

func TestUMoveCyclesTopRows(t *testing.T) {
	cube := NewCube()
	frontColor := cube.Faces[Front][0][0]
	rightColor := cube.Faces[Right][0][0]

	move, _ := ParseMove("U")
	cube.ApplyMove(move)

	// U sends the front top row to the left face
	for c := 0; c < 3; c++ {
		if cube.Faces[Left][0][c] != frontColor {
			t.Errorf("Left top row col %d = %v, want %v", c, cube.Faces[Left][0][c], frontColor)
		}
	}
	// and the right top row to the front
	for c := 0; c < 3; c++ {
		if cube.Faces[Front][0][c] != rightColor {
			t.Errorf("Front top row col %d = %v, want %v", c, cube.Faces[Front][0][c], rightColor)
		}
	}
	// bottom rows untouched
	for c := 0; c < 3; c++ {
		if cube.Faces[Front][2][c] != frontColor {
			t.Error("U must not touch the front bottom row")
		}
	}
}

func TestSliceMovesLeaveOuterLayersAlone(t *testing.T) {
	cube := NewCube()
	move, _ := ParseMove("M")
	cube.ApplyMove(move)

	for r := 0; r < 3; r++ {
		if cube.Faces[Front][r][0] != White || cube.Faces[Front][r][2] != White {
			t.Error("M must not touch the front outer columns")
		}
	}
	if cube.Faces[Right][1][1] != Orange || cube.Faces[Left][1][1] != Red {
		t.Error("M must not touch the R and L faces")
	}
}

func TestRotationsPreserveSolvedState(t *testing.T) {
	for _, n := range []string{"x", "y", "z", "x'", "y2", "z'"} {
		cube := NewCube()
		move, _ := ParseMove(n)
		cube.ApplyMove(move)
		if !cube.IsSolved() {
			t.Errorf("rotation %s of a solved cube must stay solved", n)
		}
	}
}

func TestRotationEquivalences(t *testing.T) {
	// A y rotation relabels faces the same way as U E' D' played together
	a := NewCube()
	b := NewCube()

	movesA, _ := ParseMoves("y")
	movesB, _ := ParseMoves("U E' D'")
	a.ApplyMoves(movesA)
	b.ApplyMoves(movesB)
	if a.FaceletString() != b.FaceletString() {
		t.Error("y must equal U E' D'")
	}

	// x z y should differ from z x y in general: apply to a scrambled cube
	scramble, _ := ParseMoves("R U F")
	c1 := NewCube()
	c1.ApplyMoves(scramble)
	c2 := NewCube()
	c2.ApplyMoves(scramble)
	m1, _ := ParseMoves("x z")
	m2, _ := ParseMoves("z x")
	c1.ApplyMoves(m1)
	c2.ApplyMoves(m2)
	if c1.FaceletString() == c2.FaceletString() {
		t.Error("x z and z x should not commute on a scrambled cube")
	}
}

func TestSexyMoveHasOrderSix(t *testing.T) {
	cube := NewCube()
	moves, _ := ParseMoves("R U R' U'")
	for i := 0; i < 6; i++ {
		if cube.IsSolved() && i > 0 {
			t.Fatalf("sexy move repeated %d times should not be solved yet", i)
		}
		cube.ApplyMoves(moves)
	}
	if !cube.IsSolved() {
		t.Error("R U R' U' repeated six times must restore the cube")
	}
}

func TestScrambleAndReverseRestores(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	notations := []string{"R", "L", "U", "D", "F", "B"}
	suffixes := []string{"", "'", "2"}

	for trial := 0; trial < 20; trial++ {
		var scramble []Move
		for i := 0; i < 25; i++ {
			n := notations[rng.Intn(len(notations))] + suffixes[rng.Intn(len(suffixes))]
			move, err := ParseMove(n)
			if err != nil {
				t.Fatal(err)
			}
			scramble = append(scramble, move)
		}

		cube := NewCube()
		cube.ApplyMoves(scramble)

		for i := len(scramble) - 1; i >= 0; i-- {
			inverse := scramble[i]
			if !inverse.Double {
				inverse.Clockwise = !inverse.Clockwise
			}
			cube.ApplyMove(inverse)
		}

		if !cube.IsSolved() {
			t.Fatalf("trial %d: reversing the scramble %s did not restore the cube", trial, FormatMoves(scramble))
		}
	}
}

func TestEachMoveKeepsColorCounts(t *testing.T) {
	notations := []string{"R", "L'", "U2", "D", "F'", "B2", "M", "E'", "S2", "x", "y'", "z2"}
	for _, n := range notations {
		cube := NewCube()
		move, _ := ParseMove(n)
		cube.ApplyMove(move)

		counts := map[Color]int{}
		for face := 0; face < 6; face++ {
			for row := 0; row < 3; row++ {
				for col := 0; col < 3; col++ {
					counts[cube.Faces[face][row][col]]++
				}
			}
		}
		for color, count := range counts {
			if count != 9 {
				t.Errorf("%s: color %v appears %d times, want 9", n, color, count)
			}
		}
	}
}

func BenchmarkApplyScramble(b *testing.B) {
	moves, err := ParseMoves("R U R' U' F2 D' L B2 R' D2 F U2 B' L2 D R2 U' F' B D2")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cube := NewCube()
		cube.ApplyMoves(moves)
		if cube.IsSolved() {
			b.Fatal(fmt.Errorf("scramble should not solve the cube"))
		}
	}
}

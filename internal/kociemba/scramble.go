package kociemba

import "math/rand/v2"

// ScrambleLength is how many random moves Scramble applies. It comfortably
// exceeds God's number so the result is indistinguishable from a uniformly
// random cube state for practical purposes.
const ScrambleLength = 25

// ScrambleResult pairs a random scramble with its outcome: the
// facelet string of the resulting cube and the move sequence that reached
// it from solved.
type ScrambleResult struct {
	Facelets string
	Moves    []string
}

// Scramble produces a random sequence of moves and the cube state it
// reaches from solved, honoring the same no-redundant-move rules the
// solver's own search uses so the scramble cannot trivially cancel itself.
func Scramble() ScrambleResult {
	cc := Solved()
	moves := make([]Move, 0, ScrambleLength)
	var lastFace Face
	hasLast := false

	for len(moves) < ScrambleLength {
		m := Move(rand.IntN(NumMoves))
		if !moveAllowed(m, lastFace, hasLast) {
			continue
		}
		cc = cc.ApplyMove(m)
		moves = append(moves, m)
		lastFace, hasLast = m.moveFace(), true
	}

	result := ScrambleResult{Facelets: cc.Facelets()}
	for _, m := range moves {
		result.Moves = append(result.Moves, m.String())
	}
	return result
}

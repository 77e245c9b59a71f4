package cube

import "sync"

// PermKey represents a cache key for permutations
type PermKey struct {
	MoveType     MoveType
	QuarterTurns int
}

// Permutation cache with thread-safe access
var permCache = make(map[PermKey]Permutation)
var permCacheMu sync.RWMutex

// getPermutation retrieves or generates a permutation from cache
func getPermutation(moveType MoveType, quarterTurns int) Permutation {
	key := PermKey{moveType, quarterTurns}

	permCacheMu.RLock()
	if perm, ok := permCache[key]; ok {
		permCacheMu.RUnlock()
		return perm
	}
	permCacheMu.RUnlock()

	perm := generatePermutation(moveType, quarterTurns)

	permCacheMu.Lock()
	permCache[key] = perm
	permCacheMu.Unlock()

	return perm
}

func identityPermutation() Permutation {
	perm := make(Permutation, 54)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

// generatePermutation creates the sticker permutation for a move family
// turned quarterTurns times clockwise
func generatePermutation(moveType MoveType, quarterTurns int) Permutation {
	switch moveType {
	case MoveX:
		// x rotates the whole cube like R: R, M' and L' together
		return composePermutations(
			getPermutation(MoveR, quarterTurns),
			getPermutation(MoveM, 4-quarterTurns),
			getPermutation(MoveL, 4-quarterTurns),
		)
	case MoveY:
		// y rotates like U: U, E' and D' together
		return composePermutations(
			getPermutation(MoveU, quarterTurns),
			getPermutation(MoveE, 4-quarterTurns),
			getPermutation(MoveD, 4-quarterTurns),
		)
	case MoveZ:
		// z rotates like F: F, S and B' together
		return composePermutations(
			getPermutation(MoveF, quarterTurns),
			getPermutation(MoveS, quarterTurns),
			getPermutation(MoveB, 4-quarterTurns),
		)
	}

	perm := identityPermutation()

	var ring []Coord
	var face Face
	hasFace := false
	switch moveType {
	case MoveR:
		ring, face, hasFace = ringR(), Right, true
	case MoveL:
		ring, face, hasFace = ringL(), Left, true
	case MoveU:
		ring, face, hasFace = ringU(), Up, true
	case MoveD:
		ring, face, hasFace = ringD(), Down, true
	case MoveF:
		ring, face, hasFace = ringF(), Front, true
	case MoveB:
		ring, face, hasFace = ringB(), Back, true
	case MoveM:
		ring = ringM()
	case MoveE:
		ring = ringE()
	case MoveS:
		ring = ringS()
	default:
		return perm
	}

	applyRing(perm, ring, quarterTurns)
	if hasFace {
		applyRing(perm, faceRing(face), quarterTurns)
	}
	return perm
}

// applyRing writes the cyclic advancement of a ring into perm
func applyRing(perm Permutation, ring []Coord, quarterTurns int) {
	indices := make([]int, len(ring))
	for i, coord := range ring {
		indices[i] = stickerIndex(coord.Face, coord.Row, coord.Col)
	}
	rotated := rotateSlice(indices, quarterTurns)
	for i, srcIdx := range indices {
		perm[srcIdx] = rotated[i]
	}
}

// composePermutations chains permutations left to right: the result sends
// each sticker where applying every permutation in order would
func composePermutations(perms ...Permutation) Permutation {
	result := identityPermutation()
	for _, p := range perms {
		next := make(Permutation, 54)
		for src, mid := range result {
			next[src] = p[mid]
		}
		result = next
	}
	return result
}

// applyPermutation applies a permutation to the cube's stickers
func applyPermutation(cube *Cube, perm Permutation) {
	var colors [54]Color
	idx := 0
	for face := 0; face < 6; face++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				colors[idx] = cube.Faces[face][row][col]
				idx++
			}
		}
	}

	var newColors [54]Color
	for src, dst := range perm {
		newColors[dst] = colors[src]
	}

	idx = 0
	for face := 0; face < 6; face++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				cube.Faces[face][row][col] = newColors[idx]
				idx++
			}
		}
	}
}

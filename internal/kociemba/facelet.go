package kociemba

// Facelet colors use the {U,R,F,D,L,B} alphabet; a facelet's
// color is named by the face whose center carries that color.
type facelet int

const (
	faceU facelet = iota
	faceR
	faceF
	faceD
	faceL
	faceB
)

var faceletLetters = [6]byte{'U', 'R', 'F', 'D', 'L', 'B'}

func (f facelet) byte() byte { return faceletLetters[f] }

func faceletFromByte(b byte) (facelet, bool) {
	switch b {
	case 'U':
		return faceU, true
	case 'R':
		return faceR, true
	case 'F':
		return faceF, true
	case 'D':
		return faceD, true
	case 'L':
		return faceL, true
	case 'B':
		return faceB, true
	}
	return 0, false
}

// Facelet position indices within the 54-char string
// (U1..U9, R1..R9, F1..F9, D1..D9, L1..L9, B1..B9).
const (
	U1 = iota
	U2
	U3
	U4
	U5
	U6
	U7
	U8
	U9
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9
	L1
	L2
	L3
	L4
	L5
	L6
	L7
	L8
	L9
	B1
	B2
	B3
	B4
	B5
	B6
	B7
	B8
	B9
)

// cornerFacelet gives, for each corner position, the three facelet indices
// it occupies, listed U/D-face-first then clockwise.
var cornerFacelet = [NumCorners][3]int{
	{U9, R1, F3}, // URF
	{U7, F1, L3}, // UFL
	{U1, L1, B3}, // ULB
	{U3, B1, R3}, // UBR
	{D3, F9, R7}, // DFR
	{D1, L9, F7}, // DLF
	{D7, B9, L7}, // DBL
	{D9, R9, B7}, // DRB
}

// cornerColor gives the facelet color expected at each of a corner's three
// facelets when that corner sits solved in that position.
var cornerColor = [NumCorners][3]facelet{
	{faceU, faceR, faceF}, // URF
	{faceU, faceF, faceL}, // UFL
	{faceU, faceL, faceB}, // ULB
	{faceU, faceB, faceR}, // UBR
	{faceD, faceF, faceR}, // DFR
	{faceD, faceL, faceF}, // DLF
	{faceD, faceB, faceL}, // DBL
	{faceD, faceR, faceB}, // DRB
}

// edgeFacelet gives, for each edge position, its two facelet indices.
var edgeFacelet = [NumEdges][2]int{
	{U6, R2}, // UR
	{U8, F2}, // UF
	{U4, L2}, // UL
	{U2, B2}, // UB
	{D6, R8}, // DR
	{D2, F8}, // DF
	{D4, L8}, // DL
	{D8, B8}, // DB
	{F6, R4}, // FR
	{F4, L6}, // FL
	{B6, L4}, // BL
	{B4, R6}, // BR
}

// edgeColor gives the facelet color pair expected at each edge position
// when that edge sits solved there.
var edgeColor = [NumEdges][2]facelet{
	{faceU, faceR}, // UR
	{faceU, faceF}, // UF
	{faceU, faceL}, // UL
	{faceU, faceB}, // UB
	{faceD, faceR}, // DR
	{faceD, faceF}, // DF
	{faceD, faceL}, // DL
	{faceD, faceB}, // DB
	{faceF, faceR}, // FR
	{faceF, faceL}, // FL
	{faceB, faceL}, // BL
	{faceB, faceR}, // BR
}

// Facelets renders c as a 54-character facelet string.
func (c *CubieCube) Facelets() string {
	var buf [54]byte
	for f, idx := range [6]int{U5, R5, F5, D5, L5, B5} {
		buf[idx] = faceletLetters[f]
	}
	for corner := 0; corner < NumCorners; corner++ {
		src := c.CP[corner]
		ori := c.CO[corner]
		for k := 0; k < 3; k++ {
			buf[cornerFacelet[corner][k]] = cornerColor[src][(k-int(ori)+3)%3].byte()
		}
	}
	for edge := 0; edge < NumEdges; edge++ {
		src := c.EP[edge]
		ori := c.EO[edge]
		for k := 0; k < 2; k++ {
			buf[edgeFacelet[edge][k]] = edgeColor[src][(k+int(ori))%2].byte()
		}
	}
	return string(buf[:])
}

// FromFacelets parses a 54-character facelet string into a CubieCube.
// This is the single funnel for malformed input: length and alphabet,
// centers, duplicated pieces, and orientation/permutation parity are all
// checked here.
func FromFacelets(s string) (*CubieCube, error) {
	if len(s) != 54 {
		return nil, newError(InvalidFaceletString, "facelet string must be 54 characters, got %d", len(s))
	}

	var colorAt [54]facelet
	var count [6]int
	for i := 0; i < 54; i++ {
		f, ok := faceletFromByte(s[i])
		if !ok {
			return nil, newError(InvalidFaceletString, "invalid facelet character %q at position %d", s[i], i)
		}
		colorAt[i] = f
		count[f]++
	}
	for f := 0; f < 6; f++ {
		if count[f] != 9 {
			return nil, newError(InvalidFaceletString, "face %c appears %d times, want 9", faceletLetters[f], count[f])
		}
	}
	// Centers must be exactly U,R,F,D,L,B at their own face, fixing the
	// color-to-face mapping the rest of the string is interpreted against.
	centers := [6]int{U5, R5, F5, D5, L5, B5}
	for f, idx := range centers {
		if colorAt[idx] != facelet(f) {
			return nil, newError(InvalidFaceletString, "center facelet %d is %c, want %c", idx, colorAt[idx].byte(), faceletLetters[f])
		}
	}

	var cc CubieCube

	for corner := 0; corner < NumCorners; corner++ {
		var colors [3]facelet
		for k := 0; k < 3; k++ {
			colors[k] = colorAt[cornerFacelet[corner][k]]
		}
		found := false
		for candidate := 0; candidate < NumCorners; candidate++ {
			for ori := 0; ori < 3; ori++ {
				if colors[ori] == cornerColor[candidate][0] &&
					colors[(ori+1)%3] == cornerColor[candidate][1] &&
					colors[(ori+2)%3] == cornerColor[candidate][2] {
					cc.CP[corner] = Corner(candidate)
					cc.CO[corner] = int8(ori)
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return nil, newError(InvalidCube, "corner position %d does not match any corner's colors", corner)
		}
	}

	for edge := 0; edge < NumEdges; edge++ {
		c0 := colorAt[edgeFacelet[edge][0]]
		c1 := colorAt[edgeFacelet[edge][1]]
		found := false
		for candidate := 0; candidate < NumEdges; candidate++ {
			if c0 == edgeColor[candidate][0] && c1 == edgeColor[candidate][1] {
				cc.EP[edge] = Edge(candidate)
				cc.EO[edge] = 0
				found = true
				break
			}
			if c0 == edgeColor[candidate][1] && c1 == edgeColor[candidate][0] {
				cc.EP[edge] = Edge(candidate)
				cc.EO[edge] = 1
				found = true
				break
			}
		}
		if !found {
			return nil, newError(InvalidCube, "edge position %d does not match any edge's colors", edge)
		}
	}

	if err := cc.validate(); err != nil {
		return nil, err
	}
	return &cc, nil
}

// validate checks that a cubie cube is physically assemblable: each piece
// used exactly once, the same permutation parity for corners and edges,
// corner orientation sum divisible by 3, edge orientation sum even
// (surfaced to callers as InvalidCube).
func (c *CubieCube) validate() error {
	var seenC [NumCorners]bool
	cornerSum := 0
	for i := 0; i < NumCorners; i++ {
		if seenC[c.CP[i]] {
			return newError(InvalidCube, "corner %d used more than once", c.CP[i])
		}
		seenC[c.CP[i]] = true
		cornerSum += int(c.CO[i])
	}
	if cornerSum%3 != 0 {
		return newError(InvalidCube, "corner orientation sum %d is not divisible by 3", cornerSum)
	}

	var seenE [NumEdges]bool
	edgeSum := 0
	for i := 0; i < NumEdges; i++ {
		if seenE[c.EP[i]] {
			return newError(InvalidCube, "edge %d used more than once", c.EP[i])
		}
		seenE[c.EP[i]] = true
		edgeSum += int(c.EO[i])
	}
	if edgeSum%2 != 0 {
		return newError(InvalidCube, "edge orientation sum %d is not even", edgeSum)
	}

	if cornerParity(c.CP) != edgePermParity(c.EP) {
		return newError(InvalidCube, "corner and edge permutation parity disagree")
	}
	return nil
}

func cornerParity(cp [NumCorners]Corner) int {
	return permParity(cp[:])
}

func edgePermParity(ep [NumEdges]Edge) int {
	xs := make([]int, len(ep))
	for i, e := range ep {
		xs[i] = int(e)
	}
	return permParityInts(xs)
}

// permParity computes the parity (0 even, 1 odd) of a permutation given as
// a slice of distinct small ordinals, via transposition counting.
func permParity(perm []Corner) int {
	xs := make([]int, len(perm))
	for i, p := range perm {
		xs[i] = int(p)
	}
	return permParityInts(xs)
}

func permParityInts(xs []int) int {
	xs = append([]int(nil), xs...)
	parity := 0
	for i := 0; i < len(xs); i++ {
		for xs[i] != i {
			j := xs[i]
			xs[i], xs[j] = xs[j], xs[i]
			parity ^= 1
		}
	}
	return parity
}

// String renders c as its facelet string, useful in test failure output.
func (c *CubieCube) String() string {
	return c.Facelets()
}

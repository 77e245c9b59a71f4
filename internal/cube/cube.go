package cube

import (
	"fmt"
	"strings"
)

// Face represents a face of the cube
type Face int

const (
	Front Face = iota
	Back
	Left
	Right
	Up
	Down
)

func (f Face) String() string {
	return []string{"F", "B", "L", "R", "U", "D"}[f]
}

// Color represents a sticker color
type Color int

const (
	White Color = iota
	Yellow
	Red
	Orange
	Blue
	Green
)

func (c Color) String() string {
	return []string{"W", "Y", "R", "O", "B", "G"}[c]
}

// ColoredString returns a muted colored string representation
func (c Color) ColoredString() string {
	// Much more muted colors that won't burn eyes
	colors := []string{
		"\033[37mW\033[0m", // Light gray for white
		"\033[33mY\033[0m", // Muted yellow
		"\033[31mR\033[0m", // Muted red
		"\033[35mO\033[0m", // Muted magenta for orange
		"\033[34mB\033[0m", // Muted blue
		"\033[32mG\033[0m", // Muted green
	}
	return colors[c]
}

// UnicodeString returns a colored Unicode square representation
func (c Color) UnicodeString() string {
	squares := []string{"⬜", "🟨", "🟥", "🟧", "🟦", "🟩"}
	return squares[c]
}

// faceLetter is the facelet-notation letter for the face whose center
// carries this color on a solved cube. The mapping is fixed: slice moves
// and rotations move the centers, and the letters do not follow them.
var faceLetter = [...]byte{'F', 'B', 'L', 'R', 'U', 'D'}

// letterColor inverts faceLetter for parsing facelet strings.
var letterColor = map[byte]Color{
	'F': White,
	'B': Yellow,
	'L': Red,
	'R': Orange,
	'U': Blue,
	'D': Green,
}

// faceletOrder is the facelet-string face ordering: U,R,F,D,L,B.
var faceletOrder = [6]Face{Up, Right, Front, Down, Left, Back}

// Cube represents a 3x3x3 cube as its 54 stickers
type Cube struct {
	Faces [6][3][3]Color
}

// NewCube creates a new solved cube
func NewCube() *Cube {
	cube := &Cube{}
	faceColors := [6]Color{White, Yellow, Red, Orange, Blue, Green}
	for face := 0; face < 6; face++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				cube.Faces[face][row][col] = faceColors[face]
			}
		}
	}
	return cube
}

// IsSolved checks if the cube is in a solved state
func (c *Cube) IsSolved() bool {
	for face := 0; face < 6; face++ {
		firstColor := c.Faces[face][0][0]
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if c.Faces[face][row][col] != firstColor {
					return false
				}
			}
		}
	}
	return true
}

// String returns a string representation of the cube
func (c *Cube) String() string {
	return c.StringWithColor(false)
}

// StringWithColor returns a string representation with optional colors
func (c *Cube) StringWithColor(useColor bool) string {
	var sb strings.Builder

	faceNames := []string{"Front", "Back", "Left", "Right", "Up", "Down"}

	for face := 0; face < 6; face++ {
		sb.WriteString(fmt.Sprintf("%s face:\n", faceNames[face]))
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if useColor {
					sb.WriteString(c.Faces[face][row][col].ColoredString())
				} else {
					sb.WriteString(c.Faces[face][row][col].String())
				}
				sb.WriteString(" ")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatSticker renders a single sticker per the requested style.
func (c *Cube) FormatSticker(color Color, useColor bool, useUnicode bool) string {
	switch {
	case useUnicode:
		return color.UnicodeString()
	case useColor:
		return color.ColoredString()
	default:
		return color.String()
	}
}

// UnfoldedString renders the cube as an unfolded cross: Up on top, the
// Left/Front/Right/Back belt in the middle, Down on the bottom.
func (c *Cube) UnfoldedString(useColor bool, useUnicode bool) string {
	var sb strings.Builder

	var leftPadding string
	if useUnicode {
		leftPadding = strings.Repeat(" ", 7)
	} else {
		leftPadding = strings.Repeat(" ", 4)
	}

	writeFace := func(face Face) {
		for row := 0; row < 3; row++ {
			sb.WriteString(leftPadding)
			for col := 0; col < 3; col++ {
				sb.WriteString(c.FormatSticker(c.Faces[face][row][col], useColor, useUnicode))
			}
			sb.WriteString("\n")
		}
	}

	writeFace(Up)
	sb.WriteString("\n")

	belt := [4]Face{Left, Front, Right, Back}
	for row := 0; row < 3; row++ {
		for i, face := range belt {
			for col := 0; col < 3; col++ {
				sb.WriteString(c.FormatSticker(c.Faces[face][row][col], useColor, useUnicode))
			}
			if i < len(belt)-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	writeFace(Down)

	return sb.String()
}

// FaceletString renders the cube as the 54-character facelet string
// (U1..U9,R1..R9,F1..F9,D1..D9,L1..L9,B1..B9). Each character identifies
// the face whose center carries that sticker's color on a solved cube
// (see faceLetter).
func (c *Cube) FaceletString() string {
	var sb strings.Builder
	sb.Grow(54)
	for _, face := range faceletOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				sb.WriteByte(faceLetter[c.Faces[face][row][col]])
			}
		}
	}
	return sb.String()
}

// FromFaceletString builds a Cube from a 54-character facelet string. It
// validates length and alphabet only; deeper structural validation
// (duplicate pieces, parity) belongs to the coordinate model in
// internal/kociemba, which is the single funnel for invalid-cube errors.
func FromFaceletString(s string) (*Cube, error) {
	if len(s) != 54 {
		return nil, fmt.Errorf("cube: facelet string must be 54 characters, got %d", len(s))
	}

	c := NewCube()
	idx := 0
	for _, face := range faceletOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				ch := s[idx]
				idx++
				color, ok := letterColor[ch]
				if !ok {
					return nil, fmt.Errorf("cube: invalid facelet character %q at position %d", ch, idx-1)
				}
				c.Faces[face][row][col] = color
			}
		}
	}
	return c, nil
}

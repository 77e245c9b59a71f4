package cube

import (
	"fmt"
	"strings"
)

// ParseMove parses a move from standard 3x3x3 notation.
// Supports face turns (R, U', F2), slice turns (M, E', S2) and whole-cube
// rotations (x, y', z2).
func ParseMove(notation string) (Move, error) {
	notation = strings.TrimSpace(notation)
	if len(notation) == 0 {
		return Move{}, fmt.Errorf("empty move notation")
	}

	move := Move{Clockwise: true} // default to clockwise

	// Parse modifiers at the end
	for len(notation) > 0 {
		lastChar := notation[len(notation)-1]
		if lastChar == '\'' {
			move.Clockwise = false
			notation = notation[:len(notation)-1]
		} else if lastChar == '2' {
			move.Double = true
			notation = notation[:len(notation)-1]
		} else {
			break
		}
	}

	if move.Double && !move.Clockwise {
		return Move{}, fmt.Errorf("move cannot be both doubled and primed")
	}

	switch notation {
	case "R":
		move.Face = Right
	case "L":
		move.Face = Left
	case "U":
		move.Face = Up
	case "D":
		move.Face = Down
	case "F":
		move.Face = Front
	case "B":
		move.Face = Back
	case "M":
		move.Slice = MSlice
	case "E":
		move.Slice = ESlice
	case "S":
		move.Slice = SSlice
	case "x":
		move.Rotation = XRotation
	case "y":
		move.Rotation = YRotation
	case "z":
		move.Rotation = ZRotation
	default:
		return Move{}, fmt.Errorf("unknown move notation: %s", notation)
	}

	return move, nil
}

// ParseMoves parses a sequence of moves from a whitespace-separated string
func ParseMoves(sequence string) ([]Move, error) {
	sequence = strings.TrimSpace(sequence)
	if len(sequence) == 0 {
		return []Move{}, nil
	}

	parts := strings.Fields(sequence)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("error parsing move '%s': %v", part, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// ParseScramble is an alias for ParseMoves for backward compatibility
func ParseScramble(sequence string) ([]Move, error) {
	return ParseMoves(sequence)
}

// String returns a string representation of the move
func (m Move) String() string {
	var result string

	switch {
	case m.Slice != NoSlice:
		switch m.Slice {
		case MSlice:
			result = "M"
		case ESlice:
			result = "E"
		case SSlice:
			result = "S"
		}
	case m.Rotation != NoRotation:
		switch m.Rotation {
		case XRotation:
			result = "x"
		case YRotation:
			result = "y"
		case ZRotation:
			result = "z"
		}
	default:
		switch m.Face {
		case Right:
			result = "R"
		case Left:
			result = "L"
		case Up:
			result = "U"
		case Down:
			result = "D"
		case Front:
			result = "F"
		case Back:
			result = "B"
		}
	}

	if m.Double {
		result += "2"
	} else if !m.Clockwise {
		result += "'"
	}

	return result
}

// FormatMoves renders a move sequence as a whitespace-separated string
// with no leading or trailing separators.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

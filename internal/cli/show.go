package cli

import (
	"fmt"
	"strings"

	"github.com/geodic/kociemba/internal/cube"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show cube state with optional pattern highlighting",
	Long: `Show displays the cube state after applying a scramble.
It can highlight specific patterns to help with learning algorithms.

Examples:
  cube show "R U R' U'"
  cube show "R U R' U'" --color
  cube show "R U R' U'" --highlight-cross
  cube show "" --highlight-oll`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}

		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")
		useUnicode := useColor && !useLetters
		highlightCross, _ := cmd.Flags().GetBool("highlight-cross")
		highlightOLL, _ := cmd.Flags().GetBool("highlight-oll")
		highlightPLL, _ := cmd.Flags().GetBool("highlight-pll")
		highlightF2L, _ := cmd.Flags().GetBool("highlight-f2l")

		c := cube.NewCube()

		if scramble != "" {
			moves, err := cube.ParseScramble(scramble)
			if err != nil {
				fmt.Printf("Error parsing scramble: %v\n", err)
				return
			}
			c.ApplyMoves(moves)
			fmt.Printf("Cube state after scramble: %s\n\n", scramble)
		} else {
			fmt.Println("Solved cube state:")
		}

		highlightMode := ""
		switch {
		case highlightCross:
			highlightMode = "cross"
		case highlightOLL:
			highlightMode = "oll"
		case highlightPLL:
			highlightMode = "pll"
		case highlightF2L:
			highlightMode = "f2l"
		}

		if highlightMode != "" {
			fmt.Printf("Highlighting: %s pattern\n\n", strings.ToUpper(highlightMode))
			fmt.Print(highlightedString(c, highlightMode, useColor, useUnicode))
		} else {
			fmt.Println(c.UnfoldedString(useColor, useUnicode))
		}
	},
}

// highlightedString renders the unfolded cube with non-pattern stickers
// dimmed out.
func highlightedString(c *cube.Cube, mode string, useColor, useUnicode bool) string {
	var sb strings.Builder

	dimColor := "\033[90m" // dark gray for dimmed pieces
	resetColor := "\033[0m"
	dimUnicode := "⬛"

	var leftPadding string
	if useUnicode {
		leftPadding = strings.Repeat(" ", 7)
	} else {
		leftPadding = strings.Repeat(" ", 4)
	}

	sticker := func(face cube.Face, row, col int) string {
		color := c.Faces[face][row][col]
		if shouldHighlight(face, row, col, mode) {
			return c.FormatSticker(color, useColor, useUnicode)
		}
		switch {
		case useUnicode:
			return dimUnicode
		case useColor:
			return dimColor + color.String() + resetColor
		default:
			return "."
		}
	}

	writeFace := func(face cube.Face) {
		for row := 0; row < 3; row++ {
			sb.WriteString(leftPadding)
			for col := 0; col < 3; col++ {
				sb.WriteString(sticker(face, row, col))
			}
			sb.WriteString("\n")
		}
	}

	writeFace(cube.Up)
	sb.WriteString("\n")

	belt := [4]cube.Face{cube.Left, cube.Front, cube.Right, cube.Back}
	for row := 0; row < 3; row++ {
		for i, face := range belt {
			for col := 0; col < 3; col++ {
				sb.WriteString(sticker(face, row, col))
			}
			if i < len(belt)-1 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	writeFace(cube.Down)

	return sb.String()
}

func shouldHighlight(face cube.Face, row, col int, mode string) bool {
	sideFace := face == cube.Front || face == cube.Back || face == cube.Left || face == cube.Right

	switch mode {
	case "cross":
		// the down-face cross plus its edge stickers on the side faces
		if face == cube.Down {
			return (row == 1) != (col == 1) || (row == 1 && col == 1)
		}
		return sideFace && row == 2 && col == 1

	case "oll", "pll":
		// the whole last layer
		if face == cube.Up {
			return true
		}
		return sideFace && row == 0

	case "f2l":
		// everything but the last layer
		if face == cube.Down {
			return true
		}
		return sideFace && row >= 1
	}

	return false
}

func init() {
	showCmd.Flags().BoolP("color", "c", false, "Use colored output (Unicode blocks by default)")
	showCmd.Flags().Bool("letters", false, "Use letters instead of Unicode blocks when using --color")
	showCmd.Flags().Bool("highlight-cross", false, "Highlight cross pattern")
	showCmd.Flags().Bool("highlight-oll", false, "Highlight OLL (Orientation of Last Layer)")
	showCmd.Flags().Bool("highlight-pll", false, "Highlight PLL (Permutation of Last Layer)")
	showCmd.Flags().Bool("highlight-f2l", false, "Highlight F2L (First Two Layers)")
}

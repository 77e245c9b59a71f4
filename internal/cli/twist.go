package cli

import (
	"fmt"
	"os"

	"github.com/geodic/kociemba/internal/cube"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a 3x3x3 cube and display the result",
	Long: `Apply a sequence of moves to a cube and display the resulting state.
This command does not solve the cube - it just applies the moves and shows
the result. Perfect for learning algorithms, exploring patterns, and
verifying a scramble before handing it to "cube solve".

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --color
  cube twist "R2" --start UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves := args[0]
		startFacelet, _ := cmd.Flags().GetString("start")
		useFaceletOutput, _ := cmd.Flags().GetBool("facelet")

		var c *cube.Cube
		if startFacelet != "" {
			var err error
			c, err = cube.FromFaceletString(startFacelet)
			if err != nil {
				fmt.Printf("Error parsing starting facelet string: %v\n", err)
				os.Exit(1)
			}
		} else {
			c = cube.NewCube()
		}

		if !useFaceletOutput {
			fmt.Printf("Applying moves: %s\n", moves)
		}

		parsedMoves, err := cube.ParseScramble(moves)
		if err != nil {
			if !useFaceletOutput {
				fmt.Printf("Error parsing moves: %v\n", err)
			}
			os.Exit(1)
		}

		c.ApplyMoves(parsedMoves)

		if useFaceletOutput {
			fmt.Print(c.FaceletString())
			return
		}

		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")
		useUnicode := useColor && !useLetters

		fmt.Printf("\nCube state after applying moves:\n%s\n", c.UnfoldedString(useColor, useUnicode))
		fmt.Printf("Moves applied: %d\n", len(parsedMoves))

		if c.IsSolved() {
			fmt.Printf("Status: SOLVED\n")
		} else {
			fmt.Printf("Status: scrambled\n")
		}
	},
}

func init() {
	twistCmd.Flags().BoolP("color", "c", false, "Use colored output (Unicode blocks by default)")
	twistCmd.Flags().Bool("letters", false, "Use letters instead of Unicode blocks when using --color")
	twistCmd.Flags().Bool("facelet", false, "Output the resulting state as a facelet string")
	twistCmd.Flags().String("start", "", "Starting cube state as a facelet string (default: solved)")
}

package cli

import (
	"fmt"
	"os"

	"github.com/geodic/kociemba/internal/cube"
	"github.com/geodic/kociemba/internal/kociemba"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <scramble>",
	Short: "Verify that a solve round-trips a scramble back to solved",
	Long: `Verify applies a scramble to a solved cube, solves the resulting state,
applies the solution on top, and checks the cube is solved again: the
round-trip property every solve must satisfy.

Pass --solution to check a specific candidate move sequence instead of
asking the solver for one; this is useful for checking a solution you
already have without re-running the search.

Examples:
  cube verify "R U R' U'"
  cube verify "R U2 D' L F2" --solution "F2 L' D U2 R'"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		solutionStr, _ := cmd.Flags().GetString("solution")
		verbose, _ := cmd.Flags().GetBool("verbose")
		headless, _ := cmd.Flags().GetBool("headless")
		useColor, _ := cmd.Flags().GetBool("color")
		useLetters, _ := cmd.Flags().GetBool("letters")
		useUnicode := useColor && !useLetters

		c := cube.NewCube()
		moves, err := cube.ParseScramble(scramble)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing scramble: %v\n", err)
			}
			os.Exit(1)
		}
		c.ApplyMoves(moves)

		if verbose && !headless {
			fmt.Println("Scrambled state:")
			fmt.Println(c.UnfoldedString(useColor, useUnicode))
		}

		if solutionStr == "" {
			result, err := kociemba.Solve(c.FaceletString(), kociemba.DefaultMaxMoves, kociemba.DefaultTimeout)
			if err != nil {
				if !headless {
					fmt.Printf("Error solving cube: %v\n", err)
				}
				os.Exit(1)
			}
			solutionStr = result.Solution()
		}

		solutionMoves, err := cube.ParseScramble(solutionStr)
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing solution: %v\n", err)
			}
			os.Exit(1)
		}
		c.ApplyMoves(solutionMoves)

		if verbose && !headless {
			fmt.Printf("\nAfter solution (%s):\n", solutionStr)
			fmt.Println(c.UnfoldedString(useColor, useUnicode))
		}

		if c.IsSolved() {
			if !headless {
				fmt.Printf("PASS: scramble %q resolves to solved after %q (%d moves)\n",
					scramble, solutionStr, len(solutionMoves))
			}
			os.Exit(0)
		}

		if !headless {
			fmt.Printf("FAIL: cube is not solved after scramble %q and solution %q\n", scramble, solutionStr)
		}
		os.Exit(1)
	},
}

func init() {
	verifyCmd.Flags().String("solution", "", "Solution move sequence to check (default: ask the solver)")
	verifyCmd.Flags().BoolP("verbose", "v", false, "Show cube states after each stage")
	verifyCmd.Flags().Bool("headless", false, "Exit with code 0 for pass, 1 for fail (no output)")
	verifyCmd.Flags().BoolP("color", "c", false, "Use colored output")
	verifyCmd.Flags().Bool("letters", false, "Use colored letters instead of blocks")
}

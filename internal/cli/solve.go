package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/geodic/kociemba/internal/cube"
	"github.com/geodic/kociemba/internal/kociemba"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled 3x3x3 cube with the two-phase algorithm",
	Long: `Solve applies a scramble to a solved cube, then runs Kociemba's two-phase
algorithm to find a short move sequence back to solved.

Pass --facelet to solve a specific 54-character cube state directly instead
of a scramble (format: U1..U9,R1..R9,F1..F9,D1..D9,L1..L9,B1..B9).

Use --headless for programmatic output (space-separated moves only).

Examples:
  cube solve "R U R' U'"
  cube solve --facelet UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB
  cube solve "R U2 D' L F2" -m 20 -t 5000 -p`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := ""
		if len(args) > 0 {
			scramble = args[0]
		}
		maxMoves, _ := cmd.Flags().GetInt("max-moves")
		timeoutMS, _ := cmd.Flags().GetInt("timeout")
		progress, _ := cmd.Flags().GetBool("progress")
		headless, _ := cmd.Flags().GetBool("headless")
		facelet, _ := cmd.Flags().GetString("facelet")

		if facelet == "" {
			c := cube.NewCube()
			if scramble != "" {
				moves, err := cube.ParseScramble(scramble)
				if err != nil {
					if !headless {
						fmt.Printf("Error parsing scramble: %v\n", err)
					}
					os.Exit(1)
				}
				c.ApplyMoves(moves)
			}
			facelet = c.FaceletString()
		}

		opts := kociemba.Options{
			MaxMoves: maxMoves,
			Timeout:  time.Duration(timeoutMS) * time.Millisecond,
		}
		if progress && !headless {
			fmt.Printf("Solving facelets: %s\n", facelet)
			opts.Progress = func(n int) {
				fmt.Printf("  found %d-move solution, still searching\n", n)
			}
		}

		cc, err := kociemba.FromFacelets(facelet)
		if err == nil {
			var result *kociemba.SolveResult
			result, err = kociemba.SolveCube(*cc, opts)
			if err == nil {
				if headless {
					fmt.Print(result.Solution())
				} else {
					fmt.Printf("Solution: %s\n", result.Solution())
					fmt.Printf("Moves: %d\n", result.MoveCount)
					fmt.Printf("Time: %s\n", result.SolveTime.Round(time.Millisecond))
					fmt.Printf("Status: %s\n", result.Status)
				}
				return
			}
		}

		if !headless {
			fmt.Printf("Error solving cube: %v\n", err)
		}
		var kerr *kociemba.Error
		if errors.As(err, &kerr) {
			os.Exit(errExitCode(kerr.Kind))
		}
		os.Exit(2)
	},
}

// errExitCode maps the solver's error taxonomy to a CLI exit code (zero on
// success, non-zero on invalid input).
func errExitCode(kind kociemba.ErrorKind) int {
	switch kind {
	case kociemba.InvalidFaceletString, kociemba.InvalidCube:
		return 1
	default:
		return 2
	}
}

func init() {
	solveCmd.Flags().IntP("max-moves", "m", kociemba.DefaultMaxMoves, "Maximum move count to accept")
	solveCmd.Flags().IntP("timeout", "t", int(kociemba.DefaultTimeout/time.Millisecond), "Timeout in milliseconds")
	solveCmd.Flags().BoolP("progress", "p", false, "Print progress while searching")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().String("facelet", "", "Solve this exact 54-character facelet string instead of a scramble")
}

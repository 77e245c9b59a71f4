package cli

import (
	"fmt"

	"github.com/geodic/kociemba/internal/cube"
	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [moves]",
	Short: "Optimize a sequence of moves",
	Long: `Optimize a sequence of moves by combining consecutive turns of the same
layer and removing cancellations.

Examples:
  cube optimize "R R"           # Outputs: R2
  cube optimize "R R'"          # Outputs: (empty - moves cancel)
  cube optimize "R U R' U'"     # Outputs: R U R' U' (no optimization possible)
  cube optimize "R R R"         # Outputs: R'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		headless, _ := cmd.Flags().GetBool("headless")

		moves, err := cube.ParseMoves(args[0])
		if err != nil {
			return fmt.Errorf("parsing moves: %w", err)
		}
		optimized := cube.OptimizeMoves(moves)

		if headless {
			fmt.Print(cube.FormatMoves(optimized))
			return nil
		}

		fmt.Printf("Original:  %s (%d moves)\n", cube.FormatMoves(moves), len(moves))
		if len(optimized) == 0 {
			fmt.Println("Optimized: (empty - all moves cancel out)")
		} else {
			fmt.Printf("Optimized: %s (%d moves)\n", cube.FormatMoves(optimized), len(optimized))
		}
		if saved := len(moves) - len(optimized); saved > 0 {
			fmt.Printf("Saved %d move(s)\n", saved)
		}
		return nil
	},
}

func init() {
	optimizeCmd.Flags().Bool("headless", false, "Output only the optimized move sequence")
}

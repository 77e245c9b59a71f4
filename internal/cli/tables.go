package cli

import (
	"fmt"
	"time"

	"github.com/geodic/kociemba/internal/kociemba"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Build and persist the solver's lookup tables",
	Long: `Tables warms the process-wide move, symmetry and pruning tables and writes
them to the cache directory, so later solves start instantly instead of
paying the one-time construction cost on their first call.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = kociemba.DefaultTableDir()
		}

		start := time.Now()
		if err := kociemba.EnsureTables(dir); err != nil {
			return fmt.Errorf("building tables: %w", err)
		}
		stats := kociemba.Stats()

		fmt.Printf("Tables ready in %s\n", time.Since(start).Round(time.Millisecond))
		if stats.Dir != "" {
			fmt.Printf("Cache directory: %s\n", stats.Dir)
		} else {
			fmt.Println("Cache directory: (in-memory only)")
		}
		fmt.Printf("Move tables:     %d bytes\n", stats.MoveTableBytes)
		fmt.Printf("Symmetry tables: %d bytes\n", stats.SymTableBytes)
		fmt.Printf("Phase-1 pruning: %d bytes\n", stats.Phase1PruneBytes)
		fmt.Printf("Phase-2 pruning: %d bytes\n", stats.Phase2PruneBytes)
		return nil
	},
}

func init() {
	tablesCmd.Flags().String("dir", "", "Directory to persist tables in (default: the user cache)")
}

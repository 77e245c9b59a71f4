package cli

import (
	"fmt"
	"strings"

	"github.com/geodic/kociemba/internal/kociemba"
	"github.com/spf13/cobra"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Emit a random scramble and its facelet representation",
	Long: `Scramble generates a random move sequence, applies it to a solved cube,
and prints both the sequence and the resulting 54-character facelet string.`,
	Run: func(cmd *cobra.Command, args []string) {
		headless, _ := cmd.Flags().GetBool("headless")

		sc := kociemba.Scramble()
		moves := strings.Join(sc.Moves, " ")
		if headless {
			fmt.Print(moves)
			return
		}
		fmt.Printf("Scramble: %s\n", moves)
		fmt.Printf("Facelets: %s\n", sc.Facelets)
	},
}

func init() {
	scrambleCmd.Flags().Bool("headless", false, "Output only the space-separated scramble moves")
}

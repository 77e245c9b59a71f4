package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A flexible Rubik's cube solver",
	Long: `Cube solves the 3x3x3 Rubik's cube with Kociemba's two-phase algorithm
and ships the supporting tools: scrambles, state display, move utilities,
and a small web interface.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(serveCmd)
}

// Package cli wires the chesskit commands. The root command runs the random
// piece exercise; `chesskit match` walks a managed match through a scripted
// sequence.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "chesskit",
	Short:   "A toy engine for a simplified chess variant",
	Long: `Chesskit models piece movement for a simplified chess variant: rooks,
knights, bishops and kings on an otherwise empty board, with no captures,
checks or turn order. The root command drives each piece through a shuffled
pass over all 64 squares and reports which moves its rule accepts.`,
	Version: version,
	RunE:    runDemo,
}

func init() {
	rootCmd.Flags().Int64("seed", 0,
		"shuffle seed for the random exercise (0 = current time)")
	rootCmd.Flags().Bool("board", false,
		"draw the board after each piece's run")
	rootCmd.Flags().StringSlice("pieces", []string{"rook", "bishop", "king", "knight"},
		"piece kinds to exercise")

	// Bind flags to viper
	_ = viper.BindPFlag("seed", rootCmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("board", rootCmd.Flags().Lookup("board"))
	_ = viper.BindPFlag("pieces", rootCmd.Flags().Lookup("pieces"))

	rootCmd.AddCommand(matchCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fenwick-labs/chesskit/internal/render"
	"github.com/fenwick-labs/chesskit/internal/service"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Walk a managed match through a scripted sequence of moves",
	RunE:  runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	manager := service.NewMatchManager()
	matchID := manager.Create()
	fmt.Fprintln(out, render.Header("Match "+matchID[:8]))

	script := []struct {
		label, dest string
	}{
		{"Ra1", "a5"},
		{"Ke8", "d7"},
		{"Bc1", "e3"},
		{"Ke1", "e3"}, // two squares away, the king's rule refuses this
		{"Ra5", "e5"},
		{"Be3", "a7"},
	}
	for _, mv := range script {
		moved, err := manager.Move(matchID, mv.label, mv.dest)
		if err != nil {
			return err
		}
		outcome := render.Failed()
		if moved {
			outcome = render.Succeeded()
		}
		fmt.Fprintf(out, "%s => %s %s\n", mv.label, mv.dest, outcome)
	}

	match, err := manager.Get(matchID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, render.Board(match.Pieces))

	log, err := manager.Log(matchID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d moves logged:\n", len(log))
	for _, entry := range log {
		fmt.Fprintf(out, "  %s => %s at %s\n",
			entry.From, entry.To, entry.Timestamp.Format("15:04:05.000"))
	}
	return nil
}

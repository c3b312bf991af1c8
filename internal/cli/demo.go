package cli

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fenwick-labs/chesskit/internal/model"
	"github.com/fenwick-labs/chesskit/internal/render"
)

// demoStarts places each exercised piece on the square the classic
// walkthrough uses.
var demoStarts = map[model.PieceType]string{
	model.Rook:   "d1",
	model.Bishop: "e3",
	model.King:   "b5",
	model.Knight: "e5",
}

func pieceTypeByName(name string) (model.PieceType, bool) {
	switch name {
	case "rook":
		return model.Rook, true
	case "knight":
		return model.Knight, true
	case "bishop":
		return model.Bishop, true
	case "king":
		return model.King, true
	}
	return "", false
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	seed := viper.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	for _, name := range viper.GetStringSlice("pieces") {
		pt, ok := pieceTypeByName(name)
		if !ok {
			return fmt.Errorf("unknown piece kind %q", name)
		}
		piece, err := model.NewPiece(pt, demoStarts[pt])
		if err != nil {
			return err
		}

		fmt.Fprintln(out, render.Header("Random Test: "+pt.Name()))
		exercise(out, piece, rng)
		if viper.GetBool("board") {
			fmt.Fprintln(out, render.Board(map[string]*model.Piece{piece.Label(): piece}))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, render.Header("Malformed Input"))
	for _, bad := range []string{"i9", "", "a0"} {
		if _, ok := model.ParseSquare(bad); !ok {
			fmt.Fprintf(out, "%q is not a square\n", bad)
		}
	}
	return nil
}

// exercise drives the piece through a shuffled permutation of all 64 squares,
// attempting each exactly once and reporting every outcome.
func exercise(out io.Writer, piece *model.Piece, rng *rand.Rand) {
	squares := model.AllSquares()
	rng.Shuffle(len(squares), func(i, j int) {
		squares[i], squares[j] = squares[j], squares[i]
	})

	for i, dest := range squares {
		from := piece.Label()
		to := piece.Type.Notation() + dest
		outcome := render.Failed()
		if _, ok := piece.Move(dest); ok {
			outcome = render.Succeeded()
		}
		fmt.Fprintf(out, "Move %d: %s => %s %s\n", i, from, to, outcome)
	}
}

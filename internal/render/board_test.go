package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fenwick-labs/chesskit/internal/model"
)

func TestHeader(t *testing.T) {
	require.Contains(t, Header("Random Test: Rook"), "### Random Test: Rook ###")
}

func TestBoard_StandardLayout(t *testing.T) {
	match := model.NewMatch(nil)
	out := Board(match.Pieces)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 9, "eight ranks plus the file footer")
	require.Contains(t, lines[0], "8")
	require.Contains(t, lines[8], "a b c d e f g h")

	// Ten pieces, 54 empty squares.
	require.Equal(t, 4, strings.Count(out, "R"))
	require.Equal(t, 4, strings.Count(out, "B"))
	require.Equal(t, 2, strings.Count(out, "K"))
	require.Equal(t, 54, strings.Count(out, "."))
}

func TestBoard_TracksPiecePosition(t *testing.T) {
	piece, err := model.NewPiece(model.Knight, "e5")
	require.NoError(t, err)
	out := Board(map[string]*model.Piece{piece.Label(): piece})

	require.Equal(t, 1, strings.Count(out, "N"))
	require.Equal(t, 63, strings.Count(out, "."))
}

package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseSquare_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  Square
	}{
		{"a1", Square{File: 0, Rank: 0}},
		{"h8", Square{File: 7, Rank: 7}},
		{"e4", Square{File: 4, Rank: 3}},
		{" E4 ", Square{File: 4, Rank: 3}}, // trimmed and lowercased
		{"A8", Square{File: 0, Rank: 7}},
	}
	for _, tt := range tests {
		sq, ok := ParseSquare(tt.input)
		require.True(t, ok, "expected %q to parse", tt.input)
		require.Equal(t, tt.want, sq)
	}
}

func TestParseSquare_Malformed(t *testing.T) {
	for _, input := range []string{"i9", "", "a0", "a9", "i1", "11", "aa", "e44", "4e", "e", "♞4"} {
		_, ok := ParseSquare(input)
		require.False(t, ok, "expected %q not to parse", input)
	}
}

func TestAllSquares_Bijection(t *testing.T) {
	squares := AllSquares()
	require.Len(t, squares, 64)

	seen := make(map[Square]string, 64)
	for _, label := range squares {
		sq, ok := ParseSquare(label)
		require.True(t, ok, "label %q from AllSquares must parse", label)
		require.GreaterOrEqual(t, sq.File, 0)
		require.Less(t, sq.File, 8)
		require.GreaterOrEqual(t, sq.Rank, 0)
		require.Less(t, sq.Rank, 8)

		prev, dup := seen[sq]
		require.False(t, dup, "labels %q and %q map to the same coordinate", prev, label)
		seen[sq] = label

		require.Equal(t, label, sq.Notation(), "notation must round-trip")
	}
}

func TestProperty_ParseSquareRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		file := rapid.IntRange(0, 7).Draw(rt, "file")
		rank := rapid.IntRange(0, 7).Draw(rt, "rank")

		label := fmt.Sprintf("%c%d", 'a'+file, rank+1)
		sq, ok := ParseSquare(label)
		require.True(t, ok, "constructed label %q must parse", label)
		require.Equal(t, Square{File: file, Rank: rank}, sq)
		require.Equal(t, label, sq.Notation())
	})
}

func TestProperty_ParseSquareNeverPanicsOnGarbage(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.String().Draw(rt, "input")
		sq, ok := ParseSquare(input)
		if ok {
			// Whatever parsed must denote a real board square.
			require.GreaterOrEqual(t, sq.File, 0)
			require.Less(t, sq.File, 8)
			require.GreaterOrEqual(t, sq.Rank, 0)
			require.Less(t, sq.Rank, 8)
		}
	})
}

package model

import (
	"fmt"
	"strings"
)

// Square is a board coordinate. File and Rank are zero-based, so "a1" is
// {0, 0} and "h8" is {7, 7}.
type Square struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

// ParseSquare maps algebraic notation to a Square. Input is trimmed and
// lowercased before matching. Anything outside the 64 board squares returns
// ok=false; an unrecognized square is an ordinary negative result, not an
// error.
func ParseSquare(input string) (Square, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	if len(s) != 2 {
		return Square{}, false
	}
	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return Square{}, false
	}
	return Square{File: file, Rank: rank}, true
}

// Notation returns the algebraic form of the square, e.g. "e4".
func (s Square) Notation() string {
	return fmt.Sprintf("%c%d", 'a'+s.File, s.Rank+1)
}

// AllSquares returns the 64 algebraic labels in file-major order
// (a1..a8, b1..b8, ..., h8).
func AllSquares() []string {
	squares := make([]string, 0, 64)
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			squares = append(squares, Square{File: file, Rank: rank}.Notation())
		}
	}
	return squares
}

package model

import "fmt"

// InvalidPositionError reports an attempt to construct a piece on a square
// that is not on the board.
type InvalidPositionError struct {
	Position string
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("%q is not a legal start position", e.Position)
}

// UnknownPieceError reports a match lookup for a label that no piece
// currently holds.
type UnknownPieceError struct {
	Label string
}

func (e *UnknownPieceError) Error() string {
	return fmt.Sprintf("no piece at %q", e.Label)
}

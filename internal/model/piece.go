package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type PieceType string

const (
	Rook   PieceType = "rook"
	Knight PieceType = "knight"
	Bishop PieceType = "bishop"
	King   PieceType = "king"
)

// Notation returns the one-letter prefix used in full-notation labels.
func (p PieceType) Notation() string {
	switch p {
	case Rook:
		return "R"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case King:
		return "K"
	}
	return ""
}

// Name returns the display name of the piece type.
func (p PieceType) Name() string {
	switch p {
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case King:
		return "King"
	}
	return ""
}

// Piece is a single chess piece. It owns its current position and the
// ordered history of moves it has executed. A piece has exactly one owner
// and is not safe for concurrent use.
type Piece struct {
	ID       string    `json:"id"`
	Type     PieceType `json:"type"`
	Position string    `json:"position"`
	Moves    []Move    `json:"moves"`
}

// NewPiece places a piece of the given type on its starting square. The
// square only has to be on the board: construction checks board membership,
// not the piece's movement rule, so any type may start anywhere.
func NewPiece(pt PieceType, position string) (*Piece, error) {
	position = strings.ToLower(strings.TrimSpace(position))
	if _, ok := ParseSquare(position); !ok {
		return nil, &InvalidPositionError{Position: position}
	}
	return &Piece{
		ID:       uuid.New().String(),
		Type:     pt,
		Position: position,
		Moves:    make([]Move, 0),
	}, nil
}

// Label returns the full-notation label, e.g. "Ke1".
func (p *Piece) Label() string {
	return p.Type.Notation() + p.Position
}

// IsLegalMove reports whether the piece's movement rule allows position as a
// destination from its current square. The rules model an empty board; there
// is no occupancy or blocking check. Every rule accepts the piece's own
// square, though Move still refuses the resulting no-op.
func (p *Piece) IsLegalMove(position string) bool {
	from, ok := ParseSquare(p.Position)
	if !ok {
		return false
	}
	to, ok := ParseSquare(position)
	if !ok {
		return false
	}
	if from == to {
		return true
	}
	fileDist := abs(from.File - to.File)
	rankDist := abs(from.Rank - to.Rank)
	switch p.Type {
	case Rook:
		return from.File == to.File || from.Rank == to.Rank
	case Knight:
		return (fileDist == 1 && rankDist == 3) || (fileDist == 3 && rankDist == 1)
	case Bishop:
		return fileDist == rankDist
	case King:
		return fileDist <= 1 && rankDist <= 1
	}
	return false
}

// Move attempts to move the piece. An illegal destination, or the piece's
// own square, returns ok=false and changes nothing. On success the returned
// record has already been appended to the piece's history and the position
// updated.
func (p *Piece) Move(position string) (Move, bool) {
	position = strings.ToLower(strings.TrimSpace(position))
	if !p.IsLegalMove(position) || position == p.Position {
		return Move{}, false
	}
	move := Move{
		From:      p.Label(),
		To:        p.Type.Notation() + position,
		Timestamp: time.Now(),
	}
	p.Moves = append(p.Moves, move)
	p.Position = position
	return move, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

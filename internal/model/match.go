package model

// Match tracks the pieces of one game, keyed by full-notation label, plus a
// chronological log of every executed move. Keys follow pieces: a successful
// move removes the old label and re-inserts the piece under the new one.
//
// A Match is single-owner state; callers that share one must serialize
// access externally.
type Match struct {
	Pieces map[string]*Piece `json:"pieces"`
	Log    []Move            `json:"log"`
}

// NewMatch adopts the supplied label-to-piece mapping verbatim, or sets up
// the standard layout when pieces is nil.
func NewMatch(pieces map[string]*Piece) *Match {
	m := &Match{}
	if pieces != nil {
		m.Pieces = pieces
		m.Log = make([]Move, 0)
		return m
	}
	m.Reset()
	return m
}

// startingLayout is the fixed ten-piece placement restored by Reset.
var startingLayout = []struct {
	Type   PieceType
	Square string
}{
	{Rook, "a1"}, {Rook, "h1"}, {Rook, "a8"}, {Rook, "h8"},
	{Bishop, "c1"}, {Bishop, "f1"}, {Bishop, "c8"}, {Bishop, "f8"},
	{King, "e1"}, {King, "e8"},
}

// Reset clears the log and places fresh pieces in the standard layout: rooks
// on a1, h1, a8, h8, bishops on c1, f1, c8, f8 and kings on e1, e8.
func (m *Match) Reset() {
	m.Pieces = make(map[string]*Piece, len(startingLayout))
	m.Log = make([]Move, 0)
	for _, sl := range startingLayout {
		piece, err := NewPiece(sl.Type, sl.Square)
		if err != nil {
			// unreachable: every layout square is on the board
			panic(err)
		}
		m.Pieces[piece.Label()] = piece
	}
}

// LogLen returns the number of logged moves.
func (m *Match) LogLen() int {
	return len(m.Log)
}

// Move moves the piece holding label to position. A label the match does
// not hold is an *UnknownPieceError. An illegal move returns (false, nil)
// with the match untouched. On success the piece is re-keyed under its new
// label, the move is appended to the log and the result is (true, nil).
func (m *Match) Move(label, position string) (bool, error) {
	piece, exists := m.Pieces[label]
	if !exists {
		return false, &UnknownPieceError{Label: label}
	}
	move, ok := piece.Move(position)
	if !ok {
		return false, nil
	}
	delete(m.Pieces, label)
	m.Pieces[move.To] = piece
	m.Log = append(m.Log, move)
	return true, nil
}

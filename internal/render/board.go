// Package render draws demo output with lipgloss styles. Rendering is
// presentation only; nothing here inspects or mutates game state beyond
// reading piece positions.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fenwick-labs/chesskit/internal/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	edgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pieceStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230"))
	emptyStyle   = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Header formats a section heading for demo output.
func Header(text string) string {
	return headerStyle.Render("### " + text + " ###")
}

// Succeeded and Failed style the outcome word of a move report line.
func Succeeded() string {
	return successStyle.Render("succeeded.")
}

func Failed() string {
	return failureStyle.Render("failed.")
}

// Board draws the pieces on an 8x8 grid, rank 8 at the top. Squares holding
// a piece show its notation letter; empty squares show a dot.
func Board(pieces map[string]*model.Piece) string {
	var grid [8][8]string
	for _, piece := range pieces {
		if sq, ok := model.ParseSquare(piece.Position); ok {
			grid[sq.Rank][sq.File] = piece.Type.Notation()
		}
	}

	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		b.WriteString(edgeStyle.Render(fmt.Sprintf("%d", rank+1)))
		for file := 0; file < 8; file++ {
			b.WriteString(" ")
			if cell := grid[rank][file]; cell != "" {
				b.WriteString(pieceStyle.Render(cell))
			} else {
				b.WriteString(emptyStyle.Render("."))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(edgeStyle.Render("  a b c d e f g h"))
	return b.String()
}

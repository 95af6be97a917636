// Package tui renders the bishop vs rook game in the terminal.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"bishoprook/internal/domain"
	"bishoprook/internal/game"
)

const (
	glyphBishop = "♗"
	glyphRook   = "♜"
)

// squareColor returns the board color for the square at x,y.
// The captured rook square is highlighted in red.
func squareColor(x, y int, highlight bool) tcell.Color {
	if highlight {
		return tcell.ColorRed
	}
	if (x+y)%2 == 0 {
		return tcell.ColorDarkGreen
	}
	return tcell.ColorBeige
}

// squareGlyph returns the piece occupying x,y, or empty.
func squareGlyph(state *domain.GameState, x, y int) string {
	if state == nil {
		return " "
	}
	if state.BishopPosition.X == x && state.BishopPosition.Y == y {
		return glyphBishop
	}
	if state.RookPosition.X == x && state.RookPosition.Y == y {
		return glyphRook
	}
	return " "
}

// captureHighlight reports whether x,y is the rook square of a
// capture that ended the game on the last round.
func captureHighlight(state *domain.GameState, x, y int) bool {
	if state == nil {
		return false
	}
	last := state.LastRound()
	if last == nil || !last.Captured {
		return false
	}
	return last.RookPositionAfter.X == x && last.RookPositionAfter.Y == y
}

// renderBoard redraws the 8x8 board table from the given state,
// rank 8 at the top. Row 8 carries the file labels, column 0 the
// rank labels.
func renderBoard(table *tview.Table, state *domain.GameState) {
	for r := 0; r <= game.BoardSize; r++ {
		for f := 0; f <= game.BoardSize; f++ {
			if f == 0 {
				label := " "
				if r < game.BoardSize {
					label = fmt.Sprintf("%d", game.BoardSize-r)
				}
				table.SetCell(r, f, tview.NewTableCell(label).
					SetAlign(tview.AlignCenter).
					SetSelectable(false))
				continue
			}
			if r == game.BoardSize {
				table.SetCell(r, f, tview.NewTableCell(fmt.Sprintf(" %c", 'a'+f-1)).
					SetAlign(tview.AlignCenter).
					SetSelectable(false))
				continue
			}

			x := f - 1
			y := game.BoardSize - r - 1
			cell := tview.NewTableCell(" " + squareGlyph(state, x, y) + " ").
				SetAlign(tview.AlignCenter).
				SetTextColor(tcell.ColorBlack).
				SetBackgroundColor(squareColor(x, y, captureHighlight(state, x, y)))
			table.SetCell(r, f, cell)
		}
	}
}

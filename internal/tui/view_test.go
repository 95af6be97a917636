package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"bishoprook/internal/domain"
	"bishoprook/internal/game"
)

func testState() *domain.GameState {
	s := game.New("test-game")
	return &s
}

func TestSquareColorParity(t *testing.T) {
	// a1 is dark, b1 light; adjacent squares never share a color.
	if squareColor(0, 0, false) == squareColor(1, 0, false) {
		t.Fatalf("a1 and b1 have the same color")
	}
	for y := 0; y < game.BoardSize; y++ {
		for x := 0; x < game.BoardSize-1; x++ {
			if squareColor(x, y, false) == squareColor(x+1, y, false) {
				t.Fatalf("adjacent squares (%d,%d) and (%d,%d) share a color", x, y, x+1, y)
			}
		}
	}
	if squareColor(0, 0, false) != squareColor(2, 0, false) {
		t.Fatalf("same-parity squares should share a color")
	}
}

func TestSquareColorHighlight(t *testing.T) {
	if squareColor(3, 3, true) != tcell.ColorRed {
		t.Fatalf("highlighted square should be red")
	}
}

func TestSquareGlyph(t *testing.T) {
	s := testState()
	if squareGlyph(s, 2, 2) != glyphBishop {
		t.Fatalf("bishop missing on c3")
	}
	if squareGlyph(s, 7, 0) != glyphRook {
		t.Fatalf("rook missing on h1")
	}
	if squareGlyph(s, 4, 4) != " " {
		t.Fatalf("empty square should render blank")
	}
	if squareGlyph(nil, 0, 0) != " " {
		t.Fatalf("nil state should render blank")
	}
}

func TestCaptureHighlight(t *testing.T) {
	s := testState()
	if captureHighlight(s, 7, 0) {
		t.Fatalf("no highlight without rounds")
	}

	s.Rounds = append(s.Rounds, domain.GameRound{
		RoundNumber:       1,
		RookPositionAfter: game.At(4, 4),
		Captured:          false,
	})
	if captureHighlight(s, 4, 4) {
		t.Fatalf("no highlight when last round did not capture")
	}

	s.Rounds = append(s.Rounds, domain.GameRound{
		RoundNumber:       2,
		RookPositionAfter: game.At(5, 5),
		Captured:          true,
	})
	if !captureHighlight(s, 5, 5) {
		t.Fatalf("capture square should be highlighted")
	}
	if captureHighlight(s, 4, 4) {
		t.Fatalf("only the final rook square is highlighted")
	}
}

func TestButtonGuards(t *testing.T) {
	if canPlayRound(nil) || canReset(nil) {
		t.Fatalf("buttons must be inactive without a game")
	}
	s := testState()
	if !canPlayRound(s) || !canReset(s) {
		t.Fatalf("buttons must be active for a running game")
	}
	s.GameOver = true
	if canPlayRound(s) {
		t.Fatalf("play round must be inactive after game over")
	}
	if !canReset(s) {
		t.Fatalf("reset stays active after game over")
	}
}

func TestHistoryLine(t *testing.T) {
	r := domain.GameRound{
		RoundNumber:        3,
		CoinToss:           domain.CoinToss{Result: "heads", Direction: "up"},
		DiceRoll:           domain.DiceRoll{Die1: 2, Die2: 5, Total: 7},
		RookPositionBefore: game.At(7, 0),
		RookPositionAfter:  game.At(7, 7),
	}
	line := historyLine(r)
	for _, want := range []string{"R3", "heads", "up", "2+5=7", "h1", "h8"} {
		if !strings.Contains(line, want) {
			t.Fatalf("history line %q missing %q", line, want)
		}
	}
	if strings.Contains(line, "CAPTURED") {
		t.Fatalf("no capture marker expected: %q", line)
	}

	r.Captured = true
	if !strings.Contains(historyLine(r), "CAPTURED") {
		t.Fatalf("capture marker missing")
	}
}

func TestHistoryTextOrderAndPlaceholder(t *testing.T) {
	if historyText(nil) != "No rounds played yet." {
		t.Fatalf("placeholder missing for nil state")
	}
	s := testState()
	if historyText(s) != "No rounds played yet." {
		t.Fatalf("placeholder missing for empty history")
	}

	for i := 1; i <= 3; i++ {
		game.Advance(s)
	}
	lines := strings.Split(historyText(s), "\n")
	if len(lines) != len(s.Rounds) {
		t.Fatalf("want %d history lines, got %d", len(s.Rounds), len(lines))
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, historyLine(s.Rounds[i])[:3]) {
			t.Fatalf("history out of order at %d: %q", i, line)
		}
	}
}

func TestStatusLine(t *testing.T) {
	if !strings.Contains(statusLine(nil), "New Game") {
		t.Fatalf("nil state should prompt for a new game")
	}
	s := testState()
	if !strings.Contains(statusLine(s), "Round 0") {
		t.Fatalf("unexpected status: %q", statusLine(s))
	}
	w := domain.WinnerBishop
	s.GameOver = true
	s.Winner = &w
	s.CurrentRound = 4
	if !strings.Contains(statusLine(s), domain.WinnerBishop) {
		t.Fatalf("winner missing from status: %q", statusLine(s))
	}
}

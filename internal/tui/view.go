package tui

import (
	"fmt"

	"bishoprook/internal/domain"
	"bishoprook/internal/game"
)

// canPlayRound reports whether the Play Round button is active.
func canPlayRound(state *domain.GameState) bool {
	return state != nil && !state.GameOver
}

// canReset reports whether the Reset button is active.
func canReset(state *domain.GameState) bool {
	return state != nil
}

// historyLine formats one round for the history pane.
func historyLine(r domain.GameRound) string {
	line := fmt.Sprintf("R%d: %s (%s), dice %d+%d=%d, %s -> %s",
		r.RoundNumber,
		r.CoinToss.Result, r.CoinToss.Direction,
		r.DiceRoll.Die1, r.DiceRoll.Die2, r.DiceRoll.Total,
		r.RookPositionBefore, r.RookPositionAfter)
	if r.Captured {
		line += "  CAPTURED!"
	}
	return line
}

// statusLine summarizes the game for the controls pane.
func statusLine(state *domain.GameState) string {
	if state == nil {
		return "No game. Press New Game to start."
	}
	if state.GameOver && state.Winner != nil {
		return fmt.Sprintf("Game over after round %d. Winner: %s", state.CurrentRound, *state.Winner)
	}
	return fmt.Sprintf("Round %d of %d", state.CurrentRound, game.MaxRounds)
}

package game

import (
	"crypto/rand"
	"math/big"
	"time"

	"bishoprook/internal/domain"
)

// randn returns a uniform value in [0, n) from crypto/rand.
func randn(n int64) int64 {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		// fallback, never expected
		return 0
	}
	return v.Int64()
}

// TossCoin flips the coin and maps the result to a rook direction:
// heads moves up, tails moves right.
func TossCoin() domain.CoinToss {
	if randn(2) == 0 {
		return domain.CoinToss{Result: domain.TossHeads, Direction: domain.DirectionUp}
	}
	return domain.CoinToss{Result: domain.TossTails, Direction: domain.DirectionRight}
}

// RollDice rolls two independent d6.
func RollDice() domain.DiceRoll {
	d1 := int(randn(6)) + 1
	d2 := int(randn(6)) + 1
	return domain.DiceRoll{Die1: d1, Die2: d2, Total: d1 + d2}
}

// New returns the initial snapshot for a fresh game.
func New(id string) domain.GameState {
	return domain.GameState{
		GameID:         id,
		Rounds:         []domain.GameRound{},
		BishopPosition: At(BishopX, BishopY),
		RookPosition:   At(RookStartX, RookStartY),
		CreatedAt:      time.Now().UTC(),
	}
}

// Reset restores the snapshot to its initial value, keeping the game id.
func Reset(s *domain.GameState) {
	*s = New(s.GameID)
}

// Advance plays one round in place: coin toss, dice roll, rook move with
// wraparound, capture check, win determination. Playing a finished game is
// a no-op.
func Advance(s *domain.GameState) {
	if s.GameOver {
		return
	}

	s.CurrentRound++
	before := s.RookPosition

	toss := TossCoin()
	roll := RollDice()

	x, y := MoveRook(before.X, before.Y, toss.Direction, roll.Total)
	after := At(x, y)
	captured := Captured(x, y)

	s.Rounds = append(s.Rounds, domain.GameRound{
		RoundNumber:        s.CurrentRound,
		CoinToss:           toss,
		DiceRoll:           roll,
		RookPositionBefore: before,
		RookPositionAfter:  after,
		Captured:           captured,
	})
	s.RookPosition = after

	if captured {
		s.GameOver = true
		winner := domain.WinnerBishop
		s.Winner = &winner
	} else if s.CurrentRound >= MaxRounds {
		s.GameOver = true
		winner := domain.WinnerRook
		s.Winner = &winner
	}
}

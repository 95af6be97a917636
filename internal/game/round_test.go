package game

import (
	"testing"

	"bishoprook/internal/domain"
)

func TestAtNotation(t *testing.T) {
	cases := []struct {
		x, y int
		file string
		rank int
	}{
		{0, 0, "a", 1},
		{2, 2, "c", 3},
		{7, 0, "h", 1},
		{7, 7, "h", 8},
	}
	for _, c := range cases {
		p := At(c.x, c.y)
		if p.File != c.file || p.Rank != c.rank || p.X != c.x || p.Y != c.y {
			t.Fatalf("At(%d,%d) = %+v, want %s%d", c.x, c.y, p, c.file, c.rank)
		}
	}
}

func TestWrap(t *testing.T) {
	cases := map[int]int{0: 0, 7: 7, 8: 0, 12: 4, 19: 3, -1: 7}
	for in, want := range cases {
		if got := Wrap(in); got != want {
			t.Fatalf("Wrap(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestMoveRookWraps(t *testing.T) {
	// Rook at h1 moving up 12 wraps to h5 (y = (0+12) % 8 = 4).
	x, y := MoveRook(7, 0, domain.DirectionUp, 12)
	if x != 7 || y != 4 {
		t.Fatalf("up 12 from h1: got (%d,%d), want (7,4)", x, y)
	}
	// Rook at h1 moving right 3 wraps to c1 (x = (7+3) % 8 = 2).
	x, y = MoveRook(7, 0, domain.DirectionRight, 3)
	if x != 2 || y != 0 {
		t.Fatalf("right 3 from h1: got (%d,%d), want (2,0)", x, y)
	}
}

func TestCaptured(t *testing.T) {
	diagonals := [][2]int{
		{0, 0}, {1, 1}, {3, 3}, {4, 4}, {5, 5}, {6, 6}, {7, 7}, // a1..h8
		{0, 4}, {1, 3}, {3, 1}, {4, 0}, // a5..e1
	}
	for _, sq := range diagonals {
		if !Captured(sq[0], sq[1]) {
			t.Fatalf("expected capture on diagonal square (%d,%d)", sq[0], sq[1])
		}
	}

	safe := [][2]int{
		{2, 2}, // the bishop's own square is not a capture
		{7, 0}, // rook start
		{2, 5}, // same file
		{6, 2}, // same rank
		{5, 4},
	}
	for _, sq := range safe {
		if Captured(sq[0], sq[1]) {
			t.Fatalf("unexpected capture on square (%d,%d)", sq[0], sq[1])
		}
	}
}

func TestTossCoinMapsDirection(t *testing.T) {
	for i := 0; i < 64; i++ {
		toss := TossCoin()
		switch toss.Result {
		case domain.TossHeads:
			if toss.Direction != domain.DirectionUp {
				t.Fatalf("heads must move up, got %q", toss.Direction)
			}
		case domain.TossTails:
			if toss.Direction != domain.DirectionRight {
				t.Fatalf("tails must move right, got %q", toss.Direction)
			}
		default:
			t.Fatalf("unexpected toss result %q", toss.Result)
		}
	}
}

func TestRollDiceRange(t *testing.T) {
	for i := 0; i < 64; i++ {
		roll := RollDice()
		if roll.Die1 < 1 || roll.Die1 > 6 || roll.Die2 < 1 || roll.Die2 > 6 {
			t.Fatalf("die out of range: %+v", roll)
		}
		if roll.Total != roll.Die1+roll.Die2 {
			t.Fatalf("total mismatch: %+v", roll)
		}
	}
}

func TestNewInitialState(t *testing.T) {
	s := New("g1")
	if s.GameID != "g1" {
		t.Fatalf("game id: %q", s.GameID)
	}
	if s.BishopPosition.String() != "c3" || s.RookPosition.String() != "h1" {
		t.Fatalf("initial positions: bishop=%s rook=%s", s.BishopPosition, s.RookPosition)
	}
	if s.CurrentRound != 0 || s.GameOver || s.Winner != nil || len(s.Rounds) != 0 {
		t.Fatalf("not a fresh state: %+v", s)
	}
}

func TestAdvanceRecordsRound(t *testing.T) {
	s := New("g1")
	Advance(&s)

	if s.CurrentRound != 1 || len(s.Rounds) != 1 {
		t.Fatalf("expected one round, got current=%d rounds=%d", s.CurrentRound, len(s.Rounds))
	}
	r := s.Rounds[0]
	if r.RoundNumber != 1 {
		t.Fatalf("round number: %d", r.RoundNumber)
	}
	if r.RookPositionBefore.String() != "h1" {
		t.Fatalf("before position: %s", r.RookPositionBefore)
	}
	// The recorded move must be consistent with the toss and the roll.
	wantX, wantY := MoveRook(r.RookPositionBefore.X, r.RookPositionBefore.Y, r.CoinToss.Direction, r.DiceRoll.Total)
	if r.RookPositionAfter.X != wantX || r.RookPositionAfter.Y != wantY {
		t.Fatalf("after position %s inconsistent with toss %+v roll %+v", r.RookPositionAfter, r.CoinToss, r.DiceRoll)
	}
	if s.RookPosition != r.RookPositionAfter {
		t.Fatalf("snapshot rook position not updated")
	}
	if r.Captured != Captured(wantX, wantY) {
		t.Fatalf("captured flag mismatch at (%d,%d)", wantX, wantY)
	}
}

func TestAdvanceWinners(t *testing.T) {
	// Every game ends with either a capture (bishop wins) or fifteen
	// survived rounds (rook wins); the winner string must match the ending.
	for i := 0; i < 32; i++ {
		s := New("g1")
		for !s.GameOver {
			Advance(&s)
		}
		last := s.Rounds[len(s.Rounds)-1]
		if s.Winner == nil {
			t.Fatalf("finished game without winner: %+v", s)
		}
		if last.Captured {
			if *s.Winner != domain.WinnerBishop {
				t.Fatalf("capture should crown the bishop, got %q", *s.Winner)
			}
		} else {
			if s.CurrentRound != MaxRounds || *s.Winner != domain.WinnerRook {
				t.Fatalf("survival should crown the rook at round %d, got round=%d winner=%q", MaxRounds, s.CurrentRound, *s.Winner)
			}
		}
		if s.CurrentRound > MaxRounds {
			t.Fatalf("game ran past round %d", MaxRounds)
		}
	}
}

func TestAdvanceAfterGameOverIsNoop(t *testing.T) {
	s := New("g1")
	for !s.GameOver {
		Advance(&s)
	}
	rounds, current := len(s.Rounds), s.CurrentRound
	Advance(&s)
	if len(s.Rounds) != rounds || s.CurrentRound != current {
		t.Fatalf("advance mutated a finished game")
	}
}

func TestReset(t *testing.T) {
	s := New("g1")
	Advance(&s)
	Advance(&s)
	Reset(&s)

	if s.GameID != "g1" {
		t.Fatalf("reset must keep the game id, got %q", s.GameID)
	}
	if s.CurrentRound != 0 || s.GameOver || s.Winner != nil || len(s.Rounds) != 0 {
		t.Fatalf("reset state not initial: %+v", s)
	}
	if s.RookPosition.String() != "h1" {
		t.Fatalf("rook not back on h1: %s", s.RookPosition)
	}
}

package domain

import "time"

// Winner announcement strings as delivered to the front-end.
const (
	WinnerBishop = "Bishop (White)"
	WinnerRook   = "Rook (Black)"
)

// Coin toss results and the directions they map to.
const (
	TossHeads = "heads"
	TossTails = "tails"

	DirectionUp    = "up"
	DirectionRight = "right"
)

// Position is a board square in both chess notation and internal coordinates.
type Position struct {
	File string `json:"file"` // a-h
	Rank int    `json:"rank"` // 1-8
	X    int    `json:"x"`    // 0-7
	Y    int    `json:"y"`    // 0-7
}

// String returns the square in algebraic notation, e.g. "c3".
func (p Position) String() string {
	return p.File + string(rune('0'+p.Rank))
}

// CoinToss records one toss and the rook direction it selected.
type CoinToss struct {
	Result    string `json:"result"`    // heads / tails
	Direction string `json:"direction"` // up / right
}

// DiceRoll records two d6 and their sum.
type DiceRoll struct {
	Die1  int `json:"die1"`
	Die2  int `json:"die2"`
	Total int `json:"total"`
}

// GameRound is one entry of the round history.
type GameRound struct {
	RoundNumber        int      `json:"round_number"`
	CoinToss           CoinToss `json:"coin_toss"`
	DiceRoll           DiceRoll `json:"dice_roll"`
	RookPositionBefore Position `json:"rook_position_before"`
	RookPositionAfter  Position `json:"rook_position_after"`
	Captured           bool     `json:"captured"`
}

// GameState is the full snapshot returned on every API call. The front-end
// treats it as an immutable value and replaces it wholesale per response.
type GameState struct {
	GameID         string      `json:"game_id"`
	Rounds         []GameRound `json:"rounds"`
	CurrentRound   int         `json:"current_round"`
	GameOver       bool        `json:"game_over"`
	Winner         *string     `json:"winner"`
	BishopPosition Position    `json:"bishop_position"`
	RookPosition   Position    `json:"rook_position"`
	CreatedAt      time.Time   `json:"created_at"`
}

// LastRound returns the most recent round record, or nil before the first round.
func (s *GameState) LastRound() *GameRound {
	if len(s.Rounds) == 0 {
		return nil
	}
	return &s.Rounds[len(s.Rounds)-1]
}

// ArchivedGame is a finished game as persisted in the archive.
type ArchivedGame struct {
	ID          int64       `json:"id"`
	GameID      string      `json:"game_id"`
	Winner      string      `json:"winner"`
	TotalRounds int         `json:"total_rounds"`
	Rounds      []GameRound `json:"rounds"`
	CreatedAt   time.Time   `json:"created_at"`
	FinishedAt  time.Time   `json:"finished_at"`
}

// StatusCheck is a liveness record kept for compatibility with older clients.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

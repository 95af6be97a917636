package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GamesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bishoprook_games_created_total",
		Help: "Number of games created.",
	})
	GamesReset = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bishoprook_games_reset_total",
		Help: "Number of game resets.",
	})
	RoundsPlayed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bishoprook_rounds_played_total",
		Help: "Number of rounds played across all games.",
	})
	BishopWins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bishoprook_bishop_wins_total",
		Help: "Games ended by the bishop capturing the rook.",
	})
	RookWins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bishoprook_rook_wins_total",
		Help: "Games survived by the rook to the round limit.",
	})
)

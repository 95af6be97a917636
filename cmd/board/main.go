package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"bishoprook/internal/client"
	"bishoprook/internal/game"
	"bishoprook/internal/tui"
)

func main() {
	addr := flag.String("addr", defaultAddr(), "base URL of the game API")
	autoplay := flag.Bool("autoplay", false, "play one full game and print the rounds")
	flag.Parse()

	api := client.NewClient(*addr)

	if *autoplay {
		if err := runAutoplay(api); err != nil {
			fmt.Fprintln(os.Stderr, "autoplay failed:", err)
			os.Exit(1)
		}
		return
	}

	if err := tui.New(api).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "ui failed:", err)
		os.Exit(1)
	}
}

func defaultAddr() string {
	if v := os.Getenv("GAME_API_URL"); v != "" {
		return v
	}
	return "http://localhost:8000"
}

// runAutoplay creates a game and plays rounds until it ends,
// printing each round as it happens.
func runAutoplay(api *client.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	state, err := api.NewGame(ctx)
	if err != nil {
		return err
	}

	title := color.New(color.FgCyan, color.Bold)
	capture := color.New(color.FgRed, color.Bold)
	winner := color.New(color.FgGreen, color.Bold)

	title.Printf("Game %s: bishop on %s, rook on %s\n",
		state.GameID, state.BishopPosition, state.RookPosition)

	for !state.GameOver {
		state, err = api.PlayRound(ctx, state.GameID)
		if err != nil {
			return err
		}
		r := state.LastRound()
		if r == nil {
			break
		}
		fmt.Printf("round %2d: %-5s (%5s)  dice %d+%d=%-2d  %s -> %s",
			r.RoundNumber, r.CoinToss.Result, r.CoinToss.Direction,
			r.DiceRoll.Die1, r.DiceRoll.Die2, r.DiceRoll.Total,
			r.RookPositionBefore, r.RookPositionAfter)
		if r.Captured {
			capture.Printf("  captured!")
		}
		fmt.Println()
		if r.RoundNumber > game.MaxRounds {
			return fmt.Errorf("server ran past the round limit")
		}
	}

	if state.Winner != nil {
		winner.Printf("winner after %d rounds: %s\n", state.CurrentRound, *state.Winner)
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"bishoprook/internal/domain"
	"bishoprook/internal/game"
	"bishoprook/internal/logger"
	"bishoprook/internal/metrics"
	"bishoprook/internal/store"
	"bishoprook/internal/ws"
)

var ErrGameNotFound = errors.New("game not found")

// Archiver persists finished games. Optional; the server runs without it.
type Archiver interface {
	Create(ctx context.Context, state *domain.GameState) error
}

// GameService owns live games. All mutation goes through the store so the
// in-memory and Redis backends behave the same.
type GameService struct {
	store   store.Store
	hub     *ws.Hub
	archive Archiver
	mu      sync.Mutex // serializes load-modify-save cycles
}

func NewGameService(st store.Store) *GameService {
	return &GameService{store: st}
}

// AttachHub enables snapshot broadcasts to websocket spectators.
func (s *GameService) AttachHub(h *ws.Hub) { s.hub = h }

// AttachArchive enables persistence of finished games.
func (s *GameService) AttachArchive(a Archiver) { s.archive = a }

// Create starts a new game and returns its initial snapshot.
func (s *GameService) Create(ctx context.Context) (*domain.GameState, error) {
	state := game.New(uuid.New().String())
	if err := s.store.Save(ctx, &state); err != nil {
		return nil, err
	}
	metrics.GamesCreated.Inc()
	logger.Info("game created", "game_id", state.GameID)
	return &state, nil
}

// Get returns the current snapshot of a game.
func (s *GameService) Get(ctx context.Context, gameID string) (*domain.GameState, error) {
	state, err := s.store.Load(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrGameNotFound
	}
	return state, nil
}

// PlayRound advances a game by one round and returns the new snapshot.
// Playing a finished game returns the unchanged snapshot.
func (s *GameService) PlayRound(ctx context.Context, gameID string) (*domain.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrGameNotFound
	}
	if state.GameOver {
		return state, nil
	}

	game.Advance(state)
	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	metrics.RoundsPlayed.Inc()
	if state.GameOver {
		s.finish(state)
	}
	s.broadcast(state)
	return state, nil
}

// Reset restores a game to its initial state, keeping the id.
func (s *GameService) Reset(ctx context.Context, gameID string) (*domain.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrGameNotFound
	}

	game.Reset(state)
	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}

	metrics.GamesReset.Inc()
	logger.Info("game reset", "game_id", gameID)
	s.broadcast(state)
	return state, nil
}

func (s *GameService) finish(state *domain.GameState) {
	winner := ""
	if state.Winner != nil {
		winner = *state.Winner
	}
	if winner == domain.WinnerBishop {
		metrics.BishopWins.Inc()
	} else {
		metrics.RookWins.Inc()
	}
	logger.Info("game over", "game_id", state.GameID, "winner", winner, "rounds", state.CurrentRound)

	if s.archive == nil {
		return
	}
	// Archive off the request path; a storage hiccup must not fail the round.
	snapshot := *state
	snapshot.Rounds = append([]domain.GameRound(nil), state.Rounds...)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.archive.Create(ctx, &snapshot); err != nil {
			logger.Error("archive finished game", "game_id", snapshot.GameID, "error", err)
		}
	}()
}

func (s *GameService) broadcast(state *domain.GameState) {
	if s.hub != nil {
		s.hub.Broadcast(state)
	}
}

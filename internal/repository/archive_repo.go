package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bishoprook/internal/domain"
)

// ArchiveRepository persists finished games.
type ArchiveRepository struct {
	db *pgxpool.Pool
}

func NewArchiveRepository(db *pgxpool.Pool) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

// Create records a finished game. The round history goes in as jsonb.
func (r *ArchiveRepository) Create(ctx context.Context, state *domain.GameState) error {
	if state.Winner == nil {
		return fmt.Errorf("archive of unfinished game %s", state.GameID)
	}
	roundsJSON, err := json.Marshal(state.Rounds)
	if err != nil {
		return fmt.Errorf("marshal rounds: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO game_archive (game_id, winner, total_rounds, rounds, created_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, state.GameID, *state.Winner, state.CurrentRound, roundsJSON, state.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert archived game: %w", err)
	}
	return nil
}

// GetRecent returns the most recently finished games.
func (r *ArchiveRepository) GetRecent(ctx context.Context, limit int) ([]*domain.ArchivedGame, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, game_id, winner, total_rounds, rounds, created_at, finished_at
		FROM game_archive
		ORDER BY finished_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select archived games: %w", err)
	}
	defer rows.Close()

	return scanArchivedGames(rows)
}

// GetByGameID returns every archived run of one game id (resets allow a game
// to finish more than once).
func (r *ArchiveRepository) GetByGameID(ctx context.Context, gameID string) ([]*domain.ArchivedGame, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, game_id, winner, total_rounds, rounds, created_at, finished_at
		FROM game_archive
		WHERE game_id = $1
		ORDER BY finished_at DESC
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("select archived games by id: %w", err)
	}
	defer rows.Close()

	return scanArchivedGames(rows)
}

func scanArchivedGames(rows pgx.Rows) ([]*domain.ArchivedGame, error) {
	var games []*domain.ArchivedGame
	for rows.Next() {
		var g domain.ArchivedGame
		var roundsJSON []byte
		if err := rows.Scan(&g.ID, &g.GameID, &g.Winner, &g.TotalRounds, &roundsJSON, &g.CreatedAt, &g.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan archived game: %w", err)
		}
		if err := json.Unmarshal(roundsJSON, &g.Rounds); err != nil {
			return nil, fmt.Errorf("unmarshal rounds: %w", err)
		}
		games = append(games, &g)
	}
	return games, rows.Err()
}

package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"bishoprook/internal/domain"
)

// StatusRepository stores client status checks (legacy compatibility surface).
type StatusRepository struct {
	db *pgxpool.Pool
}

func NewStatusRepository(db *pgxpool.Pool) *StatusRepository {
	return &StatusRepository{db: db}
}

func (r *StatusRepository) Create(ctx context.Context, check *domain.StatusCheck) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO status_checks (id, client_name, timestamp)
		VALUES ($1, $2, $3)
	`, check.ID, check.ClientName, check.Timestamp)
	if err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (r *StatusRepository) GetRecent(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	if limit <= 0 {
		limit = 1000
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, client_name, timestamp
		FROM status_checks
		ORDER BY timestamp DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("select status checks: %w", err)
	}
	defer rows.Close()

	var checks []*domain.StatusCheck
	for rows.Next() {
		var c domain.StatusCheck
		if err := rows.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("scan status check: %w", err)
		}
		checks = append(checks, &c)
	}
	return checks, rows.Err()
}

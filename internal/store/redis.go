package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bishoprook/internal/domain"
)

// Redis stores game snapshots as JSON blobs with a TTL, so abandoned games
// expire without a janitor. Suitable when several server instances share
// the same game space.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis connects to the given redis URL (redis://host:port/db).
func NewRedis(url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Redis{rdb: redis.NewClient(opts), ttl: ttl}, nil
}

// NewRedisFromClient wraps an existing client; used by tests.
func NewRedisFromClient(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

func (r *Redis) key(gameID string) string { return "game:" + gameID }

func (r *Redis) Save(ctx context.Context, state *domain.GameState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal game state: %w", err)
	}
	return r.rdb.Set(ctx, r.key(state.GameID), raw, r.ttl).Err()
}

func (r *Redis) Load(ctx context.Context, gameID string) (*domain.GameState, error) {
	raw, err := r.rdb.Get(ctx, r.key(gameID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s domain.GameState
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("unmarshal game state: %w", err)
	}
	return &s, nil
}

func (r *Redis) Delete(ctx context.Context, gameID string) error {
	return r.rdb.Del(ctx, r.key(gameID)).Err()
}

// Close releases the underlying client.
func (r *Redis) Close() error { return r.rdb.Close() }

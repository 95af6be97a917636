package store

import (
	"context"
	"sync"
	"time"

	"bishoprook/internal/domain"
)

// Store keeps live game snapshots addressed by game id. Load returns
// (nil, nil) for unknown ids.
type Store interface {
	Save(ctx context.Context, state *domain.GameState) error
	Load(ctx context.Context, gameID string) (*domain.GameState, error)
	Delete(ctx context.Context, gameID string) error
}

type memoryEntry struct {
	state   domain.GameState
	touched time.Time
}

// Memory is the default in-process store used when no Redis is configured.
type Memory struct {
	mu    sync.RWMutex
	games map[string]*memoryEntry
	ttl   time.Duration
}

// NewMemory creates an in-memory store. Games untouched for ttl are treated
// as abandoned and swept by a background janitor.
func NewMemory(ttl time.Duration) *Memory {
	m := &Memory{
		games: make(map[string]*memoryEntry),
		ttl:   ttl,
	}
	if ttl > 0 {
		go m.sweep()
	}
	return m
}

func (m *Memory) Save(ctx context.Context, state *domain.GameState) error {
	cp := clone(state)
	m.mu.Lock()
	m.games[state.GameID] = &memoryEntry{state: *cp, touched: time.Now()}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Load(ctx context.Context, gameID string) (*domain.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.games[gameID]
	if !ok {
		return nil, nil
	}
	return clone(&e.state), nil
}

func (m *Memory) Delete(ctx context.Context, gameID string) error {
	m.mu.Lock()
	delete(m.games, gameID)
	m.mu.Unlock()
	return nil
}

// Len reports the number of stored games.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

func (m *Memory) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		m.mu.Lock()
		for id, e := range m.games {
			if now.Sub(e.touched) > m.ttl {
				delete(m.games, id)
			}
		}
		m.mu.Unlock()
	}
}

// clone deep-copies a snapshot so callers never share the rounds slice.
func clone(s *domain.GameState) *domain.GameState {
	cp := *s
	cp.Rounds = append([]domain.GameRound(nil), s.Rounds...)
	return &cp
}

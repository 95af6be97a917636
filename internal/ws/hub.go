package ws

import (
	"encoding/json"
	"sync"

	"bishoprook/internal/domain"
	"bishoprook/internal/logger"
)

// Hub fans out game snapshots to websocket spectators. Feed is one-way:
// spectators receive every new snapshot for the game they watch and send
// nothing back.
type Hub struct {
	mu       sync.RWMutex
	watchers map[string]map[*Client]struct{} // gameID -> clients
}

func NewHub() *Hub {
	return &Hub{watchers: make(map[string]map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	set, ok := h.watchers[c.GameID]
	if !ok {
		set = make(map[*Client]struct{})
		h.watchers[c.GameID] = set
	}
	set[c] = struct{}{}
	h.mu.Unlock()
	logger.Debug("spectator registered", "game_id", c.GameID)
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if set, ok := h.watchers[c.GameID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.watchers, c.GameID)
		}
	}
	h.mu.Unlock()
}

// Watchers reports how many spectators a game currently has.
func (h *Hub) Watchers(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers[gameID])
}

// Broadcast pushes a snapshot to every spectator of the game. Slow clients
// are dropped rather than allowed to stall the round.
func (h *Hub) Broadcast(state *domain.GameState) {
	raw, err := json.Marshal(state)
	if err != nil {
		logger.Error("marshal snapshot for broadcast", "error", err)
		return
	}

	h.mu.RLock()
	var stale []*Client
	for c := range h.watchers[state.GameID] {
		select {
		case c.Send <- raw:
		default:
			stale = append(stale, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range stale {
		logger.Warn("dropping slow spectator", "game_id", state.GameID)
		h.Unregister(c)
		close(c.Send)
	}
}

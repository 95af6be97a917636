package ws

import (
	"encoding/json"
	"testing"

	"bishoprook/internal/domain"
	"bishoprook/internal/game"
)

func TestBroadcastReachesWatchersOfGame(t *testing.T) {
	h := NewHub()

	a := &Client{GameID: "g1", Send: make(chan []byte, 1)}
	b := &Client{GameID: "g1", Send: make(chan []byte, 1)}
	other := &Client{GameID: "g2", Send: make(chan []byte, 1)}
	h.Register(a)
	h.Register(b)
	h.Register(other)

	s := game.New("g1")
	h.Broadcast(&s)

	for _, c := range []*Client{a, b} {
		select {
		case raw := <-c.Send:
			var got domain.GameState
			if err := json.Unmarshal(raw, &got); err != nil {
				t.Fatalf("broadcast payload not a snapshot: %v", err)
			}
			if got.GameID != "g1" {
				t.Fatalf("wrong game id in payload: %q", got.GameID)
			}
		default:
			t.Fatalf("watcher did not receive snapshot")
		}
	}

	select {
	case <-other.Send:
		t.Fatalf("watcher of another game received snapshot")
	default:
	}
}

func TestBroadcastDropsSlowWatcher(t *testing.T) {
	h := NewHub()

	slow := &Client{GameID: "g1", Send: make(chan []byte)} // unbuffered, never read
	h.Register(slow)
	if h.Watchers("g1") != 1 {
		t.Fatalf("expected one watcher")
	}

	s := game.New("g1")
	h.Broadcast(&s)

	if h.Watchers("g1") != 0 {
		t.Fatalf("slow watcher was not dropped")
	}
	if _, ok := <-slow.Send; ok {
		t.Fatalf("expected send channel closed")
	}
}

func TestUnregisterIdempotent(t *testing.T) {
	h := NewHub()
	c := &Client{GameID: "g1", Send: make(chan []byte, 1)}
	h.Register(c)
	h.Unregister(c)
	h.Unregister(c)
	if h.Watchers("g1") != 0 {
		t.Fatalf("watcher map not cleaned up")
	}
}

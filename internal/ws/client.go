package ws

import (
	"time"

	"github.com/gorilla/websocket"

	"bishoprook/internal/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second
)

// Client is one connected spectator.
type Client struct {
	GameID string
	Conn   *websocket.Conn
	Send   chan []byte
}

func NewClient(gameID string, conn *websocket.Conn) *Client {
	return &Client{
		GameID: gameID,
		Conn:   conn,
		Send:   make(chan []byte, 16),
	}
}

// Run services the connection until it drops. The initial snapshot is
// queued by the handler before Run starts.
func (c *Client) Run(h *Hub) {
	go c.writePump()
	c.readPump(h)
}

// readPump discards inbound frames; the feed is one-way. It exists to notice
// the peer going away and to answer pings.
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.Unregister(c)
		_ = c.Conn.Close()
	}()

	c.Conn.SetReadLimit(512)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			logger.Debug("spectator gone", "game_id", c.GameID, "error", err)
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

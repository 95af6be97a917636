package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"bishoprook/internal/logger"
	"bishoprook/internal/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS policy is handled at the HTTP layer.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WatchGame upgrades to a websocket and streams every new snapshot of the
// game to the spectator. The current snapshot is sent immediately.
func (h *Handler) WatchGame(c *gin.Context) {
	state, err := h.Games.Get(c.Request.Context(), c.Param("game_id"))
	if err != nil {
		h.gameError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Error("websocket upgrade", "error", err)
		return
	}

	client := ws.NewClient(state.GameID, conn)
	h.Hub.Register(client)

	if raw, err := json.Marshal(state); err == nil {
		client.Send <- raw
	}

	go client.Run(h.Hub)
}

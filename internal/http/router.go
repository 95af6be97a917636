package http

import (
	"github.com/gin-gonic/gin"

	"bishoprook/internal/http/handlers"
)

// RegisterRoutes wires the /api surface onto the engine.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")

	api.GET("/", h.Root)

	api.POST("/game", h.CreateGame)
	api.GET("/game/:game_id", h.GetGame)
	api.POST("/game/:game_id/round", h.PlayRound)
	api.POST("/game/:game_id/reset", h.ResetGame)
	api.GET("/game/:game_id/ws", h.WatchGame)

	// Legacy status-check endpoints.
	api.POST("/status", h.CreateStatusCheck)
	api.GET("/status", h.ListStatusChecks)
}

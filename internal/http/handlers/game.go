package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bishoprook/internal/logger"
	"bishoprook/internal/service"
)

// Root is the liveness check.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Chess Game API"})
}

// CreateGame starts a new game and returns the initial snapshot.
func (h *Handler) CreateGame(c *gin.Context) {
	state, err := h.Games.Create(c.Request.Context())
	if err != nil {
		logger.Error("create game", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create game"})
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetGame returns the current snapshot.
func (h *Handler) GetGame(c *gin.Context) {
	state, err := h.Games.Get(c.Request.Context(), c.Param("game_id"))
	if err != nil {
		h.gameError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// PlayRound advances the game one round and returns the updated snapshot.
// A finished game comes back unchanged.
func (h *Handler) PlayRound(c *gin.Context) {
	state, err := h.Games.PlayRound(c.Request.Context(), c.Param("game_id"))
	if err != nil {
		h.gameError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ResetGame restores the game to its initial state, keeping the id.
func (h *Handler) ResetGame(c *gin.Context) {
	state, err := h.Games.Reset(c.Request.Context(), c.Param("game_id"))
	if err != nil {
		h.gameError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *Handler) gameError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	logger.Error("game operation", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
}

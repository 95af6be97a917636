package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bishoprook/internal/domain"
	"bishoprook/internal/logger"
)

// StatusCheckRequest creates a status-check record.
type StatusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

// CreateStatusCheck records a client liveness check.
func (h *Handler) CreateStatusCheck(c *gin.Context) {
	if h.StatusRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence not configured"})
		return
	}

	var req StatusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	check := &domain.StatusCheck{
		ID:         uuid.New().String(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := h.StatusRepo.Create(c.Request.Context(), check); err != nil {
		logger.Error("create status check", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	c.JSON(http.StatusOK, check)
}

// ListStatusChecks returns recent status checks.
func (h *Handler) ListStatusChecks(c *gin.Context) {
	if h.StatusRepo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "persistence not configured"})
		return
	}

	checks, err := h.StatusRepo.GetRecent(c.Request.Context(), 1000)
	if err != nil {
		logger.Error("list status checks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
		return
	}
	if checks == nil {
		checks = []*domain.StatusCheck{}
	}
	c.JSON(http.StatusOK, checks)
}

package handlers

import (
	"bishoprook/internal/repository"
	"bishoprook/internal/service"
	"bishoprook/internal/ws"
)

// Handler carries the dependencies of the API endpoints. StatusRepo is nil
// when the server runs without a database.
type Handler struct {
	Games      *service.GameService
	Hub        *ws.Hub
	StatusRepo *repository.StatusRepository
}

func New(games *service.GameService, hub *ws.Hub, statusRepo *repository.StatusRepository) *Handler {
	return &Handler{Games: games, Hub: hub, StatusRepo: statusRepo}
}

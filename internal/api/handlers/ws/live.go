package ws

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"safewalk/internal/ws"
)

// Handler exposes the live journey feed over websocket.
type Handler struct {
	logger *slog.Logger
	hub    *ws.Hub
}

func NewHandler(logger *slog.Logger, hub *ws.Hub) *Handler {
	return &Handler{
		logger: logger,
		hub:    hub,
	}
}

func (h *Handler) LiveStream(w http.ResponseWriter, r *http.Request) {
	journeyID := chi.URLParam(r, "id")
	if journeyID == "" {
		http.Error(w, "journey id required", http.StatusBadRequest)
		return
	}
	h.hub.Serve(w, r, journeyID)
}

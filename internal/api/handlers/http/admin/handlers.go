package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"safewalk/internal/domain"
	"safewalk/pkg/e"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type StatsProvider interface {
	Stats(ctx context.Context) (domain.AdminStats, error)
}

type Handler struct {
	logger *slog.Logger
	stats  StatsProvider
}

func NewHandler(logger *slog.Logger, stats StatsProvider) *Handler {
	return &Handler{
		logger: logger,
		stats:  stats,
	}
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, e.ErrInvalidInput) {
		status = http.StatusBadRequest
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode failed", slog.Any("error", err))
	}
}

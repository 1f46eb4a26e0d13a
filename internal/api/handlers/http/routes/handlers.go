package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"safewalk/internal/domain"
	"safewalk/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type RouteHandler interface {
	AnalyzeRoute(ctx context.Context, origin, destination domain.Coordinate) (domain.RouteAnalysis, error)
	OptimizeRoutes(ctx context.Context, origin, destination domain.Coordinate) (domain.RoutePlan, error)
	ForecastSafety(ctx context.Context, c domain.Coordinate, hoursAhead int) ([]domain.ForecastEntry, error)
	PointRisk(ctx context.Context, c domain.Coordinate) (domain.PointRisk, error)
	AreaDashboard(ctx context.Context) ([]domain.AreaSnapshot, error)
	SafetyZones(ctx context.Context) ([]domain.PointOfInterest, error)
}

type Handler struct {
	logger *slog.Logger
	routes RouteHandler
}

func NewHandler(logger *slog.Logger, routes RouteHandler) *Handler {
	return &Handler{
		logger: logger,
		routes: routes,
	}
}

func (h *Handler) AnalyzeRoute(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeRouteRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.routes.AnalyzeRoute(r.Context(), req.Origin(), req.Destination())
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) OptimizeRoutes(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeRouteRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.routes.OptimizeRoutes(r.Context(), req.Origin(), req.Destination())
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ForecastSafety(w http.ResponseWriter, r *http.Request) {
	var req domain.ForecastRequest
	if !h.decode(w, r, &req) {
		return
	}

	entries, err := h.routes.ForecastSafety(r.Context(), domain.Coordinate{Lat: req.Lat, Lng: req.Lng}, req.Hours)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"forecast": entries})
}

func (h *Handler) PointRisk(w http.ResponseWriter, r *http.Request) {
	var req domain.PointRiskRequest
	if !h.decode(w, r, &req) {
		return
	}

	risk, err := h.routes.PointRisk(r.Context(), domain.Coordinate{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, risk)
}

func (h *Handler) AreaDashboard(w http.ResponseWriter, r *http.Request) {
	areas, err := h.routes.AreaDashboard(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"areas": areas})
}

func (h *Handler) SafetyZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.routes.SafetyZones(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"zones": zones})
}

// decode parses and validates the body; on failure it answers the request
// itself and reports false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := validator.ValidateStruct(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return false
	}
	return true
}

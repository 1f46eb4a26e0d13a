package tracking

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"safewalk/internal/domain"
	"safewalk/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type TrackingHandler interface {
	StartJourney(ctx context.Context, userID string, start domain.Coordinate, dest domain.Destination, plannedRoute []domain.Coordinate, trustedContacts []string) (string, error)
	UpdateLocation(ctx context.Context, journeyID string, loc domain.Coordinate) (domain.UpdateLocationResult, error)
	ActivatePanic(ctx context.Context, journeyID string, panicData map[string]string) (domain.PanicResult, error)
	EndJourney(ctx context.Context, journeyID string, endLocation *domain.Coordinate) (domain.EndJourneyResult, error)
	JourneyStatus(ctx context.Context, journeyID string) (domain.JourneyStatusView, error)
	FamilyDashboard(ctx context.Context, contactPhone string) (domain.FamilyDashboard, error)
}

type Handler struct {
	logger   *slog.Logger
	tracking TrackingHandler
}

func NewHandler(logger *slog.Logger, tracking TrackingHandler) *Handler {
	return &Handler{
		logger:   logger,
		tracking: tracking,
	}
}

func (h *Handler) StartJourney(w http.ResponseWriter, r *http.Request) {
	var req domain.StartJourneyRequest
	if !h.decode(w, r, &req) {
		return
	}

	journeyID, err := h.tracking.StartJourney(r.Context(), req.UserID, *req.StartLocation, *req.Destination, req.PlannedRoute, req.TrustedContacts)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.log(r).Info("journey started", slog.String("journey_id", journeyID))
	h.writeJSON(w, http.StatusCreated, map[string]any{
		"journey_id": journeyID,
		"status":     domain.JourneyActive,
	})
}

func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	journeyID := chi.URLParam(r, "id")

	var req domain.UpdateLocationRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.tracking.UpdateLocation(r.Context(), journeyID, *req.CurrentLocation)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) ActivatePanic(w http.ResponseWriter, r *http.Request) {
	journeyID := chi.URLParam(r, "id")

	var req domain.PanicRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.tracking.ActivatePanic(r.Context(), journeyID, req.PanicData)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.log(r).Warn("panic activated", slog.String("journey_id", journeyID))
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) EndJourney(w http.ResponseWriter, r *http.Request) {
	journeyID := chi.URLParam(r, "id")

	var req domain.EndJourneyRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.tracking.EndJourney(r.Context(), journeyID, req.EndLocation)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) JourneyStatus(w http.ResponseWriter, r *http.Request) {
	journeyID := chi.URLParam(r, "id")

	view, err := h.tracking.JourneyStatus(r.Context(), journeyID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) FamilyDashboard(w http.ResponseWriter, r *http.Request) {
	contact := r.URL.Query().Get("contact")
	if contact == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "contact query parameter is required"})
		return
	}

	dash, err := h.tracking.FamilyDashboard(r.Context(), contact)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dash)
}

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

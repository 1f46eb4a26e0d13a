package reports

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
type ReportHandler interface {
	ReportIncident(ctx context.Context, req domain.ReportIncidentRequest) (domain.IncidentReport, error)
	SubmitReview(ctx context.Context, req domain.SubmitReviewRequest) (domain.SafetyReview, error)
	AddReport(ctx context.Context, req domain.AddReportRequest) (domain.AreaReport, error)
	ListReports(ctx context.Context, limit int) ([]domain.AreaReport, error)
	Emergency(ctx context.Context, loc domain.Coordinate) (domain.EmergencyAlert, error)
}

type Handler struct {
	logger  *slog.Logger
	reports ReportHandler
}

func NewHandler(logger *slog.Logger, reports ReportHandler) *Handler {
	return &Handler{
		logger:  logger,
		reports: reports,
	}
}

func (h *Handler) ReportIncident(w http.ResponseWriter, r *http.Request) {
	var req domain.ReportIncidentRequest
	if !h.decode(w, r, &req) {
		return
	}

	rep, err := h.reports.ReportIncident(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, rep)
}

func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req domain.SubmitReviewRequest
	if !h.decode(w, r, &req) {
		return
	}

	rev, err := h.reports.SubmitReview(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, rev)
}

func (h *Handler) AddReport(w http.ResponseWriter, r *http.Request) {
	var req domain.AddReportRequest
	if !h.decode(w, r, &req) {
		return
	}

	rep, err := h.reports.AddReport(r.Context(), req)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, rep)
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 50)

	list, err := h.reports.ListReports(r.Context(), limit)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"reports": list})
}

func (h *Handler) Emergency(w http.ResponseWriter, r *http.Request) {
	var req domain.EmergencyRequest
	if !h.decode(w, r, &req) {
		return
	}

	alert, err := h.reports.Emergency(r.Context(), domain.Coordinate{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.log(r).Warn("emergency SOS", slog.String("id", alert.ID.String()))
	h.writeJSON(w, http.StatusOK, alert)
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

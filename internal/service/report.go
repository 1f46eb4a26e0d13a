package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"safewalk/internal/domain"
	"safewalk/pkg/e"
)

//go:generate mockgen -source=report.go -destination=mocks/mock_report.go

// ReportRepository persists user submissions. Implemented by the postgres
// storage layer.
type ReportRepository interface {
	SaveIncident(ctx context.Context, r domain.IncidentReport) error
	SaveReview(ctx context.Context, r domain.SafetyReview) error
	SaveAreaReport(ctx context.Context, r domain.AreaReport) error
	ListAreaReports(ctx context.Context, limit int) ([]domain.AreaReport, error)
	SaveEmergency(ctx context.Context, a domain.EmergencyAlert) error
	Stats(ctx context.Context) (domain.AdminStats, error)
}

type reportService struct {
	logger     *slog.Logger
	repo       ReportRepository
	dispatcher NotificationDispatcher
	adminPhone string
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func NewReportService(logger *slog.Logger, repo ReportRepository, dispatcher NotificationDispatcher, adminPhone string) ReportService {
	return &reportService{
		logger:     logger,
		repo:       repo,
		dispatcher: dispatcher,
		adminPhone: adminPhone,
	}
}

func (s *reportService) ReportIncident(ctx context.Context, req domain.ReportIncidentRequest) (domain.IncidentReport, error) {
	const op = "service.reportService.ReportIncident"

	rep := domain.IncidentReport{
		ID:         uuid.New(),
		Type:       req.Type,
		Location:   req.Location,
		Details:    req.Details,
		Coordinate: req.Coordinate,
		CreatedAt:  nowUTC(),
	}
	if err := s.repo.SaveIncident(ctx, rep); err != nil {
		return domain.IncidentReport{}, e.WrapError(ctx, op, err)
	}

	s.logger.Info("incident reported", slog.String("type", rep.Type), slog.String("id", rep.ID.String()))
	return rep, nil
}

func (s *reportService) SubmitReview(ctx context.Context, req domain.SubmitReviewRequest) (domain.SafetyReview, error) {
	const op = "service.reportService.SubmitReview"

	rev := domain.SafetyReview{
		ID:             uuid.New(),
		SafetyRating:   req.SafetyRating,
		LightingRating: req.LightingRating,
		CrowdRating:    req.CrowdRating,
		Comment:        req.Comment,
		CreatedAt:      nowUTC(),
	}
	if err := s.repo.SaveReview(ctx, rev); err != nil {
		return domain.SafetyReview{}, e.WrapError(ctx, op, err)
	}
	return rev, nil
}

func (s *reportService) AddReport(ctx context.Context, req domain.AddReportRequest) (domain.AreaReport, error) {
	const op = "service.reportService.AddReport"

	rep := domain.AreaReport{
		ID:          uuid.New(),
		Coordinate:  domain.Coordinate{Lat: req.Lat, Lng: req.Lng},
		Type:        req.Type,
		Description: req.Description,
		CreatedAt:   nowUTC(),
	}
	if err := s.repo.SaveAreaReport(ctx, rep); err != nil {
		return domain.AreaReport{}, e.WrapError(ctx, op, err)
	}
	return rep, nil
}

func (s *reportService) ListReports(ctx context.Context, limit int) ([]domain.AreaReport, error) {
	const op = "service.reportService.ListReports"

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	reports, err := s.repo.ListAreaReports(ctx, limit)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return reports, nil
}

// Emergency is the one-off SOS without an active journey. Admin notification
// is best-effort; the alert row is saved regardless.
func (s *reportService) Emergency(ctx context.Context, loc domain.Coordinate) (domain.EmergencyAlert, error) {
	const op = "service.reportService.Emergency"

	msg := fmt.Sprintf(
		"SafeWalk EMERGENCY: SOS triggered at https://maps.google.com/?q=%f,%f. Call 100 (Police) or 108 (Emergency) immediately.",
		loc.Lat, loc.Lng,
	)
	notified := false
	if s.adminPhone != "" {
		notified = s.dispatcher.Send(ctx, s.adminPhone, msg)
	}

	alert := domain.EmergencyAlert{
		ID:            uuid.New(),
		Location:      loc,
		AdminNotified: notified,
		CreatedAt:     nowUTC(),
	}
	if err := s.repo.SaveEmergency(ctx, alert); err != nil {
		return domain.EmergencyAlert{}, e.WrapError(ctx, op, err)
	}

	s.logger.Warn("emergency alert", slog.String("id", alert.ID.String()), slog.Bool("admin_notified", notified))
	return alert, nil
}

func (s *reportService) Stats(ctx context.Context) (domain.AdminStats, error) {
	const op = "service.reportService.Stats"

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return domain.AdminStats{}, e.WrapError(ctx, op, err)
	}
	return stats, nil
}

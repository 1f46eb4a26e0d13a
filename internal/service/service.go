package service

import (
	"context"
	"time"

	"safewalk/internal/domain"
	"safewalk/internal/refdata"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// WeatherProvider samples current conditions at a coordinate. Lookups never
// fail; providers degrade to a neutral fallback on upstream errors.
type WeatherProvider interface {
	Current(ctx context.Context, c domain.Coordinate) domain.Weather
}

// RiskPredictor estimates crime risk and crowd density in [0,100].
type RiskPredictor interface {
	PredictCrime(ctx context.Context, c domain.Coordinate, hour, weekday int) float64
	PredictCrowd(ctx context.Context, c domain.Coordinate, hour int) float64
}

// NotificationDispatcher delivers a text message to a phone number.
// Delivery is best-effort: failures are logged by the implementation and
// surface only as a false return, never as an error.
type NotificationDispatcher interface {
	Send(ctx context.Context, phone, message string) bool
}

// ReferenceData is the read-only set of safe zones and hotspots.
type ReferenceData interface {
	SafeZonesWithin(center domain.Coordinate, radiusMeters float64) []refdata.Match
	HotspotsWithin(center domain.Coordinate, radiusMeters float64) []refdata.Match
	All() []domain.PointOfInterest
}

// NotificationQueue is the outbound queue consumed by the sender worker.
type NotificationQueue interface {
	Enqueue(ctx context.Context, n domain.Notification) error
}

// RouteService is the stateless scoring surface.
type RouteService interface {
	AnalyzeRoute(ctx context.Context, origin, destination domain.Coordinate) (domain.RouteAnalysis, error)
	OptimizeRoutes(ctx context.Context, origin, destination domain.Coordinate) (domain.RoutePlan, error)
	ForecastSafety(ctx context.Context, c domain.Coordinate, hoursAhead int) ([]domain.ForecastEntry, error)
	PointRisk(ctx context.Context, c domain.Coordinate) (domain.PointRisk, error)
	AreaDashboard(ctx context.Context) ([]domain.AreaSnapshot, error)
	SafetyZones(ctx context.Context) ([]domain.PointOfInterest, error)
}

// TrackingService owns the journey lifecycle.
type TrackingService interface {
	StartJourney(ctx context.Context, userID string, start domain.Coordinate, dest domain.Destination, plannedRoute []domain.Coordinate, trustedContacts []string) (string, error)
	UpdateLocation(ctx context.Context, journeyID string, loc domain.Coordinate) (domain.UpdateLocationResult, error)
	ActivatePanic(ctx context.Context, journeyID string, panicData map[string]string) (domain.PanicResult, error)
	EndJourney(ctx context.Context, journeyID string, endLocation *domain.Coordinate) (domain.EndJourneyResult, error)
	JourneyStatus(ctx context.Context, journeyID string) (domain.JourneyStatusView, error)
	FamilyDashboard(ctx context.Context, contactPhone string) (domain.FamilyDashboard, error)
}

// ReportService persists user submissions and fires one-off emergencies.
type ReportService interface {
	ReportIncident(ctx context.Context, req domain.ReportIncidentRequest) (domain.IncidentReport, error)
	SubmitReview(ctx context.Context, req domain.SubmitReviewRequest) (domain.SafetyReview, error)
	AddReport(ctx context.Context, req domain.AddReportRequest) (domain.AreaReport, error)
	ListReports(ctx context.Context, limit int) ([]domain.AreaReport, error)
	Emergency(ctx context.Context, loc domain.Coordinate) (domain.EmergencyAlert, error)
	Stats(ctx context.Context) (domain.AdminStats, error)
}

// JourneyArchiver stores a summary row when a journey completes. Archival is
// best-effort; the tracking manager never fails an operation over it.
type JourneyArchiver interface {
	SaveJourney(ctx context.Context, rec domain.JourneyRecord) error
}

// ScheduledTask is the handle of a pending one-shot callback.
type ScheduledTask interface {
	Cancel() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	Once(delay time.Duration, fn func()) ScheduledTask
}

// EventSink receives journey events for live watchers (the websocket hub).
type EventSink interface {
	Publish(journeyID string, ev TrackingEvent)
}

type Service struct {
	Routes   RouteService
	Tracking TrackingService
	Reports  ReportService
}

func NewService(routes RouteService, tracking TrackingService, reports ReportService) *Service {
	return &Service{
		Routes:   routes,
		Tracking: tracking,
		Reports:  reports,
	}
}

package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"safewalk/internal/domain"
	"safewalk/pkg/e"
)

type ReportRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewReportRepo(pool *pgxpool.Pool, logger *slog.Logger) *ReportRepo {
	return &ReportRepo{pool: pool, logger: logger}
}

func (p *ReportRepo) SaveIncident(ctx context.Context, r domain.IncidentReport) error {
	const op = "postgres.ReportRepo.SaveIncident"

	if r.ID == uuid.Nil || r.Type == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO incident_reports (id, type, location, details, lat, lng, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var lat, lng *float64
	if r.Coordinate != nil {
		lat, lng = &r.Coordinate.Lat, &r.Coordinate.Lng
	}

	_, err := p.pool.Exec(ctx, query, r.ID, r.Type, r.Location, r.Details, lat, lng, r.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ReportRepo) SaveReview(ctx context.Context, r domain.SafetyReview) error {
	const op = "postgres.ReportRepo.SaveReview"

	if r.ID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO safety_reviews (id, safety_rating, lighting_rating, crowd_rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := p.pool.Exec(ctx, query, r.ID, r.SafetyRating, r.LightingRating, r.CrowdRating, r.Comment, r.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ReportRepo) SaveAreaReport(ctx context.Context, r domain.AreaReport) error {
	const op = "postgres.ReportRepo.SaveAreaReport"

	if r.ID == uuid.Nil || r.Type == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO area_reports (id, lat, lng, type, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := p.pool.Exec(ctx, query, r.ID, r.Coordinate.Lat, r.Coordinate.Lng, r.Type, r.Description, r.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ReportRepo) ListAreaReports(ctx context.Context, limit int) ([]domain.AreaReport, error) {
	const op = "postgres.ReportRepo.ListAreaReports"

	if limit <= 0 || limit > 1000 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT id, lat, lng, type, description, created_at
		FROM area_reports
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	reports := make([]domain.AreaReport, 0, limit)
	for rows.Next() {
		var r domain.AreaReport
		if err := rows.Scan(&r.ID, &r.Coordinate.Lat, &r.Coordinate.Lng, &r.Type, &r.Description, &r.CreatedAt); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return reports, nil
}

func (p *ReportRepo) SaveEmergency(ctx context.Context, a domain.EmergencyAlert) error {
	const op = "postgres.ReportRepo.SaveEmergency"

	if a.ID == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO emergency_alerts (id, lat, lng, admin_notified, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := p.pool.Exec(ctx, query, a.ID, a.Location.Lat, a.Location.Lng, a.AdminNotified, a.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ReportRepo) Stats(ctx context.Context) (domain.AdminStats, error) {
	const op = "postgres.ReportRepo.Stats"

	const query = `
		SELECT
			(SELECT COUNT(*) FROM emergency_alerts),
			(SELECT COUNT(*) FROM incident_reports),
			(SELECT COUNT(*) FROM safety_reviews),
			(SELECT COUNT(*) FROM area_reports),
			(SELECT COUNT(*) FROM journey_records)
	`

	var s domain.AdminStats
	if err := p.pool.QueryRow(ctx, query).Scan(&s.EmergencyAlerts, &s.Incidents, &s.Reviews, &s.Reports, &s.Journeys); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return domain.AdminStats{}, e.WrapError(ctx, op, err)
	}
	return s, nil
}

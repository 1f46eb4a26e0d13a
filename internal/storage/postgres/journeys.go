package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"safewalk/internal/domain"
	"safewalk/pkg/e"
)

// JourneyRepo stores the archive rows of completed journeys. Live journeys
// never touch the database.
type JourneyRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewJourneyRepo(pool *pgxpool.Pool, logger *slog.Logger) *JourneyRepo {
	return &JourneyRepo{pool: pool, logger: logger}
}

func (p *JourneyRepo) SaveJourney(ctx context.Context, rec domain.JourneyRecord) error {
	const op = "postgres.JourneyRepo.SaveJourney"

	if rec.JourneyID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO journey_records
			(journey_id, user_id, start_time, end_time, start_lat, start_lng, destination, final_status, deviations, panic_used)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (journey_id) DO NOTHING
	`

	_, err := p.pool.Exec(ctx, query,
		rec.JourneyID,
		rec.UserID,
		rec.StartTime,
		rec.EndTime,
		rec.StartLat,
		rec.StartLng,
		rec.Destination,
		rec.FinalStatus,
		rec.Deviations,
		rec.PanicUsed,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

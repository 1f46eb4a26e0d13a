package postgres

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"safewalk/internal/config"
	"safewalk/pkg/e"
)

type Postgres struct {
	Pool     *pgxpool.Pool
	Reports  *ReportRepo
	Journeys *JourneyRepo
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	logger.Info("Connecting to Postgres", slog.String("host", cfg.Postgres.Host), slog.String("db", cfg.Postgres.Database))

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	return &Postgres{
		Pool:     pool,
		Reports:  NewReportRepo(pool, logger),
		Journeys: NewJourneyRepo(pool, logger),
	}, nil
}

func (p *Postgres) Close() {
	p.Pool.Close()
}

package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"safewalk/internal/api"
	"safewalk/internal/config"
	"safewalk/internal/predict"
	"safewalk/internal/redis"
	"safewalk/internal/refdata"
	"safewalk/internal/service"
	"safewalk/internal/storage/postgres"
	"safewalk/internal/twilio"
	"safewalk/internal/weather"
	"safewalk/internal/ws"
	"safewalk/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Sender     *service.NotificationSender
	Hub        *ws.Hub
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	logger.Info("Loading reference data")
	ref, err := refdata.LoadStore(cfg.RefDataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}

	weatherCache := redis.NewWeatherCache(redisClient, cfg.Weather.CacheTTL)
	weatherProvider := weather.NewCached(logger, weather.NewOpenWeather(logger, cfg.Weather), weatherCache)

	predictor := predict.NewPredictor(ref, weatherProvider)

	queue := redis.NewNotificationQueue(redisClient)
	dispatcher := service.NewQueuedDispatcher(logger, queue)
	deliverer := twilio.NewClient(logger, cfg.Twilio)
	sender := service.NewNotificationSender(logger, queue, deliverer)

	hub := ws.NewHub(logger)

	routeSvc := service.NewRouteService(logger, weatherProvider, predictor, ref, nil)
	trackingSvc := service.NewTrackingManager(logger, dispatcher, storage.Journeys, service.NewTimerScheduler(), hub, service.TrackingConfig{
		DeviationThresholdMeters: cfg.Tracking.DeviationThresholdMeters,
		NotifyInterval:           cfg.Tracking.NotifyInterval,
		CheckInDelay:             cfg.Tracking.CheckInDelay,
		PublicBaseURL:            cfg.Http.PublicBaseURL,
		AdminPhone:               cfg.Twilio.AdminPhone,
	}, nil)
	reportSvc := service.NewReportService(logger, storage.Reports, dispatcher, cfg.Twilio.AdminPhone)

	srv := service.NewService(routeSvc, trackingSvc, reportSvc)

	httpServer := api.NewServer(cfg, logger, srv, hub)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Sender:     sender,
		Hub:        hub,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}

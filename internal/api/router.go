package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"safewalk/internal/api/handlers/http/admin"
	"safewalk/internal/api/handlers/http/reports"
	"safewalk/internal/api/handlers/http/routes"
	"safewalk/internal/api/handlers/http/system"
	"safewalk/internal/api/handlers/http/tracking"
	wshandler "safewalk/internal/api/handlers/ws"
	"safewalk/internal/config"
	"safewalk/internal/middleware"
	"safewalk/internal/service"
	"safewalk/internal/ws"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, hub *ws.Hub) *Server {
	routeHandler := routes.NewHandler(logger, svc.Routes)
	trackingHandler := tracking.NewHandler(logger, svc.Tracking)
	reportHandler := reports.NewHandler(logger, svc.Reports)
	adminHandler := admin.NewHandler(logger, svc.Reports)
	systemHandler := system.NewHandler(logger)
	liveHandler := wshandler.NewHandler(logger, hub)

	r := InitRouter(cfg, routeHandler, trackingHandler, reportHandler, adminHandler, systemHandler, liveHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	routeHandler *routes.Handler,
	trackingHandler *tracking.Handler,
	reportHandler *reports.Handler,
	adminHandler *admin.Handler,
	systemHandler *system.Handler,
	liveHandler *wshandler.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ROUTES
		api.Route("/routes", func(rr chi.Router) {
			rr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			rr.Post("/analyze", routeHandler.AnalyzeRoute)
			rr.Post("/optimize", routeHandler.OptimizeRoutes)
			rr.Post("/forecast", routeHandler.ForecastSafety)
			rr.Post("/risk", routeHandler.PointRisk)
		})
		api.Get("/areas/dashboard", routeHandler.AreaDashboard)
		api.Get("/zones", routeHandler.SafetyZones)

		// TRACKING
		api.Route("/journeys", func(jr chi.Router) {
			jr.Use(middleware.Limit(30, 60, 5*time.Minute, logger))
			jr.Post("/", trackingHandler.StartJourney)

			jr.Route("/{id}", func(ir chi.Router) {
				ir.Get("/", trackingHandler.JourneyStatus)
				ir.Post("/location", trackingHandler.UpdateLocation)
				ir.Post("/panic", trackingHandler.ActivatePanic)
				ir.Post("/end", trackingHandler.EndJourney)
			})
		})
		api.Get("/family/dashboard", trackingHandler.FamilyDashboard)

		// REPORTS
		api.Route("/reports", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/", reportHandler.AddReport)
			pr.Get("/", reportHandler.ListReports)
			pr.Post("/incident", reportHandler.ReportIncident)
			pr.Post("/review", reportHandler.SubmitReview)
		})
		api.Post("/emergency", reportHandler.Emergency)

		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKey(cfg.APIKey, logger))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))
			ar.Get("/stats", adminHandler.AdminStats)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	// Live feed; the URL is shared with trusted contacts in panic messages.
	r.Get("/live-stream/{id}", liveHandler.LiveStream)

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}

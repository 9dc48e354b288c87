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

	"crashph/internal/api/handlers/http/admin"
	"crashph/internal/api/handlers/http/auth"
	"crashph/internal/api/handlers/http/reports"
	"crashph/internal/api/handlers/http/system"
	"crashph/internal/config"
	"crashph/internal/middleware"
	"crashph/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	authHandler := auth.NewHandler(logger, svc.AuthService)
	adminHandler := admin.NewHandler(logger, svc.OfficeAdminService)
	reportsHandler := reports.NewHandler(logger, svc.ReportService, svc.MessageService)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, authHandler, adminHandler, reportsHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, authHandler *auth.Handler, adminHandler *admin.Handler, reportsHandler *reports.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// AUTH
		api.With(middleware.Limit(5, 10, 10*time.Minute, logger)).
			Post("/login", authHandler.Login)

		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Route("/offices", func(or chi.Router) {
				or.Post("/", adminHandler.OfficeCreate)
				or.Get("/", adminHandler.OfficeList)

				or.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.OfficeGet)
					rr.Put("/", adminHandler.OfficeUpdate)
					rr.Delete("/", adminHandler.OfficeDelete)
				})
			})
		})

		// REPORTS
		api.Route("/reports", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))

			pr.Post("/", reportsHandler.ReportCreate)
			pr.Get("/", reportsHandler.ReportList)

			pr.Route("/{id}", func(rr chi.Router) {
				rr.Put("/", reportsHandler.ReportStatusUpdate)

				rr.Route("/messages", func(mr chi.Router) {
					mr.Get("/", reportsHandler.MessageList)
					mr.Post("/", reportsHandler.MessageCreate)
				})
			})
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

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

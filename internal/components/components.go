package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"crashph/internal/api"
	"crashph/internal/auth"
	"crashph/internal/config"
	"crashph/internal/redis"
	"crashph/internal/service"
	"crashph/internal/storage/postgres"
	"crashph/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	officeCache := redis.NewOfficeLocationCache(redisClient)
	tokenIssuer := auth.NewJWTIssuer(cfg.Auth)

	assignPolicy := service.NewNearestOfficePolicy(storage.Offices(), officeCache, logger, 5*time.Minute)

	authSvc := service.NewAuthService(storage.Admins(), storage.Offices(), tokenIssuer, logger)
	officeSvc := service.NewOfficeAdminService(storage.Offices(), storage.Admins(), officeCache, cfg.Auth.BcryptCost, logger)
	reportSvc := service.NewReportService(storage.Reports(), assignPolicy, logger)
	messageSvc := service.NewMessageService(storage.Messages(), logger)

	srv := service.NewService(authSvc, officeSvc, reportSvc, messageSvc)

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
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

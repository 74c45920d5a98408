package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/course-graph/internal/api/router"
	"github.com/DjordjeVuckovic/course-graph/internal/api/server"
	"github.com/DjordjeVuckovic/course-graph/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	backend, err := factory.NewBackend(context.Background(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create storage backend", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	s := server.New(sCfg, backend.HealthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupReadinessChecks("/ready", backend.Readiness())

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Course Graph API is running")
	})

	router.NewCatalogRouter(s.Echo, backend).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/course-graph/internal/storage"
	"github.com/DjordjeVuckovic/course-graph/internal/storage/factory"
	"github.com/DjordjeVuckovic/course-graph/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type CatalogApiConfig struct {
	factory.StorageConfig
}

func (as *AppConfig) Load() (*CatalogApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/catalog_api/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	if path := os.Getenv("CATALOG_PATH"); path != "" && storageCfg.Type == storage.JSON {
		storageCfg.JSON.Path = path
	}

	return &CatalogApiConfig{StorageConfig: *storageCfg}, nil
}

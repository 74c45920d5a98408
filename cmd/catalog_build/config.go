package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

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

type CatalogBuildConfig struct {
	ManifestPath string

	// BaseDir resolves relative paths in the manifest; defaults to the manifest's directory.
	BaseDir    string
	Workers    int
	ReportPath string
	factory.StorageConfig
}

func (as *AppConfig) Load() (*CatalogBuildConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/catalog_build/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	manifestPath := os.Getenv("MANIFEST_PATH")
	if manifestPath == "" {
		slog.Error("MANIFEST_PATH environment variable is not set")
		return nil, fmt.Errorf("MANIFEST_PATH environment variable is not set")
	}

	baseDir := os.Getenv("DATA_DIR")
	if baseDir == "" {
		baseDir = filepath.Dir(manifestPath)
	}

	workers, err := strconv.Atoi(os.Getenv("WORKERS"))
	if err != nil {
		workers = 0
	}

	return &CatalogBuildConfig{
		ManifestPath:  manifestPath,
		BaseDir:       baseDir,
		Workers:       workers,
		ReportPath:    os.Getenv("REPORT_PATH"),
		StorageConfig: *storageCfg,
	}, nil
}

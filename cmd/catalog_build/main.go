package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/course-graph/internal/collector"
	"github.com/DjordjeVuckovic/course-graph/internal/processor"
	"github.com/DjordjeVuckovic/course-graph/internal/reader"
	"github.com/DjordjeVuckovic/course-graph/internal/storage/factory"
)

func main() {
	appSettings := NewAppConfig()

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	file, err := os.Open(cfg.ManifestPath)
	if err != nil {
		slog.Error("failed to read manifest file", "error", err)
		os.Exit(1)
	}
	manifest, err := reader.NewYAMLManifestLoader(file).Load(true)
	_ = file.Close()
	if err != nil {
		slog.Error("failed to load manifest", "error", err)
		os.Exit(1)
	}

	terms, err := processor.ResolveTerms(manifest, cfg.BaseDir)
	if err != nil {
		slog.Error("failed to resolve terms", "error", err)
		os.Exit(1)
	}
	for _, t := range terms {
		slog.Info("Term resolved", "index", t.Index, "key", t.Key, "label", t.Label, "path", t.Path)
	}

	backend, err := factory.NewBackend(ctx, cfg.StorageConfig)
	if err != nil {
		slog.Error("failed to create storer", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	pipeline := processor.NewPipeline(
		collector.NewTermCollector(terms),
		backend,
		processor.WithConfig(&processor.PipelineConfig{Name: manifest.Metadata.Name, Workers: cfg.Workers}),
	)

	report, err := pipeline.Run(ctx)
	if err != nil {
		slog.Error("failed to run pipeline", "error", err)
		backend.Close()
		os.Exit(1)
	}

	slog.Info("Catalog stored", "snapshot", report.SnapshotID, "courses", report.Courses, "duration", report.Duration)
	processor.WriteTable(report, os.Stdout)

	if cfg.ReportPath != "" {
		if err := processor.WriteJSON(report, cfg.ReportPath); err != nil {
			slog.Error("failed to write build report", "error", err)
		}
	}
}

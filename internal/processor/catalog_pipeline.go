package processor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/course-graph/internal/catalog"
	"github.com/DjordjeVuckovic/course-graph/internal/collector"
	"github.com/DjordjeVuckovic/course-graph/internal/storage"
	"github.com/google/uuid"
)

// Pipeline defines the interface for catalog build pipelines
type Pipeline interface {
	// Run executes the pipeline with the given context
	Run(ctx context.Context) (*Report, error)
}

// PipelineConfig defines configuration for pipelines
type PipelineConfig struct {
	Name    string
	Workers int
}

// TermReport holds the build counters of one term.
type TermReport struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	catalog.BuildStats
}

// Report summarizes one pipeline run.
type Report struct {
	SnapshotID uuid.UUID     `json:"snapshotId"`
	Terms      []TermReport  `json:"terms"`
	Courses    int           `json:"courses"`
	Duration   time.Duration `json:"duration"`
}

// CatalogPipeline builds one catalog per term, merges them in manifest order
// and stores the result.
type CatalogPipeline struct {
	collector collector.Collector[collector.TermCourses]
	storer    storage.CatalogStorer
	config    *PipelineConfig
}

type PipelineOption func(pipeline *CatalogPipeline)

// WithWorkers bounds how many prerequisite strings each term parses concurrently.
func WithWorkers(n int) PipelineOption {
	return func(pipeline *CatalogPipeline) {
		pipeline.config.Workers = n
	}
}

// WithConfig sets custom pipeline configuration
func WithConfig(config *PipelineConfig) PipelineOption {
	return func(pipeline *CatalogPipeline) {
		pipeline.config = config
	}
}

func NewPipeline(c collector.Collector[collector.TermCourses], storer storage.CatalogStorer, opts ...PipelineOption) *CatalogPipeline {
	p := &CatalogPipeline{
		collector: c,
		storer:    storer,
		config: &PipelineConfig{
			Name: "catalog-pipeline",
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run executes the pipeline. Any unreadable term fails the whole run and
// nothing is stored.
func (p *CatalogPipeline) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	slog.Info("🛫 Starting pipeline run",
		"pipeline", p.config.Name,
		"workers", p.config.Workers,
		"time", start,
	)

	results, err := p.collector.Collect(ctx)
	if err != nil {
		slog.Error("Error collecting terms", "error", err, "pipeline", p.config.Name)
		return nil, err
	}

	var collected []collector.TermCourses
	for {
		select {
		case <-ctx.Done():
			slog.Info("Pipeline context cancelled, stopping collection", "pipeline", p.config.Name)
			return nil, ctx.Err()
		case res, ok := <-results:
			if !ok {
				return p.finish(ctx, start, collected)
			}
			if res.Err != nil {
				slog.Error("Error collecting term", "error", res.Err, "pipeline", p.config.Name)
				return nil, res.Err
			}
			collected = append(collected, res.Result)
		}
	}
}

func (p *CatalogPipeline) finish(ctx context.Context, start time.Time, collected []collector.TermCourses) (*Report, error) {
	catalogs := make([]catalog.Catalog, len(collected))
	reports := make([]TermReport, len(collected))
	builder := catalog.NewBuilder(catalog.WithWorkers(p.config.Workers))

	ordered := make([]collector.TermCourses, len(collected))
	for _, tc := range collected {
		if tc.Term.Index < 0 || tc.Term.Index >= len(ordered) {
			return nil, fmt.Errorf("term %s has index %d out of range", tc.Term.Label, tc.Term.Index)
		}
		ordered[tc.Term.Index] = tc
	}

	for i, tc := range ordered {
		cat, stats := builder.Build(tc.Courses, tc.Term.Label)
		catalogs[i] = cat
		reports[i] = TermReport{Label: tc.Term.Label, Path: tc.Term.Path, BuildStats: stats}

		slog.Info("Term catalog built",
			"pipeline", p.config.Name,
			"term", tc.Term.Label,
			"records", stats.Records,
			"courses", stats.Courses,
			"skipped", stats.Skipped,
			"duplicates", stats.Duplicates,
			"parse_failures", stats.ParseFailures,
			"no_prereqs", stats.NoPrereqs,
		)
	}

	merged := catalog.MergeAll(catalogs...)

	id, err := p.storer.Save(ctx, merged)
	if err != nil {
		slog.Error("Error saving catalog", "error", err, "pipeline", p.config.Name)
		return nil, fmt.Errorf("failed to save catalog: %w", err)
	}

	report := &Report{
		SnapshotID: id,
		Terms:      reports,
		Courses:    len(merged),
		Duration:   time.Since(start),
	}
	slog.Info("Pipeline run completed",
		"pipeline", p.config.Name,
		"snapshot", id,
		"courses", report.Courses,
		"duration", report.Duration,
	)

	return report, nil
}

package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/course-graph/internal/storage"
	"github.com/DjordjeVuckovic/course-graph/internal/storage/badgerkv"
	"github.com/DjordjeVuckovic/course-graph/internal/storage/es"
	"github.com/DjordjeVuckovic/course-graph/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/course-graph/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/course-graph/pkg/server"
)

// Backend bundles the storer and reader of one storage type with its health check.
type Backend struct {
	storage.CatalogStorer
	storage.CatalogReader
	HealthChecker pkgserver.HealthChecker

	close func()
}

// Readiness is healthy when the store is reachable and holds a catalog snapshot.
func (b *Backend) Readiness() pkgserver.HealthChecker {
	return pkgserver.AllHealthy{
		b.HealthChecker,
		pkgserver.HealthCheckerFunc(func(ctx context.Context) bool {
			_, err := b.Load(ctx)
			return err == nil
		}),
	}
}

func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// NewBackend creates the storage backend selected by cfg.Type.
func NewBackend(ctx context.Context, cfg StorageConfig) (*Backend, error) {
	slog.Info("Creating storage backend", "storageType", cfg.Type)

	switch cfg.Type {
	case storage.JSON:
		if cfg.JSON == nil {
			return nil, fmt.Errorf("missing JSON file configuration")
		}
		s := storage.NewJsonFileStorer(cfg.JSON.Path)
		return &Backend{CatalogStorer: s, CatalogReader: s, HealthChecker: pkgserver.NewOkHealthChecker()}, nil

	case storage.InMem:
		s := in_mem.NewInMemStorer()
		return &Backend{CatalogStorer: s, CatalogReader: s, HealthChecker: pkgserver.NewOkHealthChecker()}, nil

	case storage.Badger:
		if cfg.Badger == nil {
			return nil, fmt.Errorf("missing Badger configuration")
		}
		s, err := badgerkv.Open(cfg.Badger.Path)
		if err != nil {
			return nil, err
		}
		return &Backend{
			CatalogStorer: s,
			CatalogReader: s,
			HealthChecker: pkgserver.NewOkHealthChecker(),
			close: func() {
				if err := s.Close(); err != nil {
					slog.Error("Failed to close Badger", "error", err)
				}
			},
		}, nil

	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		s, err := pg.NewStorer(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{
			CatalogStorer: s,
			CatalogReader: s,
			HealthChecker: pg.NewHealthChecker(pool),
			close:         pool.Close,
		}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		indexer, err := es.NewIndexer(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Backend{CatalogStorer: indexer, CatalogReader: indexer, HealthChecker: indexer.HealthChecker()}, nil

	default:
		return nil, fmt.Errorf("%w: %s", storage.ErrUnsupportedStorer, cfg.Type)
	}
}

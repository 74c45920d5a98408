package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/course-graph/internal/catalog"
	"github.com/DjordjeVuckovic/course-graph/internal/storage"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	snapshots   map[uuid.UUID]catalog.Catalog
	latest      uuid.UUID
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		snapshots: make(map[uuid.UUID]catalog.Catalog),
	}
}

func (s *InMemStorer) Save(ctx context.Context, c catalog.Catalog) (uuid.UUID, error) {
	id := uuid.New()

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.snapshots[id] = c.Clone()
	s.latest = id
	slog.Info("Saving catalog to in-memory storage", "snapshot", id, "courses", len(c))

	return id, nil
}

func (s *InMemStorer) Load(ctx context.Context) (catalog.Catalog, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	c, ok := s.snapshots[s.latest]
	if !ok {
		return nil, storage.ErrNoSnapshot
	}
	return c.Clone(), nil
}

// Snapshot returns a copy of the snapshot saved under id.
func (s *InMemStorer) Snapshot(id uuid.UUID) (catalog.Catalog, bool) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	c, ok := s.snapshots[id]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

package storage

import (
	"context"

	"github.com/DjordjeVuckovic/course-graph/internal/catalog"
	"github.com/google/uuid"
)

// CatalogStorer persists a merged catalog as one snapshot.
type CatalogStorer interface {
	Save(ctx context.Context, c catalog.Catalog) (uuid.UUID, error)
}

// CatalogReader returns the most recently saved catalog.
type CatalogReader interface {
	Load(ctx context.Context) (catalog.Catalog, error)
}

type Type string

const (
	JSON   Type = "json"
	PG     Type = "pg"
	ES     Type = "es"
	InMem  Type = "in_mem"
	Badger Type = "badger"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type"
	ErrNoSnapshot        StorerError = "no catalog snapshot has been saved"
)

func (e StorerError) Error() string {
	return string(e)
}

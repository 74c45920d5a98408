package badgerkv

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/course-graph/internal/catalog"
	"github.com/DjordjeVuckovic/course-graph/internal/storage"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

var latestKey = []byte("meta:latest")

// Storer keeps every saved snapshot in an embedded Badger database. Courses
// live under snapshot:<id>:course:<course id>; meta:latest points at the newest snapshot.
type Storer struct {
	db *badger.DB
}

// Open opens or creates the database at path. An empty path keeps it in memory.
func Open(path string) (*Storer, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Storer{db: db}, nil
}

func (s *Storer) Close() error {
	return s.db.Close()
}

func snapshotPrefix(id uuid.UUID) []byte {
	return []byte("snapshot:" + id.String() + ":course:")
}

func (s *Storer) Save(ctx context.Context, c catalog.Catalog) (uuid.UUID, error) {
	id := uuid.New()
	prefix := snapshotPrefix(id)

	wb := s.db.NewWriteBatch()
	for _, courseID := range c.IDs() {
		if err := s.writeCourse(ctx, wb, prefix, courseID, c[courseID]); err != nil {
			wb.Cancel()
			return uuid.Nil, err
		}
	}
	if err := wb.Flush(); err != nil {
		return uuid.Nil, fmt.Errorf("flush snapshot: %w", err)
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(latestKey, id[:])
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("update latest snapshot: %w", err)
	}

	slog.Info("Catalog snapshot saved", "snapshot", id, "courses", len(c))
	return id, nil
}

func (s *Storer) writeCourse(ctx context.Context, wb *badger.WriteBatch, prefix []byte, courseID string, e *catalog.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal course %s: %w", courseID, err)
	}
	key := append(append([]byte{}, prefix...), courseID...)
	if err := wb.Set(key, value); err != nil {
		return fmt.Errorf("write course %s: %w", courseID, err)
	}
	return nil
}

func (s *Storer) Load(ctx context.Context) (catalog.Catalog, error) {
	var id uuid.UUID
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(latestKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			parsed, err := uuid.FromBytes(val)
			if err != nil {
				return err
			}
			id = parsed
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, storage.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("read latest snapshot: %w", err)
	}

	return s.LoadSnapshot(ctx, id)
}

// LoadSnapshot reads one snapshot. An unknown id yields an empty catalog.
func (s *Storer) LoadSnapshot(ctx context.Context, id uuid.UUID) (catalog.Catalog, error) {
	prefix := snapshotPrefix(id)
	out := make(catalog.Catalog)

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			courseID := string(bytes.TrimPrefix(item.Key(), prefix))

			var entry catalog.Entry
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			}); err != nil {
				return fmt.Errorf("decode course %s: %w", courseID, err)
			}
			out[courseID] = &entry
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

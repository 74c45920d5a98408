package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/course-graph/internal/catalog"
	"github.com/google/uuid"
)

// JsonFileStorer writes the catalog as the merged_courses.json artifact read by
// the visualization: UTF-8 text, four-space indent, keys in ascending order.
type JsonFileStorer struct {
	filePath string
}

func NewJsonFileStorer(filePath string) *JsonFileStorer {
	return &JsonFileStorer{
		filePath: filePath,
	}
}

func (s *JsonFileStorer) Save(ctx context.Context, c catalog.Catalog) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(c); err != nil {
		tmp.Close()
		return uuid.Nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.filePath); err != nil {
		return uuid.Nil, fmt.Errorf("failed to replace catalog file: %w", err)
	}

	id := uuid.New()
	slog.Info("Catalog written to JSON file", "path", s.filePath, "courses", len(c), "snapshot", id)
	return id, nil
}

func (s *JsonFileStorer) Load(ctx context.Context) (catalog.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	var c catalog.Catalog
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file: %w", err)
	}
	return c, nil
}

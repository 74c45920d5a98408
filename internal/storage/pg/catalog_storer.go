package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/course-graph/internal/catalog"
	"github.com/DjordjeVuckovic/course-graph/internal/prereq"
	"github.com/DjordjeVuckovic/course-graph/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var courseColumns = []string{"snapshot_id", "course_id", "name", "prereq_tree", "prereqs", "semesters"}

// Storer keeps every saved catalog as a snapshot; Load returns the newest one.
type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	if pool == nil {
		return nil, fmt.Errorf("connection pool is required")
	}
	return &Storer{db: pool.conn}, nil
}

func (s *Storer) Save(ctx context.Context, c catalog.Catalog) (uuid.UUID, error) {
	id := uuid.New()

	rows := make([][]interface{}, 0, len(c))
	for _, courseID := range c.IDs() {
		e := c[courseID]
		tree, err := prereq.Marshal(e.PrereqTree)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal prerequisite tree of %s: %w", courseID, err)
		}
		rows = append(rows, []interface{}{
			id,
			courseID,
			e.Name,
			tree,
			e.Prereqs.Sorted(),
			e.Semesters.Sorted(),
		})
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO catalog_snapshots (id, course_count) VALUES ($1, $2)`,
		id, len(rows),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{"catalog_courses"}, courseColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to bulk insert courses: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	slog.Info("Catalog snapshot saved", "snapshot", id, "courses", copied)
	return id, nil
}

func (s *Storer) Load(ctx context.Context) (catalog.Catalog, error) {
	var id uuid.UUID
	err := s.db.QueryRow(ctx,
		`SELECT id FROM catalog_snapshots ORDER BY created_at DESC LIMIT 1`,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest snapshot: %w", err)
	}

	return s.LoadSnapshot(ctx, id)
}

func (s *Storer) LoadSnapshot(ctx context.Context, id uuid.UUID) (catalog.Catalog, error) {
	rows, err := s.db.Query(ctx,
		`SELECT course_id, name, prereq_tree, prereqs, semesters
		   FROM catalog_courses
		  WHERE snapshot_id = $1`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot courses: %w", err)
	}
	defer rows.Close()

	c := make(catalog.Catalog)
	for rows.Next() {
		var (
			courseID  string
			name      string
			rawTree   []byte
			prereqs   []string
			semesters []string
		)
		if err := rows.Scan(&courseID, &name, &rawTree, &prereqs, &semesters); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}

		tree, err := prereq.Decode(rawTree)
		if err != nil {
			return nil, fmt.Errorf("failed to decode prerequisite tree of %s: %w", courseID, err)
		}

		c[courseID] = &catalog.Entry{
			Name:       name,
			PrereqTree: tree,
			Prereqs:    catalog.NewSet(prereqs...),
			Semesters:  catalog.NewSet(semesters...),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read course rows: %w", err)
	}

	slog.Debug("Catalog snapshot loaded", "snapshot", id, "courses", len(c))
	return c, nil
}

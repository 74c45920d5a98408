package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/course-graph/internal/catalog"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

const loadPageSize = 1000

// Indexer keeps one document per course, keyed by course id. Each Save tags the
// documents with a new snapshot id and removes courses left over from older snapshots.
type Indexer struct {
	client       *elasticsearch.TypedClient
	indexName    string
	config       ClientConfig
	indexBuilder *IndexBuilder
}

func NewIndexer(ctx context.Context, config ClientConfig) (*Indexer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	indexer := &Indexer{
		client:       client,
		indexName:    config.IndexName,
		config:       config,
		indexBuilder: NewIndexBuilder(),
	}

	if err := indexer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return indexer, nil
}

func (e *Indexer) Save(ctx context.Context, c catalog.Catalog) (uuid.UUID, error) {
	snapshot := uuid.New()
	if len(c) == 0 {
		return snapshot, e.deleteStale(ctx, snapshot)
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    4,
		FlushBytes:    5e+6, // 5MB
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64

	for _, courseID := range c.IDs() {
		doc, err := e.indexBuilder.mapToESDocument(courseID, c[courseID], snapshot)
		if err != nil {
			slog.Error("failed to map course", "error", err, "id", courseID)
			failed.Add(1)
			continue
		}

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", courseID)
			failed.Add(1)
			continue
		}

		err = bi.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: courseID,
				Body:       bytes.NewReader(docBytes),
				OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
					successful.Add(1)
				},
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					failed.Add(1)
					if err != nil {
						slog.Error("bulk index error", "error", err, "id", item.DocumentID)
					} else {
						slog.Error("bulk index error", "status", res.Status, "error", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
					}
				},
			},
		)
		if err != nil {
			failed.Add(1)
			slog.Error("failed to add document to bulk indexer", "error", err, "id", courseID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	slog.Info("Bulk indexing completed",
		"successful", successful.Load(),
		"failed", failed.Load(),
		"total", len(c),
		"index", e.indexName,
		"snapshot", snapshot)

	if n := failed.Load(); n > 0 {
		return uuid.Nil, fmt.Errorf("failed to index %d out of %d courses", n, len(c))
	}

	if err := e.deleteStale(ctx, snapshot); err != nil {
		return uuid.Nil, err
	}
	return snapshot, nil
}

// deleteStale removes every document not tagged with snapshot.
func (e *Indexer) deleteStale(ctx context.Context, snapshot uuid.UUID) error {
	if _, err := e.client.Indices.Refresh().Index(e.indexName).Do(ctx); err != nil {
		return fmt.Errorf("failed to refresh index: %w", err)
	}

	res, err := e.client.DeleteByQuery(e.indexName).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				MustNot: []types.Query{
					{Term: map[string]types.TermQuery{"snapshot_id": {Value: snapshot.String()}}},
				},
			},
		}).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete stale courses: %w", err)
	}
	if res.Deleted != nil && *res.Deleted > 0 {
		slog.Info("Removed courses missing from the new snapshot", "deleted", *res.Deleted, "index", e.indexName)
	}
	return nil
}

// Load pages through the whole index in course id order.
func (e *Indexer) Load(ctx context.Context) (catalog.Catalog, error) {
	asc := sortorder.Asc
	c := make(catalog.Catalog)
	var after string

	for {
		req := e.client.Search().
			Index(e.indexName).
			Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
			Size(loadPageSize).
			Sort(&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"course_id": {Order: &asc},
				},
			})
		if after != "" {
			req = req.SearchAfter(types.FieldValue(after))
		}

		res, err := req.Do(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to execute search: %w", err)
		}

		for _, hit := range res.Hits.Hits {
			var doc CourseDocument
			if err := json.Unmarshal(hit.Source_, &doc); err != nil {
				return nil, fmt.Errorf("failed to unmarshal document: %w", err)
			}
			entry, err := e.indexBuilder.mapToEntry(doc)
			if err != nil {
				return nil, fmt.Errorf("failed to decode course %s: %w", doc.CourseID, err)
			}
			c[doc.CourseID] = entry
			after = doc.CourseID
		}

		if len(res.Hits.Hits) < loadPageSize {
			break
		}
	}

	slog.Debug("Catalog loaded from index", "index", e.indexName, "courses", len(c))
	return c, nil
}

func (e *Indexer) EnsureIndex(ctx context.Context) error {
	existsRes, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if existsRes {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	settings := e.indexBuilder.buildSettings()
	mappings := e.indexBuilder.buildMapping()

	createRes, err := e.client.Indices.Create(e.indexName).
		Settings(&settings).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}

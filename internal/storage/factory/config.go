package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/course-graph/internal/storage"
	"github.com/DjordjeVuckovic/course-graph/internal/storage/es"
	"github.com/DjordjeVuckovic/course-graph/internal/storage/pg"
	"github.com/DjordjeVuckovic/course-graph/pkg/utils"
)

const defaultOutputPath = "public/data/merged_courses.json"

const defaultBadgerPath = "data/catalog.badger"

type JSONConfig struct {
	Path string
}

type BadgerConfig struct {
	// Path of the database directory; empty keeps it in memory.
	Path string
}

type StorageConfig struct {
	storage.Type
	JSON   *JSONConfig
	Badger *BadgerConfig
	Pg     *pg.PoolConfig
	Es     *es.ClientConfig
}

func LoadEnv() (*StorageConfig, error) {
	storageType := (storage.Type)(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Info("STORAGE_TYPE is not set, using default", "default", storage.JSON)
		storageType = storage.JSON
	}
	supported := []storage.Type{storage.JSON, storage.PG, storage.ES, storage.InMem, storage.Badger}
	if !isSupported(storageType, supported) {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			supported)
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.JSON:
		path := os.Getenv("OUTPUT_PATH")
		if path == "" {
			path = defaultOutputPath
		}
		cfg.JSON = &JSONConfig{Path: path}

	case storage.Badger:
		path, ok := os.LookupEnv("BADGER_PATH")
		if !ok {
			path = defaultBadgerPath
		}
		cfg.Badger = &BadgerConfig{Path: path}

	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitTrimmed(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if n, err := strconv.Atoi(os.Getenv("ES_MAX_RETRIES")); err == nil {
			cfg.Es.MaxRetries = n
		}
		if len(cfg.Es.Addresses) == 0 || cfg.Es.IndexName == "" {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses, "indexName", cfg.Es.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
		}

	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if n, err := strconv.ParseInt(os.Getenv("PG_MAX_CONNS"), 10, 32); err == nil {
			cfg.Pg.MaxConns = int32(n)
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
	}

	return cfg, nil
}

func isSupported(t storage.Type, supported []storage.Type) bool {
	for _, s := range supported {
		if s == t {
			return true
		}
	}
	return false
}

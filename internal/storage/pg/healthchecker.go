package pg

import (
	"context"
	"log/slog"
	"time"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker pings the pool and checks that the catalog schema is migrated.
type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{
		pool: pool,
	}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.pool == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	var exists bool
	err := hc.pool.GetConn().QueryRow(ctx, `SELECT to_regclass('catalog_snapshots') IS NOT NULL`).Scan(&exists)
	if err != nil {
		slog.Debug("PostgreSQL health check failed", "error", err)
		return false
	}

	return exists
}

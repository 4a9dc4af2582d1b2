package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolHealth is one connectivity probe of the underlying pool: the ping
// round-trip plus the pool counters at that moment.
type PoolHealth struct {
	PingMS          int64 `json:"ping_ms"`
	OpenConnections int   `json:"open_connections"`
	InUse           int   `json:"in_use"`
	Idle            int   `json:"idle"`
	WaitCount       int64 `json:"wait_count"`
	MaxOpenConns    int   `json:"max_open_conns"`
}

// Ping probes database connectivity. The returned PoolHealth is valid even
// on error, carrying the failed round-trip time.
func Ping(ctx context.Context, db *sql.DB) (*PoolHealth, error) {
	start := time.Now()
	err := db.PingContext(ctx)
	h := &PoolHealth{PingMS: time.Since(start).Milliseconds()}
	if err != nil {
		return h, err
	}

	stats := db.Stats()
	h.OpenConnections = stats.OpenConnections
	h.InUse = stats.InUse
	h.Idle = stats.Idle
	h.WaitCount = stats.WaitCount
	h.MaxOpenConns = stats.MaxOpenConnections
	return h, nil
}

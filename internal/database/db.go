// Package database provides the PostgreSQL catalog: connection pool, schema
// and the catalog.Source, catalog.Sink and catalog.AlertStore implementation.
package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kosarica/price-comparator/config"
)

// ErrNotConnected is returned by Status before Connect succeeds
var ErrNotConnected = errors.New("database not connected")

var (
	pool   *pgxpool.Pool
	poolMu sync.RWMutex
)

// Connect opens the shared pool. Calling it while connected is a no-op.
func Connect(ctx context.Context, cfg config.DatabaseConfig) error {
	poolMu.Lock()
	defer poolMu.Unlock()
	if pool != nil {
		return nil
	}

	pgCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return fmt.Errorf("error parsing database config: %w", err)
	}
	if cfg.MaxConnections > 0 {
		pgCfg.MaxConns = int32(cfg.MaxConnections)
	}
	pgCfg.MinConns = int32(cfg.MinConnections)
	if cfg.MaxConnLifetime > 0 {
		pgCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		pgCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	pgCfg.HealthCheckPeriod = time.Minute

	p, err := pgxpool.NewWithConfig(ctx, pgCfg)
	if err != nil {
		return fmt.Errorf("error creating connection pool: %w", err)
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return fmt.Errorf("error connecting to database: %w", err)
	}

	pool = p
	return nil
}

// Close closes the shared pool
func Close() {
	poolMu.Lock()
	defer poolMu.Unlock()
	if pool != nil {
		pool.Close()
		pool = nil
	}
}

// Pool returns the shared pool, or nil when not connected
func Pool() *pgxpool.Pool {
	poolMu.RLock()
	defer poolMu.RUnlock()
	return pool
}

// Status pings the database
func Status(ctx context.Context) error {
	p := Pool()
	if p == nil {
		return ErrNotConnected
	}
	return p.Ping(ctx)
}

// Stats returns pool statistics, or nil when not connected
func Stats() *pgxpool.Stat {
	p := Pool()
	if p == nil {
		return nil
	}
	return p.Stat()
}

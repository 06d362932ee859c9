package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements create the catalog tables. Every statement is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS stores (
		name TEXT PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS price_snapshots (
		product_id       TEXT NOT NULL,
		store_name       TEXT NOT NULL REFERENCES stores(name),
		price_date       DATE NOT NULL,
		product_name     TEXT NOT NULL DEFAULT '',
		category         TEXT NOT NULL DEFAULT '',
		brand            TEXT NOT NULL DEFAULT '',
		package_quantity DOUBLE PRECISION NOT NULL CHECK (package_quantity > 0),
		package_unit     TEXT NOT NULL DEFAULT '',
		price            DOUBLE PRECISION NOT NULL CHECK (price >= 0),
		currency         TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (product_id, store_name, price_date)
	)`,
	`CREATE INDEX IF NOT EXISTS price_snapshots_category_idx ON price_snapshots (lower(category))`,
	`CREATE TABLE IF NOT EXISTS discounts (
		id               BIGSERIAL PRIMARY KEY,
		product_id       TEXT NOT NULL,
		store_name       TEXT NOT NULL REFERENCES stores(name),
		product_name     TEXT NOT NULL DEFAULT '',
		brand            TEXT NOT NULL DEFAULT '',
		package_quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
		package_unit     TEXT NOT NULL DEFAULT '',
		category         TEXT NOT NULL DEFAULT '',
		from_date        DATE NOT NULL,
		to_date          DATE NOT NULL,
		percentage       INTEGER NOT NULL CHECK (percentage BETWEEN 0 AND 100),
		CHECK (from_date <= to_date),
		UNIQUE (product_id, store_name, from_date)
	)`,
	`CREATE INDEX IF NOT EXISTS discounts_window_idx ON discounts (from_date, to_date)`,
	`CREATE TABLE IF NOT EXISTS price_alerts (
		id           TEXT PRIMARY KEY,
		product_id   TEXT NOT NULL,
		target_price DOUBLE PRECISION NOT NULL,
		triggered    BOOLEAN NOT NULL DEFAULT false,
		created_at   TIMESTAMPTZ NOT NULL,
		triggered_at TIMESTAMPTZ
	)`,
}

// EnsureSchema creates the catalog tables if they do not exist.
func EnsureSchema(ctx context.Context, p *pgxpool.Pool) error {
	for i, stmt := range schemaStatements {
		if _, err := p.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i, err)
		}
	}
	return nil
}

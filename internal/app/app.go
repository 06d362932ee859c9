// Package app wires configuration into the catalog backend, file storage and
// ingester shared by the server and the CLI.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kosarica/price-comparator/config"
	"github.com/kosarica/price-comparator/internal/catalog"
	"github.com/kosarica/price-comparator/internal/database"
	"github.com/kosarica/price-comparator/internal/ingest"
	"github.com/kosarica/price-comparator/internal/storage"
)

// Catalog is the full read, write and alert surface of a backend
type Catalog interface {
	catalog.Source
	catalog.Sink
	catalog.AlertStore
}

// Backend bundles the catalog and the price file storage
type Backend struct {
	Catalog Catalog
	Storage *storage.LocalStorage
	// Persistent is true when the catalog outlives the process
	Persistent bool

	concurrency int
}

// Open selects the PostgreSQL catalog when a database URL is configured and
// the in-memory catalog otherwise.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	files, err := storage.NewLocalStorage(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}
	b := &Backend{Storage: files, concurrency: cfg.Data.IngestConcurrency}

	if cfg.Database.URL == "" {
		log.Info().Str("data_dir", cfg.Data.Dir).Msg("No database configured, using in-memory catalog")
		b.Catalog = catalog.NewMemoryStore()
		return b, nil
	}

	if err := database.Connect(ctx, cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(ctx, database.Pool()); err != nil {
		database.Close()
		return nil, err
	}
	log.Info().Msg("Database connected")

	b.Catalog = database.NewCatalog(database.Pool())
	b.Persistent = true
	return b, nil
}

// Ingester returns an ingester reading the data directory into the catalog
func (b *Backend) Ingester() *ingest.Ingester {
	return ingest.NewIngester(b.Storage, b.Catalog, b.concurrency)
}

// Close releases the database pool, if any
func (b *Backend) Close() {
	if b.Persistent {
		database.Close()
	}
}

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosarica/price-comparator/config"
)

func TestOpen_InMemory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lidl_2025-05-01.csv"), []byte(
		"product_id;product_name;product_category;brand;package_quantity;package_unit;price;currency\n"+
			"P001;lapte zuzu;lactate;Zuzu;1;l;9.90;RON\n"), 0o644))

	cfg := &config.Config{Data: config.DataConfig{Dir: dir, IngestConcurrency: 2}}
	ctx := context.Background()

	b, err := Open(ctx, cfg)
	require.NoError(t, err)
	defer b.Close()

	assert.False(t, b.Persistent)
	assert.Equal(t, dir, b.Storage.BasePath())

	summary, err := b.Ingester().Run(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SnapshotsInserted)

	snaps, err := b.Catalog.SnapshotsFor(ctx, "P001")
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "lidl", snaps[0].StoreName)
}

func TestOpen_BadDatabaseURL(t *testing.T) {
	cfg := &config.Config{
		Data:     config.DataConfig{Dir: t.TempDir()},
		Database: config.DatabaseConfig{URL: "://not a url", MaxConnections: 1},
	}
	_, err := Open(context.Background(), cfg)
	assert.Error(t, err)
}

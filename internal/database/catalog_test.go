package database

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/kosarica/price-comparator/internal/catalog"
)

// setupTestCatalog starts a PostgreSQL container with the catalog schema.
func setupTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	p, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)
	t.Cleanup(p.Close)

	require.NoError(t, EnsureSchema(ctx, p))
	// Applying twice must be harmless
	require.NoError(t, EnsureSchema(ctx, p))

	return NewCatalog(p)
}

func day(s string) time.Time {
	d, err := catalog.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func snapshot(productID, store, date string, price float64) catalog.PriceSnapshot {
	return catalog.PriceSnapshot{
		ProductID:       productID,
		StoreName:       store,
		PriceDate:       day(date),
		ProductName:     "lapte zuzu " + productID,
		Category:        "lactate",
		Brand:           "Zuzu",
		PackageQuantity: 1,
		PackageUnit:     "l",
		Price:           price,
		Currency:        "RON",
	}
}

func TestCatalog_Integration(t *testing.T) {
	c := setupTestCatalog(t)
	ctx := context.Background()

	t.Run("snapshots", func(t *testing.T) {
		n, err := c.AddSnapshots(ctx, []catalog.PriceSnapshot{
			snapshot("P001", "lidl", "2025-05-01", 9.9),
			snapshot("P001", "profi", "2025-05-01", 9.5),
			snapshot("P001", "lidl", "2025-05-08", 9.7),
			snapshot("P002", "kaufland", "2025-05-01", 4.2),
		})
		require.NoError(t, err)
		assert.Equal(t, 4, n)

		n, err = c.AddSnapshots(ctx, []catalog.PriceSnapshot{snapshot("P001", "lidl", "2025-05-01", 1.0)})
		require.NoError(t, err)
		assert.Equal(t, 0, n, "duplicate identity is ignored")

		snaps, err := c.SnapshotsFor(ctx, "P001")
		require.NoError(t, err)
		require.Len(t, snaps, 3)
		assert.Equal(t, "lidl", snaps[0].StoreName)
		assert.InDelta(t, 9.9, snaps[0].Price, 1e-9)
		assert.Equal(t, "profi", snaps[1].StoreName)
		assert.True(t, snaps[2].PriceDate.Equal(day("2025-05-08")))

		lidl, err := c.StoreSnapshotsFor(ctx, "P001", "lidl")
		require.NoError(t, err)
		assert.Len(t, lidl, 2)

		unknown, err := c.SnapshotsFor(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, unknown)

		stores, err := c.Stores(ctx)
		require.NoError(t, err)
		assert.Equal(t, []catalog.Store{{Name: "kaufland"}, {Name: "lidl"}, {Name: "profi"}}, stores)

		products, err := c.ProductsInCategory(ctx, "LACTATE")
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "P001", products[0].ProductID)
		assert.True(t, products[0].PriceDate.Equal(day("2025-05-08")))
	})

	t.Run("uncategorized products", func(t *testing.T) {
		blank := snapshot("P900", "lidl", "2025-05-01", 3.0)
		blank.Category = ""
		_, err := c.AddSnapshots(ctx, []catalog.PriceSnapshot{blank})
		require.NoError(t, err)

		products, err := c.ProductsInCategory(ctx, "")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "P900", products[0].ProductID)

		all, err := c.Products(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("discounts", func(t *testing.T) {
		d := catalog.Discount{
			ProductID: "P001", StoreName: "mega", FromDate: day("2025-05-01"), ToDate: day("2025-05-07"), Percentage: 20,
		}
		n, err := c.AddDiscounts(ctx, []catalog.Discount{d, d})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		active, err := c.DiscountsActiveOn(ctx, day("2025-05-07"))
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, 20, active[0].Percentage)
		assert.NotZero(t, active[0].ID)

		none, err := c.DiscountsActiveOn(ctx, day("2025-05-08"))
		require.NoError(t, err)
		assert.Empty(t, none)

		upcoming, err := c.DiscountsStartingAfter(ctx, day("2025-04-30"))
		require.NoError(t, err)
		assert.Len(t, upcoming, 1)

		_, err = c.AddDiscounts(ctx, []catalog.Discount{{ProductID: "P1", StoreName: "mega", FromDate: day("2025-05-07"), ToDate: day("2025-05-01")}})
		assert.Error(t, err)
	})

	t.Run("alerts", func(t *testing.T) {
		created := time.Date(2025, 5, 8, 10, 0, 0, 0, time.UTC)
		alert, err := c.CreateAlert(ctx, catalog.PriceAlert{ID: "alt_1", ProductID: "P001", TargetPrice: 9.6, CreatedAt: created})
		require.NoError(t, err)
		assert.False(t, alert.Triggered)
		assert.True(t, alert.CreatedAt.Equal(created))

		active, err := c.ListActiveAlerts(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)

		var wg sync.WaitGroup
		results := make([]catalog.PriceAlert, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				r, err := c.MarkTriggered(ctx, "alt_1", created.Add(time.Duration(i)*time.Minute))
				assert.NoError(t, err)
				results[i] = r
			}(i)
		}
		wg.Wait()

		for _, r := range results {
			assert.True(t, r.Triggered)
			require.NotNil(t, r.TriggeredAt)
			assert.True(t, r.TriggeredAt.Equal(*results[0].TriggeredAt))
		}

		active, err = c.ListActiveAlerts(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)

		_, err = c.MarkTriggered(ctx, "missing", created)
		assert.True(t, errors.Is(err, catalog.ErrAlertNotFound))

		_, err = c.GetAlert(ctx, "missing")
		assert.True(t, errors.Is(err, catalog.ErrAlertNotFound))
	})
}

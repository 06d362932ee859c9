package database

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kosarica/price-comparator/internal/catalog"
)

const (
	tracerName = "github.com/kosarica/price-comparator/internal/database"

	// batchSize bounds the number of statements queued in one pgx.Batch
	batchSize = 1000

	snapshotColumns = `product_id, store_name, price_date, product_name, category, brand,
		package_quantity, package_unit, price, currency`

	discountColumns = `id, product_id, store_name, product_name, brand, package_quantity,
		package_unit, category, from_date, to_date, percentage`
)

// Catalog is the PostgreSQL catalog.Source, catalog.Sink and catalog.AlertStore.
type Catalog struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewCatalog creates a catalog on the given pool. The schema must already exist.
func NewCatalog(p *pgxpool.Pool) *Catalog {
	return &Catalog{
		pool:   p,
		tracer: otel.Tracer(tracerName),
		logger: log.With().Str("component", "pg_catalog").Logger(),
	}
}

func (c *Catalog) span(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := c.tracer.Start(ctx, "catalog."+name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(append(attrs, attribute.String("db.system", "postgresql"))...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// AddSnapshots inserts snapshots in one transaction, creating stores on first
// reference. Existing snapshot identities are left untouched.
func (c *Catalog) AddSnapshots(ctx context.Context, snapshots []catalog.PriceSnapshot) (inserted int, err error) {
	if len(snapshots) == 0 {
		return 0, nil
	}
	ctx, done := c.span(ctx, "AddSnapshots", attribute.Int("rows", len(snapshots)))
	defer func() { done(err) }()

	storeNames := make([]string, 0, len(snapshots))
	for _, s := range snapshots {
		storeNames = append(storeNames, s.StoreName)
	}

	err = pgx.BeginFunc(ctx, c.pool, func(tx pgx.Tx) error {
		if err := ensureStores(ctx, tx, storeNames); err != nil {
			return err
		}
		for start := 0; start < len(snapshots); start += batchSize {
			end := min(start+batchSize, len(snapshots))
			batch := &pgx.Batch{}
			for _, s := range snapshots[start:end] {
				batch.Queue(`
					INSERT INTO price_snapshots (`+snapshotColumns+`)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
					ON CONFLICT (product_id, store_name, price_date) DO NOTHING
				`, s.ProductID, s.StoreName, catalog.DateOf(s.PriceDate), s.ProductName, s.Category,
					s.Brand, s.PackageQuantity, s.PackageUnit, s.Price, s.Currency)
			}
			n, err := execBatch(ctx, tx, batch)
			inserted += n
			if err != nil {
				return fmt.Errorf("failed to insert snapshots: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// AddDiscounts inserts discounts in one transaction, ignoring duplicates of
// (product, store, from date).
func (c *Catalog) AddDiscounts(ctx context.Context, discounts []catalog.Discount) (inserted int, err error) {
	if len(discounts) == 0 {
		return 0, nil
	}
	ctx, done := c.span(ctx, "AddDiscounts", attribute.Int("rows", len(discounts)))
	defer func() { done(err) }()

	storeNames := make([]string, 0, len(discounts))
	for _, d := range discounts {
		if err := d.Validate(); err != nil {
			return 0, err
		}
		storeNames = append(storeNames, d.StoreName)
	}

	err = pgx.BeginFunc(ctx, c.pool, func(tx pgx.Tx) error {
		if err := ensureStores(ctx, tx, storeNames); err != nil {
			return err
		}
		for start := 0; start < len(discounts); start += batchSize {
			end := min(start+batchSize, len(discounts))
			batch := &pgx.Batch{}
			for _, d := range discounts[start:end] {
				batch.Queue(`
					INSERT INTO discounts (product_id, store_name, product_name, brand, package_quantity,
						package_unit, category, from_date, to_date, percentage)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
					ON CONFLICT (product_id, store_name, from_date) DO NOTHING
				`, d.ProductID, d.StoreName, d.ProductName, d.Brand, d.PackageQuantity,
					d.PackageUnit, d.Category, catalog.DateOf(d.FromDate), catalog.DateOf(d.ToDate), d.Percentage)
			}
			n, err := execBatch(ctx, tx, batch)
			inserted += n
			if err != nil {
				return fmt.Errorf("failed to insert discounts: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func ensureStores(ctx context.Context, tx pgx.Tx, names []string) error {
	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0)
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("record is missing a store name")
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}
	sort.Strings(unique)

	_, err := tx.Exec(ctx, `
		INSERT INTO stores (name)
		SELECT unnest($1::text[])
		ON CONFLICT (name) DO NOTHING
	`, unique)
	if err != nil {
		return fmt.Errorf("failed to create stores: %w", err)
	}
	return nil
}

// execBatch sends a batch and returns the total rows affected.
func execBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch) (int, error) {
	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	affected := 0
	for i := 0; i < batch.Len(); i++ {
		tag, err := br.Exec()
		if err != nil {
			return affected, fmt.Errorf("statement %d: %w", i, err)
		}
		affected += int(tag.RowsAffected())
	}
	return affected, nil
}

func (c *Catalog) SnapshotsFor(ctx context.Context, productID string) (snapshots []catalog.PriceSnapshot, err error) {
	ctx, done := c.span(ctx, "SnapshotsFor", attribute.String("product_id", productID))
	defer func() { done(err) }()

	return c.querySnapshots(ctx, `
		SELECT `+snapshotColumns+`
		FROM price_snapshots
		WHERE product_id = $1
		ORDER BY price_date, store_name
	`, productID)
}

func (c *Catalog) StoreSnapshotsFor(ctx context.Context, productID, storeName string) (snapshots []catalog.PriceSnapshot, err error) {
	ctx, done := c.span(ctx, "StoreSnapshotsFor",
		attribute.String("product_id", productID), attribute.String("store", storeName))
	defer func() { done(err) }()

	return c.querySnapshots(ctx, `
		SELECT `+snapshotColumns+`
		FROM price_snapshots
		WHERE product_id = $1 AND store_name = $2
		ORDER BY price_date
	`, productID, storeName)
}

func (c *Catalog) Stores(ctx context.Context) (stores []catalog.Store, err error) {
	ctx, done := c.span(ctx, "Stores")
	defer func() { done(err) }()

	rows, err := c.pool.Query(ctx, `SELECT name FROM stores ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stores: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan stores: %w", err)
	}

	stores = make([]catalog.Store, 0, len(names))
	for _, name := range names {
		stores = append(stores, catalog.Store{Name: name})
	}
	return stores, nil
}

// Products returns the latest snapshot per product id. Ties on date resolve to
// the alphabetically first store.
func (c *Catalog) Products(ctx context.Context) (products []catalog.PriceSnapshot, err error) {
	ctx, done := c.span(ctx, "Products")
	defer func() { done(err) }()

	return c.querySnapshots(ctx, `
		SELECT DISTINCT ON (product_id) `+snapshotColumns+`
		FROM price_snapshots
		ORDER BY product_id, price_date DESC, store_name
	`)
}

// ProductsInCategory matches the category exactly up to case, so an empty
// category selects only uncategorized products.
func (c *Catalog) ProductsInCategory(ctx context.Context, category string) (products []catalog.PriceSnapshot, err error) {
	ctx, done := c.span(ctx, "ProductsInCategory", attribute.String("category", category))
	defer func() { done(err) }()

	return c.querySnapshots(ctx, `
		SELECT DISTINCT ON (product_id) `+snapshotColumns+`
		FROM price_snapshots
		WHERE lower(category) = lower($1)
		ORDER BY product_id, price_date DESC, store_name
	`, category)
}

func (c *Catalog) DiscountsActiveOn(ctx context.Context, date time.Time) (discounts []catalog.Discount, err error) {
	day := catalog.DateOf(date)
	ctx, done := c.span(ctx, "DiscountsActiveOn", attribute.String("date", day.Format(catalog.DateLayout)))
	defer func() { done(err) }()

	return c.queryDiscounts(ctx, `
		SELECT `+discountColumns+`
		FROM discounts
		WHERE from_date <= $1 AND to_date >= $1
		ORDER BY product_id, store_name, from_date
	`, day)
}

func (c *Catalog) DiscountsStartingAfter(ctx context.Context, date time.Time) (discounts []catalog.Discount, err error) {
	day := catalog.DateOf(date)
	ctx, done := c.span(ctx, "DiscountsStartingAfter", attribute.String("date", day.Format(catalog.DateLayout)))
	defer func() { done(err) }()

	return c.queryDiscounts(ctx, `
		SELECT `+discountColumns+`
		FROM discounts
		WHERE from_date > $1
		ORDER BY product_id, store_name, from_date
	`, day)
}

func (c *Catalog) querySnapshots(ctx context.Context, query string, args ...any) ([]catalog.PriceSnapshot, error) {
	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	snapshots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.PriceSnapshot, error) {
		var s catalog.PriceSnapshot
		err := row.Scan(&s.ProductID, &s.StoreName, &s.PriceDate, &s.ProductName, &s.Category,
			&s.Brand, &s.PackageQuantity, &s.PackageUnit, &s.Price, &s.Currency)
		s.PriceDate = catalog.DateOf(s.PriceDate)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan snapshots: %w", err)
	}
	return snapshots, nil
}

func (c *Catalog) queryDiscounts(ctx context.Context, query string, args ...any) ([]catalog.Discount, error) {
	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query discounts: %w", err)
	}
	discounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.Discount, error) {
		var d catalog.Discount
		err := row.Scan(&d.ID, &d.ProductID, &d.StoreName, &d.ProductName, &d.Brand, &d.PackageQuantity,
			&d.PackageUnit, &d.Category, &d.FromDate, &d.ToDate, &d.Percentage)
		d.FromDate = catalog.DateOf(d.FromDate)
		d.ToDate = catalog.DateOf(d.ToDate)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan discounts: %w", err)
	}
	return discounts, nil
}

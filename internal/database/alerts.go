package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kosarica/price-comparator/internal/catalog"
)

const alertColumns = `id, product_id, target_price, triggered, created_at, triggered_at`

func (c *Catalog) CreateAlert(ctx context.Context, alert catalog.PriceAlert) (created catalog.PriceAlert, err error) {
	ctx, done := c.span(ctx, "CreateAlert", attribute.String("alert_id", alert.ID))
	defer func() { done(err) }()

	row := c.pool.QueryRow(ctx, `
		INSERT INTO price_alerts (`+alertColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+alertColumns,
		alert.ID, alert.ProductID, alert.TargetPrice, alert.Triggered, alert.CreatedAt.UTC(), alert.TriggeredAt)
	created, err = scanAlert(row)
	if err != nil {
		return catalog.PriceAlert{}, fmt.Errorf("failed to insert alert: %w", err)
	}
	return created, nil
}

func (c *Catalog) GetAlert(ctx context.Context, id string) (alert catalog.PriceAlert, err error) {
	ctx, done := c.span(ctx, "GetAlert", attribute.String("alert_id", id))
	defer func() { done(err) }()

	alert, err = scanAlert(c.pool.QueryRow(ctx, `SELECT `+alertColumns+` FROM price_alerts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.PriceAlert{}, catalog.ErrAlertNotFound
	}
	if err != nil {
		return catalog.PriceAlert{}, fmt.Errorf("failed to query alert: %w", err)
	}
	return alert, nil
}

func (c *Catalog) ListActiveAlerts(ctx context.Context) (alerts []catalog.PriceAlert, err error) {
	ctx, done := c.span(ctx, "ListActiveAlerts")
	defer func() { done(err) }()

	rows, err := c.pool.Query(ctx, `
		SELECT `+alertColumns+`
		FROM price_alerts
		WHERE NOT triggered
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	alerts, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.PriceAlert, error) {
		return scanAlert(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan alerts: %w", err)
	}
	return alerts, nil
}

// MarkTriggered flips the alert in a single statement. triggered_at keeps its
// first value, so concurrent or repeated calls converge on the same state.
func (c *Catalog) MarkTriggered(ctx context.Context, id string, at time.Time) (alert catalog.PriceAlert, err error) {
	ctx, done := c.span(ctx, "MarkTriggered", attribute.String("alert_id", id))
	defer func() { done(err) }()

	alert, err = scanAlert(c.pool.QueryRow(ctx, `
		UPDATE price_alerts
		SET triggered = true, triggered_at = COALESCE(triggered_at, $2)
		WHERE id = $1
		RETURNING `+alertColumns,
		id, at.UTC()))
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.PriceAlert{}, catalog.ErrAlertNotFound
	}
	if err != nil {
		return catalog.PriceAlert{}, fmt.Errorf("failed to trigger alert: %w", err)
	}
	return alert, nil
}

func scanAlert(row pgx.Row) (catalog.PriceAlert, error) {
	var a catalog.PriceAlert
	if err := row.Scan(&a.ID, &a.ProductID, &a.TargetPrice, &a.Triggered, &a.CreatedAt, &a.TriggeredAt); err != nil {
		return catalog.PriceAlert{}, err
	}
	a.CreatedAt = a.CreatedAt.UTC()
	if a.TriggeredAt != nil {
		t := a.TriggeredAt.UTC()
		a.TriggeredAt = &t
	}
	return a, nil
}

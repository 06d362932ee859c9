package catalog

import (
	"context"
	"errors"
	"time"
)

// ErrAlertNotFound is returned when an alert id does not exist.
var ErrAlertNotFound = errors.New("price alert not found")

// Source defines read access to price snapshots and discounts.
// This allows the analysis engine to be decoupled from the storage implementation.
// Unknown ids yield empty results, never an error.
type Source interface {
	// SnapshotsFor returns every snapshot of a product across all stores and dates.
	SnapshotsFor(ctx context.Context, productID string) ([]PriceSnapshot, error)

	// StoreSnapshotsFor returns the snapshots of a product at one store, ordered by date ascending.
	StoreSnapshotsFor(ctx context.Context, productID, storeName string) ([]PriceSnapshot, error)

	// Stores returns all known stores.
	Stores(ctx context.Context) ([]Store, error)

	// Products returns one representative snapshot (the latest) per distinct product id.
	Products(ctx context.Context) ([]PriceSnapshot, error)

	// ProductsInCategory returns one representative snapshot per distinct product id
	// whose category matches case-insensitively. An empty category matches only
	// products without one.
	ProductsInCategory(ctx context.Context, category string) ([]PriceSnapshot, error)

	// DiscountsActiveOn returns discounts with FromDate <= date <= ToDate.
	DiscountsActiveOn(ctx context.Context, date time.Time) ([]Discount, error)

	// DiscountsStartingAfter returns discounts with FromDate strictly after date.
	DiscountsStartingAfter(ctx context.Context, date time.Time) ([]Discount, error)
}

// Sink receives ingested records. Stores referenced by records are created lazily.
type Sink interface {
	AddSnapshots(ctx context.Context, snapshots []PriceSnapshot) (int, error)
	AddDiscounts(ctx context.Context, discounts []Discount) (int, error)
}

// AlertStore persists price alerts. MarkTriggered is the only mutation of an
// existing alert and must be atomic per alert id.
type AlertStore interface {
	CreateAlert(ctx context.Context, alert PriceAlert) (PriceAlert, error)
	GetAlert(ctx context.Context, id string) (PriceAlert, error)
	ListActiveAlerts(ctx context.Context) ([]PriceAlert, error)

	// MarkTriggered flips the alert to triggered and returns its new state.
	// Calling it on an already triggered alert leaves it unchanged.
	MarkTriggered(ctx context.Context, id string, at time.Time) (PriceAlert, error)
}

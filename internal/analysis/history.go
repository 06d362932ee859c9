package analysis

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kosarica/price-comparator/internal/catalog"
)

// PriceHistory returns every snapshot of a product ordered by date, then store.
// A non-empty storeName restricts the history to that store; an unknown store
// yields an empty list.
func (a *Analyzer) PriceHistory(ctx context.Context, productID, storeName string) (history []catalog.PriceSnapshot, err error) {
	ctx, done := a.observe(ctx, "price_history",
		attribute.String("product_id", productID),
		attribute.String("store", storeName))
	defer func() { done(err) }()

	if storeName == "" {
		history, err = a.source.SnapshotsFor(ctx, productID)
	} else {
		history, err = a.source.StoreSnapshotsFor(ctx, productID, storeName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load price history for %s: %w", productID, err)
	}

	sort.SliceStable(history, func(i, j int) bool {
		di, dj := catalog.DateOf(history[i].PriceDate), catalog.DateOf(history[j].PriceDate)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return history[i].StoreName < history[j].StoreName
	})
	return history, nil
}

// CheckBelowTarget reports whether the product's cheapest current price is at
// or below target. Products without offers never satisfy a target.
func (a *Analyzer) CheckBelowTarget(ctx context.Context, productID string, target float64) (below bool, err error) {
	ctx, done := a.observe(ctx, "check_below_target", attribute.String("product_id", productID))
	defer func() { done(err) }()

	offers, err := a.compare(ctx, productID, anyDate)
	if err != nil {
		return false, err
	}
	offer, ok := cheapestOffer(offers)
	if !ok {
		return false, nil
	}
	return offer.Price <= target, nil
}

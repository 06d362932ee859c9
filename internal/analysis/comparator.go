package analysis

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kosarica/price-comparator/internal/catalog"
)

// anyDate disables the as-of cutoff.
var anyDate time.Time

// Offer is the current price of a product at one store.
type Offer struct {
	StoreName string                `json:"storeName"`
	Price     float64               `json:"price"`
	Currency  string                `json:"currency"`
	Snapshot  catalog.PriceSnapshot `json:"snapshot"`
}

// CompareCurrentPrices returns one offer per store carrying the product, taken
// from that store's latest snapshot, ordered by price ascending. Equal prices
// are ordered by store name. Unknown products yield an empty list.
func (a *Analyzer) CompareCurrentPrices(ctx context.Context, productID string) (offers []Offer, err error) {
	ctx, done := a.observe(ctx, "compare_current_prices", attribute.String("product_id", productID))
	defer func() { done(err) }()

	return a.compare(ctx, productID, anyDate)
}

// ComparePricesAsOf is CompareCurrentPrices restricted to snapshots dated on
// or before asOf.
func (a *Analyzer) ComparePricesAsOf(ctx context.Context, productID string, asOf time.Time) (offers []Offer, err error) {
	ctx, done := a.observe(ctx, "compare_prices_as_of",
		attribute.String("product_id", productID),
		attribute.String("as_of", asOf.Format(catalog.DateLayout)))
	defer func() { done(err) }()

	return a.compare(ctx, productID, asOf)
}

func (a *Analyzer) compare(ctx context.Context, productID string, asOf time.Time) ([]Offer, error) {
	snapshots, err := a.source.SnapshotsFor(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshots for %s: %w", productID, err)
	}
	return latestOffers(snapshots, asOf), nil
}

// latestOffers picks the latest snapshot per store and ranks them by price.
// A zero asOf considers every snapshot.
func latestOffers(snapshots []catalog.PriceSnapshot, asOf time.Time) []Offer {
	var cutoff time.Time
	if !asOf.IsZero() {
		cutoff = catalog.DateOf(asOf)
	}

	latest := make(map[string]catalog.PriceSnapshot)
	for _, s := range snapshots {
		date := catalog.DateOf(s.PriceDate)
		if !cutoff.IsZero() && date.After(cutoff) {
			continue
		}
		current, ok := latest[s.StoreName]
		if !ok || date.After(catalog.DateOf(current.PriceDate)) {
			latest[s.StoreName] = s
		}
	}

	offers := make([]Offer, 0, len(latest))
	for store, s := range latest {
		offers = append(offers, Offer{
			StoreName: store,
			Price:     s.Price,
			Currency:  s.Currency,
			Snapshot:  s,
		})
	}

	sort.Slice(offers, func(i, j int) bool {
		if offers[i].Price != offers[j].Price {
			return offers[i].Price < offers[j].Price
		}
		return offers[i].StoreName < offers[j].StoreName
	})
	return offers
}

// cheapestOffer returns the first offer of a ranked list.
func cheapestOffer(offers []Offer) (Offer, bool) {
	if len(offers) == 0 {
		return Offer{}, false
	}
	return offers[0], true
}

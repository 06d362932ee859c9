package analysis

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel/attribute"
)

// Allocation assigns each requested product to the store with its lowest current price.
type Allocation struct {
	Stores    map[string][]Offer `json:"stores"`
	TotalCost float64            `json:"totalCost"`
}

// StoreNames returns the stores used by the allocation in name order.
func (al *Allocation) StoreNames() []string {
	names := make([]string, 0, len(al.Stores))
	for name := range al.Stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ItemCount returns the number of allocated items across all stores.
func (al *Allocation) ItemCount() int {
	n := 0
	for _, offers := range al.Stores {
		n += len(offers)
	}
	return n
}

// Allocate walks productIDs in order and appends each product's cheapest offer
// to that store's list. Duplicates are allocated independently. Products with
// no offer are skipped. Each item is placed on its own, without weighing store
// consolidation or cross-item discounts.
func (a *Analyzer) Allocate(ctx context.Context, productIDs []string) (allocation *Allocation, err error) {
	ctx, done := a.observe(ctx, "allocate", attribute.Int("items", len(productIDs)))
	defer func() { done(err) }()

	allocation = &Allocation{Stores: make(map[string][]Offer)}

	// Fetch each distinct product once.
	cheapest := make(map[string]*Offer, len(productIDs))
	unallocated := 0

	for _, productID := range productIDs {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		offer, fetched := cheapest[productID]
		if !fetched {
			offers, err := a.compare(ctx, productID, anyDate)
			if err != nil {
				return nil, err
			}
			if o, ok := cheapestOffer(offers); ok {
				offer = &o
			}
			cheapest[productID] = offer
		}

		if offer == nil {
			unallocated++
			a.logger.Debug().Str("product_id", productID).Msg("No offer for basket item, skipping")
			continue
		}

		allocation.Stores[offer.StoreName] = append(allocation.Stores[offer.StoreName], *offer)
		allocation.TotalCost += offer.Price
	}

	a.metrics.RecordBasket(len(productIDs), unallocated, len(allocation.Stores))
	return allocation, nil
}

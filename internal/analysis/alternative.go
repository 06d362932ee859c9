package analysis

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"
)

// unitPriceTolerance keeps equal prices from registering as cheaper through floating point noise.
const unitPriceTolerance = 1e-6

// Alternative is a same-category product with a lower unit price than a reference product.
type Alternative struct {
	ProductID          string  `json:"productId"`
	ProductName        string  `json:"productName"`
	Category           string  `json:"category"`
	Offer              Offer   `json:"offer"`
	UnitPrice          float64 `json:"unitPrice"`
	Unit               string  `json:"unit"`
	ReferenceUnitPrice float64 `json:"referenceUnitPrice"`
}

// BestValueAlternative finds the product in the reference product's category
// whose cheapest current offer has the lowest unit price, provided it beats the
// reference by more than the tolerance. It returns nil when the product is
// unknown, has no comparable unit price, or is already the best value.
// Candidates tying at the minimum resolve to the lowest product id.
func (a *Analyzer) BestValueAlternative(ctx context.Context, productID string) (alt *Alternative, err error) {
	ctx, done := a.observe(ctx, "best_value_alternative", attribute.String("product_id", productID))
	defer func() { done(err) }()

	refOffers, err := a.compare(ctx, productID, anyDate)
	if err != nil {
		return nil, err
	}
	ref, ok := cheapestOffer(refOffers)
	if !ok {
		return nil, nil
	}

	refUnitPrice, err := offerUnitPrice(ref)
	if err != nil {
		a.metrics.RecordUnitPriceRejected()
		a.logger.Debug().Err(err).Str("product_id", productID).Msg("Reference product has no comparable unit price")
		return nil, nil
	}

	category := ref.Snapshot.Category
	candidates, err := a.source.ProductsInCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to load products in category %q: %w", category, err)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ProductID < candidates[j].ProductID })

	bestUnitPrice := refUnitPrice
	seen := make(map[string]bool, len(candidates))
	for _, candidate := range candidates {
		if candidate.ProductID == productID || seen[candidate.ProductID] {
			continue
		}
		seen[candidate.ProductID] = true

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		offers, err := a.compare(ctx, candidate.ProductID, anyDate)
		if err != nil {
			return nil, err
		}
		offer, ok := cheapestOffer(offers)
		if !ok {
			continue
		}

		unitPrice, err := offerUnitPrice(offer)
		if err != nil {
			if errors.Is(err, ErrInvalidQuantity) {
				a.metrics.RecordUnitPriceRejected()
				continue
			}
			return nil, err
		}

		// Strict comparison keeps the first candidate in id order on ties.
		if unitPrice < bestUnitPrice-unitPriceTolerance {
			_, unit := NormalizeQuantity(offer.Snapshot.PackageQuantity, offer.Snapshot.PackageUnit)
			bestUnitPrice = unitPrice
			alt = &Alternative{
				ProductID:          candidate.ProductID,
				ProductName:        offer.Snapshot.ProductName,
				Category:           offer.Snapshot.Category,
				Offer:              offer,
				UnitPrice:          unitPrice,
				Unit:               unit,
				ReferenceUnitPrice: refUnitPrice,
			}
		}
	}

	return alt, nil
}

func offerUnitPrice(o Offer) (float64, error) {
	return UnitPrice(o.Price, o.Snapshot.PackageQuantity, o.Snapshot.PackageUnit)
}

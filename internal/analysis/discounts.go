package analysis

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kosarica/price-comparator/internal/catalog"
)

// ActiveDiscounts returns the discounts whose window contains asOf, ordered by
// product id, store name and start date.
func (a *Analyzer) ActiveDiscounts(ctx context.Context, asOf time.Time) (discounts []catalog.Discount, err error) {
	ctx, done := a.observe(ctx, "active_discounts", attribute.String("as_of", asOf.Format(catalog.DateLayout)))
	defer func() { done(err) }()

	discounts, err = a.activeDiscounts(ctx, asOf)
	if err != nil {
		return nil, err
	}
	sortDiscountsByKey(discounts)
	return discounts, nil
}

// BestDiscounts returns at most topN active discounts ordered by percentage
// descending. Equal percentages are ordered by product id, store name and start
// date. A topN of zero or less yields an empty list.
func (a *Analyzer) BestDiscounts(ctx context.Context, asOf time.Time, topN int) (discounts []catalog.Discount, err error) {
	ctx, done := a.observe(ctx, "best_discounts",
		attribute.String("as_of", asOf.Format(catalog.DateLayout)),
		attribute.Int("top_n", topN))
	defer func() { done(err) }()

	if topN <= 0 {
		if topN < 0 {
			a.logger.Debug().Int("top_n", topN).Msg("Negative topN treated as zero")
		}
		return []catalog.Discount{}, nil
	}

	discounts, err = a.activeDiscounts(ctx, asOf)
	if err != nil {
		return nil, err
	}

	sort.Slice(discounts, func(i, j int) bool {
		if discounts[i].Percentage != discounts[j].Percentage {
			return discounts[i].Percentage > discounts[j].Percentage
		}
		return discountKeyLess(discounts[i], discounts[j])
	})

	if len(discounts) > topN {
		discounts = discounts[:topN]
	}
	return discounts, nil
}

// NewDiscounts returns discounts whose window opened within the trailing day,
// i.e. asOf-1day < FromDate <= asOf at calendar-date granularity.
func (a *Analyzer) NewDiscounts(ctx context.Context, asOf time.Time) (discounts []catalog.Discount, err error) {
	ctx, done := a.observe(ctx, "new_discounts", attribute.String("as_of", asOf.Format(catalog.DateLayout)))
	defer func() { done(err) }()

	today := catalog.DateOf(asOf)
	yesterday := today.AddDate(0, 0, -1)

	candidates, err := a.source.DiscountsStartingAfter(ctx, yesterday)
	if err != nil {
		return nil, fmt.Errorf("failed to load discounts starting after %s: %w", yesterday.Format(catalog.DateLayout), err)
	}

	discounts = make([]catalog.Discount, 0, len(candidates))
	for _, d := range candidates {
		from := catalog.DateOf(d.FromDate)
		if !from.After(yesterday) || from.After(today) {
			continue
		}
		discounts = append(discounts, d)
	}
	sortDiscountsByKey(discounts)
	return discounts, nil
}

func (a *Analyzer) activeDiscounts(ctx context.Context, asOf time.Time) ([]catalog.Discount, error) {
	candidates, err := a.source.DiscountsActiveOn(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to load discounts active on %s: %w", asOf.Format(catalog.DateLayout), err)
	}

	// Re-check the window so a loose source cannot leak expired discounts.
	active := make([]catalog.Discount, 0, len(candidates))
	for _, d := range candidates {
		if d.ActiveOn(asOf) {
			active = append(active, d)
		}
	}
	return active, nil
}

func sortDiscountsByKey(discounts []catalog.Discount) {
	sort.Slice(discounts, func(i, j int) bool {
		return discountKeyLess(discounts[i], discounts[j])
	})
}

func discountKeyLess(a, b catalog.Discount) bool {
	if a.ProductID != b.ProductID {
		return a.ProductID < b.ProductID
	}
	if a.StoreName != b.StoreName {
		return a.StoreName < b.StoreName
	}
	return a.FromDate.Before(b.FromDate)
}

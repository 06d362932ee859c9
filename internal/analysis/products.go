package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kosarica/price-comparator/internal/catalog"
	"github.com/kosarica/price-comparator/internal/matching"
)

// ProductsByCategory lists one representative snapshot per product in the
// category, matched case-insensitively, ordered by product name then id.
// An empty category lists every product.
func (a *Analyzer) ProductsByCategory(ctx context.Context, category string) (products []catalog.PriceSnapshot, err error) {
	ctx, done := a.observe(ctx, "products_by_category", attribute.String("category", category))
	defer func() { done(err) }()

	if category == "" {
		products, err = a.source.Products(ctx)
	} else {
		products, err = a.source.ProductsInCategory(ctx, category)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	sortProductsByName(products)
	return products, nil
}

// SearchProducts lists products whose name contains namePart, ignoring case
// and diacritics.
func (a *Analyzer) SearchProducts(ctx context.Context, namePart string) (products []catalog.PriceSnapshot, err error) {
	ctx, done := a.observe(ctx, "search_products", attribute.String("query", namePart))
	defer func() { done(err) }()

	all, err := a.source.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	products = make([]catalog.PriceSnapshot, 0)
	for _, p := range all {
		if matching.ContainsFold(p.ProductName, namePart) {
			products = append(products, p)
		}
	}
	sortProductsByName(products)
	return products, nil
}

// ProductDetails returns all snapshots of a product across stores and dates.
func (a *Analyzer) ProductDetails(ctx context.Context, productID string) ([]catalog.PriceSnapshot, error) {
	return a.PriceHistory(ctx, productID, "")
}

func sortProductsByName(products []catalog.PriceSnapshot) {
	sort.Slice(products, func(i, j int) bool {
		ni, nj := strings.ToLower(products[i].ProductName), strings.ToLower(products[j].ProductName)
		if ni != nj {
			return ni < nj
		}
		return products[i].ProductID < products[j].ProductID
	})
}

package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosarica/price-comparator/internal/catalog"
)

func named(productID, name, category, store, day string) catalog.PriceSnapshot {
	s := snap(productID, store, day, 1)
	s.ProductName = name
	s.Category = category
	return s
}

func productIDs(products []catalog.PriceSnapshot) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ProductID)
	}
	return ids
}

func newProductAnalyzer(t *testing.T) *Analyzer {
	a, _ := newTestAnalyzer(t, []catalog.PriceSnapshot{
		named("P1", "Lapte Zuzu", "lactate", "lidl", "2025-05-01"),
		named("P1", "Lapte Zuzu", "lactate", "profi", "2025-05-02"),
		named("P2", "Brânză telemea", "Lactate", "lidl", "2025-05-01"),
		named("P3", "Pâine albă", "panificatie", "lidl", "2025-05-01"),
		named("P4", "apă minerală", "bauturi", "lidl", "2025-05-01"),
	}, nil)
	return a
}

func TestProductsByCategory(t *testing.T) {
	a := newProductAnalyzer(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		category string
		expected []string
	}{
		{"case insensitive", "LACTATE", []string{"P2", "P1"}},
		{"single", "panificatie", []string{"P3"}},
		{"all sorted by name", "", []string{"P4", "P2", "P1", "P3"}},
		{"unknown", "carne", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.ProductsByCategory(ctx, tt.category)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, productIDs(got))
		})
	}
}

func TestSearchProducts(t *testing.T) {
	a := newProductAnalyzer(t)
	ctx := context.Background()

	tests := []struct {
		query    string
		expected []string
	}{
		{"zuzu", []string{"P1"}},
		{"BRANZA", []string{"P2"}},
		{"pâine", []string{"P3"}},
		{"a", []string{"P4", "P2", "P1", "P3"}},
		{"cafea", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := a.SearchProducts(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, productIDs(got))
		})
	}
}

func TestPriceHistory(t *testing.T) {
	a, _ := newTestAnalyzer(t, []catalog.PriceSnapshot{
		snap("P1", "StoreA", "2025-05-08", 7.5),
		snap("P1", "StoreA", "2025-05-01", 10.0),
		snap("P1", "StoreB", "2025-05-01", 8.0),
	}, nil)
	ctx := context.Background()

	all, err := a.PriceHistory(ctx, "P1", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "StoreA", all[0].StoreName)
	assert.Equal(t, "StoreB", all[1].StoreName)
	assert.Equal(t, 7.5, all[2].Price)

	storeA, err := a.PriceHistory(ctx, "P1", "StoreA")
	require.NoError(t, err)
	require.Len(t, storeA, 2)
	assert.True(t, storeA[0].PriceDate.Before(storeA[1].PriceDate))

	none, err := a.PriceHistory(ctx, "P1", "StoreZ")
	require.NoError(t, err)
	assert.Empty(t, none)

	details, err := a.ProductDetails(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, all, details)
}

package analysis

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosarica/price-comparator/internal/catalog"
)

func storesAndPrices(offers []Offer) ([]string, []float64) {
	stores := make([]string, 0, len(offers))
	prices := make([]float64, 0, len(offers))
	for _, o := range offers {
		stores = append(stores, o.StoreName)
		prices = append(prices, o.Price)
	}
	return stores, prices
}

func TestCompareCurrentPrices_LatestSnapshotPerStore(t *testing.T) {
	a, _ := newTestAnalyzer(t, []catalog.PriceSnapshot{
		snap("P1", "StoreA", "2025-05-01", 10.0),
		snap("P1", "StoreB", "2025-05-01", 8.0),
		snap("P1", "StoreA", "2025-05-08", 7.5),
	}, nil)

	offers, err := a.CompareCurrentPrices(context.Background(), "P1")
	require.NoError(t, err)

	stores, prices := storesAndPrices(offers)
	assert.Equal(t, []string{"StoreA", "StoreB"}, stores)
	assert.Equal(t, []float64{7.5, 8.0}, prices)
	assert.Equal(t, date("2025-05-08"), offers[0].Snapshot.PriceDate)
	assert.Equal(t, "RON", offers[0].Currency)
}

func TestCompareCurrentPrices_TiesOrderedByStoreName(t *testing.T) {
	a, _ := newTestAnalyzer(t, []catalog.PriceSnapshot{
		snap("P1", "profi", "2025-05-01", 5.0),
		snap("P1", "auchan", "2025-05-01", 5.0),
		snap("P1", "lidl", "2025-05-01", 4.0),
		snap("P1", "carrefour", "2025-05-01", 5.0),
	}, nil)

	for i := 0; i < 10; i++ {
		offers, err := a.CompareCurrentPrices(context.Background(), "P1")
		require.NoError(t, err)
		stores, _ := storesAndPrices(offers)
		assert.Equal(t, []string{"lidl", "auchan", "carrefour", "profi"}, stores)
	}
}

func TestCompareCurrentPrices_OneEntryPerStoreSorted(t *testing.T) {
	snapshots := []catalog.PriceSnapshot{
		snap("P9", "a", "2025-04-01", 3.2),
		snap("P9", "a", "2025-04-02", 3.1),
		snap("P9", "b", "2025-04-01", 9.9),
		snap("P9", "c", "2025-03-01", 1.0),
		snap("P9", "c", "2025-04-05", 6.0),
		snap("P9", "d", "2025-04-03", 0.0),
		snap("P8", "e", "2025-04-03", 0.5),
	}
	a, _ := newTestAnalyzer(t, snapshots, nil)

	offers, err := a.CompareCurrentPrices(context.Background(), "P9")
	require.NoError(t, err)
	require.Len(t, offers, 4)

	_, prices := storesAndPrices(offers)
	assert.True(t, sort.Float64sAreSorted(prices))
	assert.Equal(t, []float64{0.0, 3.1, 6.0, 9.9}, prices)
}

func TestCompareCurrentPrices_UnknownProduct(t *testing.T) {
	a, _ := newTestAnalyzer(t, []catalog.PriceSnapshot{snap("P1", "lidl", "2025-05-01", 1)}, nil)

	offers, err := a.CompareCurrentPrices(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestComparePricesAsOf(t *testing.T) {
	a, _ := newTestAnalyzer(t, []catalog.PriceSnapshot{
		snap("P1", "StoreA", "2025-05-01", 10.0),
		snap("P1", "StoreB", "2025-05-01", 8.0),
		snap("P1", "StoreA", "2025-05-08", 7.5),
		snap("P1", "StoreC", "2025-05-09", 1.0),
	}, nil)

	tests := []struct {
		name     string
		asOf     string
		expected []string
		prices   []float64
	}{
		{"before any snapshot", "2025-04-30", []string{}, []float64{}},
		{"first week", "2025-05-05", []string{"StoreB", "StoreA"}, []float64{8.0, 10.0}},
		{"on update day", "2025-05-08", []string{"StoreA", "StoreB"}, []float64{7.5, 8.0}},
		{"after all", "2025-06-01", []string{"StoreC", "StoreA", "StoreB"}, []float64{1.0, 7.5, 8.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offers, err := a.ComparePricesAsOf(context.Background(), "P1", date(tt.asOf))
			require.NoError(t, err)
			stores, prices := storesAndPrices(offers)
			assert.Equal(t, tt.expected, stores)
			assert.Equal(t, tt.prices, prices)
		})
	}
}

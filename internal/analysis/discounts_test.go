package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosarica/price-comparator/internal/catalog"
)

func disc(productID, store, from, to string, pct int) catalog.Discount {
	return catalog.Discount{
		ProductID:  productID,
		StoreName:  store,
		FromDate:   date(from),
		ToDate:     date(to),
		Percentage: pct,
	}
}

func discountIDs(discounts []catalog.Discount) []string {
	ids := make([]string, 0, len(discounts))
	for _, d := range discounts {
		ids = append(ids, d.ProductID+"@"+d.StoreName)
	}
	return ids
}

func TestActiveDiscounts_Window(t *testing.T) {
	a, _ := newTestAnalyzer(t, nil, []catalog.Discount{
		disc("P1", "StoreA", "2025-05-01", "2025-05-10", 20),
	})
	ctx := context.Background()

	active, err := a.ActiveDiscounts(ctx, date("2025-05-05"))
	require.NoError(t, err)
	assert.Equal(t, []string{"P1@StoreA"}, discountIDs(active))

	active, err = a.ActiveDiscounts(ctx, date("2025-05-15"))
	require.NoError(t, err)
	assert.Empty(t, active)

	for _, boundary := range []string{"2025-05-01", "2025-05-10"} {
		active, err = a.ActiveDiscounts(ctx, date(boundary))
		require.NoError(t, err)
		assert.Len(t, active, 1, "window is inclusive on %s", boundary)
	}
}

func TestBestDiscounts(t *testing.T) {
	a, _ := newTestAnalyzer(t, nil, []catalog.Discount{
		disc("P3", "lidl", "2025-05-01", "2025-05-10", 15),
		disc("P1", "profi", "2025-05-01", "2025-05-10", 30),
		disc("P2", "lidl", "2025-05-01", "2025-05-10", 30),
		disc("P1", "auchan", "2025-05-01", "2025-05-10", 30),
		disc("P4", "lidl", "2025-05-01", "2025-05-10", 50),
		disc("P5", "lidl", "2025-04-01", "2025-04-10", 90),
	})
	ctx := context.Background()
	asOf := date("2025-05-05")

	tests := []struct {
		name     string
		topN     int
		expected []string
	}{
		{"top 1", 1, []string{"P4@lidl"}},
		{"ties by product then store", 4, []string{"P4@lidl", "P1@auchan", "P1@profi", "P2@lidl"}},
		{"more than available", 10, []string{"P4@lidl", "P1@auchan", "P1@profi", "P2@lidl", "P3@lidl"}},
		{"zero", 0, []string{}},
		{"negative treated as zero", -3, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.BestDiscounts(ctx, asOf, tt.topN)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, discountIDs(got))
			for _, d := range got {
				assert.True(t, d.ActiveOn(asOf))
			}
		})
	}
}

func TestNewDiscounts(t *testing.T) {
	a, _ := newTestAnalyzer(t, nil, []catalog.Discount{
		disc("OLD", "lidl", "2025-05-03", "2025-05-20", 10),
		disc("YESTERDAY", "lidl", "2025-05-07", "2025-05-20", 10),
		disc("TODAY", "lidl", "2025-05-08", "2025-05-20", 10),
		disc("TODAY", "auchan", "2025-05-08", "2025-05-08", 5),
		disc("FUTURE", "lidl", "2025-05-09", "2025-05-20", 10),
	})

	got, err := a.NewDiscounts(context.Background(), date("2025-05-08"))
	require.NoError(t, err)
	assert.Equal(t, []string{"TODAY@auchan", "TODAY@lidl"}, discountIDs(got))

	asOf := date("2025-05-08")
	for _, d := range got {
		assert.True(t, d.FromDate.After(asOf.AddDate(0, 0, -1)))
		assert.False(t, d.FromDate.After(asOf))
	}
}

func TestNewDiscounts_IgnoresTimeOfDay(t *testing.T) {
	a, _ := newTestAnalyzer(t, nil, []catalog.Discount{
		disc("P1", "lidl", "2025-05-08", "2025-05-20", 10),
	})

	got, err := a.NewDiscounts(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

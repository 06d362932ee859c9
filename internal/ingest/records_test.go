package ingest

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosarica/price-comparator/internal/types"
)

var lidlSpec = FileSpec{
	Key:   "lidl_2025-05-08.csv",
	Store: "lidl",
	Date:  time.Date(2025, 5, 8, 0, 0, 0, 0, time.UTC),
	Kind:  types.FileKindPrices,
	Type:  types.FileTypeCSV,
}

func record(fields ...string) types.RawRecord {
	return types.RawRecord{RowNumber: 2, Fields: fields}
}

func TestToSnapshot(t *testing.T) {
	s, err := toSnapshot(lidlSpec, record("P001", "lapte zuzu", "lactate", "Zuzu", "1", "L", "9,90", "ron"))
	require.NoError(t, err)

	assert.Equal(t, "P001", s.ProductID)
	assert.Equal(t, "lidl", s.StoreName)
	assert.True(t, s.PriceDate.Equal(lidlSpec.Date))
	assert.Equal(t, "lapte zuzu", s.ProductName)
	assert.Equal(t, "lactate", s.Category)
	assert.Equal(t, "Zuzu", s.Brand)
	assert.Equal(t, 1.0, s.PackageQuantity)
	assert.Equal(t, "l", s.PackageUnit)
	assert.InDelta(t, 9.90, s.Price, 1e-9)
	assert.Equal(t, "RON", s.Currency)
}

func TestToSnapshot_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		field  string
	}{
		{"short row", []string{"P001", "lapte"}, "row"},
		{"empty id", []string{"", "lapte", "lactate", "Zuzu", "1", "l", "9.90", "RON"}, "product_id"},
		{"zero quantity", []string{"P001", "lapte", "lactate", "Zuzu", "0", "l", "9.90", "RON"}, "package_quantity"},
		{"negative quantity", []string{"P001", "lapte", "lactate", "Zuzu", "-1", "l", "9.90", "RON"}, "package_quantity"},
		{"bad quantity", []string{"P001", "lapte", "lactate", "Zuzu", "one", "l", "9.90", "RON"}, "package_quantity"},
		{"negative price", []string{"P001", "lapte", "lactate", "Zuzu", "1", "l", "-2", "RON"}, "price"},
		{"missing price", []string{"P001", "lapte", "lactate", "Zuzu", "1", "l", "", "RON"}, "price"},
		{"NaN price", []string{"P001", "lapte", "lactate", "Zuzu", "1", "l", "NaN", "RON"}, "price"},
		{"infinite price", []string{"P001", "lapte", "lactate", "Zuzu", "1", "l", "Inf", "RON"}, "price"},
		{"infinite quantity", []string{"P001", "lapte", "lactate", "Zuzu", "Inf", "l", "9.90", "RON"}, "package_quantity"},
		{"NaN quantity", []string{"P001", "lapte", "lactate", "Zuzu", "nan", "l", "9.90", "RON"}, "package_quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := toSnapshot(lidlSpec, record(tt.fields...))
			require.Error(t, err)
			var re *RowError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.field, re.Field)
		})
	}
}

func TestToSnapshot_ZeroPriceAllowed(t *testing.T) {
	s, err := toSnapshot(lidlSpec, record("P001", "sample", "misc", "X", "100", "gr", "0", "RON"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Price)
	assert.Equal(t, "g", s.PackageUnit)
}

func TestToDiscount(t *testing.T) {
	spec := lidlSpec
	spec.Kind = types.FileKindDiscounts

	d, err := toDiscount(spec, record("P001", "lapte zuzu", "Zuzu", "1", "l", "lactate", "2025-05-01", "07.05.2025", "20%"))
	require.NoError(t, err)

	assert.Equal(t, "P001", d.ProductID)
	assert.Equal(t, "lidl", d.StoreName)
	assert.Equal(t, "2025-05-01", d.FromDate.Format(time.DateOnly))
	assert.Equal(t, "2025-05-07", d.ToDate.Format(time.DateOnly))
	assert.Equal(t, 20, d.Percentage)
	assert.Equal(t, 1.0, d.PackageQuantity)
}

func TestToDiscount_BlankQuantity(t *testing.T) {
	d, err := toDiscount(lidlSpec, record("P001", "lapte", "Zuzu", "", "", "lactate", "2025-05-01", "2025-05-07", "10"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.PackageQuantity)
}

func TestToDiscount_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		field  string
	}{
		{"inverted window", []string{"P001", "lapte", "Zuzu", "1", "l", "lactate", "2025-05-07", "2025-05-01", "10"}, "row"},
		{"percentage over 100", []string{"P001", "lapte", "Zuzu", "1", "l", "lactate", "2025-05-01", "2025-05-07", "120"}, "row"},
		{"fractional percentage", []string{"P001", "lapte", "Zuzu", "1", "l", "lactate", "2025-05-01", "2025-05-07", "12.5"}, "percentage_of_discount"},
		{"bad from date", []string{"P001", "lapte", "Zuzu", "1", "l", "lactate", "soon", "2025-05-07", "10"}, "from_date"},
		{"infinite quantity", []string{"P001", "lapte", "Zuzu", "Inf", "l", "lactate", "2025-05-01", "2025-05-07", "10"}, "package_quantity"},
		{"NaN percentage", []string{"P001", "lapte", "Zuzu", "1", "l", "lactate", "2025-05-01", "2025-05-07", "NaN"}, "percentage_of_discount"},
		{"empty to date", []string{"P001", "lapte", "Zuzu", "1", "l", "lactate", "2025-05-01", "", "10"}, "to_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := toDiscount(lidlSpec, record(tt.fields...))
			require.Error(t, err)
			var re *RowError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.field, re.Field)
		})
	}
}

func TestParseDate(t *testing.T) {
	for _, value := range []string{"2025-05-01", "01.05.2025", "45778"} {
		t.Run(value, func(t *testing.T) {
			d, err := parseDate(value)
			require.NoError(t, err)
			assert.Equal(t, "2025-05-01", d.Format(time.DateOnly))
		})
	}
}

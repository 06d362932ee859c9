package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kosarica/price-comparator/internal/catalog"
	"github.com/kosarica/price-comparator/internal/matching"
	"github.com/kosarica/price-comparator/internal/parsers/csv"
	"github.com/kosarica/price-comparator/internal/parsers/xlsx"
	"github.com/kosarica/price-comparator/internal/types"
)

// Price file columns
const (
	priceColProductID = iota
	priceColProductName
	priceColCategory
	priceColBrand
	priceColQuantity
	priceColUnit
	priceColPrice
	priceColCurrency
	priceColumnCount
)

// Discount file columns
const (
	discColProductID = iota
	discColProductName
	discColBrand
	discColQuantity
	discColUnit
	discColCategory
	discColFromDate
	discColToDate
	discColPercentage
	discountColumnCount
)

// RowError is a rejected data row
type RowError struct {
	Field   string
	Message string
}

func (e *RowError) Error() string {
	return e.Field + ": " + e.Message
}

func rowErr(field, format string, args ...interface{}) *RowError {
	return &RowError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// toSnapshot maps a price file row to a snapshot dated by the file.
func toSnapshot(spec FileSpec, rec types.RawRecord) (catalog.PriceSnapshot, error) {
	f := rec.Fields
	if len(f) < priceColumnCount {
		return catalog.PriceSnapshot{}, rowErr("row", "expected %d columns, got %d", priceColumnCount, len(f))
	}

	productID := f[priceColProductID]
	if productID == "" {
		return catalog.PriceSnapshot{}, rowErr("product_id", "is empty")
	}

	quantity, err := csv.ParseAmount(f[priceColQuantity])
	if err != nil {
		return catalog.PriceSnapshot{}, rowErr("package_quantity", "%v", err)
	}
	if quantity <= 0 {
		return catalog.PriceSnapshot{}, rowErr("package_quantity", "must be positive, got %v", quantity)
	}

	price, err := csv.ParseAmount(f[priceColPrice])
	if err != nil {
		return catalog.PriceSnapshot{}, rowErr("price", "%v", err)
	}
	if price < 0 {
		return catalog.PriceSnapshot{}, rowErr("price", "must not be negative, got %v", price)
	}

	return catalog.PriceSnapshot{
		ProductID:       productID,
		StoreName:       spec.Store,
		PriceDate:       spec.Date,
		ProductName:     f[priceColProductName],
		Category:        f[priceColCategory],
		Brand:           f[priceColBrand],
		PackageQuantity: quantity,
		PackageUnit:     matching.CanonicalUnit(f[priceColUnit]),
		Price:           price,
		Currency:        strings.ToUpper(f[priceColCurrency]),
	}, nil
}

// toDiscount maps a discount file row to a discount at the file's store.
func toDiscount(spec FileSpec, rec types.RawRecord) (catalog.Discount, error) {
	f := rec.Fields
	if len(f) < discountColumnCount {
		return catalog.Discount{}, rowErr("row", "expected %d columns, got %d", discountColumnCount, len(f))
	}

	productID := f[discColProductID]
	if productID == "" {
		return catalog.Discount{}, rowErr("product_id", "is empty")
	}

	// Package attributes are informational on discounts; tolerate blanks.
	var quantity float64
	if f[discColQuantity] != "" {
		q, err := csv.ParseAmount(f[discColQuantity])
		if err != nil {
			return catalog.Discount{}, rowErr("package_quantity", "%v", err)
		}
		quantity = q
	}

	from, err := parseDate(f[discColFromDate])
	if err != nil {
		return catalog.Discount{}, rowErr("from_date", "%v", err)
	}
	to, err := parseDate(f[discColToDate])
	if err != nil {
		return catalog.Discount{}, rowErr("to_date", "%v", err)
	}

	percentage, err := csv.ParsePercentage(f[discColPercentage])
	if err != nil {
		return catalog.Discount{}, rowErr("percentage_of_discount", "%v", err)
	}

	d := catalog.Discount{
		ProductID:       productID,
		StoreName:       spec.Store,
		ProductName:     f[discColProductName],
		Brand:           f[discColBrand],
		Category:        f[discColCategory],
		PackageQuantity: quantity,
		PackageUnit:     matching.CanonicalUnit(f[discColUnit]),
		FromDate:        from,
		ToDate:          to,
		Percentage:      percentage,
	}
	if err := d.Validate(); err != nil {
		return catalog.Discount{}, rowErr("row", "%v", err)
	}
	return d, nil
}

// parseDate accepts ISO dates, DD.MM.YYYY and Excel serial numbers.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if t, err := catalog.ParseDate(value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("02.01.2006", value); err == nil {
		return t, nil
	}
	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if t, ok := xlsx.SerialToDate(serial); ok {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

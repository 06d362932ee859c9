package analysis

import (
	"fmt"
	"strings"
)

// NormalizeQuantity converts grams to kilograms and millilitres to litres.
// Every other unit passes through unchanged. The unit is matched case-insensitively.
func NormalizeQuantity(quantity float64, unit string) (float64, string) {
	u := strings.ToLower(strings.TrimSpace(unit))
	switch u {
	case "g":
		return quantity / 1000, "kg"
	case "ml":
		return quantity / 1000, "l"
	}
	return quantity, u
}

// UnitPrice returns price per normalized unit (per kg, per l, per piece...).
// It fails with ErrInvalidQuantity when the normalized quantity is not positive.
func UnitPrice(price, quantity float64, unit string) (float64, error) {
	q, u := NormalizeQuantity(quantity, unit)
	if !(q > 0) {
		return 0, fmt.Errorf("%w: %v %s", ErrInvalidQuantity, quantity, u)
	}
	return price / q, nil
}

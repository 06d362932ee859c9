package csv

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var currencySuffixRe = regexp.MustCompile(`\s*(RON|LEI|KN|HRK|EUR|USD)\s*$`)

// ParseAmount parses a decimal amount.
// Handles "12.99", "12,99", "1.299,00", "1,299.00" and a trailing currency code.
func ParseAmount(value string) (float64, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0, fmt.Errorf("empty numeric value")
	}

	cleaned = strings.Map(func(r rune) rune {
		switch r {
		case '€', '$', '£', ' ', '\u00A0':
			return -1
		}
		return r
	}, strings.ToUpper(cleaned))
	cleaned = currencySuffixRe.ReplaceAllString(cleaned, "")
	if cleaned == "" {
		return 0, fmt.Errorf("no numeric value in %q", value)
	}

	// The later of the two separators is the decimal separator
	lastDot := strings.LastIndex(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")
	if lastComma > lastDot {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	} else if lastDot > lastComma {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	result, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", value, err)
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("invalid number %q: not finite", value)
	}
	return result, nil
}

// ParsePercentage parses a whole-number percentage such as "20" or "20%".
func ParsePercentage(value string) (int, error) {
	cleaned := strings.TrimSuffix(strings.TrimSpace(value), "%")
	amount, err := ParseAmount(cleaned)
	if err != nil {
		return 0, err
	}
	if amount != float64(int(amount)) {
		return 0, fmt.Errorf("percentage %q is not a whole number", value)
	}
	return int(amount), nil
}

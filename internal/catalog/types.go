package catalog

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used by price files, the API and the database.
const DateLayout = "2006-01-02"

// PriceSnapshot is a recorded price observation for a product at a store on a date.
// Identity is (ProductID, StoreName, PriceDate).
type PriceSnapshot struct {
	ProductID       string    `json:"productId"`
	StoreName       string    `json:"storeName"`
	PriceDate       time.Time `json:"priceDate"`
	ProductName     string    `json:"productName"`
	Category        string    `json:"category"`
	Brand           string    `json:"brand"`
	PackageQuantity float64   `json:"packageQuantity"`
	PackageUnit     string    `json:"packageUnit"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
}

// Key returns the snapshot identity.
func (s PriceSnapshot) Key() SnapshotKey {
	return SnapshotKey{ProductID: s.ProductID, StoreName: s.StoreName, PriceDate: DateOf(s.PriceDate)}
}

// SnapshotKey is the composite identity of a PriceSnapshot.
type SnapshotKey struct {
	ProductID string
	StoreName string
	PriceDate time.Time
}

// Store is a retail store, identified by name.
type Store struct {
	Name string `json:"name"`
}

// Discount is a time-bounded percentage reduction of a product's price in a store.
// The window is inclusive on both ends.
type Discount struct {
	ID              int64     `json:"id,omitempty"`
	ProductID       string    `json:"productId"`
	StoreName       string    `json:"storeName"`
	ProductName     string    `json:"productName,omitempty"`
	Brand           string    `json:"brand,omitempty"`
	Category        string    `json:"category,omitempty"`
	PackageQuantity float64   `json:"packageQuantity,omitempty"`
	PackageUnit     string    `json:"packageUnit,omitempty"`
	FromDate        time.Time `json:"fromDate"`
	ToDate          time.Time `json:"toDate"`
	Percentage      int       `json:"percentage"`
}

// ActiveOn reports whether the discount window contains the given date.
func (d Discount) ActiveOn(date time.Time) bool {
	day := DateOf(date)
	return !DateOf(d.FromDate).After(day) && !DateOf(d.ToDate).Before(day)
}

// Validate checks the discount invariants.
func (d Discount) Validate() error {
	if d.ProductID == "" {
		return fmt.Errorf("discount: product id is empty")
	}
	if d.Percentage < 0 || d.Percentage > 100 {
		return fmt.Errorf("discount %s@%s: percentage %d outside [0,100]", d.ProductID, d.StoreName, d.Percentage)
	}
	if DateOf(d.FromDate).After(DateOf(d.ToDate)) {
		return fmt.Errorf("discount %s@%s: from date %s after to date %s",
			d.ProductID, d.StoreName, d.FromDate.Format(DateLayout), d.ToDate.Format(DateLayout))
	}
	return nil
}

// PriceAlert is a user-defined target price for a product. Triggered only ever
// moves from false to true.
type PriceAlert struct {
	ID          string     `json:"id"`
	ProductID   string     `json:"productId"`
	TargetPrice float64    `json:"targetPrice"`
	Triggered   bool       `json:"triggered"`
	CreatedAt   time.Time  `json:"createdAt"`
	TriggeredAt *time.Time `json:"triggeredAt,omitempty"`
}

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

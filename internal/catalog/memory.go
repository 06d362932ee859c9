package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore is an in-memory Source, Sink and AlertStore.
// It backs the CLI, tests, and the server when no database is configured.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[SnapshotKey]PriceSnapshot
	stores    map[string]Store
	discounts []Discount
	seenDisc  map[discountKey]struct{}
	alerts    map[string]PriceAlert
}

type discountKey struct {
	productID string
	storeName string
	fromDate  time.Time
}

// NewMemoryStore creates an empty in-memory catalog.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots: make(map[SnapshotKey]PriceSnapshot),
		stores:    make(map[string]Store),
		seenDisc:  make(map[discountKey]struct{}),
		alerts:    make(map[string]PriceAlert),
	}
}

// AddSnapshots records snapshots. Snapshots are immutable, so a duplicate
// identity keeps the first recorded value. Returns the number inserted.
func (m *MemoryStore) AddSnapshots(_ context.Context, snapshots []PriceSnapshot) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inserted := 0
	for _, s := range snapshots {
		if s.ProductID == "" || s.StoreName == "" {
			return inserted, fmt.Errorf("snapshot is missing product id or store name")
		}
		s.PriceDate = DateOf(s.PriceDate)
		key := s.Key()
		if _, exists := m.snapshots[key]; exists {
			continue
		}
		m.snapshots[key] = s
		m.stores[s.StoreName] = Store{Name: s.StoreName}
		inserted++
	}
	return inserted, nil
}

// AddDiscounts records discounts, ignoring duplicates of (product, store, from date).
func (m *MemoryStore) AddDiscounts(_ context.Context, discounts []Discount) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inserted := 0
	for _, d := range discounts {
		if err := d.Validate(); err != nil {
			return inserted, err
		}
		d.FromDate = DateOf(d.FromDate)
		d.ToDate = DateOf(d.ToDate)
		key := discountKey{productID: d.ProductID, storeName: d.StoreName, fromDate: d.FromDate}
		if _, exists := m.seenDisc[key]; exists {
			continue
		}
		m.seenDisc[key] = struct{}{}
		d.ID = int64(len(m.discounts) + 1)
		m.discounts = append(m.discounts, d)
		m.stores[d.StoreName] = Store{Name: d.StoreName}
		inserted++
	}
	return inserted, nil
}

func (m *MemoryStore) SnapshotsFor(_ context.Context, productID string) ([]PriceSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]PriceSnapshot, 0)
	for _, s := range m.snapshots {
		if s.ProductID == productID {
			result = append(result, s)
		}
	}
	sortSnapshots(result)
	return result, nil
}

func (m *MemoryStore) StoreSnapshotsFor(_ context.Context, productID, storeName string) ([]PriceSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]PriceSnapshot, 0)
	for _, s := range m.snapshots {
		if s.ProductID == productID && s.StoreName == storeName {
			result = append(result, s)
		}
	}
	sortSnapshots(result)
	return result, nil
}

func (m *MemoryStore) Stores(_ context.Context) ([]Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Store, 0, len(m.stores))
	for _, s := range m.stores {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *MemoryStore) Products(_ context.Context) ([]PriceSnapshot, error) {
	return m.latestProducts(func(PriceSnapshot) bool { return true }), nil
}

// ProductsInCategory returns the latest snapshot of each product in the category.
// An empty category matches only uncategorized products.
func (m *MemoryStore) ProductsInCategory(_ context.Context, category string) ([]PriceSnapshot, error) {
	return m.latestProducts(func(s PriceSnapshot) bool {
		return strings.EqualFold(s.Category, category)
	}), nil
}

func (m *MemoryStore) latestProducts(match func(PriceSnapshot) bool) []PriceSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	latest := make(map[string]PriceSnapshot)
	for _, s := range m.snapshots {
		if !match(s) {
			continue
		}
		current, ok := latest[s.ProductID]
		if !ok || isNewer(s, current) {
			latest[s.ProductID] = s
		}
	}

	result := make([]PriceSnapshot, 0, len(latest))
	for _, s := range latest {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ProductID < result[j].ProductID })
	return result
}

func (m *MemoryStore) DiscountsActiveOn(_ context.Context, date time.Time) ([]Discount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Discount, 0)
	for _, d := range m.discounts {
		if d.ActiveOn(date) {
			result = append(result, d)
		}
	}
	return result, nil
}

func (m *MemoryStore) DiscountsStartingAfter(_ context.Context, date time.Time) ([]Discount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	day := DateOf(date)
	result := make([]Discount, 0)
	for _, d := range m.discounts {
		if d.FromDate.After(day) {
			result = append(result, d)
		}
	}
	return result, nil
}

func (m *MemoryStore) CreateAlert(_ context.Context, alert PriceAlert) (PriceAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if alert.ID == "" {
		return PriceAlert{}, fmt.Errorf("alert id is empty")
	}
	if _, exists := m.alerts[alert.ID]; exists {
		return PriceAlert{}, fmt.Errorf("alert %s already exists", alert.ID)
	}
	m.alerts[alert.ID] = alert
	return alert, nil
}

func (m *MemoryStore) GetAlert(_ context.Context, id string) (PriceAlert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	alert, ok := m.alerts[id]
	if !ok {
		return PriceAlert{}, ErrAlertNotFound
	}
	return alert, nil
}

func (m *MemoryStore) ListActiveAlerts(_ context.Context) ([]PriceAlert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]PriceAlert, 0)
	for _, a := range m.alerts {
		if !a.Triggered {
			result = append(result, a)
		}
	}
	sortAlerts(result)
	return result, nil
}

func (m *MemoryStore) MarkTriggered(_ context.Context, id string, at time.Time) (PriceAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	alert, ok := m.alerts[id]
	if !ok {
		return PriceAlert{}, ErrAlertNotFound
	}
	if alert.Triggered {
		return alert, nil
	}
	alert.Triggered = true
	triggeredAt := at.UTC()
	alert.TriggeredAt = &triggeredAt
	m.alerts[id] = alert
	return alert, nil
}

func isNewer(a, b PriceSnapshot) bool {
	if !a.PriceDate.Equal(b.PriceDate) {
		return a.PriceDate.After(b.PriceDate)
	}
	return a.StoreName < b.StoreName
}

// sortSnapshots orders by date, then store name.
func sortSnapshots(s []PriceSnapshot) {
	sort.Slice(s, func(i, j int) bool {
		if !s[i].PriceDate.Equal(s[j].PriceDate) {
			return s[i].PriceDate.Before(s[j].PriceDate)
		}
		return s[i].StoreName < s[j].StoreName
	})
}

func sortAlerts(a []PriceAlert) {
	sort.Slice(a, func(i, j int) bool {
		if !a[i].CreatedAt.Equal(a[j].CreatedAt) {
			return a[i].CreatedAt.Before(a[j].CreatedAt)
		}
		return a[i].ID < a[j].ID
	})
}

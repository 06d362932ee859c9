package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kosarica/price-comparator/internal/catalog"
	"github.com/kosarica/price-comparator/internal/pkg/cuid2"
)

const alertIDPrefix = "alt"

// AlertService manages price alerts. An alert starts pending and moves to
// triggered only through MarkTriggered; it never reverts. Evaluation is a pure
// comparison and never changes state.
type AlertService struct {
	store    catalog.AlertStore
	analyzer *Analyzer
	newID    func() string
	metrics  *MetricsRecorder
	logger   zerolog.Logger
}

// NewAlertService creates an alert service persisting to store and pricing through analyzer.
func NewAlertService(store catalog.AlertStore, analyzer *Analyzer) *AlertService {
	return &AlertService{
		store:    store,
		analyzer: analyzer,
		newID:    func() string { return cuid2.NewID(alertIDPrefix) },
		metrics:  analyzer.metrics,
		logger:   log.With().Str("component", "alert_service").Logger(),
	}
}

// Create registers a pending alert for productID at targetPrice.
func (s *AlertService) Create(ctx context.Context, productID string, targetPrice float64) (catalog.PriceAlert, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return catalog.PriceAlert{}, ErrInvalidRequest{Field: "productId", Reason: "cannot be empty"}
	}
	if targetPrice < 0 || math.IsNaN(targetPrice) || math.IsInf(targetPrice, 0) {
		return catalog.PriceAlert{}, ErrInvalidRequest{Field: "targetPrice", Reason: "must be a non-negative number"}
	}

	alert := catalog.PriceAlert{
		ID:          s.newID(),
		ProductID:   productID,
		TargetPrice: targetPrice,
		CreatedAt:   s.analyzer.now().UTC(),
	}
	created, err := s.store.CreateAlert(ctx, alert)
	if err != nil {
		return catalog.PriceAlert{}, fmt.Errorf("failed to create alert: %w", err)
	}

	s.metrics.RecordAlertEvent("created")
	s.logger.Info().
		Str("alert_id", created.ID).
		Str("product_id", created.ProductID).
		Float64("target_price", created.TargetPrice).
		Msg("Price alert created")
	return created, nil
}

// ListActive returns all alerts that have not been triggered.
func (s *AlertService) ListActive(ctx context.Context) ([]catalog.PriceAlert, error) {
	alerts, err := s.store.ListActiveAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
	}
	return alerts, nil
}

// Evaluate reports whether the product's cheapest current price is at or below
// the alert's target.
func (s *AlertService) Evaluate(ctx context.Context, alert catalog.PriceAlert) (bool, error) {
	return s.analyzer.CheckBelowTarget(ctx, alert.ProductID, alert.TargetPrice)
}

// MarkTriggered moves the alert to the triggered state. Triggering an already
// triggered alert returns it unchanged. Unknown ids return catalog.ErrAlertNotFound.
func (s *AlertService) MarkTriggered(ctx context.Context, id string) (catalog.PriceAlert, error) {
	alert, err := s.store.MarkTriggered(ctx, id, s.analyzer.now())
	if err != nil {
		return catalog.PriceAlert{}, fmt.Errorf("failed to trigger alert %s: %w", id, err)
	}

	s.metrics.RecordAlertEvent("triggered")
	s.logger.Info().Str("alert_id", alert.ID).Str("product_id", alert.ProductID).Msg("Price alert triggered")
	return alert, nil
}

// DueAlerts returns the active alerts whose evaluation is currently true.
func (s *AlertService) DueAlerts(ctx context.Context) ([]catalog.PriceAlert, error) {
	active, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	due := make([]catalog.PriceAlert, 0)
	for _, alert := range active {
		ok, err := s.Evaluate(ctx, alert)
		if err != nil {
			return nil, err
		}
		if ok {
			due = append(due, alert)
		}
	}
	return due, nil
}

// TriggerDue marks every due alert as triggered and returns the triggered alerts.
func (s *AlertService) TriggerDue(ctx context.Context) ([]catalog.PriceAlert, error) {
	start := time.Now()
	due, err := s.DueAlerts(ctx)
	if err != nil {
		return nil, err
	}

	triggered := make([]catalog.PriceAlert, 0, len(due))
	for _, alert := range due {
		updated, err := s.MarkTriggered(ctx, alert.ID)
		if err != nil {
			return triggered, err
		}
		triggered = append(triggered, updated)
	}

	s.logger.Debug().
		Int("triggered", len(triggered)).
		Dur("duration", time.Since(start)).
		Msg("Due alerts processed")
	return triggered, nil
}

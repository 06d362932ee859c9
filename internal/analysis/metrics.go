package analysis

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// queryDuration tracks the time taken by engine queries, including catalog reads.
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "analysis_query_duration_seconds",
		Help:    "Time taken by price analysis queries by operation",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	}, []string{"operation"})

	// queryErrors tracks queries that failed at the catalog boundary.
	queryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_query_errors_total",
		Help: "Total number of failed price analysis queries by operation",
	}, []string{"operation"})

	// basketSize tracks the distribution of requested basket sizes.
	basketSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_basket_items_count",
		Help:    "Number of items in basket allocation requests",
		Buckets: []float64{1, 5, 10, 20, 50, 100},
	})

	// basketUnallocated counts basket items skipped because no store carries them.
	basketUnallocated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analysis_basket_unallocated_items_total",
		Help: "Total number of basket items without any offer",
	})

	// basketStores tracks how many stores an allocation spans.
	basketStores = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "analysis_basket_stores_count",
		Help:    "Number of stores used by a basket allocation",
		Buckets: []float64{0, 1, 2, 3, 5, 10},
	})

	// unitPriceRejected counts products excluded from unit-price comparison.
	unitPriceRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analysis_unit_price_rejected_total",
		Help: "Total number of products excluded for invalid package quantity",
	})

	// alertTransitions counts alert lifecycle events.
	alertTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "analysis_alert_events_total",
		Help: "Total number of price alert events by kind",
	}, []string{"event"}) // event: created, triggered
)

// MetricsRecorder provides methods to record analysis metrics.
type MetricsRecorder struct{}

// NewMetricsRecorder creates a new metrics recorder.
func NewMetricsRecorder() *MetricsRecorder {
	return &MetricsRecorder{}
}

// RecordQuery records the duration and outcome of an engine query.
func (m *MetricsRecorder) RecordQuery(operation string, duration time.Duration, success bool) {
	queryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if !success {
		queryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordBasket records the size and outcome of a basket allocation.
func (m *MetricsRecorder) RecordBasket(items, unallocated, stores int) {
	basketSize.Observe(float64(items))
	basketUnallocated.Add(float64(unallocated))
	basketStores.Observe(float64(stores))
}

// RecordUnitPriceRejected records a product excluded from unit-price comparison.
func (m *MetricsRecorder) RecordUnitPriceRejected() {
	unitPriceRejected.Inc()
}

// RecordAlertEvent records an alert lifecycle event.
func (m *MetricsRecorder) RecordAlertEvent(event string) {
	alertTransitions.WithLabelValues(event).Inc()
}

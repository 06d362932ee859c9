// Package analysis implements the price analysis engine: cross-store price
// comparison, unit-price normalization, same-category alternatives, discount
// ranking, per-item basket allocation and price alerts.
//
// Every query reads what it needs from a catalog.Source and computes the
// result in memory. The engine holds no mutable state of its own.
package analysis

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kosarica/price-comparator/internal/catalog"
)

const tracerName = "github.com/kosarica/price-comparator/internal/analysis"

// Analyzer answers price analysis queries over a catalog.Source.
type Analyzer struct {
	source  catalog.Source
	now     func() time.Time
	metrics *MetricsRecorder
	logger  zerolog.Logger
	tracer  trace.Tracer
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClock sets the clock used to resolve "today".
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(metrics *MetricsRecorder) Option {
	return func(a *Analyzer) {
		a.metrics = metrics
	}
}

// NewAnalyzer creates an analyzer reading from source.
func NewAnalyzer(source catalog.Source, opts ...Option) *Analyzer {
	a := &Analyzer{
		source:  source,
		now:     time.Now,
		metrics: NewMetricsRecorder(),
		logger:  log.With().Str("component", "price_analyzer").Logger(),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Today returns the current calendar date in UTC.
func (a *Analyzer) Today() time.Time {
	return catalog.DateOf(a.now())
}

// observe starts a span for an engine operation. The returned function must be
// called with the operation's error to end the span and record metrics.
func (a *Analyzer) observe(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := a.tracer.Start(ctx, "analysis."+operation, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			a.logger.Error().Err(err).Str("operation", operation).Msg("Analysis query failed")
		}
		span.End()
		a.metrics.RecordQuery(operation, time.Since(start), err == nil)
	}
}

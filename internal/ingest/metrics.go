package ingest

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// filesProcessed tracks ingested files by kind and outcome.
	filesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_files_total",
		Help: "Total number of price files processed by kind and status",
	}, []string{"kind", "status"})

	// rowsProcessed tracks data rows by kind and outcome.
	rowsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_rows_total",
		Help: "Total number of data rows processed by kind and outcome",
	}, []string{"kind", "outcome"}) // outcome: stored, duplicate, rejected

	// runDuration tracks the time taken by a full ingestion run.
	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ingest_run_duration_seconds",
		Help:    "Time taken by an ingestion run",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
	})
)

func recordFile(kind, status string) {
	filesProcessed.WithLabelValues(kind, status).Inc()
}

func recordRows(kind, outcome string, n int) {
	if n > 0 {
		rowsProcessed.WithLabelValues(kind, outcome).Add(float64(n))
	}
}

func recordRun(d time.Duration) {
	runDuration.Observe(d.Seconds())
}

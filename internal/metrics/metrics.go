package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lightbnb_query_duration_seconds",
			Help:    "Duration of store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	QueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lightbnb_query_errors_total",
			Help: "Total number of failed store queries",
		},
		[]string{"operation", "code"},
	)

	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lightbnb_search_results",
			Help:    "Number of properties returned per search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 200},
		},
	)
)

// ObserveQuery records how long operation took since start.
func ObserveQuery(operation string, start time.Time) {
	QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// RecordQueryError counts a failed query. code is the SQLSTATE or "unknown".
func RecordQueryError(operation, code string) {
	if code == "" {
		code = "unknown"
	}
	QueryErrors.WithLabelValues(operation, code).Inc()
}

package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SpreadsheetIngestTotal counts spreadsheet import attempts
	SpreadsheetIngestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerack_spreadsheet_ingest_total",
			Help: "Total number of spreadsheet import attempts",
		},
		[]string{"result"}, // "ok" or "error"
	)

	// SpreadsheetIngestDuration measures spreadsheet import latency
	SpreadsheetIngestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinerack_spreadsheet_ingest_duration_seconds",
			Help:    "Spreadsheet import duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// RackMetricsComputeTotal counts derived-metric computations
	RackMetricsComputeTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cinerack_rack_metrics_compute_total",
			Help: "Total number of derived rack metric computations",
		},
	)

	// RepositoryQueryDuration measures storage query latency
	RepositoryQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinerack_repository_query_duration_seconds",
			Help:    "Repository query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// HTTPRequestTotal counts HTTP requests by route and status
	HTTPRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinerack_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// InitMetrics registers the Prometheus collectors
func InitMetrics() {
	prometheus.MustRegister(SpreadsheetIngestTotal)
	prometheus.MustRegister(SpreadsheetIngestDuration)
	prometheus.MustRegister(RackMetricsComputeTotal)
	prometheus.MustRegister(RepositoryQueryDuration)
	prometheus.MustRegister(HTTPRequestTotal)
}

// MetricsHandler returns the HTTP handler for Prometheus scraping
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

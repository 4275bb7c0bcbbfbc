// Package metrics provides Prometheus metrics for the Omsk gallery backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the gallery service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Search Metrics - external media search calls
	searchRequests prometheus.Counter
	searchErrors   prometheus.Counter
	searchLatency  prometheus.Histogram

	// Aggregation Metrics
	imagesReturned    prometheus.Gauge
	duplicatesDropped prometheus.Counter
	pagesSkipped      prometheus.Counter

	// Database Probe Metrics
	dbProbes  prometheus.Counter
	dbProbeUp prometheus.Gauge

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "omsk",
		subsystem:        "gallery",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Search Metrics - one external call per query, no retries
	m.searchRequests = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_requests_total",
		Help:      "Total number of media search requests issued",
	})

	m.searchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_errors_total",
		Help:      "Total number of media search requests that failed and were skipped",
	})

	m.searchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "search_latency_milliseconds",
		Help:      "Histogram of media search latency in milliseconds",
		Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})

	// Aggregation Metrics
	m.imagesReturned = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "images_returned",
		Help:      "Number of images returned by the most recent aggregation",
	})

	m.duplicatesDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duplicates_dropped_total",
		Help:      "Total number of images dropped because their page id was already collected",
	})

	m.pagesSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pages_skipped_total",
		Help:      "Total number of search result pages skipped for lacking a thumbnail",
	})

	// Database Probe Metrics
	m.dbProbes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "db_probes_total",
		Help:      "Total number of database diagnostic probes",
	})

	m.dbProbeUp = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "db_probe_up",
		Help:      "Whether the most recent database probe connected successfully (1) or not (0)",
	})

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "Current memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Current number of goroutines",
	})
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordSearchRequest increments the search requests counter.
func RecordSearchRequest() {
	globalManager.searchRequests.Inc()
}

// RecordSearchError increments the search errors counter.
func RecordSearchError() {
	globalManager.searchErrors.Inc()
}

// RecordSearchLatency records a search round-trip in milliseconds.
func RecordSearchLatency(latencyMs float64) {
	globalManager.searchLatency.Observe(latencyMs)
}

// UpdateImagesReturned sets the size of the most recent aggregation result.
func UpdateImagesReturned(count int) {
	globalManager.imagesReturned.Set(float64(count))
}

// RecordDuplicateDropped increments the dropped duplicates counter.
func RecordDuplicateDropped() {
	globalManager.duplicatesDropped.Inc()
}

// RecordPageSkipped increments the counter of pages without a thumbnail.
func RecordPageSkipped() {
	globalManager.pagesSkipped.Inc()
}

// RecordDBProbe increments the database probe counter.
func RecordDBProbe() {
	globalManager.dbProbes.Inc()
}

// UpdateDBProbeUp records the connectivity outcome of the latest probe.
func UpdateDBProbeUp(up bool) {
	if up {
		globalManager.dbProbeUp.Set(1)
		return
	}
	globalManager.dbProbeUp.Set(0)
}

// UpdateSystemMemoryUsage sets the current memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package metrics provides Prometheus metrics for the glorypath dashboard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the dashboard.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Page Metrics
	pageBuilds        *prometheus.CounterVec
	pageBuildDuration *prometheus.HistogramVec
	filterEvaluations *prometheus.CounterVec
	exportRows        *prometheus.CounterVec

	// Dataset Metrics - table loads and the memo cache
	datasetLoads        *prometheus.CounterVec
	datasetLoadFailures *prometheus.CounterVec
	datasetLoadDuration *prometheus.HistogramVec
	datasetRows         *prometheus.GaugeVec
	datasetSkippedRows  *prometheus.CounterVec
	cacheHits           *prometheus.CounterVec
	cacheMisses         *prometheus.CounterVec
	cacheInvalidations  *prometheus.CounterVec
	watcherEvents       *prometheus.CounterVec
	watcherErrors       prometheus.Counter

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "glorypath",
		subsystem:        "dashboard",
		histogramBuckets: []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) histogramVec(name, help string, labels ...string) *prometheus.HistogramVec {
	return promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
		Buckets:     m.histogramBuckets,
	}, labels)
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	})
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	m.httpRequests = m.counterVec("http_requests_total",
		"Total number of HTTP requests by endpoint and method",
		"endpoint", "method", "status_code")
	m.httpRequestDuration = m.histogramVec("http_request_duration_milliseconds",
		"HTTP request duration in milliseconds",
		"endpoint", "method", "status_code")

	m.pageBuilds = m.counterVec("page_builds_total",
		"Total number of page views built", "page")
	m.pageBuildDuration = m.histogramVec("page_build_duration_milliseconds",
		"Time spent composing a page from the cached tables", "page")
	m.filterEvaluations = m.counterVec("filter_evaluations_total",
		"Filter selections applied, by whether any field restricted rows", "restricted")
	m.exportRows = m.counterVec("export_rows_total",
		"Rows written to CSV exports", "export")

	m.datasetLoads = m.counterVec("dataset_loads_total",
		"Table loads from the data directory", "table")
	m.datasetLoadFailures = m.counterVec("dataset_load_failures_total",
		"Table loads that failed and yielded an empty table", "table")
	m.datasetLoadDuration = m.histogramVec("dataset_load_duration_milliseconds",
		"Time spent reading and parsing a table", "table")
	m.datasetRows = promauto.With(m.registry).NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_rows",
		Help:        "Rows held in the cache per table",
		ConstLabels: m.constLabels,
	}, []string{"table"})
	m.datasetSkippedRows = m.counterVec("dataset_skipped_rows_total",
		"Source rows dropped while loading, e.g. unknown medal tiers", "table")
	m.cacheHits = m.counterVec("cache_hits_total",
		"Table reads served from the memo cache", "table")
	m.cacheMisses = m.counterVec("cache_misses_total",
		"Table reads that had to load from disk", "table")
	m.cacheInvalidations = m.counterVec("cache_invalidations_total",
		"Cached tables dropped after a source change", "table")
	m.watcherEvents = m.counterVec("watcher_events_total",
		"File system events seen by the data watcher", "op")
	m.watcherErrors = promauto.With(m.registry).NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "watcher_errors_total",
		Help:        "Errors reported by the data watcher",
		ConstLabels: m.constLabels,
	})

	m.errorRateByComponent = m.counterVec("errors_by_component_total",
		"Total number of errors by component and error type",
		"component", "error_type")
	m.errorRateByEndpoint = m.counterVec("errors_by_endpoint_total",
		"Total number of errors by endpoint, method and error type",
		"endpoint", "method", "error_type")

	m.systemMemoryUsage = m.gauge("system_memory_usage_bytes", "Current system memory usage in bytes")
	m.systemGoroutineCount = m.gauge("system_goroutine_count", "Current number of goroutines")
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Page Metrics Functions.

// RecordPageBuild counts a page view and its build latency in milliseconds.
func RecordPageBuild(page string, latencyMs float64) {
	globalManager.pageBuilds.WithLabelValues(page).Inc()
	globalManager.pageBuildDuration.WithLabelValues(page).Observe(latencyMs)
}

// RecordFilterEvaluation counts one applied selection.
func RecordFilterEvaluation(restricted bool) {
	label := "false"
	if restricted {
		label = "true"
	}
	globalManager.filterEvaluations.WithLabelValues(label).Inc()
}

// RecordExportRows adds rows written by an export.
func RecordExportRows(export string, rows int) {
	globalManager.exportRows.WithLabelValues(export).Add(float64(rows))
}

// Dataset Metrics Functions.

// RecordDatasetLoad records a table load, its latency and resulting row count.
func RecordDatasetLoad(table string, latencyMs float64, rows int) {
	globalManager.datasetLoads.WithLabelValues(table).Inc()
	globalManager.datasetLoadDuration.WithLabelValues(table).Observe(latencyMs)
	globalManager.datasetRows.WithLabelValues(table).Set(float64(rows))
}

// RecordDatasetLoadFailure increments the load failure counter for table.
func RecordDatasetLoadFailure(table string) {
	globalManager.datasetLoadFailures.WithLabelValues(table).Inc()
}

// RecordDatasetSkippedRows adds rows dropped while loading table.
func RecordDatasetSkippedRows(table string, rows int) {
	globalManager.datasetSkippedRows.WithLabelValues(table).Add(float64(rows))
}

// RecordCacheHit increments the cache hit counter for table.
func RecordCacheHit(table string) {
	globalManager.cacheHits.WithLabelValues(table).Inc()
}

// RecordCacheMiss increments the cache miss counter for table.
func RecordCacheMiss(table string) {
	globalManager.cacheMisses.WithLabelValues(table).Inc()
}

// RecordCacheInvalidation increments the invalidation counter for table.
func RecordCacheInvalidation(table string) {
	globalManager.cacheInvalidations.WithLabelValues(table).Inc()
}

// RecordWatcherEvent counts a file system event by operation.
func RecordWatcherEvent(op string) {
	globalManager.watcherEvents.WithLabelValues(op).Inc()
}

// RecordWatcherError increments the watcher error counter.
func RecordWatcherError() {
	globalManager.watcherErrors.Inc()
}

// Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Value returns the current value of a counter or gauge family on the
// global registry, summed over label combinations matching labels.
func Value(name string, labels map[string]string) (float64, error) {
	families, err := customRegistry.Gather()
	if err != nil {
		return 0, err
	}
	full := prometheus.BuildFQName(globalManager.namespace, globalManager.subsystem, name)
	for _, f := range families {
		if f.GetName() != full {
			continue
		}
		var sum float64
		for _, metric := range f.GetMetric() {
			if !matches(metric.GetLabel(), labels) {
				continue
			}
			switch {
			case metric.GetCounter() != nil:
				sum += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				sum += metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				sum += float64(metric.GetHistogram().GetSampleCount())
			}
		}
		return sum, nil
	}
	return 0, ErrUnknownMetric
}

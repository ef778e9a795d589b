package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pluto_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pluto_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pluto_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Gallery indexer metrics
var (
	GalleryIndexTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pluto_gallery_index_total",
			Help: "Total number of gallery index passes",
		},
		[]string{"status"}, // "found" or "missing"
	)

	GalleryIndexDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pluto_gallery_index_duration_seconds",
			Help:    "Duration of a single gallery index pass in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	GalleryItemsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pluto_gallery_items_returned",
			Help:    "Number of entries returned by a gallery index pass",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"kind"}, // "folder" or "image"
	)

	GalleryPathsEnumerated = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pluto_gallery_paths_enumerated",
			Help: "Number of gallery paths returned by the last enumeration",
		},
	)
)

// Scanner metrics
var (
	ScannerOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pluto_scanner_operations_total",
			Help: "Total number of recursive scanner operations",
		},
		[]string{"operation"},
	)

	ScannerDirectoriesRead = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pluto_scanner_directories_read_total",
			Help: "Total number of directory listings read by the scanner",
		},
		[]string{"operation"},
	)

	ScannerReadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pluto_scanner_read_errors_total",
			Help: "Total number of folders treated as empty because they could not be read",
		},
		[]string{"operation"},
	)
)

// Thumbnail metrics
var (
	ThumbnailGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pluto_thumbnail_generations_total",
			Help: "Total number of folder thumbnails processed",
		},
		[]string{"status"}, // "generated", "skipped" or "failed"
	)

	ThumbnailGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pluto_thumbnail_generation_duration_seconds",
			Help:    "Thumbnail generation duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"decoder"}, // "vips" or "imaging"
	)

	ThumbnailRunLastDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pluto_thumbnail_run_last_duration_seconds",
			Help: "Duration of the last thumbnail generation run in seconds",
		},
	)

	ThumbnailRunLastTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pluto_thumbnail_run_last_timestamp",
			Help: "Unix timestamp of the last thumbnail generation run completion",
		},
	)

	ThumbnailRunFiles = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pluto_thumbnail_run_files",
			Help: "Folders per status in the last thumbnail generation run",
		},
		[]string{"status"},
	)
)

// Site configuration metrics
var (
	SiteConfigLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pluto_site_config_loads_total",
			Help: "Total number of site configuration loads",
		},
		[]string{"status"}, // "ok" or "default"
	)
)

// Filesystem metrics
var (
	FilesystemRetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pluto_filesystem_retry_attempts_total",
			Help: "Total number of filesystem operation retries after a stale file handle",
		},
		[]string{"operation", "volume"},
	)

	FilesystemRetrySuccess = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pluto_filesystem_retry_success_total",
			Help: "Total number of filesystem operations that succeeded after retrying",
		},
		[]string{"operation", "volume"},
	)

	FilesystemRetryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pluto_filesystem_retry_failures_total",
			Help: "Total number of filesystem operations that failed after all retries",
		},
		[]string{"operation", "volume"},
	)

	FilesystemStaleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pluto_filesystem_stale_errors_total",
			Help: "Total number of ESTALE errors observed",
		},
		[]string{"operation", "volume"},
	)

	FilesystemRetryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pluto_filesystem_retry_duration_seconds",
			Help:    "Duration of filesystem operations including retries",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation", "volume"},
	)
)

// Application info metric
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pluto_app_info",
			Help: "Application build information",
		},
		[]string{"version", "commit", "go_version"},
	)
)

// SetAppInfo sets the application info metric
func SetAppInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}

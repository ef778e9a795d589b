// Package metrics provides Prometheus instrumentation for the gallery server
// and the pluto command line tool.
//
// All metrics are prefixed with "pluto_" and registered with the default
// registry through promauto.
//
// # Metric Categories
//
//   - HTTP: request counts, durations and in-flight requests of the query surface
//   - Gallery: index passes by status, pass duration, entries returned, enumerated paths
//   - Scanner: recursive operations, directory listings read, folders treated as empty
//   - Thumbnail: per-folder outcomes (generated/skipped/failed), encode duration per
//     decoder, last run summary
//   - Site config: loads that succeeded versus fell back to defaults
//   - Filesystem: ESTALE retries, recorded through [NewFilesystemObserver]
//
// # Usage
//
// Mount promhttp.Handler() on the metrics endpoint:
//
//	mux.Handle("/metrics", promhttp.Handler())
//
// Record from other packages through the exported variables:
//
//	metrics.ScannerReadErrors.WithLabelValues("image_count").Inc()
//
// # Prometheus Queries
//
// Thumbnail regeneration ratio:
//
//	pluto_thumbnail_run_files{status="generated"} /
//	(pluto_thumbnail_run_files{status="generated"} + pluto_thumbnail_run_files{status="skipped"})
//
// Unreadable folders per minute:
//
//	sum(rate(pluto_scanner_read_errors_total[1m])) by (operation)
package metrics

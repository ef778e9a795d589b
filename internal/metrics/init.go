package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup.
func InitializeMetrics() {
	for _, status := range []string{"found", "missing"} {
		GalleryIndexTotal.WithLabelValues(status)
	}
	for _, kind := range []string{"folder", "image"} {
		GalleryItemsReturned.WithLabelValues(kind)
	}

	for _, op := range []string{"first_image", "image_count", "walk_folders", "index"} {
		ScannerOperationsTotal.WithLabelValues(op)
		ScannerDirectoriesRead.WithLabelValues(op)
		ScannerReadErrors.WithLabelValues(op)
	}

	for _, status := range []string{"generated", "skipped", "failed"} {
		ThumbnailGenerationsTotal.WithLabelValues(status)
		ThumbnailRunFiles.WithLabelValues(status)
	}
	for _, decoder := range []string{"vips", "imaging"} {
		ThumbnailGenerationDuration.WithLabelValues(decoder)
	}

	for _, status := range []string{"ok", "default"} {
		SiteConfigLoadsTotal.WithLabelValues(status)
	}

	volumes := []string{"galleries", "thumbnails", "unknown"}
	for _, op := range []string{"stat", "readdir", "readfile"} {
		for _, vol := range volumes {
			FilesystemRetryAttempts.WithLabelValues(op, vol)
			FilesystemRetrySuccess.WithLabelValues(op, vol)
			FilesystemRetryFailures.WithLabelValues(op, vol)
			FilesystemStaleErrors.WithLabelValues(op, vol)
			FilesystemRetryDuration.WithLabelValues(op, vol)
		}
	}
}

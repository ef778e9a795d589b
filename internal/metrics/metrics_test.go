package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"HTTPRequestsTotal", HTTPRequestsTotal},
		{"HTTPRequestDuration", HTTPRequestDuration},
		{"HTTPRequestsInFlight", HTTPRequestsInFlight},
		{"GalleryIndexTotal", GalleryIndexTotal},
		{"GalleryIndexDuration", GalleryIndexDuration},
		{"GalleryItemsReturned", GalleryItemsReturned},
		{"GalleryPathsEnumerated", GalleryPathsEnumerated},
		{"ScannerOperationsTotal", ScannerOperationsTotal},
		{"ScannerDirectoriesRead", ScannerDirectoriesRead},
		{"ScannerReadErrors", ScannerReadErrors},
		{"ThumbnailGenerationsTotal", ThumbnailGenerationsTotal},
		{"ThumbnailGenerationDuration", ThumbnailGenerationDuration},
		{"ThumbnailRunLastDuration", ThumbnailRunLastDuration},
		{"ThumbnailRunLastTimestamp", ThumbnailRunLastTimestamp},
		{"ThumbnailRunFiles", ThumbnailRunFiles},
		{"SiteConfigLoadsTotal", SiteConfigLoadsTotal},
		{"FilesystemRetryAttempts", FilesystemRetryAttempts},
		{"FilesystemRetrySuccess", FilesystemRetrySuccess},
		{"FilesystemRetryFailures", FilesystemRetryFailures},
		{"FilesystemStaleErrors", FilesystemStaleErrors},
		{"FilesystemRetryDuration", FilesystemRetryDuration},
		{"AppInfo", AppInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestInitializeMetricsPopulatesLabels(t *testing.T) {
	InitializeMetrics()

	if n := testutil.CollectAndCount(ThumbnailGenerationsTotal); n != 3 {
		t.Errorf("ThumbnailGenerationsTotal series = %d, want 3", n)
	}
	if n := testutil.CollectAndCount(GalleryIndexTotal); n != 2 {
		t.Errorf("GalleryIndexTotal series = %d, want 2", n)
	}
	if n := testutil.CollectAndCount(FilesystemStaleErrors); n != 9 {
		t.Errorf("FilesystemStaleErrors series = %d, want 9", n)
	}
}

func TestFilesystemObserver(t *testing.T) {
	o := NewFilesystemObserver()

	before := testutil.ToFloat64(FilesystemRetryAttempts.WithLabelValues("readdir", "galleries"))
	o.ObserveRetryAttempt("readdir", "galleries")
	o.ObserveRetryAttempt("readdir", "galleries")
	after := testutil.ToFloat64(FilesystemRetryAttempts.WithLabelValues("readdir", "galleries"))

	if after-before != 2 {
		t.Errorf("retry attempts delta = %v, want 2", after-before)
	}

	staleBefore := testutil.ToFloat64(FilesystemStaleErrors.WithLabelValues("stat", "thumbnails"))
	o.ObserveStaleError("stat", "thumbnails")
	if got := testutil.ToFloat64(FilesystemStaleErrors.WithLabelValues("stat", "thumbnails")); got-staleBefore != 1 {
		t.Errorf("stale errors delta = %v, want 1", got-staleBefore)
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("1.2.3", "abc123", "go1.25")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("1.2.3", "abc123", "go1.25")); got != 1 {
		t.Errorf("AppInfo = %v, want 1", got)
	}
}

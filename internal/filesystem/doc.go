/*
Package filesystem wraps the read-only filesystem calls made against the
gallery and thumbnail trees with retry logic for NFS stale file handle errors.

Galleries are often served from network mounts. When the server side replaces
a directory, a client may see ESTALE (errno 116) for a short while. Those
errors are retried with exponential backoff; every other error is returned
immediately.

# Usage

	entries, err := filesystem.ReadDirWithRetry(dir, filesystem.DefaultRetryConfig())
	info, err := filesystem.StatWithRetry(thumbPath, filesystem.DefaultRetryConfig())
	data, err := filesystem.ReadFileWithRetry(descPath, filesystem.DefaultRetryConfig())

# Metrics

Retry attempts, successes, failures, stale errors and durations are reported
through an [Observer] installed with [SetObserver]. Paths are labeled by volume
using a [VolumeResolver]:

	filesystem.SetDefaultVolumeResolver(filesystem.NewVolumeResolver(map[string]string{
	    "galleries":  cfg.GalleryRoot,
	    "thumbnails": cfg.ThumbnailRoot,
	}))
	filesystem.SetObserver(metrics.NewFilesystemObserver())

Without an observer nothing is recorded, which is what tests rely on.
*/
package filesystem

package thumbnail

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"pluto-gallery/internal/filesystem"
	"pluto-gallery/internal/logging"
	"pluto-gallery/internal/metrics"
	"pluto-gallery/internal/scanner"
)

// Thumbnail geometry and encoding.
const (
	DefaultWidth   = 400
	DefaultHeight  = 400
	DefaultQuality = 85
)

// ErrGalleryRootMissing is returned by Run when the gallery root does not exist.
var ErrGalleryRootMissing = errors.New("gallery root does not exist")

// Stats summarizes a generation run. Folders without images are not counted.
type Stats struct {
	Generated int
	Skipped   int
	Failed    int
}

// Total returns the number of folders that have a thumbnail source.
func (s Stats) Total() int {
	return s.Generated + s.Skipped + s.Failed
}

// Generator renders one thumbnail per gallery folder into a mirrored tree:
// the folder "A/B" gets "<thumbRoot>/A/B.jpg" from its first image.
type Generator struct {
	galleryRoot string
	thumbRoot   string
	width       int
	height      int
	quality     int
	force       bool
	scanner     *scanner.Scanner
	retry       filesystem.RetryConfig
}

// Option configures a Generator.
type Option func(*Generator)

// WithForce regenerates every thumbnail regardless of modification times.
func WithForce(force bool) Option {
	return func(g *Generator) {
		g.force = force
	}
}

// WithSize overrides the thumbnail dimensions.
func WithSize(width, height int) Option {
	return func(g *Generator) {
		g.width = width
		g.height = height
	}
}

// WithQuality overrides the JPEG quality (1-100).
func WithQuality(quality int) Option {
	return func(g *Generator) {
		g.quality = quality
	}
}

// WithScanner replaces the default scanner.
func WithScanner(s *scanner.Scanner) Option {
	return func(g *Generator) {
		g.scanner = s
	}
}

// NewGenerator creates a Generator reading from galleryRoot and writing to
// thumbRoot.
func NewGenerator(galleryRoot, thumbRoot string, opts ...Option) *Generator {
	g := &Generator{
		galleryRoot: galleryRoot,
		thumbRoot:   thumbRoot,
		width:       DefaultWidth,
		height:      DefaultHeight,
		quality:     DefaultQuality,
		scanner:     scanner.New(),
		retry:       filesystem.DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ThumbnailPath returns the thumbnail file for the gallery folder rel.
func (g *Generator) ThumbnailPath(rel string) string {
	return filepath.Join(g.thumbRoot, filepath.FromSlash(rel)+".jpg")
}

// Run walks the whole gallery and brings every folder thumbnail up to date.
// Folders are processed one at a time. Per-folder failures are logged and
// counted; the only error returned is for a missing gallery root or an
// unwritable thumbnail root.
func (g *Generator) Run() (Stats, error) {
	var stats Stats
	start := time.Now()

	info, err := filesystem.StatWithRetry(g.galleryRoot, g.retry)
	if err != nil || !info.IsDir() {
		return stats, fmt.Errorf("%w: %s", ErrGalleryRootMissing, g.galleryRoot)
	}

	if err := os.MkdirAll(g.thumbRoot, 0o755); err != nil {
		return stats, fmt.Errorf("creating thumbnail root %s: %w", g.thumbRoot, err)
	}

	logging.Info("Generating thumbnails from %s into %s", g.galleryRoot, g.thumbRoot)

	g.scanner.WalkFolders(g.galleryRoot, func(rel, full string) {
		status := g.processFolder(rel, full)
		metrics.ThumbnailGenerationsTotal.WithLabelValues(status).Inc()
		switch status {
		case "generated":
			stats.Generated++
		case "skipped":
			stats.Skipped++
		case "failed":
			stats.Failed++
		}
	})

	metrics.ThumbnailRunLastDuration.Set(time.Since(start).Seconds())
	metrics.ThumbnailRunLastTimestamp.Set(float64(time.Now().Unix()))
	metrics.ThumbnailRunFiles.WithLabelValues("generated").Set(float64(stats.Generated))
	metrics.ThumbnailRunFiles.WithLabelValues("skipped").Set(float64(stats.Skipped))
	metrics.ThumbnailRunFiles.WithLabelValues("failed").Set(float64(stats.Failed))

	logging.Info("Thumbnail generation complete: %d generated, %d skipped, %d failed in %v",
		stats.Generated, stats.Skipped, stats.Failed, time.Since(start).Round(time.Millisecond))

	return stats, nil
}

// processFolder returns "generated", "skipped", "failed", or "" when the
// folder has no image to make a thumbnail from.
func (g *Generator) processFolder(rel, full string) string {
	first, ok := g.scanner.FirstImage(full)
	if !ok {
		logging.Debug("No images under %s, no thumbnail", rel)
		return ""
	}

	src := filepath.Join(full, filepath.FromSlash(first))
	dst := g.ThumbnailPath(rel)

	if !g.force {
		stale, err := g.isStale(src, dst)
		if err != nil {
			logging.Error("Error checking thumbnail %s: %v", dst, err)
			return "failed"
		}
		if !stale {
			logging.Debug("Skipped (up-to-date): %s", dst)
			return "skipped"
		}
	}

	if err := g.generate(src, dst); err != nil {
		logging.Error("Error generating thumbnail for %s: %v", src, err)
		return "failed"
	}

	logging.Info("Generated thumbnail: %s", dst)
	return "generated"
}

// isStale reports whether dst is missing or older than src.
func (g *Generator) isStale(src, dst string) (bool, error) {
	thumbInfo, err := filesystem.StatWithRetry(dst, g.retry)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	srcInfo, err := filesystem.StatWithRetry(src, g.retry)
	if err != nil {
		return false, err
	}

	return srcInfo.ModTime().After(thumbInfo.ModTime()), nil
}

// generate renders src and replaces dst atomically.
func (g *Generator) generate(src, dst string) error {
	start := time.Now()

	data, decoder, err := g.render(src)
	if err != nil {
		return err
	}

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".thumb-*.jpg")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing thumbnail: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing thumbnail: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		logging.Warn("Failed to set permissions on %s: %v", tmpName, err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("moving thumbnail into place: %w", err)
	}

	metrics.ThumbnailGenerationDuration.WithLabelValues(decoder).Observe(time.Since(start).Seconds())
	return nil
}

// render tries libvips first when it is running and falls back to imaging.
func (g *Generator) render(src string) ([]byte, string, error) {
	if IsVipsAvailable() {
		data, err := renderWithVips(src, g.width, g.height, g.quality)
		if err == nil {
			return data, "vips", nil
		}
		logging.Debug("vips failed for %s, falling back to imaging: %v", src, err)
	}

	data, err := renderWithImaging(src, g.width, g.height, g.quality)
	if err != nil {
		return nil, "imaging", err
	}
	return data, "imaging", nil
}

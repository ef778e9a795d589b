package gallery

import (
	"path/filepath"
	"time"

	"pluto-gallery/internal/filesystem"
	"pluto-gallery/internal/logging"
	"pluto-gallery/internal/mediatypes"
	"pluto-gallery/internal/metrics"
	"pluto-gallery/internal/scanner"
)

// Indexer builds GalleryData for folders under a gallery root. It is
// immutable after construction and safe for concurrent use; every call reads
// the filesystem afresh.
type Indexer struct {
	root      string
	thumbRoot string
	basePath  string
	scanner   *scanner.Scanner
	retry     filesystem.RetryConfig
}

// Option configures an Indexer.
type Option func(*Indexer)

// WithBasePath prefixes image and thumbnail URLs with base, e.g. "/pics/".
func WithBasePath(base string) Option {
	return func(ix *Indexer) {
		ix.basePath = normalizeBasePath(base)
	}
}

// WithThumbnailRoot enables pre-generated folder thumbnails from dir.
func WithThumbnailRoot(dir string) Option {
	return func(ix *Indexer) {
		ix.thumbRoot = dir
	}
}

// WithScanner replaces the default scanner.
func WithScanner(s *scanner.Scanner) Option {
	return func(ix *Indexer) {
		ix.scanner = s
	}
}

// NewIndexer creates an Indexer for the gallery tree at root.
func NewIndexer(root string, opts ...Option) *Indexer {
	ix := &Indexer{
		root:     root,
		basePath: "/",
		scanner:  scanner.New(),
		retry:    filesystem.DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Root returns the gallery root directory.
func (ix *Indexer) Root() string {
	return ix.root
}

// ThumbnailRoot returns the thumbnail directory, or "" when disabled.
func (ix *Indexer) ThumbnailRoot() string {
	return ix.thumbRoot
}

// Index returns the listing of the folder at galleryPath. A missing folder
// yields an empty listing whose parent path and breadcrumbs are still derived
// from galleryPath. Read errors are logged and never returned.
func (ix *Indexer) Index(galleryPath string) *GalleryData {
	start := time.Now()
	defer func() {
		metrics.GalleryIndexDuration.Observe(time.Since(start).Seconds())
	}()

	rel := NormalizePath(galleryPath)

	data := &GalleryData{
		CurrentPath: galleryPath,
		Folders:     []GalleryItem{},
		Images:      []GalleryItem{},
		ParentPath:  ParentPath(rel),
		Breadcrumbs: BuildBreadcrumbs(rel),
	}

	fullPath := filepath.Join(ix.root, filepath.FromSlash(rel))
	info, err := filesystem.StatWithRetry(fullPath, ix.retry)
	if err != nil || !info.IsDir() {
		logging.Debug("Gallery folder %s not found", fullPath)
		metrics.GalleryIndexTotal.WithLabelValues("missing").Inc()
		return data
	}
	metrics.GalleryIndexTotal.WithLabelValues("found").Inc()

	metrics.ScannerDirectoriesRead.WithLabelValues("index").Inc()
	entries, err := ix.scanner.List(fullPath)
	if err != nil {
		logging.Error("Error reading gallery path %s: %v", fullPath, err)
		metrics.ScannerReadErrors.WithLabelValues("index").Inc()
	}

	for _, e := range entries {
		itemRel := joinRel(rel, e.Name)

		switch mediatypes.Classify(e.Name, e.IsDir) {
		case mediatypes.FileTypeFolder:
			data.Folders = append(data.Folders, ix.folderItem(e, itemRel))
		case mediatypes.FileTypeImage:
			data.Images = append(data.Images, GalleryItem{
				Name:     e.Name,
				Path:     ix.basePath + GalleriesURLSegment + "/" + itemRel,
				IsFolder: false,
			})
		case mediatypes.FileTypeDescription:
			content, err := filesystem.ReadFileWithRetry(e.Path, ix.retry)
			if err != nil {
				logging.Warn("Error reading description %s: %v", e.Path, err)
				continue
			}
			data.Description = string(content)
		}
	}

	sortByName(data.Folders)
	sortByName(data.Images)
	data.ImagesCount = len(data.Images)

	metrics.GalleryItemsReturned.WithLabelValues("folder").Observe(float64(len(data.Folders)))
	metrics.GalleryItemsReturned.WithLabelValues("image").Observe(float64(len(data.Images)))

	return data
}

func (ix *Indexer) folderItem(e scanner.Entry, rel string) GalleryItem {
	count := ix.scanner.ImageCount(e.Path)
	return GalleryItem{
		Name:      e.Name,
		Path:      "/" + rel,
		IsFolder:  true,
		Thumbnail: ix.folderThumbnail(e.Path, rel),
		Count:     &count,
	}
}

// folderThumbnail prefers a pre-generated thumbnail, then falls back to the
// folder's first image. It returns "" when the subtree has no images.
func (ix *Indexer) folderThumbnail(full, rel string) string {
	if ix.thumbRoot != "" {
		thumbPath := filepath.Join(ix.thumbRoot, filepath.FromSlash(rel)+".jpg")
		if info, err := filesystem.StatWithRetry(thumbPath, ix.retry); err == nil && info.Mode().IsRegular() {
			return ix.basePath + ThumbnailsURLSegment + "/" + rel + ".jpg"
		}
	}

	if first, ok := ix.scanner.FirstImage(full); ok {
		return ix.basePath + GalleriesURLSegment + "/" + rel + "/" + first
	}
	return ""
}

// AllPaths returns every gallery path: "/" first, then one "/<rel>" per
// folder in depth-first pre-order. A missing root yields just "/".
func (ix *Indexer) AllPaths() []string {
	paths := []string{"/"}

	if info, err := filesystem.StatWithRetry(ix.root, ix.retry); err != nil || !info.IsDir() {
		logging.Debug("Gallery root %s not found", ix.root)
		metrics.GalleryPathsEnumerated.Set(1)
		return paths
	}

	ix.scanner.WalkFolders(ix.root, func(rel, _ string) {
		paths = append(paths, "/"+rel)
	})

	metrics.GalleryPathsEnumerated.Set(float64(len(paths)))
	return paths
}

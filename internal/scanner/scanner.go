package scanner

import (
	"os"
	"path"
	"path/filepath"

	"pluto-gallery/internal/filesystem"
	"pluto-gallery/internal/logging"
	"pluto-gallery/internal/mediatypes"
	"pluto-gallery/internal/metrics"
)

// DefaultMaxDepth bounds recursion through directory symlink loops that the
// operating system does not report as errors.
const DefaultMaxDepth = 64

// Scanner walks gallery folder trees. It holds no state between calls.
type Scanner struct {
	retry    filesystem.RetryConfig
	maxDepth int
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithRetryConfig overrides the filesystem retry settings.
func WithRetryConfig(cfg filesystem.RetryConfig) Option {
	return func(s *Scanner) {
		s.retry = cfg
	}
}

// WithMaxDepth overrides the recursion depth limit.
func WithMaxDepth(depth int) Option {
	return func(s *Scanner) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// New creates a Scanner.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		retry:    filesystem.DefaultRetryConfig(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Entry is a directory child with symlinks resolved.
type Entry struct {
	Name  string
	Path  string // OS path of the entry
	IsDir bool
}

// List returns the children of folder in filename order, following symlinks
// the way os.Stat does. Children that cannot be stat'ed are logged and
// skipped.
func (s *Scanner) List(folder string) ([]Entry, error) {
	dirEntries, err := filesystem.ReadDirWithRetry(folder, s.retry)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		full := filepath.Join(folder, de.Name())

		isDir := de.IsDir()
		if de.Type()&os.ModeSymlink != 0 {
			info, err := filesystem.StatWithRetry(full, s.retry)
			if err != nil {
				logging.Warn("Skipping unreadable entry %s: %v", full, err)
				continue
			}
			isDir = info.IsDir()
		}

		entries = append(entries, Entry{Name: de.Name(), Path: full, IsDir: isDir})
	}
	return entries, nil
}

// readDir is List for the recursive walks: a folder that cannot be read is
// logged and reported as empty.
func (s *Scanner) readDir(op, folder string) []Entry {
	metrics.ScannerDirectoriesRead.WithLabelValues(op).Inc()

	entries, err := s.List(folder)
	if err != nil {
		logging.Warn("Error reading folder %s: %v", folder, err)
		metrics.ScannerReadErrors.WithLabelValues(op).Inc()
		return nil
	}
	return entries
}

func (s *Scanner) tooDeep(op, folder string, depth int) bool {
	if depth <= s.maxDepth {
		return false
	}
	logging.Warn("Not descending into %s: depth limit %d reached", folder, s.maxDepth)
	metrics.ScannerReadErrors.WithLabelValues(op).Inc()
	return true
}

// FirstImage returns the path, relative to folder and slash separated, of the
// first image found in a depth-first pre-order walk. Entries are visited in
// filename order and subfolders are searched before later siblings.
func (s *Scanner) FirstImage(folder string) (string, bool) {
	metrics.ScannerOperationsTotal.WithLabelValues("first_image").Inc()
	return s.firstImage(folder, 0)
}

func (s *Scanner) firstImage(folder string, depth int) (string, bool) {
	if s.tooDeep("first_image", folder, depth) {
		return "", false
	}

	for _, e := range s.readDir("first_image", folder) {
		if !e.IsDir {
			if mediatypes.IsImage(e.Name) {
				return e.Name, true
			}
			continue
		}
		if sub, ok := s.firstImage(e.Path, depth+1); ok {
			return path.Join(e.Name, sub), true
		}
	}
	return "", false
}

// ImageCount returns the number of images in folder and all of its
// subfolders. Unreadable folders count as zero.
func (s *Scanner) ImageCount(folder string) int {
	metrics.ScannerOperationsTotal.WithLabelValues("image_count").Inc()
	return s.imageCount(folder, 0)
}

func (s *Scanner) imageCount(folder string, depth int) int {
	if s.tooDeep("image_count", folder, depth) {
		return 0
	}

	count := 0
	for _, e := range s.readDir("image_count", folder) {
		if e.IsDir {
			count += s.imageCount(e.Path, depth+1)
		} else if mediatypes.IsImage(e.Name) {
			count++
		}
	}
	return count
}

// WalkFolders calls fn for every folder below root in depth-first pre-order.
// rel is slash separated and relative to root; full is the OS path.
// Unreadable folders are logged and their subtrees skipped.
func (s *Scanner) WalkFolders(root string, fn func(rel, full string)) {
	metrics.ScannerOperationsTotal.WithLabelValues("walk_folders").Inc()
	s.walkFolders(root, "", 0, fn)
}

func (s *Scanner) walkFolders(folder, rel string, depth int, fn func(rel, full string)) {
	if s.tooDeep("walk_folders", folder, depth) {
		return
	}

	for _, e := range s.readDir("walk_folders", folder) {
		if !e.IsDir {
			continue
		}
		childRel := e.Name
		if rel != "" {
			childRel = rel + "/" + e.Name
		}
		fn(childRel, e.Path)
		s.walkFolders(e.Path, childRel, depth+1, fn)
	}
}

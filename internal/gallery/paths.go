package gallery

import (
	"path"
	"strings"
)

// NormalizePath turns a gallery path as received from a URL or the command
// line into a slash-separated path relative to the gallery root. The root
// itself is "". Leading and trailing slashes are dropped, repeated slashes are
// collapsed, and ".." cannot climb above the root.
func NormalizePath(galleryPath string) string {
	p := strings.Trim(galleryPath, "/")
	if p == "" {
		return ""
	}
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

// ParentPath returns the gallery path one level up from rel, or nil at the root.
func ParentPath(rel string) *string {
	if rel == "" {
		return nil
	}

	parent := "/"
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		parent = "/" + rel[:i]
	}
	return &parent
}

// BuildBreadcrumbs returns the chain from the root to rel. The first entry is
// always the root.
func BuildBreadcrumbs(rel string) []Breadcrumb {
	breadcrumbs := []Breadcrumb{
		{Name: RootBreadcrumbName, Path: "/"},
	}

	if rel == "" {
		return breadcrumbs
	}

	currentPath := ""
	for _, part := range strings.Split(rel, "/") {
		currentPath += "/" + part
		breadcrumbs = append(breadcrumbs, Breadcrumb{
			Name: part,
			Path: currentPath,
		})
	}

	return breadcrumbs
}

// normalizeBasePath returns base as "/", or "/x/" with exactly one leading and
// one trailing slash.
func normalizeBasePath(base string) string {
	base = strings.Trim(base, "/")
	if base == "" {
		return "/"
	}
	return "/" + base + "/"
}

// joinRel appends name to a root-relative path.
func joinRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}

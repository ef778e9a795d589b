package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"pluto-gallery/internal/logging"
	"pluto-gallery/internal/mediatypes"

	"github.com/gorilla/mux"
)

// ServeGalleryImage serves a full-size image from the gallery root.
// Only image files are served; description files and other entries are 404.
func (h *Handlers) ServeGalleryImage(w http.ResponseWriter, r *http.Request) {
	h.serveImage(w, r, h.indexer.Root(), "public, max-age=3600")
}

// ServeThumbnail serves a pre-generated folder thumbnail.
func (h *Handlers) ServeThumbnail(w http.ResponseWriter, r *http.Request) {
	root := h.indexer.ThumbnailRoot()
	if root == "" {
		http.NotFound(w, r)
		return
	}
	h.serveImage(w, r, root, "public, max-age=86400")
}

func (h *Handlers) serveImage(w http.ResponseWriter, r *http.Request, root, cacheControl string) {
	rel := mux.Vars(r)["path"]
	if rel == "" || !mediatypes.IsImage(rel) {
		http.NotFound(w, r)
		return
	}

	fullPath, ok := resolveUnder(root, rel)
	if !ok {
		logging.Warn("Rejected path outside %s: %q", root, rel)
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", mediatypes.GetMimeType(mediatypes.Ext(rel)))
	w.Header().Set("Cache-Control", cacheControl)
	http.ServeFile(w, r, fullPath)
}

// resolveUnder joins rel onto root and reports whether the result stays
// inside root.
func resolveUnder(root, rel string) (string, bool) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	full := filepath.Join(absRoot, filepath.FromSlash(rel))
	r, err := filepath.Rel(absRoot, full)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", false
	}
	return full, true
}

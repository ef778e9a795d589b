package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// GetGallery returns the listing for a gallery path. The path comes from the
// route (/api/gallery/{path}) or the "path" query parameter and defaults to
// the root.
func (h *Handlers) GetGallery(w http.ResponseWriter, r *http.Request) {
	galleryPath := "/"
	if p, ok := mux.Vars(r)["path"]; ok && p != "" {
		galleryPath = "/" + p
	} else if q := r.URL.Query().Get("path"); q != "" {
		galleryPath = q
	}

	data := h.indexer.Index(galleryPath)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	writeJSON(w, data)
}

// GetConfig returns the site configuration.
func (h *Handlers) GetConfig(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, h.site)
}

// GetPaths returns every gallery path, root first.
func (h *Handlers) GetPaths(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	writeJSON(w, h.indexer.AllPaths())
}

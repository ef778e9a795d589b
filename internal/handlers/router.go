package handlers

import (
	"net/http"

	"pluto-gallery/internal/gallery"

	"github.com/gorilla/mux"
)

// NewRouter registers every gallery route on a new router.
func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/gallery", h.GetGallery).Methods("GET")
	api.HandleFunc("/gallery/{path:.*}", h.GetGallery).Methods("GET")
	api.HandleFunc("/config", h.GetConfig).Methods("GET")
	api.HandleFunc("/paths", h.GetPaths).Methods("GET")
	api.NotFoundHandler = http.HandlerFunc(NotFoundJSON)

	r.HandleFunc("/"+gallery.GalleriesURLSegment+"/{path:.*}", h.ServeGalleryImage).Methods("GET", "HEAD")
	r.HandleFunc("/"+gallery.ThumbnailsURLSegment+"/{path:.*}", h.ServeThumbnail).Methods("GET", "HEAD")

	return r
}

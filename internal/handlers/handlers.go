package handlers

import (
	"time"

	"pluto-gallery/internal/gallery"
	"pluto-gallery/internal/siteconfig"
)

// Handlers serves the gallery query surface. It holds no mutable state, so
// one instance is shared by all requests.
type Handlers struct {
	indexer   *gallery.Indexer
	site      siteconfig.GalleryConfig
	startTime time.Time
}

// New creates the handlers for an indexer and the loaded site configuration.
func New(idx *gallery.Indexer, site siteconfig.GalleryConfig) *Handlers {
	return &Handlers{
		indexer:   idx,
		site:      site,
		startTime: time.Now(),
	}
}

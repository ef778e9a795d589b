package gallery

// GalleryItem is one entry of a gallery listing: an image or a subfolder.
type GalleryItem struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	IsFolder bool   `json:"isFolder"`
	// Folders only: URL of a representative image, when one exists.
	Thumbnail string `json:"thumbnail,omitempty"`
	// Folders only: images in the folder's whole subtree.
	Count *int `json:"count,omitempty"`
}

// Breadcrumb is one step of the root-to-current navigation chain.
type Breadcrumb struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// GalleryData is the snapshot of a single gallery folder.
type GalleryData struct {
	CurrentPath string        `json:"currentPath"`
	Description string        `json:"description"`
	Folders     []GalleryItem `json:"folders"`
	Images      []GalleryItem `json:"images"`
	ParentPath  *string       `json:"parentPath"`
	Breadcrumbs []Breadcrumb  `json:"breadcrumbs"`
	// Direct images only, not recursive.
	ImagesCount int `json:"imagesCount"`
}

// RootBreadcrumbName labels the synthetic first breadcrumb.
const RootBreadcrumbName = "Gallery"

// URL path segments under which gallery images and thumbnails are served.
const (
	GalleriesURLSegment  = "galleries"
	ThumbnailsURLSegment = "thumbnails"
)

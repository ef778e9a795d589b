package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"pluto-gallery/internal/gallery"
	"pluto-gallery/internal/siteconfig"
)

type testServer struct {
	galleryRoot string
	thumbRoot   string
	router      http.Handler
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dir := t.TempDir()
	ts := &testServer{
		galleryRoot: filepath.Join(dir, "galleries"),
		thumbRoot:   filepath.Join(dir, "thumbnails"),
	}
	writeFile(t, ts.galleryRoot, "Trips/beach.jpg", "jpeg-bytes")
	writeFile(t, ts.galleryRoot, "Trips/gallery.md", "# Summer")
	writeFile(t, ts.galleryRoot, "Trips/Alps/peak.png", "png-bytes")
	writeFile(t, ts.galleryRoot, "cover.webp", "webp-bytes")
	writeFile(t, ts.thumbRoot, "Trips.jpg", "thumb-bytes")

	idx := gallery.NewIndexer(ts.galleryRoot, gallery.WithThumbnailRoot(ts.thumbRoot))
	site := siteconfig.Default()
	site.GalleryName = "Holidays"
	ts.router = NewRouter(New(idx, site))
	return ts
}

func (ts *testServer) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, httptest.NewRequest("GET", target, http.NoBody))
	return w
}

func decodeGallery(t *testing.T, w *httptest.ResponseRecorder) gallery.GalleryData {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var data gallery.GalleryData
	if err := json.Unmarshal(w.Body.Bytes(), &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return data
}

func TestGetGallery_Root(t *testing.T) {
	ts := newTestServer(t)
	data := decodeGallery(t, ts.get(t, "/api/gallery"))

	if data.CurrentPath != "/" {
		t.Errorf("CurrentPath = %q, want /", data.CurrentPath)
	}
	if len(data.Folders) != 1 || data.Folders[0].Name != "Trips" {
		t.Fatalf("Folders = %+v", data.Folders)
	}
	if got := data.Folders[0].Thumbnail; got != "/thumbnails/Trips.jpg" {
		t.Errorf("Trips thumbnail = %q, want generated thumbnail", got)
	}
	if data.Folders[0].Count == nil || *data.Folders[0].Count != 2 {
		t.Errorf("Trips count = %v, want 2", data.Folders[0].Count)
	}
	if len(data.Images) != 1 || data.Images[0].Path != "/galleries/cover.webp" {
		t.Errorf("Images = %+v", data.Images)
	}
}

func TestGetGallery_PathSources(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		target string
	}{
		{"route variable", "/api/gallery/Trips"},
		{"query parameter", "/api/gallery?path=/Trips"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := decodeGallery(t, ts.get(t, tt.target))

			if data.CurrentPath != "/Trips" {
				t.Errorf("CurrentPath = %q, want /Trips", data.CurrentPath)
			}
			if data.Description != "# Summer" {
				t.Errorf("Description = %q", data.Description)
			}
			if data.ParentPath == nil || *data.ParentPath != "/" {
				t.Errorf("ParentPath = %v, want /", data.ParentPath)
			}
			want := []gallery.Breadcrumb{{Name: "Gallery", Path: "/"}, {Name: "Trips", Path: "/Trips"}}
			if !reflect.DeepEqual(data.Breadcrumbs, want) {
				t.Errorf("Breadcrumbs = %v, want %v", data.Breadcrumbs, want)
			}
			if data.ImagesCount != 1 || len(data.Folders) != 1 {
				t.Errorf("ImagesCount=%d folders=%d, want 1/1", data.ImagesCount, len(data.Folders))
			}
		})
	}
}

func TestGetGallery_MissingFolder(t *testing.T) {
	ts := newTestServer(t)
	data := decodeGallery(t, ts.get(t, "/api/gallery/Nope/Deeper"))

	if len(data.Folders) != 0 || len(data.Images) != 0 {
		t.Errorf("expected empty listing, got %+v", data)
	}
	if data.ParentPath == nil || *data.ParentPath != "/Nope" {
		t.Errorf("ParentPath = %v, want /Nope", data.ParentPath)
	}
	if len(data.Breadcrumbs) != 3 {
		t.Errorf("Breadcrumbs = %v, want 3 entries", data.Breadcrumbs)
	}
}

func TestGetConfig(t *testing.T) {
	ts := newTestServer(t)
	w := ts.get(t, "/api/config")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var cfg siteconfig.GalleryConfig
	if err := json.Unmarshal(w.Body.Bytes(), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.GalleryName != "Holidays" || cfg.GalleryStyle != siteconfig.StyleLarge {
		t.Errorf("config = %+v", cfg)
	}
}

func TestGetPaths(t *testing.T) {
	ts := newTestServer(t)
	w := ts.get(t, "/api/paths")

	var paths []string
	if err := json.Unmarshal(w.Body.Bytes(), &paths); err != nil {
		t.Fatal(err)
	}
	want := []string{"/", "/Trips", "/Trips/Alps"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestUnknownAPIRoute(t *testing.T) {
	ts := newTestServer(t)
	w := ts.get(t, "/api/nothing")

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"error"`) {
		t.Errorf("body = %s, want JSON error", w.Body.String())
	}
}

func TestServeGalleryImage(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
		wantType   string
	}{
		{"nested image", "/galleries/Trips/Alps/peak.png", http.StatusOK, "png-bytes", "image/png"},
		{"root image", "/galleries/cover.webp", http.StatusOK, "webp-bytes", "image/webp"},
		{"description not served", "/galleries/Trips/gallery.md", http.StatusNotFound, "", ""},
		{"missing image", "/galleries/Trips/none.jpg", http.StatusNotFound, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.get(t, tt.target)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
			if tt.wantType != "" && w.Header().Get("Content-Type") != tt.wantType {
				t.Errorf("Content-Type = %q, want %q", w.Header().Get("Content-Type"), tt.wantType)
			}
		})
	}
}

func TestServeThumbnail(t *testing.T) {
	ts := newTestServer(t)
	w := ts.get(t, "/thumbnails/Trips.jpg")

	if w.Code != http.StatusOK || w.Body.String() != "thumb-bytes" {
		t.Errorf("status=%d body=%q", w.Code, w.Body.String())
	}
	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "max-age=86400") {
		t.Errorf("Cache-Control = %q", cc)
	}
}

func TestServeThumbnail_Disabled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.jpg", "x")
	router := NewRouter(New(gallery.NewIndexer(root), siteconfig.Default()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/thumbnails/a.jpg", http.NoBody))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestResolveUnder(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		rel string
		ok  bool
	}{
		{"a.jpg", true},
		{"x/y/z.jpg", true},
		{"../escape.jpg", false},
		{"x/../../escape.jpg", false},
		{"x/../inside.jpg", true},
	}

	for _, tt := range tests {
		full, ok := resolveUnder(root, tt.rel)
		if ok != tt.ok {
			t.Errorf("resolveUnder(%q) ok = %v, want %v", tt.rel, ok, tt.ok)
		}
		if ok && !strings.HasPrefix(full, root) {
			t.Errorf("resolveUnder(%q) = %q, outside %q", tt.rel, full, root)
		}
	}
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	var resp HealthResponse
	w := ts.get(t, "/healthz")
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusOK || resp.Status != statusHealthy {
		t.Errorf("status=%d health=%q, want 200 healthy", w.Code, resp.Status)
	}
	if !resp.GalleryRootExists || !resp.ThumbnailsPresent {
		t.Errorf("directory flags = %+v", resp)
	}
}

func TestHealthCheck_MissingRootIsDegraded(t *testing.T) {
	router := NewRouter(New(gallery.NewIndexer(filepath.Join(t.TempDir(), "missing")), siteconfig.Default()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", http.NoBody))

	var resp HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if w.Code != http.StatusOK || resp.Status != statusDegraded {
		t.Errorf("status=%d health=%q, want 200 degraded", w.Code, resp.Status)
	}
}

func TestLivenessCheck_Head(t *testing.T) {
	ts := newTestServer(t)

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, httptest.NewRequest("HEAD", "/livez", http.NoBody))
	if w.Code != http.StatusOK || w.Body.Len() != 0 {
		t.Errorf("HEAD /livez status=%d body=%q", w.Code, w.Body.String())
	}
}

func TestGetVersion(t *testing.T) {
	ts := newTestServer(t)
	w := ts.get(t, "/version")

	var info map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatal(err)
	}
	if len(info) == 0 {
		t.Error("expected build info fields")
	}
}

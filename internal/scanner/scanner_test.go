package scanner

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

// makeTree creates the given slash-separated files (and their parent folders)
// under root. Entries ending in "/" create empty folders.
func makeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestImageCount(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  int
	}{
		{"empty folder", []string{"A/"}, 0},
		{"direct images only", []string{"A/x.jpg", "A/y.PNG", "A/notes.txt"}, 2},
		{"nested", []string{"A/x.jpg", "A/B/y.png"}, 2},
		{"description is not an image", []string{"A/gallery.md", "A/B/c.webp"}, 1},
		{"deep tree", []string{"A/1.gif", "A/B/2.svg", "A/B/C/3.jpeg", "A/D/4.jpg", "A/D/E/"}, 4},
		{"folder named like an image", []string{"A/fake.jpg/", "A/real.jpg"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			makeTree(t, root, tt.files...)

			if got := New().ImageCount(filepath.Join(root, "A")); got != tt.want {
				t.Errorf("ImageCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestImageCount_SumOfChildren(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "A/a.jpg", "A/B/b1.jpg", "A/B/b2.jpg", "A/C/c.png", "A/C/D/d.gif")

	s := New()
	a := filepath.Join(root, "A")
	direct := 1
	sum := s.ImageCount(filepath.Join(a, "B")) + s.ImageCount(filepath.Join(a, "C"))

	if got := s.ImageCount(a); got != direct+sum {
		t.Errorf("ImageCount(A) = %d, want direct %d + children %d", got, direct, sum)
	}
}

func TestImageCount_MissingFolder(t *testing.T) {
	if got := New().ImageCount(filepath.Join(t.TempDir(), "nope")); got != 0 {
		t.Errorf("ImageCount() on missing folder = %d, want 0", got)
	}
}

func TestImageCount_UnreadableSubfolder(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	root := t.TempDir()
	makeTree(t, root, "A/x.jpg", "A/locked/y.jpg", "A/open/z.jpg")

	locked := filepath.Join(root, "A", "locked")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	if got := New().ImageCount(filepath.Join(root, "A")); got != 2 {
		t.Errorf("ImageCount() = %d, want 2 (locked folder counts as empty)", got)
	}
}

func TestImageCount_SymlinkLoopTerminates(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := t.TempDir()
	makeTree(t, root, "A/x.jpg")
	a := filepath.Join(root, "A")
	if err := os.Symlink(a, filepath.Join(a, "loop")); err != nil {
		t.Fatal(err)
	}

	// A, A/loop, A/loop/loop and A/loop/loop/loop are visited
	if got := New(WithMaxDepth(3)).ImageCount(a); got != 4 {
		t.Errorf("ImageCount() = %d, want 4", got)
	}
}

func TestFirstImage(t *testing.T) {
	tests := []struct {
		name   string
		files  []string
		want   string
		wantOK bool
	}{
		{"empty folder", []string{"A/"}, "", false},
		{"no images", []string{"A/readme.txt", "A/gallery.md"}, "", false},
		{"direct image", []string{"A/b.jpg", "A/c.jpg"}, "b.jpg", true},
		{"subfolder visited before later sibling", []string{"A/a/deep.png", "A/z.jpg"}, "a/deep.png", true},
		{"earlier file before later subfolder", []string{"A/a.jpg", "A/b/deep.png"}, "a.jpg", true},
		{"empty subfolder skipped", []string{"A/a/", "A/b/c/img.gif"}, "b/c/img.gif", true},
		{"uppercase extension", []string{"A/PHOTO.JPG"}, "PHOTO.JPG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			makeTree(t, root, tt.files...)

			got, ok := New().FirstImage(filepath.Join(root, "A"))
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FirstImage() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFirstImage_MissingFolder(t *testing.T) {
	if got, ok := New().FirstImage(filepath.Join(t.TempDir(), "nope")); ok {
		t.Errorf("FirstImage() on missing folder = %q, want none", got)
	}
}

func TestWalkFolders(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "A/B/y.png", "A/x.jpg", "C/", "A/D/", "top.jpg")

	var rels []string
	New().WalkFolders(root, func(rel, full string) {
		rels = append(rels, rel)
		if want := filepath.Join(root, filepath.FromSlash(rel)); full != want {
			t.Errorf("full = %q, want %q", full, want)
		}
	})

	want := []string{"A", "A/B", "A/D", "C"}
	if !reflect.DeepEqual(rels, want) {
		t.Errorf("WalkFolders visited %v, want %v", rels, want)
	}
}

func TestWalkFolders_MissingRoot(t *testing.T) {
	called := false
	New().WalkFolders(filepath.Join(t.TempDir(), "nope"), func(string, string) { called = true })
	if called {
		t.Error("callback invoked for missing root")
	}
}

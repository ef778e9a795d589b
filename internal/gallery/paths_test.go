package gallery

import (
	"reflect"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/", ""},
		{"", ""},
		{"//", ""},
		{"/A", "A"},
		{"A/", "A"},
		{"/A/B/", "A/B"},
		{"A/B", "A/B"},
		{"A//B", "A/B"},
		{"/../..", ""},
		{"/A/../B", "B"},
		{"/A/./B", "A/B"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizePath(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := NormalizePath(got); again != got {
				t.Errorf("NormalizePath not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestParentPath(t *testing.T) {
	tests := []struct {
		rel  string
		want *string
	}{
		{"", nil},
		{"A", strPtr("/")},
		{"A/B", strPtr("/A")},
		{"A/B/C", strPtr("/A/B")},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			got := ParentPath(tt.rel)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("ParentPath(%q) = %q, want nil", tt.rel, *got)
			case tt.want != nil && got == nil:
				t.Errorf("ParentPath(%q) = nil, want %q", tt.rel, *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("ParentPath(%q) = %q, want %q", tt.rel, *got, *tt.want)
			}
		})
	}
}

func TestBuildBreadcrumbs(t *testing.T) {
	tests := []struct {
		rel  string
		want []Breadcrumb
	}{
		{"", []Breadcrumb{{"Gallery", "/"}}},
		{"A", []Breadcrumb{{"Gallery", "/"}, {"A", "/A"}}},
		{"A/B/C", []Breadcrumb{{"Gallery", "/"}, {"A", "/A"}, {"B", "/A/B"}, {"C", "/A/B/C"}}},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			if got := BuildBreadcrumbs(tt.rel); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildBreadcrumbs(%q) = %v, want %v", tt.rel, got, tt.want)
			}
		})
	}
}

func TestNormalizeBasePath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "/"},
		{"/", "/"},
		{"pics", "/pics/"},
		{"/pics", "/pics/"},
		{"/pics/", "/pics/"},
		{"/a/b/", "/a/b/"},
	}

	for _, tt := range tests {
		if got := normalizeBasePath(tt.input); got != tt.want {
			t.Errorf("normalizeBasePath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSortByName(t *testing.T) {
	items := []GalleryItem{{Name: "b"}, {Name: "C"}, {Name: "A"}, {Name: "a"}, {Name: "B"}}
	sortByName(items)

	var got []string
	for _, it := range items {
		got = append(got, it.Name)
	}

	want := []string{"a", "A", "b", "B", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortByName order = %v, want %v", got, want)
	}

	// "B" does not sort before "a" even though 'B' < 'a' in byte order.
	pair := []GalleryItem{{Name: "B"}, {Name: "a"}}
	sortByName(pair)
	if pair[0].Name != "a" {
		t.Errorf("expected \"a\" before \"B\", got %v", pair)
	}
}

func strPtr(s string) *string {
	return &s
}

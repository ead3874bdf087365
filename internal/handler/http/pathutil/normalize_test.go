package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/articles/" + sampleID, want: "/articles/:id"},
		{path: "/articles/" + sampleID + "/", want: "/articles/:id"},
		{path: "/articles/" + sampleID + "?fields=title", want: "/articles/:id"},
		{path: "/my/articles/" + sampleID, want: "/my/articles/:id"},
		{path: "/admin/articles/" + sampleID, want: "/admin/articles/:id"},
		{path: "/admin/articles/" + sampleID + "/approve", want: "/admin/articles/:id/approve"},
		{path: "/admin/articles/" + sampleID + "/reject", want: "/admin/articles/:id/reject"},
		{path: "/admin/articles/" + sampleID + "/unpublish", want: "/admin/articles/:id/unpublish"},
		{path: "/articles", want: "/articles"},
		{path: "/healthz", want: "/healthz"},
		{path: "/metrics", want: "/metrics"},
		{path: "/auth/login", want: "/auth/login"},
		{path: "/unknown/path/123", want: "/unknown/path/123"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

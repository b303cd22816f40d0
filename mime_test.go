package berkas

import (
	"testing"
)

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"photo.jpg", "image/jpeg"},
		{"photo.JPG", "image/jpeg"},
		{"document.pdf", "application/pdf"},
		{"notes.txt", "text/plain"},
		{"report.csv", "text/csv"},
		{"readme.md", "text/markdown"},
		{"archive.zip", "application/zip"},
		{"video.mp4", "video/mp4"},
		{"path/to/page.html", "text/html"},
		{"unknown.xyz", "application/octet-stream"},
		{"no_extension", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := DetectContentType(tt.filename)
			if got != tt.want {
				t.Errorf("DetectContentType(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

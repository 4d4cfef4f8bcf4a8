package screenshot

import (
	"testing"
	"time"
)

func TestFilename(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	tests := []struct {
		name     string
		base     string
		format   string
		expected string
	}{
		{
			name:     "png",
			base:     "My_Deck_slide_1",
			format:   "png",
			expected: "My_Deck_slide_1_20250314_092653.png",
		},
		{
			name:     "jpeg",
			base:     "viewport",
			format:   "jpeg",
			expected: "viewport_20250314_092653.jpeg",
		},
		{
			name:     "empty format falls back to png",
			base:     "slide",
			format:   "",
			expected: "slide_20250314_092653.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filename(tt.base, tt.format, at)
			if got != tt.expected {
				t.Errorf("Filename(%q, %q)\n  got:  %q\n  want: %q", tt.base, tt.format, got, tt.expected)
			}
		})
	}
}

func TestNewCapturerDefaults(t *testing.T) {
	c := NewCapturer("shots", "", 95)
	if c.format != "png" {
		t.Errorf("format = %q, want %q", c.format, "png")
	}
	if c.Dir() != "shots" {
		t.Errorf("Dir() = %q, want %q", c.Dir(), "shots")
	}
}

func TestRequestQuality(t *testing.T) {
	png := NewCapturer("shots", "png", 95)
	if req := png.request(); req.Quality != nil {
		t.Error("png request should not carry a quality setting")
	}

	jpeg := NewCapturer("shots", "jpeg", 80)
	req := jpeg.request()
	if req.Quality == nil || *req.Quality != 80 {
		t.Errorf("jpeg request quality = %v, want 80", req.Quality)
	}
}

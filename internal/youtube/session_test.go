package youtube

import (
	"strings"
	"testing"
)

func TestExtractDeduplicates(t *testing.T) {
	e := NewExtractor()

	if !e.Extract("https://youtu.be/dQw4w9WgXcQ") {
		t.Fatal("first extraction should report a new link")
	}
	// Same video through every other raw shape.
	for _, raw := range []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/v/dQw4w9WgXcQ",
	} {
		if e.Extract(raw) {
			t.Errorf("Extract(%q) = true, want false for an already seen video", raw)
		}
	}

	if got := e.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
	if got := len(e.URLs()); got != 1 {
		t.Errorf("len(URLs()) = %d, want 1", got)
	}
}

func TestExtractIgnoresInvalid(t *testing.T) {
	e := NewExtractor()

	for _, raw := range []string{
		"",
		"https://example.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/tooshort",
		"not a url",
	} {
		if e.Extract(raw) {
			t.Errorf("Extract(%q) = true, want false", raw)
		}
	}
	if got := e.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

func TestExtractRecordsOrigin(t *testing.T) {
	e := NewExtractor()

	e.Extract("https://www.youtube.com/embed/dQw4w9WgXcQ")
	e.ExtractAll("see https://youtu.be/jNQXAC9IVRw for the first upload")

	links := e.Links()
	if len(links) != 2 {
		t.Fatalf("len(Links()) = %d, want 2", len(links))
	}
	if links[0].Source != SourceEmbed {
		t.Errorf("links[0].Source = %q, want %q", links[0].Source, SourceEmbed)
	}
	if links[1].Source != SourcePage {
		t.Errorf("links[1].Source = %q, want %q", links[1].Source, SourcePage)
	}
	if links[0].VideoID != "dQw4w9WgXcQ" {
		t.Errorf("links[0].VideoID = %q, want %q", links[0].VideoID, "dQw4w9WgXcQ")
	}
	if links[0].ExtractedAt.IsZero() {
		t.Error("links[0].ExtractedAt is zero, want discovery time")
	}
}

func TestExtractAllCountsNewLinksOnly(t *testing.T) {
	e := NewExtractor()

	page := strings.Join([]string{
		`<iframe src="https://www.youtube.com/embed/dQw4w9WgXcQ"></iframe>`,
		`<a href="https://youtu.be/jNQXAC9IVRw">first video</a>`,
		`<a href="https://vimeo.com/123456">not youtube</a>`,
		`<script>var u = "https://www.youtube.com/watch?v=9bZkp7q19f0";</script>`,
	}, "\n")

	if got := e.ExtractAll(page); got != 3 {
		t.Errorf("ExtractAll() = %d, want 3", got)
	}
	if got := e.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}

	// The same markup scanned again discovers nothing new.
	if got := e.ExtractAll(page); got != 0 {
		t.Errorf("ExtractAll() on repeat scan = %d, want 0", got)
	}
}

func TestExtractAllOrderOfOccurrence(t *testing.T) {
	e := NewExtractor()

	// Shapes appear in an order that differs from the pattern list so the
	// test fails if matches are collected pattern by pattern.
	page := `first https://www.youtube.com/embed/dQw4w9WgXcQ ` +
		`then https://youtu.be/jNQXAC9IVRw ` +
		`last https://www.youtube.com/watch?v=9bZkp7q19f0`

	if got := e.ExtractAll(page); got != 3 {
		t.Fatalf("ExtractAll() = %d, want 3", got)
	}

	want := []string{"dQw4w9WgXcQ", "jNQXAC9IVRw", "9bZkp7q19f0"}
	links := e.Links()
	for i, id := range want {
		if links[i].VideoID != id {
			t.Errorf("links[%d].VideoID = %q, want %q", i, links[i].VideoID, id)
		}
	}
}

func TestExtractAllDuplicateRawMatches(t *testing.T) {
	e := NewExtractor()

	// The same video twice in one blob plus once as a different raw shape.
	page := `https://youtu.be/dQw4w9WgXcQ https://youtu.be/dQw4w9WgXcQ ` +
		`https://www.youtube.com/embed/dQw4w9WgXcQ`

	if got := e.ExtractAll(page); got != 1 {
		t.Errorf("ExtractAll() = %d, want 1", got)
	}
}

func TestExtractAllPermissiveCaptureStrictValidation(t *testing.T) {
	e := NewExtractor()

	// The scan patterns match identifiers of any length; the normalizer
	// must still throw out everything that is not exactly 11 characters.
	page := `bad https://youtu.be/dQw4w9WgXcQextra good https://youtu.be/jNQXAC9IVRw ` +
		`short https://www.youtube.com/embed/abc`

	if got := e.ExtractAll(page); got != 1 {
		t.Errorf("ExtractAll() = %d, want 1", got)
	}
	links := e.Links()
	if len(links) != 1 || links[0].VideoID != "jNQXAC9IVRw" {
		t.Fatalf("Links() = %+v, want the single 11-character identifier", links)
	}
}

func TestExtractAcrossMethodsDeduplicates(t *testing.T) {
	e := NewExtractor()

	if !e.Extract("https://youtu.be/dQw4w9WgXcQ") {
		t.Fatal("Extract should record the first discovery")
	}
	if got := e.ExtractAll("markup with https://www.youtube.com/watch?v=dQw4w9WgXcQ inside"); got != 0 {
		t.Errorf("ExtractAll() = %d, want 0 when the video is already known", got)
	}
}

func TestClear(t *testing.T) {
	e := NewExtractor()

	e.Extract("https://youtu.be/dQw4w9WgXcQ")
	e.ExtractAll("https://www.youtube.com/watch?v=jNQXAC9IVRw")
	e.Clear()

	if got := e.Count(); got != 0 {
		t.Errorf("Count() after Clear = %d, want 0", got)
	}
	if got := len(e.URLs()); got != 0 {
		t.Errorf("len(URLs()) after Clear = %d, want 0", got)
	}
	if !e.Extract("https://youtu.be/dQw4w9WgXcQ") {
		t.Error("Extract after Clear = false, want true for a fresh session")
	}
}

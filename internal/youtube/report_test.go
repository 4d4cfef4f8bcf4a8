package youtube

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReportEmpty(t *testing.T) {
	e := NewExtractor()

	want := "Extracted YouTube Links\n" +
		strings.Repeat("=", 50) + "\n\n" +
		"No YouTube links found.\n"
	if got := e.Report(); got != want {
		t.Errorf("Report()\n  got:  %q\n  want: %q", got, want)
	}
}

func TestReportFormat(t *testing.T) {
	e := NewExtractor()

	// Discovery order: jNQ then dQw. Sorted order is the reverse.
	e.Extract("https://youtu.be/jNQXAC9IVRw")
	e.ExtractAll(`<iframe src="https://www.youtube.com/embed/dQw4w9WgXcQ">`)

	links := e.Links()
	var detail strings.Builder
	for _, l := range links {
		fmt.Fprintf(&detail, "URL: %s\nVideo ID: %s\nSource: %s\nExtracted at: %s\n%s\n",
			l.URL, l.VideoID, l.Source, l.ExtractedAt.Format("2006-01-02 15:04:05"), strings.Repeat("-", 30))
	}

	want := "Extracted YouTube Links\n" +
		strings.Repeat("=", 50) + "\n\n" +
		"1. https://www.youtube.com/watch?v=dQw4w9WgXcQ\n" +
		"2. https://www.youtube.com/watch?v=jNQXAC9IVRw\n" +
		"\nTotal links found: 2\n" +
		"\n" + strings.Repeat("=", 50) + "\n" +
		"Detailed Information\n" +
		strings.Repeat("=", 50) + "\n\n" +
		detail.String()

	if got := e.Report(); got != want {
		t.Errorf("Report()\n  got:  %q\n  want: %q", got, want)
	}
}

func TestReportDeterministic(t *testing.T) {
	e := NewExtractor()
	e.Extract("https://youtu.be/dQw4w9WgXcQ")
	e.Extract("https://youtu.be/jNQXAC9IVRw")

	first := e.Report()
	time.Sleep(10 * time.Millisecond)
	second := e.Report()
	if first != second {
		t.Error("back-to-back reports differ; timestamps must come from the stored records")
	}
}

func TestWriteReport(t *testing.T) {
	e := NewExtractor()
	e.Extract("https://youtu.be/dQw4w9WgXcQ")

	path := filepath.Join(t.TempDir(), "links.txt")
	if err := e.WriteReport(path); err != nil {
		t.Fatalf("WriteReport() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if string(data) != e.Report() {
		t.Error("file contents differ from Report()")
	}
}

func TestWriteReportFailure(t *testing.T) {
	e := NewExtractor()
	err := e.WriteReport(filepath.Join(t.TempDir(), "missing", "links.txt"))
	if err == nil {
		t.Fatal("WriteReport() into a missing directory should fail")
	}
}

func TestSaveReport(t *testing.T) {
	e := NewExtractor()
	e.Extract("https://youtu.be/dQw4w9WgXcQ")

	dir := t.TempDir()

	t.Run("explicit filename", func(t *testing.T) {
		path, err := e.SaveReport(dir, "links.txt")
		if err != nil {
			t.Fatalf("SaveReport() error: %v", err)
		}
		if path != filepath.Join(dir, "links.txt") {
			t.Errorf("SaveReport() path = %q, want %q", path, filepath.Join(dir, "links.txt"))
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("report file missing: %v", err)
		}
	})

	t.Run("derived filename", func(t *testing.T) {
		path, err := e.SaveReport(dir, "")
		if err != nil {
			t.Fatalf("SaveReport() error: %v", err)
		}
		base := filepath.Base(path)
		if !strings.HasPrefix(base, "youtube_links_") || !strings.HasSuffix(base, ".txt") {
			t.Errorf("derived filename = %q, want youtube_links_<timestamp>.txt", base)
		}
	})

	t.Run("creates directory", func(t *testing.T) {
		nested := filepath.Join(dir, "deep", "out")
		if _, err := e.SaveReport(nested, "links.txt"); err != nil {
			t.Fatalf("SaveReport() error: %v", err)
		}
	})
}

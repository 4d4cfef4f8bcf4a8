package youtube

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Report renders the session as a text report: a numbered list of the
// canonical URLs in sorted order followed by per-record details in
// discovery order. Rendering is a pure projection of current state; the
// timestamps shown are the stored discovery times.
func (e *Extractor) Report() string {
	var b strings.Builder
	b.WriteString("Extracted YouTube Links\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	if len(e.links) == 0 {
		b.WriteString("No YouTube links found.\n")
		return b.String()
	}

	for i, u := range e.URLs() {
		fmt.Fprintf(&b, "%d. %s\n", i+1, u)
	}
	fmt.Fprintf(&b, "\nTotal links found: %d\n", len(e.links))

	b.WriteString("\n" + strings.Repeat("=", 50) + "\n")
	b.WriteString("Detailed Information\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, l := range e.links {
		fmt.Fprintf(&b, "URL: %s\n", l.URL)
		fmt.Fprintf(&b, "Video ID: %s\n", l.VideoID)
		fmt.Fprintf(&b, "Source: %s\n", l.Source)
		fmt.Fprintf(&b, "Extracted at: %s\n", l.ExtractedAt.Format("2006-01-02 15:04:05"))
		b.WriteString(strings.Repeat("-", 30) + "\n")
	}
	return b.String()
}

// WriteReport writes the report to path. Failures surface immediately;
// there is no retry.
func (e *Extractor) WriteReport(path string) error {
	if err := os.WriteFile(path, []byte(e.Report()), 0644); err != nil {
		return fmt.Errorf("write link report: %w", err)
	}
	return nil
}

// SaveReport writes the report into dir and returns the path written.
// An empty filename derives a timestamped one so repeated runs against
// the same output directory never clobber each other.
func (e *Extractor) SaveReport(dir, filename string) (string, error) {
	if filename == "" {
		filename = fmt.Sprintf("youtube_links_%s.txt", time.Now().Format("20060102_150405"))
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := e.WriteReport(path); err != nil {
		return "", err
	}
	return path, nil
}

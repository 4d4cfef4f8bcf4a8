package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePage = `<html><body>
<iframe src="https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1"></iframe>
<p>watch this: https://youtu.be/jNQXAC9IVRw and https://example.com/not-youtube</p>
<embed src="https://www.youtube.com/v/9bZkp7q19f0">
</body></html>`

func TestRunScanWritesReport(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "page.html")
	if err := os.WriteFile(page, []byte(samplePage), 0644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out")
	scanOutput = out
	scanSave = true
	defer func() {
		scanOutput = ""
		scanSave = false
	}()

	if err := runScan(scanCmd, []string{page}); err != nil {
		t.Fatalf("runScan() error: %v", err)
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatalf("report directory not created: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 report file, got %d", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(out, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	report := string(data)

	for _, id := range []string{"dQw4w9WgXcQ", "jNQXAC9IVRw", "9bZkp7q19f0"} {
		if !strings.Contains(report, "https://www.youtube.com/watch?v="+id) {
			t.Errorf("report missing canonical URL for %s:\n%s", id, report)
		}
	}
	if !strings.Contains(report, "Total links found: 3") {
		t.Errorf("report missing total count:\n%s", report)
	}
	if strings.Contains(report, "example.com") {
		t.Errorf("irrelevant URL leaked into report:\n%s", report)
	}
}

func TestRunScanMissingFile(t *testing.T) {
	if err := runScan(scanCmd, []string{filepath.Join(t.TempDir(), "nope.html")}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

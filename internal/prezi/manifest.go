package prezi

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const manifestName = "manifest.json"

// Manifest describes one scraping run in machine-readable form. It sits
// next to the screenshots and the link report in the output directory.
type Manifest struct {
	RunID       string    `json:"run_id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	Screenshots []string  `json:"screenshots"`
	Links       []string  `json:"links"`
	ReportPath  string    `json:"report_path,omitempty"`
}

// writeManifest serializes the run description into dir.
func writeManifest(dir string, res *Result) error {
	links := make([]string, 0, len(res.Links))
	for _, l := range res.Links {
		links = append(links, l.URL)
	}

	m := &Manifest{
		RunID:       res.RunID,
		URL:         res.URL,
		Title:       res.Title,
		StartedAt:   res.StartedAt,
		FinishedAt:  res.FinishedAt,
		Screenshots: res.Screenshots,
		Links:       links,
		ReportPath:  res.ReportPath,
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifestName), data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// LoadManifest reads the manifest from a previous run's output directory.
func LoadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

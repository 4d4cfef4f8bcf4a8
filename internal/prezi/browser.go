package prezi

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-rod/rod/lib/launcher"

	"prezicap/internal/config"
)

// createLauncher configures the Chromium launcher. Prezi's player needs
// web security relaxed for some embedded content; the remaining flags keep
// Chromium happy inside containers.
func (s *Scraper) createLauncher(headless bool) *launcher.Launcher {
	l := launcher.New().
		Headless(headless).
		UserDataDir(s.userDataDir()).
		Set("no-sandbox").
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("disable-web-security").
		Set("allow-running-insecure-content").
		Set("disable-extensions").
		Set("disable-background-networking").
		Set("no-first-run").
		Set("window-size", fmt.Sprintf("%d,%d", s.cfg.WindowWidth, s.cfg.WindowHeight))

	// Explicitly set browser path if provided (required for Docker)
	if browserPath := os.Getenv("ROD_BROWSER"); browserPath != "" {
		l = l.Bin(browserPath)
	}

	return l
}

// userDataDir returns the persistent browser profile directory so repeat
// runs reuse cookies and cached player assets.
func (s *Scraper) userDataDir() string {
	configDir, err := config.ConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "prezicap-browser")
	}
	return filepath.Join(configDir, "browser")
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ConfigFileName = "config.yml"
	AppDirName     = "prezicap"

	// EnvPrefix is the prefix shared by every environment override.
	EnvPrefix = "PREZICAP_"
)

// ConfigDir returns the standard config directory for prezicap.
// Windows: %APPDATA%\prezicap\
// macOS/Linux: ~/.config/prezicap/
func ConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, AppDirName), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppDirName), nil
}

// ConfigPath returns the path to the config file.
// e.g., ~/.config/prezicap/config.yml
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

type Config struct {
	// Where screenshots and reports are written
	OutputDir string `yaml:"output_dir"`

	// Screenshot subdirectory inside OutputDir
	ScreenshotsDir string `yaml:"screenshots_dir"`

	// Browser settings
	Headless     bool `yaml:"headless"`
	WindowWidth  int  `yaml:"window_width"`
	WindowHeight int  `yaml:"window_height"`

	// Timing settings, in seconds
	PageLoadTimeout int     `yaml:"page_load_timeout"`
	ElementTimeout  int     `yaml:"element_wait_timeout"`
	ScreenshotDelay float64 `yaml:"screenshot_delay"`
	NavigationDelay float64 `yaml:"navigation_delay"`

	// MaxSlides caps the navigation loop so a looping deck cannot run forever
	MaxSlides int `yaml:"max_slides"`

	// Screenshot output settings. Quality applies to jpeg only.
	ScreenshotFormat  string `yaml:"screenshot_format"`
	ScreenshotQuality int    `yaml:"screenshot_quality"`

	// YouTube link report settings. An empty LinksFile derives a
	// timestamped filename per run.
	SaveLinks bool   `yaml:"save_youtube_links"`
	LinksFile string `yaml:"youtube_filename,omitempty"`
}

// Default returns a config with the stock settings.
func Default() *Config {
	return &Config{
		OutputDir:         "prezi_output",
		ScreenshotsDir:    "screenshots",
		Headless:          true,
		WindowWidth:       1920,
		WindowHeight:      1080,
		PageLoadTimeout:   30,
		ElementTimeout:    10,
		ScreenshotDelay:   2.0,
		NavigationDelay:   1.5,
		MaxSlides:         50,
		ScreenshotFormat:  "png",
		ScreenshotQuality: 95,
		SaveLinks:         true,
	}
}

// PageLoadWait returns the page load timeout as a duration.
func (c *Config) PageLoadWait() time.Duration {
	return time.Duration(c.PageLoadTimeout) * time.Second
}

// ElementWait returns the element wait timeout as a duration.
func (c *Config) ElementWait() time.Duration {
	return time.Duration(c.ElementTimeout) * time.Second
}

// ScreenshotWait returns the settle delay taken before each screenshot.
func (c *Config) ScreenshotWait() time.Duration {
	return time.Duration(c.ScreenshotDelay * float64(time.Second))
}

// NavigationWait returns the delay taken after each slide transition.
func (c *Config) NavigationWait() time.Duration {
	return time.Duration(c.NavigationDelay * float64(time.Second))
}

// OutputPath returns the absolute output directory.
func (c *Config) OutputPath() string {
	abs, err := filepath.Abs(c.OutputDir)
	if err != nil {
		return c.OutputDir
	}
	return abs
}

// ScreenshotsPath returns the absolute screenshot directory.
func (c *Config) ScreenshotsPath() string {
	return filepath.Join(c.OutputPath(), c.ScreenshotsDir)
}

// EnsureDirs creates the output and screenshot directories.
func (c *Config) EnsureDirs() error {
	if err := os.MkdirAll(c.ScreenshotsPath(), 0755); err != nil {
		return fmt.Errorf("failed to create output directories: %w", err)
	}
	return nil
}

// Validate rejects settings the scraper cannot run with.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size %dx%d is invalid", c.WindowWidth, c.WindowHeight)
	}
	if c.PageLoadTimeout <= 0 {
		return fmt.Errorf("page_load_timeout must be positive, got %d", c.PageLoadTimeout)
	}
	if c.ElementTimeout <= 0 {
		return fmt.Errorf("element_wait_timeout must be positive, got %d", c.ElementTimeout)
	}
	if c.ScreenshotDelay < 0 || c.NavigationDelay < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	if c.MaxSlides <= 0 {
		return fmt.Errorf("max_slides must be positive, got %d", c.MaxSlides)
	}
	switch c.ScreenshotFormat {
	case "png", "jpeg":
	default:
		return fmt.Errorf("screenshot_format %q is not supported (png, jpeg)", c.ScreenshotFormat)
	}
	if c.ScreenshotQuality < 1 || c.ScreenshotQuality > 100 {
		return fmt.Errorf("screenshot_quality must be 1-100, got %d", c.ScreenshotQuality)
	}
	return nil
}

// ParseWindowSize parses a "WIDTHxHEIGHT" string such as "1920x1080".
func ParseWindowSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid window size %q, expected WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid window width %q", w)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid window height %q", h)
	}
	return width, height, nil
}

// Exists checks if the config file exists
func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load returns the effective config: defaults, overlaid by the config
// file when present, overlaid by PREZICAP_* environment variables.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if data, readErr := os.ReadFile(path); readErr == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides settings from the environment.
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvPrefix + "OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvPrefix + "HEADLESS"); v != "" {
		c.Headless = strings.EqualFold(v, "true")
	}
	if v := os.Getenv(EnvPrefix + "SAVE_LINKS"); v != "" {
		c.SaveLinks = strings.EqualFold(v, "true")
	}

	intVars := []struct {
		name string
		dst  *int
	}{
		{"WINDOW_WIDTH", &c.WindowWidth},
		{"WINDOW_HEIGHT", &c.WindowHeight},
		{"PAGE_TIMEOUT", &c.PageLoadTimeout},
		{"ELEMENT_TIMEOUT", &c.ElementTimeout},
		{"MAX_SLIDES", &c.MaxSlides},
	}
	for _, ev := range intVars {
		v := os.Getenv(EnvPrefix + ev.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s value %q: %w", EnvPrefix, ev.name, v, err)
		}
		*ev.dst = n
	}

	floatVars := []struct {
		name string
		dst  *float64
	}{
		{"SCREENSHOT_DELAY", &c.ScreenshotDelay},
		{"NAVIGATION_DELAY", &c.NavigationDelay},
	}
	for _, ev := range floatVars {
		v := os.Getenv(EnvPrefix + ev.name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s%s value %q: %w", EnvPrefix, ev.name, v, err)
		}
		*ev.dst = f
	}
	return nil
}

// Save writes the config to ~/.config/prezicap/config.yml
func Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	configPath, err := ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Add a header comment
	header := "# prezicap configuration file\n# Run 'prezicap init' to regenerate with defaults\n\n"
	content := header + string(data)

	return os.WriteFile(configPath, []byte(content), 0644)
}

// SavePath returns the path where config will be saved
func SavePath() string {
	if path, err := ConfigPath(); err == nil {
		return path
	}
	return "config.yml"
}

// Init creates a new config.yml with default values
func Init() error {
	if Exists() {
		path, _ := ConfigPath()
		return fmt.Errorf("%s already exists", path)
	}
	return Save(Default())
}

// LoadOrDefault loads the effective config, falling back to defaults when
// the file or environment is unusable.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		cfg = Default()
	}
	return cfg
}

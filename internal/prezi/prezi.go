// Package prezi drives a browser through a Prezi presentation, capturing
// slide screenshots and harvesting embedded YouTube links.
package prezi

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
	"github.com/google/uuid"

	"prezicap/internal/config"
	"prezicap/internal/screenshot"
	"prezicap/internal/youtube"
)

const (
	// viewerSelector marks the root node of Prezi's player.
	viewerSelector = ".presentation-viewer"

	// navSelector matches the next/arrow controls the player renders.
	// Prezi has shipped several viewer builds with different class names.
	navSelector = "[class*='nav'], [class*='next'], [class*='arrow'], [data-testid*='nav']"

	// renderSettleTimeout caps how long we wait for the canvas to stop
	// animating after the viewer attaches.
	renderSettleTimeout = 5 * time.Second
)

// InvalidURLError indicates the input does not point at a Prezi presentation
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid Prezi URL: %s", e.URL)
}

// ValidateURL checks that raw is a Prezi presentation URL. Presentation
// pages live under prezi.com/p/.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return &InvalidURLError{URL: raw}
	}
	if (u.Host == "prezi.com" || u.Host == "www.prezi.com") && strings.Contains(u.Path, "/p/") {
		return nil
	}
	return &InvalidURLError{URL: raw}
}

// Result carries everything one scraping run produced.
type Result struct {
	RunID       string
	URL         string
	Title       string
	Screenshots []string
	Links       []youtube.Link
	ReportPath  string
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Scraper walks one Prezi presentation. Each Scraper owns its extraction
// session; create a fresh one per run.
type Scraper struct {
	cfg      *config.Config
	session  *youtube.Extractor
	shots    *screenshot.Capturer
	verbose  bool
	progress func(slides, links int)
}

// New creates a Scraper for the given configuration.
func New(cfg *config.Config, verbose bool) *Scraper {
	return &Scraper{
		cfg:     cfg,
		session: youtube.NewExtractor(),
		shots:   screenshot.NewCapturer(cfg.ScreenshotsPath(), cfg.ScreenshotFormat, cfg.ScreenshotQuality),
		verbose: verbose,
	}
}

// Session exposes the link session, mainly so callers can render or save
// the report themselves.
func (s *Scraper) Session() *youtube.Extractor {
	return s.session
}

// SetProgress installs a callback invoked after every captured slide with
// the running slide and link counts. Used by the CLI progress UI.
func (s *Scraper) SetProgress(fn func(slides, links int)) {
	s.progress = fn
}

// Scrape loads the presentation, screenshots every slide it can reach and
// collects YouTube links along the way. The context bounds page loading
// and slide navigation; extraction itself never blocks.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*Result, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}
	if err := s.cfg.EnsureDirs(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:     uuid.NewString(),
		URL:       rawURL,
		StartedAt: time.Now(),
	}

	l := s.createLauncher(s.cfg.Headless)
	defer l.Cleanup()

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).MustConnect()
	defer browser.MustClose()

	page := stealth.MustPage(browser)
	defer page.MustClose()

	_ = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             s.cfg.WindowWidth,
		Height:            s.cfg.WindowHeight,
		DeviceScaleFactor: 1,
	})

	fmt.Printf("Loading Prezi: %s\n", rawURL)
	navCtx, cancel := context.WithTimeout(ctx, s.cfg.PageLoadWait())
	defer cancel()
	if err := page.Context(navCtx).Navigate(rawURL); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", rawURL, err)
	}
	_ = page.Context(navCtx).WaitLoad()

	s.waitReady(ctx, page)

	res.Title = s.presentationTitle(page)
	fmt.Printf("Processing presentation: %s\n", res.Title)

	res.Screenshots = s.walkSlides(ctx, page)
	res.Links = s.session.Links()

	if s.cfg.SaveLinks && s.session.Count() > 0 {
		path, err := s.session.SaveReport(s.cfg.OutputPath(), s.cfg.LinksFile)
		if err != nil {
			return nil, err
		}
		res.ReportPath = path
	}

	res.FinishedAt = time.Now()
	if err := writeManifest(s.cfg.OutputPath(), res); err != nil {
		return nil, err
	}
	return res, nil
}

// waitReady blocks until the presentation viewer attaches, then lets the
// canvas settle. A deck that never shows the viewer is still captured;
// not every viewer build tags its root node.
func (s *Scraper) waitReady(ctx context.Context, page *rod.Page) {
	viewer := page.Context(ctx).Timeout(s.cfg.ElementWait())
	if _, err := viewer.Element(viewerSelector); err != nil {
		fmt.Println("Warning: presentation may not have loaded completely")
		return
	}
	_ = page.Timeout(renderSettleTimeout).WaitDOMStable(time.Second, 0)
}

// presentationTitle reads document.title, cleaned for display and
// filenames. Decks without a usable title get a stable placeholder.
func (s *Scraper) presentationTitle(page *rod.Page) string {
	title, err := page.Eval(`() => document.title`)
	if err != nil {
		return "untitled_prezi"
	}
	cleaned := cleanTitle(stripSiteSuffix(title.Value.String()))
	if cleaned == "" {
		return "untitled_prezi"
	}
	return cleaned
}

// stripSiteSuffix drops the "- Prezi" / "| Prezi" tail the site appends to
// document titles.
func stripSiteSuffix(title string) string {
	for _, sep := range []string{" - Prezi", " | Prezi", "- Prezi", "| Prezi"} {
		title = strings.TrimSuffix(strings.TrimSpace(title), sep)
	}
	return strings.TrimSpace(title)
}

// cleanTitle keeps letters, digits, spaces, hyphens and underscores.
func cleanTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// walkSlides captures the current view, then clicks through next-style
// controls until the deck stops advancing or MaxSlides is reached.
func (s *Scraper) walkSlides(ctx context.Context, page *rod.Page) []string {
	var shots []string

	capture := func(slide int) {
		time.Sleep(s.cfg.ScreenshotWait())
		path, err := s.shots.FullPage(page, fmt.Sprintf("slide_%03d", slide))
		if err != nil {
			fmt.Printf("Warning: %v\n", err)
			return
		}
		shots = append(shots, path)
		s.debugf("captured %s", path)
	}

	report := func() {
		if s.progress != nil {
			s.progress(len(shots), s.session.Count())
		}
	}

	capture(1)
	s.harvestEmbeds(page)
	report()

	for slide := 2; slide <= s.cfg.MaxSlides; slide++ {
		if ctx.Err() != nil {
			break
		}
		if !s.advance(page) {
			break
		}
		time.Sleep(s.cfg.NavigationWait())
		capture(slide)
		s.harvestEmbeds(page)
		report()
	}
	return shots
}

// advance clicks the first visible navigation control and reports whether
// anything was clicked. No clickable control means the deck has reached
// its end, or never had navigation to begin with.
func (s *Scraper) advance(page *rod.Page) bool {
	els, err := page.Elements(navSelector)
	if err != nil {
		return false
	}
	for _, el := range els {
		visible, err := el.Visible()
		if err != nil || !visible {
			continue
		}
		if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
			s.debugf("navigation click failed: %v", err)
			continue
		}
		return true
	}
	return false
}

// harvestEmbeds feeds iframe sources and the full page markup through the
// link session. Prezi renders YouTube embeds as iframes, but some deck
// styles only reference the video inside serialized canvas data, which the
// source scan picks up.
func (s *Scraper) harvestEmbeds(page *rod.Page) {
	els, err := page.Elements("iframe")
	if err == nil {
		for _, el := range els {
			src, err := el.Attribute("src")
			if err != nil || src == nil {
				continue
			}
			if strings.Contains(*src, "youtube") {
				s.session.Extract(*src)
			}
		}
	}

	html, err := page.HTML()
	if err != nil {
		s.debugf("reading page source failed: %v", err)
		return
	}
	s.session.ExtractAll(html)
}

func (s *Scraper) debugf(format string, args ...interface{}) {
	if s.verbose {
		log.Printf(format, args...)
	}
}

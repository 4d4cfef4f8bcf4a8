package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prezicap/internal/prezi"
)

var (
	scrapeInfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	scrapeDoneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	scrapeErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	scrapeHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
)

// scrapeState is shared between the scraping goroutine and the TUI. The
// counters are UI-only; extraction state lives in the scraper's session.
type scrapeState struct {
	mu     sync.RWMutex
	done   bool
	err    error
	result *prezi.Result
	slides int
	links  int
}

func (s *scrapeState) setProgress(slides, links int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slides = slides
	s.links = links
}

func (s *scrapeState) setDone(result *prezi.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done = true
	s.result = result
}

func (s *scrapeState) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	s.done = true
}

func (s *scrapeState) get() (bool, error, *prezi.Result, int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.done, s.err, s.result, s.slides, s.links
}

type scrapeTickMsg time.Time

type scrapeModel struct {
	spinner spinner.Model
	url     string
	state   *scrapeState
}

func newScrapeModel(url string, state *scrapeState) scrapeModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return scrapeModel{
		spinner: s,
		url:     url,
		state:   state,
	}
}

func scrapeTickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return scrapeTickMsg(t)
	})
}

func (m scrapeModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, scrapeTickCmd())
}

func (m scrapeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case scrapeTickMsg:
		done, _, _, _, _ := m.state.get()
		if done {
			return m, tea.Quit
		}
		return m, scrapeTickCmd()
	}

	return m, nil
}

func (m scrapeModel) View() string {
	done, err, result, slides, links := m.state.get()

	if err != nil {
		return fmt.Sprintf("\n  %s Capture failed: %v\n\n",
			scrapeErrStyle.Render("✗"),
			err,
		)
	}

	if done && result != nil {
		return fmt.Sprintf("\n  %s Capture complete: %d slides, %d links\n",
			scrapeDoneStyle.Render("✓"),
			len(result.Screenshots),
			len(result.Links),
		)
	}

	return fmt.Sprintf("\n  %s Capturing %s\n  %s\n\n",
		m.spinner.View(),
		scrapeInfoStyle.Render(m.url),
		scrapeHintStyle.Render(fmt.Sprintf("slides: %d • links: %d", slides, links)),
	)
}

// runScrapeWithSpinner runs the scrape in the background behind a spinner
// TUI that polls the shared progress counters.
func runScrapeWithSpinner(scraper *prezi.Scraper, url string) (*prezi.Result, error) {
	state := &scrapeState{}
	scraper.SetProgress(state.setProgress)

	go func() {
		result, err := scraper.Scrape(context.Background(), url)
		if err != nil {
			state.setError(err)
		} else {
			state.setDone(result)
		}
	}()

	model := newScrapeModel(url, state)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return nil, err
	}

	done, scrapeErr, result, _, _ := state.get()
	if scrapeErr != nil {
		return nil, scrapeErr
	}
	if !done {
		return nil, fmt.Errorf("capture cancelled")
	}

	return result, nil
}

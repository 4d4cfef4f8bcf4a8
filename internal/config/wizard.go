package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const asciiArt = `
 ██████╗ ██████╗ ███████╗███████╗██╗ ██████╗ █████╗ ██████╗
 ██╔══██╗██╔══██╗██╔════╝╚══███╔╝██║██╔════╝██╔══██╗██╔══██╗
 ██████╔╝██████╔╝█████╗    ███╔╝ ██║██║     ███████║██████╔╝
 ██╔═══╝ ██╔══██╗██╔══╝   ███╔╝  ██║██║     ██╔══██║██╔═══╝
 ██║     ██║  ██║███████╗███████╗██║╚██████╗██║  ██║██║
 ╚═╝     ╚═╝  ╚═╝╚══════╝╚══════╝╚═╝ ╚═════╝╚═╝  ╚═╝╚═╝
`

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	stepStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	unselectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	inputStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	inputCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(14)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	containerStyle   = lipgloss.NewStyle().Padding(2, 4)
)

type step struct {
	title       string
	description string
	options     []option
	isInput     bool
	inputValue  *string
	placeholder string
}

type option struct {
	label string
	value string
}

type model struct {
	steps       []step
	currentStep int
	cursor      int
	config      *Config
	maxSlides   *string
	confirmed   bool
	cancelled   bool
	inputBuffer string
	width       int
	height      int
}

func initialModel(cfg *Config) model {
	// maxSlides lives behind a pointer so the input step has a stable
	// target across the model copies bubbletea makes on every update.
	maxSlides := strconv.Itoa(cfg.MaxSlides)
	m := model{
		config:    cfg,
		maxSlides: &maxSlides,
	}

	m.steps = []step{
		{
			title:       "Output Directory",
			description: "Where screenshots and link reports are saved",
			isInput:     true,
			inputValue:  &cfg.OutputDir,
			placeholder: "prezi_output",
		},
		{
			title:       "Browser Mode",
			description: "Headless runs without a visible browser window",
			options: []option{
				{"Headless (recommended)", "headless"},
				{"Visible", "visible"},
			},
		},
		{
			title:       "Window Size",
			description: "Browser viewport, also the screenshot resolution",
			options: []option{
				{"1920×1080 (recommended)", "1920x1080"},
				{"1366×768", "1366x768"},
				{"2560×1440", "2560x1440"},
			},
		},
		{
			title:       "Max Slides",
			description: "Navigation stops after this many slides",
			isInput:     true,
			inputValue:  m.maxSlides,
			placeholder: "50",
		},
		{
			title:       "Screenshot Format",
			description: "Image format for slide captures",
			options: []option{
				{"PNG (lossless)", "png"},
				{"JPEG (smaller files)", "jpeg"},
			},
		},
		{
			title:       "YouTube Links",
			description: "Save discovered links to a text report",
			options: []option{
				{"Yes, save a report", "yes"},
				{"No", "no"},
			},
		},
		{
			title:       "Confirm",
			description: "Review and save configuration",
			options: []option{
				{"Yes, save", "yes"},
				{"No, cancel", "no"},
			},
		},
	}

	m.setCursorFromConfig()

	return m
}

func (m *model) setCursorFromConfig() {
	step := m.steps[m.currentStep]
	if step.isInput {
		m.inputBuffer = *step.inputValue
		return
	}

	var currentValue string
	switch m.currentStep {
	case 1:
		currentValue = "headless"
		if !m.config.Headless {
			currentValue = "visible"
		}
	case 2:
		currentValue = fmt.Sprintf("%dx%d", m.config.WindowWidth, m.config.WindowHeight)
	case 4:
		currentValue = m.config.ScreenshotFormat
	case 5:
		currentValue = "yes"
		if !m.config.SaveLinks {
			currentValue = "no"
		}
	}

	m.cursor = 0
	for i, opt := range step.options {
		if opt.value == currentValue {
			m.cursor = i
			break
		}
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		step := m.steps[m.currentStep]

		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "left":
			if m.currentStep > 0 {
				m.saveCurrentValue()
				m.currentStep--
				m.setCursorFromConfig()
			}
			return m, nil

		case "right", "enter":
			if step.isInput {
				*step.inputValue = m.inputBuffer
			}
			m.saveCurrentValue()

			if m.currentStep == len(m.steps)-1 {
				// Confirmation step
				if m.cursor == 0 {
					m.confirmed = true
				} else {
					m.cancelled = true
				}
				return m, tea.Quit
			}

			m.currentStep++
			m.setCursorFromConfig()
			return m, nil

		case "up", "k":
			if !step.isInput && m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "j":
			if !step.isInput && m.cursor < len(step.options)-1 {
				m.cursor++
			}
			return m, nil

		case "backspace":
			if step.isInput && len(m.inputBuffer) > 0 {
				m.inputBuffer = m.inputBuffer[:len(m.inputBuffer)-1]
			}
			return m, nil

		default:
			if step.isInput && len(msg.String()) == 1 {
				m.inputBuffer += msg.String()
			}
			return m, nil
		}
	}

	return m, nil
}

func (m *model) saveCurrentValue() {
	step := m.steps[m.currentStep]
	if step.isInput {
		return
	}

	if m.cursor >= len(step.options) {
		return
	}
	value := step.options[m.cursor].value
	switch m.currentStep {
	case 1:
		m.config.Headless = value == "headless"
	case 2:
		if w, h, err := ParseWindowSize(value); err == nil {
			m.config.WindowWidth = w
			m.config.WindowHeight = h
		}
	case 4:
		m.config.ScreenshotFormat = value
	case 5:
		m.config.SaveLinks = value == "yes"
	}
}

func (m model) View() string {
	var b strings.Builder

	// Progress indicator
	progress := fmt.Sprintf("Step %d of %d", m.currentStep+1, len(m.steps))
	b.WriteString(stepStyle.Render(progress))
	b.WriteString("\n\n")

	step := m.steps[m.currentStep]

	// Title
	b.WriteString(titleStyle.Render(step.title))
	b.WriteString("\n")
	b.WriteString(stepStyle.Render(step.description))
	b.WriteString("\n\n")

	// Content
	if m.currentStep == len(m.steps)-1 {
		// Review step
		b.WriteString(m.renderReview())
		b.WriteString("\n")
	}

	if step.isInput {
		// Input field
		display := m.inputBuffer
		if display == "" {
			display = stepStyle.Render(step.placeholder)
		}
		b.WriteString(inputCursorStyle.Render("> "))
		b.WriteString(inputStyle.Render(display))
		b.WriteString(inputCursorStyle.Render("█"))
		b.WriteString("\n")
	} else {
		// Options
		for i, opt := range step.options {
			cursor := "  "
			style := unselectedStyle
			if i == m.cursor {
				cursor = cursorStyle.Render("> ")
				style = selectedStyle
			}
			b.WriteString(cursor)
			b.WriteString(style.Render(opt.label))
			b.WriteString("\n")
		}
	}

	// Help
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("← back • → next • ↑↓ select • enter confirm • esc quit"))

	// Apply padding
	content := containerStyle.Render(b.String())

	// Make it fullscreen
	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, content)
	}

	return content
}

func (m model) renderReview() string {
	var b strings.Builder

	mode := "headless"
	if !m.config.Headless {
		mode = "visible"
	}
	saveLinks := "yes"
	if !m.config.SaveLinks {
		saveLinks = "no"
	}

	lines := []struct {
		label string
		value string
	}{
		{"Output Dir", m.config.OutputDir},
		{"Browser", mode},
		{"Window", fmt.Sprintf("%dx%d", m.config.WindowWidth, m.config.WindowHeight)},
		{"Max Slides", *m.maxSlides},
		{"Format", m.config.ScreenshotFormat},
		{"Save Links", saveLinks},
	}

	for _, line := range lines {
		b.WriteString(labelStyle.Render(line.label + ":"))
		b.WriteString(valueStyle.Render(line.value))
		b.WriteString("\n")
	}

	return b.String()
}

// RunInitWizard runs an interactive TUI wizard to configure prezicap
func RunInitWizard() (*Config, error) {
	// Show ASCII art banner
	fmt.Print("\033[36m") // Cyan color
	fmt.Print(asciiArt)
	fmt.Print("\033[0m") // Reset color
	fmt.Println("  Capture Prezi slides and harvest embedded YouTube links")
	fmt.Println()
	time.Sleep(1 * time.Second)

	// Load existing config or use defaults
	cfg := LoadOrDefault()

	m := initialModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	result := finalModel.(model)
	if result.cancelled {
		return nil, fmt.Errorf("configuration cancelled")
	}

	// Fall back to defaults for unusable values
	if result.config.OutputDir == "" {
		result.config.OutputDir = Default().OutputDir
	}
	if n, err := strconv.Atoi(strings.TrimSpace(*result.maxSlides)); err == nil && n > 0 {
		result.config.MaxSlides = n
	}

	return result.config, nil
}

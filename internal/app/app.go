package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smartanki/smartanki/internal/review"
	"github.com/smartanki/smartanki/internal/router"
	"github.com/smartanki/smartanki/internal/screen"
	"github.com/smartanki/smartanki/internal/screens/home"
	"github.com/smartanki/smartanki/internal/screens/study"
	"github.com/smartanki/smartanki/internal/store"
	"github.com/smartanki/smartanki/internal/ui/layout"
)

// Options configure the TUI.
type Options struct {
	Review *review.Service
	Events store.EventRepo
	Due    review.DueRequest
	// StudyNow skips the home screen and opens the study queue directly.
	StudyNow bool
}

// Model is the root Bubble Tea model. It owns the screen stack and draws
// the header and footer around the active screen.
type Model struct {
	router *router.Router
	home   *home.HomeScreen
	width  int
	height int
}

// NewModel builds the root model.
func NewModel(opts Options) Model {
	h := home.New(opts.Review, opts.Events, opts.Due)
	m := Model{router: router.New(h), home: h}
	if opts.StudyNow {
		m.router.Push(study.New(opts.Review, opts.Due))
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.home.Init()}
	if m.router.Depth() > 1 {
		cmds = append(cmds, m.router.Active().Init())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Home stats can arrive while another screen is on top.
	if _, ok := msg.(home.StatsMsg); ok {
		_, cmd := m.home.Update(msg)
		return m, cmd
	}
	return m, m.router.Update(msg)
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m Model) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	status := ""
	if due, ok := m.home.DueCount(); ok {
		status = fmt.Sprintf("● %d due  ", due)
	}
	header := layout.RenderHeader(active.Title(), status, m.width)
	footer := layout.RenderFooter(m.hints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m Model) hints(active screen.Screen) []layout.KeyHint {
	if hp, ok := active.(screen.KeyHintProvider); ok {
		return append(hp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

// Run starts the TUI and blocks until it exits.
func Run(opts Options) error {
	if _, err := tea.NewProgram(NewModel(opts)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smartanki/smartanki/internal/review"
	"github.com/smartanki/smartanki/internal/router"
	"github.com/smartanki/smartanki/internal/screen"
	"github.com/smartanki/smartanki/internal/screens/history"
	"github.com/smartanki/smartanki/internal/screens/study"
	"github.com/smartanki/smartanki/internal/store"
	"github.com/smartanki/smartanki/internal/ui/components"
	"github.com/smartanki/smartanki/internal/ui/layout"
	"github.com/smartanki/smartanki/internal/ui/theme"
)

// StatsMsg carries collection totals for the home screen.
type StatsMsg struct {
	Stats *store.ReviewStats
	Err   error
}

// HomeScreen shows collection totals and the main menu.
type HomeScreen struct {
	svc    *review.Service
	events store.EventRepo
	due    review.DueRequest

	menu   components.Menu
	stats  *store.ReviewStats
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. due selects the cards a study run covers.
func New(svc *review.Service, events store.EventRepo, due review.DueRequest) *HomeScreen {
	h := &HomeScreen{svc: svc, events: events, due: due}
	h.menu = h.buildMenu()
	return h
}

func (h *HomeScreen) buildMenu() components.Menu {
	studyDetail := ""
	if h.stats != nil {
		studyDetail = fmt.Sprintf("%d due", h.stats.DueCards)
	}
	selected := h.menu.Selected

	m := components.NewMenu([]components.MenuItem{
		{Label: "Study due cards", Detail: studyDetail, Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: study.New(h.svc, h.due)} }
		}},
		{Label: "Recent reviews", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: history.New(h.events)} }
		}},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	m.Selected = selected
	return m
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume refreshes the totals when a study run returns here.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	return func() tea.Msg {
		st, err := h.svc.Stats(context.Background())
		return StatsMsg{Stats: st, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case StatsMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.errMsg = ""
		h.stats = msg.Stats
		h.menu = h.buildMenu()
		return h, nil
	case tea.KeyMsg:
		if msg.String() == "q" {
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("smartanki"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("spaced repetition, one card at a time"))
	b.WriteString("\n\n")

	switch {
	case h.errMsg != "":
		b.WriteString(layout.Center(lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+h.errMsg), width))
	case h.stats == nil:
		b.WriteString(layout.Center(theme.Hint.Render("Loading..."), width))
	default:
		b.WriteString(layout.Center(renderStats(h.stats), width))
	}
	b.WriteString("\n\n")

	b.WriteString(layout.Center(theme.Card.Render(strings.TrimRight(h.menu.View(), "\n")), width))
	return b.String()
}

func renderStats(st *store.ReviewStats) string {
	cell := func(label string, v string, fg lipgloss.Style) string {
		return fg.Bold(true).Render(v) + " " + theme.Hint.Render(label)
	}
	parts := []string{
		cell("cards", fmt.Sprint(st.TotalCards), theme.Body),
		cell("new", fmt.Sprint(st.NewCards), lipgloss.NewStyle().Foreground(theme.Secondary)),
		cell("due", fmt.Sprint(st.DueCards), lipgloss.NewStyle().Foreground(theme.Accent)),
		cell("reviews", fmt.Sprint(st.TotalReviews), theme.Body),
	}
	if st.TotalReviews > 0 {
		parts = append(parts, cell("avg ease", fmt.Sprintf("%.2f", st.AvgEaseFactor), theme.Body))
	}
	return strings.Join(parts, "    ")
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// DueCount is the number of due cards from the last stats load.
func (h *HomeScreen) DueCount() (int, bool) {
	if h.stats == nil {
		return 0, false
	}
	return h.stats.DueCards, true
}

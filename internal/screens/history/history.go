package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smartanki/smartanki/internal/router"
	"github.com/smartanki/smartanki/internal/screen"
	"github.com/smartanki/smartanki/internal/store"
	"github.com/smartanki/smartanki/internal/ui/layout"
	"github.com/smartanki/smartanki/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Reviews []store.ReviewEventRecord
	Err     error
}

// HistoryScreen lists the most recent reviews, newest first. Enter expands
// a row to show how the card's schedule changed.
type HistoryScreen struct {
	events   store.EventRepo
	reviews  []store.ReviewEventRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

func New(events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		events:   events,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		revs, err := s.events.RecentReviews(context.Background(), store.QueryOpts{Limit: pageSize})
		return historyLoadedMsg{Reviews: revs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Recent Reviews"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.reviews = msg.Reviews
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.reviews)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	dim := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim)
	switch {
	case s.errMsg != "":
		return dim.Foreground(theme.Error).Render("\n\nError: " + s.errMsg)
	case !s.loaded:
		return dim.Render("\n\n  Loading reviews...")
	case len(s.reviews) == 0:
		return dim.Italic(true).Render("\n\n  No reviews yet. Study some cards first!")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Keep the selected row on screen.
	visible := max(height-2, 1)
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}

	lines := 0
	for i := start; i < len(s.reviews) && lines < visible; i++ {
		r := s.reviews[i]
		prefix := "  "
		style := theme.Unselected
		if i == s.selected {
			prefix = "> "
			style = theme.Selected
		}

		grade := lipgloss.NewStyle().Foreground(theme.ForQuality(r.Quality)).Render(fmt.Sprintf("q%d", r.Quality))
		line := style.Render(fmt.Sprintf("%s%s  card #%-5d ", prefix, r.Timestamp.Local().Format("Jan 02 15:04"), r.CardID)) +
			grade + theme.Hint.Render(fmt.Sprintf("  %dd -> %dd", r.IntervalBefore, r.IntervalAfter))
		b.WriteString(layout.Center(line, width))
		b.WriteString("\n")
		lines++

		if s.expanded[i] {
			detail := fmt.Sprintf("ease %.2f -> %.2f   next %s", r.EaseBefore, r.EaseAfter,
				r.NextReview.Local().Format("Mon Jan 2"))
			if r.SessionID != "" {
				detail += "   session " + shortID(r.SessionID)
			}
			b.WriteString(layout.Center(theme.Hint.Render(detail), width))
			b.WriteString("\n")
			lines++
		}
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

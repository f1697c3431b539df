package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/smartanki/smartanki/internal/review"
	"github.com/smartanki/smartanki/internal/router"
	"github.com/smartanki/smartanki/internal/screen"
	"github.com/smartanki/smartanki/internal/ui/components"
	"github.com/smartanki/smartanki/internal/ui/layout"
	"github.com/smartanki/smartanki/internal/ui/theme"
)

// SummaryScreen shows the results of a finished study session.
type SummaryScreen struct {
	summary review.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

func New(summary review.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Session complete!"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Duration: " + formatDuration(sum)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Reviewed: %d     Recalled: %d     Forgot: %d     Avg grade: %.1f",
		sum.Reviewed, sum.Passed, sum.Lapsed, sum.AvgQuality)
	b.WriteString(layout.Center(theme.Body.Render(stats), width))
	b.WriteString("\n\n")

	b.WriteString(layout.Center(theme.Hint.Render("Accuracy"), width))
	b.WriteString("\n")
	bar := components.NewProgressBar(sum.Passed, sum.Reviewed, min(width-8, 50))
	b.WriteString(layout.Center(bar.View(), width))
	b.WriteString("\n\n")
	b.WriteString(layout.Center(layout.Divider(width), width))
	b.WriteString("\n\n")

	next := "No reviews scheduled"
	if sum.NextDue != nil {
		next = "Next review: " + sum.NextDue.Local().Format("Mon Jan 2 15:04")
	}
	b.WriteString(layout.Center(lipgloss.NewStyle().Foreground(theme.Secondary).Render(next), width))
	return b.String()
}

func formatDuration(sum review.Summary) string {
	secs := int(sum.Duration.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

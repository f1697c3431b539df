package study

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/smartanki/smartanki/internal/store"
	"github.com/smartanki/smartanki/internal/ui/components"
	"github.com/smartanki/smartanki/internal/ui/layout"
	"github.com/smartanki/smartanki/internal/ui/theme"
)

func (s *StudyScreen) View(width, height int) string {
	if !s.loaded {
		return message(width, theme.TextDim, "Loading due cards...")
	}
	if s.errMsg != "" && s.current() == nil {
		return message(width, theme.Error, "Error: "+s.errMsg)
	}
	c := s.current()
	if c == nil {
		return message(width, theme.Success, "Nothing due. Come back later!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Center(components.NewProgressBar(s.pos, len(s.queue), min(width-8, 60)).View(), width))
	b.WriteString("\n\n")

	badge := lipgloss.NewStyle().Foreground(theme.ForStatus(string(c.Status))).Render(string(c.Status))
	meta := fmt.Sprintf("#%d  %s  %s", c.Card.ID, c.Card.Type, badge)
	if c.OverdueDays >= 1 {
		meta += theme.Hint.Render(fmt.Sprintf("  %.0fd overdue", c.OverdueDays))
	}
	b.WriteString(layout.Center(meta, width))
	b.WriteString("\n\n")

	cardWidth := min(width-8, 70)
	b.WriteString(layout.Center(theme.Card.Width(cardWidth).Render(
		theme.Body.Bold(true).Render(c.Card.Front)), width))
	b.WriteString("\n\n")

	if !s.revealed {
		if s.typed() {
			b.WriteString(layout.Center(s.input.View(), width))
		} else {
			b.WriteString(layout.Center(theme.Hint.Render("Recall the answer, then press Enter"), width))
		}
		b.WriteString(s.renderLast(width))
		return b.String()
	}

	b.WriteString(layout.Center(theme.Card.Width(cardWidth).BorderForeground(theme.Secondary).Render(
		theme.Body.Render(c.Card.Back)), width))
	b.WriteString("\n")
	if hint, ok := c.Card.Metadata["hint"].(string); ok && hint != "" && c.Card.Type == store.CardTypeCloze {
		b.WriteString(layout.Center(theme.Hint.Render("hint: "+hint), width))
		b.WriteString("\n")
	}
	if s.typed() {
		answer := s.input.Value()
		if answer == "" {
			answer = "(nothing)"
		}
		b.WriteString(layout.Center(theme.Hint.Render("you typed: "+answer), width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.renderGrades(width))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(layout.Center(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg), width))
	}
	return b.String()
}

// renderGrades lists each grade with the interval it would schedule.
func (s *StudyScreen) renderGrades(width int) string {
	var b strings.Builder
	for _, p := range s.projections {
		label := lipgloss.NewStyle().Foreground(theme.ForQuality(int(p.Quality))).Bold(true).
			Render(fmt.Sprintf("[%d] %-8s", int(p.Quality), p.Quality.Label()))
		line := label + theme.Hint.Render(fmt.Sprintf("  %s", formatInterval(p.Interval)))
		b.WriteString(layout.Center(line, width))
		b.WriteString("\n")
	}
	return b.String()
}

// renderLast confirms the previous grade below the next card.
func (s *StudyScreen) renderLast(width int) string {
	if s.last == nil {
		return ""
	}
	return "\n\n" + layout.Center(theme.Hint.Render(fmt.Sprintf(
		"last: %s, next review in %s", s.last.Quality.Label(), formatInterval(s.last.Next.Interval))), width)
}

func formatInterval(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func message(width int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render("\n\n" + text)
}

package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/smartanki/smartanki/internal/ui/theme"
)

// ProgressBar shows how far through a queue of Total items we are.
type ProgressBar struct {
	Done  int
	Total int
	Width int
}

func NewProgressBar(done, total, width int) ProgressBar {
	return ProgressBar{Done: done, Total: total, Width: width}
}

// Fraction is Done/Total clamped to [0, 1]; an empty queue counts as done.
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 1
	}
	f := float64(p.Done) / float64(p.Total)
	return min(max(f, 0), 1)
}

func (p ProgressBar) View() string {
	counter := fmt.Sprintf("  %d/%d", p.Done, p.Total)
	barWidth := max(p.Width-lipgloss.Width(counter), 4)
	filled := int(float64(barWidth) * p.Fraction())

	return lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)
}

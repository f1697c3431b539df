package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestMenuSkipsDisabled(t *testing.T) {
	fired := ""
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "a", Action: func() tea.Cmd { fired = "a"; return nil }},
		{Label: "off2", Disabled: true},
		{Label: "b", Action: func() tea.Cmd { fired = "b"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("initial selection = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Fatalf("after down = %d, want 3", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Fatalf("down at end moved to %d", m.Selected)
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if fired != "b" {
		t.Errorf("enter fired %q, want b", fired)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("after up = %d, want 1", m.Selected)
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Study", Detail: "4 due"}, {Label: "Quit"}})
	v := m.View()
	if !strings.Contains(v, "▸ Study") || !strings.Contains(v, "4 due") {
		t.Errorf("unexpected menu view:\n%s", v)
	}
}

func TestProgressFraction(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 10, 0},
		{5, 10, 0.5},
		{12, 10, 1},
		{0, 0, 1},
	}
	for _, tt := range tests {
		if got := NewProgressBar(tt.done, tt.total, 40).Fraction(); got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.done, tt.total, got, tt.want)
		}
	}
	if v := NewProgressBar(3, 7, 40).View(); !strings.Contains(v, "3/7") {
		t.Errorf("progress view missing counter: %q", v)
	}
}

package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/smartanki/smartanki/internal/review"
	"github.com/smartanki/smartanki/internal/router"
)

func testSummary() review.Summary {
	next := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)
	return review.Summary{
		Reviewed:   14,
		Passed:     11,
		Lapsed:     3,
		AvgQuality: 3.6,
		Duration:   15*time.Minute + 7*time.Second,
		NextDue:    &next,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := New(testSummary()).View(80, 24)
	for _, want := range []string{"Session complete!", "15:07", "Reviewed: 14", "11/14"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q", want)
		}
	}
}

func TestSummaryScreen_NoNextDue(t *testing.T) {
	view := New(review.Summary{}).View(80, 24)
	if !strings.Contains(view, "No reviews scheduled") {
		t.Error("expected placeholder when nothing is scheduled")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, {Code: tea.KeyEscape}} {
		_, cmd := New(testSummary()).Update(key)
		if cmd == nil {
			t.Fatalf("expected a command on %s", key.String())
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("%s: expected PopScreenMsg", key.String())
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	if hints := New(testSummary()).KeyHints(); len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}

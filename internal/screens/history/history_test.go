package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/smartanki/smartanki/internal/router"
	"github.com/smartanki/smartanki/internal/store"
)

// fakeEvents serves canned reviews. Unused EventRepo methods panic.
type fakeEvents struct {
	store.EventRepo
	reviews []store.ReviewEventRecord
	err     error
	opts    store.QueryOpts
}

func (f *fakeEvents) RecentReviews(_ context.Context, opts store.QueryOpts) ([]store.ReviewEventRecord, error) {
	f.opts = opts
	return f.reviews, f.err
}

func sampleReviews() []store.ReviewEventRecord {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	return []store.ReviewEventRecord{
		{ID: 2, CardID: 7, Quality: 1, EaseBefore: 2.5, EaseAfter: 2.35, IntervalBefore: 6, IntervalAfter: 3,
			Timestamp: at, NextReview: at.AddDate(0, 0, 3), SessionID: "0123456789abcdef"},
		{ID: 1, CardID: 7, Quality: 5, EaseBefore: 2.4, EaseAfter: 2.5, IntervalBefore: 1, IntervalAfter: 6,
			Timestamp: at.Add(-time.Hour), NextReview: at.AddDate(0, 0, 6)},
	}
}

func loaded(t *testing.T, f *fakeEvents) *HistoryScreen {
	t.Helper()
	s := New(f)
	s.Update(s.Init()())
	return s
}

func TestHistoryLoads(t *testing.T) {
	f := &fakeEvents{reviews: sampleReviews()}
	s := loaded(t, f)

	if f.opts.Limit != pageSize {
		t.Errorf("limit = %d, want %d", f.opts.Limit, pageSize)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "card #7") || !strings.Contains(view, "6d -> 3d") {
		t.Errorf("unexpected view:\n%s", view)
	}
}

func TestHistoryExpand(t *testing.T) {
	s := loaded(t, &fakeEvents{reviews: sampleReviews()})

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := s.View(100, 30)
	if !strings.Contains(view, "ease 2.50 -> 2.35") || !strings.Contains(view, "session 01234567") {
		t.Errorf("expanded row missing details:\n%s", view)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
}

func TestHistoryEmptyAndError(t *testing.T) {
	if v := loaded(t, &fakeEvents{}).View(80, 24); !strings.Contains(v, "No reviews yet") {
		t.Errorf("empty view = %q", v)
	}
	if v := loaded(t, &fakeEvents{err: errors.New("db gone")}).View(80, 24); !strings.Contains(v, "db gone") {
		t.Errorf("error view = %q", v)
	}
}

func TestHistoryEscPops(t *testing.T) {
	s := loaded(t, &fakeEvents{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

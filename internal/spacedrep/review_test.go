package spacedrep

import (
	"errors"
	"testing"
	"time"
)

func ptr(t time.Time) *time.Time { return &t }

func TestApply_FirstReview(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	next, err := NewState().Apply(QualityHesitant, now)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if next.Interval != 1 {
		t.Errorf("Interval = %d, want 1", next.Interval)
	}
	want := now.AddDate(0, 0, 1)
	if next.NextReview == nil || !next.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", next.NextReview, want)
	}
}

func TestApply_DoesNotMutateReceiver(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Hour)
	s := State{EaseFactor: 2.5, Interval: 6, NextReview: &due}

	next, err := s.Apply(QualityPerfect, now)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if s.Interval != 6 || s.EaseFactor != 2.5 || !s.NextReview.Equal(due) {
		t.Errorf("receiver changed: %+v", s)
	}
	if next.NextReview == s.NextReview {
		t.Error("expected a fresh NextReview pointer")
	}
}

func TestApply_SequenceOfReviews(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewState()
	wantIntervals := []int{1, 6, 16, 44, 127, 365, 365}
	for i, want := range wantIntervals {
		var err error
		s, err = s.Apply(QualityPerfect, now)
		if err != nil {
			t.Fatalf("review %d: %v", i, err)
		}
		if s.Interval != want {
			t.Fatalf("review %d: Interval = %d, want %d", i, s.Interval, want)
		}
		now = *s.NextReview
	}
}

func TestApply_InvalidStateNotClamped(t *testing.T) {
	s := State{EaseFactor: 1.0}
	_, err := s.Apply(QualityPerfect, time.Now())
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("err = %v, want ErrInvalidState", err)
	}
}

func TestNextReviewDate(t *testing.T) {
	now := time.Date(2025, 1, 30, 8, 0, 0, 0, time.UTC)
	got := NextReviewDate(6, now)
	want := time.Date(2025, 2, 5, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextReviewDate(6) = %v, want %v", got, want)
	}
	if !NextReviewDate(0, now).Equal(now) {
		t.Error("NextReviewDate(0) should equal now")
	}
}

func TestIsDue(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		next *time.Time
		want bool
	}{
		{"never scheduled", nil, true},
		{"before date", ptr(now.Add(24 * time.Hour)), false},
		{"on date", ptr(now), true},
		{"after date", ptr(now.Add(-48 * time.Hour)), true},
	}
	for _, tt := range tests {
		s := State{EaseFactor: 2.5, Interval: 1, NextReview: tt.next}
		if got := s.IsDue(now); got != tt.want {
			t.Errorf("%s: IsDue() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOverdueDays(t *testing.T) {
	reviewDate := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := State{EaseFactor: 2.5, Interval: 6, NextReview: &reviewDate}

	if got := s.OverdueDays(reviewDate.Add(-time.Hour)); got != 0 {
		t.Errorf("OverdueDays() before due = %f, want 0", got)
	}
	got := s.OverdueDays(reviewDate.Add(3 * 24 * time.Hour))
	if got < 2.99 || got > 3.01 {
		t.Errorf("OverdueDays() = %f, want ~3.0", got)
	}
	if NewState().OverdueDays(reviewDate) != 0 {
		t.Error("unscheduled card should report 0 overdue days")
	}
}

func TestStatus(t *testing.T) {
	reviewDate := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	// 6-day interval: grace is 3 days.
	s := State{EaseFactor: 2.5, Interval: 6, NextReview: &reviewDate}

	tests := []struct {
		name string
		now  time.Time
		want ReviewStatus
	}{
		{"not due", reviewDate.Add(-24 * time.Hour), ReviewNotDue},
		{"due", reviewDate.Add(2 * 24 * time.Hour), ReviewDue},
		{"overdue", reviewDate.Add(4 * 24 * time.Hour), ReviewOverdue},
	}
	for _, tt := range tests {
		if got := s.Status(tt.now); got != tt.want {
			t.Errorf("%s: Status() = %q, want %q", tt.name, got, tt.want)
		}
	}
	if got := NewState().Status(reviewDate); got != ReviewNew {
		t.Errorf("new card Status() = %q, want %q", got, ReviewNew)
	}
}

func TestDaysUntilReview(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := State{EaseFactor: 2.5, Interval: 6, NextReview: ptr(now.Add(60 * time.Hour))}
	if got := s.DaysUntilReview(now); got != 3 {
		t.Errorf("DaysUntilReview() = %d, want 3", got)
	}
	s.NextReview = ptr(now.Add(-time.Hour))
	if got := s.DaysUntilReview(now); got != 0 {
		t.Errorf("DaysUntilReview() = %d, want 0", got)
	}
}

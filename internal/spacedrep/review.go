package spacedrep

import "time"

// State holds the scheduling parameters of a single card. It is a plain
// value: Apply returns a new State and never modifies the receiver.
type State struct {
	EaseFactor float64    `json:"ease_factor"`
	Interval   int        `json:"interval"`
	NextReview *time.Time `json:"next_review"`
}

// NewState returns the state of a card that has never been reviewed.
func NewState() State {
	return State{EaseFactor: DefaultEaseFactor}
}

// Validate checks the state invariants.
func (s State) Validate() error {
	return ValidateState(s.EaseFactor, s.Interval)
}

// Apply runs one review of the given quality at now and returns the
// resulting state.
func (s State) Apply(q Quality, now time.Time) (State, error) {
	interval, ease, err := ComputeNext(q, s.EaseFactor, s.Interval)
	if err != nil {
		return State{}, err
	}
	next := NextReviewDate(interval, now)
	return State{
		EaseFactor: ease,
		Interval:   interval,
		NextReview: &next,
	}, nil
}

// IsDue returns true if the card is unscheduled or at or past its review date.
func (s State) IsDue(now time.Time) bool {
	return s.NextReview == nil || !now.Before(*s.NextReview)
}

// OverdueDays returns how many days past due the card is. Returns 0 if not
// yet due or never scheduled.
func (s State) OverdueDays(now time.Time) float64 {
	if s.NextReview == nil || now.Before(*s.NextReview) {
		return 0
	}
	return now.Sub(*s.NextReview).Hours() / 24.0
}

// IsOverdue returns true once the card has sat past its due date for longer
// than OverdueGraceFactor of its interval.
func (s State) IsOverdue(now time.Time) bool {
	if s.NextReview == nil || now.Before(*s.NextReview) {
		return false
	}
	graceHours := float64(max(s.Interval, 1)) * OverdueGraceFactor * 24.0
	threshold := s.NextReview.Add(time.Duration(graceHours * float64(time.Hour)))
	return now.After(threshold)
}

// ReviewStatus describes a card's review status for display.
type ReviewStatus string

const (
	ReviewNew     ReviewStatus = "new"
	ReviewNotDue  ReviewStatus = "not_due"
	ReviewDue     ReviewStatus = "due"
	ReviewOverdue ReviewStatus = "overdue"
)

// Status returns the review status for UI display.
func (s State) Status(now time.Time) ReviewStatus {
	switch {
	case s.NextReview == nil:
		return ReviewNew
	case s.IsOverdue(now):
		return ReviewOverdue
	case s.IsDue(now):
		return ReviewDue
	default:
		return ReviewNotDue
	}
}

// DaysUntilReview returns the number of days until the next review.
// Returns 0 if already due.
func (s State) DaysUntilReview(now time.Time) int {
	if s.IsDue(now) {
		return 0
	}
	return int(s.NextReview.Sub(now).Hours()/24.0) + 1
}

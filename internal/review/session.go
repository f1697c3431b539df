package review

import "time"

// Session tallies the reviews of one study sitting.
type Session struct {
	ID      string
	Started time.Time
	Results []Result
}

// NewSession starts a session at now.
func NewSession(now time.Time) *Session {
	return &Session{ID: NewSessionID(), Started: now}
}

// Record adds a review result.
func (s *Session) Record(r Result) {
	s.Results = append(s.Results, r)
}

// Summary holds the figures shown at the end of a session.
type Summary struct {
	Reviewed   int
	Passed     int
	Lapsed     int
	AvgQuality float64
	Duration   time.Duration
	// NextDue is the earliest next review among the cards reviewed.
	NextDue *time.Time
}

// Summarize builds the session summary as of now.
func (s *Session) Summarize(now time.Time) Summary {
	sum := Summary{
		Reviewed: len(s.Results),
		Duration: now.Sub(s.Started),
	}
	var total int
	for _, r := range s.Results {
		total += int(r.Quality)
		if r.Quality.Passed() {
			sum.Passed++
		} else {
			sum.Lapsed++
		}
		if nr := r.Next.NextReview; nr != nil && (sum.NextDue == nil || nr.Before(*sum.NextDue)) {
			t := *nr
			sum.NextDue = &t
		}
	}
	if sum.Reviewed > 0 {
		sum.AvgQuality = float64(total) / float64(sum.Reviewed)
	}
	return sum
}

// Accuracy is the share of passed reviews, 0 when nothing was reviewed.
func (s Summary) Accuracy() float64 {
	if s.Reviewed == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Reviewed)
}

package spacedrep

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// Candidate is the scheduling snapshot of one card considered for review.
type Candidate struct {
	ID         int
	EaseFactor float64
	NextReview *time.Time
}

// dueKey is the composite ordering key of an eligible candidate.
type dueKey struct {
	rank int // 0 = has a due date, 1 = never scheduled
	due  time.Time
	ease float64
}

func keyOf(c Candidate, now time.Time) dueKey {
	if c.NextReview == nil {
		return dueKey{rank: 1, due: now, ease: c.EaseFactor}
	}
	return dueKey{rank: 0, due: *c.NextReview, ease: c.EaseFactor}
}

func compareKeys(a, b dueKey) int {
	if c := cmp.Compare(a.rank, b.rank); c != 0 {
		return c
	}
	if c := a.due.Compare(b.due); c != 0 {
		return c
	}
	return cmp.Compare(a.ease, b.ease)
}

// SelectDue returns the ids of the candidates due at now, most urgent first,
// truncated to limit.
//
// A candidate is due when it was never scheduled or its next review is at or
// before now. Scheduled candidates come first, ordered by due date; ease
// factor breaks ties and orders the never-scheduled tail. Equal keys keep
// their input order.
func SelectDue(items []Candidate, now time.Time, limit int) ([]int, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	type keyed struct {
		id  int
		key dueKey
	}
	due := make([]keyed, 0, len(items))
	for _, c := range items {
		if c.NextReview != nil && c.NextReview.After(now) {
			continue
		}
		due = append(due, keyed{id: c.ID, key: keyOf(c, now)})
	}

	slices.SortStableFunc(due, func(a, b keyed) int {
		return compareKeys(a.key, b.key)
	})

	n := min(limit, len(due))
	ids := make([]int, n)
	for i := range n {
		ids[i] = due[i].id
	}
	return ids, nil
}

package spacedrep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	idA = iota + 1
	idB
	idC
	idD
	idE
)

func dueFixture(now time.Time) []Candidate {
	day := 24 * time.Hour
	return []Candidate{
		{ID: idB, EaseFactor: 2.5, NextReview: nil},
		{ID: idD, EaseFactor: 3.0, NextReview: ptr(now.Add(-day))},
		{ID: idA, EaseFactor: 2.5, NextReview: ptr(now.Add(-2 * day))},
		{ID: idC, EaseFactor: 1.5, NextReview: ptr(now.Add(-day))},
	}
}

func TestSelectDue_Order(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	got, err := SelectDue(dueFixture(now), now, 20)
	require.NoError(t, err)
	assert.Equal(t, []int{idA, idC, idD, idB}, got)
}

func TestSelectDue_Idempotent(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	first, err := SelectDue(dueFixture(now), now, 20)
	require.NoError(t, err)
	second, err := SelectDue(dueFixture(now), now, 20)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSelectDue_Limit(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	got, err := SelectDue(dueFixture(now), now, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{idA, idC}, got)

	got, err = SelectDue(dueFixture(now), now, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectDue_ExcludesFuture(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	items := append(dueFixture(now), Candidate{ID: idE, EaseFactor: 1.3, NextReview: ptr(now.Add(24 * time.Hour))})
	got, err := SelectDue(items, now, 20)
	require.NoError(t, err)
	assert.NotContains(t, got, idE)
	assert.Len(t, got, 4)
}

func TestSelectDue_DueExactlyNowIncluded(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	got, err := SelectDue([]Candidate{{ID: idA, EaseFactor: 2.5, NextReview: ptr(now)}}, now, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{idA}, got)
}

func TestSelectDue_UnscheduledByEase(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	items := []Candidate{
		{ID: 1, EaseFactor: 2.5},
		{ID: 2, EaseFactor: 1.3},
		{ID: 3, EaseFactor: 2.0},
	}
	got, err := SelectDue(items, now, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, got)
}

func TestSelectDue_StableOnFullTies(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	due := ptr(now.Add(-time.Hour))
	items := []Candidate{
		{ID: 9, EaseFactor: 2.5, NextReview: due},
		{ID: 4, EaseFactor: 2.5, NextReview: due},
		{ID: 7, EaseFactor: 2.5, NextReview: due},
	}
	got, err := SelectDue(items, now, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 4, 7}, got)
}

func TestSelectDue_ScheduledBeforeUnscheduledRegardlessOfEase(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	items := []Candidate{
		{ID: 1, EaseFactor: 1.3},
		{ID: 2, EaseFactor: 5.0, NextReview: ptr(now.Add(-time.Minute))},
	}
	got, err := SelectDue(items, now, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, got)
}

func TestSelectDue_Empty(t *testing.T) {
	got, err := SelectDue(nil, time.Now(), 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSelectDue_NegativeLimit(t *testing.T) {
	_, err := SelectDue(dueFixture(time.Now()), time.Now(), -1)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestSelectDue_DoesNotReorderInput(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	items := dueFixture(now)
	_, err := SelectDue(items, now, 20)
	require.NoError(t, err)
	assert.Equal(t, idB, items[0].ID)
	assert.Equal(t, idC, items[3].ID)
}

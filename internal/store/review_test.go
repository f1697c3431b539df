package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartanki/smartanki/internal/spacedrep"
)

func applyAt(now time.Time, q spacedrep.Quality) TransitionFunc {
	return func(prev spacedrep.State) (spacedrep.State, error) {
		return prev.Apply(q, now)
	}
}

func TestApplyReview(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	c, err := s.CardRepo().Create(ctx, NewCard{Front: "q"})
	require.NoError(t, err)

	out, err := s.ReviewRepo().ApplyReview(ctx, ReviewInput{
		CardID:     c.ID,
		Quality:    spacedrep.QualityHesitant,
		SessionID:  "sess-1",
		ReviewedAt: now,
	}, applyAt(now, spacedrep.QualityHesitant))
	require.NoError(t, err)

	assert.Equal(t, spacedrep.NewState(), out.Previous)
	assert.Equal(t, 1, out.Card.State.Interval)
	assert.InDelta(t, 2.5, out.Card.State.EaseFactor, 1e-9)
	require.NotNil(t, out.Card.State.NextReview)
	assert.True(t, out.Card.State.NextReview.Equal(now.AddDate(0, 0, 1)))
	assert.Equal(t, 1, out.Card.ReviewCount)
	assert.Equal(t, 0, out.Card.LapseCount)

	events, err := s.EventRepo().QueryReviewEvents(ctx, c.ID, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, out.Sequence, ev.Sequence)
	assert.Equal(t, 4, ev.Quality)
	assert.Equal(t, 0, ev.IntervalBefore)
	assert.Equal(t, 1, ev.IntervalAfter)
	assert.Equal(t, "sess-1", ev.SessionID)
	assert.True(t, ev.Timestamp.Equal(now))
}

func TestApplyReviewLapse(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	c, err := s.CardRepo().Create(ctx, NewCard{Front: "q"})
	require.NoError(t, err)
	repo := s.ReviewRepo()

	for _, q := range []spacedrep.Quality{spacedrep.QualityPerfect, spacedrep.QualityPerfect, spacedrep.QualityBlackout} {
		_, err := repo.ApplyReview(ctx, ReviewInput{CardID: c.ID, Quality: q, ReviewedAt: now}, applyAt(now, q))
		require.NoError(t, err)
	}

	got, err := s.CardRepo().Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.ReviewCount)
	assert.Equal(t, 1, got.LapseCount)
	// 1 -> 6 -> max(1, floor(6*0.5)) = 3
	assert.Equal(t, 3, got.State.Interval)
	assert.InDelta(t, 2.55, got.State.EaseFactor, 1e-9)
}

func TestApplyReviewMissingCard(t *testing.T) {
	s := openTestStore(t)
	now := time.Now().UTC()
	_, err := s.ReviewRepo().ApplyReview(context.Background(),
		ReviewInput{CardID: 42, Quality: spacedrep.QualityHesitant},
		applyAt(now, spacedrep.QualityHesitant))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApplyReviewTransitionErrorRollsBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	c, err := s.CardRepo().Create(ctx, NewCard{Front: "q"})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = s.ReviewRepo().ApplyReview(ctx, ReviewInput{CardID: c.ID, Quality: spacedrep.QualityHesitant},
		func(spacedrep.State) (spacedrep.State, error) { return spacedrep.State{}, boom })
	assert.ErrorIs(t, err, boom)

	got, err := s.CardRepo().Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ReviewCount)
	assert.Nil(t, got.State.NextReview)

	events, err := s.EventRepo().QueryReviewEvents(ctx, c.ID, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestReviewStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	cards, err := s.CardRepo().CreateBulk(ctx, []NewCard{{Front: "a"}, {Front: "b"}, {Front: "c"}})
	require.NoError(t, err)

	repo := s.ReviewRepo()
	_, err = repo.ApplyReview(ctx, ReviewInput{CardID: cards[0].ID, Quality: spacedrep.QualityPerfect, ReviewedAt: now},
		applyAt(now, spacedrep.QualityPerfect))
	require.NoError(t, err)
	_, err = repo.ApplyReview(ctx, ReviewInput{CardID: cards[1].ID, Quality: spacedrep.QualityAlmost, ReviewedAt: now},
		applyAt(now, spacedrep.QualityAlmost))
	require.NoError(t, err)

	stats, err := s.EventRepo().ReviewStats(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalCards)
	assert.Equal(t, 1, stats.NewCards)
	assert.Equal(t, 1, stats.DueCards)
	assert.Equal(t, 2, stats.TotalReviews)
	assert.Equal(t, 1, stats.Lapses)
	assert.Equal(t, map[int]int{5: 1, 2: 1}, stats.ByQuality)
	// (2.6 + 2.35) / 2
	assert.InDelta(t, 2.475, stats.AvgEaseFactor, 1e-9)
	assert.InDelta(t, 1.0, stats.AvgIntervalDay, 1e-9)

	later, err := s.EventRepo().ReviewStats(ctx, now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 3, later.DueCards)

	recent, err := s.EventRepo().RecentReviews(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, cards[1].ID, recent[0].CardID)
}

func TestApplyReviewFailuresKeepSequenceContiguous(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	reviews := s.ReviewRepo()

	c, err := s.CardRepo().Create(ctx, NewCard{Front: "q"})
	require.NoError(t, err)

	first, err := reviews.ApplyReview(ctx, ReviewInput{CardID: c.ID, Quality: spacedrep.QualityPerfect},
		applyAt(now, spacedrep.QualityPerfect))
	require.NoError(t, err)

	_, err = reviews.ApplyReview(ctx, ReviewInput{CardID: c.ID + 100, Quality: spacedrep.QualityPerfect},
		applyAt(now, spacedrep.QualityPerfect))
	require.ErrorIs(t, err, ErrNotFound)

	boom := errors.New("boom")
	_, err = reviews.ApplyReview(ctx, ReviewInput{CardID: c.ID, Quality: spacedrep.QualityPerfect},
		func(spacedrep.State) (spacedrep.State, error) { return spacedrep.State{}, boom })
	require.ErrorIs(t, err, boom)

	second, err := reviews.ApplyReview(ctx, ReviewInput{CardID: c.ID, Quality: spacedrep.QualityPerfect},
		applyAt(now.AddDate(0, 0, 1), spacedrep.QualityPerfect))
	require.NoError(t, err)
	assert.Equal(t, first.Sequence+1, second.Sequence)

	// Sequence numbers stay shared with events appended outside a review.
	require.NoError(t, s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "query", Success: true}))
	llmEvents, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, llmEvents, 1)
	assert.Equal(t, second.Sequence+1, llmEvents[0].Sequence)
}

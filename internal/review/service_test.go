package review

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartanki/smartanki/internal/spacedrep"
	"github.com/smartanki/smartanki/internal/store"
)

var t0 = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	store *store.Store
	clock *spacedrep.FixedClock
	svc   *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:review_%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	clock := spacedrep.NewFixedClock(t0)
	svc := NewService(Deps{
		Cards:   s.CardRepo(),
		Reviews: s.ReviewRepo(),
		Events:  s.EventRepo(),
		Clock:   clock,
	}, DefaultConfig())
	return &fixture{store: s, clock: clock, svc: svc}
}

func (f *fixture) addCard(t *testing.T, front string) *store.Card {
	t.Helper()
	c, err := f.store.CardRepo().Create(context.Background(), store.NewCard{Front: front, Back: "b"})
	require.NoError(t, err)
	return c
}

func intPtr(v int) *int { return &v }

func TestSubmit(t *testing.T) {
	f := newFixture(t)
	c := f.addCard(t, "q")
	ctx := context.Background()

	res, err := f.svc.Submit(ctx, c.ID, spacedrep.QualityPerfect, "s1")
	require.NoError(t, err)
	assert.Equal(t, spacedrep.NewState(), res.Previous)
	assert.Equal(t, 1, res.Next.Interval)
	assert.InDelta(t, 2.6, res.Next.EaseFactor, 1e-9)
	require.NotNil(t, res.Next.NextReview)
	assert.True(t, res.Next.NextReview.Equal(t0.AddDate(0, 0, 1)))
	assert.True(t, res.ReviewedAt.Equal(t0))

	f.clock.Advance(24 * time.Hour)
	res, err = f.svc.Submit(ctx, c.ID, spacedrep.QualityPerfect, "s1")
	require.NoError(t, err)
	assert.Equal(t, 6, res.Next.Interval)
	assert.InDelta(t, 2.7, res.Next.EaseFactor, 1e-9)
	assert.True(t, res.Next.NextReview.Equal(t0.AddDate(0, 0, 7)))
}

func TestSubmit_InvalidQuality(t *testing.T) {
	f := newFixture(t)
	c := f.addCard(t, "q")

	for _, q := range []spacedrep.Quality{-1, 6} {
		_, err := f.svc.Submit(context.Background(), c.ID, q, "")
		assert.ErrorIs(t, err, spacedrep.ErrInvalidQuality)
	}

	got, err := f.store.CardRepo().Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ReviewCount)
}

func TestSubmit_UnknownCard(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Submit(context.Background(), 404, spacedrep.QualityHard, "")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestSubmit_CorruptStateRejected(t *testing.T) {
	f := newFixture(t)
	c := f.addCard(t, "q")
	ctx := context.Background()

	_, err := f.store.Client().Card.UpdateOneID(c.ID).SetEaseFactor(1.0).Save(ctx)
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, c.ID, spacedrep.QualityPerfect, "")
	assert.ErrorIs(t, err, spacedrep.ErrInvalidState)

	got, err := f.store.CardRepo().Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.State.EaseFactor, "state must not be clamped")
}

func TestSubmit_ConcurrentReviewsSerialize(t *testing.T) {
	f := newFixture(t)
	c := f.addCard(t, "q")
	ctx := context.Background()

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Submit(ctx, c.ID, spacedrep.QualityPerfect, "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := f.store.CardRepo().Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, n, got.ReviewCount)

	events, err := f.store.EventRepo().QueryReviewEvents(ctx, c.ID, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, n)
	// Each event starts from the state the previous one left behind.
	for i := 0; i < n-1; i++ {
		newer, older := events[i], events[i+1]
		assert.Equal(t, older.IntervalAfter, newer.IntervalBefore)
		assert.InDelta(t, older.EaseAfter, newer.EaseBefore, 1e-9)
	}
}

func TestDue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.addCard(t, "A")
	b := f.addCard(t, "B")
	cc := f.addCard(t, "C")
	d := f.addCard(t, "D")

	set := func(id int, ease float64, due *time.Time) {
		upd := f.store.Client().Card.UpdateOneID(id).SetEaseFactor(ease)
		if due != nil {
			upd.SetNextReview(*due).SetInterval(1)
		}
		_, err := upd.Save(ctx)
		require.NoError(t, err)
	}
	yesterday := t0.AddDate(0, 0, -1)
	twoDaysAgo := t0.AddDate(0, 0, -2)
	tomorrow := t0.AddDate(0, 0, 1)
	set(a.ID, 2.5, &twoDaysAgo)
	set(b.ID, 2.0, nil)
	set(cc.ID, 2.5, &yesterday)
	set(d.ID, 1.3, &tomorrow)
	e := f.addCard(t, "E") // new, default ease 2.5

	due, err := f.svc.Due(ctx, DueRequest{})
	require.NoError(t, err)
	var ids []int
	for _, dc := range due {
		ids = append(ids, dc.Card.ID)
	}
	assert.Equal(t, []int{a.ID, cc.ID, b.ID, e.ID}, ids)
	assert.Equal(t, spacedrep.ReviewOverdue, due[0].Status)
	assert.InDelta(t, 2.0, due[0].OverdueDays, 1e-9)
	assert.Equal(t, spacedrep.ReviewNew, due[2].Status)

	due, err = f.svc.Due(ctx, DueRequest{Limit: intPtr(2)})
	require.NoError(t, err)
	assert.Len(t, due, 2)

	due, err = f.svc.Due(ctx, DueRequest{Limit: intPtr(0)})
	require.NoError(t, err)
	assert.Empty(t, due)

	_, err = f.svc.Due(ctx, DueRequest{Limit: intPtr(-1)})
	assert.ErrorIs(t, err, spacedrep.ErrInvalidLimit)
}

func TestDue_LimitCappedAtMax(t *testing.T) {
	f := newFixture(t)
	f.svc.cfg.MaxLimit = 2
	for i := 0; i < 4; i++ {
		f.addCard(t, fmt.Sprintf("c%d", i))
	}

	due, err := f.svc.Due(context.Background(), DueRequest{Limit: intPtr(100)})
	require.NoError(t, err)
	assert.Len(t, due, 2)
}

func TestDue_ReviewedCardLeavesDueSet(t *testing.T) {
	f := newFixture(t)
	c := f.addCard(t, "q")
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, c.ID, spacedrep.QualityHesitant, "")
	require.NoError(t, err)

	due, err := f.svc.Due(ctx, DueRequest{})
	require.NoError(t, err)
	assert.Empty(t, due)

	f.clock.Advance(24 * time.Hour)
	due, err = f.svc.Due(ctx, DueRequest{})
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, spacedrep.ReviewDue, due[0].Status)
}

func TestPreview(t *testing.T) {
	f := newFixture(t)
	c := f.addCard(t, "q")

	proj, err := f.svc.Preview(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, proj, 6)
	for i, p := range proj {
		assert.Equal(t, spacedrep.Quality(i), p.Quality)
		assert.Equal(t, 1, p.Interval)
		assert.True(t, p.NextReview.Equal(t0.AddDate(0, 0, 1)))
	}
	assert.InDelta(t, 2.35, proj[0].EaseFactor, 1e-9)
	assert.InDelta(t, 2.6, proj[5].EaseFactor, 1e-9)

	got, err := f.store.CardRepo().Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ReviewCount, "preview must not persist")

	_, err = f.svc.Preview(context.Background(), 999)
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestHistoryAndStats(t *testing.T) {
	f := newFixture(t)
	c := f.addCard(t, "q")
	f.addCard(t, "untouched")
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, c.ID, spacedrep.QualityPerfect, "")
	require.NoError(t, err)
	_, err = f.svc.Submit(ctx, c.ID, spacedrep.QualityWrong, "")
	require.NoError(t, err)

	hist, err := f.svc.History(ctx, c.ID, 0)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, 1, hist[0].Quality)

	_, err = f.svc.History(ctx, 999, 0)
	assert.ErrorIs(t, err, ErrCardNotFound)

	stats, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCards)
	assert.Equal(t, 2, stats.TotalReviews)
	assert.Equal(t, 1, stats.Lapses)
}

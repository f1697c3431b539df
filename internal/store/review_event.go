package store

import (
	"context"
	"fmt"
	"time"

	"github.com/smartanki/smartanki/ent"
	"github.com/smartanki/smartanki/ent/card"
	"github.com/smartanki/smartanki/ent/predicate"
	"github.com/smartanki/smartanki/ent/reviewevent"
	"github.com/smartanki/smartanki/internal/spacedrep"
)

func (r *eventRepo) QueryReviewEvents(ctx context.Context, cardID int, opts QueryOpts) ([]ReviewEventRecord, error) {
	return r.queryReviews(ctx, opts, reviewevent.CardID(cardID))
}

func (r *eventRepo) RecentReviews(ctx context.Context, opts QueryOpts) ([]ReviewEventRecord, error) {
	return r.queryReviews(ctx, opts)
}

func (r *eventRepo) queryReviews(ctx context.Context, opts QueryOpts, ps ...predicate.ReviewEvent) ([]ReviewEventRecord, error) {
	query := r.client.ReviewEvent.Query().
		Where(ps...).
		Order(ent.Desc(reviewevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(reviewevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(reviewevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(reviewevent.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		query = query.Where(reviewevent.TimestampLTE(opts.To.UTC()))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}

	records := make([]ReviewEventRecord, len(events))
	for i, e := range events {
		records[i] = ReviewEventRecord{
			ID:             e.ID,
			Sequence:       e.Sequence,
			Timestamp:      e.Timestamp.UTC(),
			CardID:         e.CardID,
			Quality:        e.Quality,
			EaseBefore:     e.EaseBefore,
			EaseAfter:      e.EaseAfter,
			IntervalBefore: e.IntervalBefore,
			IntervalAfter:  e.IntervalAfter,
			NextReview:     e.NextReview.UTC(),
			SessionID:      e.SessionID,
		}
	}
	return records, nil
}

func (r *eventRepo) ReviewStats(ctx context.Context, now time.Time) (*ReviewStats, error) {
	cards, err := r.client.Card.Query().
		Select(card.FieldEaseFactor, card.FieldInterval, card.FieldNextReview, card.FieldReviewCount).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}

	stats := &ReviewStats{
		TotalCards: len(cards),
		ByQuality:  make(map[int]int),
	}

	now = now.UTC()
	var reviewed int
	var easeSum, intervalSum float64
	for _, c := range cards {
		if c.NextReview == nil {
			stats.NewCards++
		}
		if c.NextReview == nil || !c.NextReview.After(now) {
			stats.DueCards++
		}
		if c.ReviewCount > 0 {
			reviewed++
			easeSum += c.EaseFactor
			intervalSum += float64(c.Interval)
		}
	}
	if reviewed > 0 {
		stats.AvgEaseFactor = easeSum / float64(reviewed)
		stats.AvgIntervalDay = intervalSum / float64(reviewed)
	}

	events, err := r.client.ReviewEvent.Query().
		Select(reviewevent.FieldQuality).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review events: %w", err)
	}
	stats.TotalReviews = len(events)
	for _, e := range events {
		stats.ByQuality[e.Quality]++
		if !spacedrep.Quality(e.Quality).Passed() {
			stats.Lapses++
		}
	}

	return stats, nil
}

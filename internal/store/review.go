package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartanki/smartanki/ent"
	"github.com/smartanki/smartanki/ent/card"
)

// reviewRepo implements ReviewRepo. The card row and its ReviewEvent are
// written in one transaction; on Postgres the card row is locked with
// SELECT ... FOR UPDATE for the duration.
type reviewRepo struct {
	client   *ent.Client
	seq      *sequenceCounter
	lockRows bool
}

func (r *reviewRepo) ApplyReview(ctx context.Context, in ReviewInput, transition TransitionFunc) (*ReviewOutcome, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	query := tx.Card.Query().Where(card.ID(in.CardID))
	if r.lockRows {
		query = query.ForUpdate()
	}
	row, err := query.Only(ctx)
	if ent.IsNotFound(err) {
		return nil, rollback(tx, ErrNotFound)
	}
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("load card %d: %w", in.CardID, err))
	}

	prev := toCard(row).State
	next, err := transition(prev)
	if err != nil {
		return nil, rollback(tx, err)
	}
	if next.NextReview == nil {
		return nil, rollback(tx, errors.New("transition left card unscheduled"))
	}
	nextReview := next.NextReview.UTC()

	upd := tx.Card.UpdateOneID(row.ID).
		SetEaseFactor(next.EaseFactor).
		SetInterval(next.Interval).
		SetNextReview(nextReview).
		AddReviewCount(1)
	if !in.Quality.Passed() {
		upd.AddLapseCount(1)
	}
	saved, err := upd.Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("update card %d: %w", row.ID, err))
	}

	// Allocated last and inside tx: a missing card or a failed transition
	// leaves the global sequence untouched.
	seqNum, err := r.seq.NextTx(ctx, tx)
	if err != nil {
		return nil, rollback(tx, err)
	}

	ev := tx.ReviewEvent.Create().
		SetSequence(seqNum).
		SetCardID(row.ID).
		SetQuality(int(in.Quality)).
		SetEaseBefore(prev.EaseFactor).
		SetEaseAfter(next.EaseFactor).
		SetIntervalBefore(prev.Interval).
		SetIntervalAfter(next.Interval).
		SetNextReview(nextReview)
	if !in.ReviewedAt.IsZero() {
		ev.SetTimestamp(in.ReviewedAt.UTC())
	}
	if in.SessionID != "" {
		ev.SetSessionID(in.SessionID)
	}
	if _, err := ev.Save(ctx); err != nil {
		return nil, rollback(tx, fmt.Errorf("save review event: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit review: %w", err)
	}

	return &ReviewOutcome{
		Card:     toCard(saved),
		Previous: prev,
		Sequence: seqNum,
	}, nil
}

// rollback aborts tx and returns err, folding in any rollback failure.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback: %v", err, rerr)
	}
	return err
}

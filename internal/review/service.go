package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartanki/smartanki/internal/logger"
	"github.com/smartanki/smartanki/internal/spacedrep"
	"github.com/smartanki/smartanki/internal/store"
)

// ErrCardNotFound is returned when a review targets a card that does not
// exist.
var ErrCardNotFound = errors.New("review: card not found")

// Config bounds due-set requests and lock waits.
type Config struct {
	DefaultLimit int
	MaxLimit     int
	LockTimeout  time.Duration
}

// DefaultConfig returns the built-in limits.
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 20,
		MaxLimit:     200,
		LockTimeout:  5 * time.Second,
	}
}

// Deps are the collaborators of a Service. Locker and Clock default to an
// in-process locker and the system clock; Log defaults to a no-op logger.
type Deps struct {
	Cards   store.CardRepo
	Reviews store.ReviewRepo
	Events  store.EventRepo
	Locker  store.Locker
	Clock   spacedrep.Clock
	Log     *logger.Logger
}

// Service grades reviews and selects due cards.
type Service struct {
	cards   store.CardRepo
	reviews store.ReviewRepo
	events  store.EventRepo
	locker  store.Locker
	clock   spacedrep.Clock
	log     *logger.Logger
	cfg     Config
}

// NewService creates a review service.
func NewService(d Deps, cfg Config) *Service {
	if d.Locker == nil {
		d.Locker = store.NewLocalLocker()
	}
	if d.Clock == nil {
		d.Clock = spacedrep.SystemClock{}
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return &Service{
		cards:   d.Cards,
		reviews: d.Reviews,
		events:  d.Events,
		locker:  d.Locker,
		clock:   d.Clock,
		log:     d.Log.With("component", "review"),
		cfg:     cfg,
	}
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// Result is the outcome of one submitted review.
type Result struct {
	CardID     int
	Quality    spacedrep.Quality
	Previous   spacedrep.State
	Next       spacedrep.State
	Card       *store.Card
	ReviewedAt time.Time
}

// Submit grades a card. The read-compute-write cycle runs under the card's
// lock and in one transaction, so concurrent reviews of the same card are
// applied one after the other.
func (s *Service) Submit(ctx context.Context, cardID int, q spacedrep.Quality, sessionID string) (*Result, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	lockCtx := ctx
	if s.cfg.LockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, s.cfg.LockTimeout)
		defer cancel()
	}
	unlock, err := s.locker.Lock(lockCtx, store.CardLockKey(cardID))
	if err != nil {
		return nil, fmt.Errorf("lock card %d: %w", cardID, err)
	}
	defer unlock()

	now := s.clock.Now()
	out, err := s.reviews.ApplyReview(ctx, store.ReviewInput{
		CardID:     cardID,
		Quality:    q,
		SessionID:  sessionID,
		ReviewedAt: now,
	}, func(prev spacedrep.State) (spacedrep.State, error) {
		return prev.Apply(q, now)
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrCardNotFound, cardID)
	}
	if err != nil {
		if errors.Is(err, spacedrep.ErrInvalidState) {
			s.log.Error("stored scheduling state is invalid", "card_id", cardID, "error", err)
		}
		return nil, fmt.Errorf("apply review: %w", err)
	}

	s.log.Info("review applied",
		"card_id", cardID,
		"quality", int(q),
		"interval_before", out.Previous.Interval,
		"interval_after", out.Card.State.Interval,
		"ease_after", out.Card.State.EaseFactor,
		"session_id", sessionID,
	)

	return &Result{
		CardID:     cardID,
		Quality:    q,
		Previous:   out.Previous,
		Next:       out.Card.State,
		Card:       out.Card,
		ReviewedAt: now,
	}, nil
}

// DueRequest selects due cards. A nil Limit uses the configured default;
// limits above the configured maximum are reduced to it.
type DueRequest struct {
	CategoryID *int
	Limit      *int
}

// DueCard is a card selected for review with its display status.
type DueCard struct {
	Card        *store.Card
	Status      spacedrep.ReviewStatus
	OverdueDays float64
}

// Due returns the cards due now, most urgent first.
func (s *Service) Due(ctx context.Context, req DueRequest) ([]DueCard, error) {
	limit := s.cfg.DefaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", spacedrep.ErrInvalidLimit, limit)
	}
	if s.cfg.MaxLimit > 0 && limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}

	now := s.clock.Now()
	cards, err := s.cards.DueCandidates(ctx, now, req.CategoryID)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]*store.Card, len(cards))
	candidates := make([]spacedrep.Candidate, len(cards))
	for i, c := range cards {
		byID[c.ID] = c
		candidates[i] = spacedrep.Candidate{
			ID:         c.ID,
			EaseFactor: c.State.EaseFactor,
			NextReview: c.State.NextReview,
		}
	}

	ids, err := spacedrep.SelectDue(candidates, now, limit)
	if err != nil {
		return nil, err
	}

	out := make([]DueCard, len(ids))
	for i, id := range ids {
		c := byID[id]
		out[i] = DueCard{
			Card:        c,
			Status:      c.State.Status(now),
			OverdueDays: c.State.OverdueDays(now),
		}
	}
	return out, nil
}

// Projection is the state a card would move to for one quality.
type Projection struct {
	Quality    spacedrep.Quality
	Interval   int
	EaseFactor float64
	NextReview time.Time
}

// Preview returns the outcome of every quality for a card without
// persisting anything.
func (s *Service) Preview(ctx context.Context, cardID int) ([]Projection, error) {
	c, err := s.cards.Get(ctx, cardID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrCardNotFound, cardID)
	}
	if err != nil {
		return nil, err
	}
	return Project(c.State, s.clock.Now())
}

// Project computes the outcome of every quality from st at now.
func Project(st spacedrep.State, now time.Time) ([]Projection, error) {
	out := make([]Projection, 0, int(spacedrep.QualityPerfect)+1)
	for q := spacedrep.QualityBlackout; q <= spacedrep.QualityPerfect; q++ {
		next, err := st.Apply(q, now)
		if err != nil {
			return nil, err
		}
		out = append(out, Projection{
			Quality:    q,
			Interval:   next.Interval,
			EaseFactor: next.EaseFactor,
			NextReview: *next.NextReview,
		})
	}
	return out, nil
}

// History returns a card's review events, newest first.
func (s *Service) History(ctx context.Context, cardID int, limit int) ([]store.ReviewEventRecord, error) {
	if _, err := s.cards.Get(ctx, cardID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrCardNotFound, cardID)
		}
		return nil, err
	}
	return s.events.QueryReviewEvents(ctx, cardID, store.QueryOpts{Limit: limit})
}

// Stats summarises the collection as of now.
func (s *Service) Stats(ctx context.Context) (*store.ReviewStats, error) {
	return s.events.ReviewStats(ctx, s.clock.Now())
}

// NewSessionID returns an identifier grouping the reviews of one study
// session.
func NewSessionID() string {
	return uuid.NewString()
}

package store

import (
	"context"
	"errors"
	"time"

	"github.com/smartanki/smartanki/internal/spacedrep"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// CardType is the presentation style of a card.
type CardType string

const (
	CardTypeTypeIn  CardType = "type_in"
	CardTypeReverse CardType = "reverse"
	CardTypeCloze   CardType = "cloze"
)

// Valid reports whether t is a known card type.
func (t CardType) Valid() bool {
	switch t {
	case CardTypeTypeIn, CardTypeReverse, CardTypeCloze:
		return true
	}
	return false
}

// Card is a flashcard with its current scheduling state.
type Card struct {
	ID          int
	CategoryID  *int
	Type        CardType
	Front       string
	Back        string
	Metadata    map[string]any
	CreatedAt   time.Time
	State       spacedrep.State
	ReviewCount int
	LapseCount  int
}

// NewCard holds the fields needed to create a card. New cards always start
// from spacedrep.NewState().
type NewCard struct {
	CategoryID *int
	Type       CardType
	Front      string
	Back       string
	Metadata   map[string]any
}

// CardFilter narrows card listings.
type CardFilter struct {
	CategoryID *int
	Limit      int
	Offset     int
}

// CardRepo manages cards.
type CardRepo interface {
	Create(ctx context.Context, in NewCard) (*Card, error)
	CreateBulk(ctx context.Context, in []NewCard) ([]*Card, error)
	Get(ctx context.Context, id int) (*Card, error)
	List(ctx context.Context, f CardFilter) ([]*Card, error)
	Delete(ctx context.Context, id int) error

	// DueCandidates returns cards that are unscheduled or scheduled at or
	// before now and belong to no category or an enabled one, in id order.
	// When categoryID is set only that category is considered.
	DueCandidates(ctx context.Context, now time.Time, categoryID *int) ([]*Card, error)
}

// Category groups cards.
type Category struct {
	ID          int
	Name        string
	Description string
	IsEnabled   bool
	ParentID    *int
	CardCount   int
}

// NewCategory holds the fields needed to create a category.
type NewCategory struct {
	Name        string
	Description string
	ParentID    *int
}

// CategoryRepo manages categories.
type CategoryRepo interface {
	Create(ctx context.Context, in NewCategory) (*Category, error)
	Get(ctx context.Context, id int) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	SetEnabled(ctx context.Context, id int, enabled bool) (*Category, error)
}

// ReviewInput identifies one graded review.
type ReviewInput struct {
	CardID     int
	Quality    spacedrep.Quality
	SessionID  string
	ReviewedAt time.Time
}

// TransitionFunc computes the next scheduling state from the stored one.
type TransitionFunc func(prev spacedrep.State) (spacedrep.State, error)

// ReviewOutcome is the result of a persisted review.
type ReviewOutcome struct {
	Card     *Card
	Previous spacedrep.State
	Sequence int64
}

// ReviewRepo persists review results.
type ReviewRepo interface {
	// ApplyReview loads the card, runs transition on its state, writes the
	// new state and appends a ReviewEvent in a single transaction.
	// Returns ErrNotFound if the card does not exist.
	ApplyReview(ctx context.Context, in ReviewInput, transition TransitionFunc) (*ReviewOutcome, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage per purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ReviewEventRecord is a stored review event.
type ReviewEventRecord struct {
	ID             int
	Sequence       int64
	Timestamp      time.Time
	CardID         int
	Quality        int
	EaseBefore     float64
	EaseAfter      float64
	IntervalBefore int
	IntervalAfter  int
	NextReview     time.Time
	SessionID      string
}

// ReviewStats summarises the collection and its review history.
type ReviewStats struct {
	TotalCards     int
	NewCards       int
	DueCards       int
	TotalReviews   int
	Lapses         int
	AvgEaseFactor  float64 // over reviewed cards
	AvgIntervalDay float64 // over reviewed cards
	ByQuality      map[int]int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)
	// GetLLMEvent returns nil, nil when id does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// QueryReviewEvents returns review events for a card, newest first.
	QueryReviewEvents(ctx context.Context, cardID int, opts QueryOpts) ([]ReviewEventRecord, error)
	// RecentReviews returns the latest review events across all cards,
	// newest first.
	RecentReviews(ctx context.Context, opts QueryOpts) ([]ReviewEventRecord, error)
	ReviewStats(ctx context.Context, now time.Time) (*ReviewStats, error)
}

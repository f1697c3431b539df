package api

import (
	"time"

	"github.com/smartanki/smartanki/internal/cardgen"
	"github.com/smartanki/smartanki/internal/review"
	"github.com/smartanki/smartanki/internal/spacedrep"
	"github.com/smartanki/smartanki/internal/store"
)

type cardJSON struct {
	ID          int            `json:"id"`
	CategoryID  *int           `json:"category_id"`
	CardType    string         `json:"card_type"`
	Front       string         `json:"front"`
	Back        string         `json:"back"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	EaseFactor  float64        `json:"ease_factor"`
	Interval    int            `json:"interval"`
	NextReview  *time.Time     `json:"next_review"`
	ReviewCount int            `json:"review_count"`
	LapseCount  int            `json:"lapse_count"`
	Status      string         `json:"status"`
}

func toCardJSON(c *store.Card, now time.Time) cardJSON {
	return cardJSON{
		ID:          c.ID,
		CategoryID:  c.CategoryID,
		CardType:    string(c.Type),
		Front:       c.Front,
		Back:        c.Back,
		Metadata:    c.Metadata,
		CreatedAt:   c.CreatedAt,
		EaseFactor:  c.State.EaseFactor,
		Interval:    c.State.Interval,
		NextReview:  c.State.NextReview,
		ReviewCount: c.ReviewCount,
		LapseCount:  c.LapseCount,
		Status:      string(c.State.Status(now)),
	}
}

func toCardsJSON(cards []*store.Card, now time.Time) []cardJSON {
	out := make([]cardJSON, len(cards))
	for i, c := range cards {
		out[i] = toCardJSON(c, now)
	}
	return out
}

type categoryJSON struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsEnabled   bool   `json:"is_enabled"`
	ParentID    *int   `json:"parent_id"`
	CardCount   int    `json:"card_count"`
}

func toCategoryJSON(c *store.Category) categoryJSON {
	return categoryJSON{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsEnabled:   c.IsEnabled,
		ParentID:    c.ParentID,
		CardCount:   c.CardCount,
	}
}

type reviewResultJSON struct {
	CardID     int             `json:"card_id"`
	Quality    int             `json:"quality"`
	Previous   spacedrep.State `json:"previous"`
	Next       spacedrep.State `json:"next"`
	ReviewedAt time.Time       `json:"reviewed_at"`
	Card       cardJSON        `json:"card"`
}

func toReviewResultJSON(r *review.Result) reviewResultJSON {
	return reviewResultJSON{
		CardID:     r.CardID,
		Quality:    int(r.Quality),
		Previous:   r.Previous,
		Next:       r.Next,
		ReviewedAt: r.ReviewedAt,
		Card:       toCardJSON(r.Card, r.ReviewedAt),
	}
}

type reviewEventJSON struct {
	ID             int       `json:"id"`
	Sequence       int64     `json:"sequence"`
	Timestamp      time.Time `json:"timestamp"`
	CardID         int       `json:"card_id"`
	Quality        int       `json:"quality"`
	EaseBefore     float64   `json:"ease_before"`
	EaseAfter      float64   `json:"ease_after"`
	IntervalBefore int       `json:"interval_before"`
	IntervalAfter  int       `json:"interval_after"`
	NextReview     time.Time `json:"next_review"`
	SessionID      string    `json:"session_id,omitempty"`
}

func toReviewEventsJSON(evs []store.ReviewEventRecord) []reviewEventJSON {
	out := make([]reviewEventJSON, len(evs))
	for i, e := range evs {
		out[i] = reviewEventJSON{
			ID:             e.ID,
			Sequence:       e.Sequence,
			Timestamp:      e.Timestamp,
			CardID:         e.CardID,
			Quality:        e.Quality,
			EaseBefore:     e.EaseBefore,
			EaseAfter:      e.EaseAfter,
			IntervalBefore: e.IntervalBefore,
			IntervalAfter:  e.IntervalAfter,
			NextReview:     e.NextReview,
			SessionID:      e.SessionID,
		}
	}
	return out
}

type projectionJSON struct {
	Quality    int       `json:"quality"`
	Interval   int       `json:"interval"`
	EaseFactor float64   `json:"ease_factor"`
	NextReview time.Time `json:"next_review"`
}

type dueCardJSON struct {
	cardJSON
	OverdueDays float64 `json:"overdue_days"`
}

type statsJSON struct {
	TotalCards      int            `json:"total_cards"`
	NewCards        int            `json:"new_cards"`
	DueCards        int            `json:"due_cards"`
	TotalReviews    int            `json:"total_reviews"`
	Lapses          int            `json:"lapses"`
	AvgEaseFactor   float64        `json:"avg_ease_factor"`
	AvgIntervalDays float64        `json:"avg_interval_days"`
	ByQuality       map[string]int `json:"by_quality"`
}

type factCheckJSON struct {
	Claim      string `json:"claim"`
	Accurate   bool   `json:"accurate"`
	Correction string `json:"correction,omitempty"`
}

type generatedCardJSON struct {
	CardType string `json:"card_type"`
	Front    string `json:"front"`
	Back     string `json:"back"`
	Hint     string `json:"hint,omitempty"`
}

type processedJSON struct {
	FactCheckResults []factCheckJSON     `json:"fact_check_results"`
	Cards            []generatedCardJSON `json:"cards"`
	Summary          string              `json:"summary"`
	KeyPoints        []string            `json:"key_points"`
	RelatedTopics    []string            `json:"related_topics"`
	Saved            []cardJSON          `json:"saved,omitempty"`
}

func toProcessedJSON(p *cardgen.ProcessedContent) processedJSON {
	out := processedJSON{
		FactCheckResults: make([]factCheckJSON, len(p.FactChecks)),
		Cards:            make([]generatedCardJSON, len(p.Cards)),
		Summary:          p.Summary,
		KeyPoints:        p.KeyPoints,
		RelatedTopics:    p.RelatedTopics,
	}
	for i, fc := range p.FactChecks {
		out.FactCheckResults[i] = factCheckJSON{Claim: fc.Claim, Accurate: fc.Accurate, Correction: fc.Correction}
	}
	for i, c := range p.Cards {
		out.Cards[i] = generatedCardJSON{CardType: c.Type, Front: c.Front, Back: c.Back, Hint: c.Hint}
	}
	return out
}

type answerJSON struct {
	Answer        string   `json:"answer"`
	References    []string `json:"references"`
	RelatedTopics []string `json:"related_topics"`
}

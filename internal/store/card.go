package store

import (
	"context"
	"fmt"
	"time"

	"github.com/smartanki/smartanki/ent"
	"github.com/smartanki/smartanki/ent/card"
	"github.com/smartanki/smartanki/ent/category"
	"github.com/smartanki/smartanki/internal/spacedrep"
)

// cardRepo implements CardRepo backed by ent.
type cardRepo struct {
	client *ent.Client
}

func (r *cardRepo) Create(ctx context.Context, in NewCard) (*Card, error) {
	if err := validateNewCard(in); err != nil {
		return nil, err
	}
	c, err := r.createBuilder(r.client, in).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save card: %w", err)
	}
	return toCard(c), nil
}

func (r *cardRepo) CreateBulk(ctx context.Context, in []NewCard) ([]*Card, error) {
	if len(in) == 0 {
		return nil, nil
	}
	builders := make([]*ent.CardCreate, len(in))
	for i, nc := range in {
		if err := validateNewCard(nc); err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		builders[i] = r.createBuilder(r.client, nc)
	}
	created, err := r.client.Card.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save cards: %w", err)
	}
	out := make([]*Card, len(created))
	for i, c := range created {
		out[i] = toCard(c)
	}
	return out, nil
}

func (r *cardRepo) createBuilder(client *ent.Client, in NewCard) *ent.CardCreate {
	st := spacedrep.NewState()
	typ := in.Type
	if typ == "" {
		typ = CardTypeTypeIn
	}
	b := client.Card.Create().
		SetNillableCategoryID(in.CategoryID).
		SetCardType(card.CardType(typ)).
		SetFront(in.Front).
		SetBack(in.Back).
		SetEaseFactor(st.EaseFactor).
		SetInterval(st.Interval)
	if in.Metadata != nil {
		b.SetMetadata(in.Metadata)
	}
	return b
}

func (r *cardRepo) Get(ctx context.Context, id int) (*Card, error) {
	c, err := r.client.Card.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get card %d: %w", id, err)
	}
	return toCard(c), nil
}

func (r *cardRepo) List(ctx context.Context, f CardFilter) ([]*Card, error) {
	query := r.client.Card.Query().
		Order(ent.Asc(card.FieldID))

	if f.CategoryID != nil {
		query = query.Where(card.CategoryID(*f.CategoryID))
	}
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}
	if f.Offset > 0 {
		query = query.Offset(f.Offset)
	}

	cards, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return toCards(cards), nil
}

func (r *cardRepo) Delete(ctx context.Context, id int) error {
	err := r.client.Card.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete card %d: %w", id, err)
	}
	return nil
}

func (r *cardRepo) DueCandidates(ctx context.Context, now time.Time, categoryID *int) ([]*Card, error) {
	query := r.client.Card.Query().
		Where(
			card.Or(card.NextReviewIsNil(), card.NextReviewLTE(now.UTC())),
			card.Or(card.CategoryIDIsNil(), card.HasCategoryWith(category.IsEnabled(true))),
		).
		Order(ent.Asc(card.FieldID))

	if categoryID != nil {
		query = query.Where(card.CategoryID(*categoryID))
	}

	cards, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due candidates: %w", err)
	}
	return toCards(cards), nil
}

func validateNewCard(in NewCard) error {
	if in.Front == "" {
		return fmt.Errorf("card front is required")
	}
	if in.Type != "" && !in.Type.Valid() {
		return fmt.Errorf("unknown card type %q", in.Type)
	}
	return nil
}

func toCards(cards []*ent.Card) []*Card {
	out := make([]*Card, len(cards))
	for i, c := range cards {
		out[i] = toCard(c)
	}
	return out
}

func toCard(c *ent.Card) *Card {
	st := spacedrep.State{
		EaseFactor: c.EaseFactor,
		Interval:   c.Interval,
	}
	if c.NextReview != nil {
		t := c.NextReview.UTC()
		st.NextReview = &t
	}
	return &Card{
		ID:          c.ID,
		CategoryID:  c.CategoryID,
		Type:        CardType(c.CardType),
		Front:       c.Front,
		Back:        c.Back,
		Metadata:    c.Metadata,
		CreatedAt:   c.CreatedAt.UTC(),
		State:       st,
		ReviewCount: c.ReviewCount,
		LapseCount:  c.LapseCount,
	}
}

package store

import (
	"context"
	"fmt"

	"github.com/smartanki/smartanki/ent"
	"github.com/smartanki/smartanki/ent/card"
	"github.com/smartanki/smartanki/ent/category"
)

// categoryRepo implements CategoryRepo backed by ent.
type categoryRepo struct {
	client *ent.Client
}

func (r *categoryRepo) Create(ctx context.Context, in NewCategory) (*Category, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	c, err := r.client.Category.Create().
		SetName(in.Name).
		SetDescription(in.Description).
		SetNillableParentID(in.ParentID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	return toCategory(c, 0), nil
}

func (r *categoryRepo) Get(ctx context.Context, id int) (*Category, error) {
	c, err := r.client.Category.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	n, err := c.QueryCards().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count cards: %w", err)
	}
	return toCategory(c, n), nil
}

func (r *categoryRepo) FindByName(ctx context.Context, name string) (*Category, error) {
	c, err := r.client.Category.Query().
		Where(category.Name(name)).
		Order(ent.Asc(category.FieldID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find category %q: %w", name, err)
	}
	return r.Get(ctx, c.ID)
}

func (r *categoryRepo) List(ctx context.Context) ([]*Category, error) {
	cats, err := r.client.Category.Query().
		Order(ent.Asc(category.FieldName), ent.Asc(category.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	// One pass over categorised cards instead of a count query per row.
	cards, err := r.client.Card.Query().
		Where(card.CategoryIDNotNil()).
		Select(card.FieldCategoryID).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("count cards: %w", err)
	}
	counts := make(map[int]int)
	for _, c := range cards {
		counts[*c.CategoryID]++
	}

	out := make([]*Category, len(cats))
	for i, c := range cats {
		out[i] = toCategory(c, counts[c.ID])
	}
	return out, nil
}

func (r *categoryRepo) SetEnabled(ctx context.Context, id int, enabled bool) (*Category, error) {
	_, err := r.client.Category.UpdateOneID(id).
		SetIsEnabled(enabled).
		Save(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}
	return r.Get(ctx, id)
}

func toCategory(c *ent.Category, cardCount int) *Category {
	return &Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsEnabled:   c.IsEnabled,
		ParentID:    c.ParentID,
		CardCount:   cardCount,
	}
}

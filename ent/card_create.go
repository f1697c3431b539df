// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smartanki/smartanki/ent/card"
	"github.com/smartanki/smartanki/ent/category"
)

// CardCreate is the builder for creating a Card entity.
type CardCreate struct {
	config
	mutation *CardMutation
	hooks    []Hook
}

// SetCategoryID sets the "category_id" field.
func (_c *CardCreate) SetCategoryID(v int) *CardCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_c *CardCreate) SetNillableCategoryID(v *int) *CardCreate {
	if v != nil {
		_c.SetCategoryID(*v)
	}
	return _c
}

// SetCardType sets the "card_type" field.
func (_c *CardCreate) SetCardType(v card.CardType) *CardCreate {
	_c.mutation.SetCardType(v)
	return _c
}

// SetNillableCardType sets the "card_type" field if the given value is not nil.
func (_c *CardCreate) SetNillableCardType(v *card.CardType) *CardCreate {
	if v != nil {
		_c.SetCardType(*v)
	}
	return _c
}

// SetFront sets the "front" field.
func (_c *CardCreate) SetFront(v string) *CardCreate {
	_c.mutation.SetFront(v)
	return _c
}

// SetBack sets the "back" field.
func (_c *CardCreate) SetBack(v string) *CardCreate {
	_c.mutation.SetBack(v)
	return _c
}

// SetNillableBack sets the "back" field if the given value is not nil.
func (_c *CardCreate) SetNillableBack(v *string) *CardCreate {
	if v != nil {
		_c.SetBack(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *CardCreate) SetMetadata(v map[string]interface{}) *CardCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CardCreate) SetCreatedAt(v time.Time) *CardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CardCreate) SetNillableCreatedAt(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *CardCreate) SetEaseFactor(v float64) *CardCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *CardCreate) SetNillableEaseFactor(v *float64) *CardCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetInterval sets the "interval" field.
func (_c *CardCreate) SetInterval(v int) *CardCreate {
	_c.mutation.SetInterval(v)
	return _c
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (_c *CardCreate) SetNillableInterval(v *int) *CardCreate {
	if v != nil {
		_c.SetInterval(*v)
	}
	return _c
}

// SetNextReview sets the "next_review" field.
func (_c *CardCreate) SetNextReview(v time.Time) *CardCreate {
	_c.mutation.SetNextReview(v)
	return _c
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_c *CardCreate) SetNillableNextReview(v *time.Time) *CardCreate {
	if v != nil {
		_c.SetNextReview(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *CardCreate) SetReviewCount(v int) *CardCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *CardCreate) SetNillableReviewCount(v *int) *CardCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetLapseCount sets the "lapse_count" field.
func (_c *CardCreate) SetLapseCount(v int) *CardCreate {
	_c.mutation.SetLapseCount(v)
	return _c
}

// SetNillableLapseCount sets the "lapse_count" field if the given value is not nil.
func (_c *CardCreate) SetNillableLapseCount(v *int) *CardCreate {
	if v != nil {
		_c.SetLapseCount(*v)
	}
	return _c
}

// SetCategory sets the "category" edge to the Category entity.
func (_c *CardCreate) SetCategory(v *Category) *CardCreate {
	return _c.SetCategoryID(v.ID)
}

// Mutation returns the CardMutation object of the builder.
func (_c *CardCreate) Mutation() *CardMutation {
	return _c.mutation
}

// Save creates the Card in the database.
func (_c *CardCreate) Save(ctx context.Context) (*Card, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CardCreate) SaveX(ctx context.Context) *Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CardCreate) defaults() {
	if _, ok := _c.mutation.CardType(); !ok {
		v := card.DefaultCardType
		_c.mutation.SetCardType(v)
	}
	if _, ok := _c.mutation.Back(); !ok {
		v := card.DefaultBack
		_c.mutation.SetBack(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := card.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := card.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.Interval(); !ok {
		v := card.DefaultInterval
		_c.mutation.SetInterval(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := card.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.LapseCount(); !ok {
		v := card.DefaultLapseCount
		_c.mutation.SetLapseCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CardCreate) check() error {
	if _, ok := _c.mutation.CardType(); !ok {
		return &ValidationError{Name: "card_type", err: errors.New(`ent: missing required field "Card.card_type"`)}
	}
	if v, ok := _c.mutation.CardType(); ok {
		if err := card.CardTypeValidator(v); err != nil {
			return &ValidationError{Name: "card_type", err: fmt.Errorf(`ent: validator failed for field "Card.card_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Front(); !ok {
		return &ValidationError{Name: "front", err: errors.New(`ent: missing required field "Card.front"`)}
	}
	if v, ok := _c.mutation.Front(); ok {
		if err := card.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "Card.front": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Back(); !ok {
		return &ValidationError{Name: "back", err: errors.New(`ent: missing required field "Card.back"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Card.created_at"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "Card.ease_factor"`)}
	}
	if _, ok := _c.mutation.Interval(); !ok {
		return &ValidationError{Name: "interval", err: errors.New(`ent: missing required field "Card.interval"`)}
	}
	if v, ok := _c.mutation.Interval(); ok {
		if err := card.IntervalValidator(v); err != nil {
			return &ValidationError{Name: "interval", err: fmt.Errorf(`ent: validator failed for field "Card.interval": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "Card.review_count"`)}
	}
	if v, ok := _c.mutation.ReviewCount(); ok {
		if err := card.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "Card.review_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LapseCount(); !ok {
		return &ValidationError{Name: "lapse_count", err: errors.New(`ent: missing required field "Card.lapse_count"`)}
	}
	if v, ok := _c.mutation.LapseCount(); ok {
		if err := card.LapseCountValidator(v); err != nil {
			return &ValidationError{Name: "lapse_count", err: fmt.Errorf(`ent: validator failed for field "Card.lapse_count": %w`, err)}
		}
	}
	return nil
}

func (_c *CardCreate) sqlSave(ctx context.Context) (*Card, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CardCreate) createSpec() (*Card, *sqlgraph.CreateSpec) {
	var (
		_node = &Card{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(card.Table, sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CardType(); ok {
		_spec.SetField(card.FieldCardType, field.TypeEnum, value)
		_node.CardType = value
	}
	if value, ok := _c.mutation.Front(); ok {
		_spec.SetField(card.FieldFront, field.TypeString, value)
		_node.Front = value
	}
	if value, ok := _c.mutation.Back(); ok {
		_spec.SetField(card.FieldBack, field.TypeString, value)
		_node.Back = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(card.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(card.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(card.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.Interval(); ok {
		_spec.SetField(card.FieldInterval, field.TypeInt, value)
		_node.Interval = value
	}
	if value, ok := _c.mutation.NextReview(); ok {
		_spec.SetField(card.FieldNextReview, field.TypeTime, value)
		_node.NextReview = &value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(card.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.LapseCount(); ok {
		_spec.SetField(card.FieldLapseCount, field.TypeInt, value)
		_node.LapseCount = value
	}
	if nodes := _c.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   card.CategoryTable,
			Columns: []string{card.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CategoryID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CardCreateBulk is the builder for creating many Card entities in bulk.
type CardCreateBulk struct {
	config
	err      error
	builders []*CardCreate
}

// Save creates the Card entities in the database.
func (_c *CardCreateBulk) Save(ctx context.Context) ([]*Card, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Card, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CardMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CardCreateBulk) SaveX(ctx context.Context) []*Card {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

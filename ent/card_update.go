// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/smartanki/smartanki/ent/card"
	"github.com/smartanki/smartanki/ent/category"
	"github.com/smartanki/smartanki/ent/predicate"
)

// CardUpdate is the builder for updating Card entities.
type CardUpdate struct {
	config
	hooks    []Hook
	mutation *CardMutation
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdate) Where(ps ...predicate.Card) *CardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *CardUpdate) SetCategoryID(v int) *CardUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *CardUpdate) SetNillableCategoryID(v *int) *CardUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// ClearCategoryID clears the value of the "category_id" field.
func (_u *CardUpdate) ClearCategoryID() *CardUpdate {
	_u.mutation.ClearCategoryID()
	return _u
}

// SetCardType sets the "card_type" field.
func (_u *CardUpdate) SetCardType(v card.CardType) *CardUpdate {
	_u.mutation.SetCardType(v)
	return _u
}

// SetNillableCardType sets the "card_type" field if the given value is not nil.
func (_u *CardUpdate) SetNillableCardType(v *card.CardType) *CardUpdate {
	if v != nil {
		_u.SetCardType(*v)
	}
	return _u
}

// SetFront sets the "front" field.
func (_u *CardUpdate) SetFront(v string) *CardUpdate {
	_u.mutation.SetFront(v)
	return _u
}

// SetNillableFront sets the "front" field if the given value is not nil.
func (_u *CardUpdate) SetNillableFront(v *string) *CardUpdate {
	if v != nil {
		_u.SetFront(*v)
	}
	return _u
}

// SetBack sets the "back" field.
func (_u *CardUpdate) SetBack(v string) *CardUpdate {
	_u.mutation.SetBack(v)
	return _u
}

// SetNillableBack sets the "back" field if the given value is not nil.
func (_u *CardUpdate) SetNillableBack(v *string) *CardUpdate {
	if v != nil {
		_u.SetBack(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CardUpdate) SetMetadata(v map[string]interface{}) *CardUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CardUpdate) ClearMetadata() *CardUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *CardUpdate) SetEaseFactor(v float64) *CardUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *CardUpdate) SetNillableEaseFactor(v *float64) *CardUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *CardUpdate) AddEaseFactor(v float64) *CardUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetInterval sets the "interval" field.
func (_u *CardUpdate) SetInterval(v int) *CardUpdate {
	_u.mutation.ResetInterval()
	_u.mutation.SetInterval(v)
	return _u
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (_u *CardUpdate) SetNillableInterval(v *int) *CardUpdate {
	if v != nil {
		_u.SetInterval(*v)
	}
	return _u
}

// AddInterval adds value to the "interval" field.
func (_u *CardUpdate) AddInterval(v int) *CardUpdate {
	_u.mutation.AddInterval(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *CardUpdate) SetNextReview(v time.Time) *CardUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *CardUpdate) SetNillableNextReview(v *time.Time) *CardUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *CardUpdate) ClearNextReview() *CardUpdate {
	_u.mutation.ClearNextReview()
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *CardUpdate) SetReviewCount(v int) *CardUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *CardUpdate) SetNillableReviewCount(v *int) *CardUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *CardUpdate) AddReviewCount(v int) *CardUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetLapseCount sets the "lapse_count" field.
func (_u *CardUpdate) SetLapseCount(v int) *CardUpdate {
	_u.mutation.ResetLapseCount()
	_u.mutation.SetLapseCount(v)
	return _u
}

// SetNillableLapseCount sets the "lapse_count" field if the given value is not nil.
func (_u *CardUpdate) SetNillableLapseCount(v *int) *CardUpdate {
	if v != nil {
		_u.SetLapseCount(*v)
	}
	return _u
}

// AddLapseCount adds value to the "lapse_count" field.
func (_u *CardUpdate) AddLapseCount(v int) *CardUpdate {
	_u.mutation.AddLapseCount(v)
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *CardUpdate) SetCategory(v *Category) *CardUpdate {
	return _u.SetCategoryID(v.ID)
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdate) Mutation() *CardMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *CardUpdate) ClearCategory() *CardUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdate) check() error {
	if v, ok := _u.mutation.CardType(); ok {
		if err := card.CardTypeValidator(v); err != nil {
			return &ValidationError{Name: "card_type", err: fmt.Errorf(`ent: validator failed for field "Card.card_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Front(); ok {
		if err := card.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "Card.front": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Interval(); ok {
		if err := card.IntervalValidator(v); err != nil {
			return &ValidationError{Name: "interval", err: fmt.Errorf(`ent: validator failed for field "Card.interval": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := card.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "Card.review_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LapseCount(); ok {
		if err := card.LapseCountValidator(v); err != nil {
			return &ValidationError{Name: "lapse_count", err: fmt.Errorf(`ent: validator failed for field "Card.lapse_count": %w`, err)}
		}
	}
	return nil
}

func (_u *CardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardType(); ok {
		_spec.SetField(card.FieldCardType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Front(); ok {
		_spec.SetField(card.FieldFront, field.TypeString, value)
	}
	if value, ok := _u.mutation.Back(); ok {
		_spec.SetField(card.FieldBack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(card.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(card.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(card.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(card.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Interval(); ok {
		_spec.SetField(card.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterval(); ok {
		_spec.AddField(card.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(card.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(card.FieldNextReview, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(card.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(card.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LapseCount(); ok {
		_spec.SetField(card.FieldLapseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapseCount(); ok {
		_spec.AddField(card.FieldLapseCount, field.TypeInt, value)
	}
	if _u.mutation.CategoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CardUpdateOne is the builder for updating a single Card entity.
type CardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CardMutation
}

// SetCategoryID sets the "category_id" field.
func (_u *CardUpdateOne) SetCategoryID(v int) *CardUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableCategoryID(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// ClearCategoryID clears the value of the "category_id" field.
func (_u *CardUpdateOne) ClearCategoryID() *CardUpdateOne {
	_u.mutation.ClearCategoryID()
	return _u
}

// SetCardType sets the "card_type" field.
func (_u *CardUpdateOne) SetCardType(v card.CardType) *CardUpdateOne {
	_u.mutation.SetCardType(v)
	return _u
}

// SetNillableCardType sets the "card_type" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableCardType(v *card.CardType) *CardUpdateOne {
	if v != nil {
		_u.SetCardType(*v)
	}
	return _u
}

// SetFront sets the "front" field.
func (_u *CardUpdateOne) SetFront(v string) *CardUpdateOne {
	_u.mutation.SetFront(v)
	return _u
}

// SetNillableFront sets the "front" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableFront(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetFront(*v)
	}
	return _u
}

// SetBack sets the "back" field.
func (_u *CardUpdateOne) SetBack(v string) *CardUpdateOne {
	_u.mutation.SetBack(v)
	return _u
}

// SetNillableBack sets the "back" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableBack(v *string) *CardUpdateOne {
	if v != nil {
		_u.SetBack(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *CardUpdateOne) SetMetadata(v map[string]interface{}) *CardUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *CardUpdateOne) ClearMetadata() *CardUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *CardUpdateOne) SetEaseFactor(v float64) *CardUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableEaseFactor(v *float64) *CardUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *CardUpdateOne) AddEaseFactor(v float64) *CardUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetInterval sets the "interval" field.
func (_u *CardUpdateOne) SetInterval(v int) *CardUpdateOne {
	_u.mutation.ResetInterval()
	_u.mutation.SetInterval(v)
	return _u
}

// SetNillableInterval sets the "interval" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableInterval(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetInterval(*v)
	}
	return _u
}

// AddInterval adds value to the "interval" field.
func (_u *CardUpdateOne) AddInterval(v int) *CardUpdateOne {
	_u.mutation.AddInterval(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *CardUpdateOne) SetNextReview(v time.Time) *CardUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableNextReview(v *time.Time) *CardUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *CardUpdateOne) ClearNextReview() *CardUpdateOne {
	_u.mutation.ClearNextReview()
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *CardUpdateOne) SetReviewCount(v int) *CardUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableReviewCount(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *CardUpdateOne) AddReviewCount(v int) *CardUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetLapseCount sets the "lapse_count" field.
func (_u *CardUpdateOne) SetLapseCount(v int) *CardUpdateOne {
	_u.mutation.ResetLapseCount()
	_u.mutation.SetLapseCount(v)
	return _u
}

// SetNillableLapseCount sets the "lapse_count" field if the given value is not nil.
func (_u *CardUpdateOne) SetNillableLapseCount(v *int) *CardUpdateOne {
	if v != nil {
		_u.SetLapseCount(*v)
	}
	return _u
}

// AddLapseCount adds value to the "lapse_count" field.
func (_u *CardUpdateOne) AddLapseCount(v int) *CardUpdateOne {
	_u.mutation.AddLapseCount(v)
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *CardUpdateOne) SetCategory(v *Category) *CardUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// Mutation returns the CardMutation object of the builder.
func (_u *CardUpdateOne) Mutation() *CardMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *CardUpdateOne) ClearCategory() *CardUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// Where appends a list predicates to the CardUpdate builder.
func (_u *CardUpdateOne) Where(ps ...predicate.Card) *CardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CardUpdateOne) Select(field string, fields ...string) *CardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Card entity.
func (_u *CardUpdateOne) Save(ctx context.Context) (*Card, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CardUpdateOne) SaveX(ctx context.Context) *Card {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CardUpdateOne) check() error {
	if v, ok := _u.mutation.CardType(); ok {
		if err := card.CardTypeValidator(v); err != nil {
			return &ValidationError{Name: "card_type", err: fmt.Errorf(`ent: validator failed for field "Card.card_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Front(); ok {
		if err := card.FrontValidator(v); err != nil {
			return &ValidationError{Name: "front", err: fmt.Errorf(`ent: validator failed for field "Card.front": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Interval(); ok {
		if err := card.IntervalValidator(v); err != nil {
			return &ValidationError{Name: "interval", err: fmt.Errorf(`ent: validator failed for field "Card.interval": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := card.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "Card.review_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LapseCount(); ok {
		if err := card.LapseCountValidator(v); err != nil {
			return &ValidationError{Name: "lapse_count", err: fmt.Errorf(`ent: validator failed for field "Card.lapse_count": %w`, err)}
		}
	}
	return nil
}

func (_u *CardUpdateOne) sqlSave(ctx context.Context) (_node *Card, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(card.Table, card.Columns, sqlgraph.NewFieldSpec(card.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Card.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, card.FieldID)
		for _, f := range fields {
			if !card.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != card.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardType(); ok {
		_spec.SetField(card.FieldCardType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Front(); ok {
		_spec.SetField(card.FieldFront, field.TypeString, value)
	}
	if value, ok := _u.mutation.Back(); ok {
		_spec.SetField(card.FieldBack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(card.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(card.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(card.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(card.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Interval(); ok {
		_spec.SetField(card.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInterval(); ok {
		_spec.AddField(card.FieldInterval, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(card.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(card.FieldNextReview, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(card.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(card.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LapseCount(); ok {
		_spec.SetField(card.FieldLapseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapseCount(); ok {
		_spec.AddField(card.FieldLapseCount, field.TypeInt, value)
	}
	if _u.mutation.CategoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Card{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{card.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

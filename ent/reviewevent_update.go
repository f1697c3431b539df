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
	"github.com/smartanki/smartanki/ent/predicate"
	"github.com/smartanki/smartanki/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCardID sets the "card_id" field.
func (_u *ReviewEventUpdate) SetCardID(v int) *ReviewEventUpdate {
	_u.mutation.ResetCardID()
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableCardID(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// AddCardID adds value to the "card_id" field.
func (_u *ReviewEventUpdate) AddCardID(v int) *ReviewEventUpdate {
	_u.mutation.AddCardID(v)
	return _u
}

// SetQuality sets the "quality" field.
func (_u *ReviewEventUpdate) SetQuality(v int) *ReviewEventUpdate {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableQuality(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *ReviewEventUpdate) AddQuality(v int) *ReviewEventUpdate {
	_u.mutation.AddQuality(v)
	return _u
}

// SetEaseBefore sets the "ease_before" field.
func (_u *ReviewEventUpdate) SetEaseBefore(v float64) *ReviewEventUpdate {
	_u.mutation.ResetEaseBefore()
	_u.mutation.SetEaseBefore(v)
	return _u
}

// SetNillableEaseBefore sets the "ease_before" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableEaseBefore(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetEaseBefore(*v)
	}
	return _u
}

// AddEaseBefore adds value to the "ease_before" field.
func (_u *ReviewEventUpdate) AddEaseBefore(v float64) *ReviewEventUpdate {
	_u.mutation.AddEaseBefore(v)
	return _u
}

// SetEaseAfter sets the "ease_after" field.
func (_u *ReviewEventUpdate) SetEaseAfter(v float64) *ReviewEventUpdate {
	_u.mutation.ResetEaseAfter()
	_u.mutation.SetEaseAfter(v)
	return _u
}

// SetNillableEaseAfter sets the "ease_after" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableEaseAfter(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetEaseAfter(*v)
	}
	return _u
}

// AddEaseAfter adds value to the "ease_after" field.
func (_u *ReviewEventUpdate) AddEaseAfter(v float64) *ReviewEventUpdate {
	_u.mutation.AddEaseAfter(v)
	return _u
}

// SetIntervalBefore sets the "interval_before" field.
func (_u *ReviewEventUpdate) SetIntervalBefore(v int) *ReviewEventUpdate {
	_u.mutation.ResetIntervalBefore()
	_u.mutation.SetIntervalBefore(v)
	return _u
}

// SetNillableIntervalBefore sets the "interval_before" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIntervalBefore(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetIntervalBefore(*v)
	}
	return _u
}

// AddIntervalBefore adds value to the "interval_before" field.
func (_u *ReviewEventUpdate) AddIntervalBefore(v int) *ReviewEventUpdate {
	_u.mutation.AddIntervalBefore(v)
	return _u
}

// SetIntervalAfter sets the "interval_after" field.
func (_u *ReviewEventUpdate) SetIntervalAfter(v int) *ReviewEventUpdate {
	_u.mutation.ResetIntervalAfter()
	_u.mutation.SetIntervalAfter(v)
	return _u
}

// SetNillableIntervalAfter sets the "interval_after" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIntervalAfter(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetIntervalAfter(*v)
	}
	return _u
}

// AddIntervalAfter adds value to the "interval_after" field.
func (_u *ReviewEventUpdate) AddIntervalAfter(v int) *ReviewEventUpdate {
	_u.mutation.AddIntervalAfter(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ReviewEventUpdate) SetNextReview(v time.Time) *ReviewEventUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableNextReview(v *time.Time) *ReviewEventUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdate) SetSessionID(v string) *ReviewEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableSessionID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ReviewEventUpdate) ClearSessionID() *ReviewEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.Quality(); ok {
		if err := reviewevent.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.quality": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(reviewevent.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardID(); ok {
		_spec.AddField(reviewevent.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseBefore(); ok {
		_spec.SetField(reviewevent.FieldEaseBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseBefore(); ok {
		_spec.AddField(reviewevent.FieldEaseBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EaseAfter(); ok {
		_spec.SetField(reviewevent.FieldEaseAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseAfter(); ok {
		_spec.AddField(reviewevent.FieldEaseAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalBefore(); ok {
		_spec.SetField(reviewevent.FieldIntervalBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalBefore(); ok {
		_spec.AddField(reviewevent.FieldIntervalBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalAfter(); ok {
		_spec.SetField(reviewevent.FieldIntervalAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalAfter(); ok {
		_spec.AddField(reviewevent.FieldIntervalAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(reviewevent.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(reviewevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetCardID sets the "card_id" field.
func (_u *ReviewEventUpdateOne) SetCardID(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetCardID()
	_u.mutation.SetCardID(v)
	return _u
}

// SetNillableCardID sets the "card_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableCardID(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetCardID(*v)
	}
	return _u
}

// AddCardID adds value to the "card_id" field.
func (_u *ReviewEventUpdateOne) AddCardID(v int) *ReviewEventUpdateOne {
	_u.mutation.AddCardID(v)
	return _u
}

// SetQuality sets the "quality" field.
func (_u *ReviewEventUpdateOne) SetQuality(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableQuality(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *ReviewEventUpdateOne) AddQuality(v int) *ReviewEventUpdateOne {
	_u.mutation.AddQuality(v)
	return _u
}

// SetEaseBefore sets the "ease_before" field.
func (_u *ReviewEventUpdateOne) SetEaseBefore(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetEaseBefore()
	_u.mutation.SetEaseBefore(v)
	return _u
}

// SetNillableEaseBefore sets the "ease_before" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableEaseBefore(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetEaseBefore(*v)
	}
	return _u
}

// AddEaseBefore adds value to the "ease_before" field.
func (_u *ReviewEventUpdateOne) AddEaseBefore(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddEaseBefore(v)
	return _u
}

// SetEaseAfter sets the "ease_after" field.
func (_u *ReviewEventUpdateOne) SetEaseAfter(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetEaseAfter()
	_u.mutation.SetEaseAfter(v)
	return _u
}

// SetNillableEaseAfter sets the "ease_after" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableEaseAfter(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetEaseAfter(*v)
	}
	return _u
}

// AddEaseAfter adds value to the "ease_after" field.
func (_u *ReviewEventUpdateOne) AddEaseAfter(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddEaseAfter(v)
	return _u
}

// SetIntervalBefore sets the "interval_before" field.
func (_u *ReviewEventUpdateOne) SetIntervalBefore(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetIntervalBefore()
	_u.mutation.SetIntervalBefore(v)
	return _u
}

// SetNillableIntervalBefore sets the "interval_before" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIntervalBefore(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIntervalBefore(*v)
	}
	return _u
}

// AddIntervalBefore adds value to the "interval_before" field.
func (_u *ReviewEventUpdateOne) AddIntervalBefore(v int) *ReviewEventUpdateOne {
	_u.mutation.AddIntervalBefore(v)
	return _u
}

// SetIntervalAfter sets the "interval_after" field.
func (_u *ReviewEventUpdateOne) SetIntervalAfter(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetIntervalAfter()
	_u.mutation.SetIntervalAfter(v)
	return _u
}

// SetNillableIntervalAfter sets the "interval_after" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIntervalAfter(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIntervalAfter(*v)
	}
	return _u
}

// AddIntervalAfter adds value to the "interval_after" field.
func (_u *ReviewEventUpdateOne) AddIntervalAfter(v int) *ReviewEventUpdateOne {
	_u.mutation.AddIntervalAfter(v)
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *ReviewEventUpdateOne) SetNextReview(v time.Time) *ReviewEventUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableNextReview(v *time.Time) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdateOne) SetSessionID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableSessionID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ReviewEventUpdateOne) ClearSessionID() *ReviewEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.Quality(); ok {
		if err := reviewevent.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.quality": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
	if value, ok := _u.mutation.CardID(); ok {
		_spec.SetField(reviewevent.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCardID(); ok {
		_spec.AddField(reviewevent.FieldCardID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(reviewevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseBefore(); ok {
		_spec.SetField(reviewevent.FieldEaseBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseBefore(); ok {
		_spec.AddField(reviewevent.FieldEaseBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EaseAfter(); ok {
		_spec.SetField(reviewevent.FieldEaseAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseAfter(); ok {
		_spec.AddField(reviewevent.FieldEaseAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalBefore(); ok {
		_spec.SetField(reviewevent.FieldIntervalBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalBefore(); ok {
		_spec.AddField(reviewevent.FieldIntervalBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalAfter(); ok {
		_spec.SetField(reviewevent.FieldIntervalAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalAfter(); ok {
		_spec.AddField(reviewevent.FieldIntervalAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(reviewevent.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(reviewevent.FieldSessionID, field.TypeString)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

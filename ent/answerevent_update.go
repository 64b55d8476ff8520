// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/answerevent"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnswerEventUpdate) SetUserID(v string) *AnswerEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableUserID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDimensionID sets the "dimension_id" field.
func (_u *AnswerEventUpdate) SetDimensionID(v string) *AnswerEventUpdate {
	_u.mutation.SetDimensionID(v)
	return _u
}

// SetNillableDimensionID sets the "dimension_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableDimensionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetDimensionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AnswerEventUpdate) SetItemID(v string) *AnswerEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableItemID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *AnswerEventUpdate) SetItemType(v string) *AnswerEventUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableItemType(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetRawAnswer sets the "raw_answer" field.
func (_u *AnswerEventUpdate) SetRawAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetRawAnswer(v)
	return _u
}

// SetNillableRawAnswer sets the "raw_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableRawAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetRawAnswer(*v)
	}
	return _u
}

// SetKeyed sets the "keyed" field.
func (_u *AnswerEventUpdate) SetKeyed(v int) *AnswerEventUpdate {
	_u.mutation.ResetKeyed()
	_u.mutation.SetKeyed(v)
	return _u
}

// SetNillableKeyed sets the "keyed" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableKeyed(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetKeyed(*v)
	}
	return _u
}

// AddKeyed adds value to the "keyed" field.
func (_u *AnswerEventUpdate) AddKeyed(v int) *AnswerEventUpdate {
	_u.mutation.AddKeyed(v)
	return _u
}

// SetTheta sets the "theta" field.
func (_u *AnswerEventUpdate) SetTheta(v float64) *AnswerEventUpdate {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTheta(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *AnswerEventUpdate) AddTheta(v float64) *AnswerEventUpdate {
	_u.mutation.AddTheta(v)
	return _u
}

// SetStandardError sets the "standard_error" field.
func (_u *AnswerEventUpdate) SetStandardError(v float64) *AnswerEventUpdate {
	_u.mutation.ResetStandardError()
	_u.mutation.SetStandardError(v)
	return _u
}

// SetNillableStandardError sets the "standard_error" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableStandardError(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetStandardError(*v)
	}
	return _u
}

// AddStandardError adds value to the "standard_error" field.
func (_u *AnswerEventUpdate) AddStandardError(v float64) *AnswerEventUpdate {
	_u.mutation.AddStandardError(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnswerEventUpdate) SetConfidence(v float64) *AnswerEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableConfidence(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnswerEventUpdate) AddConfidence(v float64) *AnswerEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := answerevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DimensionID(); ok {
		if err := answerevent.DimensionIDValidator(v); err != nil {
			return &ValidationError{Name: "dimension_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.dimension_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := answerevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := answerevent.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.item_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DimensionID(); ok {
		_spec.SetField(answerevent.FieldDimensionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(answerevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(answerevent.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawAnswer(); ok {
		_spec.SetField(answerevent.FieldRawAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Keyed(); ok {
		_spec.SetField(answerevent.FieldKeyed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedKeyed(); ok {
		_spec.AddField(answerevent.FieldKeyed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(answerevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(answerevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StandardError(); ok {
		_spec.SetField(answerevent.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardError(); ok {
		_spec.AddField(answerevent.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(answerevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(answerevent.FieldConfidence, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AnswerEventUpdateOne) SetUserID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableUserID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDimensionID sets the "dimension_id" field.
func (_u *AnswerEventUpdateOne) SetDimensionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetDimensionID(v)
	return _u
}

// SetNillableDimensionID sets the "dimension_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableDimensionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetDimensionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AnswerEventUpdateOne) SetItemID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableItemID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *AnswerEventUpdateOne) SetItemType(v string) *AnswerEventUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableItemType(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetRawAnswer sets the "raw_answer" field.
func (_u *AnswerEventUpdateOne) SetRawAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetRawAnswer(v)
	return _u
}

// SetNillableRawAnswer sets the "raw_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableRawAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetRawAnswer(*v)
	}
	return _u
}

// SetKeyed sets the "keyed" field.
func (_u *AnswerEventUpdateOne) SetKeyed(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetKeyed()
	_u.mutation.SetKeyed(v)
	return _u
}

// SetNillableKeyed sets the "keyed" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableKeyed(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetKeyed(*v)
	}
	return _u
}

// AddKeyed adds value to the "keyed" field.
func (_u *AnswerEventUpdateOne) AddKeyed(v int) *AnswerEventUpdateOne {
	_u.mutation.AddKeyed(v)
	return _u
}

// SetTheta sets the "theta" field.
func (_u *AnswerEventUpdateOne) SetTheta(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTheta(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *AnswerEventUpdateOne) AddTheta(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddTheta(v)
	return _u
}

// SetStandardError sets the "standard_error" field.
func (_u *AnswerEventUpdateOne) SetStandardError(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetStandardError()
	_u.mutation.SetStandardError(v)
	return _u
}

// SetNillableStandardError sets the "standard_error" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableStandardError(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetStandardError(*v)
	}
	return _u
}

// AddStandardError adds value to the "standard_error" field.
func (_u *AnswerEventUpdateOne) AddStandardError(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddStandardError(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnswerEventUpdateOne) SetConfidence(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableConfidence(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnswerEventUpdateOne) AddConfidence(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := answerevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DimensionID(); ok {
		if err := answerevent.DimensionIDValidator(v); err != nil {
			return &ValidationError{Name: "dimension_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.dimension_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := answerevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.item_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := answerevent.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.item_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(answerevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DimensionID(); ok {
		_spec.SetField(answerevent.FieldDimensionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(answerevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(answerevent.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawAnswer(); ok {
		_spec.SetField(answerevent.FieldRawAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Keyed(); ok {
		_spec.SetField(answerevent.FieldKeyed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedKeyed(); ok {
		_spec.AddField(answerevent.FieldKeyed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(answerevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(answerevent.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StandardError(); ok {
		_spec.SetField(answerevent.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardError(); ok {
		_spec.AddField(answerevent.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(answerevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(answerevent.FieldConfidence, field.TypeFloat64, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

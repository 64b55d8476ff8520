// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/analysisevent"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/predicate"
)

// AnalysisEventUpdate is the builder for updating AnalysisEvent entities.
type AnalysisEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdate) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnalysisEventUpdate) SetUserID(v string) *AnalysisEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableUserID(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnalysisEventUpdate) SetSessionID(v string) *AnalysisEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableSessionID(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDimensionID sets the "dimension_id" field.
func (_u *AnalysisEventUpdate) SetDimensionID(v string) *AnalysisEventUpdate {
	_u.mutation.SetDimensionID(v)
	return _u
}

// SetNillableDimensionID sets the "dimension_id" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableDimensionID(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetDimensionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AnalysisEventUpdate) SetItemID(v string) *AnalysisEventUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableItemID(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetExternalTheta sets the "external_theta" field.
func (_u *AnalysisEventUpdate) SetExternalTheta(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetExternalTheta()
	_u.mutation.SetExternalTheta(v)
	return _u
}

// SetNillableExternalTheta sets the "external_theta" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableExternalTheta(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetExternalTheta(*v)
	}
	return _u
}

// AddExternalTheta adds value to the "external_theta" field.
func (_u *AnalysisEventUpdate) AddExternalTheta(v float64) *AnalysisEventUpdate {
	_u.mutation.AddExternalTheta(v)
	return _u
}

// SetExternalConfidence sets the "external_confidence" field.
func (_u *AnalysisEventUpdate) SetExternalConfidence(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetExternalConfidence()
	_u.mutation.SetExternalConfidence(v)
	return _u
}

// SetNillableExternalConfidence sets the "external_confidence" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableExternalConfidence(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetExternalConfidence(*v)
	}
	return _u
}

// AddExternalConfidence adds value to the "external_confidence" field.
func (_u *AnalysisEventUpdate) AddExternalConfidence(v float64) *AnalysisEventUpdate {
	_u.mutation.AddExternalConfidence(v)
	return _u
}

// SetThetaBefore sets the "theta_before" field.
func (_u *AnalysisEventUpdate) SetThetaBefore(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetThetaBefore()
	_u.mutation.SetThetaBefore(v)
	return _u
}

// SetNillableThetaBefore sets the "theta_before" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableThetaBefore(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetThetaBefore(*v)
	}
	return _u
}

// AddThetaBefore adds value to the "theta_before" field.
func (_u *AnalysisEventUpdate) AddThetaBefore(v float64) *AnalysisEventUpdate {
	_u.mutation.AddThetaBefore(v)
	return _u
}

// SetThetaAfter sets the "theta_after" field.
func (_u *AnalysisEventUpdate) SetThetaAfter(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetThetaAfter()
	_u.mutation.SetThetaAfter(v)
	return _u
}

// SetNillableThetaAfter sets the "theta_after" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableThetaAfter(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetThetaAfter(*v)
	}
	return _u
}

// AddThetaAfter adds value to the "theta_after" field.
func (_u *AnalysisEventUpdate) AddThetaAfter(v float64) *AnalysisEventUpdate {
	_u.mutation.AddThetaAfter(v)
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdate) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := analysisevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := analysisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DimensionID(); ok {
		if err := analysisevent.DimensionIDValidator(v); err != nil {
			return &ValidationError{Name: "dimension_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.dimension_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := analysisevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.item_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(analysisevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(analysisevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DimensionID(); ok {
		_spec.SetField(analysisevent.FieldDimensionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(analysisevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalTheta(); ok {
		_spec.SetField(analysisevent.FieldExternalTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExternalTheta(); ok {
		_spec.AddField(analysisevent.FieldExternalTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExternalConfidence(); ok {
		_spec.SetField(analysisevent.FieldExternalConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExternalConfidence(); ok {
		_spec.AddField(analysisevent.FieldExternalConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaBefore(); ok {
		_spec.SetField(analysisevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaBefore(); ok {
		_spec.AddField(analysisevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaAfter(); ok {
		_spec.SetField(analysisevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaAfter(); ok {
		_spec.AddField(analysisevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisEventUpdateOne is the builder for updating a single AnalysisEvent entity.
type AnalysisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AnalysisEventUpdateOne) SetUserID(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableUserID(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnalysisEventUpdateOne) SetSessionID(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableSessionID(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDimensionID sets the "dimension_id" field.
func (_u *AnalysisEventUpdateOne) SetDimensionID(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetDimensionID(v)
	return _u
}

// SetNillableDimensionID sets the "dimension_id" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableDimensionID(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetDimensionID(*v)
	}
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *AnalysisEventUpdateOne) SetItemID(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableItemID(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetExternalTheta sets the "external_theta" field.
func (_u *AnalysisEventUpdateOne) SetExternalTheta(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetExternalTheta()
	_u.mutation.SetExternalTheta(v)
	return _u
}

// SetNillableExternalTheta sets the "external_theta" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableExternalTheta(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetExternalTheta(*v)
	}
	return _u
}

// AddExternalTheta adds value to the "external_theta" field.
func (_u *AnalysisEventUpdateOne) AddExternalTheta(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddExternalTheta(v)
	return _u
}

// SetExternalConfidence sets the "external_confidence" field.
func (_u *AnalysisEventUpdateOne) SetExternalConfidence(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetExternalConfidence()
	_u.mutation.SetExternalConfidence(v)
	return _u
}

// SetNillableExternalConfidence sets the "external_confidence" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableExternalConfidence(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetExternalConfidence(*v)
	}
	return _u
}

// AddExternalConfidence adds value to the "external_confidence" field.
func (_u *AnalysisEventUpdateOne) AddExternalConfidence(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddExternalConfidence(v)
	return _u
}

// SetThetaBefore sets the "theta_before" field.
func (_u *AnalysisEventUpdateOne) SetThetaBefore(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetThetaBefore()
	_u.mutation.SetThetaBefore(v)
	return _u
}

// SetNillableThetaBefore sets the "theta_before" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableThetaBefore(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetThetaBefore(*v)
	}
	return _u
}

// AddThetaBefore adds value to the "theta_before" field.
func (_u *AnalysisEventUpdateOne) AddThetaBefore(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddThetaBefore(v)
	return _u
}

// SetThetaAfter sets the "theta_after" field.
func (_u *AnalysisEventUpdateOne) SetThetaAfter(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetThetaAfter()
	_u.mutation.SetThetaAfter(v)
	return _u
}

// SetNillableThetaAfter sets the "theta_after" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableThetaAfter(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetThetaAfter(*v)
	}
	return _u
}

// AddThetaAfter adds value to the "theta_after" field.
func (_u *AnalysisEventUpdateOne) AddThetaAfter(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddThetaAfter(v)
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdateOne) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdateOne) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisEventUpdateOne) Select(field string, fields ...string) *AnalysisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisEvent entity.
func (_u *AnalysisEventUpdateOne) Save(ctx context.Context) (*AnalysisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) SaveX(ctx context.Context) *AnalysisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := analysisevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := analysisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DimensionID(); ok {
		if err := analysisevent.DimensionIDValidator(v); err != nil {
			return &ValidationError{Name: "dimension_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.dimension_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemID(); ok {
		if err := analysisevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.item_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisevent.FieldID)
		for _, f := range fields {
			if !analysisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisevent.FieldID {
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
		_spec.SetField(analysisevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(analysisevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DimensionID(); ok {
		_spec.SetField(analysisevent.FieldDimensionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemID(); ok {
		_spec.SetField(analysisevent.FieldItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalTheta(); ok {
		_spec.SetField(analysisevent.FieldExternalTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExternalTheta(); ok {
		_spec.AddField(analysisevent.FieldExternalTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExternalConfidence(); ok {
		_spec.SetField(analysisevent.FieldExternalConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExternalConfidence(); ok {
		_spec.AddField(analysisevent.FieldExternalConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaBefore(); ok {
		_spec.SetField(analysisevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaBefore(); ok {
		_spec.AddField(analysisevent.FieldThetaBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ThetaAfter(); ok {
		_spec.SetField(analysisevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedThetaAfter(); ok {
		_spec.AddField(analysisevent.FieldThetaAfter, field.TypeFloat64, value)
	}
	_node = &AnalysisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

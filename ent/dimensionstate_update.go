// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/dimensionstate"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/predicate"
)

// DimensionStateUpdate is the builder for updating DimensionState entities.
type DimensionStateUpdate struct {
	config
	hooks    []Hook
	mutation *DimensionStateMutation
}

// Where appends a list predicates to the DimensionStateUpdate builder.
func (_u *DimensionStateUpdate) Where(ps ...predicate.DimensionState) *DimensionStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DimensionStateUpdate) SetUserID(v string) *DimensionStateUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DimensionStateUpdate) SetNillableUserID(v *string) *DimensionStateUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DimensionStateUpdate) SetSessionID(v string) *DimensionStateUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DimensionStateUpdate) SetNillableSessionID(v *string) *DimensionStateUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDimensionID sets the "dimension_id" field.
func (_u *DimensionStateUpdate) SetDimensionID(v string) *DimensionStateUpdate {
	_u.mutation.SetDimensionID(v)
	return _u
}

// SetNillableDimensionID sets the "dimension_id" field if the given value is not nil.
func (_u *DimensionStateUpdate) SetNillableDimensionID(v *string) *DimensionStateUpdate {
	if v != nil {
		_u.SetDimensionID(*v)
	}
	return _u
}

// SetTheta sets the "theta" field.
func (_u *DimensionStateUpdate) SetTheta(v float64) *DimensionStateUpdate {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *DimensionStateUpdate) SetNillableTheta(v *float64) *DimensionStateUpdate {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *DimensionStateUpdate) AddTheta(v float64) *DimensionStateUpdate {
	_u.mutation.AddTheta(v)
	return _u
}

// SetStandardError sets the "standard_error" field.
func (_u *DimensionStateUpdate) SetStandardError(v float64) *DimensionStateUpdate {
	_u.mutation.ResetStandardError()
	_u.mutation.SetStandardError(v)
	return _u
}

// SetNillableStandardError sets the "standard_error" field if the given value is not nil.
func (_u *DimensionStateUpdate) SetNillableStandardError(v *float64) *DimensionStateUpdate {
	if v != nil {
		_u.SetStandardError(*v)
	}
	return _u
}

// AddStandardError adds value to the "standard_error" field.
func (_u *DimensionStateUpdate) AddStandardError(v float64) *DimensionStateUpdate {
	_u.mutation.AddStandardError(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DimensionStateUpdate) SetConfidence(v float64) *DimensionStateUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DimensionStateUpdate) SetNillableConfidence(v *float64) *DimensionStateUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DimensionStateUpdate) AddConfidence(v float64) *DimensionStateUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetAnsweredItems sets the "answered_items" field.
func (_u *DimensionStateUpdate) SetAnsweredItems(v []string) *DimensionStateUpdate {
	_u.mutation.SetAnsweredItems(v)
	return _u
}

// AppendAnsweredItems appends value to the "answered_items" field.
func (_u *DimensionStateUpdate) AppendAnsweredItems(v []string) *DimensionStateUpdate {
	_u.mutation.AppendAnsweredItems(v)
	return _u
}

// ClearAnsweredItems clears the value of the "answered_items" field.
func (_u *DimensionStateUpdate) ClearAnsweredItems() *DimensionStateUpdate {
	_u.mutation.ClearAnsweredItems()
	return _u
}

// SetResponses sets the "responses" field.
func (_u *DimensionStateUpdate) SetResponses(v []map[string]interface{}) *DimensionStateUpdate {
	_u.mutation.SetResponses(v)
	return _u
}

// AppendResponses appends value to the "responses" field.
func (_u *DimensionStateUpdate) AppendResponses(v []map[string]interface{}) *DimensionStateUpdate {
	_u.mutation.AppendResponses(v)
	return _u
}

// ClearResponses clears the value of the "responses" field.
func (_u *DimensionStateUpdate) ClearResponses() *DimensionStateUpdate {
	_u.mutation.ClearResponses()
	return _u
}

// SetCurrentItemID sets the "current_item_id" field.
func (_u *DimensionStateUpdate) SetCurrentItemID(v string) *DimensionStateUpdate {
	_u.mutation.SetCurrentItemID(v)
	return _u
}

// SetNillableCurrentItemID sets the "current_item_id" field if the given value is not nil.
func (_u *DimensionStateUpdate) SetNillableCurrentItemID(v *string) *DimensionStateUpdate {
	if v != nil {
		_u.SetCurrentItemID(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *DimensionStateUpdate) SetCompleted(v bool) *DimensionStateUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *DimensionStateUpdate) SetNillableCompleted(v *bool) *DimensionStateUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletionReason sets the "completion_reason" field.
func (_u *DimensionStateUpdate) SetCompletionReason(v string) *DimensionStateUpdate {
	_u.mutation.SetCompletionReason(v)
	return _u
}

// SetNillableCompletionReason sets the "completion_reason" field if the given value is not nil.
func (_u *DimensionStateUpdate) SetNillableCompletionReason(v *string) *DimensionStateUpdate {
	if v != nil {
		_u.SetCompletionReason(*v)
	}
	return _u
}

// SetSegmentLevel sets the "segment_level" field.
func (_u *DimensionStateUpdate) SetSegmentLevel(v int) *DimensionStateUpdate {
	_u.mutation.ResetSegmentLevel()
	_u.mutation.SetSegmentLevel(v)
	return _u
}

// SetNillableSegmentLevel sets the "segment_level" field if the given value is not nil.
func (_u *DimensionStateUpdate) SetNillableSegmentLevel(v *int) *DimensionStateUpdate {
	if v != nil {
		_u.SetSegmentLevel(*v)
	}
	return _u
}

// AddSegmentLevel adds value to the "segment_level" field.
func (_u *DimensionStateUpdate) AddSegmentLevel(v int) *DimensionStateUpdate {
	_u.mutation.AddSegmentLevel(v)
	return _u
}

// ClearSegmentLevel clears the value of the "segment_level" field.
func (_u *DimensionStateUpdate) ClearSegmentLevel() *DimensionStateUpdate {
	_u.mutation.ClearSegmentLevel()
	return _u
}

// SetBlendCount sets the "blend_count" field.
func (_u *DimensionStateUpdate) SetBlendCount(v int) *DimensionStateUpdate {
	_u.mutation.ResetBlendCount()
	_u.mutation.SetBlendCount(v)
	return _u
}

// SetNillableBlendCount sets the "blend_count" field if the given value is not nil.
func (_u *DimensionStateUpdate) SetNillableBlendCount(v *int) *DimensionStateUpdate {
	if v != nil {
		_u.SetBlendCount(*v)
	}
	return _u
}

// AddBlendCount adds value to the "blend_count" field.
func (_u *DimensionStateUpdate) AddBlendCount(v int) *DimensionStateUpdate {
	_u.mutation.AddBlendCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DimensionStateUpdate) SetUpdatedAt(v time.Time) *DimensionStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DimensionStateMutation object of the builder.
func (_u *DimensionStateUpdate) Mutation() *DimensionStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DimensionStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DimensionStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DimensionStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DimensionStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DimensionStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dimensionstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DimensionStateUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := dimensionstate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DimensionState.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := dimensionstate.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DimensionState.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DimensionID(); ok {
		if err := dimensionstate.DimensionIDValidator(v); err != nil {
			return &ValidationError{Name: "dimension_id", err: fmt.Errorf(`ent: validator failed for field "DimensionState.dimension_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DimensionStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dimensionstate.Table, dimensionstate.Columns, sqlgraph.NewFieldSpec(dimensionstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(dimensionstate.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(dimensionstate.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DimensionID(); ok {
		_spec.SetField(dimensionstate.FieldDimensionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(dimensionstate.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(dimensionstate.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StandardError(); ok {
		_spec.SetField(dimensionstate.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardError(); ok {
		_spec.AddField(dimensionstate.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(dimensionstate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(dimensionstate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnsweredItems(); ok {
		_spec.SetField(dimensionstate.FieldAnsweredItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnsweredItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dimensionstate.FieldAnsweredItems, value)
		})
	}
	if _u.mutation.AnsweredItemsCleared() {
		_spec.ClearField(dimensionstate.FieldAnsweredItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Responses(); ok {
		_spec.SetField(dimensionstate.FieldResponses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dimensionstate.FieldResponses, value)
		})
	}
	if _u.mutation.ResponsesCleared() {
		_spec.ClearField(dimensionstate.FieldResponses, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentItemID(); ok {
		_spec.SetField(dimensionstate.FieldCurrentItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(dimensionstate.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletionReason(); ok {
		_spec.SetField(dimensionstate.FieldCompletionReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.SegmentLevel(); ok {
		_spec.SetField(dimensionstate.FieldSegmentLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSegmentLevel(); ok {
		_spec.AddField(dimensionstate.FieldSegmentLevel, field.TypeInt, value)
	}
	if _u.mutation.SegmentLevelCleared() {
		_spec.ClearField(dimensionstate.FieldSegmentLevel, field.TypeInt)
	}
	if value, ok := _u.mutation.BlendCount(); ok {
		_spec.SetField(dimensionstate.FieldBlendCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBlendCount(); ok {
		_spec.AddField(dimensionstate.FieldBlendCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dimensionstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dimensionstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DimensionStateUpdateOne is the builder for updating a single DimensionState entity.
type DimensionStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DimensionStateMutation
}

// SetUserID sets the "user_id" field.
func (_u *DimensionStateUpdateOne) SetUserID(v string) *DimensionStateUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DimensionStateUpdateOne) SetNillableUserID(v *string) *DimensionStateUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DimensionStateUpdateOne) SetSessionID(v string) *DimensionStateUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DimensionStateUpdateOne) SetNillableSessionID(v *string) *DimensionStateUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDimensionID sets the "dimension_id" field.
func (_u *DimensionStateUpdateOne) SetDimensionID(v string) *DimensionStateUpdateOne {
	_u.mutation.SetDimensionID(v)
	return _u
}

// SetNillableDimensionID sets the "dimension_id" field if the given value is not nil.
func (_u *DimensionStateUpdateOne) SetNillableDimensionID(v *string) *DimensionStateUpdateOne {
	if v != nil {
		_u.SetDimensionID(*v)
	}
	return _u
}

// SetTheta sets the "theta" field.
func (_u *DimensionStateUpdateOne) SetTheta(v float64) *DimensionStateUpdateOne {
	_u.mutation.ResetTheta()
	_u.mutation.SetTheta(v)
	return _u
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_u *DimensionStateUpdateOne) SetNillableTheta(v *float64) *DimensionStateUpdateOne {
	if v != nil {
		_u.SetTheta(*v)
	}
	return _u
}

// AddTheta adds value to the "theta" field.
func (_u *DimensionStateUpdateOne) AddTheta(v float64) *DimensionStateUpdateOne {
	_u.mutation.AddTheta(v)
	return _u
}

// SetStandardError sets the "standard_error" field.
func (_u *DimensionStateUpdateOne) SetStandardError(v float64) *DimensionStateUpdateOne {
	_u.mutation.ResetStandardError()
	_u.mutation.SetStandardError(v)
	return _u
}

// SetNillableStandardError sets the "standard_error" field if the given value is not nil.
func (_u *DimensionStateUpdateOne) SetNillableStandardError(v *float64) *DimensionStateUpdateOne {
	if v != nil {
		_u.SetStandardError(*v)
	}
	return _u
}

// AddStandardError adds value to the "standard_error" field.
func (_u *DimensionStateUpdateOne) AddStandardError(v float64) *DimensionStateUpdateOne {
	_u.mutation.AddStandardError(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DimensionStateUpdateOne) SetConfidence(v float64) *DimensionStateUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DimensionStateUpdateOne) SetNillableConfidence(v *float64) *DimensionStateUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DimensionStateUpdateOne) AddConfidence(v float64) *DimensionStateUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetAnsweredItems sets the "answered_items" field.
func (_u *DimensionStateUpdateOne) SetAnsweredItems(v []string) *DimensionStateUpdateOne {
	_u.mutation.SetAnsweredItems(v)
	return _u
}

// AppendAnsweredItems appends value to the "answered_items" field.
func (_u *DimensionStateUpdateOne) AppendAnsweredItems(v []string) *DimensionStateUpdateOne {
	_u.mutation.AppendAnsweredItems(v)
	return _u
}

// ClearAnsweredItems clears the value of the "answered_items" field.
func (_u *DimensionStateUpdateOne) ClearAnsweredItems() *DimensionStateUpdateOne {
	_u.mutation.ClearAnsweredItems()
	return _u
}

// SetResponses sets the "responses" field.
func (_u *DimensionStateUpdateOne) SetResponses(v []map[string]interface{}) *DimensionStateUpdateOne {
	_u.mutation.SetResponses(v)
	return _u
}

// AppendResponses appends value to the "responses" field.
func (_u *DimensionStateUpdateOne) AppendResponses(v []map[string]interface{}) *DimensionStateUpdateOne {
	_u.mutation.AppendResponses(v)
	return _u
}

// ClearResponses clears the value of the "responses" field.
func (_u *DimensionStateUpdateOne) ClearResponses() *DimensionStateUpdateOne {
	_u.mutation.ClearResponses()
	return _u
}

// SetCurrentItemID sets the "current_item_id" field.
func (_u *DimensionStateUpdateOne) SetCurrentItemID(v string) *DimensionStateUpdateOne {
	_u.mutation.SetCurrentItemID(v)
	return _u
}

// SetNillableCurrentItemID sets the "current_item_id" field if the given value is not nil.
func (_u *DimensionStateUpdateOne) SetNillableCurrentItemID(v *string) *DimensionStateUpdateOne {
	if v != nil {
		_u.SetCurrentItemID(*v)
	}
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *DimensionStateUpdateOne) SetCompleted(v bool) *DimensionStateUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *DimensionStateUpdateOne) SetNillableCompleted(v *bool) *DimensionStateUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletionReason sets the "completion_reason" field.
func (_u *DimensionStateUpdateOne) SetCompletionReason(v string) *DimensionStateUpdateOne {
	_u.mutation.SetCompletionReason(v)
	return _u
}

// SetNillableCompletionReason sets the "completion_reason" field if the given value is not nil.
func (_u *DimensionStateUpdateOne) SetNillableCompletionReason(v *string) *DimensionStateUpdateOne {
	if v != nil {
		_u.SetCompletionReason(*v)
	}
	return _u
}

// SetSegmentLevel sets the "segment_level" field.
func (_u *DimensionStateUpdateOne) SetSegmentLevel(v int) *DimensionStateUpdateOne {
	_u.mutation.ResetSegmentLevel()
	_u.mutation.SetSegmentLevel(v)
	return _u
}

// SetNillableSegmentLevel sets the "segment_level" field if the given value is not nil.
func (_u *DimensionStateUpdateOne) SetNillableSegmentLevel(v *int) *DimensionStateUpdateOne {
	if v != nil {
		_u.SetSegmentLevel(*v)
	}
	return _u
}

// AddSegmentLevel adds value to the "segment_level" field.
func (_u *DimensionStateUpdateOne) AddSegmentLevel(v int) *DimensionStateUpdateOne {
	_u.mutation.AddSegmentLevel(v)
	return _u
}

// ClearSegmentLevel clears the value of the "segment_level" field.
func (_u *DimensionStateUpdateOne) ClearSegmentLevel() *DimensionStateUpdateOne {
	_u.mutation.ClearSegmentLevel()
	return _u
}

// SetBlendCount sets the "blend_count" field.
func (_u *DimensionStateUpdateOne) SetBlendCount(v int) *DimensionStateUpdateOne {
	_u.mutation.ResetBlendCount()
	_u.mutation.SetBlendCount(v)
	return _u
}

// SetNillableBlendCount sets the "blend_count" field if the given value is not nil.
func (_u *DimensionStateUpdateOne) SetNillableBlendCount(v *int) *DimensionStateUpdateOne {
	if v != nil {
		_u.SetBlendCount(*v)
	}
	return _u
}

// AddBlendCount adds value to the "blend_count" field.
func (_u *DimensionStateUpdateOne) AddBlendCount(v int) *DimensionStateUpdateOne {
	_u.mutation.AddBlendCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DimensionStateUpdateOne) SetUpdatedAt(v time.Time) *DimensionStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DimensionStateMutation object of the builder.
func (_u *DimensionStateUpdateOne) Mutation() *DimensionStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the DimensionStateUpdate builder.
func (_u *DimensionStateUpdateOne) Where(ps ...predicate.DimensionState) *DimensionStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DimensionStateUpdateOne) Select(field string, fields ...string) *DimensionStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DimensionState entity.
func (_u *DimensionStateUpdateOne) Save(ctx context.Context) (*DimensionState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DimensionStateUpdateOne) SaveX(ctx context.Context) *DimensionState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DimensionStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DimensionStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DimensionStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dimensionstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DimensionStateUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := dimensionstate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DimensionState.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := dimensionstate.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DimensionState.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DimensionID(); ok {
		if err := dimensionstate.DimensionIDValidator(v); err != nil {
			return &ValidationError{Name: "dimension_id", err: fmt.Errorf(`ent: validator failed for field "DimensionState.dimension_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DimensionStateUpdateOne) sqlSave(ctx context.Context) (_node *DimensionState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dimensionstate.Table, dimensionstate.Columns, sqlgraph.NewFieldSpec(dimensionstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DimensionState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dimensionstate.FieldID)
		for _, f := range fields {
			if !dimensionstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dimensionstate.FieldID {
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
		_spec.SetField(dimensionstate.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(dimensionstate.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DimensionID(); ok {
		_spec.SetField(dimensionstate.FieldDimensionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Theta(); ok {
		_spec.SetField(dimensionstate.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTheta(); ok {
		_spec.AddField(dimensionstate.FieldTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StandardError(); ok {
		_spec.SetField(dimensionstate.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStandardError(); ok {
		_spec.AddField(dimensionstate.FieldStandardError, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(dimensionstate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(dimensionstate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnsweredItems(); ok {
		_spec.SetField(dimensionstate.FieldAnsweredItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnsweredItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dimensionstate.FieldAnsweredItems, value)
		})
	}
	if _u.mutation.AnsweredItemsCleared() {
		_spec.ClearField(dimensionstate.FieldAnsweredItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Responses(); ok {
		_spec.SetField(dimensionstate.FieldResponses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResponses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dimensionstate.FieldResponses, value)
		})
	}
	if _u.mutation.ResponsesCleared() {
		_spec.ClearField(dimensionstate.FieldResponses, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentItemID(); ok {
		_spec.SetField(dimensionstate.FieldCurrentItemID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(dimensionstate.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletionReason(); ok {
		_spec.SetField(dimensionstate.FieldCompletionReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.SegmentLevel(); ok {
		_spec.SetField(dimensionstate.FieldSegmentLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSegmentLevel(); ok {
		_spec.AddField(dimensionstate.FieldSegmentLevel, field.TypeInt, value)
	}
	if _u.mutation.SegmentLevelCleared() {
		_spec.ClearField(dimensionstate.FieldSegmentLevel, field.TypeInt)
	}
	if value, ok := _u.mutation.BlendCount(); ok {
		_spec.SetField(dimensionstate.FieldBlendCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBlendCount(); ok {
		_spec.AddField(dimensionstate.FieldBlendCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dimensionstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DimensionState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dimensionstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

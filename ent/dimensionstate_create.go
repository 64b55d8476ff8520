// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/dimensionstate"
)

// DimensionStateCreate is the builder for creating a DimensionState entity.
type DimensionStateCreate struct {
	config
	mutation *DimensionStateMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *DimensionStateCreate) SetUserID(v string) *DimensionStateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *DimensionStateCreate) SetSessionID(v string) *DimensionStateCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDimensionID sets the "dimension_id" field.
func (_c *DimensionStateCreate) SetDimensionID(v string) *DimensionStateCreate {
	_c.mutation.SetDimensionID(v)
	return _c
}

// SetTheta sets the "theta" field.
func (_c *DimensionStateCreate) SetTheta(v float64) *DimensionStateCreate {
	_c.mutation.SetTheta(v)
	return _c
}

// SetNillableTheta sets the "theta" field if the given value is not nil.
func (_c *DimensionStateCreate) SetNillableTheta(v *float64) *DimensionStateCreate {
	if v != nil {
		_c.SetTheta(*v)
	}
	return _c
}

// SetStandardError sets the "standard_error" field.
func (_c *DimensionStateCreate) SetStandardError(v float64) *DimensionStateCreate {
	_c.mutation.SetStandardError(v)
	return _c
}

// SetNillableStandardError sets the "standard_error" field if the given value is not nil.
func (_c *DimensionStateCreate) SetNillableStandardError(v *float64) *DimensionStateCreate {
	if v != nil {
		_c.SetStandardError(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DimensionStateCreate) SetConfidence(v float64) *DimensionStateCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *DimensionStateCreate) SetNillableConfidence(v *float64) *DimensionStateCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetAnsweredItems sets the "answered_items" field.
func (_c *DimensionStateCreate) SetAnsweredItems(v []string) *DimensionStateCreate {
	_c.mutation.SetAnsweredItems(v)
	return _c
}

// SetResponses sets the "responses" field.
func (_c *DimensionStateCreate) SetResponses(v []map[string]interface{}) *DimensionStateCreate {
	_c.mutation.SetResponses(v)
	return _c
}

// SetCurrentItemID sets the "current_item_id" field.
func (_c *DimensionStateCreate) SetCurrentItemID(v string) *DimensionStateCreate {
	_c.mutation.SetCurrentItemID(v)
	return _c
}

// SetNillableCurrentItemID sets the "current_item_id" field if the given value is not nil.
func (_c *DimensionStateCreate) SetNillableCurrentItemID(v *string) *DimensionStateCreate {
	if v != nil {
		_c.SetCurrentItemID(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *DimensionStateCreate) SetCompleted(v bool) *DimensionStateCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *DimensionStateCreate) SetNillableCompleted(v *bool) *DimensionStateCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetCompletionReason sets the "completion_reason" field.
func (_c *DimensionStateCreate) SetCompletionReason(v string) *DimensionStateCreate {
	_c.mutation.SetCompletionReason(v)
	return _c
}

// SetNillableCompletionReason sets the "completion_reason" field if the given value is not nil.
func (_c *DimensionStateCreate) SetNillableCompletionReason(v *string) *DimensionStateCreate {
	if v != nil {
		_c.SetCompletionReason(*v)
	}
	return _c
}

// SetSegmentLevel sets the "segment_level" field.
func (_c *DimensionStateCreate) SetSegmentLevel(v int) *DimensionStateCreate {
	_c.mutation.SetSegmentLevel(v)
	return _c
}

// SetNillableSegmentLevel sets the "segment_level" field if the given value is not nil.
func (_c *DimensionStateCreate) SetNillableSegmentLevel(v *int) *DimensionStateCreate {
	if v != nil {
		_c.SetSegmentLevel(*v)
	}
	return _c
}

// SetBlendCount sets the "blend_count" field.
func (_c *DimensionStateCreate) SetBlendCount(v int) *DimensionStateCreate {
	_c.mutation.SetBlendCount(v)
	return _c
}

// SetNillableBlendCount sets the "blend_count" field if the given value is not nil.
func (_c *DimensionStateCreate) SetNillableBlendCount(v *int) *DimensionStateCreate {
	if v != nil {
		_c.SetBlendCount(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DimensionStateCreate) SetUpdatedAt(v time.Time) *DimensionStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DimensionStateCreate) SetNillableUpdatedAt(v *time.Time) *DimensionStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the DimensionStateMutation object of the builder.
func (_c *DimensionStateCreate) Mutation() *DimensionStateMutation {
	return _c.mutation
}

// Save creates the DimensionState in the database.
func (_c *DimensionStateCreate) Save(ctx context.Context) (*DimensionState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DimensionStateCreate) SaveX(ctx context.Context) *DimensionState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DimensionStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DimensionStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DimensionStateCreate) defaults() {
	if _, ok := _c.mutation.Theta(); !ok {
		v := dimensionstate.DefaultTheta
		_c.mutation.SetTheta(v)
	}
	if _, ok := _c.mutation.StandardError(); !ok {
		v := dimensionstate.DefaultStandardError
		_c.mutation.SetStandardError(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := dimensionstate.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CurrentItemID(); !ok {
		v := dimensionstate.DefaultCurrentItemID
		_c.mutation.SetCurrentItemID(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := dimensionstate.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.CompletionReason(); !ok {
		v := dimensionstate.DefaultCompletionReason
		_c.mutation.SetCompletionReason(v)
	}
	if _, ok := _c.mutation.BlendCount(); !ok {
		v := dimensionstate.DefaultBlendCount
		_c.mutation.SetBlendCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dimensionstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DimensionStateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DimensionState.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := dimensionstate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "DimensionState.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DimensionState.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := dimensionstate.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DimensionState.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DimensionID(); !ok {
		return &ValidationError{Name: "dimension_id", err: errors.New(`ent: missing required field "DimensionState.dimension_id"`)}
	}
	if v, ok := _c.mutation.DimensionID(); ok {
		if err := dimensionstate.DimensionIDValidator(v); err != nil {
			return &ValidationError{Name: "dimension_id", err: fmt.Errorf(`ent: validator failed for field "DimensionState.dimension_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Theta(); !ok {
		return &ValidationError{Name: "theta", err: errors.New(`ent: missing required field "DimensionState.theta"`)}
	}
	if _, ok := _c.mutation.StandardError(); !ok {
		return &ValidationError{Name: "standard_error", err: errors.New(`ent: missing required field "DimensionState.standard_error"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "DimensionState.confidence"`)}
	}
	if _, ok := _c.mutation.CurrentItemID(); !ok {
		return &ValidationError{Name: "current_item_id", err: errors.New(`ent: missing required field "DimensionState.current_item_id"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "DimensionState.completed"`)}
	}
	if _, ok := _c.mutation.CompletionReason(); !ok {
		return &ValidationError{Name: "completion_reason", err: errors.New(`ent: missing required field "DimensionState.completion_reason"`)}
	}
	if _, ok := _c.mutation.BlendCount(); !ok {
		return &ValidationError{Name: "blend_count", err: errors.New(`ent: missing required field "DimensionState.blend_count"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DimensionState.updated_at"`)}
	}
	return nil
}

func (_c *DimensionStateCreate) sqlSave(ctx context.Context) (*DimensionState, error) {
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

func (_c *DimensionStateCreate) createSpec() (*DimensionState, *sqlgraph.CreateSpec) {
	var (
		_node = &DimensionState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dimensionstate.Table, sqlgraph.NewFieldSpec(dimensionstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(dimensionstate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(dimensionstate.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.DimensionID(); ok {
		_spec.SetField(dimensionstate.FieldDimensionID, field.TypeString, value)
		_node.DimensionID = value
	}
	if value, ok := _c.mutation.Theta(); ok {
		_spec.SetField(dimensionstate.FieldTheta, field.TypeFloat64, value)
		_node.Theta = value
	}
	if value, ok := _c.mutation.StandardError(); ok {
		_spec.SetField(dimensionstate.FieldStandardError, field.TypeFloat64, value)
		_node.StandardError = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(dimensionstate.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.AnsweredItems(); ok {
		_spec.SetField(dimensionstate.FieldAnsweredItems, field.TypeJSON, value)
		_node.AnsweredItems = value
	}
	if value, ok := _c.mutation.Responses(); ok {
		_spec.SetField(dimensionstate.FieldResponses, field.TypeJSON, value)
		_node.Responses = value
	}
	if value, ok := _c.mutation.CurrentItemID(); ok {
		_spec.SetField(dimensionstate.FieldCurrentItemID, field.TypeString, value)
		_node.CurrentItemID = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(dimensionstate.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.CompletionReason(); ok {
		_spec.SetField(dimensionstate.FieldCompletionReason, field.TypeString, value)
		_node.CompletionReason = value
	}
	if value, ok := _c.mutation.SegmentLevel(); ok {
		_spec.SetField(dimensionstate.FieldSegmentLevel, field.TypeInt, value)
		_node.SegmentLevel = &value
	}
	if value, ok := _c.mutation.BlendCount(); ok {
		_spec.SetField(dimensionstate.FieldBlendCount, field.TypeInt, value)
		_node.BlendCount = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dimensionstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DimensionStateCreateBulk is the builder for creating many DimensionState entities in bulk.
type DimensionStateCreateBulk struct {
	config
	err      error
	builders []*DimensionStateCreate
}

// Save creates the DimensionState entities in the database.
func (_c *DimensionStateCreateBulk) Save(ctx context.Context) ([]*DimensionState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DimensionState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DimensionStateMutation)
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
func (_c *DimensionStateCreateBulk) SaveX(ctx context.Context) []*DimensionState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DimensionStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DimensionStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

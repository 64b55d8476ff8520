// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/analysisevent"
)

// AnalysisEventCreate is the builder for creating a AnalysisEvent entity.
type AnalysisEventCreate struct {
	config
	mutation *AnalysisEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnalysisEventCreate) SetSequence(v int64) *AnalysisEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnalysisEventCreate) SetTimestamp(v time.Time) *AnalysisEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableTimestamp(v *time.Time) *AnalysisEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AnalysisEventCreate) SetUserID(v string) *AnalysisEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AnalysisEventCreate) SetSessionID(v string) *AnalysisEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDimensionID sets the "dimension_id" field.
func (_c *AnalysisEventCreate) SetDimensionID(v string) *AnalysisEventCreate {
	_c.mutation.SetDimensionID(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *AnalysisEventCreate) SetItemID(v string) *AnalysisEventCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetExternalTheta sets the "external_theta" field.
func (_c *AnalysisEventCreate) SetExternalTheta(v float64) *AnalysisEventCreate {
	_c.mutation.SetExternalTheta(v)
	return _c
}

// SetExternalConfidence sets the "external_confidence" field.
func (_c *AnalysisEventCreate) SetExternalConfidence(v float64) *AnalysisEventCreate {
	_c.mutation.SetExternalConfidence(v)
	return _c
}

// SetThetaBefore sets the "theta_before" field.
func (_c *AnalysisEventCreate) SetThetaBefore(v float64) *AnalysisEventCreate {
	_c.mutation.SetThetaBefore(v)
	return _c
}

// SetThetaAfter sets the "theta_after" field.
func (_c *AnalysisEventCreate) SetThetaAfter(v float64) *AnalysisEventCreate {
	_c.mutation.SetThetaAfter(v)
	return _c
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_c *AnalysisEventCreate) Mutation() *AnalysisEventMutation {
	return _c.mutation
}

// Save creates the AnalysisEvent in the database.
func (_c *AnalysisEventCreate) Save(ctx context.Context) (*AnalysisEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisEventCreate) SaveX(ctx context.Context) *AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := analysisevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnalysisEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnalysisEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AnalysisEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := analysisevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnalysisEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := analysisevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DimensionID(); !ok {
		return &ValidationError{Name: "dimension_id", err: errors.New(`ent: missing required field "AnalysisEvent.dimension_id"`)}
	}
	if v, ok := _c.mutation.DimensionID(); ok {
		if err := analysisevent.DimensionIDValidator(v); err != nil {
			return &ValidationError{Name: "dimension_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.dimension_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "AnalysisEvent.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := analysisevent.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExternalTheta(); !ok {
		return &ValidationError{Name: "external_theta", err: errors.New(`ent: missing required field "AnalysisEvent.external_theta"`)}
	}
	if _, ok := _c.mutation.ExternalConfidence(); !ok {
		return &ValidationError{Name: "external_confidence", err: errors.New(`ent: missing required field "AnalysisEvent.external_confidence"`)}
	}
	if _, ok := _c.mutation.ThetaBefore(); !ok {
		return &ValidationError{Name: "theta_before", err: errors.New(`ent: missing required field "AnalysisEvent.theta_before"`)}
	}
	if _, ok := _c.mutation.ThetaAfter(); !ok {
		return &ValidationError{Name: "theta_after", err: errors.New(`ent: missing required field "AnalysisEvent.theta_after"`)}
	}
	return nil
}

func (_c *AnalysisEventCreate) sqlSave(ctx context.Context) (*AnalysisEvent, error) {
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

func (_c *AnalysisEventCreate) createSpec() (*AnalysisEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisevent.Table, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(analysisevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(analysisevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(analysisevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(analysisevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.DimensionID(); ok {
		_spec.SetField(analysisevent.FieldDimensionID, field.TypeString, value)
		_node.DimensionID = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(analysisevent.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.ExternalTheta(); ok {
		_spec.SetField(analysisevent.FieldExternalTheta, field.TypeFloat64, value)
		_node.ExternalTheta = value
	}
	if value, ok := _c.mutation.ExternalConfidence(); ok {
		_spec.SetField(analysisevent.FieldExternalConfidence, field.TypeFloat64, value)
		_node.ExternalConfidence = value
	}
	if value, ok := _c.mutation.ThetaBefore(); ok {
		_spec.SetField(analysisevent.FieldThetaBefore, field.TypeFloat64, value)
		_node.ThetaBefore = value
	}
	if value, ok := _c.mutation.ThetaAfter(); ok {
		_spec.SetField(analysisevent.FieldThetaAfter, field.TypeFloat64, value)
		_node.ThetaAfter = value
	}
	return _node, _spec
}

// AnalysisEventCreateBulk is the builder for creating many AnalysisEvent entities in bulk.
type AnalysisEventCreateBulk struct {
	config
	err      error
	builders []*AnalysisEventCreate
}

// Save creates the AnalysisEvent entities in the database.
func (_c *AnalysisEventCreateBulk) Save(ctx context.Context) ([]*AnalysisEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisEventMutation)
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
func (_c *AnalysisEventCreateBulk) SaveX(ctx context.Context) []*AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

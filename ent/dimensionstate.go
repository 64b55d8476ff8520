// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/dimensionstate"
)

// DimensionState is the model entity for the DimensionState schema.
type DimensionState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// DimensionID holds the value of the "dimension_id" field.
	DimensionID string `json:"dimension_id,omitempty"`
	// Current EAP trait estimate, clamped to [-3, 3]
	Theta float64 `json:"theta,omitempty"`
	// Posterior standard error, floored to avoid false certainty
	StandardError float64 `json:"standard_error,omitempty"`
	// Bounded confidence derived from the standard error
	Confidence float64 `json:"confidence,omitempty"`
	// IDs of items already administered
	AnsweredItems []string `json:"answered_items,omitempty"`
	// Ordered dichotomized response history with item parameters
	Responses []map[string]interface{} `json:"responses,omitempty"`
	// Item awaiting an answer; empty when none assigned
	CurrentItemID string `json:"current_item_id,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// max_questions, target_confidence, or item_exhausted
	CompletionReason string `json:"completion_reason,omitempty"`
	// Terminal segment band level, set on completion
	SegmentLevel *int `json:"segment_level,omitempty"`
	// Count of external-signal blends applied
	BlendCount int `json:"blend_count,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DimensionState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dimensionstate.FieldAnsweredItems, dimensionstate.FieldResponses:
			values[i] = new([]byte)
		case dimensionstate.FieldCompleted:
			values[i] = new(sql.NullBool)
		case dimensionstate.FieldTheta, dimensionstate.FieldStandardError, dimensionstate.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case dimensionstate.FieldID, dimensionstate.FieldSegmentLevel, dimensionstate.FieldBlendCount:
			values[i] = new(sql.NullInt64)
		case dimensionstate.FieldUserID, dimensionstate.FieldSessionID, dimensionstate.FieldDimensionID, dimensionstate.FieldCurrentItemID, dimensionstate.FieldCompletionReason:
			values[i] = new(sql.NullString)
		case dimensionstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DimensionState fields.
func (_m *DimensionState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dimensionstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case dimensionstate.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case dimensionstate.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case dimensionstate.FieldDimensionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dimension_id", values[i])
			} else if value.Valid {
				_m.DimensionID = value.String
			}
		case dimensionstate.FieldTheta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field theta", values[i])
			} else if value.Valid {
				_m.Theta = value.Float64
			}
		case dimensionstate.FieldStandardError:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field standard_error", values[i])
			} else if value.Valid {
				_m.StandardError = value.Float64
			}
		case dimensionstate.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case dimensionstate.FieldAnsweredItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answered_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AnsweredItems); err != nil {
					return fmt.Errorf("unmarshal field answered_items: %w", err)
				}
			}
		case dimensionstate.FieldResponses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field responses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Responses); err != nil {
					return fmt.Errorf("unmarshal field responses: %w", err)
				}
			}
		case dimensionstate.FieldCurrentItemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_item_id", values[i])
			} else if value.Valid {
				_m.CurrentItemID = value.String
			}
		case dimensionstate.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case dimensionstate.FieldCompletionReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field completion_reason", values[i])
			} else if value.Valid {
				_m.CompletionReason = value.String
			}
		case dimensionstate.FieldSegmentLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field segment_level", values[i])
			} else if value.Valid {
				_m.SegmentLevel = new(int)
				*_m.SegmentLevel = int(value.Int64)
			}
		case dimensionstate.FieldBlendCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field blend_count", values[i])
			} else if value.Valid {
				_m.BlendCount = int(value.Int64)
			}
		case dimensionstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DimensionState.
// This includes values selected through modifiers, order, etc.
func (_m *DimensionState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DimensionState.
// Note that you need to call DimensionState.Unwrap() before calling this method if this DimensionState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DimensionState) Update() *DimensionStateUpdateOne {
	return NewDimensionStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DimensionState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DimensionState) Unwrap() *DimensionState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DimensionState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DimensionState) String() string {
	var builder strings.Builder
	builder.WriteString("DimensionState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("dimension_id=")
	builder.WriteString(_m.DimensionID)
	builder.WriteString(", ")
	builder.WriteString("theta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Theta))
	builder.WriteString(", ")
	builder.WriteString("standard_error=")
	builder.WriteString(fmt.Sprintf("%v", _m.StandardError))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("answered_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnsweredItems))
	builder.WriteString(", ")
	builder.WriteString("responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Responses))
	builder.WriteString(", ")
	builder.WriteString("current_item_id=")
	builder.WriteString(_m.CurrentItemID)
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("completion_reason=")
	builder.WriteString(_m.CompletionReason)
	builder.WriteString(", ")
	if v := _m.SegmentLevel; v != nil {
		builder.WriteString("segment_level=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("blend_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlendCount))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DimensionStates is a parsable slice of DimensionState.
type DimensionStates []*DimensionState

// Code generated by ent, DO NOT EDIT.

package dimensionstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dimensionstate type in the database.
	Label = "dimension_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDimensionID holds the string denoting the dimension_id field in the database.
	FieldDimensionID = "dimension_id"
	// FieldTheta holds the string denoting the theta field in the database.
	FieldTheta = "theta"
	// FieldStandardError holds the string denoting the standard_error field in the database.
	FieldStandardError = "standard_error"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldAnsweredItems holds the string denoting the answered_items field in the database.
	FieldAnsweredItems = "answered_items"
	// FieldResponses holds the string denoting the responses field in the database.
	FieldResponses = "responses"
	// FieldCurrentItemID holds the string denoting the current_item_id field in the database.
	FieldCurrentItemID = "current_item_id"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldCompletionReason holds the string denoting the completion_reason field in the database.
	FieldCompletionReason = "completion_reason"
	// FieldSegmentLevel holds the string denoting the segment_level field in the database.
	FieldSegmentLevel = "segment_level"
	// FieldBlendCount holds the string denoting the blend_count field in the database.
	FieldBlendCount = "blend_count"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the dimensionstate in the database.
	Table = "dimension_states"
)

// Columns holds all SQL columns for dimensionstate fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSessionID,
	FieldDimensionID,
	FieldTheta,
	FieldStandardError,
	FieldConfidence,
	FieldAnsweredItems,
	FieldResponses,
	FieldCurrentItemID,
	FieldCompleted,
	FieldCompletionReason,
	FieldSegmentLevel,
	FieldBlendCount,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DimensionIDValidator is a validator for the "dimension_id" field. It is called by the builders before save.
	DimensionIDValidator func(string) error
	// DefaultTheta holds the default value on creation for the "theta" field.
	DefaultTheta float64
	// DefaultStandardError holds the default value on creation for the "standard_error" field.
	DefaultStandardError float64
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultCurrentItemID holds the default value on creation for the "current_item_id" field.
	DefaultCurrentItemID string
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultCompletionReason holds the default value on creation for the "completion_reason" field.
	DefaultCompletionReason string
	// DefaultBlendCount holds the default value on creation for the "blend_count" field.
	DefaultBlendCount int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DimensionState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByDimensionID orders the results by the dimension_id field.
func ByDimensionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDimensionID, opts...).ToFunc()
}

// ByTheta orders the results by the theta field.
func ByTheta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheta, opts...).ToFunc()
}

// ByStandardError orders the results by the standard_error field.
func ByStandardError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStandardError, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCurrentItemID orders the results by the current_item_id field.
func ByCurrentItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentItemID, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByCompletionReason orders the results by the completion_reason field.
func ByCompletionReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionReason, opts...).ToFunc()
}

// BySegmentLevel orders the results by the segment_level field.
func BySegmentLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSegmentLevel, opts...).ToFunc()
}

// ByBlendCount orders the results by the blend_count field.
func ByBlendCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlendCount, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package dimensionstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldUserID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldSessionID, v))
}

// DimensionID applies equality check predicate on the "dimension_id" field. It's identical to DimensionIDEQ.
func DimensionID(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldDimensionID, v))
}

// Theta applies equality check predicate on the "theta" field. It's identical to ThetaEQ.
func Theta(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldTheta, v))
}

// StandardError applies equality check predicate on the "standard_error" field. It's identical to StandardErrorEQ.
func StandardError(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldStandardError, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldConfidence, v))
}

// CurrentItemID applies equality check predicate on the "current_item_id" field. It's identical to CurrentItemIDEQ.
func CurrentItemID(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldCurrentItemID, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldCompleted, v))
}

// CompletionReason applies equality check predicate on the "completion_reason" field. It's identical to CompletionReasonEQ.
func CompletionReason(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldCompletionReason, v))
}

// SegmentLevel applies equality check predicate on the "segment_level" field. It's identical to SegmentLevelEQ.
func SegmentLevel(v int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldSegmentLevel, v))
}

// BlendCount applies equality check predicate on the "blend_count" field. It's identical to BlendCountEQ.
func BlendCount(v int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldBlendCount, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldContainsFold(FieldUserID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldContainsFold(FieldSessionID, v))
}

// DimensionIDEQ applies the EQ predicate on the "dimension_id" field.
func DimensionIDEQ(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldDimensionID, v))
}

// DimensionIDNEQ applies the NEQ predicate on the "dimension_id" field.
func DimensionIDNEQ(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNEQ(FieldDimensionID, v))
}

// DimensionIDIn applies the In predicate on the "dimension_id" field.
func DimensionIDIn(vs ...string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIn(FieldDimensionID, vs...))
}

// DimensionIDNotIn applies the NotIn predicate on the "dimension_id" field.
func DimensionIDNotIn(vs ...string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotIn(FieldDimensionID, vs...))
}

// DimensionIDGT applies the GT predicate on the "dimension_id" field.
func DimensionIDGT(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGT(FieldDimensionID, v))
}

// DimensionIDGTE applies the GTE predicate on the "dimension_id" field.
func DimensionIDGTE(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGTE(FieldDimensionID, v))
}

// DimensionIDLT applies the LT predicate on the "dimension_id" field.
func DimensionIDLT(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLT(FieldDimensionID, v))
}

// DimensionIDLTE applies the LTE predicate on the "dimension_id" field.
func DimensionIDLTE(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLTE(FieldDimensionID, v))
}

// DimensionIDContains applies the Contains predicate on the "dimension_id" field.
func DimensionIDContains(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldContains(FieldDimensionID, v))
}

// DimensionIDHasPrefix applies the HasPrefix predicate on the "dimension_id" field.
func DimensionIDHasPrefix(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldHasPrefix(FieldDimensionID, v))
}

// DimensionIDHasSuffix applies the HasSuffix predicate on the "dimension_id" field.
func DimensionIDHasSuffix(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldHasSuffix(FieldDimensionID, v))
}

// DimensionIDEqualFold applies the EqualFold predicate on the "dimension_id" field.
func DimensionIDEqualFold(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEqualFold(FieldDimensionID, v))
}

// DimensionIDContainsFold applies the ContainsFold predicate on the "dimension_id" field.
func DimensionIDContainsFold(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldContainsFold(FieldDimensionID, v))
}

// ThetaEQ applies the EQ predicate on the "theta" field.
func ThetaEQ(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldTheta, v))
}

// ThetaNEQ applies the NEQ predicate on the "theta" field.
func ThetaNEQ(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNEQ(FieldTheta, v))
}

// ThetaIn applies the In predicate on the "theta" field.
func ThetaIn(vs ...float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIn(FieldTheta, vs...))
}

// ThetaNotIn applies the NotIn predicate on the "theta" field.
func ThetaNotIn(vs ...float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotIn(FieldTheta, vs...))
}

// ThetaGT applies the GT predicate on the "theta" field.
func ThetaGT(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGT(FieldTheta, v))
}

// ThetaGTE applies the GTE predicate on the "theta" field.
func ThetaGTE(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGTE(FieldTheta, v))
}

// ThetaLT applies the LT predicate on the "theta" field.
func ThetaLT(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLT(FieldTheta, v))
}

// ThetaLTE applies the LTE predicate on the "theta" field.
func ThetaLTE(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLTE(FieldTheta, v))
}

// StandardErrorEQ applies the EQ predicate on the "standard_error" field.
func StandardErrorEQ(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldStandardError, v))
}

// StandardErrorNEQ applies the NEQ predicate on the "standard_error" field.
func StandardErrorNEQ(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNEQ(FieldStandardError, v))
}

// StandardErrorIn applies the In predicate on the "standard_error" field.
func StandardErrorIn(vs ...float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIn(FieldStandardError, vs...))
}

// StandardErrorNotIn applies the NotIn predicate on the "standard_error" field.
func StandardErrorNotIn(vs ...float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotIn(FieldStandardError, vs...))
}

// StandardErrorGT applies the GT predicate on the "standard_error" field.
func StandardErrorGT(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGT(FieldStandardError, v))
}

// StandardErrorGTE applies the GTE predicate on the "standard_error" field.
func StandardErrorGTE(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGTE(FieldStandardError, v))
}

// StandardErrorLT applies the LT predicate on the "standard_error" field.
func StandardErrorLT(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLT(FieldStandardError, v))
}

// StandardErrorLTE applies the LTE predicate on the "standard_error" field.
func StandardErrorLTE(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLTE(FieldStandardError, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLTE(FieldConfidence, v))
}

// AnsweredItemsIsNil applies the IsNil predicate on the "answered_items" field.
func AnsweredItemsIsNil() predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIsNull(FieldAnsweredItems))
}

// AnsweredItemsNotNil applies the NotNil predicate on the "answered_items" field.
func AnsweredItemsNotNil() predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotNull(FieldAnsweredItems))
}

// ResponsesIsNil applies the IsNil predicate on the "responses" field.
func ResponsesIsNil() predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIsNull(FieldResponses))
}

// ResponsesNotNil applies the NotNil predicate on the "responses" field.
func ResponsesNotNil() predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotNull(FieldResponses))
}

// CurrentItemIDEQ applies the EQ predicate on the "current_item_id" field.
func CurrentItemIDEQ(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldCurrentItemID, v))
}

// CurrentItemIDNEQ applies the NEQ predicate on the "current_item_id" field.
func CurrentItemIDNEQ(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNEQ(FieldCurrentItemID, v))
}

// CurrentItemIDIn applies the In predicate on the "current_item_id" field.
func CurrentItemIDIn(vs ...string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIn(FieldCurrentItemID, vs...))
}

// CurrentItemIDNotIn applies the NotIn predicate on the "current_item_id" field.
func CurrentItemIDNotIn(vs ...string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotIn(FieldCurrentItemID, vs...))
}

// CurrentItemIDGT applies the GT predicate on the "current_item_id" field.
func CurrentItemIDGT(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGT(FieldCurrentItemID, v))
}

// CurrentItemIDGTE applies the GTE predicate on the "current_item_id" field.
func CurrentItemIDGTE(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGTE(FieldCurrentItemID, v))
}

// CurrentItemIDLT applies the LT predicate on the "current_item_id" field.
func CurrentItemIDLT(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLT(FieldCurrentItemID, v))
}

// CurrentItemIDLTE applies the LTE predicate on the "current_item_id" field.
func CurrentItemIDLTE(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLTE(FieldCurrentItemID, v))
}

// CurrentItemIDContains applies the Contains predicate on the "current_item_id" field.
func CurrentItemIDContains(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldContains(FieldCurrentItemID, v))
}

// CurrentItemIDHasPrefix applies the HasPrefix predicate on the "current_item_id" field.
func CurrentItemIDHasPrefix(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldHasPrefix(FieldCurrentItemID, v))
}

// CurrentItemIDHasSuffix applies the HasSuffix predicate on the "current_item_id" field.
func CurrentItemIDHasSuffix(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldHasSuffix(FieldCurrentItemID, v))
}

// CurrentItemIDEqualFold applies the EqualFold predicate on the "current_item_id" field.
func CurrentItemIDEqualFold(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEqualFold(FieldCurrentItemID, v))
}

// CurrentItemIDContainsFold applies the ContainsFold predicate on the "current_item_id" field.
func CurrentItemIDContainsFold(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldContainsFold(FieldCurrentItemID, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNEQ(FieldCompleted, v))
}

// CompletionReasonEQ applies the EQ predicate on the "completion_reason" field.
func CompletionReasonEQ(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldCompletionReason, v))
}

// CompletionReasonNEQ applies the NEQ predicate on the "completion_reason" field.
func CompletionReasonNEQ(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNEQ(FieldCompletionReason, v))
}

// CompletionReasonIn applies the In predicate on the "completion_reason" field.
func CompletionReasonIn(vs ...string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIn(FieldCompletionReason, vs...))
}

// CompletionReasonNotIn applies the NotIn predicate on the "completion_reason" field.
func CompletionReasonNotIn(vs ...string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotIn(FieldCompletionReason, vs...))
}

// CompletionReasonGT applies the GT predicate on the "completion_reason" field.
func CompletionReasonGT(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGT(FieldCompletionReason, v))
}

// CompletionReasonGTE applies the GTE predicate on the "completion_reason" field.
func CompletionReasonGTE(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGTE(FieldCompletionReason, v))
}

// CompletionReasonLT applies the LT predicate on the "completion_reason" field.
func CompletionReasonLT(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLT(FieldCompletionReason, v))
}

// CompletionReasonLTE applies the LTE predicate on the "completion_reason" field.
func CompletionReasonLTE(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLTE(FieldCompletionReason, v))
}

// CompletionReasonContains applies the Contains predicate on the "completion_reason" field.
func CompletionReasonContains(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldContains(FieldCompletionReason, v))
}

// CompletionReasonHasPrefix applies the HasPrefix predicate on the "completion_reason" field.
func CompletionReasonHasPrefix(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldHasPrefix(FieldCompletionReason, v))
}

// CompletionReasonHasSuffix applies the HasSuffix predicate on the "completion_reason" field.
func CompletionReasonHasSuffix(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldHasSuffix(FieldCompletionReason, v))
}

// CompletionReasonEqualFold applies the EqualFold predicate on the "completion_reason" field.
func CompletionReasonEqualFold(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEqualFold(FieldCompletionReason, v))
}

// CompletionReasonContainsFold applies the ContainsFold predicate on the "completion_reason" field.
func CompletionReasonContainsFold(v string) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldContainsFold(FieldCompletionReason, v))
}

// SegmentLevelEQ applies the EQ predicate on the "segment_level" field.
func SegmentLevelEQ(v int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldSegmentLevel, v))
}

// SegmentLevelNEQ applies the NEQ predicate on the "segment_level" field.
func SegmentLevelNEQ(v int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNEQ(FieldSegmentLevel, v))
}

// SegmentLevelIn applies the In predicate on the "segment_level" field.
func SegmentLevelIn(vs ...int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIn(FieldSegmentLevel, vs...))
}

// SegmentLevelNotIn applies the NotIn predicate on the "segment_level" field.
func SegmentLevelNotIn(vs ...int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotIn(FieldSegmentLevel, vs...))
}

// SegmentLevelGT applies the GT predicate on the "segment_level" field.
func SegmentLevelGT(v int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGT(FieldSegmentLevel, v))
}

// SegmentLevelGTE applies the GTE predicate on the "segment_level" field.
func SegmentLevelGTE(v int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGTE(FieldSegmentLevel, v))
}

// SegmentLevelLT applies the LT predicate on the "segment_level" field.
func SegmentLevelLT(v int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLT(FieldSegmentLevel, v))
}

// SegmentLevelLTE applies the LTE predicate on the "segment_level" field.
func SegmentLevelLTE(v int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLTE(FieldSegmentLevel, v))
}

// SegmentLevelIsNil applies the IsNil predicate on the "segment_level" field.
func SegmentLevelIsNil() predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIsNull(FieldSegmentLevel))
}

// SegmentLevelNotNil applies the NotNil predicate on the "segment_level" field.
func SegmentLevelNotNil() predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotNull(FieldSegmentLevel))
}

// BlendCountEQ applies the EQ predicate on the "blend_count" field.
func BlendCountEQ(v int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldBlendCount, v))
}

// BlendCountNEQ applies the NEQ predicate on the "blend_count" field.
func BlendCountNEQ(v int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNEQ(FieldBlendCount, v))
}

// BlendCountIn applies the In predicate on the "blend_count" field.
func BlendCountIn(vs ...int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIn(FieldBlendCount, vs...))
}

// BlendCountNotIn applies the NotIn predicate on the "blend_count" field.
func BlendCountNotIn(vs ...int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotIn(FieldBlendCount, vs...))
}

// BlendCountGT applies the GT predicate on the "blend_count" field.
func BlendCountGT(v int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGT(FieldBlendCount, v))
}

// BlendCountGTE applies the GTE predicate on the "blend_count" field.
func BlendCountGTE(v int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGTE(FieldBlendCount, v))
}

// BlendCountLT applies the LT predicate on the "blend_count" field.
func BlendCountLT(v int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLT(FieldBlendCount, v))
}

// BlendCountLTE applies the LTE predicate on the "blend_count" field.
func BlendCountLTE(v int) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLTE(FieldBlendCount, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DimensionState {
	return predicate.DimensionState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DimensionState) predicate.DimensionState {
	return predicate.DimensionState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DimensionState) predicate.DimensionState {
	return predicate.DimensionState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DimensionState) predicate.DimensionState {
	return predicate.DimensionState(sql.NotPredicates(p))
}

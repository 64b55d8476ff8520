// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/analysisevent"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/answerevent"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/dimensionstate"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/llmrequestevent"
	"github.com/maxzemtsov/TraitTune-v1-sub000/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysiseventMixin := schema.AnalysisEvent{}.Mixin()
	analysiseventMixinFields0 := analysiseventMixin[0].Fields()
	_ = analysiseventMixinFields0
	analysiseventFields := schema.AnalysisEvent{}.Fields()
	_ = analysiseventFields
	// analysiseventDescTimestamp is the schema descriptor for timestamp field.
	analysiseventDescTimestamp := analysiseventMixinFields0[1].Descriptor()
	// analysisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analysisevent.DefaultTimestamp = analysiseventDescTimestamp.Default.(func() time.Time)
	// analysiseventDescUserID is the schema descriptor for user_id field.
	analysiseventDescUserID := analysiseventFields[0].Descriptor()
	// analysisevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	analysisevent.UserIDValidator = analysiseventDescUserID.Validators[0].(func(string) error)
	// analysiseventDescSessionID is the schema descriptor for session_id field.
	analysiseventDescSessionID := analysiseventFields[1].Descriptor()
	// analysisevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	analysisevent.SessionIDValidator = analysiseventDescSessionID.Validators[0].(func(string) error)
	// analysiseventDescDimensionID is the schema descriptor for dimension_id field.
	analysiseventDescDimensionID := analysiseventFields[2].Descriptor()
	// analysisevent.DimensionIDValidator is a validator for the "dimension_id" field. It is called by the builders before save.
	analysisevent.DimensionIDValidator = analysiseventDescDimensionID.Validators[0].(func(string) error)
	// analysiseventDescItemID is the schema descriptor for item_id field.
	analysiseventDescItemID := analysiseventFields[3].Descriptor()
	// analysisevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	analysisevent.ItemIDValidator = analysiseventDescItemID.Validators[0].(func(string) error)
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[0].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[1].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescDimensionID is the schema descriptor for dimension_id field.
	answereventDescDimensionID := answereventFields[2].Descriptor()
	// answerevent.DimensionIDValidator is a validator for the "dimension_id" field. It is called by the builders before save.
	answerevent.DimensionIDValidator = answereventDescDimensionID.Validators[0].(func(string) error)
	// answereventDescItemID is the schema descriptor for item_id field.
	answereventDescItemID := answereventFields[3].Descriptor()
	// answerevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	answerevent.ItemIDValidator = answereventDescItemID.Validators[0].(func(string) error)
	// answereventDescItemType is the schema descriptor for item_type field.
	answereventDescItemType := answereventFields[4].Descriptor()
	// answerevent.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	answerevent.ItemTypeValidator = answereventDescItemType.Validators[0].(func(string) error)
	dimensionstateFields := schema.DimensionState{}.Fields()
	_ = dimensionstateFields
	// dimensionstateDescUserID is the schema descriptor for user_id field.
	dimensionstateDescUserID := dimensionstateFields[0].Descriptor()
	// dimensionstate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	dimensionstate.UserIDValidator = dimensionstateDescUserID.Validators[0].(func(string) error)
	// dimensionstateDescSessionID is the schema descriptor for session_id field.
	dimensionstateDescSessionID := dimensionstateFields[1].Descriptor()
	// dimensionstate.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	dimensionstate.SessionIDValidator = dimensionstateDescSessionID.Validators[0].(func(string) error)
	// dimensionstateDescDimensionID is the schema descriptor for dimension_id field.
	dimensionstateDescDimensionID := dimensionstateFields[2].Descriptor()
	// dimensionstate.DimensionIDValidator is a validator for the "dimension_id" field. It is called by the builders before save.
	dimensionstate.DimensionIDValidator = dimensionstateDescDimensionID.Validators[0].(func(string) error)
	// dimensionstateDescTheta is the schema descriptor for theta field.
	dimensionstateDescTheta := dimensionstateFields[3].Descriptor()
	// dimensionstate.DefaultTheta holds the default value on creation for the theta field.
	dimensionstate.DefaultTheta = dimensionstateDescTheta.Default.(float64)
	// dimensionstateDescStandardError is the schema descriptor for standard_error field.
	dimensionstateDescStandardError := dimensionstateFields[4].Descriptor()
	// dimensionstate.DefaultStandardError holds the default value on creation for the standard_error field.
	dimensionstate.DefaultStandardError = dimensionstateDescStandardError.Default.(float64)
	// dimensionstateDescConfidence is the schema descriptor for confidence field.
	dimensionstateDescConfidence := dimensionstateFields[5].Descriptor()
	// dimensionstate.DefaultConfidence holds the default value on creation for the confidence field.
	dimensionstate.DefaultConfidence = dimensionstateDescConfidence.Default.(float64)
	// dimensionstateDescCurrentItemID is the schema descriptor for current_item_id field.
	dimensionstateDescCurrentItemID := dimensionstateFields[8].Descriptor()
	// dimensionstate.DefaultCurrentItemID holds the default value on creation for the current_item_id field.
	dimensionstate.DefaultCurrentItemID = dimensionstateDescCurrentItemID.Default.(string)
	// dimensionstateDescCompleted is the schema descriptor for completed field.
	dimensionstateDescCompleted := dimensionstateFields[9].Descriptor()
	// dimensionstate.DefaultCompleted holds the default value on creation for the completed field.
	dimensionstate.DefaultCompleted = dimensionstateDescCompleted.Default.(bool)
	// dimensionstateDescCompletionReason is the schema descriptor for completion_reason field.
	dimensionstateDescCompletionReason := dimensionstateFields[10].Descriptor()
	// dimensionstate.DefaultCompletionReason holds the default value on creation for the completion_reason field.
	dimensionstate.DefaultCompletionReason = dimensionstateDescCompletionReason.Default.(string)
	// dimensionstateDescBlendCount is the schema descriptor for blend_count field.
	dimensionstateDescBlendCount := dimensionstateFields[12].Descriptor()
	// dimensionstate.DefaultBlendCount holds the default value on creation for the blend_count field.
	dimensionstate.DefaultBlendCount = dimensionstateDescBlendCount.Default.(int)
	// dimensionstateDescUpdatedAt is the schema descriptor for updated_at field.
	dimensionstateDescUpdatedAt := dimensionstateFields[13].Descriptor()
	// dimensionstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dimensionstate.DefaultUpdatedAt = dimensionstateDescUpdatedAt.Default.(func() time.Time)
	// dimensionstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dimensionstate.UpdateDefaultUpdatedAt = dimensionstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisEventsColumns holds the columns for the "analysis_events" table.
	AnalysisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "dimension_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "external_theta", Type: field.TypeFloat64},
		{Name: "external_confidence", Type: field.TypeFloat64},
		{Name: "theta_before", Type: field.TypeFloat64},
		{Name: "theta_after", Type: field.TypeFloat64},
	}
	// AnalysisEventsTable holds the schema information for the "analysis_events" table.
	AnalysisEventsTable = &schema.Table{
		Name:       "analysis_events",
		Columns:    AnalysisEventsColumns,
		PrimaryKey: []*schema.Column{AnalysisEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[1]},
			},
			{
				Name:    "analysisevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[2]},
			},
			{
				Name:    "analysisevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[4]},
			},
			{
				Name:    "analysisevent_dimension_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[5]},
			},
		},
	}
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "dimension_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeString},
		{Name: "item_type", Type: field.TypeString},
		{Name: "raw_answer", Type: field.TypeString},
		{Name: "keyed", Type: field.TypeInt},
		{Name: "theta", Type: field.TypeFloat64},
		{Name: "standard_error", Type: field.TypeFloat64},
		{Name: "confidence", Type: field.TypeFloat64},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_dimension_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_user_id_dimension_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3], AnswerEventsColumns[5]},
			},
		},
	}
	// DimensionStatesColumns holds the columns for the "dimension_states" table.
	DimensionStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "dimension_id", Type: field.TypeString},
		{Name: "theta", Type: field.TypeFloat64, Default: 0},
		{Name: "standard_error", Type: field.TypeFloat64, Default: 1},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0.5},
		{Name: "answered_items", Type: field.TypeJSON, Nullable: true},
		{Name: "responses", Type: field.TypeJSON, Nullable: true},
		{Name: "current_item_id", Type: field.TypeString, Default: ""},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "completion_reason", Type: field.TypeString, Default: ""},
		{Name: "segment_level", Type: field.TypeInt, Nullable: true},
		{Name: "blend_count", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DimensionStatesTable holds the schema information for the "dimension_states" table.
	DimensionStatesTable = &schema.Table{
		Name:       "dimension_states",
		Columns:    DimensionStatesColumns,
		PrimaryKey: []*schema.Column{DimensionStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dimensionstate_user_id_session_id_dimension_id",
				Unique:  true,
				Columns: []*schema.Column{DimensionStatesColumns[1], DimensionStatesColumns[2], DimensionStatesColumns[3]},
			},
			{
				Name:    "dimensionstate_completed",
				Unique:  false,
				Columns: []*schema.Column{DimensionStatesColumns[10]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisEventsTable,
		AnswerEventsTable,
		DimensionStatesTable,
		LlmRequestEventsTable,
	}
)

func init() {
}

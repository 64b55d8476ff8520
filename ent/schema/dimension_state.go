package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DimensionState is the persistent scoring state for one
// (user, session, dimension) triple. One row per triple; Save replaces
// the whole row.
type DimensionState struct {
	ent.Schema
}

func (DimensionState) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("session_id").
			NotEmpty(),
		field.String("dimension_id").
			NotEmpty(),
		field.Float("theta").
			Default(0).
			Comment("Current EAP trait estimate, clamped to [-3, 3]"),
		field.Float("standard_error").
			Default(1.0).
			Comment("Posterior standard error, floored to avoid false certainty"),
		field.Float("confidence").
			Default(0.5).
			Comment("Bounded confidence derived from the standard error"),
		field.JSON("answered_items", []string{}).
			Optional().
			Comment("IDs of items already administered"),
		field.JSON("responses", []map[string]any{}).
			Optional().
			Comment("Ordered dichotomized response history with item parameters"),
		field.String("current_item_id").
			Default("").
			Comment("Item awaiting an answer; empty when none assigned"),
		field.Bool("completed").
			Default(false),
		field.String("completion_reason").
			Default("").
			Comment("max_questions, target_confidence, or item_exhausted"),
		field.Int("segment_level").
			Optional().
			Nillable().
			Comment("Terminal segment band level, set on completion"),
		field.Int("blend_count").
			Default(0).
			Comment("Count of external-signal blends applied"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (DimensionState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "session_id", "dimension_id").
			Unique(),
		index.Fields("completed"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisEvent records one free-text analysis blended into a dimension's
// running estimate.
type AnalysisEvent struct {
	ent.Schema
}

func (AnalysisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalysisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("session_id").
			NotEmpty(),
		field.String("dimension_id").
			NotEmpty(),
		field.String("item_id").
			NotEmpty().
			Comment("The open item the text answered"),
		field.Float("external_theta").
			Comment("Analyzer-reported trait estimate"),
		field.Float("external_confidence").
			Comment("Analyzer-reported confidence in [0, 1]"),
		field.Float("theta_before"),
		field.Float("theta_after").
			Comment("Running estimate after the blend"),
	}
}

func (AnalysisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("dimension_id"),
	}
}

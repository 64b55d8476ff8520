package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single scored answer within an assessment session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("session_id").
			NotEmpty(),
		field.String("dimension_id").
			NotEmpty(),
		field.String("item_id").
			NotEmpty(),
		field.String("item_type").
			NotEmpty().
			Comment("likert, forced_choice, or scenario"),
		field.String("raw_answer").
			Comment("The submitted value: scale digit or option code"),
		field.Int("keyed").
			Comment("Dichotomized outcome: 1 keyed, 0 non-keyed"),
		field.Float("theta").
			Comment("EAP estimate after this answer"),
		field.Float("standard_error").
			Comment("Posterior standard error after this answer"),
		field.Float("confidence").
			Comment("Confidence after this answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("dimension_id"),
		index.Fields("user_id", "dimension_id"),
	}
}

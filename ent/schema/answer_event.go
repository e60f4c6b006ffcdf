package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent is one answered question, appended per answer. The event
// log is the audit trail behind the snapshot state; it is never read
// back to rebuild state.
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
			NotEmpty().
			Comment("Groups the answers of one quiz sitting"),
		field.String("question_id").
			NotEmpty(),
		field.String("category").
			NotEmpty(),
		field.Bool("correct"),
		field.Bool("is_review").
			Default(false).
			Comment("Served from the due-review set"),
		field.Int("response_ms").
			Default(0).
			Comment("Milliseconds to answer, 0 if unmeasured"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
		index.Fields("question_id"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is one true/false question in the bank.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("qid").
			NotEmpty().
			Unique().
			Comment("Stable question identifier from the bank"),
		field.Text("text").
			NotEmpty().
			Comment("The question statement"),
		field.Bool("answer").
			Comment("Whether the statement is true"),
		field.Text("explanation").
			Default("").
			Comment("Why the answer is what it is"),
		field.Text("ai_explanation").
			Default("").
			Comment("Optional longer AI-written explanation"),
		field.JSON("references", map[string]string{}).
			Optional().
			Comment("Source references, title to citation"),
		field.String("category").
			NotEmpty(),
		field.String("subcategory").
			Default(""),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
		index.Fields("category", "subcategory"),
	}
}

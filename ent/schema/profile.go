package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile stores one learner's full state as a JSON snapshot, keyed by
// user id. The engine mutates state in memory and saves it back after
// every answer; last writer wins.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Comment("Opaque learner identifier"),
		field.String("display_name").
			Comment("Name shown on leaderboards"),
		field.JSON("data", map[string]any{}).
			Comment("Full learner state as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the state was last saved"),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestProgress is one learner's mutable state for one quest. Keying by
// (learner_id, quest_id) keeps every learner's progress through the shared
// curriculum independent.
type QuestProgress struct {
	ent.Schema
}

func (QuestProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty(),
		field.Int("quest_id"),
		field.String("status").
			NotEmpty().
			Comment("locked, available, or completed; only ever moves forward"),
		field.Int("stars").
			NonNegative().
			Default(0),
	}
}

func (QuestProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "quest_id").Unique(),
		index.Fields("learner_id"),
	}
}

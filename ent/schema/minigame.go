package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Minigame is the optional scored check gating a quest's completion.
// At most one per quest.
type Minigame struct {
	ent.Schema
}

func (Minigame) Fields() []ent.Field {
	return []ent.Field{
		field.Int("quest_id").
			Comment("Gated quest"),
		field.String("title").
			NotEmpty(),
		field.String("game_type").
			NotEmpty().
			Comment("matching, fill-in-blank, multiple-choice, or image-association"),
		field.String("description"),
		field.String("difficulty").
			NotEmpty(),
		field.Bool("enabled").
			Default(true),
		field.Int("time_limit_secs").
			Default(0).
			Comment("0 = untimed; countdown is enforced by the UI"),
		field.Int("required_score").
			Range(0, 100).
			Comment("Percentage needed to pass"),
	}
}

func (Minigame) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quest_id").Unique(),
	}
}

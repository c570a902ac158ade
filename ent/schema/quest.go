package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Quest is one node of the curriculum graph. Rows are created once at seed
// time and never deleted; per-learner mutable state lives in QuestProgress.
type Quest struct {
	ent.Schema
}

func (Quest) Fields() []ent.Field {
	return []ent.Field{
		field.Int("seq").
			Comment("Creation order, for stable listing"),
		field.String("title").
			NotEmpty().
			Unique().
			Comment("Display name; seed-time prerequisite lookup key only"),
		field.String("quest_type").
			NotEmpty().
			Comment("lesson, challenge, boss, or concept"),
		field.String("category").
			NotEmpty().
			Comment("foundation, technique, flavor, cuisine, or advanced"),
		field.String("cuisine_type").
			Optional().
			Comment("french, asian, or italian; empty when not cuisine-specific"),
		field.Int("max_stars").
			NonNegative().
			Comment("Reward ceiling"),
		field.String("initial_status").
			NotEmpty().
			Comment("Status a new learner starts with for this quest"),
		field.Int("initial_stars").
			Default(0).
			Comment("Stars a new learner starts with for this quest"),
		field.JSON("prerequisites", []int{}).
			Comment("Quest ids that must complete before this one unlocks"),
	}
}

func (Quest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("seq"),
	}
}

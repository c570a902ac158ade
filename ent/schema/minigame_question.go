package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MinigameQuestion is one scored item in a minigame. Only the payload
// columns for the question's own type carry data.
type MinigameQuestion struct {
	ent.Schema
}

func (MinigameQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.Int("minigame_id").
			Comment("Owning minigame"),
		field.Int("seq").
			Comment("Presentation order within the minigame"),
		field.String("question_type").
			NotEmpty(),
		field.String("question_text").
			NotEmpty(),
		field.JSON("left_items", []string{}).
			Optional(),
		field.JSON("right_items", []string{}).
			Optional(),
		field.JSON("correct_matches", []map[string]int{}).
			Optional().
			Comment("Pairs of leftIndex/rightIndex"),
		field.String("blank_text").
			Optional(),
		field.JSON("correct_answers", []string{}).
			Optional(),
		field.JSON("options", []string{}).
			Optional(),
		field.Int("correct_option_index").
			Default(0),
		field.String("image_url").
			Optional(),
		field.JSON("associated_terms", []string{}).
			Optional(),
		field.String("explanation").
			Optional(),
		field.Int("points").
			NonNegative().
			Default(0),
	}
}

func (MinigameQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("minigame_id"),
		index.Fields("minigame_id", "seq").Unique(),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// MinigameAttempt is an immutable record of one learner's pass through a
// minigame. Rows are append-only and never mutated.
type MinigameAttempt struct {
	ent.Schema
}

func (MinigameAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New),
		field.Int("minigame_id"),
		field.Int("quest_id"),
		field.String("learner_id").
			NotEmpty(),
		field.Int("score").
			Range(0, 100),
		field.Int("total_questions").
			NonNegative(),
		field.Int("correct_answers").
			NonNegative(),
		field.Int("time_spent_secs").
			NonNegative(),
		field.Bool("passed"),
		field.Time("completed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (MinigameAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("learner_id", "quest_id"),
		index.Fields("minigame_id"),
	}
}

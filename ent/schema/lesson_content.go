package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonContent is the teaching material attached to a quest.
type LessonContent struct {
	ent.Schema
}

func (LessonContent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("quest_id").
			Comment("Owning quest"),
		field.String("emoji"),
		field.String("heading").
			NotEmpty(),
		field.String("description").
			NotEmpty(),
		field.JSON("steps", []string{}),
		field.JSON("hints", []string{}),
	}
}

func (LessonContent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quest_id").Unique(),
	}
}

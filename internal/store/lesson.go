package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cookquest/ent"
	"github.com/abhisek/cookquest/ent/lessoncontent"
)

// Lesson is the teaching content attached to a quest.
type Lesson struct {
	QuestID     int
	Emoji       string
	Heading     string
	Description string
	Steps       []string
	Hints       []string
}

// LessonRepo reads lesson content.
type LessonRepo interface {
	// ByQuest returns the lesson for a quest, or nil when none exists.
	ByQuest(ctx context.Context, questID int) (*Lesson, error)
}

type lessonRepo struct {
	client *ent.Client
}

func (r *lessonRepo) ByQuest(ctx context.Context, questID int) (*Lesson, error) {
	row, err := r.client.LessonContent.Query().
		Where(lessoncontent.QuestID(questID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lesson for quest %d: %w", questID, err)
	}
	return &Lesson{
		QuestID:     row.QuestID,
		Emoji:       row.Emoji,
		Heading:     row.Heading,
		Description: row.Description,
		Steps:       row.Steps,
		Hints:       row.Hints,
	}, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cookquest/ent"
	"github.com/abhisek/cookquest/ent/quest"
	"github.com/abhisek/cookquest/internal/questgraph"
)

// QuestRepo reads the immutable curriculum graph. Quest rows are written
// only by seeding; the unlock engine mutates per-learner progress, never
// the quests themselves.
type QuestRepo interface {
	// ListAll returns every quest in creation order.
	ListAll(ctx context.Context) ([]questgraph.Quest, error)

	// Get returns one quest, or *questgraph.NotFoundError.
	Get(ctx context.Context, id int) (questgraph.Quest, error)

	// Count returns the number of seeded quests.
	Count(ctx context.Context) (int, error)

	// Graph builds the validated unlock graph from the stored quests.
	Graph(ctx context.Context) (*questgraph.Graph, error)
}

type questRepo struct {
	client *ent.Client
}

func (r *questRepo) ListAll(ctx context.Context) ([]questgraph.Quest, error) {
	rows, err := r.client.Quest.Query().
		Order(ent.Asc(quest.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quests: %w", err)
	}
	quests := make([]questgraph.Quest, 0, len(rows))
	for _, row := range rows {
		quests = append(quests, entQuestToQuest(row))
	}
	return quests, nil
}

func (r *questRepo) Get(ctx context.Context, id int) (questgraph.Quest, error) {
	row, err := r.client.Quest.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return questgraph.Quest{}, &questgraph.NotFoundError{QuestID: id}
		}
		return questgraph.Quest{}, fmt.Errorf("get quest %d: %w", id, err)
	}
	return entQuestToQuest(row), nil
}

func (r *questRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Quest.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count quests: %w", err)
	}
	return n, nil
}

func (r *questRepo) Graph(ctx context.Context) (*questgraph.Graph, error) {
	quests, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return questgraph.New(quests)
}

func entQuestToQuest(row *ent.Quest) questgraph.Quest {
	return questgraph.Quest{
		ID:            row.ID,
		Title:         row.Title,
		Type:          questgraph.QuestType(row.QuestType),
		Category:      questgraph.Category(row.Category),
		CuisineType:   questgraph.CuisineType(row.CuisineType),
		MaxStars:      row.MaxStars,
		Prerequisites: row.Prerequisites,
	}
}

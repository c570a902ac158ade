package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cookquest/ent"
	entquest "github.com/abhisek/cookquest/ent/quest"
	"github.com/abhisek/cookquest/ent/questprogress"
	"github.com/abhisek/cookquest/internal/questgraph"
)

// Progress is one learner's state for one quest.
type Progress struct {
	QuestID int
	Status  questgraph.Status
	Stars   int
}

// ProgressRepo manages per-learner quest state. All multi-row writes run
// inside one transaction so a completion and its cascade are observed
// together or not at all.
type ProgressRepo interface {
	// InitLearner creates one progress row per quest from the quests'
	// initial status and stars. No-op if the learner already has rows.
	InitLearner(ctx context.Context, learnerID string) error

	// ByLearner returns the learner's progress rows, quest creation order.
	ByLearner(ctx context.Context, learnerID string) ([]Progress, error)

	// Statuses returns the learner's status map keyed by quest id.
	Statuses(ctx context.Context, learnerID string) (map[int]questgraph.Status, error)

	// ApplyChanges writes an unlock engine change list atomically.
	ApplyChanges(ctx context.Context, learnerID string, changes []questgraph.Change) error

	// DeleteLearner removes every progress row for a learner. The next
	// InitLearner starts them over from the quests' initial state.
	DeleteLearner(ctx context.Context, learnerID string) (int, error)
}

type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) InitLearner(ctx context.Context, learnerID string) error {
	n, err := r.client.QuestProgress.Query().
		Where(questprogress.LearnerID(learnerID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count progress for %s: %w", learnerID, err)
	}
	if n > 0 {
		return nil
	}

	quests, err := r.client.Quest.Query().
		Order(ent.Asc(entquest.FieldSeq)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("list quests: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin init tx: %w", err)
	}
	builders := make([]*ent.QuestProgressCreate, 0, len(quests))
	for _, q := range quests {
		builders = append(builders, tx.QuestProgress.Create().
			SetLearnerID(learnerID).
			SetQuestID(q.ID).
			SetStatus(q.InitialStatus).
			SetStars(q.InitialStars))
	}
	if _, err := tx.QuestProgress.CreateBulk(builders...).Save(ctx); err != nil {
		return rollback(tx, fmt.Errorf("init learner %s: %w", learnerID, err))
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit init tx: %w", err)
	}
	return nil
}

func (r *progressRepo) ByLearner(ctx context.Context, learnerID string) ([]Progress, error) {
	rows, err := r.client.QuestProgress.Query().
		Where(questprogress.LearnerID(learnerID)).
		Order(ent.Asc(questprogress.FieldQuestID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("progress for %s: %w", learnerID, err)
	}
	result := make([]Progress, 0, len(rows))
	for _, row := range rows {
		result = append(result, Progress{
			QuestID: row.QuestID,
			Status:  questgraph.Status(row.Status),
			Stars:   row.Stars,
		})
	}
	return result, nil
}

func (r *progressRepo) Statuses(ctx context.Context, learnerID string) (map[int]questgraph.Status, error) {
	rows, err := r.ByLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	statuses := make(map[int]questgraph.Status, len(rows))
	for _, row := range rows {
		statuses[row.QuestID] = row.Status
	}
	return statuses, nil
}

func (r *progressRepo) ApplyChanges(ctx context.Context, learnerID string, changes []questgraph.Change) error {
	if len(changes) == 0 {
		return nil
	}
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin apply tx: %w", err)
	}
	for _, c := range changes {
		upd := tx.QuestProgress.Update().
			Where(
				questprogress.LearnerID(learnerID),
				questprogress.QuestID(c.QuestID),
			).
			SetStatus(string(c.To))
		if c.SetStars {
			upd.SetStars(c.Stars)
		}
		n, err := upd.Save(ctx)
		if err != nil {
			return rollback(tx, fmt.Errorf("apply change for quest %d: %w", c.QuestID, err))
		}
		if n == 0 {
			return rollback(tx, &questgraph.NotFoundError{QuestID: c.QuestID})
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit apply tx: %w", err)
	}
	return nil
}

func (r *progressRepo) DeleteLearner(ctx context.Context, learnerID string) (int, error) {
	n, err := r.client.QuestProgress.Delete().
		Where(questprogress.LearnerID(learnerID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete progress for %s: %w", learnerID, err)
	}
	return n, nil
}

// rollback rolls the transaction back and keeps the original error.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}

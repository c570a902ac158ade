package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/cookquest/ent"
	"github.com/abhisek/cookquest/ent/minigameattempt"
)

// Attempt is an immutable record of one learner's pass through a minigame.
type Attempt struct {
	ID             uuid.UUID
	MinigameID     int
	QuestID        int
	LearnerID      string
	Score          int
	TotalQuestions int
	CorrectAnswers int
	TimeSpentSecs  int
	Passed         bool
	CompletedAt    time.Time
}

// AttemptRepo appends and reads attempt records. Attempts are append-only;
// there is no update or delete.
type AttemptRepo interface {
	// Append stores a new attempt and returns its id.
	Append(ctx context.Context, a Attempt) (uuid.UUID, error)

	// ByLearner returns the learner's attempts, newest first.
	ByLearner(ctx context.Context, learnerID string) ([]Attempt, error)

	// ByQuest returns the learner's attempts for one quest, newest first.
	ByQuest(ctx context.Context, learnerID string, questID int) ([]Attempt, error)
}

type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Append(ctx context.Context, a Attempt) (uuid.UUID, error) {
	row, err := r.client.MinigameAttempt.Create().
		SetMinigameID(a.MinigameID).
		SetQuestID(a.QuestID).
		SetLearnerID(a.LearnerID).
		SetScore(a.Score).
		SetTotalQuestions(a.TotalQuestions).
		SetCorrectAnswers(a.CorrectAnswers).
		SetTimeSpentSecs(a.TimeSpentSecs).
		SetPassed(a.Passed).
		Save(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("append attempt: %w", err)
	}
	return row.ID, nil
}

func (r *attemptRepo) ByLearner(ctx context.Context, learnerID string) ([]Attempt, error) {
	rows, err := r.client.MinigameAttempt.Query().
		Where(minigameattempt.LearnerID(learnerID)).
		Order(ent.Desc(minigameattempt.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("attempts for %s: %w", learnerID, err)
	}
	return entAttemptsToAttempts(rows), nil
}

func (r *attemptRepo) ByQuest(ctx context.Context, learnerID string, questID int) ([]Attempt, error) {
	rows, err := r.client.MinigameAttempt.Query().
		Where(
			minigameattempt.LearnerID(learnerID),
			minigameattempt.QuestID(questID),
		).
		Order(ent.Desc(minigameattempt.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("attempts for %s quest %d: %w", learnerID, questID, err)
	}
	return entAttemptsToAttempts(rows), nil
}

func entAttemptsToAttempts(rows []*ent.MinigameAttempt) []Attempt {
	result := make([]Attempt, 0, len(rows))
	for _, row := range rows {
		result = append(result, Attempt{
			ID:             row.ID,
			MinigameID:     row.MinigameID,
			QuestID:        row.QuestID,
			LearnerID:      row.LearnerID,
			Score:          row.Score,
			TotalQuestions: row.TotalQuestions,
			CorrectAnswers: row.CorrectAnswers,
			TimeSpentSecs:  row.TimeSpentSecs,
			Passed:         row.Passed,
			CompletedAt:    row.CompletedAt,
		})
	}
	return result
}

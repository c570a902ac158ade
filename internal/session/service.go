// Package session coordinates a learner's interaction with the quest map:
// reading the board, completing quests through the unlock engine, and
// gating completions behind minigame attempts.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/cookquest/internal/minigame"
	"github.com/abhisek/cookquest/internal/questgraph"
	"github.com/abhisek/cookquest/internal/store"
)

// Service is the mutation path for learner progress. All writes go through
// the unlock engine and are applied in one store transaction.
type Service struct {
	quests    store.QuestRepo
	lessons   store.LessonRepo
	minigames store.MinigameRepo
	progress  store.ProgressRepo
	attempts  store.AttemptRepo
}

// NewService wires a service over the given store.
func NewService(s *store.Store) *Service {
	return &Service{
		quests:    s.QuestRepo(),
		lessons:   s.LessonRepo(),
		minigames: s.MinigameRepo(),
		progress:  s.ProgressRepo(),
		attempts:  s.AttemptRepo(),
	}
}

// BoardEntry is one quest joined with the learner's state for it.
type BoardEntry struct {
	Quest  questgraph.Quest
	Status questgraph.Status
	Stars  int
}

// Board returns the learner's view of the whole quest map in creation
// order, initializing the learner's progress rows on first touch.
func (s *Service) Board(ctx context.Context, learnerID string) ([]BoardEntry, error) {
	if err := s.progress.InitLearner(ctx, learnerID); err != nil {
		return nil, err
	}
	quests, err := s.quests.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.progress.ByLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	byQuest := make(map[int]store.Progress, len(rows))
	for _, row := range rows {
		byQuest[row.QuestID] = row
	}

	board := make([]BoardEntry, 0, len(quests))
	for _, q := range quests {
		p := byQuest[q.ID]
		board = append(board, BoardEntry{Quest: q, Status: p.Status, Stars: p.Stars})
	}
	return board, nil
}

// CompleteQuest marks a quest completed for the learner and cascades
// unlocks, applying every resulting status write in one transaction.
// Errors from the engine (*questgraph.NotFoundError,
// *questgraph.ValidationError) propagate unchanged.
func (s *Service) CompleteQuest(ctx context.Context, learnerID string, questID, stars int) ([]questgraph.Change, error) {
	if err := s.progress.InitLearner(ctx, learnerID); err != nil {
		return nil, err
	}
	graph, err := s.quests.Graph(ctx)
	if err != nil {
		return nil, err
	}
	statuses, err := s.progress.Statuses(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	changes, err := graph.Complete(statuses, questID, stars)
	if err != nil {
		return nil, err
	}
	if err := s.progress.ApplyChanges(ctx, learnerID, changes); err != nil {
		return nil, err
	}
	return changes, nil
}

// Lesson returns the lesson content for a quest. The quest must exist
// (*questgraph.NotFoundError otherwise); a quest without a lesson returns
// nil.
func (s *Service) Lesson(ctx context.Context, questID int) (*store.Lesson, error) {
	if _, err := s.quests.Get(ctx, questID); err != nil {
		return nil, err
	}
	return s.lessons.ByQuest(ctx, questID)
}

// MinigameForQuest returns the minigame gating a quest together with its
// questions. The quest must exist; a quest without a minigame returns
// (nil, nil, nil).
func (s *Service) MinigameForQuest(ctx context.Context, questID int) (*minigame.Minigame, []minigame.Question, error) {
	if _, err := s.quests.Get(ctx, questID); err != nil {
		return nil, nil, err
	}
	mg, err := s.minigames.ByQuest(ctx, questID)
	if err != nil || mg == nil {
		return nil, nil, err
	}
	questions, err := s.minigames.Questions(ctx, mg.ID)
	if err != nil {
		return nil, nil, err
	}
	return mg, questions, nil
}

// AttemptResult is the outcome of one minigame submission.
type AttemptResult struct {
	AttemptID     uuid.UUID
	Score         int
	Correct       int
	Total         int
	RequiredScore int
	Passed        bool
	StarsAwarded  int
	Changes       []questgraph.Change
}

// SubmitAttempt scores a learner's answer set against the quest's
// minigame, records the attempt, and — only on a pass — completes the
// quest through the unlock engine. A failed attempt records history but
// leaves quest state untouched, so the learner may retry.
//
// Answers are keyed by question position; missing positions score as
// incorrect, which is how a timer-expiry auto-submission arrives.
func (s *Service) SubmitAttempt(ctx context.Context, learnerID string, questID int, answers map[int]minigame.Answer, timeSpentSecs int) (*AttemptResult, error) {
	quest, err := s.quests.Get(ctx, questID)
	if err != nil {
		return nil, err
	}
	mg, err := s.minigames.ByQuest(ctx, questID)
	if err != nil {
		return nil, err
	}
	if mg == nil {
		return nil, &questgraph.NotFoundError{QuestID: questID}
	}
	questions, err := s.minigames.Questions(ctx, mg.ID)
	if err != nil {
		return nil, err
	}

	r := minigame.Score(questions, answers, mg.RequiredScore)

	attemptID, err := s.attempts.Append(ctx, store.Attempt{
		MinigameID:     mg.ID,
		QuestID:        questID,
		LearnerID:      learnerID,
		Score:          r.Score,
		TotalQuestions: r.Total,
		CorrectAnswers: r.Correct,
		TimeSpentSecs:  timeSpentSecs,
		Passed:         r.Passed,
	})
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	result := &AttemptResult{
		AttemptID:     attemptID,
		Score:         r.Score,
		Correct:       r.Correct,
		Total:         r.Total,
		RequiredScore: mg.RequiredScore,
		Passed:        r.Passed,
	}
	if !r.Passed {
		return result, nil
	}

	result.StarsAwarded = starsForScore(r.Score, quest.MaxStars)
	changes, err := s.CompleteQuest(ctx, learnerID, questID, result.StarsAwarded)
	if err != nil {
		return nil, err
	}
	result.Changes = changes
	return result, nil
}

// Attempts returns the learner's full attempt history, newest first.
func (s *Service) Attempts(ctx context.Context, learnerID string) ([]store.Attempt, error) {
	return s.attempts.ByLearner(ctx, learnerID)
}

// starsForScore converts a passing score into a star award, scaling the
// percentage to the quest's ceiling with a floor of one star for any pass.
func starsForScore(score, maxStars int) int {
	if maxStars == 0 {
		return 0
	}
	stars := (score*maxStars + 50) / 100 // round half up
	if stars < 1 {
		stars = 1
	}
	if stars > maxStars {
		stars = maxStars
	}
	return stars
}

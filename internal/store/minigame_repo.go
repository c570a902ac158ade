package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cookquest/ent"
	entminigame "github.com/abhisek/cookquest/ent/minigame"
	"github.com/abhisek/cookquest/ent/minigamequestion"
	"github.com/abhisek/cookquest/internal/minigame"
)

// MinigameRepo reads minigames and their question banks.
type MinigameRepo interface {
	// ByQuest returns the minigame gating a quest, or nil when the quest
	// has none.
	ByQuest(ctx context.Context, questID int) (*minigame.Minigame, error)

	// Questions returns the minigame's questions in presentation order.
	Questions(ctx context.Context, minigameID int) ([]minigame.Question, error)
}

type minigameRepo struct {
	client *ent.Client
}

func (r *minigameRepo) ByQuest(ctx context.Context, questID int) (*minigame.Minigame, error) {
	row, err := r.client.Minigame.Query().
		Where(entminigame.QuestID(questID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("minigame for quest %d: %w", questID, err)
	}
	return &minigame.Minigame{
		ID:            row.ID,
		QuestID:       row.QuestID,
		Title:         row.Title,
		Type:          minigame.Type(row.GameType),
		Description:   row.Description,
		Difficulty:    minigame.Difficulty(row.Difficulty),
		Enabled:       row.Enabled,
		TimeLimitSecs: row.TimeLimitSecs,
		RequiredScore: row.RequiredScore,
	}, nil
}

func (r *minigameRepo) Questions(ctx context.Context, minigameID int) ([]minigame.Question, error) {
	rows, err := r.client.MinigameQuestion.Query().
		Where(minigamequestion.MinigameID(minigameID)).
		Order(ent.Asc(minigamequestion.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("questions for minigame %d: %w", minigameID, err)
	}
	questions := make([]minigame.Question, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, entQuestionToQuestion(row))
	}
	return questions, nil
}

func entQuestionToQuestion(row *ent.MinigameQuestion) minigame.Question {
	matches := make([]minigame.MatchPair, 0, len(row.CorrectMatches))
	for _, m := range row.CorrectMatches {
		matches = append(matches, minigame.MatchPair{Left: m["leftIndex"], Right: m["rightIndex"]})
	}
	return minigame.Question{
		ID:                 row.ID,
		Type:               minigame.Type(row.QuestionType),
		Text:               row.QuestionText,
		LeftItems:          row.LeftItems,
		RightItems:         row.RightItems,
		CorrectMatches:     matches,
		BlankText:          row.BlankText,
		CorrectAnswers:     row.CorrectAnswers,
		Options:            row.Options,
		CorrectOptionIndex: row.CorrectOptionIndex,
		ImageURL:           row.ImageURL,
		AssociatedTerms:    row.AssociatedTerms,
		Explanation:        row.Explanation,
		Points:             row.Points,
	}
}

// matchPairsToMaps converts match pairs to the JSON column representation.
func matchPairsToMaps(pairs []minigame.MatchPair) []map[string]int {
	out := make([]map[string]int, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, map[string]int{"leftIndex": p.Left, "rightIndex": p.Right})
	}
	return out
}

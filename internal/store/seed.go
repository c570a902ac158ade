package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cookquest/ent"
	"github.com/abhisek/cookquest/internal/curriculum"
)

// Seed populates an empty store from a curriculum definition and returns
// the number of quests inserted. If the store already holds any quest the
// call is a silent no-op returning 0: seeding never duplicates or
// overwrites existing progress.
//
// Insertion is two-phase because quest ids are assigned by the store:
// all quests go in first (capturing a title -> id map), then prerequisite
// edges are patched in by id. Everything runs in one transaction, so a
// validation or insert failure leaves no partial graph behind.
func (s *Store) Seed(ctx context.Context, cur *curriculum.Curriculum) (int, error) {
	if err := cur.Validate(); err != nil {
		return 0, err
	}

	existing, err := s.client.Quest.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count quests: %w", err)
	}
	if existing > 0 {
		return 0, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin seed tx: %w", err)
	}

	inserted, err := seedTx(ctx, tx, cur)
	if err != nil {
		return 0, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed tx: %w", err)
	}
	return inserted, nil
}

func seedTx(ctx context.Context, tx *ent.Tx, cur *curriculum.Curriculum) (int, error) {
	// Phase one: insert quests with empty prerequisite lists, capturing
	// the id each title was assigned.
	idByTitle := make(map[string]int, len(cur.Quests))
	for i, def := range cur.Quests {
		row, err := tx.Quest.Create().
			SetSeq(i).
			SetTitle(def.Title).
			SetQuestType(string(def.Type)).
			SetCategory(string(def.Category)).
			SetCuisineType(string(def.CuisineType)).
			SetMaxStars(def.MaxStars).
			SetInitialStatus(string(def.InitialStatus)).
			SetInitialStars(def.Stars).
			SetPrerequisites([]int{}).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("insert quest %q: %w", def.Title, err)
		}
		idByTitle[def.Title] = row.ID
	}

	// Phase two: patch prerequisite edges now that every id exists.
	for _, def := range cur.Quests {
		if len(def.Prerequisites) == 0 {
			continue
		}
		prereqIDs := make([]int, 0, len(def.Prerequisites))
		for _, title := range def.Prerequisites {
			prereqIDs = append(prereqIDs, idByTitle[title])
		}
		err := tx.Quest.UpdateOneID(idByTitle[def.Title]).
			SetPrerequisites(prereqIDs).
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("patch prerequisites of %q: %w", def.Title, err)
		}
	}

	// Lesson content and minigames reference quests by the captured ids.
	for _, def := range cur.Quests {
		questID := idByTitle[def.Title]
		if def.Lesson != nil {
			err := tx.LessonContent.Create().
				SetQuestID(questID).
				SetEmoji(def.Lesson.Emoji).
				SetHeading(def.Lesson.Heading).
				SetDescription(def.Lesson.Description).
				SetSteps(def.Lesson.Steps).
				SetHints(def.Lesson.Hints).
				Exec(ctx)
			if err != nil {
				return 0, fmt.Errorf("insert lesson for %q: %w", def.Title, err)
			}
		}
		if def.Minigame != nil {
			if err := seedMinigame(ctx, tx, questID, def); err != nil {
				return 0, err
			}
		}
	}

	return len(cur.Quests), nil
}

func seedMinigame(ctx context.Context, tx *ent.Tx, questID int, def curriculum.QuestDef) error {
	mg := def.Minigame
	row, err := tx.Minigame.Create().
		SetQuestID(questID).
		SetTitle(mg.Title).
		SetGameType(string(mg.Type)).
		SetDescription(mg.Description).
		SetDifficulty(string(mg.Difficulty)).
		SetEnabled(mg.Enabled).
		SetTimeLimitSecs(mg.TimeLimitSecs).
		SetRequiredScore(mg.RequiredScore).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert minigame for %q: %w", def.Title, err)
	}
	for i, qn := range mg.Questions {
		err := tx.MinigameQuestion.Create().
			SetMinigameID(row.ID).
			SetSeq(i).
			SetQuestionType(string(qn.Type)).
			SetQuestionText(qn.Text).
			SetLeftItems(qn.LeftItems).
			SetRightItems(qn.RightItems).
			SetCorrectMatches(matchPairsToMaps(qn.CorrectMatches)).
			SetBlankText(qn.BlankText).
			SetCorrectAnswers(qn.CorrectAnswers).
			SetOptions(qn.Options).
			SetCorrectOptionIndex(qn.CorrectOptionIndex).
			SetImageURL(qn.ImageURL).
			SetAssociatedTerms(qn.AssociatedTerms).
			SetExplanation(qn.Explanation).
			SetPoints(qn.Points).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("insert question %d for %q: %w", i, def.Title, err)
		}
	}
	return nil
}

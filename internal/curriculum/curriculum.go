package curriculum

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/abhisek/cookquest/internal/minigame"
	"github.com/abhisek/cookquest/internal/questgraph"
)

// Curriculum is the authored quest map definition. Quests reference their
// prerequisites by title; titles are a seed-time lookup key only and are
// resolved to stable store ids during seeding. The runtime engine never
// sees titles as identifiers.
type Curriculum struct {
	Name   string     `json:"name" validate:"required"`
	Quests []QuestDef `json:"quests" validate:"required,min=1,dive"`
}

// QuestDef defines one quest node plus its optional lesson and minigame.
type QuestDef struct {
	Title         string                 `json:"title" validate:"required"`
	Type          questgraph.QuestType   `json:"type" validate:"required,oneof=lesson challenge boss concept"`
	Category      questgraph.Category    `json:"category" validate:"required,oneof=foundation technique flavor cuisine advanced"`
	CuisineType   questgraph.CuisineType `json:"cuisineType,omitempty" validate:"omitempty,oneof=french asian italian"`
	InitialStatus questgraph.Status      `json:"initialStatus" validate:"required,oneof=locked available completed"`
	Stars         int                    `json:"stars" validate:"gte=0"`
	MaxStars      int                    `json:"maxStars" validate:"gte=0"`
	Prerequisites []string               `json:"prerequisites,omitempty"`
	Lesson        *LessonDef             `json:"lesson,omitempty"`
	Minigame      *MinigameDef           `json:"minigame,omitempty"`
}

// LessonDef is the teaching content shown when a quest is opened.
type LessonDef struct {
	Emoji       string   `json:"emoji"`
	Heading     string   `json:"heading" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Steps       []string `json:"steps" validate:"required,min=1"`
	Hints       []string `json:"hints,omitempty"`
}

// MinigameDef defines the scored check gating a quest's completion.
type MinigameDef struct {
	Title         string              `json:"title" validate:"required"`
	Type          minigame.Type       `json:"type" validate:"required,oneof=matching fill-in-blank multiple-choice image-association"`
	Description   string              `json:"description"`
	Difficulty    minigame.Difficulty `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Enabled       bool                `json:"enabled"`
	TimeLimitSecs int                 `json:"timeLimit,omitempty" validate:"gte=0"`
	RequiredScore int                 `json:"requiredScore" validate:"gte=0,lte=100"`
	Questions     []QuestionDef       `json:"questions" validate:"required,min=1,dive"`
}

// QuestionDef defines one question; only the payload for its own type is
// populated.
type QuestionDef struct {
	Type minigame.Type `json:"type" validate:"required,oneof=matching fill-in-blank multiple-choice image-association"`
	Text string        `json:"text" validate:"required"`

	LeftItems      []string             `json:"leftItems,omitempty"`
	RightItems     []string             `json:"rightItems,omitempty"`
	CorrectMatches []minigame.MatchPair `json:"correctMatches,omitempty"`

	BlankText      string   `json:"blankText,omitempty"`
	CorrectAnswers []string `json:"correctAnswers,omitempty"`

	Options            []string `json:"options,omitempty"`
	CorrectOptionIndex int      `json:"correctOptionIndex,omitempty"`

	ImageURL        string   `json:"imageUrl,omitempty"`
	AssociatedTerms []string `json:"associatedTerms,omitempty"`

	Explanation string `json:"explanation,omitempty"`
	Points      int    `json:"points" validate:"gte=0"`
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the curriculum for structural soundness before seeding:
// field-level constraints, unique titles, resolvable prerequisite titles,
// an acyclic prerequisite relation (*questgraph.CycleError on violation),
// sane initial statuses, and per-type question payloads. The store is never
// touched when validation fails.
func (c *Curriculum) Validate() error {
	if err := structValidator.Struct(c); err != nil {
		return fmt.Errorf("curriculum fields: %w", err)
	}

	var errs []string

	idxByTitle := make(map[string]int, len(c.Quests))
	for i, q := range c.Quests {
		if _, dup := idxByTitle[q.Title]; dup {
			errs = append(errs, fmt.Sprintf("duplicate quest title %q", q.Title))
			continue
		}
		idxByTitle[q.Title] = i
	}

	for _, q := range c.Quests {
		for _, p := range q.Prerequisites {
			if _, ok := idxByTitle[p]; !ok {
				errs = append(errs, fmt.Sprintf("quest %q references unknown prerequisite %q", q.Title, p))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}

	// Cycle check on the title graph, using synthetic ids in authoring
	// order. A cycle surfaces as *questgraph.CycleError.
	synthetic := make([]questgraph.Quest, len(c.Quests))
	for i, q := range c.Quests {
		prereqs := make([]int, 0, len(q.Prerequisites))
		for _, p := range q.Prerequisites {
			prereqs = append(prereqs, idxByTitle[p]+1)
		}
		synthetic[i] = questgraph.Quest{
			ID:            i + 1,
			Title:         q.Title,
			MaxStars:      q.MaxStars,
			Prerequisites: prereqs,
		}
	}
	if err := questgraph.Validate(synthetic); err != nil {
		return err
	}

	for _, q := range c.Quests {
		if len(q.Prerequisites) == 0 && q.InitialStatus == questgraph.StatusLocked {
			errs = append(errs, fmt.Sprintf("quest %q has no prerequisites but is seeded locked; it could never unlock", q.Title))
		}
		if q.InitialStatus != questgraph.StatusLocked {
			for _, p := range q.Prerequisites {
				if c.Quests[idxByTitle[p]].InitialStatus != questgraph.StatusCompleted {
					errs = append(errs, fmt.Sprintf("quest %q is seeded %s but prerequisite %q is not seeded completed", q.Title, q.InitialStatus, p))
				}
			}
		}
		if q.Stars > q.MaxStars {
			errs = append(errs, fmt.Sprintf("quest %q: stars %d exceeds maxStars %d", q.Title, q.Stars, q.MaxStars))
		}
		if q.Minigame != nil {
			for i, qn := range q.Minigame.Questions {
				if err := validateQuestionPayload(qn); err != nil {
					errs = append(errs, fmt.Sprintf("quest %q minigame question %d: %v", q.Title, i, err))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// validateQuestionPayload checks that the fields for the question's own
// type are present and internally consistent.
func validateQuestionPayload(q QuestionDef) error {
	switch q.Type {
	case minigame.TypeMatching:
		if len(q.LeftItems) == 0 || len(q.RightItems) == 0 {
			return fmt.Errorf("matching question needs left and right items")
		}
		if len(q.CorrectMatches) == 0 {
			return fmt.Errorf("matching question needs correct matches")
		}
		for _, m := range q.CorrectMatches {
			if m.Left < 0 || m.Left >= len(q.LeftItems) || m.Right < 0 || m.Right >= len(q.RightItems) {
				return fmt.Errorf("match pair (%d, %d) out of range", m.Left, m.Right)
			}
		}
	case minigame.TypeFillInBlank:
		if len(q.CorrectAnswers) == 0 {
			return fmt.Errorf("fill-in-blank question needs accepted answers")
		}
	case minigame.TypeMultipleChoice:
		if len(q.Options) < 2 {
			return fmt.Errorf("multiple-choice question needs at least 2 options")
		}
		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
			return fmt.Errorf("correct option index %d out of range", q.CorrectOptionIndex)
		}
	case minigame.TypeImageAssociation:
		if len(q.AssociatedTerms) == 0 {
			return fmt.Errorf("image-association question needs associated terms")
		}
	}
	return nil
}

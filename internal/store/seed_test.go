package store

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/cookquest/internal/curriculum"
	"github.com/abhisek/cookquest/internal/questgraph"
)

func TestSeed_InsertsCurriculum(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	quests, err := s.QuestRepo().ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(quests) != 7 {
		t.Fatalf("got %d quests, want 7", len(quests))
	}

	// Creation order is preserved.
	if quests[0].Title != "Knife Safety" {
		t.Errorf("first quest = %q, want Knife Safety", quests[0].Title)
	}

	// Prerequisite titles were resolved to ids.
	byTitle := map[string]questgraph.Quest{}
	for _, q := range quests {
		byTitle[q.Title] = q
	}
	cuts := byTitle["Basic Cuts"]
	if len(cuts.Prerequisites) != 1 || cuts.Prerequisites[0] != byTitle["Knife Safety"].ID {
		t.Errorf("Basic Cuts prerequisites = %v, want [%d]", cuts.Prerequisites, byTitle["Knife Safety"].ID)
	}
	greatness := byTitle["GREATNESS"]
	if len(greatness.Prerequisites) != 2 {
		t.Errorf("GREATNESS has %d prerequisites, want 2", len(greatness.Prerequisites))
	}

	// The stored graph builds and validates.
	if _, err := s.QuestRepo().Graph(ctx); err != nil {
		t.Fatalf("graph from seeded store: %v", err)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	n, err := s.Seed(ctx, curriculum.Default())
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if n != 0 {
		t.Errorf("second seed inserted %d, want 0", n)
	}

	count, err := s.QuestRepo().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 7 {
		t.Errorf("got %d quests after double seed, want 7", count)
	}
}

func TestSeed_RejectsInvalidCurriculumBeforeInsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	bad := &curriculum.Curriculum{
		Name: "bad",
		Quests: []curriculum.QuestDef{
			{Title: "A", Type: questgraph.TypeLesson, Category: questgraph.CategoryFoundation,
				InitialStatus: questgraph.StatusLocked, MaxStars: 3, Prerequisites: []string{"B"}},
			{Title: "B", Type: questgraph.TypeLesson, Category: questgraph.CategoryFoundation,
				InitialStatus: questgraph.StatusLocked, MaxStars: 3, Prerequisites: []string{"A"}},
			{Title: "C", Type: questgraph.TypeLesson, Category: questgraph.CategoryFoundation,
				InitialStatus: questgraph.StatusAvailable, MaxStars: 3},
		},
	}

	_, err := s.Seed(ctx, bad)
	var ce *questgraph.CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *questgraph.CycleError, got %v", err)
	}

	// Store untouched.
	count, err := s.QuestRepo().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("got %d quests after failed seed, want 0", count)
	}
}

func TestSeed_LessonAndMinigameContent(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()

	quests, err := s.QuestRepo().ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	byTitle := map[string]questgraph.Quest{}
	for _, q := range quests {
		byTitle[q.Title] = q
	}

	lesson, err := s.LessonRepo().ByQuest(ctx, byTitle["Knife Safety"].ID)
	if err != nil {
		t.Fatalf("lesson: %v", err)
	}
	if lesson == nil {
		t.Fatal("Knife Safety should have a lesson")
	}
	if lesson.Heading != "Knife Safety First" {
		t.Errorf("heading = %q", lesson.Heading)
	}
	if len(lesson.Steps) != 5 {
		t.Errorf("got %d steps, want 5", len(lesson.Steps))
	}

	mg, err := s.MinigameRepo().ByQuest(ctx, byTitle["Basic Cuts"].ID)
	if err != nil {
		t.Fatalf("minigame: %v", err)
	}
	if mg == nil {
		t.Fatal("Basic Cuts should have a minigame")
	}
	if mg.RequiredScore != 70 {
		t.Errorf("required score = %d, want 70", mg.RequiredScore)
	}

	questions, err := s.MinigameRepo().Questions(ctx, mg.ID)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if len(questions[0].CorrectMatches) != 4 {
		t.Errorf("got %d match pairs, want 4 (JSON round-trip)", len(questions[0].CorrectMatches))
	}

	// Quests without a minigame report nil.
	mg, err = s.MinigameRepo().ByQuest(ctx, byTitle["Simple Soup"].ID)
	if err != nil {
		t.Fatalf("minigame: %v", err)
	}
	if mg != nil {
		t.Error("Simple Soup should have no minigame")
	}
}

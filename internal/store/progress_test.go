package store

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/cookquest/internal/questgraph"
)

func TestInitLearner_CopiesInitialState(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	repo := s.ProgressRepo()

	if err := repo.InitLearner(ctx, "learner-1"); err != nil {
		t.Fatalf("init: %v", err)
	}

	rows, err := repo.ByLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("by learner: %v", err)
	}
	if len(rows) != 7 {
		t.Fatalf("got %d progress rows, want 7", len(rows))
	}

	quests, _ := s.QuestRepo().ListAll(ctx)
	byTitle := map[string]questgraph.Quest{}
	for _, q := range quests {
		byTitle[q.Title] = q
	}
	statuses, err := repo.Statuses(ctx, "learner-1")
	if err != nil {
		t.Fatalf("statuses: %v", err)
	}
	if statuses[byTitle["Knife Safety"].ID] != questgraph.StatusCompleted {
		t.Error("Knife Safety should start completed")
	}
	if statuses[byTitle["Basic Cuts"].ID] != questgraph.StatusAvailable {
		t.Error("Basic Cuts should start available")
	}
	if statuses[byTitle["GREATNESS"].ID] != questgraph.StatusLocked {
		t.Error("GREATNESS should start locked")
	}
}

func TestInitLearner_Idempotent(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	repo := s.ProgressRepo()

	if err := repo.InitLearner(ctx, "learner-1"); err != nil {
		t.Fatalf("first init: %v", err)
	}
	if err := repo.InitLearner(ctx, "learner-1"); err != nil {
		t.Fatalf("second init: %v", err)
	}
	rows, err := repo.ByLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("by learner: %v", err)
	}
	if len(rows) != 7 {
		t.Errorf("got %d rows after double init, want 7", len(rows))
	}
}

func TestApplyChanges_WritesStatusAndStars(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	repo := s.ProgressRepo()

	if err := repo.InitLearner(ctx, "learner-1"); err != nil {
		t.Fatalf("init: %v", err)
	}
	quests, _ := s.QuestRepo().ListAll(ctx)
	cuts := quests[1] // Basic Cuts

	changes := []questgraph.Change{
		{QuestID: cuts.ID, From: questgraph.StatusAvailable, To: questgraph.StatusCompleted, Stars: 2, SetStars: true},
	}
	if err := repo.ApplyChanges(ctx, "learner-1", changes); err != nil {
		t.Fatalf("apply: %v", err)
	}

	rows, _ := repo.ByLearner(ctx, "learner-1")
	for _, row := range rows {
		if row.QuestID != cuts.ID {
			continue
		}
		if row.Status != questgraph.StatusCompleted {
			t.Errorf("status = %s, want completed", row.Status)
		}
		if row.Stars != 2 {
			t.Errorf("stars = %d, want 2", row.Stars)
		}
	}
}

func TestApplyChanges_UnknownQuestRollsBack(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	repo := s.ProgressRepo()

	if err := repo.InitLearner(ctx, "learner-1"); err != nil {
		t.Fatalf("init: %v", err)
	}
	quests, _ := s.QuestRepo().ListAll(ctx)
	cuts := quests[1]

	before, _ := repo.Statuses(ctx, "learner-1")

	changes := []questgraph.Change{
		{QuestID: cuts.ID, From: questgraph.StatusAvailable, To: questgraph.StatusCompleted, Stars: 2, SetStars: true},
		{QuestID: 9999, From: questgraph.StatusLocked, To: questgraph.StatusAvailable},
	}
	err := repo.ApplyChanges(ctx, "learner-1", changes)
	var nfe *questgraph.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected *questgraph.NotFoundError, got %v", err)
	}

	// The first change must not have stuck: all or nothing.
	after, _ := repo.Statuses(ctx, "learner-1")
	for id, status := range before {
		if after[id] != status {
			t.Errorf("quest %d changed from %s to %s despite rollback", id, status, after[id])
		}
	}
}

func TestDeleteLearner_FreshStartOnNextInit(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	repo := s.ProgressRepo()

	if err := repo.InitLearner(ctx, "learner-1"); err != nil {
		t.Fatalf("init: %v", err)
	}
	quests, _ := s.QuestRepo().ListAll(ctx)
	cuts := quests[1]

	err := repo.ApplyChanges(ctx, "learner-1", []questgraph.Change{
		{QuestID: cuts.ID, To: questgraph.StatusCompleted, Stars: 3, SetStars: true},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	n, err := repo.DeleteLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 7 {
		t.Errorf("deleted %d rows, want 7", n)
	}

	if err := repo.InitLearner(ctx, "learner-1"); err != nil {
		t.Fatalf("re-init: %v", err)
	}
	statuses, _ := repo.Statuses(ctx, "learner-1")
	if statuses[cuts.ID] != questgraph.StatusAvailable {
		t.Errorf("quest = %s after reset, want available", statuses[cuts.ID])
	}
}

func TestProgress_PerLearnerIsolation(t *testing.T) {
	s := seededStore(t)
	ctx := context.Background()
	repo := s.ProgressRepo()

	if err := repo.InitLearner(ctx, "alice"); err != nil {
		t.Fatalf("init alice: %v", err)
	}
	if err := repo.InitLearner(ctx, "bob"); err != nil {
		t.Fatalf("init bob: %v", err)
	}

	quests, _ := s.QuestRepo().ListAll(ctx)
	cuts := quests[1]

	err := repo.ApplyChanges(ctx, "alice", []questgraph.Change{
		{QuestID: cuts.ID, To: questgraph.StatusCompleted, Stars: 3, SetStars: true},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	aliceStatuses, _ := repo.Statuses(ctx, "alice")
	bobStatuses, _ := repo.Statuses(ctx, "bob")
	if aliceStatuses[cuts.ID] != questgraph.StatusCompleted {
		t.Error("alice's completion did not stick")
	}
	if bobStatuses[cuts.ID] != questgraph.StatusAvailable {
		t.Errorf("bob's quest = %s, want available (unaffected by alice)", bobStatuses[cuts.ID])
	}
}

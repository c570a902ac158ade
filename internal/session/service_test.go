package session

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/cookquest/internal/curriculum"
	"github.com/abhisek/cookquest/internal/minigame"
	"github.com/abhisek/cookquest/internal/questgraph"
	"github.com/abhisek/cookquest/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if _, err := s.Seed(context.Background(), curriculum.Default()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewService(s)
}

// boardByTitle fetches the learner's board and indexes it by quest title.
func boardByTitle(t *testing.T, svc *Service, learnerID string) map[string]BoardEntry {
	t.Helper()
	board, err := svc.Board(context.Background(), learnerID)
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	byTitle := make(map[string]BoardEntry, len(board))
	for _, e := range board {
		byTitle[e.Quest.Title] = e
	}
	return byTitle
}

func TestBoard_InitialState(t *testing.T) {
	svc := newTestService(t)
	board := boardByTitle(t, svc, "learner-1")

	if len(board) != 7 {
		t.Fatalf("got %d entries, want 7", len(board))
	}
	if got := board["Knife Safety"]; got.Status != questgraph.StatusCompleted || got.Stars != 3 {
		t.Errorf("Knife Safety = %s/%d stars, want completed/3", got.Status, got.Stars)
	}
	if board["Basic Cuts"].Status != questgraph.StatusAvailable {
		t.Error("Basic Cuts should start available")
	}
	if board["Measuring"].Status != questgraph.StatusLocked {
		t.Error("Measuring should start locked")
	}
}

func TestCompleteQuest_CascadesUnlocks(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	board := boardByTitle(t, svc, "learner-1")

	// Completing Basic Cuts unlocks Measuring (its other prerequisite,
	// Knife Safety, is seeded completed).
	_, err := svc.CompleteQuest(ctx, "learner-1", board["Basic Cuts"].Quest.ID, 2)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	board = boardByTitle(t, svc, "learner-1")
	if board["Basic Cuts"].Status != questgraph.StatusCompleted {
		t.Error("Basic Cuts should be completed")
	}
	if board["Basic Cuts"].Stars != 2 {
		t.Errorf("Basic Cuts stars = %d, want 2", board["Basic Cuts"].Stars)
	}
	if board["Measuring"].Status != questgraph.StatusAvailable {
		t.Errorf("Measuring = %s, want available", board["Measuring"].Status)
	}
	// Salt & Seasoning still needs Measuring completed.
	if board["Salt & Seasoning"].Status != questgraph.StatusLocked {
		t.Errorf("Salt & Seasoning = %s, want locked", board["Salt & Seasoning"].Status)
	}

	// Completing Measuring opens the middle tier.
	_, err = svc.CompleteQuest(ctx, "learner-1", board["Measuring"].Quest.ID, 3)
	if err != nil {
		t.Fatalf("complete measuring: %v", err)
	}
	board = boardByTitle(t, svc, "learner-1")
	for _, title := range []string{"Salt & Seasoning", "Heat Control", "Simple Soup"} {
		if board[title].Status != questgraph.StatusAvailable {
			t.Errorf("%s = %s, want available", title, board[title].Status)
		}
	}
	if board["GREATNESS"].Status != questgraph.StatusLocked {
		t.Error("GREATNESS should stay locked until Simple Soup completes")
	}
}

func TestCompleteQuest_UnknownID(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.CompleteQuest(context.Background(), "learner-1", 9999, 0)
	var nfe *questgraph.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected *questgraph.NotFoundError, got %v", err)
	}
}

func TestCompleteQuest_Recompletion(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	board := boardByTitle(t, svc, "learner-1")
	cutsID := board["Basic Cuts"].Quest.ID

	if _, err := svc.CompleteQuest(ctx, "learner-1", cutsID, 2); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	first := boardByTitle(t, svc, "learner-1")

	if _, err := svc.CompleteQuest(ctx, "learner-1", cutsID, 3); err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	second := boardByTitle(t, svc, "learner-1")

	for title, entry := range first {
		if second[title].Status != entry.Status {
			t.Errorf("%s changed from %s to %s on re-completion", title, entry.Status, second[title].Status)
		}
	}
	if second["Basic Cuts"].Stars != 3 {
		t.Errorf("stars = %d, want 3 (re-completion may update stars)", second["Basic Cuts"].Stars)
	}
}

func TestMinigameForQuest(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	board := boardByTitle(t, svc, "learner-1")

	mg, questions, err := svc.MinigameForQuest(ctx, board["Basic Cuts"].Quest.ID)
	if err != nil {
		t.Fatalf("minigame: %v", err)
	}
	if mg == nil || mg.Type != minigame.TypeMatching {
		t.Fatalf("expected matching minigame, got %+v", mg)
	}
	if len(questions) != 2 {
		t.Errorf("got %d questions, want 2", len(questions))
	}

	mg, _, err = svc.MinigameForQuest(ctx, board["Simple Soup"].Quest.ID)
	if err != nil {
		t.Fatalf("minigame: %v", err)
	}
	if mg != nil {
		t.Error("Simple Soup should have no minigame")
	}

	_, _, err = svc.MinigameForQuest(ctx, 9999)
	var nfe *questgraph.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected *questgraph.NotFoundError, got %v", err)
	}
}

func TestSubmitAttempt_PassCompletesQuest(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	board := boardByTitle(t, svc, "learner-1")
	cutsID := board["Basic Cuts"].Quest.ID

	_, questions, err := svc.MinigameForQuest(ctx, cutsID)
	if err != nil {
		t.Fatalf("minigame: %v", err)
	}

	// Answer both matching questions correctly.
	answers := map[int]minigame.Answer{}
	for i, q := range questions {
		answers[i] = minigame.Answer{Matches: q.CorrectMatches}
	}

	result, err := svc.SubmitAttempt(ctx, "learner-1", cutsID, answers, 30)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Passed || result.Score != 100 {
		t.Fatalf("got score %d passed=%v, want 100/true", result.Score, result.Passed)
	}
	if result.StarsAwarded != 3 {
		t.Errorf("stars awarded = %d, want 3", result.StarsAwarded)
	}
	if len(result.Changes) == 0 {
		t.Fatal("expected unlock changes on pass")
	}

	board = boardByTitle(t, svc, "learner-1")
	if board["Basic Cuts"].Status != questgraph.StatusCompleted {
		t.Error("quest should be completed after passing its minigame")
	}
	if board["Measuring"].Status != questgraph.StatusAvailable {
		t.Error("dependent should be unlocked after gated completion")
	}

	attempts, err := svc.Attempts(ctx, "learner-1")
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("got %d attempts, want 1", len(attempts))
	}
	if !attempts[0].Passed || attempts[0].Score != 100 {
		t.Errorf("attempt record = %+v", attempts[0])
	}
}

func TestSubmitAttempt_FailLeavesQuestUntouched(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	board := boardByTitle(t, svc, "learner-1")
	cutsID := board["Basic Cuts"].Quest.ID

	// Submit garbage answers: 0 of 2 correct, below the 70 threshold.
	result, err := svc.SubmitAttempt(ctx, "learner-1", cutsID, map[int]minigame.Answer{}, 10)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Passed {
		t.Fatal("empty answer set must not pass")
	}
	if result.Changes != nil {
		t.Error("failed attempt must not produce unlock changes")
	}

	board = boardByTitle(t, svc, "learner-1")
	if board["Basic Cuts"].Status != questgraph.StatusAvailable {
		t.Errorf("quest = %s after failed attempt, want available", board["Basic Cuts"].Status)
	}

	// The failed attempt is still recorded; the learner can retry.
	attempts, _ := svc.Attempts(ctx, "learner-1")
	if len(attempts) != 1 {
		t.Fatalf("got %d attempts, want 1", len(attempts))
	}
	if attempts[0].Passed {
		t.Error("attempt should be recorded as failed")
	}
}

func TestSubmitAttempt_QuestWithoutMinigame(t *testing.T) {
	svc := newTestService(t)
	board := boardByTitle(t, svc, "learner-1")

	_, err := svc.SubmitAttempt(context.Background(), "learner-1", board["Simple Soup"].Quest.ID, nil, 0)
	var nfe *questgraph.NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected *questgraph.NotFoundError, got %v", err)
	}
}

func TestSubmitAttempt_PerLearnerIsolation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	board := boardByTitle(t, svc, "alice")
	cutsID := board["Basic Cuts"].Quest.ID

	_, questions, _ := svc.MinigameForQuest(ctx, cutsID)
	answers := map[int]minigame.Answer{}
	for i, q := range questions {
		answers[i] = minigame.Answer{Matches: q.CorrectMatches}
	}
	if _, err := svc.SubmitAttempt(ctx, "alice", cutsID, answers, 20); err != nil {
		t.Fatalf("submit: %v", err)
	}

	bob := boardByTitle(t, svc, "bob")
	if bob["Basic Cuts"].Status != questgraph.StatusAvailable {
		t.Errorf("bob's Basic Cuts = %s, want available (alice's pass must not leak)", bob["Basic Cuts"].Status)
	}
}

func TestStarsForScore(t *testing.T) {
	tests := []struct {
		score, maxStars, want int
	}{
		{100, 3, 3},
		{85, 3, 3},  // 2.55 rounds to 3
		{75, 3, 2},  // 2.25 rounds to 2
		{70, 3, 2},  // 2.1 rounds to 2
		{34, 3, 1},  // floor of one star for any pass
		{100, 0, 0}, // no ceiling, no stars
	}
	for _, tt := range tests {
		if got := starsForScore(tt.score, tt.maxStars); got != tt.want {
			t.Errorf("starsForScore(%d, %d) = %d, want %d", tt.score, tt.maxStars, got, tt.want)
		}
	}
}

package render

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/cookquest/internal/questgraph"
	"github.com/abhisek/cookquest/internal/session"
	"github.com/abhisek/cookquest/internal/store"
)

func sampleBoard() []session.BoardEntry {
	return []session.BoardEntry{
		{
			Quest:  questgraph.Quest{ID: 1, Title: "Knife Safety", Category: questgraph.CategoryFoundation, MaxStars: 3},
			Status: questgraph.StatusCompleted,
			Stars:  3,
		},
		{
			Quest:  questgraph.Quest{ID: 2, Title: "Basic Cuts", Category: questgraph.CategoryTechnique, MaxStars: 3, Prerequisites: []int{1}},
			Status: questgraph.StatusAvailable,
		},
		{
			Quest:  questgraph.Quest{ID: 3, Title: "Measuring", Category: questgraph.CategoryFoundation, MaxStars: 3, Prerequisites: []int{1, 2}},
			Status: questgraph.StatusLocked,
		},
	}
}

func TestQuestMap(t *testing.T) {
	out := QuestMap("learner-1", sampleBoard())

	for _, want := range []string{"learner-1", "FOUNDATION", "TECHNIQUE", "Knife Safety", "Basic Cuts", "Measuring"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// The locked quest names its unfinished prerequisite but not the
	// completed one.
	if !strings.Contains(out, "needs Basic Cuts") {
		t.Error("locked quest should list its pending prerequisite")
	}
	if strings.Contains(out, "needs Knife Safety") {
		t.Error("completed prerequisites should not be listed as pending")
	}
	if !strings.Contains(out, "★★★") {
		t.Error("completed quest should show its earned stars")
	}
}

func TestAttemptHistory(t *testing.T) {
	attempts := []store.Attempt{
		{QuestID: 2, Score: 100, CorrectAnswers: 2, TotalQuestions: 2, Passed: true, CompletedAt: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)},
		{QuestID: 2, Score: 50, CorrectAnswers: 1, TotalQuestions: 2, Passed: false, CompletedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
	}
	out := AttemptHistory("learner-1", attempts, map[int]string{2: "Basic Cuts"})

	for _, want := range []string{"Basic Cuts", "100%", "50%", "passed", "failed", "2026-03-01"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	empty := AttemptHistory("learner-1", nil, nil)
	if !strings.Contains(empty, "no attempts yet") {
		t.Error("empty history should say so")
	}
}

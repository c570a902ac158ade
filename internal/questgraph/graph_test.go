package questgraph

import (
	"errors"
	"testing"
)

// threeQuests returns the A -> B -> C curriculum used across tests:
// A has no prerequisites, B requires A, C requires A and B.
func threeQuests() []Quest {
	return []Quest{
		{ID: 1, Title: "Knife Safety", Type: TypeLesson, Category: CategoryFoundation, MaxStars: 3},
		{ID: 2, Title: "Basic Cuts", Type: TypeLesson, Category: CategoryFoundation, MaxStars: 3, Prerequisites: []int{1}},
		{ID: 3, Title: "Measuring", Type: TypeLesson, Category: CategoryFoundation, MaxStars: 3, Prerequisites: []int{1, 2}},
	}
}

func mustGraph(t *testing.T, quests []Quest) *Graph {
	t.Helper()
	g, err := New(quests)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func TestQuest_Exists(t *testing.T) {
	g := mustGraph(t, threeQuests())
	q, err := g.Quest(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Title != "Basic Cuts" {
		t.Errorf("got title %q, want %q", q.Title, "Basic Cuts")
	}
	if len(q.Prerequisites) != 1 || q.Prerequisites[0] != 1 {
		t.Errorf("got prerequisites %v, want [1]", q.Prerequisites)
	}
}

func TestQuest_NotFound(t *testing.T) {
	g := mustGraph(t, threeQuests())
	_, err := g.Quest(99)
	if err == nil {
		t.Fatal("expected error for nonexistent quest, got nil")
	}
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if nfe.QuestID != 99 {
		t.Errorf("got quest id %d, want 99", nfe.QuestID)
	}
}

func TestRoots(t *testing.T) {
	g := mustGraph(t, threeQuests())
	roots := g.Roots()
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if roots[0].ID != 1 {
		t.Errorf("got root %d, want 1", roots[0].ID)
	}
}

func TestDependents(t *testing.T) {
	g := mustGraph(t, threeQuests())
	deps := g.Dependents(1)
	ids := map[int]bool{}
	for _, d := range deps {
		ids[d.ID] = true
	}
	if !ids[2] || !ids[3] {
		t.Errorf("dependents of 1: got %v, want {2, 3}", ids)
	}
	if len(g.Dependents(3)) != 0 {
		t.Error("quest 3 should have no dependents")
	}
}

func TestPrerequisites(t *testing.T) {
	g := mustGraph(t, threeQuests())
	prereqs := g.Prerequisites(3)
	if len(prereqs) != 2 {
		t.Fatalf("got %d prereqs, want 2", len(prereqs))
	}
	if len(g.Prerequisites(1)) != 0 {
		t.Error("root quest should have no prerequisites")
	}
}

func TestTopologicalOrder(t *testing.T) {
	// Diamond: 1 -> {2, 3} -> 4
	quests := []Quest{
		{ID: 4, Title: "D", MaxStars: 3, Prerequisites: []int{2, 3}},
		{ID: 2, Title: "B", MaxStars: 3, Prerequisites: []int{1}},
		{ID: 3, Title: "C", MaxStars: 3, Prerequisites: []int{1}},
		{ID: 1, Title: "A", MaxStars: 3},
	}
	g := mustGraph(t, quests)
	topo := g.TopologicalOrder()
	if len(topo) != 4 {
		t.Fatalf("got %d quests in topo order, want 4", len(topo))
	}

	pos := make(map[int]int, len(topo))
	for i, q := range topo {
		pos[q.ID] = i
	}
	for _, q := range topo {
		for _, prereqID := range q.Prerequisites {
			if pos[prereqID] >= pos[q.ID] {
				t.Errorf("quest %d (pos %d) appears before prerequisite %d (pos %d)",
					q.ID, pos[q.ID], prereqID, pos[prereqID])
			}
		}
	}
}

func TestUnlocked(t *testing.T) {
	g := mustGraph(t, threeQuests())
	none := map[int]Status{}

	if !g.Unlocked(1, none) {
		t.Error("root quest should be unlocked with no completions")
	}
	if g.Unlocked(3, none) {
		t.Error("quest 3 should be locked with no completions")
	}
	partial := map[int]Status{1: StatusCompleted}
	if g.Unlocked(3, partial) {
		t.Error("quest 3 should stay locked with only one of two prereqs completed")
	}
	both := map[int]Status{1: StatusCompleted, 2: StatusCompleted}
	if !g.Unlocked(3, both) {
		t.Error("quest 3 should be unlocked with both prereqs completed")
	}
}

func TestQuests_ReturnsCopy(t *testing.T) {
	g := mustGraph(t, threeQuests())
	a := g.Quests()
	a[0].Title = "MUTATED"
	b := g.Quests()
	if b[0].Title == "MUTATED" {
		t.Error("Quests did not return a defensive copy")
	}
}

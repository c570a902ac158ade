package questgraph

import (
	"errors"
	"testing"
)

// seedStatuses returns the initial learner state for threeQuests:
// the root available, everything else locked.
func seedStatuses() map[int]Status {
	return map[int]Status{
		1: StatusAvailable,
		2: StatusLocked,
		3: StatusLocked,
	}
}

// checkInvariant fails the test if any available or completed quest has an
// incomplete prerequisite.
func checkInvariant(t *testing.T, g *Graph, statuses map[int]Status) {
	t.Helper()
	for _, q := range g.Quests() {
		if statuses[q.ID] != StatusAvailable && statuses[q.ID] != StatusCompleted {
			continue
		}
		for _, prereqID := range q.Prerequisites {
			if statuses[prereqID] != StatusCompleted {
				t.Errorf("quest %d is %s but prerequisite %d is %s",
					q.ID, statuses[q.ID], prereqID, statuses[prereqID])
			}
		}
	}
}

func TestComplete_UnlocksDirectDependent(t *testing.T) {
	g := mustGraph(t, threeQuests())
	statuses := seedStatuses()

	changes, err := g.Complete(statuses, 1, 3)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	after := Apply(statuses, changes)
	if after[1] != StatusCompleted {
		t.Errorf("quest 1 = %s, want completed", after[1])
	}
	if after[2] != StatusAvailable {
		t.Errorf("quest 2 = %s, want available", after[2])
	}
	if after[3] != StatusLocked {
		t.Errorf("quest 3 = %s, want locked (still needs quest 2)", after[3])
	}
	checkInvariant(t, g, after)

	// Input map untouched.
	if statuses[1] != StatusAvailable {
		t.Error("Complete mutated the input status map")
	}
}

func TestComplete_SecondCompletionUnlocksRest(t *testing.T) {
	g := mustGraph(t, threeQuests())
	statuses := seedStatuses()

	changes, err := g.Complete(statuses, 1, 3)
	if err != nil {
		t.Fatalf("complete 1: %v", err)
	}
	statuses = Apply(statuses, changes)

	changes, err = g.Complete(statuses, 2, 2)
	if err != nil {
		t.Fatalf("complete 2: %v", err)
	}
	statuses = Apply(statuses, changes)

	if statuses[2] != StatusCompleted {
		t.Errorf("quest 2 = %s, want completed", statuses[2])
	}
	if statuses[3] != StatusAvailable {
		t.Errorf("quest 3 = %s, want available", statuses[3])
	}
	checkInvariant(t, g, statuses)
}

func TestComplete_NotFound(t *testing.T) {
	g := mustGraph(t, threeQuests())
	statuses := seedStatuses()

	_, err := g.Complete(statuses, 99, 0)
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
	// Graph state unchanged.
	if statuses[1] != StatusAvailable || statuses[2] != StatusLocked {
		t.Error("statuses changed after failed completion")
	}
}

func TestComplete_InvalidStars(t *testing.T) {
	g := mustGraph(t, threeQuests())

	tests := []struct {
		name  string
		stars int
	}{
		{"negative", -1},
		{"above max", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Complete(seedStatuses(), 1, tt.stars)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
		})
	}
}

func TestComplete_Idempotent(t *testing.T) {
	g := mustGraph(t, threeQuests())
	statuses := seedStatuses()

	changes, err := g.Complete(statuses, 1, 3)
	if err != nil {
		t.Fatalf("first complete: %v", err)
	}
	once := Apply(statuses, changes)

	changes, err = g.Complete(once, 1, 3)
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	twice := Apply(once, changes)

	for id := range twice {
		if twice[id] != once[id] {
			t.Errorf("quest %d: %s after second call, %s after first", id, twice[id], once[id])
		}
	}
}

func TestComplete_NeverRegresses(t *testing.T) {
	g := mustGraph(t, threeQuests())
	statuses := map[int]Status{
		1: StatusCompleted,
		2: StatusCompleted,
		3: StatusAvailable,
	}

	// Re-completing quest 1 must not re-lock or un-complete anything.
	changes, err := g.Complete(statuses, 1, 3)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	after := Apply(statuses, changes)

	for id, before := range statuses {
		if after[id].rank() < before.rank() {
			t.Errorf("quest %d regressed from %s to %s", id, before, after[id])
		}
	}
	if after[3] != StatusAvailable {
		t.Errorf("quest 3 = %s, want available", after[3])
	}
}

func TestComplete_NoFalseUnlocks(t *testing.T) {
	// Two independent chains: 1 -> 2 and 3 -> 4. Completing quest 1 must
	// not touch the other chain.
	quests := []Quest{
		{ID: 1, Title: "A", MaxStars: 3},
		{ID: 2, Title: "B", MaxStars: 3, Prerequisites: []int{1}},
		{ID: 3, Title: "C", MaxStars: 3},
		{ID: 4, Title: "D", MaxStars: 3, Prerequisites: []int{3}},
	}
	g := mustGraph(t, quests)
	statuses := map[int]Status{
		1: StatusAvailable,
		2: StatusLocked,
		3: StatusAvailable,
		4: StatusLocked,
	}

	changes, err := g.Complete(statuses, 1, 1)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	after := Apply(statuses, changes)

	if after[4] != StatusLocked {
		t.Errorf("quest 4 = %s, want locked", after[4])
	}
	if after[3] != StatusAvailable {
		t.Errorf("quest 3 = %s, want available", after[3])
	}
}

func TestComplete_FixedPointCascade(t *testing.T) {
	// Diamond where completing the last prerequisite settles the whole
	// frontier in one call: 1 -> {2, 3}, 4 needs both 2 and 3.
	quests := []Quest{
		{ID: 1, Title: "A", MaxStars: 3},
		{ID: 2, Title: "B", MaxStars: 3, Prerequisites: []int{1}},
		{ID: 3, Title: "C", MaxStars: 3, Prerequisites: []int{1}},
		{ID: 4, Title: "D", MaxStars: 3, Prerequisites: []int{2, 3}},
	}
	g := mustGraph(t, quests)
	statuses := map[int]Status{
		1: StatusCompleted,
		2: StatusCompleted,
		3: StatusAvailable,
		4: StatusLocked,
	}

	changes, err := g.Complete(statuses, 3, 2)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	after := Apply(statuses, changes)

	if after[4] != StatusAvailable {
		t.Errorf("quest 4 = %s, want available in the same call", after[4])
	}
	checkInvariant(t, g, after)
}

func TestComplete_RootsNeverPromoted(t *testing.T) {
	// A root left locked by bad seed data must not be promoted by the
	// cascade; only seeding may set a root's initial status.
	quests := []Quest{
		{ID: 1, Title: "A", MaxStars: 3},
		{ID: 2, Title: "B", MaxStars: 3},
	}
	g := mustGraph(t, quests)
	statuses := map[int]Status{
		1: StatusAvailable,
		2: StatusLocked,
	}

	changes, err := g.Complete(statuses, 1, 0)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	after := Apply(statuses, changes)
	if after[2] != StatusLocked {
		t.Errorf("root quest 2 = %s, want locked (untouched by cascade)", after[2])
	}
}

func TestComplete_ChangeOrder(t *testing.T) {
	g := mustGraph(t, threeQuests())
	changes, err := g.Complete(seedStatuses(), 1, 3)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("got %d changes, want 2", len(changes))
	}
	if changes[0].QuestID != 1 || changes[0].To != StatusCompleted || !changes[0].SetStars {
		t.Errorf("first change should complete quest 1 with stars, got %+v", changes[0])
	}
	if changes[1].QuestID != 2 || changes[1].To != StatusAvailable || changes[1].SetStars {
		t.Errorf("second change should promote quest 2, got %+v", changes[1])
	}
}

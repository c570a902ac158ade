package curriculum

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cookquest/internal/questgraph"
)

func TestDefault_Valid(t *testing.T) {
	cur := Default()
	require.NoError(t, cur.Validate())
	assert.Len(t, cur.Quests, 7)
}

func TestDefault_Shape(t *testing.T) {
	cur := Default()

	byTitle := map[string]QuestDef{}
	for _, q := range cur.Quests {
		byTitle[q.Title] = q
	}

	knife := byTitle["Knife Safety"]
	assert.Equal(t, questgraph.StatusCompleted, knife.InitialStatus)
	assert.Equal(t, 3, knife.Stars)
	assert.Empty(t, knife.Prerequisites)

	cuts := byTitle["Basic Cuts"]
	assert.Equal(t, questgraph.StatusAvailable, cuts.InitialStatus)
	assert.Equal(t, []string{"Knife Safety"}, cuts.Prerequisites)
	require.NotNil(t, cuts.Minigame)
	assert.Equal(t, 70, cuts.Minigame.RequiredScore)

	greatness := byTitle["GREATNESS"]
	assert.Equal(t, questgraph.StatusLocked, greatness.InitialStatus)
	assert.ElementsMatch(t, []string{"Simple Soup", "Measuring"}, greatness.Prerequisites)

	// Every quest ships lesson content.
	for _, q := range cur.Quests {
		assert.NotNilf(t, q.Lesson, "quest %q has no lesson", q.Title)
	}
}

func minimalQuest(title string) QuestDef {
	return QuestDef{
		Title:         title,
		Type:          questgraph.TypeLesson,
		Category:      questgraph.CategoryFoundation,
		InitialStatus: questgraph.StatusAvailable,
		MaxStars:      3,
	}
}

func TestValidate_DuplicateTitle(t *testing.T) {
	cur := &Curriculum{Name: "x", Quests: []QuestDef{minimalQuest("A"), minimalQuest("A")}}
	err := cur.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate quest title")
}

func TestValidate_UnknownPrerequisite(t *testing.T) {
	q := minimalQuest("A")
	q.InitialStatus = questgraph.StatusLocked
	q.Prerequisites = []string{"Nope"}
	cur := &Curriculum{Name: "x", Quests: []QuestDef{q, minimalQuest("B")}}
	err := cur.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown prerequisite")
}

func TestValidate_Cycle(t *testing.T) {
	a := minimalQuest("A")
	a.InitialStatus = questgraph.StatusLocked
	a.Prerequisites = []string{"B"}
	b := minimalQuest("B")
	b.InitialStatus = questgraph.StatusLocked
	b.Prerequisites = []string{"A"}
	cur := &Curriculum{Name: "x", Quests: []QuestDef{a, b, minimalQuest("C")}}

	err := cur.Validate()
	var ce *questgraph.CycleError
	require.True(t, errors.As(err, &ce), "expected *questgraph.CycleError, got %v", err)
}

func TestValidate_LockedRoot(t *testing.T) {
	q := minimalQuest("A")
	q.InitialStatus = questgraph.StatusLocked
	cur := &Curriculum{Name: "x", Quests: []QuestDef{q}}
	err := cur.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could never unlock")
}

func TestValidate_InitialStatusInvariant(t *testing.T) {
	// B seeded available while its prerequisite A is merely available.
	a := minimalQuest("A")
	b := minimalQuest("B")
	b.Prerequisites = []string{"A"}
	cur := &Curriculum{Name: "x", Quests: []QuestDef{a, b}}
	err := cur.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not seeded completed")
}

func TestValidate_StarsAboveMax(t *testing.T) {
	q := minimalQuest("A")
	q.Stars = 5
	cur := &Curriculum{Name: "x", Quests: []QuestDef{q}}
	err := cur.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maxStars")
}

func TestValidate_BadMatchIndices(t *testing.T) {
	q := minimalQuest("A")
	q.Minigame = &MinigameDef{
		Title:         "m",
		Type:          "matching",
		Difficulty:    "easy",
		RequiredScore: 70,
		Questions: []QuestionDef{{
			Type:       "matching",
			Text:       "match",
			LeftItems:  []string{"x"},
			RightItems: []string{"y"},
		}},
	}
	err := (&Curriculum{Name: "x", Quests: []QuestDef{q}}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs correct matches")
}

func TestLoad_RoundTrip(t *testing.T) {
	const doc = `{
		"name": "Test",
		"quests": [
			{"title": "A", "type": "lesson", "category": "foundation", "initialStatus": "available", "maxStars": 3},
			{"title": "B", "type": "challenge", "category": "technique", "initialStatus": "locked", "maxStars": 3,
			 "prerequisites": ["A"]}
		]
	}`
	cur, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, cur.Quests, 2)
	assert.Equal(t, []string{"A"}, cur.Quests[1].Prerequisites)
}

func TestLoad_SchemaRejections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"name": `},
		{"missing quests", `{"name": "x"}`},
		{"empty quests", `{"name": "x", "quests": []}`},
		{"bad status", `{"name": "x", "quests": [{"title": "A", "type": "lesson", "category": "foundation", "initialStatus": "open", "maxStars": 3}]}`},
		{"bad type", `{"name": "x", "quests": [{"title": "A", "type": "quiz", "category": "foundation", "initialStatus": "available", "maxStars": 3}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_CycleRejected(t *testing.T) {
	const doc = `{
		"name": "Test",
		"quests": [
			{"title": "A", "type": "lesson", "category": "foundation", "initialStatus": "locked", "maxStars": 3, "prerequisites": ["B"]},
			{"title": "B", "type": "lesson", "category": "foundation", "initialStatus": "locked", "maxStars": 3, "prerequisites": ["A"]},
			{"title": "C", "type": "lesson", "category": "foundation", "initialStatus": "available", "maxStars": 3}
		]
	}`
	_, err := Load(strings.NewReader(doc))
	var ce *questgraph.CycleError
	require.True(t, errors.As(err, &ce), "expected *questgraph.CycleError, got %v", err)
}

package minigame

import "testing"

func intp(i int) *int { return &i }

func TestEvaluate_Matching(t *testing.T) {
	q := Question{
		Type:       TypeMatching,
		LeftItems:  []string{"Julienne", "Dice", "Mince"},
		RightItems: []string{"matchsticks", "cubes", "fine pieces"},
		CorrectMatches: []MatchPair{
			{Left: 0, Right: 0},
			{Left: 1, Right: 1},
			{Left: 2, Right: 2},
		},
	}

	tests := []struct {
		name string
		got  []MatchPair
		want bool
	}{
		{"exact", []MatchPair{{0, 0}, {1, 1}, {2, 2}}, true},
		{"reordered", []MatchPair{{2, 2}, {0, 0}, {1, 1}}, true},
		{"one wrong", []MatchPair{{0, 0}, {1, 2}, {2, 1}}, false},
		{"missing pair", []MatchPair{{0, 0}, {1, 1}}, false},
		{"duplicate padding", []MatchPair{{0, 0}, {0, 0}, {1, 1}}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, Answer{Matches: tt.got}); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_FillInBlank(t *testing.T) {
	q := Question{
		Type:           TypeFillInBlank,
		BlankText:      "A sharp knife is ___ than a dull one.",
		CorrectAnswers: []string{"safer", "more safe"},
	}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"exact", "safer", true},
		{"case-insensitive", "SAFER", true},
		{"alternate accepted", "More Safe", true},
		{"trimmed", "  safer ", true},
		{"wrong", "sharper", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, Answer{Text: tt.text}); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_MultipleChoice(t *testing.T) {
	q := Question{
		Type:               TypeMultipleChoice,
		Options:            []string{"claw grip", "flat palm", "fingertips out"},
		CorrectOptionIndex: 0,
	}

	if !Evaluate(q, Answer{OptionIndex: intp(0)}) {
		t.Error("correct index should evaluate true")
	}
	if Evaluate(q, Answer{OptionIndex: intp(2)}) {
		t.Error("wrong index should evaluate false")
	}
	if Evaluate(q, Answer{}) {
		t.Error("unanswered should evaluate false")
	}
}

func TestEvaluate_ImageAssociation(t *testing.T) {
	q := Question{
		Type:            TypeImageAssociation,
		ImageURL:        "/images/julienne.png",
		AssociatedTerms: []string{"julienne", "matchstick cut"},
	}

	if !Evaluate(q, Answer{Text: "Julienne"}) {
		t.Error("associated term should evaluate true, case-insensitively")
	}
	if Evaluate(q, Answer{Text: "brunoise"}) {
		t.Error("unrelated term should evaluate false")
	}
}

func TestEvaluate_UnknownType(t *testing.T) {
	if Evaluate(Question{Type: "crossword"}, Answer{Text: "x"}) {
		t.Error("unknown question type should never evaluate true")
	}
}

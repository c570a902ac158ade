package minigame

import "testing"

// mcQuestions builds n multiple-choice questions whose correct option is 0.
func mcQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			Type:               TypeMultipleChoice,
			Options:            []string{"right", "wrong"},
			CorrectOptionIndex: 0,
			Points:             10,
		}
	}
	return qs
}

// mcAnswers answers the first correct questions right and the rest wrong.
func mcAnswers(total, correct int) map[int]Answer {
	answers := make(map[int]Answer, total)
	for i := 0; i < total; i++ {
		idx := 1
		if i < correct {
			idx = 0
		}
		answers[i] = Answer{OptionIndex: intp(idx)}
	}
	return answers
}

func TestScore_Rounding(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		correct  int
		required int
		score    int
		passed   bool
	}{
		{"3 of 4", 4, 3, 70, 75, true},
		{"2 of 3 rounds to 67", 3, 2, 70, 67, false},
		{"boundary inclusive", 10, 7, 70, 70, true},
		{"half rounds up", 8, 5, 70, 63, false}, // 62.5 -> 63
		{"perfect", 5, 5, 100, 100, true},
		{"none", 5, 0, 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Score(mcQuestions(tt.total), mcAnswers(tt.total, tt.correct), tt.required)
			if r.Score != tt.score {
				t.Errorf("score = %d, want %d", r.Score, tt.score)
			}
			if r.Passed != tt.passed {
				t.Errorf("passed = %v, want %v", r.Passed, tt.passed)
			}
			if r.Correct != tt.correct {
				t.Errorf("correct = %d, want %d", r.Correct, tt.correct)
			}
		})
	}
}

func TestScore_NoQuestions(t *testing.T) {
	r := Score(nil, nil, 70)
	if r.Score != 0 {
		t.Errorf("score = %d, want 0 for empty question set", r.Score)
	}
	if r.Passed {
		t.Error("empty question set must not pass a nonzero threshold")
	}
}

func TestScore_MissingAnswersCountIncorrect(t *testing.T) {
	// Auto-submission on timer expiry sends a partial answer set.
	qs := mcQuestions(4)
	answers := map[int]Answer{0: {OptionIndex: intp(0)}, 1: {OptionIndex: intp(0)}}
	r := Score(qs, answers, 70)
	if r.Correct != 2 {
		t.Errorf("correct = %d, want 2", r.Correct)
	}
	if r.Score != 50 {
		t.Errorf("score = %d, want 50", r.Score)
	}
}

func TestScore_PointsDoNotWeight(t *testing.T) {
	// Declared point values are carried as data but scoring is uniform
	// per question.
	qs := mcQuestions(2)
	qs[0].Points = 1000
	r := Score(qs, mcAnswers(2, 1), 50)
	if r.Score != 50 {
		t.Errorf("score = %d, want 50 regardless of point values", r.Score)
	}
}

package minigame

// Result is the outcome of scoring one full answer set.
type Result struct {
	Score   int // 0..100
	Correct int
	Total   int
	Passed  bool
}

// Score evaluates every question against the answer set and computes the
// final percentage. Answers are keyed by question position; a missing key
// counts as incorrect, so an auto-submitted partial set on timer expiry
// scores naturally.
//
// Weighting is uniform per question (count-based): declared point values do
// not affect the score. Score = round-half-up(100 * correct / total), and 0
// when there are no questions. Passed means score >= requiredScore.
func Score(questions []Question, answers map[int]Answer, requiredScore int) Result {
	r := Result{Total: len(questions)}
	for i, q := range questions {
		if Evaluate(q, answers[i]) {
			r.Correct++
		}
	}
	if r.Total > 0 {
		r.Score = (200*r.Correct + r.Total) / (2 * r.Total)
	}
	r.Passed = r.Score >= requiredScore
	return r
}

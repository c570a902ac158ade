package minigame

import "strings"

// Evaluate reports whether a learner's answer to q is correct.
//
// Comparison rules by type:
//   - matching: the learner's full pair set must equal the correct set,
//     order-independent, all-or-nothing.
//   - fill-in-blank: the learner's text must case-insensitively equal any
//     one of the accepted answers.
//   - multiple-choice: the selected option index must equal the correct one.
//   - image-association: the learner's text must case-insensitively equal
//     any one of the associated terms.
func Evaluate(q Question, a Answer) bool {
	switch q.Type {
	case TypeMatching:
		return matchesEqual(q.CorrectMatches, a.Matches)
	case TypeFillInBlank:
		return textMatchesAny(a.Text, q.CorrectAnswers)
	case TypeMultipleChoice:
		return a.OptionIndex != nil && *a.OptionIndex == q.CorrectOptionIndex
	case TypeImageAssociation:
		return textMatchesAny(a.Text, q.AssociatedTerms)
	default:
		return false
	}
}

// matchesEqual compares two pair sets ignoring order. Duplicate pairs in
// the learner's answer count once, so padding cannot inflate a match.
func matchesEqual(correct, got []MatchPair) bool {
	if len(got) == 0 || len(correct) == 0 {
		return false
	}
	want := make(map[MatchPair]bool, len(correct))
	for _, p := range correct {
		want[p] = true
	}
	seen := make(map[MatchPair]bool, len(got))
	for _, p := range got {
		if !want[p] {
			return false
		}
		seen[p] = true
	}
	return len(seen) == len(want)
}

func textMatchesAny(text string, accepted []string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	for _, want := range accepted {
		if strings.EqualFold(text, strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}

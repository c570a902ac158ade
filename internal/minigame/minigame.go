package minigame

// Type identifies the interaction style of a minigame and its questions.
type Type string

const (
	TypeMatching         Type = "matching"
	TypeFillInBlank      Type = "fill-in-blank"
	TypeMultipleChoice   Type = "multiple-choice"
	TypeImageAssociation Type = "image-association"
)

// Valid reports whether t is a known minigame type.
func (t Type) Valid() bool {
	switch t {
	case TypeMatching, TypeFillInBlank, TypeMultipleChoice, TypeImageAssociation:
		return true
	}
	return false
}

// Difficulty is a presentation-only rating.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Minigame is an optional scored check gating a quest's completion.
// At most one minigame is attached to a quest.
type Minigame struct {
	ID            int
	QuestID       int
	Title         string
	Type          Type
	Description   string
	Difficulty    Difficulty
	Enabled       bool
	TimeLimitSecs int // 0 = untimed; the countdown itself is UI-level
	RequiredScore int // percentage threshold to pass
}

// MatchPair links a left-column index to a right-column index in a
// matching question.
type MatchPair struct {
	Left  int `json:"leftIndex"`
	Right int `json:"rightIndex"`
}

// Question is one scored item in a minigame. Only the fields for the
// question's own type are populated; the rest stay zero.
type Question struct {
	ID   int
	Type Type
	Text string

	// matching
	LeftItems      []string
	RightItems     []string
	CorrectMatches []MatchPair

	// fill-in-blank
	BlankText      string
	CorrectAnswers []string

	// multiple-choice
	Options            []string
	CorrectOptionIndex int

	// image-association
	ImageURL        string
	AssociatedTerms []string

	Explanation string
	Points      int // declared weight, carried as data; scoring is count-based
}

// Answer is a learner's response to one question. Which field is read
// depends on the question's type. A zero Answer counts as unanswered.
type Answer struct {
	Matches     []MatchPair `json:"matches,omitempty"`
	Text        string      `json:"text,omitempty"`
	OptionIndex *int        `json:"optionIndex,omitempty"`
}

package questgraph

// Status is a quest's gating state for one learner. Transitions only move
// forward: locked -> available -> completed.
type Status string

const (
	StatusLocked    Status = "locked"    // One or more prerequisites not yet completed
	StatusAvailable Status = "available" // All prerequisites completed; quest not yet done
	StatusCompleted Status = "completed" // Quest finished
)

// rank orders statuses for the forward-only transition check.
func (s Status) rank() int {
	switch s {
	case StatusLocked:
		return 0
	case StatusAvailable:
		return 1
	case StatusCompleted:
		return 2
	default:
		return -1
	}
}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	return s.rank() >= 0
}

// Icon returns the display icon for a status.
func (s Status) Icon() string {
	switch s {
	case StatusLocked:
		return "🔒"
	case StatusAvailable:
		return "🔓"
	case StatusCompleted:
		return "✅"
	default:
		return "?"
	}
}

// QuestType classifies a quest for presentation. It has no effect on
// unlock logic.
type QuestType string

const (
	TypeLesson    QuestType = "lesson"
	TypeChallenge QuestType = "challenge"
	TypeBoss      QuestType = "boss"
	TypeConcept   QuestType = "concept"
)

// Category groups quests by curriculum theme. Presentation-only.
type Category string

const (
	CategoryFoundation Category = "foundation"
	CategoryTechnique  Category = "technique"
	CategoryFlavor     Category = "flavor"
	CategoryCuisine    Category = "cuisine"
	CategoryAdvanced   Category = "advanced"
)

// CuisineType tags cuisine-specific quests. Presentation-only, optional.
type CuisineType string

const (
	CuisineFrench  CuisineType = "french"
	CuisineAsian   CuisineType = "asian"
	CuisineItalian CuisineType = "italian"
)

// Quest is a single node in the unlock graph. The prerequisite list is
// immutable after the graph is built; only per-learner status and stars
// ever change, and those live outside this type (see Complete).
type Quest struct {
	ID            int
	Title         string
	Type          QuestType
	Category      Category
	CuisineType   CuisineType // empty when not cuisine-specific
	MaxStars      int
	Prerequisites []int
}

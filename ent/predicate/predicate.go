// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LessonContent is the predicate function for lessoncontent builders.
type LessonContent func(*sql.Selector)

// Minigame is the predicate function for minigame builders.
type Minigame func(*sql.Selector)

// MinigameAttempt is the predicate function for minigameattempt builders.
type MinigameAttempt func(*sql.Selector)

// MinigameQuestion is the predicate function for minigamequestion builders.
type MinigameQuestion func(*sql.Selector)

// Quest is the predicate function for quest builders.
type Quest func(*sql.Selector)

// QuestProgress is the predicate function for questprogress builders.
type QuestProgress func(*sql.Selector)

// Code generated by ent, DO NOT EDIT.

package minigameattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the minigameattempt type in the database.
	Label = "minigame_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMinigameID holds the string denoting the minigame_id field in the database.
	FieldMinigameID = "minigame_id"
	// FieldQuestID holds the string denoting the quest_id field in the database.
	FieldQuestID = "quest_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldTimeSpentSecs holds the string denoting the time_spent_secs field in the database.
	FieldTimeSpentSecs = "time_spent_secs"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the minigameattempt in the database.
	Table = "minigame_attempts"
)

// Columns holds all SQL columns for minigameattempt fields.
var Columns = []string{
	FieldID,
	FieldMinigameID,
	FieldQuestID,
	FieldLearnerID,
	FieldScore,
	FieldTotalQuestions,
	FieldCorrectAnswers,
	FieldTimeSpentSecs,
	FieldPassed,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(int) error
	// TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	TotalQuestionsValidator func(int) error
	// CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	CorrectAnswersValidator func(int) error
	// TimeSpentSecsValidator is a validator for the "time_spent_secs" field. It is called by the builders before save.
	TimeSpentSecsValidator func(int) error
	// DefaultCompletedAt holds the default value on creation for the "completed_at" field.
	DefaultCompletedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MinigameAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMinigameID orders the results by the minigame_id field.
func ByMinigameID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinigameID, opts...).ToFunc()
}

// ByQuestID orders the results by the quest_id field.
func ByQuestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByTimeSpentSecs orders the results by the time_spent_secs field.
func ByTimeSpentSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSecs, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package questprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the questprogress type in the database.
	Label = "quest_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldQuestID holds the string denoting the quest_id field in the database.
	FieldQuestID = "quest_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStars holds the string denoting the stars field in the database.
	FieldStars = "stars"
	// Table holds the table name of the questprogress in the database.
	Table = "quest_progresses"
)

// Columns holds all SQL columns for questprogress fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldQuestID,
	FieldStatus,
	FieldStars,
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
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultStars holds the default value on creation for the "stars" field.
	DefaultStars int
	// StarsValidator is a validator for the "stars" field. It is called by the builders before save.
	StarsValidator func(int) error
)

// OrderOption defines the ordering options for the QuestProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByQuestID orders the results by the quest_id field.
func ByQuestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStars orders the results by the stars field.
func ByStars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStars, opts...).ToFunc()
}

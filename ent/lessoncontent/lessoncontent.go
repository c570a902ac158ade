// Code generated by ent, DO NOT EDIT.

package lessoncontent

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessoncontent type in the database.
	Label = "lesson_content"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuestID holds the string denoting the quest_id field in the database.
	FieldQuestID = "quest_id"
	// FieldEmoji holds the string denoting the emoji field in the database.
	FieldEmoji = "emoji"
	// FieldHeading holds the string denoting the heading field in the database.
	FieldHeading = "heading"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldHints holds the string denoting the hints field in the database.
	FieldHints = "hints"
	// Table holds the table name of the lessoncontent in the database.
	Table = "lesson_contents"
)

// Columns holds all SQL columns for lessoncontent fields.
var Columns = []string{
	FieldID,
	FieldQuestID,
	FieldEmoji,
	FieldHeading,
	FieldDescription,
	FieldSteps,
	FieldHints,
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
	// HeadingValidator is a validator for the "heading" field. It is called by the builders before save.
	HeadingValidator func(string) error
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
)

// OrderOption defines the ordering options for the LessonContent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuestID orders the results by the quest_id field.
func ByQuestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestID, opts...).ToFunc()
}

// ByEmoji orders the results by the emoji field.
func ByEmoji(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmoji, opts...).ToFunc()
}

// ByHeading orders the results by the heading field.
func ByHeading(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeading, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

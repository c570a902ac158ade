// Code generated by ent, DO NOT EDIT.

package quest

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quest type in the database.
	Label = "quest"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldQuestType holds the string denoting the quest_type field in the database.
	FieldQuestType = "quest_type"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldCuisineType holds the string denoting the cuisine_type field in the database.
	FieldCuisineType = "cuisine_type"
	// FieldMaxStars holds the string denoting the max_stars field in the database.
	FieldMaxStars = "max_stars"
	// FieldInitialStatus holds the string denoting the initial_status field in the database.
	FieldInitialStatus = "initial_status"
	// FieldInitialStars holds the string denoting the initial_stars field in the database.
	FieldInitialStars = "initial_stars"
	// FieldPrerequisites holds the string denoting the prerequisites field in the database.
	FieldPrerequisites = "prerequisites"
	// Table holds the table name of the quest in the database.
	Table = "quests"
)

// Columns holds all SQL columns for quest fields.
var Columns = []string{
	FieldID,
	FieldSeq,
	FieldTitle,
	FieldQuestType,
	FieldCategory,
	FieldCuisineType,
	FieldMaxStars,
	FieldInitialStatus,
	FieldInitialStars,
	FieldPrerequisites,
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
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// QuestTypeValidator is a validator for the "quest_type" field. It is called by the builders before save.
	QuestTypeValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// MaxStarsValidator is a validator for the "max_stars" field. It is called by the builders before save.
	MaxStarsValidator func(int) error
	// InitialStatusValidator is a validator for the "initial_status" field. It is called by the builders before save.
	InitialStatusValidator func(string) error
	// DefaultInitialStars holds the default value on creation for the "initial_stars" field.
	DefaultInitialStars int
)

// OrderOption defines the ordering options for the Quest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByQuestType orders the results by the quest_type field.
func ByQuestType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestType, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByCuisineType orders the results by the cuisine_type field.
func ByCuisineType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCuisineType, opts...).ToFunc()
}

// ByMaxStars orders the results by the max_stars field.
func ByMaxStars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxStars, opts...).ToFunc()
}

// ByInitialStatus orders the results by the initial_status field.
func ByInitialStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialStatus, opts...).ToFunc()
}

// ByInitialStars orders the results by the initial_stars field.
func ByInitialStars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialStars, opts...).ToFunc()
}

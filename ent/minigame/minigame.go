// Code generated by ent, DO NOT EDIT.

package minigame

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the minigame type in the database.
	Label = "minigame"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuestID holds the string denoting the quest_id field in the database.
	FieldQuestID = "quest_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldGameType holds the string denoting the game_type field in the database.
	FieldGameType = "game_type"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldTimeLimitSecs holds the string denoting the time_limit_secs field in the database.
	FieldTimeLimitSecs = "time_limit_secs"
	// FieldRequiredScore holds the string denoting the required_score field in the database.
	FieldRequiredScore = "required_score"
	// Table holds the table name of the minigame in the database.
	Table = "minigames"
)

// Columns holds all SQL columns for minigame fields.
var Columns = []string{
	FieldID,
	FieldQuestID,
	FieldTitle,
	FieldGameType,
	FieldDescription,
	FieldDifficulty,
	FieldEnabled,
	FieldTimeLimitSecs,
	FieldRequiredScore,
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
	// GameTypeValidator is a validator for the "game_type" field. It is called by the builders before save.
	GameTypeValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultTimeLimitSecs holds the default value on creation for the "time_limit_secs" field.
	DefaultTimeLimitSecs int
	// RequiredScoreValidator is a validator for the "required_score" field. It is called by the builders before save.
	RequiredScoreValidator func(int) error
)

// OrderOption defines the ordering options for the Minigame queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuestID orders the results by the quest_id field.
func ByQuestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByGameType orders the results by the game_type field.
func ByGameType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGameType, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByTimeLimitSecs orders the results by the time_limit_secs field.
func ByTimeLimitSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeLimitSecs, opts...).ToFunc()
}

// ByRequiredScore orders the results by the required_score field.
func ByRequiredScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredScore, opts...).ToFunc()
}

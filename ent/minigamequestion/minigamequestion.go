// Code generated by ent, DO NOT EDIT.

package minigamequestion

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the minigamequestion type in the database.
	Label = "minigame_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMinigameID holds the string denoting the minigame_id field in the database.
	FieldMinigameID = "minigame_id"
	// FieldSeq holds the string denoting the seq field in the database.
	FieldSeq = "seq"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldLeftItems holds the string denoting the left_items field in the database.
	FieldLeftItems = "left_items"
	// FieldRightItems holds the string denoting the right_items field in the database.
	FieldRightItems = "right_items"
	// FieldCorrectMatches holds the string denoting the correct_matches field in the database.
	FieldCorrectMatches = "correct_matches"
	// FieldBlankText holds the string denoting the blank_text field in the database.
	FieldBlankText = "blank_text"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldCorrectOptionIndex holds the string denoting the correct_option_index field in the database.
	FieldCorrectOptionIndex = "correct_option_index"
	// FieldImageURL holds the string denoting the image_url field in the database.
	FieldImageURL = "image_url"
	// FieldAssociatedTerms holds the string denoting the associated_terms field in the database.
	FieldAssociatedTerms = "associated_terms"
	// FieldExplanation holds the string denoting the explanation field in the database.
	FieldExplanation = "explanation"
	// FieldPoints holds the string denoting the points field in the database.
	FieldPoints = "points"
	// Table holds the table name of the minigamequestion in the database.
	Table = "minigame_questions"
)

// Columns holds all SQL columns for minigamequestion fields.
var Columns = []string{
	FieldID,
	FieldMinigameID,
	FieldSeq,
	FieldQuestionType,
	FieldQuestionText,
	FieldLeftItems,
	FieldRightItems,
	FieldCorrectMatches,
	FieldBlankText,
	FieldCorrectAnswers,
	FieldOptions,
	FieldCorrectOptionIndex,
	FieldImageURL,
	FieldAssociatedTerms,
	FieldExplanation,
	FieldPoints,
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
	// QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	QuestionTypeValidator func(string) error
	// QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	QuestionTextValidator func(string) error
	// DefaultCorrectOptionIndex holds the default value on creation for the "correct_option_index" field.
	DefaultCorrectOptionIndex int
	// DefaultPoints holds the default value on creation for the "points" field.
	DefaultPoints int
	// PointsValidator is a validator for the "points" field. It is called by the builders before save.
	PointsValidator func(int) error
)

// OrderOption defines the ordering options for the MinigameQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMinigameID orders the results by the minigame_id field.
func ByMinigameID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinigameID, opts...).ToFunc()
}

// BySeq orders the results by the seq field.
func BySeq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeq, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByBlankText orders the results by the blank_text field.
func ByBlankText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlankText, opts...).ToFunc()
}

// ByCorrectOptionIndex orders the results by the correct_option_index field.
func ByCorrectOptionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectOptionIndex, opts...).ToFunc()
}

// ByImageURL orders the results by the image_url field.
func ByImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageURL, opts...).ToFunc()
}

// ByExplanation orders the results by the explanation field.
func ByExplanation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplanation, opts...).ToFunc()
}

// ByPoints orders the results by the points field.
func ByPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoints, opts...).ToFunc()
}

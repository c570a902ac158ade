// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cookquest/ent/minigamequestion"
)

// MinigameQuestion is the model entity for the MinigameQuestion schema.
type MinigameQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning minigame
	MinigameID int `json:"minigame_id,omitempty"`
	// Presentation order within the minigame
	Seq int `json:"seq,omitempty"`
	// QuestionType holds the value of the "question_type" field.
	QuestionType string `json:"question_type,omitempty"`
	// QuestionText holds the value of the "question_text" field.
	QuestionText string `json:"question_text,omitempty"`
	// LeftItems holds the value of the "left_items" field.
	LeftItems []string `json:"left_items,omitempty"`
	// RightItems holds the value of the "right_items" field.
	RightItems []string `json:"right_items,omitempty"`
	// Pairs of leftIndex/rightIndex
	CorrectMatches []map[string]int `json:"correct_matches,omitempty"`
	// BlankText holds the value of the "blank_text" field.
	BlankText string `json:"blank_text,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers []string `json:"correct_answers,omitempty"`
	// Options holds the value of the "options" field.
	Options []string `json:"options,omitempty"`
	// CorrectOptionIndex holds the value of the "correct_option_index" field.
	CorrectOptionIndex int `json:"correct_option_index,omitempty"`
	// ImageURL holds the value of the "image_url" field.
	ImageURL string `json:"image_url,omitempty"`
	// AssociatedTerms holds the value of the "associated_terms" field.
	AssociatedTerms []string `json:"associated_terms,omitempty"`
	// Explanation holds the value of the "explanation" field.
	Explanation string `json:"explanation,omitempty"`
	// Points holds the value of the "points" field.
	Points       int `json:"points,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MinigameQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case minigamequestion.FieldLeftItems, minigamequestion.FieldRightItems, minigamequestion.FieldCorrectMatches, minigamequestion.FieldCorrectAnswers, minigamequestion.FieldOptions, minigamequestion.FieldAssociatedTerms:
			values[i] = new([]byte)
		case minigamequestion.FieldID, minigamequestion.FieldMinigameID, minigamequestion.FieldSeq, minigamequestion.FieldCorrectOptionIndex, minigamequestion.FieldPoints:
			values[i] = new(sql.NullInt64)
		case minigamequestion.FieldQuestionType, minigamequestion.FieldQuestionText, minigamequestion.FieldBlankText, minigamequestion.FieldImageURL, minigamequestion.FieldExplanation:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MinigameQuestion fields.
func (_m *MinigameQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case minigamequestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case minigamequestion.FieldMinigameID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field minigame_id", values[i])
			} else if value.Valid {
				_m.MinigameID = int(value.Int64)
			}
		case minigamequestion.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case minigamequestion.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case minigamequestion.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case minigamequestion.FieldLeftItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field left_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LeftItems); err != nil {
					return fmt.Errorf("unmarshal field left_items: %w", err)
				}
			}
		case minigamequestion.FieldRightItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field right_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RightItems); err != nil {
					return fmt.Errorf("unmarshal field right_items: %w", err)
				}
			}
		case minigamequestion.FieldCorrectMatches:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field correct_matches", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CorrectMatches); err != nil {
					return fmt.Errorf("unmarshal field correct_matches: %w", err)
				}
			}
		case minigamequestion.FieldBlankText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blank_text", values[i])
			} else if value.Valid {
				_m.BlankText = value.String
			}
		case minigamequestion.FieldCorrectAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CorrectAnswers); err != nil {
					return fmt.Errorf("unmarshal field correct_answers: %w", err)
				}
			}
		case minigamequestion.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case minigamequestion.FieldCorrectOptionIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_option_index", values[i])
			} else if value.Valid {
				_m.CorrectOptionIndex = int(value.Int64)
			}
		case minigamequestion.FieldImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_url", values[i])
			} else if value.Valid {
				_m.ImageURL = value.String
			}
		case minigamequestion.FieldAssociatedTerms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field associated_terms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AssociatedTerms); err != nil {
					return fmt.Errorf("unmarshal field associated_terms: %w", err)
				}
			}
		case minigamequestion.FieldExplanation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field explanation", values[i])
			} else if value.Valid {
				_m.Explanation = value.String
			}
		case minigamequestion.FieldPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points", values[i])
			} else if value.Valid {
				_m.Points = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MinigameQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *MinigameQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MinigameQuestion.
// Note that you need to call MinigameQuestion.Unwrap() before calling this method if this MinigameQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MinigameQuestion) Update() *MinigameQuestionUpdateOne {
	return NewMinigameQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MinigameQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MinigameQuestion) Unwrap() *MinigameQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MinigameQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MinigameQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("MinigameQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("minigame_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinigameID))
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("left_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeftItems))
	builder.WriteString(", ")
	builder.WriteString("right_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.RightItems))
	builder.WriteString(", ")
	builder.WriteString("correct_matches=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectMatches))
	builder.WriteString(", ")
	builder.WriteString("blank_text=")
	builder.WriteString(_m.BlankText)
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("correct_option_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectOptionIndex))
	builder.WriteString(", ")
	builder.WriteString("image_url=")
	builder.WriteString(_m.ImageURL)
	builder.WriteString(", ")
	builder.WriteString("associated_terms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssociatedTerms))
	builder.WriteString(", ")
	builder.WriteString("explanation=")
	builder.WriteString(_m.Explanation)
	builder.WriteString(", ")
	builder.WriteString("points=")
	builder.WriteString(fmt.Sprintf("%v", _m.Points))
	builder.WriteByte(')')
	return builder.String()
}

// MinigameQuestions is a parsable slice of MinigameQuestion.
type MinigameQuestions []*MinigameQuestion

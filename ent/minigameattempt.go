// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cookquest/ent/minigameattempt"
	"github.com/google/uuid"
)

// MinigameAttempt is the model entity for the MinigameAttempt schema.
type MinigameAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// MinigameID holds the value of the "minigame_id" field.
	MinigameID int `json:"minigame_id,omitempty"`
	// QuestID holds the value of the "quest_id" field.
	QuestID int `json:"quest_id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// TimeSpentSecs holds the value of the "time_spent_secs" field.
	TimeSpentSecs int `json:"time_spent_secs,omitempty"`
	// Passed holds the value of the "passed" field.
	Passed bool `json:"passed,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MinigameAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case minigameattempt.FieldPassed:
			values[i] = new(sql.NullBool)
		case minigameattempt.FieldMinigameID, minigameattempt.FieldQuestID, minigameattempt.FieldScore, minigameattempt.FieldTotalQuestions, minigameattempt.FieldCorrectAnswers, minigameattempt.FieldTimeSpentSecs:
			values[i] = new(sql.NullInt64)
		case minigameattempt.FieldLearnerID:
			values[i] = new(sql.NullString)
		case minigameattempt.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case minigameattempt.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MinigameAttempt fields.
func (_m *MinigameAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case minigameattempt.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case minigameattempt.FieldMinigameID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field minigame_id", values[i])
			} else if value.Valid {
				_m.MinigameID = int(value.Int64)
			}
		case minigameattempt.FieldQuestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quest_id", values[i])
			} else if value.Valid {
				_m.QuestID = int(value.Int64)
			}
		case minigameattempt.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case minigameattempt.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case minigameattempt.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case minigameattempt.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case minigameattempt.FieldTimeSpentSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_secs", values[i])
			} else if value.Valid {
				_m.TimeSpentSecs = int(value.Int64)
			}
		case minigameattempt.FieldPassed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field passed", values[i])
			} else if value.Valid {
				_m.Passed = value.Bool
			}
		case minigameattempt.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MinigameAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *MinigameAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MinigameAttempt.
// Note that you need to call MinigameAttempt.Unwrap() before calling this method if this MinigameAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MinigameAttempt) Update() *MinigameAttemptUpdateOne {
	return NewMinigameAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MinigameAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MinigameAttempt) Unwrap() *MinigameAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MinigameAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MinigameAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("MinigameAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("minigame_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinigameID))
	builder.WriteString(", ")
	builder.WriteString("quest_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestID))
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("time_spent_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSecs))
	builder.WriteString(", ")
	builder.WriteString("passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Passed))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MinigameAttempts is a parsable slice of MinigameAttempt.
type MinigameAttempts []*MinigameAttempt

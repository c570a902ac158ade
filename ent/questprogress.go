// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cookquest/ent/questprogress"
)

// QuestProgress is the model entity for the QuestProgress schema.
type QuestProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// QuestID holds the value of the "quest_id" field.
	QuestID int `json:"quest_id,omitempty"`
	// locked, available, or completed; only ever moves forward
	Status string `json:"status,omitempty"`
	// Stars holds the value of the "stars" field.
	Stars        int `json:"stars,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questprogress.FieldID, questprogress.FieldQuestID, questprogress.FieldStars:
			values[i] = new(sql.NullInt64)
		case questprogress.FieldLearnerID, questprogress.FieldStatus:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestProgress fields.
func (_m *QuestProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case questprogress.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case questprogress.FieldQuestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quest_id", values[i])
			} else if value.Valid {
				_m.QuestID = int(value.Int64)
			}
		case questprogress.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case questprogress.FieldStars:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stars", values[i])
			} else if value.Valid {
				_m.Stars = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestProgress.
// This includes values selected through modifiers, order, etc.
func (_m *QuestProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuestProgress.
// Note that you need to call QuestProgress.Unwrap() before calling this method if this QuestProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestProgress) Update() *QuestProgressUpdateOne {
	return NewQuestProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestProgress) Unwrap() *QuestProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestProgress) String() string {
	var builder strings.Builder
	builder.WriteString("QuestProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("quest_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("stars=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stars))
	builder.WriteByte(')')
	return builder.String()
}

// QuestProgresses is a parsable slice of QuestProgress.
type QuestProgresses []*QuestProgress

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cookquest/ent/lessoncontent"
)

// LessonContent is the model entity for the LessonContent schema.
type LessonContent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning quest
	QuestID int `json:"quest_id,omitempty"`
	// Emoji holds the value of the "emoji" field.
	Emoji string `json:"emoji,omitempty"`
	// Heading holds the value of the "heading" field.
	Heading string `json:"heading,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Steps holds the value of the "steps" field.
	Steps []string `json:"steps,omitempty"`
	// Hints holds the value of the "hints" field.
	Hints        []string `json:"hints,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonContent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessoncontent.FieldSteps, lessoncontent.FieldHints:
			values[i] = new([]byte)
		case lessoncontent.FieldID, lessoncontent.FieldQuestID:
			values[i] = new(sql.NullInt64)
		case lessoncontent.FieldEmoji, lessoncontent.FieldHeading, lessoncontent.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonContent fields.
func (_m *LessonContent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessoncontent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessoncontent.FieldQuestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quest_id", values[i])
			} else if value.Valid {
				_m.QuestID = int(value.Int64)
			}
		case lessoncontent.FieldEmoji:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emoji", values[i])
			} else if value.Valid {
				_m.Emoji = value.String
			}
		case lessoncontent.FieldHeading:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field heading", values[i])
			} else if value.Valid {
				_m.Heading = value.String
			}
		case lessoncontent.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case lessoncontent.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case lessoncontent.FieldHints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field hints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Hints); err != nil {
					return fmt.Errorf("unmarshal field hints: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonContent.
// This includes values selected through modifiers, order, etc.
func (_m *LessonContent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonContent.
// Note that you need to call LessonContent.Unwrap() before calling this method if this LessonContent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonContent) Update() *LessonContentUpdateOne {
	return NewLessonContentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonContent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonContent) Unwrap() *LessonContent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonContent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonContent) String() string {
	var builder strings.Builder
	builder.WriteString("LessonContent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("quest_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestID))
	builder.WriteString(", ")
	builder.WriteString("emoji=")
	builder.WriteString(_m.Emoji)
	builder.WriteString(", ")
	builder.WriteString("heading=")
	builder.WriteString(_m.Heading)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	builder.WriteString("hints=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hints))
	builder.WriteByte(')')
	return builder.String()
}

// LessonContents is a parsable slice of LessonContent.
type LessonContents []*LessonContent

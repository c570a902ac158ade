// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cookquest/ent/minigame"
)

// Minigame is the model entity for the Minigame schema.
type Minigame struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Gated quest
	QuestID int `json:"quest_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// matching, fill-in-blank, multiple-choice, or image-association
	GameType string `json:"game_type,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// 0 = untimed; countdown is enforced by the UI
	TimeLimitSecs int `json:"time_limit_secs,omitempty"`
	// Percentage needed to pass
	RequiredScore int `json:"required_score,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Minigame) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case minigame.FieldEnabled:
			values[i] = new(sql.NullBool)
		case minigame.FieldID, minigame.FieldQuestID, minigame.FieldTimeLimitSecs, minigame.FieldRequiredScore:
			values[i] = new(sql.NullInt64)
		case minigame.FieldTitle, minigame.FieldGameType, minigame.FieldDescription, minigame.FieldDifficulty:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Minigame fields.
func (_m *Minigame) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case minigame.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case minigame.FieldQuestID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quest_id", values[i])
			} else if value.Valid {
				_m.QuestID = int(value.Int64)
			}
		case minigame.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case minigame.FieldGameType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field game_type", values[i])
			} else if value.Valid {
				_m.GameType = value.String
			}
		case minigame.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case minigame.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case minigame.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case minigame.FieldTimeLimitSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_limit_secs", values[i])
			} else if value.Valid {
				_m.TimeLimitSecs = int(value.Int64)
			}
		case minigame.FieldRequiredScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field required_score", values[i])
			} else if value.Valid {
				_m.RequiredScore = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Minigame.
// This includes values selected through modifiers, order, etc.
func (_m *Minigame) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Minigame.
// Note that you need to call Minigame.Unwrap() before calling this method if this Minigame
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Minigame) Update() *MinigameUpdateOne {
	return NewMinigameClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Minigame entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Minigame) Unwrap() *Minigame {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Minigame is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Minigame) String() string {
	var builder strings.Builder
	builder.WriteString("Minigame(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("quest_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("game_type=")
	builder.WriteString(_m.GameType)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("time_limit_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeLimitSecs))
	builder.WriteString(", ")
	builder.WriteString("required_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiredScore))
	builder.WriteByte(')')
	return builder.String()
}

// Minigames is a parsable slice of Minigame.
type Minigames []*Minigame

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cookquest/ent/quest"
)

// Quest is the model entity for the Quest schema.
type Quest struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Creation order, for stable listing
	Seq int `json:"seq,omitempty"`
	// Display name; seed-time prerequisite lookup key only
	Title string `json:"title,omitempty"`
	// lesson, challenge, boss, or concept
	QuestType string `json:"quest_type,omitempty"`
	// foundation, technique, flavor, cuisine, or advanced
	Category string `json:"category,omitempty"`
	// french, asian, or italian; empty when not cuisine-specific
	CuisineType string `json:"cuisine_type,omitempty"`
	// Reward ceiling
	MaxStars int `json:"max_stars,omitempty"`
	// Status a new learner starts with for this quest
	InitialStatus string `json:"initial_status,omitempty"`
	// Stars a new learner starts with for this quest
	InitialStars int `json:"initial_stars,omitempty"`
	// Quest ids that must complete before this one unlocks
	Prerequisites []int `json:"prerequisites,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Quest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quest.FieldPrerequisites:
			values[i] = new([]byte)
		case quest.FieldID, quest.FieldSeq, quest.FieldMaxStars, quest.FieldInitialStars:
			values[i] = new(sql.NullInt64)
		case quest.FieldTitle, quest.FieldQuestType, quest.FieldCategory, quest.FieldCuisineType, quest.FieldInitialStatus:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Quest fields.
func (_m *Quest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quest.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quest.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case quest.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case quest.FieldQuestType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quest_type", values[i])
			} else if value.Valid {
				_m.QuestType = value.String
			}
		case quest.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case quest.FieldCuisineType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cuisine_type", values[i])
			} else if value.Valid {
				_m.CuisineType = value.String
			}
		case quest.FieldMaxStars:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_stars", values[i])
			} else if value.Valid {
				_m.MaxStars = int(value.Int64)
			}
		case quest.FieldInitialStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_status", values[i])
			} else if value.Valid {
				_m.InitialStatus = value.String
			}
		case quest.FieldInitialStars:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field initial_stars", values[i])
			} else if value.Valid {
				_m.InitialStars = int(value.Int64)
			}
		case quest.FieldPrerequisites:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prerequisites", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Prerequisites); err != nil {
					return fmt.Errorf("unmarshal field prerequisites: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Quest.
// This includes values selected through modifiers, order, etc.
func (_m *Quest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Quest.
// Note that you need to call Quest.Unwrap() before calling this method if this Quest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Quest) Update() *QuestUpdateOne {
	return NewQuestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Quest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Quest) Unwrap() *Quest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Quest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Quest) String() string {
	var builder strings.Builder
	builder.WriteString("Quest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("quest_type=")
	builder.WriteString(_m.QuestType)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("cuisine_type=")
	builder.WriteString(_m.CuisineType)
	builder.WriteString(", ")
	builder.WriteString("max_stars=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxStars))
	builder.WriteString(", ")
	builder.WriteString("initial_status=")
	builder.WriteString(_m.InitialStatus)
	builder.WriteString(", ")
	builder.WriteString("initial_stars=")
	builder.WriteString(fmt.Sprintf("%v", _m.InitialStars))
	builder.WriteString(", ")
	builder.WriteString("prerequisites=")
	builder.WriteString(fmt.Sprintf("%v", _m.Prerequisites))
	builder.WriteByte(')')
	return builder.String()
}

// Quests is a parsable slice of Quest.
type Quests []*Quest

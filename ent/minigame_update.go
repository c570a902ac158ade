// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cookquest/ent/minigame"
	"github.com/abhisek/cookquest/ent/predicate"
)

// MinigameUpdate is the builder for updating Minigame entities.
type MinigameUpdate struct {
	config
	hooks    []Hook
	mutation *MinigameMutation
}

// Where appends a list predicates to the MinigameUpdate builder.
func (_u *MinigameUpdate) Where(ps ...predicate.Minigame) *MinigameUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *MinigameUpdate) SetQuestID(v int) *MinigameUpdate {
	_u.mutation.ResetQuestID()
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *MinigameUpdate) SetNillableQuestID(v *int) *MinigameUpdate {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// AddQuestID adds value to the "quest_id" field.
func (_u *MinigameUpdate) AddQuestID(v int) *MinigameUpdate {
	_u.mutation.AddQuestID(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *MinigameUpdate) SetTitle(v string) *MinigameUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MinigameUpdate) SetNillableTitle(v *string) *MinigameUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetGameType sets the "game_type" field.
func (_u *MinigameUpdate) SetGameType(v string) *MinigameUpdate {
	_u.mutation.SetGameType(v)
	return _u
}

// SetNillableGameType sets the "game_type" field if the given value is not nil.
func (_u *MinigameUpdate) SetNillableGameType(v *string) *MinigameUpdate {
	if v != nil {
		_u.SetGameType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MinigameUpdate) SetDescription(v string) *MinigameUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MinigameUpdate) SetNillableDescription(v *string) *MinigameUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *MinigameUpdate) SetDifficulty(v string) *MinigameUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *MinigameUpdate) SetNillableDifficulty(v *string) *MinigameUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *MinigameUpdate) SetEnabled(v bool) *MinigameUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *MinigameUpdate) SetNillableEnabled(v *bool) *MinigameUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetTimeLimitSecs sets the "time_limit_secs" field.
func (_u *MinigameUpdate) SetTimeLimitSecs(v int) *MinigameUpdate {
	_u.mutation.ResetTimeLimitSecs()
	_u.mutation.SetTimeLimitSecs(v)
	return _u
}

// SetNillableTimeLimitSecs sets the "time_limit_secs" field if the given value is not nil.
func (_u *MinigameUpdate) SetNillableTimeLimitSecs(v *int) *MinigameUpdate {
	if v != nil {
		_u.SetTimeLimitSecs(*v)
	}
	return _u
}

// AddTimeLimitSecs adds value to the "time_limit_secs" field.
func (_u *MinigameUpdate) AddTimeLimitSecs(v int) *MinigameUpdate {
	_u.mutation.AddTimeLimitSecs(v)
	return _u
}

// SetRequiredScore sets the "required_score" field.
func (_u *MinigameUpdate) SetRequiredScore(v int) *MinigameUpdate {
	_u.mutation.ResetRequiredScore()
	_u.mutation.SetRequiredScore(v)
	return _u
}

// SetNillableRequiredScore sets the "required_score" field if the given value is not nil.
func (_u *MinigameUpdate) SetNillableRequiredScore(v *int) *MinigameUpdate {
	if v != nil {
		_u.SetRequiredScore(*v)
	}
	return _u
}

// AddRequiredScore adds value to the "required_score" field.
func (_u *MinigameUpdate) AddRequiredScore(v int) *MinigameUpdate {
	_u.mutation.AddRequiredScore(v)
	return _u
}

// Mutation returns the MinigameMutation object of the builder.
func (_u *MinigameUpdate) Mutation() *MinigameMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MinigameUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MinigameUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MinigameUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MinigameUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MinigameUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := minigame.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Minigame.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GameType(); ok {
		if err := minigame.GameTypeValidator(v); err != nil {
			return &ValidationError{Name: "game_type", err: fmt.Errorf(`ent: validator failed for field "Minigame.game_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := minigame.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Minigame.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredScore(); ok {
		if err := minigame.RequiredScoreValidator(v); err != nil {
			return &ValidationError{Name: "required_score", err: fmt.Errorf(`ent: validator failed for field "Minigame.required_score": %w`, err)}
		}
	}
	return nil
}

func (_u *MinigameUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(minigame.Table, minigame.Columns, sqlgraph.NewFieldSpec(minigame.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(minigame.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestID(); ok {
		_spec.AddField(minigame.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(minigame.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameType(); ok {
		_spec.SetField(minigame.FieldGameType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(minigame.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(minigame.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(minigame.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeLimitSecs(); ok {
		_spec.SetField(minigame.FieldTimeLimitSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitSecs(); ok {
		_spec.AddField(minigame.FieldTimeLimitSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequiredScore(); ok {
		_spec.SetField(minigame.FieldRequiredScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredScore(); ok {
		_spec.AddField(minigame.FieldRequiredScore, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{minigame.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MinigameUpdateOne is the builder for updating a single Minigame entity.
type MinigameUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MinigameMutation
}

// SetQuestID sets the "quest_id" field.
func (_u *MinigameUpdateOne) SetQuestID(v int) *MinigameUpdateOne {
	_u.mutation.ResetQuestID()
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *MinigameUpdateOne) SetNillableQuestID(v *int) *MinigameUpdateOne {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// AddQuestID adds value to the "quest_id" field.
func (_u *MinigameUpdateOne) AddQuestID(v int) *MinigameUpdateOne {
	_u.mutation.AddQuestID(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *MinigameUpdateOne) SetTitle(v string) *MinigameUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *MinigameUpdateOne) SetNillableTitle(v *string) *MinigameUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetGameType sets the "game_type" field.
func (_u *MinigameUpdateOne) SetGameType(v string) *MinigameUpdateOne {
	_u.mutation.SetGameType(v)
	return _u
}

// SetNillableGameType sets the "game_type" field if the given value is not nil.
func (_u *MinigameUpdateOne) SetNillableGameType(v *string) *MinigameUpdateOne {
	if v != nil {
		_u.SetGameType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MinigameUpdateOne) SetDescription(v string) *MinigameUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MinigameUpdateOne) SetNillableDescription(v *string) *MinigameUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *MinigameUpdateOne) SetDifficulty(v string) *MinigameUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *MinigameUpdateOne) SetNillableDifficulty(v *string) *MinigameUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *MinigameUpdateOne) SetEnabled(v bool) *MinigameUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *MinigameUpdateOne) SetNillableEnabled(v *bool) *MinigameUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetTimeLimitSecs sets the "time_limit_secs" field.
func (_u *MinigameUpdateOne) SetTimeLimitSecs(v int) *MinigameUpdateOne {
	_u.mutation.ResetTimeLimitSecs()
	_u.mutation.SetTimeLimitSecs(v)
	return _u
}

// SetNillableTimeLimitSecs sets the "time_limit_secs" field if the given value is not nil.
func (_u *MinigameUpdateOne) SetNillableTimeLimitSecs(v *int) *MinigameUpdateOne {
	if v != nil {
		_u.SetTimeLimitSecs(*v)
	}
	return _u
}

// AddTimeLimitSecs adds value to the "time_limit_secs" field.
func (_u *MinigameUpdateOne) AddTimeLimitSecs(v int) *MinigameUpdateOne {
	_u.mutation.AddTimeLimitSecs(v)
	return _u
}

// SetRequiredScore sets the "required_score" field.
func (_u *MinigameUpdateOne) SetRequiredScore(v int) *MinigameUpdateOne {
	_u.mutation.ResetRequiredScore()
	_u.mutation.SetRequiredScore(v)
	return _u
}

// SetNillableRequiredScore sets the "required_score" field if the given value is not nil.
func (_u *MinigameUpdateOne) SetNillableRequiredScore(v *int) *MinigameUpdateOne {
	if v != nil {
		_u.SetRequiredScore(*v)
	}
	return _u
}

// AddRequiredScore adds value to the "required_score" field.
func (_u *MinigameUpdateOne) AddRequiredScore(v int) *MinigameUpdateOne {
	_u.mutation.AddRequiredScore(v)
	return _u
}

// Mutation returns the MinigameMutation object of the builder.
func (_u *MinigameUpdateOne) Mutation() *MinigameMutation {
	return _u.mutation
}

// Where appends a list predicates to the MinigameUpdate builder.
func (_u *MinigameUpdateOne) Where(ps ...predicate.Minigame) *MinigameUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MinigameUpdateOne) Select(field string, fields ...string) *MinigameUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Minigame entity.
func (_u *MinigameUpdateOne) Save(ctx context.Context) (*Minigame, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MinigameUpdateOne) SaveX(ctx context.Context) *Minigame {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MinigameUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MinigameUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MinigameUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := minigame.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Minigame.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GameType(); ok {
		if err := minigame.GameTypeValidator(v); err != nil {
			return &ValidationError{Name: "game_type", err: fmt.Errorf(`ent: validator failed for field "Minigame.game_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := minigame.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Minigame.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredScore(); ok {
		if err := minigame.RequiredScoreValidator(v); err != nil {
			return &ValidationError{Name: "required_score", err: fmt.Errorf(`ent: validator failed for field "Minigame.required_score": %w`, err)}
		}
	}
	return nil
}

func (_u *MinigameUpdateOne) sqlSave(ctx context.Context) (_node *Minigame, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(minigame.Table, minigame.Columns, sqlgraph.NewFieldSpec(minigame.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Minigame.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, minigame.FieldID)
		for _, f := range fields {
			if !minigame.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != minigame.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(minigame.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestID(); ok {
		_spec.AddField(minigame.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(minigame.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameType(); ok {
		_spec.SetField(minigame.FieldGameType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(minigame.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(minigame.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(minigame.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeLimitSecs(); ok {
		_spec.SetField(minigame.FieldTimeLimitSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitSecs(); ok {
		_spec.AddField(minigame.FieldTimeLimitSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequiredScore(); ok {
		_spec.SetField(minigame.FieldRequiredScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredScore(); ok {
		_spec.AddField(minigame.FieldRequiredScore, field.TypeInt, value)
	}
	_node = &Minigame{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{minigame.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cookquest/ent/minigame"
)

// MinigameCreate is the builder for creating a Minigame entity.
type MinigameCreate struct {
	config
	mutation *MinigameMutation
	hooks    []Hook
}

// SetQuestID sets the "quest_id" field.
func (_c *MinigameCreate) SetQuestID(v int) *MinigameCreate {
	_c.mutation.SetQuestID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *MinigameCreate) SetTitle(v string) *MinigameCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetGameType sets the "game_type" field.
func (_c *MinigameCreate) SetGameType(v string) *MinigameCreate {
	_c.mutation.SetGameType(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MinigameCreate) SetDescription(v string) *MinigameCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *MinigameCreate) SetDifficulty(v string) *MinigameCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *MinigameCreate) SetEnabled(v bool) *MinigameCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *MinigameCreate) SetNillableEnabled(v *bool) *MinigameCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetTimeLimitSecs sets the "time_limit_secs" field.
func (_c *MinigameCreate) SetTimeLimitSecs(v int) *MinigameCreate {
	_c.mutation.SetTimeLimitSecs(v)
	return _c
}

// SetNillableTimeLimitSecs sets the "time_limit_secs" field if the given value is not nil.
func (_c *MinigameCreate) SetNillableTimeLimitSecs(v *int) *MinigameCreate {
	if v != nil {
		_c.SetTimeLimitSecs(*v)
	}
	return _c
}

// SetRequiredScore sets the "required_score" field.
func (_c *MinigameCreate) SetRequiredScore(v int) *MinigameCreate {
	_c.mutation.SetRequiredScore(v)
	return _c
}

// Mutation returns the MinigameMutation object of the builder.
func (_c *MinigameCreate) Mutation() *MinigameMutation {
	return _c.mutation
}

// Save creates the Minigame in the database.
func (_c *MinigameCreate) Save(ctx context.Context) (*Minigame, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MinigameCreate) SaveX(ctx context.Context) *Minigame {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MinigameCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MinigameCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MinigameCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := minigame.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.TimeLimitSecs(); !ok {
		v := minigame.DefaultTimeLimitSecs
		_c.mutation.SetTimeLimitSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MinigameCreate) check() error {
	if _, ok := _c.mutation.QuestID(); !ok {
		return &ValidationError{Name: "quest_id", err: errors.New(`ent: missing required field "Minigame.quest_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Minigame.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := minigame.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Minigame.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GameType(); !ok {
		return &ValidationError{Name: "game_type", err: errors.New(`ent: missing required field "Minigame.game_type"`)}
	}
	if v, ok := _c.mutation.GameType(); ok {
		if err := minigame.GameTypeValidator(v); err != nil {
			return &ValidationError{Name: "game_type", err: fmt.Errorf(`ent: validator failed for field "Minigame.game_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Minigame.description"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Minigame.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := minigame.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Minigame.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Minigame.enabled"`)}
	}
	if _, ok := _c.mutation.TimeLimitSecs(); !ok {
		return &ValidationError{Name: "time_limit_secs", err: errors.New(`ent: missing required field "Minigame.time_limit_secs"`)}
	}
	if _, ok := _c.mutation.RequiredScore(); !ok {
		return &ValidationError{Name: "required_score", err: errors.New(`ent: missing required field "Minigame.required_score"`)}
	}
	if v, ok := _c.mutation.RequiredScore(); ok {
		if err := minigame.RequiredScoreValidator(v); err != nil {
			return &ValidationError{Name: "required_score", err: fmt.Errorf(`ent: validator failed for field "Minigame.required_score": %w`, err)}
		}
	}
	return nil
}

func (_c *MinigameCreate) sqlSave(ctx context.Context) (*Minigame, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MinigameCreate) createSpec() (*Minigame, *sqlgraph.CreateSpec) {
	var (
		_node = &Minigame{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(minigame.Table, sqlgraph.NewFieldSpec(minigame.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestID(); ok {
		_spec.SetField(minigame.FieldQuestID, field.TypeInt, value)
		_node.QuestID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(minigame.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.GameType(); ok {
		_spec.SetField(minigame.FieldGameType, field.TypeString, value)
		_node.GameType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(minigame.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(minigame.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(minigame.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.TimeLimitSecs(); ok {
		_spec.SetField(minigame.FieldTimeLimitSecs, field.TypeInt, value)
		_node.TimeLimitSecs = value
	}
	if value, ok := _c.mutation.RequiredScore(); ok {
		_spec.SetField(minigame.FieldRequiredScore, field.TypeInt, value)
		_node.RequiredScore = value
	}
	return _node, _spec
}

// MinigameCreateBulk is the builder for creating many Minigame entities in bulk.
type MinigameCreateBulk struct {
	config
	err      error
	builders []*MinigameCreate
}

// Save creates the Minigame entities in the database.
func (_c *MinigameCreateBulk) Save(ctx context.Context) ([]*Minigame, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Minigame, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MinigameMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MinigameCreateBulk) SaveX(ctx context.Context) []*Minigame {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MinigameCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MinigameCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

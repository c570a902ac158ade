// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cookquest/ent/lessoncontent"
)

// LessonContentCreate is the builder for creating a LessonContent entity.
type LessonContentCreate struct {
	config
	mutation *LessonContentMutation
	hooks    []Hook
}

// SetQuestID sets the "quest_id" field.
func (_c *LessonContentCreate) SetQuestID(v int) *LessonContentCreate {
	_c.mutation.SetQuestID(v)
	return _c
}

// SetEmoji sets the "emoji" field.
func (_c *LessonContentCreate) SetEmoji(v string) *LessonContentCreate {
	_c.mutation.SetEmoji(v)
	return _c
}

// SetHeading sets the "heading" field.
func (_c *LessonContentCreate) SetHeading(v string) *LessonContentCreate {
	_c.mutation.SetHeading(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *LessonContentCreate) SetDescription(v string) *LessonContentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetSteps sets the "steps" field.
func (_c *LessonContentCreate) SetSteps(v []string) *LessonContentCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetHints sets the "hints" field.
func (_c *LessonContentCreate) SetHints(v []string) *LessonContentCreate {
	_c.mutation.SetHints(v)
	return _c
}

// Mutation returns the LessonContentMutation object of the builder.
func (_c *LessonContentCreate) Mutation() *LessonContentMutation {
	return _c.mutation
}

// Save creates the LessonContent in the database.
func (_c *LessonContentCreate) Save(ctx context.Context) (*LessonContent, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonContentCreate) SaveX(ctx context.Context) *LessonContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonContentCreate) check() error {
	if _, ok := _c.mutation.QuestID(); !ok {
		return &ValidationError{Name: "quest_id", err: errors.New(`ent: missing required field "LessonContent.quest_id"`)}
	}
	if _, ok := _c.mutation.Emoji(); !ok {
		return &ValidationError{Name: "emoji", err: errors.New(`ent: missing required field "LessonContent.emoji"`)}
	}
	if _, ok := _c.mutation.Heading(); !ok {
		return &ValidationError{Name: "heading", err: errors.New(`ent: missing required field "LessonContent.heading"`)}
	}
	if v, ok := _c.mutation.Heading(); ok {
		if err := lessoncontent.HeadingValidator(v); err != nil {
			return &ValidationError{Name: "heading", err: fmt.Errorf(`ent: validator failed for field "LessonContent.heading": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "LessonContent.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := lessoncontent.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "LessonContent.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "LessonContent.steps"`)}
	}
	if _, ok := _c.mutation.Hints(); !ok {
		return &ValidationError{Name: "hints", err: errors.New(`ent: missing required field "LessonContent.hints"`)}
	}
	return nil
}

func (_c *LessonContentCreate) sqlSave(ctx context.Context) (*LessonContent, error) {
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

func (_c *LessonContentCreate) createSpec() (*LessonContent, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonContent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessoncontent.Table, sqlgraph.NewFieldSpec(lessoncontent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestID(); ok {
		_spec.SetField(lessoncontent.FieldQuestID, field.TypeInt, value)
		_node.QuestID = value
	}
	if value, ok := _c.mutation.Emoji(); ok {
		_spec.SetField(lessoncontent.FieldEmoji, field.TypeString, value)
		_node.Emoji = value
	}
	if value, ok := _c.mutation.Heading(); ok {
		_spec.SetField(lessoncontent.FieldHeading, field.TypeString, value)
		_node.Heading = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(lessoncontent.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(lessoncontent.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.Hints(); ok {
		_spec.SetField(lessoncontent.FieldHints, field.TypeJSON, value)
		_node.Hints = value
	}
	return _node, _spec
}

// LessonContentCreateBulk is the builder for creating many LessonContent entities in bulk.
type LessonContentCreateBulk struct {
	config
	err      error
	builders []*LessonContentCreate
}

// Save creates the LessonContent entities in the database.
func (_c *LessonContentCreateBulk) Save(ctx context.Context) ([]*LessonContent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonContent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonContentMutation)
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
func (_c *LessonContentCreateBulk) SaveX(ctx context.Context) []*LessonContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

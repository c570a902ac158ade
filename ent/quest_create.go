// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cookquest/ent/quest"
)

// QuestCreate is the builder for creating a Quest entity.
type QuestCreate struct {
	config
	mutation *QuestMutation
	hooks    []Hook
}

// SetSeq sets the "seq" field.
func (_c *QuestCreate) SetSeq(v int) *QuestCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *QuestCreate) SetTitle(v string) *QuestCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetQuestType sets the "quest_type" field.
func (_c *QuestCreate) SetQuestType(v string) *QuestCreate {
	_c.mutation.SetQuestType(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *QuestCreate) SetCategory(v string) *QuestCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetCuisineType sets the "cuisine_type" field.
func (_c *QuestCreate) SetCuisineType(v string) *QuestCreate {
	_c.mutation.SetCuisineType(v)
	return _c
}

// SetNillableCuisineType sets the "cuisine_type" field if the given value is not nil.
func (_c *QuestCreate) SetNillableCuisineType(v *string) *QuestCreate {
	if v != nil {
		_c.SetCuisineType(*v)
	}
	return _c
}

// SetMaxStars sets the "max_stars" field.
func (_c *QuestCreate) SetMaxStars(v int) *QuestCreate {
	_c.mutation.SetMaxStars(v)
	return _c
}

// SetInitialStatus sets the "initial_status" field.
func (_c *QuestCreate) SetInitialStatus(v string) *QuestCreate {
	_c.mutation.SetInitialStatus(v)
	return _c
}

// SetInitialStars sets the "initial_stars" field.
func (_c *QuestCreate) SetInitialStars(v int) *QuestCreate {
	_c.mutation.SetInitialStars(v)
	return _c
}

// SetNillableInitialStars sets the "initial_stars" field if the given value is not nil.
func (_c *QuestCreate) SetNillableInitialStars(v *int) *QuestCreate {
	if v != nil {
		_c.SetInitialStars(*v)
	}
	return _c
}

// SetPrerequisites sets the "prerequisites" field.
func (_c *QuestCreate) SetPrerequisites(v []int) *QuestCreate {
	_c.mutation.SetPrerequisites(v)
	return _c
}

// Mutation returns the QuestMutation object of the builder.
func (_c *QuestCreate) Mutation() *QuestMutation {
	return _c.mutation
}

// Save creates the Quest in the database.
func (_c *QuestCreate) Save(ctx context.Context) (*Quest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestCreate) SaveX(ctx context.Context) *Quest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestCreate) defaults() {
	if _, ok := _c.mutation.InitialStars(); !ok {
		v := quest.DefaultInitialStars
		_c.mutation.SetInitialStars(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestCreate) check() error {
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "Quest.seq"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Quest.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := quest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Quest.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestType(); !ok {
		return &ValidationError{Name: "quest_type", err: errors.New(`ent: missing required field "Quest.quest_type"`)}
	}
	if v, ok := _c.mutation.QuestType(); ok {
		if err := quest.QuestTypeValidator(v); err != nil {
			return &ValidationError{Name: "quest_type", err: fmt.Errorf(`ent: validator failed for field "Quest.quest_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Quest.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := quest.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Quest.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxStars(); !ok {
		return &ValidationError{Name: "max_stars", err: errors.New(`ent: missing required field "Quest.max_stars"`)}
	}
	if v, ok := _c.mutation.MaxStars(); ok {
		if err := quest.MaxStarsValidator(v); err != nil {
			return &ValidationError{Name: "max_stars", err: fmt.Errorf(`ent: validator failed for field "Quest.max_stars": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InitialStatus(); !ok {
		return &ValidationError{Name: "initial_status", err: errors.New(`ent: missing required field "Quest.initial_status"`)}
	}
	if v, ok := _c.mutation.InitialStatus(); ok {
		if err := quest.InitialStatusValidator(v); err != nil {
			return &ValidationError{Name: "initial_status", err: fmt.Errorf(`ent: validator failed for field "Quest.initial_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InitialStars(); !ok {
		return &ValidationError{Name: "initial_stars", err: errors.New(`ent: missing required field "Quest.initial_stars"`)}
	}
	if _, ok := _c.mutation.Prerequisites(); !ok {
		return &ValidationError{Name: "prerequisites", err: errors.New(`ent: missing required field "Quest.prerequisites"`)}
	}
	return nil
}

func (_c *QuestCreate) sqlSave(ctx context.Context) (*Quest, error) {
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

func (_c *QuestCreate) createSpec() (*Quest, *sqlgraph.CreateSpec) {
	var (
		_node = &Quest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quest.Table, sqlgraph.NewFieldSpec(quest.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(quest.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(quest.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.QuestType(); ok {
		_spec.SetField(quest.FieldQuestType, field.TypeString, value)
		_node.QuestType = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(quest.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.CuisineType(); ok {
		_spec.SetField(quest.FieldCuisineType, field.TypeString, value)
		_node.CuisineType = value
	}
	if value, ok := _c.mutation.MaxStars(); ok {
		_spec.SetField(quest.FieldMaxStars, field.TypeInt, value)
		_node.MaxStars = value
	}
	if value, ok := _c.mutation.InitialStatus(); ok {
		_spec.SetField(quest.FieldInitialStatus, field.TypeString, value)
		_node.InitialStatus = value
	}
	if value, ok := _c.mutation.InitialStars(); ok {
		_spec.SetField(quest.FieldInitialStars, field.TypeInt, value)
		_node.InitialStars = value
	}
	if value, ok := _c.mutation.Prerequisites(); ok {
		_spec.SetField(quest.FieldPrerequisites, field.TypeJSON, value)
		_node.Prerequisites = value
	}
	return _node, _spec
}

// QuestCreateBulk is the builder for creating many Quest entities in bulk.
type QuestCreateBulk struct {
	config
	err      error
	builders []*QuestCreate
}

// Save creates the Quest entities in the database.
func (_c *QuestCreateBulk) Save(ctx context.Context) ([]*Quest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Quest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestMutation)
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
func (_c *QuestCreateBulk) SaveX(ctx context.Context) []*Quest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

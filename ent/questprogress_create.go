// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cookquest/ent/questprogress"
)

// QuestProgressCreate is the builder for creating a QuestProgress entity.
type QuestProgressCreate struct {
	config
	mutation *QuestProgressMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *QuestProgressCreate) SetLearnerID(v string) *QuestProgressCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetQuestID sets the "quest_id" field.
func (_c *QuestProgressCreate) SetQuestID(v int) *QuestProgressCreate {
	_c.mutation.SetQuestID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QuestProgressCreate) SetStatus(v string) *QuestProgressCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetStars sets the "stars" field.
func (_c *QuestProgressCreate) SetStars(v int) *QuestProgressCreate {
	_c.mutation.SetStars(v)
	return _c
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_c *QuestProgressCreate) SetNillableStars(v *int) *QuestProgressCreate {
	if v != nil {
		_c.SetStars(*v)
	}
	return _c
}

// Mutation returns the QuestProgressMutation object of the builder.
func (_c *QuestProgressCreate) Mutation() *QuestProgressMutation {
	return _c.mutation
}

// Save creates the QuestProgress in the database.
func (_c *QuestProgressCreate) Save(ctx context.Context) (*QuestProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestProgressCreate) SaveX(ctx context.Context) *QuestProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestProgressCreate) defaults() {
	if _, ok := _c.mutation.Stars(); !ok {
		v := questprogress.DefaultStars
		_c.mutation.SetStars(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestProgressCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "QuestProgress.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := questprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "QuestProgress.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestID(); !ok {
		return &ValidationError{Name: "quest_id", err: errors.New(`ent: missing required field "QuestProgress.quest_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QuestProgress.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := questprogress.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuestProgress.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stars(); !ok {
		return &ValidationError{Name: "stars", err: errors.New(`ent: missing required field "QuestProgress.stars"`)}
	}
	if v, ok := _c.mutation.Stars(); ok {
		if err := questprogress.StarsValidator(v); err != nil {
			return &ValidationError{Name: "stars", err: fmt.Errorf(`ent: validator failed for field "QuestProgress.stars": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestProgressCreate) sqlSave(ctx context.Context) (*QuestProgress, error) {
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

func (_c *QuestProgressCreate) createSpec() (*QuestProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questprogress.Table, sqlgraph.NewFieldSpec(questprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(questprogress.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.QuestID(); ok {
		_spec.SetField(questprogress.FieldQuestID, field.TypeInt, value)
		_node.QuestID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(questprogress.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Stars(); ok {
		_spec.SetField(questprogress.FieldStars, field.TypeInt, value)
		_node.Stars = value
	}
	return _node, _spec
}

// QuestProgressCreateBulk is the builder for creating many QuestProgress entities in bulk.
type QuestProgressCreateBulk struct {
	config
	err      error
	builders []*QuestProgressCreate
}

// Save creates the QuestProgress entities in the database.
func (_c *QuestProgressCreateBulk) Save(ctx context.Context) ([]*QuestProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestProgressMutation)
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
func (_c *QuestProgressCreateBulk) SaveX(ctx context.Context) []*QuestProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cookquest/ent/minigameattempt"
	"github.com/google/uuid"
)

// MinigameAttemptCreate is the builder for creating a MinigameAttempt entity.
type MinigameAttemptCreate struct {
	config
	mutation *MinigameAttemptMutation
	hooks    []Hook
}

// SetMinigameID sets the "minigame_id" field.
func (_c *MinigameAttemptCreate) SetMinigameID(v int) *MinigameAttemptCreate {
	_c.mutation.SetMinigameID(v)
	return _c
}

// SetQuestID sets the "quest_id" field.
func (_c *MinigameAttemptCreate) SetQuestID(v int) *MinigameAttemptCreate {
	_c.mutation.SetQuestID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *MinigameAttemptCreate) SetLearnerID(v string) *MinigameAttemptCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *MinigameAttemptCreate) SetScore(v int) *MinigameAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *MinigameAttemptCreate) SetTotalQuestions(v int) *MinigameAttemptCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *MinigameAttemptCreate) SetCorrectAnswers(v int) *MinigameAttemptCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_c *MinigameAttemptCreate) SetTimeSpentSecs(v int) *MinigameAttemptCreate {
	_c.mutation.SetTimeSpentSecs(v)
	return _c
}

// SetPassed sets the "passed" field.
func (_c *MinigameAttemptCreate) SetPassed(v bool) *MinigameAttemptCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MinigameAttemptCreate) SetCompletedAt(v time.Time) *MinigameAttemptCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MinigameAttemptCreate) SetNillableCompletedAt(v *time.Time) *MinigameAttemptCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MinigameAttemptCreate) SetID(v uuid.UUID) *MinigameAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MinigameAttemptCreate) SetNillableID(v *uuid.UUID) *MinigameAttemptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MinigameAttemptMutation object of the builder.
func (_c *MinigameAttemptCreate) Mutation() *MinigameAttemptMutation {
	return _c.mutation
}

// Save creates the MinigameAttempt in the database.
func (_c *MinigameAttemptCreate) Save(ctx context.Context) (*MinigameAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MinigameAttemptCreate) SaveX(ctx context.Context) *MinigameAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MinigameAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MinigameAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MinigameAttemptCreate) defaults() {
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := minigameattempt.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := minigameattempt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MinigameAttemptCreate) check() error {
	if _, ok := _c.mutation.MinigameID(); !ok {
		return &ValidationError{Name: "minigame_id", err: errors.New(`ent: missing required field "MinigameAttempt.minigame_id"`)}
	}
	if _, ok := _c.mutation.QuestID(); !ok {
		return &ValidationError{Name: "quest_id", err: errors.New(`ent: missing required field "MinigameAttempt.quest_id"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "MinigameAttempt.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := minigameattempt.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "MinigameAttempt.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := minigameattempt.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "MinigameAttempt.total_questions"`)}
	}
	if v, ok := _c.mutation.TotalQuestions(); ok {
		if err := minigameattempt.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.total_questions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "MinigameAttempt.correct_answers"`)}
	}
	if v, ok := _c.mutation.CorrectAnswers(); ok {
		if err := minigameattempt.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.correct_answers": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeSpentSecs(); !ok {
		return &ValidationError{Name: "time_spent_secs", err: errors.New(`ent: missing required field "MinigameAttempt.time_spent_secs"`)}
	}
	if v, ok := _c.mutation.TimeSpentSecs(); ok {
		if err := minigameattempt.TimeSpentSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_secs", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.time_spent_secs": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "MinigameAttempt.passed"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "MinigameAttempt.completed_at"`)}
	}
	return nil
}

func (_c *MinigameAttemptCreate) sqlSave(ctx context.Context) (*MinigameAttempt, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MinigameAttemptCreate) createSpec() (*MinigameAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &MinigameAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(minigameattempt.Table, sqlgraph.NewFieldSpec(minigameattempt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.MinigameID(); ok {
		_spec.SetField(minigameattempt.FieldMinigameID, field.TypeInt, value)
		_node.MinigameID = value
	}
	if value, ok := _c.mutation.QuestID(); ok {
		_spec.SetField(minigameattempt.FieldQuestID, field.TypeInt, value)
		_node.QuestID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(minigameattempt.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(minigameattempt.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(minigameattempt.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(minigameattempt.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.TimeSpentSecs(); ok {
		_spec.SetField(minigameattempt.FieldTimeSpentSecs, field.TypeInt, value)
		_node.TimeSpentSecs = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(minigameattempt.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(minigameattempt.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	return _node, _spec
}

// MinigameAttemptCreateBulk is the builder for creating many MinigameAttempt entities in bulk.
type MinigameAttemptCreateBulk struct {
	config
	err      error
	builders []*MinigameAttemptCreate
}

// Save creates the MinigameAttempt entities in the database.
func (_c *MinigameAttemptCreateBulk) Save(ctx context.Context) ([]*MinigameAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MinigameAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MinigameAttemptMutation)
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
func (_c *MinigameAttemptCreateBulk) SaveX(ctx context.Context) []*MinigameAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MinigameAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MinigameAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

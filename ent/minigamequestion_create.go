// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cookquest/ent/minigamequestion"
)

// MinigameQuestionCreate is the builder for creating a MinigameQuestion entity.
type MinigameQuestionCreate struct {
	config
	mutation *MinigameQuestionMutation
	hooks    []Hook
}

// SetMinigameID sets the "minigame_id" field.
func (_c *MinigameQuestionCreate) SetMinigameID(v int) *MinigameQuestionCreate {
	_c.mutation.SetMinigameID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *MinigameQuestionCreate) SetSeq(v int) *MinigameQuestionCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *MinigameQuestionCreate) SetQuestionType(v string) *MinigameQuestionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *MinigameQuestionCreate) SetQuestionText(v string) *MinigameQuestionCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetLeftItems sets the "left_items" field.
func (_c *MinigameQuestionCreate) SetLeftItems(v []string) *MinigameQuestionCreate {
	_c.mutation.SetLeftItems(v)
	return _c
}

// SetRightItems sets the "right_items" field.
func (_c *MinigameQuestionCreate) SetRightItems(v []string) *MinigameQuestionCreate {
	_c.mutation.SetRightItems(v)
	return _c
}

// SetCorrectMatches sets the "correct_matches" field.
func (_c *MinigameQuestionCreate) SetCorrectMatches(v []map[string]int) *MinigameQuestionCreate {
	_c.mutation.SetCorrectMatches(v)
	return _c
}

// SetBlankText sets the "blank_text" field.
func (_c *MinigameQuestionCreate) SetBlankText(v string) *MinigameQuestionCreate {
	_c.mutation.SetBlankText(v)
	return _c
}

// SetNillableBlankText sets the "blank_text" field if the given value is not nil.
func (_c *MinigameQuestionCreate) SetNillableBlankText(v *string) *MinigameQuestionCreate {
	if v != nil {
		_c.SetBlankText(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *MinigameQuestionCreate) SetCorrectAnswers(v []string) *MinigameQuestionCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *MinigameQuestionCreate) SetOptions(v []string) *MinigameQuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectOptionIndex sets the "correct_option_index" field.
func (_c *MinigameQuestionCreate) SetCorrectOptionIndex(v int) *MinigameQuestionCreate {
	_c.mutation.SetCorrectOptionIndex(v)
	return _c
}

// SetNillableCorrectOptionIndex sets the "correct_option_index" field if the given value is not nil.
func (_c *MinigameQuestionCreate) SetNillableCorrectOptionIndex(v *int) *MinigameQuestionCreate {
	if v != nil {
		_c.SetCorrectOptionIndex(*v)
	}
	return _c
}

// SetImageURL sets the "image_url" field.
func (_c *MinigameQuestionCreate) SetImageURL(v string) *MinigameQuestionCreate {
	_c.mutation.SetImageURL(v)
	return _c
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_c *MinigameQuestionCreate) SetNillableImageURL(v *string) *MinigameQuestionCreate {
	if v != nil {
		_c.SetImageURL(*v)
	}
	return _c
}

// SetAssociatedTerms sets the "associated_terms" field.
func (_c *MinigameQuestionCreate) SetAssociatedTerms(v []string) *MinigameQuestionCreate {
	_c.mutation.SetAssociatedTerms(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *MinigameQuestionCreate) SetExplanation(v string) *MinigameQuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *MinigameQuestionCreate) SetNillableExplanation(v *string) *MinigameQuestionCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetPoints sets the "points" field.
func (_c *MinigameQuestionCreate) SetPoints(v int) *MinigameQuestionCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *MinigameQuestionCreate) SetNillablePoints(v *int) *MinigameQuestionCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// Mutation returns the MinigameQuestionMutation object of the builder.
func (_c *MinigameQuestionCreate) Mutation() *MinigameQuestionMutation {
	return _c.mutation
}

// Save creates the MinigameQuestion in the database.
func (_c *MinigameQuestionCreate) Save(ctx context.Context) (*MinigameQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MinigameQuestionCreate) SaveX(ctx context.Context) *MinigameQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MinigameQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MinigameQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MinigameQuestionCreate) defaults() {
	if _, ok := _c.mutation.CorrectOptionIndex(); !ok {
		v := minigamequestion.DefaultCorrectOptionIndex
		_c.mutation.SetCorrectOptionIndex(v)
	}
	if _, ok := _c.mutation.Points(); !ok {
		v := minigamequestion.DefaultPoints
		_c.mutation.SetPoints(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MinigameQuestionCreate) check() error {
	if _, ok := _c.mutation.MinigameID(); !ok {
		return &ValidationError{Name: "minigame_id", err: errors.New(`ent: missing required field "MinigameQuestion.minigame_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "MinigameQuestion.seq"`)}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "MinigameQuestion.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := minigamequestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "MinigameQuestion.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "MinigameQuestion.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := minigamequestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "MinigameQuestion.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectOptionIndex(); !ok {
		return &ValidationError{Name: "correct_option_index", err: errors.New(`ent: missing required field "MinigameQuestion.correct_option_index"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "MinigameQuestion.points"`)}
	}
	if v, ok := _c.mutation.Points(); ok {
		if err := minigamequestion.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "MinigameQuestion.points": %w`, err)}
		}
	}
	return nil
}

func (_c *MinigameQuestionCreate) sqlSave(ctx context.Context) (*MinigameQuestion, error) {
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

func (_c *MinigameQuestionCreate) createSpec() (*MinigameQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &MinigameQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(minigamequestion.Table, sqlgraph.NewFieldSpec(minigamequestion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.MinigameID(); ok {
		_spec.SetField(minigamequestion.FieldMinigameID, field.TypeInt, value)
		_node.MinigameID = value
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(minigamequestion.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(minigamequestion.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(minigamequestion.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.LeftItems(); ok {
		_spec.SetField(minigamequestion.FieldLeftItems, field.TypeJSON, value)
		_node.LeftItems = value
	}
	if value, ok := _c.mutation.RightItems(); ok {
		_spec.SetField(minigamequestion.FieldRightItems, field.TypeJSON, value)
		_node.RightItems = value
	}
	if value, ok := _c.mutation.CorrectMatches(); ok {
		_spec.SetField(minigamequestion.FieldCorrectMatches, field.TypeJSON, value)
		_node.CorrectMatches = value
	}
	if value, ok := _c.mutation.BlankText(); ok {
		_spec.SetField(minigamequestion.FieldBlankText, field.TypeString, value)
		_node.BlankText = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(minigamequestion.FieldCorrectAnswers, field.TypeJSON, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(minigamequestion.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectOptionIndex(); ok {
		_spec.SetField(minigamequestion.FieldCorrectOptionIndex, field.TypeInt, value)
		_node.CorrectOptionIndex = value
	}
	if value, ok := _c.mutation.ImageURL(); ok {
		_spec.SetField(minigamequestion.FieldImageURL, field.TypeString, value)
		_node.ImageURL = value
	}
	if value, ok := _c.mutation.AssociatedTerms(); ok {
		_spec.SetField(minigamequestion.FieldAssociatedTerms, field.TypeJSON, value)
		_node.AssociatedTerms = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(minigamequestion.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(minigamequestion.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	return _node, _spec
}

// MinigameQuestionCreateBulk is the builder for creating many MinigameQuestion entities in bulk.
type MinigameQuestionCreateBulk struct {
	config
	err      error
	builders []*MinigameQuestionCreate
}

// Save creates the MinigameQuestion entities in the database.
func (_c *MinigameQuestionCreateBulk) Save(ctx context.Context) ([]*MinigameQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MinigameQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MinigameQuestionMutation)
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
func (_c *MinigameQuestionCreateBulk) SaveX(ctx context.Context) []*MinigameQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MinigameQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MinigameQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

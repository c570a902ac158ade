// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cookquest/ent/minigameattempt"
	"github.com/abhisek/cookquest/ent/predicate"
)

// MinigameAttemptUpdate is the builder for updating MinigameAttempt entities.
type MinigameAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *MinigameAttemptMutation
}

// Where appends a list predicates to the MinigameAttemptUpdate builder.
func (_u *MinigameAttemptUpdate) Where(ps ...predicate.MinigameAttempt) *MinigameAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMinigameID sets the "minigame_id" field.
func (_u *MinigameAttemptUpdate) SetMinigameID(v int) *MinigameAttemptUpdate {
	_u.mutation.ResetMinigameID()
	_u.mutation.SetMinigameID(v)
	return _u
}

// SetNillableMinigameID sets the "minigame_id" field if the given value is not nil.
func (_u *MinigameAttemptUpdate) SetNillableMinigameID(v *int) *MinigameAttemptUpdate {
	if v != nil {
		_u.SetMinigameID(*v)
	}
	return _u
}

// AddMinigameID adds value to the "minigame_id" field.
func (_u *MinigameAttemptUpdate) AddMinigameID(v int) *MinigameAttemptUpdate {
	_u.mutation.AddMinigameID(v)
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *MinigameAttemptUpdate) SetQuestID(v int) *MinigameAttemptUpdate {
	_u.mutation.ResetQuestID()
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *MinigameAttemptUpdate) SetNillableQuestID(v *int) *MinigameAttemptUpdate {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// AddQuestID adds value to the "quest_id" field.
func (_u *MinigameAttemptUpdate) AddQuestID(v int) *MinigameAttemptUpdate {
	_u.mutation.AddQuestID(v)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *MinigameAttemptUpdate) SetLearnerID(v string) *MinigameAttemptUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MinigameAttemptUpdate) SetNillableLearnerID(v *string) *MinigameAttemptUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MinigameAttemptUpdate) SetScore(v int) *MinigameAttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MinigameAttemptUpdate) SetNillableScore(v *int) *MinigameAttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MinigameAttemptUpdate) AddScore(v int) *MinigameAttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *MinigameAttemptUpdate) SetTotalQuestions(v int) *MinigameAttemptUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *MinigameAttemptUpdate) SetNillableTotalQuestions(v *int) *MinigameAttemptUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *MinigameAttemptUpdate) AddTotalQuestions(v int) *MinigameAttemptUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *MinigameAttemptUpdate) SetCorrectAnswers(v int) *MinigameAttemptUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *MinigameAttemptUpdate) SetNillableCorrectAnswers(v *int) *MinigameAttemptUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *MinigameAttemptUpdate) AddCorrectAnswers(v int) *MinigameAttemptUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *MinigameAttemptUpdate) SetTimeSpentSecs(v int) *MinigameAttemptUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *MinigameAttemptUpdate) SetNillableTimeSpentSecs(v *int) *MinigameAttemptUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *MinigameAttemptUpdate) AddTimeSpentSecs(v int) *MinigameAttemptUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *MinigameAttemptUpdate) SetPassed(v bool) *MinigameAttemptUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *MinigameAttemptUpdate) SetNillablePassed(v *bool) *MinigameAttemptUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the MinigameAttemptMutation object of the builder.
func (_u *MinigameAttemptUpdate) Mutation() *MinigameAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MinigameAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MinigameAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MinigameAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MinigameAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MinigameAttemptUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := minigameattempt.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := minigameattempt.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalQuestions(); ok {
		if err := minigameattempt.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.total_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := minigameattempt.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.correct_answers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeSpentSecs(); ok {
		if err := minigameattempt.TimeSpentSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_secs", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.time_spent_secs": %w`, err)}
		}
	}
	return nil
}

func (_u *MinigameAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(minigameattempt.Table, minigameattempt.Columns, sqlgraph.NewFieldSpec(minigameattempt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MinigameID(); ok {
		_spec.SetField(minigameattempt.FieldMinigameID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinigameID(); ok {
		_spec.AddField(minigameattempt.FieldMinigameID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(minigameattempt.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestID(); ok {
		_spec.AddField(minigameattempt.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(minigameattempt.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(minigameattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(minigameattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(minigameattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(minigameattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(minigameattempt.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(minigameattempt.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(minigameattempt.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(minigameattempt.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(minigameattempt.FieldPassed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{minigameattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MinigameAttemptUpdateOne is the builder for updating a single MinigameAttempt entity.
type MinigameAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MinigameAttemptMutation
}

// SetMinigameID sets the "minigame_id" field.
func (_u *MinigameAttemptUpdateOne) SetMinigameID(v int) *MinigameAttemptUpdateOne {
	_u.mutation.ResetMinigameID()
	_u.mutation.SetMinigameID(v)
	return _u
}

// SetNillableMinigameID sets the "minigame_id" field if the given value is not nil.
func (_u *MinigameAttemptUpdateOne) SetNillableMinigameID(v *int) *MinigameAttemptUpdateOne {
	if v != nil {
		_u.SetMinigameID(*v)
	}
	return _u
}

// AddMinigameID adds value to the "minigame_id" field.
func (_u *MinigameAttemptUpdateOne) AddMinigameID(v int) *MinigameAttemptUpdateOne {
	_u.mutation.AddMinigameID(v)
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *MinigameAttemptUpdateOne) SetQuestID(v int) *MinigameAttemptUpdateOne {
	_u.mutation.ResetQuestID()
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *MinigameAttemptUpdateOne) SetNillableQuestID(v *int) *MinigameAttemptUpdateOne {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// AddQuestID adds value to the "quest_id" field.
func (_u *MinigameAttemptUpdateOne) AddQuestID(v int) *MinigameAttemptUpdateOne {
	_u.mutation.AddQuestID(v)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *MinigameAttemptUpdateOne) SetLearnerID(v string) *MinigameAttemptUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *MinigameAttemptUpdateOne) SetNillableLearnerID(v *string) *MinigameAttemptUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *MinigameAttemptUpdateOne) SetScore(v int) *MinigameAttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MinigameAttemptUpdateOne) SetNillableScore(v *int) *MinigameAttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MinigameAttemptUpdateOne) AddScore(v int) *MinigameAttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *MinigameAttemptUpdateOne) SetTotalQuestions(v int) *MinigameAttemptUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *MinigameAttemptUpdateOne) SetNillableTotalQuestions(v *int) *MinigameAttemptUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *MinigameAttemptUpdateOne) AddTotalQuestions(v int) *MinigameAttemptUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *MinigameAttemptUpdateOne) SetCorrectAnswers(v int) *MinigameAttemptUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *MinigameAttemptUpdateOne) SetNillableCorrectAnswers(v *int) *MinigameAttemptUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *MinigameAttemptUpdateOne) AddCorrectAnswers(v int) *MinigameAttemptUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *MinigameAttemptUpdateOne) SetTimeSpentSecs(v int) *MinigameAttemptUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *MinigameAttemptUpdateOne) SetNillableTimeSpentSecs(v *int) *MinigameAttemptUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *MinigameAttemptUpdateOne) AddTimeSpentSecs(v int) *MinigameAttemptUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *MinigameAttemptUpdateOne) SetPassed(v bool) *MinigameAttemptUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *MinigameAttemptUpdateOne) SetNillablePassed(v *bool) *MinigameAttemptUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// Mutation returns the MinigameAttemptMutation object of the builder.
func (_u *MinigameAttemptUpdateOne) Mutation() *MinigameAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the MinigameAttemptUpdate builder.
func (_u *MinigameAttemptUpdateOne) Where(ps ...predicate.MinigameAttempt) *MinigameAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MinigameAttemptUpdateOne) Select(field string, fields ...string) *MinigameAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MinigameAttempt entity.
func (_u *MinigameAttemptUpdateOne) Save(ctx context.Context) (*MinigameAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MinigameAttemptUpdateOne) SaveX(ctx context.Context) *MinigameAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MinigameAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MinigameAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MinigameAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := minigameattempt.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := minigameattempt.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalQuestions(); ok {
		if err := minigameattempt.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.total_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := minigameattempt.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.correct_answers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeSpentSecs(); ok {
		if err := minigameattempt.TimeSpentSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_secs", err: fmt.Errorf(`ent: validator failed for field "MinigameAttempt.time_spent_secs": %w`, err)}
		}
	}
	return nil
}

func (_u *MinigameAttemptUpdateOne) sqlSave(ctx context.Context) (_node *MinigameAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(minigameattempt.Table, minigameattempt.Columns, sqlgraph.NewFieldSpec(minigameattempt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MinigameAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, minigameattempt.FieldID)
		for _, f := range fields {
			if !minigameattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != minigameattempt.FieldID {
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
	if value, ok := _u.mutation.MinigameID(); ok {
		_spec.SetField(minigameattempt.FieldMinigameID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinigameID(); ok {
		_spec.AddField(minigameattempt.FieldMinigameID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(minigameattempt.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestID(); ok {
		_spec.AddField(minigameattempt.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(minigameattempt.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(minigameattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(minigameattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(minigameattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(minigameattempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(minigameattempt.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(minigameattempt.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(minigameattempt.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(minigameattempt.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(minigameattempt.FieldPassed, field.TypeBool, value)
	}
	_node = &MinigameAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{minigameattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

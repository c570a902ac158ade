// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cookquest/ent/minigamequestion"
	"github.com/abhisek/cookquest/ent/predicate"
)

// MinigameQuestionUpdate is the builder for updating MinigameQuestion entities.
type MinigameQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *MinigameQuestionMutation
}

// Where appends a list predicates to the MinigameQuestionUpdate builder.
func (_u *MinigameQuestionUpdate) Where(ps ...predicate.MinigameQuestion) *MinigameQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMinigameID sets the "minigame_id" field.
func (_u *MinigameQuestionUpdate) SetMinigameID(v int) *MinigameQuestionUpdate {
	_u.mutation.ResetMinigameID()
	_u.mutation.SetMinigameID(v)
	return _u
}

// SetNillableMinigameID sets the "minigame_id" field if the given value is not nil.
func (_u *MinigameQuestionUpdate) SetNillableMinigameID(v *int) *MinigameQuestionUpdate {
	if v != nil {
		_u.SetMinigameID(*v)
	}
	return _u
}

// AddMinigameID adds value to the "minigame_id" field.
func (_u *MinigameQuestionUpdate) AddMinigameID(v int) *MinigameQuestionUpdate {
	_u.mutation.AddMinigameID(v)
	return _u
}

// SetSeq sets the "seq" field.
func (_u *MinigameQuestionUpdate) SetSeq(v int) *MinigameQuestionUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *MinigameQuestionUpdate) SetNillableSeq(v *int) *MinigameQuestionUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *MinigameQuestionUpdate) AddSeq(v int) *MinigameQuestionUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *MinigameQuestionUpdate) SetQuestionType(v string) *MinigameQuestionUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *MinigameQuestionUpdate) SetNillableQuestionType(v *string) *MinigameQuestionUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *MinigameQuestionUpdate) SetQuestionText(v string) *MinigameQuestionUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *MinigameQuestionUpdate) SetNillableQuestionText(v *string) *MinigameQuestionUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetLeftItems sets the "left_items" field.
func (_u *MinigameQuestionUpdate) SetLeftItems(v []string) *MinigameQuestionUpdate {
	_u.mutation.SetLeftItems(v)
	return _u
}

// AppendLeftItems appends value to the "left_items" field.
func (_u *MinigameQuestionUpdate) AppendLeftItems(v []string) *MinigameQuestionUpdate {
	_u.mutation.AppendLeftItems(v)
	return _u
}

// ClearLeftItems clears the value of the "left_items" field.
func (_u *MinigameQuestionUpdate) ClearLeftItems() *MinigameQuestionUpdate {
	_u.mutation.ClearLeftItems()
	return _u
}

// SetRightItems sets the "right_items" field.
func (_u *MinigameQuestionUpdate) SetRightItems(v []string) *MinigameQuestionUpdate {
	_u.mutation.SetRightItems(v)
	return _u
}

// AppendRightItems appends value to the "right_items" field.
func (_u *MinigameQuestionUpdate) AppendRightItems(v []string) *MinigameQuestionUpdate {
	_u.mutation.AppendRightItems(v)
	return _u
}

// ClearRightItems clears the value of the "right_items" field.
func (_u *MinigameQuestionUpdate) ClearRightItems() *MinigameQuestionUpdate {
	_u.mutation.ClearRightItems()
	return _u
}

// SetCorrectMatches sets the "correct_matches" field.
func (_u *MinigameQuestionUpdate) SetCorrectMatches(v []map[string]int) *MinigameQuestionUpdate {
	_u.mutation.SetCorrectMatches(v)
	return _u
}

// AppendCorrectMatches appends value to the "correct_matches" field.
func (_u *MinigameQuestionUpdate) AppendCorrectMatches(v []map[string]int) *MinigameQuestionUpdate {
	_u.mutation.AppendCorrectMatches(v)
	return _u
}

// ClearCorrectMatches clears the value of the "correct_matches" field.
func (_u *MinigameQuestionUpdate) ClearCorrectMatches() *MinigameQuestionUpdate {
	_u.mutation.ClearCorrectMatches()
	return _u
}

// SetBlankText sets the "blank_text" field.
func (_u *MinigameQuestionUpdate) SetBlankText(v string) *MinigameQuestionUpdate {
	_u.mutation.SetBlankText(v)
	return _u
}

// SetNillableBlankText sets the "blank_text" field if the given value is not nil.
func (_u *MinigameQuestionUpdate) SetNillableBlankText(v *string) *MinigameQuestionUpdate {
	if v != nil {
		_u.SetBlankText(*v)
	}
	return _u
}

// ClearBlankText clears the value of the "blank_text" field.
func (_u *MinigameQuestionUpdate) ClearBlankText() *MinigameQuestionUpdate {
	_u.mutation.ClearBlankText()
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *MinigameQuestionUpdate) SetCorrectAnswers(v []string) *MinigameQuestionUpdate {
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// AppendCorrectAnswers appends value to the "correct_answers" field.
func (_u *MinigameQuestionUpdate) AppendCorrectAnswers(v []string) *MinigameQuestionUpdate {
	_u.mutation.AppendCorrectAnswers(v)
	return _u
}

// ClearCorrectAnswers clears the value of the "correct_answers" field.
func (_u *MinigameQuestionUpdate) ClearCorrectAnswers() *MinigameQuestionUpdate {
	_u.mutation.ClearCorrectAnswers()
	return _u
}

// SetOptions sets the "options" field.
func (_u *MinigameQuestionUpdate) SetOptions(v []string) *MinigameQuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *MinigameQuestionUpdate) AppendOptions(v []string) *MinigameQuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *MinigameQuestionUpdate) ClearOptions() *MinigameQuestionUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectOptionIndex sets the "correct_option_index" field.
func (_u *MinigameQuestionUpdate) SetCorrectOptionIndex(v int) *MinigameQuestionUpdate {
	_u.mutation.ResetCorrectOptionIndex()
	_u.mutation.SetCorrectOptionIndex(v)
	return _u
}

// SetNillableCorrectOptionIndex sets the "correct_option_index" field if the given value is not nil.
func (_u *MinigameQuestionUpdate) SetNillableCorrectOptionIndex(v *int) *MinigameQuestionUpdate {
	if v != nil {
		_u.SetCorrectOptionIndex(*v)
	}
	return _u
}

// AddCorrectOptionIndex adds value to the "correct_option_index" field.
func (_u *MinigameQuestionUpdate) AddCorrectOptionIndex(v int) *MinigameQuestionUpdate {
	_u.mutation.AddCorrectOptionIndex(v)
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *MinigameQuestionUpdate) SetImageURL(v string) *MinigameQuestionUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *MinigameQuestionUpdate) SetNillableImageURL(v *string) *MinigameQuestionUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *MinigameQuestionUpdate) ClearImageURL() *MinigameQuestionUpdate {
	_u.mutation.ClearImageURL()
	return _u
}

// SetAssociatedTerms sets the "associated_terms" field.
func (_u *MinigameQuestionUpdate) SetAssociatedTerms(v []string) *MinigameQuestionUpdate {
	_u.mutation.SetAssociatedTerms(v)
	return _u
}

// AppendAssociatedTerms appends value to the "associated_terms" field.
func (_u *MinigameQuestionUpdate) AppendAssociatedTerms(v []string) *MinigameQuestionUpdate {
	_u.mutation.AppendAssociatedTerms(v)
	return _u
}

// ClearAssociatedTerms clears the value of the "associated_terms" field.
func (_u *MinigameQuestionUpdate) ClearAssociatedTerms() *MinigameQuestionUpdate {
	_u.mutation.ClearAssociatedTerms()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *MinigameQuestionUpdate) SetExplanation(v string) *MinigameQuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *MinigameQuestionUpdate) SetNillableExplanation(v *string) *MinigameQuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *MinigameQuestionUpdate) ClearExplanation() *MinigameQuestionUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// SetPoints sets the "points" field.
func (_u *MinigameQuestionUpdate) SetPoints(v int) *MinigameQuestionUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *MinigameQuestionUpdate) SetNillablePoints(v *int) *MinigameQuestionUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *MinigameQuestionUpdate) AddPoints(v int) *MinigameQuestionUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// Mutation returns the MinigameQuestionMutation object of the builder.
func (_u *MinigameQuestionUpdate) Mutation() *MinigameQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MinigameQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MinigameQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MinigameQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MinigameQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MinigameQuestionUpdate) check() error {
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := minigamequestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "MinigameQuestion.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := minigamequestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "MinigameQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := minigamequestion.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "MinigameQuestion.points": %w`, err)}
		}
	}
	return nil
}

func (_u *MinigameQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(minigamequestion.Table, minigamequestion.Columns, sqlgraph.NewFieldSpec(minigamequestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MinigameID(); ok {
		_spec.SetField(minigamequestion.FieldMinigameID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinigameID(); ok {
		_spec.AddField(minigamequestion.FieldMinigameID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(minigamequestion.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(minigamequestion.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(minigamequestion.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(minigamequestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeftItems(); ok {
		_spec.SetField(minigamequestion.FieldLeftItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLeftItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, minigamequestion.FieldLeftItems, value)
		})
	}
	if _u.mutation.LeftItemsCleared() {
		_spec.ClearField(minigamequestion.FieldLeftItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.RightItems(); ok {
		_spec.SetField(minigamequestion.FieldRightItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRightItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, minigamequestion.FieldRightItems, value)
		})
	}
	if _u.mutation.RightItemsCleared() {
		_spec.ClearField(minigamequestion.FieldRightItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectMatches(); ok {
		_spec.SetField(minigamequestion.FieldCorrectMatches, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectMatches(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, minigamequestion.FieldCorrectMatches, value)
		})
	}
	if _u.mutation.CorrectMatchesCleared() {
		_spec.ClearField(minigamequestion.FieldCorrectMatches, field.TypeJSON)
	}
	if value, ok := _u.mutation.BlankText(); ok {
		_spec.SetField(minigamequestion.FieldBlankText, field.TypeString, value)
	}
	if _u.mutation.BlankTextCleared() {
		_spec.ClearField(minigamequestion.FieldBlankText, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(minigamequestion.FieldCorrectAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, minigamequestion.FieldCorrectAnswers, value)
		})
	}
	if _u.mutation.CorrectAnswersCleared() {
		_spec.ClearField(minigamequestion.FieldCorrectAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(minigamequestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, minigamequestion.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(minigamequestion.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectOptionIndex(); ok {
		_spec.SetField(minigamequestion.FieldCorrectOptionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectOptionIndex(); ok {
		_spec.AddField(minigamequestion.FieldCorrectOptionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(minigamequestion.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(minigamequestion.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.AssociatedTerms(); ok {
		_spec.SetField(minigamequestion.FieldAssociatedTerms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssociatedTerms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, minigamequestion.FieldAssociatedTerms, value)
		})
	}
	if _u.mutation.AssociatedTermsCleared() {
		_spec.ClearField(minigamequestion.FieldAssociatedTerms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(minigamequestion.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(minigamequestion.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(minigamequestion.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(minigamequestion.FieldPoints, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{minigamequestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MinigameQuestionUpdateOne is the builder for updating a single MinigameQuestion entity.
type MinigameQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MinigameQuestionMutation
}

// SetMinigameID sets the "minigame_id" field.
func (_u *MinigameQuestionUpdateOne) SetMinigameID(v int) *MinigameQuestionUpdateOne {
	_u.mutation.ResetMinigameID()
	_u.mutation.SetMinigameID(v)
	return _u
}

// SetNillableMinigameID sets the "minigame_id" field if the given value is not nil.
func (_u *MinigameQuestionUpdateOne) SetNillableMinigameID(v *int) *MinigameQuestionUpdateOne {
	if v != nil {
		_u.SetMinigameID(*v)
	}
	return _u
}

// AddMinigameID adds value to the "minigame_id" field.
func (_u *MinigameQuestionUpdateOne) AddMinigameID(v int) *MinigameQuestionUpdateOne {
	_u.mutation.AddMinigameID(v)
	return _u
}

// SetSeq sets the "seq" field.
func (_u *MinigameQuestionUpdateOne) SetSeq(v int) *MinigameQuestionUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *MinigameQuestionUpdateOne) SetNillableSeq(v *int) *MinigameQuestionUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *MinigameQuestionUpdateOne) AddSeq(v int) *MinigameQuestionUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *MinigameQuestionUpdateOne) SetQuestionType(v string) *MinigameQuestionUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *MinigameQuestionUpdateOne) SetNillableQuestionType(v *string) *MinigameQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *MinigameQuestionUpdateOne) SetQuestionText(v string) *MinigameQuestionUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *MinigameQuestionUpdateOne) SetNillableQuestionText(v *string) *MinigameQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetLeftItems sets the "left_items" field.
func (_u *MinigameQuestionUpdateOne) SetLeftItems(v []string) *MinigameQuestionUpdateOne {
	_u.mutation.SetLeftItems(v)
	return _u
}

// AppendLeftItems appends value to the "left_items" field.
func (_u *MinigameQuestionUpdateOne) AppendLeftItems(v []string) *MinigameQuestionUpdateOne {
	_u.mutation.AppendLeftItems(v)
	return _u
}

// ClearLeftItems clears the value of the "left_items" field.
func (_u *MinigameQuestionUpdateOne) ClearLeftItems() *MinigameQuestionUpdateOne {
	_u.mutation.ClearLeftItems()
	return _u
}

// SetRightItems sets the "right_items" field.
func (_u *MinigameQuestionUpdateOne) SetRightItems(v []string) *MinigameQuestionUpdateOne {
	_u.mutation.SetRightItems(v)
	return _u
}

// AppendRightItems appends value to the "right_items" field.
func (_u *MinigameQuestionUpdateOne) AppendRightItems(v []string) *MinigameQuestionUpdateOne {
	_u.mutation.AppendRightItems(v)
	return _u
}

// ClearRightItems clears the value of the "right_items" field.
func (_u *MinigameQuestionUpdateOne) ClearRightItems() *MinigameQuestionUpdateOne {
	_u.mutation.ClearRightItems()
	return _u
}

// SetCorrectMatches sets the "correct_matches" field.
func (_u *MinigameQuestionUpdateOne) SetCorrectMatches(v []map[string]int) *MinigameQuestionUpdateOne {
	_u.mutation.SetCorrectMatches(v)
	return _u
}

// AppendCorrectMatches appends value to the "correct_matches" field.
func (_u *MinigameQuestionUpdateOne) AppendCorrectMatches(v []map[string]int) *MinigameQuestionUpdateOne {
	_u.mutation.AppendCorrectMatches(v)
	return _u
}

// ClearCorrectMatches clears the value of the "correct_matches" field.
func (_u *MinigameQuestionUpdateOne) ClearCorrectMatches() *MinigameQuestionUpdateOne {
	_u.mutation.ClearCorrectMatches()
	return _u
}

// SetBlankText sets the "blank_text" field.
func (_u *MinigameQuestionUpdateOne) SetBlankText(v string) *MinigameQuestionUpdateOne {
	_u.mutation.SetBlankText(v)
	return _u
}

// SetNillableBlankText sets the "blank_text" field if the given value is not nil.
func (_u *MinigameQuestionUpdateOne) SetNillableBlankText(v *string) *MinigameQuestionUpdateOne {
	if v != nil {
		_u.SetBlankText(*v)
	}
	return _u
}

// ClearBlankText clears the value of the "blank_text" field.
func (_u *MinigameQuestionUpdateOne) ClearBlankText() *MinigameQuestionUpdateOne {
	_u.mutation.ClearBlankText()
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *MinigameQuestionUpdateOne) SetCorrectAnswers(v []string) *MinigameQuestionUpdateOne {
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// AppendCorrectAnswers appends value to the "correct_answers" field.
func (_u *MinigameQuestionUpdateOne) AppendCorrectAnswers(v []string) *MinigameQuestionUpdateOne {
	_u.mutation.AppendCorrectAnswers(v)
	return _u
}

// ClearCorrectAnswers clears the value of the "correct_answers" field.
func (_u *MinigameQuestionUpdateOne) ClearCorrectAnswers() *MinigameQuestionUpdateOne {
	_u.mutation.ClearCorrectAnswers()
	return _u
}

// SetOptions sets the "options" field.
func (_u *MinigameQuestionUpdateOne) SetOptions(v []string) *MinigameQuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *MinigameQuestionUpdateOne) AppendOptions(v []string) *MinigameQuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *MinigameQuestionUpdateOne) ClearOptions() *MinigameQuestionUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectOptionIndex sets the "correct_option_index" field.
func (_u *MinigameQuestionUpdateOne) SetCorrectOptionIndex(v int) *MinigameQuestionUpdateOne {
	_u.mutation.ResetCorrectOptionIndex()
	_u.mutation.SetCorrectOptionIndex(v)
	return _u
}

// SetNillableCorrectOptionIndex sets the "correct_option_index" field if the given value is not nil.
func (_u *MinigameQuestionUpdateOne) SetNillableCorrectOptionIndex(v *int) *MinigameQuestionUpdateOne {
	if v != nil {
		_u.SetCorrectOptionIndex(*v)
	}
	return _u
}

// AddCorrectOptionIndex adds value to the "correct_option_index" field.
func (_u *MinigameQuestionUpdateOne) AddCorrectOptionIndex(v int) *MinigameQuestionUpdateOne {
	_u.mutation.AddCorrectOptionIndex(v)
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *MinigameQuestionUpdateOne) SetImageURL(v string) *MinigameQuestionUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *MinigameQuestionUpdateOne) SetNillableImageURL(v *string) *MinigameQuestionUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *MinigameQuestionUpdateOne) ClearImageURL() *MinigameQuestionUpdateOne {
	_u.mutation.ClearImageURL()
	return _u
}

// SetAssociatedTerms sets the "associated_terms" field.
func (_u *MinigameQuestionUpdateOne) SetAssociatedTerms(v []string) *MinigameQuestionUpdateOne {
	_u.mutation.SetAssociatedTerms(v)
	return _u
}

// AppendAssociatedTerms appends value to the "associated_terms" field.
func (_u *MinigameQuestionUpdateOne) AppendAssociatedTerms(v []string) *MinigameQuestionUpdateOne {
	_u.mutation.AppendAssociatedTerms(v)
	return _u
}

// ClearAssociatedTerms clears the value of the "associated_terms" field.
func (_u *MinigameQuestionUpdateOne) ClearAssociatedTerms() *MinigameQuestionUpdateOne {
	_u.mutation.ClearAssociatedTerms()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *MinigameQuestionUpdateOne) SetExplanation(v string) *MinigameQuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *MinigameQuestionUpdateOne) SetNillableExplanation(v *string) *MinigameQuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *MinigameQuestionUpdateOne) ClearExplanation() *MinigameQuestionUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// SetPoints sets the "points" field.
func (_u *MinigameQuestionUpdateOne) SetPoints(v int) *MinigameQuestionUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *MinigameQuestionUpdateOne) SetNillablePoints(v *int) *MinigameQuestionUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *MinigameQuestionUpdateOne) AddPoints(v int) *MinigameQuestionUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// Mutation returns the MinigameQuestionMutation object of the builder.
func (_u *MinigameQuestionUpdateOne) Mutation() *MinigameQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the MinigameQuestionUpdate builder.
func (_u *MinigameQuestionUpdateOne) Where(ps ...predicate.MinigameQuestion) *MinigameQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MinigameQuestionUpdateOne) Select(field string, fields ...string) *MinigameQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MinigameQuestion entity.
func (_u *MinigameQuestionUpdateOne) Save(ctx context.Context) (*MinigameQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MinigameQuestionUpdateOne) SaveX(ctx context.Context) *MinigameQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MinigameQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MinigameQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MinigameQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := minigamequestion.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "MinigameQuestion.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := minigamequestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "MinigameQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Points(); ok {
		if err := minigamequestion.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "MinigameQuestion.points": %w`, err)}
		}
	}
	return nil
}

func (_u *MinigameQuestionUpdateOne) sqlSave(ctx context.Context) (_node *MinigameQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(minigamequestion.Table, minigamequestion.Columns, sqlgraph.NewFieldSpec(minigamequestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MinigameQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, minigamequestion.FieldID)
		for _, f := range fields {
			if !minigamequestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != minigamequestion.FieldID {
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
		_spec.SetField(minigamequestion.FieldMinigameID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinigameID(); ok {
		_spec.AddField(minigamequestion.FieldMinigameID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(minigamequestion.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(minigamequestion.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(minigamequestion.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(minigamequestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeftItems(); ok {
		_spec.SetField(minigamequestion.FieldLeftItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLeftItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, minigamequestion.FieldLeftItems, value)
		})
	}
	if _u.mutation.LeftItemsCleared() {
		_spec.ClearField(minigamequestion.FieldLeftItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.RightItems(); ok {
		_spec.SetField(minigamequestion.FieldRightItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRightItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, minigamequestion.FieldRightItems, value)
		})
	}
	if _u.mutation.RightItemsCleared() {
		_spec.ClearField(minigamequestion.FieldRightItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectMatches(); ok {
		_spec.SetField(minigamequestion.FieldCorrectMatches, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectMatches(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, minigamequestion.FieldCorrectMatches, value)
		})
	}
	if _u.mutation.CorrectMatchesCleared() {
		_spec.ClearField(minigamequestion.FieldCorrectMatches, field.TypeJSON)
	}
	if value, ok := _u.mutation.BlankText(); ok {
		_spec.SetField(minigamequestion.FieldBlankText, field.TypeString, value)
	}
	if _u.mutation.BlankTextCleared() {
		_spec.ClearField(minigamequestion.FieldBlankText, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(minigamequestion.FieldCorrectAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCorrectAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, minigamequestion.FieldCorrectAnswers, value)
		})
	}
	if _u.mutation.CorrectAnswersCleared() {
		_spec.ClearField(minigamequestion.FieldCorrectAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(minigamequestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, minigamequestion.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(minigamequestion.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CorrectOptionIndex(); ok {
		_spec.SetField(minigamequestion.FieldCorrectOptionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectOptionIndex(); ok {
		_spec.AddField(minigamequestion.FieldCorrectOptionIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(minigamequestion.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(minigamequestion.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.AssociatedTerms(); ok {
		_spec.SetField(minigamequestion.FieldAssociatedTerms, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssociatedTerms(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, minigamequestion.FieldAssociatedTerms, value)
		})
	}
	if _u.mutation.AssociatedTermsCleared() {
		_spec.ClearField(minigamequestion.FieldAssociatedTerms, field.TypeJSON)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(minigamequestion.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(minigamequestion.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(minigamequestion.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(minigamequestion.FieldPoints, field.TypeInt, value)
	}
	_node = &MinigameQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{minigamequestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

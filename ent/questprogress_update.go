// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cookquest/ent/predicate"
	"github.com/abhisek/cookquest/ent/questprogress"
)

// QuestProgressUpdate is the builder for updating QuestProgress entities.
type QuestProgressUpdate struct {
	config
	hooks    []Hook
	mutation *QuestProgressMutation
}

// Where appends a list predicates to the QuestProgressUpdate builder.
func (_u *QuestProgressUpdate) Where(ps ...predicate.QuestProgress) *QuestProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *QuestProgressUpdate) SetLearnerID(v string) *QuestProgressUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *QuestProgressUpdate) SetNillableLearnerID(v *string) *QuestProgressUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *QuestProgressUpdate) SetQuestID(v int) *QuestProgressUpdate {
	_u.mutation.ResetQuestID()
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *QuestProgressUpdate) SetNillableQuestID(v *int) *QuestProgressUpdate {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// AddQuestID adds value to the "quest_id" field.
func (_u *QuestProgressUpdate) AddQuestID(v int) *QuestProgressUpdate {
	_u.mutation.AddQuestID(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuestProgressUpdate) SetStatus(v string) *QuestProgressUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuestProgressUpdate) SetNillableStatus(v *string) *QuestProgressUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStars sets the "stars" field.
func (_u *QuestProgressUpdate) SetStars(v int) *QuestProgressUpdate {
	_u.mutation.ResetStars()
	_u.mutation.SetStars(v)
	return _u
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_u *QuestProgressUpdate) SetNillableStars(v *int) *QuestProgressUpdate {
	if v != nil {
		_u.SetStars(*v)
	}
	return _u
}

// AddStars adds value to the "stars" field.
func (_u *QuestProgressUpdate) AddStars(v int) *QuestProgressUpdate {
	_u.mutation.AddStars(v)
	return _u
}

// Mutation returns the QuestProgressMutation object of the builder.
func (_u *QuestProgressUpdate) Mutation() *QuestProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestProgressUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := questprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "QuestProgress.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := questprogress.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuestProgress.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stars(); ok {
		if err := questprogress.StarsValidator(v); err != nil {
			return &ValidationError{Name: "stars", err: fmt.Errorf(`ent: validator failed for field "QuestProgress.stars": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questprogress.Table, questprogress.Columns, sqlgraph.NewFieldSpec(questprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(questprogress.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(questprogress.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestID(); ok {
		_spec.AddField(questprogress.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(questprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stars(); ok {
		_spec.SetField(questprogress.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStars(); ok {
		_spec.AddField(questprogress.FieldStars, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestProgressUpdateOne is the builder for updating a single QuestProgress entity.
type QuestProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestProgressMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *QuestProgressUpdateOne) SetLearnerID(v string) *QuestProgressUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *QuestProgressUpdateOne) SetNillableLearnerID(v *string) *QuestProgressUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *QuestProgressUpdateOne) SetQuestID(v int) *QuestProgressUpdateOne {
	_u.mutation.ResetQuestID()
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *QuestProgressUpdateOne) SetNillableQuestID(v *int) *QuestProgressUpdateOne {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// AddQuestID adds value to the "quest_id" field.
func (_u *QuestProgressUpdateOne) AddQuestID(v int) *QuestProgressUpdateOne {
	_u.mutation.AddQuestID(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuestProgressUpdateOne) SetStatus(v string) *QuestProgressUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuestProgressUpdateOne) SetNillableStatus(v *string) *QuestProgressUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStars sets the "stars" field.
func (_u *QuestProgressUpdateOne) SetStars(v int) *QuestProgressUpdateOne {
	_u.mutation.ResetStars()
	_u.mutation.SetStars(v)
	return _u
}

// SetNillableStars sets the "stars" field if the given value is not nil.
func (_u *QuestProgressUpdateOne) SetNillableStars(v *int) *QuestProgressUpdateOne {
	if v != nil {
		_u.SetStars(*v)
	}
	return _u
}

// AddStars adds value to the "stars" field.
func (_u *QuestProgressUpdateOne) AddStars(v int) *QuestProgressUpdateOne {
	_u.mutation.AddStars(v)
	return _u
}

// Mutation returns the QuestProgressMutation object of the builder.
func (_u *QuestProgressUpdateOne) Mutation() *QuestProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestProgressUpdate builder.
func (_u *QuestProgressUpdateOne) Where(ps ...predicate.QuestProgress) *QuestProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestProgressUpdateOne) Select(field string, fields ...string) *QuestProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestProgress entity.
func (_u *QuestProgressUpdateOne) Save(ctx context.Context) (*QuestProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestProgressUpdateOne) SaveX(ctx context.Context) *QuestProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestProgressUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := questprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "QuestProgress.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := questprogress.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuestProgress.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stars(); ok {
		if err := questprogress.StarsValidator(v); err != nil {
			return &ValidationError{Name: "stars", err: fmt.Errorf(`ent: validator failed for field "QuestProgress.stars": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestProgressUpdateOne) sqlSave(ctx context.Context) (_node *QuestProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questprogress.Table, questprogress.Columns, sqlgraph.NewFieldSpec(questprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questprogress.FieldID)
		for _, f := range fields {
			if !questprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questprogress.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(questprogress.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(questprogress.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestID(); ok {
		_spec.AddField(questprogress.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(questprogress.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stars(); ok {
		_spec.SetField(questprogress.FieldStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStars(); ok {
		_spec.AddField(questprogress.FieldStars, field.TypeInt, value)
	}
	_node = &QuestProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

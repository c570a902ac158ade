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
	"github.com/abhisek/cookquest/ent/predicate"
	"github.com/abhisek/cookquest/ent/quest"
)

// QuestUpdate is the builder for updating Quest entities.
type QuestUpdate struct {
	config
	hooks    []Hook
	mutation *QuestMutation
}

// Where appends a list predicates to the QuestUpdate builder.
func (_u *QuestUpdate) Where(ps ...predicate.Quest) *QuestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSeq sets the "seq" field.
func (_u *QuestUpdate) SetSeq(v int) *QuestUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *QuestUpdate) SetNillableSeq(v *int) *QuestUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *QuestUpdate) AddSeq(v int) *QuestUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuestUpdate) SetTitle(v string) *QuestUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuestUpdate) SetNillableTitle(v *string) *QuestUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetQuestType sets the "quest_type" field.
func (_u *QuestUpdate) SetQuestType(v string) *QuestUpdate {
	_u.mutation.SetQuestType(v)
	return _u
}

// SetNillableQuestType sets the "quest_type" field if the given value is not nil.
func (_u *QuestUpdate) SetNillableQuestType(v *string) *QuestUpdate {
	if v != nil {
		_u.SetQuestType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *QuestUpdate) SetCategory(v string) *QuestUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuestUpdate) SetNillableCategory(v *string) *QuestUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCuisineType sets the "cuisine_type" field.
func (_u *QuestUpdate) SetCuisineType(v string) *QuestUpdate {
	_u.mutation.SetCuisineType(v)
	return _u
}

// SetNillableCuisineType sets the "cuisine_type" field if the given value is not nil.
func (_u *QuestUpdate) SetNillableCuisineType(v *string) *QuestUpdate {
	if v != nil {
		_u.SetCuisineType(*v)
	}
	return _u
}

// ClearCuisineType clears the value of the "cuisine_type" field.
func (_u *QuestUpdate) ClearCuisineType() *QuestUpdate {
	_u.mutation.ClearCuisineType()
	return _u
}

// SetMaxStars sets the "max_stars" field.
func (_u *QuestUpdate) SetMaxStars(v int) *QuestUpdate {
	_u.mutation.ResetMaxStars()
	_u.mutation.SetMaxStars(v)
	return _u
}

// SetNillableMaxStars sets the "max_stars" field if the given value is not nil.
func (_u *QuestUpdate) SetNillableMaxStars(v *int) *QuestUpdate {
	if v != nil {
		_u.SetMaxStars(*v)
	}
	return _u
}

// AddMaxStars adds value to the "max_stars" field.
func (_u *QuestUpdate) AddMaxStars(v int) *QuestUpdate {
	_u.mutation.AddMaxStars(v)
	return _u
}

// SetInitialStatus sets the "initial_status" field.
func (_u *QuestUpdate) SetInitialStatus(v string) *QuestUpdate {
	_u.mutation.SetInitialStatus(v)
	return _u
}

// SetNillableInitialStatus sets the "initial_status" field if the given value is not nil.
func (_u *QuestUpdate) SetNillableInitialStatus(v *string) *QuestUpdate {
	if v != nil {
		_u.SetInitialStatus(*v)
	}
	return _u
}

// SetInitialStars sets the "initial_stars" field.
func (_u *QuestUpdate) SetInitialStars(v int) *QuestUpdate {
	_u.mutation.ResetInitialStars()
	_u.mutation.SetInitialStars(v)
	return _u
}

// SetNillableInitialStars sets the "initial_stars" field if the given value is not nil.
func (_u *QuestUpdate) SetNillableInitialStars(v *int) *QuestUpdate {
	if v != nil {
		_u.SetInitialStars(*v)
	}
	return _u
}

// AddInitialStars adds value to the "initial_stars" field.
func (_u *QuestUpdate) AddInitialStars(v int) *QuestUpdate {
	_u.mutation.AddInitialStars(v)
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *QuestUpdate) SetPrerequisites(v []int) *QuestUpdate {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *QuestUpdate) AppendPrerequisites(v []int) *QuestUpdate {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// Mutation returns the QuestMutation object of the builder.
func (_u *QuestUpdate) Mutation() *QuestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := quest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Quest.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestType(); ok {
		if err := quest.QuestTypeValidator(v); err != nil {
			return &ValidationError{Name: "quest_type", err: fmt.Errorf(`ent: validator failed for field "Quest.quest_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := quest.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Quest.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxStars(); ok {
		if err := quest.MaxStarsValidator(v); err != nil {
			return &ValidationError{Name: "max_stars", err: fmt.Errorf(`ent: validator failed for field "Quest.max_stars": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InitialStatus(); ok {
		if err := quest.InitialStatusValidator(v); err != nil {
			return &ValidationError{Name: "initial_status", err: fmt.Errorf(`ent: validator failed for field "Quest.initial_status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quest.Table, quest.Columns, sqlgraph.NewFieldSpec(quest.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(quest.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(quest.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(quest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestType(); ok {
		_spec.SetField(quest.FieldQuestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(quest.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CuisineType(); ok {
		_spec.SetField(quest.FieldCuisineType, field.TypeString, value)
	}
	if _u.mutation.CuisineTypeCleared() {
		_spec.ClearField(quest.FieldCuisineType, field.TypeString)
	}
	if value, ok := _u.mutation.MaxStars(); ok {
		_spec.SetField(quest.FieldMaxStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxStars(); ok {
		_spec.AddField(quest.FieldMaxStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InitialStatus(); ok {
		_spec.SetField(quest.FieldInitialStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.InitialStars(); ok {
		_spec.SetField(quest.FieldInitialStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInitialStars(); ok {
		_spec.AddField(quest.FieldInitialStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(quest.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quest.FieldPrerequisites, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestUpdateOne is the builder for updating a single Quest entity.
type QuestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestMutation
}

// SetSeq sets the "seq" field.
func (_u *QuestUpdateOne) SetSeq(v int) *QuestUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *QuestUpdateOne) SetNillableSeq(v *int) *QuestUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *QuestUpdateOne) AddSeq(v int) *QuestUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuestUpdateOne) SetTitle(v string) *QuestUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuestUpdateOne) SetNillableTitle(v *string) *QuestUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetQuestType sets the "quest_type" field.
func (_u *QuestUpdateOne) SetQuestType(v string) *QuestUpdateOne {
	_u.mutation.SetQuestType(v)
	return _u
}

// SetNillableQuestType sets the "quest_type" field if the given value is not nil.
func (_u *QuestUpdateOne) SetNillableQuestType(v *string) *QuestUpdateOne {
	if v != nil {
		_u.SetQuestType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *QuestUpdateOne) SetCategory(v string) *QuestUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuestUpdateOne) SetNillableCategory(v *string) *QuestUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetCuisineType sets the "cuisine_type" field.
func (_u *QuestUpdateOne) SetCuisineType(v string) *QuestUpdateOne {
	_u.mutation.SetCuisineType(v)
	return _u
}

// SetNillableCuisineType sets the "cuisine_type" field if the given value is not nil.
func (_u *QuestUpdateOne) SetNillableCuisineType(v *string) *QuestUpdateOne {
	if v != nil {
		_u.SetCuisineType(*v)
	}
	return _u
}

// ClearCuisineType clears the value of the "cuisine_type" field.
func (_u *QuestUpdateOne) ClearCuisineType() *QuestUpdateOne {
	_u.mutation.ClearCuisineType()
	return _u
}

// SetMaxStars sets the "max_stars" field.
func (_u *QuestUpdateOne) SetMaxStars(v int) *QuestUpdateOne {
	_u.mutation.ResetMaxStars()
	_u.mutation.SetMaxStars(v)
	return _u
}

// SetNillableMaxStars sets the "max_stars" field if the given value is not nil.
func (_u *QuestUpdateOne) SetNillableMaxStars(v *int) *QuestUpdateOne {
	if v != nil {
		_u.SetMaxStars(*v)
	}
	return _u
}

// AddMaxStars adds value to the "max_stars" field.
func (_u *QuestUpdateOne) AddMaxStars(v int) *QuestUpdateOne {
	_u.mutation.AddMaxStars(v)
	return _u
}

// SetInitialStatus sets the "initial_status" field.
func (_u *QuestUpdateOne) SetInitialStatus(v string) *QuestUpdateOne {
	_u.mutation.SetInitialStatus(v)
	return _u
}

// SetNillableInitialStatus sets the "initial_status" field if the given value is not nil.
func (_u *QuestUpdateOne) SetNillableInitialStatus(v *string) *QuestUpdateOne {
	if v != nil {
		_u.SetInitialStatus(*v)
	}
	return _u
}

// SetInitialStars sets the "initial_stars" field.
func (_u *QuestUpdateOne) SetInitialStars(v int) *QuestUpdateOne {
	_u.mutation.ResetInitialStars()
	_u.mutation.SetInitialStars(v)
	return _u
}

// SetNillableInitialStars sets the "initial_stars" field if the given value is not nil.
func (_u *QuestUpdateOne) SetNillableInitialStars(v *int) *QuestUpdateOne {
	if v != nil {
		_u.SetInitialStars(*v)
	}
	return _u
}

// AddInitialStars adds value to the "initial_stars" field.
func (_u *QuestUpdateOne) AddInitialStars(v int) *QuestUpdateOne {
	_u.mutation.AddInitialStars(v)
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *QuestUpdateOne) SetPrerequisites(v []int) *QuestUpdateOne {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *QuestUpdateOne) AppendPrerequisites(v []int) *QuestUpdateOne {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// Mutation returns the QuestMutation object of the builder.
func (_u *QuestUpdateOne) Mutation() *QuestMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestUpdate builder.
func (_u *QuestUpdateOne) Where(ps ...predicate.Quest) *QuestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestUpdateOne) Select(field string, fields ...string) *QuestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Quest entity.
func (_u *QuestUpdateOne) Save(ctx context.Context) (*Quest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestUpdateOne) SaveX(ctx context.Context) *Quest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := quest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Quest.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestType(); ok {
		if err := quest.QuestTypeValidator(v); err != nil {
			return &ValidationError{Name: "quest_type", err: fmt.Errorf(`ent: validator failed for field "Quest.quest_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := quest.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Quest.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxStars(); ok {
		if err := quest.MaxStarsValidator(v); err != nil {
			return &ValidationError{Name: "max_stars", err: fmt.Errorf(`ent: validator failed for field "Quest.max_stars": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InitialStatus(); ok {
		if err := quest.InitialStatusValidator(v); err != nil {
			return &ValidationError{Name: "initial_status", err: fmt.Errorf(`ent: validator failed for field "Quest.initial_status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestUpdateOne) sqlSave(ctx context.Context) (_node *Quest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quest.Table, quest.Columns, sqlgraph.NewFieldSpec(quest.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Quest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quest.FieldID)
		for _, f := range fields {
			if !quest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quest.FieldID {
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
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(quest.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(quest.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(quest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestType(); ok {
		_spec.SetField(quest.FieldQuestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(quest.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.CuisineType(); ok {
		_spec.SetField(quest.FieldCuisineType, field.TypeString, value)
	}
	if _u.mutation.CuisineTypeCleared() {
		_spec.ClearField(quest.FieldCuisineType, field.TypeString)
	}
	if value, ok := _u.mutation.MaxStars(); ok {
		_spec.SetField(quest.FieldMaxStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxStars(); ok {
		_spec.AddField(quest.FieldMaxStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InitialStatus(); ok {
		_spec.SetField(quest.FieldInitialStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.InitialStars(); ok {
		_spec.SetField(quest.FieldInitialStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInitialStars(); ok {
		_spec.AddField(quest.FieldInitialStars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(quest.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quest.FieldPrerequisites, value)
		})
	}
	_node = &Quest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

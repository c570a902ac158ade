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
	"github.com/abhisek/cookquest/ent/lessoncontent"
	"github.com/abhisek/cookquest/ent/predicate"
)

// LessonContentUpdate is the builder for updating LessonContent entities.
type LessonContentUpdate struct {
	config
	hooks    []Hook
	mutation *LessonContentMutation
}

// Where appends a list predicates to the LessonContentUpdate builder.
func (_u *LessonContentUpdate) Where(ps ...predicate.LessonContent) *LessonContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestID sets the "quest_id" field.
func (_u *LessonContentUpdate) SetQuestID(v int) *LessonContentUpdate {
	_u.mutation.ResetQuestID()
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *LessonContentUpdate) SetNillableQuestID(v *int) *LessonContentUpdate {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// AddQuestID adds value to the "quest_id" field.
func (_u *LessonContentUpdate) AddQuestID(v int) *LessonContentUpdate {
	_u.mutation.AddQuestID(v)
	return _u
}

// SetEmoji sets the "emoji" field.
func (_u *LessonContentUpdate) SetEmoji(v string) *LessonContentUpdate {
	_u.mutation.SetEmoji(v)
	return _u
}

// SetNillableEmoji sets the "emoji" field if the given value is not nil.
func (_u *LessonContentUpdate) SetNillableEmoji(v *string) *LessonContentUpdate {
	if v != nil {
		_u.SetEmoji(*v)
	}
	return _u
}

// SetHeading sets the "heading" field.
func (_u *LessonContentUpdate) SetHeading(v string) *LessonContentUpdate {
	_u.mutation.SetHeading(v)
	return _u
}

// SetNillableHeading sets the "heading" field if the given value is not nil.
func (_u *LessonContentUpdate) SetNillableHeading(v *string) *LessonContentUpdate {
	if v != nil {
		_u.SetHeading(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LessonContentUpdate) SetDescription(v string) *LessonContentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LessonContentUpdate) SetNillableDescription(v *string) *LessonContentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *LessonContentUpdate) SetSteps(v []string) *LessonContentUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *LessonContentUpdate) AppendSteps(v []string) *LessonContentUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetHints sets the "hints" field.
func (_u *LessonContentUpdate) SetHints(v []string) *LessonContentUpdate {
	_u.mutation.SetHints(v)
	return _u
}

// AppendHints appends value to the "hints" field.
func (_u *LessonContentUpdate) AppendHints(v []string) *LessonContentUpdate {
	_u.mutation.AppendHints(v)
	return _u
}

// Mutation returns the LessonContentMutation object of the builder.
func (_u *LessonContentUpdate) Mutation() *LessonContentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonContentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonContentUpdate) check() error {
	if v, ok := _u.mutation.Heading(); ok {
		if err := lessoncontent.HeadingValidator(v); err != nil {
			return &ValidationError{Name: "heading", err: fmt.Errorf(`ent: validator failed for field "LessonContent.heading": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := lessoncontent.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "LessonContent.description": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessoncontent.Table, lessoncontent.Columns, sqlgraph.NewFieldSpec(lessoncontent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(lessoncontent.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestID(); ok {
		_spec.AddField(lessoncontent.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Emoji(); ok {
		_spec.SetField(lessoncontent.FieldEmoji, field.TypeString, value)
	}
	if value, ok := _u.mutation.Heading(); ok {
		_spec.SetField(lessoncontent.FieldHeading, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(lessoncontent.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(lessoncontent.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessoncontent.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.Hints(); ok {
		_spec.SetField(lessoncontent.FieldHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessoncontent.FieldHints, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessoncontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonContentUpdateOne is the builder for updating a single LessonContent entity.
type LessonContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonContentMutation
}

// SetQuestID sets the "quest_id" field.
func (_u *LessonContentUpdateOne) SetQuestID(v int) *LessonContentUpdateOne {
	_u.mutation.ResetQuestID()
	_u.mutation.SetQuestID(v)
	return _u
}

// SetNillableQuestID sets the "quest_id" field if the given value is not nil.
func (_u *LessonContentUpdateOne) SetNillableQuestID(v *int) *LessonContentUpdateOne {
	if v != nil {
		_u.SetQuestID(*v)
	}
	return _u
}

// AddQuestID adds value to the "quest_id" field.
func (_u *LessonContentUpdateOne) AddQuestID(v int) *LessonContentUpdateOne {
	_u.mutation.AddQuestID(v)
	return _u
}

// SetEmoji sets the "emoji" field.
func (_u *LessonContentUpdateOne) SetEmoji(v string) *LessonContentUpdateOne {
	_u.mutation.SetEmoji(v)
	return _u
}

// SetNillableEmoji sets the "emoji" field if the given value is not nil.
func (_u *LessonContentUpdateOne) SetNillableEmoji(v *string) *LessonContentUpdateOne {
	if v != nil {
		_u.SetEmoji(*v)
	}
	return _u
}

// SetHeading sets the "heading" field.
func (_u *LessonContentUpdateOne) SetHeading(v string) *LessonContentUpdateOne {
	_u.mutation.SetHeading(v)
	return _u
}

// SetNillableHeading sets the "heading" field if the given value is not nil.
func (_u *LessonContentUpdateOne) SetNillableHeading(v *string) *LessonContentUpdateOne {
	if v != nil {
		_u.SetHeading(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *LessonContentUpdateOne) SetDescription(v string) *LessonContentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *LessonContentUpdateOne) SetNillableDescription(v *string) *LessonContentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSteps sets the "steps" field.
func (_u *LessonContentUpdateOne) SetSteps(v []string) *LessonContentUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *LessonContentUpdateOne) AppendSteps(v []string) *LessonContentUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// SetHints sets the "hints" field.
func (_u *LessonContentUpdateOne) SetHints(v []string) *LessonContentUpdateOne {
	_u.mutation.SetHints(v)
	return _u
}

// AppendHints appends value to the "hints" field.
func (_u *LessonContentUpdateOne) AppendHints(v []string) *LessonContentUpdateOne {
	_u.mutation.AppendHints(v)
	return _u
}

// Mutation returns the LessonContentMutation object of the builder.
func (_u *LessonContentUpdateOne) Mutation() *LessonContentMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonContentUpdate builder.
func (_u *LessonContentUpdateOne) Where(ps ...predicate.LessonContent) *LessonContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonContentUpdateOne) Select(field string, fields ...string) *LessonContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonContent entity.
func (_u *LessonContentUpdateOne) Save(ctx context.Context) (*LessonContent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonContentUpdateOne) SaveX(ctx context.Context) *LessonContent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonContentUpdateOne) check() error {
	if v, ok := _u.mutation.Heading(); ok {
		if err := lessoncontent.HeadingValidator(v); err != nil {
			return &ValidationError{Name: "heading", err: fmt.Errorf(`ent: validator failed for field "LessonContent.heading": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := lessoncontent.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "LessonContent.description": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonContentUpdateOne) sqlSave(ctx context.Context) (_node *LessonContent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessoncontent.Table, lessoncontent.Columns, sqlgraph.NewFieldSpec(lessoncontent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonContent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessoncontent.FieldID)
		for _, f := range fields {
			if !lessoncontent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessoncontent.FieldID {
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
	if value, ok := _u.mutation.QuestID(); ok {
		_spec.SetField(lessoncontent.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestID(); ok {
		_spec.AddField(lessoncontent.FieldQuestID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Emoji(); ok {
		_spec.SetField(lessoncontent.FieldEmoji, field.TypeString, value)
	}
	if value, ok := _u.mutation.Heading(); ok {
		_spec.SetField(lessoncontent.FieldHeading, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(lessoncontent.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(lessoncontent.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessoncontent.FieldSteps, value)
		})
	}
	if value, ok := _u.mutation.Hints(); ok {
		_spec.SetField(lessoncontent.FieldHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessoncontent.FieldHints, value)
		})
	}
	_node = &LessonContent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessoncontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cookquest/ent/minigamequestion"
	"github.com/abhisek/cookquest/ent/predicate"
)

// MinigameQuestionDelete is the builder for deleting a MinigameQuestion entity.
type MinigameQuestionDelete struct {
	config
	hooks    []Hook
	mutation *MinigameQuestionMutation
}

// Where appends a list predicates to the MinigameQuestionDelete builder.
func (_d *MinigameQuestionDelete) Where(ps ...predicate.MinigameQuestion) *MinigameQuestionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MinigameQuestionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MinigameQuestionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MinigameQuestionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(minigamequestion.Table, sqlgraph.NewFieldSpec(minigamequestion.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MinigameQuestionDeleteOne is the builder for deleting a single MinigameQuestion entity.
type MinigameQuestionDeleteOne struct {
	_d *MinigameQuestionDelete
}

// Where appends a list predicates to the MinigameQuestionDelete builder.
func (_d *MinigameQuestionDeleteOne) Where(ps ...predicate.MinigameQuestion) *MinigameQuestionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MinigameQuestionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{minigamequestion.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MinigameQuestionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

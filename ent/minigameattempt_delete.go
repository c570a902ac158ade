// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cookquest/ent/minigameattempt"
	"github.com/abhisek/cookquest/ent/predicate"
)

// MinigameAttemptDelete is the builder for deleting a MinigameAttempt entity.
type MinigameAttemptDelete struct {
	config
	hooks    []Hook
	mutation *MinigameAttemptMutation
}

// Where appends a list predicates to the MinigameAttemptDelete builder.
func (_d *MinigameAttemptDelete) Where(ps ...predicate.MinigameAttempt) *MinigameAttemptDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MinigameAttemptDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MinigameAttemptDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MinigameAttemptDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(minigameattempt.Table, sqlgraph.NewFieldSpec(minigameattempt.FieldID, field.TypeUUID))
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

// MinigameAttemptDeleteOne is the builder for deleting a single MinigameAttempt entity.
type MinigameAttemptDeleteOne struct {
	_d *MinigameAttemptDelete
}

// Where appends a list predicates to the MinigameAttemptDelete builder.
func (_d *MinigameAttemptDeleteOne) Where(ps ...predicate.MinigameAttempt) *MinigameAttemptDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MinigameAttemptDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{minigameattempt.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MinigameAttemptDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

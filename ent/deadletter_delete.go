// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/orchid-run/orchid/ent/deadletter"
	"github.com/orchid-run/orchid/ent/predicate"
)

// DeadLetterDelete is the builder for deleting a DeadLetter entity.
type DeadLetterDelete struct {
	config
	hooks    []Hook
	mutation *DeadLetterMutation
}

// Where appends a list predicates to the DeadLetterDelete builder.
func (_d *DeadLetterDelete) Where(ps ...predicate.DeadLetter) *DeadLetterDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeadLetterDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeadLetterDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeadLetterDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(deadletter.Table, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeInt))
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

// DeadLetterDeleteOne is the builder for deleting a single DeadLetter entity.
type DeadLetterDeleteOne struct {
	_d *DeadLetterDelete
}

// Where appends a list predicates to the DeadLetterDelete builder.
func (_d *DeadLetterDeleteOne) Where(ps ...predicate.DeadLetter) *DeadLetterDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeadLetterDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{deadletter.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeadLetterDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

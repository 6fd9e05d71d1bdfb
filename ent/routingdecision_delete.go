// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/orchid-run/orchid/ent/predicate"
	"github.com/orchid-run/orchid/ent/routingdecision"
)

// RoutingDecisionDelete is the builder for deleting a RoutingDecision entity.
type RoutingDecisionDelete struct {
	config
	hooks    []Hook
	mutation *RoutingDecisionMutation
}

// Where appends a list predicates to the RoutingDecisionDelete builder.
func (_d *RoutingDecisionDelete) Where(ps ...predicate.RoutingDecision) *RoutingDecisionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RoutingDecisionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RoutingDecisionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RoutingDecisionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(routingdecision.Table, sqlgraph.NewFieldSpec(routingdecision.FieldID, field.TypeInt))
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

// RoutingDecisionDeleteOne is the builder for deleting a single RoutingDecision entity.
type RoutingDecisionDeleteOne struct {
	_d *RoutingDecisionDelete
}

// Where appends a list predicates to the RoutingDecisionDelete builder.
func (_d *RoutingDecisionDeleteOne) Where(ps ...predicate.RoutingDecision) *RoutingDecisionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RoutingDecisionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{routingdecision.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RoutingDecisionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/orchid-run/orchid/ent/predicate"
	"github.com/orchid-run/orchid/ent/routingdecision"
	"github.com/orchid-run/orchid/ent/run"
)

// RoutingDecisionUpdate is the builder for updating RoutingDecision entities.
type RoutingDecisionUpdate struct {
	config
	hooks    []Hook
	mutation *RoutingDecisionMutation
}

// Where appends a list predicates to the RoutingDecisionUpdate builder.
func (_u *RoutingDecisionUpdate) Where(ps ...predicate.RoutingDecision) *RoutingDecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *RoutingDecisionUpdate) SetStepID(v int) *RoutingDecisionUpdate {
	_u.mutation.ResetStepID()
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *RoutingDecisionUpdate) SetNillableStepID(v *int) *RoutingDecisionUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// AddStepID adds value to the "step_id" field.
func (_u *RoutingDecisionUpdate) AddStepID(v int) *RoutingDecisionUpdate {
	_u.mutation.AddStepID(v)
	return _u
}

// SetSelectedRole sets the "selected_role" field.
func (_u *RoutingDecisionUpdate) SetSelectedRole(v string) *RoutingDecisionUpdate {
	_u.mutation.SetSelectedRole(v)
	return _u
}

// SetNillableSelectedRole sets the "selected_role" field if the given value is not nil.
func (_u *RoutingDecisionUpdate) SetNillableSelectedRole(v *string) *RoutingDecisionUpdate {
	if v != nil {
		_u.SetSelectedRole(*v)
	}
	return _u
}

// SetQueryType sets the "query_type" field.
func (_u *RoutingDecisionUpdate) SetQueryType(v string) *RoutingDecisionUpdate {
	_u.mutation.SetQueryType(v)
	return _u
}

// SetNillableQueryType sets the "query_type" field if the given value is not nil.
func (_u *RoutingDecisionUpdate) SetNillableQueryType(v *string) *RoutingDecisionUpdate {
	if v != nil {
		_u.SetQueryType(*v)
	}
	return _u
}

// ClearQueryType clears the value of the "query_type" field.
func (_u *RoutingDecisionUpdate) ClearQueryType() *RoutingDecisionUpdate {
	_u.mutation.ClearQueryType()
	return _u
}

// SetScores sets the "scores" field.
func (_u *RoutingDecisionUpdate) SetScores(v map[string]float64) *RoutingDecisionUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *RoutingDecisionUpdate) ClearScores() *RoutingDecisionUpdate {
	_u.mutation.ClearScores()
	return _u
}

// SetNormalizedScores sets the "normalized_scores" field.
func (_u *RoutingDecisionUpdate) SetNormalizedScores(v map[string]float64) *RoutingDecisionUpdate {
	_u.mutation.SetNormalizedScores(v)
	return _u
}

// ClearNormalizedScores clears the value of the "normalized_scores" field.
func (_u *RoutingDecisionUpdate) ClearNormalizedScores() *RoutingDecisionUpdate {
	_u.mutation.ClearNormalizedScores()
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *RoutingDecisionUpdate) SetFallback(v bool) *RoutingDecisionUpdate {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *RoutingDecisionUpdate) SetNillableFallback(v *bool) *RoutingDecisionUpdate {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RoutingDecisionUpdate) SetConfidence(v float64) *RoutingDecisionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RoutingDecisionUpdate) SetNillableConfidence(v *float64) *RoutingDecisionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RoutingDecisionUpdate) AddConfidence(v float64) *RoutingDecisionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *RoutingDecisionUpdate) ClearConfidence() *RoutingDecisionUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetRoutingTimeUs sets the "routing_time_us" field.
func (_u *RoutingDecisionUpdate) SetRoutingTimeUs(v int64) *RoutingDecisionUpdate {
	_u.mutation.ResetRoutingTimeUs()
	_u.mutation.SetRoutingTimeUs(v)
	return _u
}

// SetNillableRoutingTimeUs sets the "routing_time_us" field if the given value is not nil.
func (_u *RoutingDecisionUpdate) SetNillableRoutingTimeUs(v *int64) *RoutingDecisionUpdate {
	if v != nil {
		_u.SetRoutingTimeUs(*v)
	}
	return _u
}

// AddRoutingTimeUs adds value to the "routing_time_us" field.
func (_u *RoutingDecisionUpdate) AddRoutingTimeUs(v int64) *RoutingDecisionUpdate {
	_u.mutation.AddRoutingTimeUs(v)
	return _u
}

// ClearRoutingTimeUs clears the value of the "routing_time_us" field.
func (_u *RoutingDecisionUpdate) ClearRoutingTimeUs() *RoutingDecisionUpdate {
	_u.mutation.ClearRoutingTimeUs()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RoutingDecisionUpdate) SetCreatedAt(v time.Time) *RoutingDecisionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RoutingDecisionUpdate) SetNillableCreatedAt(v *time.Time) *RoutingDecisionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRunID sets the "run" edge to the Run entity by ID.
func (_u *RoutingDecisionUpdate) SetRunID(id string) *RoutingDecisionUpdate {
	_u.mutation.SetRunID(id)
	return _u
}

// SetRun sets the "run" edge to the Run entity.
func (_u *RoutingDecisionUpdate) SetRun(v *Run) *RoutingDecisionUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the RoutingDecisionMutation object of the builder.
func (_u *RoutingDecisionUpdate) Mutation() *RoutingDecisionMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the Run entity.
func (_u *RoutingDecisionUpdate) ClearRun() *RoutingDecisionUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoutingDecisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutingDecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoutingDecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutingDecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutingDecisionUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoutingDecision.run"`)
	}
	return nil
}

func (_u *RoutingDecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routingdecision.Table, routingdecision.Columns, sqlgraph.NewFieldSpec(routingdecision.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(routingdecision.FieldStepID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepID(); ok {
		_spec.AddField(routingdecision.FieldStepID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SelectedRole(); ok {
		_spec.SetField(routingdecision.FieldSelectedRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueryType(); ok {
		_spec.SetField(routingdecision.FieldQueryType, field.TypeString, value)
	}
	if _u.mutation.QueryTypeCleared() {
		_spec.ClearField(routingdecision.FieldQueryType, field.TypeString)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(routingdecision.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(routingdecision.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.NormalizedScores(); ok {
		_spec.SetField(routingdecision.FieldNormalizedScores, field.TypeJSON, value)
	}
	if _u.mutation.NormalizedScoresCleared() {
		_spec.ClearField(routingdecision.FieldNormalizedScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(routingdecision.FieldFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(routingdecision.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(routingdecision.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(routingdecision.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RoutingTimeUs(); ok {
		_spec.SetField(routingdecision.FieldRoutingTimeUs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRoutingTimeUs(); ok {
		_spec.AddField(routingdecision.FieldRoutingTimeUs, field.TypeInt64, value)
	}
	if _u.mutation.RoutingTimeUsCleared() {
		_spec.ClearField(routingdecision.FieldRoutingTimeUs, field.TypeInt64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(routingdecision.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   routingdecision.RunTable,
			Columns: []string{routingdecision.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   routingdecision.RunTable,
			Columns: []string{routingdecision.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routingdecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoutingDecisionUpdateOne is the builder for updating a single RoutingDecision entity.
type RoutingDecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoutingDecisionMutation
}

// SetStepID sets the "step_id" field.
func (_u *RoutingDecisionUpdateOne) SetStepID(v int) *RoutingDecisionUpdateOne {
	_u.mutation.ResetStepID()
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *RoutingDecisionUpdateOne) SetNillableStepID(v *int) *RoutingDecisionUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// AddStepID adds value to the "step_id" field.
func (_u *RoutingDecisionUpdateOne) AddStepID(v int) *RoutingDecisionUpdateOne {
	_u.mutation.AddStepID(v)
	return _u
}

// SetSelectedRole sets the "selected_role" field.
func (_u *RoutingDecisionUpdateOne) SetSelectedRole(v string) *RoutingDecisionUpdateOne {
	_u.mutation.SetSelectedRole(v)
	return _u
}

// SetNillableSelectedRole sets the "selected_role" field if the given value is not nil.
func (_u *RoutingDecisionUpdateOne) SetNillableSelectedRole(v *string) *RoutingDecisionUpdateOne {
	if v != nil {
		_u.SetSelectedRole(*v)
	}
	return _u
}

// SetQueryType sets the "query_type" field.
func (_u *RoutingDecisionUpdateOne) SetQueryType(v string) *RoutingDecisionUpdateOne {
	_u.mutation.SetQueryType(v)
	return _u
}

// SetNillableQueryType sets the "query_type" field if the given value is not nil.
func (_u *RoutingDecisionUpdateOne) SetNillableQueryType(v *string) *RoutingDecisionUpdateOne {
	if v != nil {
		_u.SetQueryType(*v)
	}
	return _u
}

// ClearQueryType clears the value of the "query_type" field.
func (_u *RoutingDecisionUpdateOne) ClearQueryType() *RoutingDecisionUpdateOne {
	_u.mutation.ClearQueryType()
	return _u
}

// SetScores sets the "scores" field.
func (_u *RoutingDecisionUpdateOne) SetScores(v map[string]float64) *RoutingDecisionUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// ClearScores clears the value of the "scores" field.
func (_u *RoutingDecisionUpdateOne) ClearScores() *RoutingDecisionUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// SetNormalizedScores sets the "normalized_scores" field.
func (_u *RoutingDecisionUpdateOne) SetNormalizedScores(v map[string]float64) *RoutingDecisionUpdateOne {
	_u.mutation.SetNormalizedScores(v)
	return _u
}

// ClearNormalizedScores clears the value of the "normalized_scores" field.
func (_u *RoutingDecisionUpdateOne) ClearNormalizedScores() *RoutingDecisionUpdateOne {
	_u.mutation.ClearNormalizedScores()
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *RoutingDecisionUpdateOne) SetFallback(v bool) *RoutingDecisionUpdateOne {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *RoutingDecisionUpdateOne) SetNillableFallback(v *bool) *RoutingDecisionUpdateOne {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RoutingDecisionUpdateOne) SetConfidence(v float64) *RoutingDecisionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RoutingDecisionUpdateOne) SetNillableConfidence(v *float64) *RoutingDecisionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RoutingDecisionUpdateOne) AddConfidence(v float64) *RoutingDecisionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *RoutingDecisionUpdateOne) ClearConfidence() *RoutingDecisionUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetRoutingTimeUs sets the "routing_time_us" field.
func (_u *RoutingDecisionUpdateOne) SetRoutingTimeUs(v int64) *RoutingDecisionUpdateOne {
	_u.mutation.ResetRoutingTimeUs()
	_u.mutation.SetRoutingTimeUs(v)
	return _u
}

// SetNillableRoutingTimeUs sets the "routing_time_us" field if the given value is not nil.
func (_u *RoutingDecisionUpdateOne) SetNillableRoutingTimeUs(v *int64) *RoutingDecisionUpdateOne {
	if v != nil {
		_u.SetRoutingTimeUs(*v)
	}
	return _u
}

// AddRoutingTimeUs adds value to the "routing_time_us" field.
func (_u *RoutingDecisionUpdateOne) AddRoutingTimeUs(v int64) *RoutingDecisionUpdateOne {
	_u.mutation.AddRoutingTimeUs(v)
	return _u
}

// ClearRoutingTimeUs clears the value of the "routing_time_us" field.
func (_u *RoutingDecisionUpdateOne) ClearRoutingTimeUs() *RoutingDecisionUpdateOne {
	_u.mutation.ClearRoutingTimeUs()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RoutingDecisionUpdateOne) SetCreatedAt(v time.Time) *RoutingDecisionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RoutingDecisionUpdateOne) SetNillableCreatedAt(v *time.Time) *RoutingDecisionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetRunID sets the "run" edge to the Run entity by ID.
func (_u *RoutingDecisionUpdateOne) SetRunID(id string) *RoutingDecisionUpdateOne {
	_u.mutation.SetRunID(id)
	return _u
}

// SetRun sets the "run" edge to the Run entity.
func (_u *RoutingDecisionUpdateOne) SetRun(v *Run) *RoutingDecisionUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the RoutingDecisionMutation object of the builder.
func (_u *RoutingDecisionUpdateOne) Mutation() *RoutingDecisionMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the Run entity.
func (_u *RoutingDecisionUpdateOne) ClearRun() *RoutingDecisionUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the RoutingDecisionUpdate builder.
func (_u *RoutingDecisionUpdateOne) Where(ps ...predicate.RoutingDecision) *RoutingDecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoutingDecisionUpdateOne) Select(field string, fields ...string) *RoutingDecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoutingDecision entity.
func (_u *RoutingDecisionUpdateOne) Save(ctx context.Context) (*RoutingDecision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoutingDecisionUpdateOne) SaveX(ctx context.Context) *RoutingDecision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoutingDecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoutingDecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoutingDecisionUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RoutingDecision.run"`)
	}
	return nil
}

func (_u *RoutingDecisionUpdateOne) sqlSave(ctx context.Context) (_node *RoutingDecision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(routingdecision.Table, routingdecision.Columns, sqlgraph.NewFieldSpec(routingdecision.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoutingDecision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, routingdecision.FieldID)
		for _, f := range fields {
			if !routingdecision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != routingdecision.FieldID {
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
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(routingdecision.FieldStepID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepID(); ok {
		_spec.AddField(routingdecision.FieldStepID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SelectedRole(); ok {
		_spec.SetField(routingdecision.FieldSelectedRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueryType(); ok {
		_spec.SetField(routingdecision.FieldQueryType, field.TypeString, value)
	}
	if _u.mutation.QueryTypeCleared() {
		_spec.ClearField(routingdecision.FieldQueryType, field.TypeString)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(routingdecision.FieldScores, field.TypeJSON, value)
	}
	if _u.mutation.ScoresCleared() {
		_spec.ClearField(routingdecision.FieldScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.NormalizedScores(); ok {
		_spec.SetField(routingdecision.FieldNormalizedScores, field.TypeJSON, value)
	}
	if _u.mutation.NormalizedScoresCleared() {
		_spec.ClearField(routingdecision.FieldNormalizedScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(routingdecision.FieldFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(routingdecision.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(routingdecision.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(routingdecision.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RoutingTimeUs(); ok {
		_spec.SetField(routingdecision.FieldRoutingTimeUs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRoutingTimeUs(); ok {
		_spec.AddField(routingdecision.FieldRoutingTimeUs, field.TypeInt64, value)
	}
	if _u.mutation.RoutingTimeUsCleared() {
		_spec.ClearField(routingdecision.FieldRoutingTimeUs, field.TypeInt64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(routingdecision.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   routingdecision.RunTable,
			Columns: []string{routingdecision.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   routingdecision.RunTable,
			Columns: []string{routingdecision.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RoutingDecision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{routingdecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

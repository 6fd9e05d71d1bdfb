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
	"github.com/orchid-run/orchid/ent/stepexecution"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *RunUpdate) SetTenantID(v string) *RunUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableTenantID(v *string) *RunUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *RunUpdate) SetCorrelationID(v string) *RunUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCorrelationID(v *string) *RunUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *RunUpdate) ClearCorrelationID() *RunUpdate {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetSeed sets the "seed" field.
func (_u *RunUpdate) SetSeed(v int64) *RunUpdate {
	_u.mutation.ResetSeed()
	_u.mutation.SetSeed(v)
	return _u
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_u *RunUpdate) SetNillableSeed(v *int64) *RunUpdate {
	if v != nil {
		_u.SetSeed(*v)
	}
	return _u
}

// AddSeed adds value to the "seed" field.
func (_u *RunUpdate) AddSeed(v int64) *RunUpdate {
	_u.mutation.AddSeed(v)
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *RunUpdate) SetTemperature(v float64) *RunUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *RunUpdate) SetNillableTemperature(v *float64) *RunUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *RunUpdate) AddTemperature(v float64) *RunUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetQuery sets the "query" field.
func (_u *RunUpdate) SetQuery(v string) *RunUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *RunUpdate) SetNillableQuery(v *string) *RunUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v run.Status) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *run.Status) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTerminationReason sets the "termination_reason" field.
func (_u *RunUpdate) SetTerminationReason(v string) *RunUpdate {
	_u.mutation.SetTerminationReason(v)
	return _u
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_u *RunUpdate) SetNillableTerminationReason(v *string) *RunUpdate {
	if v != nil {
		_u.SetTerminationReason(*v)
	}
	return _u
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (_u *RunUpdate) ClearTerminationReason() *RunUpdate {
	_u.mutation.ClearTerminationReason()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdate) SetErrorMessage(v string) *RunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdate) SetNillableErrorMessage(v *string) *RunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdate) ClearErrorMessage() *RunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RunUpdate) SetCreatedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCreatedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdate) SetStartedAt(v time.Time) *RunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStartedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdate) ClearStartedAt() *RunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdate) SetCompletedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCompletedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdate) ClearCompletedAt() *RunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *RunUpdate) SetStepCount(v int) *RunUpdate {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStepCount(v *int) *RunUpdate {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *RunUpdate) AddStepCount(v int) *RunUpdate {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetTokenTotal sets the "token_total" field.
func (_u *RunUpdate) SetTokenTotal(v int) *RunUpdate {
	_u.mutation.ResetTokenTotal()
	_u.mutation.SetTokenTotal(v)
	return _u
}

// SetNillableTokenTotal sets the "token_total" field if the given value is not nil.
func (_u *RunUpdate) SetNillableTokenTotal(v *int) *RunUpdate {
	if v != nil {
		_u.SetTokenTotal(*v)
	}
	return _u
}

// AddTokenTotal adds value to the "token_total" field.
func (_u *RunUpdate) AddTokenTotal(v int) *RunUpdate {
	_u.mutation.AddTokenTotal(v)
	return _u
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_u *RunUpdate) SetConfigSnapshot(v map[string]interface{}) *RunUpdate {
	_u.mutation.SetConfigSnapshot(v)
	return _u
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (_u *RunUpdate) ClearConfigSnapshot() *RunUpdate {
	_u.mutation.ClearConfigSnapshot()
	return _u
}

// SetArtifactsPath sets the "artifacts_path" field.
func (_u *RunUpdate) SetArtifactsPath(v string) *RunUpdate {
	_u.mutation.SetArtifactsPath(v)
	return _u
}

// SetNillableArtifactsPath sets the "artifacts_path" field if the given value is not nil.
func (_u *RunUpdate) SetNillableArtifactsPath(v *string) *RunUpdate {
	if v != nil {
		_u.SetArtifactsPath(*v)
	}
	return _u
}

// ClearArtifactsPath clears the value of the "artifacts_path" field.
func (_u *RunUpdate) ClearArtifactsPath() *RunUpdate {
	_u.mutation.ClearArtifactsPath()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RunUpdate) SetPodID(v string) *RunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillablePodID(v *string) *RunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RunUpdate) ClearPodID() *RunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *RunUpdate) SetLastInteractionAt(v time.Time) *RunUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableLastInteractionAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *RunUpdate) ClearLastInteractionAt() *RunUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the StepExecution entity by IDs.
func (_u *RunUpdate) AddStepIDs(ids ...int) *RunUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the StepExecution entity.
func (_u *RunUpdate) AddSteps(v ...*StepExecution) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddRoutingDecisionIDs adds the "routing_decisions" edge to the RoutingDecision entity by IDs.
func (_u *RunUpdate) AddRoutingDecisionIDs(ids ...int) *RunUpdate {
	_u.mutation.AddRoutingDecisionIDs(ids...)
	return _u
}

// AddRoutingDecisions adds the "routing_decisions" edges to the RoutingDecision entity.
func (_u *RunUpdate) AddRoutingDecisions(v ...*RoutingDecision) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoutingDecisionIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the StepExecution entity.
func (_u *RunUpdate) ClearSteps() *RunUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to StepExecution entities by IDs.
func (_u *RunUpdate) RemoveStepIDs(ids ...int) *RunUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to StepExecution entities.
func (_u *RunUpdate) RemoveSteps(v ...*StepExecution) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearRoutingDecisions clears all "routing_decisions" edges to the RoutingDecision entity.
func (_u *RunUpdate) ClearRoutingDecisions() *RunUpdate {
	_u.mutation.ClearRoutingDecisions()
	return _u
}

// RemoveRoutingDecisionIDs removes the "routing_decisions" edge to RoutingDecision entities by IDs.
func (_u *RunUpdate) RemoveRoutingDecisionIDs(ids ...int) *RunUpdate {
	_u.mutation.RemoveRoutingDecisionIDs(ids...)
	return _u
}

// RemoveRoutingDecisions removes "routing_decisions" edges to RoutingDecision entities.
func (_u *RunUpdate) RemoveRoutingDecisions(v ...*RoutingDecision) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoutingDecisionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(run.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(run.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(run.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.Seed(); ok {
		_spec.SetField(run.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeed(); ok {
		_spec.AddField(run.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(run.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(run.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(run.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TerminationReason(); ok {
		_spec.SetField(run.FieldTerminationReason, field.TypeString, value)
	}
	if _u.mutation.TerminationReasonCleared() {
		_spec.ClearField(run.FieldTerminationReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(run.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(run.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokenTotal(); ok {
		_spec.SetField(run.FieldTokenTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenTotal(); ok {
		_spec.AddField(run.FieldTokenTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConfigSnapshot(); ok {
		_spec.SetField(run.FieldConfigSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ConfigSnapshotCleared() {
		_spec.ClearField(run.FieldConfigSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.ArtifactsPath(); ok {
		_spec.SetField(run.FieldArtifactsPath, field.TypeString, value)
	}
	if _u.mutation.ArtifactsPathCleared() {
		_spec.ClearField(run.FieldArtifactsPath, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(run.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(run.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(run.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoutingDecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RoutingDecisionsTable,
			Columns: []string{run.RoutingDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(routingdecision.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoutingDecisionsIDs(); len(nodes) > 0 && !_u.mutation.RoutingDecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RoutingDecisionsTable,
			Columns: []string{run.RoutingDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(routingdecision.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoutingDecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RoutingDecisionsTable,
			Columns: []string{run.RoutingDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(routingdecision.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *RunUpdateOne) SetTenantID(v string) *RunUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableTenantID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *RunUpdateOne) SetCorrelationID(v string) *RunUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCorrelationID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (_u *RunUpdateOne) ClearCorrelationID() *RunUpdateOne {
	_u.mutation.ClearCorrelationID()
	return _u
}

// SetSeed sets the "seed" field.
func (_u *RunUpdateOne) SetSeed(v int64) *RunUpdateOne {
	_u.mutation.ResetSeed()
	_u.mutation.SetSeed(v)
	return _u
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableSeed(v *int64) *RunUpdateOne {
	if v != nil {
		_u.SetSeed(*v)
	}
	return _u
}

// AddSeed adds value to the "seed" field.
func (_u *RunUpdateOne) AddSeed(v int64) *RunUpdateOne {
	_u.mutation.AddSeed(v)
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *RunUpdateOne) SetTemperature(v float64) *RunUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableTemperature(v *float64) *RunUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *RunUpdateOne) AddTemperature(v float64) *RunUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// SetQuery sets the "query" field.
func (_u *RunUpdateOne) SetQuery(v string) *RunUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableQuery(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v run.Status) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *run.Status) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTerminationReason sets the "termination_reason" field.
func (_u *RunUpdateOne) SetTerminationReason(v string) *RunUpdateOne {
	_u.mutation.SetTerminationReason(v)
	return _u
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableTerminationReason(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetTerminationReason(*v)
	}
	return _u
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (_u *RunUpdateOne) ClearTerminationReason() *RunUpdateOne {
	_u.mutation.ClearTerminationReason()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdateOne) SetErrorMessage(v string) *RunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableErrorMessage(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdateOne) ClearErrorMessage() *RunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RunUpdateOne) SetCreatedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCreatedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdateOne) SetStartedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStartedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdateOne) ClearStartedAt() *RunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdateOne) SetCompletedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCompletedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdateOne) ClearCompletedAt() *RunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *RunUpdateOne) SetStepCount(v int) *RunUpdateOne {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStepCount(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *RunUpdateOne) AddStepCount(v int) *RunUpdateOne {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetTokenTotal sets the "token_total" field.
func (_u *RunUpdateOne) SetTokenTotal(v int) *RunUpdateOne {
	_u.mutation.ResetTokenTotal()
	_u.mutation.SetTokenTotal(v)
	return _u
}

// SetNillableTokenTotal sets the "token_total" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableTokenTotal(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetTokenTotal(*v)
	}
	return _u
}

// AddTokenTotal adds value to the "token_total" field.
func (_u *RunUpdateOne) AddTokenTotal(v int) *RunUpdateOne {
	_u.mutation.AddTokenTotal(v)
	return _u
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_u *RunUpdateOne) SetConfigSnapshot(v map[string]interface{}) *RunUpdateOne {
	_u.mutation.SetConfigSnapshot(v)
	return _u
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (_u *RunUpdateOne) ClearConfigSnapshot() *RunUpdateOne {
	_u.mutation.ClearConfigSnapshot()
	return _u
}

// SetArtifactsPath sets the "artifacts_path" field.
func (_u *RunUpdateOne) SetArtifactsPath(v string) *RunUpdateOne {
	_u.mutation.SetArtifactsPath(v)
	return _u
}

// SetNillableArtifactsPath sets the "artifacts_path" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableArtifactsPath(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetArtifactsPath(*v)
	}
	return _u
}

// ClearArtifactsPath clears the value of the "artifacts_path" field.
func (_u *RunUpdateOne) ClearArtifactsPath() *RunUpdateOne {
	_u.mutation.ClearArtifactsPath()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *RunUpdateOne) SetPodID(v string) *RunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillablePodID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *RunUpdateOne) ClearPodID() *RunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *RunUpdateOne) SetLastInteractionAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableLastInteractionAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *RunUpdateOne) ClearLastInteractionAt() *RunUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the StepExecution entity by IDs.
func (_u *RunUpdateOne) AddStepIDs(ids ...int) *RunUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the StepExecution entity.
func (_u *RunUpdateOne) AddSteps(v ...*StepExecution) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddRoutingDecisionIDs adds the "routing_decisions" edge to the RoutingDecision entity by IDs.
func (_u *RunUpdateOne) AddRoutingDecisionIDs(ids ...int) *RunUpdateOne {
	_u.mutation.AddRoutingDecisionIDs(ids...)
	return _u
}

// AddRoutingDecisions adds the "routing_decisions" edges to the RoutingDecision entity.
func (_u *RunUpdateOne) AddRoutingDecisions(v ...*RoutingDecision) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoutingDecisionIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the StepExecution entity.
func (_u *RunUpdateOne) ClearSteps() *RunUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to StepExecution entities by IDs.
func (_u *RunUpdateOne) RemoveStepIDs(ids ...int) *RunUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to StepExecution entities.
func (_u *RunUpdateOne) RemoveSteps(v ...*StepExecution) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearRoutingDecisions clears all "routing_decisions" edges to the RoutingDecision entity.
func (_u *RunUpdateOne) ClearRoutingDecisions() *RunUpdateOne {
	_u.mutation.ClearRoutingDecisions()
	return _u
}

// RemoveRoutingDecisionIDs removes the "routing_decisions" edge to RoutingDecision entities by IDs.
func (_u *RunUpdateOne) RemoveRoutingDecisionIDs(ids ...int) *RunUpdateOne {
	_u.mutation.RemoveRoutingDecisionIDs(ids...)
	return _u
}

// RemoveRoutingDecisions removes "routing_decisions" edges to RoutingDecision entities.
func (_u *RunUpdateOne) RemoveRoutingDecisions(v ...*RoutingDecision) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoutingDecisionIDs(ids...)
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
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
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(run.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(run.FieldCorrelationID, field.TypeString, value)
	}
	if _u.mutation.CorrelationIDCleared() {
		_spec.ClearField(run.FieldCorrelationID, field.TypeString)
	}
	if value, ok := _u.mutation.Seed(); ok {
		_spec.SetField(run.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeed(); ok {
		_spec.AddField(run.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(run.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(run.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(run.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TerminationReason(); ok {
		_spec.SetField(run.FieldTerminationReason, field.TypeString, value)
	}
	if _u.mutation.TerminationReasonCleared() {
		_spec.ClearField(run.FieldTerminationReason, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(run.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(run.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokenTotal(); ok {
		_spec.SetField(run.FieldTokenTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenTotal(); ok {
		_spec.AddField(run.FieldTokenTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConfigSnapshot(); ok {
		_spec.SetField(run.FieldConfigSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ConfigSnapshotCleared() {
		_spec.ClearField(run.FieldConfigSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.ArtifactsPath(); ok {
		_spec.SetField(run.FieldArtifactsPath, field.TypeString, value)
	}
	if _u.mutation.ArtifactsPathCleared() {
		_spec.ClearField(run.FieldArtifactsPath, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(run.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(run.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(run.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.StepsTable,
			Columns: []string{run.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RoutingDecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RoutingDecisionsTable,
			Columns: []string{run.RoutingDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(routingdecision.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoutingDecisionsIDs(); len(nodes) > 0 && !_u.mutation.RoutingDecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RoutingDecisionsTable,
			Columns: []string{run.RoutingDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(routingdecision.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoutingDecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RoutingDecisionsTable,
			Columns: []string{run.RoutingDecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(routingdecision.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

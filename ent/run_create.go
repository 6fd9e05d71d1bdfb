// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/orchid-run/orchid/ent/routingdecision"
	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/ent/stepexecution"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *RunCreate) SetTenantID(v string) *RunCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableTenantID(v *string) *RunCreate {
	if v != nil {
		_c.SetTenantID(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *RunCreate) SetCorrelationID(v string) *RunCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableCorrelationID(v *string) *RunCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetSeed sets the "seed" field.
func (_c *RunCreate) SetSeed(v int64) *RunCreate {
	_c.mutation.SetSeed(v)
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *RunCreate) SetTemperature(v float64) *RunCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *RunCreate) SetNillableTemperature(v *float64) *RunCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetQuery sets the "query" field.
func (_c *RunCreate) SetQuery(v string) *RunCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTerminationReason sets the "termination_reason" field.
func (_c *RunCreate) SetTerminationReason(v string) *RunCreate {
	_c.mutation.SetTerminationReason(v)
	return _c
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_c *RunCreate) SetNillableTerminationReason(v *string) *RunCreate {
	if v != nil {
		_c.SetTerminationReason(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RunCreate) SetErrorMessage(v string) *RunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RunCreate) SetNillableErrorMessage(v *string) *RunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunCreate) SetCompletedAt(v time.Time) *RunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCompletedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetStepCount sets the "step_count" field.
func (_c *RunCreate) SetStepCount(v int) *RunCreate {
	_c.mutation.SetStepCount(v)
	return _c
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_c *RunCreate) SetNillableStepCount(v *int) *RunCreate {
	if v != nil {
		_c.SetStepCount(*v)
	}
	return _c
}

// SetTokenTotal sets the "token_total" field.
func (_c *RunCreate) SetTokenTotal(v int) *RunCreate {
	_c.mutation.SetTokenTotal(v)
	return _c
}

// SetNillableTokenTotal sets the "token_total" field if the given value is not nil.
func (_c *RunCreate) SetNillableTokenTotal(v *int) *RunCreate {
	if v != nil {
		_c.SetTokenTotal(*v)
	}
	return _c
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (_c *RunCreate) SetConfigSnapshot(v map[string]interface{}) *RunCreate {
	_c.mutation.SetConfigSnapshot(v)
	return _c
}

// SetArtifactsPath sets the "artifacts_path" field.
func (_c *RunCreate) SetArtifactsPath(v string) *RunCreate {
	_c.mutation.SetArtifactsPath(v)
	return _c
}

// SetNillableArtifactsPath sets the "artifacts_path" field if the given value is not nil.
func (_c *RunCreate) SetNillableArtifactsPath(v *string) *RunCreate {
	if v != nil {
		_c.SetArtifactsPath(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *RunCreate) SetPodID(v string) *RunCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *RunCreate) SetNillablePodID(v *string) *RunCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *RunCreate) SetLastInteractionAt(v time.Time) *RunCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableLastInteractionAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStepIDs adds the "steps" edge to the StepExecution entity by IDs.
func (_c *RunCreate) AddStepIDs(ids ...int) *RunCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the StepExecution entity.
func (_c *RunCreate) AddSteps(v ...*StepExecution) *RunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddRoutingDecisionIDs adds the "routing_decisions" edge to the RoutingDecision entity by IDs.
func (_c *RunCreate) AddRoutingDecisionIDs(ids ...int) *RunCreate {
	_c.mutation.AddRoutingDecisionIDs(ids...)
	return _c
}

// AddRoutingDecisions adds the "routing_decisions" edges to the RoutingDecision entity.
func (_c *RunCreate) AddRoutingDecisions(v ...*RoutingDecision) *RunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRoutingDecisionIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.TenantID(); !ok {
		v := run.DefaultTenantID
		_c.mutation.SetTenantID(v)
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		v := run.DefaultTemperature
		_c.mutation.SetTemperature(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		v := run.DefaultStepCount
		_c.mutation.SetStepCount(v)
	}
	if _, ok := _c.mutation.TokenTotal(); !ok {
		v := run.DefaultTokenTotal
		_c.mutation.SetTokenTotal(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Run.tenant_id"`)}
	}
	if _, ok := _c.mutation.Seed(); !ok {
		return &ValidationError{Name: "seed", err: errors.New(`ent: missing required field "Run.seed"`)}
	}
	if _, ok := _c.mutation.Temperature(); !ok {
		return &ValidationError{Name: "temperature", err: errors.New(`ent: missing required field "Run.temperature"`)}
	}
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "Run.query"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		return &ValidationError{Name: "step_count", err: errors.New(`ent: missing required field "Run.step_count"`)}
	}
	if _, ok := _c.mutation.TokenTotal(); !ok {
		return &ValidationError{Name: "token_total", err: errors.New(`ent: missing required field "Run.token_total"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(run.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(run.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.Seed(); ok {
		_spec.SetField(run.FieldSeed, field.TypeInt64, value)
		_node.Seed = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(run.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = value
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(run.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TerminationReason(); ok {
		_spec.SetField(run.FieldTerminationReason, field.TypeString, value)
		_node.TerminationReason = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.StepCount(); ok {
		_spec.SetField(run.FieldStepCount, field.TypeInt, value)
		_node.StepCount = value
	}
	if value, ok := _c.mutation.TokenTotal(); ok {
		_spec.SetField(run.FieldTokenTotal, field.TypeInt, value)
		_node.TokenTotal = value
	}
	if value, ok := _c.mutation.ConfigSnapshot(); ok {
		_spec.SetField(run.FieldConfigSnapshot, field.TypeJSON, value)
		_node.ConfigSnapshot = value
	}
	if value, ok := _c.mutation.ArtifactsPath(); ok {
		_spec.SetField(run.FieldArtifactsPath, field.TypeString, value)
		_node.ArtifactsPath = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(run.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(run.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RoutingDecisionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Run.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCreate) OnConflict(opts ...sql.ConflictOption) *RunUpsertOne {
	_c.conflict = opts
	return &RunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCreate) OnConflictColumns(columns ...string) *RunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunUpsertOne{
		create: _c,
	}
}

type (
	// RunUpsertOne is the builder for "upsert"-ing
	//  one Run node.
	RunUpsertOne struct {
		create *RunCreate
	}

	// RunUpsert is the "OnConflict" setter.
	RunUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *RunUpsert) SetTenantID(v string) *RunUpsert {
	u.Set(run.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *RunUpsert) UpdateTenantID() *RunUpsert {
	u.SetExcluded(run.FieldTenantID)
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *RunUpsert) SetCorrelationID(v string) *RunUpsert {
	u.Set(run.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *RunUpsert) UpdateCorrelationID() *RunUpsert {
	u.SetExcluded(run.FieldCorrelationID)
	return u
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (u *RunUpsert) ClearCorrelationID() *RunUpsert {
	u.SetNull(run.FieldCorrelationID)
	return u
}

// SetSeed sets the "seed" field.
func (u *RunUpsert) SetSeed(v int64) *RunUpsert {
	u.Set(run.FieldSeed, v)
	return u
}

// UpdateSeed sets the "seed" field to the value that was provided on create.
func (u *RunUpsert) UpdateSeed() *RunUpsert {
	u.SetExcluded(run.FieldSeed)
	return u
}

// AddSeed adds v to the "seed" field.
func (u *RunUpsert) AddSeed(v int64) *RunUpsert {
	u.Add(run.FieldSeed, v)
	return u
}

// SetTemperature sets the "temperature" field.
func (u *RunUpsert) SetTemperature(v float64) *RunUpsert {
	u.Set(run.FieldTemperature, v)
	return u
}

// UpdateTemperature sets the "temperature" field to the value that was provided on create.
func (u *RunUpsert) UpdateTemperature() *RunUpsert {
	u.SetExcluded(run.FieldTemperature)
	return u
}

// AddTemperature adds v to the "temperature" field.
func (u *RunUpsert) AddTemperature(v float64) *RunUpsert {
	u.Add(run.FieldTemperature, v)
	return u
}

// SetQuery sets the "query" field.
func (u *RunUpsert) SetQuery(v string) *RunUpsert {
	u.Set(run.FieldQuery, v)
	return u
}

// UpdateQuery sets the "query" field to the value that was provided on create.
func (u *RunUpsert) UpdateQuery() *RunUpsert {
	u.SetExcluded(run.FieldQuery)
	return u
}

// SetStatus sets the "status" field.
func (u *RunUpsert) SetStatus(v run.Status) *RunUpsert {
	u.Set(run.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsert) UpdateStatus() *RunUpsert {
	u.SetExcluded(run.FieldStatus)
	return u
}

// SetTerminationReason sets the "termination_reason" field.
func (u *RunUpsert) SetTerminationReason(v string) *RunUpsert {
	u.Set(run.FieldTerminationReason, v)
	return u
}

// UpdateTerminationReason sets the "termination_reason" field to the value that was provided on create.
func (u *RunUpsert) UpdateTerminationReason() *RunUpsert {
	u.SetExcluded(run.FieldTerminationReason)
	return u
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (u *RunUpsert) ClearTerminationReason() *RunUpsert {
	u.SetNull(run.FieldTerminationReason)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *RunUpsert) SetErrorMessage(v string) *RunUpsert {
	u.Set(run.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *RunUpsert) UpdateErrorMessage() *RunUpsert {
	u.SetExcluded(run.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *RunUpsert) ClearErrorMessage() *RunUpsert {
	u.SetNull(run.FieldErrorMessage)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *RunUpsert) SetCreatedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateCreatedAt() *RunUpsert {
	u.SetExcluded(run.FieldCreatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsert) SetStartedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateStartedAt() *RunUpsert {
	u.SetExcluded(run.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsert) ClearStartedAt() *RunUpsert {
	u.SetNull(run.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunUpsert) SetCompletedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateCompletedAt() *RunUpsert {
	u.SetExcluded(run.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunUpsert) ClearCompletedAt() *RunUpsert {
	u.SetNull(run.FieldCompletedAt)
	return u
}

// SetStepCount sets the "step_count" field.
func (u *RunUpsert) SetStepCount(v int) *RunUpsert {
	u.Set(run.FieldStepCount, v)
	return u
}

// UpdateStepCount sets the "step_count" field to the value that was provided on create.
func (u *RunUpsert) UpdateStepCount() *RunUpsert {
	u.SetExcluded(run.FieldStepCount)
	return u
}

// AddStepCount adds v to the "step_count" field.
func (u *RunUpsert) AddStepCount(v int) *RunUpsert {
	u.Add(run.FieldStepCount, v)
	return u
}

// SetTokenTotal sets the "token_total" field.
func (u *RunUpsert) SetTokenTotal(v int) *RunUpsert {
	u.Set(run.FieldTokenTotal, v)
	return u
}

// UpdateTokenTotal sets the "token_total" field to the value that was provided on create.
func (u *RunUpsert) UpdateTokenTotal() *RunUpsert {
	u.SetExcluded(run.FieldTokenTotal)
	return u
}

// AddTokenTotal adds v to the "token_total" field.
func (u *RunUpsert) AddTokenTotal(v int) *RunUpsert {
	u.Add(run.FieldTokenTotal, v)
	return u
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (u *RunUpsert) SetConfigSnapshot(v map[string]interface{}) *RunUpsert {
	u.Set(run.FieldConfigSnapshot, v)
	return u
}

// UpdateConfigSnapshot sets the "config_snapshot" field to the value that was provided on create.
func (u *RunUpsert) UpdateConfigSnapshot() *RunUpsert {
	u.SetExcluded(run.FieldConfigSnapshot)
	return u
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (u *RunUpsert) ClearConfigSnapshot() *RunUpsert {
	u.SetNull(run.FieldConfigSnapshot)
	return u
}

// SetArtifactsPath sets the "artifacts_path" field.
func (u *RunUpsert) SetArtifactsPath(v string) *RunUpsert {
	u.Set(run.FieldArtifactsPath, v)
	return u
}

// UpdateArtifactsPath sets the "artifacts_path" field to the value that was provided on create.
func (u *RunUpsert) UpdateArtifactsPath() *RunUpsert {
	u.SetExcluded(run.FieldArtifactsPath)
	return u
}

// ClearArtifactsPath clears the value of the "artifacts_path" field.
func (u *RunUpsert) ClearArtifactsPath() *RunUpsert {
	u.SetNull(run.FieldArtifactsPath)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *RunUpsert) SetPodID(v string) *RunUpsert {
	u.Set(run.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *RunUpsert) UpdatePodID() *RunUpsert {
	u.SetExcluded(run.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *RunUpsert) ClearPodID() *RunUpsert {
	u.SetNull(run.FieldPodID)
	return u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *RunUpsert) SetLastInteractionAt(v time.Time) *RunUpsert {
	u.Set(run.FieldLastInteractionAt, v)
	return u
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateLastInteractionAt() *RunUpsert {
	u.SetExcluded(run.FieldLastInteractionAt)
	return u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *RunUpsert) ClearLastInteractionAt() *RunUpsert {
	u.SetNull(run.FieldLastInteractionAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(run.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunUpsertOne) UpdateNewValues() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(run.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunUpsertOne) Ignore() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunUpsertOne) DoNothing() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCreate.OnConflict
// documentation for more info.
func (u *RunUpsertOne) Update(set func(*RunUpsert)) *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *RunUpsertOne) SetTenantID(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateTenantID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTenantID()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *RunUpsertOne) SetCorrelationID(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCorrelationID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCorrelationID()
	})
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (u *RunUpsertOne) ClearCorrelationID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearCorrelationID()
	})
}

// SetSeed sets the "seed" field.
func (u *RunUpsertOne) SetSeed(v int64) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetSeed(v)
	})
}

// AddSeed adds v to the "seed" field.
func (u *RunUpsertOne) AddSeed(v int64) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddSeed(v)
	})
}

// UpdateSeed sets the "seed" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateSeed() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateSeed()
	})
}

// SetTemperature sets the "temperature" field.
func (u *RunUpsertOne) SetTemperature(v float64) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetTemperature(v)
	})
}

// AddTemperature adds v to the "temperature" field.
func (u *RunUpsertOne) AddTemperature(v float64) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddTemperature(v)
	})
}

// UpdateTemperature sets the "temperature" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateTemperature() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTemperature()
	})
}

// SetQuery sets the "query" field.
func (u *RunUpsertOne) SetQuery(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetQuery(v)
	})
}

// UpdateQuery sets the "query" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateQuery() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateQuery()
	})
}

// SetStatus sets the "status" field.
func (u *RunUpsertOne) SetStatus(v run.Status) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateStatus() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStatus()
	})
}

// SetTerminationReason sets the "termination_reason" field.
func (u *RunUpsertOne) SetTerminationReason(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetTerminationReason(v)
	})
}

// UpdateTerminationReason sets the "termination_reason" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateTerminationReason() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTerminationReason()
	})
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (u *RunUpsertOne) ClearTerminationReason() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearTerminationReason()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *RunUpsertOne) SetErrorMessage(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateErrorMessage() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *RunUpsertOne) ClearErrorMessage() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *RunUpsertOne) SetCreatedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCreatedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsertOne) SetStartedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateStartedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsertOne) ClearStartedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunUpsertOne) SetCompletedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCompletedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunUpsertOne) ClearCompletedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetStepCount sets the "step_count" field.
func (u *RunUpsertOne) SetStepCount(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetStepCount(v)
	})
}

// AddStepCount adds v to the "step_count" field.
func (u *RunUpsertOne) AddStepCount(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddStepCount(v)
	})
}

// UpdateStepCount sets the "step_count" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateStepCount() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStepCount()
	})
}

// SetTokenTotal sets the "token_total" field.
func (u *RunUpsertOne) SetTokenTotal(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetTokenTotal(v)
	})
}

// AddTokenTotal adds v to the "token_total" field.
func (u *RunUpsertOne) AddTokenTotal(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddTokenTotal(v)
	})
}

// UpdateTokenTotal sets the "token_total" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateTokenTotal() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTokenTotal()
	})
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (u *RunUpsertOne) SetConfigSnapshot(v map[string]interface{}) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetConfigSnapshot(v)
	})
}

// UpdateConfigSnapshot sets the "config_snapshot" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateConfigSnapshot() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateConfigSnapshot()
	})
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (u *RunUpsertOne) ClearConfigSnapshot() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearConfigSnapshot()
	})
}

// SetArtifactsPath sets the "artifacts_path" field.
func (u *RunUpsertOne) SetArtifactsPath(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetArtifactsPath(v)
	})
}

// UpdateArtifactsPath sets the "artifacts_path" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateArtifactsPath() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateArtifactsPath()
	})
}

// ClearArtifactsPath clears the value of the "artifacts_path" field.
func (u *RunUpsertOne) ClearArtifactsPath() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearArtifactsPath()
	})
}

// SetPodID sets the "pod_id" field.
func (u *RunUpsertOne) SetPodID(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdatePodID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *RunUpsertOne) ClearPodID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *RunUpsertOne) SetLastInteractionAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateLastInteractionAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *RunUpsertOne) ClearLastInteractionAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearLastInteractionAt()
	})
}

// Exec executes the query.
func (u *RunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RunUpsertOne.ID is not supported by MySQL driver. Use RunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
	conflict []sql.ConflictOption
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Run.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunUpsertBulk {
	_c.conflict = opts
	return &RunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCreateBulk) OnConflictColumns(columns ...string) *RunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunUpsertBulk{
		create: _c,
	}
}

// RunUpsertBulk is the builder for "upsert"-ing
// a bulk of Run nodes.
type RunUpsertBulk struct {
	create *RunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(run.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunUpsertBulk) UpdateNewValues() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(run.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunUpsertBulk) Ignore() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunUpsertBulk) DoNothing() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCreateBulk.OnConflict
// documentation for more info.
func (u *RunUpsertBulk) Update(set func(*RunUpsert)) *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *RunUpsertBulk) SetTenantID(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateTenantID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTenantID()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *RunUpsertBulk) SetCorrelationID(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCorrelationID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCorrelationID()
	})
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (u *RunUpsertBulk) ClearCorrelationID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearCorrelationID()
	})
}

// SetSeed sets the "seed" field.
func (u *RunUpsertBulk) SetSeed(v int64) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetSeed(v)
	})
}

// AddSeed adds v to the "seed" field.
func (u *RunUpsertBulk) AddSeed(v int64) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddSeed(v)
	})
}

// UpdateSeed sets the "seed" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateSeed() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateSeed()
	})
}

// SetTemperature sets the "temperature" field.
func (u *RunUpsertBulk) SetTemperature(v float64) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetTemperature(v)
	})
}

// AddTemperature adds v to the "temperature" field.
func (u *RunUpsertBulk) AddTemperature(v float64) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddTemperature(v)
	})
}

// UpdateTemperature sets the "temperature" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateTemperature() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTemperature()
	})
}

// SetQuery sets the "query" field.
func (u *RunUpsertBulk) SetQuery(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetQuery(v)
	})
}

// UpdateQuery sets the "query" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateQuery() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateQuery()
	})
}

// SetStatus sets the "status" field.
func (u *RunUpsertBulk) SetStatus(v run.Status) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateStatus() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStatus()
	})
}

// SetTerminationReason sets the "termination_reason" field.
func (u *RunUpsertBulk) SetTerminationReason(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetTerminationReason(v)
	})
}

// UpdateTerminationReason sets the "termination_reason" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateTerminationReason() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTerminationReason()
	})
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (u *RunUpsertBulk) ClearTerminationReason() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearTerminationReason()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *RunUpsertBulk) SetErrorMessage(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateErrorMessage() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *RunUpsertBulk) ClearErrorMessage() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *RunUpsertBulk) SetCreatedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCreatedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsertBulk) SetStartedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateStartedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsertBulk) ClearStartedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunUpsertBulk) SetCompletedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCompletedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunUpsertBulk) ClearCompletedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetStepCount sets the "step_count" field.
func (u *RunUpsertBulk) SetStepCount(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetStepCount(v)
	})
}

// AddStepCount adds v to the "step_count" field.
func (u *RunUpsertBulk) AddStepCount(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddStepCount(v)
	})
}

// UpdateStepCount sets the "step_count" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateStepCount() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStepCount()
	})
}

// SetTokenTotal sets the "token_total" field.
func (u *RunUpsertBulk) SetTokenTotal(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetTokenTotal(v)
	})
}

// AddTokenTotal adds v to the "token_total" field.
func (u *RunUpsertBulk) AddTokenTotal(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddTokenTotal(v)
	})
}

// UpdateTokenTotal sets the "token_total" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateTokenTotal() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTokenTotal()
	})
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (u *RunUpsertBulk) SetConfigSnapshot(v map[string]interface{}) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetConfigSnapshot(v)
	})
}

// UpdateConfigSnapshot sets the "config_snapshot" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateConfigSnapshot() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateConfigSnapshot()
	})
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (u *RunUpsertBulk) ClearConfigSnapshot() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearConfigSnapshot()
	})
}

// SetArtifactsPath sets the "artifacts_path" field.
func (u *RunUpsertBulk) SetArtifactsPath(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetArtifactsPath(v)
	})
}

// UpdateArtifactsPath sets the "artifacts_path" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateArtifactsPath() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateArtifactsPath()
	})
}

// ClearArtifactsPath clears the value of the "artifacts_path" field.
func (u *RunUpsertBulk) ClearArtifactsPath() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearArtifactsPath()
	})
}

// SetPodID sets the "pod_id" field.
func (u *RunUpsertBulk) SetPodID(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdatePodID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *RunUpsertBulk) ClearPodID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *RunUpsertBulk) SetLastInteractionAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateLastInteractionAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *RunUpsertBulk) ClearLastInteractionAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearLastInteractionAt()
	})
}

// Exec executes the query.
func (u *RunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

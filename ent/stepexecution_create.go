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
	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/ent/stepexecution"
)

// StepExecutionCreate is the builder for creating a StepExecution entity.
type StepExecutionCreate struct {
	config
	mutation *StepExecutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStepID sets the "step_id" field.
func (_c *StepExecutionCreate) SetStepID(v int) *StepExecutionCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *StepExecutionCreate) SetQuestion(v string) *StepExecutionCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *StepExecutionCreate) SetRole(v string) *StepExecutionCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableRole(v *string) *StepExecutionCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StepExecutionCreate) SetStatus(v stepexecution.Status) *StepExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableStatus(v *stepexecution.Status) *StepExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *StepExecutionCreate) SetAttempt(v int) *StepExecutionCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableAttempt(v *int) *StepExecutionCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetOutput sets the "output" field.
func (_c *StepExecutionCreate) SetOutput(v string) *StepExecutionCreate {
	_c.mutation.SetOutput(v)
	return _c
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableOutput(v *string) *StepExecutionCreate {
	if v != nil {
		_c.SetOutput(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *StepExecutionCreate) SetConfidence(v float64) *StepExecutionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableConfidence(v *float64) *StepExecutionCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *StepExecutionCreate) SetTokensUsed(v int) *StepExecutionCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableTokensUsed(v *int) *StepExecutionCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetFromCache sets the "from_cache" field.
func (_c *StepExecutionCreate) SetFromCache(v bool) *StepExecutionCreate {
	_c.mutation.SetFromCache(v)
	return _c
}

// SetNillableFromCache sets the "from_cache" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableFromCache(v *bool) *StepExecutionCreate {
	if v != nil {
		_c.SetFromCache(*v)
	}
	return _c
}

// SetStepSignature sets the "step_signature" field.
func (_c *StepExecutionCreate) SetStepSignature(v string) *StepExecutionCreate {
	_c.mutation.SetStepSignature(v)
	return _c
}

// SetNillableStepSignature sets the "step_signature" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableStepSignature(v *string) *StepExecutionCreate {
	if v != nil {
		_c.SetStepSignature(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StepExecutionCreate) SetErrorMessage(v string) *StepExecutionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableErrorMessage(v *string) *StepExecutionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StepExecutionCreate) SetCreatedAt(v time.Time) *StepExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableCreatedAt(v *time.Time) *StepExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StepExecutionCreate) SetStartedAt(v time.Time) *StepExecutionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableStartedAt(v *time.Time) *StepExecutionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StepExecutionCreate) SetCompletedAt(v time.Time) *StepExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StepExecutionCreate) SetNillableCompletedAt(v *time.Time) *StepExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetRunID sets the "run" edge to the Run entity by ID.
func (_c *StepExecutionCreate) SetRunID(id string) *StepExecutionCreate {
	_c.mutation.SetRunID(id)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *StepExecutionCreate) SetRun(v *Run) *StepExecutionCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the StepExecutionMutation object of the builder.
func (_c *StepExecutionCreate) Mutation() *StepExecutionMutation {
	return _c.mutation
}

// Save creates the StepExecution in the database.
func (_c *StepExecutionCreate) Save(ctx context.Context) (*StepExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepExecutionCreate) SaveX(ctx context.Context) *StepExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := stepexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := stepexecution.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := stepexecution.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.FromCache(); !ok {
		v := stepexecution.DefaultFromCache
		_c.mutation.SetFromCache(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stepexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepExecutionCreate) check() error {
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "StepExecution.step_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "StepExecution.question"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StepExecution.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := stepexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepExecution.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "StepExecution.attempt"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "StepExecution.tokens_used"`)}
	}
	if _, ok := _c.mutation.FromCache(); !ok {
		return &ValidationError{Name: "from_cache", err: errors.New(`ent: missing required field "StepExecution.from_cache"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StepExecution.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "StepExecution.run"`)}
	}
	return nil
}

func (_c *StepExecutionCreate) sqlSave(ctx context.Context) (*StepExecution, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepExecutionCreate) createSpec() (*StepExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &StepExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stepexecution.Table, sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(stepexecution.FieldStepID, field.TypeInt, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(stepexecution.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(stepexecution.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(stepexecution.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(stepexecution.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.Output(); ok {
		_spec.SetField(stepexecution.FieldOutput, field.TypeString, value)
		_node.Output = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(stepexecution.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(stepexecution.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.FromCache(); ok {
		_spec.SetField(stepexecution.FieldFromCache, field.TypeBool, value)
		_node.FromCache = value
	}
	if value, ok := _c.mutation.StepSignature(); ok {
		_spec.SetField(stepexecution.FieldStepSignature, field.TypeString, value)
		_node.StepSignature = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(stepexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stepexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(stepexecution.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(stepexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   stepexecution.RunTable,
			Columns: []string{stepexecution.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.run_steps = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StepExecution.Create().
//		SetStepID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepExecutionUpsert) {
//			SetStepID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepExecutionCreate) OnConflict(opts ...sql.ConflictOption) *StepExecutionUpsertOne {
	_c.conflict = opts
	return &StepExecutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StepExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepExecutionCreate) OnConflictColumns(columns ...string) *StepExecutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepExecutionUpsertOne{
		create: _c,
	}
}

type (
	// StepExecutionUpsertOne is the builder for "upsert"-ing
	//  one StepExecution node.
	StepExecutionUpsertOne struct {
		create *StepExecutionCreate
	}

	// StepExecutionUpsert is the "OnConflict" setter.
	StepExecutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStepID sets the "step_id" field.
func (u *StepExecutionUpsert) SetStepID(v int) *StepExecutionUpsert {
	u.Set(stepexecution.FieldStepID, v)
	return u
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateStepID() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldStepID)
	return u
}

// AddStepID adds v to the "step_id" field.
func (u *StepExecutionUpsert) AddStepID(v int) *StepExecutionUpsert {
	u.Add(stepexecution.FieldStepID, v)
	return u
}

// SetQuestion sets the "question" field.
func (u *StepExecutionUpsert) SetQuestion(v string) *StepExecutionUpsert {
	u.Set(stepexecution.FieldQuestion, v)
	return u
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateQuestion() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldQuestion)
	return u
}

// SetRole sets the "role" field.
func (u *StepExecutionUpsert) SetRole(v string) *StepExecutionUpsert {
	u.Set(stepexecution.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateRole() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldRole)
	return u
}

// ClearRole clears the value of the "role" field.
func (u *StepExecutionUpsert) ClearRole() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldRole)
	return u
}

// SetStatus sets the "status" field.
func (u *StepExecutionUpsert) SetStatus(v stepexecution.Status) *StepExecutionUpsert {
	u.Set(stepexecution.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateStatus() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldStatus)
	return u
}

// SetAttempt sets the "attempt" field.
func (u *StepExecutionUpsert) SetAttempt(v int) *StepExecutionUpsert {
	u.Set(stepexecution.FieldAttempt, v)
	return u
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateAttempt() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldAttempt)
	return u
}

// AddAttempt adds v to the "attempt" field.
func (u *StepExecutionUpsert) AddAttempt(v int) *StepExecutionUpsert {
	u.Add(stepexecution.FieldAttempt, v)
	return u
}

// SetOutput sets the "output" field.
func (u *StepExecutionUpsert) SetOutput(v string) *StepExecutionUpsert {
	u.Set(stepexecution.FieldOutput, v)
	return u
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateOutput() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldOutput)
	return u
}

// ClearOutput clears the value of the "output" field.
func (u *StepExecutionUpsert) ClearOutput() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldOutput)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *StepExecutionUpsert) SetConfidence(v float64) *StepExecutionUpsert {
	u.Set(stepexecution.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateConfidence() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *StepExecutionUpsert) AddConfidence(v float64) *StepExecutionUpsert {
	u.Add(stepexecution.FieldConfidence, v)
	return u
}

// ClearConfidence clears the value of the "confidence" field.
func (u *StepExecutionUpsert) ClearConfidence() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldConfidence)
	return u
}

// SetTokensUsed sets the "tokens_used" field.
func (u *StepExecutionUpsert) SetTokensUsed(v int) *StepExecutionUpsert {
	u.Set(stepexecution.FieldTokensUsed, v)
	return u
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateTokensUsed() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldTokensUsed)
	return u
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *StepExecutionUpsert) AddTokensUsed(v int) *StepExecutionUpsert {
	u.Add(stepexecution.FieldTokensUsed, v)
	return u
}

// SetFromCache sets the "from_cache" field.
func (u *StepExecutionUpsert) SetFromCache(v bool) *StepExecutionUpsert {
	u.Set(stepexecution.FieldFromCache, v)
	return u
}

// UpdateFromCache sets the "from_cache" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateFromCache() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldFromCache)
	return u
}

// SetStepSignature sets the "step_signature" field.
func (u *StepExecutionUpsert) SetStepSignature(v string) *StepExecutionUpsert {
	u.Set(stepexecution.FieldStepSignature, v)
	return u
}

// UpdateStepSignature sets the "step_signature" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateStepSignature() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldStepSignature)
	return u
}

// ClearStepSignature clears the value of the "step_signature" field.
func (u *StepExecutionUpsert) ClearStepSignature() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldStepSignature)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *StepExecutionUpsert) SetErrorMessage(v string) *StepExecutionUpsert {
	u.Set(stepexecution.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateErrorMessage() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StepExecutionUpsert) ClearErrorMessage() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldErrorMessage)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *StepExecutionUpsert) SetCreatedAt(v time.Time) *StepExecutionUpsert {
	u.Set(stepexecution.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateCreatedAt() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldCreatedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *StepExecutionUpsert) SetStartedAt(v time.Time) *StepExecutionUpsert {
	u.Set(stepexecution.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateStartedAt() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepExecutionUpsert) ClearStartedAt() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepExecutionUpsert) SetCompletedAt(v time.Time) *StepExecutionUpsert {
	u.Set(stepexecution.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepExecutionUpsert) UpdateCompletedAt() *StepExecutionUpsert {
	u.SetExcluded(stepexecution.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepExecutionUpsert) ClearCompletedAt() *StepExecutionUpsert {
	u.SetNull(stepexecution.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.StepExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StepExecutionUpsertOne) UpdateNewValues() *StepExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StepExecution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StepExecutionUpsertOne) Ignore() *StepExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepExecutionUpsertOne) DoNothing() *StepExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepExecutionCreate.OnConflict
// documentation for more info.
func (u *StepExecutionUpsertOne) Update(set func(*StepExecutionUpsert)) *StepExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepID sets the "step_id" field.
func (u *StepExecutionUpsertOne) SetStepID(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStepID(v)
	})
}

// AddStepID adds v to the "step_id" field.
func (u *StepExecutionUpsertOne) AddStepID(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateStepID() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStepID()
	})
}

// SetQuestion sets the "question" field.
func (u *StepExecutionUpsertOne) SetQuestion(v string) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateQuestion() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateQuestion()
	})
}

// SetRole sets the "role" field.
func (u *StepExecutionUpsertOne) SetRole(v string) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateRole() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateRole()
	})
}

// ClearRole clears the value of the "role" field.
func (u *StepExecutionUpsertOne) ClearRole() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearRole()
	})
}

// SetStatus sets the "status" field.
func (u *StepExecutionUpsertOne) SetStatus(v stepexecution.Status) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateStatus() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempt sets the "attempt" field.
func (u *StepExecutionUpsertOne) SetAttempt(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *StepExecutionUpsertOne) AddAttempt(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateAttempt() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateAttempt()
	})
}

// SetOutput sets the "output" field.
func (u *StepExecutionUpsertOne) SetOutput(v string) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateOutput() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *StepExecutionUpsertOne) ClearOutput() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearOutput()
	})
}

// SetConfidence sets the "confidence" field.
func (u *StepExecutionUpsertOne) SetConfidence(v float64) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *StepExecutionUpsertOne) AddConfidence(v float64) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateConfidence() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *StepExecutionUpsertOne) ClearConfidence() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearConfidence()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *StepExecutionUpsertOne) SetTokensUsed(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *StepExecutionUpsertOne) AddTokensUsed(v int) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateTokensUsed() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetFromCache sets the "from_cache" field.
func (u *StepExecutionUpsertOne) SetFromCache(v bool) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetFromCache(v)
	})
}

// UpdateFromCache sets the "from_cache" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateFromCache() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateFromCache()
	})
}

// SetStepSignature sets the "step_signature" field.
func (u *StepExecutionUpsertOne) SetStepSignature(v string) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStepSignature(v)
	})
}

// UpdateStepSignature sets the "step_signature" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateStepSignature() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStepSignature()
	})
}

// ClearStepSignature clears the value of the "step_signature" field.
func (u *StepExecutionUpsertOne) ClearStepSignature() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearStepSignature()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StepExecutionUpsertOne) SetErrorMessage(v string) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateErrorMessage() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StepExecutionUpsertOne) ClearErrorMessage() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *StepExecutionUpsertOne) SetCreatedAt(v time.Time) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateCreatedAt() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StepExecutionUpsertOne) SetStartedAt(v time.Time) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateStartedAt() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepExecutionUpsertOne) ClearStartedAt() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepExecutionUpsertOne) SetCompletedAt(v time.Time) *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepExecutionUpsertOne) UpdateCompletedAt() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepExecutionUpsertOne) ClearCompletedAt() *StepExecutionUpsertOne {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *StepExecutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepExecutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepExecutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StepExecutionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StepExecutionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StepExecutionCreateBulk is the builder for creating many StepExecution entities in bulk.
type StepExecutionCreateBulk struct {
	config
	err      error
	builders []*StepExecutionCreate
	conflict []sql.ConflictOption
}

// Save creates the StepExecution entities in the database.
func (_c *StepExecutionCreateBulk) Save(ctx context.Context) ([]*StepExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StepExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepExecutionMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *StepExecutionCreateBulk) SaveX(ctx context.Context) []*StepExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StepExecution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepExecutionUpsert) {
//			SetStepID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepExecutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *StepExecutionUpsertBulk {
	_c.conflict = opts
	return &StepExecutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StepExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepExecutionCreateBulk) OnConflictColumns(columns ...string) *StepExecutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepExecutionUpsertBulk{
		create: _c,
	}
}

// StepExecutionUpsertBulk is the builder for "upsert"-ing
// a bulk of StepExecution nodes.
type StepExecutionUpsertBulk struct {
	create *StepExecutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StepExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StepExecutionUpsertBulk) UpdateNewValues() *StepExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StepExecution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StepExecutionUpsertBulk) Ignore() *StepExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepExecutionUpsertBulk) DoNothing() *StepExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepExecutionCreateBulk.OnConflict
// documentation for more info.
func (u *StepExecutionUpsertBulk) Update(set func(*StepExecutionUpsert)) *StepExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepID sets the "step_id" field.
func (u *StepExecutionUpsertBulk) SetStepID(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStepID(v)
	})
}

// AddStepID adds v to the "step_id" field.
func (u *StepExecutionUpsertBulk) AddStepID(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateStepID() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStepID()
	})
}

// SetQuestion sets the "question" field.
func (u *StepExecutionUpsertBulk) SetQuestion(v string) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetQuestion(v)
	})
}

// UpdateQuestion sets the "question" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateQuestion() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateQuestion()
	})
}

// SetRole sets the "role" field.
func (u *StepExecutionUpsertBulk) SetRole(v string) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateRole() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateRole()
	})
}

// ClearRole clears the value of the "role" field.
func (u *StepExecutionUpsertBulk) ClearRole() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearRole()
	})
}

// SetStatus sets the "status" field.
func (u *StepExecutionUpsertBulk) SetStatus(v stepexecution.Status) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateStatus() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempt sets the "attempt" field.
func (u *StepExecutionUpsertBulk) SetAttempt(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetAttempt(v)
	})
}

// AddAttempt adds v to the "attempt" field.
func (u *StepExecutionUpsertBulk) AddAttempt(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddAttempt(v)
	})
}

// UpdateAttempt sets the "attempt" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateAttempt() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateAttempt()
	})
}

// SetOutput sets the "output" field.
func (u *StepExecutionUpsertBulk) SetOutput(v string) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetOutput(v)
	})
}

// UpdateOutput sets the "output" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateOutput() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateOutput()
	})
}

// ClearOutput clears the value of the "output" field.
func (u *StepExecutionUpsertBulk) ClearOutput() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearOutput()
	})
}

// SetConfidence sets the "confidence" field.
func (u *StepExecutionUpsertBulk) SetConfidence(v float64) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *StepExecutionUpsertBulk) AddConfidence(v float64) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateConfidence() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *StepExecutionUpsertBulk) ClearConfidence() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearConfidence()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *StepExecutionUpsertBulk) SetTokensUsed(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *StepExecutionUpsertBulk) AddTokensUsed(v int) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateTokensUsed() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetFromCache sets the "from_cache" field.
func (u *StepExecutionUpsertBulk) SetFromCache(v bool) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetFromCache(v)
	})
}

// UpdateFromCache sets the "from_cache" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateFromCache() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateFromCache()
	})
}

// SetStepSignature sets the "step_signature" field.
func (u *StepExecutionUpsertBulk) SetStepSignature(v string) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStepSignature(v)
	})
}

// UpdateStepSignature sets the "step_signature" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateStepSignature() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStepSignature()
	})
}

// ClearStepSignature clears the value of the "step_signature" field.
func (u *StepExecutionUpsertBulk) ClearStepSignature() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearStepSignature()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StepExecutionUpsertBulk) SetErrorMessage(v string) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateErrorMessage() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StepExecutionUpsertBulk) ClearErrorMessage() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *StepExecutionUpsertBulk) SetCreatedAt(v time.Time) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateCreatedAt() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StepExecutionUpsertBulk) SetStartedAt(v time.Time) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateStartedAt() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StepExecutionUpsertBulk) ClearStartedAt() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *StepExecutionUpsertBulk) SetCompletedAt(v time.Time) *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *StepExecutionUpsertBulk) UpdateCompletedAt() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *StepExecutionUpsertBulk) ClearCompletedAt() *StepExecutionUpsertBulk {
	return u.Update(func(s *StepExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *StepExecutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StepExecutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepExecutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepExecutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

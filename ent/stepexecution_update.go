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
	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/ent/stepexecution"
)

// StepExecutionUpdate is the builder for updating StepExecution entities.
type StepExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *StepExecutionMutation
}

// Where appends a list predicates to the StepExecutionUpdate builder.
func (_u *StepExecutionUpdate) Where(ps ...predicate.StepExecution) *StepExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *StepExecutionUpdate) SetStepID(v int) *StepExecutionUpdate {
	_u.mutation.ResetStepID()
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableStepID(v *int) *StepExecutionUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// AddStepID adds value to the "step_id" field.
func (_u *StepExecutionUpdate) AddStepID(v int) *StepExecutionUpdate {
	_u.mutation.AddStepID(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *StepExecutionUpdate) SetQuestion(v string) *StepExecutionUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableQuestion(v *string) *StepExecutionUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *StepExecutionUpdate) SetRole(v string) *StepExecutionUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableRole(v *string) *StepExecutionUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *StepExecutionUpdate) ClearRole() *StepExecutionUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepExecutionUpdate) SetStatus(v stepexecution.Status) *StepExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableStatus(v *stepexecution.Status) *StepExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *StepExecutionUpdate) SetAttempt(v int) *StepExecutionUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableAttempt(v *int) *StepExecutionUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *StepExecutionUpdate) AddAttempt(v int) *StepExecutionUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *StepExecutionUpdate) SetOutput(v string) *StepExecutionUpdate {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableOutput(v *string) *StepExecutionUpdate {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *StepExecutionUpdate) ClearOutput() *StepExecutionUpdate {
	_u.mutation.ClearOutput()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *StepExecutionUpdate) SetConfidence(v float64) *StepExecutionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableConfidence(v *float64) *StepExecutionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *StepExecutionUpdate) AddConfidence(v float64) *StepExecutionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *StepExecutionUpdate) ClearConfidence() *StepExecutionUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *StepExecutionUpdate) SetTokensUsed(v int) *StepExecutionUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableTokensUsed(v *int) *StepExecutionUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *StepExecutionUpdate) AddTokensUsed(v int) *StepExecutionUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetFromCache sets the "from_cache" field.
func (_u *StepExecutionUpdate) SetFromCache(v bool) *StepExecutionUpdate {
	_u.mutation.SetFromCache(v)
	return _u
}

// SetNillableFromCache sets the "from_cache" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableFromCache(v *bool) *StepExecutionUpdate {
	if v != nil {
		_u.SetFromCache(*v)
	}
	return _u
}

// SetStepSignature sets the "step_signature" field.
func (_u *StepExecutionUpdate) SetStepSignature(v string) *StepExecutionUpdate {
	_u.mutation.SetStepSignature(v)
	return _u
}

// SetNillableStepSignature sets the "step_signature" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableStepSignature(v *string) *StepExecutionUpdate {
	if v != nil {
		_u.SetStepSignature(*v)
	}
	return _u
}

// ClearStepSignature clears the value of the "step_signature" field.
func (_u *StepExecutionUpdate) ClearStepSignature() *StepExecutionUpdate {
	_u.mutation.ClearStepSignature()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StepExecutionUpdate) SetErrorMessage(v string) *StepExecutionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableErrorMessage(v *string) *StepExecutionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StepExecutionUpdate) ClearErrorMessage() *StepExecutionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StepExecutionUpdate) SetCreatedAt(v time.Time) *StepExecutionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableCreatedAt(v *time.Time) *StepExecutionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepExecutionUpdate) SetStartedAt(v time.Time) *StepExecutionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableStartedAt(v *time.Time) *StepExecutionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepExecutionUpdate) ClearStartedAt() *StepExecutionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepExecutionUpdate) SetCompletedAt(v time.Time) *StepExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepExecutionUpdate) SetNillableCompletedAt(v *time.Time) *StepExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepExecutionUpdate) ClearCompletedAt() *StepExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRunID sets the "run" edge to the Run entity by ID.
func (_u *StepExecutionUpdate) SetRunID(id string) *StepExecutionUpdate {
	_u.mutation.SetRunID(id)
	return _u
}

// SetRun sets the "run" edge to the Run entity.
func (_u *StepExecutionUpdate) SetRun(v *Run) *StepExecutionUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the StepExecutionMutation object of the builder.
func (_u *StepExecutionUpdate) Mutation() *StepExecutionMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the Run entity.
func (_u *StepExecutionUpdate) ClearRun() *StepExecutionUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepExecutionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stepexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepExecution.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepExecution.run"`)
	}
	return nil
}

func (_u *StepExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepexecution.Table, stepexecution.Columns, sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(stepexecution.FieldStepID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepID(); ok {
		_spec.AddField(stepexecution.FieldStepID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(stepexecution.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(stepexecution.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(stepexecution.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stepexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(stepexecution.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(stepexecution.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(stepexecution.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(stepexecution.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(stepexecution.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(stepexecution.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(stepexecution.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(stepexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(stepexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FromCache(); ok {
		_spec.SetField(stepexecution.FieldFromCache, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StepSignature(); ok {
		_spec.SetField(stepexecution.FieldStepSignature, field.TypeString, value)
	}
	if _u.mutation.StepSignatureCleared() {
		_spec.ClearField(stepexecution.FieldStepSignature, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stepexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stepexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stepexecution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stepexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(stepexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stepexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stepexecution.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepExecutionUpdateOne is the builder for updating a single StepExecution entity.
type StepExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepExecutionMutation
}

// SetStepID sets the "step_id" field.
func (_u *StepExecutionUpdateOne) SetStepID(v int) *StepExecutionUpdateOne {
	_u.mutation.ResetStepID()
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableStepID(v *int) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// AddStepID adds value to the "step_id" field.
func (_u *StepExecutionUpdateOne) AddStepID(v int) *StepExecutionUpdateOne {
	_u.mutation.AddStepID(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *StepExecutionUpdateOne) SetQuestion(v string) *StepExecutionUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableQuestion(v *string) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *StepExecutionUpdateOne) SetRole(v string) *StepExecutionUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableRole(v *string) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *StepExecutionUpdateOne) ClearRole() *StepExecutionUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StepExecutionUpdateOne) SetStatus(v stepexecution.Status) *StepExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableStatus(v *stepexecution.Status) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *StepExecutionUpdateOne) SetAttempt(v int) *StepExecutionUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableAttempt(v *int) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *StepExecutionUpdateOne) AddAttempt(v int) *StepExecutionUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetOutput sets the "output" field.
func (_u *StepExecutionUpdateOne) SetOutput(v string) *StepExecutionUpdateOne {
	_u.mutation.SetOutput(v)
	return _u
}

// SetNillableOutput sets the "output" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableOutput(v *string) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetOutput(*v)
	}
	return _u
}

// ClearOutput clears the value of the "output" field.
func (_u *StepExecutionUpdateOne) ClearOutput() *StepExecutionUpdateOne {
	_u.mutation.ClearOutput()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *StepExecutionUpdateOne) SetConfidence(v float64) *StepExecutionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableConfidence(v *float64) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *StepExecutionUpdateOne) AddConfidence(v float64) *StepExecutionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *StepExecutionUpdateOne) ClearConfidence() *StepExecutionUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *StepExecutionUpdateOne) SetTokensUsed(v int) *StepExecutionUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableTokensUsed(v *int) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *StepExecutionUpdateOne) AddTokensUsed(v int) *StepExecutionUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetFromCache sets the "from_cache" field.
func (_u *StepExecutionUpdateOne) SetFromCache(v bool) *StepExecutionUpdateOne {
	_u.mutation.SetFromCache(v)
	return _u
}

// SetNillableFromCache sets the "from_cache" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableFromCache(v *bool) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetFromCache(*v)
	}
	return _u
}

// SetStepSignature sets the "step_signature" field.
func (_u *StepExecutionUpdateOne) SetStepSignature(v string) *StepExecutionUpdateOne {
	_u.mutation.SetStepSignature(v)
	return _u
}

// SetNillableStepSignature sets the "step_signature" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableStepSignature(v *string) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetStepSignature(*v)
	}
	return _u
}

// ClearStepSignature clears the value of the "step_signature" field.
func (_u *StepExecutionUpdateOne) ClearStepSignature() *StepExecutionUpdateOne {
	_u.mutation.ClearStepSignature()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StepExecutionUpdateOne) SetErrorMessage(v string) *StepExecutionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableErrorMessage(v *string) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StepExecutionUpdateOne) ClearErrorMessage() *StepExecutionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StepExecutionUpdateOne) SetCreatedAt(v time.Time) *StepExecutionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableCreatedAt(v *time.Time) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StepExecutionUpdateOne) SetStartedAt(v time.Time) *StepExecutionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableStartedAt(v *time.Time) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StepExecutionUpdateOne) ClearStartedAt() *StepExecutionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StepExecutionUpdateOne) SetCompletedAt(v time.Time) *StepExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StepExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *StepExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StepExecutionUpdateOne) ClearCompletedAt() *StepExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRunID sets the "run" edge to the Run entity by ID.
func (_u *StepExecutionUpdateOne) SetRunID(id string) *StepExecutionUpdateOne {
	_u.mutation.SetRunID(id)
	return _u
}

// SetRun sets the "run" edge to the Run entity.
func (_u *StepExecutionUpdateOne) SetRun(v *Run) *StepExecutionUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the StepExecutionMutation object of the builder.
func (_u *StepExecutionUpdateOne) Mutation() *StepExecutionMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the Run entity.
func (_u *StepExecutionUpdateOne) ClearRun() *StepExecutionUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the StepExecutionUpdate builder.
func (_u *StepExecutionUpdateOne) Where(ps ...predicate.StepExecution) *StepExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepExecutionUpdateOne) Select(field string, fields ...string) *StepExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StepExecution entity.
func (_u *StepExecutionUpdateOne) Save(ctx context.Context) (*StepExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepExecutionUpdateOne) SaveX(ctx context.Context) *StepExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepExecutionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := stepexecution.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StepExecution.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StepExecution.run"`)
	}
	return nil
}

func (_u *StepExecutionUpdateOne) sqlSave(ctx context.Context) (_node *StepExecution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stepexecution.Table, stepexecution.Columns, sqlgraph.NewFieldSpec(stepexecution.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StepExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stepexecution.FieldID)
		for _, f := range fields {
			if !stepexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stepexecution.FieldID {
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
		_spec.SetField(stepexecution.FieldStepID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepID(); ok {
		_spec.AddField(stepexecution.FieldStepID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(stepexecution.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(stepexecution.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(stepexecution.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(stepexecution.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(stepexecution.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(stepexecution.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Output(); ok {
		_spec.SetField(stepexecution.FieldOutput, field.TypeString, value)
	}
	if _u.mutation.OutputCleared() {
		_spec.ClearField(stepexecution.FieldOutput, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(stepexecution.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(stepexecution.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(stepexecution.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(stepexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(stepexecution.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FromCache(); ok {
		_spec.SetField(stepexecution.FieldFromCache, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StepSignature(); ok {
		_spec.SetField(stepexecution.FieldStepSignature, field.TypeString, value)
	}
	if _u.mutation.StepSignatureCleared() {
		_spec.ClearField(stepexecution.FieldStepSignature, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(stepexecution.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(stepexecution.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(stepexecution.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(stepexecution.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(stepexecution.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(stepexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(stepexecution.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.RunCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StepExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stepexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

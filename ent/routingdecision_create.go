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
	"github.com/orchid-run/orchid/ent/routingdecision"
	"github.com/orchid-run/orchid/ent/run"
)

// RoutingDecisionCreate is the builder for creating a RoutingDecision entity.
type RoutingDecisionCreate struct {
	config
	mutation *RoutingDecisionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStepID sets the "step_id" field.
func (_c *RoutingDecisionCreate) SetStepID(v int) *RoutingDecisionCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetSelectedRole sets the "selected_role" field.
func (_c *RoutingDecisionCreate) SetSelectedRole(v string) *RoutingDecisionCreate {
	_c.mutation.SetSelectedRole(v)
	return _c
}

// SetQueryType sets the "query_type" field.
func (_c *RoutingDecisionCreate) SetQueryType(v string) *RoutingDecisionCreate {
	_c.mutation.SetQueryType(v)
	return _c
}

// SetNillableQueryType sets the "query_type" field if the given value is not nil.
func (_c *RoutingDecisionCreate) SetNillableQueryType(v *string) *RoutingDecisionCreate {
	if v != nil {
		_c.SetQueryType(*v)
	}
	return _c
}

// SetScores sets the "scores" field.
func (_c *RoutingDecisionCreate) SetScores(v map[string]float64) *RoutingDecisionCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetNormalizedScores sets the "normalized_scores" field.
func (_c *RoutingDecisionCreate) SetNormalizedScores(v map[string]float64) *RoutingDecisionCreate {
	_c.mutation.SetNormalizedScores(v)
	return _c
}

// SetFallback sets the "fallback" field.
func (_c *RoutingDecisionCreate) SetFallback(v bool) *RoutingDecisionCreate {
	_c.mutation.SetFallback(v)
	return _c
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_c *RoutingDecisionCreate) SetNillableFallback(v *bool) *RoutingDecisionCreate {
	if v != nil {
		_c.SetFallback(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *RoutingDecisionCreate) SetConfidence(v float64) *RoutingDecisionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *RoutingDecisionCreate) SetNillableConfidence(v *float64) *RoutingDecisionCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetRoutingTimeUs sets the "routing_time_us" field.
func (_c *RoutingDecisionCreate) SetRoutingTimeUs(v int64) *RoutingDecisionCreate {
	_c.mutation.SetRoutingTimeUs(v)
	return _c
}

// SetNillableRoutingTimeUs sets the "routing_time_us" field if the given value is not nil.
func (_c *RoutingDecisionCreate) SetNillableRoutingTimeUs(v *int64) *RoutingDecisionCreate {
	if v != nil {
		_c.SetRoutingTimeUs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoutingDecisionCreate) SetCreatedAt(v time.Time) *RoutingDecisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoutingDecisionCreate) SetNillableCreatedAt(v *time.Time) *RoutingDecisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRunID sets the "run" edge to the Run entity by ID.
func (_c *RoutingDecisionCreate) SetRunID(id string) *RoutingDecisionCreate {
	_c.mutation.SetRunID(id)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *RoutingDecisionCreate) SetRun(v *Run) *RoutingDecisionCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the RoutingDecisionMutation object of the builder.
func (_c *RoutingDecisionCreate) Mutation() *RoutingDecisionMutation {
	return _c.mutation
}

// Save creates the RoutingDecision in the database.
func (_c *RoutingDecisionCreate) Save(ctx context.Context) (*RoutingDecision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoutingDecisionCreate) SaveX(ctx context.Context) *RoutingDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutingDecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutingDecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoutingDecisionCreate) defaults() {
	if _, ok := _c.mutation.Fallback(); !ok {
		v := routingdecision.DefaultFallback
		_c.mutation.SetFallback(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := routingdecision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoutingDecisionCreate) check() error {
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "RoutingDecision.step_id"`)}
	}
	if _, ok := _c.mutation.SelectedRole(); !ok {
		return &ValidationError{Name: "selected_role", err: errors.New(`ent: missing required field "RoutingDecision.selected_role"`)}
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		return &ValidationError{Name: "fallback", err: errors.New(`ent: missing required field "RoutingDecision.fallback"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RoutingDecision.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "RoutingDecision.run"`)}
	}
	return nil
}

func (_c *RoutingDecisionCreate) sqlSave(ctx context.Context) (*RoutingDecision, error) {
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

func (_c *RoutingDecisionCreate) createSpec() (*RoutingDecision, *sqlgraph.CreateSpec) {
	var (
		_node = &RoutingDecision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(routingdecision.Table, sqlgraph.NewFieldSpec(routingdecision.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(routingdecision.FieldStepID, field.TypeInt, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.SelectedRole(); ok {
		_spec.SetField(routingdecision.FieldSelectedRole, field.TypeString, value)
		_node.SelectedRole = value
	}
	if value, ok := _c.mutation.QueryType(); ok {
		_spec.SetField(routingdecision.FieldQueryType, field.TypeString, value)
		_node.QueryType = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(routingdecision.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.NormalizedScores(); ok {
		_spec.SetField(routingdecision.FieldNormalizedScores, field.TypeJSON, value)
		_node.NormalizedScores = value
	}
	if value, ok := _c.mutation.Fallback(); ok {
		_spec.SetField(routingdecision.FieldFallback, field.TypeBool, value)
		_node.Fallback = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(routingdecision.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.RoutingTimeUs(); ok {
		_spec.SetField(routingdecision.FieldRoutingTimeUs, field.TypeInt64, value)
		_node.RoutingTimeUs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(routingdecision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
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
		_node.run_routing_decisions = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RoutingDecision.Create().
//		SetStepID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoutingDecisionUpsert) {
//			SetStepID(v+v).
//		}).
//		Exec(ctx)
func (_c *RoutingDecisionCreate) OnConflict(opts ...sql.ConflictOption) *RoutingDecisionUpsertOne {
	_c.conflict = opts
	return &RoutingDecisionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RoutingDecision.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoutingDecisionCreate) OnConflictColumns(columns ...string) *RoutingDecisionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoutingDecisionUpsertOne{
		create: _c,
	}
}

type (
	// RoutingDecisionUpsertOne is the builder for "upsert"-ing
	//  one RoutingDecision node.
	RoutingDecisionUpsertOne struct {
		create *RoutingDecisionCreate
	}

	// RoutingDecisionUpsert is the "OnConflict" setter.
	RoutingDecisionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStepID sets the "step_id" field.
func (u *RoutingDecisionUpsert) SetStepID(v int) *RoutingDecisionUpsert {
	u.Set(routingdecision.FieldStepID, v)
	return u
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *RoutingDecisionUpsert) UpdateStepID() *RoutingDecisionUpsert {
	u.SetExcluded(routingdecision.FieldStepID)
	return u
}

// AddStepID adds v to the "step_id" field.
func (u *RoutingDecisionUpsert) AddStepID(v int) *RoutingDecisionUpsert {
	u.Add(routingdecision.FieldStepID, v)
	return u
}

// SetSelectedRole sets the "selected_role" field.
func (u *RoutingDecisionUpsert) SetSelectedRole(v string) *RoutingDecisionUpsert {
	u.Set(routingdecision.FieldSelectedRole, v)
	return u
}

// UpdateSelectedRole sets the "selected_role" field to the value that was provided on create.
func (u *RoutingDecisionUpsert) UpdateSelectedRole() *RoutingDecisionUpsert {
	u.SetExcluded(routingdecision.FieldSelectedRole)
	return u
}

// SetQueryType sets the "query_type" field.
func (u *RoutingDecisionUpsert) SetQueryType(v string) *RoutingDecisionUpsert {
	u.Set(routingdecision.FieldQueryType, v)
	return u
}

// UpdateQueryType sets the "query_type" field to the value that was provided on create.
func (u *RoutingDecisionUpsert) UpdateQueryType() *RoutingDecisionUpsert {
	u.SetExcluded(routingdecision.FieldQueryType)
	return u
}

// ClearQueryType clears the value of the "query_type" field.
func (u *RoutingDecisionUpsert) ClearQueryType() *RoutingDecisionUpsert {
	u.SetNull(routingdecision.FieldQueryType)
	return u
}

// SetScores sets the "scores" field.
func (u *RoutingDecisionUpsert) SetScores(v map[string]float64) *RoutingDecisionUpsert {
	u.Set(routingdecision.FieldScores, v)
	return u
}

// UpdateScores sets the "scores" field to the value that was provided on create.
func (u *RoutingDecisionUpsert) UpdateScores() *RoutingDecisionUpsert {
	u.SetExcluded(routingdecision.FieldScores)
	return u
}

// ClearScores clears the value of the "scores" field.
func (u *RoutingDecisionUpsert) ClearScores() *RoutingDecisionUpsert {
	u.SetNull(routingdecision.FieldScores)
	return u
}

// SetNormalizedScores sets the "normalized_scores" field.
func (u *RoutingDecisionUpsert) SetNormalizedScores(v map[string]float64) *RoutingDecisionUpsert {
	u.Set(routingdecision.FieldNormalizedScores, v)
	return u
}

// UpdateNormalizedScores sets the "normalized_scores" field to the value that was provided on create.
func (u *RoutingDecisionUpsert) UpdateNormalizedScores() *RoutingDecisionUpsert {
	u.SetExcluded(routingdecision.FieldNormalizedScores)
	return u
}

// ClearNormalizedScores clears the value of the "normalized_scores" field.
func (u *RoutingDecisionUpsert) ClearNormalizedScores() *RoutingDecisionUpsert {
	u.SetNull(routingdecision.FieldNormalizedScores)
	return u
}

// SetFallback sets the "fallback" field.
func (u *RoutingDecisionUpsert) SetFallback(v bool) *RoutingDecisionUpsert {
	u.Set(routingdecision.FieldFallback, v)
	return u
}

// UpdateFallback sets the "fallback" field to the value that was provided on create.
func (u *RoutingDecisionUpsert) UpdateFallback() *RoutingDecisionUpsert {
	u.SetExcluded(routingdecision.FieldFallback)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *RoutingDecisionUpsert) SetConfidence(v float64) *RoutingDecisionUpsert {
	u.Set(routingdecision.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *RoutingDecisionUpsert) UpdateConfidence() *RoutingDecisionUpsert {
	u.SetExcluded(routingdecision.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *RoutingDecisionUpsert) AddConfidence(v float64) *RoutingDecisionUpsert {
	u.Add(routingdecision.FieldConfidence, v)
	return u
}

// ClearConfidence clears the value of the "confidence" field.
func (u *RoutingDecisionUpsert) ClearConfidence() *RoutingDecisionUpsert {
	u.SetNull(routingdecision.FieldConfidence)
	return u
}

// SetRoutingTimeUs sets the "routing_time_us" field.
func (u *RoutingDecisionUpsert) SetRoutingTimeUs(v int64) *RoutingDecisionUpsert {
	u.Set(routingdecision.FieldRoutingTimeUs, v)
	return u
}

// UpdateRoutingTimeUs sets the "routing_time_us" field to the value that was provided on create.
func (u *RoutingDecisionUpsert) UpdateRoutingTimeUs() *RoutingDecisionUpsert {
	u.SetExcluded(routingdecision.FieldRoutingTimeUs)
	return u
}

// AddRoutingTimeUs adds v to the "routing_time_us" field.
func (u *RoutingDecisionUpsert) AddRoutingTimeUs(v int64) *RoutingDecisionUpsert {
	u.Add(routingdecision.FieldRoutingTimeUs, v)
	return u
}

// ClearRoutingTimeUs clears the value of the "routing_time_us" field.
func (u *RoutingDecisionUpsert) ClearRoutingTimeUs() *RoutingDecisionUpsert {
	u.SetNull(routingdecision.FieldRoutingTimeUs)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *RoutingDecisionUpsert) SetCreatedAt(v time.Time) *RoutingDecisionUpsert {
	u.Set(routingdecision.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RoutingDecisionUpsert) UpdateCreatedAt() *RoutingDecisionUpsert {
	u.SetExcluded(routingdecision.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.RoutingDecision.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RoutingDecisionUpsertOne) UpdateNewValues() *RoutingDecisionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RoutingDecision.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RoutingDecisionUpsertOne) Ignore() *RoutingDecisionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoutingDecisionUpsertOne) DoNothing() *RoutingDecisionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoutingDecisionCreate.OnConflict
// documentation for more info.
func (u *RoutingDecisionUpsertOne) Update(set func(*RoutingDecisionUpsert)) *RoutingDecisionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoutingDecisionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepID sets the "step_id" field.
func (u *RoutingDecisionUpsertOne) SetStepID(v int) *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetStepID(v)
	})
}

// AddStepID adds v to the "step_id" field.
func (u *RoutingDecisionUpsertOne) AddStepID(v int) *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.AddStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *RoutingDecisionUpsertOne) UpdateStepID() *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateStepID()
	})
}

// SetSelectedRole sets the "selected_role" field.
func (u *RoutingDecisionUpsertOne) SetSelectedRole(v string) *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetSelectedRole(v)
	})
}

// UpdateSelectedRole sets the "selected_role" field to the value that was provided on create.
func (u *RoutingDecisionUpsertOne) UpdateSelectedRole() *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateSelectedRole()
	})
}

// SetQueryType sets the "query_type" field.
func (u *RoutingDecisionUpsertOne) SetQueryType(v string) *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetQueryType(v)
	})
}

// UpdateQueryType sets the "query_type" field to the value that was provided on create.
func (u *RoutingDecisionUpsertOne) UpdateQueryType() *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateQueryType()
	})
}

// ClearQueryType clears the value of the "query_type" field.
func (u *RoutingDecisionUpsertOne) ClearQueryType() *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.ClearQueryType()
	})
}

// SetScores sets the "scores" field.
func (u *RoutingDecisionUpsertOne) SetScores(v map[string]float64) *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetScores(v)
	})
}

// UpdateScores sets the "scores" field to the value that was provided on create.
func (u *RoutingDecisionUpsertOne) UpdateScores() *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateScores()
	})
}

// ClearScores clears the value of the "scores" field.
func (u *RoutingDecisionUpsertOne) ClearScores() *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.ClearScores()
	})
}

// SetNormalizedScores sets the "normalized_scores" field.
func (u *RoutingDecisionUpsertOne) SetNormalizedScores(v map[string]float64) *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetNormalizedScores(v)
	})
}

// UpdateNormalizedScores sets the "normalized_scores" field to the value that was provided on create.
func (u *RoutingDecisionUpsertOne) UpdateNormalizedScores() *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateNormalizedScores()
	})
}

// ClearNormalizedScores clears the value of the "normalized_scores" field.
func (u *RoutingDecisionUpsertOne) ClearNormalizedScores() *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.ClearNormalizedScores()
	})
}

// SetFallback sets the "fallback" field.
func (u *RoutingDecisionUpsertOne) SetFallback(v bool) *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetFallback(v)
	})
}

// UpdateFallback sets the "fallback" field to the value that was provided on create.
func (u *RoutingDecisionUpsertOne) UpdateFallback() *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateFallback()
	})
}

// SetConfidence sets the "confidence" field.
func (u *RoutingDecisionUpsertOne) SetConfidence(v float64) *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *RoutingDecisionUpsertOne) AddConfidence(v float64) *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *RoutingDecisionUpsertOne) UpdateConfidence() *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *RoutingDecisionUpsertOne) ClearConfidence() *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.ClearConfidence()
	})
}

// SetRoutingTimeUs sets the "routing_time_us" field.
func (u *RoutingDecisionUpsertOne) SetRoutingTimeUs(v int64) *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetRoutingTimeUs(v)
	})
}

// AddRoutingTimeUs adds v to the "routing_time_us" field.
func (u *RoutingDecisionUpsertOne) AddRoutingTimeUs(v int64) *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.AddRoutingTimeUs(v)
	})
}

// UpdateRoutingTimeUs sets the "routing_time_us" field to the value that was provided on create.
func (u *RoutingDecisionUpsertOne) UpdateRoutingTimeUs() *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateRoutingTimeUs()
	})
}

// ClearRoutingTimeUs clears the value of the "routing_time_us" field.
func (u *RoutingDecisionUpsertOne) ClearRoutingTimeUs() *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.ClearRoutingTimeUs()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *RoutingDecisionUpsertOne) SetCreatedAt(v time.Time) *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RoutingDecisionUpsertOne) UpdateCreatedAt() *RoutingDecisionUpsertOne {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *RoutingDecisionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoutingDecisionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoutingDecisionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RoutingDecisionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RoutingDecisionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RoutingDecisionCreateBulk is the builder for creating many RoutingDecision entities in bulk.
type RoutingDecisionCreateBulk struct {
	config
	err      error
	builders []*RoutingDecisionCreate
	conflict []sql.ConflictOption
}

// Save creates the RoutingDecision entities in the database.
func (_c *RoutingDecisionCreateBulk) Save(ctx context.Context) ([]*RoutingDecision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoutingDecision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoutingDecisionMutation)
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
func (_c *RoutingDecisionCreateBulk) SaveX(ctx context.Context) []*RoutingDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoutingDecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoutingDecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RoutingDecision.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoutingDecisionUpsert) {
//			SetStepID(v+v).
//		}).
//		Exec(ctx)
func (_c *RoutingDecisionCreateBulk) OnConflict(opts ...sql.ConflictOption) *RoutingDecisionUpsertBulk {
	_c.conflict = opts
	return &RoutingDecisionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RoutingDecision.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoutingDecisionCreateBulk) OnConflictColumns(columns ...string) *RoutingDecisionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoutingDecisionUpsertBulk{
		create: _c,
	}
}

// RoutingDecisionUpsertBulk is the builder for "upsert"-ing
// a bulk of RoutingDecision nodes.
type RoutingDecisionUpsertBulk struct {
	create *RoutingDecisionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RoutingDecision.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RoutingDecisionUpsertBulk) UpdateNewValues() *RoutingDecisionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RoutingDecision.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RoutingDecisionUpsertBulk) Ignore() *RoutingDecisionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoutingDecisionUpsertBulk) DoNothing() *RoutingDecisionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoutingDecisionCreateBulk.OnConflict
// documentation for more info.
func (u *RoutingDecisionUpsertBulk) Update(set func(*RoutingDecisionUpsert)) *RoutingDecisionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoutingDecisionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepID sets the "step_id" field.
func (u *RoutingDecisionUpsertBulk) SetStepID(v int) *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetStepID(v)
	})
}

// AddStepID adds v to the "step_id" field.
func (u *RoutingDecisionUpsertBulk) AddStepID(v int) *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.AddStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *RoutingDecisionUpsertBulk) UpdateStepID() *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateStepID()
	})
}

// SetSelectedRole sets the "selected_role" field.
func (u *RoutingDecisionUpsertBulk) SetSelectedRole(v string) *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetSelectedRole(v)
	})
}

// UpdateSelectedRole sets the "selected_role" field to the value that was provided on create.
func (u *RoutingDecisionUpsertBulk) UpdateSelectedRole() *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateSelectedRole()
	})
}

// SetQueryType sets the "query_type" field.
func (u *RoutingDecisionUpsertBulk) SetQueryType(v string) *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetQueryType(v)
	})
}

// UpdateQueryType sets the "query_type" field to the value that was provided on create.
func (u *RoutingDecisionUpsertBulk) UpdateQueryType() *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateQueryType()
	})
}

// ClearQueryType clears the value of the "query_type" field.
func (u *RoutingDecisionUpsertBulk) ClearQueryType() *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.ClearQueryType()
	})
}

// SetScores sets the "scores" field.
func (u *RoutingDecisionUpsertBulk) SetScores(v map[string]float64) *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetScores(v)
	})
}

// UpdateScores sets the "scores" field to the value that was provided on create.
func (u *RoutingDecisionUpsertBulk) UpdateScores() *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateScores()
	})
}

// ClearScores clears the value of the "scores" field.
func (u *RoutingDecisionUpsertBulk) ClearScores() *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.ClearScores()
	})
}

// SetNormalizedScores sets the "normalized_scores" field.
func (u *RoutingDecisionUpsertBulk) SetNormalizedScores(v map[string]float64) *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetNormalizedScores(v)
	})
}

// UpdateNormalizedScores sets the "normalized_scores" field to the value that was provided on create.
func (u *RoutingDecisionUpsertBulk) UpdateNormalizedScores() *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateNormalizedScores()
	})
}

// ClearNormalizedScores clears the value of the "normalized_scores" field.
func (u *RoutingDecisionUpsertBulk) ClearNormalizedScores() *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.ClearNormalizedScores()
	})
}

// SetFallback sets the "fallback" field.
func (u *RoutingDecisionUpsertBulk) SetFallback(v bool) *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetFallback(v)
	})
}

// UpdateFallback sets the "fallback" field to the value that was provided on create.
func (u *RoutingDecisionUpsertBulk) UpdateFallback() *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateFallback()
	})
}

// SetConfidence sets the "confidence" field.
func (u *RoutingDecisionUpsertBulk) SetConfidence(v float64) *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *RoutingDecisionUpsertBulk) AddConfidence(v float64) *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *RoutingDecisionUpsertBulk) UpdateConfidence() *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateConfidence()
	})
}

// ClearConfidence clears the value of the "confidence" field.
func (u *RoutingDecisionUpsertBulk) ClearConfidence() *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.ClearConfidence()
	})
}

// SetRoutingTimeUs sets the "routing_time_us" field.
func (u *RoutingDecisionUpsertBulk) SetRoutingTimeUs(v int64) *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetRoutingTimeUs(v)
	})
}

// AddRoutingTimeUs adds v to the "routing_time_us" field.
func (u *RoutingDecisionUpsertBulk) AddRoutingTimeUs(v int64) *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.AddRoutingTimeUs(v)
	})
}

// UpdateRoutingTimeUs sets the "routing_time_us" field to the value that was provided on create.
func (u *RoutingDecisionUpsertBulk) UpdateRoutingTimeUs() *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateRoutingTimeUs()
	})
}

// ClearRoutingTimeUs clears the value of the "routing_time_us" field.
func (u *RoutingDecisionUpsertBulk) ClearRoutingTimeUs() *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.ClearRoutingTimeUs()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *RoutingDecisionUpsertBulk) SetCreatedAt(v time.Time) *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RoutingDecisionUpsertBulk) UpdateCreatedAt() *RoutingDecisionUpsertBulk {
	return u.Update(func(s *RoutingDecisionUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *RoutingDecisionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RoutingDecisionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RoutingDecisionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoutingDecisionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

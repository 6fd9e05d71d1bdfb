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
	"github.com/orchid-run/orchid/ent/webhookdelivery"
	"github.com/orchid-run/orchid/ent/webhookendpoint"
)

// WebhookDeliveryCreate is the builder for creating a WebhookDelivery entity.
type WebhookDeliveryCreate struct {
	config
	mutation *WebhookDeliveryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEventType sets the "event_type" field.
func (_c *WebhookDeliveryCreate) SetEventType(v string) *WebhookDeliveryCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *WebhookDeliveryCreate) SetPayload(v string) *WebhookDeliveryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WebhookDeliveryCreate) SetStatus(v webhookdelivery.Status) *WebhookDeliveryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableStatus(v *webhookdelivery.Status) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *WebhookDeliveryCreate) SetAttempts(v int) *WebhookDeliveryCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableAttempts(v *int) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastStatusCode sets the "last_status_code" field.
func (_c *WebhookDeliveryCreate) SetLastStatusCode(v int) *WebhookDeliveryCreate {
	_c.mutation.SetLastStatusCode(v)
	return _c
}

// SetNillableLastStatusCode sets the "last_status_code" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableLastStatusCode(v *int) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetLastStatusCode(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *WebhookDeliveryCreate) SetLastError(v string) *WebhookDeliveryCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableLastError(v *string) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *WebhookDeliveryCreate) SetNextAttemptAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableNextAttemptAt(v *time.Time) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetNextAttemptAt(*v)
	}
	return _c
}

// SetDeliveredAt sets the "delivered_at" field.
func (_c *WebhookDeliveryCreate) SetDeliveredAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetDeliveredAt(v)
	return _c
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableDeliveredAt(v *time.Time) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetDeliveredAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookDeliveryCreate) SetCreatedAt(v time.Time) *WebhookDeliveryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookDeliveryCreate) SetNillableCreatedAt(v *time.Time) *WebhookDeliveryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookDeliveryCreate) SetID(v string) *WebhookDeliveryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEndpointID sets the "endpoint" edge to the WebhookEndpoint entity by ID.
func (_c *WebhookDeliveryCreate) SetEndpointID(id string) *WebhookDeliveryCreate {
	_c.mutation.SetEndpointID(id)
	return _c
}

// SetEndpoint sets the "endpoint" edge to the WebhookEndpoint entity.
func (_c *WebhookDeliveryCreate) SetEndpoint(v *WebhookEndpoint) *WebhookDeliveryCreate {
	return _c.SetEndpointID(v.ID)
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_c *WebhookDeliveryCreate) Mutation() *WebhookDeliveryMutation {
	return _c.mutation
}

// Save creates the WebhookDelivery in the database.
func (_c *WebhookDeliveryCreate) Save(ctx context.Context) (*WebhookDelivery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookDeliveryCreate) SaveX(ctx context.Context) *WebhookDelivery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookDeliveryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookDeliveryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookDeliveryCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := webhookdelivery.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := webhookdelivery.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhookdelivery.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookDeliveryCreate) check() error {
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "WebhookDelivery.event_type"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "WebhookDelivery.payload"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WebhookDelivery.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := webhookdelivery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "WebhookDelivery.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WebhookDelivery.created_at"`)}
	}
	if len(_c.mutation.EndpointIDs()) == 0 {
		return &ValidationError{Name: "endpoint", err: errors.New(`ent: missing required edge "WebhookDelivery.endpoint"`)}
	}
	return nil
}

func (_c *WebhookDeliveryCreate) sqlSave(ctx context.Context) (*WebhookDelivery, error) {
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
			return nil, fmt.Errorf("unexpected WebhookDelivery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookDeliveryCreate) createSpec() (*WebhookDelivery, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookDelivery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookdelivery.Table, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(webhookdelivery.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(webhookdelivery.FieldPayload, field.TypeString, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(webhookdelivery.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(webhookdelivery.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastStatusCode(); ok {
		_spec.SetField(webhookdelivery.FieldLastStatusCode, field.TypeInt, value)
		_node.LastStatusCode = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(webhookdelivery.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(webhookdelivery.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = &value
	}
	if value, ok := _c.mutation.DeliveredAt(); ok {
		_spec.SetField(webhookdelivery.FieldDeliveredAt, field.TypeTime, value)
		_node.DeliveredAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EndpointIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   webhookdelivery.EndpointTable,
			Columns: []string{webhookdelivery.EndpointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.webhook_endpoint_deliveries = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookDelivery.Create().
//		SetEventType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookDeliveryUpsert) {
//			SetEventType(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookDeliveryCreate) OnConflict(opts ...sql.ConflictOption) *WebhookDeliveryUpsertOne {
	_c.conflict = opts
	return &WebhookDeliveryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookDeliveryCreate) OnConflictColumns(columns ...string) *WebhookDeliveryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookDeliveryUpsertOne{
		create: _c,
	}
}

type (
	// WebhookDeliveryUpsertOne is the builder for "upsert"-ing
	//  one WebhookDelivery node.
	WebhookDeliveryUpsertOne struct {
		create *WebhookDeliveryCreate
	}

	// WebhookDeliveryUpsert is the "OnConflict" setter.
	WebhookDeliveryUpsert struct {
		*sql.UpdateSet
	}
)

// SetEventType sets the "event_type" field.
func (u *WebhookDeliveryUpsert) SetEventType(v string) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateEventType() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldEventType)
	return u
}

// SetPayload sets the "payload" field.
func (u *WebhookDeliveryUpsert) SetPayload(v string) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdatePayload() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldPayload)
	return u
}

// SetStatus sets the "status" field.
func (u *WebhookDeliveryUpsert) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateStatus() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *WebhookDeliveryUpsert) SetAttempts(v int) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateAttempts() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *WebhookDeliveryUpsert) AddAttempts(v int) *WebhookDeliveryUpsert {
	u.Add(webhookdelivery.FieldAttempts, v)
	return u
}

// SetLastStatusCode sets the "last_status_code" field.
func (u *WebhookDeliveryUpsert) SetLastStatusCode(v int) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldLastStatusCode, v)
	return u
}

// UpdateLastStatusCode sets the "last_status_code" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateLastStatusCode() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldLastStatusCode)
	return u
}

// AddLastStatusCode adds v to the "last_status_code" field.
func (u *WebhookDeliveryUpsert) AddLastStatusCode(v int) *WebhookDeliveryUpsert {
	u.Add(webhookdelivery.FieldLastStatusCode, v)
	return u
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (u *WebhookDeliveryUpsert) ClearLastStatusCode() *WebhookDeliveryUpsert {
	u.SetNull(webhookdelivery.FieldLastStatusCode)
	return u
}

// SetLastError sets the "last_error" field.
func (u *WebhookDeliveryUpsert) SetLastError(v string) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateLastError() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *WebhookDeliveryUpsert) ClearLastError() *WebhookDeliveryUpsert {
	u.SetNull(webhookdelivery.FieldLastError)
	return u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *WebhookDeliveryUpsert) SetNextAttemptAt(v time.Time) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldNextAttemptAt, v)
	return u
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateNextAttemptAt() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldNextAttemptAt)
	return u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (u *WebhookDeliveryUpsert) ClearNextAttemptAt() *WebhookDeliveryUpsert {
	u.SetNull(webhookdelivery.FieldNextAttemptAt)
	return u
}

// SetDeliveredAt sets the "delivered_at" field.
func (u *WebhookDeliveryUpsert) SetDeliveredAt(v time.Time) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldDeliveredAt, v)
	return u
}

// UpdateDeliveredAt sets the "delivered_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateDeliveredAt() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldDeliveredAt)
	return u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (u *WebhookDeliveryUpsert) ClearDeliveredAt() *WebhookDeliveryUpsert {
	u.SetNull(webhookdelivery.FieldDeliveredAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *WebhookDeliveryUpsert) SetCreatedAt(v time.Time) *WebhookDeliveryUpsert {
	u.Set(webhookdelivery.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsert) UpdateCreatedAt() *WebhookDeliveryUpsert {
	u.SetExcluded(webhookdelivery.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookdelivery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookDeliveryUpsertOne) UpdateNewValues() *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(webhookdelivery.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WebhookDeliveryUpsertOne) Ignore() *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookDeliveryUpsertOne) DoNothing() *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookDeliveryCreate.OnConflict
// documentation for more info.
func (u *WebhookDeliveryUpsertOne) Update(set func(*WebhookDeliveryUpsert)) *WebhookDeliveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookDeliveryUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventType sets the "event_type" field.
func (u *WebhookDeliveryUpsertOne) SetEventType(v string) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateEventType() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateEventType()
	})
}

// SetPayload sets the "payload" field.
func (u *WebhookDeliveryUpsertOne) SetPayload(v string) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdatePayload() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdatePayload()
	})
}

// SetStatus sets the "status" field.
func (u *WebhookDeliveryUpsertOne) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateStatus() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *WebhookDeliveryUpsertOne) SetAttempts(v int) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *WebhookDeliveryUpsertOne) AddAttempts(v int) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateAttempts() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateAttempts()
	})
}

// SetLastStatusCode sets the "last_status_code" field.
func (u *WebhookDeliveryUpsertOne) SetLastStatusCode(v int) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetLastStatusCode(v)
	})
}

// AddLastStatusCode adds v to the "last_status_code" field.
func (u *WebhookDeliveryUpsertOne) AddLastStatusCode(v int) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.AddLastStatusCode(v)
	})
}

// UpdateLastStatusCode sets the "last_status_code" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateLastStatusCode() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateLastStatusCode()
	})
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (u *WebhookDeliveryUpsertOne) ClearLastStatusCode() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearLastStatusCode()
	})
}

// SetLastError sets the "last_error" field.
func (u *WebhookDeliveryUpsertOne) SetLastError(v string) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateLastError() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *WebhookDeliveryUpsertOne) ClearLastError() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearLastError()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *WebhookDeliveryUpsertOne) SetNextAttemptAt(v time.Time) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateNextAttemptAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (u *WebhookDeliveryUpsertOne) ClearNextAttemptAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearNextAttemptAt()
	})
}

// SetDeliveredAt sets the "delivered_at" field.
func (u *WebhookDeliveryUpsertOne) SetDeliveredAt(v time.Time) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetDeliveredAt(v)
	})
}

// UpdateDeliveredAt sets the "delivered_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateDeliveredAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateDeliveredAt()
	})
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (u *WebhookDeliveryUpsertOne) ClearDeliveredAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearDeliveredAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *WebhookDeliveryUpsertOne) SetCreatedAt(v time.Time) *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertOne) UpdateCreatedAt() *WebhookDeliveryUpsertOne {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *WebhookDeliveryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookDeliveryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookDeliveryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WebhookDeliveryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WebhookDeliveryUpsertOne.ID is not supported by MySQL driver. Use WebhookDeliveryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WebhookDeliveryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WebhookDeliveryCreateBulk is the builder for creating many WebhookDelivery entities in bulk.
type WebhookDeliveryCreateBulk struct {
	config
	err      error
	builders []*WebhookDeliveryCreate
	conflict []sql.ConflictOption
}

// Save creates the WebhookDelivery entities in the database.
func (_c *WebhookDeliveryCreateBulk) Save(ctx context.Context) ([]*WebhookDelivery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookDelivery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookDeliveryMutation)
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
func (_c *WebhookDeliveryCreateBulk) SaveX(ctx context.Context) []*WebhookDelivery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookDeliveryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookDeliveryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookDelivery.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookDeliveryUpsert) {
//			SetEventType(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookDeliveryCreateBulk) OnConflict(opts ...sql.ConflictOption) *WebhookDeliveryUpsertBulk {
	_c.conflict = opts
	return &WebhookDeliveryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookDeliveryCreateBulk) OnConflictColumns(columns ...string) *WebhookDeliveryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookDeliveryUpsertBulk{
		create: _c,
	}
}

// WebhookDeliveryUpsertBulk is the builder for "upsert"-ing
// a bulk of WebhookDelivery nodes.
type WebhookDeliveryUpsertBulk struct {
	create *WebhookDeliveryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookdelivery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookDeliveryUpsertBulk) UpdateNewValues() *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(webhookdelivery.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookDelivery.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WebhookDeliveryUpsertBulk) Ignore() *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookDeliveryUpsertBulk) DoNothing() *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookDeliveryCreateBulk.OnConflict
// documentation for more info.
func (u *WebhookDeliveryUpsertBulk) Update(set func(*WebhookDeliveryUpsert)) *WebhookDeliveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookDeliveryUpsert{UpdateSet: update})
	}))
	return u
}

// SetEventType sets the "event_type" field.
func (u *WebhookDeliveryUpsertBulk) SetEventType(v string) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateEventType() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateEventType()
	})
}

// SetPayload sets the "payload" field.
func (u *WebhookDeliveryUpsertBulk) SetPayload(v string) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdatePayload() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdatePayload()
	})
}

// SetStatus sets the "status" field.
func (u *WebhookDeliveryUpsertBulk) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateStatus() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *WebhookDeliveryUpsertBulk) SetAttempts(v int) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *WebhookDeliveryUpsertBulk) AddAttempts(v int) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateAttempts() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateAttempts()
	})
}

// SetLastStatusCode sets the "last_status_code" field.
func (u *WebhookDeliveryUpsertBulk) SetLastStatusCode(v int) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetLastStatusCode(v)
	})
}

// AddLastStatusCode adds v to the "last_status_code" field.
func (u *WebhookDeliveryUpsertBulk) AddLastStatusCode(v int) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.AddLastStatusCode(v)
	})
}

// UpdateLastStatusCode sets the "last_status_code" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateLastStatusCode() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateLastStatusCode()
	})
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (u *WebhookDeliveryUpsertBulk) ClearLastStatusCode() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearLastStatusCode()
	})
}

// SetLastError sets the "last_error" field.
func (u *WebhookDeliveryUpsertBulk) SetLastError(v string) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateLastError() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *WebhookDeliveryUpsertBulk) ClearLastError() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearLastError()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *WebhookDeliveryUpsertBulk) SetNextAttemptAt(v time.Time) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateNextAttemptAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (u *WebhookDeliveryUpsertBulk) ClearNextAttemptAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearNextAttemptAt()
	})
}

// SetDeliveredAt sets the "delivered_at" field.
func (u *WebhookDeliveryUpsertBulk) SetDeliveredAt(v time.Time) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetDeliveredAt(v)
	})
}

// UpdateDeliveredAt sets the "delivered_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateDeliveredAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateDeliveredAt()
	})
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (u *WebhookDeliveryUpsertBulk) ClearDeliveredAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.ClearDeliveredAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *WebhookDeliveryUpsertBulk) SetCreatedAt(v time.Time) *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WebhookDeliveryUpsertBulk) UpdateCreatedAt() *WebhookDeliveryUpsertBulk {
	return u.Update(func(s *WebhookDeliveryUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *WebhookDeliveryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WebhookDeliveryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookDeliveryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookDeliveryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

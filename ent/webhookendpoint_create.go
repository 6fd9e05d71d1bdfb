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
	"github.com/orchid-run/orchid/ent/deadletter"
	"github.com/orchid-run/orchid/ent/webhookdelivery"
	"github.com/orchid-run/orchid/ent/webhookendpoint"
)

// WebhookEndpointCreate is the builder for creating a WebhookEndpoint entity.
type WebhookEndpointCreate struct {
	config
	mutation *WebhookEndpointMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *WebhookEndpointCreate) SetTenantID(v string) *WebhookEndpointCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableTenantID(v *string) *WebhookEndpointCreate {
	if v != nil {
		_c.SetTenantID(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *WebhookEndpointCreate) SetURL(v string) *WebhookEndpointCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetEvents sets the "events" field.
func (_c *WebhookEndpointCreate) SetEvents(v []string) *WebhookEndpointCreate {
	_c.mutation.SetEvents(v)
	return _c
}

// SetSecret sets the "secret" field.
func (_c *WebhookEndpointCreate) SetSecret(v string) *WebhookEndpointCreate {
	_c.mutation.SetSecret(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *WebhookEndpointCreate) SetActive(v bool) *WebhookEndpointCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableActive(v *bool) *WebhookEndpointCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetTimeoutS sets the "timeout_s" field.
func (_c *WebhookEndpointCreate) SetTimeoutS(v int) *WebhookEndpointCreate {
	_c.mutation.SetTimeoutS(v)
	return _c
}

// SetNillableTimeoutS sets the "timeout_s" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableTimeoutS(v *int) *WebhookEndpointCreate {
	if v != nil {
		_c.SetTimeoutS(*v)
	}
	return _c
}

// SetVerifySsl sets the "verify_ssl" field.
func (_c *WebhookEndpointCreate) SetVerifySsl(v bool) *WebhookEndpointCreate {
	_c.mutation.SetVerifySsl(v)
	return _c
}

// SetNillableVerifySsl sets the "verify_ssl" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableVerifySsl(v *bool) *WebhookEndpointCreate {
	if v != nil {
		_c.SetVerifySsl(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *WebhookEndpointCreate) SetMaxAttempts(v int) *WebhookEndpointCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableMaxAttempts(v *int) *WebhookEndpointCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetHeaders sets the "headers" field.
func (_c *WebhookEndpointCreate) SetHeaders(v map[string]string) *WebhookEndpointCreate {
	_c.mutation.SetHeaders(v)
	return _c
}

// SetDisabledReason sets the "disabled_reason" field.
func (_c *WebhookEndpointCreate) SetDisabledReason(v string) *WebhookEndpointCreate {
	_c.mutation.SetDisabledReason(v)
	return _c
}

// SetNillableDisabledReason sets the "disabled_reason" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableDisabledReason(v *string) *WebhookEndpointCreate {
	if v != nil {
		_c.SetDisabledReason(*v)
	}
	return _c
}

// SetDisabledAt sets the "disabled_at" field.
func (_c *WebhookEndpointCreate) SetDisabledAt(v time.Time) *WebhookEndpointCreate {
	_c.mutation.SetDisabledAt(v)
	return _c
}

// SetNillableDisabledAt sets the "disabled_at" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableDisabledAt(v *time.Time) *WebhookEndpointCreate {
	if v != nil {
		_c.SetDisabledAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookEndpointCreate) SetCreatedAt(v time.Time) *WebhookEndpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableCreatedAt(v *time.Time) *WebhookEndpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookEndpointCreate) SetID(v string) *WebhookEndpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by IDs.
func (_c *WebhookEndpointCreate) AddDeliveryIDs(ids ...string) *WebhookEndpointCreate {
	_c.mutation.AddDeliveryIDs(ids...)
	return _c
}

// AddDeliveries adds the "deliveries" edges to the WebhookDelivery entity.
func (_c *WebhookEndpointCreate) AddDeliveries(v ...*WebhookDelivery) *WebhookEndpointCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeliveryIDs(ids...)
}

// AddDeadLetterIDs adds the "dead_letters" edge to the DeadLetter entity by IDs.
func (_c *WebhookEndpointCreate) AddDeadLetterIDs(ids ...int) *WebhookEndpointCreate {
	_c.mutation.AddDeadLetterIDs(ids...)
	return _c
}

// AddDeadLetters adds the "dead_letters" edges to the DeadLetter entity.
func (_c *WebhookEndpointCreate) AddDeadLetters(v ...*DeadLetter) *WebhookEndpointCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeadLetterIDs(ids...)
}

// Mutation returns the WebhookEndpointMutation object of the builder.
func (_c *WebhookEndpointCreate) Mutation() *WebhookEndpointMutation {
	return _c.mutation
}

// Save creates the WebhookEndpoint in the database.
func (_c *WebhookEndpointCreate) Save(ctx context.Context) (*WebhookEndpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookEndpointCreate) SaveX(ctx context.Context) *WebhookEndpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEndpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEndpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookEndpointCreate) defaults() {
	if _, ok := _c.mutation.TenantID(); !ok {
		v := webhookendpoint.DefaultTenantID
		_c.mutation.SetTenantID(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := webhookendpoint.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.TimeoutS(); !ok {
		v := webhookendpoint.DefaultTimeoutS
		_c.mutation.SetTimeoutS(v)
	}
	if _, ok := _c.mutation.VerifySsl(); !ok {
		v := webhookendpoint.DefaultVerifySsl
		_c.mutation.SetVerifySsl(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := webhookendpoint.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhookendpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookEndpointCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "WebhookEndpoint.tenant_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "WebhookEndpoint.url"`)}
	}
	if _, ok := _c.mutation.Events(); !ok {
		return &ValidationError{Name: "events", err: errors.New(`ent: missing required field "WebhookEndpoint.events"`)}
	}
	if _, ok := _c.mutation.Secret(); !ok {
		return &ValidationError{Name: "secret", err: errors.New(`ent: missing required field "WebhookEndpoint.secret"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "WebhookEndpoint.active"`)}
	}
	if _, ok := _c.mutation.TimeoutS(); !ok {
		return &ValidationError{Name: "timeout_s", err: errors.New(`ent: missing required field "WebhookEndpoint.timeout_s"`)}
	}
	if _, ok := _c.mutation.VerifySsl(); !ok {
		return &ValidationError{Name: "verify_ssl", err: errors.New(`ent: missing required field "WebhookEndpoint.verify_ssl"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "WebhookEndpoint.max_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WebhookEndpoint.created_at"`)}
	}
	return nil
}

func (_c *WebhookEndpointCreate) sqlSave(ctx context.Context) (*WebhookEndpoint, error) {
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
			return nil, fmt.Errorf("unexpected WebhookEndpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WebhookEndpointCreate) createSpec() (*WebhookEndpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookEndpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookendpoint.Table, sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(webhookendpoint.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(webhookendpoint.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Events(); ok {
		_spec.SetField(webhookendpoint.FieldEvents, field.TypeJSON, value)
		_node.Events = value
	}
	if value, ok := _c.mutation.Secret(); ok {
		_spec.SetField(webhookendpoint.FieldSecret, field.TypeString, value)
		_node.Secret = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(webhookendpoint.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.TimeoutS(); ok {
		_spec.SetField(webhookendpoint.FieldTimeoutS, field.TypeInt, value)
		_node.TimeoutS = value
	}
	if value, ok := _c.mutation.VerifySsl(); ok {
		_spec.SetField(webhookendpoint.FieldVerifySsl, field.TypeBool, value)
		_node.VerifySsl = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(webhookendpoint.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.Headers(); ok {
		_spec.SetField(webhookendpoint.FieldHeaders, field.TypeJSON, value)
		_node.Headers = value
	}
	if value, ok := _c.mutation.DisabledReason(); ok {
		_spec.SetField(webhookendpoint.FieldDisabledReason, field.TypeString, value)
		_node.DisabledReason = &value
	}
	if value, ok := _c.mutation.DisabledAt(); ok {
		_spec.SetField(webhookendpoint.FieldDisabledAt, field.TypeTime, value)
		_node.DisabledAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhookendpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DeliveriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhookendpoint.DeliveriesTable,
			Columns: []string{webhookendpoint.DeliveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DeadLettersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   webhookendpoint.DeadLettersTable,
			Columns: []string{webhookendpoint.DeadLettersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeInt),
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
//	client.WebhookEndpoint.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookEndpointUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookEndpointCreate) OnConflict(opts ...sql.ConflictOption) *WebhookEndpointUpsertOne {
	_c.conflict = opts
	return &WebhookEndpointUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookEndpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookEndpointCreate) OnConflictColumns(columns ...string) *WebhookEndpointUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookEndpointUpsertOne{
		create: _c,
	}
}

type (
	// WebhookEndpointUpsertOne is the builder for "upsert"-ing
	//  one WebhookEndpoint node.
	WebhookEndpointUpsertOne struct {
		create *WebhookEndpointCreate
	}

	// WebhookEndpointUpsert is the "OnConflict" setter.
	WebhookEndpointUpsert struct {
		*sql.UpdateSet
	}
)

// SetTenantID sets the "tenant_id" field.
func (u *WebhookEndpointUpsert) SetTenantID(v string) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldTenantID, v)
	return u
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateTenantID() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldTenantID)
	return u
}

// SetURL sets the "url" field.
func (u *WebhookEndpointUpsert) SetURL(v string) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateURL() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldURL)
	return u
}

// SetEvents sets the "events" field.
func (u *WebhookEndpointUpsert) SetEvents(v []string) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldEvents, v)
	return u
}

// UpdateEvents sets the "events" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateEvents() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldEvents)
	return u
}

// SetSecret sets the "secret" field.
func (u *WebhookEndpointUpsert) SetSecret(v string) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldSecret, v)
	return u
}

// UpdateSecret sets the "secret" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateSecret() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldSecret)
	return u
}

// SetActive sets the "active" field.
func (u *WebhookEndpointUpsert) SetActive(v bool) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateActive() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldActive)
	return u
}

// SetTimeoutS sets the "timeout_s" field.
func (u *WebhookEndpointUpsert) SetTimeoutS(v int) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldTimeoutS, v)
	return u
}

// UpdateTimeoutS sets the "timeout_s" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateTimeoutS() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldTimeoutS)
	return u
}

// AddTimeoutS adds v to the "timeout_s" field.
func (u *WebhookEndpointUpsert) AddTimeoutS(v int) *WebhookEndpointUpsert {
	u.Add(webhookendpoint.FieldTimeoutS, v)
	return u
}

// SetVerifySsl sets the "verify_ssl" field.
func (u *WebhookEndpointUpsert) SetVerifySsl(v bool) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldVerifySsl, v)
	return u
}

// UpdateVerifySsl sets the "verify_ssl" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateVerifySsl() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldVerifySsl)
	return u
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *WebhookEndpointUpsert) SetMaxAttempts(v int) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldMaxAttempts, v)
	return u
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateMaxAttempts() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldMaxAttempts)
	return u
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *WebhookEndpointUpsert) AddMaxAttempts(v int) *WebhookEndpointUpsert {
	u.Add(webhookendpoint.FieldMaxAttempts, v)
	return u
}

// SetHeaders sets the "headers" field.
func (u *WebhookEndpointUpsert) SetHeaders(v map[string]string) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldHeaders, v)
	return u
}

// UpdateHeaders sets the "headers" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateHeaders() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldHeaders)
	return u
}

// ClearHeaders clears the value of the "headers" field.
func (u *WebhookEndpointUpsert) ClearHeaders() *WebhookEndpointUpsert {
	u.SetNull(webhookendpoint.FieldHeaders)
	return u
}

// SetDisabledReason sets the "disabled_reason" field.
func (u *WebhookEndpointUpsert) SetDisabledReason(v string) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldDisabledReason, v)
	return u
}

// UpdateDisabledReason sets the "disabled_reason" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateDisabledReason() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldDisabledReason)
	return u
}

// ClearDisabledReason clears the value of the "disabled_reason" field.
func (u *WebhookEndpointUpsert) ClearDisabledReason() *WebhookEndpointUpsert {
	u.SetNull(webhookendpoint.FieldDisabledReason)
	return u
}

// SetDisabledAt sets the "disabled_at" field.
func (u *WebhookEndpointUpsert) SetDisabledAt(v time.Time) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldDisabledAt, v)
	return u
}

// UpdateDisabledAt sets the "disabled_at" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateDisabledAt() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldDisabledAt)
	return u
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (u *WebhookEndpointUpsert) ClearDisabledAt() *WebhookEndpointUpsert {
	u.SetNull(webhookendpoint.FieldDisabledAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *WebhookEndpointUpsert) SetCreatedAt(v time.Time) *WebhookEndpointUpsert {
	u.Set(webhookendpoint.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WebhookEndpointUpsert) UpdateCreatedAt() *WebhookEndpointUpsert {
	u.SetExcluded(webhookendpoint.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WebhookEndpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookendpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookEndpointUpsertOne) UpdateNewValues() *WebhookEndpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(webhookendpoint.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookEndpoint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WebhookEndpointUpsertOne) Ignore() *WebhookEndpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookEndpointUpsertOne) DoNothing() *WebhookEndpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookEndpointCreate.OnConflict
// documentation for more info.
func (u *WebhookEndpointUpsertOne) Update(set func(*WebhookEndpointUpsert)) *WebhookEndpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookEndpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *WebhookEndpointUpsertOne) SetTenantID(v string) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateTenantID() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateTenantID()
	})
}

// SetURL sets the "url" field.
func (u *WebhookEndpointUpsertOne) SetURL(v string) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateURL() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateURL()
	})
}

// SetEvents sets the "events" field.
func (u *WebhookEndpointUpsertOne) SetEvents(v []string) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetEvents(v)
	})
}

// UpdateEvents sets the "events" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateEvents() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateEvents()
	})
}

// SetSecret sets the "secret" field.
func (u *WebhookEndpointUpsertOne) SetSecret(v string) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetSecret(v)
	})
}

// UpdateSecret sets the "secret" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateSecret() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateSecret()
	})
}

// SetActive sets the "active" field.
func (u *WebhookEndpointUpsertOne) SetActive(v bool) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateActive() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateActive()
	})
}

// SetTimeoutS sets the "timeout_s" field.
func (u *WebhookEndpointUpsertOne) SetTimeoutS(v int) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetTimeoutS(v)
	})
}

// AddTimeoutS adds v to the "timeout_s" field.
func (u *WebhookEndpointUpsertOne) AddTimeoutS(v int) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.AddTimeoutS(v)
	})
}

// UpdateTimeoutS sets the "timeout_s" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateTimeoutS() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateTimeoutS()
	})
}

// SetVerifySsl sets the "verify_ssl" field.
func (u *WebhookEndpointUpsertOne) SetVerifySsl(v bool) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetVerifySsl(v)
	})
}

// UpdateVerifySsl sets the "verify_ssl" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateVerifySsl() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateVerifySsl()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *WebhookEndpointUpsertOne) SetMaxAttempts(v int) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *WebhookEndpointUpsertOne) AddMaxAttempts(v int) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateMaxAttempts() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetHeaders sets the "headers" field.
func (u *WebhookEndpointUpsertOne) SetHeaders(v map[string]string) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetHeaders(v)
	})
}

// UpdateHeaders sets the "headers" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateHeaders() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateHeaders()
	})
}

// ClearHeaders clears the value of the "headers" field.
func (u *WebhookEndpointUpsertOne) ClearHeaders() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.ClearHeaders()
	})
}

// SetDisabledReason sets the "disabled_reason" field.
func (u *WebhookEndpointUpsertOne) SetDisabledReason(v string) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetDisabledReason(v)
	})
}

// UpdateDisabledReason sets the "disabled_reason" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateDisabledReason() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateDisabledReason()
	})
}

// ClearDisabledReason clears the value of the "disabled_reason" field.
func (u *WebhookEndpointUpsertOne) ClearDisabledReason() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.ClearDisabledReason()
	})
}

// SetDisabledAt sets the "disabled_at" field.
func (u *WebhookEndpointUpsertOne) SetDisabledAt(v time.Time) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetDisabledAt(v)
	})
}

// UpdateDisabledAt sets the "disabled_at" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateDisabledAt() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateDisabledAt()
	})
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (u *WebhookEndpointUpsertOne) ClearDisabledAt() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.ClearDisabledAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *WebhookEndpointUpsertOne) SetCreatedAt(v time.Time) *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WebhookEndpointUpsertOne) UpdateCreatedAt() *WebhookEndpointUpsertOne {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *WebhookEndpointUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookEndpointCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookEndpointUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WebhookEndpointUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WebhookEndpointUpsertOne.ID is not supported by MySQL driver. Use WebhookEndpointUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WebhookEndpointUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WebhookEndpointCreateBulk is the builder for creating many WebhookEndpoint entities in bulk.
type WebhookEndpointCreateBulk struct {
	config
	err      error
	builders []*WebhookEndpointCreate
	conflict []sql.ConflictOption
}

// Save creates the WebhookEndpoint entities in the database.
func (_c *WebhookEndpointCreateBulk) Save(ctx context.Context) ([]*WebhookEndpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookEndpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookEndpointMutation)
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
func (_c *WebhookEndpointCreateBulk) SaveX(ctx context.Context) []*WebhookEndpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEndpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEndpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WebhookEndpoint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WebhookEndpointUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *WebhookEndpointCreateBulk) OnConflict(opts ...sql.ConflictOption) *WebhookEndpointUpsertBulk {
	_c.conflict = opts
	return &WebhookEndpointUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WebhookEndpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WebhookEndpointCreateBulk) OnConflictColumns(columns ...string) *WebhookEndpointUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WebhookEndpointUpsertBulk{
		create: _c,
	}
}

// WebhookEndpointUpsertBulk is the builder for "upsert"-ing
// a bulk of WebhookEndpoint nodes.
type WebhookEndpointUpsertBulk struct {
	create *WebhookEndpointCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WebhookEndpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(webhookendpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WebhookEndpointUpsertBulk) UpdateNewValues() *WebhookEndpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(webhookendpoint.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WebhookEndpoint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WebhookEndpointUpsertBulk) Ignore() *WebhookEndpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WebhookEndpointUpsertBulk) DoNothing() *WebhookEndpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WebhookEndpointCreateBulk.OnConflict
// documentation for more info.
func (u *WebhookEndpointUpsertBulk) Update(set func(*WebhookEndpointUpsert)) *WebhookEndpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WebhookEndpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetTenantID sets the "tenant_id" field.
func (u *WebhookEndpointUpsertBulk) SetTenantID(v string) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetTenantID(v)
	})
}

// UpdateTenantID sets the "tenant_id" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateTenantID() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateTenantID()
	})
}

// SetURL sets the "url" field.
func (u *WebhookEndpointUpsertBulk) SetURL(v string) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateURL() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateURL()
	})
}

// SetEvents sets the "events" field.
func (u *WebhookEndpointUpsertBulk) SetEvents(v []string) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetEvents(v)
	})
}

// UpdateEvents sets the "events" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateEvents() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateEvents()
	})
}

// SetSecret sets the "secret" field.
func (u *WebhookEndpointUpsertBulk) SetSecret(v string) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetSecret(v)
	})
}

// UpdateSecret sets the "secret" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateSecret() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateSecret()
	})
}

// SetActive sets the "active" field.
func (u *WebhookEndpointUpsertBulk) SetActive(v bool) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateActive() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateActive()
	})
}

// SetTimeoutS sets the "timeout_s" field.
func (u *WebhookEndpointUpsertBulk) SetTimeoutS(v int) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetTimeoutS(v)
	})
}

// AddTimeoutS adds v to the "timeout_s" field.
func (u *WebhookEndpointUpsertBulk) AddTimeoutS(v int) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.AddTimeoutS(v)
	})
}

// UpdateTimeoutS sets the "timeout_s" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateTimeoutS() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateTimeoutS()
	})
}

// SetVerifySsl sets the "verify_ssl" field.
func (u *WebhookEndpointUpsertBulk) SetVerifySsl(v bool) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetVerifySsl(v)
	})
}

// UpdateVerifySsl sets the "verify_ssl" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateVerifySsl() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateVerifySsl()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *WebhookEndpointUpsertBulk) SetMaxAttempts(v int) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *WebhookEndpointUpsertBulk) AddMaxAttempts(v int) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateMaxAttempts() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetHeaders sets the "headers" field.
func (u *WebhookEndpointUpsertBulk) SetHeaders(v map[string]string) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetHeaders(v)
	})
}

// UpdateHeaders sets the "headers" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateHeaders() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateHeaders()
	})
}

// ClearHeaders clears the value of the "headers" field.
func (u *WebhookEndpointUpsertBulk) ClearHeaders() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.ClearHeaders()
	})
}

// SetDisabledReason sets the "disabled_reason" field.
func (u *WebhookEndpointUpsertBulk) SetDisabledReason(v string) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetDisabledReason(v)
	})
}

// UpdateDisabledReason sets the "disabled_reason" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateDisabledReason() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateDisabledReason()
	})
}

// ClearDisabledReason clears the value of the "disabled_reason" field.
func (u *WebhookEndpointUpsertBulk) ClearDisabledReason() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.ClearDisabledReason()
	})
}

// SetDisabledAt sets the "disabled_at" field.
func (u *WebhookEndpointUpsertBulk) SetDisabledAt(v time.Time) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetDisabledAt(v)
	})
}

// UpdateDisabledAt sets the "disabled_at" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateDisabledAt() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateDisabledAt()
	})
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (u *WebhookEndpointUpsertBulk) ClearDisabledAt() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.ClearDisabledAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *WebhookEndpointUpsertBulk) SetCreatedAt(v time.Time) *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *WebhookEndpointUpsertBulk) UpdateCreatedAt() *WebhookEndpointUpsertBulk {
	return u.Update(func(s *WebhookEndpointUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *WebhookEndpointUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WebhookEndpointCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WebhookEndpointCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WebhookEndpointUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/orchid-run/orchid/ent/deadletter"
	"github.com/orchid-run/orchid/ent/predicate"
	"github.com/orchid-run/orchid/ent/webhookdelivery"
	"github.com/orchid-run/orchid/ent/webhookendpoint"
)

// WebhookEndpointUpdate is the builder for updating WebhookEndpoint entities.
type WebhookEndpointUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookEndpointMutation
}

// Where appends a list predicates to the WebhookEndpointUpdate builder.
func (_u *WebhookEndpointUpdate) Where(ps ...predicate.WebhookEndpoint) *WebhookEndpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *WebhookEndpointUpdate) SetTenantID(v string) *WebhookEndpointUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableTenantID(v *string) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *WebhookEndpointUpdate) SetURL(v string) *WebhookEndpointUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableURL(v *string) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetEvents sets the "events" field.
func (_u *WebhookEndpointUpdate) SetEvents(v []string) *WebhookEndpointUpdate {
	_u.mutation.SetEvents(v)
	return _u
}

// AppendEvents appends value to the "events" field.
func (_u *WebhookEndpointUpdate) AppendEvents(v []string) *WebhookEndpointUpdate {
	_u.mutation.AppendEvents(v)
	return _u
}

// SetSecret sets the "secret" field.
func (_u *WebhookEndpointUpdate) SetSecret(v string) *WebhookEndpointUpdate {
	_u.mutation.SetSecret(v)
	return _u
}

// SetNillableSecret sets the "secret" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableSecret(v *string) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetSecret(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *WebhookEndpointUpdate) SetActive(v bool) *WebhookEndpointUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableActive(v *bool) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetTimeoutS sets the "timeout_s" field.
func (_u *WebhookEndpointUpdate) SetTimeoutS(v int) *WebhookEndpointUpdate {
	_u.mutation.ResetTimeoutS()
	_u.mutation.SetTimeoutS(v)
	return _u
}

// SetNillableTimeoutS sets the "timeout_s" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableTimeoutS(v *int) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetTimeoutS(*v)
	}
	return _u
}

// AddTimeoutS adds value to the "timeout_s" field.
func (_u *WebhookEndpointUpdate) AddTimeoutS(v int) *WebhookEndpointUpdate {
	_u.mutation.AddTimeoutS(v)
	return _u
}

// SetVerifySsl sets the "verify_ssl" field.
func (_u *WebhookEndpointUpdate) SetVerifySsl(v bool) *WebhookEndpointUpdate {
	_u.mutation.SetVerifySsl(v)
	return _u
}

// SetNillableVerifySsl sets the "verify_ssl" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableVerifySsl(v *bool) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetVerifySsl(*v)
	}
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *WebhookEndpointUpdate) SetMaxAttempts(v int) *WebhookEndpointUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableMaxAttempts(v *int) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *WebhookEndpointUpdate) AddMaxAttempts(v int) *WebhookEndpointUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *WebhookEndpointUpdate) SetHeaders(v map[string]string) *WebhookEndpointUpdate {
	_u.mutation.SetHeaders(v)
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *WebhookEndpointUpdate) ClearHeaders() *WebhookEndpointUpdate {
	_u.mutation.ClearHeaders()
	return _u
}

// SetDisabledReason sets the "disabled_reason" field.
func (_u *WebhookEndpointUpdate) SetDisabledReason(v string) *WebhookEndpointUpdate {
	_u.mutation.SetDisabledReason(v)
	return _u
}

// SetNillableDisabledReason sets the "disabled_reason" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableDisabledReason(v *string) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetDisabledReason(*v)
	}
	return _u
}

// ClearDisabledReason clears the value of the "disabled_reason" field.
func (_u *WebhookEndpointUpdate) ClearDisabledReason() *WebhookEndpointUpdate {
	_u.mutation.ClearDisabledReason()
	return _u
}

// SetDisabledAt sets the "disabled_at" field.
func (_u *WebhookEndpointUpdate) SetDisabledAt(v time.Time) *WebhookEndpointUpdate {
	_u.mutation.SetDisabledAt(v)
	return _u
}

// SetNillableDisabledAt sets the "disabled_at" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableDisabledAt(v *time.Time) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetDisabledAt(*v)
	}
	return _u
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (_u *WebhookEndpointUpdate) ClearDisabledAt() *WebhookEndpointUpdate {
	_u.mutation.ClearDisabledAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WebhookEndpointUpdate) SetCreatedAt(v time.Time) *WebhookEndpointUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableCreatedAt(v *time.Time) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by IDs.
func (_u *WebhookEndpointUpdate) AddDeliveryIDs(ids ...string) *WebhookEndpointUpdate {
	_u.mutation.AddDeliveryIDs(ids...)
	return _u
}

// AddDeliveries adds the "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookEndpointUpdate) AddDeliveries(v ...*WebhookDelivery) *WebhookEndpointUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryIDs(ids...)
}

// AddDeadLetterIDs adds the "dead_letters" edge to the DeadLetter entity by IDs.
func (_u *WebhookEndpointUpdate) AddDeadLetterIDs(ids ...int) *WebhookEndpointUpdate {
	_u.mutation.AddDeadLetterIDs(ids...)
	return _u
}

// AddDeadLetters adds the "dead_letters" edges to the DeadLetter entity.
func (_u *WebhookEndpointUpdate) AddDeadLetters(v ...*DeadLetter) *WebhookEndpointUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeadLetterIDs(ids...)
}

// Mutation returns the WebhookEndpointMutation object of the builder.
func (_u *WebhookEndpointUpdate) Mutation() *WebhookEndpointMutation {
	return _u.mutation
}

// ClearDeliveries clears all "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookEndpointUpdate) ClearDeliveries() *WebhookEndpointUpdate {
	_u.mutation.ClearDeliveries()
	return _u
}

// RemoveDeliveryIDs removes the "deliveries" edge to WebhookDelivery entities by IDs.
func (_u *WebhookEndpointUpdate) RemoveDeliveryIDs(ids ...string) *WebhookEndpointUpdate {
	_u.mutation.RemoveDeliveryIDs(ids...)
	return _u
}

// RemoveDeliveries removes "deliveries" edges to WebhookDelivery entities.
func (_u *WebhookEndpointUpdate) RemoveDeliveries(v ...*WebhookDelivery) *WebhookEndpointUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryIDs(ids...)
}

// ClearDeadLetters clears all "dead_letters" edges to the DeadLetter entity.
func (_u *WebhookEndpointUpdate) ClearDeadLetters() *WebhookEndpointUpdate {
	_u.mutation.ClearDeadLetters()
	return _u
}

// RemoveDeadLetterIDs removes the "dead_letters" edge to DeadLetter entities by IDs.
func (_u *WebhookEndpointUpdate) RemoveDeadLetterIDs(ids ...int) *WebhookEndpointUpdate {
	_u.mutation.RemoveDeadLetterIDs(ids...)
	return _u
}

// RemoveDeadLetters removes "dead_letters" edges to DeadLetter entities.
func (_u *WebhookEndpointUpdate) RemoveDeadLetters(v ...*DeadLetter) *WebhookEndpointUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeadLetterIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookEndpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEndpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookEndpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEndpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WebhookEndpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(webhookendpoint.Table, webhookendpoint.Columns, sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(webhookendpoint.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhookendpoint.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Events(); ok {
		_spec.SetField(webhookendpoint.FieldEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhookendpoint.FieldEvents, value)
		})
	}
	if value, ok := _u.mutation.Secret(); ok {
		_spec.SetField(webhookendpoint.FieldSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(webhookendpoint.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeoutS(); ok {
		_spec.SetField(webhookendpoint.FieldTimeoutS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutS(); ok {
		_spec.AddField(webhookendpoint.FieldTimeoutS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VerifySsl(); ok {
		_spec.SetField(webhookendpoint.FieldVerifySsl, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(webhookendpoint.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(webhookendpoint.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(webhookendpoint.FieldHeaders, field.TypeJSON, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(webhookendpoint.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.DisabledReason(); ok {
		_spec.SetField(webhookendpoint.FieldDisabledReason, field.TypeString, value)
	}
	if _u.mutation.DisabledReasonCleared() {
		_spec.ClearField(webhookendpoint.FieldDisabledReason, field.TypeString)
	}
	if value, ok := _u.mutation.DisabledAt(); ok {
		_spec.SetField(webhookendpoint.FieldDisabledAt, field.TypeTime, value)
	}
	if _u.mutation.DisabledAtCleared() {
		_spec.ClearField(webhookendpoint.FieldDisabledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(webhookendpoint.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveriesIDs(); len(nodes) > 0 && !_u.mutation.DeliveriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DeadLettersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeadLettersIDs(); len(nodes) > 0 && !_u.mutation.DeadLettersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeadLettersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookendpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookEndpointUpdateOne is the builder for updating a single WebhookEndpoint entity.
type WebhookEndpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookEndpointMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *WebhookEndpointUpdateOne) SetTenantID(v string) *WebhookEndpointUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableTenantID(v *string) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *WebhookEndpointUpdateOne) SetURL(v string) *WebhookEndpointUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableURL(v *string) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetEvents sets the "events" field.
func (_u *WebhookEndpointUpdateOne) SetEvents(v []string) *WebhookEndpointUpdateOne {
	_u.mutation.SetEvents(v)
	return _u
}

// AppendEvents appends value to the "events" field.
func (_u *WebhookEndpointUpdateOne) AppendEvents(v []string) *WebhookEndpointUpdateOne {
	_u.mutation.AppendEvents(v)
	return _u
}

// SetSecret sets the "secret" field.
func (_u *WebhookEndpointUpdateOne) SetSecret(v string) *WebhookEndpointUpdateOne {
	_u.mutation.SetSecret(v)
	return _u
}

// SetNillableSecret sets the "secret" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableSecret(v *string) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetSecret(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *WebhookEndpointUpdateOne) SetActive(v bool) *WebhookEndpointUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableActive(v *bool) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetTimeoutS sets the "timeout_s" field.
func (_u *WebhookEndpointUpdateOne) SetTimeoutS(v int) *WebhookEndpointUpdateOne {
	_u.mutation.ResetTimeoutS()
	_u.mutation.SetTimeoutS(v)
	return _u
}

// SetNillableTimeoutS sets the "timeout_s" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableTimeoutS(v *int) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetTimeoutS(*v)
	}
	return _u
}

// AddTimeoutS adds value to the "timeout_s" field.
func (_u *WebhookEndpointUpdateOne) AddTimeoutS(v int) *WebhookEndpointUpdateOne {
	_u.mutation.AddTimeoutS(v)
	return _u
}

// SetVerifySsl sets the "verify_ssl" field.
func (_u *WebhookEndpointUpdateOne) SetVerifySsl(v bool) *WebhookEndpointUpdateOne {
	_u.mutation.SetVerifySsl(v)
	return _u
}

// SetNillableVerifySsl sets the "verify_ssl" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableVerifySsl(v *bool) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetVerifySsl(*v)
	}
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *WebhookEndpointUpdateOne) SetMaxAttempts(v int) *WebhookEndpointUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableMaxAttempts(v *int) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *WebhookEndpointUpdateOne) AddMaxAttempts(v int) *WebhookEndpointUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *WebhookEndpointUpdateOne) SetHeaders(v map[string]string) *WebhookEndpointUpdateOne {
	_u.mutation.SetHeaders(v)
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *WebhookEndpointUpdateOne) ClearHeaders() *WebhookEndpointUpdateOne {
	_u.mutation.ClearHeaders()
	return _u
}

// SetDisabledReason sets the "disabled_reason" field.
func (_u *WebhookEndpointUpdateOne) SetDisabledReason(v string) *WebhookEndpointUpdateOne {
	_u.mutation.SetDisabledReason(v)
	return _u
}

// SetNillableDisabledReason sets the "disabled_reason" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableDisabledReason(v *string) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetDisabledReason(*v)
	}
	return _u
}

// ClearDisabledReason clears the value of the "disabled_reason" field.
func (_u *WebhookEndpointUpdateOne) ClearDisabledReason() *WebhookEndpointUpdateOne {
	_u.mutation.ClearDisabledReason()
	return _u
}

// SetDisabledAt sets the "disabled_at" field.
func (_u *WebhookEndpointUpdateOne) SetDisabledAt(v time.Time) *WebhookEndpointUpdateOne {
	_u.mutation.SetDisabledAt(v)
	return _u
}

// SetNillableDisabledAt sets the "disabled_at" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableDisabledAt(v *time.Time) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetDisabledAt(*v)
	}
	return _u
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (_u *WebhookEndpointUpdateOne) ClearDisabledAt() *WebhookEndpointUpdateOne {
	_u.mutation.ClearDisabledAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WebhookEndpointUpdateOne) SetCreatedAt(v time.Time) *WebhookEndpointUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableCreatedAt(v *time.Time) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by IDs.
func (_u *WebhookEndpointUpdateOne) AddDeliveryIDs(ids ...string) *WebhookEndpointUpdateOne {
	_u.mutation.AddDeliveryIDs(ids...)
	return _u
}

// AddDeliveries adds the "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookEndpointUpdateOne) AddDeliveries(v ...*WebhookDelivery) *WebhookEndpointUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryIDs(ids...)
}

// AddDeadLetterIDs adds the "dead_letters" edge to the DeadLetter entity by IDs.
func (_u *WebhookEndpointUpdateOne) AddDeadLetterIDs(ids ...int) *WebhookEndpointUpdateOne {
	_u.mutation.AddDeadLetterIDs(ids...)
	return _u
}

// AddDeadLetters adds the "dead_letters" edges to the DeadLetter entity.
func (_u *WebhookEndpointUpdateOne) AddDeadLetters(v ...*DeadLetter) *WebhookEndpointUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeadLetterIDs(ids...)
}

// Mutation returns the WebhookEndpointMutation object of the builder.
func (_u *WebhookEndpointUpdateOne) Mutation() *WebhookEndpointMutation {
	return _u.mutation
}

// ClearDeliveries clears all "deliveries" edges to the WebhookDelivery entity.
func (_u *WebhookEndpointUpdateOne) ClearDeliveries() *WebhookEndpointUpdateOne {
	_u.mutation.ClearDeliveries()
	return _u
}

// RemoveDeliveryIDs removes the "deliveries" edge to WebhookDelivery entities by IDs.
func (_u *WebhookEndpointUpdateOne) RemoveDeliveryIDs(ids ...string) *WebhookEndpointUpdateOne {
	_u.mutation.RemoveDeliveryIDs(ids...)
	return _u
}

// RemoveDeliveries removes "deliveries" edges to WebhookDelivery entities.
func (_u *WebhookEndpointUpdateOne) RemoveDeliveries(v ...*WebhookDelivery) *WebhookEndpointUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryIDs(ids...)
}

// ClearDeadLetters clears all "dead_letters" edges to the DeadLetter entity.
func (_u *WebhookEndpointUpdateOne) ClearDeadLetters() *WebhookEndpointUpdateOne {
	_u.mutation.ClearDeadLetters()
	return _u
}

// RemoveDeadLetterIDs removes the "dead_letters" edge to DeadLetter entities by IDs.
func (_u *WebhookEndpointUpdateOne) RemoveDeadLetterIDs(ids ...int) *WebhookEndpointUpdateOne {
	_u.mutation.RemoveDeadLetterIDs(ids...)
	return _u
}

// RemoveDeadLetters removes "dead_letters" edges to DeadLetter entities.
func (_u *WebhookEndpointUpdateOne) RemoveDeadLetters(v ...*DeadLetter) *WebhookEndpointUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeadLetterIDs(ids...)
}

// Where appends a list predicates to the WebhookEndpointUpdate builder.
func (_u *WebhookEndpointUpdateOne) Where(ps ...predicate.WebhookEndpoint) *WebhookEndpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookEndpointUpdateOne) Select(field string, fields ...string) *WebhookEndpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookEndpoint entity.
func (_u *WebhookEndpointUpdateOne) Save(ctx context.Context) (*WebhookEndpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEndpointUpdateOne) SaveX(ctx context.Context) *WebhookEndpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookEndpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEndpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WebhookEndpointUpdateOne) sqlSave(ctx context.Context) (_node *WebhookEndpoint, err error) {
	_spec := sqlgraph.NewUpdateSpec(webhookendpoint.Table, webhookendpoint.Columns, sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookEndpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookendpoint.FieldID)
		for _, f := range fields {
			if !webhookendpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookendpoint.FieldID {
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
		_spec.SetField(webhookendpoint.FieldTenantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhookendpoint.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Events(); ok {
		_spec.SetField(webhookendpoint.FieldEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhookendpoint.FieldEvents, value)
		})
	}
	if value, ok := _u.mutation.Secret(); ok {
		_spec.SetField(webhookendpoint.FieldSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(webhookendpoint.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeoutS(); ok {
		_spec.SetField(webhookendpoint.FieldTimeoutS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutS(); ok {
		_spec.AddField(webhookendpoint.FieldTimeoutS, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VerifySsl(); ok {
		_spec.SetField(webhookendpoint.FieldVerifySsl, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(webhookendpoint.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(webhookendpoint.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(webhookendpoint.FieldHeaders, field.TypeJSON, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(webhookendpoint.FieldHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.DisabledReason(); ok {
		_spec.SetField(webhookendpoint.FieldDisabledReason, field.TypeString, value)
	}
	if _u.mutation.DisabledReasonCleared() {
		_spec.ClearField(webhookendpoint.FieldDisabledReason, field.TypeString)
	}
	if value, ok := _u.mutation.DisabledAt(); ok {
		_spec.SetField(webhookendpoint.FieldDisabledAt, field.TypeTime, value)
	}
	if _u.mutation.DisabledAtCleared() {
		_spec.ClearField(webhookendpoint.FieldDisabledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(webhookendpoint.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveriesIDs(); len(nodes) > 0 && !_u.mutation.DeliveriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DeadLettersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeadLettersIDs(); len(nodes) > 0 && !_u.mutation.DeadLettersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeadLettersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WebhookEndpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookendpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

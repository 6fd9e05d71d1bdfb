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
	"github.com/orchid-run/orchid/ent/webhookdelivery"
	"github.com/orchid-run/orchid/ent/webhookendpoint"
)

// WebhookDeliveryUpdate is the builder for updating WebhookDelivery entities.
type WebhookDeliveryUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookDeliveryMutation
}

// Where appends a list predicates to the WebhookDeliveryUpdate builder.
func (_u *WebhookDeliveryUpdate) Where(ps ...predicate.WebhookDelivery) *WebhookDeliveryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *WebhookDeliveryUpdate) SetEventType(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableEventType(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookDeliveryUpdate) SetPayload(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillablePayload(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WebhookDeliveryUpdate) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableStatus(v *webhookdelivery.Status) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *WebhookDeliveryUpdate) SetAttempts(v int) *WebhookDeliveryUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableAttempts(v *int) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *WebhookDeliveryUpdate) AddAttempts(v int) *WebhookDeliveryUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastStatusCode sets the "last_status_code" field.
func (_u *WebhookDeliveryUpdate) SetLastStatusCode(v int) *WebhookDeliveryUpdate {
	_u.mutation.ResetLastStatusCode()
	_u.mutation.SetLastStatusCode(v)
	return _u
}

// SetNillableLastStatusCode sets the "last_status_code" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableLastStatusCode(v *int) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetLastStatusCode(*v)
	}
	return _u
}

// AddLastStatusCode adds value to the "last_status_code" field.
func (_u *WebhookDeliveryUpdate) AddLastStatusCode(v int) *WebhookDeliveryUpdate {
	_u.mutation.AddLastStatusCode(v)
	return _u
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (_u *WebhookDeliveryUpdate) ClearLastStatusCode() *WebhookDeliveryUpdate {
	_u.mutation.ClearLastStatusCode()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *WebhookDeliveryUpdate) SetLastError(v string) *WebhookDeliveryUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableLastError(v *string) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *WebhookDeliveryUpdate) ClearLastError() *WebhookDeliveryUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *WebhookDeliveryUpdate) SetNextAttemptAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableNextAttemptAt(v *time.Time) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (_u *WebhookDeliveryUpdate) ClearNextAttemptAt() *WebhookDeliveryUpdate {
	_u.mutation.ClearNextAttemptAt()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *WebhookDeliveryUpdate) SetDeliveredAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableDeliveredAt(v *time.Time) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *WebhookDeliveryUpdate) ClearDeliveredAt() *WebhookDeliveryUpdate {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WebhookDeliveryUpdate) SetCreatedAt(v time.Time) *WebhookDeliveryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdate) SetNillableCreatedAt(v *time.Time) *WebhookDeliveryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetEndpointID sets the "endpoint" edge to the WebhookEndpoint entity by ID.
func (_u *WebhookDeliveryUpdate) SetEndpointID(id string) *WebhookDeliveryUpdate {
	_u.mutation.SetEndpointID(id)
	return _u
}

// SetEndpoint sets the "endpoint" edge to the WebhookEndpoint entity.
func (_u *WebhookDeliveryUpdate) SetEndpoint(v *WebhookEndpoint) *WebhookDeliveryUpdate {
	return _u.SetEndpointID(v.ID)
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_u *WebhookDeliveryUpdate) Mutation() *WebhookDeliveryMutation {
	return _u.mutation
}

// ClearEndpoint clears the "endpoint" edge to the WebhookEndpoint entity.
func (_u *WebhookDeliveryUpdate) ClearEndpoint() *WebhookDeliveryUpdate {
	_u.mutation.ClearEndpoint()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookDeliveryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookDeliveryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookDeliveryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := webhookdelivery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.status": %w`, err)}
		}
	}
	if _u.mutation.EndpointCleared() && len(_u.mutation.EndpointIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookDelivery.endpoint"`)
	}
	return nil
}

func (_u *WebhookDeliveryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookdelivery.Table, webhookdelivery.Columns, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhookdelivery.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookdelivery.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(webhookdelivery.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(webhookdelivery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(webhookdelivery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastStatusCode(); ok {
		_spec.SetField(webhookdelivery.FieldLastStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStatusCode(); ok {
		_spec.AddField(webhookdelivery.FieldLastStatusCode, field.TypeInt, value)
	}
	if _u.mutation.LastStatusCodeCleared() {
		_spec.ClearField(webhookdelivery.FieldLastStatusCode, field.TypeInt)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(webhookdelivery.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(webhookdelivery.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(webhookdelivery.FieldNextAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.NextAttemptAtCleared() {
		_spec.ClearField(webhookdelivery.FieldNextAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(webhookdelivery.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(webhookdelivery.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.EndpointCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EndpointIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookDeliveryUpdateOne is the builder for updating a single WebhookDelivery entity.
type WebhookDeliveryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookDeliveryMutation
}

// SetEventType sets the "event_type" field.
func (_u *WebhookDeliveryUpdateOne) SetEventType(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableEventType(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookDeliveryUpdateOne) SetPayload(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillablePayload(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WebhookDeliveryUpdateOne) SetStatus(v webhookdelivery.Status) *WebhookDeliveryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableStatus(v *webhookdelivery.Status) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *WebhookDeliveryUpdateOne) SetAttempts(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableAttempts(v *int) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *WebhookDeliveryUpdateOne) AddAttempts(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastStatusCode sets the "last_status_code" field.
func (_u *WebhookDeliveryUpdateOne) SetLastStatusCode(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.ResetLastStatusCode()
	_u.mutation.SetLastStatusCode(v)
	return _u
}

// SetNillableLastStatusCode sets the "last_status_code" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableLastStatusCode(v *int) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetLastStatusCode(*v)
	}
	return _u
}

// AddLastStatusCode adds value to the "last_status_code" field.
func (_u *WebhookDeliveryUpdateOne) AddLastStatusCode(v int) *WebhookDeliveryUpdateOne {
	_u.mutation.AddLastStatusCode(v)
	return _u
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (_u *WebhookDeliveryUpdateOne) ClearLastStatusCode() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearLastStatusCode()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *WebhookDeliveryUpdateOne) SetLastError(v string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableLastError(v *string) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *WebhookDeliveryUpdateOne) ClearLastError() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *WebhookDeliveryUpdateOne) SetNextAttemptAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableNextAttemptAt(v *time.Time) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (_u *WebhookDeliveryUpdateOne) ClearNextAttemptAt() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearNextAttemptAt()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *WebhookDeliveryUpdateOne) SetDeliveredAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableDeliveredAt(v *time.Time) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *WebhookDeliveryUpdateOne) ClearDeliveredAt() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *WebhookDeliveryUpdateOne) SetCreatedAt(v time.Time) *WebhookDeliveryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *WebhookDeliveryUpdateOne) SetNillableCreatedAt(v *time.Time) *WebhookDeliveryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetEndpointID sets the "endpoint" edge to the WebhookEndpoint entity by ID.
func (_u *WebhookDeliveryUpdateOne) SetEndpointID(id string) *WebhookDeliveryUpdateOne {
	_u.mutation.SetEndpointID(id)
	return _u
}

// SetEndpoint sets the "endpoint" edge to the WebhookEndpoint entity.
func (_u *WebhookDeliveryUpdateOne) SetEndpoint(v *WebhookEndpoint) *WebhookDeliveryUpdateOne {
	return _u.SetEndpointID(v.ID)
}

// Mutation returns the WebhookDeliveryMutation object of the builder.
func (_u *WebhookDeliveryUpdateOne) Mutation() *WebhookDeliveryMutation {
	return _u.mutation
}

// ClearEndpoint clears the "endpoint" edge to the WebhookEndpoint entity.
func (_u *WebhookDeliveryUpdateOne) ClearEndpoint() *WebhookDeliveryUpdateOne {
	_u.mutation.ClearEndpoint()
	return _u
}

// Where appends a list predicates to the WebhookDeliveryUpdate builder.
func (_u *WebhookDeliveryUpdateOne) Where(ps ...predicate.WebhookDelivery) *WebhookDeliveryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookDeliveryUpdateOne) Select(field string, fields ...string) *WebhookDeliveryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookDelivery entity.
func (_u *WebhookDeliveryUpdateOne) Save(ctx context.Context) (*WebhookDelivery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookDeliveryUpdateOne) SaveX(ctx context.Context) *WebhookDelivery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookDeliveryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookDeliveryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookDeliveryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := webhookdelivery.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WebhookDelivery.status": %w`, err)}
		}
	}
	if _u.mutation.EndpointCleared() && len(_u.mutation.EndpointIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookDelivery.endpoint"`)
	}
	return nil
}

func (_u *WebhookDeliveryUpdateOne) sqlSave(ctx context.Context) (_node *WebhookDelivery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookdelivery.Table, webhookdelivery.Columns, sqlgraph.NewFieldSpec(webhookdelivery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookDelivery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookdelivery.FieldID)
		for _, f := range fields {
			if !webhookdelivery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookdelivery.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhookdelivery.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookdelivery.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(webhookdelivery.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(webhookdelivery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(webhookdelivery.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastStatusCode(); ok {
		_spec.SetField(webhookdelivery.FieldLastStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastStatusCode(); ok {
		_spec.AddField(webhookdelivery.FieldLastStatusCode, field.TypeInt, value)
	}
	if _u.mutation.LastStatusCodeCleared() {
		_spec.ClearField(webhookdelivery.FieldLastStatusCode, field.TypeInt)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(webhookdelivery.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(webhookdelivery.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(webhookdelivery.FieldNextAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.NextAttemptAtCleared() {
		_spec.ClearField(webhookdelivery.FieldNextAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(webhookdelivery.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(webhookdelivery.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(webhookdelivery.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.EndpointCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EndpointIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WebhookDelivery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookdelivery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

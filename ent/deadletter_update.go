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
	"github.com/orchid-run/orchid/ent/deadletter"
	"github.com/orchid-run/orchid/ent/predicate"
	"github.com/orchid-run/orchid/ent/webhookendpoint"
)

// DeadLetterUpdate is the builder for updating DeadLetter entities.
type DeadLetterUpdate struct {
	config
	hooks    []Hook
	mutation *DeadLetterMutation
}

// Where appends a list predicates to the DeadLetterUpdate builder.
func (_u *DeadLetterUpdate) Where(ps ...predicate.DeadLetter) *DeadLetterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWebhookID sets the "webhook_id" field.
func (_u *DeadLetterUpdate) SetWebhookID(v string) *DeadLetterUpdate {
	_u.mutation.SetWebhookID(v)
	return _u
}

// SetNillableWebhookID sets the "webhook_id" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableWebhookID(v *string) *DeadLetterUpdate {
	if v != nil {
		_u.SetWebhookID(*v)
	}
	return _u
}

// SetDeliveryID sets the "delivery_id" field.
func (_u *DeadLetterUpdate) SetDeliveryID(v string) *DeadLetterUpdate {
	_u.mutation.SetDeliveryID(v)
	return _u
}

// SetNillableDeliveryID sets the "delivery_id" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableDeliveryID(v *string) *DeadLetterUpdate {
	if v != nil {
		_u.SetDeliveryID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *DeadLetterUpdate) SetURL(v string) *DeadLetterUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableURL(v *string) *DeadLetterUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DeadLetterUpdate) SetPayload(v string) *DeadLetterUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillablePayload(v *string) *DeadLetterUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetFinalError sets the "final_error" field.
func (_u *DeadLetterUpdate) SetFinalError(v string) *DeadLetterUpdate {
	_u.mutation.SetFinalError(v)
	return _u
}

// SetNillableFinalError sets the "final_error" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableFinalError(v *string) *DeadLetterUpdate {
	if v != nil {
		_u.SetFinalError(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DeadLetterUpdate) SetCreatedAt(v time.Time) *DeadLetterUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableCreatedAt(v *time.Time) *DeadLetterUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetEndpointID sets the "endpoint" edge to the WebhookEndpoint entity by ID.
func (_u *DeadLetterUpdate) SetEndpointID(id string) *DeadLetterUpdate {
	_u.mutation.SetEndpointID(id)
	return _u
}

// SetNillableEndpointID sets the "endpoint" edge to the WebhookEndpoint entity by ID if the given value is not nil.
func (_u *DeadLetterUpdate) SetNillableEndpointID(id *string) *DeadLetterUpdate {
	if id != nil {
		_u = _u.SetEndpointID(*id)
	}
	return _u
}

// SetEndpoint sets the "endpoint" edge to the WebhookEndpoint entity.
func (_u *DeadLetterUpdate) SetEndpoint(v *WebhookEndpoint) *DeadLetterUpdate {
	return _u.SetEndpointID(v.ID)
}

// Mutation returns the DeadLetterMutation object of the builder.
func (_u *DeadLetterUpdate) Mutation() *DeadLetterMutation {
	return _u.mutation
}

// ClearEndpoint clears the "endpoint" edge to the WebhookEndpoint entity.
func (_u *DeadLetterUpdate) ClearEndpoint() *DeadLetterUpdate {
	_u.mutation.ClearEndpoint()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeadLetterUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeadLetterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeadLetterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeadLetterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DeadLetterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(deadletter.Table, deadletter.Columns, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WebhookID(); ok {
		_spec.SetField(deadletter.FieldWebhookID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeliveryID(); ok {
		_spec.SetField(deadletter.FieldDeliveryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(deadletter.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(deadletter.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalError(); ok {
		_spec.SetField(deadletter.FieldFinalError, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(deadletter.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.EndpointCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deadletter.EndpointTable,
			Columns: []string{deadletter.EndpointColumn},
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
			Table:   deadletter.EndpointTable,
			Columns: []string{deadletter.EndpointColumn},
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
			err = &NotFoundError{deadletter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeadLetterUpdateOne is the builder for updating a single DeadLetter entity.
type DeadLetterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeadLetterMutation
}

// SetWebhookID sets the "webhook_id" field.
func (_u *DeadLetterUpdateOne) SetWebhookID(v string) *DeadLetterUpdateOne {
	_u.mutation.SetWebhookID(v)
	return _u
}

// SetNillableWebhookID sets the "webhook_id" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableWebhookID(v *string) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetWebhookID(*v)
	}
	return _u
}

// SetDeliveryID sets the "delivery_id" field.
func (_u *DeadLetterUpdateOne) SetDeliveryID(v string) *DeadLetterUpdateOne {
	_u.mutation.SetDeliveryID(v)
	return _u
}

// SetNillableDeliveryID sets the "delivery_id" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableDeliveryID(v *string) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetDeliveryID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *DeadLetterUpdateOne) SetURL(v string) *DeadLetterUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableURL(v *string) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DeadLetterUpdateOne) SetPayload(v string) *DeadLetterUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillablePayload(v *string) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetFinalError sets the "final_error" field.
func (_u *DeadLetterUpdateOne) SetFinalError(v string) *DeadLetterUpdateOne {
	_u.mutation.SetFinalError(v)
	return _u
}

// SetNillableFinalError sets the "final_error" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableFinalError(v *string) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetFinalError(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DeadLetterUpdateOne) SetCreatedAt(v time.Time) *DeadLetterUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableCreatedAt(v *time.Time) *DeadLetterUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetEndpointID sets the "endpoint" edge to the WebhookEndpoint entity by ID.
func (_u *DeadLetterUpdateOne) SetEndpointID(id string) *DeadLetterUpdateOne {
	_u.mutation.SetEndpointID(id)
	return _u
}

// SetNillableEndpointID sets the "endpoint" edge to the WebhookEndpoint entity by ID if the given value is not nil.
func (_u *DeadLetterUpdateOne) SetNillableEndpointID(id *string) *DeadLetterUpdateOne {
	if id != nil {
		_u = _u.SetEndpointID(*id)
	}
	return _u
}

// SetEndpoint sets the "endpoint" edge to the WebhookEndpoint entity.
func (_u *DeadLetterUpdateOne) SetEndpoint(v *WebhookEndpoint) *DeadLetterUpdateOne {
	return _u.SetEndpointID(v.ID)
}

// Mutation returns the DeadLetterMutation object of the builder.
func (_u *DeadLetterUpdateOne) Mutation() *DeadLetterMutation {
	return _u.mutation
}

// ClearEndpoint clears the "endpoint" edge to the WebhookEndpoint entity.
func (_u *DeadLetterUpdateOne) ClearEndpoint() *DeadLetterUpdateOne {
	_u.mutation.ClearEndpoint()
	return _u
}

// Where appends a list predicates to the DeadLetterUpdate builder.
func (_u *DeadLetterUpdateOne) Where(ps ...predicate.DeadLetter) *DeadLetterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeadLetterUpdateOne) Select(field string, fields ...string) *DeadLetterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeadLetter entity.
func (_u *DeadLetterUpdateOne) Save(ctx context.Context) (*DeadLetter, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeadLetterUpdateOne) SaveX(ctx context.Context) *DeadLetter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeadLetterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeadLetterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DeadLetterUpdateOne) sqlSave(ctx context.Context) (_node *DeadLetter, err error) {
	_spec := sqlgraph.NewUpdateSpec(deadletter.Table, deadletter.Columns, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeadLetter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deadletter.FieldID)
		for _, f := range fields {
			if !deadletter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deadletter.FieldID {
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
	if value, ok := _u.mutation.WebhookID(); ok {
		_spec.SetField(deadletter.FieldWebhookID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeliveryID(); ok {
		_spec.SetField(deadletter.FieldDeliveryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(deadletter.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(deadletter.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinalError(); ok {
		_spec.SetField(deadletter.FieldFinalError, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(deadletter.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.EndpointCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deadletter.EndpointTable,
			Columns: []string{deadletter.EndpointColumn},
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
			Table:   deadletter.EndpointTable,
			Columns: []string{deadletter.EndpointColumn},
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
	_node = &DeadLetter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deadletter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

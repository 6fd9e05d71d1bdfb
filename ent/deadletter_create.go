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
	"github.com/orchid-run/orchid/ent/webhookendpoint"
)

// DeadLetterCreate is the builder for creating a DeadLetter entity.
type DeadLetterCreate struct {
	config
	mutation *DeadLetterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWebhookID sets the "webhook_id" field.
func (_c *DeadLetterCreate) SetWebhookID(v string) *DeadLetterCreate {
	_c.mutation.SetWebhookID(v)
	return _c
}

// SetDeliveryID sets the "delivery_id" field.
func (_c *DeadLetterCreate) SetDeliveryID(v string) *DeadLetterCreate {
	_c.mutation.SetDeliveryID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *DeadLetterCreate) SetURL(v string) *DeadLetterCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *DeadLetterCreate) SetPayload(v string) *DeadLetterCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetFinalError sets the "final_error" field.
func (_c *DeadLetterCreate) SetFinalError(v string) *DeadLetterCreate {
	_c.mutation.SetFinalError(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeadLetterCreate) SetCreatedAt(v time.Time) *DeadLetterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableCreatedAt(v *time.Time) *DeadLetterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetEndpointID sets the "endpoint" edge to the WebhookEndpoint entity by ID.
func (_c *DeadLetterCreate) SetEndpointID(id string) *DeadLetterCreate {
	_c.mutation.SetEndpointID(id)
	return _c
}

// SetNillableEndpointID sets the "endpoint" edge to the WebhookEndpoint entity by ID if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableEndpointID(id *string) *DeadLetterCreate {
	if id != nil {
		_c = _c.SetEndpointID(*id)
	}
	return _c
}

// SetEndpoint sets the "endpoint" edge to the WebhookEndpoint entity.
func (_c *DeadLetterCreate) SetEndpoint(v *WebhookEndpoint) *DeadLetterCreate {
	return _c.SetEndpointID(v.ID)
}

// Mutation returns the DeadLetterMutation object of the builder.
func (_c *DeadLetterCreate) Mutation() *DeadLetterMutation {
	return _c.mutation
}

// Save creates the DeadLetter in the database.
func (_c *DeadLetterCreate) Save(ctx context.Context) (*DeadLetter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeadLetterCreate) SaveX(ctx context.Context) *DeadLetter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeadLetterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeadLetterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeadLetterCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deadletter.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeadLetterCreate) check() error {
	if _, ok := _c.mutation.WebhookID(); !ok {
		return &ValidationError{Name: "webhook_id", err: errors.New(`ent: missing required field "DeadLetter.webhook_id"`)}
	}
	if _, ok := _c.mutation.DeliveryID(); !ok {
		return &ValidationError{Name: "delivery_id", err: errors.New(`ent: missing required field "DeadLetter.delivery_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "DeadLetter.url"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "DeadLetter.payload"`)}
	}
	if _, ok := _c.mutation.FinalError(); !ok {
		return &ValidationError{Name: "final_error", err: errors.New(`ent: missing required field "DeadLetter.final_error"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DeadLetter.created_at"`)}
	}
	return nil
}

func (_c *DeadLetterCreate) sqlSave(ctx context.Context) (*DeadLetter, error) {
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

func (_c *DeadLetterCreate) createSpec() (*DeadLetter, *sqlgraph.CreateSpec) {
	var (
		_node = &DeadLetter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deadletter.Table, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.WebhookID(); ok {
		_spec.SetField(deadletter.FieldWebhookID, field.TypeString, value)
		_node.WebhookID = value
	}
	if value, ok := _c.mutation.DeliveryID(); ok {
		_spec.SetField(deadletter.FieldDeliveryID, field.TypeString, value)
		_node.DeliveryID = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(deadletter.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(deadletter.FieldPayload, field.TypeString, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.FinalError(); ok {
		_spec.SetField(deadletter.FieldFinalError, field.TypeString, value)
		_node.FinalError = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deadletter.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EndpointIDs(); len(nodes) > 0 {
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
		_node.webhook_endpoint_dead_letters = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeadLetter.Create().
//		SetWebhookID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeadLetterUpsert) {
//			SetWebhookID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeadLetterCreate) OnConflict(opts ...sql.ConflictOption) *DeadLetterUpsertOne {
	_c.conflict = opts
	return &DeadLetterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeadLetter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeadLetterCreate) OnConflictColumns(columns ...string) *DeadLetterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeadLetterUpsertOne{
		create: _c,
	}
}

type (
	// DeadLetterUpsertOne is the builder for "upsert"-ing
	//  one DeadLetter node.
	DeadLetterUpsertOne struct {
		create *DeadLetterCreate
	}

	// DeadLetterUpsert is the "OnConflict" setter.
	DeadLetterUpsert struct {
		*sql.UpdateSet
	}
)

// SetWebhookID sets the "webhook_id" field.
func (u *DeadLetterUpsert) SetWebhookID(v string) *DeadLetterUpsert {
	u.Set(deadletter.FieldWebhookID, v)
	return u
}

// UpdateWebhookID sets the "webhook_id" field to the value that was provided on create.
func (u *DeadLetterUpsert) UpdateWebhookID() *DeadLetterUpsert {
	u.SetExcluded(deadletter.FieldWebhookID)
	return u
}

// SetDeliveryID sets the "delivery_id" field.
func (u *DeadLetterUpsert) SetDeliveryID(v string) *DeadLetterUpsert {
	u.Set(deadletter.FieldDeliveryID, v)
	return u
}

// UpdateDeliveryID sets the "delivery_id" field to the value that was provided on create.
func (u *DeadLetterUpsert) UpdateDeliveryID() *DeadLetterUpsert {
	u.SetExcluded(deadletter.FieldDeliveryID)
	return u
}

// SetURL sets the "url" field.
func (u *DeadLetterUpsert) SetURL(v string) *DeadLetterUpsert {
	u.Set(deadletter.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *DeadLetterUpsert) UpdateURL() *DeadLetterUpsert {
	u.SetExcluded(deadletter.FieldURL)
	return u
}

// SetPayload sets the "payload" field.
func (u *DeadLetterUpsert) SetPayload(v string) *DeadLetterUpsert {
	u.Set(deadletter.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DeadLetterUpsert) UpdatePayload() *DeadLetterUpsert {
	u.SetExcluded(deadletter.FieldPayload)
	return u
}

// SetFinalError sets the "final_error" field.
func (u *DeadLetterUpsert) SetFinalError(v string) *DeadLetterUpsert {
	u.Set(deadletter.FieldFinalError, v)
	return u
}

// UpdateFinalError sets the "final_error" field to the value that was provided on create.
func (u *DeadLetterUpsert) UpdateFinalError() *DeadLetterUpsert {
	u.SetExcluded(deadletter.FieldFinalError)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *DeadLetterUpsert) SetCreatedAt(v time.Time) *DeadLetterUpsert {
	u.Set(deadletter.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DeadLetterUpsert) UpdateCreatedAt() *DeadLetterUpsert {
	u.SetExcluded(deadletter.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DeadLetter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DeadLetterUpsertOne) UpdateNewValues() *DeadLetterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeadLetter.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DeadLetterUpsertOne) Ignore() *DeadLetterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeadLetterUpsertOne) DoNothing() *DeadLetterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeadLetterCreate.OnConflict
// documentation for more info.
func (u *DeadLetterUpsertOne) Update(set func(*DeadLetterUpsert)) *DeadLetterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeadLetterUpsert{UpdateSet: update})
	}))
	return u
}

// SetWebhookID sets the "webhook_id" field.
func (u *DeadLetterUpsertOne) SetWebhookID(v string) *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetWebhookID(v)
	})
}

// UpdateWebhookID sets the "webhook_id" field to the value that was provided on create.
func (u *DeadLetterUpsertOne) UpdateWebhookID() *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateWebhookID()
	})
}

// SetDeliveryID sets the "delivery_id" field.
func (u *DeadLetterUpsertOne) SetDeliveryID(v string) *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetDeliveryID(v)
	})
}

// UpdateDeliveryID sets the "delivery_id" field to the value that was provided on create.
func (u *DeadLetterUpsertOne) UpdateDeliveryID() *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateDeliveryID()
	})
}

// SetURL sets the "url" field.
func (u *DeadLetterUpsertOne) SetURL(v string) *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *DeadLetterUpsertOne) UpdateURL() *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateURL()
	})
}

// SetPayload sets the "payload" field.
func (u *DeadLetterUpsertOne) SetPayload(v string) *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DeadLetterUpsertOne) UpdatePayload() *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdatePayload()
	})
}

// SetFinalError sets the "final_error" field.
func (u *DeadLetterUpsertOne) SetFinalError(v string) *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetFinalError(v)
	})
}

// UpdateFinalError sets the "final_error" field to the value that was provided on create.
func (u *DeadLetterUpsertOne) UpdateFinalError() *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateFinalError()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DeadLetterUpsertOne) SetCreatedAt(v time.Time) *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DeadLetterUpsertOne) UpdateCreatedAt() *DeadLetterUpsertOne {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *DeadLetterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeadLetterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeadLetterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DeadLetterUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DeadLetterUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DeadLetterCreateBulk is the builder for creating many DeadLetter entities in bulk.
type DeadLetterCreateBulk struct {
	config
	err      error
	builders []*DeadLetterCreate
	conflict []sql.ConflictOption
}

// Save creates the DeadLetter entities in the database.
func (_c *DeadLetterCreateBulk) Save(ctx context.Context) ([]*DeadLetter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeadLetter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeadLetterMutation)
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
func (_c *DeadLetterCreateBulk) SaveX(ctx context.Context) []*DeadLetter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeadLetterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeadLetterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeadLetter.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeadLetterUpsert) {
//			SetWebhookID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeadLetterCreateBulk) OnConflict(opts ...sql.ConflictOption) *DeadLetterUpsertBulk {
	_c.conflict = opts
	return &DeadLetterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeadLetter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeadLetterCreateBulk) OnConflictColumns(columns ...string) *DeadLetterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeadLetterUpsertBulk{
		create: _c,
	}
}

// DeadLetterUpsertBulk is the builder for "upsert"-ing
// a bulk of DeadLetter nodes.
type DeadLetterUpsertBulk struct {
	create *DeadLetterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DeadLetter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DeadLetterUpsertBulk) UpdateNewValues() *DeadLetterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeadLetter.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DeadLetterUpsertBulk) Ignore() *DeadLetterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeadLetterUpsertBulk) DoNothing() *DeadLetterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeadLetterCreateBulk.OnConflict
// documentation for more info.
func (u *DeadLetterUpsertBulk) Update(set func(*DeadLetterUpsert)) *DeadLetterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeadLetterUpsert{UpdateSet: update})
	}))
	return u
}

// SetWebhookID sets the "webhook_id" field.
func (u *DeadLetterUpsertBulk) SetWebhookID(v string) *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetWebhookID(v)
	})
}

// UpdateWebhookID sets the "webhook_id" field to the value that was provided on create.
func (u *DeadLetterUpsertBulk) UpdateWebhookID() *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateWebhookID()
	})
}

// SetDeliveryID sets the "delivery_id" field.
func (u *DeadLetterUpsertBulk) SetDeliveryID(v string) *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetDeliveryID(v)
	})
}

// UpdateDeliveryID sets the "delivery_id" field to the value that was provided on create.
func (u *DeadLetterUpsertBulk) UpdateDeliveryID() *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateDeliveryID()
	})
}

// SetURL sets the "url" field.
func (u *DeadLetterUpsertBulk) SetURL(v string) *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *DeadLetterUpsertBulk) UpdateURL() *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateURL()
	})
}

// SetPayload sets the "payload" field.
func (u *DeadLetterUpsertBulk) SetPayload(v string) *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DeadLetterUpsertBulk) UpdatePayload() *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdatePayload()
	})
}

// SetFinalError sets the "final_error" field.
func (u *DeadLetterUpsertBulk) SetFinalError(v string) *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetFinalError(v)
	})
}

// UpdateFinalError sets the "final_error" field to the value that was provided on create.
func (u *DeadLetterUpsertBulk) UpdateFinalError() *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateFinalError()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DeadLetterUpsertBulk) SetCreatedAt(v time.Time) *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DeadLetterUpsertBulk) UpdateCreatedAt() *DeadLetterUpsertBulk {
	return u.Update(func(s *DeadLetterUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *DeadLetterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DeadLetterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeadLetterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeadLetterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

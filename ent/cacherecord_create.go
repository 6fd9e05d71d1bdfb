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
	"github.com/orchid-run/orchid/ent/cacherecord"
)

// CacheRecordCreate is the builder for creating a CacheRecord entity.
type CacheRecordCreate struct {
	config
	mutation *CacheRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetKey sets the "key" field.
func (_c *CacheRecordCreate) SetKey(v string) *CacheRecordCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *CacheRecordCreate) SetValue(v []byte) *CacheRecordCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetSize sets the "size" field.
func (_c *CacheRecordCreate) SetSize(v int64) *CacheRecordCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_c *CacheRecordCreate) SetNillableSize(v *int64) *CacheRecordCreate {
	if v != nil {
		_c.SetSize(*v)
	}
	return _c
}

// SetAccessCount sets the "access_count" field.
func (_c *CacheRecordCreate) SetAccessCount(v int64) *CacheRecordCreate {
	_c.mutation.SetAccessCount(v)
	return _c
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_c *CacheRecordCreate) SetNillableAccessCount(v *int64) *CacheRecordCreate {
	if v != nil {
		_c.SetAccessCount(*v)
	}
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *CacheRecordCreate) SetDependencies(v []string) *CacheRecordCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CacheRecordCreate) SetCreatedAt(v time.Time) *CacheRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CacheRecordCreate) SetNillableCreatedAt(v *time.Time) *CacheRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAccessedAt sets the "accessed_at" field.
func (_c *CacheRecordCreate) SetAccessedAt(v time.Time) *CacheRecordCreate {
	_c.mutation.SetAccessedAt(v)
	return _c
}

// SetNillableAccessedAt sets the "accessed_at" field if the given value is not nil.
func (_c *CacheRecordCreate) SetNillableAccessedAt(v *time.Time) *CacheRecordCreate {
	if v != nil {
		_c.SetAccessedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *CacheRecordCreate) SetExpiresAt(v time.Time) *CacheRecordCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// Mutation returns the CacheRecordMutation object of the builder.
func (_c *CacheRecordCreate) Mutation() *CacheRecordMutation {
	return _c.mutation
}

// Save creates the CacheRecord in the database.
func (_c *CacheRecordCreate) Save(ctx context.Context) (*CacheRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CacheRecordCreate) SaveX(ctx context.Context) *CacheRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CacheRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CacheRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CacheRecordCreate) defaults() {
	if _, ok := _c.mutation.Size(); !ok {
		v := cacherecord.DefaultSize
		_c.mutation.SetSize(v)
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		v := cacherecord.DefaultAccessCount
		_c.mutation.SetAccessCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cacherecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.AccessedAt(); !ok {
		v := cacherecord.DefaultAccessedAt()
		_c.mutation.SetAccessedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CacheRecordCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "CacheRecord.key"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "CacheRecord.value"`)}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "CacheRecord.size"`)}
	}
	if _, ok := _c.mutation.AccessCount(); !ok {
		return &ValidationError{Name: "access_count", err: errors.New(`ent: missing required field "CacheRecord.access_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CacheRecord.created_at"`)}
	}
	if _, ok := _c.mutation.AccessedAt(); !ok {
		return &ValidationError{Name: "accessed_at", err: errors.New(`ent: missing required field "CacheRecord.accessed_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "CacheRecord.expires_at"`)}
	}
	return nil
}

func (_c *CacheRecordCreate) sqlSave(ctx context.Context) (*CacheRecord, error) {
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

func (_c *CacheRecordCreate) createSpec() (*CacheRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CacheRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cacherecord.Table, sqlgraph.NewFieldSpec(cacherecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(cacherecord.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(cacherecord.FieldValue, field.TypeBytes, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(cacherecord.FieldSize, field.TypeInt64, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.AccessCount(); ok {
		_spec.SetField(cacherecord.FieldAccessCount, field.TypeInt64, value)
		_node.AccessCount = value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(cacherecord.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cacherecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AccessedAt(); ok {
		_spec.SetField(cacherecord.FieldAccessedAt, field.TypeTime, value)
		_node.AccessedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(cacherecord.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CacheRecord.Create().
//		SetKey(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CacheRecordUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *CacheRecordCreate) OnConflict(opts ...sql.ConflictOption) *CacheRecordUpsertOne {
	_c.conflict = opts
	return &CacheRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CacheRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CacheRecordCreate) OnConflictColumns(columns ...string) *CacheRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CacheRecordUpsertOne{
		create: _c,
	}
}

type (
	// CacheRecordUpsertOne is the builder for "upsert"-ing
	//  one CacheRecord node.
	CacheRecordUpsertOne struct {
		create *CacheRecordCreate
	}

	// CacheRecordUpsert is the "OnConflict" setter.
	CacheRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetKey sets the "key" field.
func (u *CacheRecordUpsert) SetKey(v string) *CacheRecordUpsert {
	u.Set(cacherecord.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *CacheRecordUpsert) UpdateKey() *CacheRecordUpsert {
	u.SetExcluded(cacherecord.FieldKey)
	return u
}

// SetValue sets the "value" field.
func (u *CacheRecordUpsert) SetValue(v []byte) *CacheRecordUpsert {
	u.Set(cacherecord.FieldValue, v)
	return u
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *CacheRecordUpsert) UpdateValue() *CacheRecordUpsert {
	u.SetExcluded(cacherecord.FieldValue)
	return u
}

// SetSize sets the "size" field.
func (u *CacheRecordUpsert) SetSize(v int64) *CacheRecordUpsert {
	u.Set(cacherecord.FieldSize, v)
	return u
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *CacheRecordUpsert) UpdateSize() *CacheRecordUpsert {
	u.SetExcluded(cacherecord.FieldSize)
	return u
}

// AddSize adds v to the "size" field.
func (u *CacheRecordUpsert) AddSize(v int64) *CacheRecordUpsert {
	u.Add(cacherecord.FieldSize, v)
	return u
}

// SetAccessCount sets the "access_count" field.
func (u *CacheRecordUpsert) SetAccessCount(v int64) *CacheRecordUpsert {
	u.Set(cacherecord.FieldAccessCount, v)
	return u
}

// UpdateAccessCount sets the "access_count" field to the value that was provided on create.
func (u *CacheRecordUpsert) UpdateAccessCount() *CacheRecordUpsert {
	u.SetExcluded(cacherecord.FieldAccessCount)
	return u
}

// AddAccessCount adds v to the "access_count" field.
func (u *CacheRecordUpsert) AddAccessCount(v int64) *CacheRecordUpsert {
	u.Add(cacherecord.FieldAccessCount, v)
	return u
}

// SetDependencies sets the "dependencies" field.
func (u *CacheRecordUpsert) SetDependencies(v []string) *CacheRecordUpsert {
	u.Set(cacherecord.FieldDependencies, v)
	return u
}

// UpdateDependencies sets the "dependencies" field to the value that was provided on create.
func (u *CacheRecordUpsert) UpdateDependencies() *CacheRecordUpsert {
	u.SetExcluded(cacherecord.FieldDependencies)
	return u
}

// ClearDependencies clears the value of the "dependencies" field.
func (u *CacheRecordUpsert) ClearDependencies() *CacheRecordUpsert {
	u.SetNull(cacherecord.FieldDependencies)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *CacheRecordUpsert) SetCreatedAt(v time.Time) *CacheRecordUpsert {
	u.Set(cacherecord.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CacheRecordUpsert) UpdateCreatedAt() *CacheRecordUpsert {
	u.SetExcluded(cacherecord.FieldCreatedAt)
	return u
}

// SetAccessedAt sets the "accessed_at" field.
func (u *CacheRecordUpsert) SetAccessedAt(v time.Time) *CacheRecordUpsert {
	u.Set(cacherecord.FieldAccessedAt, v)
	return u
}

// UpdateAccessedAt sets the "accessed_at" field to the value that was provided on create.
func (u *CacheRecordUpsert) UpdateAccessedAt() *CacheRecordUpsert {
	u.SetExcluded(cacherecord.FieldAccessedAt)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *CacheRecordUpsert) SetExpiresAt(v time.Time) *CacheRecordUpsert {
	u.Set(cacherecord.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CacheRecordUpsert) UpdateExpiresAt() *CacheRecordUpsert {
	u.SetExcluded(cacherecord.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CacheRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CacheRecordUpsertOne) UpdateNewValues() *CacheRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CacheRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CacheRecordUpsertOne) Ignore() *CacheRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CacheRecordUpsertOne) DoNothing() *CacheRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CacheRecordCreate.OnConflict
// documentation for more info.
func (u *CacheRecordUpsertOne) Update(set func(*CacheRecordUpsert)) *CacheRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CacheRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *CacheRecordUpsertOne) SetKey(v string) *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *CacheRecordUpsertOne) UpdateKey() *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *CacheRecordUpsertOne) SetValue(v []byte) *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *CacheRecordUpsertOne) UpdateValue() *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateValue()
	})
}

// SetSize sets the "size" field.
func (u *CacheRecordUpsertOne) SetSize(v int64) *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *CacheRecordUpsertOne) AddSize(v int64) *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *CacheRecordUpsertOne) UpdateSize() *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateSize()
	})
}

// SetAccessCount sets the "access_count" field.
func (u *CacheRecordUpsertOne) SetAccessCount(v int64) *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetAccessCount(v)
	})
}

// AddAccessCount adds v to the "access_count" field.
func (u *CacheRecordUpsertOne) AddAccessCount(v int64) *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.AddAccessCount(v)
	})
}

// UpdateAccessCount sets the "access_count" field to the value that was provided on create.
func (u *CacheRecordUpsertOne) UpdateAccessCount() *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateAccessCount()
	})
}

// SetDependencies sets the "dependencies" field.
func (u *CacheRecordUpsertOne) SetDependencies(v []string) *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetDependencies(v)
	})
}

// UpdateDependencies sets the "dependencies" field to the value that was provided on create.
func (u *CacheRecordUpsertOne) UpdateDependencies() *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateDependencies()
	})
}

// ClearDependencies clears the value of the "dependencies" field.
func (u *CacheRecordUpsertOne) ClearDependencies() *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.ClearDependencies()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CacheRecordUpsertOne) SetCreatedAt(v time.Time) *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CacheRecordUpsertOne) UpdateCreatedAt() *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetAccessedAt sets the "accessed_at" field.
func (u *CacheRecordUpsertOne) SetAccessedAt(v time.Time) *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetAccessedAt(v)
	})
}

// UpdateAccessedAt sets the "accessed_at" field to the value that was provided on create.
func (u *CacheRecordUpsertOne) UpdateAccessedAt() *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateAccessedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *CacheRecordUpsertOne) SetExpiresAt(v time.Time) *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CacheRecordUpsertOne) UpdateExpiresAt() *CacheRecordUpsertOne {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *CacheRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CacheRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CacheRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CacheRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CacheRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CacheRecordCreateBulk is the builder for creating many CacheRecord entities in bulk.
type CacheRecordCreateBulk struct {
	config
	err      error
	builders []*CacheRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the CacheRecord entities in the database.
func (_c *CacheRecordCreateBulk) Save(ctx context.Context) ([]*CacheRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CacheRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CacheRecordMutation)
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
func (_c *CacheRecordCreateBulk) SaveX(ctx context.Context) []*CacheRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CacheRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CacheRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CacheRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CacheRecordUpsert) {
//			SetKey(v+v).
//		}).
//		Exec(ctx)
func (_c *CacheRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *CacheRecordUpsertBulk {
	_c.conflict = opts
	return &CacheRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CacheRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CacheRecordCreateBulk) OnConflictColumns(columns ...string) *CacheRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CacheRecordUpsertBulk{
		create: _c,
	}
}

// CacheRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of CacheRecord nodes.
type CacheRecordUpsertBulk struct {
	create *CacheRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CacheRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CacheRecordUpsertBulk) UpdateNewValues() *CacheRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CacheRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CacheRecordUpsertBulk) Ignore() *CacheRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CacheRecordUpsertBulk) DoNothing() *CacheRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CacheRecordCreateBulk.OnConflict
// documentation for more info.
func (u *CacheRecordUpsertBulk) Update(set func(*CacheRecordUpsert)) *CacheRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CacheRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetKey sets the "key" field.
func (u *CacheRecordUpsertBulk) SetKey(v string) *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *CacheRecordUpsertBulk) UpdateKey() *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateKey()
	})
}

// SetValue sets the "value" field.
func (u *CacheRecordUpsertBulk) SetValue(v []byte) *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetValue(v)
	})
}

// UpdateValue sets the "value" field to the value that was provided on create.
func (u *CacheRecordUpsertBulk) UpdateValue() *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateValue()
	})
}

// SetSize sets the "size" field.
func (u *CacheRecordUpsertBulk) SetSize(v int64) *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *CacheRecordUpsertBulk) AddSize(v int64) *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *CacheRecordUpsertBulk) UpdateSize() *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateSize()
	})
}

// SetAccessCount sets the "access_count" field.
func (u *CacheRecordUpsertBulk) SetAccessCount(v int64) *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetAccessCount(v)
	})
}

// AddAccessCount adds v to the "access_count" field.
func (u *CacheRecordUpsertBulk) AddAccessCount(v int64) *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.AddAccessCount(v)
	})
}

// UpdateAccessCount sets the "access_count" field to the value that was provided on create.
func (u *CacheRecordUpsertBulk) UpdateAccessCount() *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateAccessCount()
	})
}

// SetDependencies sets the "dependencies" field.
func (u *CacheRecordUpsertBulk) SetDependencies(v []string) *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetDependencies(v)
	})
}

// UpdateDependencies sets the "dependencies" field to the value that was provided on create.
func (u *CacheRecordUpsertBulk) UpdateDependencies() *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateDependencies()
	})
}

// ClearDependencies clears the value of the "dependencies" field.
func (u *CacheRecordUpsertBulk) ClearDependencies() *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.ClearDependencies()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *CacheRecordUpsertBulk) SetCreatedAt(v time.Time) *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *CacheRecordUpsertBulk) UpdateCreatedAt() *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetAccessedAt sets the "accessed_at" field.
func (u *CacheRecordUpsertBulk) SetAccessedAt(v time.Time) *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetAccessedAt(v)
	})
}

// UpdateAccessedAt sets the "accessed_at" field to the value that was provided on create.
func (u *CacheRecordUpsertBulk) UpdateAccessedAt() *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateAccessedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *CacheRecordUpsertBulk) SetExpiresAt(v time.Time) *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *CacheRecordUpsertBulk) UpdateExpiresAt() *CacheRecordUpsertBulk {
	return u.Update(func(s *CacheRecordUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *CacheRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CacheRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CacheRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CacheRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

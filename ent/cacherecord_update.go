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
	"github.com/orchid-run/orchid/ent/cacherecord"
	"github.com/orchid-run/orchid/ent/predicate"
)

// CacheRecordUpdate is the builder for updating CacheRecord entities.
type CacheRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CacheRecordMutation
}

// Where appends a list predicates to the CacheRecordUpdate builder.
func (_u *CacheRecordUpdate) Where(ps ...predicate.CacheRecord) *CacheRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *CacheRecordUpdate) SetKey(v string) *CacheRecordUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *CacheRecordUpdate) SetNillableKey(v *string) *CacheRecordUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *CacheRecordUpdate) SetValue(v []byte) *CacheRecordUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetSize sets the "size" field.
func (_u *CacheRecordUpdate) SetSize(v int64) *CacheRecordUpdate {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *CacheRecordUpdate) SetNillableSize(v *int64) *CacheRecordUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *CacheRecordUpdate) AddSize(v int64) *CacheRecordUpdate {
	_u.mutation.AddSize(v)
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *CacheRecordUpdate) SetAccessCount(v int64) *CacheRecordUpdate {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *CacheRecordUpdate) SetNillableAccessCount(v *int64) *CacheRecordUpdate {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *CacheRecordUpdate) AddAccessCount(v int64) *CacheRecordUpdate {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *CacheRecordUpdate) SetDependencies(v []string) *CacheRecordUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *CacheRecordUpdate) AppendDependencies(v []string) *CacheRecordUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *CacheRecordUpdate) ClearDependencies() *CacheRecordUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CacheRecordUpdate) SetCreatedAt(v time.Time) *CacheRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CacheRecordUpdate) SetNillableCreatedAt(v *time.Time) *CacheRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAccessedAt sets the "accessed_at" field.
func (_u *CacheRecordUpdate) SetAccessedAt(v time.Time) *CacheRecordUpdate {
	_u.mutation.SetAccessedAt(v)
	return _u
}

// SetNillableAccessedAt sets the "accessed_at" field if the given value is not nil.
func (_u *CacheRecordUpdate) SetNillableAccessedAt(v *time.Time) *CacheRecordUpdate {
	if v != nil {
		_u.SetAccessedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *CacheRecordUpdate) SetExpiresAt(v time.Time) *CacheRecordUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *CacheRecordUpdate) SetNillableExpiresAt(v *time.Time) *CacheRecordUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the CacheRecordMutation object of the builder.
func (_u *CacheRecordUpdate) Mutation() *CacheRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CacheRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CacheRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CacheRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CacheRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CacheRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(cacherecord.Table, cacherecord.Columns, sqlgraph.NewFieldSpec(cacherecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(cacherecord.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(cacherecord.FieldValue, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(cacherecord.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(cacherecord.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(cacherecord.FieldAccessCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(cacherecord.FieldAccessCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(cacherecord.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cacherecord.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(cacherecord.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cacherecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AccessedAt(); ok {
		_spec.SetField(cacherecord.FieldAccessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(cacherecord.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cacherecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CacheRecordUpdateOne is the builder for updating a single CacheRecord entity.
type CacheRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CacheRecordMutation
}

// SetKey sets the "key" field.
func (_u *CacheRecordUpdateOne) SetKey(v string) *CacheRecordUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *CacheRecordUpdateOne) SetNillableKey(v *string) *CacheRecordUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *CacheRecordUpdateOne) SetValue(v []byte) *CacheRecordUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetSize sets the "size" field.
func (_u *CacheRecordUpdateOne) SetSize(v int64) *CacheRecordUpdateOne {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *CacheRecordUpdateOne) SetNillableSize(v *int64) *CacheRecordUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *CacheRecordUpdateOne) AddSize(v int64) *CacheRecordUpdateOne {
	_u.mutation.AddSize(v)
	return _u
}

// SetAccessCount sets the "access_count" field.
func (_u *CacheRecordUpdateOne) SetAccessCount(v int64) *CacheRecordUpdateOne {
	_u.mutation.ResetAccessCount()
	_u.mutation.SetAccessCount(v)
	return _u
}

// SetNillableAccessCount sets the "access_count" field if the given value is not nil.
func (_u *CacheRecordUpdateOne) SetNillableAccessCount(v *int64) *CacheRecordUpdateOne {
	if v != nil {
		_u.SetAccessCount(*v)
	}
	return _u
}

// AddAccessCount adds value to the "access_count" field.
func (_u *CacheRecordUpdateOne) AddAccessCount(v int64) *CacheRecordUpdateOne {
	_u.mutation.AddAccessCount(v)
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *CacheRecordUpdateOne) SetDependencies(v []string) *CacheRecordUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *CacheRecordUpdateOne) AppendDependencies(v []string) *CacheRecordUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *CacheRecordUpdateOne) ClearDependencies() *CacheRecordUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CacheRecordUpdateOne) SetCreatedAt(v time.Time) *CacheRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CacheRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *CacheRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAccessedAt sets the "accessed_at" field.
func (_u *CacheRecordUpdateOne) SetAccessedAt(v time.Time) *CacheRecordUpdateOne {
	_u.mutation.SetAccessedAt(v)
	return _u
}

// SetNillableAccessedAt sets the "accessed_at" field if the given value is not nil.
func (_u *CacheRecordUpdateOne) SetNillableAccessedAt(v *time.Time) *CacheRecordUpdateOne {
	if v != nil {
		_u.SetAccessedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *CacheRecordUpdateOne) SetExpiresAt(v time.Time) *CacheRecordUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *CacheRecordUpdateOne) SetNillableExpiresAt(v *time.Time) *CacheRecordUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the CacheRecordMutation object of the builder.
func (_u *CacheRecordUpdateOne) Mutation() *CacheRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the CacheRecordUpdate builder.
func (_u *CacheRecordUpdateOne) Where(ps ...predicate.CacheRecord) *CacheRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CacheRecordUpdateOne) Select(field string, fields ...string) *CacheRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CacheRecord entity.
func (_u *CacheRecordUpdateOne) Save(ctx context.Context) (*CacheRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CacheRecordUpdateOne) SaveX(ctx context.Context) *CacheRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CacheRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CacheRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CacheRecordUpdateOne) sqlSave(ctx context.Context) (_node *CacheRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(cacherecord.Table, cacherecord.Columns, sqlgraph.NewFieldSpec(cacherecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CacheRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cacherecord.FieldID)
		for _, f := range fields {
			if !cacherecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cacherecord.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(cacherecord.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(cacherecord.FieldValue, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(cacherecord.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(cacherecord.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AccessCount(); ok {
		_spec.SetField(cacherecord.FieldAccessCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAccessCount(); ok {
		_spec.AddField(cacherecord.FieldAccessCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(cacherecord.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cacherecord.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(cacherecord.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(cacherecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AccessedAt(); ok {
		_spec.SetField(cacherecord.FieldAccessedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(cacherecord.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &CacheRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cacherecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

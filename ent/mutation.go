// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/orchid-run/orchid/ent/cacherecord"
	"github.com/orchid-run/orchid/ent/deadletter"
	"github.com/orchid-run/orchid/ent/predicate"
	"github.com/orchid-run/orchid/ent/routingdecision"
	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/ent/stepexecution"
	"github.com/orchid-run/orchid/ent/webhookdelivery"
	"github.com/orchid-run/orchid/ent/webhookendpoint"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCacheRecord     = "CacheRecord"
	TypeDeadLetter      = "DeadLetter"
	TypeRoutingDecision = "RoutingDecision"
	TypeRun             = "Run"
	TypeStepExecution   = "StepExecution"
	TypeWebhookDelivery = "WebhookDelivery"
	TypeWebhookEndpoint = "WebhookEndpoint"
)

// CacheRecordMutation represents an operation that mutates the CacheRecord nodes in the graph.
type CacheRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	key                *string
	value              *[]byte
	size               *int64
	addsize            *int64
	access_count       *int64
	addaccess_count    *int64
	dependencies       *[]string
	appenddependencies []string
	created_at         *time.Time
	accessed_at        *time.Time
	expires_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*CacheRecord, error)
	predicates         []predicate.CacheRecord
}

var _ ent.Mutation = (*CacheRecordMutation)(nil)

// cacherecordOption allows management of the mutation configuration using functional options.
type cacherecordOption func(*CacheRecordMutation)

// newCacheRecordMutation creates new mutation for the CacheRecord entity.
func newCacheRecordMutation(c config, op Op, opts ...cacherecordOption) *CacheRecordMutation {
	m := &CacheRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeCacheRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCacheRecordID sets the ID field of the mutation.
func withCacheRecordID(id int) cacherecordOption {
	return func(m *CacheRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *CacheRecord
		)
		m.oldValue = func(ctx context.Context) (*CacheRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CacheRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCacheRecord sets the old CacheRecord of the mutation.
func withCacheRecord(node *CacheRecord) cacherecordOption {
	return func(m *CacheRecordMutation) {
		m.oldValue = func(context.Context) (*CacheRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CacheRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CacheRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CacheRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CacheRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CacheRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *CacheRecordMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *CacheRecordMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the CacheRecord entity.
// If the CacheRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheRecordMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *CacheRecordMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *CacheRecordMutation) SetValue(b []byte) {
	m.value = &b
}

// Value returns the value of the "value" field in the mutation.
func (m *CacheRecordMutation) Value() (r []byte, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the CacheRecord entity.
// If the CacheRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheRecordMutation) OldValue(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *CacheRecordMutation) ResetValue() {
	m.value = nil
}

// SetSize sets the "size" field.
func (m *CacheRecordMutation) SetSize(i int64) {
	m.size = &i
	m.addsize = nil
}

// Size returns the value of the "size" field in the mutation.
func (m *CacheRecordMutation) Size() (r int64, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the CacheRecord entity.
// If the CacheRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheRecordMutation) OldSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// AddSize adds i to the "size" field.
func (m *CacheRecordMutation) AddSize(i int64) {
	if m.addsize != nil {
		*m.addsize += i
	} else {
		m.addsize = &i
	}
}

// AddedSize returns the value that was added to the "size" field in this mutation.
func (m *CacheRecordMutation) AddedSize() (r int64, exists bool) {
	v := m.addsize
	if v == nil {
		return
	}
	return *v, true
}

// ResetSize resets all changes to the "size" field.
func (m *CacheRecordMutation) ResetSize() {
	m.size = nil
	m.addsize = nil
}

// SetAccessCount sets the "access_count" field.
func (m *CacheRecordMutation) SetAccessCount(i int64) {
	m.access_count = &i
	m.addaccess_count = nil
}

// AccessCount returns the value of the "access_count" field in the mutation.
func (m *CacheRecordMutation) AccessCount() (r int64, exists bool) {
	v := m.access_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessCount returns the old "access_count" field's value of the CacheRecord entity.
// If the CacheRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheRecordMutation) OldAccessCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessCount: %w", err)
	}
	return oldValue.AccessCount, nil
}

// AddAccessCount adds i to the "access_count" field.
func (m *CacheRecordMutation) AddAccessCount(i int64) {
	if m.addaccess_count != nil {
		*m.addaccess_count += i
	} else {
		m.addaccess_count = &i
	}
}

// AddedAccessCount returns the value that was added to the "access_count" field in this mutation.
func (m *CacheRecordMutation) AddedAccessCount() (r int64, exists bool) {
	v := m.addaccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccessCount resets all changes to the "access_count" field.
func (m *CacheRecordMutation) ResetAccessCount() {
	m.access_count = nil
	m.addaccess_count = nil
}

// SetDependencies sets the "dependencies" field.
func (m *CacheRecordMutation) SetDependencies(s []string) {
	m.dependencies = &s
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *CacheRecordMutation) Dependencies() (r []string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the CacheRecord entity.
// If the CacheRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheRecordMutation) OldDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds s to the "dependencies" field.
func (m *CacheRecordMutation) AppendDependencies(s []string) {
	m.appenddependencies = append(m.appenddependencies, s...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *CacheRecordMutation) AppendedDependencies() ([]string, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *CacheRecordMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[cacherecord.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *CacheRecordMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[cacherecord.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *CacheRecordMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, cacherecord.FieldDependencies)
}

// SetCreatedAt sets the "created_at" field.
func (m *CacheRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CacheRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CacheRecord entity.
// If the CacheRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CacheRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAccessedAt sets the "accessed_at" field.
func (m *CacheRecordMutation) SetAccessedAt(t time.Time) {
	m.accessed_at = &t
}

// AccessedAt returns the value of the "accessed_at" field in the mutation.
func (m *CacheRecordMutation) AccessedAt() (r time.Time, exists bool) {
	v := m.accessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessedAt returns the old "accessed_at" field's value of the CacheRecord entity.
// If the CacheRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheRecordMutation) OldAccessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessedAt: %w", err)
	}
	return oldValue.AccessedAt, nil
}

// ResetAccessedAt resets all changes to the "accessed_at" field.
func (m *CacheRecordMutation) ResetAccessedAt() {
	m.accessed_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *CacheRecordMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *CacheRecordMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the CacheRecord entity.
// If the CacheRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CacheRecordMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *CacheRecordMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the CacheRecordMutation builder.
func (m *CacheRecordMutation) Where(ps ...predicate.CacheRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CacheRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CacheRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CacheRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CacheRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CacheRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CacheRecord).
func (m *CacheRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CacheRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.key != nil {
		fields = append(fields, cacherecord.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, cacherecord.FieldValue)
	}
	if m.size != nil {
		fields = append(fields, cacherecord.FieldSize)
	}
	if m.access_count != nil {
		fields = append(fields, cacherecord.FieldAccessCount)
	}
	if m.dependencies != nil {
		fields = append(fields, cacherecord.FieldDependencies)
	}
	if m.created_at != nil {
		fields = append(fields, cacherecord.FieldCreatedAt)
	}
	if m.accessed_at != nil {
		fields = append(fields, cacherecord.FieldAccessedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, cacherecord.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CacheRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cacherecord.FieldKey:
		return m.Key()
	case cacherecord.FieldValue:
		return m.Value()
	case cacherecord.FieldSize:
		return m.Size()
	case cacherecord.FieldAccessCount:
		return m.AccessCount()
	case cacherecord.FieldDependencies:
		return m.Dependencies()
	case cacherecord.FieldCreatedAt:
		return m.CreatedAt()
	case cacherecord.FieldAccessedAt:
		return m.AccessedAt()
	case cacherecord.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CacheRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cacherecord.FieldKey:
		return m.OldKey(ctx)
	case cacherecord.FieldValue:
		return m.OldValue(ctx)
	case cacherecord.FieldSize:
		return m.OldSize(ctx)
	case cacherecord.FieldAccessCount:
		return m.OldAccessCount(ctx)
	case cacherecord.FieldDependencies:
		return m.OldDependencies(ctx)
	case cacherecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cacherecord.FieldAccessedAt:
		return m.OldAccessedAt(ctx)
	case cacherecord.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown CacheRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CacheRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cacherecord.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case cacherecord.FieldValue:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case cacherecord.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case cacherecord.FieldAccessCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessCount(v)
		return nil
	case cacherecord.FieldDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case cacherecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cacherecord.FieldAccessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessedAt(v)
		return nil
	case cacherecord.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown CacheRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CacheRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsize != nil {
		fields = append(fields, cacherecord.FieldSize)
	}
	if m.addaccess_count != nil {
		fields = append(fields, cacherecord.FieldAccessCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CacheRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cacherecord.FieldSize:
		return m.AddedSize()
	case cacherecord.FieldAccessCount:
		return m.AddedAccessCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CacheRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cacherecord.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSize(v)
		return nil
	case cacherecord.FieldAccessCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccessCount(v)
		return nil
	}
	return fmt.Errorf("unknown CacheRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CacheRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cacherecord.FieldDependencies) {
		fields = append(fields, cacherecord.FieldDependencies)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CacheRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CacheRecordMutation) ClearField(name string) error {
	switch name {
	case cacherecord.FieldDependencies:
		m.ClearDependencies()
		return nil
	}
	return fmt.Errorf("unknown CacheRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CacheRecordMutation) ResetField(name string) error {
	switch name {
	case cacherecord.FieldKey:
		m.ResetKey()
		return nil
	case cacherecord.FieldValue:
		m.ResetValue()
		return nil
	case cacherecord.FieldSize:
		m.ResetSize()
		return nil
	case cacherecord.FieldAccessCount:
		m.ResetAccessCount()
		return nil
	case cacherecord.FieldDependencies:
		m.ResetDependencies()
		return nil
	case cacherecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cacherecord.FieldAccessedAt:
		m.ResetAccessedAt()
		return nil
	case cacherecord.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown CacheRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CacheRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CacheRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CacheRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CacheRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CacheRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CacheRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CacheRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CacheRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CacheRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CacheRecord edge %s", name)
}

// DeadLetterMutation represents an operation that mutates the DeadLetter nodes in the graph.
type DeadLetterMutation struct {
	config
	op              Op
	typ             string
	id              *int
	webhook_id      *string
	delivery_id     *string
	url             *string
	payload         *string
	final_error     *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	endpoint        *string
	clearedendpoint bool
	done            bool
	oldValue        func(context.Context) (*DeadLetter, error)
	predicates      []predicate.DeadLetter
}

var _ ent.Mutation = (*DeadLetterMutation)(nil)

// deadletterOption allows management of the mutation configuration using functional options.
type deadletterOption func(*DeadLetterMutation)

// newDeadLetterMutation creates new mutation for the DeadLetter entity.
func newDeadLetterMutation(c config, op Op, opts ...deadletterOption) *DeadLetterMutation {
	m := &DeadLetterMutation{
		config:        c,
		op:            op,
		typ:           TypeDeadLetter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeadLetterID sets the ID field of the mutation.
func withDeadLetterID(id int) deadletterOption {
	return func(m *DeadLetterMutation) {
		var (
			err   error
			once  sync.Once
			value *DeadLetter
		)
		m.oldValue = func(ctx context.Context) (*DeadLetter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeadLetter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeadLetter sets the old DeadLetter of the mutation.
func withDeadLetter(node *DeadLetter) deadletterOption {
	return func(m *DeadLetterMutation) {
		m.oldValue = func(context.Context) (*DeadLetter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeadLetterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeadLetterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeadLetterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeadLetterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeadLetter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWebhookID sets the "webhook_id" field.
func (m *DeadLetterMutation) SetWebhookID(s string) {
	m.webhook_id = &s
}

// WebhookID returns the value of the "webhook_id" field in the mutation.
func (m *DeadLetterMutation) WebhookID() (r string, exists bool) {
	v := m.webhook_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookID returns the old "webhook_id" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldWebhookID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookID: %w", err)
	}
	return oldValue.WebhookID, nil
}

// ResetWebhookID resets all changes to the "webhook_id" field.
func (m *DeadLetterMutation) ResetWebhookID() {
	m.webhook_id = nil
}

// SetDeliveryID sets the "delivery_id" field.
func (m *DeadLetterMutation) SetDeliveryID(s string) {
	m.delivery_id = &s
}

// DeliveryID returns the value of the "delivery_id" field in the mutation.
func (m *DeadLetterMutation) DeliveryID() (r string, exists bool) {
	v := m.delivery_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryID returns the old "delivery_id" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldDeliveryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryID: %w", err)
	}
	return oldValue.DeliveryID, nil
}

// ResetDeliveryID resets all changes to the "delivery_id" field.
func (m *DeadLetterMutation) ResetDeliveryID() {
	m.delivery_id = nil
}

// SetURL sets the "url" field.
func (m *DeadLetterMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *DeadLetterMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *DeadLetterMutation) ResetURL() {
	m.url = nil
}

// SetPayload sets the "payload" field.
func (m *DeadLetterMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *DeadLetterMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *DeadLetterMutation) ResetPayload() {
	m.payload = nil
}

// SetFinalError sets the "final_error" field.
func (m *DeadLetterMutation) SetFinalError(s string) {
	m.final_error = &s
}

// FinalError returns the value of the "final_error" field in the mutation.
func (m *DeadLetterMutation) FinalError() (r string, exists bool) {
	v := m.final_error
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalError returns the old "final_error" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldFinalError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalError: %w", err)
	}
	return oldValue.FinalError, nil
}

// ResetFinalError resets all changes to the "final_error" field.
func (m *DeadLetterMutation) ResetFinalError() {
	m.final_error = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DeadLetterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeadLetterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeadLetterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetEndpointID sets the "endpoint" edge to the WebhookEndpoint entity by id.
func (m *DeadLetterMutation) SetEndpointID(id string) {
	m.endpoint = &id
}

// ClearEndpoint clears the "endpoint" edge to the WebhookEndpoint entity.
func (m *DeadLetterMutation) ClearEndpoint() {
	m.clearedendpoint = true
}

// EndpointCleared reports if the "endpoint" edge to the WebhookEndpoint entity was cleared.
func (m *DeadLetterMutation) EndpointCleared() bool {
	return m.clearedendpoint
}

// EndpointID returns the "endpoint" edge ID in the mutation.
func (m *DeadLetterMutation) EndpointID() (id string, exists bool) {
	if m.endpoint != nil {
		return *m.endpoint, true
	}
	return
}

// EndpointIDs returns the "endpoint" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EndpointID instead. It exists only for internal usage by the builders.
func (m *DeadLetterMutation) EndpointIDs() (ids []string) {
	if id := m.endpoint; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEndpoint resets all changes to the "endpoint" edge.
func (m *DeadLetterMutation) ResetEndpoint() {
	m.endpoint = nil
	m.clearedendpoint = false
}

// Where appends a list predicates to the DeadLetterMutation builder.
func (m *DeadLetterMutation) Where(ps ...predicate.DeadLetter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeadLetterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeadLetterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeadLetter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeadLetterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeadLetterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeadLetter).
func (m *DeadLetterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeadLetterMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.webhook_id != nil {
		fields = append(fields, deadletter.FieldWebhookID)
	}
	if m.delivery_id != nil {
		fields = append(fields, deadletter.FieldDeliveryID)
	}
	if m.url != nil {
		fields = append(fields, deadletter.FieldURL)
	}
	if m.payload != nil {
		fields = append(fields, deadletter.FieldPayload)
	}
	if m.final_error != nil {
		fields = append(fields, deadletter.FieldFinalError)
	}
	if m.created_at != nil {
		fields = append(fields, deadletter.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeadLetterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deadletter.FieldWebhookID:
		return m.WebhookID()
	case deadletter.FieldDeliveryID:
		return m.DeliveryID()
	case deadletter.FieldURL:
		return m.URL()
	case deadletter.FieldPayload:
		return m.Payload()
	case deadletter.FieldFinalError:
		return m.FinalError()
	case deadletter.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeadLetterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deadletter.FieldWebhookID:
		return m.OldWebhookID(ctx)
	case deadletter.FieldDeliveryID:
		return m.OldDeliveryID(ctx)
	case deadletter.FieldURL:
		return m.OldURL(ctx)
	case deadletter.FieldPayload:
		return m.OldPayload(ctx)
	case deadletter.FieldFinalError:
		return m.OldFinalError(ctx)
	case deadletter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeadLetter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeadLetterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deadletter.FieldWebhookID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookID(v)
		return nil
	case deadletter.FieldDeliveryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryID(v)
		return nil
	case deadletter.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case deadletter.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case deadletter.FieldFinalError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalError(v)
		return nil
	case deadletter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeadLetter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeadLetterMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeadLetterMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeadLetterMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DeadLetter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeadLetterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeadLetterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeadLetterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DeadLetter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeadLetterMutation) ResetField(name string) error {
	switch name {
	case deadletter.FieldWebhookID:
		m.ResetWebhookID()
		return nil
	case deadletter.FieldDeliveryID:
		m.ResetDeliveryID()
		return nil
	case deadletter.FieldURL:
		m.ResetURL()
		return nil
	case deadletter.FieldPayload:
		m.ResetPayload()
		return nil
	case deadletter.FieldFinalError:
		m.ResetFinalError()
		return nil
	case deadletter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DeadLetter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeadLetterMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.endpoint != nil {
		edges = append(edges, deadletter.EdgeEndpoint)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeadLetterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deadletter.EdgeEndpoint:
		if id := m.endpoint; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeadLetterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeadLetterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeadLetterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedendpoint {
		edges = append(edges, deadletter.EdgeEndpoint)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeadLetterMutation) EdgeCleared(name string) bool {
	switch name {
	case deadletter.EdgeEndpoint:
		return m.clearedendpoint
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeadLetterMutation) ClearEdge(name string) error {
	switch name {
	case deadletter.EdgeEndpoint:
		m.ClearEndpoint()
		return nil
	}
	return fmt.Errorf("unknown DeadLetter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeadLetterMutation) ResetEdge(name string) error {
	switch name {
	case deadletter.EdgeEndpoint:
		m.ResetEndpoint()
		return nil
	}
	return fmt.Errorf("unknown DeadLetter edge %s", name)
}

// RoutingDecisionMutation represents an operation that mutates the RoutingDecision nodes in the graph.
type RoutingDecisionMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	step_id            *int
	addstep_id         *int
	selected_role      *string
	query_type         *string
	scores             *map[string]float64
	normalized_scores  *map[string]float64
	fallback           *bool
	confidence         *float64
	addconfidence      *float64
	routing_time_us    *int64
	addrouting_time_us *int64
	created_at         *time.Time
	clearedFields      map[string]struct{}
	run                *string
	clearedrun         bool
	done               bool
	oldValue           func(context.Context) (*RoutingDecision, error)
	predicates         []predicate.RoutingDecision
}

var _ ent.Mutation = (*RoutingDecisionMutation)(nil)

// routingdecisionOption allows management of the mutation configuration using functional options.
type routingdecisionOption func(*RoutingDecisionMutation)

// newRoutingDecisionMutation creates new mutation for the RoutingDecision entity.
func newRoutingDecisionMutation(c config, op Op, opts ...routingdecisionOption) *RoutingDecisionMutation {
	m := &RoutingDecisionMutation{
		config:        c,
		op:            op,
		typ:           TypeRoutingDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoutingDecisionID sets the ID field of the mutation.
func withRoutingDecisionID(id int) routingdecisionOption {
	return func(m *RoutingDecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *RoutingDecision
		)
		m.oldValue = func(ctx context.Context) (*RoutingDecision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoutingDecision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoutingDecision sets the old RoutingDecision of the mutation.
func withRoutingDecision(node *RoutingDecision) routingdecisionOption {
	return func(m *RoutingDecisionMutation) {
		m.oldValue = func(context.Context) (*RoutingDecision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoutingDecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoutingDecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoutingDecisionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoutingDecisionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoutingDecision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStepID sets the "step_id" field.
func (m *RoutingDecisionMutation) SetStepID(i int) {
	m.step_id = &i
	m.addstep_id = nil
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *RoutingDecisionMutation) StepID() (r int, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldStepID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// AddStepID adds i to the "step_id" field.
func (m *RoutingDecisionMutation) AddStepID(i int) {
	if m.addstep_id != nil {
		*m.addstep_id += i
	} else {
		m.addstep_id = &i
	}
}

// AddedStepID returns the value that was added to the "step_id" field in this mutation.
func (m *RoutingDecisionMutation) AddedStepID() (r int, exists bool) {
	v := m.addstep_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepID resets all changes to the "step_id" field.
func (m *RoutingDecisionMutation) ResetStepID() {
	m.step_id = nil
	m.addstep_id = nil
}

// SetSelectedRole sets the "selected_role" field.
func (m *RoutingDecisionMutation) SetSelectedRole(s string) {
	m.selected_role = &s
}

// SelectedRole returns the value of the "selected_role" field in the mutation.
func (m *RoutingDecisionMutation) SelectedRole() (r string, exists bool) {
	v := m.selected_role
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedRole returns the old "selected_role" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldSelectedRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedRole: %w", err)
	}
	return oldValue.SelectedRole, nil
}

// ResetSelectedRole resets all changes to the "selected_role" field.
func (m *RoutingDecisionMutation) ResetSelectedRole() {
	m.selected_role = nil
}

// SetQueryType sets the "query_type" field.
func (m *RoutingDecisionMutation) SetQueryType(s string) {
	m.query_type = &s
}

// QueryType returns the value of the "query_type" field in the mutation.
func (m *RoutingDecisionMutation) QueryType() (r string, exists bool) {
	v := m.query_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryType returns the old "query_type" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldQueryType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryType: %w", err)
	}
	return oldValue.QueryType, nil
}

// ClearQueryType clears the value of the "query_type" field.
func (m *RoutingDecisionMutation) ClearQueryType() {
	m.query_type = nil
	m.clearedFields[routingdecision.FieldQueryType] = struct{}{}
}

// QueryTypeCleared returns if the "query_type" field was cleared in this mutation.
func (m *RoutingDecisionMutation) QueryTypeCleared() bool {
	_, ok := m.clearedFields[routingdecision.FieldQueryType]
	return ok
}

// ResetQueryType resets all changes to the "query_type" field.
func (m *RoutingDecisionMutation) ResetQueryType() {
	m.query_type = nil
	delete(m.clearedFields, routingdecision.FieldQueryType)
}

// SetScores sets the "scores" field.
func (m *RoutingDecisionMutation) SetScores(value map[string]float64) {
	m.scores = &value
}

// Scores returns the value of the "scores" field in the mutation.
func (m *RoutingDecisionMutation) Scores() (r map[string]float64, exists bool) {
	v := m.scores
	if v == nil {
		return
	}
	return *v, true
}

// OldScores returns the old "scores" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScores: %w", err)
	}
	return oldValue.Scores, nil
}

// ClearScores clears the value of the "scores" field.
func (m *RoutingDecisionMutation) ClearScores() {
	m.scores = nil
	m.clearedFields[routingdecision.FieldScores] = struct{}{}
}

// ScoresCleared returns if the "scores" field was cleared in this mutation.
func (m *RoutingDecisionMutation) ScoresCleared() bool {
	_, ok := m.clearedFields[routingdecision.FieldScores]
	return ok
}

// ResetScores resets all changes to the "scores" field.
func (m *RoutingDecisionMutation) ResetScores() {
	m.scores = nil
	delete(m.clearedFields, routingdecision.FieldScores)
}

// SetNormalizedScores sets the "normalized_scores" field.
func (m *RoutingDecisionMutation) SetNormalizedScores(value map[string]float64) {
	m.normalized_scores = &value
}

// NormalizedScores returns the value of the "normalized_scores" field in the mutation.
func (m *RoutingDecisionMutation) NormalizedScores() (r map[string]float64, exists bool) {
	v := m.normalized_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedScores returns the old "normalized_scores" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldNormalizedScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedScores: %w", err)
	}
	return oldValue.NormalizedScores, nil
}

// ClearNormalizedScores clears the value of the "normalized_scores" field.
func (m *RoutingDecisionMutation) ClearNormalizedScores() {
	m.normalized_scores = nil
	m.clearedFields[routingdecision.FieldNormalizedScores] = struct{}{}
}

// NormalizedScoresCleared returns if the "normalized_scores" field was cleared in this mutation.
func (m *RoutingDecisionMutation) NormalizedScoresCleared() bool {
	_, ok := m.clearedFields[routingdecision.FieldNormalizedScores]
	return ok
}

// ResetNormalizedScores resets all changes to the "normalized_scores" field.
func (m *RoutingDecisionMutation) ResetNormalizedScores() {
	m.normalized_scores = nil
	delete(m.clearedFields, routingdecision.FieldNormalizedScores)
}

// SetFallback sets the "fallback" field.
func (m *RoutingDecisionMutation) SetFallback(b bool) {
	m.fallback = &b
}

// Fallback returns the value of the "fallback" field in the mutation.
func (m *RoutingDecisionMutation) Fallback() (r bool, exists bool) {
	v := m.fallback
	if v == nil {
		return
	}
	return *v, true
}

// OldFallback returns the old "fallback" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldFallback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFallback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFallback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFallback: %w", err)
	}
	return oldValue.Fallback, nil
}

// ResetFallback resets all changes to the "fallback" field.
func (m *RoutingDecisionMutation) ResetFallback() {
	m.fallback = nil
}

// SetConfidence sets the "confidence" field.
func (m *RoutingDecisionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *RoutingDecisionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *RoutingDecisionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *RoutingDecisionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *RoutingDecisionMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[routingdecision.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *RoutingDecisionMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[routingdecision.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *RoutingDecisionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, routingdecision.FieldConfidence)
}

// SetRoutingTimeUs sets the "routing_time_us" field.
func (m *RoutingDecisionMutation) SetRoutingTimeUs(i int64) {
	m.routing_time_us = &i
	m.addrouting_time_us = nil
}

// RoutingTimeUs returns the value of the "routing_time_us" field in the mutation.
func (m *RoutingDecisionMutation) RoutingTimeUs() (r int64, exists bool) {
	v := m.routing_time_us
	if v == nil {
		return
	}
	return *v, true
}

// OldRoutingTimeUs returns the old "routing_time_us" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldRoutingTimeUs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoutingTimeUs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoutingTimeUs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoutingTimeUs: %w", err)
	}
	return oldValue.RoutingTimeUs, nil
}

// AddRoutingTimeUs adds i to the "routing_time_us" field.
func (m *RoutingDecisionMutation) AddRoutingTimeUs(i int64) {
	if m.addrouting_time_us != nil {
		*m.addrouting_time_us += i
	} else {
		m.addrouting_time_us = &i
	}
}

// AddedRoutingTimeUs returns the value that was added to the "routing_time_us" field in this mutation.
func (m *RoutingDecisionMutation) AddedRoutingTimeUs() (r int64, exists bool) {
	v := m.addrouting_time_us
	if v == nil {
		return
	}
	return *v, true
}

// ClearRoutingTimeUs clears the value of the "routing_time_us" field.
func (m *RoutingDecisionMutation) ClearRoutingTimeUs() {
	m.routing_time_us = nil
	m.addrouting_time_us = nil
	m.clearedFields[routingdecision.FieldRoutingTimeUs] = struct{}{}
}

// RoutingTimeUsCleared returns if the "routing_time_us" field was cleared in this mutation.
func (m *RoutingDecisionMutation) RoutingTimeUsCleared() bool {
	_, ok := m.clearedFields[routingdecision.FieldRoutingTimeUs]
	return ok
}

// ResetRoutingTimeUs resets all changes to the "routing_time_us" field.
func (m *RoutingDecisionMutation) ResetRoutingTimeUs() {
	m.routing_time_us = nil
	m.addrouting_time_us = nil
	delete(m.clearedFields, routingdecision.FieldRoutingTimeUs)
}

// SetCreatedAt sets the "created_at" field.
func (m *RoutingDecisionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoutingDecisionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RoutingDecision entity.
// If the RoutingDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoutingDecisionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoutingDecisionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRunID sets the "run" edge to the Run entity by id.
func (m *RoutingDecisionMutation) SetRunID(id string) {
	m.run = &id
}

// ClearRun clears the "run" edge to the Run entity.
func (m *RoutingDecisionMutation) ClearRun() {
	m.clearedrun = true
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *RoutingDecisionMutation) RunCleared() bool {
	return m.clearedrun
}

// RunID returns the "run" edge ID in the mutation.
func (m *RoutingDecisionMutation) RunID() (id string, exists bool) {
	if m.run != nil {
		return *m.run, true
	}
	return
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *RoutingDecisionMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *RoutingDecisionMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the RoutingDecisionMutation builder.
func (m *RoutingDecisionMutation) Where(ps ...predicate.RoutingDecision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoutingDecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoutingDecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoutingDecision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoutingDecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoutingDecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoutingDecision).
func (m *RoutingDecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoutingDecisionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.step_id != nil {
		fields = append(fields, routingdecision.FieldStepID)
	}
	if m.selected_role != nil {
		fields = append(fields, routingdecision.FieldSelectedRole)
	}
	if m.query_type != nil {
		fields = append(fields, routingdecision.FieldQueryType)
	}
	if m.scores != nil {
		fields = append(fields, routingdecision.FieldScores)
	}
	if m.normalized_scores != nil {
		fields = append(fields, routingdecision.FieldNormalizedScores)
	}
	if m.fallback != nil {
		fields = append(fields, routingdecision.FieldFallback)
	}
	if m.confidence != nil {
		fields = append(fields, routingdecision.FieldConfidence)
	}
	if m.routing_time_us != nil {
		fields = append(fields, routingdecision.FieldRoutingTimeUs)
	}
	if m.created_at != nil {
		fields = append(fields, routingdecision.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoutingDecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case routingdecision.FieldStepID:
		return m.StepID()
	case routingdecision.FieldSelectedRole:
		return m.SelectedRole()
	case routingdecision.FieldQueryType:
		return m.QueryType()
	case routingdecision.FieldScores:
		return m.Scores()
	case routingdecision.FieldNormalizedScores:
		return m.NormalizedScores()
	case routingdecision.FieldFallback:
		return m.Fallback()
	case routingdecision.FieldConfidence:
		return m.Confidence()
	case routingdecision.FieldRoutingTimeUs:
		return m.RoutingTimeUs()
	case routingdecision.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoutingDecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case routingdecision.FieldStepID:
		return m.OldStepID(ctx)
	case routingdecision.FieldSelectedRole:
		return m.OldSelectedRole(ctx)
	case routingdecision.FieldQueryType:
		return m.OldQueryType(ctx)
	case routingdecision.FieldScores:
		return m.OldScores(ctx)
	case routingdecision.FieldNormalizedScores:
		return m.OldNormalizedScores(ctx)
	case routingdecision.FieldFallback:
		return m.OldFallback(ctx)
	case routingdecision.FieldConfidence:
		return m.OldConfidence(ctx)
	case routingdecision.FieldRoutingTimeUs:
		return m.OldRoutingTimeUs(ctx)
	case routingdecision.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RoutingDecision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutingDecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case routingdecision.FieldStepID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case routingdecision.FieldSelectedRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedRole(v)
		return nil
	case routingdecision.FieldQueryType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryType(v)
		return nil
	case routingdecision.FieldScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScores(v)
		return nil
	case routingdecision.FieldNormalizedScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedScores(v)
		return nil
	case routingdecision.FieldFallback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFallback(v)
		return nil
	case routingdecision.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case routingdecision.FieldRoutingTimeUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoutingTimeUs(v)
		return nil
	case routingdecision.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RoutingDecision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoutingDecisionMutation) AddedFields() []string {
	var fields []string
	if m.addstep_id != nil {
		fields = append(fields, routingdecision.FieldStepID)
	}
	if m.addconfidence != nil {
		fields = append(fields, routingdecision.FieldConfidence)
	}
	if m.addrouting_time_us != nil {
		fields = append(fields, routingdecision.FieldRoutingTimeUs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoutingDecisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case routingdecision.FieldStepID:
		return m.AddedStepID()
	case routingdecision.FieldConfidence:
		return m.AddedConfidence()
	case routingdecision.FieldRoutingTimeUs:
		return m.AddedRoutingTimeUs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoutingDecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case routingdecision.FieldStepID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepID(v)
		return nil
	case routingdecision.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case routingdecision.FieldRoutingTimeUs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoutingTimeUs(v)
		return nil
	}
	return fmt.Errorf("unknown RoutingDecision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoutingDecisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(routingdecision.FieldQueryType) {
		fields = append(fields, routingdecision.FieldQueryType)
	}
	if m.FieldCleared(routingdecision.FieldScores) {
		fields = append(fields, routingdecision.FieldScores)
	}
	if m.FieldCleared(routingdecision.FieldNormalizedScores) {
		fields = append(fields, routingdecision.FieldNormalizedScores)
	}
	if m.FieldCleared(routingdecision.FieldConfidence) {
		fields = append(fields, routingdecision.FieldConfidence)
	}
	if m.FieldCleared(routingdecision.FieldRoutingTimeUs) {
		fields = append(fields, routingdecision.FieldRoutingTimeUs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoutingDecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoutingDecisionMutation) ClearField(name string) error {
	switch name {
	case routingdecision.FieldQueryType:
		m.ClearQueryType()
		return nil
	case routingdecision.FieldScores:
		m.ClearScores()
		return nil
	case routingdecision.FieldNormalizedScores:
		m.ClearNormalizedScores()
		return nil
	case routingdecision.FieldConfidence:
		m.ClearConfidence()
		return nil
	case routingdecision.FieldRoutingTimeUs:
		m.ClearRoutingTimeUs()
		return nil
	}
	return fmt.Errorf("unknown RoutingDecision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoutingDecisionMutation) ResetField(name string) error {
	switch name {
	case routingdecision.FieldStepID:
		m.ResetStepID()
		return nil
	case routingdecision.FieldSelectedRole:
		m.ResetSelectedRole()
		return nil
	case routingdecision.FieldQueryType:
		m.ResetQueryType()
		return nil
	case routingdecision.FieldScores:
		m.ResetScores()
		return nil
	case routingdecision.FieldNormalizedScores:
		m.ResetNormalizedScores()
		return nil
	case routingdecision.FieldFallback:
		m.ResetFallback()
		return nil
	case routingdecision.FieldConfidence:
		m.ResetConfidence()
		return nil
	case routingdecision.FieldRoutingTimeUs:
		m.ResetRoutingTimeUs()
		return nil
	case routingdecision.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RoutingDecision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoutingDecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, routingdecision.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoutingDecisionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case routingdecision.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoutingDecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoutingDecisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoutingDecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, routingdecision.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoutingDecisionMutation) EdgeCleared(name string) bool {
	switch name {
	case routingdecision.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoutingDecisionMutation) ClearEdge(name string) error {
	switch name {
	case routingdecision.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown RoutingDecision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoutingDecisionMutation) ResetEdge(name string) error {
	switch name {
	case routingdecision.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown RoutingDecision edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	tenant_id                *string
	correlation_id           *string
	seed                     *int64
	addseed                  *int64
	temperature              *float64
	addtemperature           *float64
	query                    *string
	status                   *run.Status
	termination_reason       *string
	error_message            *string
	created_at               *time.Time
	started_at               *time.Time
	completed_at             *time.Time
	step_count               *int
	addstep_count            *int
	token_total              *int
	addtoken_total           *int
	config_snapshot          *map[string]interface{}
	artifacts_path           *string
	pod_id                   *string
	last_interaction_at      *time.Time
	clearedFields            map[string]struct{}
	steps                    map[int]struct{}
	removedsteps             map[int]struct{}
	clearedsteps             bool
	routing_decisions        map[int]struct{}
	removedrouting_decisions map[int]struct{}
	clearedrouting_decisions bool
	done                     bool
	oldValue                 func(context.Context) (*Run, error)
	predicates               []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id string) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RunMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RunMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RunMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *RunMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *RunMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *RunMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[run.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *RunMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[run.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *RunMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, run.FieldCorrelationID)
}

// SetSeed sets the "seed" field.
func (m *RunMutation) SetSeed(i int64) {
	m.seed = &i
	m.addseed = nil
}

// Seed returns the value of the "seed" field in the mutation.
func (m *RunMutation) Seed() (r int64, exists bool) {
	v := m.seed
	if v == nil {
		return
	}
	return *v, true
}

// OldSeed returns the old "seed" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldSeed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeed: %w", err)
	}
	return oldValue.Seed, nil
}

// AddSeed adds i to the "seed" field.
func (m *RunMutation) AddSeed(i int64) {
	if m.addseed != nil {
		*m.addseed += i
	} else {
		m.addseed = &i
	}
}

// AddedSeed returns the value that was added to the "seed" field in this mutation.
func (m *RunMutation) AddedSeed() (r int64, exists bool) {
	v := m.addseed
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeed resets all changes to the "seed" field.
func (m *RunMutation) ResetSeed() {
	m.seed = nil
	m.addseed = nil
}

// SetTemperature sets the "temperature" field.
func (m *RunMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *RunMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTemperature(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *RunMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *RunMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *RunMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
}

// SetQuery sets the "query" field.
func (m *RunMutation) SetQuery(s string) {
	m.query = &s
}

// Query returns the value of the "query" field in the mutation.
func (m *RunMutation) Query() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQuery returns the old "query" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldQuery(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuery: %w", err)
	}
	return oldValue.Query, nil
}

// ResetQuery resets all changes to the "query" field.
func (m *RunMutation) ResetQuery() {
	m.query = nil
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(r run.Status) {
	m.status = &r
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r run.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v run.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetTerminationReason sets the "termination_reason" field.
func (m *RunMutation) SetTerminationReason(s string) {
	m.termination_reason = &s
}

// TerminationReason returns the value of the "termination_reason" field in the mutation.
func (m *RunMutation) TerminationReason() (r string, exists bool) {
	v := m.termination_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminationReason returns the old "termination_reason" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTerminationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminationReason: %w", err)
	}
	return oldValue.TerminationReason, nil
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (m *RunMutation) ClearTerminationReason() {
	m.termination_reason = nil
	m.clearedFields[run.FieldTerminationReason] = struct{}{}
}

// TerminationReasonCleared returns if the "termination_reason" field was cleared in this mutation.
func (m *RunMutation) TerminationReasonCleared() bool {
	_, ok := m.clearedFields[run.FieldTerminationReason]
	return ok
}

// ResetTerminationReason resets all changes to the "termination_reason" field.
func (m *RunMutation) ResetTerminationReason() {
	m.termination_reason = nil
	delete(m.clearedFields, run.FieldTerminationReason)
}

// SetErrorMessage sets the "error_message" field.
func (m *RunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[run.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[run.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, run.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *RunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RunMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[run.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RunMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, run.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[run.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, run.FieldCompletedAt)
}

// SetStepCount sets the "step_count" field.
func (m *RunMutation) SetStepCount(i int) {
	m.step_count = &i
	m.addstep_count = nil
}

// StepCount returns the value of the "step_count" field in the mutation.
func (m *RunMutation) StepCount() (r int, exists bool) {
	v := m.step_count
	if v == nil {
		return
	}
	return *v, true
}

// OldStepCount returns the old "step_count" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStepCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepCount: %w", err)
	}
	return oldValue.StepCount, nil
}

// AddStepCount adds i to the "step_count" field.
func (m *RunMutation) AddStepCount(i int) {
	if m.addstep_count != nil {
		*m.addstep_count += i
	} else {
		m.addstep_count = &i
	}
}

// AddedStepCount returns the value that was added to the "step_count" field in this mutation.
func (m *RunMutation) AddedStepCount() (r int, exists bool) {
	v := m.addstep_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepCount resets all changes to the "step_count" field.
func (m *RunMutation) ResetStepCount() {
	m.step_count = nil
	m.addstep_count = nil
}

// SetTokenTotal sets the "token_total" field.
func (m *RunMutation) SetTokenTotal(i int) {
	m.token_total = &i
	m.addtoken_total = nil
}

// TokenTotal returns the value of the "token_total" field in the mutation.
func (m *RunMutation) TokenTotal() (r int, exists bool) {
	v := m.token_total
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenTotal returns the old "token_total" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTokenTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenTotal: %w", err)
	}
	return oldValue.TokenTotal, nil
}

// AddTokenTotal adds i to the "token_total" field.
func (m *RunMutation) AddTokenTotal(i int) {
	if m.addtoken_total != nil {
		*m.addtoken_total += i
	} else {
		m.addtoken_total = &i
	}
}

// AddedTokenTotal returns the value that was added to the "token_total" field in this mutation.
func (m *RunMutation) AddedTokenTotal() (r int, exists bool) {
	v := m.addtoken_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenTotal resets all changes to the "token_total" field.
func (m *RunMutation) ResetTokenTotal() {
	m.token_total = nil
	m.addtoken_total = nil
}

// SetConfigSnapshot sets the "config_snapshot" field.
func (m *RunMutation) SetConfigSnapshot(value map[string]interface{}) {
	m.config_snapshot = &value
}

// ConfigSnapshot returns the value of the "config_snapshot" field in the mutation.
func (m *RunMutation) ConfigSnapshot() (r map[string]interface{}, exists bool) {
	v := m.config_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigSnapshot returns the old "config_snapshot" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldConfigSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigSnapshot: %w", err)
	}
	return oldValue.ConfigSnapshot, nil
}

// ClearConfigSnapshot clears the value of the "config_snapshot" field.
func (m *RunMutation) ClearConfigSnapshot() {
	m.config_snapshot = nil
	m.clearedFields[run.FieldConfigSnapshot] = struct{}{}
}

// ConfigSnapshotCleared returns if the "config_snapshot" field was cleared in this mutation.
func (m *RunMutation) ConfigSnapshotCleared() bool {
	_, ok := m.clearedFields[run.FieldConfigSnapshot]
	return ok
}

// ResetConfigSnapshot resets all changes to the "config_snapshot" field.
func (m *RunMutation) ResetConfigSnapshot() {
	m.config_snapshot = nil
	delete(m.clearedFields, run.FieldConfigSnapshot)
}

// SetArtifactsPath sets the "artifacts_path" field.
func (m *RunMutation) SetArtifactsPath(s string) {
	m.artifacts_path = &s
}

// ArtifactsPath returns the value of the "artifacts_path" field in the mutation.
func (m *RunMutation) ArtifactsPath() (r string, exists bool) {
	v := m.artifacts_path
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactsPath returns the old "artifacts_path" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldArtifactsPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactsPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactsPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactsPath: %w", err)
	}
	return oldValue.ArtifactsPath, nil
}

// ClearArtifactsPath clears the value of the "artifacts_path" field.
func (m *RunMutation) ClearArtifactsPath() {
	m.artifacts_path = nil
	m.clearedFields[run.FieldArtifactsPath] = struct{}{}
}

// ArtifactsPathCleared returns if the "artifacts_path" field was cleared in this mutation.
func (m *RunMutation) ArtifactsPathCleared() bool {
	_, ok := m.clearedFields[run.FieldArtifactsPath]
	return ok
}

// ResetArtifactsPath resets all changes to the "artifacts_path" field.
func (m *RunMutation) ResetArtifactsPath() {
	m.artifacts_path = nil
	delete(m.clearedFields, run.FieldArtifactsPath)
}

// SetPodID sets the "pod_id" field.
func (m *RunMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *RunMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *RunMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[run.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *RunMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[run.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *RunMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, run.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *RunMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *RunMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *RunMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[run.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *RunMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[run.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *RunMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, run.FieldLastInteractionAt)
}

// AddStepIDs adds the "steps" edge to the StepExecution entity by ids.
func (m *RunMutation) AddStepIDs(ids ...int) {
	if m.steps == nil {
		m.steps = make(map[int]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the StepExecution entity.
func (m *RunMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the StepExecution entity was cleared.
func (m *RunMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the StepExecution entity by IDs.
func (m *RunMutation) RemoveStepIDs(ids ...int) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the StepExecution entity.
func (m *RunMutation) RemovedStepsIDs() (ids []int) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *RunMutation) StepsIDs() (ids []int) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *RunMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddRoutingDecisionIDs adds the "routing_decisions" edge to the RoutingDecision entity by ids.
func (m *RunMutation) AddRoutingDecisionIDs(ids ...int) {
	if m.routing_decisions == nil {
		m.routing_decisions = make(map[int]struct{})
	}
	for i := range ids {
		m.routing_decisions[ids[i]] = struct{}{}
	}
}

// ClearRoutingDecisions clears the "routing_decisions" edge to the RoutingDecision entity.
func (m *RunMutation) ClearRoutingDecisions() {
	m.clearedrouting_decisions = true
}

// RoutingDecisionsCleared reports if the "routing_decisions" edge to the RoutingDecision entity was cleared.
func (m *RunMutation) RoutingDecisionsCleared() bool {
	return m.clearedrouting_decisions
}

// RemoveRoutingDecisionIDs removes the "routing_decisions" edge to the RoutingDecision entity by IDs.
func (m *RunMutation) RemoveRoutingDecisionIDs(ids ...int) {
	if m.removedrouting_decisions == nil {
		m.removedrouting_decisions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.routing_decisions, ids[i])
		m.removedrouting_decisions[ids[i]] = struct{}{}
	}
}

// RemovedRoutingDecisions returns the removed IDs of the "routing_decisions" edge to the RoutingDecision entity.
func (m *RunMutation) RemovedRoutingDecisionsIDs() (ids []int) {
	for id := range m.removedrouting_decisions {
		ids = append(ids, id)
	}
	return
}

// RoutingDecisionsIDs returns the "routing_decisions" edge IDs in the mutation.
func (m *RunMutation) RoutingDecisionsIDs() (ids []int) {
	for id := range m.routing_decisions {
		ids = append(ids, id)
	}
	return
}

// ResetRoutingDecisions resets all changes to the "routing_decisions" edge.
func (m *RunMutation) ResetRoutingDecisions() {
	m.routing_decisions = nil
	m.clearedrouting_decisions = false
	m.removedrouting_decisions = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.tenant_id != nil {
		fields = append(fields, run.FieldTenantID)
	}
	if m.correlation_id != nil {
		fields = append(fields, run.FieldCorrelationID)
	}
	if m.seed != nil {
		fields = append(fields, run.FieldSeed)
	}
	if m.temperature != nil {
		fields = append(fields, run.FieldTemperature)
	}
	if m.query != nil {
		fields = append(fields, run.FieldQuery)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.termination_reason != nil {
		fields = append(fields, run.FieldTerminationReason)
	}
	if m.error_message != nil {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, run.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.step_count != nil {
		fields = append(fields, run.FieldStepCount)
	}
	if m.token_total != nil {
		fields = append(fields, run.FieldTokenTotal)
	}
	if m.config_snapshot != nil {
		fields = append(fields, run.FieldConfigSnapshot)
	}
	if m.artifacts_path != nil {
		fields = append(fields, run.FieldArtifactsPath)
	}
	if m.pod_id != nil {
		fields = append(fields, run.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, run.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldTenantID:
		return m.TenantID()
	case run.FieldCorrelationID:
		return m.CorrelationID()
	case run.FieldSeed:
		return m.Seed()
	case run.FieldTemperature:
		return m.Temperature()
	case run.FieldQuery:
		return m.Query()
	case run.FieldStatus:
		return m.Status()
	case run.FieldTerminationReason:
		return m.TerminationReason()
	case run.FieldErrorMessage:
		return m.ErrorMessage()
	case run.FieldCreatedAt:
		return m.CreatedAt()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldCompletedAt:
		return m.CompletedAt()
	case run.FieldStepCount:
		return m.StepCount()
	case run.FieldTokenTotal:
		return m.TokenTotal()
	case run.FieldConfigSnapshot:
		return m.ConfigSnapshot()
	case run.FieldArtifactsPath:
		return m.ArtifactsPath()
	case run.FieldPodID:
		return m.PodID()
	case run.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldTenantID:
		return m.OldTenantID(ctx)
	case run.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case run.FieldSeed:
		return m.OldSeed(ctx)
	case run.FieldTemperature:
		return m.OldTemperature(ctx)
	case run.FieldQuery:
		return m.OldQuery(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldTerminationReason:
		return m.OldTerminationReason(ctx)
	case run.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case run.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case run.FieldStepCount:
		return m.OldStepCount(ctx)
	case run.FieldTokenTotal:
		return m.OldTokenTotal(ctx)
	case run.FieldConfigSnapshot:
		return m.OldConfigSnapshot(ctx)
	case run.FieldArtifactsPath:
		return m.OldArtifactsPath(ctx)
	case run.FieldPodID:
		return m.OldPodID(ctx)
	case run.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case run.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case run.FieldSeed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeed(v)
		return nil
	case run.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case run.FieldQuery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuery(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(run.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldTerminationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminationReason(v)
		return nil
	case run.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case run.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case run.FieldStepCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepCount(v)
		return nil
	case run.FieldTokenTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenTotal(v)
		return nil
	case run.FieldConfigSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigSnapshot(v)
		return nil
	case run.FieldArtifactsPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactsPath(v)
		return nil
	case run.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case run.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	var fields []string
	if m.addseed != nil {
		fields = append(fields, run.FieldSeed)
	}
	if m.addtemperature != nil {
		fields = append(fields, run.FieldTemperature)
	}
	if m.addstep_count != nil {
		fields = append(fields, run.FieldStepCount)
	}
	if m.addtoken_total != nil {
		fields = append(fields, run.FieldTokenTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case run.FieldSeed:
		return m.AddedSeed()
	case run.FieldTemperature:
		return m.AddedTemperature()
	case run.FieldStepCount:
		return m.AddedStepCount()
	case run.FieldTokenTotal:
		return m.AddedTokenTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case run.FieldSeed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeed(v)
		return nil
	case run.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case run.FieldStepCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepCount(v)
		return nil
	case run.FieldTokenTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenTotal(v)
		return nil
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldCorrelationID) {
		fields = append(fields, run.FieldCorrelationID)
	}
	if m.FieldCleared(run.FieldTerminationReason) {
		fields = append(fields, run.FieldTerminationReason)
	}
	if m.FieldCleared(run.FieldErrorMessage) {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.FieldCleared(run.FieldStartedAt) {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.FieldCleared(run.FieldCompletedAt) {
		fields = append(fields, run.FieldCompletedAt)
	}
	if m.FieldCleared(run.FieldConfigSnapshot) {
		fields = append(fields, run.FieldConfigSnapshot)
	}
	if m.FieldCleared(run.FieldArtifactsPath) {
		fields = append(fields, run.FieldArtifactsPath)
	}
	if m.FieldCleared(run.FieldPodID) {
		fields = append(fields, run.FieldPodID)
	}
	if m.FieldCleared(run.FieldLastInteractionAt) {
		fields = append(fields, run.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	case run.FieldTerminationReason:
		m.ClearTerminationReason()
		return nil
	case run.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case run.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case run.FieldConfigSnapshot:
		m.ClearConfigSnapshot()
		return nil
	case run.FieldArtifactsPath:
		m.ClearArtifactsPath()
		return nil
	case run.FieldPodID:
		m.ClearPodID()
		return nil
	case run.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldTenantID:
		m.ResetTenantID()
		return nil
	case run.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case run.FieldSeed:
		m.ResetSeed()
		return nil
	case run.FieldTemperature:
		m.ResetTemperature()
		return nil
	case run.FieldQuery:
		m.ResetQuery()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldTerminationReason:
		m.ResetTerminationReason()
		return nil
	case run.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case run.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case run.FieldStepCount:
		m.ResetStepCount()
		return nil
	case run.FieldTokenTotal:
		m.ResetTokenTotal()
		return nil
	case run.FieldConfigSnapshot:
		m.ResetConfigSnapshot()
		return nil
	case run.FieldArtifactsPath:
		m.ResetArtifactsPath()
		return nil
	case run.FieldPodID:
		m.ResetPodID()
		return nil
	case run.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.steps != nil {
		edges = append(edges, run.EdgeSteps)
	}
	if m.routing_decisions != nil {
		edges = append(edges, run.EdgeRoutingDecisions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeRoutingDecisions:
		ids := make([]ent.Value, 0, len(m.routing_decisions))
		for id := range m.routing_decisions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsteps != nil {
		edges = append(edges, run.EdgeSteps)
	}
	if m.removedrouting_decisions != nil {
		edges = append(edges, run.EdgeRoutingDecisions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case run.EdgeRoutingDecisions:
		ids := make([]ent.Value, 0, len(m.removedrouting_decisions))
		for id := range m.removedrouting_decisions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsteps {
		edges = append(edges, run.EdgeSteps)
	}
	if m.clearedrouting_decisions {
		edges = append(edges, run.EdgeRoutingDecisions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeSteps:
		return m.clearedsteps
	case run.EdgeRoutingDecisions:
		return m.clearedrouting_decisions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeSteps:
		m.ResetSteps()
		return nil
	case run.EdgeRoutingDecisions:
		m.ResetRoutingDecisions()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}

// StepExecutionMutation represents an operation that mutates the StepExecution nodes in the graph.
type StepExecutionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	step_id        *int
	addstep_id     *int
	question       *string
	role           *string
	status         *stepexecution.Status
	attempt        *int
	addattempt     *int
	output         *string
	confidence     *float64
	addconfidence  *float64
	tokens_used    *int
	addtokens_used *int
	from_cache     *bool
	step_signature *string
	error_message  *string
	created_at     *time.Time
	started_at     *time.Time
	completed_at   *time.Time
	clearedFields  map[string]struct{}
	run            *string
	clearedrun     bool
	done           bool
	oldValue       func(context.Context) (*StepExecution, error)
	predicates     []predicate.StepExecution
}

var _ ent.Mutation = (*StepExecutionMutation)(nil)

// stepexecutionOption allows management of the mutation configuration using functional options.
type stepexecutionOption func(*StepExecutionMutation)

// newStepExecutionMutation creates new mutation for the StepExecution entity.
func newStepExecutionMutation(c config, op Op, opts ...stepexecutionOption) *StepExecutionMutation {
	m := &StepExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeStepExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepExecutionID sets the ID field of the mutation.
func withStepExecutionID(id int) stepexecutionOption {
	return func(m *StepExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *StepExecution
		)
		m.oldValue = func(ctx context.Context) (*StepExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StepExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStepExecution sets the old StepExecution of the mutation.
func withStepExecution(node *StepExecution) stepexecutionOption {
	return func(m *StepExecutionMutation) {
		m.oldValue = func(context.Context) (*StepExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepExecutionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepExecutionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StepExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStepID sets the "step_id" field.
func (m *StepExecutionMutation) SetStepID(i int) {
	m.step_id = &i
	m.addstep_id = nil
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *StepExecutionMutation) StepID() (r int, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldStepID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// AddStepID adds i to the "step_id" field.
func (m *StepExecutionMutation) AddStepID(i int) {
	if m.addstep_id != nil {
		*m.addstep_id += i
	} else {
		m.addstep_id = &i
	}
}

// AddedStepID returns the value that was added to the "step_id" field in this mutation.
func (m *StepExecutionMutation) AddedStepID() (r int, exists bool) {
	v := m.addstep_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepID resets all changes to the "step_id" field.
func (m *StepExecutionMutation) ResetStepID() {
	m.step_id = nil
	m.addstep_id = nil
}

// SetQuestion sets the "question" field.
func (m *StepExecutionMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *StepExecutionMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *StepExecutionMutation) ResetQuestion() {
	m.question = nil
}

// SetRole sets the "role" field.
func (m *StepExecutionMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *StepExecutionMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *StepExecutionMutation) ClearRole() {
	m.role = nil
	m.clearedFields[stepexecution.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *StepExecutionMutation) RoleCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *StepExecutionMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, stepexecution.FieldRole)
}

// SetStatus sets the "status" field.
func (m *StepExecutionMutation) SetStatus(s stepexecution.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StepExecutionMutation) Status() (r stepexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldStatus(ctx context.Context) (v stepexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StepExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetAttempt sets the "attempt" field.
func (m *StepExecutionMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *StepExecutionMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *StepExecutionMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *StepExecutionMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *StepExecutionMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetOutput sets the "output" field.
func (m *StepExecutionMutation) SetOutput(s string) {
	m.output = &s
}

// Output returns the value of the "output" field in the mutation.
func (m *StepExecutionMutation) Output() (r string, exists bool) {
	v := m.output
	if v == nil {
		return
	}
	return *v, true
}

// OldOutput returns the old "output" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldOutput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutput: %w", err)
	}
	return oldValue.Output, nil
}

// ClearOutput clears the value of the "output" field.
func (m *StepExecutionMutation) ClearOutput() {
	m.output = nil
	m.clearedFields[stepexecution.FieldOutput] = struct{}{}
}

// OutputCleared returns if the "output" field was cleared in this mutation.
func (m *StepExecutionMutation) OutputCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldOutput]
	return ok
}

// ResetOutput resets all changes to the "output" field.
func (m *StepExecutionMutation) ResetOutput() {
	m.output = nil
	delete(m.clearedFields, stepexecution.FieldOutput)
}

// SetConfidence sets the "confidence" field.
func (m *StepExecutionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *StepExecutionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *StepExecutionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *StepExecutionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *StepExecutionMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[stepexecution.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *StepExecutionMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *StepExecutionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, stepexecution.FieldConfidence)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *StepExecutionMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *StepExecutionMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *StepExecutionMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *StepExecutionMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *StepExecutionMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetFromCache sets the "from_cache" field.
func (m *StepExecutionMutation) SetFromCache(b bool) {
	m.from_cache = &b
}

// FromCache returns the value of the "from_cache" field in the mutation.
func (m *StepExecutionMutation) FromCache() (r bool, exists bool) {
	v := m.from_cache
	if v == nil {
		return
	}
	return *v, true
}

// OldFromCache returns the old "from_cache" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldFromCache(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromCache is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromCache requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromCache: %w", err)
	}
	return oldValue.FromCache, nil
}

// ResetFromCache resets all changes to the "from_cache" field.
func (m *StepExecutionMutation) ResetFromCache() {
	m.from_cache = nil
}

// SetStepSignature sets the "step_signature" field.
func (m *StepExecutionMutation) SetStepSignature(s string) {
	m.step_signature = &s
}

// StepSignature returns the value of the "step_signature" field in the mutation.
func (m *StepExecutionMutation) StepSignature() (r string, exists bool) {
	v := m.step_signature
	if v == nil {
		return
	}
	return *v, true
}

// OldStepSignature returns the old "step_signature" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldStepSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepSignature: %w", err)
	}
	return oldValue.StepSignature, nil
}

// ClearStepSignature clears the value of the "step_signature" field.
func (m *StepExecutionMutation) ClearStepSignature() {
	m.step_signature = nil
	m.clearedFields[stepexecution.FieldStepSignature] = struct{}{}
}

// StepSignatureCleared returns if the "step_signature" field was cleared in this mutation.
func (m *StepExecutionMutation) StepSignatureCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldStepSignature]
	return ok
}

// ResetStepSignature resets all changes to the "step_signature" field.
func (m *StepExecutionMutation) ResetStepSignature() {
	m.step_signature = nil
	delete(m.clearedFields, stepexecution.FieldStepSignature)
}

// SetErrorMessage sets the "error_message" field.
func (m *StepExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StepExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StepExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[stepexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StepExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StepExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, stepexecution.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *StepExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StepExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StepExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StepExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StepExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[stepexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StepExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StepExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, stepexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StepExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StepExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StepExecution entity.
// If the StepExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StepExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[stepexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StepExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[stepexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StepExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, stepexecution.FieldCompletedAt)
}

// SetRunID sets the "run" edge to the Run entity by id.
func (m *StepExecutionMutation) SetRunID(id string) {
	m.run = &id
}

// ClearRun clears the "run" edge to the Run entity.
func (m *StepExecutionMutation) ClearRun() {
	m.clearedrun = true
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *StepExecutionMutation) RunCleared() bool {
	return m.clearedrun
}

// RunID returns the "run" edge ID in the mutation.
func (m *StepExecutionMutation) RunID() (id string, exists bool) {
	if m.run != nil {
		return *m.run, true
	}
	return
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *StepExecutionMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *StepExecutionMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the StepExecutionMutation builder.
func (m *StepExecutionMutation) Where(ps ...predicate.StepExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StepExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StepExecution).
func (m *StepExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepExecutionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.step_id != nil {
		fields = append(fields, stepexecution.FieldStepID)
	}
	if m.question != nil {
		fields = append(fields, stepexecution.FieldQuestion)
	}
	if m.role != nil {
		fields = append(fields, stepexecution.FieldRole)
	}
	if m.status != nil {
		fields = append(fields, stepexecution.FieldStatus)
	}
	if m.attempt != nil {
		fields = append(fields, stepexecution.FieldAttempt)
	}
	if m.output != nil {
		fields = append(fields, stepexecution.FieldOutput)
	}
	if m.confidence != nil {
		fields = append(fields, stepexecution.FieldConfidence)
	}
	if m.tokens_used != nil {
		fields = append(fields, stepexecution.FieldTokensUsed)
	}
	if m.from_cache != nil {
		fields = append(fields, stepexecution.FieldFromCache)
	}
	if m.step_signature != nil {
		fields = append(fields, stepexecution.FieldStepSignature)
	}
	if m.error_message != nil {
		fields = append(fields, stepexecution.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, stepexecution.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, stepexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, stepexecution.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stepexecution.FieldStepID:
		return m.StepID()
	case stepexecution.FieldQuestion:
		return m.Question()
	case stepexecution.FieldRole:
		return m.Role()
	case stepexecution.FieldStatus:
		return m.Status()
	case stepexecution.FieldAttempt:
		return m.Attempt()
	case stepexecution.FieldOutput:
		return m.Output()
	case stepexecution.FieldConfidence:
		return m.Confidence()
	case stepexecution.FieldTokensUsed:
		return m.TokensUsed()
	case stepexecution.FieldFromCache:
		return m.FromCache()
	case stepexecution.FieldStepSignature:
		return m.StepSignature()
	case stepexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case stepexecution.FieldCreatedAt:
		return m.CreatedAt()
	case stepexecution.FieldStartedAt:
		return m.StartedAt()
	case stepexecution.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stepexecution.FieldStepID:
		return m.OldStepID(ctx)
	case stepexecution.FieldQuestion:
		return m.OldQuestion(ctx)
	case stepexecution.FieldRole:
		return m.OldRole(ctx)
	case stepexecution.FieldStatus:
		return m.OldStatus(ctx)
	case stepexecution.FieldAttempt:
		return m.OldAttempt(ctx)
	case stepexecution.FieldOutput:
		return m.OldOutput(ctx)
	case stepexecution.FieldConfidence:
		return m.OldConfidence(ctx)
	case stepexecution.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case stepexecution.FieldFromCache:
		return m.OldFromCache(ctx)
	case stepexecution.FieldStepSignature:
		return m.OldStepSignature(ctx)
	case stepexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case stepexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case stepexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case stepexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StepExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stepexecution.FieldStepID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case stepexecution.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case stepexecution.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case stepexecution.FieldStatus:
		v, ok := value.(stepexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stepexecution.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case stepexecution.FieldOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutput(v)
		return nil
	case stepexecution.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case stepexecution.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case stepexecution.FieldFromCache:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromCache(v)
		return nil
	case stepexecution.FieldStepSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepSignature(v)
		return nil
	case stepexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case stepexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case stepexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case stepexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StepExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addstep_id != nil {
		fields = append(fields, stepexecution.FieldStepID)
	}
	if m.addattempt != nil {
		fields = append(fields, stepexecution.FieldAttempt)
	}
	if m.addconfidence != nil {
		fields = append(fields, stepexecution.FieldConfidence)
	}
	if m.addtokens_used != nil {
		fields = append(fields, stepexecution.FieldTokensUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stepexecution.FieldStepID:
		return m.AddedStepID()
	case stepexecution.FieldAttempt:
		return m.AddedAttempt()
	case stepexecution.FieldConfidence:
		return m.AddedConfidence()
	case stepexecution.FieldTokensUsed:
		return m.AddedTokensUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stepexecution.FieldStepID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepID(v)
		return nil
	case stepexecution.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case stepexecution.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case stepexecution.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	}
	return fmt.Errorf("unknown StepExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stepexecution.FieldRole) {
		fields = append(fields, stepexecution.FieldRole)
	}
	if m.FieldCleared(stepexecution.FieldOutput) {
		fields = append(fields, stepexecution.FieldOutput)
	}
	if m.FieldCleared(stepexecution.FieldConfidence) {
		fields = append(fields, stepexecution.FieldConfidence)
	}
	if m.FieldCleared(stepexecution.FieldStepSignature) {
		fields = append(fields, stepexecution.FieldStepSignature)
	}
	if m.FieldCleared(stepexecution.FieldErrorMessage) {
		fields = append(fields, stepexecution.FieldErrorMessage)
	}
	if m.FieldCleared(stepexecution.FieldStartedAt) {
		fields = append(fields, stepexecution.FieldStartedAt)
	}
	if m.FieldCleared(stepexecution.FieldCompletedAt) {
		fields = append(fields, stepexecution.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepExecutionMutation) ClearField(name string) error {
	switch name {
	case stepexecution.FieldRole:
		m.ClearRole()
		return nil
	case stepexecution.FieldOutput:
		m.ClearOutput()
		return nil
	case stepexecution.FieldConfidence:
		m.ClearConfidence()
		return nil
	case stepexecution.FieldStepSignature:
		m.ClearStepSignature()
		return nil
	case stepexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case stepexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case stepexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown StepExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepExecutionMutation) ResetField(name string) error {
	switch name {
	case stepexecution.FieldStepID:
		m.ResetStepID()
		return nil
	case stepexecution.FieldQuestion:
		m.ResetQuestion()
		return nil
	case stepexecution.FieldRole:
		m.ResetRole()
		return nil
	case stepexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case stepexecution.FieldAttempt:
		m.ResetAttempt()
		return nil
	case stepexecution.FieldOutput:
		m.ResetOutput()
		return nil
	case stepexecution.FieldConfidence:
		m.ResetConfidence()
		return nil
	case stepexecution.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case stepexecution.FieldFromCache:
		m.ResetFromCache()
		return nil
	case stepexecution.FieldStepSignature:
		m.ResetStepSignature()
		return nil
	case stepexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case stepexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case stepexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case stepexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown StepExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, stepexecution.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stepexecution.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, stepexecution.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case stepexecution.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepExecutionMutation) ClearEdge(name string) error {
	switch name {
	case stepexecution.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown StepExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepExecutionMutation) ResetEdge(name string) error {
	switch name {
	case stepexecution.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown StepExecution edge %s", name)
}

// WebhookDeliveryMutation represents an operation that mutates the WebhookDelivery nodes in the graph.
type WebhookDeliveryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	event_type          *string
	payload             *string
	status              *webhookdelivery.Status
	attempts            *int
	addattempts         *int
	last_status_code    *int
	addlast_status_code *int
	last_error          *string
	next_attempt_at     *time.Time
	delivered_at        *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	endpoint            *string
	clearedendpoint     bool
	done                bool
	oldValue            func(context.Context) (*WebhookDelivery, error)
	predicates          []predicate.WebhookDelivery
}

var _ ent.Mutation = (*WebhookDeliveryMutation)(nil)

// webhookdeliveryOption allows management of the mutation configuration using functional options.
type webhookdeliveryOption func(*WebhookDeliveryMutation)

// newWebhookDeliveryMutation creates new mutation for the WebhookDelivery entity.
func newWebhookDeliveryMutation(c config, op Op, opts ...webhookdeliveryOption) *WebhookDeliveryMutation {
	m := &WebhookDeliveryMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookDelivery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookDeliveryID sets the ID field of the mutation.
func withWebhookDeliveryID(id string) webhookdeliveryOption {
	return func(m *WebhookDeliveryMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookDelivery
		)
		m.oldValue = func(ctx context.Context) (*WebhookDelivery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookDelivery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookDelivery sets the old WebhookDelivery of the mutation.
func withWebhookDelivery(node *WebhookDelivery) webhookdeliveryOption {
	return func(m *WebhookDeliveryMutation) {
		m.oldValue = func(context.Context) (*WebhookDelivery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookDeliveryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookDeliveryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookDelivery entities.
func (m *WebhookDeliveryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookDeliveryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookDeliveryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookDelivery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *WebhookDeliveryMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *WebhookDeliveryMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *WebhookDeliveryMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *WebhookDeliveryMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WebhookDeliveryMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *WebhookDeliveryMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *WebhookDeliveryMutation) SetStatus(w webhookdelivery.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WebhookDeliveryMutation) Status() (r webhookdelivery.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldStatus(ctx context.Context) (v webhookdelivery.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WebhookDeliveryMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *WebhookDeliveryMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *WebhookDeliveryMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *WebhookDeliveryMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *WebhookDeliveryMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *WebhookDeliveryMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetLastStatusCode sets the "last_status_code" field.
func (m *WebhookDeliveryMutation) SetLastStatusCode(i int) {
	m.last_status_code = &i
	m.addlast_status_code = nil
}

// LastStatusCode returns the value of the "last_status_code" field in the mutation.
func (m *WebhookDeliveryMutation) LastStatusCode() (r int, exists bool) {
	v := m.last_status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLastStatusCode returns the old "last_status_code" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldLastStatusCode(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastStatusCode: %w", err)
	}
	return oldValue.LastStatusCode, nil
}

// AddLastStatusCode adds i to the "last_status_code" field.
func (m *WebhookDeliveryMutation) AddLastStatusCode(i int) {
	if m.addlast_status_code != nil {
		*m.addlast_status_code += i
	} else {
		m.addlast_status_code = &i
	}
}

// AddedLastStatusCode returns the value that was added to the "last_status_code" field in this mutation.
func (m *WebhookDeliveryMutation) AddedLastStatusCode() (r int, exists bool) {
	v := m.addlast_status_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastStatusCode clears the value of the "last_status_code" field.
func (m *WebhookDeliveryMutation) ClearLastStatusCode() {
	m.last_status_code = nil
	m.addlast_status_code = nil
	m.clearedFields[webhookdelivery.FieldLastStatusCode] = struct{}{}
}

// LastStatusCodeCleared returns if the "last_status_code" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) LastStatusCodeCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldLastStatusCode]
	return ok
}

// ResetLastStatusCode resets all changes to the "last_status_code" field.
func (m *WebhookDeliveryMutation) ResetLastStatusCode() {
	m.last_status_code = nil
	m.addlast_status_code = nil
	delete(m.clearedFields, webhookdelivery.FieldLastStatusCode)
}

// SetLastError sets the "last_error" field.
func (m *WebhookDeliveryMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *WebhookDeliveryMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *WebhookDeliveryMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[webhookdelivery.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *WebhookDeliveryMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, webhookdelivery.FieldLastError)
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *WebhookDeliveryMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *WebhookDeliveryMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldNextAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (m *WebhookDeliveryMutation) ClearNextAttemptAt() {
	m.next_attempt_at = nil
	m.clearedFields[webhookdelivery.FieldNextAttemptAt] = struct{}{}
}

// NextAttemptAtCleared returns if the "next_attempt_at" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) NextAttemptAtCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldNextAttemptAt]
	return ok
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *WebhookDeliveryMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
	delete(m.clearedFields, webhookdelivery.FieldNextAttemptAt)
}

// SetDeliveredAt sets the "delivered_at" field.
func (m *WebhookDeliveryMutation) SetDeliveredAt(t time.Time) {
	m.delivered_at = &t
}

// DeliveredAt returns the value of the "delivered_at" field in the mutation.
func (m *WebhookDeliveryMutation) DeliveredAt() (r time.Time, exists bool) {
	v := m.delivered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredAt returns the old "delivered_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldDeliveredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredAt: %w", err)
	}
	return oldValue.DeliveredAt, nil
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (m *WebhookDeliveryMutation) ClearDeliveredAt() {
	m.delivered_at = nil
	m.clearedFields[webhookdelivery.FieldDeliveredAt] = struct{}{}
}

// DeliveredAtCleared returns if the "delivered_at" field was cleared in this mutation.
func (m *WebhookDeliveryMutation) DeliveredAtCleared() bool {
	_, ok := m.clearedFields[webhookdelivery.FieldDeliveredAt]
	return ok
}

// ResetDeliveredAt resets all changes to the "delivered_at" field.
func (m *WebhookDeliveryMutation) ResetDeliveredAt() {
	m.delivered_at = nil
	delete(m.clearedFields, webhookdelivery.FieldDeliveredAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookDeliveryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookDeliveryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WebhookDelivery entity.
// If the WebhookDelivery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookDeliveryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetEndpointID sets the "endpoint" edge to the WebhookEndpoint entity by id.
func (m *WebhookDeliveryMutation) SetEndpointID(id string) {
	m.endpoint = &id
}

// ClearEndpoint clears the "endpoint" edge to the WebhookEndpoint entity.
func (m *WebhookDeliveryMutation) ClearEndpoint() {
	m.clearedendpoint = true
}

// EndpointCleared reports if the "endpoint" edge to the WebhookEndpoint entity was cleared.
func (m *WebhookDeliveryMutation) EndpointCleared() bool {
	return m.clearedendpoint
}

// EndpointID returns the "endpoint" edge ID in the mutation.
func (m *WebhookDeliveryMutation) EndpointID() (id string, exists bool) {
	if m.endpoint != nil {
		return *m.endpoint, true
	}
	return
}

// EndpointIDs returns the "endpoint" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EndpointID instead. It exists only for internal usage by the builders.
func (m *WebhookDeliveryMutation) EndpointIDs() (ids []string) {
	if id := m.endpoint; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEndpoint resets all changes to the "endpoint" edge.
func (m *WebhookDeliveryMutation) ResetEndpoint() {
	m.endpoint = nil
	m.clearedendpoint = false
}

// Where appends a list predicates to the WebhookDeliveryMutation builder.
func (m *WebhookDeliveryMutation) Where(ps ...predicate.WebhookDelivery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookDeliveryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookDeliveryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookDelivery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookDeliveryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookDeliveryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookDelivery).
func (m *WebhookDeliveryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookDeliveryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.event_type != nil {
		fields = append(fields, webhookdelivery.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, webhookdelivery.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, webhookdelivery.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, webhookdelivery.FieldAttempts)
	}
	if m.last_status_code != nil {
		fields = append(fields, webhookdelivery.FieldLastStatusCode)
	}
	if m.last_error != nil {
		fields = append(fields, webhookdelivery.FieldLastError)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, webhookdelivery.FieldNextAttemptAt)
	}
	if m.delivered_at != nil {
		fields = append(fields, webhookdelivery.FieldDeliveredAt)
	}
	if m.created_at != nil {
		fields = append(fields, webhookdelivery.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookDeliveryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookdelivery.FieldEventType:
		return m.EventType()
	case webhookdelivery.FieldPayload:
		return m.Payload()
	case webhookdelivery.FieldStatus:
		return m.Status()
	case webhookdelivery.FieldAttempts:
		return m.Attempts()
	case webhookdelivery.FieldLastStatusCode:
		return m.LastStatusCode()
	case webhookdelivery.FieldLastError:
		return m.LastError()
	case webhookdelivery.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case webhookdelivery.FieldDeliveredAt:
		return m.DeliveredAt()
	case webhookdelivery.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookDeliveryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookdelivery.FieldEventType:
		return m.OldEventType(ctx)
	case webhookdelivery.FieldPayload:
		return m.OldPayload(ctx)
	case webhookdelivery.FieldStatus:
		return m.OldStatus(ctx)
	case webhookdelivery.FieldAttempts:
		return m.OldAttempts(ctx)
	case webhookdelivery.FieldLastStatusCode:
		return m.OldLastStatusCode(ctx)
	case webhookdelivery.FieldLastError:
		return m.OldLastError(ctx)
	case webhookdelivery.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case webhookdelivery.FieldDeliveredAt:
		return m.OldDeliveredAt(ctx)
	case webhookdelivery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookdelivery.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case webhookdelivery.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case webhookdelivery.FieldStatus:
		v, ok := value.(webhookdelivery.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case webhookdelivery.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case webhookdelivery.FieldLastStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastStatusCode(v)
		return nil
	case webhookdelivery.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case webhookdelivery.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case webhookdelivery.FieldDeliveredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredAt(v)
		return nil
	case webhookdelivery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookDeliveryMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, webhookdelivery.FieldAttempts)
	}
	if m.addlast_status_code != nil {
		fields = append(fields, webhookdelivery.FieldLastStatusCode)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookDeliveryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case webhookdelivery.FieldAttempts:
		return m.AddedAttempts()
	case webhookdelivery.FieldLastStatusCode:
		return m.AddedLastStatusCode()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case webhookdelivery.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case webhookdelivery.FieldLastStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastStatusCode(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookDeliveryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookdelivery.FieldLastStatusCode) {
		fields = append(fields, webhookdelivery.FieldLastStatusCode)
	}
	if m.FieldCleared(webhookdelivery.FieldLastError) {
		fields = append(fields, webhookdelivery.FieldLastError)
	}
	if m.FieldCleared(webhookdelivery.FieldNextAttemptAt) {
		fields = append(fields, webhookdelivery.FieldNextAttemptAt)
	}
	if m.FieldCleared(webhookdelivery.FieldDeliveredAt) {
		fields = append(fields, webhookdelivery.FieldDeliveredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookDeliveryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookDeliveryMutation) ClearField(name string) error {
	switch name {
	case webhookdelivery.FieldLastStatusCode:
		m.ClearLastStatusCode()
		return nil
	case webhookdelivery.FieldLastError:
		m.ClearLastError()
		return nil
	case webhookdelivery.FieldNextAttemptAt:
		m.ClearNextAttemptAt()
		return nil
	case webhookdelivery.FieldDeliveredAt:
		m.ClearDeliveredAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookDeliveryMutation) ResetField(name string) error {
	switch name {
	case webhookdelivery.FieldEventType:
		m.ResetEventType()
		return nil
	case webhookdelivery.FieldPayload:
		m.ResetPayload()
		return nil
	case webhookdelivery.FieldStatus:
		m.ResetStatus()
		return nil
	case webhookdelivery.FieldAttempts:
		m.ResetAttempts()
		return nil
	case webhookdelivery.FieldLastStatusCode:
		m.ResetLastStatusCode()
		return nil
	case webhookdelivery.FieldLastError:
		m.ResetLastError()
		return nil
	case webhookdelivery.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case webhookdelivery.FieldDeliveredAt:
		m.ResetDeliveredAt()
		return nil
	case webhookdelivery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookDeliveryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.endpoint != nil {
		edges = append(edges, webhookdelivery.EdgeEndpoint)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookDeliveryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case webhookdelivery.EdgeEndpoint:
		if id := m.endpoint; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookDeliveryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookDeliveryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookDeliveryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedendpoint {
		edges = append(edges, webhookdelivery.EdgeEndpoint)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookDeliveryMutation) EdgeCleared(name string) bool {
	switch name {
	case webhookdelivery.EdgeEndpoint:
		return m.clearedendpoint
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookDeliveryMutation) ClearEdge(name string) error {
	switch name {
	case webhookdelivery.EdgeEndpoint:
		m.ClearEndpoint()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookDeliveryMutation) ResetEdge(name string) error {
	switch name {
	case webhookdelivery.EdgeEndpoint:
		m.ResetEndpoint()
		return nil
	}
	return fmt.Errorf("unknown WebhookDelivery edge %s", name)
}

// WebhookEndpointMutation represents an operation that mutates the WebhookEndpoint nodes in the graph.
type WebhookEndpointMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	tenant_id           *string
	url                 *string
	events              *[]string
	appendevents        []string
	secret              *string
	active              *bool
	timeout_s           *int
	addtimeout_s        *int
	verify_ssl          *bool
	max_attempts        *int
	addmax_attempts     *int
	headers             *map[string]string
	disabled_reason     *string
	disabled_at         *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	deliveries          map[string]struct{}
	removeddeliveries   map[string]struct{}
	cleareddeliveries   bool
	dead_letters        map[int]struct{}
	removeddead_letters map[int]struct{}
	cleareddead_letters bool
	done                bool
	oldValue            func(context.Context) (*WebhookEndpoint, error)
	predicates          []predicate.WebhookEndpoint
}

var _ ent.Mutation = (*WebhookEndpointMutation)(nil)

// webhookendpointOption allows management of the mutation configuration using functional options.
type webhookendpointOption func(*WebhookEndpointMutation)

// newWebhookEndpointMutation creates new mutation for the WebhookEndpoint entity.
func newWebhookEndpointMutation(c config, op Op, opts ...webhookendpointOption) *WebhookEndpointMutation {
	m := &WebhookEndpointMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookEndpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookEndpointID sets the ID field of the mutation.
func withWebhookEndpointID(id string) webhookendpointOption {
	return func(m *WebhookEndpointMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookEndpoint
		)
		m.oldValue = func(ctx context.Context) (*WebhookEndpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookEndpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookEndpoint sets the old WebhookEndpoint of the mutation.
func withWebhookEndpoint(node *WebhookEndpoint) webhookendpointOption {
	return func(m *WebhookEndpointMutation) {
		m.oldValue = func(context.Context) (*WebhookEndpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookEndpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookEndpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookEndpoint entities.
func (m *WebhookEndpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookEndpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookEndpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookEndpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *WebhookEndpointMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *WebhookEndpointMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *WebhookEndpointMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetURL sets the "url" field.
func (m *WebhookEndpointMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *WebhookEndpointMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *WebhookEndpointMutation) ResetURL() {
	m.url = nil
}

// SetEvents sets the "events" field.
func (m *WebhookEndpointMutation) SetEvents(s []string) {
	m.events = &s
	m.appendevents = nil
}

// Events returns the value of the "events" field in the mutation.
func (m *WebhookEndpointMutation) Events() (r []string, exists bool) {
	v := m.events
	if v == nil {
		return
	}
	return *v, true
}

// OldEvents returns the old "events" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldEvents(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvents: %w", err)
	}
	return oldValue.Events, nil
}

// AppendEvents adds s to the "events" field.
func (m *WebhookEndpointMutation) AppendEvents(s []string) {
	m.appendevents = append(m.appendevents, s...)
}

// AppendedEvents returns the list of values that were appended to the "events" field in this mutation.
func (m *WebhookEndpointMutation) AppendedEvents() ([]string, bool) {
	if len(m.appendevents) == 0 {
		return nil, false
	}
	return m.appendevents, true
}

// ResetEvents resets all changes to the "events" field.
func (m *WebhookEndpointMutation) ResetEvents() {
	m.events = nil
	m.appendevents = nil
}

// SetSecret sets the "secret" field.
func (m *WebhookEndpointMutation) SetSecret(s string) {
	m.secret = &s
}

// Secret returns the value of the "secret" field in the mutation.
func (m *WebhookEndpointMutation) Secret() (r string, exists bool) {
	v := m.secret
	if v == nil {
		return
	}
	return *v, true
}

// OldSecret returns the old "secret" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecret: %w", err)
	}
	return oldValue.Secret, nil
}

// ResetSecret resets all changes to the "secret" field.
func (m *WebhookEndpointMutation) ResetSecret() {
	m.secret = nil
}

// SetActive sets the "active" field.
func (m *WebhookEndpointMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *WebhookEndpointMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *WebhookEndpointMutation) ResetActive() {
	m.active = nil
}

// SetTimeoutS sets the "timeout_s" field.
func (m *WebhookEndpointMutation) SetTimeoutS(i int) {
	m.timeout_s = &i
	m.addtimeout_s = nil
}

// TimeoutS returns the value of the "timeout_s" field in the mutation.
func (m *WebhookEndpointMutation) TimeoutS() (r int, exists bool) {
	v := m.timeout_s
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutS returns the old "timeout_s" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldTimeoutS(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutS: %w", err)
	}
	return oldValue.TimeoutS, nil
}

// AddTimeoutS adds i to the "timeout_s" field.
func (m *WebhookEndpointMutation) AddTimeoutS(i int) {
	if m.addtimeout_s != nil {
		*m.addtimeout_s += i
	} else {
		m.addtimeout_s = &i
	}
}

// AddedTimeoutS returns the value that was added to the "timeout_s" field in this mutation.
func (m *WebhookEndpointMutation) AddedTimeoutS() (r int, exists bool) {
	v := m.addtimeout_s
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutS resets all changes to the "timeout_s" field.
func (m *WebhookEndpointMutation) ResetTimeoutS() {
	m.timeout_s = nil
	m.addtimeout_s = nil
}

// SetVerifySsl sets the "verify_ssl" field.
func (m *WebhookEndpointMutation) SetVerifySsl(b bool) {
	m.verify_ssl = &b
}

// VerifySsl returns the value of the "verify_ssl" field in the mutation.
func (m *WebhookEndpointMutation) VerifySsl() (r bool, exists bool) {
	v := m.verify_ssl
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifySsl returns the old "verify_ssl" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldVerifySsl(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifySsl is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifySsl requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifySsl: %w", err)
	}
	return oldValue.VerifySsl, nil
}

// ResetVerifySsl resets all changes to the "verify_ssl" field.
func (m *WebhookEndpointMutation) ResetVerifySsl() {
	m.verify_ssl = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *WebhookEndpointMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *WebhookEndpointMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *WebhookEndpointMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *WebhookEndpointMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *WebhookEndpointMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetHeaders sets the "headers" field.
func (m *WebhookEndpointMutation) SetHeaders(value map[string]string) {
	m.headers = &value
}

// Headers returns the value of the "headers" field in the mutation.
func (m *WebhookEndpointMutation) Headers() (r map[string]string, exists bool) {
	v := m.headers
	if v == nil {
		return
	}
	return *v, true
}

// OldHeaders returns the old "headers" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldHeaders(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeaders: %w", err)
	}
	return oldValue.Headers, nil
}

// ClearHeaders clears the value of the "headers" field.
func (m *WebhookEndpointMutation) ClearHeaders() {
	m.headers = nil
	m.clearedFields[webhookendpoint.FieldHeaders] = struct{}{}
}

// HeadersCleared returns if the "headers" field was cleared in this mutation.
func (m *WebhookEndpointMutation) HeadersCleared() bool {
	_, ok := m.clearedFields[webhookendpoint.FieldHeaders]
	return ok
}

// ResetHeaders resets all changes to the "headers" field.
func (m *WebhookEndpointMutation) ResetHeaders() {
	m.headers = nil
	delete(m.clearedFields, webhookendpoint.FieldHeaders)
}

// SetDisabledReason sets the "disabled_reason" field.
func (m *WebhookEndpointMutation) SetDisabledReason(s string) {
	m.disabled_reason = &s
}

// DisabledReason returns the value of the "disabled_reason" field in the mutation.
func (m *WebhookEndpointMutation) DisabledReason() (r string, exists bool) {
	v := m.disabled_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldDisabledReason returns the old "disabled_reason" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldDisabledReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisabledReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisabledReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisabledReason: %w", err)
	}
	return oldValue.DisabledReason, nil
}

// ClearDisabledReason clears the value of the "disabled_reason" field.
func (m *WebhookEndpointMutation) ClearDisabledReason() {
	m.disabled_reason = nil
	m.clearedFields[webhookendpoint.FieldDisabledReason] = struct{}{}
}

// DisabledReasonCleared returns if the "disabled_reason" field was cleared in this mutation.
func (m *WebhookEndpointMutation) DisabledReasonCleared() bool {
	_, ok := m.clearedFields[webhookendpoint.FieldDisabledReason]
	return ok
}

// ResetDisabledReason resets all changes to the "disabled_reason" field.
func (m *WebhookEndpointMutation) ResetDisabledReason() {
	m.disabled_reason = nil
	delete(m.clearedFields, webhookendpoint.FieldDisabledReason)
}

// SetDisabledAt sets the "disabled_at" field.
func (m *WebhookEndpointMutation) SetDisabledAt(t time.Time) {
	m.disabled_at = &t
}

// DisabledAt returns the value of the "disabled_at" field in the mutation.
func (m *WebhookEndpointMutation) DisabledAt() (r time.Time, exists bool) {
	v := m.disabled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDisabledAt returns the old "disabled_at" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldDisabledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisabledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisabledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisabledAt: %w", err)
	}
	return oldValue.DisabledAt, nil
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (m *WebhookEndpointMutation) ClearDisabledAt() {
	m.disabled_at = nil
	m.clearedFields[webhookendpoint.FieldDisabledAt] = struct{}{}
}

// DisabledAtCleared returns if the "disabled_at" field was cleared in this mutation.
func (m *WebhookEndpointMutation) DisabledAtCleared() bool {
	_, ok := m.clearedFields[webhookendpoint.FieldDisabledAt]
	return ok
}

// ResetDisabledAt resets all changes to the "disabled_at" field.
func (m *WebhookEndpointMutation) ResetDisabledAt() {
	m.disabled_at = nil
	delete(m.clearedFields, webhookendpoint.FieldDisabledAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookEndpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookEndpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WebhookEndpoint entity.
// If the WebhookEndpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookEndpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookEndpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddDeliveryIDs adds the "deliveries" edge to the WebhookDelivery entity by ids.
func (m *WebhookEndpointMutation) AddDeliveryIDs(ids ...string) {
	if m.deliveries == nil {
		m.deliveries = make(map[string]struct{})
	}
	for i := range ids {
		m.deliveries[ids[i]] = struct{}{}
	}
}

// ClearDeliveries clears the "deliveries" edge to the WebhookDelivery entity.
func (m *WebhookEndpointMutation) ClearDeliveries() {
	m.cleareddeliveries = true
}

// DeliveriesCleared reports if the "deliveries" edge to the WebhookDelivery entity was cleared.
func (m *WebhookEndpointMutation) DeliveriesCleared() bool {
	return m.cleareddeliveries
}

// RemoveDeliveryIDs removes the "deliveries" edge to the WebhookDelivery entity by IDs.
func (m *WebhookEndpointMutation) RemoveDeliveryIDs(ids ...string) {
	if m.removeddeliveries == nil {
		m.removeddeliveries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.deliveries, ids[i])
		m.removeddeliveries[ids[i]] = struct{}{}
	}
}

// RemovedDeliveries returns the removed IDs of the "deliveries" edge to the WebhookDelivery entity.
func (m *WebhookEndpointMutation) RemovedDeliveriesIDs() (ids []string) {
	for id := range m.removeddeliveries {
		ids = append(ids, id)
	}
	return
}

// DeliveriesIDs returns the "deliveries" edge IDs in the mutation.
func (m *WebhookEndpointMutation) DeliveriesIDs() (ids []string) {
	for id := range m.deliveries {
		ids = append(ids, id)
	}
	return
}

// ResetDeliveries resets all changes to the "deliveries" edge.
func (m *WebhookEndpointMutation) ResetDeliveries() {
	m.deliveries = nil
	m.cleareddeliveries = false
	m.removeddeliveries = nil
}

// AddDeadLetterIDs adds the "dead_letters" edge to the DeadLetter entity by ids.
func (m *WebhookEndpointMutation) AddDeadLetterIDs(ids ...int) {
	if m.dead_letters == nil {
		m.dead_letters = make(map[int]struct{})
	}
	for i := range ids {
		m.dead_letters[ids[i]] = struct{}{}
	}
}

// ClearDeadLetters clears the "dead_letters" edge to the DeadLetter entity.
func (m *WebhookEndpointMutation) ClearDeadLetters() {
	m.cleareddead_letters = true
}

// DeadLettersCleared reports if the "dead_letters" edge to the DeadLetter entity was cleared.
func (m *WebhookEndpointMutation) DeadLettersCleared() bool {
	return m.cleareddead_letters
}

// RemoveDeadLetterIDs removes the "dead_letters" edge to the DeadLetter entity by IDs.
func (m *WebhookEndpointMutation) RemoveDeadLetterIDs(ids ...int) {
	if m.removeddead_letters == nil {
		m.removeddead_letters = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.dead_letters, ids[i])
		m.removeddead_letters[ids[i]] = struct{}{}
	}
}

// RemovedDeadLetters returns the removed IDs of the "dead_letters" edge to the DeadLetter entity.
func (m *WebhookEndpointMutation) RemovedDeadLettersIDs() (ids []int) {
	for id := range m.removeddead_letters {
		ids = append(ids, id)
	}
	return
}

// DeadLettersIDs returns the "dead_letters" edge IDs in the mutation.
func (m *WebhookEndpointMutation) DeadLettersIDs() (ids []int) {
	for id := range m.dead_letters {
		ids = append(ids, id)
	}
	return
}

// ResetDeadLetters resets all changes to the "dead_letters" edge.
func (m *WebhookEndpointMutation) ResetDeadLetters() {
	m.dead_letters = nil
	m.cleareddead_letters = false
	m.removeddead_letters = nil
}

// Where appends a list predicates to the WebhookEndpointMutation builder.
func (m *WebhookEndpointMutation) Where(ps ...predicate.WebhookEndpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookEndpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookEndpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookEndpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookEndpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookEndpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookEndpoint).
func (m *WebhookEndpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookEndpointMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.tenant_id != nil {
		fields = append(fields, webhookendpoint.FieldTenantID)
	}
	if m.url != nil {
		fields = append(fields, webhookendpoint.FieldURL)
	}
	if m.events != nil {
		fields = append(fields, webhookendpoint.FieldEvents)
	}
	if m.secret != nil {
		fields = append(fields, webhookendpoint.FieldSecret)
	}
	if m.active != nil {
		fields = append(fields, webhookendpoint.FieldActive)
	}
	if m.timeout_s != nil {
		fields = append(fields, webhookendpoint.FieldTimeoutS)
	}
	if m.verify_ssl != nil {
		fields = append(fields, webhookendpoint.FieldVerifySsl)
	}
	if m.max_attempts != nil {
		fields = append(fields, webhookendpoint.FieldMaxAttempts)
	}
	if m.headers != nil {
		fields = append(fields, webhookendpoint.FieldHeaders)
	}
	if m.disabled_reason != nil {
		fields = append(fields, webhookendpoint.FieldDisabledReason)
	}
	if m.disabled_at != nil {
		fields = append(fields, webhookendpoint.FieldDisabledAt)
	}
	if m.created_at != nil {
		fields = append(fields, webhookendpoint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookEndpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookendpoint.FieldTenantID:
		return m.TenantID()
	case webhookendpoint.FieldURL:
		return m.URL()
	case webhookendpoint.FieldEvents:
		return m.Events()
	case webhookendpoint.FieldSecret:
		return m.Secret()
	case webhookendpoint.FieldActive:
		return m.Active()
	case webhookendpoint.FieldTimeoutS:
		return m.TimeoutS()
	case webhookendpoint.FieldVerifySsl:
		return m.VerifySsl()
	case webhookendpoint.FieldMaxAttempts:
		return m.MaxAttempts()
	case webhookendpoint.FieldHeaders:
		return m.Headers()
	case webhookendpoint.FieldDisabledReason:
		return m.DisabledReason()
	case webhookendpoint.FieldDisabledAt:
		return m.DisabledAt()
	case webhookendpoint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookEndpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookendpoint.FieldTenantID:
		return m.OldTenantID(ctx)
	case webhookendpoint.FieldURL:
		return m.OldURL(ctx)
	case webhookendpoint.FieldEvents:
		return m.OldEvents(ctx)
	case webhookendpoint.FieldSecret:
		return m.OldSecret(ctx)
	case webhookendpoint.FieldActive:
		return m.OldActive(ctx)
	case webhookendpoint.FieldTimeoutS:
		return m.OldTimeoutS(ctx)
	case webhookendpoint.FieldVerifySsl:
		return m.OldVerifySsl(ctx)
	case webhookendpoint.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case webhookendpoint.FieldHeaders:
		return m.OldHeaders(ctx)
	case webhookendpoint.FieldDisabledReason:
		return m.OldDisabledReason(ctx)
	case webhookendpoint.FieldDisabledAt:
		return m.OldDisabledAt(ctx)
	case webhookendpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookEndpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEndpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookendpoint.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case webhookendpoint.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case webhookendpoint.FieldEvents:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvents(v)
		return nil
	case webhookendpoint.FieldSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecret(v)
		return nil
	case webhookendpoint.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case webhookendpoint.FieldTimeoutS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutS(v)
		return nil
	case webhookendpoint.FieldVerifySsl:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifySsl(v)
		return nil
	case webhookendpoint.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case webhookendpoint.FieldHeaders:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeaders(v)
		return nil
	case webhookendpoint.FieldDisabledReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisabledReason(v)
		return nil
	case webhookendpoint.FieldDisabledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisabledAt(v)
		return nil
	case webhookendpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookEndpointMutation) AddedFields() []string {
	var fields []string
	if m.addtimeout_s != nil {
		fields = append(fields, webhookendpoint.FieldTimeoutS)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, webhookendpoint.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookEndpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case webhookendpoint.FieldTimeoutS:
		return m.AddedTimeoutS()
	case webhookendpoint.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookEndpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case webhookendpoint.FieldTimeoutS:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutS(v)
		return nil
	case webhookendpoint.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookEndpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookendpoint.FieldHeaders) {
		fields = append(fields, webhookendpoint.FieldHeaders)
	}
	if m.FieldCleared(webhookendpoint.FieldDisabledReason) {
		fields = append(fields, webhookendpoint.FieldDisabledReason)
	}
	if m.FieldCleared(webhookendpoint.FieldDisabledAt) {
		fields = append(fields, webhookendpoint.FieldDisabledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookEndpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookEndpointMutation) ClearField(name string) error {
	switch name {
	case webhookendpoint.FieldHeaders:
		m.ClearHeaders()
		return nil
	case webhookendpoint.FieldDisabledReason:
		m.ClearDisabledReason()
		return nil
	case webhookendpoint.FieldDisabledAt:
		m.ClearDisabledAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookEndpointMutation) ResetField(name string) error {
	switch name {
	case webhookendpoint.FieldTenantID:
		m.ResetTenantID()
		return nil
	case webhookendpoint.FieldURL:
		m.ResetURL()
		return nil
	case webhookendpoint.FieldEvents:
		m.ResetEvents()
		return nil
	case webhookendpoint.FieldSecret:
		m.ResetSecret()
		return nil
	case webhookendpoint.FieldActive:
		m.ResetActive()
		return nil
	case webhookendpoint.FieldTimeoutS:
		m.ResetTimeoutS()
		return nil
	case webhookendpoint.FieldVerifySsl:
		m.ResetVerifySsl()
		return nil
	case webhookendpoint.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case webhookendpoint.FieldHeaders:
		m.ResetHeaders()
		return nil
	case webhookendpoint.FieldDisabledReason:
		m.ResetDisabledReason()
		return nil
	case webhookendpoint.FieldDisabledAt:
		m.ResetDisabledAt()
		return nil
	case webhookendpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookEndpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.deliveries != nil {
		edges = append(edges, webhookendpoint.EdgeDeliveries)
	}
	if m.dead_letters != nil {
		edges = append(edges, webhookendpoint.EdgeDeadLetters)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookEndpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case webhookendpoint.EdgeDeliveries:
		ids := make([]ent.Value, 0, len(m.deliveries))
		for id := range m.deliveries {
			ids = append(ids, id)
		}
		return ids
	case webhookendpoint.EdgeDeadLetters:
		ids := make([]ent.Value, 0, len(m.dead_letters))
		for id := range m.dead_letters {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookEndpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddeliveries != nil {
		edges = append(edges, webhookendpoint.EdgeDeliveries)
	}
	if m.removeddead_letters != nil {
		edges = append(edges, webhookendpoint.EdgeDeadLetters)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookEndpointMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case webhookendpoint.EdgeDeliveries:
		ids := make([]ent.Value, 0, len(m.removeddeliveries))
		for id := range m.removeddeliveries {
			ids = append(ids, id)
		}
		return ids
	case webhookendpoint.EdgeDeadLetters:
		ids := make([]ent.Value, 0, len(m.removeddead_letters))
		for id := range m.removeddead_letters {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookEndpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddeliveries {
		edges = append(edges, webhookendpoint.EdgeDeliveries)
	}
	if m.cleareddead_letters {
		edges = append(edges, webhookendpoint.EdgeDeadLetters)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookEndpointMutation) EdgeCleared(name string) bool {
	switch name {
	case webhookendpoint.EdgeDeliveries:
		return m.cleareddeliveries
	case webhookendpoint.EdgeDeadLetters:
		return m.cleareddead_letters
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookEndpointMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookEndpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookEndpointMutation) ResetEdge(name string) error {
	switch name {
	case webhookendpoint.EdgeDeliveries:
		m.ResetDeliveries()
		return nil
	case webhookendpoint.EdgeDeadLetters:
		m.ResetDeadLetters()
		return nil
	}
	return fmt.Errorf("unknown WebhookEndpoint edge %s", name)
}

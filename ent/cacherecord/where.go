// Code generated by ent, DO NOT EDIT.

package cacherecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/orchid-run/orchid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLTE(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldKey, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v []byte) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldValue, v))
}

// Size applies equality check predicate on the "size" field. It's identical to SizeEQ.
func Size(v int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldSize, v))
}

// AccessCount applies equality check predicate on the "access_count" field. It's identical to AccessCountEQ.
func AccessCount(v int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldAccessCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// AccessedAt applies equality check predicate on the "accessed_at" field. It's identical to AccessedAtEQ.
func AccessedAt(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldAccessedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldExpiresAt, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldContainsFold(FieldKey, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v []byte) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v []byte) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...[]byte) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...[]byte) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v []byte) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v []byte) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v []byte) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v []byte) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLTE(FieldValue, v))
}

// SizeEQ applies the EQ predicate on the "size" field.
func SizeEQ(v int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldSize, v))
}

// SizeNEQ applies the NEQ predicate on the "size" field.
func SizeNEQ(v int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNEQ(FieldSize, v))
}

// SizeIn applies the In predicate on the "size" field.
func SizeIn(vs ...int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldIn(FieldSize, vs...))
}

// SizeNotIn applies the NotIn predicate on the "size" field.
func SizeNotIn(vs ...int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNotIn(FieldSize, vs...))
}

// SizeGT applies the GT predicate on the "size" field.
func SizeGT(v int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGT(FieldSize, v))
}

// SizeGTE applies the GTE predicate on the "size" field.
func SizeGTE(v int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGTE(FieldSize, v))
}

// SizeLT applies the LT predicate on the "size" field.
func SizeLT(v int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLT(FieldSize, v))
}

// SizeLTE applies the LTE predicate on the "size" field.
func SizeLTE(v int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLTE(FieldSize, v))
}

// AccessCountEQ applies the EQ predicate on the "access_count" field.
func AccessCountEQ(v int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldAccessCount, v))
}

// AccessCountNEQ applies the NEQ predicate on the "access_count" field.
func AccessCountNEQ(v int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNEQ(FieldAccessCount, v))
}

// AccessCountIn applies the In predicate on the "access_count" field.
func AccessCountIn(vs ...int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldIn(FieldAccessCount, vs...))
}

// AccessCountNotIn applies the NotIn predicate on the "access_count" field.
func AccessCountNotIn(vs ...int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNotIn(FieldAccessCount, vs...))
}

// AccessCountGT applies the GT predicate on the "access_count" field.
func AccessCountGT(v int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGT(FieldAccessCount, v))
}

// AccessCountGTE applies the GTE predicate on the "access_count" field.
func AccessCountGTE(v int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGTE(FieldAccessCount, v))
}

// AccessCountLT applies the LT predicate on the "access_count" field.
func AccessCountLT(v int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLT(FieldAccessCount, v))
}

// AccessCountLTE applies the LTE predicate on the "access_count" field.
func AccessCountLTE(v int64) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLTE(FieldAccessCount, v))
}

// DependenciesIsNil applies the IsNil predicate on the "dependencies" field.
func DependenciesIsNil() predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldIsNull(FieldDependencies))
}

// DependenciesNotNil applies the NotNil predicate on the "dependencies" field.
func DependenciesNotNil() predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNotNull(FieldDependencies))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// AccessedAtEQ applies the EQ predicate on the "accessed_at" field.
func AccessedAtEQ(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldAccessedAt, v))
}

// AccessedAtNEQ applies the NEQ predicate on the "accessed_at" field.
func AccessedAtNEQ(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNEQ(FieldAccessedAt, v))
}

// AccessedAtIn applies the In predicate on the "accessed_at" field.
func AccessedAtIn(vs ...time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldIn(FieldAccessedAt, vs...))
}

// AccessedAtNotIn applies the NotIn predicate on the "accessed_at" field.
func AccessedAtNotIn(vs ...time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNotIn(FieldAccessedAt, vs...))
}

// AccessedAtGT applies the GT predicate on the "accessed_at" field.
func AccessedAtGT(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGT(FieldAccessedAt, v))
}

// AccessedAtGTE applies the GTE predicate on the "accessed_at" field.
func AccessedAtGTE(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGTE(FieldAccessedAt, v))
}

// AccessedAtLT applies the LT predicate on the "accessed_at" field.
func AccessedAtLT(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLT(FieldAccessedAt, v))
}

// AccessedAtLTE applies the LTE predicate on the "accessed_at" field.
func AccessedAtLTE(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLTE(FieldAccessedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.CacheRecord {
	return predicate.CacheRecord(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CacheRecord) predicate.CacheRecord {
	return predicate.CacheRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CacheRecord) predicate.CacheRecord {
	return predicate.CacheRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CacheRecord) predicate.CacheRecord {
	return predicate.CacheRecord(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package cacherecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the cacherecord type in the database.
	Label = "cache_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldSize holds the string denoting the size field in the database.
	FieldSize = "size"
	// FieldAccessCount holds the string denoting the access_count field in the database.
	FieldAccessCount = "access_count"
	// FieldDependencies holds the string denoting the dependencies field in the database.
	FieldDependencies = "dependencies"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAccessedAt holds the string denoting the accessed_at field in the database.
	FieldAccessedAt = "accessed_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the cacherecord in the database.
	Table = "cache_records"
)

// Columns holds all SQL columns for cacherecord fields.
var Columns = []string{
	FieldID,
	FieldKey,
	FieldValue,
	FieldSize,
	FieldAccessCount,
	FieldDependencies,
	FieldCreatedAt,
	FieldAccessedAt,
	FieldExpiresAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSize holds the default value on creation for the "size" field.
	DefaultSize int64
	// DefaultAccessCount holds the default value on creation for the "access_count" field.
	DefaultAccessCount int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultAccessedAt holds the default value on creation for the "accessed_at" field.
	DefaultAccessedAt func() time.Time
)

// OrderOption defines the ordering options for the CacheRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// BySize orders the results by the size field.
func BySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSize, opts...).ToFunc()
}

// ByAccessCount orders the results by the access_count field.
func ByAccessCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAccessedAt orders the results by the accessed_at field.
func ByAccessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

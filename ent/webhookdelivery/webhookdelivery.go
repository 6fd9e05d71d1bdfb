// Code generated by ent, DO NOT EDIT.

package webhookdelivery

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the webhookdelivery type in the database.
	Label = "webhook_delivery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "delivery_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldLastStatusCode holds the string denoting the last_status_code field in the database.
	FieldLastStatusCode = "last_status_code"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldNextAttemptAt holds the string denoting the next_attempt_at field in the database.
	FieldNextAttemptAt = "next_attempt_at"
	// FieldDeliveredAt holds the string denoting the delivered_at field in the database.
	FieldDeliveredAt = "delivered_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeEndpoint holds the string denoting the endpoint edge name in mutations.
	EdgeEndpoint = "endpoint"
	// WebhookEndpointFieldID holds the string denoting the ID field of the WebhookEndpoint.
	WebhookEndpointFieldID = "webhook_id"
	// Table holds the table name of the webhookdelivery in the database.
	Table = "webhook_deliveries"
	// EndpointTable is the table that holds the endpoint relation/edge.
	EndpointTable = "webhook_deliveries"
	// EndpointInverseTable is the table name for the WebhookEndpoint entity.
	// It exists in this package in order to avoid circular dependency with the "webhookendpoint" package.
	EndpointInverseTable = "webhook_endpoints"
	// EndpointColumn is the table column denoting the endpoint relation/edge.
	EndpointColumn = "webhook_endpoint_deliveries"
)

// Columns holds all SQL columns for webhookdelivery fields.
var Columns = []string{
	FieldID,
	FieldEventType,
	FieldPayload,
	FieldStatus,
	FieldAttempts,
	FieldLastStatusCode,
	FieldLastError,
	FieldNextAttemptAt,
	FieldDeliveredAt,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "webhook_deliveries"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"webhook_endpoint_deliveries",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusDelivering Status = "delivering"
	StatusDelivered  Status = "delivered"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusDelivering, StatusDelivered, StatusFailed:
		return nil
	default:
		return fmt.Errorf("webhookdelivery: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the WebhookDelivery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByPayload orders the results by the payload field.
func ByPayload(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayload, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByLastStatusCode orders the results by the last_status_code field.
func ByLastStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastStatusCode, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByNextAttemptAt orders the results by the next_attempt_at field.
func ByNextAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextAttemptAt, opts...).ToFunc()
}

// ByDeliveredAt orders the results by the delivered_at field.
func ByDeliveredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEndpointField orders the results by endpoint field.
func ByEndpointField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEndpointStep(), sql.OrderByField(field, opts...))
	}
}
func newEndpointStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EndpointInverseTable, WebhookEndpointFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EndpointTable, EndpointColumn),
	)
}

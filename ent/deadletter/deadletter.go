// Code generated by ent, DO NOT EDIT.

package deadletter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the deadletter type in the database.
	Label = "dead_letter"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWebhookID holds the string denoting the webhook_id field in the database.
	FieldWebhookID = "webhook_id"
	// FieldDeliveryID holds the string denoting the delivery_id field in the database.
	FieldDeliveryID = "delivery_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldFinalError holds the string denoting the final_error field in the database.
	FieldFinalError = "final_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeEndpoint holds the string denoting the endpoint edge name in mutations.
	EdgeEndpoint = "endpoint"
	// WebhookEndpointFieldID holds the string denoting the ID field of the WebhookEndpoint.
	WebhookEndpointFieldID = "webhook_id"
	// Table holds the table name of the deadletter in the database.
	Table = "dead_letters"
	// EndpointTable is the table that holds the endpoint relation/edge.
	EndpointTable = "dead_letters"
	// EndpointInverseTable is the table name for the WebhookEndpoint entity.
	// It exists in this package in order to avoid circular dependency with the "webhookendpoint" package.
	EndpointInverseTable = "webhook_endpoints"
	// EndpointColumn is the table column denoting the endpoint relation/edge.
	EndpointColumn = "webhook_endpoint_dead_letters"
)

// Columns holds all SQL columns for deadletter fields.
var Columns = []string{
	FieldID,
	FieldWebhookID,
	FieldDeliveryID,
	FieldURL,
	FieldPayload,
	FieldFinalError,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "dead_letters"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"webhook_endpoint_dead_letters",
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the DeadLetter queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWebhookID orders the results by the webhook_id field.
func ByWebhookID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebhookID, opts...).ToFunc()
}

// ByDeliveryID orders the results by the delivery_id field.
func ByDeliveryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByPayload orders the results by the payload field.
func ByPayload(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayload, opts...).ToFunc()
}

// ByFinalError orders the results by the final_error field.
func ByFinalError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalError, opts...).ToFunc()
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

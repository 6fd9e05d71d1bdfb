// Code generated by ent, DO NOT EDIT.

package webhookendpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the webhookendpoint type in the database.
	Label = "webhook_endpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "webhook_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldEvents holds the string denoting the events field in the database.
	FieldEvents = "events"
	// FieldSecret holds the string denoting the secret field in the database.
	FieldSecret = "secret"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldTimeoutS holds the string denoting the timeout_s field in the database.
	FieldTimeoutS = "timeout_s"
	// FieldVerifySsl holds the string denoting the verify_ssl field in the database.
	FieldVerifySsl = "verify_ssl"
	// FieldMaxAttempts holds the string denoting the max_attempts field in the database.
	FieldMaxAttempts = "max_attempts"
	// FieldHeaders holds the string denoting the headers field in the database.
	FieldHeaders = "headers"
	// FieldDisabledReason holds the string denoting the disabled_reason field in the database.
	FieldDisabledReason = "disabled_reason"
	// FieldDisabledAt holds the string denoting the disabled_at field in the database.
	FieldDisabledAt = "disabled_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDeliveries holds the string denoting the deliveries edge name in mutations.
	EdgeDeliveries = "deliveries"
	// EdgeDeadLetters holds the string denoting the dead_letters edge name in mutations.
	EdgeDeadLetters = "dead_letters"
	// WebhookDeliveryFieldID holds the string denoting the ID field of the WebhookDelivery.
	WebhookDeliveryFieldID = "delivery_id"
	// DeadLetterFieldID holds the string denoting the ID field of the DeadLetter.
	DeadLetterFieldID = "id"
	// Table holds the table name of the webhookendpoint in the database.
	Table = "webhook_endpoints"
	// DeliveriesTable is the table that holds the deliveries relation/edge.
	DeliveriesTable = "webhook_deliveries"
	// DeliveriesInverseTable is the table name for the WebhookDelivery entity.
	// It exists in this package in order to avoid circular dependency with the "webhookdelivery" package.
	DeliveriesInverseTable = "webhook_deliveries"
	// DeliveriesColumn is the table column denoting the deliveries relation/edge.
	DeliveriesColumn = "webhook_endpoint_deliveries"
	// DeadLettersTable is the table that holds the dead_letters relation/edge.
	DeadLettersTable = "dead_letters"
	// DeadLettersInverseTable is the table name for the DeadLetter entity.
	// It exists in this package in order to avoid circular dependency with the "deadletter" package.
	DeadLettersInverseTable = "dead_letters"
	// DeadLettersColumn is the table column denoting the dead_letters relation/edge.
	DeadLettersColumn = "webhook_endpoint_dead_letters"
)

// Columns holds all SQL columns for webhookendpoint fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldURL,
	FieldEvents,
	FieldSecret,
	FieldActive,
	FieldTimeoutS,
	FieldVerifySsl,
	FieldMaxAttempts,
	FieldHeaders,
	FieldDisabledReason,
	FieldDisabledAt,
	FieldCreatedAt,
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
	// DefaultTenantID holds the default value on creation for the "tenant_id" field.
	DefaultTenantID string
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultTimeoutS holds the default value on creation for the "timeout_s" field.
	DefaultTimeoutS int
	// DefaultVerifySsl holds the default value on creation for the "verify_ssl" field.
	DefaultVerifySsl bool
	// DefaultMaxAttempts holds the default value on creation for the "max_attempts" field.
	DefaultMaxAttempts int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the WebhookEndpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// BySecret orders the results by the secret field.
func BySecret(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecret, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByTimeoutS orders the results by the timeout_s field.
func ByTimeoutS(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutS, opts...).ToFunc()
}

// ByVerifySsl orders the results by the verify_ssl field.
func ByVerifySsl(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifySsl, opts...).ToFunc()
}

// ByMaxAttempts orders the results by the max_attempts field.
func ByMaxAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxAttempts, opts...).ToFunc()
}

// ByDisabledReason orders the results by the disabled_reason field.
func ByDisabledReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisabledReason, opts...).ToFunc()
}

// ByDisabledAt orders the results by the disabled_at field.
func ByDisabledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisabledAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDeliveriesCount orders the results by deliveries count.
func ByDeliveriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDeliveriesStep(), opts...)
	}
}

// ByDeliveries orders the results by deliveries terms.
func ByDeliveries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeliveriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDeadLettersCount orders the results by dead_letters count.
func ByDeadLettersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDeadLettersStep(), opts...)
	}
}

// ByDeadLetters orders the results by dead_letters terms.
func ByDeadLetters(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeadLettersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDeliveriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeliveriesInverseTable, WebhookDeliveryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DeliveriesTable, DeliveriesColumn),
	)
}
func newDeadLettersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeadLettersInverseTable, DeadLetterFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DeadLettersTable, DeadLettersColumn),
	)
}

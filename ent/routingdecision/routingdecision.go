// Code generated by ent, DO NOT EDIT.

package routingdecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the routingdecision type in the database.
	Label = "routing_decision"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStepID holds the string denoting the step_id field in the database.
	FieldStepID = "step_id"
	// FieldSelectedRole holds the string denoting the selected_role field in the database.
	FieldSelectedRole = "selected_role"
	// FieldQueryType holds the string denoting the query_type field in the database.
	FieldQueryType = "query_type"
	// FieldScores holds the string denoting the scores field in the database.
	FieldScores = "scores"
	// FieldNormalizedScores holds the string denoting the normalized_scores field in the database.
	FieldNormalizedScores = "normalized_scores"
	// FieldFallback holds the string denoting the fallback field in the database.
	FieldFallback = "fallback"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldRoutingTimeUs holds the string denoting the routing_time_us field in the database.
	FieldRoutingTimeUs = "routing_time_us"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// Table holds the table name of the routingdecision in the database.
	Table = "routing_decisions"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "routing_decisions"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_routing_decisions"
)

// Columns holds all SQL columns for routingdecision fields.
var Columns = []string{
	FieldID,
	FieldStepID,
	FieldSelectedRole,
	FieldQueryType,
	FieldScores,
	FieldNormalizedScores,
	FieldFallback,
	FieldConfidence,
	FieldRoutingTimeUs,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "routing_decisions"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"run_routing_decisions",
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
	// DefaultFallback holds the default value on creation for the "fallback" field.
	DefaultFallback bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the RoutingDecision queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStepID orders the results by the step_id field.
func ByStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepID, opts...).ToFunc()
}

// BySelectedRole orders the results by the selected_role field.
func BySelectedRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectedRole, opts...).ToFunc()
}

// ByQueryType orders the results by the query_type field.
func ByQueryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueryType, opts...).ToFunc()
}

// ByFallback orders the results by the fallback field.
func ByFallback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFallback, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByRoutingTimeUs orders the results by the routing_time_us field.
func ByRoutingTimeUs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoutingTimeUs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}

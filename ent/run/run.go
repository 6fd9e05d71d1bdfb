// Code generated by ent, DO NOT EDIT.

package run

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldCorrelationID holds the string denoting the correlation_id field in the database.
	FieldCorrelationID = "correlation_id"
	// FieldSeed holds the string denoting the seed field in the database.
	FieldSeed = "seed"
	// FieldTemperature holds the string denoting the temperature field in the database.
	FieldTemperature = "temperature"
	// FieldQuery holds the string denoting the query field in the database.
	FieldQuery = "query"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTerminationReason holds the string denoting the termination_reason field in the database.
	FieldTerminationReason = "termination_reason"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldStepCount holds the string denoting the step_count field in the database.
	FieldStepCount = "step_count"
	// FieldTokenTotal holds the string denoting the token_total field in the database.
	FieldTokenTotal = "token_total"
	// FieldConfigSnapshot holds the string denoting the config_snapshot field in the database.
	FieldConfigSnapshot = "config_snapshot"
	// FieldArtifactsPath holds the string denoting the artifacts_path field in the database.
	FieldArtifactsPath = "artifacts_path"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// EdgeRoutingDecisions holds the string denoting the routing_decisions edge name in mutations.
	EdgeRoutingDecisions = "routing_decisions"
	// StepExecutionFieldID holds the string denoting the ID field of the StepExecution.
	StepExecutionFieldID = "id"
	// RoutingDecisionFieldID holds the string denoting the ID field of the RoutingDecision.
	RoutingDecisionFieldID = "id"
	// Table holds the table name of the run in the database.
	Table = "runs"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "step_executions"
	// StepsInverseTable is the table name for the StepExecution entity.
	// It exists in this package in order to avoid circular dependency with the "stepexecution" package.
	StepsInverseTable = "step_executions"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "run_steps"
	// RoutingDecisionsTable is the table that holds the routing_decisions relation/edge.
	RoutingDecisionsTable = "routing_decisions"
	// RoutingDecisionsInverseTable is the table name for the RoutingDecision entity.
	// It exists in this package in order to avoid circular dependency with the "routingdecision" package.
	RoutingDecisionsInverseTable = "routing_decisions"
	// RoutingDecisionsColumn is the table column denoting the routing_decisions relation/edge.
	RoutingDecisionsColumn = "run_routing_decisions"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldCorrelationID,
	FieldSeed,
	FieldTemperature,
	FieldQuery,
	FieldStatus,
	FieldTerminationReason,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldStepCount,
	FieldTokenTotal,
	FieldConfigSnapshot,
	FieldArtifactsPath,
	FieldPodID,
	FieldLastInteractionAt,
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
	// DefaultTemperature holds the default value on creation for the "temperature" field.
	DefaultTemperature float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultStepCount holds the default value on creation for the "step_count" field.
	DefaultStepCount int
	// DefaultTokenTotal holds the default value on creation for the "token_total" field.
	DefaultTokenTotal int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusPlanning   Status = "planning"
	StatusExecuting  Status = "executing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusTerminated Status = "terminated"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusPlanning, StatusExecuting, StatusCompleted, StatusFailed, StatusTerminated:
		return nil
	default:
		return fmt.Errorf("run: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByCorrelationID orders the results by the correlation_id field.
func ByCorrelationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationID, opts...).ToFunc()
}

// BySeed orders the results by the seed field.
func BySeed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeed, opts...).ToFunc()
}

// ByTemperature orders the results by the temperature field.
func ByTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperature, opts...).ToFunc()
}

// ByQuery orders the results by the query field.
func ByQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuery, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTerminationReason orders the results by the termination_reason field.
func ByTerminationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminationReason, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByStepCount orders the results by the step_count field.
func ByStepCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepCount, opts...).ToFunc()
}

// ByTokenTotal orders the results by the token_total field.
func ByTokenTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenTotal, opts...).ToFunc()
}

// ByArtifactsPath orders the results by the artifacts_path field.
func ByArtifactsPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtifactsPath, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRoutingDecisionsCount orders the results by routing_decisions count.
func ByRoutingDecisionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRoutingDecisionsStep(), opts...)
	}
}

// ByRoutingDecisions orders the results by routing_decisions terms.
func ByRoutingDecisions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRoutingDecisionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, StepExecutionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
func newRoutingDecisionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RoutingDecisionsInverseTable, RoutingDecisionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RoutingDecisionsTable, RoutingDecisionsColumn),
	)
}

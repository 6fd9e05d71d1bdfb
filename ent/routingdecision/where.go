// Code generated by ent, DO NOT EDIT.

package routingdecision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/orchid-run/orchid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLTE(FieldID, id))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldStepID, v))
}

// SelectedRole applies equality check predicate on the "selected_role" field. It's identical to SelectedRoleEQ.
func SelectedRole(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldSelectedRole, v))
}

// QueryType applies equality check predicate on the "query_type" field. It's identical to QueryTypeEQ.
func QueryType(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldQueryType, v))
}

// Fallback applies equality check predicate on the "fallback" field. It's identical to FallbackEQ.
func Fallback(v bool) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldFallback, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldConfidence, v))
}

// RoutingTimeUs applies equality check predicate on the "routing_time_us" field. It's identical to RoutingTimeUsEQ.
func RoutingTimeUs(v int64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldRoutingTimeUs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v int) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLTE(FieldStepID, v))
}

// SelectedRoleEQ applies the EQ predicate on the "selected_role" field.
func SelectedRoleEQ(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldSelectedRole, v))
}

// SelectedRoleNEQ applies the NEQ predicate on the "selected_role" field.
func SelectedRoleNEQ(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldSelectedRole, v))
}

// SelectedRoleIn applies the In predicate on the "selected_role" field.
func SelectedRoleIn(vs ...string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIn(FieldSelectedRole, vs...))
}

// SelectedRoleNotIn applies the NotIn predicate on the "selected_role" field.
func SelectedRoleNotIn(vs ...string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotIn(FieldSelectedRole, vs...))
}

// SelectedRoleGT applies the GT predicate on the "selected_role" field.
func SelectedRoleGT(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGT(FieldSelectedRole, v))
}

// SelectedRoleGTE applies the GTE predicate on the "selected_role" field.
func SelectedRoleGTE(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGTE(FieldSelectedRole, v))
}

// SelectedRoleLT applies the LT predicate on the "selected_role" field.
func SelectedRoleLT(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLT(FieldSelectedRole, v))
}

// SelectedRoleLTE applies the LTE predicate on the "selected_role" field.
func SelectedRoleLTE(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLTE(FieldSelectedRole, v))
}

// SelectedRoleContains applies the Contains predicate on the "selected_role" field.
func SelectedRoleContains(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldContains(FieldSelectedRole, v))
}

// SelectedRoleHasPrefix applies the HasPrefix predicate on the "selected_role" field.
func SelectedRoleHasPrefix(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldHasPrefix(FieldSelectedRole, v))
}

// SelectedRoleHasSuffix applies the HasSuffix predicate on the "selected_role" field.
func SelectedRoleHasSuffix(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldHasSuffix(FieldSelectedRole, v))
}

// SelectedRoleEqualFold applies the EqualFold predicate on the "selected_role" field.
func SelectedRoleEqualFold(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEqualFold(FieldSelectedRole, v))
}

// SelectedRoleContainsFold applies the ContainsFold predicate on the "selected_role" field.
func SelectedRoleContainsFold(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldContainsFold(FieldSelectedRole, v))
}

// QueryTypeEQ applies the EQ predicate on the "query_type" field.
func QueryTypeEQ(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldQueryType, v))
}

// QueryTypeNEQ applies the NEQ predicate on the "query_type" field.
func QueryTypeNEQ(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldQueryType, v))
}

// QueryTypeIn applies the In predicate on the "query_type" field.
func QueryTypeIn(vs ...string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIn(FieldQueryType, vs...))
}

// QueryTypeNotIn applies the NotIn predicate on the "query_type" field.
func QueryTypeNotIn(vs ...string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotIn(FieldQueryType, vs...))
}

// QueryTypeGT applies the GT predicate on the "query_type" field.
func QueryTypeGT(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGT(FieldQueryType, v))
}

// QueryTypeGTE applies the GTE predicate on the "query_type" field.
func QueryTypeGTE(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGTE(FieldQueryType, v))
}

// QueryTypeLT applies the LT predicate on the "query_type" field.
func QueryTypeLT(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLT(FieldQueryType, v))
}

// QueryTypeLTE applies the LTE predicate on the "query_type" field.
func QueryTypeLTE(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLTE(FieldQueryType, v))
}

// QueryTypeContains applies the Contains predicate on the "query_type" field.
func QueryTypeContains(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldContains(FieldQueryType, v))
}

// QueryTypeHasPrefix applies the HasPrefix predicate on the "query_type" field.
func QueryTypeHasPrefix(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldHasPrefix(FieldQueryType, v))
}

// QueryTypeHasSuffix applies the HasSuffix predicate on the "query_type" field.
func QueryTypeHasSuffix(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldHasSuffix(FieldQueryType, v))
}

// QueryTypeIsNil applies the IsNil predicate on the "query_type" field.
func QueryTypeIsNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIsNull(FieldQueryType))
}

// QueryTypeNotNil applies the NotNil predicate on the "query_type" field.
func QueryTypeNotNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotNull(FieldQueryType))
}

// QueryTypeEqualFold applies the EqualFold predicate on the "query_type" field.
func QueryTypeEqualFold(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEqualFold(FieldQueryType, v))
}

// QueryTypeContainsFold applies the ContainsFold predicate on the "query_type" field.
func QueryTypeContainsFold(v string) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldContainsFold(FieldQueryType, v))
}

// ScoresIsNil applies the IsNil predicate on the "scores" field.
func ScoresIsNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIsNull(FieldScores))
}

// ScoresNotNil applies the NotNil predicate on the "scores" field.
func ScoresNotNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotNull(FieldScores))
}

// NormalizedScoresIsNil applies the IsNil predicate on the "normalized_scores" field.
func NormalizedScoresIsNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIsNull(FieldNormalizedScores))
}

// NormalizedScoresNotNil applies the NotNil predicate on the "normalized_scores" field.
func NormalizedScoresNotNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotNull(FieldNormalizedScores))
}

// FallbackEQ applies the EQ predicate on the "fallback" field.
func FallbackEQ(v bool) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldFallback, v))
}

// FallbackNEQ applies the NEQ predicate on the "fallback" field.
func FallbackNEQ(v bool) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldFallback, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotNull(FieldConfidence))
}

// RoutingTimeUsEQ applies the EQ predicate on the "routing_time_us" field.
func RoutingTimeUsEQ(v int64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldRoutingTimeUs, v))
}

// RoutingTimeUsNEQ applies the NEQ predicate on the "routing_time_us" field.
func RoutingTimeUsNEQ(v int64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldRoutingTimeUs, v))
}

// RoutingTimeUsIn applies the In predicate on the "routing_time_us" field.
func RoutingTimeUsIn(vs ...int64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIn(FieldRoutingTimeUs, vs...))
}

// RoutingTimeUsNotIn applies the NotIn predicate on the "routing_time_us" field.
func RoutingTimeUsNotIn(vs ...int64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotIn(FieldRoutingTimeUs, vs...))
}

// RoutingTimeUsGT applies the GT predicate on the "routing_time_us" field.
func RoutingTimeUsGT(v int64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGT(FieldRoutingTimeUs, v))
}

// RoutingTimeUsGTE applies the GTE predicate on the "routing_time_us" field.
func RoutingTimeUsGTE(v int64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGTE(FieldRoutingTimeUs, v))
}

// RoutingTimeUsLT applies the LT predicate on the "routing_time_us" field.
func RoutingTimeUsLT(v int64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLT(FieldRoutingTimeUs, v))
}

// RoutingTimeUsLTE applies the LTE predicate on the "routing_time_us" field.
func RoutingTimeUsLTE(v int64) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLTE(FieldRoutingTimeUs, v))
}

// RoutingTimeUsIsNil applies the IsNil predicate on the "routing_time_us" field.
func RoutingTimeUsIsNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIsNull(FieldRoutingTimeUs))
}

// RoutingTimeUsNotNil applies the NotNil predicate on the "routing_time_us" field.
func RoutingTimeUsNotNil() predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotNull(FieldRoutingTimeUs))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.RoutingDecision {
	return predicate.RoutingDecision(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.RoutingDecision {
	return predicate.RoutingDecision(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoutingDecision) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoutingDecision) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoutingDecision) predicate.RoutingDecision {
	return predicate.RoutingDecision(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/orchid-run/orchid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTenantID, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCorrelationID, v))
}

// Seed applies equality check predicate on the "seed" field. It's identical to SeedEQ.
func Seed(v int64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSeed, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTemperature, v))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldQuery, v))
}

// TerminationReason applies equality check predicate on the "termination_reason" field. It's identical to TerminationReasonEQ.
func TerminationReason(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTerminationReason, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// StepCount applies equality check predicate on the "step_count" field. It's identical to StepCountEQ.
func StepCount(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStepCount, v))
}

// TokenTotal applies equality check predicate on the "token_total" field. It's identical to TokenTotalEQ.
func TokenTotal(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTokenTotal, v))
}

// ArtifactsPath applies equality check predicate on the "artifacts_path" field. It's identical to ArtifactsPathEQ.
func ArtifactsPath(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldArtifactsPath, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPodID, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLastInteractionAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldTenantID, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDIsNil applies the IsNil predicate on the "correlation_id" field.
func CorrelationIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCorrelationID))
}

// CorrelationIDNotNil applies the NotNil predicate on the "correlation_id" field.
func CorrelationIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCorrelationID))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldCorrelationID, v))
}

// SeedEQ applies the EQ predicate on the "seed" field.
func SeedEQ(v int64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSeed, v))
}

// SeedNEQ applies the NEQ predicate on the "seed" field.
func SeedNEQ(v int64) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldSeed, v))
}

// SeedIn applies the In predicate on the "seed" field.
func SeedIn(vs ...int64) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldSeed, vs...))
}

// SeedNotIn applies the NotIn predicate on the "seed" field.
func SeedNotIn(vs ...int64) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldSeed, vs...))
}

// SeedGT applies the GT predicate on the "seed" field.
func SeedGT(v int64) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldSeed, v))
}

// SeedGTE applies the GTE predicate on the "seed" field.
func SeedGTE(v int64) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldSeed, v))
}

// SeedLT applies the LT predicate on the "seed" field.
func SeedLT(v int64) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldSeed, v))
}

// SeedLTE applies the LTE predicate on the "seed" field.
func SeedLTE(v int64) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldSeed, v))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldTemperature, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldQuery, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStatus, vs...))
}

// TerminationReasonEQ applies the EQ predicate on the "termination_reason" field.
func TerminationReasonEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTerminationReason, v))
}

// TerminationReasonNEQ applies the NEQ predicate on the "termination_reason" field.
func TerminationReasonNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldTerminationReason, v))
}

// TerminationReasonIn applies the In predicate on the "termination_reason" field.
func TerminationReasonIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldTerminationReason, vs...))
}

// TerminationReasonNotIn applies the NotIn predicate on the "termination_reason" field.
func TerminationReasonNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldTerminationReason, vs...))
}

// TerminationReasonGT applies the GT predicate on the "termination_reason" field.
func TerminationReasonGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldTerminationReason, v))
}

// TerminationReasonGTE applies the GTE predicate on the "termination_reason" field.
func TerminationReasonGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldTerminationReason, v))
}

// TerminationReasonLT applies the LT predicate on the "termination_reason" field.
func TerminationReasonLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldTerminationReason, v))
}

// TerminationReasonLTE applies the LTE predicate on the "termination_reason" field.
func TerminationReasonLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldTerminationReason, v))
}

// TerminationReasonContains applies the Contains predicate on the "termination_reason" field.
func TerminationReasonContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldTerminationReason, v))
}

// TerminationReasonHasPrefix applies the HasPrefix predicate on the "termination_reason" field.
func TerminationReasonHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldTerminationReason, v))
}

// TerminationReasonHasSuffix applies the HasSuffix predicate on the "termination_reason" field.
func TerminationReasonHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldTerminationReason, v))
}

// TerminationReasonIsNil applies the IsNil predicate on the "termination_reason" field.
func TerminationReasonIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldTerminationReason))
}

// TerminationReasonNotNil applies the NotNil predicate on the "termination_reason" field.
func TerminationReasonNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldTerminationReason))
}

// TerminationReasonEqualFold applies the EqualFold predicate on the "termination_reason" field.
func TerminationReasonEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldTerminationReason, v))
}

// TerminationReasonContainsFold applies the ContainsFold predicate on the "termination_reason" field.
func TerminationReasonContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldTerminationReason, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCompletedAt))
}

// StepCountEQ applies the EQ predicate on the "step_count" field.
func StepCountEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStepCount, v))
}

// StepCountNEQ applies the NEQ predicate on the "step_count" field.
func StepCountNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStepCount, v))
}

// StepCountIn applies the In predicate on the "step_count" field.
func StepCountIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStepCount, vs...))
}

// StepCountNotIn applies the NotIn predicate on the "step_count" field.
func StepCountNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStepCount, vs...))
}

// StepCountGT applies the GT predicate on the "step_count" field.
func StepCountGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStepCount, v))
}

// StepCountGTE applies the GTE predicate on the "step_count" field.
func StepCountGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStepCount, v))
}

// StepCountLT applies the LT predicate on the "step_count" field.
func StepCountLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStepCount, v))
}

// StepCountLTE applies the LTE predicate on the "step_count" field.
func StepCountLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStepCount, v))
}

// TokenTotalEQ applies the EQ predicate on the "token_total" field.
func TokenTotalEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTokenTotal, v))
}

// TokenTotalNEQ applies the NEQ predicate on the "token_total" field.
func TokenTotalNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldTokenTotal, v))
}

// TokenTotalIn applies the In predicate on the "token_total" field.
func TokenTotalIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldTokenTotal, vs...))
}

// TokenTotalNotIn applies the NotIn predicate on the "token_total" field.
func TokenTotalNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldTokenTotal, vs...))
}

// TokenTotalGT applies the GT predicate on the "token_total" field.
func TokenTotalGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldTokenTotal, v))
}

// TokenTotalGTE applies the GTE predicate on the "token_total" field.
func TokenTotalGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldTokenTotal, v))
}

// TokenTotalLT applies the LT predicate on the "token_total" field.
func TokenTotalLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldTokenTotal, v))
}

// TokenTotalLTE applies the LTE predicate on the "token_total" field.
func TokenTotalLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldTokenTotal, v))
}

// ConfigSnapshotIsNil applies the IsNil predicate on the "config_snapshot" field.
func ConfigSnapshotIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldConfigSnapshot))
}

// ConfigSnapshotNotNil applies the NotNil predicate on the "config_snapshot" field.
func ConfigSnapshotNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldConfigSnapshot))
}

// ArtifactsPathEQ applies the EQ predicate on the "artifacts_path" field.
func ArtifactsPathEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldArtifactsPath, v))
}

// ArtifactsPathNEQ applies the NEQ predicate on the "artifacts_path" field.
func ArtifactsPathNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldArtifactsPath, v))
}

// ArtifactsPathIn applies the In predicate on the "artifacts_path" field.
func ArtifactsPathIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldArtifactsPath, vs...))
}

// ArtifactsPathNotIn applies the NotIn predicate on the "artifacts_path" field.
func ArtifactsPathNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldArtifactsPath, vs...))
}

// ArtifactsPathGT applies the GT predicate on the "artifacts_path" field.
func ArtifactsPathGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldArtifactsPath, v))
}

// ArtifactsPathGTE applies the GTE predicate on the "artifacts_path" field.
func ArtifactsPathGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldArtifactsPath, v))
}

// ArtifactsPathLT applies the LT predicate on the "artifacts_path" field.
func ArtifactsPathLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldArtifactsPath, v))
}

// ArtifactsPathLTE applies the LTE predicate on the "artifacts_path" field.
func ArtifactsPathLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldArtifactsPath, v))
}

// ArtifactsPathContains applies the Contains predicate on the "artifacts_path" field.
func ArtifactsPathContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldArtifactsPath, v))
}

// ArtifactsPathHasPrefix applies the HasPrefix predicate on the "artifacts_path" field.
func ArtifactsPathHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldArtifactsPath, v))
}

// ArtifactsPathHasSuffix applies the HasSuffix predicate on the "artifacts_path" field.
func ArtifactsPathHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldArtifactsPath, v))
}

// ArtifactsPathIsNil applies the IsNil predicate on the "artifacts_path" field.
func ArtifactsPathIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldArtifactsPath))
}

// ArtifactsPathNotNil applies the NotNil predicate on the "artifacts_path" field.
func ArtifactsPathNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldArtifactsPath))
}

// ArtifactsPathEqualFold applies the EqualFold predicate on the "artifacts_path" field.
func ArtifactsPathEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldArtifactsPath, v))
}

// ArtifactsPathContainsFold applies the ContainsFold predicate on the "artifacts_path" field.
func ArtifactsPathContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldArtifactsPath, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldPodID, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldLastInteractionAt))
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.StepExecution) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRoutingDecisions applies the HasEdge predicate on the "routing_decisions" edge.
func HasRoutingDecisions() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RoutingDecisionsTable, RoutingDecisionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoutingDecisionsWith applies the HasEdge predicate on the "routing_decisions" edge with a given conditions (other predicates).
func HasRoutingDecisionsWith(preds ...predicate.RoutingDecision) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newRoutingDecisionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}

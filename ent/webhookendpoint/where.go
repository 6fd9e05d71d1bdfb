// Code generated by ent, DO NOT EDIT.

package webhookendpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/orchid-run/orchid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldTenantID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldURL, v))
}

// Secret applies equality check predicate on the "secret" field. It's identical to SecretEQ.
func Secret(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldSecret, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldActive, v))
}

// TimeoutS applies equality check predicate on the "timeout_s" field. It's identical to TimeoutSEQ.
func TimeoutS(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldTimeoutS, v))
}

// VerifySsl applies equality check predicate on the "verify_ssl" field. It's identical to VerifySslEQ.
func VerifySsl(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldVerifySsl, v))
}

// MaxAttempts applies equality check predicate on the "max_attempts" field. It's identical to MaxAttemptsEQ.
func MaxAttempts(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldMaxAttempts, v))
}

// DisabledReason applies equality check predicate on the "disabled_reason" field. It's identical to DisabledReasonEQ.
func DisabledReason(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldDisabledReason, v))
}

// DisabledAt applies equality check predicate on the "disabled_at" field. It's identical to DisabledAtEQ.
func DisabledAt(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldDisabledAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContainsFold(FieldTenantID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContainsFold(FieldURL, v))
}

// SecretEQ applies the EQ predicate on the "secret" field.
func SecretEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldSecret, v))
}

// SecretNEQ applies the NEQ predicate on the "secret" field.
func SecretNEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldSecret, v))
}

// SecretIn applies the In predicate on the "secret" field.
func SecretIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldSecret, vs...))
}

// SecretNotIn applies the NotIn predicate on the "secret" field.
func SecretNotIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldSecret, vs...))
}

// SecretGT applies the GT predicate on the "secret" field.
func SecretGT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldSecret, v))
}

// SecretGTE applies the GTE predicate on the "secret" field.
func SecretGTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldSecret, v))
}

// SecretLT applies the LT predicate on the "secret" field.
func SecretLT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldSecret, v))
}

// SecretLTE applies the LTE predicate on the "secret" field.
func SecretLTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldSecret, v))
}

// SecretContains applies the Contains predicate on the "secret" field.
func SecretContains(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContains(FieldSecret, v))
}

// SecretHasPrefix applies the HasPrefix predicate on the "secret" field.
func SecretHasPrefix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasPrefix(FieldSecret, v))
}

// SecretHasSuffix applies the HasSuffix predicate on the "secret" field.
func SecretHasSuffix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasSuffix(FieldSecret, v))
}

// SecretEqualFold applies the EqualFold predicate on the "secret" field.
func SecretEqualFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEqualFold(FieldSecret, v))
}

// SecretContainsFold applies the ContainsFold predicate on the "secret" field.
func SecretContainsFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContainsFold(FieldSecret, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldActive, v))
}

// TimeoutSEQ applies the EQ predicate on the "timeout_s" field.
func TimeoutSEQ(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldTimeoutS, v))
}

// TimeoutSNEQ applies the NEQ predicate on the "timeout_s" field.
func TimeoutSNEQ(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldTimeoutS, v))
}

// TimeoutSIn applies the In predicate on the "timeout_s" field.
func TimeoutSIn(vs ...int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldTimeoutS, vs...))
}

// TimeoutSNotIn applies the NotIn predicate on the "timeout_s" field.
func TimeoutSNotIn(vs ...int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldTimeoutS, vs...))
}

// TimeoutSGT applies the GT predicate on the "timeout_s" field.
func TimeoutSGT(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldTimeoutS, v))
}

// TimeoutSGTE applies the GTE predicate on the "timeout_s" field.
func TimeoutSGTE(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldTimeoutS, v))
}

// TimeoutSLT applies the LT predicate on the "timeout_s" field.
func TimeoutSLT(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldTimeoutS, v))
}

// TimeoutSLTE applies the LTE predicate on the "timeout_s" field.
func TimeoutSLTE(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldTimeoutS, v))
}

// VerifySslEQ applies the EQ predicate on the "verify_ssl" field.
func VerifySslEQ(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldVerifySsl, v))
}

// VerifySslNEQ applies the NEQ predicate on the "verify_ssl" field.
func VerifySslNEQ(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldVerifySsl, v))
}

// MaxAttemptsEQ applies the EQ predicate on the "max_attempts" field.
func MaxAttemptsEQ(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldMaxAttempts, v))
}

// MaxAttemptsNEQ applies the NEQ predicate on the "max_attempts" field.
func MaxAttemptsNEQ(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldMaxAttempts, v))
}

// MaxAttemptsIn applies the In predicate on the "max_attempts" field.
func MaxAttemptsIn(vs ...int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsNotIn applies the NotIn predicate on the "max_attempts" field.
func MaxAttemptsNotIn(vs ...int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldMaxAttempts, vs...))
}

// MaxAttemptsGT applies the GT predicate on the "max_attempts" field.
func MaxAttemptsGT(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldMaxAttempts, v))
}

// MaxAttemptsGTE applies the GTE predicate on the "max_attempts" field.
func MaxAttemptsGTE(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldMaxAttempts, v))
}

// MaxAttemptsLT applies the LT predicate on the "max_attempts" field.
func MaxAttemptsLT(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldMaxAttempts, v))
}

// MaxAttemptsLTE applies the LTE predicate on the "max_attempts" field.
func MaxAttemptsLTE(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldMaxAttempts, v))
}

// HeadersIsNil applies the IsNil predicate on the "headers" field.
func HeadersIsNil() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIsNull(FieldHeaders))
}

// HeadersNotNil applies the NotNil predicate on the "headers" field.
func HeadersNotNil() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotNull(FieldHeaders))
}

// DisabledReasonEQ applies the EQ predicate on the "disabled_reason" field.
func DisabledReasonEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldDisabledReason, v))
}

// DisabledReasonNEQ applies the NEQ predicate on the "disabled_reason" field.
func DisabledReasonNEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldDisabledReason, v))
}

// DisabledReasonIn applies the In predicate on the "disabled_reason" field.
func DisabledReasonIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldDisabledReason, vs...))
}

// DisabledReasonNotIn applies the NotIn predicate on the "disabled_reason" field.
func DisabledReasonNotIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldDisabledReason, vs...))
}

// DisabledReasonGT applies the GT predicate on the "disabled_reason" field.
func DisabledReasonGT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldDisabledReason, v))
}

// DisabledReasonGTE applies the GTE predicate on the "disabled_reason" field.
func DisabledReasonGTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldDisabledReason, v))
}

// DisabledReasonLT applies the LT predicate on the "disabled_reason" field.
func DisabledReasonLT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldDisabledReason, v))
}

// DisabledReasonLTE applies the LTE predicate on the "disabled_reason" field.
func DisabledReasonLTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldDisabledReason, v))
}

// DisabledReasonContains applies the Contains predicate on the "disabled_reason" field.
func DisabledReasonContains(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContains(FieldDisabledReason, v))
}

// DisabledReasonHasPrefix applies the HasPrefix predicate on the "disabled_reason" field.
func DisabledReasonHasPrefix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasPrefix(FieldDisabledReason, v))
}

// DisabledReasonHasSuffix applies the HasSuffix predicate on the "disabled_reason" field.
func DisabledReasonHasSuffix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasSuffix(FieldDisabledReason, v))
}

// DisabledReasonIsNil applies the IsNil predicate on the "disabled_reason" field.
func DisabledReasonIsNil() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIsNull(FieldDisabledReason))
}

// DisabledReasonNotNil applies the NotNil predicate on the "disabled_reason" field.
func DisabledReasonNotNil() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotNull(FieldDisabledReason))
}

// DisabledReasonEqualFold applies the EqualFold predicate on the "disabled_reason" field.
func DisabledReasonEqualFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEqualFold(FieldDisabledReason, v))
}

// DisabledReasonContainsFold applies the ContainsFold predicate on the "disabled_reason" field.
func DisabledReasonContainsFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContainsFold(FieldDisabledReason, v))
}

// DisabledAtEQ applies the EQ predicate on the "disabled_at" field.
func DisabledAtEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldDisabledAt, v))
}

// DisabledAtNEQ applies the NEQ predicate on the "disabled_at" field.
func DisabledAtNEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldDisabledAt, v))
}

// DisabledAtIn applies the In predicate on the "disabled_at" field.
func DisabledAtIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldDisabledAt, vs...))
}

// DisabledAtNotIn applies the NotIn predicate on the "disabled_at" field.
func DisabledAtNotIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldDisabledAt, vs...))
}

// DisabledAtGT applies the GT predicate on the "disabled_at" field.
func DisabledAtGT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldDisabledAt, v))
}

// DisabledAtGTE applies the GTE predicate on the "disabled_at" field.
func DisabledAtGTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldDisabledAt, v))
}

// DisabledAtLT applies the LT predicate on the "disabled_at" field.
func DisabledAtLT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldDisabledAt, v))
}

// DisabledAtLTE applies the LTE predicate on the "disabled_at" field.
func DisabledAtLTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldDisabledAt, v))
}

// DisabledAtIsNil applies the IsNil predicate on the "disabled_at" field.
func DisabledAtIsNil() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIsNull(FieldDisabledAt))
}

// DisabledAtNotNil applies the NotNil predicate on the "disabled_at" field.
func DisabledAtNotNil() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotNull(FieldDisabledAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDeliveries applies the HasEdge predicate on the "deliveries" edge.
func HasDeliveries() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DeliveriesTable, DeliveriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDeliveriesWith applies the HasEdge predicate on the "deliveries" edge with a given conditions (other predicates).
func HasDeliveriesWith(preds ...predicate.WebhookDelivery) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(func(s *sql.Selector) {
		step := newDeliveriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDeadLetters applies the HasEdge predicate on the "dead_letters" edge.
func HasDeadLetters() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DeadLettersTable, DeadLettersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDeadLettersWith applies the HasEdge predicate on the "dead_letters" edge with a given conditions (other predicates).
func HasDeadLettersWith(preds ...predicate.DeadLetter) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(func(s *sql.Selector) {
		step := newDeadLettersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WebhookEndpoint) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WebhookEndpoint) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WebhookEndpoint) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.NotPredicates(p))
}

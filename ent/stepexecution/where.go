// Code generated by ent, DO NOT EDIT.

package stepexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/orchid-run/orchid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldID, id))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStepID, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldQuestion, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldRole, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldAttempt, v))
}

// Output applies equality check predicate on the "output" field. It's identical to OutputEQ.
func Output(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldOutput, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldConfidence, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldTokensUsed, v))
}

// FromCache applies equality check predicate on the "from_cache" field. It's identical to FromCacheEQ.
func FromCache(v bool) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldFromCache, v))
}

// StepSignature applies equality check predicate on the "step_signature" field. It's identical to StepSignatureEQ.
func StepSignature(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStepSignature, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldStepID, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContainsFold(FieldQuestion, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContainsFold(FieldRole, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldAttempt, v))
}

// OutputEQ applies the EQ predicate on the "output" field.
func OutputEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldOutput, v))
}

// OutputNEQ applies the NEQ predicate on the "output" field.
func OutputNEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldOutput, v))
}

// OutputIn applies the In predicate on the "output" field.
func OutputIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldOutput, vs...))
}

// OutputNotIn applies the NotIn predicate on the "output" field.
func OutputNotIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldOutput, vs...))
}

// OutputGT applies the GT predicate on the "output" field.
func OutputGT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldOutput, v))
}

// OutputGTE applies the GTE predicate on the "output" field.
func OutputGTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldOutput, v))
}

// OutputLT applies the LT predicate on the "output" field.
func OutputLT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldOutput, v))
}

// OutputLTE applies the LTE predicate on the "output" field.
func OutputLTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldOutput, v))
}

// OutputContains applies the Contains predicate on the "output" field.
func OutputContains(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContains(FieldOutput, v))
}

// OutputHasPrefix applies the HasPrefix predicate on the "output" field.
func OutputHasPrefix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasPrefix(FieldOutput, v))
}

// OutputHasSuffix applies the HasSuffix predicate on the "output" field.
func OutputHasSuffix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasSuffix(FieldOutput, v))
}

// OutputIsNil applies the IsNil predicate on the "output" field.
func OutputIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldOutput))
}

// OutputNotNil applies the NotNil predicate on the "output" field.
func OutputNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldOutput))
}

// OutputEqualFold applies the EqualFold predicate on the "output" field.
func OutputEqualFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEqualFold(FieldOutput, v))
}

// OutputContainsFold applies the ContainsFold predicate on the "output" field.
func OutputContainsFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContainsFold(FieldOutput, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldConfidence))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldTokensUsed, v))
}

// FromCacheEQ applies the EQ predicate on the "from_cache" field.
func FromCacheEQ(v bool) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldFromCache, v))
}

// FromCacheNEQ applies the NEQ predicate on the "from_cache" field.
func FromCacheNEQ(v bool) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldFromCache, v))
}

// StepSignatureEQ applies the EQ predicate on the "step_signature" field.
func StepSignatureEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStepSignature, v))
}

// StepSignatureNEQ applies the NEQ predicate on the "step_signature" field.
func StepSignatureNEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldStepSignature, v))
}

// StepSignatureIn applies the In predicate on the "step_signature" field.
func StepSignatureIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldStepSignature, vs...))
}

// StepSignatureNotIn applies the NotIn predicate on the "step_signature" field.
func StepSignatureNotIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldStepSignature, vs...))
}

// StepSignatureGT applies the GT predicate on the "step_signature" field.
func StepSignatureGT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldStepSignature, v))
}

// StepSignatureGTE applies the GTE predicate on the "step_signature" field.
func StepSignatureGTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldStepSignature, v))
}

// StepSignatureLT applies the LT predicate on the "step_signature" field.
func StepSignatureLT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldStepSignature, v))
}

// StepSignatureLTE applies the LTE predicate on the "step_signature" field.
func StepSignatureLTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldStepSignature, v))
}

// StepSignatureContains applies the Contains predicate on the "step_signature" field.
func StepSignatureContains(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContains(FieldStepSignature, v))
}

// StepSignatureHasPrefix applies the HasPrefix predicate on the "step_signature" field.
func StepSignatureHasPrefix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasPrefix(FieldStepSignature, v))
}

// StepSignatureHasSuffix applies the HasSuffix predicate on the "step_signature" field.
func StepSignatureHasSuffix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasSuffix(FieldStepSignature, v))
}

// StepSignatureIsNil applies the IsNil predicate on the "step_signature" field.
func StepSignatureIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldStepSignature))
}

// StepSignatureNotNil applies the NotNil predicate on the "step_signature" field.
func StepSignatureNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldStepSignature))
}

// StepSignatureEqualFold applies the EqualFold predicate on the "step_signature" field.
func StepSignatureEqualFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEqualFold(FieldStepSignature, v))
}

// StepSignatureContainsFold applies the ContainsFold predicate on the "step_signature" field.
func StepSignatureContainsFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContainsFold(FieldStepSignature, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.StepExecution {
	return predicate.StepExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.StepExecution {
	return predicate.StepExecution(sql.FieldNotNull(FieldCompletedAt))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.StepExecution {
	return predicate.StepExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.StepExecution {
	return predicate.StepExecution(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StepExecution) predicate.StepExecution {
	return predicate.StepExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StepExecution) predicate.StepExecution {
	return predicate.StepExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StepExecution) predicate.StepExecution {
	return predicate.StepExecution(sql.NotPredicates(p))
}

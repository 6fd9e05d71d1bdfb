// Code generated by ent, DO NOT EDIT.

package webhookdelivery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/orchid-run/orchid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContainsFold(FieldID, id))
}

// EventType applies equality check predicate on the "event_type" field. It's identical to EventTypeEQ.
func EventType(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldEventType, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldPayload, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldAttempts, v))
}

// LastStatusCode applies equality check predicate on the "last_status_code" field. It's identical to LastStatusCodeEQ.
func LastStatusCode(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldLastStatusCode, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldLastError, v))
}

// NextAttemptAt applies equality check predicate on the "next_attempt_at" field. It's identical to NextAttemptAtEQ.
func NextAttemptAt(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldNextAttemptAt, v))
}

// DeliveredAt applies equality check predicate on the "delivered_at" field. It's identical to DeliveredAtEQ.
func DeliveredAt(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldDeliveredAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldCreatedAt, v))
}

// EventTypeEQ applies the EQ predicate on the "event_type" field.
func EventTypeEQ(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldEventType, v))
}

// EventTypeNEQ applies the NEQ predicate on the "event_type" field.
func EventTypeNEQ(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldEventType, v))
}

// EventTypeIn applies the In predicate on the "event_type" field.
func EventTypeIn(vs ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldEventType, vs...))
}

// EventTypeNotIn applies the NotIn predicate on the "event_type" field.
func EventTypeNotIn(vs ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldEventType, vs...))
}

// EventTypeGT applies the GT predicate on the "event_type" field.
func EventTypeGT(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldEventType, v))
}

// EventTypeGTE applies the GTE predicate on the "event_type" field.
func EventTypeGTE(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldEventType, v))
}

// EventTypeLT applies the LT predicate on the "event_type" field.
func EventTypeLT(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldEventType, v))
}

// EventTypeLTE applies the LTE predicate on the "event_type" field.
func EventTypeLTE(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldEventType, v))
}

// EventTypeContains applies the Contains predicate on the "event_type" field.
func EventTypeContains(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContains(FieldEventType, v))
}

// EventTypeHasPrefix applies the HasPrefix predicate on the "event_type" field.
func EventTypeHasPrefix(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldHasPrefix(FieldEventType, v))
}

// EventTypeHasSuffix applies the HasSuffix predicate on the "event_type" field.
func EventTypeHasSuffix(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldHasSuffix(FieldEventType, v))
}

// EventTypeEqualFold applies the EqualFold predicate on the "event_type" field.
func EventTypeEqualFold(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEqualFold(FieldEventType, v))
}

// EventTypeContainsFold applies the ContainsFold predicate on the "event_type" field.
func EventTypeContainsFold(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContainsFold(FieldEventType, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldPayload, v))
}

// PayloadContains applies the Contains predicate on the "payload" field.
func PayloadContains(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContains(FieldPayload, v))
}

// PayloadHasPrefix applies the HasPrefix predicate on the "payload" field.
func PayloadHasPrefix(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldHasPrefix(FieldPayload, v))
}

// PayloadHasSuffix applies the HasSuffix predicate on the "payload" field.
func PayloadHasSuffix(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldHasSuffix(FieldPayload, v))
}

// PayloadEqualFold applies the EqualFold predicate on the "payload" field.
func PayloadEqualFold(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEqualFold(FieldPayload, v))
}

// PayloadContainsFold applies the ContainsFold predicate on the "payload" field.
func PayloadContainsFold(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContainsFold(FieldPayload, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldAttempts, v))
}

// LastStatusCodeEQ applies the EQ predicate on the "last_status_code" field.
func LastStatusCodeEQ(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldLastStatusCode, v))
}

// LastStatusCodeNEQ applies the NEQ predicate on the "last_status_code" field.
func LastStatusCodeNEQ(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldLastStatusCode, v))
}

// LastStatusCodeIn applies the In predicate on the "last_status_code" field.
func LastStatusCodeIn(vs ...int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldLastStatusCode, vs...))
}

// LastStatusCodeNotIn applies the NotIn predicate on the "last_status_code" field.
func LastStatusCodeNotIn(vs ...int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldLastStatusCode, vs...))
}

// LastStatusCodeGT applies the GT predicate on the "last_status_code" field.
func LastStatusCodeGT(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldLastStatusCode, v))
}

// LastStatusCodeGTE applies the GTE predicate on the "last_status_code" field.
func LastStatusCodeGTE(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldLastStatusCode, v))
}

// LastStatusCodeLT applies the LT predicate on the "last_status_code" field.
func LastStatusCodeLT(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldLastStatusCode, v))
}

// LastStatusCodeLTE applies the LTE predicate on the "last_status_code" field.
func LastStatusCodeLTE(v int) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldLastStatusCode, v))
}

// LastStatusCodeIsNil applies the IsNil predicate on the "last_status_code" field.
func LastStatusCodeIsNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIsNull(FieldLastStatusCode))
}

// LastStatusCodeNotNil applies the NotNil predicate on the "last_status_code" field.
func LastStatusCodeNotNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotNull(FieldLastStatusCode))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldContainsFold(FieldLastError, v))
}

// NextAttemptAtEQ applies the EQ predicate on the "next_attempt_at" field.
func NextAttemptAtEQ(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtNEQ applies the NEQ predicate on the "next_attempt_at" field.
func NextAttemptAtNEQ(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldNextAttemptAt, v))
}

// NextAttemptAtIn applies the In predicate on the "next_attempt_at" field.
func NextAttemptAtIn(vs ...time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtNotIn applies the NotIn predicate on the "next_attempt_at" field.
func NextAttemptAtNotIn(vs ...time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldNextAttemptAt, vs...))
}

// NextAttemptAtGT applies the GT predicate on the "next_attempt_at" field.
func NextAttemptAtGT(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldNextAttemptAt, v))
}

// NextAttemptAtGTE applies the GTE predicate on the "next_attempt_at" field.
func NextAttemptAtGTE(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldNextAttemptAt, v))
}

// NextAttemptAtLT applies the LT predicate on the "next_attempt_at" field.
func NextAttemptAtLT(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldNextAttemptAt, v))
}

// NextAttemptAtLTE applies the LTE predicate on the "next_attempt_at" field.
func NextAttemptAtLTE(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldNextAttemptAt, v))
}

// NextAttemptAtIsNil applies the IsNil predicate on the "next_attempt_at" field.
func NextAttemptAtIsNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIsNull(FieldNextAttemptAt))
}

// NextAttemptAtNotNil applies the NotNil predicate on the "next_attempt_at" field.
func NextAttemptAtNotNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotNull(FieldNextAttemptAt))
}

// DeliveredAtEQ applies the EQ predicate on the "delivered_at" field.
func DeliveredAtEQ(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldDeliveredAt, v))
}

// DeliveredAtNEQ applies the NEQ predicate on the "delivered_at" field.
func DeliveredAtNEQ(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldDeliveredAt, v))
}

// DeliveredAtIn applies the In predicate on the "delivered_at" field.
func DeliveredAtIn(vs ...time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldDeliveredAt, vs...))
}

// DeliveredAtNotIn applies the NotIn predicate on the "delivered_at" field.
func DeliveredAtNotIn(vs ...time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldDeliveredAt, vs...))
}

// DeliveredAtGT applies the GT predicate on the "delivered_at" field.
func DeliveredAtGT(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldDeliveredAt, v))
}

// DeliveredAtGTE applies the GTE predicate on the "delivered_at" field.
func DeliveredAtGTE(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldDeliveredAt, v))
}

// DeliveredAtLT applies the LT predicate on the "delivered_at" field.
func DeliveredAtLT(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldDeliveredAt, v))
}

// DeliveredAtLTE applies the LTE predicate on the "delivered_at" field.
func DeliveredAtLTE(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldDeliveredAt, v))
}

// DeliveredAtIsNil applies the IsNil predicate on the "delivered_at" field.
func DeliveredAtIsNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIsNull(FieldDeliveredAt))
}

// DeliveredAtNotNil applies the NotNil predicate on the "delivered_at" field.
func DeliveredAtNotNil() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotNull(FieldDeliveredAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEndpoint applies the HasEdge predicate on the "endpoint" edge.
func HasEndpoint() predicate.WebhookDelivery {
	return predicate.WebhookDelivery(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EndpointTable, EndpointColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEndpointWith applies the HasEdge predicate on the "endpoint" edge with a given conditions (other predicates).
func HasEndpointWith(preds ...predicate.WebhookEndpoint) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(func(s *sql.Selector) {
		step := newEndpointStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WebhookDelivery) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WebhookDelivery) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WebhookDelivery) predicate.WebhookDelivery {
	return predicate.WebhookDelivery(sql.NotPredicates(p))
}

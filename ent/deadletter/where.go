// Code generated by ent, DO NOT EDIT.

package deadletter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/orchid-run/orchid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldID, id))
}

// WebhookID applies equality check predicate on the "webhook_id" field. It's identical to WebhookIDEQ.
func WebhookID(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldWebhookID, v))
}

// DeliveryID applies equality check predicate on the "delivery_id" field. It's identical to DeliveryIDEQ.
func DeliveryID(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldDeliveryID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldURL, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldPayload, v))
}

// FinalError applies equality check predicate on the "final_error" field. It's identical to FinalErrorEQ.
func FinalError(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldFinalError, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldCreatedAt, v))
}

// WebhookIDEQ applies the EQ predicate on the "webhook_id" field.
func WebhookIDEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldWebhookID, v))
}

// WebhookIDNEQ applies the NEQ predicate on the "webhook_id" field.
func WebhookIDNEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldWebhookID, v))
}

// WebhookIDIn applies the In predicate on the "webhook_id" field.
func WebhookIDIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldWebhookID, vs...))
}

// WebhookIDNotIn applies the NotIn predicate on the "webhook_id" field.
func WebhookIDNotIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldWebhookID, vs...))
}

// WebhookIDGT applies the GT predicate on the "webhook_id" field.
func WebhookIDGT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldWebhookID, v))
}

// WebhookIDGTE applies the GTE predicate on the "webhook_id" field.
func WebhookIDGTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldWebhookID, v))
}

// WebhookIDLT applies the LT predicate on the "webhook_id" field.
func WebhookIDLT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldWebhookID, v))
}

// WebhookIDLTE applies the LTE predicate on the "webhook_id" field.
func WebhookIDLTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldWebhookID, v))
}

// WebhookIDContains applies the Contains predicate on the "webhook_id" field.
func WebhookIDContains(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContains(FieldWebhookID, v))
}

// WebhookIDHasPrefix applies the HasPrefix predicate on the "webhook_id" field.
func WebhookIDHasPrefix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasPrefix(FieldWebhookID, v))
}

// WebhookIDHasSuffix applies the HasSuffix predicate on the "webhook_id" field.
func WebhookIDHasSuffix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasSuffix(FieldWebhookID, v))
}

// WebhookIDEqualFold applies the EqualFold predicate on the "webhook_id" field.
func WebhookIDEqualFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEqualFold(FieldWebhookID, v))
}

// WebhookIDContainsFold applies the ContainsFold predicate on the "webhook_id" field.
func WebhookIDContainsFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContainsFold(FieldWebhookID, v))
}

// DeliveryIDEQ applies the EQ predicate on the "delivery_id" field.
func DeliveryIDEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldDeliveryID, v))
}

// DeliveryIDNEQ applies the NEQ predicate on the "delivery_id" field.
func DeliveryIDNEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldDeliveryID, v))
}

// DeliveryIDIn applies the In predicate on the "delivery_id" field.
func DeliveryIDIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldDeliveryID, vs...))
}

// DeliveryIDNotIn applies the NotIn predicate on the "delivery_id" field.
func DeliveryIDNotIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldDeliveryID, vs...))
}

// DeliveryIDGT applies the GT predicate on the "delivery_id" field.
func DeliveryIDGT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldDeliveryID, v))
}

// DeliveryIDGTE applies the GTE predicate on the "delivery_id" field.
func DeliveryIDGTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldDeliveryID, v))
}

// DeliveryIDLT applies the LT predicate on the "delivery_id" field.
func DeliveryIDLT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldDeliveryID, v))
}

// DeliveryIDLTE applies the LTE predicate on the "delivery_id" field.
func DeliveryIDLTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldDeliveryID, v))
}

// DeliveryIDContains applies the Contains predicate on the "delivery_id" field.
func DeliveryIDContains(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContains(FieldDeliveryID, v))
}

// DeliveryIDHasPrefix applies the HasPrefix predicate on the "delivery_id" field.
func DeliveryIDHasPrefix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasPrefix(FieldDeliveryID, v))
}

// DeliveryIDHasSuffix applies the HasSuffix predicate on the "delivery_id" field.
func DeliveryIDHasSuffix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasSuffix(FieldDeliveryID, v))
}

// DeliveryIDEqualFold applies the EqualFold predicate on the "delivery_id" field.
func DeliveryIDEqualFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEqualFold(FieldDeliveryID, v))
}

// DeliveryIDContainsFold applies the ContainsFold predicate on the "delivery_id" field.
func DeliveryIDContainsFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContainsFold(FieldDeliveryID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContainsFold(FieldURL, v))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldPayload, v))
}

// PayloadContains applies the Contains predicate on the "payload" field.
func PayloadContains(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContains(FieldPayload, v))
}

// PayloadHasPrefix applies the HasPrefix predicate on the "payload" field.
func PayloadHasPrefix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasPrefix(FieldPayload, v))
}

// PayloadHasSuffix applies the HasSuffix predicate on the "payload" field.
func PayloadHasSuffix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasSuffix(FieldPayload, v))
}

// PayloadEqualFold applies the EqualFold predicate on the "payload" field.
func PayloadEqualFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEqualFold(FieldPayload, v))
}

// PayloadContainsFold applies the ContainsFold predicate on the "payload" field.
func PayloadContainsFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContainsFold(FieldPayload, v))
}

// FinalErrorEQ applies the EQ predicate on the "final_error" field.
func FinalErrorEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldFinalError, v))
}

// FinalErrorNEQ applies the NEQ predicate on the "final_error" field.
func FinalErrorNEQ(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldFinalError, v))
}

// FinalErrorIn applies the In predicate on the "final_error" field.
func FinalErrorIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldFinalError, vs...))
}

// FinalErrorNotIn applies the NotIn predicate on the "final_error" field.
func FinalErrorNotIn(vs ...string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldFinalError, vs...))
}

// FinalErrorGT applies the GT predicate on the "final_error" field.
func FinalErrorGT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldFinalError, v))
}

// FinalErrorGTE applies the GTE predicate on the "final_error" field.
func FinalErrorGTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldFinalError, v))
}

// FinalErrorLT applies the LT predicate on the "final_error" field.
func FinalErrorLT(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldFinalError, v))
}

// FinalErrorLTE applies the LTE predicate on the "final_error" field.
func FinalErrorLTE(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldFinalError, v))
}

// FinalErrorContains applies the Contains predicate on the "final_error" field.
func FinalErrorContains(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContains(FieldFinalError, v))
}

// FinalErrorHasPrefix applies the HasPrefix predicate on the "final_error" field.
func FinalErrorHasPrefix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasPrefix(FieldFinalError, v))
}

// FinalErrorHasSuffix applies the HasSuffix predicate on the "final_error" field.
func FinalErrorHasSuffix(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldHasSuffix(FieldFinalError, v))
}

// FinalErrorEqualFold applies the EqualFold predicate on the "final_error" field.
func FinalErrorEqualFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEqualFold(FieldFinalError, v))
}

// FinalErrorContainsFold applies the ContainsFold predicate on the "final_error" field.
func FinalErrorContainsFold(v string) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldContainsFold(FieldFinalError, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DeadLetter {
	return predicate.DeadLetter(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEndpoint applies the HasEdge predicate on the "endpoint" edge.
func HasEndpoint() predicate.DeadLetter {
	return predicate.DeadLetter(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EndpointTable, EndpointColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEndpointWith applies the HasEdge predicate on the "endpoint" edge with a given conditions (other predicates).
func HasEndpointWith(preds ...predicate.WebhookEndpoint) predicate.DeadLetter {
	return predicate.DeadLetter(func(s *sql.Selector) {
		step := newEndpointStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeadLetter) predicate.DeadLetter {
	return predicate.DeadLetter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeadLetter) predicate.DeadLetter {
	return predicate.DeadLetter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeadLetter) predicate.DeadLetter {
	return predicate.DeadLetter(sql.NotPredicates(p))
}

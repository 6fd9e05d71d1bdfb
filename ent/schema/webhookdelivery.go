package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookDelivery holds the schema definition for the WebhookDelivery entity.
type WebhookDelivery struct {
	ent.Schema
}

// Fields of the WebhookDelivery.
func (WebhookDelivery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("delivery_id").
			Unique().
			Immutable(),
		field.String("event_type"),
		field.Text("payload"),
		field.Enum("status").
			Values("pending", "delivering", "delivered", "failed").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Int("last_status_code").
			Optional(),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("next_attempt_at").
			Optional().
			Nillable(),
		field.Time("delivered_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the WebhookDelivery.
func (WebhookDelivery) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("endpoint", WebhookEndpoint.Type).
			Ref("deliveries").
			Unique().
			Required(),
	}
}

// Indexes of the WebhookDelivery.
func (WebhookDelivery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "next_attempt_at"),
		index.Fields("created_at"),
	}
}

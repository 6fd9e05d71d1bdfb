package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookEndpoint holds the schema definition for the WebhookEndpoint entity.
type WebhookEndpoint struct {
	ent.Schema
}

// Fields of the WebhookEndpoint.
func (WebhookEndpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("webhook_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Default("default"),
		field.String("url"),
		field.JSON("events", []string{}).
			Comment("Event types this endpoint subscribes to"),
		field.String("secret").
			Sensitive(),
		field.Bool("active").
			Default(true),
		field.Int("timeout_s").
			Default(30),
		field.Bool("verify_ssl").
			Default(true),
		field.Int("max_attempts").
			Default(5),
		field.JSON("headers", map[string]string{}).
			Optional().
			Comment("Endpoint-defined headers added to every delivery"),
		field.String("disabled_reason").
			Optional().
			Nillable(),
		field.Time("disabled_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the WebhookEndpoint.
func (WebhookEndpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("deliveries", WebhookDelivery.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("dead_letters", DeadLetter.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WebhookEndpoint.
func (WebhookEndpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active"),
		index.Fields("tenant_id"),
	}
}

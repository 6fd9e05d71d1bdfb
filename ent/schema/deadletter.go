package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeadLetter holds the schema definition for the DeadLetter entity:
// webhook deliveries that exhausted their retries or overflowed the
// dispatch queue.
type DeadLetter struct {
	ent.Schema
}

// Fields of the DeadLetter.
func (DeadLetter) Fields() []ent.Field {
	return []ent.Field{
		field.String("webhook_id"),
		field.String("delivery_id"),
		field.String("url"),
		field.Text("payload"),
		field.String("final_error"),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the DeadLetter.
func (DeadLetter) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("endpoint", WebhookEndpoint.Type).
			Ref("dead_letters").
			Unique(),
	}
}

// Indexes of the DeadLetter.
func (DeadLetter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("webhook_id"),
		index.Fields("created_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the Run entity.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Default("default"),
		field.String("correlation_id").
			Optional(),
		field.Int64("seed").
			Comment("Frozen at preflight; all stochastic choices derive from it"),
		field.Float("temperature").
			Default(0),
		field.Text("query").
			Comment("Original query text (full-text searchable)"),
		field.Enum("status").
			Values("pending", "planning", "executing", "completed", "failed", "terminated").
			Default("pending"),
		field.String("termination_reason").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker picked the run up (pending to planning)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("step_count").
			Default(0),
		field.Int("token_total").
			Default(0),
		field.JSON("config_snapshot", map[string]interface{}{}).
			Optional(),
		field.String("artifacts_path").
			Optional(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", StepExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("routing_decisions", RoutingDecision.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("tenant_id"),

		index.Fields("status", "created_at"),
		index.Fields("status", "last_interaction_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// RoutingDecision holds the schema definition for the RoutingDecision entity.
type RoutingDecision struct {
	ent.Schema
}

// Fields of the RoutingDecision.
func (RoutingDecision) Fields() []ent.Field {
	return []ent.Field{
		field.Int("step_id"),
		field.String("selected_role"),
		field.String("query_type").
			Optional(),
		field.JSON("scores", map[string]float64{}).
			Optional().
			Comment("Raw weighted score per candidate role"),
		field.JSON("normalized_scores", map[string]float64{}).
			Optional(),
		field.Bool("fallback").
			Default(false).
			Comment("True when the coordinator absorbed an unroutable step"),
		field.Float("confidence").
			Optional(),
		field.Int64("routing_time_us").
			Optional(),
		field.Time("created_at").
			Default(time.Now),
	}
}

// Edges of the RoutingDecision.
func (RoutingDecision) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("routing_decisions").
			Unique().
			Required(),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepExecution holds the schema definition for the StepExecution entity.
type StepExecution struct {
	ent.Schema
}

// Fields of the StepExecution.
func (StepExecution) Fields() []ent.Field {
	return []ent.Field{
		field.Int("step_id").
			Comment("Position within the run's plan, 1-based"),
		field.Text("question"),
		field.String("role").
			Optional().
			Comment("Role selected by the router"),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "skipped").
			Default("pending"),
		field.Int("attempt").
			Default(0),
		field.Text("output").
			Optional().
			Nillable(),
		field.Float("confidence").
			Optional(),
		field.Int("tokens_used").
			Default(0),
		field.Bool("from_cache").
			Default(false),
		field.String("step_signature").
			Optional().
			Comment("Cache key: hash(role, fragment, context digest, seed)"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the StepExecution.
func (StepExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("steps").
			Unique().
			Required(),
	}
}

// Indexes of the StepExecution.
func (StepExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Edges("run").Fields("step_id"),
	}
}

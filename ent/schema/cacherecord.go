package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CacheRecord holds the schema definition for the CacheRecord entity,
// the durable (L3) cache tier.
type CacheRecord struct {
	ent.Schema
}

// Fields of the CacheRecord.
func (CacheRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique(),
		field.Bytes("value"),
		field.Int64("size").
			Default(0),
		field.Int64("access_count").
			Default(0),
		field.JSON("dependencies", []string{}).
			Optional().
			Comment("Keys this entry was derived from"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("accessed_at").
			Default(time.Now),
		field.Time("expires_at"),
	}
}

// Indexes of the CacheRecord.
func (CacheRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("expires_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Chat holds the schema definition for the Chat entity.
// Follow-up conversation bound to a completed deliberation; at most one
// exists per deliberation.
type Chat struct {
	ent.Schema
}

// Fields of the Chat.
func (Chat) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chat_id").
			Unique().
			Immutable(),
		field.String("deliberation_id").
			Unique().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("created_by").
			Optional().
			Nillable().
			Comment("User email"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the Chat.
func (Chat) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("deliberation", Deliberation.Type).
			Ref("chat").
			Field("deliberation_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", ChatMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Chat.
func (Chat) Indexes() []ent.Index {
	return []ent.Index{
		// Deliberation lookup (unique)
		index.Fields("deliberation_id").
			Unique(),
		// Listing
		index.Fields("created_at"),
		// Orphan detection
		index.Fields("pod_id", "last_interaction_at"),
	}
}

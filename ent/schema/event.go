package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Persisted event log backing WebSocket catch-up: clients reconnecting with
// a last-seen id replay everything they missed on a channel.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		// Autoincrement int id doubles as the catch-up cursor
		field.Int("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("deliberation_id").
			Immutable(),
		field.String("channel").
			Comment("NOTIFY channel the event was published on"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("deliberation", Deliberation.Type).
			Ref("events").
			Field("deliberation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catch-up scan: events on a channel after a cursor
		index.Fields("channel", "id"),
		// TTL cleanup
		index.Fields("created_at"),
		index.Fields("deliberation_id"),
	}
}

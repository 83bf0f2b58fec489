package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Deliberation holds the schema definition for the Deliberation entity.
// One council run: the task, the role/option snapshots the run was created
// with, and the terminal outcome.
type Deliberation struct {
	ent.Schema
}

// Fields of the Deliberation.
func (Deliberation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("deliberation_id").
			Unique().
			Immutable(),
		field.Text("task").
			Comment("The question put to the council (full-text searchable)"),
		field.Enum("status").
			Values("pending", "in_progress", "cancelling", "completed", "failed", "cancelled", "timed_out").
			Default("pending"),
		field.JSON("roles", []map[string]interface{}{}).
			Comment("Role snapshot taken at creation; preset edits never rewrite history"),
		field.JSON("options", map[string]interface{}{}).
			Comment("Options snapshot taken at creation"),
		field.String("council_id").
			Optional().
			Nillable().
			Comment("Preset the run was created from, when any"),
		field.String("chairman_model").
			Optional().
			Nillable(),
		field.Text("synthesis").
			Optional().
			Nillable().
			Comment("Chairman synthesis (full-text searchable)"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("author").
			Optional().
			Nillable().
			Comment("From oauth2-proxy"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the deliberation was submitted/created"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When the worker started processing (transitioned from pending to in_progress)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Deliberation.
func (Deliberation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("answers", Answer.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("verdicts", Verdict.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("score_sets", ScoreSet.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("chat", Chat.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Deliberation.
func (Deliberation) Indexes() []ent.Index {
	return []ent.Index{
		// Single field indexes
		index.Fields("status"),
		index.Fields("council_id"),

		// Composite indexes
		index.Fields("status", "created_at"),
		index.Fields("status", "started_at"),
		index.Fields("status", "last_interaction_at"),
		index.Fields("pod_id", "last_interaction_at"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),

		// GIN trigram indexes for task/synthesis search are created via
		// migrations in pkg/database/migrations.
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Answer holds the schema definition for the Answer entity.
// One role's generation result, successful or not. Exactly one row exists
// per seat, in input order.
type Answer struct {
	ent.Schema
}

// Fields of the Answer.
func (Answer) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("answer_id").
			Unique().
			Immutable(),
		field.String("deliberation_id").
			Immutable(),
		field.Int("role_index").
			Comment("Seat position in the role snapshot"),
		field.String("role"),
		field.String("model"),
		field.Text("content").
			Optional().
			Comment("Empty for failed generations"),
		field.Bool("success").
			Default(true),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("tokens_used").
			Optional(),
		field.Int64("latency_ms").
			Optional(),
		field.String("label").
			Optional().
			Nillable().
			Comment("Anonymized label (A1, A2, ...) shown to judges, when anonymization was on"),
	}
}

// Edges of the Answer.
func (Answer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("deliberation", Deliberation.Type).
			Ref("answers").
			Field("deliberation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Answer.
func (Answer) Indexes() []ent.Index {
	return []ent.Index{
		// One row per seat
		index.Fields("deliberation_id", "role_index").
			Unique(),
	}
}

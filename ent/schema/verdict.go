package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Verdict holds the schema definition for the Verdict entity.
// One parsed pairwise judgment from the peer-review stage. Rows are written
// in canonical order (judge_index, i, j) so a replay reproduces the run.
type Verdict struct {
	ent.Schema
}

// Fields of the Verdict.
func (Verdict) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("verdict_id").
			Unique().
			Immutable(),
		field.String("deliberation_id").
			Immutable(),
		field.String("judge").
			Comment("Judging role's name"),
		field.Int("judge_index").
			Comment("Judge position among successful answers"),
		field.Int("i").
			Comment("First compared answer index (i < j)"),
		field.Int("j"),
		field.Int("margin").
			Comment("-2..+2, positive favors i"),
		field.Text("raw").
			Optional().
			Comment("Judge's full reply, kept for diagnostics"),
		field.Bool("parse_ok").
			Default(true),
	}
}

// Edges of the Verdict.
func (Verdict) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("deliberation", Deliberation.Type).
			Ref("verdicts").
			Field("deliberation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Verdict.
func (Verdict) Indexes() []ent.Index {
	return []ent.Index{
		// Canonical retrieval order
		index.Fields("deliberation_id", "judge_index", "i", "j"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScoreSet holds the schema definition for the ScoreSet entity.
// One aggregation method's output for a deliberation. A completed run with
// review enabled has one row per method.
type ScoreSet struct {
	ent.Schema
}

// Fields of the ScoreSet.
func (ScoreSet) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("score_set_id").
			Unique().
			Immutable(),
		field.String("deliberation_id").
			Immutable(),
		field.Enum("method").
			Values("borda", "bradley_terry", "elo"),
		field.JSON("scores", map[string]float64{}).
			Comment("Score per role name"),
		field.JSON("confidence_intervals", map[string][2]float64{}).
			Optional().
			Comment("95% bootstrap intervals; only the elo method populates these"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Method parameters (iterations, bootstrap rounds/seed, ...)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ScoreSet.
func (ScoreSet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("deliberation", Deliberation.Type).
			Ref("score_sets").
			Field("deliberation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ScoreSet.
func (ScoreSet) Indexes() []ent.Index {
	return []ent.Index{
		// One score set per method per deliberation
		index.Fields("deliberation_id", "method").
			Unique(),
	}
}

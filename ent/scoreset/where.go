// Code generated by ent, DO NOT EDIT.

package scoreset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/plenumhq/plenum/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldContainsFold(FieldID, id))
}

// DeliberationID applies equality check predicate on the "deliberation_id" field. It's identical to DeliberationIDEQ.
func DeliberationID(v string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldEQ(FieldDeliberationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldEQ(FieldCreatedAt, v))
}

// DeliberationIDEQ applies the EQ predicate on the "deliberation_id" field.
func DeliberationIDEQ(v string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldEQ(FieldDeliberationID, v))
}

// DeliberationIDNEQ applies the NEQ predicate on the "deliberation_id" field.
func DeliberationIDNEQ(v string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldNEQ(FieldDeliberationID, v))
}

// DeliberationIDIn applies the In predicate on the "deliberation_id" field.
func DeliberationIDIn(vs ...string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldIn(FieldDeliberationID, vs...))
}

// DeliberationIDNotIn applies the NotIn predicate on the "deliberation_id" field.
func DeliberationIDNotIn(vs ...string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldNotIn(FieldDeliberationID, vs...))
}

// DeliberationIDGT applies the GT predicate on the "deliberation_id" field.
func DeliberationIDGT(v string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldGT(FieldDeliberationID, v))
}

// DeliberationIDGTE applies the GTE predicate on the "deliberation_id" field.
func DeliberationIDGTE(v string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldGTE(FieldDeliberationID, v))
}

// DeliberationIDLT applies the LT predicate on the "deliberation_id" field.
func DeliberationIDLT(v string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldLT(FieldDeliberationID, v))
}

// DeliberationIDLTE applies the LTE predicate on the "deliberation_id" field.
func DeliberationIDLTE(v string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldLTE(FieldDeliberationID, v))
}

// DeliberationIDContains applies the Contains predicate on the "deliberation_id" field.
func DeliberationIDContains(v string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldContains(FieldDeliberationID, v))
}

// DeliberationIDHasPrefix applies the HasPrefix predicate on the "deliberation_id" field.
func DeliberationIDHasPrefix(v string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldHasPrefix(FieldDeliberationID, v))
}

// DeliberationIDHasSuffix applies the HasSuffix predicate on the "deliberation_id" field.
func DeliberationIDHasSuffix(v string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldHasSuffix(FieldDeliberationID, v))
}

// DeliberationIDEqualFold applies the EqualFold predicate on the "deliberation_id" field.
func DeliberationIDEqualFold(v string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldEqualFold(FieldDeliberationID, v))
}

// DeliberationIDContainsFold applies the ContainsFold predicate on the "deliberation_id" field.
func DeliberationIDContainsFold(v string) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldContainsFold(FieldDeliberationID, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v Method) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v Method) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...Method) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...Method) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldNotIn(FieldMethod, vs...))
}

// ConfidenceIntervalsIsNil applies the IsNil predicate on the "confidence_intervals" field.
func ConfidenceIntervalsIsNil() predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldIsNull(FieldConfidenceIntervals))
}

// ConfidenceIntervalsNotNil applies the NotNil predicate on the "confidence_intervals" field.
func ConfidenceIntervalsNotNil() predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldNotNull(FieldConfidenceIntervals))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScoreSet {
	return predicate.ScoreSet(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDeliberation applies the HasEdge predicate on the "deliberation" edge.
func HasDeliberation() predicate.ScoreSet {
	return predicate.ScoreSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DeliberationTable, DeliberationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDeliberationWith applies the HasEdge predicate on the "deliberation" edge with a given conditions (other predicates).
func HasDeliberationWith(preds ...predicate.Deliberation) predicate.ScoreSet {
	return predicate.ScoreSet(func(s *sql.Selector) {
		step := newDeliberationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScoreSet) predicate.ScoreSet {
	return predicate.ScoreSet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScoreSet) predicate.ScoreSet {
	return predicate.ScoreSet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScoreSet) predicate.ScoreSet {
	return predicate.ScoreSet(sql.NotPredicates(p))
}

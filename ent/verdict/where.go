// Code generated by ent, DO NOT EDIT.

package verdict

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/plenumhq/plenum/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Verdict {
	return predicate.Verdict(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Verdict {
	return predicate.Verdict(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Verdict {
	return predicate.Verdict(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Verdict {
	return predicate.Verdict(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Verdict {
	return predicate.Verdict(sql.FieldContainsFold(FieldID, id))
}

// DeliberationID applies equality check predicate on the "deliberation_id" field. It's identical to DeliberationIDEQ.
func DeliberationID(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldDeliberationID, v))
}

// Judge applies equality check predicate on the "judge" field. It's identical to JudgeEQ.
func Judge(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldJudge, v))
}

// JudgeIndex applies equality check predicate on the "judge_index" field. It's identical to JudgeIndexEQ.
func JudgeIndex(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldJudgeIndex, v))
}

// I applies equality check predicate on the "i" field. It's identical to IEQ.
func I(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldI, v))
}

// J applies equality check predicate on the "j" field. It's identical to JEQ.
func J(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldJ, v))
}

// Margin applies equality check predicate on the "margin" field. It's identical to MarginEQ.
func Margin(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldMargin, v))
}

// Raw applies equality check predicate on the "raw" field. It's identical to RawEQ.
func Raw(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldRaw, v))
}

// ParseOk applies equality check predicate on the "parse_ok" field. It's identical to ParseOkEQ.
func ParseOk(v bool) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldParseOk, v))
}

// DeliberationIDEQ applies the EQ predicate on the "deliberation_id" field.
func DeliberationIDEQ(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldDeliberationID, v))
}

// DeliberationIDNEQ applies the NEQ predicate on the "deliberation_id" field.
func DeliberationIDNEQ(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldDeliberationID, v))
}

// DeliberationIDIn applies the In predicate on the "deliberation_id" field.
func DeliberationIDIn(vs ...string) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldDeliberationID, vs...))
}

// DeliberationIDNotIn applies the NotIn predicate on the "deliberation_id" field.
func DeliberationIDNotIn(vs ...string) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldDeliberationID, vs...))
}

// DeliberationIDGT applies the GT predicate on the "deliberation_id" field.
func DeliberationIDGT(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldGT(FieldDeliberationID, v))
}

// DeliberationIDGTE applies the GTE predicate on the "deliberation_id" field.
func DeliberationIDGTE(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldGTE(FieldDeliberationID, v))
}

// DeliberationIDLT applies the LT predicate on the "deliberation_id" field.
func DeliberationIDLT(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldLT(FieldDeliberationID, v))
}

// DeliberationIDLTE applies the LTE predicate on the "deliberation_id" field.
func DeliberationIDLTE(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldLTE(FieldDeliberationID, v))
}

// DeliberationIDContains applies the Contains predicate on the "deliberation_id" field.
func DeliberationIDContains(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldContains(FieldDeliberationID, v))
}

// DeliberationIDHasPrefix applies the HasPrefix predicate on the "deliberation_id" field.
func DeliberationIDHasPrefix(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldHasPrefix(FieldDeliberationID, v))
}

// DeliberationIDHasSuffix applies the HasSuffix predicate on the "deliberation_id" field.
func DeliberationIDHasSuffix(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldHasSuffix(FieldDeliberationID, v))
}

// DeliberationIDEqualFold applies the EqualFold predicate on the "deliberation_id" field.
func DeliberationIDEqualFold(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEqualFold(FieldDeliberationID, v))
}

// DeliberationIDContainsFold applies the ContainsFold predicate on the "deliberation_id" field.
func DeliberationIDContainsFold(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldContainsFold(FieldDeliberationID, v))
}

// JudgeEQ applies the EQ predicate on the "judge" field.
func JudgeEQ(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldJudge, v))
}

// JudgeNEQ applies the NEQ predicate on the "judge" field.
func JudgeNEQ(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldJudge, v))
}

// JudgeIn applies the In predicate on the "judge" field.
func JudgeIn(vs ...string) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldJudge, vs...))
}

// JudgeNotIn applies the NotIn predicate on the "judge" field.
func JudgeNotIn(vs ...string) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldJudge, vs...))
}

// JudgeGT applies the GT predicate on the "judge" field.
func JudgeGT(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldGT(FieldJudge, v))
}

// JudgeGTE applies the GTE predicate on the "judge" field.
func JudgeGTE(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldGTE(FieldJudge, v))
}

// JudgeLT applies the LT predicate on the "judge" field.
func JudgeLT(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldLT(FieldJudge, v))
}

// JudgeLTE applies the LTE predicate on the "judge" field.
func JudgeLTE(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldLTE(FieldJudge, v))
}

// JudgeContains applies the Contains predicate on the "judge" field.
func JudgeContains(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldContains(FieldJudge, v))
}

// JudgeHasPrefix applies the HasPrefix predicate on the "judge" field.
func JudgeHasPrefix(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldHasPrefix(FieldJudge, v))
}

// JudgeHasSuffix applies the HasSuffix predicate on the "judge" field.
func JudgeHasSuffix(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldHasSuffix(FieldJudge, v))
}

// JudgeEqualFold applies the EqualFold predicate on the "judge" field.
func JudgeEqualFold(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEqualFold(FieldJudge, v))
}

// JudgeContainsFold applies the ContainsFold predicate on the "judge" field.
func JudgeContainsFold(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldContainsFold(FieldJudge, v))
}

// JudgeIndexEQ applies the EQ predicate on the "judge_index" field.
func JudgeIndexEQ(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldJudgeIndex, v))
}

// JudgeIndexNEQ applies the NEQ predicate on the "judge_index" field.
func JudgeIndexNEQ(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldJudgeIndex, v))
}

// JudgeIndexIn applies the In predicate on the "judge_index" field.
func JudgeIndexIn(vs ...int) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldJudgeIndex, vs...))
}

// JudgeIndexNotIn applies the NotIn predicate on the "judge_index" field.
func JudgeIndexNotIn(vs ...int) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldJudgeIndex, vs...))
}

// JudgeIndexGT applies the GT predicate on the "judge_index" field.
func JudgeIndexGT(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldGT(FieldJudgeIndex, v))
}

// JudgeIndexGTE applies the GTE predicate on the "judge_index" field.
func JudgeIndexGTE(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldGTE(FieldJudgeIndex, v))
}

// JudgeIndexLT applies the LT predicate on the "judge_index" field.
func JudgeIndexLT(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldLT(FieldJudgeIndex, v))
}

// JudgeIndexLTE applies the LTE predicate on the "judge_index" field.
func JudgeIndexLTE(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldLTE(FieldJudgeIndex, v))
}

// IEQ applies the EQ predicate on the "i" field.
func IEQ(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldI, v))
}

// INEQ applies the NEQ predicate on the "i" field.
func INEQ(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldI, v))
}

// IIn applies the In predicate on the "i" field.
func IIn(vs ...int) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldI, vs...))
}

// INotIn applies the NotIn predicate on the "i" field.
func INotIn(vs ...int) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldI, vs...))
}

// IGT applies the GT predicate on the "i" field.
func IGT(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldGT(FieldI, v))
}

// IGTE applies the GTE predicate on the "i" field.
func IGTE(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldGTE(FieldI, v))
}

// ILT applies the LT predicate on the "i" field.
func ILT(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldLT(FieldI, v))
}

// ILTE applies the LTE predicate on the "i" field.
func ILTE(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldLTE(FieldI, v))
}

// JEQ applies the EQ predicate on the "j" field.
func JEQ(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldJ, v))
}

// JNEQ applies the NEQ predicate on the "j" field.
func JNEQ(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldJ, v))
}

// JIn applies the In predicate on the "j" field.
func JIn(vs ...int) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldJ, vs...))
}

// JNotIn applies the NotIn predicate on the "j" field.
func JNotIn(vs ...int) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldJ, vs...))
}

// JGT applies the GT predicate on the "j" field.
func JGT(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldGT(FieldJ, v))
}

// JGTE applies the GTE predicate on the "j" field.
func JGTE(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldGTE(FieldJ, v))
}

// JLT applies the LT predicate on the "j" field.
func JLT(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldLT(FieldJ, v))
}

// JLTE applies the LTE predicate on the "j" field.
func JLTE(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldLTE(FieldJ, v))
}

// MarginEQ applies the EQ predicate on the "margin" field.
func MarginEQ(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldMargin, v))
}

// MarginNEQ applies the NEQ predicate on the "margin" field.
func MarginNEQ(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldMargin, v))
}

// MarginIn applies the In predicate on the "margin" field.
func MarginIn(vs ...int) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldMargin, vs...))
}

// MarginNotIn applies the NotIn predicate on the "margin" field.
func MarginNotIn(vs ...int) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldMargin, vs...))
}

// MarginGT applies the GT predicate on the "margin" field.
func MarginGT(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldGT(FieldMargin, v))
}

// MarginGTE applies the GTE predicate on the "margin" field.
func MarginGTE(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldGTE(FieldMargin, v))
}

// MarginLT applies the LT predicate on the "margin" field.
func MarginLT(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldLT(FieldMargin, v))
}

// MarginLTE applies the LTE predicate on the "margin" field.
func MarginLTE(v int) predicate.Verdict {
	return predicate.Verdict(sql.FieldLTE(FieldMargin, v))
}

// RawEQ applies the EQ predicate on the "raw" field.
func RawEQ(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldRaw, v))
}

// RawNEQ applies the NEQ predicate on the "raw" field.
func RawNEQ(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldRaw, v))
}

// RawIn applies the In predicate on the "raw" field.
func RawIn(vs ...string) predicate.Verdict {
	return predicate.Verdict(sql.FieldIn(FieldRaw, vs...))
}

// RawNotIn applies the NotIn predicate on the "raw" field.
func RawNotIn(vs ...string) predicate.Verdict {
	return predicate.Verdict(sql.FieldNotIn(FieldRaw, vs...))
}

// RawGT applies the GT predicate on the "raw" field.
func RawGT(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldGT(FieldRaw, v))
}

// RawGTE applies the GTE predicate on the "raw" field.
func RawGTE(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldGTE(FieldRaw, v))
}

// RawLT applies the LT predicate on the "raw" field.
func RawLT(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldLT(FieldRaw, v))
}

// RawLTE applies the LTE predicate on the "raw" field.
func RawLTE(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldLTE(FieldRaw, v))
}

// RawContains applies the Contains predicate on the "raw" field.
func RawContains(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldContains(FieldRaw, v))
}

// RawHasPrefix applies the HasPrefix predicate on the "raw" field.
func RawHasPrefix(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldHasPrefix(FieldRaw, v))
}

// RawHasSuffix applies the HasSuffix predicate on the "raw" field.
func RawHasSuffix(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldHasSuffix(FieldRaw, v))
}

// RawIsNil applies the IsNil predicate on the "raw" field.
func RawIsNil() predicate.Verdict {
	return predicate.Verdict(sql.FieldIsNull(FieldRaw))
}

// RawNotNil applies the NotNil predicate on the "raw" field.
func RawNotNil() predicate.Verdict {
	return predicate.Verdict(sql.FieldNotNull(FieldRaw))
}

// RawEqualFold applies the EqualFold predicate on the "raw" field.
func RawEqualFold(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldEqualFold(FieldRaw, v))
}

// RawContainsFold applies the ContainsFold predicate on the "raw" field.
func RawContainsFold(v string) predicate.Verdict {
	return predicate.Verdict(sql.FieldContainsFold(FieldRaw, v))
}

// ParseOkEQ applies the EQ predicate on the "parse_ok" field.
func ParseOkEQ(v bool) predicate.Verdict {
	return predicate.Verdict(sql.FieldEQ(FieldParseOk, v))
}

// ParseOkNEQ applies the NEQ predicate on the "parse_ok" field.
func ParseOkNEQ(v bool) predicate.Verdict {
	return predicate.Verdict(sql.FieldNEQ(FieldParseOk, v))
}

// HasDeliberation applies the HasEdge predicate on the "deliberation" edge.
func HasDeliberation() predicate.Verdict {
	return predicate.Verdict(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DeliberationTable, DeliberationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDeliberationWith applies the HasEdge predicate on the "deliberation" edge with a given conditions (other predicates).
func HasDeliberationWith(preds ...predicate.Deliberation) predicate.Verdict {
	return predicate.Verdict(func(s *sql.Selector) {
		step := newDeliberationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Verdict) predicate.Verdict {
	return predicate.Verdict(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Verdict) predicate.Verdict {
	return predicate.Verdict(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Verdict) predicate.Verdict {
	return predicate.Verdict(sql.NotPredicates(p))
}

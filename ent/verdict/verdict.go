// Code generated by ent, DO NOT EDIT.

package verdict

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the verdict type in the database.
	Label = "verdict"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "verdict_id"
	// FieldDeliberationID holds the string denoting the deliberation_id field in the database.
	FieldDeliberationID = "deliberation_id"
	// FieldJudge holds the string denoting the judge field in the database.
	FieldJudge = "judge"
	// FieldJudgeIndex holds the string denoting the judge_index field in the database.
	FieldJudgeIndex = "judge_index"
	// FieldI holds the string denoting the i field in the database.
	FieldI = "i"
	// FieldJ holds the string denoting the j field in the database.
	FieldJ = "j"
	// FieldMargin holds the string denoting the margin field in the database.
	FieldMargin = "margin"
	// FieldRaw holds the string denoting the raw field in the database.
	FieldRaw = "raw"
	// FieldParseOk holds the string denoting the parse_ok field in the database.
	FieldParseOk = "parse_ok"
	// EdgeDeliberation holds the string denoting the deliberation edge name in mutations.
	EdgeDeliberation = "deliberation"
	// DeliberationFieldID holds the string denoting the ID field of the Deliberation.
	DeliberationFieldID = "deliberation_id"
	// Table holds the table name of the verdict in the database.
	Table = "verdicts"
	// DeliberationTable is the table that holds the deliberation relation/edge.
	DeliberationTable = "verdicts"
	// DeliberationInverseTable is the table name for the Deliberation entity.
	// It exists in this package in order to avoid circular dependency with the "deliberation" package.
	DeliberationInverseTable = "deliberations"
	// DeliberationColumn is the table column denoting the deliberation relation/edge.
	DeliberationColumn = "deliberation_id"
)

// Columns holds all SQL columns for verdict fields.
var Columns = []string{
	FieldID,
	FieldDeliberationID,
	FieldJudge,
	FieldJudgeIndex,
	FieldI,
	FieldJ,
	FieldMargin,
	FieldRaw,
	FieldParseOk,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultParseOk holds the default value on creation for the "parse_ok" field.
	DefaultParseOk bool
)

// OrderOption defines the ordering options for the Verdict queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDeliberationID orders the results by the deliberation_id field.
func ByDeliberationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliberationID, opts...).ToFunc()
}

// ByJudge orders the results by the judge field.
func ByJudge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJudge, opts...).ToFunc()
}

// ByJudgeIndex orders the results by the judge_index field.
func ByJudgeIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJudgeIndex, opts...).ToFunc()
}

// ByI orders the results by the i field.
func ByI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldI, opts...).ToFunc()
}

// ByJ orders the results by the j field.
func ByJ(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJ, opts...).ToFunc()
}

// ByMargin orders the results by the margin field.
func ByMargin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMargin, opts...).ToFunc()
}

// ByRaw orders the results by the raw field.
func ByRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRaw, opts...).ToFunc()
}

// ByParseOk orders the results by the parse_ok field.
func ByParseOk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParseOk, opts...).ToFunc()
}

// ByDeliberationField orders the results by deliberation field.
func ByDeliberationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeliberationStep(), sql.OrderByField(field, opts...))
	}
}
func newDeliberationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeliberationInverseTable, DeliberationFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DeliberationTable, DeliberationColumn),
	)
}

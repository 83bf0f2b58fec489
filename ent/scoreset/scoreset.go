// Code generated by ent, DO NOT EDIT.

package scoreset

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the scoreset type in the database.
	Label = "score_set"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "score_set_id"
	// FieldDeliberationID holds the string denoting the deliberation_id field in the database.
	FieldDeliberationID = "deliberation_id"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// FieldScores holds the string denoting the scores field in the database.
	FieldScores = "scores"
	// FieldConfidenceIntervals holds the string denoting the confidence_intervals field in the database.
	FieldConfidenceIntervals = "confidence_intervals"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDeliberation holds the string denoting the deliberation edge name in mutations.
	EdgeDeliberation = "deliberation"
	// DeliberationFieldID holds the string denoting the ID field of the Deliberation.
	DeliberationFieldID = "deliberation_id"
	// Table holds the table name of the scoreset in the database.
	Table = "score_sets"
	// DeliberationTable is the table that holds the deliberation relation/edge.
	DeliberationTable = "score_sets"
	// DeliberationInverseTable is the table name for the Deliberation entity.
	// It exists in this package in order to avoid circular dependency with the "deliberation" package.
	DeliberationInverseTable = "deliberations"
	// DeliberationColumn is the table column denoting the deliberation relation/edge.
	DeliberationColumn = "deliberation_id"
)

// Columns holds all SQL columns for scoreset fields.
var Columns = []string{
	FieldID,
	FieldDeliberationID,
	FieldMethod,
	FieldScores,
	FieldConfidenceIntervals,
	FieldMetadata,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Method defines the type for the "method" enum field.
type Method string

// Method values.
const (
	MethodBorda        Method = "borda"
	MethodBradleyTerry Method = "bradley_terry"
	MethodElo          Method = "elo"
)

func (m Method) String() string {
	return string(m)
}

// MethodValidator is a validator for the "method" field enum values. It is called by the builders before save.
func MethodValidator(m Method) error {
	switch m {
	case MethodBorda, MethodBradleyTerry, MethodElo:
		return nil
	default:
		return fmt.Errorf("scoreset: invalid enum value for method field: %q", m)
	}
}

// OrderOption defines the ordering options for the ScoreSet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDeliberationID orders the results by the deliberation_id field.
func ByDeliberationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliberationID, opts...).ToFunc()
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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

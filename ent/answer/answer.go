// Code generated by ent, DO NOT EDIT.

package answer

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the answer type in the database.
	Label = "answer"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "answer_id"
	// FieldDeliberationID holds the string denoting the deliberation_id field in the database.
	FieldDeliberationID = "deliberation_id"
	// FieldRoleIndex holds the string denoting the role_index field in the database.
	FieldRoleIndex = "role_index"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// EdgeDeliberation holds the string denoting the deliberation edge name in mutations.
	EdgeDeliberation = "deliberation"
	// DeliberationFieldID holds the string denoting the ID field of the Deliberation.
	DeliberationFieldID = "deliberation_id"
	// Table holds the table name of the answer in the database.
	Table = "answers"
	// DeliberationTable is the table that holds the deliberation relation/edge.
	DeliberationTable = "answers"
	// DeliberationInverseTable is the table name for the Deliberation entity.
	// It exists in this package in order to avoid circular dependency with the "deliberation" package.
	DeliberationInverseTable = "deliberations"
	// DeliberationColumn is the table column denoting the deliberation relation/edge.
	DeliberationColumn = "deliberation_id"
)

// Columns holds all SQL columns for answer fields.
var Columns = []string{
	FieldID,
	FieldDeliberationID,
	FieldRoleIndex,
	FieldRole,
	FieldModel,
	FieldContent,
	FieldSuccess,
	FieldErrorMessage,
	FieldTokensUsed,
	FieldLatencyMs,
	FieldLabel,
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
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
)

// OrderOption defines the ordering options for the Answer queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDeliberationID orders the results by the deliberation_id field.
func ByDeliberationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliberationID, opts...).ToFunc()
}

// ByRoleIndex orders the results by the role_index field.
func ByRoleIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoleIndex, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
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

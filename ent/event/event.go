// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldDeliberationID holds the string denoting the deliberation_id field in the database.
	FieldDeliberationID = "deliberation_id"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDeliberation holds the string denoting the deliberation edge name in mutations.
	EdgeDeliberation = "deliberation"
	// DeliberationFieldID holds the string denoting the ID field of the Deliberation.
	DeliberationFieldID = "deliberation_id"
	// Table holds the table name of the event in the database.
	Table = "events"
	// DeliberationTable is the table that holds the deliberation relation/edge.
	DeliberationTable = "events"
	// DeliberationInverseTable is the table name for the Deliberation entity.
	// It exists in this package in order to avoid circular dependency with the "deliberation" package.
	DeliberationInverseTable = "deliberations"
	// DeliberationColumn is the table column denoting the deliberation relation/edge.
	DeliberationColumn = "deliberation_id"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldDeliberationID,
	FieldChannel,
	FieldPayload,
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

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDeliberationID orders the results by the deliberation_id field.
func ByDeliberationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliberationID, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
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

// Code generated by ent, DO NOT EDIT.

package deliberation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the deliberation type in the database.
	Label = "deliberation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "deliberation_id"
	// FieldTask holds the string denoting the task field in the database.
	FieldTask = "task"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRoles holds the string denoting the roles field in the database.
	FieldRoles = "roles"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldCouncilID holds the string denoting the council_id field in the database.
	FieldCouncilID = "council_id"
	// FieldChairmanModel holds the string denoting the chairman_model field in the database.
	FieldChairmanModel = "chairman_model"
	// FieldSynthesis holds the string denoting the synthesis field in the database.
	FieldSynthesis = "synthesis"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeAnswers holds the string denoting the answers edge name in mutations.
	EdgeAnswers = "answers"
	// EdgeVerdicts holds the string denoting the verdicts edge name in mutations.
	EdgeVerdicts = "verdicts"
	// EdgeScoreSets holds the string denoting the score_sets edge name in mutations.
	EdgeScoreSets = "score_sets"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeChat holds the string denoting the chat edge name in mutations.
	EdgeChat = "chat"
	// AnswerFieldID holds the string denoting the ID field of the Answer.
	AnswerFieldID = "answer_id"
	// VerdictFieldID holds the string denoting the ID field of the Verdict.
	VerdictFieldID = "verdict_id"
	// ScoreSetFieldID holds the string denoting the ID field of the ScoreSet.
	ScoreSetFieldID = "score_set_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "event_id"
	// ChatFieldID holds the string denoting the ID field of the Chat.
	ChatFieldID = "chat_id"
	// Table holds the table name of the deliberation in the database.
	Table = "deliberations"
	// AnswersTable is the table that holds the answers relation/edge.
	AnswersTable = "answers"
	// AnswersInverseTable is the table name for the Answer entity.
	// It exists in this package in order to avoid circular dependency with the "answer" package.
	AnswersInverseTable = "answers"
	// AnswersColumn is the table column denoting the answers relation/edge.
	AnswersColumn = "deliberation_id"
	// VerdictsTable is the table that holds the verdicts relation/edge.
	VerdictsTable = "verdicts"
	// VerdictsInverseTable is the table name for the Verdict entity.
	// It exists in this package in order to avoid circular dependency with the "verdict" package.
	VerdictsInverseTable = "verdicts"
	// VerdictsColumn is the table column denoting the verdicts relation/edge.
	VerdictsColumn = "deliberation_id"
	// ScoreSetsTable is the table that holds the score_sets relation/edge.
	ScoreSetsTable = "score_sets"
	// ScoreSetsInverseTable is the table name for the ScoreSet entity.
	// It exists in this package in order to avoid circular dependency with the "scoreset" package.
	ScoreSetsInverseTable = "score_sets"
	// ScoreSetsColumn is the table column denoting the score_sets relation/edge.
	ScoreSetsColumn = "deliberation_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "deliberation_id"
	// ChatTable is the table that holds the chat relation/edge.
	ChatTable = "chats"
	// ChatInverseTable is the table name for the Chat entity.
	// It exists in this package in order to avoid circular dependency with the "chat" package.
	ChatInverseTable = "chats"
	// ChatColumn is the table column denoting the chat relation/edge.
	ChatColumn = "deliberation_id"
)

// Columns holds all SQL columns for deliberation fields.
var Columns = []string{
	FieldID,
	FieldTask,
	FieldStatus,
	FieldRoles,
	FieldOptions,
	FieldCouncilID,
	FieldChairmanModel,
	FieldSynthesis,
	FieldErrorMessage,
	FieldAuthor,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDurationMs,
	FieldPodID,
	FieldLastInteractionAt,
	FieldDeletedAt,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCancelling Status = "cancelling"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusTimedOut   Status = "timed_out"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCancelling, StatusCompleted, StatusFailed, StatusCancelled, StatusTimedOut:
		return nil
	default:
		return fmt.Errorf("deliberation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Deliberation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTask orders the results by the task field.
func ByTask(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTask, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCouncilID orders the results by the council_id field.
func ByCouncilID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCouncilID, opts...).ToFunc()
}

// ByChairmanModel orders the results by the chairman_model field.
func ByChairmanModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChairmanModel, opts...).ToFunc()
}

// BySynthesis orders the results by the synthesis field.
func BySynthesis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSynthesis, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByAnswersCount orders the results by answers count.
func ByAnswersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnswersStep(), opts...)
	}
}

// ByAnswers orders the results by answers terms.
func ByAnswers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnswersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByVerdictsCount orders the results by verdicts count.
func ByVerdictsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVerdictsStep(), opts...)
	}
}

// ByVerdicts orders the results by verdicts terms.
func ByVerdicts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVerdictsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByScoreSetsCount orders the results by score_sets count.
func ByScoreSetsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScoreSetsStep(), opts...)
	}
}

// ByScoreSets orders the results by score_sets terms.
func ByScoreSets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScoreSetsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByChatField orders the results by chat field.
func ByChatField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatStep(), sql.OrderByField(field, opts...))
	}
}
func newAnswersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnswersInverseTable, AnswerFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnswersTable, AnswersColumn),
	)
}
func newVerdictsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VerdictsInverseTable, VerdictFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VerdictsTable, VerdictsColumn),
	)
}
func newScoreSetsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScoreSetsInverseTable, ScoreSetFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScoreSetsTable, ScoreSetsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newChatStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatInverseTable, ChatFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ChatTable, ChatColumn),
	)
}

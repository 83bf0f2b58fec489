// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/plenumhq/plenum/ent/chat"
	"github.com/plenumhq/plenum/ent/deliberation"
)

// Deliberation is the model entity for the Deliberation schema.
type Deliberation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// The question put to the council (full-text searchable)
	Task string `json:"task,omitempty"`
	// Status holds the value of the "status" field.
	Status deliberation.Status `json:"status,omitempty"`
	// Role snapshot taken at creation; preset edits never rewrite history
	Roles []map[string]interface{} `json:"roles,omitempty"`
	// Options snapshot taken at creation
	Options map[string]interface{} `json:"options,omitempty"`
	// Preset the run was created from, when any
	CouncilID *string `json:"council_id,omitempty"`
	// ChairmanModel holds the value of the "chairman_model" field.
	ChairmanModel *string `json:"chairman_model,omitempty"`
	// Chairman synthesis (full-text searchable)
	Synthesis *string `json:"synthesis,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// From oauth2-proxy
	Author *string `json:"author,omitempty"`
	// When the deliberation was submitted/created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When the worker started processing (transitioned from pending to in_progress)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int64 `json:"duration_ms,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DeliberationQuery when eager-loading is set.
	Edges        DeliberationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DeliberationEdges holds the relations/edges for other nodes in the graph.
type DeliberationEdges struct {
	// Answers holds the value of the answers edge.
	Answers []*Answer `json:"answers,omitempty"`
	// Verdicts holds the value of the verdicts edge.
	Verdicts []*Verdict `json:"verdicts,omitempty"`
	// ScoreSets holds the value of the score_sets edge.
	ScoreSets []*ScoreSet `json:"score_sets,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// Chat holds the value of the chat edge.
	Chat *Chat `json:"chat,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// AnswersOrErr returns the Answers value or an error if the edge
// was not loaded in eager-loading.
func (e DeliberationEdges) AnswersOrErr() ([]*Answer, error) {
	if e.loadedTypes[0] {
		return e.Answers, nil
	}
	return nil, &NotLoadedError{edge: "answers"}
}

// VerdictsOrErr returns the Verdicts value or an error if the edge
// was not loaded in eager-loading.
func (e DeliberationEdges) VerdictsOrErr() ([]*Verdict, error) {
	if e.loadedTypes[1] {
		return e.Verdicts, nil
	}
	return nil, &NotLoadedError{edge: "verdicts"}
}

// ScoreSetsOrErr returns the ScoreSets value or an error if the edge
// was not loaded in eager-loading.
func (e DeliberationEdges) ScoreSetsOrErr() ([]*ScoreSet, error) {
	if e.loadedTypes[2] {
		return e.ScoreSets, nil
	}
	return nil, &NotLoadedError{edge: "score_sets"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e DeliberationEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[3] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// ChatOrErr returns the Chat value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeliberationEdges) ChatOrErr() (*Chat, error) {
	if e.Chat != nil {
		return e.Chat, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: chat.Label}
	}
	return nil, &NotLoadedError{edge: "chat"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Deliberation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deliberation.FieldRoles, deliberation.FieldOptions:
			values[i] = new([]byte)
		case deliberation.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case deliberation.FieldID, deliberation.FieldTask, deliberation.FieldStatus, deliberation.FieldCouncilID, deliberation.FieldChairmanModel, deliberation.FieldSynthesis, deliberation.FieldErrorMessage, deliberation.FieldAuthor, deliberation.FieldPodID:
			values[i] = new(sql.NullString)
		case deliberation.FieldCreatedAt, deliberation.FieldStartedAt, deliberation.FieldCompletedAt, deliberation.FieldLastInteractionAt, deliberation.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Deliberation fields.
func (_m *Deliberation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deliberation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case deliberation.FieldTask:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task", values[i])
			} else if value.Valid {
				_m.Task = value.String
			}
		case deliberation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = deliberation.Status(value.String)
			}
		case deliberation.FieldRoles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field roles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Roles); err != nil {
					return fmt.Errorf("unmarshal field roles: %w", err)
				}
			}
		case deliberation.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case deliberation.FieldCouncilID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field council_id", values[i])
			} else if value.Valid {
				_m.CouncilID = new(string)
				*_m.CouncilID = value.String
			}
		case deliberation.FieldChairmanModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chairman_model", values[i])
			} else if value.Valid {
				_m.ChairmanModel = new(string)
				*_m.ChairmanModel = value.String
			}
		case deliberation.FieldSynthesis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field synthesis", values[i])
			} else if value.Valid {
				_m.Synthesis = new(string)
				*_m.Synthesis = value.String
			}
		case deliberation.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case deliberation.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = new(string)
				*_m.Author = value.String
			}
		case deliberation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deliberation.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case deliberation.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case deliberation.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int64)
				*_m.DurationMs = value.Int64
			}
		case deliberation.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case deliberation.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		case deliberation.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Deliberation.
// This includes values selected through modifiers, order, etc.
func (_m *Deliberation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnswers queries the "answers" edge of the Deliberation entity.
func (_m *Deliberation) QueryAnswers() *AnswerQuery {
	return NewDeliberationClient(_m.config).QueryAnswers(_m)
}

// QueryVerdicts queries the "verdicts" edge of the Deliberation entity.
func (_m *Deliberation) QueryVerdicts() *VerdictQuery {
	return NewDeliberationClient(_m.config).QueryVerdicts(_m)
}

// QueryScoreSets queries the "score_sets" edge of the Deliberation entity.
func (_m *Deliberation) QueryScoreSets() *ScoreSetQuery {
	return NewDeliberationClient(_m.config).QueryScoreSets(_m)
}

// QueryEvents queries the "events" edge of the Deliberation entity.
func (_m *Deliberation) QueryEvents() *EventQuery {
	return NewDeliberationClient(_m.config).QueryEvents(_m)
}

// QueryChat queries the "chat" edge of the Deliberation entity.
func (_m *Deliberation) QueryChat() *ChatQuery {
	return NewDeliberationClient(_m.config).QueryChat(_m)
}

// Update returns a builder for updating this Deliberation.
// Note that you need to call Deliberation.Unwrap() before calling this method if this Deliberation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Deliberation) Update() *DeliberationUpdateOne {
	return NewDeliberationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Deliberation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Deliberation) Unwrap() *Deliberation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Deliberation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Deliberation) String() string {
	var builder strings.Builder
	builder.WriteString("Deliberation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task=")
	builder.WriteString(_m.Task)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("roles=")
	builder.WriteString(fmt.Sprintf("%v", _m.Roles))
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	if v := _m.CouncilID; v != nil {
		builder.WriteString("council_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ChairmanModel; v != nil {
		builder.WriteString("chairman_model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Synthesis; v != nil {
		builder.WriteString("synthesis=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Author; v != nil {
		builder.WriteString("author=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Deliberations is a parsable slice of Deliberation.
type Deliberations []*Deliberation

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/ent/scoreset"
)

// ScoreSet is the model entity for the ScoreSet schema.
type ScoreSet struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DeliberationID holds the value of the "deliberation_id" field.
	DeliberationID string `json:"deliberation_id,omitempty"`
	// Method holds the value of the "method" field.
	Method scoreset.Method `json:"method,omitempty"`
	// Score per role name
	Scores map[string]float64 `json:"scores,omitempty"`
	// 95% bootstrap intervals; only the elo method populates these
	ConfidenceIntervals map[string][2]float64 `json:"confidence_intervals,omitempty"`
	// Method parameters (iterations, bootstrap rounds/seed, ...)
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScoreSetQuery when eager-loading is set.
	Edges        ScoreSetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScoreSetEdges holds the relations/edges for other nodes in the graph.
type ScoreSetEdges struct {
	// Deliberation holds the value of the deliberation edge.
	Deliberation *Deliberation `json:"deliberation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DeliberationOrErr returns the Deliberation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScoreSetEdges) DeliberationOrErr() (*Deliberation, error) {
	if e.Deliberation != nil {
		return e.Deliberation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: deliberation.Label}
	}
	return nil, &NotLoadedError{edge: "deliberation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScoreSet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scoreset.FieldScores, scoreset.FieldConfidenceIntervals, scoreset.FieldMetadata:
			values[i] = new([]byte)
		case scoreset.FieldID, scoreset.FieldDeliberationID, scoreset.FieldMethod:
			values[i] = new(sql.NullString)
		case scoreset.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScoreSet fields.
func (_m *ScoreSet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scoreset.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scoreset.FieldDeliberationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deliberation_id", values[i])
			} else if value.Valid {
				_m.DeliberationID = value.String
			}
		case scoreset.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = scoreset.Method(value.String)
			}
		case scoreset.FieldScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scores); err != nil {
					return fmt.Errorf("unmarshal field scores: %w", err)
				}
			}
		case scoreset.FieldConfidenceIntervals:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_intervals", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConfidenceIntervals); err != nil {
					return fmt.Errorf("unmarshal field confidence_intervals: %w", err)
				}
			}
		case scoreset.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case scoreset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScoreSet.
// This includes values selected through modifiers, order, etc.
func (_m *ScoreSet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDeliberation queries the "deliberation" edge of the ScoreSet entity.
func (_m *ScoreSet) QueryDeliberation() *DeliberationQuery {
	return NewScoreSetClient(_m.config).QueryDeliberation(_m)
}

// Update returns a builder for updating this ScoreSet.
// Note that you need to call ScoreSet.Unwrap() before calling this method if this ScoreSet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScoreSet) Update() *ScoreSetUpdateOne {
	return NewScoreSetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScoreSet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScoreSet) Unwrap() *ScoreSet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScoreSet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScoreSet) String() string {
	var builder strings.Builder
	builder.WriteString("ScoreSet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("deliberation_id=")
	builder.WriteString(_m.DeliberationID)
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(fmt.Sprintf("%v", _m.Method))
	builder.WriteString(", ")
	builder.WriteString("scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scores))
	builder.WriteString(", ")
	builder.WriteString("confidence_intervals=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceIntervals))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScoreSets is a parsable slice of ScoreSet.
type ScoreSets []*ScoreSet

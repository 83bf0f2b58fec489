// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/ent/verdict"
)

// Verdict is the model entity for the Verdict schema.
type Verdict struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DeliberationID holds the value of the "deliberation_id" field.
	DeliberationID string `json:"deliberation_id,omitempty"`
	// Judging role's name
	Judge string `json:"judge,omitempty"`
	// Judge position among successful answers
	JudgeIndex int `json:"judge_index,omitempty"`
	// First compared answer index (i < j)
	I int `json:"i,omitempty"`
	// J holds the value of the "j" field.
	J int `json:"j,omitempty"`
	// -2..+2, positive favors i
	Margin int `json:"margin,omitempty"`
	// Judge's full reply, kept for diagnostics
	Raw string `json:"raw,omitempty"`
	// ParseOk holds the value of the "parse_ok" field.
	ParseOk bool `json:"parse_ok,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerdictQuery when eager-loading is set.
	Edges        VerdictEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerdictEdges holds the relations/edges for other nodes in the graph.
type VerdictEdges struct {
	// Deliberation holds the value of the deliberation edge.
	Deliberation *Deliberation `json:"deliberation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DeliberationOrErr returns the Deliberation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerdictEdges) DeliberationOrErr() (*Deliberation, error) {
	if e.Deliberation != nil {
		return e.Deliberation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: deliberation.Label}
	}
	return nil, &NotLoadedError{edge: "deliberation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Verdict) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verdict.FieldParseOk:
			values[i] = new(sql.NullBool)
		case verdict.FieldJudgeIndex, verdict.FieldI, verdict.FieldJ, verdict.FieldMargin:
			values[i] = new(sql.NullInt64)
		case verdict.FieldID, verdict.FieldDeliberationID, verdict.FieldJudge, verdict.FieldRaw:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Verdict fields.
func (_m *Verdict) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verdict.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case verdict.FieldDeliberationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deliberation_id", values[i])
			} else if value.Valid {
				_m.DeliberationID = value.String
			}
		case verdict.FieldJudge:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field judge", values[i])
			} else if value.Valid {
				_m.Judge = value.String
			}
		case verdict.FieldJudgeIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field judge_index", values[i])
			} else if value.Valid {
				_m.JudgeIndex = int(value.Int64)
			}
		case verdict.FieldI:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field i", values[i])
			} else if value.Valid {
				_m.I = int(value.Int64)
			}
		case verdict.FieldJ:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field j", values[i])
			} else if value.Valid {
				_m.J = int(value.Int64)
			}
		case verdict.FieldMargin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field margin", values[i])
			} else if value.Valid {
				_m.Margin = int(value.Int64)
			}
		case verdict.FieldRaw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw", values[i])
			} else if value.Valid {
				_m.Raw = value.String
			}
		case verdict.FieldParseOk:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field parse_ok", values[i])
			} else if value.Valid {
				_m.ParseOk = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Verdict.
// This includes values selected through modifiers, order, etc.
func (_m *Verdict) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDeliberation queries the "deliberation" edge of the Verdict entity.
func (_m *Verdict) QueryDeliberation() *DeliberationQuery {
	return NewVerdictClient(_m.config).QueryDeliberation(_m)
}

// Update returns a builder for updating this Verdict.
// Note that you need to call Verdict.Unwrap() before calling this method if this Verdict
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Verdict) Update() *VerdictUpdateOne {
	return NewVerdictClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Verdict entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Verdict) Unwrap() *Verdict {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Verdict is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Verdict) String() string {
	var builder strings.Builder
	builder.WriteString("Verdict(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("deliberation_id=")
	builder.WriteString(_m.DeliberationID)
	builder.WriteString(", ")
	builder.WriteString("judge=")
	builder.WriteString(_m.Judge)
	builder.WriteString(", ")
	builder.WriteString("judge_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.JudgeIndex))
	builder.WriteString(", ")
	builder.WriteString("i=")
	builder.WriteString(fmt.Sprintf("%v", _m.I))
	builder.WriteString(", ")
	builder.WriteString("j=")
	builder.WriteString(fmt.Sprintf("%v", _m.J))
	builder.WriteString(", ")
	builder.WriteString("margin=")
	builder.WriteString(fmt.Sprintf("%v", _m.Margin))
	builder.WriteString(", ")
	builder.WriteString("raw=")
	builder.WriteString(_m.Raw)
	builder.WriteString(", ")
	builder.WriteString("parse_ok=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParseOk))
	builder.WriteByte(')')
	return builder.String()
}

// Verdicts is a parsable slice of Verdict.
type Verdicts []*Verdict

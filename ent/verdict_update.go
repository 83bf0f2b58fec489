// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plenumhq/plenum/ent/predicate"
	"github.com/plenumhq/plenum/ent/verdict"
)

// VerdictUpdate is the builder for updating Verdict entities.
type VerdictUpdate struct {
	config
	hooks    []Hook
	mutation *VerdictMutation
}

// Where appends a list predicates to the VerdictUpdate builder.
func (_u *VerdictUpdate) Where(ps ...predicate.Verdict) *VerdictUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJudge sets the "judge" field.
func (_u *VerdictUpdate) SetJudge(v string) *VerdictUpdate {
	_u.mutation.SetJudge(v)
	return _u
}

// SetNillableJudge sets the "judge" field if the given value is not nil.
func (_u *VerdictUpdate) SetNillableJudge(v *string) *VerdictUpdate {
	if v != nil {
		_u.SetJudge(*v)
	}
	return _u
}

// SetJudgeIndex sets the "judge_index" field.
func (_u *VerdictUpdate) SetJudgeIndex(v int) *VerdictUpdate {
	_u.mutation.ResetJudgeIndex()
	_u.mutation.SetJudgeIndex(v)
	return _u
}

// SetNillableJudgeIndex sets the "judge_index" field if the given value is not nil.
func (_u *VerdictUpdate) SetNillableJudgeIndex(v *int) *VerdictUpdate {
	if v != nil {
		_u.SetJudgeIndex(*v)
	}
	return _u
}

// AddJudgeIndex adds value to the "judge_index" field.
func (_u *VerdictUpdate) AddJudgeIndex(v int) *VerdictUpdate {
	_u.mutation.AddJudgeIndex(v)
	return _u
}

// SetI sets the "i" field.
func (_u *VerdictUpdate) SetI(v int) *VerdictUpdate {
	_u.mutation.ResetI()
	_u.mutation.SetI(v)
	return _u
}

// SetNillableI sets the "i" field if the given value is not nil.
func (_u *VerdictUpdate) SetNillableI(v *int) *VerdictUpdate {
	if v != nil {
		_u.SetI(*v)
	}
	return _u
}

// AddI adds value to the "i" field.
func (_u *VerdictUpdate) AddI(v int) *VerdictUpdate {
	_u.mutation.AddI(v)
	return _u
}

// SetJ sets the "j" field.
func (_u *VerdictUpdate) SetJ(v int) *VerdictUpdate {
	_u.mutation.ResetJ()
	_u.mutation.SetJ(v)
	return _u
}

// SetNillableJ sets the "j" field if the given value is not nil.
func (_u *VerdictUpdate) SetNillableJ(v *int) *VerdictUpdate {
	if v != nil {
		_u.SetJ(*v)
	}
	return _u
}

// AddJ adds value to the "j" field.
func (_u *VerdictUpdate) AddJ(v int) *VerdictUpdate {
	_u.mutation.AddJ(v)
	return _u
}

// SetMargin sets the "margin" field.
func (_u *VerdictUpdate) SetMargin(v int) *VerdictUpdate {
	_u.mutation.ResetMargin()
	_u.mutation.SetMargin(v)
	return _u
}

// SetNillableMargin sets the "margin" field if the given value is not nil.
func (_u *VerdictUpdate) SetNillableMargin(v *int) *VerdictUpdate {
	if v != nil {
		_u.SetMargin(*v)
	}
	return _u
}

// AddMargin adds value to the "margin" field.
func (_u *VerdictUpdate) AddMargin(v int) *VerdictUpdate {
	_u.mutation.AddMargin(v)
	return _u
}

// SetRaw sets the "raw" field.
func (_u *VerdictUpdate) SetRaw(v string) *VerdictUpdate {
	_u.mutation.SetRaw(v)
	return _u
}

// SetNillableRaw sets the "raw" field if the given value is not nil.
func (_u *VerdictUpdate) SetNillableRaw(v *string) *VerdictUpdate {
	if v != nil {
		_u.SetRaw(*v)
	}
	return _u
}

// ClearRaw clears the value of the "raw" field.
func (_u *VerdictUpdate) ClearRaw() *VerdictUpdate {
	_u.mutation.ClearRaw()
	return _u
}

// SetParseOk sets the "parse_ok" field.
func (_u *VerdictUpdate) SetParseOk(v bool) *VerdictUpdate {
	_u.mutation.SetParseOk(v)
	return _u
}

// SetNillableParseOk sets the "parse_ok" field if the given value is not nil.
func (_u *VerdictUpdate) SetNillableParseOk(v *bool) *VerdictUpdate {
	if v != nil {
		_u.SetParseOk(*v)
	}
	return _u
}

// Mutation returns the VerdictMutation object of the builder.
func (_u *VerdictUpdate) Mutation() *VerdictMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerdictUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerdictUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerdictUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerdictUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerdictUpdate) check() error {
	if _u.mutation.DeliberationCleared() && len(_u.mutation.DeliberationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Verdict.deliberation"`)
	}
	return nil
}

func (_u *VerdictUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verdict.Table, verdict.Columns, sqlgraph.NewFieldSpec(verdict.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Judge(); ok {
		_spec.SetField(verdict.FieldJudge, field.TypeString, value)
	}
	if value, ok := _u.mutation.JudgeIndex(); ok {
		_spec.SetField(verdict.FieldJudgeIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJudgeIndex(); ok {
		_spec.AddField(verdict.FieldJudgeIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.I(); ok {
		_spec.SetField(verdict.FieldI, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedI(); ok {
		_spec.AddField(verdict.FieldI, field.TypeInt, value)
	}
	if value, ok := _u.mutation.J(); ok {
		_spec.SetField(verdict.FieldJ, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJ(); ok {
		_spec.AddField(verdict.FieldJ, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Margin(); ok {
		_spec.SetField(verdict.FieldMargin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMargin(); ok {
		_spec.AddField(verdict.FieldMargin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Raw(); ok {
		_spec.SetField(verdict.FieldRaw, field.TypeString, value)
	}
	if _u.mutation.RawCleared() {
		_spec.ClearField(verdict.FieldRaw, field.TypeString)
	}
	if value, ok := _u.mutation.ParseOk(); ok {
		_spec.SetField(verdict.FieldParseOk, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verdict.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerdictUpdateOne is the builder for updating a single Verdict entity.
type VerdictUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerdictMutation
}

// SetJudge sets the "judge" field.
func (_u *VerdictUpdateOne) SetJudge(v string) *VerdictUpdateOne {
	_u.mutation.SetJudge(v)
	return _u
}

// SetNillableJudge sets the "judge" field if the given value is not nil.
func (_u *VerdictUpdateOne) SetNillableJudge(v *string) *VerdictUpdateOne {
	if v != nil {
		_u.SetJudge(*v)
	}
	return _u
}

// SetJudgeIndex sets the "judge_index" field.
func (_u *VerdictUpdateOne) SetJudgeIndex(v int) *VerdictUpdateOne {
	_u.mutation.ResetJudgeIndex()
	_u.mutation.SetJudgeIndex(v)
	return _u
}

// SetNillableJudgeIndex sets the "judge_index" field if the given value is not nil.
func (_u *VerdictUpdateOne) SetNillableJudgeIndex(v *int) *VerdictUpdateOne {
	if v != nil {
		_u.SetJudgeIndex(*v)
	}
	return _u
}

// AddJudgeIndex adds value to the "judge_index" field.
func (_u *VerdictUpdateOne) AddJudgeIndex(v int) *VerdictUpdateOne {
	_u.mutation.AddJudgeIndex(v)
	return _u
}

// SetI sets the "i" field.
func (_u *VerdictUpdateOne) SetI(v int) *VerdictUpdateOne {
	_u.mutation.ResetI()
	_u.mutation.SetI(v)
	return _u
}

// SetNillableI sets the "i" field if the given value is not nil.
func (_u *VerdictUpdateOne) SetNillableI(v *int) *VerdictUpdateOne {
	if v != nil {
		_u.SetI(*v)
	}
	return _u
}

// AddI adds value to the "i" field.
func (_u *VerdictUpdateOne) AddI(v int) *VerdictUpdateOne {
	_u.mutation.AddI(v)
	return _u
}

// SetJ sets the "j" field.
func (_u *VerdictUpdateOne) SetJ(v int) *VerdictUpdateOne {
	_u.mutation.ResetJ()
	_u.mutation.SetJ(v)
	return _u
}

// SetNillableJ sets the "j" field if the given value is not nil.
func (_u *VerdictUpdateOne) SetNillableJ(v *int) *VerdictUpdateOne {
	if v != nil {
		_u.SetJ(*v)
	}
	return _u
}

// AddJ adds value to the "j" field.
func (_u *VerdictUpdateOne) AddJ(v int) *VerdictUpdateOne {
	_u.mutation.AddJ(v)
	return _u
}

// SetMargin sets the "margin" field.
func (_u *VerdictUpdateOne) SetMargin(v int) *VerdictUpdateOne {
	_u.mutation.ResetMargin()
	_u.mutation.SetMargin(v)
	return _u
}

// SetNillableMargin sets the "margin" field if the given value is not nil.
func (_u *VerdictUpdateOne) SetNillableMargin(v *int) *VerdictUpdateOne {
	if v != nil {
		_u.SetMargin(*v)
	}
	return _u
}

// AddMargin adds value to the "margin" field.
func (_u *VerdictUpdateOne) AddMargin(v int) *VerdictUpdateOne {
	_u.mutation.AddMargin(v)
	return _u
}

// SetRaw sets the "raw" field.
func (_u *VerdictUpdateOne) SetRaw(v string) *VerdictUpdateOne {
	_u.mutation.SetRaw(v)
	return _u
}

// SetNillableRaw sets the "raw" field if the given value is not nil.
func (_u *VerdictUpdateOne) SetNillableRaw(v *string) *VerdictUpdateOne {
	if v != nil {
		_u.SetRaw(*v)
	}
	return _u
}

// ClearRaw clears the value of the "raw" field.
func (_u *VerdictUpdateOne) ClearRaw() *VerdictUpdateOne {
	_u.mutation.ClearRaw()
	return _u
}

// SetParseOk sets the "parse_ok" field.
func (_u *VerdictUpdateOne) SetParseOk(v bool) *VerdictUpdateOne {
	_u.mutation.SetParseOk(v)
	return _u
}

// SetNillableParseOk sets the "parse_ok" field if the given value is not nil.
func (_u *VerdictUpdateOne) SetNillableParseOk(v *bool) *VerdictUpdateOne {
	if v != nil {
		_u.SetParseOk(*v)
	}
	return _u
}

// Mutation returns the VerdictMutation object of the builder.
func (_u *VerdictUpdateOne) Mutation() *VerdictMutation {
	return _u.mutation
}

// Where appends a list predicates to the VerdictUpdate builder.
func (_u *VerdictUpdateOne) Where(ps ...predicate.Verdict) *VerdictUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerdictUpdateOne) Select(field string, fields ...string) *VerdictUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Verdict entity.
func (_u *VerdictUpdateOne) Save(ctx context.Context) (*Verdict, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerdictUpdateOne) SaveX(ctx context.Context) *Verdict {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerdictUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerdictUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerdictUpdateOne) check() error {
	if _u.mutation.DeliberationCleared() && len(_u.mutation.DeliberationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Verdict.deliberation"`)
	}
	return nil
}

func (_u *VerdictUpdateOne) sqlSave(ctx context.Context) (_node *Verdict, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verdict.Table, verdict.Columns, sqlgraph.NewFieldSpec(verdict.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Verdict.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verdict.FieldID)
		for _, f := range fields {
			if !verdict.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verdict.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Judge(); ok {
		_spec.SetField(verdict.FieldJudge, field.TypeString, value)
	}
	if value, ok := _u.mutation.JudgeIndex(); ok {
		_spec.SetField(verdict.FieldJudgeIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJudgeIndex(); ok {
		_spec.AddField(verdict.FieldJudgeIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.I(); ok {
		_spec.SetField(verdict.FieldI, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedI(); ok {
		_spec.AddField(verdict.FieldI, field.TypeInt, value)
	}
	if value, ok := _u.mutation.J(); ok {
		_spec.SetField(verdict.FieldJ, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJ(); ok {
		_spec.AddField(verdict.FieldJ, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Margin(); ok {
		_spec.SetField(verdict.FieldMargin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMargin(); ok {
		_spec.AddField(verdict.FieldMargin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Raw(); ok {
		_spec.SetField(verdict.FieldRaw, field.TypeString, value)
	}
	if _u.mutation.RawCleared() {
		_spec.ClearField(verdict.FieldRaw, field.TypeString)
	}
	if value, ok := _u.mutation.ParseOk(); ok {
		_spec.SetField(verdict.FieldParseOk, field.TypeBool, value)
	}
	_node = &Verdict{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verdict.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

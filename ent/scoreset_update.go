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
	"github.com/plenumhq/plenum/ent/scoreset"
)

// ScoreSetUpdate is the builder for updating ScoreSet entities.
type ScoreSetUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreSetMutation
}

// Where appends a list predicates to the ScoreSetUpdate builder.
func (_u *ScoreSetUpdate) Where(ps ...predicate.ScoreSet) *ScoreSetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMethod sets the "method" field.
func (_u *ScoreSetUpdate) SetMethod(v scoreset.Method) *ScoreSetUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ScoreSetUpdate) SetNillableMethod(v *scoreset.Method) *ScoreSetUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *ScoreSetUpdate) SetScores(v map[string]float64) *ScoreSetUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// SetConfidenceIntervals sets the "confidence_intervals" field.
func (_u *ScoreSetUpdate) SetConfidenceIntervals(v map[string][2]float64) *ScoreSetUpdate {
	_u.mutation.SetConfidenceIntervals(v)
	return _u
}

// ClearConfidenceIntervals clears the value of the "confidence_intervals" field.
func (_u *ScoreSetUpdate) ClearConfidenceIntervals() *ScoreSetUpdate {
	_u.mutation.ClearConfidenceIntervals()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ScoreSetUpdate) SetMetadata(v map[string]interface{}) *ScoreSetUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ScoreSetUpdate) ClearMetadata() *ScoreSetUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ScoreSetMutation object of the builder.
func (_u *ScoreSetUpdate) Mutation() *ScoreSetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreSetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreSetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreSetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreSetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreSetUpdate) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := scoreset.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "ScoreSet.method": %w`, err)}
		}
	}
	if _u.mutation.DeliberationCleared() && len(_u.mutation.DeliberationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScoreSet.deliberation"`)
	}
	return nil
}

func (_u *ScoreSetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreset.Table, scoreset.Columns, sqlgraph.NewFieldSpec(scoreset.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(scoreset.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(scoreset.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ConfidenceIntervals(); ok {
		_spec.SetField(scoreset.FieldConfidenceIntervals, field.TypeJSON, value)
	}
	if _u.mutation.ConfidenceIntervalsCleared() {
		_spec.ClearField(scoreset.FieldConfidenceIntervals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(scoreset.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(scoreset.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreSetUpdateOne is the builder for updating a single ScoreSet entity.
type ScoreSetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreSetMutation
}

// SetMethod sets the "method" field.
func (_u *ScoreSetUpdateOne) SetMethod(v scoreset.Method) *ScoreSetUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *ScoreSetUpdateOne) SetNillableMethod(v *scoreset.Method) *ScoreSetUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *ScoreSetUpdateOne) SetScores(v map[string]float64) *ScoreSetUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// SetConfidenceIntervals sets the "confidence_intervals" field.
func (_u *ScoreSetUpdateOne) SetConfidenceIntervals(v map[string][2]float64) *ScoreSetUpdateOne {
	_u.mutation.SetConfidenceIntervals(v)
	return _u
}

// ClearConfidenceIntervals clears the value of the "confidence_intervals" field.
func (_u *ScoreSetUpdateOne) ClearConfidenceIntervals() *ScoreSetUpdateOne {
	_u.mutation.ClearConfidenceIntervals()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ScoreSetUpdateOne) SetMetadata(v map[string]interface{}) *ScoreSetUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ScoreSetUpdateOne) ClearMetadata() *ScoreSetUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ScoreSetMutation object of the builder.
func (_u *ScoreSetUpdateOne) Mutation() *ScoreSetMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScoreSetUpdate builder.
func (_u *ScoreSetUpdateOne) Where(ps ...predicate.ScoreSet) *ScoreSetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreSetUpdateOne) Select(field string, fields ...string) *ScoreSetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScoreSet entity.
func (_u *ScoreSetUpdateOne) Save(ctx context.Context) (*ScoreSet, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreSetUpdateOne) SaveX(ctx context.Context) *ScoreSet {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreSetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreSetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreSetUpdateOne) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := scoreset.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "ScoreSet.method": %w`, err)}
		}
	}
	if _u.mutation.DeliberationCleared() && len(_u.mutation.DeliberationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScoreSet.deliberation"`)
	}
	return nil
}

func (_u *ScoreSetUpdateOne) sqlSave(ctx context.Context) (_node *ScoreSet, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreset.Table, scoreset.Columns, sqlgraph.NewFieldSpec(scoreset.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScoreSet.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scoreset.FieldID)
		for _, f := range fields {
			if !scoreset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scoreset.FieldID {
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
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(scoreset.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(scoreset.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ConfidenceIntervals(); ok {
		_spec.SetField(scoreset.FieldConfidenceIntervals, field.TypeJSON, value)
	}
	if _u.mutation.ConfidenceIntervalsCleared() {
		_spec.ClearField(scoreset.FieldConfidenceIntervals, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(scoreset.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(scoreset.FieldMetadata, field.TypeJSON)
	}
	_node = &ScoreSet{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

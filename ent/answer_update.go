// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plenumhq/plenum/ent/answer"
	"github.com/plenumhq/plenum/ent/predicate"
)

// AnswerUpdate is the builder for updating Answer entities.
type AnswerUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerMutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdate) Where(ps ...predicate.Answer) *AnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoleIndex sets the "role_index" field.
func (_u *AnswerUpdate) SetRoleIndex(v int) *AnswerUpdate {
	_u.mutation.ResetRoleIndex()
	_u.mutation.SetRoleIndex(v)
	return _u
}

// SetNillableRoleIndex sets the "role_index" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableRoleIndex(v *int) *AnswerUpdate {
	if v != nil {
		_u.SetRoleIndex(*v)
	}
	return _u
}

// AddRoleIndex adds value to the "role_index" field.
func (_u *AnswerUpdate) AddRoleIndex(v int) *AnswerUpdate {
	_u.mutation.AddRoleIndex(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *AnswerUpdate) SetRole(v string) *AnswerUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableRole(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AnswerUpdate) SetModel(v string) *AnswerUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableModel(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *AnswerUpdate) SetContent(v string) *AnswerUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableContent(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *AnswerUpdate) ClearContent() *AnswerUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AnswerUpdate) SetSuccess(v bool) *AnswerUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableSuccess(v *bool) *AnswerUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnswerUpdate) SetErrorMessage(v string) *AnswerUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableErrorMessage(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnswerUpdate) ClearErrorMessage() *AnswerUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AnswerUpdate) SetTokensUsed(v int) *AnswerUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableTokensUsed(v *int) *AnswerUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AnswerUpdate) AddTokensUsed(v int) *AnswerUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (_u *AnswerUpdate) ClearTokensUsed() *AnswerUpdate {
	_u.mutation.ClearTokensUsed()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AnswerUpdate) SetLatencyMs(v int64) *AnswerUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableLatencyMs(v *int64) *AnswerUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AnswerUpdate) AddLatencyMs(v int64) *AnswerUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *AnswerUpdate) ClearLatencyMs() *AnswerUpdate {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetLabel sets the "label" field.
func (_u *AnswerUpdate) SetLabel(v string) *AnswerUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *AnswerUpdate) SetNillableLabel(v *string) *AnswerUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *AnswerUpdate) ClearLabel() *AnswerUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdate) Mutation() *AnswerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdate) check() error {
	if _u.mutation.DeliberationCleared() && len(_u.mutation.DeliberationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Answer.deliberation"`)
	}
	return nil
}

func (_u *AnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoleIndex(); ok {
		_spec.SetField(answer.FieldRoleIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoleIndex(); ok {
		_spec.AddField(answer.FieldRoleIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(answer.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(answer.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(answer.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(answer.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(answer.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(answer.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(answer.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(answer.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(answer.FieldTokensUsed, field.TypeInt, value)
	}
	if _u.mutation.TokensUsedCleared() {
		_spec.ClearField(answer.FieldTokensUsed, field.TypeInt)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(answer.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(answer.FieldLatencyMs, field.TypeInt64, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(answer.FieldLatencyMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(answer.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(answer.FieldLabel, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerUpdateOne is the builder for updating a single Answer entity.
type AnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerMutation
}

// SetRoleIndex sets the "role_index" field.
func (_u *AnswerUpdateOne) SetRoleIndex(v int) *AnswerUpdateOne {
	_u.mutation.ResetRoleIndex()
	_u.mutation.SetRoleIndex(v)
	return _u
}

// SetNillableRoleIndex sets the "role_index" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableRoleIndex(v *int) *AnswerUpdateOne {
	if v != nil {
		_u.SetRoleIndex(*v)
	}
	return _u
}

// AddRoleIndex adds value to the "role_index" field.
func (_u *AnswerUpdateOne) AddRoleIndex(v int) *AnswerUpdateOne {
	_u.mutation.AddRoleIndex(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *AnswerUpdateOne) SetRole(v string) *AnswerUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableRole(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AnswerUpdateOne) SetModel(v string) *AnswerUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableModel(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *AnswerUpdateOne) SetContent(v string) *AnswerUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableContent(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *AnswerUpdateOne) ClearContent() *AnswerUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AnswerUpdateOne) SetSuccess(v bool) *AnswerUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableSuccess(v *bool) *AnswerUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnswerUpdateOne) SetErrorMessage(v string) *AnswerUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableErrorMessage(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnswerUpdateOne) ClearErrorMessage() *AnswerUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AnswerUpdateOne) SetTokensUsed(v int) *AnswerUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableTokensUsed(v *int) *AnswerUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AnswerUpdateOne) AddTokensUsed(v int) *AnswerUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (_u *AnswerUpdateOne) ClearTokensUsed() *AnswerUpdateOne {
	_u.mutation.ClearTokensUsed()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *AnswerUpdateOne) SetLatencyMs(v int64) *AnswerUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableLatencyMs(v *int64) *AnswerUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *AnswerUpdateOne) AddLatencyMs(v int64) *AnswerUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *AnswerUpdateOne) ClearLatencyMs() *AnswerUpdateOne {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetLabel sets the "label" field.
func (_u *AnswerUpdateOne) SetLabel(v string) *AnswerUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *AnswerUpdateOne) SetNillableLabel(v *string) *AnswerUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *AnswerUpdateOne) ClearLabel() *AnswerUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// Mutation returns the AnswerMutation object of the builder.
func (_u *AnswerUpdateOne) Mutation() *AnswerMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerUpdate builder.
func (_u *AnswerUpdateOne) Where(ps ...predicate.Answer) *AnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerUpdateOne) Select(field string, fields ...string) *AnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Answer entity.
func (_u *AnswerUpdateOne) Save(ctx context.Context) (*Answer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerUpdateOne) SaveX(ctx context.Context) *Answer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerUpdateOne) check() error {
	if _u.mutation.DeliberationCleared() && len(_u.mutation.DeliberationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Answer.deliberation"`)
	}
	return nil
}

func (_u *AnswerUpdateOne) sqlSave(ctx context.Context) (_node *Answer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answer.Table, answer.Columns, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Answer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answer.FieldID)
		for _, f := range fields {
			if !answer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answer.FieldID {
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
	if value, ok := _u.mutation.RoleIndex(); ok {
		_spec.SetField(answer.FieldRoleIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoleIndex(); ok {
		_spec.AddField(answer.FieldRoleIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(answer.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(answer.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(answer.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(answer.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(answer.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(answer.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(answer.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(answer.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(answer.FieldTokensUsed, field.TypeInt, value)
	}
	if _u.mutation.TokensUsedCleared() {
		_spec.ClearField(answer.FieldTokensUsed, field.TypeInt)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(answer.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(answer.FieldLatencyMs, field.TypeInt64, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(answer.FieldLatencyMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(answer.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(answer.FieldLabel, field.TypeString)
	}
	_node = &Answer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

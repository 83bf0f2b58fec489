// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plenumhq/plenum/ent/answer"
	"github.com/plenumhq/plenum/ent/deliberation"
)

// AnswerCreate is the builder for creating a Answer entity.
type AnswerCreate struct {
	config
	mutation *AnswerMutation
	hooks    []Hook
}

// SetDeliberationID sets the "deliberation_id" field.
func (_c *AnswerCreate) SetDeliberationID(v string) *AnswerCreate {
	_c.mutation.SetDeliberationID(v)
	return _c
}

// SetRoleIndex sets the "role_index" field.
func (_c *AnswerCreate) SetRoleIndex(v int) *AnswerCreate {
	_c.mutation.SetRoleIndex(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *AnswerCreate) SetRole(v string) *AnswerCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *AnswerCreate) SetModel(v string) *AnswerCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *AnswerCreate) SetContent(v string) *AnswerCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableContent(v *string) *AnswerCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *AnswerCreate) SetSuccess(v bool) *AnswerCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableSuccess(v *bool) *AnswerCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnswerCreate) SetErrorMessage(v string) *AnswerCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableErrorMessage(v *string) *AnswerCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *AnswerCreate) SetTokensUsed(v int) *AnswerCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableTokensUsed(v *int) *AnswerCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *AnswerCreate) SetLatencyMs(v int64) *AnswerCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableLatencyMs(v *int64) *AnswerCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetLabel sets the "label" field.
func (_c *AnswerCreate) SetLabel(v string) *AnswerCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_c *AnswerCreate) SetNillableLabel(v *string) *AnswerCreate {
	if v != nil {
		_c.SetLabel(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnswerCreate) SetID(v string) *AnswerCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDeliberation sets the "deliberation" edge to the Deliberation entity.
func (_c *AnswerCreate) SetDeliberation(v *Deliberation) *AnswerCreate {
	return _c.SetDeliberationID(v.ID)
}

// Mutation returns the AnswerMutation object of the builder.
func (_c *AnswerCreate) Mutation() *AnswerMutation {
	return _c.mutation
}

// Save creates the Answer in the database.
func (_c *AnswerCreate) Save(ctx context.Context) (*Answer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerCreate) SaveX(ctx context.Context) *Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerCreate) defaults() {
	if _, ok := _c.mutation.Success(); !ok {
		v := answer.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerCreate) check() error {
	if _, ok := _c.mutation.DeliberationID(); !ok {
		return &ValidationError{Name: "deliberation_id", err: errors.New(`ent: missing required field "Answer.deliberation_id"`)}
	}
	if _, ok := _c.mutation.RoleIndex(); !ok {
		return &ValidationError{Name: "role_index", err: errors.New(`ent: missing required field "Answer.role_index"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Answer.role"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Answer.model"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "Answer.success"`)}
	}
	if len(_c.mutation.DeliberationIDs()) == 0 {
		return &ValidationError{Name: "deliberation", err: errors.New(`ent: missing required edge "Answer.deliberation"`)}
	}
	return nil
}

func (_c *AnswerCreate) sqlSave(ctx context.Context) (*Answer, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Answer.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnswerCreate) createSpec() (*Answer, *sqlgraph.CreateSpec) {
	var (
		_node = &Answer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answer.Table, sqlgraph.NewFieldSpec(answer.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RoleIndex(); ok {
		_spec.SetField(answer.FieldRoleIndex, field.TypeInt, value)
		_node.RoleIndex = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(answer.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(answer.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(answer.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(answer.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(answer.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(answer.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(answer.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(answer.FieldLabel, field.TypeString, value)
		_node.Label = &value
	}
	if nodes := _c.mutation.DeliberationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answer.DeliberationTable,
			Columns: []string{answer.DeliberationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DeliberationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnswerCreateBulk is the builder for creating many Answer entities in bulk.
type AnswerCreateBulk struct {
	config
	err      error
	builders []*AnswerCreate
}

// Save creates the Answer entities in the database.
func (_c *AnswerCreateBulk) Save(ctx context.Context) ([]*Answer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Answer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnswerCreateBulk) SaveX(ctx context.Context) []*Answer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/ent/verdict"
)

// VerdictCreate is the builder for creating a Verdict entity.
type VerdictCreate struct {
	config
	mutation *VerdictMutation
	hooks    []Hook
}

// SetDeliberationID sets the "deliberation_id" field.
func (_c *VerdictCreate) SetDeliberationID(v string) *VerdictCreate {
	_c.mutation.SetDeliberationID(v)
	return _c
}

// SetJudge sets the "judge" field.
func (_c *VerdictCreate) SetJudge(v string) *VerdictCreate {
	_c.mutation.SetJudge(v)
	return _c
}

// SetJudgeIndex sets the "judge_index" field.
func (_c *VerdictCreate) SetJudgeIndex(v int) *VerdictCreate {
	_c.mutation.SetJudgeIndex(v)
	return _c
}

// SetI sets the "i" field.
func (_c *VerdictCreate) SetI(v int) *VerdictCreate {
	_c.mutation.SetI(v)
	return _c
}

// SetJ sets the "j" field.
func (_c *VerdictCreate) SetJ(v int) *VerdictCreate {
	_c.mutation.SetJ(v)
	return _c
}

// SetMargin sets the "margin" field.
func (_c *VerdictCreate) SetMargin(v int) *VerdictCreate {
	_c.mutation.SetMargin(v)
	return _c
}

// SetRaw sets the "raw" field.
func (_c *VerdictCreate) SetRaw(v string) *VerdictCreate {
	_c.mutation.SetRaw(v)
	return _c
}

// SetNillableRaw sets the "raw" field if the given value is not nil.
func (_c *VerdictCreate) SetNillableRaw(v *string) *VerdictCreate {
	if v != nil {
		_c.SetRaw(*v)
	}
	return _c
}

// SetParseOk sets the "parse_ok" field.
func (_c *VerdictCreate) SetParseOk(v bool) *VerdictCreate {
	_c.mutation.SetParseOk(v)
	return _c
}

// SetNillableParseOk sets the "parse_ok" field if the given value is not nil.
func (_c *VerdictCreate) SetNillableParseOk(v *bool) *VerdictCreate {
	if v != nil {
		_c.SetParseOk(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerdictCreate) SetID(v string) *VerdictCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDeliberation sets the "deliberation" edge to the Deliberation entity.
func (_c *VerdictCreate) SetDeliberation(v *Deliberation) *VerdictCreate {
	return _c.SetDeliberationID(v.ID)
}

// Mutation returns the VerdictMutation object of the builder.
func (_c *VerdictCreate) Mutation() *VerdictMutation {
	return _c.mutation
}

// Save creates the Verdict in the database.
func (_c *VerdictCreate) Save(ctx context.Context) (*Verdict, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerdictCreate) SaveX(ctx context.Context) *Verdict {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerdictCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerdictCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerdictCreate) defaults() {
	if _, ok := _c.mutation.ParseOk(); !ok {
		v := verdict.DefaultParseOk
		_c.mutation.SetParseOk(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerdictCreate) check() error {
	if _, ok := _c.mutation.DeliberationID(); !ok {
		return &ValidationError{Name: "deliberation_id", err: errors.New(`ent: missing required field "Verdict.deliberation_id"`)}
	}
	if _, ok := _c.mutation.Judge(); !ok {
		return &ValidationError{Name: "judge", err: errors.New(`ent: missing required field "Verdict.judge"`)}
	}
	if _, ok := _c.mutation.JudgeIndex(); !ok {
		return &ValidationError{Name: "judge_index", err: errors.New(`ent: missing required field "Verdict.judge_index"`)}
	}
	if _, ok := _c.mutation.I(); !ok {
		return &ValidationError{Name: "i", err: errors.New(`ent: missing required field "Verdict.i"`)}
	}
	if _, ok := _c.mutation.J(); !ok {
		return &ValidationError{Name: "j", err: errors.New(`ent: missing required field "Verdict.j"`)}
	}
	if _, ok := _c.mutation.Margin(); !ok {
		return &ValidationError{Name: "margin", err: errors.New(`ent: missing required field "Verdict.margin"`)}
	}
	if _, ok := _c.mutation.ParseOk(); !ok {
		return &ValidationError{Name: "parse_ok", err: errors.New(`ent: missing required field "Verdict.parse_ok"`)}
	}
	if len(_c.mutation.DeliberationIDs()) == 0 {
		return &ValidationError{Name: "deliberation", err: errors.New(`ent: missing required edge "Verdict.deliberation"`)}
	}
	return nil
}

func (_c *VerdictCreate) sqlSave(ctx context.Context) (*Verdict, error) {
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
			return nil, fmt.Errorf("unexpected Verdict.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerdictCreate) createSpec() (*Verdict, *sqlgraph.CreateSpec) {
	var (
		_node = &Verdict{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verdict.Table, sqlgraph.NewFieldSpec(verdict.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Judge(); ok {
		_spec.SetField(verdict.FieldJudge, field.TypeString, value)
		_node.Judge = value
	}
	if value, ok := _c.mutation.JudgeIndex(); ok {
		_spec.SetField(verdict.FieldJudgeIndex, field.TypeInt, value)
		_node.JudgeIndex = value
	}
	if value, ok := _c.mutation.I(); ok {
		_spec.SetField(verdict.FieldI, field.TypeInt, value)
		_node.I = value
	}
	if value, ok := _c.mutation.J(); ok {
		_spec.SetField(verdict.FieldJ, field.TypeInt, value)
		_node.J = value
	}
	if value, ok := _c.mutation.Margin(); ok {
		_spec.SetField(verdict.FieldMargin, field.TypeInt, value)
		_node.Margin = value
	}
	if value, ok := _c.mutation.Raw(); ok {
		_spec.SetField(verdict.FieldRaw, field.TypeString, value)
		_node.Raw = value
	}
	if value, ok := _c.mutation.ParseOk(); ok {
		_spec.SetField(verdict.FieldParseOk, field.TypeBool, value)
		_node.ParseOk = value
	}
	if nodes := _c.mutation.DeliberationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verdict.DeliberationTable,
			Columns: []string{verdict.DeliberationColumn},
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

// VerdictCreateBulk is the builder for creating many Verdict entities in bulk.
type VerdictCreateBulk struct {
	config
	err      error
	builders []*VerdictCreate
}

// Save creates the Verdict entities in the database.
func (_c *VerdictCreateBulk) Save(ctx context.Context) ([]*Verdict, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Verdict, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerdictMutation)
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
func (_c *VerdictCreateBulk) SaveX(ctx context.Context) []*Verdict {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerdictCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerdictCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/ent/scoreset"
)

// ScoreSetCreate is the builder for creating a ScoreSet entity.
type ScoreSetCreate struct {
	config
	mutation *ScoreSetMutation
	hooks    []Hook
}

// SetDeliberationID sets the "deliberation_id" field.
func (_c *ScoreSetCreate) SetDeliberationID(v string) *ScoreSetCreate {
	_c.mutation.SetDeliberationID(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *ScoreSetCreate) SetMethod(v scoreset.Method) *ScoreSetCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetScores sets the "scores" field.
func (_c *ScoreSetCreate) SetScores(v map[string]float64) *ScoreSetCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetConfidenceIntervals sets the "confidence_intervals" field.
func (_c *ScoreSetCreate) SetConfidenceIntervals(v map[string][2]float64) *ScoreSetCreate {
	_c.mutation.SetConfidenceIntervals(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ScoreSetCreate) SetMetadata(v map[string]interface{}) *ScoreSetCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScoreSetCreate) SetCreatedAt(v time.Time) *ScoreSetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScoreSetCreate) SetNillableCreatedAt(v *time.Time) *ScoreSetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScoreSetCreate) SetID(v string) *ScoreSetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDeliberation sets the "deliberation" edge to the Deliberation entity.
func (_c *ScoreSetCreate) SetDeliberation(v *Deliberation) *ScoreSetCreate {
	return _c.SetDeliberationID(v.ID)
}

// Mutation returns the ScoreSetMutation object of the builder.
func (_c *ScoreSetCreate) Mutation() *ScoreSetMutation {
	return _c.mutation
}

// Save creates the ScoreSet in the database.
func (_c *ScoreSetCreate) Save(ctx context.Context) (*ScoreSet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScoreSetCreate) SaveX(ctx context.Context) *ScoreSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreSetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreSetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScoreSetCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scoreset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScoreSetCreate) check() error {
	if _, ok := _c.mutation.DeliberationID(); !ok {
		return &ValidationError{Name: "deliberation_id", err: errors.New(`ent: missing required field "ScoreSet.deliberation_id"`)}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "ScoreSet.method"`)}
	}
	if v, ok := _c.mutation.Method(); ok {
		if err := scoreset.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "ScoreSet.method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Scores(); !ok {
		return &ValidationError{Name: "scores", err: errors.New(`ent: missing required field "ScoreSet.scores"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScoreSet.created_at"`)}
	}
	if len(_c.mutation.DeliberationIDs()) == 0 {
		return &ValidationError{Name: "deliberation", err: errors.New(`ent: missing required edge "ScoreSet.deliberation"`)}
	}
	return nil
}

func (_c *ScoreSetCreate) sqlSave(ctx context.Context) (*ScoreSet, error) {
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
			return nil, fmt.Errorf("unexpected ScoreSet.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScoreSetCreate) createSpec() (*ScoreSet, *sqlgraph.CreateSpec) {
	var (
		_node = &ScoreSet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scoreset.Table, sqlgraph.NewFieldSpec(scoreset.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(scoreset.FieldMethod, field.TypeEnum, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(scoreset.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.ConfidenceIntervals(); ok {
		_spec.SetField(scoreset.FieldConfidenceIntervals, field.TypeJSON, value)
		_node.ConfidenceIntervals = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(scoreset.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scoreset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DeliberationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scoreset.DeliberationTable,
			Columns: []string{scoreset.DeliberationColumn},
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

// ScoreSetCreateBulk is the builder for creating many ScoreSet entities in bulk.
type ScoreSetCreateBulk struct {
	config
	err      error
	builders []*ScoreSetCreate
}

// Save creates the ScoreSet entities in the database.
func (_c *ScoreSetCreateBulk) Save(ctx context.Context) ([]*ScoreSet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScoreSet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScoreSetMutation)
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
func (_c *ScoreSetCreateBulk) SaveX(ctx context.Context) []*ScoreSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreSetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreSetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

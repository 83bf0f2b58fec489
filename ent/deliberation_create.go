// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plenumhq/plenum/ent/answer"
	"github.com/plenumhq/plenum/ent/chat"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/ent/event"
	"github.com/plenumhq/plenum/ent/scoreset"
	"github.com/plenumhq/plenum/ent/verdict"
)

// DeliberationCreate is the builder for creating a Deliberation entity.
type DeliberationCreate struct {
	config
	mutation *DeliberationMutation
	hooks    []Hook
}

// SetTask sets the "task" field.
func (_c *DeliberationCreate) SetTask(v string) *DeliberationCreate {
	_c.mutation.SetTask(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DeliberationCreate) SetStatus(v deliberation.Status) *DeliberationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DeliberationCreate) SetNillableStatus(v *deliberation.Status) *DeliberationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRoles sets the "roles" field.
func (_c *DeliberationCreate) SetRoles(v []map[string]interface{}) *DeliberationCreate {
	_c.mutation.SetRoles(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *DeliberationCreate) SetOptions(v map[string]interface{}) *DeliberationCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCouncilID sets the "council_id" field.
func (_c *DeliberationCreate) SetCouncilID(v string) *DeliberationCreate {
	_c.mutation.SetCouncilID(v)
	return _c
}

// SetNillableCouncilID sets the "council_id" field if the given value is not nil.
func (_c *DeliberationCreate) SetNillableCouncilID(v *string) *DeliberationCreate {
	if v != nil {
		_c.SetCouncilID(*v)
	}
	return _c
}

// SetChairmanModel sets the "chairman_model" field.
func (_c *DeliberationCreate) SetChairmanModel(v string) *DeliberationCreate {
	_c.mutation.SetChairmanModel(v)
	return _c
}

// SetNillableChairmanModel sets the "chairman_model" field if the given value is not nil.
func (_c *DeliberationCreate) SetNillableChairmanModel(v *string) *DeliberationCreate {
	if v != nil {
		_c.SetChairmanModel(*v)
	}
	return _c
}

// SetSynthesis sets the "synthesis" field.
func (_c *DeliberationCreate) SetSynthesis(v string) *DeliberationCreate {
	_c.mutation.SetSynthesis(v)
	return _c
}

// SetNillableSynthesis sets the "synthesis" field if the given value is not nil.
func (_c *DeliberationCreate) SetNillableSynthesis(v *string) *DeliberationCreate {
	if v != nil {
		_c.SetSynthesis(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DeliberationCreate) SetErrorMessage(v string) *DeliberationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DeliberationCreate) SetNillableErrorMessage(v *string) *DeliberationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *DeliberationCreate) SetAuthor(v string) *DeliberationCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *DeliberationCreate) SetNillableAuthor(v *string) *DeliberationCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeliberationCreate) SetCreatedAt(v time.Time) *DeliberationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeliberationCreate) SetNillableCreatedAt(v *time.Time) *DeliberationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *DeliberationCreate) SetStartedAt(v time.Time) *DeliberationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *DeliberationCreate) SetNillableStartedAt(v *time.Time) *DeliberationCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DeliberationCreate) SetCompletedAt(v time.Time) *DeliberationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DeliberationCreate) SetNillableCompletedAt(v *time.Time) *DeliberationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *DeliberationCreate) SetDurationMs(v int64) *DeliberationCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *DeliberationCreate) SetNillableDurationMs(v *int64) *DeliberationCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *DeliberationCreate) SetPodID(v string) *DeliberationCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *DeliberationCreate) SetNillablePodID(v *string) *DeliberationCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *DeliberationCreate) SetLastInteractionAt(v time.Time) *DeliberationCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *DeliberationCreate) SetNillableLastInteractionAt(v *time.Time) *DeliberationCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DeliberationCreate) SetDeletedAt(v time.Time) *DeliberationCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *DeliberationCreate) SetNillableDeletedAt(v *time.Time) *DeliberationCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeliberationCreate) SetID(v string) *DeliberationCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_c *DeliberationCreate) AddAnswerIDs(ids ...string) *DeliberationCreate {
	_c.mutation.AddAnswerIDs(ids...)
	return _c
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_c *DeliberationCreate) AddAnswers(v ...*Answer) *DeliberationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnswerIDs(ids...)
}

// AddVerdictIDs adds the "verdicts" edge to the Verdict entity by IDs.
func (_c *DeliberationCreate) AddVerdictIDs(ids ...string) *DeliberationCreate {
	_c.mutation.AddVerdictIDs(ids...)
	return _c
}

// AddVerdicts adds the "verdicts" edges to the Verdict entity.
func (_c *DeliberationCreate) AddVerdicts(v ...*Verdict) *DeliberationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVerdictIDs(ids...)
}

// AddScoreSetIDs adds the "score_sets" edge to the ScoreSet entity by IDs.
func (_c *DeliberationCreate) AddScoreSetIDs(ids ...string) *DeliberationCreate {
	_c.mutation.AddScoreSetIDs(ids...)
	return _c
}

// AddScoreSets adds the "score_sets" edges to the ScoreSet entity.
func (_c *DeliberationCreate) AddScoreSets(v ...*ScoreSet) *DeliberationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScoreSetIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *DeliberationCreate) AddEventIDs(ids ...int) *DeliberationCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *DeliberationCreate) AddEvents(v ...*Event) *DeliberationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// SetChatID sets the "chat" edge to the Chat entity by ID.
func (_c *DeliberationCreate) SetChatID(id string) *DeliberationCreate {
	_c.mutation.SetChatID(id)
	return _c
}

// SetNillableChatID sets the "chat" edge to the Chat entity by ID if the given value is not nil.
func (_c *DeliberationCreate) SetNillableChatID(id *string) *DeliberationCreate {
	if id != nil {
		_c = _c.SetChatID(*id)
	}
	return _c
}

// SetChat sets the "chat" edge to the Chat entity.
func (_c *DeliberationCreate) SetChat(v *Chat) *DeliberationCreate {
	return _c.SetChatID(v.ID)
}

// Mutation returns the DeliberationMutation object of the builder.
func (_c *DeliberationCreate) Mutation() *DeliberationMutation {
	return _c.mutation
}

// Save creates the Deliberation in the database.
func (_c *DeliberationCreate) Save(ctx context.Context) (*Deliberation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeliberationCreate) SaveX(ctx context.Context) *Deliberation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliberationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliberationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeliberationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := deliberation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deliberation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeliberationCreate) check() error {
	if _, ok := _c.mutation.Task(); !ok {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required field "Deliberation.task"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Deliberation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := deliberation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Deliberation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Roles(); !ok {
		return &ValidationError{Name: "roles", err: errors.New(`ent: missing required field "Deliberation.roles"`)}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "Deliberation.options"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Deliberation.created_at"`)}
	}
	return nil
}

func (_c *DeliberationCreate) sqlSave(ctx context.Context) (*Deliberation, error) {
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
			return nil, fmt.Errorf("unexpected Deliberation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeliberationCreate) createSpec() (*Deliberation, *sqlgraph.CreateSpec) {
	var (
		_node = &Deliberation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deliberation.Table, sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Task(); ok {
		_spec.SetField(deliberation.FieldTask, field.TypeString, value)
		_node.Task = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(deliberation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Roles(); ok {
		_spec.SetField(deliberation.FieldRoles, field.TypeJSON, value)
		_node.Roles = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(deliberation.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CouncilID(); ok {
		_spec.SetField(deliberation.FieldCouncilID, field.TypeString, value)
		_node.CouncilID = &value
	}
	if value, ok := _c.mutation.ChairmanModel(); ok {
		_spec.SetField(deliberation.FieldChairmanModel, field.TypeString, value)
		_node.ChairmanModel = &value
	}
	if value, ok := _c.mutation.Synthesis(); ok {
		_spec.SetField(deliberation.FieldSynthesis, field.TypeString, value)
		_node.Synthesis = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(deliberation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(deliberation.FieldAuthor, field.TypeString, value)
		_node.Author = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deliberation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(deliberation.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(deliberation.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(deliberation.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(deliberation.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(deliberation.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(deliberation.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deliberation.AnswersTable,
			Columns: []string{deliberation.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answer.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VerdictsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deliberation.VerdictsTable,
			Columns: []string{deliberation.VerdictsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verdict.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ScoreSetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deliberation.ScoreSetsTable,
			Columns: []string{deliberation.ScoreSetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scoreset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deliberation.EventsTable,
			Columns: []string{deliberation.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChatIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   deliberation.ChatTable,
			Columns: []string{deliberation.ChatColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chat.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DeliberationCreateBulk is the builder for creating many Deliberation entities in bulk.
type DeliberationCreateBulk struct {
	config
	err      error
	builders []*DeliberationCreate
}

// Save creates the Deliberation entities in the database.
func (_c *DeliberationCreateBulk) Save(ctx context.Context) ([]*Deliberation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Deliberation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeliberationMutation)
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
func (_c *DeliberationCreateBulk) SaveX(ctx context.Context) []*Deliberation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliberationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliberationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

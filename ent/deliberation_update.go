// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/plenumhq/plenum/ent/answer"
	"github.com/plenumhq/plenum/ent/chat"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/ent/event"
	"github.com/plenumhq/plenum/ent/predicate"
	"github.com/plenumhq/plenum/ent/scoreset"
	"github.com/plenumhq/plenum/ent/verdict"
)

// DeliberationUpdate is the builder for updating Deliberation entities.
type DeliberationUpdate struct {
	config
	hooks    []Hook
	mutation *DeliberationMutation
}

// Where appends a list predicates to the DeliberationUpdate builder.
func (_u *DeliberationUpdate) Where(ps ...predicate.Deliberation) *DeliberationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTask sets the "task" field.
func (_u *DeliberationUpdate) SetTask(v string) *DeliberationUpdate {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *DeliberationUpdate) SetNillableTask(v *string) *DeliberationUpdate {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeliberationUpdate) SetStatus(v deliberation.Status) *DeliberationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeliberationUpdate) SetNillableStatus(v *deliberation.Status) *DeliberationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRoles sets the "roles" field.
func (_u *DeliberationUpdate) SetRoles(v []map[string]interface{}) *DeliberationUpdate {
	_u.mutation.SetRoles(v)
	return _u
}

// AppendRoles appends value to the "roles" field.
func (_u *DeliberationUpdate) AppendRoles(v []map[string]interface{}) *DeliberationUpdate {
	_u.mutation.AppendRoles(v)
	return _u
}

// SetOptions sets the "options" field.
func (_u *DeliberationUpdate) SetOptions(v map[string]interface{}) *DeliberationUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// SetCouncilID sets the "council_id" field.
func (_u *DeliberationUpdate) SetCouncilID(v string) *DeliberationUpdate {
	_u.mutation.SetCouncilID(v)
	return _u
}

// SetNillableCouncilID sets the "council_id" field if the given value is not nil.
func (_u *DeliberationUpdate) SetNillableCouncilID(v *string) *DeliberationUpdate {
	if v != nil {
		_u.SetCouncilID(*v)
	}
	return _u
}

// ClearCouncilID clears the value of the "council_id" field.
func (_u *DeliberationUpdate) ClearCouncilID() *DeliberationUpdate {
	_u.mutation.ClearCouncilID()
	return _u
}

// SetChairmanModel sets the "chairman_model" field.
func (_u *DeliberationUpdate) SetChairmanModel(v string) *DeliberationUpdate {
	_u.mutation.SetChairmanModel(v)
	return _u
}

// SetNillableChairmanModel sets the "chairman_model" field if the given value is not nil.
func (_u *DeliberationUpdate) SetNillableChairmanModel(v *string) *DeliberationUpdate {
	if v != nil {
		_u.SetChairmanModel(*v)
	}
	return _u
}

// ClearChairmanModel clears the value of the "chairman_model" field.
func (_u *DeliberationUpdate) ClearChairmanModel() *DeliberationUpdate {
	_u.mutation.ClearChairmanModel()
	return _u
}

// SetSynthesis sets the "synthesis" field.
func (_u *DeliberationUpdate) SetSynthesis(v string) *DeliberationUpdate {
	_u.mutation.SetSynthesis(v)
	return _u
}

// SetNillableSynthesis sets the "synthesis" field if the given value is not nil.
func (_u *DeliberationUpdate) SetNillableSynthesis(v *string) *DeliberationUpdate {
	if v != nil {
		_u.SetSynthesis(*v)
	}
	return _u
}

// ClearSynthesis clears the value of the "synthesis" field.
func (_u *DeliberationUpdate) ClearSynthesis() *DeliberationUpdate {
	_u.mutation.ClearSynthesis()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DeliberationUpdate) SetErrorMessage(v string) *DeliberationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DeliberationUpdate) SetNillableErrorMessage(v *string) *DeliberationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DeliberationUpdate) ClearErrorMessage() *DeliberationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *DeliberationUpdate) SetAuthor(v string) *DeliberationUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *DeliberationUpdate) SetNillableAuthor(v *string) *DeliberationUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *DeliberationUpdate) ClearAuthor() *DeliberationUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DeliberationUpdate) SetCreatedAt(v time.Time) *DeliberationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DeliberationUpdate) SetNillableCreatedAt(v *time.Time) *DeliberationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DeliberationUpdate) SetStartedAt(v time.Time) *DeliberationUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DeliberationUpdate) SetNillableStartedAt(v *time.Time) *DeliberationUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *DeliberationUpdate) ClearStartedAt() *DeliberationUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DeliberationUpdate) SetCompletedAt(v time.Time) *DeliberationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DeliberationUpdate) SetNillableCompletedAt(v *time.Time) *DeliberationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DeliberationUpdate) ClearCompletedAt() *DeliberationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *DeliberationUpdate) SetDurationMs(v int64) *DeliberationUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *DeliberationUpdate) SetNillableDurationMs(v *int64) *DeliberationUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *DeliberationUpdate) AddDurationMs(v int64) *DeliberationUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *DeliberationUpdate) ClearDurationMs() *DeliberationUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *DeliberationUpdate) SetPodID(v string) *DeliberationUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *DeliberationUpdate) SetNillablePodID(v *string) *DeliberationUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *DeliberationUpdate) ClearPodID() *DeliberationUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *DeliberationUpdate) SetLastInteractionAt(v time.Time) *DeliberationUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *DeliberationUpdate) SetNillableLastInteractionAt(v *time.Time) *DeliberationUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *DeliberationUpdate) ClearLastInteractionAt() *DeliberationUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DeliberationUpdate) SetDeletedAt(v time.Time) *DeliberationUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DeliberationUpdate) SetNillableDeletedAt(v *time.Time) *DeliberationUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DeliberationUpdate) ClearDeletedAt() *DeliberationUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *DeliberationUpdate) AddAnswerIDs(ids ...string) *DeliberationUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *DeliberationUpdate) AddAnswers(v ...*Answer) *DeliberationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// AddVerdictIDs adds the "verdicts" edge to the Verdict entity by IDs.
func (_u *DeliberationUpdate) AddVerdictIDs(ids ...string) *DeliberationUpdate {
	_u.mutation.AddVerdictIDs(ids...)
	return _u
}

// AddVerdicts adds the "verdicts" edges to the Verdict entity.
func (_u *DeliberationUpdate) AddVerdicts(v ...*Verdict) *DeliberationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerdictIDs(ids...)
}

// AddScoreSetIDs adds the "score_sets" edge to the ScoreSet entity by IDs.
func (_u *DeliberationUpdate) AddScoreSetIDs(ids ...string) *DeliberationUpdate {
	_u.mutation.AddScoreSetIDs(ids...)
	return _u
}

// AddScoreSets adds the "score_sets" edges to the ScoreSet entity.
func (_u *DeliberationUpdate) AddScoreSets(v ...*ScoreSet) *DeliberationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScoreSetIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *DeliberationUpdate) AddEventIDs(ids ...int) *DeliberationUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *DeliberationUpdate) AddEvents(v ...*Event) *DeliberationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetChatID sets the "chat" edge to the Chat entity by ID.
func (_u *DeliberationUpdate) SetChatID(id string) *DeliberationUpdate {
	_u.mutation.SetChatID(id)
	return _u
}

// SetNillableChatID sets the "chat" edge to the Chat entity by ID if the given value is not nil.
func (_u *DeliberationUpdate) SetNillableChatID(id *string) *DeliberationUpdate {
	if id != nil {
		_u = _u.SetChatID(*id)
	}
	return _u
}

// SetChat sets the "chat" edge to the Chat entity.
func (_u *DeliberationUpdate) SetChat(v *Chat) *DeliberationUpdate {
	return _u.SetChatID(v.ID)
}

// Mutation returns the DeliberationMutation object of the builder.
func (_u *DeliberationUpdate) Mutation() *DeliberationMutation {
	return _u.mutation
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *DeliberationUpdate) ClearAnswers() *DeliberationUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *DeliberationUpdate) RemoveAnswerIDs(ids ...string) *DeliberationUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *DeliberationUpdate) RemoveAnswers(v ...*Answer) *DeliberationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// ClearVerdicts clears all "verdicts" edges to the Verdict entity.
func (_u *DeliberationUpdate) ClearVerdicts() *DeliberationUpdate {
	_u.mutation.ClearVerdicts()
	return _u
}

// RemoveVerdictIDs removes the "verdicts" edge to Verdict entities by IDs.
func (_u *DeliberationUpdate) RemoveVerdictIDs(ids ...string) *DeliberationUpdate {
	_u.mutation.RemoveVerdictIDs(ids...)
	return _u
}

// RemoveVerdicts removes "verdicts" edges to Verdict entities.
func (_u *DeliberationUpdate) RemoveVerdicts(v ...*Verdict) *DeliberationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerdictIDs(ids...)
}

// ClearScoreSets clears all "score_sets" edges to the ScoreSet entity.
func (_u *DeliberationUpdate) ClearScoreSets() *DeliberationUpdate {
	_u.mutation.ClearScoreSets()
	return _u
}

// RemoveScoreSetIDs removes the "score_sets" edge to ScoreSet entities by IDs.
func (_u *DeliberationUpdate) RemoveScoreSetIDs(ids ...string) *DeliberationUpdate {
	_u.mutation.RemoveScoreSetIDs(ids...)
	return _u
}

// RemoveScoreSets removes "score_sets" edges to ScoreSet entities.
func (_u *DeliberationUpdate) RemoveScoreSets(v ...*ScoreSet) *DeliberationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScoreSetIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *DeliberationUpdate) ClearEvents() *DeliberationUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *DeliberationUpdate) RemoveEventIDs(ids ...int) *DeliberationUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *DeliberationUpdate) RemoveEvents(v ...*Event) *DeliberationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearChat clears the "chat" edge to the Chat entity.
func (_u *DeliberationUpdate) ClearChat() *DeliberationUpdate {
	_u.mutation.ClearChat()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeliberationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliberationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeliberationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliberationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliberationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deliberation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Deliberation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DeliberationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliberation.Table, deliberation.Columns, sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(deliberation.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deliberation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Roles(); ok {
		_spec.SetField(deliberation.FieldRoles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deliberation.FieldRoles, value)
		})
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(deliberation.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CouncilID(); ok {
		_spec.SetField(deliberation.FieldCouncilID, field.TypeString, value)
	}
	if _u.mutation.CouncilIDCleared() {
		_spec.ClearField(deliberation.FieldCouncilID, field.TypeString)
	}
	if value, ok := _u.mutation.ChairmanModel(); ok {
		_spec.SetField(deliberation.FieldChairmanModel, field.TypeString, value)
	}
	if _u.mutation.ChairmanModelCleared() {
		_spec.ClearField(deliberation.FieldChairmanModel, field.TypeString)
	}
	if value, ok := _u.mutation.Synthesis(); ok {
		_spec.SetField(deliberation.FieldSynthesis, field.TypeString, value)
	}
	if _u.mutation.SynthesisCleared() {
		_spec.ClearField(deliberation.FieldSynthesis, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(deliberation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(deliberation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(deliberation.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(deliberation.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(deliberation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(deliberation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(deliberation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(deliberation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(deliberation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(deliberation.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(deliberation.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(deliberation.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(deliberation.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(deliberation.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(deliberation.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(deliberation.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(deliberation.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(deliberation.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerdictsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerdictsIDs(); len(nodes) > 0 && !_u.mutation.VerdictsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerdictsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScoreSetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScoreSetsIDs(); len(nodes) > 0 && !_u.mutation.ScoreSetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScoreSetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliberation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeliberationUpdateOne is the builder for updating a single Deliberation entity.
type DeliberationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeliberationMutation
}

// SetTask sets the "task" field.
func (_u *DeliberationUpdateOne) SetTask(v string) *DeliberationUpdateOne {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillableTask(v *string) *DeliberationUpdateOne {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeliberationUpdateOne) SetStatus(v deliberation.Status) *DeliberationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillableStatus(v *deliberation.Status) *DeliberationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRoles sets the "roles" field.
func (_u *DeliberationUpdateOne) SetRoles(v []map[string]interface{}) *DeliberationUpdateOne {
	_u.mutation.SetRoles(v)
	return _u
}

// AppendRoles appends value to the "roles" field.
func (_u *DeliberationUpdateOne) AppendRoles(v []map[string]interface{}) *DeliberationUpdateOne {
	_u.mutation.AppendRoles(v)
	return _u
}

// SetOptions sets the "options" field.
func (_u *DeliberationUpdateOne) SetOptions(v map[string]interface{}) *DeliberationUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// SetCouncilID sets the "council_id" field.
func (_u *DeliberationUpdateOne) SetCouncilID(v string) *DeliberationUpdateOne {
	_u.mutation.SetCouncilID(v)
	return _u
}

// SetNillableCouncilID sets the "council_id" field if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillableCouncilID(v *string) *DeliberationUpdateOne {
	if v != nil {
		_u.SetCouncilID(*v)
	}
	return _u
}

// ClearCouncilID clears the value of the "council_id" field.
func (_u *DeliberationUpdateOne) ClearCouncilID() *DeliberationUpdateOne {
	_u.mutation.ClearCouncilID()
	return _u
}

// SetChairmanModel sets the "chairman_model" field.
func (_u *DeliberationUpdateOne) SetChairmanModel(v string) *DeliberationUpdateOne {
	_u.mutation.SetChairmanModel(v)
	return _u
}

// SetNillableChairmanModel sets the "chairman_model" field if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillableChairmanModel(v *string) *DeliberationUpdateOne {
	if v != nil {
		_u.SetChairmanModel(*v)
	}
	return _u
}

// ClearChairmanModel clears the value of the "chairman_model" field.
func (_u *DeliberationUpdateOne) ClearChairmanModel() *DeliberationUpdateOne {
	_u.mutation.ClearChairmanModel()
	return _u
}

// SetSynthesis sets the "synthesis" field.
func (_u *DeliberationUpdateOne) SetSynthesis(v string) *DeliberationUpdateOne {
	_u.mutation.SetSynthesis(v)
	return _u
}

// SetNillableSynthesis sets the "synthesis" field if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillableSynthesis(v *string) *DeliberationUpdateOne {
	if v != nil {
		_u.SetSynthesis(*v)
	}
	return _u
}

// ClearSynthesis clears the value of the "synthesis" field.
func (_u *DeliberationUpdateOne) ClearSynthesis() *DeliberationUpdateOne {
	_u.mutation.ClearSynthesis()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DeliberationUpdateOne) SetErrorMessage(v string) *DeliberationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillableErrorMessage(v *string) *DeliberationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DeliberationUpdateOne) ClearErrorMessage() *DeliberationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAuthor sets the "author" field.
func (_u *DeliberationUpdateOne) SetAuthor(v string) *DeliberationUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillableAuthor(v *string) *DeliberationUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// ClearAuthor clears the value of the "author" field.
func (_u *DeliberationUpdateOne) ClearAuthor() *DeliberationUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DeliberationUpdateOne) SetCreatedAt(v time.Time) *DeliberationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillableCreatedAt(v *time.Time) *DeliberationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DeliberationUpdateOne) SetStartedAt(v time.Time) *DeliberationUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillableStartedAt(v *time.Time) *DeliberationUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *DeliberationUpdateOne) ClearStartedAt() *DeliberationUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DeliberationUpdateOne) SetCompletedAt(v time.Time) *DeliberationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillableCompletedAt(v *time.Time) *DeliberationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DeliberationUpdateOne) ClearCompletedAt() *DeliberationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *DeliberationUpdateOne) SetDurationMs(v int64) *DeliberationUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillableDurationMs(v *int64) *DeliberationUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *DeliberationUpdateOne) AddDurationMs(v int64) *DeliberationUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *DeliberationUpdateOne) ClearDurationMs() *DeliberationUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *DeliberationUpdateOne) SetPodID(v string) *DeliberationUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillablePodID(v *string) *DeliberationUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *DeliberationUpdateOne) ClearPodID() *DeliberationUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *DeliberationUpdateOne) SetLastInteractionAt(v time.Time) *DeliberationUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillableLastInteractionAt(v *time.Time) *DeliberationUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *DeliberationUpdateOne) ClearLastInteractionAt() *DeliberationUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DeliberationUpdateOne) SetDeletedAt(v time.Time) *DeliberationUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillableDeletedAt(v *time.Time) *DeliberationUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DeliberationUpdateOne) ClearDeletedAt() *DeliberationUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by IDs.
func (_u *DeliberationUpdateOne) AddAnswerIDs(ids ...string) *DeliberationUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the Answer entity.
func (_u *DeliberationUpdateOne) AddAnswers(v ...*Answer) *DeliberationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// AddVerdictIDs adds the "verdicts" edge to the Verdict entity by IDs.
func (_u *DeliberationUpdateOne) AddVerdictIDs(ids ...string) *DeliberationUpdateOne {
	_u.mutation.AddVerdictIDs(ids...)
	return _u
}

// AddVerdicts adds the "verdicts" edges to the Verdict entity.
func (_u *DeliberationUpdateOne) AddVerdicts(v ...*Verdict) *DeliberationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerdictIDs(ids...)
}

// AddScoreSetIDs adds the "score_sets" edge to the ScoreSet entity by IDs.
func (_u *DeliberationUpdateOne) AddScoreSetIDs(ids ...string) *DeliberationUpdateOne {
	_u.mutation.AddScoreSetIDs(ids...)
	return _u
}

// AddScoreSets adds the "score_sets" edges to the ScoreSet entity.
func (_u *DeliberationUpdateOne) AddScoreSets(v ...*ScoreSet) *DeliberationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScoreSetIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *DeliberationUpdateOne) AddEventIDs(ids ...int) *DeliberationUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *DeliberationUpdateOne) AddEvents(v ...*Event) *DeliberationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// SetChatID sets the "chat" edge to the Chat entity by ID.
func (_u *DeliberationUpdateOne) SetChatID(id string) *DeliberationUpdateOne {
	_u.mutation.SetChatID(id)
	return _u
}

// SetNillableChatID sets the "chat" edge to the Chat entity by ID if the given value is not nil.
func (_u *DeliberationUpdateOne) SetNillableChatID(id *string) *DeliberationUpdateOne {
	if id != nil {
		_u = _u.SetChatID(*id)
	}
	return _u
}

// SetChat sets the "chat" edge to the Chat entity.
func (_u *DeliberationUpdateOne) SetChat(v *Chat) *DeliberationUpdateOne {
	return _u.SetChatID(v.ID)
}

// Mutation returns the DeliberationMutation object of the builder.
func (_u *DeliberationUpdateOne) Mutation() *DeliberationMutation {
	return _u.mutation
}

// ClearAnswers clears all "answers" edges to the Answer entity.
func (_u *DeliberationUpdateOne) ClearAnswers() *DeliberationUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to Answer entities by IDs.
func (_u *DeliberationUpdateOne) RemoveAnswerIDs(ids ...string) *DeliberationUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to Answer entities.
func (_u *DeliberationUpdateOne) RemoveAnswers(v ...*Answer) *DeliberationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// ClearVerdicts clears all "verdicts" edges to the Verdict entity.
func (_u *DeliberationUpdateOne) ClearVerdicts() *DeliberationUpdateOne {
	_u.mutation.ClearVerdicts()
	return _u
}

// RemoveVerdictIDs removes the "verdicts" edge to Verdict entities by IDs.
func (_u *DeliberationUpdateOne) RemoveVerdictIDs(ids ...string) *DeliberationUpdateOne {
	_u.mutation.RemoveVerdictIDs(ids...)
	return _u
}

// RemoveVerdicts removes "verdicts" edges to Verdict entities.
func (_u *DeliberationUpdateOne) RemoveVerdicts(v ...*Verdict) *DeliberationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerdictIDs(ids...)
}

// ClearScoreSets clears all "score_sets" edges to the ScoreSet entity.
func (_u *DeliberationUpdateOne) ClearScoreSets() *DeliberationUpdateOne {
	_u.mutation.ClearScoreSets()
	return _u
}

// RemoveScoreSetIDs removes the "score_sets" edge to ScoreSet entities by IDs.
func (_u *DeliberationUpdateOne) RemoveScoreSetIDs(ids ...string) *DeliberationUpdateOne {
	_u.mutation.RemoveScoreSetIDs(ids...)
	return _u
}

// RemoveScoreSets removes "score_sets" edges to ScoreSet entities.
func (_u *DeliberationUpdateOne) RemoveScoreSets(v ...*ScoreSet) *DeliberationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScoreSetIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *DeliberationUpdateOne) ClearEvents() *DeliberationUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *DeliberationUpdateOne) RemoveEventIDs(ids ...int) *DeliberationUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *DeliberationUpdateOne) RemoveEvents(v ...*Event) *DeliberationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// ClearChat clears the "chat" edge to the Chat entity.
func (_u *DeliberationUpdateOne) ClearChat() *DeliberationUpdateOne {
	_u.mutation.ClearChat()
	return _u
}

// Where appends a list predicates to the DeliberationUpdate builder.
func (_u *DeliberationUpdateOne) Where(ps ...predicate.Deliberation) *DeliberationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeliberationUpdateOne) Select(field string, fields ...string) *DeliberationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Deliberation entity.
func (_u *DeliberationUpdateOne) Save(ctx context.Context) (*Deliberation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliberationUpdateOne) SaveX(ctx context.Context) *Deliberation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeliberationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliberationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliberationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deliberation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Deliberation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DeliberationUpdateOne) sqlSave(ctx context.Context) (_node *Deliberation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliberation.Table, deliberation.Columns, sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Deliberation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deliberation.FieldID)
		for _, f := range fields {
			if !deliberation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deliberation.FieldID {
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
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(deliberation.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deliberation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Roles(); ok {
		_spec.SetField(deliberation.FieldRoles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, deliberation.FieldRoles, value)
		})
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(deliberation.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CouncilID(); ok {
		_spec.SetField(deliberation.FieldCouncilID, field.TypeString, value)
	}
	if _u.mutation.CouncilIDCleared() {
		_spec.ClearField(deliberation.FieldCouncilID, field.TypeString)
	}
	if value, ok := _u.mutation.ChairmanModel(); ok {
		_spec.SetField(deliberation.FieldChairmanModel, field.TypeString, value)
	}
	if _u.mutation.ChairmanModelCleared() {
		_spec.ClearField(deliberation.FieldChairmanModel, field.TypeString)
	}
	if value, ok := _u.mutation.Synthesis(); ok {
		_spec.SetField(deliberation.FieldSynthesis, field.TypeString, value)
	}
	if _u.mutation.SynthesisCleared() {
		_spec.ClearField(deliberation.FieldSynthesis, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(deliberation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(deliberation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(deliberation.FieldAuthor, field.TypeString, value)
	}
	if _u.mutation.AuthorCleared() {
		_spec.ClearField(deliberation.FieldAuthor, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(deliberation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(deliberation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(deliberation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(deliberation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(deliberation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(deliberation.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(deliberation.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(deliberation.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(deliberation.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(deliberation.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(deliberation.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(deliberation.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(deliberation.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(deliberation.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerdictsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerdictsIDs(); len(nodes) > 0 && !_u.mutation.VerdictsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerdictsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScoreSetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScoreSetsIDs(); len(nodes) > 0 && !_u.mutation.ScoreSetsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScoreSetsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChatCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChatIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Deliberation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliberation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

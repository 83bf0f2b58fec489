// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/plenumhq/plenum/ent/answer"
	"github.com/plenumhq/plenum/ent/chat"
	"github.com/plenumhq/plenum/ent/chatmessage"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/ent/event"
	"github.com/plenumhq/plenum/ent/predicate"
	"github.com/plenumhq/plenum/ent/scoreset"
	"github.com/plenumhq/plenum/ent/verdict"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswer       = "Answer"
	TypeChat         = "Chat"
	TypeChatMessage  = "ChatMessage"
	TypeDeliberation = "Deliberation"
	TypeEvent        = "Event"
	TypeScoreSet     = "ScoreSet"
	TypeVerdict      = "Verdict"
)

// AnswerMutation represents an operation that mutates the Answer nodes in the graph.
type AnswerMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	role_index          *int
	addrole_index       *int
	role                *string
	model               *string
	content             *string
	success             *bool
	error_message       *string
	tokens_used         *int
	addtokens_used      *int
	latency_ms          *int64
	addlatency_ms       *int64
	label               *string
	clearedFields       map[string]struct{}
	deliberation        *string
	cleareddeliberation bool
	done                bool
	oldValue            func(context.Context) (*Answer, error)
	predicates          []predicate.Answer
}

var _ ent.Mutation = (*AnswerMutation)(nil)

// answerOption allows management of the mutation configuration using functional options.
type answerOption func(*AnswerMutation)

// newAnswerMutation creates new mutation for the Answer entity.
func newAnswerMutation(c config, op Op, opts ...answerOption) *AnswerMutation {
	m := &AnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerID sets the ID field of the mutation.
func withAnswerID(id string) answerOption {
	return func(m *AnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *Answer
		)
		m.oldValue = func(ctx context.Context) (*Answer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Answer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswer sets the old Answer of the mutation.
func withAnswer(node *Answer) answerOption {
	return func(m *AnswerMutation) {
		m.oldValue = func(context.Context) (*Answer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Answer entities.
func (m *AnswerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Answer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeliberationID sets the "deliberation_id" field.
func (m *AnswerMutation) SetDeliberationID(s string) {
	m.deliberation = &s
}

// DeliberationID returns the value of the "deliberation_id" field in the mutation.
func (m *AnswerMutation) DeliberationID() (r string, exists bool) {
	v := m.deliberation
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliberationID returns the old "deliberation_id" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldDeliberationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliberationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliberationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliberationID: %w", err)
	}
	return oldValue.DeliberationID, nil
}

// ResetDeliberationID resets all changes to the "deliberation_id" field.
func (m *AnswerMutation) ResetDeliberationID() {
	m.deliberation = nil
}

// SetRoleIndex sets the "role_index" field.
func (m *AnswerMutation) SetRoleIndex(i int) {
	m.role_index = &i
	m.addrole_index = nil
}

// RoleIndex returns the value of the "role_index" field in the mutation.
func (m *AnswerMutation) RoleIndex() (r int, exists bool) {
	v := m.role_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleIndex returns the old "role_index" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldRoleIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleIndex: %w", err)
	}
	return oldValue.RoleIndex, nil
}

// AddRoleIndex adds i to the "role_index" field.
func (m *AnswerMutation) AddRoleIndex(i int) {
	if m.addrole_index != nil {
		*m.addrole_index += i
	} else {
		m.addrole_index = &i
	}
}

// AddedRoleIndex returns the value that was added to the "role_index" field in this mutation.
func (m *AnswerMutation) AddedRoleIndex() (r int, exists bool) {
	v := m.addrole_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRoleIndex resets all changes to the "role_index" field.
func (m *AnswerMutation) ResetRoleIndex() {
	m.role_index = nil
	m.addrole_index = nil
}

// SetRole sets the "role" field.
func (m *AnswerMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AnswerMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *AnswerMutation) ResetRole() {
	m.role = nil
}

// SetModel sets the "model" field.
func (m *AnswerMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AnswerMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *AnswerMutation) ResetModel() {
	m.model = nil
}

// SetContent sets the "content" field.
func (m *AnswerMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *AnswerMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *AnswerMutation) ClearContent() {
	m.content = nil
	m.clearedFields[answer.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *AnswerMutation) ContentCleared() bool {
	_, ok := m.clearedFields[answer.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *AnswerMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, answer.FieldContent)
}

// SetSuccess sets the "success" field.
func (m *AnswerMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *AnswerMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *AnswerMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AnswerMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AnswerMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AnswerMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[answer.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AnswerMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[answer.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AnswerMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, answer.FieldErrorMessage)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *AnswerMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *AnswerMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *AnswerMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *AnswerMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (m *AnswerMutation) ClearTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
	m.clearedFields[answer.FieldTokensUsed] = struct{}{}
}

// TokensUsedCleared returns if the "tokens_used" field was cleared in this mutation.
func (m *AnswerMutation) TokensUsedCleared() bool {
	_, ok := m.clearedFields[answer.FieldTokensUsed]
	return ok
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *AnswerMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
	delete(m.clearedFields, answer.FieldTokensUsed)
}

// SetLatencyMs sets the "latency_ms" field.
func (m *AnswerMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *AnswerMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *AnswerMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *AnswerMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (m *AnswerMutation) ClearLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	m.clearedFields[answer.FieldLatencyMs] = struct{}{}
}

// LatencyMsCleared returns if the "latency_ms" field was cleared in this mutation.
func (m *AnswerMutation) LatencyMsCleared() bool {
	_, ok := m.clearedFields[answer.FieldLatencyMs]
	return ok
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *AnswerMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	delete(m.clearedFields, answer.FieldLatencyMs)
}

// SetLabel sets the "label" field.
func (m *AnswerMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *AnswerMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the Answer entity.
// If the Answer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerMutation) OldLabel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ClearLabel clears the value of the "label" field.
func (m *AnswerMutation) ClearLabel() {
	m.label = nil
	m.clearedFields[answer.FieldLabel] = struct{}{}
}

// LabelCleared returns if the "label" field was cleared in this mutation.
func (m *AnswerMutation) LabelCleared() bool {
	_, ok := m.clearedFields[answer.FieldLabel]
	return ok
}

// ResetLabel resets all changes to the "label" field.
func (m *AnswerMutation) ResetLabel() {
	m.label = nil
	delete(m.clearedFields, answer.FieldLabel)
}

// ClearDeliberation clears the "deliberation" edge to the Deliberation entity.
func (m *AnswerMutation) ClearDeliberation() {
	m.cleareddeliberation = true
	m.clearedFields[answer.FieldDeliberationID] = struct{}{}
}

// DeliberationCleared reports if the "deliberation" edge to the Deliberation entity was cleared.
func (m *AnswerMutation) DeliberationCleared() bool {
	return m.cleareddeliberation
}

// DeliberationIDs returns the "deliberation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DeliberationID instead. It exists only for internal usage by the builders.
func (m *AnswerMutation) DeliberationIDs() (ids []string) {
	if id := m.deliberation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDeliberation resets all changes to the "deliberation" edge.
func (m *AnswerMutation) ResetDeliberation() {
	m.deliberation = nil
	m.cleareddeliberation = false
}

// Where appends a list predicates to the AnswerMutation builder.
func (m *AnswerMutation) Where(ps ...predicate.Answer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Answer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Answer).
func (m *AnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.deliberation != nil {
		fields = append(fields, answer.FieldDeliberationID)
	}
	if m.role_index != nil {
		fields = append(fields, answer.FieldRoleIndex)
	}
	if m.role != nil {
		fields = append(fields, answer.FieldRole)
	}
	if m.model != nil {
		fields = append(fields, answer.FieldModel)
	}
	if m.content != nil {
		fields = append(fields, answer.FieldContent)
	}
	if m.success != nil {
		fields = append(fields, answer.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, answer.FieldErrorMessage)
	}
	if m.tokens_used != nil {
		fields = append(fields, answer.FieldTokensUsed)
	}
	if m.latency_ms != nil {
		fields = append(fields, answer.FieldLatencyMs)
	}
	if m.label != nil {
		fields = append(fields, answer.FieldLabel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldDeliberationID:
		return m.DeliberationID()
	case answer.FieldRoleIndex:
		return m.RoleIndex()
	case answer.FieldRole:
		return m.Role()
	case answer.FieldModel:
		return m.Model()
	case answer.FieldContent:
		return m.Content()
	case answer.FieldSuccess:
		return m.Success()
	case answer.FieldErrorMessage:
		return m.ErrorMessage()
	case answer.FieldTokensUsed:
		return m.TokensUsed()
	case answer.FieldLatencyMs:
		return m.LatencyMs()
	case answer.FieldLabel:
		return m.Label()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answer.FieldDeliberationID:
		return m.OldDeliberationID(ctx)
	case answer.FieldRoleIndex:
		return m.OldRoleIndex(ctx)
	case answer.FieldRole:
		return m.OldRole(ctx)
	case answer.FieldModel:
		return m.OldModel(ctx)
	case answer.FieldContent:
		return m.OldContent(ctx)
	case answer.FieldSuccess:
		return m.OldSuccess(ctx)
	case answer.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case answer.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case answer.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case answer.FieldLabel:
		return m.OldLabel(ctx)
	}
	return nil, fmt.Errorf("unknown Answer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answer.FieldDeliberationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliberationID(v)
		return nil
	case answer.FieldRoleIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleIndex(v)
		return nil
	case answer.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case answer.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case answer.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case answer.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case answer.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case answer.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case answer.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case answer.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerMutation) AddedFields() []string {
	var fields []string
	if m.addrole_index != nil {
		fields = append(fields, answer.FieldRoleIndex)
	}
	if m.addtokens_used != nil {
		fields = append(fields, answer.FieldTokensUsed)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, answer.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answer.FieldRoleIndex:
		return m.AddedRoleIndex()
	case answer.FieldTokensUsed:
		return m.AddedTokensUsed()
	case answer.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answer.FieldRoleIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRoleIndex(v)
		return nil
	case answer.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case answer.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown Answer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(answer.FieldContent) {
		fields = append(fields, answer.FieldContent)
	}
	if m.FieldCleared(answer.FieldErrorMessage) {
		fields = append(fields, answer.FieldErrorMessage)
	}
	if m.FieldCleared(answer.FieldTokensUsed) {
		fields = append(fields, answer.FieldTokensUsed)
	}
	if m.FieldCleared(answer.FieldLatencyMs) {
		fields = append(fields, answer.FieldLatencyMs)
	}
	if m.FieldCleared(answer.FieldLabel) {
		fields = append(fields, answer.FieldLabel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerMutation) ClearField(name string) error {
	switch name {
	case answer.FieldContent:
		m.ClearContent()
		return nil
	case answer.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case answer.FieldTokensUsed:
		m.ClearTokensUsed()
		return nil
	case answer.FieldLatencyMs:
		m.ClearLatencyMs()
		return nil
	case answer.FieldLabel:
		m.ClearLabel()
		return nil
	}
	return fmt.Errorf("unknown Answer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerMutation) ResetField(name string) error {
	switch name {
	case answer.FieldDeliberationID:
		m.ResetDeliberationID()
		return nil
	case answer.FieldRoleIndex:
		m.ResetRoleIndex()
		return nil
	case answer.FieldRole:
		m.ResetRole()
		return nil
	case answer.FieldModel:
		m.ResetModel()
		return nil
	case answer.FieldContent:
		m.ResetContent()
		return nil
	case answer.FieldSuccess:
		m.ResetSuccess()
		return nil
	case answer.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case answer.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case answer.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case answer.FieldLabel:
		m.ResetLabel()
		return nil
	}
	return fmt.Errorf("unknown Answer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.deliberation != nil {
		edges = append(edges, answer.EdgeDeliberation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case answer.EdgeDeliberation:
		if id := m.deliberation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddeliberation {
		edges = append(edges, answer.EdgeDeliberation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerMutation) EdgeCleared(name string) bool {
	switch name {
	case answer.EdgeDeliberation:
		return m.cleareddeliberation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerMutation) ClearEdge(name string) error {
	switch name {
	case answer.EdgeDeliberation:
		m.ClearDeliberation()
		return nil
	}
	return fmt.Errorf("unknown Answer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerMutation) ResetEdge(name string) error {
	switch name {
	case answer.EdgeDeliberation:
		m.ResetDeliberation()
		return nil
	}
	return fmt.Errorf("unknown Answer edge %s", name)
}

// ChatMutation represents an operation that mutates the Chat nodes in the graph.
type ChatMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	created_at          *time.Time
	created_by          *string
	pod_id              *string
	last_interaction_at *time.Time
	clearedFields       map[string]struct{}
	deliberation        *string
	cleareddeliberation bool
	messages            map[string]struct{}
	removedmessages     map[string]struct{}
	clearedmessages     bool
	done                bool
	oldValue            func(context.Context) (*Chat, error)
	predicates          []predicate.Chat
}

var _ ent.Mutation = (*ChatMutation)(nil)

// chatOption allows management of the mutation configuration using functional options.
type chatOption func(*ChatMutation)

// newChatMutation creates new mutation for the Chat entity.
func newChatMutation(c config, op Op, opts ...chatOption) *ChatMutation {
	m := &ChatMutation{
		config:        c,
		op:            op,
		typ:           TypeChat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatID sets the ID field of the mutation.
func withChatID(id string) chatOption {
	return func(m *ChatMutation) {
		var (
			err   error
			once  sync.Once
			value *Chat
		)
		m.oldValue = func(ctx context.Context) (*Chat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChat sets the old Chat of the mutation.
func withChat(node *Chat) chatOption {
	return func(m *ChatMutation) {
		m.oldValue = func(context.Context) (*Chat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Chat entities.
func (m *ChatMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeliberationID sets the "deliberation_id" field.
func (m *ChatMutation) SetDeliberationID(s string) {
	m.deliberation = &s
}

// DeliberationID returns the value of the "deliberation_id" field in the mutation.
func (m *ChatMutation) DeliberationID() (r string, exists bool) {
	v := m.deliberation
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliberationID returns the old "deliberation_id" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldDeliberationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliberationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliberationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliberationID: %w", err)
	}
	return oldValue.DeliberationID, nil
}

// ResetDeliberationID resets all changes to the "deliberation_id" field.
func (m *ChatMutation) ResetDeliberationID() {
	m.deliberation = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *ChatMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ChatMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldCreatedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ChatMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[chat.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ChatMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[chat.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ChatMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, chat.FieldCreatedBy)
}

// SetPodID sets the "pod_id" field.
func (m *ChatMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *ChatMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *ChatMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[chat.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *ChatMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[chat.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *ChatMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, chat.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *ChatMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *ChatMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Chat entity.
// If the Chat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *ChatMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[chat.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *ChatMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[chat.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *ChatMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, chat.FieldLastInteractionAt)
}

// ClearDeliberation clears the "deliberation" edge to the Deliberation entity.
func (m *ChatMutation) ClearDeliberation() {
	m.cleareddeliberation = true
	m.clearedFields[chat.FieldDeliberationID] = struct{}{}
}

// DeliberationCleared reports if the "deliberation" edge to the Deliberation entity was cleared.
func (m *ChatMutation) DeliberationCleared() bool {
	return m.cleareddeliberation
}

// DeliberationIDs returns the "deliberation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DeliberationID instead. It exists only for internal usage by the builders.
func (m *ChatMutation) DeliberationIDs() (ids []string) {
	if id := m.deliberation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDeliberation resets all changes to the "deliberation" edge.
func (m *ChatMutation) ResetDeliberation() {
	m.deliberation = nil
	m.cleareddeliberation = false
}

// AddMessageIDs adds the "messages" edge to the ChatMessage entity by ids.
func (m *ChatMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ChatMessage entity.
func (m *ChatMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ChatMessage entity was cleared.
func (m *ChatMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ChatMessage entity by IDs.
func (m *ChatMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ChatMessage entity.
func (m *ChatMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ChatMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ChatMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ChatMutation builder.
func (m *ChatMutation) Where(ps ...predicate.Chat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chat).
func (m *ChatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.deliberation != nil {
		fields = append(fields, chat.FieldDeliberationID)
	}
	if m.created_at != nil {
		fields = append(fields, chat.FieldCreatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, chat.FieldCreatedBy)
	}
	if m.pod_id != nil {
		fields = append(fields, chat.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, chat.FieldLastInteractionAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chat.FieldDeliberationID:
		return m.DeliberationID()
	case chat.FieldCreatedAt:
		return m.CreatedAt()
	case chat.FieldCreatedBy:
		return m.CreatedBy()
	case chat.FieldPodID:
		return m.PodID()
	case chat.FieldLastInteractionAt:
		return m.LastInteractionAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chat.FieldDeliberationID:
		return m.OldDeliberationID(ctx)
	case chat.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chat.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case chat.FieldPodID:
		return m.OldPodID(ctx)
	case chat.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	}
	return nil, fmt.Errorf("unknown Chat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chat.FieldDeliberationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliberationID(v)
		return nil
	case chat.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chat.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case chat.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case chat.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	}
	return fmt.Errorf("unknown Chat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Chat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chat.FieldCreatedBy) {
		fields = append(fields, chat.FieldCreatedBy)
	}
	if m.FieldCleared(chat.FieldPodID) {
		fields = append(fields, chat.FieldPodID)
	}
	if m.FieldCleared(chat.FieldLastInteractionAt) {
		fields = append(fields, chat.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMutation) ClearField(name string) error {
	switch name {
	case chat.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case chat.FieldPodID:
		m.ClearPodID()
		return nil
	case chat.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Chat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMutation) ResetField(name string) error {
	switch name {
	case chat.FieldDeliberationID:
		m.ResetDeliberationID()
		return nil
	case chat.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chat.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case chat.FieldPodID:
		m.ResetPodID()
		return nil
	case chat.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Chat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.deliberation != nil {
		edges = append(edges, chat.EdgeDeliberation)
	}
	if m.messages != nil {
		edges = append(edges, chat.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chat.EdgeDeliberation:
		if id := m.deliberation; id != nil {
			return []ent.Value{*id}
		}
	case chat.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, chat.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chat.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddeliberation {
		edges = append(edges, chat.EdgeDeliberation)
	}
	if m.clearedmessages {
		edges = append(edges, chat.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMutation) EdgeCleared(name string) bool {
	switch name {
	case chat.EdgeDeliberation:
		return m.cleareddeliberation
	case chat.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMutation) ClearEdge(name string) error {
	switch name {
	case chat.EdgeDeliberation:
		m.ClearDeliberation()
		return nil
	}
	return fmt.Errorf("unknown Chat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMutation) ResetEdge(name string) error {
	switch name {
	case chat.EdgeDeliberation:
		m.ResetDeliberation()
		return nil
	case chat.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown Chat edge %s", name)
}

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op             Op
	typ            string
	id             *string
	role           *chatmessage.Role
	content        *string
	author         *string
	tokens_used    *int
	addtokens_used *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	chat           *string
	clearedchat    bool
	done           bool
	oldValue       func(context.Context) (*ChatMessage, error)
	predicates     []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatID sets the "chat_id" field.
func (m *ChatMessageMutation) SetChatID(s string) {
	m.chat = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *ChatMessageMutation) ChatID() (r string, exists bool) {
	v := m.chat
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *ChatMessageMutation) ResetChatID() {
	m.chat = nil
}

// SetRole sets the "role" field.
func (m *ChatMessageMutation) SetRole(c chatmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatMessageMutation) Role() (r chatmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldRole(ctx context.Context) (v chatmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatMessageMutation) ResetContent() {
	m.content = nil
}

// SetAuthor sets the "author" field.
func (m *ChatMessageMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *ChatMessageMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *ChatMessageMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[chatmessage.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *ChatMessageMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *ChatMessageMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, chatmessage.FieldAuthor)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *ChatMessageMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *ChatMessageMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *ChatMessageMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *ChatMessageMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensUsed clears the value of the "tokens_used" field.
func (m *ChatMessageMutation) ClearTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
	m.clearedFields[chatmessage.FieldTokensUsed] = struct{}{}
}

// TokensUsedCleared returns if the "tokens_used" field was cleared in this mutation.
func (m *ChatMessageMutation) TokensUsedCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldTokensUsed]
	return ok
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *ChatMessageMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
	delete(m.clearedFields, chatmessage.FieldTokensUsed)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearChat clears the "chat" edge to the Chat entity.
func (m *ChatMessageMutation) ClearChat() {
	m.clearedchat = true
	m.clearedFields[chatmessage.FieldChatID] = struct{}{}
}

// ChatCleared reports if the "chat" edge to the Chat entity was cleared.
func (m *ChatMessageMutation) ChatCleared() bool {
	return m.clearedchat
}

// ChatIDs returns the "chat" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) ChatIDs() (ids []string) {
	if id := m.chat; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChat resets all changes to the "chat" edge.
func (m *ChatMessageMutation) ResetChat() {
	m.chat = nil
	m.clearedchat = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.chat != nil {
		fields = append(fields, chatmessage.FieldChatID)
	}
	if m.role != nil {
		fields = append(fields, chatmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatmessage.FieldContent)
	}
	if m.author != nil {
		fields = append(fields, chatmessage.FieldAuthor)
	}
	if m.tokens_used != nil {
		fields = append(fields, chatmessage.FieldTokensUsed)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldChatID:
		return m.ChatID()
	case chatmessage.FieldRole:
		return m.Role()
	case chatmessage.FieldContent:
		return m.Content()
	case chatmessage.FieldAuthor:
		return m.Author()
	case chatmessage.FieldTokensUsed:
		return m.TokensUsed()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldChatID:
		return m.OldChatID(ctx)
	case chatmessage.FieldRole:
		return m.OldRole(ctx)
	case chatmessage.FieldContent:
		return m.OldContent(ctx)
	case chatmessage.FieldAuthor:
		return m.OldAuthor(ctx)
	case chatmessage.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case chatmessage.FieldRole:
		v, ok := value.(chatmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chatmessage.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case chatmessage.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_used != nil {
		fields = append(fields, chatmessage.FieldTokensUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldTokensUsed:
		return m.AddedTokensUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldAuthor) {
		fields = append(fields, chatmessage.FieldAuthor)
	}
	if m.FieldCleared(chatmessage.FieldTokensUsed) {
		fields = append(fields, chatmessage.FieldTokensUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldAuthor:
		m.ClearAuthor()
		return nil
	case chatmessage.FieldTokensUsed:
		m.ClearTokensUsed()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldChatID:
		m.ResetChatID()
		return nil
	case chatmessage.FieldRole:
		m.ResetRole()
		return nil
	case chatmessage.FieldContent:
		m.ResetContent()
		return nil
	case chatmessage.FieldAuthor:
		m.ResetAuthor()
		return nil
	case chatmessage.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chat != nil {
		edges = append(edges, chatmessage.EdgeChat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeChat:
		if id := m.chat; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchat {
		edges = append(edges, chatmessage.EdgeChat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeChat:
		return m.clearedchat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeChat:
		m.ClearChat()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeChat:
		m.ResetChat()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// DeliberationMutation represents an operation that mutates the Deliberation nodes in the graph.
type DeliberationMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	task                *string
	status              *deliberation.Status
	roles               *[]map[string]interface{}
	appendroles         []map[string]interface{}
	options             *map[string]interface{}
	council_id          *string
	chairman_model      *string
	synthesis           *string
	error_message       *string
	author              *string
	created_at          *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	duration_ms         *int64
	addduration_ms      *int64
	pod_id              *string
	last_interaction_at *time.Time
	deleted_at          *time.Time
	clearedFields       map[string]struct{}
	answers             map[string]struct{}
	removedanswers      map[string]struct{}
	clearedanswers      bool
	verdicts            map[string]struct{}
	removedverdicts     map[string]struct{}
	clearedverdicts     bool
	score_sets          map[string]struct{}
	removedscore_sets   map[string]struct{}
	clearedscore_sets   bool
	events              map[int]struct{}
	removedevents       map[int]struct{}
	clearedevents       bool
	chat                *string
	clearedchat         bool
	done                bool
	oldValue            func(context.Context) (*Deliberation, error)
	predicates          []predicate.Deliberation
}

var _ ent.Mutation = (*DeliberationMutation)(nil)

// deliberationOption allows management of the mutation configuration using functional options.
type deliberationOption func(*DeliberationMutation)

// newDeliberationMutation creates new mutation for the Deliberation entity.
func newDeliberationMutation(c config, op Op, opts ...deliberationOption) *DeliberationMutation {
	m := &DeliberationMutation{
		config:        c,
		op:            op,
		typ:           TypeDeliberation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeliberationID sets the ID field of the mutation.
func withDeliberationID(id string) deliberationOption {
	return func(m *DeliberationMutation) {
		var (
			err   error
			once  sync.Once
			value *Deliberation
		)
		m.oldValue = func(ctx context.Context) (*Deliberation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Deliberation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeliberation sets the old Deliberation of the mutation.
func withDeliberation(node *Deliberation) deliberationOption {
	return func(m *DeliberationMutation) {
		m.oldValue = func(context.Context) (*Deliberation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeliberationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeliberationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Deliberation entities.
func (m *DeliberationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeliberationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeliberationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Deliberation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTask sets the "task" field.
func (m *DeliberationMutation) SetTask(s string) {
	m.task = &s
}

// Task returns the value of the "task" field in the mutation.
func (m *DeliberationMutation) Task() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTask returns the old "task" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldTask(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTask: %w", err)
	}
	return oldValue.Task, nil
}

// ResetTask resets all changes to the "task" field.
func (m *DeliberationMutation) ResetTask() {
	m.task = nil
}

// SetStatus sets the "status" field.
func (m *DeliberationMutation) SetStatus(d deliberation.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DeliberationMutation) Status() (r deliberation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldStatus(ctx context.Context) (v deliberation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DeliberationMutation) ResetStatus() {
	m.status = nil
}

// SetRoles sets the "roles" field.
func (m *DeliberationMutation) SetRoles(value []map[string]interface{}) {
	m.roles = &value
	m.appendroles = nil
}

// Roles returns the value of the "roles" field in the mutation.
func (m *DeliberationMutation) Roles() (r []map[string]interface{}, exists bool) {
	v := m.roles
	if v == nil {
		return
	}
	return *v, true
}

// OldRoles returns the old "roles" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldRoles(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoles: %w", err)
	}
	return oldValue.Roles, nil
}

// AppendRoles adds value to the "roles" field.
func (m *DeliberationMutation) AppendRoles(value []map[string]interface{}) {
	m.appendroles = append(m.appendroles, value...)
}

// AppendedRoles returns the list of values that were appended to the "roles" field in this mutation.
func (m *DeliberationMutation) AppendedRoles() ([]map[string]interface{}, bool) {
	if len(m.appendroles) == 0 {
		return nil, false
	}
	return m.appendroles, true
}

// ResetRoles resets all changes to the "roles" field.
func (m *DeliberationMutation) ResetRoles() {
	m.roles = nil
	m.appendroles = nil
}

// SetOptions sets the "options" field.
func (m *DeliberationMutation) SetOptions(value map[string]interface{}) {
	m.options = &value
}

// Options returns the value of the "options" field in the mutation.
func (m *DeliberationMutation) Options() (r map[string]interface{}, exists bool) {
	v := m.options
	if v == nil {
		return
	}
	return *v, true
}

// OldOptions returns the old "options" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldOptions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptions: %w", err)
	}
	return oldValue.Options, nil
}

// ResetOptions resets all changes to the "options" field.
func (m *DeliberationMutation) ResetOptions() {
	m.options = nil
}

// SetCouncilID sets the "council_id" field.
func (m *DeliberationMutation) SetCouncilID(s string) {
	m.council_id = &s
}

// CouncilID returns the value of the "council_id" field in the mutation.
func (m *DeliberationMutation) CouncilID() (r string, exists bool) {
	v := m.council_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCouncilID returns the old "council_id" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldCouncilID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCouncilID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCouncilID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCouncilID: %w", err)
	}
	return oldValue.CouncilID, nil
}

// ClearCouncilID clears the value of the "council_id" field.
func (m *DeliberationMutation) ClearCouncilID() {
	m.council_id = nil
	m.clearedFields[deliberation.FieldCouncilID] = struct{}{}
}

// CouncilIDCleared returns if the "council_id" field was cleared in this mutation.
func (m *DeliberationMutation) CouncilIDCleared() bool {
	_, ok := m.clearedFields[deliberation.FieldCouncilID]
	return ok
}

// ResetCouncilID resets all changes to the "council_id" field.
func (m *DeliberationMutation) ResetCouncilID() {
	m.council_id = nil
	delete(m.clearedFields, deliberation.FieldCouncilID)
}

// SetChairmanModel sets the "chairman_model" field.
func (m *DeliberationMutation) SetChairmanModel(s string) {
	m.chairman_model = &s
}

// ChairmanModel returns the value of the "chairman_model" field in the mutation.
func (m *DeliberationMutation) ChairmanModel() (r string, exists bool) {
	v := m.chairman_model
	if v == nil {
		return
	}
	return *v, true
}

// OldChairmanModel returns the old "chairman_model" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldChairmanModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChairmanModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChairmanModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChairmanModel: %w", err)
	}
	return oldValue.ChairmanModel, nil
}

// ClearChairmanModel clears the value of the "chairman_model" field.
func (m *DeliberationMutation) ClearChairmanModel() {
	m.chairman_model = nil
	m.clearedFields[deliberation.FieldChairmanModel] = struct{}{}
}

// ChairmanModelCleared returns if the "chairman_model" field was cleared in this mutation.
func (m *DeliberationMutation) ChairmanModelCleared() bool {
	_, ok := m.clearedFields[deliberation.FieldChairmanModel]
	return ok
}

// ResetChairmanModel resets all changes to the "chairman_model" field.
func (m *DeliberationMutation) ResetChairmanModel() {
	m.chairman_model = nil
	delete(m.clearedFields, deliberation.FieldChairmanModel)
}

// SetSynthesis sets the "synthesis" field.
func (m *DeliberationMutation) SetSynthesis(s string) {
	m.synthesis = &s
}

// Synthesis returns the value of the "synthesis" field in the mutation.
func (m *DeliberationMutation) Synthesis() (r string, exists bool) {
	v := m.synthesis
	if v == nil {
		return
	}
	return *v, true
}

// OldSynthesis returns the old "synthesis" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldSynthesis(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSynthesis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSynthesis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSynthesis: %w", err)
	}
	return oldValue.Synthesis, nil
}

// ClearSynthesis clears the value of the "synthesis" field.
func (m *DeliberationMutation) ClearSynthesis() {
	m.synthesis = nil
	m.clearedFields[deliberation.FieldSynthesis] = struct{}{}
}

// SynthesisCleared returns if the "synthesis" field was cleared in this mutation.
func (m *DeliberationMutation) SynthesisCleared() bool {
	_, ok := m.clearedFields[deliberation.FieldSynthesis]
	return ok
}

// ResetSynthesis resets all changes to the "synthesis" field.
func (m *DeliberationMutation) ResetSynthesis() {
	m.synthesis = nil
	delete(m.clearedFields, deliberation.FieldSynthesis)
}

// SetErrorMessage sets the "error_message" field.
func (m *DeliberationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DeliberationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DeliberationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[deliberation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DeliberationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[deliberation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DeliberationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, deliberation.FieldErrorMessage)
}

// SetAuthor sets the "author" field.
func (m *DeliberationMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *DeliberationMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldAuthor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *DeliberationMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[deliberation.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *DeliberationMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[deliberation.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *DeliberationMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, deliberation.FieldAuthor)
}

// SetCreatedAt sets the "created_at" field.
func (m *DeliberationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeliberationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeliberationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *DeliberationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *DeliberationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *DeliberationMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[deliberation.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *DeliberationMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[deliberation.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *DeliberationMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, deliberation.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *DeliberationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DeliberationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DeliberationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[deliberation.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DeliberationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[deliberation.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DeliberationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, deliberation.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *DeliberationMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *DeliberationMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *DeliberationMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *DeliberationMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *DeliberationMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[deliberation.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *DeliberationMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[deliberation.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *DeliberationMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, deliberation.FieldDurationMs)
}

// SetPodID sets the "pod_id" field.
func (m *DeliberationMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *DeliberationMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *DeliberationMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[deliberation.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *DeliberationMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[deliberation.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *DeliberationMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, deliberation.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *DeliberationMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *DeliberationMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *DeliberationMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[deliberation.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *DeliberationMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[deliberation.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *DeliberationMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, deliberation.FieldLastInteractionAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *DeliberationMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *DeliberationMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Deliberation entity.
// If the Deliberation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliberationMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *DeliberationMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[deliberation.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *DeliberationMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[deliberation.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *DeliberationMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, deliberation.FieldDeletedAt)
}

// AddAnswerIDs adds the "answers" edge to the Answer entity by ids.
func (m *DeliberationMutation) AddAnswerIDs(ids ...string) {
	if m.answers == nil {
		m.answers = make(map[string]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the Answer entity.
func (m *DeliberationMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the Answer entity was cleared.
func (m *DeliberationMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the Answer entity by IDs.
func (m *DeliberationMutation) RemoveAnswerIDs(ids ...string) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the Answer entity.
func (m *DeliberationMutation) RemovedAnswersIDs() (ids []string) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *DeliberationMutation) AnswersIDs() (ids []string) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *DeliberationMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// AddVerdictIDs adds the "verdicts" edge to the Verdict entity by ids.
func (m *DeliberationMutation) AddVerdictIDs(ids ...string) {
	if m.verdicts == nil {
		m.verdicts = make(map[string]struct{})
	}
	for i := range ids {
		m.verdicts[ids[i]] = struct{}{}
	}
}

// ClearVerdicts clears the "verdicts" edge to the Verdict entity.
func (m *DeliberationMutation) ClearVerdicts() {
	m.clearedverdicts = true
}

// VerdictsCleared reports if the "verdicts" edge to the Verdict entity was cleared.
func (m *DeliberationMutation) VerdictsCleared() bool {
	return m.clearedverdicts
}

// RemoveVerdictIDs removes the "verdicts" edge to the Verdict entity by IDs.
func (m *DeliberationMutation) RemoveVerdictIDs(ids ...string) {
	if m.removedverdicts == nil {
		m.removedverdicts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.verdicts, ids[i])
		m.removedverdicts[ids[i]] = struct{}{}
	}
}

// RemovedVerdicts returns the removed IDs of the "verdicts" edge to the Verdict entity.
func (m *DeliberationMutation) RemovedVerdictsIDs() (ids []string) {
	for id := range m.removedverdicts {
		ids = append(ids, id)
	}
	return
}

// VerdictsIDs returns the "verdicts" edge IDs in the mutation.
func (m *DeliberationMutation) VerdictsIDs() (ids []string) {
	for id := range m.verdicts {
		ids = append(ids, id)
	}
	return
}

// ResetVerdicts resets all changes to the "verdicts" edge.
func (m *DeliberationMutation) ResetVerdicts() {
	m.verdicts = nil
	m.clearedverdicts = false
	m.removedverdicts = nil
}

// AddScoreSetIDs adds the "score_sets" edge to the ScoreSet entity by ids.
func (m *DeliberationMutation) AddScoreSetIDs(ids ...string) {
	if m.score_sets == nil {
		m.score_sets = make(map[string]struct{})
	}
	for i := range ids {
		m.score_sets[ids[i]] = struct{}{}
	}
}

// ClearScoreSets clears the "score_sets" edge to the ScoreSet entity.
func (m *DeliberationMutation) ClearScoreSets() {
	m.clearedscore_sets = true
}

// ScoreSetsCleared reports if the "score_sets" edge to the ScoreSet entity was cleared.
func (m *DeliberationMutation) ScoreSetsCleared() bool {
	return m.clearedscore_sets
}

// RemoveScoreSetIDs removes the "score_sets" edge to the ScoreSet entity by IDs.
func (m *DeliberationMutation) RemoveScoreSetIDs(ids ...string) {
	if m.removedscore_sets == nil {
		m.removedscore_sets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.score_sets, ids[i])
		m.removedscore_sets[ids[i]] = struct{}{}
	}
}

// RemovedScoreSets returns the removed IDs of the "score_sets" edge to the ScoreSet entity.
func (m *DeliberationMutation) RemovedScoreSetsIDs() (ids []string) {
	for id := range m.removedscore_sets {
		ids = append(ids, id)
	}
	return
}

// ScoreSetsIDs returns the "score_sets" edge IDs in the mutation.
func (m *DeliberationMutation) ScoreSetsIDs() (ids []string) {
	for id := range m.score_sets {
		ids = append(ids, id)
	}
	return
}

// ResetScoreSets resets all changes to the "score_sets" edge.
func (m *DeliberationMutation) ResetScoreSets() {
	m.score_sets = nil
	m.clearedscore_sets = false
	m.removedscore_sets = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *DeliberationMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *DeliberationMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *DeliberationMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *DeliberationMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *DeliberationMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *DeliberationMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *DeliberationMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// SetChatID sets the "chat" edge to the Chat entity by id.
func (m *DeliberationMutation) SetChatID(id string) {
	m.chat = &id
}

// ClearChat clears the "chat" edge to the Chat entity.
func (m *DeliberationMutation) ClearChat() {
	m.clearedchat = true
}

// ChatCleared reports if the "chat" edge to the Chat entity was cleared.
func (m *DeliberationMutation) ChatCleared() bool {
	return m.clearedchat
}

// ChatID returns the "chat" edge ID in the mutation.
func (m *DeliberationMutation) ChatID() (id string, exists bool) {
	if m.chat != nil {
		return *m.chat, true
	}
	return
}

// ChatIDs returns the "chat" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatID instead. It exists only for internal usage by the builders.
func (m *DeliberationMutation) ChatIDs() (ids []string) {
	if id := m.chat; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChat resets all changes to the "chat" edge.
func (m *DeliberationMutation) ResetChat() {
	m.chat = nil
	m.clearedchat = false
}

// Where appends a list predicates to the DeliberationMutation builder.
func (m *DeliberationMutation) Where(ps ...predicate.Deliberation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeliberationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeliberationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Deliberation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeliberationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeliberationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Deliberation).
func (m *DeliberationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeliberationMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.task != nil {
		fields = append(fields, deliberation.FieldTask)
	}
	if m.status != nil {
		fields = append(fields, deliberation.FieldStatus)
	}
	if m.roles != nil {
		fields = append(fields, deliberation.FieldRoles)
	}
	if m.options != nil {
		fields = append(fields, deliberation.FieldOptions)
	}
	if m.council_id != nil {
		fields = append(fields, deliberation.FieldCouncilID)
	}
	if m.chairman_model != nil {
		fields = append(fields, deliberation.FieldChairmanModel)
	}
	if m.synthesis != nil {
		fields = append(fields, deliberation.FieldSynthesis)
	}
	if m.error_message != nil {
		fields = append(fields, deliberation.FieldErrorMessage)
	}
	if m.author != nil {
		fields = append(fields, deliberation.FieldAuthor)
	}
	if m.created_at != nil {
		fields = append(fields, deliberation.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, deliberation.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, deliberation.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, deliberation.FieldDurationMs)
	}
	if m.pod_id != nil {
		fields = append(fields, deliberation.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, deliberation.FieldLastInteractionAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, deliberation.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeliberationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deliberation.FieldTask:
		return m.Task()
	case deliberation.FieldStatus:
		return m.Status()
	case deliberation.FieldRoles:
		return m.Roles()
	case deliberation.FieldOptions:
		return m.Options()
	case deliberation.FieldCouncilID:
		return m.CouncilID()
	case deliberation.FieldChairmanModel:
		return m.ChairmanModel()
	case deliberation.FieldSynthesis:
		return m.Synthesis()
	case deliberation.FieldErrorMessage:
		return m.ErrorMessage()
	case deliberation.FieldAuthor:
		return m.Author()
	case deliberation.FieldCreatedAt:
		return m.CreatedAt()
	case deliberation.FieldStartedAt:
		return m.StartedAt()
	case deliberation.FieldCompletedAt:
		return m.CompletedAt()
	case deliberation.FieldDurationMs:
		return m.DurationMs()
	case deliberation.FieldPodID:
		return m.PodID()
	case deliberation.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case deliberation.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeliberationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deliberation.FieldTask:
		return m.OldTask(ctx)
	case deliberation.FieldStatus:
		return m.OldStatus(ctx)
	case deliberation.FieldRoles:
		return m.OldRoles(ctx)
	case deliberation.FieldOptions:
		return m.OldOptions(ctx)
	case deliberation.FieldCouncilID:
		return m.OldCouncilID(ctx)
	case deliberation.FieldChairmanModel:
		return m.OldChairmanModel(ctx)
	case deliberation.FieldSynthesis:
		return m.OldSynthesis(ctx)
	case deliberation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case deliberation.FieldAuthor:
		return m.OldAuthor(ctx)
	case deliberation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deliberation.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case deliberation.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case deliberation.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case deliberation.FieldPodID:
		return m.OldPodID(ctx)
	case deliberation.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case deliberation.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Deliberation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliberationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deliberation.FieldTask:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTask(v)
		return nil
	case deliberation.FieldStatus:
		v, ok := value.(deliberation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case deliberation.FieldRoles:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoles(v)
		return nil
	case deliberation.FieldOptions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptions(v)
		return nil
	case deliberation.FieldCouncilID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCouncilID(v)
		return nil
	case deliberation.FieldChairmanModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChairmanModel(v)
		return nil
	case deliberation.FieldSynthesis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSynthesis(v)
		return nil
	case deliberation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case deliberation.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case deliberation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deliberation.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case deliberation.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case deliberation.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case deliberation.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case deliberation.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case deliberation.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Deliberation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeliberationMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, deliberation.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeliberationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deliberation.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliberationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deliberation.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown Deliberation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeliberationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deliberation.FieldCouncilID) {
		fields = append(fields, deliberation.FieldCouncilID)
	}
	if m.FieldCleared(deliberation.FieldChairmanModel) {
		fields = append(fields, deliberation.FieldChairmanModel)
	}
	if m.FieldCleared(deliberation.FieldSynthesis) {
		fields = append(fields, deliberation.FieldSynthesis)
	}
	if m.FieldCleared(deliberation.FieldErrorMessage) {
		fields = append(fields, deliberation.FieldErrorMessage)
	}
	if m.FieldCleared(deliberation.FieldAuthor) {
		fields = append(fields, deliberation.FieldAuthor)
	}
	if m.FieldCleared(deliberation.FieldStartedAt) {
		fields = append(fields, deliberation.FieldStartedAt)
	}
	if m.FieldCleared(deliberation.FieldCompletedAt) {
		fields = append(fields, deliberation.FieldCompletedAt)
	}
	if m.FieldCleared(deliberation.FieldDurationMs) {
		fields = append(fields, deliberation.FieldDurationMs)
	}
	if m.FieldCleared(deliberation.FieldPodID) {
		fields = append(fields, deliberation.FieldPodID)
	}
	if m.FieldCleared(deliberation.FieldLastInteractionAt) {
		fields = append(fields, deliberation.FieldLastInteractionAt)
	}
	if m.FieldCleared(deliberation.FieldDeletedAt) {
		fields = append(fields, deliberation.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeliberationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeliberationMutation) ClearField(name string) error {
	switch name {
	case deliberation.FieldCouncilID:
		m.ClearCouncilID()
		return nil
	case deliberation.FieldChairmanModel:
		m.ClearChairmanModel()
		return nil
	case deliberation.FieldSynthesis:
		m.ClearSynthesis()
		return nil
	case deliberation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case deliberation.FieldAuthor:
		m.ClearAuthor()
		return nil
	case deliberation.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case deliberation.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case deliberation.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case deliberation.FieldPodID:
		m.ClearPodID()
		return nil
	case deliberation.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case deliberation.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Deliberation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeliberationMutation) ResetField(name string) error {
	switch name {
	case deliberation.FieldTask:
		m.ResetTask()
		return nil
	case deliberation.FieldStatus:
		m.ResetStatus()
		return nil
	case deliberation.FieldRoles:
		m.ResetRoles()
		return nil
	case deliberation.FieldOptions:
		m.ResetOptions()
		return nil
	case deliberation.FieldCouncilID:
		m.ResetCouncilID()
		return nil
	case deliberation.FieldChairmanModel:
		m.ResetChairmanModel()
		return nil
	case deliberation.FieldSynthesis:
		m.ResetSynthesis()
		return nil
	case deliberation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case deliberation.FieldAuthor:
		m.ResetAuthor()
		return nil
	case deliberation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deliberation.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case deliberation.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case deliberation.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case deliberation.FieldPodID:
		m.ResetPodID()
		return nil
	case deliberation.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case deliberation.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Deliberation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeliberationMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.answers != nil {
		edges = append(edges, deliberation.EdgeAnswers)
	}
	if m.verdicts != nil {
		edges = append(edges, deliberation.EdgeVerdicts)
	}
	if m.score_sets != nil {
		edges = append(edges, deliberation.EdgeScoreSets)
	}
	if m.events != nil {
		edges = append(edges, deliberation.EdgeEvents)
	}
	if m.chat != nil {
		edges = append(edges, deliberation.EdgeChat)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeliberationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deliberation.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	case deliberation.EdgeVerdicts:
		ids := make([]ent.Value, 0, len(m.verdicts))
		for id := range m.verdicts {
			ids = append(ids, id)
		}
		return ids
	case deliberation.EdgeScoreSets:
		ids := make([]ent.Value, 0, len(m.score_sets))
		for id := range m.score_sets {
			ids = append(ids, id)
		}
		return ids
	case deliberation.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case deliberation.EdgeChat:
		if id := m.chat; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeliberationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedanswers != nil {
		edges = append(edges, deliberation.EdgeAnswers)
	}
	if m.removedverdicts != nil {
		edges = append(edges, deliberation.EdgeVerdicts)
	}
	if m.removedscore_sets != nil {
		edges = append(edges, deliberation.EdgeScoreSets)
	}
	if m.removedevents != nil {
		edges = append(edges, deliberation.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeliberationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case deliberation.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	case deliberation.EdgeVerdicts:
		ids := make([]ent.Value, 0, len(m.removedverdicts))
		for id := range m.removedverdicts {
			ids = append(ids, id)
		}
		return ids
	case deliberation.EdgeScoreSets:
		ids := make([]ent.Value, 0, len(m.removedscore_sets))
		for id := range m.removedscore_sets {
			ids = append(ids, id)
		}
		return ids
	case deliberation.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeliberationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedanswers {
		edges = append(edges, deliberation.EdgeAnswers)
	}
	if m.clearedverdicts {
		edges = append(edges, deliberation.EdgeVerdicts)
	}
	if m.clearedscore_sets {
		edges = append(edges, deliberation.EdgeScoreSets)
	}
	if m.clearedevents {
		edges = append(edges, deliberation.EdgeEvents)
	}
	if m.clearedchat {
		edges = append(edges, deliberation.EdgeChat)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeliberationMutation) EdgeCleared(name string) bool {
	switch name {
	case deliberation.EdgeAnswers:
		return m.clearedanswers
	case deliberation.EdgeVerdicts:
		return m.clearedverdicts
	case deliberation.EdgeScoreSets:
		return m.clearedscore_sets
	case deliberation.EdgeEvents:
		return m.clearedevents
	case deliberation.EdgeChat:
		return m.clearedchat
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeliberationMutation) ClearEdge(name string) error {
	switch name {
	case deliberation.EdgeChat:
		m.ClearChat()
		return nil
	}
	return fmt.Errorf("unknown Deliberation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeliberationMutation) ResetEdge(name string) error {
	switch name {
	case deliberation.EdgeAnswers:
		m.ResetAnswers()
		return nil
	case deliberation.EdgeVerdicts:
		m.ResetVerdicts()
		return nil
	case deliberation.EdgeScoreSets:
		m.ResetScoreSets()
		return nil
	case deliberation.EdgeEvents:
		m.ResetEvents()
		return nil
	case deliberation.EdgeChat:
		m.ResetChat()
		return nil
	}
	return fmt.Errorf("unknown Deliberation edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	channel             *string
	payload             *map[string]interface{}
	created_at          *time.Time
	clearedFields       map[string]struct{}
	deliberation        *string
	cleareddeliberation bool
	done                bool
	oldValue            func(context.Context) (*Event, error)
	predicates          []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeliberationID sets the "deliberation_id" field.
func (m *EventMutation) SetDeliberationID(s string) {
	m.deliberation = &s
}

// DeliberationID returns the value of the "deliberation_id" field in the mutation.
func (m *EventMutation) DeliberationID() (r string, exists bool) {
	v := m.deliberation
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliberationID returns the old "deliberation_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldDeliberationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliberationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliberationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliberationID: %w", err)
	}
	return oldValue.DeliberationID, nil
}

// ResetDeliberationID resets all changes to the "deliberation_id" field.
func (m *EventMutation) ResetDeliberationID() {
	m.deliberation = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDeliberation clears the "deliberation" edge to the Deliberation entity.
func (m *EventMutation) ClearDeliberation() {
	m.cleareddeliberation = true
	m.clearedFields[event.FieldDeliberationID] = struct{}{}
}

// DeliberationCleared reports if the "deliberation" edge to the Deliberation entity was cleared.
func (m *EventMutation) DeliberationCleared() bool {
	return m.cleareddeliberation
}

// DeliberationIDs returns the "deliberation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DeliberationID instead. It exists only for internal usage by the builders.
func (m *EventMutation) DeliberationIDs() (ids []string) {
	if id := m.deliberation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDeliberation resets all changes to the "deliberation" edge.
func (m *EventMutation) ResetDeliberation() {
	m.deliberation = nil
	m.cleareddeliberation = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.deliberation != nil {
		fields = append(fields, event.FieldDeliberationID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldDeliberationID:
		return m.DeliberationID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldDeliberationID:
		return m.OldDeliberationID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldDeliberationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliberationID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldDeliberationID:
		m.ResetDeliberationID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.deliberation != nil {
		edges = append(edges, event.EdgeDeliberation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeDeliberation:
		if id := m.deliberation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddeliberation {
		edges = append(edges, event.EdgeDeliberation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeDeliberation:
		return m.cleareddeliberation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeDeliberation:
		m.ClearDeliberation()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeDeliberation:
		m.ResetDeliberation()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// ScoreSetMutation represents an operation that mutates the ScoreSet nodes in the graph.
type ScoreSetMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	method               *scoreset.Method
	scores               *map[string]float64
	confidence_intervals *map[string][2]float64
	metadata             *map[string]interface{}
	created_at           *time.Time
	clearedFields        map[string]struct{}
	deliberation         *string
	cleareddeliberation  bool
	done                 bool
	oldValue             func(context.Context) (*ScoreSet, error)
	predicates           []predicate.ScoreSet
}

var _ ent.Mutation = (*ScoreSetMutation)(nil)

// scoresetOption allows management of the mutation configuration using functional options.
type scoresetOption func(*ScoreSetMutation)

// newScoreSetMutation creates new mutation for the ScoreSet entity.
func newScoreSetMutation(c config, op Op, opts ...scoresetOption) *ScoreSetMutation {
	m := &ScoreSetMutation{
		config:        c,
		op:            op,
		typ:           TypeScoreSet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScoreSetID sets the ID field of the mutation.
func withScoreSetID(id string) scoresetOption {
	return func(m *ScoreSetMutation) {
		var (
			err   error
			once  sync.Once
			value *ScoreSet
		)
		m.oldValue = func(ctx context.Context) (*ScoreSet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScoreSet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScoreSet sets the old ScoreSet of the mutation.
func withScoreSet(node *ScoreSet) scoresetOption {
	return func(m *ScoreSetMutation) {
		m.oldValue = func(context.Context) (*ScoreSet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScoreSetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScoreSetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScoreSet entities.
func (m *ScoreSetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScoreSetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScoreSetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScoreSet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeliberationID sets the "deliberation_id" field.
func (m *ScoreSetMutation) SetDeliberationID(s string) {
	m.deliberation = &s
}

// DeliberationID returns the value of the "deliberation_id" field in the mutation.
func (m *ScoreSetMutation) DeliberationID() (r string, exists bool) {
	v := m.deliberation
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliberationID returns the old "deliberation_id" field's value of the ScoreSet entity.
// If the ScoreSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreSetMutation) OldDeliberationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliberationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliberationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliberationID: %w", err)
	}
	return oldValue.DeliberationID, nil
}

// ResetDeliberationID resets all changes to the "deliberation_id" field.
func (m *ScoreSetMutation) ResetDeliberationID() {
	m.deliberation = nil
}

// SetMethod sets the "method" field.
func (m *ScoreSetMutation) SetMethod(s scoreset.Method) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *ScoreSetMutation) Method() (r scoreset.Method, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the ScoreSet entity.
// If the ScoreSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreSetMutation) OldMethod(ctx context.Context) (v scoreset.Method, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *ScoreSetMutation) ResetMethod() {
	m.method = nil
}

// SetScores sets the "scores" field.
func (m *ScoreSetMutation) SetScores(value map[string]float64) {
	m.scores = &value
}

// Scores returns the value of the "scores" field in the mutation.
func (m *ScoreSetMutation) Scores() (r map[string]float64, exists bool) {
	v := m.scores
	if v == nil {
		return
	}
	return *v, true
}

// OldScores returns the old "scores" field's value of the ScoreSet entity.
// If the ScoreSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreSetMutation) OldScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScores: %w", err)
	}
	return oldValue.Scores, nil
}

// ResetScores resets all changes to the "scores" field.
func (m *ScoreSetMutation) ResetScores() {
	m.scores = nil
}

// SetConfidenceIntervals sets the "confidence_intervals" field.
func (m *ScoreSetMutation) SetConfidenceIntervals(value map[string][2]float64) {
	m.confidence_intervals = &value
}

// ConfidenceIntervals returns the value of the "confidence_intervals" field in the mutation.
func (m *ScoreSetMutation) ConfidenceIntervals() (r map[string][2]float64, exists bool) {
	v := m.confidence_intervals
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceIntervals returns the old "confidence_intervals" field's value of the ScoreSet entity.
// If the ScoreSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreSetMutation) OldConfidenceIntervals(ctx context.Context) (v map[string][2]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceIntervals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceIntervals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceIntervals: %w", err)
	}
	return oldValue.ConfidenceIntervals, nil
}

// ClearConfidenceIntervals clears the value of the "confidence_intervals" field.
func (m *ScoreSetMutation) ClearConfidenceIntervals() {
	m.confidence_intervals = nil
	m.clearedFields[scoreset.FieldConfidenceIntervals] = struct{}{}
}

// ConfidenceIntervalsCleared returns if the "confidence_intervals" field was cleared in this mutation.
func (m *ScoreSetMutation) ConfidenceIntervalsCleared() bool {
	_, ok := m.clearedFields[scoreset.FieldConfidenceIntervals]
	return ok
}

// ResetConfidenceIntervals resets all changes to the "confidence_intervals" field.
func (m *ScoreSetMutation) ResetConfidenceIntervals() {
	m.confidence_intervals = nil
	delete(m.clearedFields, scoreset.FieldConfidenceIntervals)
}

// SetMetadata sets the "metadata" field.
func (m *ScoreSetMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ScoreSetMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ScoreSet entity.
// If the ScoreSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreSetMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ScoreSetMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[scoreset.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ScoreSetMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[scoreset.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ScoreSetMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, scoreset.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScoreSetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScoreSetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScoreSet entity.
// If the ScoreSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreSetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScoreSetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDeliberation clears the "deliberation" edge to the Deliberation entity.
func (m *ScoreSetMutation) ClearDeliberation() {
	m.cleareddeliberation = true
	m.clearedFields[scoreset.FieldDeliberationID] = struct{}{}
}

// DeliberationCleared reports if the "deliberation" edge to the Deliberation entity was cleared.
func (m *ScoreSetMutation) DeliberationCleared() bool {
	return m.cleareddeliberation
}

// DeliberationIDs returns the "deliberation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DeliberationID instead. It exists only for internal usage by the builders.
func (m *ScoreSetMutation) DeliberationIDs() (ids []string) {
	if id := m.deliberation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDeliberation resets all changes to the "deliberation" edge.
func (m *ScoreSetMutation) ResetDeliberation() {
	m.deliberation = nil
	m.cleareddeliberation = false
}

// Where appends a list predicates to the ScoreSetMutation builder.
func (m *ScoreSetMutation) Where(ps ...predicate.ScoreSet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScoreSetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScoreSetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScoreSet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScoreSetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScoreSetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScoreSet).
func (m *ScoreSetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScoreSetMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.deliberation != nil {
		fields = append(fields, scoreset.FieldDeliberationID)
	}
	if m.method != nil {
		fields = append(fields, scoreset.FieldMethod)
	}
	if m.scores != nil {
		fields = append(fields, scoreset.FieldScores)
	}
	if m.confidence_intervals != nil {
		fields = append(fields, scoreset.FieldConfidenceIntervals)
	}
	if m.metadata != nil {
		fields = append(fields, scoreset.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, scoreset.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScoreSetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scoreset.FieldDeliberationID:
		return m.DeliberationID()
	case scoreset.FieldMethod:
		return m.Method()
	case scoreset.FieldScores:
		return m.Scores()
	case scoreset.FieldConfidenceIntervals:
		return m.ConfidenceIntervals()
	case scoreset.FieldMetadata:
		return m.Metadata()
	case scoreset.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScoreSetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scoreset.FieldDeliberationID:
		return m.OldDeliberationID(ctx)
	case scoreset.FieldMethod:
		return m.OldMethod(ctx)
	case scoreset.FieldScores:
		return m.OldScores(ctx)
	case scoreset.FieldConfidenceIntervals:
		return m.OldConfidenceIntervals(ctx)
	case scoreset.FieldMetadata:
		return m.OldMetadata(ctx)
	case scoreset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScoreSet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoreSetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scoreset.FieldDeliberationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliberationID(v)
		return nil
	case scoreset.FieldMethod:
		v, ok := value.(scoreset.Method)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case scoreset.FieldScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScores(v)
		return nil
	case scoreset.FieldConfidenceIntervals:
		v, ok := value.(map[string][2]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceIntervals(v)
		return nil
	case scoreset.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case scoreset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScoreSet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScoreSetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScoreSetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoreSetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScoreSet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScoreSetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scoreset.FieldConfidenceIntervals) {
		fields = append(fields, scoreset.FieldConfidenceIntervals)
	}
	if m.FieldCleared(scoreset.FieldMetadata) {
		fields = append(fields, scoreset.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScoreSetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScoreSetMutation) ClearField(name string) error {
	switch name {
	case scoreset.FieldConfidenceIntervals:
		m.ClearConfidenceIntervals()
		return nil
	case scoreset.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ScoreSet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScoreSetMutation) ResetField(name string) error {
	switch name {
	case scoreset.FieldDeliberationID:
		m.ResetDeliberationID()
		return nil
	case scoreset.FieldMethod:
		m.ResetMethod()
		return nil
	case scoreset.FieldScores:
		m.ResetScores()
		return nil
	case scoreset.FieldConfidenceIntervals:
		m.ResetConfidenceIntervals()
		return nil
	case scoreset.FieldMetadata:
		m.ResetMetadata()
		return nil
	case scoreset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScoreSet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScoreSetMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.deliberation != nil {
		edges = append(edges, scoreset.EdgeDeliberation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScoreSetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scoreset.EdgeDeliberation:
		if id := m.deliberation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScoreSetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScoreSetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScoreSetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddeliberation {
		edges = append(edges, scoreset.EdgeDeliberation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScoreSetMutation) EdgeCleared(name string) bool {
	switch name {
	case scoreset.EdgeDeliberation:
		return m.cleareddeliberation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScoreSetMutation) ClearEdge(name string) error {
	switch name {
	case scoreset.EdgeDeliberation:
		m.ClearDeliberation()
		return nil
	}
	return fmt.Errorf("unknown ScoreSet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScoreSetMutation) ResetEdge(name string) error {
	switch name {
	case scoreset.EdgeDeliberation:
		m.ResetDeliberation()
		return nil
	}
	return fmt.Errorf("unknown ScoreSet edge %s", name)
}

// VerdictMutation represents an operation that mutates the Verdict nodes in the graph.
type VerdictMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	judge               *string
	judge_index         *int
	addjudge_index      *int
	i                   *int
	addi                *int
	j                   *int
	addj                *int
	margin              *int
	addmargin           *int
	raw                 *string
	parse_ok            *bool
	clearedFields       map[string]struct{}
	deliberation        *string
	cleareddeliberation bool
	done                bool
	oldValue            func(context.Context) (*Verdict, error)
	predicates          []predicate.Verdict
}

var _ ent.Mutation = (*VerdictMutation)(nil)

// verdictOption allows management of the mutation configuration using functional options.
type verdictOption func(*VerdictMutation)

// newVerdictMutation creates new mutation for the Verdict entity.
func newVerdictMutation(c config, op Op, opts ...verdictOption) *VerdictMutation {
	m := &VerdictMutation{
		config:        c,
		op:            op,
		typ:           TypeVerdict,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerdictID sets the ID field of the mutation.
func withVerdictID(id string) verdictOption {
	return func(m *VerdictMutation) {
		var (
			err   error
			once  sync.Once
			value *Verdict
		)
		m.oldValue = func(ctx context.Context) (*Verdict, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Verdict.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerdict sets the old Verdict of the mutation.
func withVerdict(node *Verdict) verdictOption {
	return func(m *VerdictMutation) {
		m.oldValue = func(context.Context) (*Verdict, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerdictMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerdictMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Verdict entities.
func (m *VerdictMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerdictMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerdictMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Verdict.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeliberationID sets the "deliberation_id" field.
func (m *VerdictMutation) SetDeliberationID(s string) {
	m.deliberation = &s
}

// DeliberationID returns the value of the "deliberation_id" field in the mutation.
func (m *VerdictMutation) DeliberationID() (r string, exists bool) {
	v := m.deliberation
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliberationID returns the old "deliberation_id" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldDeliberationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliberationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliberationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliberationID: %w", err)
	}
	return oldValue.DeliberationID, nil
}

// ResetDeliberationID resets all changes to the "deliberation_id" field.
func (m *VerdictMutation) ResetDeliberationID() {
	m.deliberation = nil
}

// SetJudge sets the "judge" field.
func (m *VerdictMutation) SetJudge(s string) {
	m.judge = &s
}

// Judge returns the value of the "judge" field in the mutation.
func (m *VerdictMutation) Judge() (r string, exists bool) {
	v := m.judge
	if v == nil {
		return
	}
	return *v, true
}

// OldJudge returns the old "judge" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldJudge(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJudge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJudge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJudge: %w", err)
	}
	return oldValue.Judge, nil
}

// ResetJudge resets all changes to the "judge" field.
func (m *VerdictMutation) ResetJudge() {
	m.judge = nil
}

// SetJudgeIndex sets the "judge_index" field.
func (m *VerdictMutation) SetJudgeIndex(i int) {
	m.judge_index = &i
	m.addjudge_index = nil
}

// JudgeIndex returns the value of the "judge_index" field in the mutation.
func (m *VerdictMutation) JudgeIndex() (r int, exists bool) {
	v := m.judge_index
	if v == nil {
		return
	}
	return *v, true
}

// OldJudgeIndex returns the old "judge_index" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldJudgeIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJudgeIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJudgeIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJudgeIndex: %w", err)
	}
	return oldValue.JudgeIndex, nil
}

// AddJudgeIndex adds i to the "judge_index" field.
func (m *VerdictMutation) AddJudgeIndex(i int) {
	if m.addjudge_index != nil {
		*m.addjudge_index += i
	} else {
		m.addjudge_index = &i
	}
}

// AddedJudgeIndex returns the value that was added to the "judge_index" field in this mutation.
func (m *VerdictMutation) AddedJudgeIndex() (r int, exists bool) {
	v := m.addjudge_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetJudgeIndex resets all changes to the "judge_index" field.
func (m *VerdictMutation) ResetJudgeIndex() {
	m.judge_index = nil
	m.addjudge_index = nil
}

// SetI sets the "i" field.
func (m *VerdictMutation) SetI(i int) {
	m.i = &i
	m.addi = nil
}

// I returns the value of the "i" field in the mutation.
func (m *VerdictMutation) I() (r int, exists bool) {
	v := m.i
	if v == nil {
		return
	}
	return *v, true
}

// OldI returns the old "i" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldI(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldI: %w", err)
	}
	return oldValue.I, nil
}

// AddI adds i to the "i" field.
func (m *VerdictMutation) AddI(i int) {
	if m.addi != nil {
		*m.addi += i
	} else {
		m.addi = &i
	}
}

// AddedI returns the value that was added to the "i" field in this mutation.
func (m *VerdictMutation) AddedI() (r int, exists bool) {
	v := m.addi
	if v == nil {
		return
	}
	return *v, true
}

// ResetI resets all changes to the "i" field.
func (m *VerdictMutation) ResetI() {
	m.i = nil
	m.addi = nil
}

// SetJ sets the "j" field.
func (m *VerdictMutation) SetJ(i int) {
	m.j = &i
	m.addj = nil
}

// J returns the value of the "j" field in the mutation.
func (m *VerdictMutation) J() (r int, exists bool) {
	v := m.j
	if v == nil {
		return
	}
	return *v, true
}

// OldJ returns the old "j" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldJ(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJ is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJ requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJ: %w", err)
	}
	return oldValue.J, nil
}

// AddJ adds i to the "j" field.
func (m *VerdictMutation) AddJ(i int) {
	if m.addj != nil {
		*m.addj += i
	} else {
		m.addj = &i
	}
}

// AddedJ returns the value that was added to the "j" field in this mutation.
func (m *VerdictMutation) AddedJ() (r int, exists bool) {
	v := m.addj
	if v == nil {
		return
	}
	return *v, true
}

// ResetJ resets all changes to the "j" field.
func (m *VerdictMutation) ResetJ() {
	m.j = nil
	m.addj = nil
}

// SetMargin sets the "margin" field.
func (m *VerdictMutation) SetMargin(i int) {
	m.margin = &i
	m.addmargin = nil
}

// Margin returns the value of the "margin" field in the mutation.
func (m *VerdictMutation) Margin() (r int, exists bool) {
	v := m.margin
	if v == nil {
		return
	}
	return *v, true
}

// OldMargin returns the old "margin" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldMargin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMargin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMargin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMargin: %w", err)
	}
	return oldValue.Margin, nil
}

// AddMargin adds i to the "margin" field.
func (m *VerdictMutation) AddMargin(i int) {
	if m.addmargin != nil {
		*m.addmargin += i
	} else {
		m.addmargin = &i
	}
}

// AddedMargin returns the value that was added to the "margin" field in this mutation.
func (m *VerdictMutation) AddedMargin() (r int, exists bool) {
	v := m.addmargin
	if v == nil {
		return
	}
	return *v, true
}

// ResetMargin resets all changes to the "margin" field.
func (m *VerdictMutation) ResetMargin() {
	m.margin = nil
	m.addmargin = nil
}

// SetRaw sets the "raw" field.
func (m *VerdictMutation) SetRaw(s string) {
	m.raw = &s
}

// Raw returns the value of the "raw" field in the mutation.
func (m *VerdictMutation) Raw() (r string, exists bool) {
	v := m.raw
	if v == nil {
		return
	}
	return *v, true
}

// OldRaw returns the old "raw" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldRaw(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRaw: %w", err)
	}
	return oldValue.Raw, nil
}

// ClearRaw clears the value of the "raw" field.
func (m *VerdictMutation) ClearRaw() {
	m.raw = nil
	m.clearedFields[verdict.FieldRaw] = struct{}{}
}

// RawCleared returns if the "raw" field was cleared in this mutation.
func (m *VerdictMutation) RawCleared() bool {
	_, ok := m.clearedFields[verdict.FieldRaw]
	return ok
}

// ResetRaw resets all changes to the "raw" field.
func (m *VerdictMutation) ResetRaw() {
	m.raw = nil
	delete(m.clearedFields, verdict.FieldRaw)
}

// SetParseOk sets the "parse_ok" field.
func (m *VerdictMutation) SetParseOk(b bool) {
	m.parse_ok = &b
}

// ParseOk returns the value of the "parse_ok" field in the mutation.
func (m *VerdictMutation) ParseOk() (r bool, exists bool) {
	v := m.parse_ok
	if v == nil {
		return
	}
	return *v, true
}

// OldParseOk returns the old "parse_ok" field's value of the Verdict entity.
// If the Verdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerdictMutation) OldParseOk(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParseOk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParseOk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParseOk: %w", err)
	}
	return oldValue.ParseOk, nil
}

// ResetParseOk resets all changes to the "parse_ok" field.
func (m *VerdictMutation) ResetParseOk() {
	m.parse_ok = nil
}

// ClearDeliberation clears the "deliberation" edge to the Deliberation entity.
func (m *VerdictMutation) ClearDeliberation() {
	m.cleareddeliberation = true
	m.clearedFields[verdict.FieldDeliberationID] = struct{}{}
}

// DeliberationCleared reports if the "deliberation" edge to the Deliberation entity was cleared.
func (m *VerdictMutation) DeliberationCleared() bool {
	return m.cleareddeliberation
}

// DeliberationIDs returns the "deliberation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DeliberationID instead. It exists only for internal usage by the builders.
func (m *VerdictMutation) DeliberationIDs() (ids []string) {
	if id := m.deliberation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDeliberation resets all changes to the "deliberation" edge.
func (m *VerdictMutation) ResetDeliberation() {
	m.deliberation = nil
	m.cleareddeliberation = false
}

// Where appends a list predicates to the VerdictMutation builder.
func (m *VerdictMutation) Where(ps ...predicate.Verdict) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerdictMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerdictMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Verdict, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerdictMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerdictMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Verdict).
func (m *VerdictMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerdictMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.deliberation != nil {
		fields = append(fields, verdict.FieldDeliberationID)
	}
	if m.judge != nil {
		fields = append(fields, verdict.FieldJudge)
	}
	if m.judge_index != nil {
		fields = append(fields, verdict.FieldJudgeIndex)
	}
	if m.i != nil {
		fields = append(fields, verdict.FieldI)
	}
	if m.j != nil {
		fields = append(fields, verdict.FieldJ)
	}
	if m.margin != nil {
		fields = append(fields, verdict.FieldMargin)
	}
	if m.raw != nil {
		fields = append(fields, verdict.FieldRaw)
	}
	if m.parse_ok != nil {
		fields = append(fields, verdict.FieldParseOk)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerdictMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verdict.FieldDeliberationID:
		return m.DeliberationID()
	case verdict.FieldJudge:
		return m.Judge()
	case verdict.FieldJudgeIndex:
		return m.JudgeIndex()
	case verdict.FieldI:
		return m.I()
	case verdict.FieldJ:
		return m.J()
	case verdict.FieldMargin:
		return m.Margin()
	case verdict.FieldRaw:
		return m.Raw()
	case verdict.FieldParseOk:
		return m.ParseOk()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerdictMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verdict.FieldDeliberationID:
		return m.OldDeliberationID(ctx)
	case verdict.FieldJudge:
		return m.OldJudge(ctx)
	case verdict.FieldJudgeIndex:
		return m.OldJudgeIndex(ctx)
	case verdict.FieldI:
		return m.OldI(ctx)
	case verdict.FieldJ:
		return m.OldJ(ctx)
	case verdict.FieldMargin:
		return m.OldMargin(ctx)
	case verdict.FieldRaw:
		return m.OldRaw(ctx)
	case verdict.FieldParseOk:
		return m.OldParseOk(ctx)
	}
	return nil, fmt.Errorf("unknown Verdict field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerdictMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verdict.FieldDeliberationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliberationID(v)
		return nil
	case verdict.FieldJudge:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJudge(v)
		return nil
	case verdict.FieldJudgeIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJudgeIndex(v)
		return nil
	case verdict.FieldI:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetI(v)
		return nil
	case verdict.FieldJ:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJ(v)
		return nil
	case verdict.FieldMargin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMargin(v)
		return nil
	case verdict.FieldRaw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRaw(v)
		return nil
	case verdict.FieldParseOk:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParseOk(v)
		return nil
	}
	return fmt.Errorf("unknown Verdict field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerdictMutation) AddedFields() []string {
	var fields []string
	if m.addjudge_index != nil {
		fields = append(fields, verdict.FieldJudgeIndex)
	}
	if m.addi != nil {
		fields = append(fields, verdict.FieldI)
	}
	if m.addj != nil {
		fields = append(fields, verdict.FieldJ)
	}
	if m.addmargin != nil {
		fields = append(fields, verdict.FieldMargin)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerdictMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case verdict.FieldJudgeIndex:
		return m.AddedJudgeIndex()
	case verdict.FieldI:
		return m.AddedI()
	case verdict.FieldJ:
		return m.AddedJ()
	case verdict.FieldMargin:
		return m.AddedMargin()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerdictMutation) AddField(name string, value ent.Value) error {
	switch name {
	case verdict.FieldJudgeIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddJudgeIndex(v)
		return nil
	case verdict.FieldI:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddI(v)
		return nil
	case verdict.FieldJ:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddJ(v)
		return nil
	case verdict.FieldMargin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMargin(v)
		return nil
	}
	return fmt.Errorf("unknown Verdict numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerdictMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verdict.FieldRaw) {
		fields = append(fields, verdict.FieldRaw)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerdictMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerdictMutation) ClearField(name string) error {
	switch name {
	case verdict.FieldRaw:
		m.ClearRaw()
		return nil
	}
	return fmt.Errorf("unknown Verdict nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerdictMutation) ResetField(name string) error {
	switch name {
	case verdict.FieldDeliberationID:
		m.ResetDeliberationID()
		return nil
	case verdict.FieldJudge:
		m.ResetJudge()
		return nil
	case verdict.FieldJudgeIndex:
		m.ResetJudgeIndex()
		return nil
	case verdict.FieldI:
		m.ResetI()
		return nil
	case verdict.FieldJ:
		m.ResetJ()
		return nil
	case verdict.FieldMargin:
		m.ResetMargin()
		return nil
	case verdict.FieldRaw:
		m.ResetRaw()
		return nil
	case verdict.FieldParseOk:
		m.ResetParseOk()
		return nil
	}
	return fmt.Errorf("unknown Verdict field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerdictMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.deliberation != nil {
		edges = append(edges, verdict.EdgeDeliberation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerdictMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verdict.EdgeDeliberation:
		if id := m.deliberation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerdictMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerdictMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerdictMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddeliberation {
		edges = append(edges, verdict.EdgeDeliberation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerdictMutation) EdgeCleared(name string) bool {
	switch name {
	case verdict.EdgeDeliberation:
		return m.cleareddeliberation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerdictMutation) ClearEdge(name string) error {
	switch name {
	case verdict.EdgeDeliberation:
		m.ClearDeliberation()
		return nil
	}
	return fmt.Errorf("unknown Verdict unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerdictMutation) ResetEdge(name string) error {
	switch name {
	case verdict.EdgeDeliberation:
		m.ResetDeliberation()
		return nil
	}
	return fmt.Errorf("unknown Verdict edge %s", name)
}

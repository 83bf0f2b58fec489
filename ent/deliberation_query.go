// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plenumhq/plenum/ent/answer"
	"github.com/plenumhq/plenum/ent/chat"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/ent/event"
	"github.com/plenumhq/plenum/ent/predicate"
	"github.com/plenumhq/plenum/ent/scoreset"
	"github.com/plenumhq/plenum/ent/verdict"
)

// DeliberationQuery is the builder for querying Deliberation entities.
type DeliberationQuery struct {
	config
	ctx           *QueryContext
	order         []deliberation.OrderOption
	inters        []Interceptor
	predicates    []predicate.Deliberation
	withAnswers   *AnswerQuery
	withVerdicts  *VerdictQuery
	withScoreSets *ScoreSetQuery
	withEvents    *EventQuery
	withChat      *ChatQuery
	modifiers     []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DeliberationQuery builder.
func (_q *DeliberationQuery) Where(ps ...predicate.Deliberation) *DeliberationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DeliberationQuery) Limit(limit int) *DeliberationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DeliberationQuery) Offset(offset int) *DeliberationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DeliberationQuery) Unique(unique bool) *DeliberationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DeliberationQuery) Order(o ...deliberation.OrderOption) *DeliberationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAnswers chains the current query on the "answers" edge.
func (_q *DeliberationQuery) QueryAnswers() *AnswerQuery {
	query := (&AnswerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deliberation.Table, deliberation.FieldID, selector),
			sqlgraph.To(answer.Table, answer.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, deliberation.AnswersTable, deliberation.AnswersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVerdicts chains the current query on the "verdicts" edge.
func (_q *DeliberationQuery) QueryVerdicts() *VerdictQuery {
	query := (&VerdictClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deliberation.Table, deliberation.FieldID, selector),
			sqlgraph.To(verdict.Table, verdict.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, deliberation.VerdictsTable, deliberation.VerdictsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryScoreSets chains the current query on the "score_sets" edge.
func (_q *DeliberationQuery) QueryScoreSets() *ScoreSetQuery {
	query := (&ScoreSetClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deliberation.Table, deliberation.FieldID, selector),
			sqlgraph.To(scoreset.Table, scoreset.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, deliberation.ScoreSetsTable, deliberation.ScoreSetsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *DeliberationQuery) QueryEvents() *EventQuery {
	query := (&EventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deliberation.Table, deliberation.FieldID, selector),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, deliberation.EventsTable, deliberation.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryChat chains the current query on the "chat" edge.
func (_q *DeliberationQuery) QueryChat() *ChatQuery {
	query := (&ChatClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deliberation.Table, deliberation.FieldID, selector),
			sqlgraph.To(chat.Table, chat.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, deliberation.ChatTable, deliberation.ChatColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Deliberation entity from the query.
// Returns a *NotFoundError when no Deliberation was found.
func (_q *DeliberationQuery) First(ctx context.Context) (*Deliberation, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{deliberation.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DeliberationQuery) FirstX(ctx context.Context) *Deliberation {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Deliberation ID from the query.
// Returns a *NotFoundError when no Deliberation ID was found.
func (_q *DeliberationQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{deliberation.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DeliberationQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Deliberation entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Deliberation entity is found.
// Returns a *NotFoundError when no Deliberation entities are found.
func (_q *DeliberationQuery) Only(ctx context.Context) (*Deliberation, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{deliberation.Label}
	default:
		return nil, &NotSingularError{deliberation.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DeliberationQuery) OnlyX(ctx context.Context) *Deliberation {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Deliberation ID in the query.
// Returns a *NotSingularError when more than one Deliberation ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DeliberationQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{deliberation.Label}
	default:
		err = &NotSingularError{deliberation.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DeliberationQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Deliberations.
func (_q *DeliberationQuery) All(ctx context.Context) ([]*Deliberation, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Deliberation, *DeliberationQuery]()
	return withInterceptors[[]*Deliberation](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DeliberationQuery) AllX(ctx context.Context) []*Deliberation {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Deliberation IDs.
func (_q *DeliberationQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(deliberation.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DeliberationQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DeliberationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DeliberationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DeliberationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DeliberationQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DeliberationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DeliberationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DeliberationQuery) Clone() *DeliberationQuery {
	if _q == nil {
		return nil
	}
	return &DeliberationQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]deliberation.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.Deliberation{}, _q.predicates...),
		withAnswers:   _q.withAnswers.Clone(),
		withVerdicts:  _q.withVerdicts.Clone(),
		withScoreSets: _q.withScoreSets.Clone(),
		withEvents:    _q.withEvents.Clone(),
		withChat:      _q.withChat.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAnswers tells the query-builder to eager-load the nodes that are connected to
// the "answers" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DeliberationQuery) WithAnswers(opts ...func(*AnswerQuery)) *DeliberationQuery {
	query := (&AnswerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAnswers = query
	return _q
}

// WithVerdicts tells the query-builder to eager-load the nodes that are connected to
// the "verdicts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DeliberationQuery) WithVerdicts(opts ...func(*VerdictQuery)) *DeliberationQuery {
	query := (&VerdictClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVerdicts = query
	return _q
}

// WithScoreSets tells the query-builder to eager-load the nodes that are connected to
// the "score_sets" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DeliberationQuery) WithScoreSets(opts ...func(*ScoreSetQuery)) *DeliberationQuery {
	query := (&ScoreSetClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withScoreSets = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DeliberationQuery) WithEvents(opts ...func(*EventQuery)) *DeliberationQuery {
	query := (&EventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithChat tells the query-builder to eager-load the nodes that are connected to
// the "chat" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DeliberationQuery) WithChat(opts ...func(*ChatQuery)) *DeliberationQuery {
	query := (&ChatClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withChat = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Task string `json:"task,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Deliberation.Query().
//		GroupBy(deliberation.FieldTask).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DeliberationQuery) GroupBy(field string, fields ...string) *DeliberationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DeliberationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = deliberation.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Task string `json:"task,omitempty"`
//	}
//
//	client.Deliberation.Query().
//		Select(deliberation.FieldTask).
//		Scan(ctx, &v)
func (_q *DeliberationQuery) Select(fields ...string) *DeliberationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DeliberationSelect{DeliberationQuery: _q}
	sbuild.label = deliberation.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DeliberationSelect configured with the given aggregations.
func (_q *DeliberationQuery) Aggregate(fns ...AggregateFunc) *DeliberationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DeliberationQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !deliberation.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DeliberationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Deliberation, error) {
	var (
		nodes       = []*Deliberation{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withAnswers != nil,
			_q.withVerdicts != nil,
			_q.withScoreSets != nil,
			_q.withEvents != nil,
			_q.withChat != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Deliberation).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Deliberation{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withAnswers; query != nil {
		if err := _q.loadAnswers(ctx, query, nodes,
			func(n *Deliberation) { n.Edges.Answers = []*Answer{} },
			func(n *Deliberation, e *Answer) { n.Edges.Answers = append(n.Edges.Answers, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVerdicts; query != nil {
		if err := _q.loadVerdicts(ctx, query, nodes,
			func(n *Deliberation) { n.Edges.Verdicts = []*Verdict{} },
			func(n *Deliberation, e *Verdict) { n.Edges.Verdicts = append(n.Edges.Verdicts, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withScoreSets; query != nil {
		if err := _q.loadScoreSets(ctx, query, nodes,
			func(n *Deliberation) { n.Edges.ScoreSets = []*ScoreSet{} },
			func(n *Deliberation, e *ScoreSet) { n.Edges.ScoreSets = append(n.Edges.ScoreSets, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *Deliberation) { n.Edges.Events = []*Event{} },
			func(n *Deliberation, e *Event) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withChat; query != nil {
		if err := _q.loadChat(ctx, query, nodes, nil,
			func(n *Deliberation, e *Chat) { n.Edges.Chat = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DeliberationQuery) loadAnswers(ctx context.Context, query *AnswerQuery, nodes []*Deliberation, init func(*Deliberation), assign func(*Deliberation, *Answer)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Deliberation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(answer.FieldDeliberationID)
	}
	query.Where(predicate.Answer(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(deliberation.AnswersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DeliberationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "deliberation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DeliberationQuery) loadVerdicts(ctx context.Context, query *VerdictQuery, nodes []*Deliberation, init func(*Deliberation), assign func(*Deliberation, *Verdict)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Deliberation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(verdict.FieldDeliberationID)
	}
	query.Where(predicate.Verdict(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(deliberation.VerdictsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DeliberationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "deliberation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DeliberationQuery) loadScoreSets(ctx context.Context, query *ScoreSetQuery, nodes []*Deliberation, init func(*Deliberation), assign func(*Deliberation, *ScoreSet)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Deliberation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(scoreset.FieldDeliberationID)
	}
	query.Where(predicate.ScoreSet(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(deliberation.ScoreSetsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DeliberationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "deliberation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DeliberationQuery) loadEvents(ctx context.Context, query *EventQuery, nodes []*Deliberation, init func(*Deliberation), assign func(*Deliberation, *Event)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Deliberation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(event.FieldDeliberationID)
	}
	query.Where(predicate.Event(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(deliberation.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DeliberationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "deliberation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DeliberationQuery) loadChat(ctx context.Context, query *ChatQuery, nodes []*Deliberation, init func(*Deliberation), assign func(*Deliberation, *Chat)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Deliberation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(chat.FieldDeliberationID)
	}
	query.Where(predicate.Chat(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(deliberation.ChatColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DeliberationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "deliberation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DeliberationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DeliberationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(deliberation.Table, deliberation.Columns, sqlgraph.NewFieldSpec(deliberation.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deliberation.FieldID)
		for i := range fields {
			if fields[i] != deliberation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DeliberationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(deliberation.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = deliberation.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *DeliberationQuery) ForUpdate(opts ...sql.LockOption) *DeliberationQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *DeliberationQuery) ForShare(opts ...sql.LockOption) *DeliberationQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// DeliberationGroupBy is the group-by builder for Deliberation entities.
type DeliberationGroupBy struct {
	selector
	build *DeliberationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DeliberationGroupBy) Aggregate(fns ...AggregateFunc) *DeliberationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DeliberationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DeliberationQuery, *DeliberationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DeliberationGroupBy) sqlScan(ctx context.Context, root *DeliberationQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DeliberationSelect is the builder for selecting fields of Deliberation entities.
type DeliberationSelect struct {
	*DeliberationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DeliberationSelect) Aggregate(fns ...AggregateFunc) *DeliberationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DeliberationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DeliberationQuery, *DeliberationSelect](ctx, _s.DeliberationQuery, _s, _s.inters, v)
}

func (_s *DeliberationSelect) sqlScan(ctx context.Context, root *DeliberationQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

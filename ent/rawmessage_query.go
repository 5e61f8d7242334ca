// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/civicquant/pipeline/ent/entitymention"
	"github.com/civicquant/pipeline/ent/eventmessage"
	"github.com/civicquant/pipeline/ent/extraction"
	"github.com/civicquant/pipeline/ent/predicate"
	"github.com/civicquant/pipeline/ent/processingstate"
	"github.com/civicquant/pipeline/ent/rawmessage"
	"github.com/civicquant/pipeline/ent/routingdecision"
)

// RawMessageQuery is the builder for querying RawMessage entities.
type RawMessageQuery struct {
	config
	ctx                 *QueryContext
	order               []rawmessage.OrderOption
	inters              []Interceptor
	predicates          []predicate.RawMessage
	withProcessingState *ProcessingStateQuery
	withExtraction      *ExtractionQuery
	withRoutingDecision *RoutingDecisionQuery
	withEventLinks      *EventMessageQuery
	withEntityMentions  *EntityMentionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RawMessageQuery builder.
func (_q *RawMessageQuery) Where(ps ...predicate.RawMessage) *RawMessageQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RawMessageQuery) Limit(limit int) *RawMessageQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RawMessageQuery) Offset(offset int) *RawMessageQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RawMessageQuery) Unique(unique bool) *RawMessageQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RawMessageQuery) Order(o ...rawmessage.OrderOption) *RawMessageQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryProcessingState chains the current query on the "processing_state" edge.
func (_q *RawMessageQuery) QueryProcessingState() *ProcessingStateQuery {
	query := (&ProcessingStateClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(rawmessage.Table, rawmessage.FieldID, selector),
			sqlgraph.To(processingstate.Table, processingstate.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, rawmessage.ProcessingStateTable, rawmessage.ProcessingStateColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExtraction chains the current query on the "extraction" edge.
func (_q *RawMessageQuery) QueryExtraction() *ExtractionQuery {
	query := (&ExtractionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(rawmessage.Table, rawmessage.FieldID, selector),
			sqlgraph.To(extraction.Table, extraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, rawmessage.ExtractionTable, rawmessage.ExtractionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRoutingDecision chains the current query on the "routing_decision" edge.
func (_q *RawMessageQuery) QueryRoutingDecision() *RoutingDecisionQuery {
	query := (&RoutingDecisionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(rawmessage.Table, rawmessage.FieldID, selector),
			sqlgraph.To(routingdecision.Table, routingdecision.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, rawmessage.RoutingDecisionTable, rawmessage.RoutingDecisionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEventLinks chains the current query on the "event_links" edge.
func (_q *RawMessageQuery) QueryEventLinks() *EventMessageQuery {
	query := (&EventMessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(rawmessage.Table, rawmessage.FieldID, selector),
			sqlgraph.To(eventmessage.Table, eventmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, rawmessage.EventLinksTable, rawmessage.EventLinksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEntityMentions chains the current query on the "entity_mentions" edge.
func (_q *RawMessageQuery) QueryEntityMentions() *EntityMentionQuery {
	query := (&EntityMentionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(rawmessage.Table, rawmessage.FieldID, selector),
			sqlgraph.To(entitymention.Table, entitymention.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, rawmessage.EntityMentionsTable, rawmessage.EntityMentionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RawMessage entity from the query.
// Returns a *NotFoundError when no RawMessage was found.
func (_q *RawMessageQuery) First(ctx context.Context) (*RawMessage, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{rawmessage.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RawMessageQuery) FirstX(ctx context.Context) *RawMessage {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RawMessage ID from the query.
// Returns a *NotFoundError when no RawMessage ID was found.
func (_q *RawMessageQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{rawmessage.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RawMessageQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RawMessage entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RawMessage entity is found.
// Returns a *NotFoundError when no RawMessage entities are found.
func (_q *RawMessageQuery) Only(ctx context.Context) (*RawMessage, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{rawmessage.Label}
	default:
		return nil, &NotSingularError{rawmessage.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RawMessageQuery) OnlyX(ctx context.Context) *RawMessage {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RawMessage ID in the query.
// Returns a *NotSingularError when more than one RawMessage ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RawMessageQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{rawmessage.Label}
	default:
		err = &NotSingularError{rawmessage.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RawMessageQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RawMessages.
func (_q *RawMessageQuery) All(ctx context.Context) ([]*RawMessage, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RawMessage, *RawMessageQuery]()
	return withInterceptors[[]*RawMessage](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RawMessageQuery) AllX(ctx context.Context) []*RawMessage {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RawMessage IDs.
func (_q *RawMessageQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(rawmessage.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RawMessageQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RawMessageQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RawMessageQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RawMessageQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RawMessageQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *RawMessageQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RawMessageQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RawMessageQuery) Clone() *RawMessageQuery {
	if _q == nil {
		return nil
	}
	return &RawMessageQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]rawmessage.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.RawMessage{}, _q.predicates...),
		withProcessingState: _q.withProcessingState.Clone(),
		withExtraction:      _q.withExtraction.Clone(),
		withRoutingDecision: _q.withRoutingDecision.Clone(),
		withEventLinks:      _q.withEventLinks.Clone(),
		withEntityMentions:  _q.withEntityMentions.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithProcessingState tells the query-builder to eager-load the nodes that are connected to
// the "processing_state" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RawMessageQuery) WithProcessingState(opts ...func(*ProcessingStateQuery)) *RawMessageQuery {
	query := (&ProcessingStateClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProcessingState = query
	return _q
}

// WithExtraction tells the query-builder to eager-load the nodes that are connected to
// the "extraction" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RawMessageQuery) WithExtraction(opts ...func(*ExtractionQuery)) *RawMessageQuery {
	query := (&ExtractionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExtraction = query
	return _q
}

// WithRoutingDecision tells the query-builder to eager-load the nodes that are connected to
// the "routing_decision" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RawMessageQuery) WithRoutingDecision(opts ...func(*RoutingDecisionQuery)) *RawMessageQuery {
	query := (&RoutingDecisionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRoutingDecision = query
	return _q
}

// WithEventLinks tells the query-builder to eager-load the nodes that are connected to
// the "event_links" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RawMessageQuery) WithEventLinks(opts ...func(*EventMessageQuery)) *RawMessageQuery {
	query := (&EventMessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEventLinks = query
	return _q
}

// WithEntityMentions tells the query-builder to eager-load the nodes that are connected to
// the "entity_mentions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RawMessageQuery) WithEntityMentions(opts ...func(*EntityMentionQuery)) *RawMessageQuery {
	query := (&EntityMentionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEntityMentions = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SourceChannelID string `json:"source_channel_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.RawMessage.Query().
//		GroupBy(rawmessage.FieldSourceChannelID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RawMessageQuery) GroupBy(field string, fields ...string) *RawMessageGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RawMessageGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = rawmessage.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SourceChannelID string `json:"source_channel_id,omitempty"`
//	}
//
//	client.RawMessage.Query().
//		Select(rawmessage.FieldSourceChannelID).
//		Scan(ctx, &v)
func (_q *RawMessageQuery) Select(fields ...string) *RawMessageSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RawMessageSelect{RawMessageQuery: _q}
	sbuild.label = rawmessage.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RawMessageSelect configured with the given aggregations.
func (_q *RawMessageQuery) Aggregate(fns ...AggregateFunc) *RawMessageSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RawMessageQuery) prepareQuery(ctx context.Context) error {
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
		if !rawmessage.ValidColumn(f) {
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

func (_q *RawMessageQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RawMessage, error) {
	var (
		nodes       = []*RawMessage{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withProcessingState != nil,
			_q.withExtraction != nil,
			_q.withRoutingDecision != nil,
			_q.withEventLinks != nil,
			_q.withEntityMentions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RawMessage).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RawMessage{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
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
	if query := _q.withProcessingState; query != nil {
		if err := _q.loadProcessingState(ctx, query, nodes, nil,
			func(n *RawMessage, e *ProcessingState) { n.Edges.ProcessingState = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withExtraction; query != nil {
		if err := _q.loadExtraction(ctx, query, nodes, nil,
			func(n *RawMessage, e *Extraction) { n.Edges.Extraction = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRoutingDecision; query != nil {
		if err := _q.loadRoutingDecision(ctx, query, nodes, nil,
			func(n *RawMessage, e *RoutingDecision) { n.Edges.RoutingDecision = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEventLinks; query != nil {
		if err := _q.loadEventLinks(ctx, query, nodes,
			func(n *RawMessage) { n.Edges.EventLinks = []*EventMessage{} },
			func(n *RawMessage, e *EventMessage) { n.Edges.EventLinks = append(n.Edges.EventLinks, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEntityMentions; query != nil {
		if err := _q.loadEntityMentions(ctx, query, nodes,
			func(n *RawMessage) { n.Edges.EntityMentions = []*EntityMention{} },
			func(n *RawMessage, e *EntityMention) { n.Edges.EntityMentions = append(n.Edges.EntityMentions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RawMessageQuery) loadProcessingState(ctx context.Context, query *ProcessingStateQuery, nodes []*RawMessage, init func(*RawMessage), assign func(*RawMessage, *ProcessingState)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*RawMessage)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(processingstate.FieldRawMessageID)
	}
	query.Where(predicate.ProcessingState(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(rawmessage.ProcessingStateColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RawMessageID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "raw_message_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RawMessageQuery) loadExtraction(ctx context.Context, query *ExtractionQuery, nodes []*RawMessage, init func(*RawMessage), assign func(*RawMessage, *Extraction)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*RawMessage)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extraction.FieldRawMessageID)
	}
	query.Where(predicate.Extraction(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(rawmessage.ExtractionColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RawMessageID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "raw_message_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RawMessageQuery) loadRoutingDecision(ctx context.Context, query *RoutingDecisionQuery, nodes []*RawMessage, init func(*RawMessage), assign func(*RawMessage, *RoutingDecision)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*RawMessage)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(routingdecision.FieldRawMessageID)
	}
	query.Where(predicate.RoutingDecision(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(rawmessage.RoutingDecisionColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RawMessageID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "raw_message_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RawMessageQuery) loadEventLinks(ctx context.Context, query *EventMessageQuery, nodes []*RawMessage, init func(*RawMessage), assign func(*RawMessage, *EventMessage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*RawMessage)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(eventmessage.FieldRawMessageID)
	}
	query.Where(predicate.EventMessage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(rawmessage.EventLinksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RawMessageID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "raw_message_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *RawMessageQuery) loadEntityMentions(ctx context.Context, query *EntityMentionQuery, nodes []*RawMessage, init func(*RawMessage), assign func(*RawMessage, *EntityMention)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*RawMessage)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(entitymention.FieldRawMessageID)
	}
	query.Where(predicate.EntityMention(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(rawmessage.EntityMentionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RawMessageID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "raw_message_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *RawMessageQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RawMessageQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(rawmessage.Table, rawmessage.Columns, sqlgraph.NewFieldSpec(rawmessage.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rawmessage.FieldID)
		for i := range fields {
			if fields[i] != rawmessage.FieldID {
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

func (_q *RawMessageQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(rawmessage.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = rawmessage.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
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

// RawMessageGroupBy is the group-by builder for RawMessage entities.
type RawMessageGroupBy struct {
	selector
	build *RawMessageQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RawMessageGroupBy) Aggregate(fns ...AggregateFunc) *RawMessageGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RawMessageGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RawMessageQuery, *RawMessageGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RawMessageGroupBy) sqlScan(ctx context.Context, root *RawMessageQuery, v any) error {
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

// RawMessageSelect is the builder for selecting fields of RawMessage entities.
type RawMessageSelect struct {
	*RawMessageQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RawMessageSelect) Aggregate(fns ...AggregateFunc) *RawMessageSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RawMessageSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RawMessageQuery, *RawMessageSelect](ctx, _s.RawMessageQuery, _s, _s.inters, v)
}

func (_s *RawMessageSelect) sqlScan(ctx context.Context, root *RawMessageQuery, v any) error {
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

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/civicquant/pipeline/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/civicquant/pipeline/ent/entitymention"
	"github.com/civicquant/pipeline/ent/event"
	"github.com/civicquant/pipeline/ent/eventmessage"
	"github.com/civicquant/pipeline/ent/extraction"
	"github.com/civicquant/pipeline/ent/processinglock"
	"github.com/civicquant/pipeline/ent/processingstate"
	"github.com/civicquant/pipeline/ent/publishedpost"
	"github.com/civicquant/pipeline/ent/rawmessage"
	"github.com/civicquant/pipeline/ent/routingdecision"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// EntityMention is the client for interacting with the EntityMention builders.
	EntityMention *EntityMentionClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// EventMessage is the client for interacting with the EventMessage builders.
	EventMessage *EventMessageClient
	// Extraction is the client for interacting with the Extraction builders.
	Extraction *ExtractionClient
	// ProcessingLock is the client for interacting with the ProcessingLock builders.
	ProcessingLock *ProcessingLockClient
	// ProcessingState is the client for interacting with the ProcessingState builders.
	ProcessingState *ProcessingStateClient
	// PublishedPost is the client for interacting with the PublishedPost builders.
	PublishedPost *PublishedPostClient
	// RawMessage is the client for interacting with the RawMessage builders.
	RawMessage *RawMessageClient
	// RoutingDecision is the client for interacting with the RoutingDecision builders.
	RoutingDecision *RoutingDecisionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.EntityMention = NewEntityMentionClient(c.config)
	c.Event = NewEventClient(c.config)
	c.EventMessage = NewEventMessageClient(c.config)
	c.Extraction = NewExtractionClient(c.config)
	c.ProcessingLock = NewProcessingLockClient(c.config)
	c.ProcessingState = NewProcessingStateClient(c.config)
	c.PublishedPost = NewPublishedPostClient(c.config)
	c.RawMessage = NewRawMessageClient(c.config)
	c.RoutingDecision = NewRoutingDecisionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		EntityMention:   NewEntityMentionClient(cfg),
		Event:           NewEventClient(cfg),
		EventMessage:    NewEventMessageClient(cfg),
		Extraction:      NewExtractionClient(cfg),
		ProcessingLock:  NewProcessingLockClient(cfg),
		ProcessingState: NewProcessingStateClient(cfg),
		PublishedPost:   NewPublishedPostClient(cfg),
		RawMessage:      NewRawMessageClient(cfg),
		RoutingDecision: NewRoutingDecisionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		EntityMention:   NewEntityMentionClient(cfg),
		Event:           NewEventClient(cfg),
		EventMessage:    NewEventMessageClient(cfg),
		Extraction:      NewExtractionClient(cfg),
		ProcessingLock:  NewProcessingLockClient(cfg),
		ProcessingState: NewProcessingStateClient(cfg),
		PublishedPost:   NewPublishedPostClient(cfg),
		RawMessage:      NewRawMessageClient(cfg),
		RoutingDecision: NewRoutingDecisionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		EntityMention.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.EntityMention, c.Event, c.EventMessage, c.Extraction, c.ProcessingLock,
		c.ProcessingState, c.PublishedPost, c.RawMessage, c.RoutingDecision,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.EntityMention, c.Event, c.EventMessage, c.Extraction, c.ProcessingLock,
		c.ProcessingState, c.PublishedPost, c.RawMessage, c.RoutingDecision,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EntityMentionMutation:
		return c.EntityMention.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *EventMessageMutation:
		return c.EventMessage.mutate(ctx, m)
	case *ExtractionMutation:
		return c.Extraction.mutate(ctx, m)
	case *ProcessingLockMutation:
		return c.ProcessingLock.mutate(ctx, m)
	case *ProcessingStateMutation:
		return c.ProcessingState.mutate(ctx, m)
	case *PublishedPostMutation:
		return c.PublishedPost.mutate(ctx, m)
	case *RawMessageMutation:
		return c.RawMessage.mutate(ctx, m)
	case *RoutingDecisionMutation:
		return c.RoutingDecision.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EntityMentionClient is a client for the EntityMention schema.
type EntityMentionClient struct {
	config
}

// NewEntityMentionClient returns a client for the EntityMention from the given config.
func NewEntityMentionClient(c config) *EntityMentionClient {
	return &EntityMentionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entitymention.Hooks(f(g(h())))`.
func (c *EntityMentionClient) Use(hooks ...Hook) {
	c.hooks.EntityMention = append(c.hooks.EntityMention, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entitymention.Intercept(f(g(h())))`.
func (c *EntityMentionClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityMention = append(c.inters.EntityMention, interceptors...)
}

// Create returns a builder for creating a EntityMention entity.
func (c *EntityMentionClient) Create() *EntityMentionCreate {
	mutation := newEntityMentionMutation(c.config, OpCreate)
	return &EntityMentionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityMention entities.
func (c *EntityMentionClient) CreateBulk(builders ...*EntityMentionCreate) *EntityMentionCreateBulk {
	return &EntityMentionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityMentionClient) MapCreateBulk(slice any, setFunc func(*EntityMentionCreate, int)) *EntityMentionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityMentionCreateBulk{err: fmt.Errorf("calling to EntityMentionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityMentionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityMentionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityMention.
func (c *EntityMentionClient) Update() *EntityMentionUpdate {
	mutation := newEntityMentionMutation(c.config, OpUpdate)
	return &EntityMentionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityMentionClient) UpdateOne(_m *EntityMention) *EntityMentionUpdateOne {
	mutation := newEntityMentionMutation(c.config, OpUpdateOne, withEntityMention(_m))
	return &EntityMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityMentionClient) UpdateOneID(id int) *EntityMentionUpdateOne {
	mutation := newEntityMentionMutation(c.config, OpUpdateOne, withEntityMentionID(id))
	return &EntityMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityMention.
func (c *EntityMentionClient) Delete() *EntityMentionDelete {
	mutation := newEntityMentionMutation(c.config, OpDelete)
	return &EntityMentionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityMentionClient) DeleteOne(_m *EntityMention) *EntityMentionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityMentionClient) DeleteOneID(id int) *EntityMentionDeleteOne {
	builder := c.Delete().Where(entitymention.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityMentionDeleteOne{builder}
}

// Query returns a query builder for EntityMention.
func (c *EntityMentionClient) Query() *EntityMentionQuery {
	return &EntityMentionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityMention},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityMention entity by its id.
func (c *EntityMentionClient) Get(ctx context.Context, id int) (*EntityMention, error) {
	return c.Query().Where(entitymention.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityMentionClient) GetX(ctx context.Context, id int) *EntityMention {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRawMessage queries the raw_message edge of a EntityMention.
func (c *EntityMentionClient) QueryRawMessage(_m *EntityMention) *RawMessageQuery {
	query := (&RawMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entitymention.Table, entitymention.FieldID, id),
			sqlgraph.To(rawmessage.Table, rawmessage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entitymention.RawMessageTable, entitymention.RawMessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityMentionClient) Hooks() []Hook {
	return c.hooks.EntityMention
}

// Interceptors returns the client interceptors.
func (c *EntityMentionClient) Interceptors() []Interceptor {
	return c.inters.EntityMention
}

func (c *EntityMentionClient) mutate(ctx context.Context, m *EntityMentionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityMentionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityMentionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityMentionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityMention mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessageLinks queries the message_links edge of a Event.
func (c *EventClient) QueryMessageLinks(_m *Event) *EventMessageQuery {
	query := (&EventMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(eventmessage.Table, eventmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, event.MessageLinksTable, event.MessageLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// EventMessageClient is a client for the EventMessage schema.
type EventMessageClient struct {
	config
}

// NewEventMessageClient returns a client for the EventMessage from the given config.
func NewEventMessageClient(c config) *EventMessageClient {
	return &EventMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventmessage.Hooks(f(g(h())))`.
func (c *EventMessageClient) Use(hooks ...Hook) {
	c.hooks.EventMessage = append(c.hooks.EventMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventmessage.Intercept(f(g(h())))`.
func (c *EventMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventMessage = append(c.inters.EventMessage, interceptors...)
}

// Create returns a builder for creating a EventMessage entity.
func (c *EventMessageClient) Create() *EventMessageCreate {
	mutation := newEventMessageMutation(c.config, OpCreate)
	return &EventMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventMessage entities.
func (c *EventMessageClient) CreateBulk(builders ...*EventMessageCreate) *EventMessageCreateBulk {
	return &EventMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventMessageClient) MapCreateBulk(slice any, setFunc func(*EventMessageCreate, int)) *EventMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventMessageCreateBulk{err: fmt.Errorf("calling to EventMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventMessage.
func (c *EventMessageClient) Update() *EventMessageUpdate {
	mutation := newEventMessageMutation(c.config, OpUpdate)
	return &EventMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventMessageClient) UpdateOne(_m *EventMessage) *EventMessageUpdateOne {
	mutation := newEventMessageMutation(c.config, OpUpdateOne, withEventMessage(_m))
	return &EventMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventMessageClient) UpdateOneID(id int) *EventMessageUpdateOne {
	mutation := newEventMessageMutation(c.config, OpUpdateOne, withEventMessageID(id))
	return &EventMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventMessage.
func (c *EventMessageClient) Delete() *EventMessageDelete {
	mutation := newEventMessageMutation(c.config, OpDelete)
	return &EventMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventMessageClient) DeleteOne(_m *EventMessage) *EventMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventMessageClient) DeleteOneID(id int) *EventMessageDeleteOne {
	builder := c.Delete().Where(eventmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventMessageDeleteOne{builder}
}

// Query returns a query builder for EventMessage.
func (c *EventMessageClient) Query() *EventMessageQuery {
	return &EventMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a EventMessage entity by its id.
func (c *EventMessageClient) Get(ctx context.Context, id int) (*EventMessage, error) {
	return c.Query().Where(eventmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventMessageClient) GetX(ctx context.Context, id int) *EventMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEvent queries the event edge of a EventMessage.
func (c *EventMessageClient) QueryEvent(_m *EventMessage) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(eventmessage.Table, eventmessage.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, eventmessage.EventTable, eventmessage.EventColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRawMessage queries the raw_message edge of a EventMessage.
func (c *EventMessageClient) QueryRawMessage(_m *EventMessage) *RawMessageQuery {
	query := (&RawMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(eventmessage.Table, eventmessage.FieldID, id),
			sqlgraph.To(rawmessage.Table, rawmessage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, eventmessage.RawMessageTable, eventmessage.RawMessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventMessageClient) Hooks() []Hook {
	return c.hooks.EventMessage
}

// Interceptors returns the client interceptors.
func (c *EventMessageClient) Interceptors() []Interceptor {
	return c.inters.EventMessage
}

func (c *EventMessageClient) mutate(ctx context.Context, m *EventMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventMessage mutation op: %q", m.Op())
	}
}

// ExtractionClient is a client for the Extraction schema.
type ExtractionClient struct {
	config
}

// NewExtractionClient returns a client for the Extraction from the given config.
func NewExtractionClient(c config) *ExtractionClient {
	return &ExtractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extraction.Hooks(f(g(h())))`.
func (c *ExtractionClient) Use(hooks ...Hook) {
	c.hooks.Extraction = append(c.hooks.Extraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extraction.Intercept(f(g(h())))`.
func (c *ExtractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Extraction = append(c.inters.Extraction, interceptors...)
}

// Create returns a builder for creating a Extraction entity.
func (c *ExtractionClient) Create() *ExtractionCreate {
	mutation := newExtractionMutation(c.config, OpCreate)
	return &ExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Extraction entities.
func (c *ExtractionClient) CreateBulk(builders ...*ExtractionCreate) *ExtractionCreateBulk {
	return &ExtractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionClient) MapCreateBulk(slice any, setFunc func(*ExtractionCreate, int)) *ExtractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionCreateBulk{err: fmt.Errorf("calling to ExtractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Extraction.
func (c *ExtractionClient) Update() *ExtractionUpdate {
	mutation := newExtractionMutation(c.config, OpUpdate)
	return &ExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionClient) UpdateOne(_m *Extraction) *ExtractionUpdateOne {
	mutation := newExtractionMutation(c.config, OpUpdateOne, withExtraction(_m))
	return &ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionClient) UpdateOneID(id int) *ExtractionUpdateOne {
	mutation := newExtractionMutation(c.config, OpUpdateOne, withExtractionID(id))
	return &ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Extraction.
func (c *ExtractionClient) Delete() *ExtractionDelete {
	mutation := newExtractionMutation(c.config, OpDelete)
	return &ExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionClient) DeleteOne(_m *Extraction) *ExtractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionClient) DeleteOneID(id int) *ExtractionDeleteOne {
	builder := c.Delete().Where(extraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionDeleteOne{builder}
}

// Query returns a query builder for Extraction.
func (c *ExtractionClient) Query() *ExtractionQuery {
	return &ExtractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtraction},
		inters: c.Interceptors(),
	}
}

// Get returns a Extraction entity by its id.
func (c *ExtractionClient) Get(ctx context.Context, id int) (*Extraction, error) {
	return c.Query().Where(extraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionClient) GetX(ctx context.Context, id int) *Extraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRawMessage queries the raw_message edge of a Extraction.
func (c *ExtractionClient) QueryRawMessage(_m *Extraction) *RawMessageQuery {
	query := (&RawMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extraction.Table, extraction.FieldID, id),
			sqlgraph.To(rawmessage.Table, rawmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, extraction.RawMessageTable, extraction.RawMessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionClient) Hooks() []Hook {
	return c.hooks.Extraction
}

// Interceptors returns the client interceptors.
func (c *ExtractionClient) Interceptors() []Interceptor {
	return c.inters.Extraction
}

func (c *ExtractionClient) mutate(ctx context.Context, m *ExtractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Extraction mutation op: %q", m.Op())
	}
}

// ProcessingLockClient is a client for the ProcessingLock schema.
type ProcessingLockClient struct {
	config
}

// NewProcessingLockClient returns a client for the ProcessingLock from the given config.
func NewProcessingLockClient(c config) *ProcessingLockClient {
	return &ProcessingLockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processinglock.Hooks(f(g(h())))`.
func (c *ProcessingLockClient) Use(hooks ...Hook) {
	c.hooks.ProcessingLock = append(c.hooks.ProcessingLock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processinglock.Intercept(f(g(h())))`.
func (c *ProcessingLockClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingLock = append(c.inters.ProcessingLock, interceptors...)
}

// Create returns a builder for creating a ProcessingLock entity.
func (c *ProcessingLockClient) Create() *ProcessingLockCreate {
	mutation := newProcessingLockMutation(c.config, OpCreate)
	return &ProcessingLockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingLock entities.
func (c *ProcessingLockClient) CreateBulk(builders ...*ProcessingLockCreate) *ProcessingLockCreateBulk {
	return &ProcessingLockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingLockClient) MapCreateBulk(slice any, setFunc func(*ProcessingLockCreate, int)) *ProcessingLockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingLockCreateBulk{err: fmt.Errorf("calling to ProcessingLockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingLockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingLockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingLock.
func (c *ProcessingLockClient) Update() *ProcessingLockUpdate {
	mutation := newProcessingLockMutation(c.config, OpUpdate)
	return &ProcessingLockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingLockClient) UpdateOne(_m *ProcessingLock) *ProcessingLockUpdateOne {
	mutation := newProcessingLockMutation(c.config, OpUpdateOne, withProcessingLock(_m))
	return &ProcessingLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingLockClient) UpdateOneID(id int) *ProcessingLockUpdateOne {
	mutation := newProcessingLockMutation(c.config, OpUpdateOne, withProcessingLockID(id))
	return &ProcessingLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingLock.
func (c *ProcessingLockClient) Delete() *ProcessingLockDelete {
	mutation := newProcessingLockMutation(c.config, OpDelete)
	return &ProcessingLockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingLockClient) DeleteOne(_m *ProcessingLock) *ProcessingLockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingLockClient) DeleteOneID(id int) *ProcessingLockDeleteOne {
	builder := c.Delete().Where(processinglock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingLockDeleteOne{builder}
}

// Query returns a query builder for ProcessingLock.
func (c *ProcessingLockClient) Query() *ProcessingLockQuery {
	return &ProcessingLockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingLock},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingLock entity by its id.
func (c *ProcessingLockClient) Get(ctx context.Context, id int) (*ProcessingLock, error) {
	return c.Query().Where(processinglock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingLockClient) GetX(ctx context.Context, id int) *ProcessingLock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessingLockClient) Hooks() []Hook {
	return c.hooks.ProcessingLock
}

// Interceptors returns the client interceptors.
func (c *ProcessingLockClient) Interceptors() []Interceptor {
	return c.inters.ProcessingLock
}

func (c *ProcessingLockClient) mutate(ctx context.Context, m *ProcessingLockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingLockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingLockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingLockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingLockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingLock mutation op: %q", m.Op())
	}
}

// ProcessingStateClient is a client for the ProcessingState schema.
type ProcessingStateClient struct {
	config
}

// NewProcessingStateClient returns a client for the ProcessingState from the given config.
func NewProcessingStateClient(c config) *ProcessingStateClient {
	return &ProcessingStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processingstate.Hooks(f(g(h())))`.
func (c *ProcessingStateClient) Use(hooks ...Hook) {
	c.hooks.ProcessingState = append(c.hooks.ProcessingState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processingstate.Intercept(f(g(h())))`.
func (c *ProcessingStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingState = append(c.inters.ProcessingState, interceptors...)
}

// Create returns a builder for creating a ProcessingState entity.
func (c *ProcessingStateClient) Create() *ProcessingStateCreate {
	mutation := newProcessingStateMutation(c.config, OpCreate)
	return &ProcessingStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingState entities.
func (c *ProcessingStateClient) CreateBulk(builders ...*ProcessingStateCreate) *ProcessingStateCreateBulk {
	return &ProcessingStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingStateClient) MapCreateBulk(slice any, setFunc func(*ProcessingStateCreate, int)) *ProcessingStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingStateCreateBulk{err: fmt.Errorf("calling to ProcessingStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingState.
func (c *ProcessingStateClient) Update() *ProcessingStateUpdate {
	mutation := newProcessingStateMutation(c.config, OpUpdate)
	return &ProcessingStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingStateClient) UpdateOne(_m *ProcessingState) *ProcessingStateUpdateOne {
	mutation := newProcessingStateMutation(c.config, OpUpdateOne, withProcessingState(_m))
	return &ProcessingStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingStateClient) UpdateOneID(id int) *ProcessingStateUpdateOne {
	mutation := newProcessingStateMutation(c.config, OpUpdateOne, withProcessingStateID(id))
	return &ProcessingStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingState.
func (c *ProcessingStateClient) Delete() *ProcessingStateDelete {
	mutation := newProcessingStateMutation(c.config, OpDelete)
	return &ProcessingStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingStateClient) DeleteOne(_m *ProcessingState) *ProcessingStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingStateClient) DeleteOneID(id int) *ProcessingStateDeleteOne {
	builder := c.Delete().Where(processingstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingStateDeleteOne{builder}
}

// Query returns a query builder for ProcessingState.
func (c *ProcessingStateClient) Query() *ProcessingStateQuery {
	return &ProcessingStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingState},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingState entity by its id.
func (c *ProcessingStateClient) Get(ctx context.Context, id int) (*ProcessingState, error) {
	return c.Query().Where(processingstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingStateClient) GetX(ctx context.Context, id int) *ProcessingState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRawMessage queries the raw_message edge of a ProcessingState.
func (c *ProcessingStateClient) QueryRawMessage(_m *ProcessingState) *RawMessageQuery {
	query := (&RawMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processingstate.Table, processingstate.FieldID, id),
			sqlgraph.To(rawmessage.Table, rawmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, processingstate.RawMessageTable, processingstate.RawMessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessingStateClient) Hooks() []Hook {
	return c.hooks.ProcessingState
}

// Interceptors returns the client interceptors.
func (c *ProcessingStateClient) Interceptors() []Interceptor {
	return c.inters.ProcessingState
}

func (c *ProcessingStateClient) mutate(ctx context.Context, m *ProcessingStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingState mutation op: %q", m.Op())
	}
}

// PublishedPostClient is a client for the PublishedPost schema.
type PublishedPostClient struct {
	config
}

// NewPublishedPostClient returns a client for the PublishedPost from the given config.
func NewPublishedPostClient(c config) *PublishedPostClient {
	return &PublishedPostClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `publishedpost.Hooks(f(g(h())))`.
func (c *PublishedPostClient) Use(hooks ...Hook) {
	c.hooks.PublishedPost = append(c.hooks.PublishedPost, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `publishedpost.Intercept(f(g(h())))`.
func (c *PublishedPostClient) Intercept(interceptors ...Interceptor) {
	c.inters.PublishedPost = append(c.inters.PublishedPost, interceptors...)
}

// Create returns a builder for creating a PublishedPost entity.
func (c *PublishedPostClient) Create() *PublishedPostCreate {
	mutation := newPublishedPostMutation(c.config, OpCreate)
	return &PublishedPostCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PublishedPost entities.
func (c *PublishedPostClient) CreateBulk(builders ...*PublishedPostCreate) *PublishedPostCreateBulk {
	return &PublishedPostCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PublishedPostClient) MapCreateBulk(slice any, setFunc func(*PublishedPostCreate, int)) *PublishedPostCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PublishedPostCreateBulk{err: fmt.Errorf("calling to PublishedPostClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PublishedPostCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PublishedPostCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PublishedPost.
func (c *PublishedPostClient) Update() *PublishedPostUpdate {
	mutation := newPublishedPostMutation(c.config, OpUpdate)
	return &PublishedPostUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PublishedPostClient) UpdateOne(_m *PublishedPost) *PublishedPostUpdateOne {
	mutation := newPublishedPostMutation(c.config, OpUpdateOne, withPublishedPost(_m))
	return &PublishedPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PublishedPostClient) UpdateOneID(id int) *PublishedPostUpdateOne {
	mutation := newPublishedPostMutation(c.config, OpUpdateOne, withPublishedPostID(id))
	return &PublishedPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PublishedPost.
func (c *PublishedPostClient) Delete() *PublishedPostDelete {
	mutation := newPublishedPostMutation(c.config, OpDelete)
	return &PublishedPostDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PublishedPostClient) DeleteOne(_m *PublishedPost) *PublishedPostDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PublishedPostClient) DeleteOneID(id int) *PublishedPostDeleteOne {
	builder := c.Delete().Where(publishedpost.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PublishedPostDeleteOne{builder}
}

// Query returns a query builder for PublishedPost.
func (c *PublishedPostClient) Query() *PublishedPostQuery {
	return &PublishedPostQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePublishedPost},
		inters: c.Interceptors(),
	}
}

// Get returns a PublishedPost entity by its id.
func (c *PublishedPostClient) Get(ctx context.Context, id int) (*PublishedPost, error) {
	return c.Query().Where(publishedpost.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PublishedPostClient) GetX(ctx context.Context, id int) *PublishedPost {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PublishedPostClient) Hooks() []Hook {
	return c.hooks.PublishedPost
}

// Interceptors returns the client interceptors.
func (c *PublishedPostClient) Interceptors() []Interceptor {
	return c.inters.PublishedPost
}

func (c *PublishedPostClient) mutate(ctx context.Context, m *PublishedPostMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PublishedPostCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PublishedPostUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PublishedPostUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PublishedPostDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PublishedPost mutation op: %q", m.Op())
	}
}

// RawMessageClient is a client for the RawMessage schema.
type RawMessageClient struct {
	config
}

// NewRawMessageClient returns a client for the RawMessage from the given config.
func NewRawMessageClient(c config) *RawMessageClient {
	return &RawMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rawmessage.Hooks(f(g(h())))`.
func (c *RawMessageClient) Use(hooks ...Hook) {
	c.hooks.RawMessage = append(c.hooks.RawMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rawmessage.Intercept(f(g(h())))`.
func (c *RawMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.RawMessage = append(c.inters.RawMessage, interceptors...)
}

// Create returns a builder for creating a RawMessage entity.
func (c *RawMessageClient) Create() *RawMessageCreate {
	mutation := newRawMessageMutation(c.config, OpCreate)
	return &RawMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RawMessage entities.
func (c *RawMessageClient) CreateBulk(builders ...*RawMessageCreate) *RawMessageCreateBulk {
	return &RawMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RawMessageClient) MapCreateBulk(slice any, setFunc func(*RawMessageCreate, int)) *RawMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RawMessageCreateBulk{err: fmt.Errorf("calling to RawMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RawMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RawMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RawMessage.
func (c *RawMessageClient) Update() *RawMessageUpdate {
	mutation := newRawMessageMutation(c.config, OpUpdate)
	return &RawMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RawMessageClient) UpdateOne(_m *RawMessage) *RawMessageUpdateOne {
	mutation := newRawMessageMutation(c.config, OpUpdateOne, withRawMessage(_m))
	return &RawMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RawMessageClient) UpdateOneID(id int) *RawMessageUpdateOne {
	mutation := newRawMessageMutation(c.config, OpUpdateOne, withRawMessageID(id))
	return &RawMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RawMessage.
func (c *RawMessageClient) Delete() *RawMessageDelete {
	mutation := newRawMessageMutation(c.config, OpDelete)
	return &RawMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RawMessageClient) DeleteOne(_m *RawMessage) *RawMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RawMessageClient) DeleteOneID(id int) *RawMessageDeleteOne {
	builder := c.Delete().Where(rawmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RawMessageDeleteOne{builder}
}

// Query returns a query builder for RawMessage.
func (c *RawMessageClient) Query() *RawMessageQuery {
	return &RawMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRawMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a RawMessage entity by its id.
func (c *RawMessageClient) Get(ctx context.Context, id int) (*RawMessage, error) {
	return c.Query().Where(rawmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RawMessageClient) GetX(ctx context.Context, id int) *RawMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProcessingState queries the processing_state edge of a RawMessage.
func (c *RawMessageClient) QueryProcessingState(_m *RawMessage) *ProcessingStateQuery {
	query := (&ProcessingStateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rawmessage.Table, rawmessage.FieldID, id),
			sqlgraph.To(processingstate.Table, processingstate.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, rawmessage.ProcessingStateTable, rawmessage.ProcessingStateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExtraction queries the extraction edge of a RawMessage.
func (c *RawMessageClient) QueryExtraction(_m *RawMessage) *ExtractionQuery {
	query := (&ExtractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rawmessage.Table, rawmessage.FieldID, id),
			sqlgraph.To(extraction.Table, extraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, rawmessage.ExtractionTable, rawmessage.ExtractionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRoutingDecision queries the routing_decision edge of a RawMessage.
func (c *RawMessageClient) QueryRoutingDecision(_m *RawMessage) *RoutingDecisionQuery {
	query := (&RoutingDecisionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rawmessage.Table, rawmessage.FieldID, id),
			sqlgraph.To(routingdecision.Table, routingdecision.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, rawmessage.RoutingDecisionTable, rawmessage.RoutingDecisionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEventLinks queries the event_links edge of a RawMessage.
func (c *RawMessageClient) QueryEventLinks(_m *RawMessage) *EventMessageQuery {
	query := (&EventMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rawmessage.Table, rawmessage.FieldID, id),
			sqlgraph.To(eventmessage.Table, eventmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, rawmessage.EventLinksTable, rawmessage.EventLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEntityMentions queries the entity_mentions edge of a RawMessage.
func (c *RawMessageClient) QueryEntityMentions(_m *RawMessage) *EntityMentionQuery {
	query := (&EntityMentionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rawmessage.Table, rawmessage.FieldID, id),
			sqlgraph.To(entitymention.Table, entitymention.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, rawmessage.EntityMentionsTable, rawmessage.EntityMentionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RawMessageClient) Hooks() []Hook {
	return c.hooks.RawMessage
}

// Interceptors returns the client interceptors.
func (c *RawMessageClient) Interceptors() []Interceptor {
	return c.inters.RawMessage
}

func (c *RawMessageClient) mutate(ctx context.Context, m *RawMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RawMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RawMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RawMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RawMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RawMessage mutation op: %q", m.Op())
	}
}

// RoutingDecisionClient is a client for the RoutingDecision schema.
type RoutingDecisionClient struct {
	config
}

// NewRoutingDecisionClient returns a client for the RoutingDecision from the given config.
func NewRoutingDecisionClient(c config) *RoutingDecisionClient {
	return &RoutingDecisionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `routingdecision.Hooks(f(g(h())))`.
func (c *RoutingDecisionClient) Use(hooks ...Hook) {
	c.hooks.RoutingDecision = append(c.hooks.RoutingDecision, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `routingdecision.Intercept(f(g(h())))`.
func (c *RoutingDecisionClient) Intercept(interceptors ...Interceptor) {
	c.inters.RoutingDecision = append(c.inters.RoutingDecision, interceptors...)
}

// Create returns a builder for creating a RoutingDecision entity.
func (c *RoutingDecisionClient) Create() *RoutingDecisionCreate {
	mutation := newRoutingDecisionMutation(c.config, OpCreate)
	return &RoutingDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RoutingDecision entities.
func (c *RoutingDecisionClient) CreateBulk(builders ...*RoutingDecisionCreate) *RoutingDecisionCreateBulk {
	return &RoutingDecisionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RoutingDecisionClient) MapCreateBulk(slice any, setFunc func(*RoutingDecisionCreate, int)) *RoutingDecisionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RoutingDecisionCreateBulk{err: fmt.Errorf("calling to RoutingDecisionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RoutingDecisionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RoutingDecisionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RoutingDecision.
func (c *RoutingDecisionClient) Update() *RoutingDecisionUpdate {
	mutation := newRoutingDecisionMutation(c.config, OpUpdate)
	return &RoutingDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RoutingDecisionClient) UpdateOne(_m *RoutingDecision) *RoutingDecisionUpdateOne {
	mutation := newRoutingDecisionMutation(c.config, OpUpdateOne, withRoutingDecision(_m))
	return &RoutingDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RoutingDecisionClient) UpdateOneID(id int) *RoutingDecisionUpdateOne {
	mutation := newRoutingDecisionMutation(c.config, OpUpdateOne, withRoutingDecisionID(id))
	return &RoutingDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RoutingDecision.
func (c *RoutingDecisionClient) Delete() *RoutingDecisionDelete {
	mutation := newRoutingDecisionMutation(c.config, OpDelete)
	return &RoutingDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RoutingDecisionClient) DeleteOne(_m *RoutingDecision) *RoutingDecisionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RoutingDecisionClient) DeleteOneID(id int) *RoutingDecisionDeleteOne {
	builder := c.Delete().Where(routingdecision.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RoutingDecisionDeleteOne{builder}
}

// Query returns a query builder for RoutingDecision.
func (c *RoutingDecisionClient) Query() *RoutingDecisionQuery {
	return &RoutingDecisionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRoutingDecision},
		inters: c.Interceptors(),
	}
}

// Get returns a RoutingDecision entity by its id.
func (c *RoutingDecisionClient) Get(ctx context.Context, id int) (*RoutingDecision, error) {
	return c.Query().Where(routingdecision.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RoutingDecisionClient) GetX(ctx context.Context, id int) *RoutingDecision {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRawMessage queries the raw_message edge of a RoutingDecision.
func (c *RoutingDecisionClient) QueryRawMessage(_m *RoutingDecision) *RawMessageQuery {
	query := (&RawMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(routingdecision.Table, routingdecision.FieldID, id),
			sqlgraph.To(rawmessage.Table, rawmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, routingdecision.RawMessageTable, routingdecision.RawMessageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RoutingDecisionClient) Hooks() []Hook {
	return c.hooks.RoutingDecision
}

// Interceptors returns the client interceptors.
func (c *RoutingDecisionClient) Interceptors() []Interceptor {
	return c.inters.RoutingDecision
}

func (c *RoutingDecisionClient) mutate(ctx context.Context, m *RoutingDecisionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RoutingDecisionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RoutingDecisionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RoutingDecisionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RoutingDecisionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RoutingDecision mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		EntityMention, Event, EventMessage, Extraction, ProcessingLock, ProcessingState,
		PublishedPost, RawMessage, RoutingDecision []ent.Hook
	}
	inters struct {
		EntityMention, Event, EventMessage, Extraction, ProcessingLock, ProcessingState,
		PublishedPost, RawMessage, RoutingDecision []ent.Interceptor
	}
)

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/orchid-run/orchid/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/orchid-run/orchid/ent/cacherecord"
	"github.com/orchid-run/orchid/ent/deadletter"
	"github.com/orchid-run/orchid/ent/routingdecision"
	"github.com/orchid-run/orchid/ent/run"
	"github.com/orchid-run/orchid/ent/stepexecution"
	"github.com/orchid-run/orchid/ent/webhookdelivery"
	"github.com/orchid-run/orchid/ent/webhookendpoint"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CacheRecord is the client for interacting with the CacheRecord builders.
	CacheRecord *CacheRecordClient
	// DeadLetter is the client for interacting with the DeadLetter builders.
	DeadLetter *DeadLetterClient
	// RoutingDecision is the client for interacting with the RoutingDecision builders.
	RoutingDecision *RoutingDecisionClient
	// Run is the client for interacting with the Run builders.
	Run *RunClient
	// StepExecution is the client for interacting with the StepExecution builders.
	StepExecution *StepExecutionClient
	// WebhookDelivery is the client for interacting with the WebhookDelivery builders.
	WebhookDelivery *WebhookDeliveryClient
	// WebhookEndpoint is the client for interacting with the WebhookEndpoint builders.
	WebhookEndpoint *WebhookEndpointClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CacheRecord = NewCacheRecordClient(c.config)
	c.DeadLetter = NewDeadLetterClient(c.config)
	c.RoutingDecision = NewRoutingDecisionClient(c.config)
	c.Run = NewRunClient(c.config)
	c.StepExecution = NewStepExecutionClient(c.config)
	c.WebhookDelivery = NewWebhookDeliveryClient(c.config)
	c.WebhookEndpoint = NewWebhookEndpointClient(c.config)
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
		CacheRecord:     NewCacheRecordClient(cfg),
		DeadLetter:      NewDeadLetterClient(cfg),
		RoutingDecision: NewRoutingDecisionClient(cfg),
		Run:             NewRunClient(cfg),
		StepExecution:   NewStepExecutionClient(cfg),
		WebhookDelivery: NewWebhookDeliveryClient(cfg),
		WebhookEndpoint: NewWebhookEndpointClient(cfg),
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
		CacheRecord:     NewCacheRecordClient(cfg),
		DeadLetter:      NewDeadLetterClient(cfg),
		RoutingDecision: NewRoutingDecisionClient(cfg),
		Run:             NewRunClient(cfg),
		StepExecution:   NewStepExecutionClient(cfg),
		WebhookDelivery: NewWebhookDeliveryClient(cfg),
		WebhookEndpoint: NewWebhookEndpointClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CacheRecord.
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
		c.CacheRecord, c.DeadLetter, c.RoutingDecision, c.Run, c.StepExecution,
		c.WebhookDelivery, c.WebhookEndpoint,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CacheRecord, c.DeadLetter, c.RoutingDecision, c.Run, c.StepExecution,
		c.WebhookDelivery, c.WebhookEndpoint,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CacheRecordMutation:
		return c.CacheRecord.mutate(ctx, m)
	case *DeadLetterMutation:
		return c.DeadLetter.mutate(ctx, m)
	case *RoutingDecisionMutation:
		return c.RoutingDecision.mutate(ctx, m)
	case *RunMutation:
		return c.Run.mutate(ctx, m)
	case *StepExecutionMutation:
		return c.StepExecution.mutate(ctx, m)
	case *WebhookDeliveryMutation:
		return c.WebhookDelivery.mutate(ctx, m)
	case *WebhookEndpointMutation:
		return c.WebhookEndpoint.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CacheRecordClient is a client for the CacheRecord schema.
type CacheRecordClient struct {
	config
}

// NewCacheRecordClient returns a client for the CacheRecord from the given config.
func NewCacheRecordClient(c config) *CacheRecordClient {
	return &CacheRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cacherecord.Hooks(f(g(h())))`.
func (c *CacheRecordClient) Use(hooks ...Hook) {
	c.hooks.CacheRecord = append(c.hooks.CacheRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cacherecord.Intercept(f(g(h())))`.
func (c *CacheRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.CacheRecord = append(c.inters.CacheRecord, interceptors...)
}

// Create returns a builder for creating a CacheRecord entity.
func (c *CacheRecordClient) Create() *CacheRecordCreate {
	mutation := newCacheRecordMutation(c.config, OpCreate)
	return &CacheRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CacheRecord entities.
func (c *CacheRecordClient) CreateBulk(builders ...*CacheRecordCreate) *CacheRecordCreateBulk {
	return &CacheRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CacheRecordClient) MapCreateBulk(slice any, setFunc func(*CacheRecordCreate, int)) *CacheRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CacheRecordCreateBulk{err: fmt.Errorf("calling to CacheRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CacheRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CacheRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CacheRecord.
func (c *CacheRecordClient) Update() *CacheRecordUpdate {
	mutation := newCacheRecordMutation(c.config, OpUpdate)
	return &CacheRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CacheRecordClient) UpdateOne(_m *CacheRecord) *CacheRecordUpdateOne {
	mutation := newCacheRecordMutation(c.config, OpUpdateOne, withCacheRecord(_m))
	return &CacheRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CacheRecordClient) UpdateOneID(id int) *CacheRecordUpdateOne {
	mutation := newCacheRecordMutation(c.config, OpUpdateOne, withCacheRecordID(id))
	return &CacheRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CacheRecord.
func (c *CacheRecordClient) Delete() *CacheRecordDelete {
	mutation := newCacheRecordMutation(c.config, OpDelete)
	return &CacheRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CacheRecordClient) DeleteOne(_m *CacheRecord) *CacheRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CacheRecordClient) DeleteOneID(id int) *CacheRecordDeleteOne {
	builder := c.Delete().Where(cacherecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CacheRecordDeleteOne{builder}
}

// Query returns a query builder for CacheRecord.
func (c *CacheRecordClient) Query() *CacheRecordQuery {
	return &CacheRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCacheRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a CacheRecord entity by its id.
func (c *CacheRecordClient) Get(ctx context.Context, id int) (*CacheRecord, error) {
	return c.Query().Where(cacherecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CacheRecordClient) GetX(ctx context.Context, id int) *CacheRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CacheRecordClient) Hooks() []Hook {
	return c.hooks.CacheRecord
}

// Interceptors returns the client interceptors.
func (c *CacheRecordClient) Interceptors() []Interceptor {
	return c.inters.CacheRecord
}

func (c *CacheRecordClient) mutate(ctx context.Context, m *CacheRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CacheRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CacheRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CacheRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CacheRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CacheRecord mutation op: %q", m.Op())
	}
}

// DeadLetterClient is a client for the DeadLetter schema.
type DeadLetterClient struct {
	config
}

// NewDeadLetterClient returns a client for the DeadLetter from the given config.
func NewDeadLetterClient(c config) *DeadLetterClient {
	return &DeadLetterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deadletter.Hooks(f(g(h())))`.
func (c *DeadLetterClient) Use(hooks ...Hook) {
	c.hooks.DeadLetter = append(c.hooks.DeadLetter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deadletter.Intercept(f(g(h())))`.
func (c *DeadLetterClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeadLetter = append(c.inters.DeadLetter, interceptors...)
}

// Create returns a builder for creating a DeadLetter entity.
func (c *DeadLetterClient) Create() *DeadLetterCreate {
	mutation := newDeadLetterMutation(c.config, OpCreate)
	return &DeadLetterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeadLetter entities.
func (c *DeadLetterClient) CreateBulk(builders ...*DeadLetterCreate) *DeadLetterCreateBulk {
	return &DeadLetterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeadLetterClient) MapCreateBulk(slice any, setFunc func(*DeadLetterCreate, int)) *DeadLetterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeadLetterCreateBulk{err: fmt.Errorf("calling to DeadLetterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeadLetterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeadLetterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeadLetter.
func (c *DeadLetterClient) Update() *DeadLetterUpdate {
	mutation := newDeadLetterMutation(c.config, OpUpdate)
	return &DeadLetterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeadLetterClient) UpdateOne(_m *DeadLetter) *DeadLetterUpdateOne {
	mutation := newDeadLetterMutation(c.config, OpUpdateOne, withDeadLetter(_m))
	return &DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeadLetterClient) UpdateOneID(id int) *DeadLetterUpdateOne {
	mutation := newDeadLetterMutation(c.config, OpUpdateOne, withDeadLetterID(id))
	return &DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeadLetter.
func (c *DeadLetterClient) Delete() *DeadLetterDelete {
	mutation := newDeadLetterMutation(c.config, OpDelete)
	return &DeadLetterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeadLetterClient) DeleteOne(_m *DeadLetter) *DeadLetterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeadLetterClient) DeleteOneID(id int) *DeadLetterDeleteOne {
	builder := c.Delete().Where(deadletter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeadLetterDeleteOne{builder}
}

// Query returns a query builder for DeadLetter.
func (c *DeadLetterClient) Query() *DeadLetterQuery {
	return &DeadLetterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeadLetter},
		inters: c.Interceptors(),
	}
}

// Get returns a DeadLetter entity by its id.
func (c *DeadLetterClient) Get(ctx context.Context, id int) (*DeadLetter, error) {
	return c.Query().Where(deadletter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeadLetterClient) GetX(ctx context.Context, id int) *DeadLetter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEndpoint queries the endpoint edge of a DeadLetter.
func (c *DeadLetterClient) QueryEndpoint(_m *DeadLetter) *WebhookEndpointQuery {
	query := (&WebhookEndpointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(deadletter.Table, deadletter.FieldID, id),
			sqlgraph.To(webhookendpoint.Table, webhookendpoint.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deadletter.EndpointTable, deadletter.EndpointColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DeadLetterClient) Hooks() []Hook {
	return c.hooks.DeadLetter
}

// Interceptors returns the client interceptors.
func (c *DeadLetterClient) Interceptors() []Interceptor {
	return c.inters.DeadLetter
}

func (c *DeadLetterClient) mutate(ctx context.Context, m *DeadLetterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeadLetterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeadLetterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeadLetterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeadLetter mutation op: %q", m.Op())
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

// QueryRun queries the run edge of a RoutingDecision.
func (c *RoutingDecisionClient) QueryRun(_m *RoutingDecision) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(routingdecision.Table, routingdecision.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, routingdecision.RunTable, routingdecision.RunColumn),
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

// RunClient is a client for the Run schema.
type RunClient struct {
	config
}

// NewRunClient returns a client for the Run from the given config.
func NewRunClient(c config) *RunClient {
	return &RunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `run.Hooks(f(g(h())))`.
func (c *RunClient) Use(hooks ...Hook) {
	c.hooks.Run = append(c.hooks.Run, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `run.Intercept(f(g(h())))`.
func (c *RunClient) Intercept(interceptors ...Interceptor) {
	c.inters.Run = append(c.inters.Run, interceptors...)
}

// Create returns a builder for creating a Run entity.
func (c *RunClient) Create() *RunCreate {
	mutation := newRunMutation(c.config, OpCreate)
	return &RunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Run entities.
func (c *RunClient) CreateBulk(builders ...*RunCreate) *RunCreateBulk {
	return &RunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RunClient) MapCreateBulk(slice any, setFunc func(*RunCreate, int)) *RunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RunCreateBulk{err: fmt.Errorf("calling to RunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Run.
func (c *RunClient) Update() *RunUpdate {
	mutation := newRunMutation(c.config, OpUpdate)
	return &RunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RunClient) UpdateOne(_m *Run) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRun(_m))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RunClient) UpdateOneID(id string) *RunUpdateOne {
	mutation := newRunMutation(c.config, OpUpdateOne, withRunID(id))
	return &RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Run.
func (c *RunClient) Delete() *RunDelete {
	mutation := newRunMutation(c.config, OpDelete)
	return &RunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RunClient) DeleteOne(_m *Run) *RunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RunClient) DeleteOneID(id string) *RunDeleteOne {
	builder := c.Delete().Where(run.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RunDeleteOne{builder}
}

// Query returns a query builder for Run.
func (c *RunClient) Query() *RunQuery {
	return &RunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRun},
		inters: c.Interceptors(),
	}
}

// Get returns a Run entity by its id.
func (c *RunClient) Get(ctx context.Context, id string) (*Run, error) {
	return c.Query().Where(run.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RunClient) GetX(ctx context.Context, id string) *Run {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a Run.
func (c *RunClient) QuerySteps(_m *Run) *StepExecutionQuery {
	query := (&StepExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(stepexecution.Table, stepexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.StepsTable, run.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRoutingDecisions queries the routing_decisions edge of a Run.
func (c *RunClient) QueryRoutingDecisions(_m *Run) *RoutingDecisionQuery {
	query := (&RoutingDecisionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, id),
			sqlgraph.To(routingdecision.Table, routingdecision.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.RoutingDecisionsTable, run.RoutingDecisionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RunClient) Hooks() []Hook {
	return c.hooks.Run
}

// Interceptors returns the client interceptors.
func (c *RunClient) Interceptors() []Interceptor {
	return c.inters.Run
}

func (c *RunClient) mutate(ctx context.Context, m *RunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Run mutation op: %q", m.Op())
	}
}

// StepExecutionClient is a client for the StepExecution schema.
type StepExecutionClient struct {
	config
}

// NewStepExecutionClient returns a client for the StepExecution from the given config.
func NewStepExecutionClient(c config) *StepExecutionClient {
	return &StepExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stepexecution.Hooks(f(g(h())))`.
func (c *StepExecutionClient) Use(hooks ...Hook) {
	c.hooks.StepExecution = append(c.hooks.StepExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stepexecution.Intercept(f(g(h())))`.
func (c *StepExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.StepExecution = append(c.inters.StepExecution, interceptors...)
}

// Create returns a builder for creating a StepExecution entity.
func (c *StepExecutionClient) Create() *StepExecutionCreate {
	mutation := newStepExecutionMutation(c.config, OpCreate)
	return &StepExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StepExecution entities.
func (c *StepExecutionClient) CreateBulk(builders ...*StepExecutionCreate) *StepExecutionCreateBulk {
	return &StepExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StepExecutionClient) MapCreateBulk(slice any, setFunc func(*StepExecutionCreate, int)) *StepExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StepExecutionCreateBulk{err: fmt.Errorf("calling to StepExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StepExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StepExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StepExecution.
func (c *StepExecutionClient) Update() *StepExecutionUpdate {
	mutation := newStepExecutionMutation(c.config, OpUpdate)
	return &StepExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StepExecutionClient) UpdateOne(_m *StepExecution) *StepExecutionUpdateOne {
	mutation := newStepExecutionMutation(c.config, OpUpdateOne, withStepExecution(_m))
	return &StepExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StepExecutionClient) UpdateOneID(id int) *StepExecutionUpdateOne {
	mutation := newStepExecutionMutation(c.config, OpUpdateOne, withStepExecutionID(id))
	return &StepExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StepExecution.
func (c *StepExecutionClient) Delete() *StepExecutionDelete {
	mutation := newStepExecutionMutation(c.config, OpDelete)
	return &StepExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StepExecutionClient) DeleteOne(_m *StepExecution) *StepExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StepExecutionClient) DeleteOneID(id int) *StepExecutionDeleteOne {
	builder := c.Delete().Where(stepexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StepExecutionDeleteOne{builder}
}

// Query returns a query builder for StepExecution.
func (c *StepExecutionClient) Query() *StepExecutionQuery {
	return &StepExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStepExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a StepExecution entity by its id.
func (c *StepExecutionClient) Get(ctx context.Context, id int) (*StepExecution, error) {
	return c.Query().Where(stepexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StepExecutionClient) GetX(ctx context.Context, id int) *StepExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a StepExecution.
func (c *StepExecutionClient) QueryRun(_m *StepExecution) *RunQuery {
	query := (&RunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stepexecution.Table, stepexecution.FieldID, id),
			sqlgraph.To(run.Table, run.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stepexecution.RunTable, stepexecution.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StepExecutionClient) Hooks() []Hook {
	return c.hooks.StepExecution
}

// Interceptors returns the client interceptors.
func (c *StepExecutionClient) Interceptors() []Interceptor {
	return c.inters.StepExecution
}

func (c *StepExecutionClient) mutate(ctx context.Context, m *StepExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StepExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StepExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StepExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StepExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StepExecution mutation op: %q", m.Op())
	}
}

// WebhookDeliveryClient is a client for the WebhookDelivery schema.
type WebhookDeliveryClient struct {
	config
}

// NewWebhookDeliveryClient returns a client for the WebhookDelivery from the given config.
func NewWebhookDeliveryClient(c config) *WebhookDeliveryClient {
	return &WebhookDeliveryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhookdelivery.Hooks(f(g(h())))`.
func (c *WebhookDeliveryClient) Use(hooks ...Hook) {
	c.hooks.WebhookDelivery = append(c.hooks.WebhookDelivery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhookdelivery.Intercept(f(g(h())))`.
func (c *WebhookDeliveryClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookDelivery = append(c.inters.WebhookDelivery, interceptors...)
}

// Create returns a builder for creating a WebhookDelivery entity.
func (c *WebhookDeliveryClient) Create() *WebhookDeliveryCreate {
	mutation := newWebhookDeliveryMutation(c.config, OpCreate)
	return &WebhookDeliveryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookDelivery entities.
func (c *WebhookDeliveryClient) CreateBulk(builders ...*WebhookDeliveryCreate) *WebhookDeliveryCreateBulk {
	return &WebhookDeliveryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookDeliveryClient) MapCreateBulk(slice any, setFunc func(*WebhookDeliveryCreate, int)) *WebhookDeliveryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookDeliveryCreateBulk{err: fmt.Errorf("calling to WebhookDeliveryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookDeliveryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookDeliveryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Update() *WebhookDeliveryUpdate {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdate)
	return &WebhookDeliveryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookDeliveryClient) UpdateOne(_m *WebhookDelivery) *WebhookDeliveryUpdateOne {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdateOne, withWebhookDelivery(_m))
	return &WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookDeliveryClient) UpdateOneID(id string) *WebhookDeliveryUpdateOne {
	mutation := newWebhookDeliveryMutation(c.config, OpUpdateOne, withWebhookDeliveryID(id))
	return &WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Delete() *WebhookDeliveryDelete {
	mutation := newWebhookDeliveryMutation(c.config, OpDelete)
	return &WebhookDeliveryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookDeliveryClient) DeleteOne(_m *WebhookDelivery) *WebhookDeliveryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookDeliveryClient) DeleteOneID(id string) *WebhookDeliveryDeleteOne {
	builder := c.Delete().Where(webhookdelivery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookDeliveryDeleteOne{builder}
}

// Query returns a query builder for WebhookDelivery.
func (c *WebhookDeliveryClient) Query() *WebhookDeliveryQuery {
	return &WebhookDeliveryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookDelivery},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookDelivery entity by its id.
func (c *WebhookDeliveryClient) Get(ctx context.Context, id string) (*WebhookDelivery, error) {
	return c.Query().Where(webhookdelivery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookDeliveryClient) GetX(ctx context.Context, id string) *WebhookDelivery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEndpoint queries the endpoint edge of a WebhookDelivery.
func (c *WebhookDeliveryClient) QueryEndpoint(_m *WebhookDelivery) *WebhookEndpointQuery {
	query := (&WebhookEndpointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(webhookdelivery.Table, webhookdelivery.FieldID, id),
			sqlgraph.To(webhookendpoint.Table, webhookendpoint.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, webhookdelivery.EndpointTable, webhookdelivery.EndpointColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WebhookDeliveryClient) Hooks() []Hook {
	return c.hooks.WebhookDelivery
}

// Interceptors returns the client interceptors.
func (c *WebhookDeliveryClient) Interceptors() []Interceptor {
	return c.inters.WebhookDelivery
}

func (c *WebhookDeliveryClient) mutate(ctx context.Context, m *WebhookDeliveryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookDeliveryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookDeliveryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookDeliveryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookDeliveryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WebhookDelivery mutation op: %q", m.Op())
	}
}

// WebhookEndpointClient is a client for the WebhookEndpoint schema.
type WebhookEndpointClient struct {
	config
}

// NewWebhookEndpointClient returns a client for the WebhookEndpoint from the given config.
func NewWebhookEndpointClient(c config) *WebhookEndpointClient {
	return &WebhookEndpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhookendpoint.Hooks(f(g(h())))`.
func (c *WebhookEndpointClient) Use(hooks ...Hook) {
	c.hooks.WebhookEndpoint = append(c.hooks.WebhookEndpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhookendpoint.Intercept(f(g(h())))`.
func (c *WebhookEndpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookEndpoint = append(c.inters.WebhookEndpoint, interceptors...)
}

// Create returns a builder for creating a WebhookEndpoint entity.
func (c *WebhookEndpointClient) Create() *WebhookEndpointCreate {
	mutation := newWebhookEndpointMutation(c.config, OpCreate)
	return &WebhookEndpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookEndpoint entities.
func (c *WebhookEndpointClient) CreateBulk(builders ...*WebhookEndpointCreate) *WebhookEndpointCreateBulk {
	return &WebhookEndpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookEndpointClient) MapCreateBulk(slice any, setFunc func(*WebhookEndpointCreate, int)) *WebhookEndpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookEndpointCreateBulk{err: fmt.Errorf("calling to WebhookEndpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookEndpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookEndpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookEndpoint.
func (c *WebhookEndpointClient) Update() *WebhookEndpointUpdate {
	mutation := newWebhookEndpointMutation(c.config, OpUpdate)
	return &WebhookEndpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookEndpointClient) UpdateOne(_m *WebhookEndpoint) *WebhookEndpointUpdateOne {
	mutation := newWebhookEndpointMutation(c.config, OpUpdateOne, withWebhookEndpoint(_m))
	return &WebhookEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookEndpointClient) UpdateOneID(id string) *WebhookEndpointUpdateOne {
	mutation := newWebhookEndpointMutation(c.config, OpUpdateOne, withWebhookEndpointID(id))
	return &WebhookEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookEndpoint.
func (c *WebhookEndpointClient) Delete() *WebhookEndpointDelete {
	mutation := newWebhookEndpointMutation(c.config, OpDelete)
	return &WebhookEndpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookEndpointClient) DeleteOne(_m *WebhookEndpoint) *WebhookEndpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookEndpointClient) DeleteOneID(id string) *WebhookEndpointDeleteOne {
	builder := c.Delete().Where(webhookendpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookEndpointDeleteOne{builder}
}

// Query returns a query builder for WebhookEndpoint.
func (c *WebhookEndpointClient) Query() *WebhookEndpointQuery {
	return &WebhookEndpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookEndpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookEndpoint entity by its id.
func (c *WebhookEndpointClient) Get(ctx context.Context, id string) (*WebhookEndpoint, error) {
	return c.Query().Where(webhookendpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookEndpointClient) GetX(ctx context.Context, id string) *WebhookEndpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDeliveries queries the deliveries edge of a WebhookEndpoint.
func (c *WebhookEndpointClient) QueryDeliveries(_m *WebhookEndpoint) *WebhookDeliveryQuery {
	query := (&WebhookDeliveryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(webhookendpoint.Table, webhookendpoint.FieldID, id),
			sqlgraph.To(webhookdelivery.Table, webhookdelivery.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, webhookendpoint.DeliveriesTable, webhookendpoint.DeliveriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDeadLetters queries the dead_letters edge of a WebhookEndpoint.
func (c *WebhookEndpointClient) QueryDeadLetters(_m *WebhookEndpoint) *DeadLetterQuery {
	query := (&DeadLetterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(webhookendpoint.Table, webhookendpoint.FieldID, id),
			sqlgraph.To(deadletter.Table, deadletter.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, webhookendpoint.DeadLettersTable, webhookendpoint.DeadLettersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WebhookEndpointClient) Hooks() []Hook {
	return c.hooks.WebhookEndpoint
}

// Interceptors returns the client interceptors.
func (c *WebhookEndpointClient) Interceptors() []Interceptor {
	return c.inters.WebhookEndpoint
}

func (c *WebhookEndpointClient) mutate(ctx context.Context, m *WebhookEndpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookEndpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookEndpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookEndpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WebhookEndpoint mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CacheRecord, DeadLetter, RoutingDecision, Run, StepExecution, WebhookDelivery,
		WebhookEndpoint []ent.Hook
	}
	inters struct {
		CacheRecord, DeadLetter, RoutingDecision, Run, StepExecution, WebhookDelivery,
		WebhookEndpoint []ent.Interceptor
	}
)

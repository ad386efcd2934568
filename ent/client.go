// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/openscribe/scribe/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/openscribe/scribe/ent/anontoken"
	"github.com/openscribe/scribe/ent/balance"
	"github.com/openscribe/scribe/ent/task"
	"github.com/openscribe/scribe/ent/transcript"
	"github.com/openscribe/scribe/ent/trialusage"
	"github.com/openscribe/scribe/ent/webhookevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnonToken is the client for interacting with the AnonToken builders.
	AnonToken *AnonTokenClient
	// Balance is the client for interacting with the Balance builders.
	Balance *BalanceClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// Transcript is the client for interacting with the Transcript builders.
	Transcript *TranscriptClient
	// TrialUsage is the client for interacting with the TrialUsage builders.
	TrialUsage *TrialUsageClient
	// WebhookEvent is the client for interacting with the WebhookEvent builders.
	WebhookEvent *WebhookEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnonToken = NewAnonTokenClient(c.config)
	c.Balance = NewBalanceClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.Transcript = NewTranscriptClient(c.config)
	c.TrialUsage = NewTrialUsageClient(c.config)
	c.WebhookEvent = NewWebhookEventClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		AnonToken:    NewAnonTokenClient(cfg),
		Balance:      NewBalanceClient(cfg),
		Task:         NewTaskClient(cfg),
		Transcript:   NewTranscriptClient(cfg),
		TrialUsage:   NewTrialUsageClient(cfg),
		WebhookEvent: NewWebhookEventClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		AnonToken:    NewAnonTokenClient(cfg),
		Balance:      NewBalanceClient(cfg),
		Task:         NewTaskClient(cfg),
		Transcript:   NewTranscriptClient(cfg),
		TrialUsage:   NewTrialUsageClient(cfg),
		WebhookEvent: NewWebhookEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnonToken.
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
		c.AnonToken, c.Balance, c.Task, c.Transcript, c.TrialUsage, c.WebhookEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnonToken, c.Balance, c.Task, c.Transcript, c.TrialUsage, c.WebhookEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnonTokenMutation:
		return c.AnonToken.mutate(ctx, m)
	case *BalanceMutation:
		return c.Balance.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TranscriptMutation:
		return c.Transcript.mutate(ctx, m)
	case *TrialUsageMutation:
		return c.TrialUsage.mutate(ctx, m)
	case *WebhookEventMutation:
		return c.WebhookEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnonTokenClient is a client for the AnonToken schema.
type AnonTokenClient struct {
	config
}

// NewAnonTokenClient returns a client for the AnonToken from the given config.
func NewAnonTokenClient(c config) *AnonTokenClient {
	return &AnonTokenClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `anontoken.Hooks(f(g(h())))`.
func (c *AnonTokenClient) Use(hooks ...Hook) {
	c.hooks.AnonToken = append(c.hooks.AnonToken, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `anontoken.Intercept(f(g(h())))`.
func (c *AnonTokenClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnonToken = append(c.inters.AnonToken, interceptors...)
}

// Create returns a builder for creating a AnonToken entity.
func (c *AnonTokenClient) Create() *AnonTokenCreate {
	mutation := newAnonTokenMutation(c.config, OpCreate)
	return &AnonTokenCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnonToken entities.
func (c *AnonTokenClient) CreateBulk(builders ...*AnonTokenCreate) *AnonTokenCreateBulk {
	return &AnonTokenCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnonTokenClient) MapCreateBulk(slice any, setFunc func(*AnonTokenCreate, int)) *AnonTokenCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnonTokenCreateBulk{err: fmt.Errorf("calling to AnonTokenClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnonTokenCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnonTokenCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnonToken.
func (c *AnonTokenClient) Update() *AnonTokenUpdate {
	mutation := newAnonTokenMutation(c.config, OpUpdate)
	return &AnonTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnonTokenClient) UpdateOne(_m *AnonToken) *AnonTokenUpdateOne {
	mutation := newAnonTokenMutation(c.config, OpUpdateOne, withAnonToken(_m))
	return &AnonTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnonTokenClient) UpdateOneID(id string) *AnonTokenUpdateOne {
	mutation := newAnonTokenMutation(c.config, OpUpdateOne, withAnonTokenID(id))
	return &AnonTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnonToken.
func (c *AnonTokenClient) Delete() *AnonTokenDelete {
	mutation := newAnonTokenMutation(c.config, OpDelete)
	return &AnonTokenDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnonTokenClient) DeleteOne(_m *AnonToken) *AnonTokenDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnonTokenClient) DeleteOneID(id string) *AnonTokenDeleteOne {
	builder := c.Delete().Where(anontoken.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnonTokenDeleteOne{builder}
}

// Query returns a query builder for AnonToken.
func (c *AnonTokenClient) Query() *AnonTokenQuery {
	return &AnonTokenQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnonToken},
		inters: c.Interceptors(),
	}
}

// Get returns a AnonToken entity by its id.
func (c *AnonTokenClient) Get(ctx context.Context, id string) (*AnonToken, error) {
	return c.Query().Where(anontoken.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnonTokenClient) GetX(ctx context.Context, id string) *AnonToken {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AnonTokenClient) Hooks() []Hook {
	return c.hooks.AnonToken
}

// Interceptors returns the client interceptors.
func (c *AnonTokenClient) Interceptors() []Interceptor {
	return c.inters.AnonToken
}

func (c *AnonTokenClient) mutate(ctx context.Context, m *AnonTokenMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnonTokenCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnonTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnonTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnonTokenDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnonToken mutation op: %q", m.Op())
	}
}

// BalanceClient is a client for the Balance schema.
type BalanceClient struct {
	config
}

// NewBalanceClient returns a client for the Balance from the given config.
func NewBalanceClient(c config) *BalanceClient {
	return &BalanceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `balance.Hooks(f(g(h())))`.
func (c *BalanceClient) Use(hooks ...Hook) {
	c.hooks.Balance = append(c.hooks.Balance, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `balance.Intercept(f(g(h())))`.
func (c *BalanceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Balance = append(c.inters.Balance, interceptors...)
}

// Create returns a builder for creating a Balance entity.
func (c *BalanceClient) Create() *BalanceCreate {
	mutation := newBalanceMutation(c.config, OpCreate)
	return &BalanceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Balance entities.
func (c *BalanceClient) CreateBulk(builders ...*BalanceCreate) *BalanceCreateBulk {
	return &BalanceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BalanceClient) MapCreateBulk(slice any, setFunc func(*BalanceCreate, int)) *BalanceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BalanceCreateBulk{err: fmt.Errorf("calling to BalanceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BalanceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BalanceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Balance.
func (c *BalanceClient) Update() *BalanceUpdate {
	mutation := newBalanceMutation(c.config, OpUpdate)
	return &BalanceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BalanceClient) UpdateOne(_m *Balance) *BalanceUpdateOne {
	mutation := newBalanceMutation(c.config, OpUpdateOne, withBalance(_m))
	return &BalanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BalanceClient) UpdateOneID(id string) *BalanceUpdateOne {
	mutation := newBalanceMutation(c.config, OpUpdateOne, withBalanceID(id))
	return &BalanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Balance.
func (c *BalanceClient) Delete() *BalanceDelete {
	mutation := newBalanceMutation(c.config, OpDelete)
	return &BalanceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BalanceClient) DeleteOne(_m *Balance) *BalanceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BalanceClient) DeleteOneID(id string) *BalanceDeleteOne {
	builder := c.Delete().Where(balance.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BalanceDeleteOne{builder}
}

// Query returns a query builder for Balance.
func (c *BalanceClient) Query() *BalanceQuery {
	return &BalanceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBalance},
		inters: c.Interceptors(),
	}
}

// Get returns a Balance entity by its id.
func (c *BalanceClient) Get(ctx context.Context, id string) (*Balance, error) {
	return c.Query().Where(balance.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BalanceClient) GetX(ctx context.Context, id string) *Balance {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BalanceClient) Hooks() []Hook {
	return c.hooks.Balance
}

// Interceptors returns the client interceptors.
func (c *BalanceClient) Interceptors() []Interceptor {
	return c.inters.Balance
}

func (c *BalanceClient) mutate(ctx context.Context, m *BalanceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BalanceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BalanceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BalanceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BalanceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Balance mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTranscript queries the transcript edge of a Task.
func (c *TaskClient) QueryTranscript(_m *Task) *TranscriptQuery {
	query := (&TranscriptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(transcript.Table, transcript.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, task.TranscriptTable, task.TranscriptColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TranscriptClient is a client for the Transcript schema.
type TranscriptClient struct {
	config
}

// NewTranscriptClient returns a client for the Transcript from the given config.
func NewTranscriptClient(c config) *TranscriptClient {
	return &TranscriptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transcript.Hooks(f(g(h())))`.
func (c *TranscriptClient) Use(hooks ...Hook) {
	c.hooks.Transcript = append(c.hooks.Transcript, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transcript.Intercept(f(g(h())))`.
func (c *TranscriptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Transcript = append(c.inters.Transcript, interceptors...)
}

// Create returns a builder for creating a Transcript entity.
func (c *TranscriptClient) Create() *TranscriptCreate {
	mutation := newTranscriptMutation(c.config, OpCreate)
	return &TranscriptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Transcript entities.
func (c *TranscriptClient) CreateBulk(builders ...*TranscriptCreate) *TranscriptCreateBulk {
	return &TranscriptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranscriptClient) MapCreateBulk(slice any, setFunc func(*TranscriptCreate, int)) *TranscriptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranscriptCreateBulk{err: fmt.Errorf("calling to TranscriptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranscriptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranscriptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Transcript.
func (c *TranscriptClient) Update() *TranscriptUpdate {
	mutation := newTranscriptMutation(c.config, OpUpdate)
	return &TranscriptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranscriptClient) UpdateOne(_m *Transcript) *TranscriptUpdateOne {
	mutation := newTranscriptMutation(c.config, OpUpdateOne, withTranscript(_m))
	return &TranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranscriptClient) UpdateOneID(id string) *TranscriptUpdateOne {
	mutation := newTranscriptMutation(c.config, OpUpdateOne, withTranscriptID(id))
	return &TranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Transcript.
func (c *TranscriptClient) Delete() *TranscriptDelete {
	mutation := newTranscriptMutation(c.config, OpDelete)
	return &TranscriptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranscriptClient) DeleteOne(_m *Transcript) *TranscriptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranscriptClient) DeleteOneID(id string) *TranscriptDeleteOne {
	builder := c.Delete().Where(transcript.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranscriptDeleteOne{builder}
}

// Query returns a query builder for Transcript.
func (c *TranscriptClient) Query() *TranscriptQuery {
	return &TranscriptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranscript},
		inters: c.Interceptors(),
	}
}

// Get returns a Transcript entity by its id.
func (c *TranscriptClient) Get(ctx context.Context, id string) (*Transcript, error) {
	return c.Query().Where(transcript.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranscriptClient) GetX(ctx context.Context, id string) *Transcript {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Transcript.
func (c *TranscriptClient) QueryTask(_m *Transcript) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transcript.Table, transcript.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, transcript.TaskTable, transcript.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TranscriptClient) Hooks() []Hook {
	return c.hooks.Transcript
}

// Interceptors returns the client interceptors.
func (c *TranscriptClient) Interceptors() []Interceptor {
	return c.inters.Transcript
}

func (c *TranscriptClient) mutate(ctx context.Context, m *TranscriptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranscriptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranscriptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranscriptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranscriptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Transcript mutation op: %q", m.Op())
	}
}

// TrialUsageClient is a client for the TrialUsage schema.
type TrialUsageClient struct {
	config
}

// NewTrialUsageClient returns a client for the TrialUsage from the given config.
func NewTrialUsageClient(c config) *TrialUsageClient {
	return &TrialUsageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trialusage.Hooks(f(g(h())))`.
func (c *TrialUsageClient) Use(hooks ...Hook) {
	c.hooks.TrialUsage = append(c.hooks.TrialUsage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trialusage.Intercept(f(g(h())))`.
func (c *TrialUsageClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrialUsage = append(c.inters.TrialUsage, interceptors...)
}

// Create returns a builder for creating a TrialUsage entity.
func (c *TrialUsageClient) Create() *TrialUsageCreate {
	mutation := newTrialUsageMutation(c.config, OpCreate)
	return &TrialUsageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrialUsage entities.
func (c *TrialUsageClient) CreateBulk(builders ...*TrialUsageCreate) *TrialUsageCreateBulk {
	return &TrialUsageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrialUsageClient) MapCreateBulk(slice any, setFunc func(*TrialUsageCreate, int)) *TrialUsageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrialUsageCreateBulk{err: fmt.Errorf("calling to TrialUsageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrialUsageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrialUsageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrialUsage.
func (c *TrialUsageClient) Update() *TrialUsageUpdate {
	mutation := newTrialUsageMutation(c.config, OpUpdate)
	return &TrialUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrialUsageClient) UpdateOne(_m *TrialUsage) *TrialUsageUpdateOne {
	mutation := newTrialUsageMutation(c.config, OpUpdateOne, withTrialUsage(_m))
	return &TrialUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrialUsageClient) UpdateOneID(id string) *TrialUsageUpdateOne {
	mutation := newTrialUsageMutation(c.config, OpUpdateOne, withTrialUsageID(id))
	return &TrialUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrialUsage.
func (c *TrialUsageClient) Delete() *TrialUsageDelete {
	mutation := newTrialUsageMutation(c.config, OpDelete)
	return &TrialUsageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrialUsageClient) DeleteOne(_m *TrialUsage) *TrialUsageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrialUsageClient) DeleteOneID(id string) *TrialUsageDeleteOne {
	builder := c.Delete().Where(trialusage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrialUsageDeleteOne{builder}
}

// Query returns a query builder for TrialUsage.
func (c *TrialUsageClient) Query() *TrialUsageQuery {
	return &TrialUsageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrialUsage},
		inters: c.Interceptors(),
	}
}

// Get returns a TrialUsage entity by its id.
func (c *TrialUsageClient) Get(ctx context.Context, id string) (*TrialUsage, error) {
	return c.Query().Where(trialusage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrialUsageClient) GetX(ctx context.Context, id string) *TrialUsage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TrialUsageClient) Hooks() []Hook {
	return c.hooks.TrialUsage
}

// Interceptors returns the client interceptors.
func (c *TrialUsageClient) Interceptors() []Interceptor {
	return c.inters.TrialUsage
}

func (c *TrialUsageClient) mutate(ctx context.Context, m *TrialUsageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrialUsageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrialUsageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrialUsageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrialUsageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrialUsage mutation op: %q", m.Op())
	}
}

// WebhookEventClient is a client for the WebhookEvent schema.
type WebhookEventClient struct {
	config
}

// NewWebhookEventClient returns a client for the WebhookEvent from the given config.
func NewWebhookEventClient(c config) *WebhookEventClient {
	return &WebhookEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhookevent.Hooks(f(g(h())))`.
func (c *WebhookEventClient) Use(hooks ...Hook) {
	c.hooks.WebhookEvent = append(c.hooks.WebhookEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhookevent.Intercept(f(g(h())))`.
func (c *WebhookEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookEvent = append(c.inters.WebhookEvent, interceptors...)
}

// Create returns a builder for creating a WebhookEvent entity.
func (c *WebhookEventClient) Create() *WebhookEventCreate {
	mutation := newWebhookEventMutation(c.config, OpCreate)
	return &WebhookEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookEvent entities.
func (c *WebhookEventClient) CreateBulk(builders ...*WebhookEventCreate) *WebhookEventCreateBulk {
	return &WebhookEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookEventClient) MapCreateBulk(slice any, setFunc func(*WebhookEventCreate, int)) *WebhookEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookEventCreateBulk{err: fmt.Errorf("calling to WebhookEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookEvent.
func (c *WebhookEventClient) Update() *WebhookEventUpdate {
	mutation := newWebhookEventMutation(c.config, OpUpdate)
	return &WebhookEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookEventClient) UpdateOne(_m *WebhookEvent) *WebhookEventUpdateOne {
	mutation := newWebhookEventMutation(c.config, OpUpdateOne, withWebhookEvent(_m))
	return &WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookEventClient) UpdateOneID(id string) *WebhookEventUpdateOne {
	mutation := newWebhookEventMutation(c.config, OpUpdateOne, withWebhookEventID(id))
	return &WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookEvent.
func (c *WebhookEventClient) Delete() *WebhookEventDelete {
	mutation := newWebhookEventMutation(c.config, OpDelete)
	return &WebhookEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookEventClient) DeleteOne(_m *WebhookEvent) *WebhookEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookEventClient) DeleteOneID(id string) *WebhookEventDeleteOne {
	builder := c.Delete().Where(webhookevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookEventDeleteOne{builder}
}

// Query returns a query builder for WebhookEvent.
func (c *WebhookEventClient) Query() *WebhookEventQuery {
	return &WebhookEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookEvent entity by its id.
func (c *WebhookEventClient) Get(ctx context.Context, id string) (*WebhookEvent, error) {
	return c.Query().Where(webhookevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookEventClient) GetX(ctx context.Context, id string) *WebhookEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WebhookEventClient) Hooks() []Hook {
	return c.hooks.WebhookEvent
}

// Interceptors returns the client interceptors.
func (c *WebhookEventClient) Interceptors() []Interceptor {
	return c.inters.WebhookEvent
}

func (c *WebhookEventClient) mutate(ctx context.Context, m *WebhookEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WebhookEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnonToken, Balance, Task, Transcript, TrialUsage, WebhookEvent []ent.Hook
	}
	inters struct {
		AnonToken, Balance, Task, Transcript, TrialUsage, WebhookEvent []ent.Interceptor
	}
)

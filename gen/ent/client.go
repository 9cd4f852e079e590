// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/paradize/restodocs/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/paradize/restodocs/gen/ent/document"
	"github.com/paradize/restodocs/gen/ent/escalationitem"
	"github.com/paradize/restodocs/gen/ent/mappingentry"
	"github.com/paradize/restodocs/gen/ent/submissionrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// EscalationItem is the client for interacting with the EscalationItem builders.
	EscalationItem *EscalationItemClient
	// MappingEntry is the client for interacting with the MappingEntry builders.
	MappingEntry *MappingEntryClient
	// SubmissionRecord is the client for interacting with the SubmissionRecord builders.
	SubmissionRecord *SubmissionRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Document = NewDocumentClient(c.config)
	c.EscalationItem = NewEscalationItemClient(c.config)
	c.MappingEntry = NewMappingEntryClient(c.config)
	c.SubmissionRecord = NewSubmissionRecordClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		Document:         NewDocumentClient(cfg),
		EscalationItem:   NewEscalationItemClient(cfg),
		MappingEntry:     NewMappingEntryClient(cfg),
		SubmissionRecord: NewSubmissionRecordClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		Document:         NewDocumentClient(cfg),
		EscalationItem:   NewEscalationItemClient(cfg),
		MappingEntry:     NewMappingEntryClient(cfg),
		SubmissionRecord: NewSubmissionRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Document.
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
	c.Document.Use(hooks...)
	c.EscalationItem.Use(hooks...)
	c.MappingEntry.Use(hooks...)
	c.SubmissionRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Document.Intercept(interceptors...)
	c.EscalationItem.Intercept(interceptors...)
	c.MappingEntry.Intercept(interceptors...)
	c.SubmissionRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *EscalationItemMutation:
		return c.EscalationItem.mutate(ctx, m)
	case *MappingEntryMutation:
		return c.MappingEntry.mutate(ctx, m)
	case *SubmissionRecordMutation:
		return c.SubmissionRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubmissions queries the submissions edge of a Document.
func (c *DocumentClient) QuerySubmissions(_m *Document) *SubmissionRecordQuery {
	query := (&SubmissionRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(submissionrecord.Table, submissionrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.SubmissionsTable, document.SubmissionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEscalations queries the escalations edge of a Document.
func (c *DocumentClient) QueryEscalations(_m *Document) *EscalationItemQuery {
	query := (&EscalationItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(escalationitem.Table, escalationitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.EscalationsTable, document.EscalationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// EscalationItemClient is a client for the EscalationItem schema.
type EscalationItemClient struct {
	config
}

// NewEscalationItemClient returns a client for the EscalationItem from the given config.
func NewEscalationItemClient(c config) *EscalationItemClient {
	return &EscalationItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `escalationitem.Hooks(f(g(h())))`.
func (c *EscalationItemClient) Use(hooks ...Hook) {
	c.hooks.EscalationItem = append(c.hooks.EscalationItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `escalationitem.Intercept(f(g(h())))`.
func (c *EscalationItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.EscalationItem = append(c.inters.EscalationItem, interceptors...)
}

// Create returns a builder for creating a EscalationItem entity.
func (c *EscalationItemClient) Create() *EscalationItemCreate {
	mutation := newEscalationItemMutation(c.config, OpCreate)
	return &EscalationItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EscalationItem entities.
func (c *EscalationItemClient) CreateBulk(builders ...*EscalationItemCreate) *EscalationItemCreateBulk {
	return &EscalationItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EscalationItemClient) MapCreateBulk(slice any, setFunc func(*EscalationItemCreate, int)) *EscalationItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EscalationItemCreateBulk{err: fmt.Errorf("calling to EscalationItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EscalationItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EscalationItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EscalationItem.
func (c *EscalationItemClient) Update() *EscalationItemUpdate {
	mutation := newEscalationItemMutation(c.config, OpUpdate)
	return &EscalationItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EscalationItemClient) UpdateOne(_m *EscalationItem) *EscalationItemUpdateOne {
	mutation := newEscalationItemMutation(c.config, OpUpdateOne, withEscalationItem(_m))
	return &EscalationItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EscalationItemClient) UpdateOneID(id uuid.UUID) *EscalationItemUpdateOne {
	mutation := newEscalationItemMutation(c.config, OpUpdateOne, withEscalationItemID(id))
	return &EscalationItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EscalationItem.
func (c *EscalationItemClient) Delete() *EscalationItemDelete {
	mutation := newEscalationItemMutation(c.config, OpDelete)
	return &EscalationItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EscalationItemClient) DeleteOne(_m *EscalationItem) *EscalationItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EscalationItemClient) DeleteOneID(id uuid.UUID) *EscalationItemDeleteOne {
	builder := c.Delete().Where(escalationitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EscalationItemDeleteOne{builder}
}

// Query returns a query builder for EscalationItem.
func (c *EscalationItemClient) Query() *EscalationItemQuery {
	return &EscalationItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEscalationItem},
		inters: c.Interceptors(),
	}
}

// Get returns a EscalationItem entity by its id.
func (c *EscalationItemClient) Get(ctx context.Context, id uuid.UUID) (*EscalationItem, error) {
	return c.Query().Where(escalationitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EscalationItemClient) GetX(ctx context.Context, id uuid.UUID) *EscalationItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a EscalationItem.
func (c *EscalationItemClient) QueryDocument(_m *EscalationItem) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(escalationitem.Table, escalationitem.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, escalationitem.DocumentTable, escalationitem.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EscalationItemClient) Hooks() []Hook {
	return c.hooks.EscalationItem
}

// Interceptors returns the client interceptors.
func (c *EscalationItemClient) Interceptors() []Interceptor {
	return c.inters.EscalationItem
}

func (c *EscalationItemClient) mutate(ctx context.Context, m *EscalationItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EscalationItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EscalationItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EscalationItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EscalationItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EscalationItem mutation op: %q", m.Op())
	}
}

// MappingEntryClient is a client for the MappingEntry schema.
type MappingEntryClient struct {
	config
}

// NewMappingEntryClient returns a client for the MappingEntry from the given config.
func NewMappingEntryClient(c config) *MappingEntryClient {
	return &MappingEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mappingentry.Hooks(f(g(h())))`.
func (c *MappingEntryClient) Use(hooks ...Hook) {
	c.hooks.MappingEntry = append(c.hooks.MappingEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mappingentry.Intercept(f(g(h())))`.
func (c *MappingEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.MappingEntry = append(c.inters.MappingEntry, interceptors...)
}

// Create returns a builder for creating a MappingEntry entity.
func (c *MappingEntryClient) Create() *MappingEntryCreate {
	mutation := newMappingEntryMutation(c.config, OpCreate)
	return &MappingEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MappingEntry entities.
func (c *MappingEntryClient) CreateBulk(builders ...*MappingEntryCreate) *MappingEntryCreateBulk {
	return &MappingEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MappingEntryClient) MapCreateBulk(slice any, setFunc func(*MappingEntryCreate, int)) *MappingEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MappingEntryCreateBulk{err: fmt.Errorf("calling to MappingEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MappingEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MappingEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MappingEntry.
func (c *MappingEntryClient) Update() *MappingEntryUpdate {
	mutation := newMappingEntryMutation(c.config, OpUpdate)
	return &MappingEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MappingEntryClient) UpdateOne(_m *MappingEntry) *MappingEntryUpdateOne {
	mutation := newMappingEntryMutation(c.config, OpUpdateOne, withMappingEntry(_m))
	return &MappingEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MappingEntryClient) UpdateOneID(id uuid.UUID) *MappingEntryUpdateOne {
	mutation := newMappingEntryMutation(c.config, OpUpdateOne, withMappingEntryID(id))
	return &MappingEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MappingEntry.
func (c *MappingEntryClient) Delete() *MappingEntryDelete {
	mutation := newMappingEntryMutation(c.config, OpDelete)
	return &MappingEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MappingEntryClient) DeleteOne(_m *MappingEntry) *MappingEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MappingEntryClient) DeleteOneID(id uuid.UUID) *MappingEntryDeleteOne {
	builder := c.Delete().Where(mappingentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MappingEntryDeleteOne{builder}
}

// Query returns a query builder for MappingEntry.
func (c *MappingEntryClient) Query() *MappingEntryQuery {
	return &MappingEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMappingEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a MappingEntry entity by its id.
func (c *MappingEntryClient) Get(ctx context.Context, id uuid.UUID) (*MappingEntry, error) {
	return c.Query().Where(mappingentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MappingEntryClient) GetX(ctx context.Context, id uuid.UUID) *MappingEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MappingEntryClient) Hooks() []Hook {
	return c.hooks.MappingEntry
}

// Interceptors returns the client interceptors.
func (c *MappingEntryClient) Interceptors() []Interceptor {
	return c.inters.MappingEntry
}

func (c *MappingEntryClient) mutate(ctx context.Context, m *MappingEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MappingEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MappingEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MappingEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MappingEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MappingEntry mutation op: %q", m.Op())
	}
}

// SubmissionRecordClient is a client for the SubmissionRecord schema.
type SubmissionRecordClient struct {
	config
}

// NewSubmissionRecordClient returns a client for the SubmissionRecord from the given config.
func NewSubmissionRecordClient(c config) *SubmissionRecordClient {
	return &SubmissionRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submissionrecord.Hooks(f(g(h())))`.
func (c *SubmissionRecordClient) Use(hooks ...Hook) {
	c.hooks.SubmissionRecord = append(c.hooks.SubmissionRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submissionrecord.Intercept(f(g(h())))`.
func (c *SubmissionRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubmissionRecord = append(c.inters.SubmissionRecord, interceptors...)
}

// Create returns a builder for creating a SubmissionRecord entity.
func (c *SubmissionRecordClient) Create() *SubmissionRecordCreate {
	mutation := newSubmissionRecordMutation(c.config, OpCreate)
	return &SubmissionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubmissionRecord entities.
func (c *SubmissionRecordClient) CreateBulk(builders ...*SubmissionRecordCreate) *SubmissionRecordCreateBulk {
	return &SubmissionRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmissionRecordClient) MapCreateBulk(slice any, setFunc func(*SubmissionRecordCreate, int)) *SubmissionRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmissionRecordCreateBulk{err: fmt.Errorf("calling to SubmissionRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmissionRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmissionRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubmissionRecord.
func (c *SubmissionRecordClient) Update() *SubmissionRecordUpdate {
	mutation := newSubmissionRecordMutation(c.config, OpUpdate)
	return &SubmissionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmissionRecordClient) UpdateOne(_m *SubmissionRecord) *SubmissionRecordUpdateOne {
	mutation := newSubmissionRecordMutation(c.config, OpUpdateOne, withSubmissionRecord(_m))
	return &SubmissionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmissionRecordClient) UpdateOneID(id uuid.UUID) *SubmissionRecordUpdateOne {
	mutation := newSubmissionRecordMutation(c.config, OpUpdateOne, withSubmissionRecordID(id))
	return &SubmissionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubmissionRecord.
func (c *SubmissionRecordClient) Delete() *SubmissionRecordDelete {
	mutation := newSubmissionRecordMutation(c.config, OpDelete)
	return &SubmissionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmissionRecordClient) DeleteOne(_m *SubmissionRecord) *SubmissionRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmissionRecordClient) DeleteOneID(id uuid.UUID) *SubmissionRecordDeleteOne {
	builder := c.Delete().Where(submissionrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmissionRecordDeleteOne{builder}
}

// Query returns a query builder for SubmissionRecord.
func (c *SubmissionRecordClient) Query() *SubmissionRecordQuery {
	return &SubmissionRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmissionRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a SubmissionRecord entity by its id.
func (c *SubmissionRecordClient) Get(ctx context.Context, id uuid.UUID) (*SubmissionRecord, error) {
	return c.Query().Where(submissionrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmissionRecordClient) GetX(ctx context.Context, id uuid.UUID) *SubmissionRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a SubmissionRecord.
func (c *SubmissionRecordClient) QueryDocument(_m *SubmissionRecord) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submissionrecord.Table, submissionrecord.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submissionrecord.DocumentTable, submissionrecord.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubmissionRecordClient) Hooks() []Hook {
	return c.hooks.SubmissionRecord
}

// Interceptors returns the client interceptors.
func (c *SubmissionRecordClient) Interceptors() []Interceptor {
	return c.inters.SubmissionRecord
}

func (c *SubmissionRecordClient) mutate(ctx context.Context, m *SubmissionRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmissionRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmissionRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmissionRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmissionRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubmissionRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Document, EscalationItem, MappingEntry, SubmissionRecord []ent.Hook
	}
	inters struct {
		Document, EscalationItem, MappingEntry, SubmissionRecord []ent.Interceptor
	}
)

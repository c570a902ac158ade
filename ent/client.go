// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/cookquest/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cookquest/ent/lessoncontent"
	"github.com/abhisek/cookquest/ent/minigame"
	"github.com/abhisek/cookquest/ent/minigameattempt"
	"github.com/abhisek/cookquest/ent/minigamequestion"
	"github.com/abhisek/cookquest/ent/quest"
	"github.com/abhisek/cookquest/ent/questprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LessonContent is the client for interacting with the LessonContent builders.
	LessonContent *LessonContentClient
	// Minigame is the client for interacting with the Minigame builders.
	Minigame *MinigameClient
	// MinigameAttempt is the client for interacting with the MinigameAttempt builders.
	MinigameAttempt *MinigameAttemptClient
	// MinigameQuestion is the client for interacting with the MinigameQuestion builders.
	MinigameQuestion *MinigameQuestionClient
	// Quest is the client for interacting with the Quest builders.
	Quest *QuestClient
	// QuestProgress is the client for interacting with the QuestProgress builders.
	QuestProgress *QuestProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LessonContent = NewLessonContentClient(c.config)
	c.Minigame = NewMinigameClient(c.config)
	c.MinigameAttempt = NewMinigameAttemptClient(c.config)
	c.MinigameQuestion = NewMinigameQuestionClient(c.config)
	c.Quest = NewQuestClient(c.config)
	c.QuestProgress = NewQuestProgressClient(c.config)
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
		LessonContent:    NewLessonContentClient(cfg),
		Minigame:         NewMinigameClient(cfg),
		MinigameAttempt:  NewMinigameAttemptClient(cfg),
		MinigameQuestion: NewMinigameQuestionClient(cfg),
		Quest:            NewQuestClient(cfg),
		QuestProgress:    NewQuestProgressClient(cfg),
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
		LessonContent:    NewLessonContentClient(cfg),
		Minigame:         NewMinigameClient(cfg),
		MinigameAttempt:  NewMinigameAttemptClient(cfg),
		MinigameQuestion: NewMinigameQuestionClient(cfg),
		Quest:            NewQuestClient(cfg),
		QuestProgress:    NewQuestProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LessonContent.
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
		c.LessonContent, c.Minigame, c.MinigameAttempt, c.MinigameQuestion, c.Quest,
		c.QuestProgress,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.LessonContent, c.Minigame, c.MinigameAttempt, c.MinigameQuestion, c.Quest,
		c.QuestProgress,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LessonContentMutation:
		return c.LessonContent.mutate(ctx, m)
	case *MinigameMutation:
		return c.Minigame.mutate(ctx, m)
	case *MinigameAttemptMutation:
		return c.MinigameAttempt.mutate(ctx, m)
	case *MinigameQuestionMutation:
		return c.MinigameQuestion.mutate(ctx, m)
	case *QuestMutation:
		return c.Quest.mutate(ctx, m)
	case *QuestProgressMutation:
		return c.QuestProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LessonContentClient is a client for the LessonContent schema.
type LessonContentClient struct {
	config
}

// NewLessonContentClient returns a client for the LessonContent from the given config.
func NewLessonContentClient(c config) *LessonContentClient {
	return &LessonContentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessoncontent.Hooks(f(g(h())))`.
func (c *LessonContentClient) Use(hooks ...Hook) {
	c.hooks.LessonContent = append(c.hooks.LessonContent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessoncontent.Intercept(f(g(h())))`.
func (c *LessonContentClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonContent = append(c.inters.LessonContent, interceptors...)
}

// Create returns a builder for creating a LessonContent entity.
func (c *LessonContentClient) Create() *LessonContentCreate {
	mutation := newLessonContentMutation(c.config, OpCreate)
	return &LessonContentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonContent entities.
func (c *LessonContentClient) CreateBulk(builders ...*LessonContentCreate) *LessonContentCreateBulk {
	return &LessonContentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonContentClient) MapCreateBulk(slice any, setFunc func(*LessonContentCreate, int)) *LessonContentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonContentCreateBulk{err: fmt.Errorf("calling to LessonContentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonContentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonContentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonContent.
func (c *LessonContentClient) Update() *LessonContentUpdate {
	mutation := newLessonContentMutation(c.config, OpUpdate)
	return &LessonContentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonContentClient) UpdateOne(_m *LessonContent) *LessonContentUpdateOne {
	mutation := newLessonContentMutation(c.config, OpUpdateOne, withLessonContent(_m))
	return &LessonContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonContentClient) UpdateOneID(id int) *LessonContentUpdateOne {
	mutation := newLessonContentMutation(c.config, OpUpdateOne, withLessonContentID(id))
	return &LessonContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonContent.
func (c *LessonContentClient) Delete() *LessonContentDelete {
	mutation := newLessonContentMutation(c.config, OpDelete)
	return &LessonContentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonContentClient) DeleteOne(_m *LessonContent) *LessonContentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonContentClient) DeleteOneID(id int) *LessonContentDeleteOne {
	builder := c.Delete().Where(lessoncontent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonContentDeleteOne{builder}
}

// Query returns a query builder for LessonContent.
func (c *LessonContentClient) Query() *LessonContentQuery {
	return &LessonContentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonContent},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonContent entity by its id.
func (c *LessonContentClient) Get(ctx context.Context, id int) (*LessonContent, error) {
	return c.Query().Where(lessoncontent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonContentClient) GetX(ctx context.Context, id int) *LessonContent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonContentClient) Hooks() []Hook {
	return c.hooks.LessonContent
}

// Interceptors returns the client interceptors.
func (c *LessonContentClient) Interceptors() []Interceptor {
	return c.inters.LessonContent
}

func (c *LessonContentClient) mutate(ctx context.Context, m *LessonContentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonContentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonContentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonContentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonContentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonContent mutation op: %q", m.Op())
	}
}

// MinigameClient is a client for the Minigame schema.
type MinigameClient struct {
	config
}

// NewMinigameClient returns a client for the Minigame from the given config.
func NewMinigameClient(c config) *MinigameClient {
	return &MinigameClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `minigame.Hooks(f(g(h())))`.
func (c *MinigameClient) Use(hooks ...Hook) {
	c.hooks.Minigame = append(c.hooks.Minigame, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `minigame.Intercept(f(g(h())))`.
func (c *MinigameClient) Intercept(interceptors ...Interceptor) {
	c.inters.Minigame = append(c.inters.Minigame, interceptors...)
}

// Create returns a builder for creating a Minigame entity.
func (c *MinigameClient) Create() *MinigameCreate {
	mutation := newMinigameMutation(c.config, OpCreate)
	return &MinigameCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Minigame entities.
func (c *MinigameClient) CreateBulk(builders ...*MinigameCreate) *MinigameCreateBulk {
	return &MinigameCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MinigameClient) MapCreateBulk(slice any, setFunc func(*MinigameCreate, int)) *MinigameCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MinigameCreateBulk{err: fmt.Errorf("calling to MinigameClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MinigameCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MinigameCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Minigame.
func (c *MinigameClient) Update() *MinigameUpdate {
	mutation := newMinigameMutation(c.config, OpUpdate)
	return &MinigameUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MinigameClient) UpdateOne(_m *Minigame) *MinigameUpdateOne {
	mutation := newMinigameMutation(c.config, OpUpdateOne, withMinigame(_m))
	return &MinigameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MinigameClient) UpdateOneID(id int) *MinigameUpdateOne {
	mutation := newMinigameMutation(c.config, OpUpdateOne, withMinigameID(id))
	return &MinigameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Minigame.
func (c *MinigameClient) Delete() *MinigameDelete {
	mutation := newMinigameMutation(c.config, OpDelete)
	return &MinigameDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MinigameClient) DeleteOne(_m *Minigame) *MinigameDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MinigameClient) DeleteOneID(id int) *MinigameDeleteOne {
	builder := c.Delete().Where(minigame.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MinigameDeleteOne{builder}
}

// Query returns a query builder for Minigame.
func (c *MinigameClient) Query() *MinigameQuery {
	return &MinigameQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMinigame},
		inters: c.Interceptors(),
	}
}

// Get returns a Minigame entity by its id.
func (c *MinigameClient) Get(ctx context.Context, id int) (*Minigame, error) {
	return c.Query().Where(minigame.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MinigameClient) GetX(ctx context.Context, id int) *Minigame {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MinigameClient) Hooks() []Hook {
	return c.hooks.Minigame
}

// Interceptors returns the client interceptors.
func (c *MinigameClient) Interceptors() []Interceptor {
	return c.inters.Minigame
}

func (c *MinigameClient) mutate(ctx context.Context, m *MinigameMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MinigameCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MinigameUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MinigameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MinigameDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Minigame mutation op: %q", m.Op())
	}
}

// MinigameAttemptClient is a client for the MinigameAttempt schema.
type MinigameAttemptClient struct {
	config
}

// NewMinigameAttemptClient returns a client for the MinigameAttempt from the given config.
func NewMinigameAttemptClient(c config) *MinigameAttemptClient {
	return &MinigameAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `minigameattempt.Hooks(f(g(h())))`.
func (c *MinigameAttemptClient) Use(hooks ...Hook) {
	c.hooks.MinigameAttempt = append(c.hooks.MinigameAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `minigameattempt.Intercept(f(g(h())))`.
func (c *MinigameAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.MinigameAttempt = append(c.inters.MinigameAttempt, interceptors...)
}

// Create returns a builder for creating a MinigameAttempt entity.
func (c *MinigameAttemptClient) Create() *MinigameAttemptCreate {
	mutation := newMinigameAttemptMutation(c.config, OpCreate)
	return &MinigameAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MinigameAttempt entities.
func (c *MinigameAttemptClient) CreateBulk(builders ...*MinigameAttemptCreate) *MinigameAttemptCreateBulk {
	return &MinigameAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MinigameAttemptClient) MapCreateBulk(slice any, setFunc func(*MinigameAttemptCreate, int)) *MinigameAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MinigameAttemptCreateBulk{err: fmt.Errorf("calling to MinigameAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MinigameAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MinigameAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MinigameAttempt.
func (c *MinigameAttemptClient) Update() *MinigameAttemptUpdate {
	mutation := newMinigameAttemptMutation(c.config, OpUpdate)
	return &MinigameAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MinigameAttemptClient) UpdateOne(_m *MinigameAttempt) *MinigameAttemptUpdateOne {
	mutation := newMinigameAttemptMutation(c.config, OpUpdateOne, withMinigameAttempt(_m))
	return &MinigameAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MinigameAttemptClient) UpdateOneID(id uuid.UUID) *MinigameAttemptUpdateOne {
	mutation := newMinigameAttemptMutation(c.config, OpUpdateOne, withMinigameAttemptID(id))
	return &MinigameAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MinigameAttempt.
func (c *MinigameAttemptClient) Delete() *MinigameAttemptDelete {
	mutation := newMinigameAttemptMutation(c.config, OpDelete)
	return &MinigameAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MinigameAttemptClient) DeleteOne(_m *MinigameAttempt) *MinigameAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MinigameAttemptClient) DeleteOneID(id uuid.UUID) *MinigameAttemptDeleteOne {
	builder := c.Delete().Where(minigameattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MinigameAttemptDeleteOne{builder}
}

// Query returns a query builder for MinigameAttempt.
func (c *MinigameAttemptClient) Query() *MinigameAttemptQuery {
	return &MinigameAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMinigameAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a MinigameAttempt entity by its id.
func (c *MinigameAttemptClient) Get(ctx context.Context, id uuid.UUID) (*MinigameAttempt, error) {
	return c.Query().Where(minigameattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MinigameAttemptClient) GetX(ctx context.Context, id uuid.UUID) *MinigameAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MinigameAttemptClient) Hooks() []Hook {
	return c.hooks.MinigameAttempt
}

// Interceptors returns the client interceptors.
func (c *MinigameAttemptClient) Interceptors() []Interceptor {
	return c.inters.MinigameAttempt
}

func (c *MinigameAttemptClient) mutate(ctx context.Context, m *MinigameAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MinigameAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MinigameAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MinigameAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MinigameAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MinigameAttempt mutation op: %q", m.Op())
	}
}

// MinigameQuestionClient is a client for the MinigameQuestion schema.
type MinigameQuestionClient struct {
	config
}

// NewMinigameQuestionClient returns a client for the MinigameQuestion from the given config.
func NewMinigameQuestionClient(c config) *MinigameQuestionClient {
	return &MinigameQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `minigamequestion.Hooks(f(g(h())))`.
func (c *MinigameQuestionClient) Use(hooks ...Hook) {
	c.hooks.MinigameQuestion = append(c.hooks.MinigameQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `minigamequestion.Intercept(f(g(h())))`.
func (c *MinigameQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.MinigameQuestion = append(c.inters.MinigameQuestion, interceptors...)
}

// Create returns a builder for creating a MinigameQuestion entity.
func (c *MinigameQuestionClient) Create() *MinigameQuestionCreate {
	mutation := newMinigameQuestionMutation(c.config, OpCreate)
	return &MinigameQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MinigameQuestion entities.
func (c *MinigameQuestionClient) CreateBulk(builders ...*MinigameQuestionCreate) *MinigameQuestionCreateBulk {
	return &MinigameQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MinigameQuestionClient) MapCreateBulk(slice any, setFunc func(*MinigameQuestionCreate, int)) *MinigameQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MinigameQuestionCreateBulk{err: fmt.Errorf("calling to MinigameQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MinigameQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MinigameQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MinigameQuestion.
func (c *MinigameQuestionClient) Update() *MinigameQuestionUpdate {
	mutation := newMinigameQuestionMutation(c.config, OpUpdate)
	return &MinigameQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MinigameQuestionClient) UpdateOne(_m *MinigameQuestion) *MinigameQuestionUpdateOne {
	mutation := newMinigameQuestionMutation(c.config, OpUpdateOne, withMinigameQuestion(_m))
	return &MinigameQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MinigameQuestionClient) UpdateOneID(id int) *MinigameQuestionUpdateOne {
	mutation := newMinigameQuestionMutation(c.config, OpUpdateOne, withMinigameQuestionID(id))
	return &MinigameQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MinigameQuestion.
func (c *MinigameQuestionClient) Delete() *MinigameQuestionDelete {
	mutation := newMinigameQuestionMutation(c.config, OpDelete)
	return &MinigameQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MinigameQuestionClient) DeleteOne(_m *MinigameQuestion) *MinigameQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MinigameQuestionClient) DeleteOneID(id int) *MinigameQuestionDeleteOne {
	builder := c.Delete().Where(minigamequestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MinigameQuestionDeleteOne{builder}
}

// Query returns a query builder for MinigameQuestion.
func (c *MinigameQuestionClient) Query() *MinigameQuestionQuery {
	return &MinigameQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMinigameQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a MinigameQuestion entity by its id.
func (c *MinigameQuestionClient) Get(ctx context.Context, id int) (*MinigameQuestion, error) {
	return c.Query().Where(minigamequestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MinigameQuestionClient) GetX(ctx context.Context, id int) *MinigameQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MinigameQuestionClient) Hooks() []Hook {
	return c.hooks.MinigameQuestion
}

// Interceptors returns the client interceptors.
func (c *MinigameQuestionClient) Interceptors() []Interceptor {
	return c.inters.MinigameQuestion
}

func (c *MinigameQuestionClient) mutate(ctx context.Context, m *MinigameQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MinigameQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MinigameQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MinigameQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MinigameQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MinigameQuestion mutation op: %q", m.Op())
	}
}

// QuestClient is a client for the Quest schema.
type QuestClient struct {
	config
}

// NewQuestClient returns a client for the Quest from the given config.
func NewQuestClient(c config) *QuestClient {
	return &QuestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quest.Hooks(f(g(h())))`.
func (c *QuestClient) Use(hooks ...Hook) {
	c.hooks.Quest = append(c.hooks.Quest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quest.Intercept(f(g(h())))`.
func (c *QuestClient) Intercept(interceptors ...Interceptor) {
	c.inters.Quest = append(c.inters.Quest, interceptors...)
}

// Create returns a builder for creating a Quest entity.
func (c *QuestClient) Create() *QuestCreate {
	mutation := newQuestMutation(c.config, OpCreate)
	return &QuestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Quest entities.
func (c *QuestClient) CreateBulk(builders ...*QuestCreate) *QuestCreateBulk {
	return &QuestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestClient) MapCreateBulk(slice any, setFunc func(*QuestCreate, int)) *QuestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestCreateBulk{err: fmt.Errorf("calling to QuestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Quest.
func (c *QuestClient) Update() *QuestUpdate {
	mutation := newQuestMutation(c.config, OpUpdate)
	return &QuestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestClient) UpdateOne(_m *Quest) *QuestUpdateOne {
	mutation := newQuestMutation(c.config, OpUpdateOne, withQuest(_m))
	return &QuestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestClient) UpdateOneID(id int) *QuestUpdateOne {
	mutation := newQuestMutation(c.config, OpUpdateOne, withQuestID(id))
	return &QuestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Quest.
func (c *QuestClient) Delete() *QuestDelete {
	mutation := newQuestMutation(c.config, OpDelete)
	return &QuestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestClient) DeleteOne(_m *Quest) *QuestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestClient) DeleteOneID(id int) *QuestDeleteOne {
	builder := c.Delete().Where(quest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestDeleteOne{builder}
}

// Query returns a query builder for Quest.
func (c *QuestClient) Query() *QuestQuery {
	return &QuestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuest},
		inters: c.Interceptors(),
	}
}

// Get returns a Quest entity by its id.
func (c *QuestClient) Get(ctx context.Context, id int) (*Quest, error) {
	return c.Query().Where(quest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestClient) GetX(ctx context.Context, id int) *Quest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestClient) Hooks() []Hook {
	return c.hooks.Quest
}

// Interceptors returns the client interceptors.
func (c *QuestClient) Interceptors() []Interceptor {
	return c.inters.Quest
}

func (c *QuestClient) mutate(ctx context.Context, m *QuestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Quest mutation op: %q", m.Op())
	}
}

// QuestProgressClient is a client for the QuestProgress schema.
type QuestProgressClient struct {
	config
}

// NewQuestProgressClient returns a client for the QuestProgress from the given config.
func NewQuestProgressClient(c config) *QuestProgressClient {
	return &QuestProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questprogress.Hooks(f(g(h())))`.
func (c *QuestProgressClient) Use(hooks ...Hook) {
	c.hooks.QuestProgress = append(c.hooks.QuestProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questprogress.Intercept(f(g(h())))`.
func (c *QuestProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestProgress = append(c.inters.QuestProgress, interceptors...)
}

// Create returns a builder for creating a QuestProgress entity.
func (c *QuestProgressClient) Create() *QuestProgressCreate {
	mutation := newQuestProgressMutation(c.config, OpCreate)
	return &QuestProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestProgress entities.
func (c *QuestProgressClient) CreateBulk(builders ...*QuestProgressCreate) *QuestProgressCreateBulk {
	return &QuestProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestProgressClient) MapCreateBulk(slice any, setFunc func(*QuestProgressCreate, int)) *QuestProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestProgressCreateBulk{err: fmt.Errorf("calling to QuestProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestProgress.
func (c *QuestProgressClient) Update() *QuestProgressUpdate {
	mutation := newQuestProgressMutation(c.config, OpUpdate)
	return &QuestProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestProgressClient) UpdateOne(_m *QuestProgress) *QuestProgressUpdateOne {
	mutation := newQuestProgressMutation(c.config, OpUpdateOne, withQuestProgress(_m))
	return &QuestProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestProgressClient) UpdateOneID(id int) *QuestProgressUpdateOne {
	mutation := newQuestProgressMutation(c.config, OpUpdateOne, withQuestProgressID(id))
	return &QuestProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestProgress.
func (c *QuestProgressClient) Delete() *QuestProgressDelete {
	mutation := newQuestProgressMutation(c.config, OpDelete)
	return &QuestProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestProgressClient) DeleteOne(_m *QuestProgress) *QuestProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestProgressClient) DeleteOneID(id int) *QuestProgressDeleteOne {
	builder := c.Delete().Where(questprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestProgressDeleteOne{builder}
}

// Query returns a query builder for QuestProgress.
func (c *QuestProgressClient) Query() *QuestProgressQuery {
	return &QuestProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestProgress entity by its id.
func (c *QuestProgressClient) Get(ctx context.Context, id int) (*QuestProgress, error) {
	return c.Query().Where(questprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestProgressClient) GetX(ctx context.Context, id int) *QuestProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestProgressClient) Hooks() []Hook {
	return c.hooks.QuestProgress
}

// Interceptors returns the client interceptors.
func (c *QuestProgressClient) Interceptors() []Interceptor {
	return c.inters.QuestProgress
}

func (c *QuestProgressClient) mutate(ctx context.Context, m *QuestProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LessonContent, Minigame, MinigameAttempt, MinigameQuestion, Quest,
		QuestProgress []ent.Hook
	}
	inters struct {
		LessonContent, Minigame, MinigameAttempt, MinigameQuestion, Quest,
		QuestProgress []ent.Interceptor
	}
)

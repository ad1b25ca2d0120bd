// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/anzhiyu-c/user-tags/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/anzhiyu-c/user-tags/ent/setting"
	"github.com/anzhiyu-c/user-tags/ent/taggeditem"
	"github.com/anzhiyu-c/user-tags/ent/taggroup"
	"github.com/anzhiyu-c/user-tags/ent/user"
	"github.com/anzhiyu-c/user-tags/ent/usergroup"
	"github.com/anzhiyu-c/user-tags/ent/usertag"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Setting is the client for interacting with the Setting builders.
	Setting *SettingClient
	// TagGroup is the client for interacting with the TagGroup builders.
	TagGroup *TagGroupClient
	// TaggedItem is the client for interacting with the TaggedItem builders.
	TaggedItem *TaggedItemClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserGroup is the client for interacting with the UserGroup builders.
	UserGroup *UserGroupClient
	// UserTag is the client for interacting with the UserTag builders.
	UserTag *UserTagClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Setting = NewSettingClient(c.config)
	c.TagGroup = NewTagGroupClient(c.config)
	c.TaggedItem = NewTaggedItemClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserGroup = NewUserGroupClient(c.config)
	c.UserTag = NewUserTagClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		Setting:    NewSettingClient(cfg),
		TagGroup:   NewTagGroupClient(cfg),
		TaggedItem: NewTaggedItemClient(cfg),
		User:       NewUserClient(cfg),
		UserGroup:  NewUserGroupClient(cfg),
		UserTag:    NewUserTagClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		Setting:    NewSettingClient(cfg),
		TagGroup:   NewTagGroupClient(cfg),
		TaggedItem: NewTaggedItemClient(cfg),
		User:       NewUserClient(cfg),
		UserGroup:  NewUserGroupClient(cfg),
		UserTag:    NewUserTagClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Setting.
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
		c.Setting, c.TagGroup, c.TaggedItem, c.User, c.UserGroup, c.UserTag,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Setting, c.TagGroup, c.TaggedItem, c.User, c.UserGroup, c.UserTag,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *SettingMutation:
		return c.Setting.mutate(ctx, m)
	case *TagGroupMutation:
		return c.TagGroup.mutate(ctx, m)
	case *TaggedItemMutation:
		return c.TaggedItem.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserGroupMutation:
		return c.UserGroup.mutate(ctx, m)
	case *UserTagMutation:
		return c.UserTag.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// SettingClient is a client for the Setting schema.
type SettingClient struct {
	config
}

// NewSettingClient returns a client for the Setting from the given config.
func NewSettingClient(c config) *SettingClient {
	return &SettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `setting.Hooks(f(g(h())))`.
func (c *SettingClient) Use(hooks ...Hook) {
	c.hooks.Setting = append(c.hooks.Setting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `setting.Intercept(f(g(h())))`.
func (c *SettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Setting = append(c.inters.Setting, interceptors...)
}

// Create returns a builder for creating a Setting entity.
func (c *SettingClient) Create() *SettingCreate {
	mutation := newSettingMutation(c.config, OpCreate)
	return &SettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Setting entities.
func (c *SettingClient) CreateBulk(builders ...*SettingCreate) *SettingCreateBulk {
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SettingClient) MapCreateBulk(slice any, setFunc func(*SettingCreate, int)) *SettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SettingCreateBulk{err: fmt.Errorf("calling to SettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Setting.
func (c *SettingClient) Update() *SettingUpdate {
	mutation := newSettingMutation(c.config, OpUpdate)
	return &SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SettingClient) UpdateOne(s *Setting) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSetting(s))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SettingClient) UpdateOneID(id int) *SettingUpdateOne {
	mutation := newSettingMutation(c.config, OpUpdateOne, withSettingID(id))
	return &SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Setting.
func (c *SettingClient) Delete() *SettingDelete {
	mutation := newSettingMutation(c.config, OpDelete)
	return &SettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SettingClient) DeleteOne(s *Setting) *SettingDeleteOne {
	return c.DeleteOneID(s.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SettingClient) DeleteOneID(id int) *SettingDeleteOne {
	builder := c.Delete().Where(setting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SettingDeleteOne{builder}
}

// Query returns a query builder for Setting.
func (c *SettingClient) Query() *SettingQuery {
	return &SettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a Setting entity by its id.
func (c *SettingClient) Get(ctx context.Context, id int) (*Setting, error) {
	return c.Query().Where(setting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SettingClient) GetX(ctx context.Context, id int) *Setting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SettingClient) Hooks() []Hook {
	hooks := c.hooks.Setting
	return append(hooks[:len(hooks):len(hooks)], setting.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *SettingClient) Interceptors() []Interceptor {
	return c.inters.Setting
}

func (c *SettingClient) mutate(ctx context.Context, m *SettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Setting mutation op: %q", m.Op())
	}
}

// TagGroupClient is a client for the TagGroup schema.
type TagGroupClient struct {
	config
}

// NewTagGroupClient returns a client for the TagGroup from the given config.
func NewTagGroupClient(c config) *TagGroupClient {
	return &TagGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taggroup.Hooks(f(g(h())))`.
func (c *TagGroupClient) Use(hooks ...Hook) {
	c.hooks.TagGroup = append(c.hooks.TagGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taggroup.Intercept(f(g(h())))`.
func (c *TagGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.TagGroup = append(c.inters.TagGroup, interceptors...)
}

// Create returns a builder for creating a TagGroup entity.
func (c *TagGroupClient) Create() *TagGroupCreate {
	mutation := newTagGroupMutation(c.config, OpCreate)
	return &TagGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TagGroup entities.
func (c *TagGroupClient) CreateBulk(builders ...*TagGroupCreate) *TagGroupCreateBulk {
	return &TagGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TagGroupClient) MapCreateBulk(slice any, setFunc func(*TagGroupCreate, int)) *TagGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TagGroupCreateBulk{err: fmt.Errorf("calling to TagGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TagGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TagGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TagGroup.
func (c *TagGroupClient) Update() *TagGroupUpdate {
	mutation := newTagGroupMutation(c.config, OpUpdate)
	return &TagGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TagGroupClient) UpdateOne(tg *TagGroup) *TagGroupUpdateOne {
	mutation := newTagGroupMutation(c.config, OpUpdateOne, withTagGroup(tg))
	return &TagGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TagGroupClient) UpdateOneID(id uint) *TagGroupUpdateOne {
	mutation := newTagGroupMutation(c.config, OpUpdateOne, withTagGroupID(id))
	return &TagGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TagGroup.
func (c *TagGroupClient) Delete() *TagGroupDelete {
	mutation := newTagGroupMutation(c.config, OpDelete)
	return &TagGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TagGroupClient) DeleteOne(tg *TagGroup) *TagGroupDeleteOne {
	return c.DeleteOneID(tg.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TagGroupClient) DeleteOneID(id uint) *TagGroupDeleteOne {
	builder := c.Delete().Where(taggroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TagGroupDeleteOne{builder}
}

// Query returns a query builder for TagGroup.
func (c *TagGroupClient) Query() *TagGroupQuery {
	return &TagGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTagGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a TagGroup entity by its id.
func (c *TagGroupClient) Get(ctx context.Context, id uint) (*TagGroup, error) {
	return c.Query().Where(taggroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TagGroupClient) GetX(ctx context.Context, id uint) *TagGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a TagGroup.
func (c *TagGroupClient) QueryOwner(tg *TagGroup) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := tg.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taggroup.Table, taggroup.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taggroup.OwnerTable, taggroup.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(tg.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTags queries the tags edge of a TagGroup.
func (c *TagGroupClient) QueryTags(tg *TagGroup) *UserTagQuery {
	query := (&UserTagClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := tg.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taggroup.Table, taggroup.FieldID, id),
			sqlgraph.To(usertag.Table, usertag.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taggroup.TagsTable, taggroup.TagsColumn),
		)
		fromV = sqlgraph.Neighbors(tg.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TagGroupClient) Hooks() []Hook {
	hooks := c.hooks.TagGroup
	return append(hooks[:len(hooks):len(hooks)], taggroup.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *TagGroupClient) Interceptors() []Interceptor {
	return c.inters.TagGroup
}

func (c *TagGroupClient) mutate(ctx context.Context, m *TagGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TagGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TagGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TagGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TagGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TagGroup mutation op: %q", m.Op())
	}
}

// TaggedItemClient is a client for the TaggedItem schema.
type TaggedItemClient struct {
	config
}

// NewTaggedItemClient returns a client for the TaggedItem from the given config.
func NewTaggedItemClient(c config) *TaggedItemClient {
	return &TaggedItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taggeditem.Hooks(f(g(h())))`.
func (c *TaggedItemClient) Use(hooks ...Hook) {
	c.hooks.TaggedItem = append(c.hooks.TaggedItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taggeditem.Intercept(f(g(h())))`.
func (c *TaggedItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaggedItem = append(c.inters.TaggedItem, interceptors...)
}

// Create returns a builder for creating a TaggedItem entity.
func (c *TaggedItemClient) Create() *TaggedItemCreate {
	mutation := newTaggedItemMutation(c.config, OpCreate)
	return &TaggedItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaggedItem entities.
func (c *TaggedItemClient) CreateBulk(builders ...*TaggedItemCreate) *TaggedItemCreateBulk {
	return &TaggedItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaggedItemClient) MapCreateBulk(slice any, setFunc func(*TaggedItemCreate, int)) *TaggedItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaggedItemCreateBulk{err: fmt.Errorf("calling to TaggedItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaggedItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaggedItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaggedItem.
func (c *TaggedItemClient) Update() *TaggedItemUpdate {
	mutation := newTaggedItemMutation(c.config, OpUpdate)
	return &TaggedItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaggedItemClient) UpdateOne(ti *TaggedItem) *TaggedItemUpdateOne {
	mutation := newTaggedItemMutation(c.config, OpUpdateOne, withTaggedItem(ti))
	return &TaggedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaggedItemClient) UpdateOneID(id uint) *TaggedItemUpdateOne {
	mutation := newTaggedItemMutation(c.config, OpUpdateOne, withTaggedItemID(id))
	return &TaggedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaggedItem.
func (c *TaggedItemClient) Delete() *TaggedItemDelete {
	mutation := newTaggedItemMutation(c.config, OpDelete)
	return &TaggedItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaggedItemClient) DeleteOne(ti *TaggedItem) *TaggedItemDeleteOne {
	return c.DeleteOneID(ti.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaggedItemClient) DeleteOneID(id uint) *TaggedItemDeleteOne {
	builder := c.Delete().Where(taggeditem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaggedItemDeleteOne{builder}
}

// Query returns a query builder for TaggedItem.
func (c *TaggedItemClient) Query() *TaggedItemQuery {
	return &TaggedItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaggedItem},
		inters: c.Interceptors(),
	}
}

// Get returns a TaggedItem entity by its id.
func (c *TaggedItemClient) Get(ctx context.Context, id uint) (*TaggedItem, error) {
	return c.Query().Where(taggeditem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaggedItemClient) GetX(ctx context.Context, id uint) *TaggedItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTags queries the tags edge of a TaggedItem.
func (c *TaggedItemClient) QueryTags(ti *TaggedItem) *UserTagQuery {
	query := (&UserTagClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ti.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taggeditem.Table, taggeditem.FieldID, id),
			sqlgraph.To(usertag.Table, usertag.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, taggeditem.TagsTable, taggeditem.TagsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(ti.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaggedItemClient) Hooks() []Hook {
	hooks := c.hooks.TaggedItem
	return append(hooks[:len(hooks):len(hooks)], taggeditem.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *TaggedItemClient) Interceptors() []Interceptor {
	return c.inters.TaggedItem
}

func (c *TaggedItemClient) mutate(ctx context.Context, m *TaggedItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaggedItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaggedItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaggedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaggedItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaggedItem mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(u *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(u))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uint) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(u *User) *UserDeleteOne {
	return c.DeleteOneID(u.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uint) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uint) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uint) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUserGroup queries the user_group edge of a User.
func (c *UserClient) QueryUserGroup(u *User) *UserGroupQuery {
	query := (&UserGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := u.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(usergroup.Table, usergroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, user.UserGroupTable, user.UserGroupColumn),
		)
		fromV = sqlgraph.Neighbors(u.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTagGroups queries the tag_groups edge of a User.
func (c *UserClient) QueryTagGroups(u *User) *TagGroupQuery {
	query := (&TagGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := u.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(taggroup.Table, taggroup.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.TagGroupsTable, user.TagGroupsColumn),
		)
		fromV = sqlgraph.Neighbors(u.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	hooks := c.hooks.User
	return append(hooks[:len(hooks):len(hooks)], user.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// UserGroupClient is a client for the UserGroup schema.
type UserGroupClient struct {
	config
}

// NewUserGroupClient returns a client for the UserGroup from the given config.
func NewUserGroupClient(c config) *UserGroupClient {
	return &UserGroupClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usergroup.Hooks(f(g(h())))`.
func (c *UserGroupClient) Use(hooks ...Hook) {
	c.hooks.UserGroup = append(c.hooks.UserGroup, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usergroup.Intercept(f(g(h())))`.
func (c *UserGroupClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserGroup = append(c.inters.UserGroup, interceptors...)
}

// Create returns a builder for creating a UserGroup entity.
func (c *UserGroupClient) Create() *UserGroupCreate {
	mutation := newUserGroupMutation(c.config, OpCreate)
	return &UserGroupCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserGroup entities.
func (c *UserGroupClient) CreateBulk(builders ...*UserGroupCreate) *UserGroupCreateBulk {
	return &UserGroupCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserGroupClient) MapCreateBulk(slice any, setFunc func(*UserGroupCreate, int)) *UserGroupCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserGroupCreateBulk{err: fmt.Errorf("calling to UserGroupClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserGroupCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserGroupCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserGroup.
func (c *UserGroupClient) Update() *UserGroupUpdate {
	mutation := newUserGroupMutation(c.config, OpUpdate)
	return &UserGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserGroupClient) UpdateOne(ug *UserGroup) *UserGroupUpdateOne {
	mutation := newUserGroupMutation(c.config, OpUpdateOne, withUserGroup(ug))
	return &UserGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserGroupClient) UpdateOneID(id uint) *UserGroupUpdateOne {
	mutation := newUserGroupMutation(c.config, OpUpdateOne, withUserGroupID(id))
	return &UserGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserGroup.
func (c *UserGroupClient) Delete() *UserGroupDelete {
	mutation := newUserGroupMutation(c.config, OpDelete)
	return &UserGroupDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserGroupClient) DeleteOne(ug *UserGroup) *UserGroupDeleteOne {
	return c.DeleteOneID(ug.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserGroupClient) DeleteOneID(id uint) *UserGroupDeleteOne {
	builder := c.Delete().Where(usergroup.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserGroupDeleteOne{builder}
}

// Query returns a query builder for UserGroup.
func (c *UserGroupClient) Query() *UserGroupQuery {
	return &UserGroupQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserGroup},
		inters: c.Interceptors(),
	}
}

// Get returns a UserGroup entity by its id.
func (c *UserGroupClient) Get(ctx context.Context, id uint) (*UserGroup, error) {
	return c.Query().Where(usergroup.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserGroupClient) GetX(ctx context.Context, id uint) *UserGroup {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUsers queries the users edge of a UserGroup.
func (c *UserGroupClient) QueryUsers(ug *UserGroup) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ug.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usergroup.Table, usergroup.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, usergroup.UsersTable, usergroup.UsersColumn),
		)
		fromV = sqlgraph.Neighbors(ug.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserGroupClient) Hooks() []Hook {
	hooks := c.hooks.UserGroup
	return append(hooks[:len(hooks):len(hooks)], usergroup.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *UserGroupClient) Interceptors() []Interceptor {
	return c.inters.UserGroup
}

func (c *UserGroupClient) mutate(ctx context.Context, m *UserGroupMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserGroupCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserGroupUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserGroupUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserGroupDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserGroup mutation op: %q", m.Op())
	}
}

// UserTagClient is a client for the UserTag schema.
type UserTagClient struct {
	config
}

// NewUserTagClient returns a client for the UserTag from the given config.
func NewUserTagClient(c config) *UserTagClient {
	return &UserTagClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usertag.Hooks(f(g(h())))`.
func (c *UserTagClient) Use(hooks ...Hook) {
	c.hooks.UserTag = append(c.hooks.UserTag, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usertag.Intercept(f(g(h())))`.
func (c *UserTagClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserTag = append(c.inters.UserTag, interceptors...)
}

// Create returns a builder for creating a UserTag entity.
func (c *UserTagClient) Create() *UserTagCreate {
	mutation := newUserTagMutation(c.config, OpCreate)
	return &UserTagCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserTag entities.
func (c *UserTagClient) CreateBulk(builders ...*UserTagCreate) *UserTagCreateBulk {
	return &UserTagCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserTagClient) MapCreateBulk(slice any, setFunc func(*UserTagCreate, int)) *UserTagCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserTagCreateBulk{err: fmt.Errorf("calling to UserTagClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserTagCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserTagCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserTag.
func (c *UserTagClient) Update() *UserTagUpdate {
	mutation := newUserTagMutation(c.config, OpUpdate)
	return &UserTagUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserTagClient) UpdateOne(ut *UserTag) *UserTagUpdateOne {
	mutation := newUserTagMutation(c.config, OpUpdateOne, withUserTag(ut))
	return &UserTagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserTagClient) UpdateOneID(id uint) *UserTagUpdateOne {
	mutation := newUserTagMutation(c.config, OpUpdateOne, withUserTagID(id))
	return &UserTagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserTag.
func (c *UserTagClient) Delete() *UserTagDelete {
	mutation := newUserTagMutation(c.config, OpDelete)
	return &UserTagDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserTagClient) DeleteOne(ut *UserTag) *UserTagDeleteOne {
	return c.DeleteOneID(ut.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserTagClient) DeleteOneID(id uint) *UserTagDeleteOne {
	builder := c.Delete().Where(usertag.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserTagDeleteOne{builder}
}

// Query returns a query builder for UserTag.
func (c *UserTagClient) Query() *UserTagQuery {
	return &UserTagQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserTag},
		inters: c.Interceptors(),
	}
}

// Get returns a UserTag entity by its id.
func (c *UserTagClient) Get(ctx context.Context, id uint) (*UserTag, error) {
	return c.Query().Where(usertag.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserTagClient) GetX(ctx context.Context, id uint) *UserTag {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGroup queries the group edge of a UserTag.
func (c *UserTagClient) QueryGroup(ut *UserTag) *TagGroupQuery {
	query := (&TagGroupClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ut.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usertag.Table, usertag.FieldID, id),
			sqlgraph.To(taggroup.Table, taggroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usertag.GroupTable, usertag.GroupColumn),
		)
		fromV = sqlgraph.Neighbors(ut.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a UserTag.
func (c *UserTagClient) QueryItems(ut *UserTag) *TaggedItemQuery {
	query := (&TaggedItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ut.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usertag.Table, usertag.FieldID, id),
			sqlgraph.To(taggeditem.Table, taggeditem.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, usertag.ItemsTable, usertag.ItemsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(ut.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserTagClient) Hooks() []Hook {
	hooks := c.hooks.UserTag
	return append(hooks[:len(hooks):len(hooks)], usertag.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *UserTagClient) Interceptors() []Interceptor {
	return c.inters.UserTag
}

func (c *UserTagClient) mutate(ctx context.Context, m *UserTagMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserTagCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserTagUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserTagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserTagDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserTag mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Setting, TagGroup, TaggedItem, User, UserGroup, UserTag []ent.Hook
	}
	inters struct {
		Setting, TagGroup, TaggedItem, User, UserGroup, UserTag []ent.Interceptor
	}
)

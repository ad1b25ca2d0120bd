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
	"github.com/anzhiyu-c/user-tags/ent/predicate"
	"github.com/anzhiyu-c/user-tags/ent/taggroup"
	"github.com/anzhiyu-c/user-tags/ent/user"
	"github.com/anzhiyu-c/user-tags/ent/usertag"
)

// TagGroupQuery is the builder for querying TagGroup entities.
type TagGroupQuery struct {
	config
	ctx        *QueryContext
	order      []taggroup.OrderOption
	inters     []Interceptor
	predicates []predicate.TagGroup
	withOwner  *UserQuery
	withTags   *UserTagQuery
	withFKs    bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TagGroupQuery builder.
func (tgq *TagGroupQuery) Where(ps ...predicate.TagGroup) *TagGroupQuery {
	tgq.predicates = append(tgq.predicates, ps...)
	return tgq
}

// Limit the number of records to be returned by this query.
func (tgq *TagGroupQuery) Limit(limit int) *TagGroupQuery {
	tgq.ctx.Limit = &limit
	return tgq
}

// Offset to start from.
func (tgq *TagGroupQuery) Offset(offset int) *TagGroupQuery {
	tgq.ctx.Offset = &offset
	return tgq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (tgq *TagGroupQuery) Unique(unique bool) *TagGroupQuery {
	tgq.ctx.Unique = &unique
	return tgq
}

// Order specifies how the records should be ordered.
func (tgq *TagGroupQuery) Order(o ...taggroup.OrderOption) *TagGroupQuery {
	tgq.order = append(tgq.order, o...)
	return tgq
}

// QueryOwner chains the current query on the "owner" edge.
func (tgq *TagGroupQuery) QueryOwner() *UserQuery {
	query := (&UserClient{config: tgq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := tgq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := tgq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(taggroup.Table, taggroup.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taggroup.OwnerTable, taggroup.OwnerColumn),
		)
		fromU = sqlgraph.SetNeighbors(tgq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTags chains the current query on the "tags" edge.
func (tgq *TagGroupQuery) QueryTags() *UserTagQuery {
	query := (&UserTagClient{config: tgq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := tgq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := tgq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(taggroup.Table, taggroup.FieldID, selector),
			sqlgraph.To(usertag.Table, usertag.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, taggroup.TagsTable, taggroup.TagsColumn),
		)
		fromU = sqlgraph.SetNeighbors(tgq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TagGroup entity from the query.
// Returns a *NotFoundError when no TagGroup was found.
func (tgq *TagGroupQuery) First(ctx context.Context) (*TagGroup, error) {
	nodes, err := tgq.Limit(1).All(setContextOp(ctx, tgq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{taggroup.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (tgq *TagGroupQuery) FirstX(ctx context.Context) *TagGroup {
	node, err := tgq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TagGroup ID from the query.
// Returns a *NotFoundError when no TagGroup ID was found.
func (tgq *TagGroupQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = tgq.Limit(1).IDs(setContextOp(ctx, tgq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{taggroup.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (tgq *TagGroupQuery) FirstIDX(ctx context.Context) uint {
	id, err := tgq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TagGroup entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TagGroup entity is found.
// Returns a *NotFoundError when no TagGroup entities are found.
func (tgq *TagGroupQuery) Only(ctx context.Context) (*TagGroup, error) {
	nodes, err := tgq.Limit(2).All(setContextOp(ctx, tgq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{taggroup.Label}
	default:
		return nil, &NotSingularError{taggroup.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (tgq *TagGroupQuery) OnlyX(ctx context.Context) *TagGroup {
	node, err := tgq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TagGroup ID in the query.
// Returns a *NotSingularError when more than one TagGroup ID is found.
// Returns a *NotFoundError when no entities are found.
func (tgq *TagGroupQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = tgq.Limit(2).IDs(setContextOp(ctx, tgq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{taggroup.Label}
	default:
		err = &NotSingularError{taggroup.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (tgq *TagGroupQuery) OnlyIDX(ctx context.Context) uint {
	id, err := tgq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TagGroups.
func (tgq *TagGroupQuery) All(ctx context.Context) ([]*TagGroup, error) {
	ctx = setContextOp(ctx, tgq.ctx, ent.OpQueryAll)
	if err := tgq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TagGroup, *TagGroupQuery]()
	return withInterceptors[[]*TagGroup](ctx, tgq, qr, tgq.inters)
}

// AllX is like All, but panics if an error occurs.
func (tgq *TagGroupQuery) AllX(ctx context.Context) []*TagGroup {
	nodes, err := tgq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TagGroup IDs.
func (tgq *TagGroupQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if tgq.ctx.Unique == nil && tgq.path != nil {
		tgq.Unique(true)
	}
	ctx = setContextOp(ctx, tgq.ctx, ent.OpQueryIDs)
	if err = tgq.Select(taggroup.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (tgq *TagGroupQuery) IDsX(ctx context.Context) []uint {
	ids, err := tgq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (tgq *TagGroupQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, tgq.ctx, ent.OpQueryCount)
	if err := tgq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, tgq, querierCount[*TagGroupQuery](), tgq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (tgq *TagGroupQuery) CountX(ctx context.Context) int {
	count, err := tgq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (tgq *TagGroupQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, tgq.ctx, ent.OpQueryExist)
	switch _, err := tgq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (tgq *TagGroupQuery) ExistX(ctx context.Context) bool {
	exist, err := tgq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TagGroupQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (tgq *TagGroupQuery) Clone() *TagGroupQuery {
	if tgq == nil {
		return nil
	}
	return &TagGroupQuery{
		config:     tgq.config,
		ctx:        tgq.ctx.Clone(),
		order:      append([]taggroup.OrderOption{}, tgq.order...),
		inters:     append([]Interceptor{}, tgq.inters...),
		predicates: append([]predicate.TagGroup{}, tgq.predicates...),
		withOwner:  tgq.withOwner.Clone(),
		withTags:   tgq.withTags.Clone(),
		// clone intermediate query.
		sql:  tgq.sql.Clone(),
		path: tgq.path,
	}
}

// WithOwner tells the query-builder to eager-load the nodes that are connected to
// the "owner" edge. The optional arguments are used to configure the query builder of the edge.
func (tgq *TagGroupQuery) WithOwner(opts ...func(*UserQuery)) *TagGroupQuery {
	query := (&UserClient{config: tgq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	tgq.withOwner = query
	return tgq
}

// WithTags tells the query-builder to eager-load the nodes that are connected to
// the "tags" edge. The optional arguments are used to configure the query builder of the edge.
func (tgq *TagGroupQuery) WithTags(opts ...func(*UserTagQuery)) *TagGroupQuery {
	query := (&UserTagClient{config: tgq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	tgq.withTags = query
	return tgq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DeletedAt time.Time `json:"deleted_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TagGroup.Query().
//		GroupBy(taggroup.FieldDeletedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (tgq *TagGroupQuery) GroupBy(field string, fields ...string) *TagGroupGroupBy {
	tgq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TagGroupGroupBy{build: tgq}
	grbuild.flds = &tgq.ctx.Fields
	grbuild.label = taggroup.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DeletedAt time.Time `json:"deleted_at,omitempty"`
//	}
//
//	client.TagGroup.Query().
//		Select(taggroup.FieldDeletedAt).
//		Scan(ctx, &v)
func (tgq *TagGroupQuery) Select(fields ...string) *TagGroupSelect {
	tgq.ctx.Fields = append(tgq.ctx.Fields, fields...)
	sbuild := &TagGroupSelect{TagGroupQuery: tgq}
	sbuild.label = taggroup.Label
	sbuild.flds, sbuild.scan = &tgq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TagGroupSelect configured with the given aggregations.
func (tgq *TagGroupQuery) Aggregate(fns ...AggregateFunc) *TagGroupSelect {
	return tgq.Select().Aggregate(fns...)
}

func (tgq *TagGroupQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range tgq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, tgq); err != nil {
				return err
			}
		}
	}
	for _, f := range tgq.ctx.Fields {
		if !taggroup.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if tgq.path != nil {
		prev, err := tgq.path(ctx)
		if err != nil {
			return err
		}
		tgq.sql = prev
	}
	return nil
}

func (tgq *TagGroupQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TagGroup, error) {
	var (
		nodes       = []*TagGroup{}
		withFKs     = tgq.withFKs
		_spec       = tgq.querySpec()
		loadedTypes = [2]bool{
			tgq.withOwner != nil,
			tgq.withTags != nil,
		}
	)
	if tgq.withOwner != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, taggroup.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TagGroup).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TagGroup{config: tgq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, tgq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := tgq.withOwner; query != nil {
		if err := tgq.loadOwner(ctx, query, nodes, nil,
			func(n *TagGroup, e *User) { n.Edges.Owner = e }); err != nil {
			return nil, err
		}
	}
	if query := tgq.withTags; query != nil {
		if err := tgq.loadTags(ctx, query, nodes,
			func(n *TagGroup) { n.Edges.Tags = []*UserTag{} },
			func(n *TagGroup, e *UserTag) { n.Edges.Tags = append(n.Edges.Tags, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (tgq *TagGroupQuery) loadOwner(ctx context.Context, query *UserQuery, nodes []*TagGroup, init func(*TagGroup), assign func(*TagGroup, *User)) error {
	ids := make([]uint, 0, len(nodes))
	nodeids := make(map[uint][]*TagGroup)
	for i := range nodes {
		if nodes[i].owner_id == nil {
			continue
		}
		fk := *nodes[i].owner_id
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "owner_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (tgq *TagGroupQuery) loadTags(ctx context.Context, query *UserTagQuery, nodes []*TagGroup, init func(*TagGroup), assign func(*TagGroup, *UserTag)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uint]*TagGroup)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.UserTag(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(taggroup.TagsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.tag_group_id
		if fk == nil {
			return fmt.Errorf(`foreign-key "tag_group_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "tag_group_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (tgq *TagGroupQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := tgq.querySpec()
	_spec.Node.Columns = tgq.ctx.Fields
	if len(tgq.ctx.Fields) > 0 {
		_spec.Unique = tgq.ctx.Unique != nil && *tgq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, tgq.driver, _spec)
}

func (tgq *TagGroupQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(taggroup.Table, taggroup.Columns, sqlgraph.NewFieldSpec(taggroup.FieldID, field.TypeUint))
	_spec.From = tgq.sql
	if unique := tgq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if tgq.path != nil {
		_spec.Unique = true
	}
	if fields := tgq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taggroup.FieldID)
		for i := range fields {
			if fields[i] != taggroup.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := tgq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := tgq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := tgq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := tgq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (tgq *TagGroupQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(tgq.driver.Dialect())
	t1 := builder.Table(taggroup.Table)
	columns := tgq.ctx.Fields
	if len(columns) == 0 {
		columns = taggroup.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if tgq.sql != nil {
		selector = tgq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if tgq.ctx.Unique != nil && *tgq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range tgq.predicates {
		p(selector)
	}
	for _, p := range tgq.order {
		p(selector)
	}
	if offset := tgq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := tgq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TagGroupGroupBy is the group-by builder for TagGroup entities.
type TagGroupGroupBy struct {
	selector
	build *TagGroupQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (tggb *TagGroupGroupBy) Aggregate(fns ...AggregateFunc) *TagGroupGroupBy {
	tggb.fns = append(tggb.fns, fns...)
	return tggb
}

// Scan applies the selector query and scans the result into the given value.
func (tggb *TagGroupGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tggb.build.ctx, ent.OpQueryGroupBy)
	if err := tggb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TagGroupQuery, *TagGroupGroupBy](ctx, tggb.build, tggb, tggb.build.inters, v)
}

func (tggb *TagGroupGroupBy) sqlScan(ctx context.Context, root *TagGroupQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(tggb.fns))
	for _, fn := range tggb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*tggb.flds)+len(tggb.fns))
		for _, f := range *tggb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*tggb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tggb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TagGroupSelect is the builder for selecting fields of TagGroup entities.
type TagGroupSelect struct {
	*TagGroupQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (tgs *TagGroupSelect) Aggregate(fns ...AggregateFunc) *TagGroupSelect {
	tgs.fns = append(tgs.fns, fns...)
	return tgs
}

// Scan applies the selector query and scans the result into the given value.
func (tgs *TagGroupSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tgs.ctx, ent.OpQuerySelect)
	if err := tgs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TagGroupQuery, *TagGroupSelect](ctx, tgs.TagGroupQuery, tgs, tgs.inters, v)
}

func (tgs *TagGroupSelect) sqlScan(ctx context.Context, root *TagGroupQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(tgs.fns))
	for _, fn := range tgs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*tgs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tgs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

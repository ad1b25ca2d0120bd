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
	"github.com/anzhiyu-c/user-tags/ent/taggeditem"
	"github.com/anzhiyu-c/user-tags/ent/taggroup"
	"github.com/anzhiyu-c/user-tags/ent/usertag"
)

// UserTagQuery is the builder for querying UserTag entities.
type UserTagQuery struct {
	config
	ctx        *QueryContext
	order      []usertag.OrderOption
	inters     []Interceptor
	predicates []predicate.UserTag
	withGroup  *TagGroupQuery
	withItems  *TaggedItemQuery
	withFKs    bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UserTagQuery builder.
func (utq *UserTagQuery) Where(ps ...predicate.UserTag) *UserTagQuery {
	utq.predicates = append(utq.predicates, ps...)
	return utq
}

// Limit the number of records to be returned by this query.
func (utq *UserTagQuery) Limit(limit int) *UserTagQuery {
	utq.ctx.Limit = &limit
	return utq
}

// Offset to start from.
func (utq *UserTagQuery) Offset(offset int) *UserTagQuery {
	utq.ctx.Offset = &offset
	return utq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (utq *UserTagQuery) Unique(unique bool) *UserTagQuery {
	utq.ctx.Unique = &unique
	return utq
}

// Order specifies how the records should be ordered.
func (utq *UserTagQuery) Order(o ...usertag.OrderOption) *UserTagQuery {
	utq.order = append(utq.order, o...)
	return utq
}

// QueryGroup chains the current query on the "group" edge.
func (utq *UserTagQuery) QueryGroup() *TagGroupQuery {
	query := (&TagGroupClient{config: utq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := utq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := utq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(usertag.Table, usertag.FieldID, selector),
			sqlgraph.To(taggroup.Table, taggroup.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, usertag.GroupTable, usertag.GroupColumn),
		)
		fromU = sqlgraph.SetNeighbors(utq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryItems chains the current query on the "items" edge.
func (utq *UserTagQuery) QueryItems() *TaggedItemQuery {
	query := (&TaggedItemClient{config: utq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := utq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := utq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(usertag.Table, usertag.FieldID, selector),
			sqlgraph.To(taggeditem.Table, taggeditem.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, usertag.ItemsTable, usertag.ItemsPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(utq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first UserTag entity from the query.
// Returns a *NotFoundError when no UserTag was found.
func (utq *UserTagQuery) First(ctx context.Context) (*UserTag, error) {
	nodes, err := utq.Limit(1).All(setContextOp(ctx, utq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{usertag.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (utq *UserTagQuery) FirstX(ctx context.Context) *UserTag {
	node, err := utq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UserTag ID from the query.
// Returns a *NotFoundError when no UserTag ID was found.
func (utq *UserTagQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = utq.Limit(1).IDs(setContextOp(ctx, utq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{usertag.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (utq *UserTagQuery) FirstIDX(ctx context.Context) uint {
	id, err := utq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UserTag entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UserTag entity is found.
// Returns a *NotFoundError when no UserTag entities are found.
func (utq *UserTagQuery) Only(ctx context.Context) (*UserTag, error) {
	nodes, err := utq.Limit(2).All(setContextOp(ctx, utq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{usertag.Label}
	default:
		return nil, &NotSingularError{usertag.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (utq *UserTagQuery) OnlyX(ctx context.Context) *UserTag {
	node, err := utq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UserTag ID in the query.
// Returns a *NotSingularError when more than one UserTag ID is found.
// Returns a *NotFoundError when no entities are found.
func (utq *UserTagQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = utq.Limit(2).IDs(setContextOp(ctx, utq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{usertag.Label}
	default:
		err = &NotSingularError{usertag.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (utq *UserTagQuery) OnlyIDX(ctx context.Context) uint {
	id, err := utq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UserTags.
func (utq *UserTagQuery) All(ctx context.Context) ([]*UserTag, error) {
	ctx = setContextOp(ctx, utq.ctx, ent.OpQueryAll)
	if err := utq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UserTag, *UserTagQuery]()
	return withInterceptors[[]*UserTag](ctx, utq, qr, utq.inters)
}

// AllX is like All, but panics if an error occurs.
func (utq *UserTagQuery) AllX(ctx context.Context) []*UserTag {
	nodes, err := utq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UserTag IDs.
func (utq *UserTagQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if utq.ctx.Unique == nil && utq.path != nil {
		utq.Unique(true)
	}
	ctx = setContextOp(ctx, utq.ctx, ent.OpQueryIDs)
	if err = utq.Select(usertag.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (utq *UserTagQuery) IDsX(ctx context.Context) []uint {
	ids, err := utq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (utq *UserTagQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, utq.ctx, ent.OpQueryCount)
	if err := utq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, utq, querierCount[*UserTagQuery](), utq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (utq *UserTagQuery) CountX(ctx context.Context) int {
	count, err := utq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (utq *UserTagQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, utq.ctx, ent.OpQueryExist)
	switch _, err := utq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (utq *UserTagQuery) ExistX(ctx context.Context) bool {
	exist, err := utq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UserTagQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (utq *UserTagQuery) Clone() *UserTagQuery {
	if utq == nil {
		return nil
	}
	return &UserTagQuery{
		config:     utq.config,
		ctx:        utq.ctx.Clone(),
		order:      append([]usertag.OrderOption{}, utq.order...),
		inters:     append([]Interceptor{}, utq.inters...),
		predicates: append([]predicate.UserTag{}, utq.predicates...),
		withGroup:  utq.withGroup.Clone(),
		withItems:  utq.withItems.Clone(),
		// clone intermediate query.
		sql:  utq.sql.Clone(),
		path: utq.path,
	}
}

// WithGroup tells the query-builder to eager-load the nodes that are connected to
// the "group" edge. The optional arguments are used to configure the query builder of the edge.
func (utq *UserTagQuery) WithGroup(opts ...func(*TagGroupQuery)) *UserTagQuery {
	query := (&TagGroupClient{config: utq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	utq.withGroup = query
	return utq
}

// WithItems tells the query-builder to eager-load the nodes that are connected to
// the "items" edge. The optional arguments are used to configure the query builder of the edge.
func (utq *UserTagQuery) WithItems(opts ...func(*TaggedItemQuery)) *UserTagQuery {
	query := (&TaggedItemClient{config: utq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	utq.withItems = query
	return utq
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
//	client.UserTag.Query().
//		GroupBy(usertag.FieldDeletedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (utq *UserTagQuery) GroupBy(field string, fields ...string) *UserTagGroupBy {
	utq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UserTagGroupBy{build: utq}
	grbuild.flds = &utq.ctx.Fields
	grbuild.label = usertag.Label
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
//	client.UserTag.Query().
//		Select(usertag.FieldDeletedAt).
//		Scan(ctx, &v)
func (utq *UserTagQuery) Select(fields ...string) *UserTagSelect {
	utq.ctx.Fields = append(utq.ctx.Fields, fields...)
	sbuild := &UserTagSelect{UserTagQuery: utq}
	sbuild.label = usertag.Label
	sbuild.flds, sbuild.scan = &utq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UserTagSelect configured with the given aggregations.
func (utq *UserTagQuery) Aggregate(fns ...AggregateFunc) *UserTagSelect {
	return utq.Select().Aggregate(fns...)
}

func (utq *UserTagQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range utq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, utq); err != nil {
				return err
			}
		}
	}
	for _, f := range utq.ctx.Fields {
		if !usertag.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if utq.path != nil {
		prev, err := utq.path(ctx)
		if err != nil {
			return err
		}
		utq.sql = prev
	}
	return nil
}

func (utq *UserTagQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UserTag, error) {
	var (
		nodes       = []*UserTag{}
		withFKs     = utq.withFKs
		_spec       = utq.querySpec()
		loadedTypes = [2]bool{
			utq.withGroup != nil,
			utq.withItems != nil,
		}
	)
	if utq.withGroup != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, usertag.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UserTag).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UserTag{config: utq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, utq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := utq.withGroup; query != nil {
		if err := utq.loadGroup(ctx, query, nodes, nil,
			func(n *UserTag, e *TagGroup) { n.Edges.Group = e }); err != nil {
			return nil, err
		}
	}
	if query := utq.withItems; query != nil {
		if err := utq.loadItems(ctx, query, nodes,
			func(n *UserTag) { n.Edges.Items = []*TaggedItem{} },
			func(n *UserTag, e *TaggedItem) { n.Edges.Items = append(n.Edges.Items, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (utq *UserTagQuery) loadGroup(ctx context.Context, query *TagGroupQuery, nodes []*UserTag, init func(*UserTag), assign func(*UserTag, *TagGroup)) error {
	ids := make([]uint, 0, len(nodes))
	nodeids := make(map[uint][]*UserTag)
	for i := range nodes {
		if nodes[i].tag_group_id == nil {
			continue
		}
		fk := *nodes[i].tag_group_id
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(taggroup.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "tag_group_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (utq *UserTagQuery) loadItems(ctx context.Context, query *TaggedItemQuery, nodes []*UserTag, init func(*UserTag), assign func(*UserTag, *TaggedItem)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[uint]*UserTag)
	nids := make(map[uint]map[*UserTag]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(usertag.ItemsTable)
		s.Join(joinT).On(s.C(taggeditem.FieldID), joinT.C(usertag.ItemsPrimaryKey[0]))
		s.Where(sql.InValues(joinT.C(usertag.ItemsPrimaryKey[1]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(usertag.ItemsPrimaryKey[1]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullInt64)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := uint(values[0].(*sql.NullInt64).Int64)
				inValue := uint(values[1].(*sql.NullInt64).Int64)
				if nids[inValue] == nil {
					nids[inValue] = map[*UserTag]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*TaggedItem](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "items" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}

func (utq *UserTagQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := utq.querySpec()
	_spec.Node.Columns = utq.ctx.Fields
	if len(utq.ctx.Fields) > 0 {
		_spec.Unique = utq.ctx.Unique != nil && *utq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, utq.driver, _spec)
}

func (utq *UserTagQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(usertag.Table, usertag.Columns, sqlgraph.NewFieldSpec(usertag.FieldID, field.TypeUint))
	_spec.From = utq.sql
	if unique := utq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if utq.path != nil {
		_spec.Unique = true
	}
	if fields := utq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usertag.FieldID)
		for i := range fields {
			if fields[i] != usertag.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := utq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := utq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := utq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := utq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (utq *UserTagQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(utq.driver.Dialect())
	t1 := builder.Table(usertag.Table)
	columns := utq.ctx.Fields
	if len(columns) == 0 {
		columns = usertag.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if utq.sql != nil {
		selector = utq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if utq.ctx.Unique != nil && *utq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range utq.predicates {
		p(selector)
	}
	for _, p := range utq.order {
		p(selector)
	}
	if offset := utq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := utq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UserTagGroupBy is the group-by builder for UserTag entities.
type UserTagGroupBy struct {
	selector
	build *UserTagQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (utgb *UserTagGroupBy) Aggregate(fns ...AggregateFunc) *UserTagGroupBy {
	utgb.fns = append(utgb.fns, fns...)
	return utgb
}

// Scan applies the selector query and scans the result into the given value.
func (utgb *UserTagGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, utgb.build.ctx, ent.OpQueryGroupBy)
	if err := utgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UserTagQuery, *UserTagGroupBy](ctx, utgb.build, utgb, utgb.build.inters, v)
}

func (utgb *UserTagGroupBy) sqlScan(ctx context.Context, root *UserTagQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(utgb.fns))
	for _, fn := range utgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*utgb.flds)+len(utgb.fns))
		for _, f := range *utgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*utgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := utgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UserTagSelect is the builder for selecting fields of UserTag entities.
type UserTagSelect struct {
	*UserTagQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (uts *UserTagSelect) Aggregate(fns ...AggregateFunc) *UserTagSelect {
	uts.fns = append(uts.fns, fns...)
	return uts
}

// Scan applies the selector query and scans the result into the given value.
func (uts *UserTagSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, uts.ctx, ent.OpQuerySelect)
	if err := uts.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UserTagQuery, *UserTagSelect](ctx, uts.UserTagQuery, uts, uts.inters, v)
}

func (uts *UserTagSelect) sqlScan(ctx context.Context, root *UserTagQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(uts.fns))
	for _, fn := range uts.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*uts.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := uts.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

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
	"github.com/anzhiyu-c/user-tags/ent/usertag"
)

// TaggedItemQuery is the builder for querying TaggedItem entities.
type TaggedItemQuery struct {
	config
	ctx        *QueryContext
	order      []taggeditem.OrderOption
	inters     []Interceptor
	predicates []predicate.TaggedItem
	withTags   *UserTagQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TaggedItemQuery builder.
func (tiq *TaggedItemQuery) Where(ps ...predicate.TaggedItem) *TaggedItemQuery {
	tiq.predicates = append(tiq.predicates, ps...)
	return tiq
}

// Limit the number of records to be returned by this query.
func (tiq *TaggedItemQuery) Limit(limit int) *TaggedItemQuery {
	tiq.ctx.Limit = &limit
	return tiq
}

// Offset to start from.
func (tiq *TaggedItemQuery) Offset(offset int) *TaggedItemQuery {
	tiq.ctx.Offset = &offset
	return tiq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (tiq *TaggedItemQuery) Unique(unique bool) *TaggedItemQuery {
	tiq.ctx.Unique = &unique
	return tiq
}

// Order specifies how the records should be ordered.
func (tiq *TaggedItemQuery) Order(o ...taggeditem.OrderOption) *TaggedItemQuery {
	tiq.order = append(tiq.order, o...)
	return tiq
}

// QueryTags chains the current query on the "tags" edge.
func (tiq *TaggedItemQuery) QueryTags() *UserTagQuery {
	query := (&UserTagClient{config: tiq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := tiq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := tiq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(taggeditem.Table, taggeditem.FieldID, selector),
			sqlgraph.To(usertag.Table, usertag.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, taggeditem.TagsTable, taggeditem.TagsPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(tiq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TaggedItem entity from the query.
// Returns a *NotFoundError when no TaggedItem was found.
func (tiq *TaggedItemQuery) First(ctx context.Context) (*TaggedItem, error) {
	nodes, err := tiq.Limit(1).All(setContextOp(ctx, tiq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{taggeditem.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (tiq *TaggedItemQuery) FirstX(ctx context.Context) *TaggedItem {
	node, err := tiq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TaggedItem ID from the query.
// Returns a *NotFoundError when no TaggedItem ID was found.
func (tiq *TaggedItemQuery) FirstID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = tiq.Limit(1).IDs(setContextOp(ctx, tiq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{taggeditem.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (tiq *TaggedItemQuery) FirstIDX(ctx context.Context) uint {
	id, err := tiq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TaggedItem entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TaggedItem entity is found.
// Returns a *NotFoundError when no TaggedItem entities are found.
func (tiq *TaggedItemQuery) Only(ctx context.Context) (*TaggedItem, error) {
	nodes, err := tiq.Limit(2).All(setContextOp(ctx, tiq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{taggeditem.Label}
	default:
		return nil, &NotSingularError{taggeditem.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (tiq *TaggedItemQuery) OnlyX(ctx context.Context) *TaggedItem {
	node, err := tiq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TaggedItem ID in the query.
// Returns a *NotSingularError when more than one TaggedItem ID is found.
// Returns a *NotFoundError when no entities are found.
func (tiq *TaggedItemQuery) OnlyID(ctx context.Context) (id uint, err error) {
	var ids []uint
	if ids, err = tiq.Limit(2).IDs(setContextOp(ctx, tiq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{taggeditem.Label}
	default:
		err = &NotSingularError{taggeditem.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (tiq *TaggedItemQuery) OnlyIDX(ctx context.Context) uint {
	id, err := tiq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TaggedItems.
func (tiq *TaggedItemQuery) All(ctx context.Context) ([]*TaggedItem, error) {
	ctx = setContextOp(ctx, tiq.ctx, ent.OpQueryAll)
	if err := tiq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TaggedItem, *TaggedItemQuery]()
	return withInterceptors[[]*TaggedItem](ctx, tiq, qr, tiq.inters)
}

// AllX is like All, but panics if an error occurs.
func (tiq *TaggedItemQuery) AllX(ctx context.Context) []*TaggedItem {
	nodes, err := tiq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TaggedItem IDs.
func (tiq *TaggedItemQuery) IDs(ctx context.Context) (ids []uint, err error) {
	if tiq.ctx.Unique == nil && tiq.path != nil {
		tiq.Unique(true)
	}
	ctx = setContextOp(ctx, tiq.ctx, ent.OpQueryIDs)
	if err = tiq.Select(taggeditem.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (tiq *TaggedItemQuery) IDsX(ctx context.Context) []uint {
	ids, err := tiq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (tiq *TaggedItemQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, tiq.ctx, ent.OpQueryCount)
	if err := tiq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, tiq, querierCount[*TaggedItemQuery](), tiq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (tiq *TaggedItemQuery) CountX(ctx context.Context) int {
	count, err := tiq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (tiq *TaggedItemQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, tiq.ctx, ent.OpQueryExist)
	switch _, err := tiq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (tiq *TaggedItemQuery) ExistX(ctx context.Context) bool {
	exist, err := tiq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TaggedItemQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (tiq *TaggedItemQuery) Clone() *TaggedItemQuery {
	if tiq == nil {
		return nil
	}
	return &TaggedItemQuery{
		config:     tiq.config,
		ctx:        tiq.ctx.Clone(),
		order:      append([]taggeditem.OrderOption{}, tiq.order...),
		inters:     append([]Interceptor{}, tiq.inters...),
		predicates: append([]predicate.TaggedItem{}, tiq.predicates...),
		withTags:   tiq.withTags.Clone(),
		// clone intermediate query.
		sql:  tiq.sql.Clone(),
		path: tiq.path,
	}
}

// WithTags tells the query-builder to eager-load the nodes that are connected to
// the "tags" edge. The optional arguments are used to configure the query builder of the edge.
func (tiq *TaggedItemQuery) WithTags(opts ...func(*UserTagQuery)) *TaggedItemQuery {
	query := (&UserTagClient{config: tiq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	tiq.withTags = query
	return tiq
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
//	client.TaggedItem.Query().
//		GroupBy(taggeditem.FieldDeletedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (tiq *TaggedItemQuery) GroupBy(field string, fields ...string) *TaggedItemGroupBy {
	tiq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TaggedItemGroupBy{build: tiq}
	grbuild.flds = &tiq.ctx.Fields
	grbuild.label = taggeditem.Label
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
//	client.TaggedItem.Query().
//		Select(taggeditem.FieldDeletedAt).
//		Scan(ctx, &v)
func (tiq *TaggedItemQuery) Select(fields ...string) *TaggedItemSelect {
	tiq.ctx.Fields = append(tiq.ctx.Fields, fields...)
	sbuild := &TaggedItemSelect{TaggedItemQuery: tiq}
	sbuild.label = taggeditem.Label
	sbuild.flds, sbuild.scan = &tiq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TaggedItemSelect configured with the given aggregations.
func (tiq *TaggedItemQuery) Aggregate(fns ...AggregateFunc) *TaggedItemSelect {
	return tiq.Select().Aggregate(fns...)
}

func (tiq *TaggedItemQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range tiq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, tiq); err != nil {
				return err
			}
		}
	}
	for _, f := range tiq.ctx.Fields {
		if !taggeditem.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if tiq.path != nil {
		prev, err := tiq.path(ctx)
		if err != nil {
			return err
		}
		tiq.sql = prev
	}
	return nil
}

func (tiq *TaggedItemQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TaggedItem, error) {
	var (
		nodes       = []*TaggedItem{}
		_spec       = tiq.querySpec()
		loadedTypes = [1]bool{
			tiq.withTags != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TaggedItem).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TaggedItem{config: tiq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, tiq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := tiq.withTags; query != nil {
		if err := tiq.loadTags(ctx, query, nodes,
			func(n *TaggedItem) { n.Edges.Tags = []*UserTag{} },
			func(n *TaggedItem, e *UserTag) { n.Edges.Tags = append(n.Edges.Tags, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (tiq *TaggedItemQuery) loadTags(ctx context.Context, query *UserTagQuery, nodes []*TaggedItem, init func(*TaggedItem), assign func(*TaggedItem, *UserTag)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[uint]*TaggedItem)
	nids := make(map[uint]map[*TaggedItem]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(taggeditem.TagsTable)
		s.Join(joinT).On(s.C(usertag.FieldID), joinT.C(taggeditem.TagsPrimaryKey[1]))
		s.Where(sql.InValues(joinT.C(taggeditem.TagsPrimaryKey[0]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(taggeditem.TagsPrimaryKey[0]))
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
					nids[inValue] = map[*TaggedItem]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*UserTag](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "tags" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}

func (tiq *TaggedItemQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := tiq.querySpec()
	_spec.Node.Columns = tiq.ctx.Fields
	if len(tiq.ctx.Fields) > 0 {
		_spec.Unique = tiq.ctx.Unique != nil && *tiq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, tiq.driver, _spec)
}

func (tiq *TaggedItemQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(taggeditem.Table, taggeditem.Columns, sqlgraph.NewFieldSpec(taggeditem.FieldID, field.TypeUint))
	_spec.From = tiq.sql
	if unique := tiq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if tiq.path != nil {
		_spec.Unique = true
	}
	if fields := tiq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taggeditem.FieldID)
		for i := range fields {
			if fields[i] != taggeditem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := tiq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := tiq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := tiq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := tiq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (tiq *TaggedItemQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(tiq.driver.Dialect())
	t1 := builder.Table(taggeditem.Table)
	columns := tiq.ctx.Fields
	if len(columns) == 0 {
		columns = taggeditem.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if tiq.sql != nil {
		selector = tiq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if tiq.ctx.Unique != nil && *tiq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range tiq.predicates {
		p(selector)
	}
	for _, p := range tiq.order {
		p(selector)
	}
	if offset := tiq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := tiq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TaggedItemGroupBy is the group-by builder for TaggedItem entities.
type TaggedItemGroupBy struct {
	selector
	build *TaggedItemQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (tigb *TaggedItemGroupBy) Aggregate(fns ...AggregateFunc) *TaggedItemGroupBy {
	tigb.fns = append(tigb.fns, fns...)
	return tigb
}

// Scan applies the selector query and scans the result into the given value.
func (tigb *TaggedItemGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tigb.build.ctx, ent.OpQueryGroupBy)
	if err := tigb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaggedItemQuery, *TaggedItemGroupBy](ctx, tigb.build, tigb, tigb.build.inters, v)
}

func (tigb *TaggedItemGroupBy) sqlScan(ctx context.Context, root *TaggedItemQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(tigb.fns))
	for _, fn := range tigb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*tigb.flds)+len(tigb.fns))
		for _, f := range *tigb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*tigb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tigb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TaggedItemSelect is the builder for selecting fields of TaggedItem entities.
type TaggedItemSelect struct {
	*TaggedItemQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (tis *TaggedItemSelect) Aggregate(fns ...AggregateFunc) *TaggedItemSelect {
	tis.fns = append(tis.fns, fns...)
	return tis
}

// Scan applies the selector query and scans the result into the given value.
func (tis *TaggedItemSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tis.ctx, ent.OpQuerySelect)
	if err := tis.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TaggedItemQuery, *TaggedItemSelect](ctx, tis.TaggedItemQuery, tis, tis.inters, v)
}

func (tis *TaggedItemSelect) sqlScan(ctx context.Context, root *TaggedItemQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(tis.fns))
	for _, fn := range tis.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*tis.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tis.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

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
	"github.com/orchid-run/orchid/ent/deadletter"
	"github.com/orchid-run/orchid/ent/predicate"
	"github.com/orchid-run/orchid/ent/webhookdelivery"
	"github.com/orchid-run/orchid/ent/webhookendpoint"
)

// WebhookEndpointQuery is the builder for querying WebhookEndpoint entities.
type WebhookEndpointQuery struct {
	config
	ctx             *QueryContext
	order           []webhookendpoint.OrderOption
	inters          []Interceptor
	predicates      []predicate.WebhookEndpoint
	withDeliveries  *WebhookDeliveryQuery
	withDeadLetters *DeadLetterQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WebhookEndpointQuery builder.
func (_q *WebhookEndpointQuery) Where(ps ...predicate.WebhookEndpoint) *WebhookEndpointQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *WebhookEndpointQuery) Limit(limit int) *WebhookEndpointQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *WebhookEndpointQuery) Offset(offset int) *WebhookEndpointQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *WebhookEndpointQuery) Unique(unique bool) *WebhookEndpointQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *WebhookEndpointQuery) Order(o ...webhookendpoint.OrderOption) *WebhookEndpointQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDeliveries chains the current query on the "deliveries" edge.
func (_q *WebhookEndpointQuery) QueryDeliveries() *WebhookDeliveryQuery {
	query := (&WebhookDeliveryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(webhookendpoint.Table, webhookendpoint.FieldID, selector),
			sqlgraph.To(webhookdelivery.Table, webhookdelivery.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, webhookendpoint.DeliveriesTable, webhookendpoint.DeliveriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDeadLetters chains the current query on the "dead_letters" edge.
func (_q *WebhookEndpointQuery) QueryDeadLetters() *DeadLetterQuery {
	query := (&DeadLetterClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(webhookendpoint.Table, webhookendpoint.FieldID, selector),
			sqlgraph.To(deadletter.Table, deadletter.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, webhookendpoint.DeadLettersTable, webhookendpoint.DeadLettersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first WebhookEndpoint entity from the query.
// Returns a *NotFoundError when no WebhookEndpoint was found.
func (_q *WebhookEndpointQuery) First(ctx context.Context) (*WebhookEndpoint, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{webhookendpoint.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *WebhookEndpointQuery) FirstX(ctx context.Context) *WebhookEndpoint {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WebhookEndpoint ID from the query.
// Returns a *NotFoundError when no WebhookEndpoint ID was found.
func (_q *WebhookEndpointQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{webhookendpoint.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *WebhookEndpointQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WebhookEndpoint entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WebhookEndpoint entity is found.
// Returns a *NotFoundError when no WebhookEndpoint entities are found.
func (_q *WebhookEndpointQuery) Only(ctx context.Context) (*WebhookEndpoint, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{webhookendpoint.Label}
	default:
		return nil, &NotSingularError{webhookendpoint.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *WebhookEndpointQuery) OnlyX(ctx context.Context) *WebhookEndpoint {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WebhookEndpoint ID in the query.
// Returns a *NotSingularError when more than one WebhookEndpoint ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *WebhookEndpointQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{webhookendpoint.Label}
	default:
		err = &NotSingularError{webhookendpoint.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *WebhookEndpointQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WebhookEndpoints.
func (_q *WebhookEndpointQuery) All(ctx context.Context) ([]*WebhookEndpoint, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WebhookEndpoint, *WebhookEndpointQuery]()
	return withInterceptors[[]*WebhookEndpoint](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *WebhookEndpointQuery) AllX(ctx context.Context) []*WebhookEndpoint {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WebhookEndpoint IDs.
func (_q *WebhookEndpointQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(webhookendpoint.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *WebhookEndpointQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *WebhookEndpointQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*WebhookEndpointQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *WebhookEndpointQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *WebhookEndpointQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *WebhookEndpointQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WebhookEndpointQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *WebhookEndpointQuery) Clone() *WebhookEndpointQuery {
	if _q == nil {
		return nil
	}
	return &WebhookEndpointQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]webhookendpoint.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.WebhookEndpoint{}, _q.predicates...),
		withDeliveries:  _q.withDeliveries.Clone(),
		withDeadLetters: _q.withDeadLetters.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDeliveries tells the query-builder to eager-load the nodes that are connected to
// the "deliveries" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WebhookEndpointQuery) WithDeliveries(opts ...func(*WebhookDeliveryQuery)) *WebhookEndpointQuery {
	query := (&WebhookDeliveryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDeliveries = query
	return _q
}

// WithDeadLetters tells the query-builder to eager-load the nodes that are connected to
// the "dead_letters" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WebhookEndpointQuery) WithDeadLetters(opts ...func(*DeadLetterQuery)) *WebhookEndpointQuery {
	query := (&DeadLetterClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDeadLetters = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TenantID string `json:"tenant_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.WebhookEndpoint.Query().
//		GroupBy(webhookendpoint.FieldTenantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *WebhookEndpointQuery) GroupBy(field string, fields ...string) *WebhookEndpointGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WebhookEndpointGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = webhookendpoint.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TenantID string `json:"tenant_id,omitempty"`
//	}
//
//	client.WebhookEndpoint.Query().
//		Select(webhookendpoint.FieldTenantID).
//		Scan(ctx, &v)
func (_q *WebhookEndpointQuery) Select(fields ...string) *WebhookEndpointSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &WebhookEndpointSelect{WebhookEndpointQuery: _q}
	sbuild.label = webhookendpoint.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WebhookEndpointSelect configured with the given aggregations.
func (_q *WebhookEndpointQuery) Aggregate(fns ...AggregateFunc) *WebhookEndpointSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *WebhookEndpointQuery) prepareQuery(ctx context.Context) error {
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
		if !webhookendpoint.ValidColumn(f) {
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

func (_q *WebhookEndpointQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WebhookEndpoint, error) {
	var (
		nodes       = []*WebhookEndpoint{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withDeliveries != nil,
			_q.withDeadLetters != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WebhookEndpoint).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WebhookEndpoint{config: _q.config}
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
	if query := _q.withDeliveries; query != nil {
		if err := _q.loadDeliveries(ctx, query, nodes,
			func(n *WebhookEndpoint) { n.Edges.Deliveries = []*WebhookDelivery{} },
			func(n *WebhookEndpoint, e *WebhookDelivery) { n.Edges.Deliveries = append(n.Edges.Deliveries, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDeadLetters; query != nil {
		if err := _q.loadDeadLetters(ctx, query, nodes,
			func(n *WebhookEndpoint) { n.Edges.DeadLetters = []*DeadLetter{} },
			func(n *WebhookEndpoint, e *DeadLetter) { n.Edges.DeadLetters = append(n.Edges.DeadLetters, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *WebhookEndpointQuery) loadDeliveries(ctx context.Context, query *WebhookDeliveryQuery, nodes []*WebhookEndpoint, init func(*WebhookEndpoint), assign func(*WebhookEndpoint, *WebhookDelivery)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*WebhookEndpoint)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.WebhookDelivery(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(webhookendpoint.DeliveriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.webhook_endpoint_deliveries
		if fk == nil {
			return fmt.Errorf(`foreign-key "webhook_endpoint_deliveries" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "webhook_endpoint_deliveries" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WebhookEndpointQuery) loadDeadLetters(ctx context.Context, query *DeadLetterQuery, nodes []*WebhookEndpoint, init func(*WebhookEndpoint), assign func(*WebhookEndpoint, *DeadLetter)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*WebhookEndpoint)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.DeadLetter(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(webhookendpoint.DeadLettersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.webhook_endpoint_dead_letters
		if fk == nil {
			return fmt.Errorf(`foreign-key "webhook_endpoint_dead_letters" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "webhook_endpoint_dead_letters" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *WebhookEndpointQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *WebhookEndpointQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(webhookendpoint.Table, webhookendpoint.Columns, sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookendpoint.FieldID)
		for i := range fields {
			if fields[i] != webhookendpoint.FieldID {
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

func (_q *WebhookEndpointQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(webhookendpoint.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = webhookendpoint.Columns
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

// WebhookEndpointGroupBy is the group-by builder for WebhookEndpoint entities.
type WebhookEndpointGroupBy struct {
	selector
	build *WebhookEndpointQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *WebhookEndpointGroupBy) Aggregate(fns ...AggregateFunc) *WebhookEndpointGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *WebhookEndpointGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WebhookEndpointQuery, *WebhookEndpointGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *WebhookEndpointGroupBy) sqlScan(ctx context.Context, root *WebhookEndpointQuery, v any) error {
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

// WebhookEndpointSelect is the builder for selecting fields of WebhookEndpoint entities.
type WebhookEndpointSelect struct {
	*WebhookEndpointQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *WebhookEndpointSelect) Aggregate(fns ...AggregateFunc) *WebhookEndpointSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *WebhookEndpointSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WebhookEndpointQuery, *WebhookEndpointSelect](ctx, _s.WebhookEndpointQuery, _s, _s.inters, v)
}

func (_s *WebhookEndpointSelect) sqlScan(ctx context.Context, root *WebhookEndpointQuery, v any) error {
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

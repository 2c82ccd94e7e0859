// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/invoiceflow/invoiceflow/ent/payment"
	"github.com/invoiceflow/invoiceflow/ent/paymentattempt"
	"github.com/invoiceflow/invoiceflow/ent/predicate"
)

// PaymentAttemptQuery is the builder for querying PaymentAttempt entities.
type PaymentAttemptQuery struct {
	config
	ctx         *QueryContext
	order       []paymentattempt.OrderOption
	inters      []Interceptor
	predicates  []predicate.PaymentAttempt
	withPayment *PaymentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PaymentAttemptQuery builder.
func (paq *PaymentAttemptQuery) Where(ps ...predicate.PaymentAttempt) *PaymentAttemptQuery {
	paq.predicates = append(paq.predicates, ps...)
	return paq
}

// Limit the number of records to be returned by this query.
func (paq *PaymentAttemptQuery) Limit(limit int) *PaymentAttemptQuery {
	paq.ctx.Limit = &limit
	return paq
}

// Offset to start from.
func (paq *PaymentAttemptQuery) Offset(offset int) *PaymentAttemptQuery {
	paq.ctx.Offset = &offset
	return paq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (paq *PaymentAttemptQuery) Unique(unique bool) *PaymentAttemptQuery {
	paq.ctx.Unique = &unique
	return paq
}

// Order specifies how the records should be ordered.
func (paq *PaymentAttemptQuery) Order(o ...paymentattempt.OrderOption) *PaymentAttemptQuery {
	paq.order = append(paq.order, o...)
	return paq
}

// QueryPayment chains the current query on the "payment" edge.
func (paq *PaymentAttemptQuery) QueryPayment() *PaymentQuery {
	query := (&PaymentClient{config: paq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := paq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := paq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(paymentattempt.Table, paymentattempt.FieldID, selector),
			sqlgraph.To(payment.Table, payment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, paymentattempt.PaymentTable, paymentattempt.PaymentColumn),
		)
		fromU = sqlgraph.SetNeighbors(paq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PaymentAttempt entity from the query.
// Returns a *NotFoundError when no PaymentAttempt was found.
func (paq *PaymentAttemptQuery) First(ctx context.Context) (*PaymentAttempt, error) {
	nodes, err := paq.Limit(1).All(setContextOp(ctx, paq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{paymentattempt.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (paq *PaymentAttemptQuery) FirstX(ctx context.Context) *PaymentAttempt {
	node, err := paq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PaymentAttempt ID from the query.
// Returns a *NotFoundError when no PaymentAttempt ID was found.
func (paq *PaymentAttemptQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = paq.Limit(1).IDs(setContextOp(ctx, paq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{paymentattempt.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (paq *PaymentAttemptQuery) FirstIDX(ctx context.Context) string {
	id, err := paq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PaymentAttempt entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PaymentAttempt entity is found.
// Returns a *NotFoundError when no PaymentAttempt entities are found.
func (paq *PaymentAttemptQuery) Only(ctx context.Context) (*PaymentAttempt, error) {
	nodes, err := paq.Limit(2).All(setContextOp(ctx, paq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{paymentattempt.Label}
	default:
		return nil, &NotSingularError{paymentattempt.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (paq *PaymentAttemptQuery) OnlyX(ctx context.Context) *PaymentAttempt {
	node, err := paq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PaymentAttempt ID in the query.
// Returns a *NotSingularError when more than one PaymentAttempt ID is found.
// Returns a *NotFoundError when no entities are found.
func (paq *PaymentAttemptQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = paq.Limit(2).IDs(setContextOp(ctx, paq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{paymentattempt.Label}
	default:
		err = &NotSingularError{paymentattempt.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (paq *PaymentAttemptQuery) OnlyIDX(ctx context.Context) string {
	id, err := paq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PaymentAttempts.
func (paq *PaymentAttemptQuery) All(ctx context.Context) ([]*PaymentAttempt, error) {
	ctx = setContextOp(ctx, paq.ctx, ent.OpQueryAll)
	if err := paq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PaymentAttempt, *PaymentAttemptQuery]()
	return withInterceptors[[]*PaymentAttempt](ctx, paq, qr, paq.inters)
}

// AllX is like All, but panics if an error occurs.
func (paq *PaymentAttemptQuery) AllX(ctx context.Context) []*PaymentAttempt {
	nodes, err := paq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PaymentAttempt IDs.
func (paq *PaymentAttemptQuery) IDs(ctx context.Context) (ids []string, err error) {
	if paq.ctx.Unique == nil && paq.path != nil {
		paq.Unique(true)
	}
	ctx = setContextOp(ctx, paq.ctx, ent.OpQueryIDs)
	if err = paq.Select(paymentattempt.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (paq *PaymentAttemptQuery) IDsX(ctx context.Context) []string {
	ids, err := paq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (paq *PaymentAttemptQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, paq.ctx, ent.OpQueryCount)
	if err := paq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, paq, querierCount[*PaymentAttemptQuery](), paq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (paq *PaymentAttemptQuery) CountX(ctx context.Context) int {
	count, err := paq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (paq *PaymentAttemptQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, paq.ctx, ent.OpQueryExist)
	switch _, err := paq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (paq *PaymentAttemptQuery) ExistX(ctx context.Context) bool {
	exist, err := paq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PaymentAttemptQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (paq *PaymentAttemptQuery) Clone() *PaymentAttemptQuery {
	if paq == nil {
		return nil
	}
	return &PaymentAttemptQuery{
		config:      paq.config,
		ctx:         paq.ctx.Clone(),
		order:       append([]paymentattempt.OrderOption{}, paq.order...),
		inters:      append([]Interceptor{}, paq.inters...),
		predicates:  append([]predicate.PaymentAttempt{}, paq.predicates...),
		withPayment: paq.withPayment.Clone(),
		// clone intermediate query.
		sql:  paq.sql.Clone(),
		path: paq.path,
	}
}

// WithPayment tells the query-builder to eager-load the nodes that are connected to
// the "payment" edge. The optional arguments are used to configure the query builder of the edge.
func (paq *PaymentAttemptQuery) WithPayment(opts ...func(*PaymentQuery)) *PaymentAttemptQuery {
	query := (&PaymentClient{config: paq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	paq.withPayment = query
	return paq
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
//	client.PaymentAttempt.Query().
//		GroupBy(paymentattempt.FieldTenantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (paq *PaymentAttemptQuery) GroupBy(field string, fields ...string) *PaymentAttemptGroupBy {
	paq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PaymentAttemptGroupBy{build: paq}
	grbuild.flds = &paq.ctx.Fields
	grbuild.label = paymentattempt.Label
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
//	client.PaymentAttempt.Query().
//		Select(paymentattempt.FieldTenantID).
//		Scan(ctx, &v)
func (paq *PaymentAttemptQuery) Select(fields ...string) *PaymentAttemptSelect {
	paq.ctx.Fields = append(paq.ctx.Fields, fields...)
	sbuild := &PaymentAttemptSelect{PaymentAttemptQuery: paq}
	sbuild.label = paymentattempt.Label
	sbuild.flds, sbuild.scan = &paq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PaymentAttemptSelect configured with the given aggregations.
func (paq *PaymentAttemptQuery) Aggregate(fns ...AggregateFunc) *PaymentAttemptSelect {
	return paq.Select().Aggregate(fns...)
}

func (paq *PaymentAttemptQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range paq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, paq); err != nil {
				return err
			}
		}
	}
	for _, f := range paq.ctx.Fields {
		if !paymentattempt.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if paq.path != nil {
		prev, err := paq.path(ctx)
		if err != nil {
			return err
		}
		paq.sql = prev
	}
	return nil
}

func (paq *PaymentAttemptQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PaymentAttempt, error) {
	var (
		nodes       = []*PaymentAttempt{}
		_spec       = paq.querySpec()
		loadedTypes = [1]bool{
			paq.withPayment != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PaymentAttempt).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PaymentAttempt{config: paq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, paq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := paq.withPayment; query != nil {
		if err := paq.loadPayment(ctx, query, nodes, nil,
			func(n *PaymentAttempt, e *Payment) { n.Edges.Payment = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (paq *PaymentAttemptQuery) loadPayment(ctx context.Context, query *PaymentQuery, nodes []*PaymentAttempt, init func(*PaymentAttempt), assign func(*PaymentAttempt, *Payment)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*PaymentAttempt)
	for i := range nodes {
		fk := nodes[i].PaymentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(payment.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "payment_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (paq *PaymentAttemptQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := paq.querySpec()
	_spec.Node.Columns = paq.ctx.Fields
	if len(paq.ctx.Fields) > 0 {
		_spec.Unique = paq.ctx.Unique != nil && *paq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, paq.driver, _spec)
}

func (paq *PaymentAttemptQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(paymentattempt.Table, paymentattempt.Columns, sqlgraph.NewFieldSpec(paymentattempt.FieldID, field.TypeString))
	_spec.From = paq.sql
	if unique := paq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if paq.path != nil {
		_spec.Unique = true
	}
	if fields := paq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymentattempt.FieldID)
		for i := range fields {
			if fields[i] != paymentattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if paq.withPayment != nil {
			_spec.Node.AddColumnOnce(paymentattempt.FieldPaymentID)
		}
	}
	if ps := paq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := paq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := paq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := paq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (paq *PaymentAttemptQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(paq.driver.Dialect())
	t1 := builder.Table(paymentattempt.Table)
	columns := paq.ctx.Fields
	if len(columns) == 0 {
		columns = paymentattempt.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if paq.sql != nil {
		selector = paq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if paq.ctx.Unique != nil && *paq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range paq.predicates {
		p(selector)
	}
	for _, p := range paq.order {
		p(selector)
	}
	if offset := paq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := paq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PaymentAttemptGroupBy is the group-by builder for PaymentAttempt entities.
type PaymentAttemptGroupBy struct {
	selector
	build *PaymentAttemptQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (pagb *PaymentAttemptGroupBy) Aggregate(fns ...AggregateFunc) *PaymentAttemptGroupBy {
	pagb.fns = append(pagb.fns, fns...)
	return pagb
}

// Scan applies the selector query and scans the result into the given value.
func (pagb *PaymentAttemptGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pagb.build.ctx, ent.OpQueryGroupBy)
	if err := pagb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PaymentAttemptQuery, *PaymentAttemptGroupBy](ctx, pagb.build, pagb, pagb.build.inters, v)
}

func (pagb *PaymentAttemptGroupBy) sqlScan(ctx context.Context, root *PaymentAttemptQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(pagb.fns))
	for _, fn := range pagb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*pagb.flds)+len(pagb.fns))
		for _, f := range *pagb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*pagb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pagb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PaymentAttemptSelect is the builder for selecting fields of PaymentAttempt entities.
type PaymentAttemptSelect struct {
	*PaymentAttemptQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (pas *PaymentAttemptSelect) Aggregate(fns ...AggregateFunc) *PaymentAttemptSelect {
	pas.fns = append(pas.fns, fns...)
	return pas
}

// Scan applies the selector query and scans the result into the given value.
func (pas *PaymentAttemptSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pas.ctx, ent.OpQuerySelect)
	if err := pas.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PaymentAttemptQuery, *PaymentAttemptSelect](ctx, pas.PaymentAttemptQuery, pas, pas.inters, v)
}

func (pas *PaymentAttemptSelect) sqlScan(ctx context.Context, root *PaymentAttemptQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(pas.fns))
	for _, fn := range pas.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*pas.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pas.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

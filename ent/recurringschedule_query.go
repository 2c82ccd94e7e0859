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
	"github.com/invoiceflow/invoiceflow/ent/auditlog"
	"github.com/invoiceflow/invoiceflow/ent/customer"
	"github.com/invoiceflow/invoiceflow/ent/predicate"
	"github.com/invoiceflow/invoiceflow/ent/recurringschedule"
	"github.com/invoiceflow/invoiceflow/ent/scheduleexecution"
)

// RecurringScheduleQuery is the builder for querying RecurringSchedule entities.
type RecurringScheduleQuery struct {
	config
	ctx            *QueryContext
	order          []recurringschedule.OrderOption
	inters         []Interceptor
	predicates     []predicate.RecurringSchedule
	withCustomer   *CustomerQuery
	withExecutions *ScheduleExecutionQuery
	withAuditLogs  *AuditLogQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RecurringScheduleQuery builder.
func (rsq *RecurringScheduleQuery) Where(ps ...predicate.RecurringSchedule) *RecurringScheduleQuery {
	rsq.predicates = append(rsq.predicates, ps...)
	return rsq
}

// Limit the number of records to be returned by this query.
func (rsq *RecurringScheduleQuery) Limit(limit int) *RecurringScheduleQuery {
	rsq.ctx.Limit = &limit
	return rsq
}

// Offset to start from.
func (rsq *RecurringScheduleQuery) Offset(offset int) *RecurringScheduleQuery {
	rsq.ctx.Offset = &offset
	return rsq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (rsq *RecurringScheduleQuery) Unique(unique bool) *RecurringScheduleQuery {
	rsq.ctx.Unique = &unique
	return rsq
}

// Order specifies how the records should be ordered.
func (rsq *RecurringScheduleQuery) Order(o ...recurringschedule.OrderOption) *RecurringScheduleQuery {
	rsq.order = append(rsq.order, o...)
	return rsq
}

// QueryCustomer chains the current query on the "customer" edge.
func (rsq *RecurringScheduleQuery) QueryCustomer() *CustomerQuery {
	query := (&CustomerClient{config: rsq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := rsq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := rsq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recurringschedule.Table, recurringschedule.FieldID, selector),
			sqlgraph.To(customer.Table, customer.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recurringschedule.CustomerTable, recurringschedule.CustomerColumn),
		)
		fromU = sqlgraph.SetNeighbors(rsq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExecutions chains the current query on the "executions" edge.
func (rsq *RecurringScheduleQuery) QueryExecutions() *ScheduleExecutionQuery {
	query := (&ScheduleExecutionClient{config: rsq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := rsq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := rsq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recurringschedule.Table, recurringschedule.FieldID, selector),
			sqlgraph.To(scheduleexecution.Table, scheduleexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, recurringschedule.ExecutionsTable, recurringschedule.ExecutionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(rsq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAuditLogs chains the current query on the "audit_logs" edge.
func (rsq *RecurringScheduleQuery) QueryAuditLogs() *AuditLogQuery {
	query := (&AuditLogClient{config: rsq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := rsq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := rsq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recurringschedule.Table, recurringschedule.FieldID, selector),
			sqlgraph.To(auditlog.Table, auditlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, recurringschedule.AuditLogsTable, recurringschedule.AuditLogsColumn),
		)
		fromU = sqlgraph.SetNeighbors(rsq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first RecurringSchedule entity from the query.
// Returns a *NotFoundError when no RecurringSchedule was found.
func (rsq *RecurringScheduleQuery) First(ctx context.Context) (*RecurringSchedule, error) {
	nodes, err := rsq.Limit(1).All(setContextOp(ctx, rsq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{recurringschedule.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (rsq *RecurringScheduleQuery) FirstX(ctx context.Context) *RecurringSchedule {
	node, err := rsq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first RecurringSchedule ID from the query.
// Returns a *NotFoundError when no RecurringSchedule ID was found.
func (rsq *RecurringScheduleQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = rsq.Limit(1).IDs(setContextOp(ctx, rsq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{recurringschedule.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (rsq *RecurringScheduleQuery) FirstIDX(ctx context.Context) string {
	id, err := rsq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single RecurringSchedule entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one RecurringSchedule entity is found.
// Returns a *NotFoundError when no RecurringSchedule entities are found.
func (rsq *RecurringScheduleQuery) Only(ctx context.Context) (*RecurringSchedule, error) {
	nodes, err := rsq.Limit(2).All(setContextOp(ctx, rsq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{recurringschedule.Label}
	default:
		return nil, &NotSingularError{recurringschedule.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (rsq *RecurringScheduleQuery) OnlyX(ctx context.Context) *RecurringSchedule {
	node, err := rsq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only RecurringSchedule ID in the query.
// Returns a *NotSingularError when more than one RecurringSchedule ID is found.
// Returns a *NotFoundError when no entities are found.
func (rsq *RecurringScheduleQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = rsq.Limit(2).IDs(setContextOp(ctx, rsq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{recurringschedule.Label}
	default:
		err = &NotSingularError{recurringschedule.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (rsq *RecurringScheduleQuery) OnlyIDX(ctx context.Context) string {
	id, err := rsq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of RecurringSchedules.
func (rsq *RecurringScheduleQuery) All(ctx context.Context) ([]*RecurringSchedule, error) {
	ctx = setContextOp(ctx, rsq.ctx, ent.OpQueryAll)
	if err := rsq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*RecurringSchedule, *RecurringScheduleQuery]()
	return withInterceptors[[]*RecurringSchedule](ctx, rsq, qr, rsq.inters)
}

// AllX is like All, but panics if an error occurs.
func (rsq *RecurringScheduleQuery) AllX(ctx context.Context) []*RecurringSchedule {
	nodes, err := rsq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of RecurringSchedule IDs.
func (rsq *RecurringScheduleQuery) IDs(ctx context.Context) (ids []string, err error) {
	if rsq.ctx.Unique == nil && rsq.path != nil {
		rsq.Unique(true)
	}
	ctx = setContextOp(ctx, rsq.ctx, ent.OpQueryIDs)
	if err = rsq.Select(recurringschedule.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (rsq *RecurringScheduleQuery) IDsX(ctx context.Context) []string {
	ids, err := rsq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (rsq *RecurringScheduleQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, rsq.ctx, ent.OpQueryCount)
	if err := rsq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, rsq, querierCount[*RecurringScheduleQuery](), rsq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (rsq *RecurringScheduleQuery) CountX(ctx context.Context) int {
	count, err := rsq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (rsq *RecurringScheduleQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, rsq.ctx, ent.OpQueryExist)
	switch _, err := rsq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (rsq *RecurringScheduleQuery) ExistX(ctx context.Context) bool {
	exist, err := rsq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RecurringScheduleQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (rsq *RecurringScheduleQuery) Clone() *RecurringScheduleQuery {
	if rsq == nil {
		return nil
	}
	return &RecurringScheduleQuery{
		config:         rsq.config,
		ctx:            rsq.ctx.Clone(),
		order:          append([]recurringschedule.OrderOption{}, rsq.order...),
		inters:         append([]Interceptor{}, rsq.inters...),
		predicates:     append([]predicate.RecurringSchedule{}, rsq.predicates...),
		withCustomer:   rsq.withCustomer.Clone(),
		withExecutions: rsq.withExecutions.Clone(),
		withAuditLogs:  rsq.withAuditLogs.Clone(),
		// clone intermediate query.
		sql:  rsq.sql.Clone(),
		path: rsq.path,
	}
}

// WithCustomer tells the query-builder to eager-load the nodes that are connected to
// the "customer" edge. The optional arguments are used to configure the query builder of the edge.
func (rsq *RecurringScheduleQuery) WithCustomer(opts ...func(*CustomerQuery)) *RecurringScheduleQuery {
	query := (&CustomerClient{config: rsq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	rsq.withCustomer = query
	return rsq
}

// WithExecutions tells the query-builder to eager-load the nodes that are connected to
// the "executions" edge. The optional arguments are used to configure the query builder of the edge.
func (rsq *RecurringScheduleQuery) WithExecutions(opts ...func(*ScheduleExecutionQuery)) *RecurringScheduleQuery {
	query := (&ScheduleExecutionClient{config: rsq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	rsq.withExecutions = query
	return rsq
}

// WithAuditLogs tells the query-builder to eager-load the nodes that are connected to
// the "audit_logs" edge. The optional arguments are used to configure the query builder of the edge.
func (rsq *RecurringScheduleQuery) WithAuditLogs(opts ...func(*AuditLogQuery)) *RecurringScheduleQuery {
	query := (&AuditLogClient{config: rsq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	rsq.withAuditLogs = query
	return rsq
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
//	client.RecurringSchedule.Query().
//		GroupBy(recurringschedule.FieldTenantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (rsq *RecurringScheduleQuery) GroupBy(field string, fields ...string) *RecurringScheduleGroupBy {
	rsq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RecurringScheduleGroupBy{build: rsq}
	grbuild.flds = &rsq.ctx.Fields
	grbuild.label = recurringschedule.Label
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
//	client.RecurringSchedule.Query().
//		Select(recurringschedule.FieldTenantID).
//		Scan(ctx, &v)
func (rsq *RecurringScheduleQuery) Select(fields ...string) *RecurringScheduleSelect {
	rsq.ctx.Fields = append(rsq.ctx.Fields, fields...)
	sbuild := &RecurringScheduleSelect{RecurringScheduleQuery: rsq}
	sbuild.label = recurringschedule.Label
	sbuild.flds, sbuild.scan = &rsq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RecurringScheduleSelect configured with the given aggregations.
func (rsq *RecurringScheduleQuery) Aggregate(fns ...AggregateFunc) *RecurringScheduleSelect {
	return rsq.Select().Aggregate(fns...)
}

func (rsq *RecurringScheduleQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range rsq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, rsq); err != nil {
				return err
			}
		}
	}
	for _, f := range rsq.ctx.Fields {
		if !recurringschedule.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if rsq.path != nil {
		prev, err := rsq.path(ctx)
		if err != nil {
			return err
		}
		rsq.sql = prev
	}
	return nil
}

func (rsq *RecurringScheduleQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*RecurringSchedule, error) {
	var (
		nodes       = []*RecurringSchedule{}
		_spec       = rsq.querySpec()
		loadedTypes = [3]bool{
			rsq.withCustomer != nil,
			rsq.withExecutions != nil,
			rsq.withAuditLogs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*RecurringSchedule).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &RecurringSchedule{config: rsq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, rsq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := rsq.withCustomer; query != nil {
		if err := rsq.loadCustomer(ctx, query, nodes, nil,
			func(n *RecurringSchedule, e *Customer) { n.Edges.Customer = e }); err != nil {
			return nil, err
		}
	}
	if query := rsq.withExecutions; query != nil {
		if err := rsq.loadExecutions(ctx, query, nodes,
			func(n *RecurringSchedule) { n.Edges.Executions = []*ScheduleExecution{} },
			func(n *RecurringSchedule, e *ScheduleExecution) { n.Edges.Executions = append(n.Edges.Executions, e) }); err != nil {
			return nil, err
		}
	}
	if query := rsq.withAuditLogs; query != nil {
		if err := rsq.loadAuditLogs(ctx, query, nodes,
			func(n *RecurringSchedule) { n.Edges.AuditLogs = []*AuditLog{} },
			func(n *RecurringSchedule, e *AuditLog) { n.Edges.AuditLogs = append(n.Edges.AuditLogs, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (rsq *RecurringScheduleQuery) loadCustomer(ctx context.Context, query *CustomerQuery, nodes []*RecurringSchedule, init func(*RecurringSchedule), assign func(*RecurringSchedule, *Customer)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*RecurringSchedule)
	for i := range nodes {
		fk := nodes[i].CustomerID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(customer.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "customer_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (rsq *RecurringScheduleQuery) loadExecutions(ctx context.Context, query *ScheduleExecutionQuery, nodes []*RecurringSchedule, init func(*RecurringSchedule), assign func(*RecurringSchedule, *ScheduleExecution)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*RecurringSchedule)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(scheduleexecution.FieldScheduleID)
	}
	query.Where(predicate.ScheduleExecution(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(recurringschedule.ExecutionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ScheduleID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "schedule_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (rsq *RecurringScheduleQuery) loadAuditLogs(ctx context.Context, query *AuditLogQuery, nodes []*RecurringSchedule, init func(*RecurringSchedule), assign func(*RecurringSchedule, *AuditLog)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*RecurringSchedule)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(auditlog.FieldScheduleID)
	}
	query.Where(predicate.AuditLog(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(recurringschedule.AuditLogsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ScheduleID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "schedule_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (rsq *RecurringScheduleQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := rsq.querySpec()
	_spec.Node.Columns = rsq.ctx.Fields
	if len(rsq.ctx.Fields) > 0 {
		_spec.Unique = rsq.ctx.Unique != nil && *rsq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, rsq.driver, _spec)
}

func (rsq *RecurringScheduleQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(recurringschedule.Table, recurringschedule.Columns, sqlgraph.NewFieldSpec(recurringschedule.FieldID, field.TypeString))
	_spec.From = rsq.sql
	if unique := rsq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if rsq.path != nil {
		_spec.Unique = true
	}
	if fields := rsq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recurringschedule.FieldID)
		for i := range fields {
			if fields[i] != recurringschedule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if rsq.withCustomer != nil {
			_spec.Node.AddColumnOnce(recurringschedule.FieldCustomerID)
		}
	}
	if ps := rsq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := rsq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := rsq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := rsq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (rsq *RecurringScheduleQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(rsq.driver.Dialect())
	t1 := builder.Table(recurringschedule.Table)
	columns := rsq.ctx.Fields
	if len(columns) == 0 {
		columns = recurringschedule.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if rsq.sql != nil {
		selector = rsq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if rsq.ctx.Unique != nil && *rsq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range rsq.predicates {
		p(selector)
	}
	for _, p := range rsq.order {
		p(selector)
	}
	if offset := rsq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := rsq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// RecurringScheduleGroupBy is the group-by builder for RecurringSchedule entities.
type RecurringScheduleGroupBy struct {
	selector
	build *RecurringScheduleQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (rsgb *RecurringScheduleGroupBy) Aggregate(fns ...AggregateFunc) *RecurringScheduleGroupBy {
	rsgb.fns = append(rsgb.fns, fns...)
	return rsgb
}

// Scan applies the selector query and scans the result into the given value.
func (rsgb *RecurringScheduleGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rsgb.build.ctx, ent.OpQueryGroupBy)
	if err := rsgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecurringScheduleQuery, *RecurringScheduleGroupBy](ctx, rsgb.build, rsgb, rsgb.build.inters, v)
}

func (rsgb *RecurringScheduleGroupBy) sqlScan(ctx context.Context, root *RecurringScheduleQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(rsgb.fns))
	for _, fn := range rsgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*rsgb.flds)+len(rsgb.fns))
		for _, f := range *rsgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*rsgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rsgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// RecurringScheduleSelect is the builder for selecting fields of RecurringSchedule entities.
type RecurringScheduleSelect struct {
	*RecurringScheduleQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (rss *RecurringScheduleSelect) Aggregate(fns ...AggregateFunc) *RecurringScheduleSelect {
	rss.fns = append(rss.fns, fns...)
	return rss
}

// Scan applies the selector query and scans the result into the given value.
func (rss *RecurringScheduleSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rss.ctx, ent.OpQuerySelect)
	if err := rss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecurringScheduleQuery, *RecurringScheduleSelect](ctx, rss.RecurringScheduleQuery, rss, rss.inters, v)
}

func (rss *RecurringScheduleSelect) sqlScan(ctx context.Context, root *RecurringScheduleQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(rss.fns))
	for _, fn := range rss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*rss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

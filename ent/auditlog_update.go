// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/invoiceflow/invoiceflow/ent/auditlog"
	"github.com/invoiceflow/invoiceflow/ent/predicate"
)

// AuditLogUpdate is the builder for updating AuditLog entities.
type AuditLogUpdate struct {
	config
	hooks    []Hook
	mutation *AuditLogMutation
}

// Where appends a list predicates to the AuditLogUpdate builder.
func (alu *AuditLogUpdate) Where(ps ...predicate.AuditLog) *AuditLogUpdate {
	alu.mutation.Where(ps...)
	return alu
}

// SetStatus sets the "status" field.
func (alu *AuditLogUpdate) SetStatus(s string) *AuditLogUpdate {
	alu.mutation.SetStatus(s)
	return alu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (alu *AuditLogUpdate) SetNillableStatus(s *string) *AuditLogUpdate {
	if s != nil {
		alu.SetStatus(*s)
	}
	return alu
}

// SetUpdatedAt sets the "updated_at" field.
func (alu *AuditLogUpdate) SetUpdatedAt(t time.Time) *AuditLogUpdate {
	alu.mutation.SetUpdatedAt(t)
	return alu
}

// SetUpdatedBy sets the "updated_by" field.
func (alu *AuditLogUpdate) SetUpdatedBy(s string) *AuditLogUpdate {
	alu.mutation.SetUpdatedBy(s)
	return alu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (alu *AuditLogUpdate) SetNillableUpdatedBy(s *string) *AuditLogUpdate {
	if s != nil {
		alu.SetUpdatedBy(*s)
	}
	return alu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (alu *AuditLogUpdate) ClearUpdatedBy() *AuditLogUpdate {
	alu.mutation.ClearUpdatedBy()
	return alu
}

// Mutation returns the AuditLogMutation object of the builder.
func (alu *AuditLogUpdate) Mutation() *AuditLogMutation {
	return alu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (alu *AuditLogUpdate) Save(ctx context.Context) (int, error) {
	alu.defaults()
	return withHooks(ctx, alu.sqlSave, alu.mutation, alu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (alu *AuditLogUpdate) SaveX(ctx context.Context) int {
	affected, err := alu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (alu *AuditLogUpdate) Exec(ctx context.Context) error {
	_, err := alu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (alu *AuditLogUpdate) ExecX(ctx context.Context) {
	if err := alu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (alu *AuditLogUpdate) defaults() {
	if _, ok := alu.mutation.UpdatedAt(); !ok {
		v := auditlog.UpdateDefaultUpdatedAt()
		alu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (alu *AuditLogUpdate) check() error {
	if alu.mutation.ScheduleCleared() && len(alu.mutation.ScheduleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditLog.schedule"`)
	}
	return nil
}

func (alu *AuditLogUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := alu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditlog.Table, auditlog.Columns, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString))
	if ps := alu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := alu.mutation.Status(); ok {
		_spec.SetField(auditlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := alu.mutation.UpdatedAt(); ok {
		_spec.SetField(auditlog.FieldUpdatedAt, field.TypeTime, value)
	}
	if alu.mutation.CreatedByCleared() {
		_spec.ClearField(auditlog.FieldCreatedBy, field.TypeString)
	}
	if value, ok := alu.mutation.UpdatedBy(); ok {
		_spec.SetField(auditlog.FieldUpdatedBy, field.TypeString, value)
	}
	if alu.mutation.UpdatedByCleared() {
		_spec.ClearField(auditlog.FieldUpdatedBy, field.TypeString)
	}
	if alu.mutation.DescriptionCleared() {
		_spec.ClearField(auditlog.FieldDescription, field.TypeString)
	}
	if alu.mutation.InvoiceIDCleared() {
		_spec.ClearField(auditlog.FieldInvoiceID, field.TypeString)
	}
	if alu.mutation.ExecutionIDCleared() {
		_spec.ClearField(auditlog.FieldExecutionID, field.TypeString)
	}
	if alu.mutation.PaymentIDCleared() {
		_spec.ClearField(auditlog.FieldPaymentID, field.TypeString)
	}
	if alu.mutation.OldValuesCleared() {
		_spec.ClearField(auditlog.FieldOldValues, field.TypeJSON)
	}
	if alu.mutation.NewValuesCleared() {
		_spec.ClearField(auditlog.FieldNewValues, field.TypeJSON)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, alu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	alu.mutation.done = true
	return n, nil
}

// AuditLogUpdateOne is the builder for updating a single AuditLog entity.
type AuditLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditLogMutation
}

// SetStatus sets the "status" field.
func (aluo *AuditLogUpdateOne) SetStatus(s string) *AuditLogUpdateOne {
	aluo.mutation.SetStatus(s)
	return aluo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (aluo *AuditLogUpdateOne) SetNillableStatus(s *string) *AuditLogUpdateOne {
	if s != nil {
		aluo.SetStatus(*s)
	}
	return aluo
}

// SetUpdatedAt sets the "updated_at" field.
func (aluo *AuditLogUpdateOne) SetUpdatedAt(t time.Time) *AuditLogUpdateOne {
	aluo.mutation.SetUpdatedAt(t)
	return aluo
}

// SetUpdatedBy sets the "updated_by" field.
func (aluo *AuditLogUpdateOne) SetUpdatedBy(s string) *AuditLogUpdateOne {
	aluo.mutation.SetUpdatedBy(s)
	return aluo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (aluo *AuditLogUpdateOne) SetNillableUpdatedBy(s *string) *AuditLogUpdateOne {
	if s != nil {
		aluo.SetUpdatedBy(*s)
	}
	return aluo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (aluo *AuditLogUpdateOne) ClearUpdatedBy() *AuditLogUpdateOne {
	aluo.mutation.ClearUpdatedBy()
	return aluo
}

// Mutation returns the AuditLogMutation object of the builder.
func (aluo *AuditLogUpdateOne) Mutation() *AuditLogMutation {
	return aluo.mutation
}

// Where appends a list predicates to the AuditLogUpdate builder.
func (aluo *AuditLogUpdateOne) Where(ps ...predicate.AuditLog) *AuditLogUpdateOne {
	aluo.mutation.Where(ps...)
	return aluo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aluo *AuditLogUpdateOne) Select(field string, fields ...string) *AuditLogUpdateOne {
	aluo.fields = append([]string{field}, fields...)
	return aluo
}

// Save executes the query and returns the updated AuditLog entity.
func (aluo *AuditLogUpdateOne) Save(ctx context.Context) (*AuditLog, error) {
	aluo.defaults()
	return withHooks(ctx, aluo.sqlSave, aluo.mutation, aluo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aluo *AuditLogUpdateOne) SaveX(ctx context.Context) *AuditLog {
	node, err := aluo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aluo *AuditLogUpdateOne) Exec(ctx context.Context) error {
	_, err := aluo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aluo *AuditLogUpdateOne) ExecX(ctx context.Context) {
	if err := aluo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aluo *AuditLogUpdateOne) defaults() {
	if _, ok := aluo.mutation.UpdatedAt(); !ok {
		v := auditlog.UpdateDefaultUpdatedAt()
		aluo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aluo *AuditLogUpdateOne) check() error {
	if aluo.mutation.ScheduleCleared() && len(aluo.mutation.ScheduleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditLog.schedule"`)
	}
	return nil
}

func (aluo *AuditLogUpdateOne) sqlSave(ctx context.Context) (_node *AuditLog, err error) {
	if err := aluo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditlog.Table, auditlog.Columns, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString))
	id, ok := aluo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aluo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditlog.FieldID)
		for _, f := range fields {
			if !auditlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aluo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aluo.mutation.Status(); ok {
		_spec.SetField(auditlog.FieldStatus, field.TypeString, value)
	}
	if value, ok := aluo.mutation.UpdatedAt(); ok {
		_spec.SetField(auditlog.FieldUpdatedAt, field.TypeTime, value)
	}
	if aluo.mutation.CreatedByCleared() {
		_spec.ClearField(auditlog.FieldCreatedBy, field.TypeString)
	}
	if value, ok := aluo.mutation.UpdatedBy(); ok {
		_spec.SetField(auditlog.FieldUpdatedBy, field.TypeString, value)
	}
	if aluo.mutation.UpdatedByCleared() {
		_spec.ClearField(auditlog.FieldUpdatedBy, field.TypeString)
	}
	if aluo.mutation.DescriptionCleared() {
		_spec.ClearField(auditlog.FieldDescription, field.TypeString)
	}
	if aluo.mutation.InvoiceIDCleared() {
		_spec.ClearField(auditlog.FieldInvoiceID, field.TypeString)
	}
	if aluo.mutation.ExecutionIDCleared() {
		_spec.ClearField(auditlog.FieldExecutionID, field.TypeString)
	}
	if aluo.mutation.PaymentIDCleared() {
		_spec.ClearField(auditlog.FieldPaymentID, field.TypeString)
	}
	if aluo.mutation.OldValuesCleared() {
		_spec.ClearField(auditlog.FieldOldValues, field.TypeJSON)
	}
	if aluo.mutation.NewValuesCleared() {
		_spec.ClearField(auditlog.FieldNewValues, field.TypeJSON)
	}
	_node = &AuditLog{config: aluo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aluo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aluo.mutation.done = true
	return _node, nil
}

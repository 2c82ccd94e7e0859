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
	"github.com/invoiceflow/invoiceflow/ent/predicate"
	"github.com/invoiceflow/invoiceflow/ent/scheduleexecution"
	"github.com/shopspring/decimal"
)

// ScheduleExecutionUpdate is the builder for updating ScheduleExecution entities.
type ScheduleExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleExecutionMutation
}

// Where appends a list predicates to the ScheduleExecutionUpdate builder.
func (seu *ScheduleExecutionUpdate) Where(ps ...predicate.ScheduleExecution) *ScheduleExecutionUpdate {
	seu.mutation.Where(ps...)
	return seu
}

// SetStatus sets the "status" field.
func (seu *ScheduleExecutionUpdate) SetStatus(s string) *ScheduleExecutionUpdate {
	seu.mutation.SetStatus(s)
	return seu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (seu *ScheduleExecutionUpdate) SetNillableStatus(s *string) *ScheduleExecutionUpdate {
	if s != nil {
		seu.SetStatus(*s)
	}
	return seu
}

// SetUpdatedAt sets the "updated_at" field.
func (seu *ScheduleExecutionUpdate) SetUpdatedAt(t time.Time) *ScheduleExecutionUpdate {
	seu.mutation.SetUpdatedAt(t)
	return seu
}

// SetUpdatedBy sets the "updated_by" field.
func (seu *ScheduleExecutionUpdate) SetUpdatedBy(s string) *ScheduleExecutionUpdate {
	seu.mutation.SetUpdatedBy(s)
	return seu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (seu *ScheduleExecutionUpdate) SetNillableUpdatedBy(s *string) *ScheduleExecutionUpdate {
	if s != nil {
		seu.SetUpdatedBy(*s)
	}
	return seu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (seu *ScheduleExecutionUpdate) ClearUpdatedBy() *ScheduleExecutionUpdate {
	seu.mutation.ClearUpdatedBy()
	return seu
}

// SetPeriodStart sets the "period_start" field.
func (seu *ScheduleExecutionUpdate) SetPeriodStart(t time.Time) *ScheduleExecutionUpdate {
	seu.mutation.SetPeriodStart(t)
	return seu
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (seu *ScheduleExecutionUpdate) SetNillablePeriodStart(t *time.Time) *ScheduleExecutionUpdate {
	if t != nil {
		seu.SetPeriodStart(*t)
	}
	return seu
}

// SetPeriodEnd sets the "period_end" field.
func (seu *ScheduleExecutionUpdate) SetPeriodEnd(t time.Time) *ScheduleExecutionUpdate {
	seu.mutation.SetPeriodEnd(t)
	return seu
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (seu *ScheduleExecutionUpdate) SetNillablePeriodEnd(t *time.Time) *ScheduleExecutionUpdate {
	if t != nil {
		seu.SetPeriodEnd(*t)
	}
	return seu
}

// SetExecutionStatus sets the "execution_status" field.
func (seu *ScheduleExecutionUpdate) SetExecutionStatus(s string) *ScheduleExecutionUpdate {
	seu.mutation.SetExecutionStatus(s)
	return seu
}

// SetNillableExecutionStatus sets the "execution_status" field if the given value is not nil.
func (seu *ScheduleExecutionUpdate) SetNillableExecutionStatus(s *string) *ScheduleExecutionUpdate {
	if s != nil {
		seu.SetExecutionStatus(*s)
	}
	return seu
}

// SetInvoiceID sets the "invoice_id" field.
func (seu *ScheduleExecutionUpdate) SetInvoiceID(s string) *ScheduleExecutionUpdate {
	seu.mutation.SetInvoiceID(s)
	return seu
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (seu *ScheduleExecutionUpdate) SetNillableInvoiceID(s *string) *ScheduleExecutionUpdate {
	if s != nil {
		seu.SetInvoiceID(*s)
	}
	return seu
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (seu *ScheduleExecutionUpdate) ClearInvoiceID() *ScheduleExecutionUpdate {
	seu.mutation.ClearInvoiceID()
	return seu
}

// SetAmountGenerated sets the "amount_generated" field.
func (seu *ScheduleExecutionUpdate) SetAmountGenerated(d decimal.Decimal) *ScheduleExecutionUpdate {
	seu.mutation.SetAmountGenerated(d)
	return seu
}

// SetNillableAmountGenerated sets the "amount_generated" field if the given value is not nil.
func (seu *ScheduleExecutionUpdate) SetNillableAmountGenerated(d *decimal.Decimal) *ScheduleExecutionUpdate {
	if d != nil {
		seu.SetAmountGenerated(*d)
	}
	return seu
}

// SetProratedAmount sets the "prorated_amount" field.
func (seu *ScheduleExecutionUpdate) SetProratedAmount(d decimal.Decimal) *ScheduleExecutionUpdate {
	seu.mutation.SetProratedAmount(d)
	return seu
}

// SetNillableProratedAmount sets the "prorated_amount" field if the given value is not nil.
func (seu *ScheduleExecutionUpdate) SetNillableProratedAmount(d *decimal.Decimal) *ScheduleExecutionUpdate {
	if d != nil {
		seu.SetProratedAmount(*d)
	}
	return seu
}

// SetErrorMessage sets the "error_message" field.
func (seu *ScheduleExecutionUpdate) SetErrorMessage(s string) *ScheduleExecutionUpdate {
	seu.mutation.SetErrorMessage(s)
	return seu
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (seu *ScheduleExecutionUpdate) SetNillableErrorMessage(s *string) *ScheduleExecutionUpdate {
	if s != nil {
		seu.SetErrorMessage(*s)
	}
	return seu
}

// ClearErrorMessage clears the value of the "error_message" field.
func (seu *ScheduleExecutionUpdate) ClearErrorMessage() *ScheduleExecutionUpdate {
	seu.mutation.ClearErrorMessage()
	return seu
}

// Mutation returns the ScheduleExecutionMutation object of the builder.
func (seu *ScheduleExecutionUpdate) Mutation() *ScheduleExecutionMutation {
	return seu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (seu *ScheduleExecutionUpdate) Save(ctx context.Context) (int, error) {
	seu.defaults()
	return withHooks(ctx, seu.sqlSave, seu.mutation, seu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seu *ScheduleExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := seu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (seu *ScheduleExecutionUpdate) Exec(ctx context.Context) error {
	_, err := seu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seu *ScheduleExecutionUpdate) ExecX(ctx context.Context) {
	if err := seu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (seu *ScheduleExecutionUpdate) defaults() {
	if _, ok := seu.mutation.UpdatedAt(); !ok {
		v := scheduleexecution.UpdateDefaultUpdatedAt()
		seu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seu *ScheduleExecutionUpdate) check() error {
	if v, ok := seu.mutation.ExecutionStatus(); ok {
		if err := scheduleexecution.ExecutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "execution_status", err: fmt.Errorf(`ent: validator failed for field "ScheduleExecution.execution_status": %w`, err)}
		}
	}
	if seu.mutation.ScheduleCleared() && len(seu.mutation.ScheduleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduleExecution.schedule"`)
	}
	return nil
}

func (seu *ScheduleExecutionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := seu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduleexecution.Table, scheduleexecution.Columns, sqlgraph.NewFieldSpec(scheduleexecution.FieldID, field.TypeString))
	if ps := seu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seu.mutation.Status(); ok {
		_spec.SetField(scheduleexecution.FieldStatus, field.TypeString, value)
	}
	if value, ok := seu.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduleexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if seu.mutation.CreatedByCleared() {
		_spec.ClearField(scheduleexecution.FieldCreatedBy, field.TypeString)
	}
	if value, ok := seu.mutation.UpdatedBy(); ok {
		_spec.SetField(scheduleexecution.FieldUpdatedBy, field.TypeString, value)
	}
	if seu.mutation.UpdatedByCleared() {
		_spec.ClearField(scheduleexecution.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := seu.mutation.PeriodStart(); ok {
		_spec.SetField(scheduleexecution.FieldPeriodStart, field.TypeTime, value)
	}
	if value, ok := seu.mutation.PeriodEnd(); ok {
		_spec.SetField(scheduleexecution.FieldPeriodEnd, field.TypeTime, value)
	}
	if value, ok := seu.mutation.ExecutionStatus(); ok {
		_spec.SetField(scheduleexecution.FieldExecutionStatus, field.TypeString, value)
	}
	if value, ok := seu.mutation.InvoiceID(); ok {
		_spec.SetField(scheduleexecution.FieldInvoiceID, field.TypeString, value)
	}
	if seu.mutation.InvoiceIDCleared() {
		_spec.ClearField(scheduleexecution.FieldInvoiceID, field.TypeString)
	}
	if value, ok := seu.mutation.AmountGenerated(); ok {
		_spec.SetField(scheduleexecution.FieldAmountGenerated, field.TypeOther, value)
	}
	if value, ok := seu.mutation.ProratedAmount(); ok {
		_spec.SetField(scheduleexecution.FieldProratedAmount, field.TypeOther, value)
	}
	if value, ok := seu.mutation.ErrorMessage(); ok {
		_spec.SetField(scheduleexecution.FieldErrorMessage, field.TypeString, value)
	}
	if seu.mutation.ErrorMessageCleared() {
		_spec.ClearField(scheduleexecution.FieldErrorMessage, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, seu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduleexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	seu.mutation.done = true
	return n, nil
}

// ScheduleExecutionUpdateOne is the builder for updating a single ScheduleExecution entity.
type ScheduleExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleExecutionMutation
}

// SetStatus sets the "status" field.
func (seuo *ScheduleExecutionUpdateOne) SetStatus(s string) *ScheduleExecutionUpdateOne {
	seuo.mutation.SetStatus(s)
	return seuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (seuo *ScheduleExecutionUpdateOne) SetNillableStatus(s *string) *ScheduleExecutionUpdateOne {
	if s != nil {
		seuo.SetStatus(*s)
	}
	return seuo
}

// SetUpdatedAt sets the "updated_at" field.
func (seuo *ScheduleExecutionUpdateOne) SetUpdatedAt(t time.Time) *ScheduleExecutionUpdateOne {
	seuo.mutation.SetUpdatedAt(t)
	return seuo
}

// SetUpdatedBy sets the "updated_by" field.
func (seuo *ScheduleExecutionUpdateOne) SetUpdatedBy(s string) *ScheduleExecutionUpdateOne {
	seuo.mutation.SetUpdatedBy(s)
	return seuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (seuo *ScheduleExecutionUpdateOne) SetNillableUpdatedBy(s *string) *ScheduleExecutionUpdateOne {
	if s != nil {
		seuo.SetUpdatedBy(*s)
	}
	return seuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (seuo *ScheduleExecutionUpdateOne) ClearUpdatedBy() *ScheduleExecutionUpdateOne {
	seuo.mutation.ClearUpdatedBy()
	return seuo
}

// SetPeriodStart sets the "period_start" field.
func (seuo *ScheduleExecutionUpdateOne) SetPeriodStart(t time.Time) *ScheduleExecutionUpdateOne {
	seuo.mutation.SetPeriodStart(t)
	return seuo
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (seuo *ScheduleExecutionUpdateOne) SetNillablePeriodStart(t *time.Time) *ScheduleExecutionUpdateOne {
	if t != nil {
		seuo.SetPeriodStart(*t)
	}
	return seuo
}

// SetPeriodEnd sets the "period_end" field.
func (seuo *ScheduleExecutionUpdateOne) SetPeriodEnd(t time.Time) *ScheduleExecutionUpdateOne {
	seuo.mutation.SetPeriodEnd(t)
	return seuo
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (seuo *ScheduleExecutionUpdateOne) SetNillablePeriodEnd(t *time.Time) *ScheduleExecutionUpdateOne {
	if t != nil {
		seuo.SetPeriodEnd(*t)
	}
	return seuo
}

// SetExecutionStatus sets the "execution_status" field.
func (seuo *ScheduleExecutionUpdateOne) SetExecutionStatus(s string) *ScheduleExecutionUpdateOne {
	seuo.mutation.SetExecutionStatus(s)
	return seuo
}

// SetNillableExecutionStatus sets the "execution_status" field if the given value is not nil.
func (seuo *ScheduleExecutionUpdateOne) SetNillableExecutionStatus(s *string) *ScheduleExecutionUpdateOne {
	if s != nil {
		seuo.SetExecutionStatus(*s)
	}
	return seuo
}

// SetInvoiceID sets the "invoice_id" field.
func (seuo *ScheduleExecutionUpdateOne) SetInvoiceID(s string) *ScheduleExecutionUpdateOne {
	seuo.mutation.SetInvoiceID(s)
	return seuo
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (seuo *ScheduleExecutionUpdateOne) SetNillableInvoiceID(s *string) *ScheduleExecutionUpdateOne {
	if s != nil {
		seuo.SetInvoiceID(*s)
	}
	return seuo
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (seuo *ScheduleExecutionUpdateOne) ClearInvoiceID() *ScheduleExecutionUpdateOne {
	seuo.mutation.ClearInvoiceID()
	return seuo
}

// SetAmountGenerated sets the "amount_generated" field.
func (seuo *ScheduleExecutionUpdateOne) SetAmountGenerated(d decimal.Decimal) *ScheduleExecutionUpdateOne {
	seuo.mutation.SetAmountGenerated(d)
	return seuo
}

// SetNillableAmountGenerated sets the "amount_generated" field if the given value is not nil.
func (seuo *ScheduleExecutionUpdateOne) SetNillableAmountGenerated(d *decimal.Decimal) *ScheduleExecutionUpdateOne {
	if d != nil {
		seuo.SetAmountGenerated(*d)
	}
	return seuo
}

// SetProratedAmount sets the "prorated_amount" field.
func (seuo *ScheduleExecutionUpdateOne) SetProratedAmount(d decimal.Decimal) *ScheduleExecutionUpdateOne {
	seuo.mutation.SetProratedAmount(d)
	return seuo
}

// SetNillableProratedAmount sets the "prorated_amount" field if the given value is not nil.
func (seuo *ScheduleExecutionUpdateOne) SetNillableProratedAmount(d *decimal.Decimal) *ScheduleExecutionUpdateOne {
	if d != nil {
		seuo.SetProratedAmount(*d)
	}
	return seuo
}

// SetErrorMessage sets the "error_message" field.
func (seuo *ScheduleExecutionUpdateOne) SetErrorMessage(s string) *ScheduleExecutionUpdateOne {
	seuo.mutation.SetErrorMessage(s)
	return seuo
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (seuo *ScheduleExecutionUpdateOne) SetNillableErrorMessage(s *string) *ScheduleExecutionUpdateOne {
	if s != nil {
		seuo.SetErrorMessage(*s)
	}
	return seuo
}

// ClearErrorMessage clears the value of the "error_message" field.
func (seuo *ScheduleExecutionUpdateOne) ClearErrorMessage() *ScheduleExecutionUpdateOne {
	seuo.mutation.ClearErrorMessage()
	return seuo
}

// Mutation returns the ScheduleExecutionMutation object of the builder.
func (seuo *ScheduleExecutionUpdateOne) Mutation() *ScheduleExecutionMutation {
	return seuo.mutation
}

// Where appends a list predicates to the ScheduleExecutionUpdate builder.
func (seuo *ScheduleExecutionUpdateOne) Where(ps ...predicate.ScheduleExecution) *ScheduleExecutionUpdateOne {
	seuo.mutation.Where(ps...)
	return seuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (seuo *ScheduleExecutionUpdateOne) Select(field string, fields ...string) *ScheduleExecutionUpdateOne {
	seuo.fields = append([]string{field}, fields...)
	return seuo
}

// Save executes the query and returns the updated ScheduleExecution entity.
func (seuo *ScheduleExecutionUpdateOne) Save(ctx context.Context) (*ScheduleExecution, error) {
	seuo.defaults()
	return withHooks(ctx, seuo.sqlSave, seuo.mutation, seuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seuo *ScheduleExecutionUpdateOne) SaveX(ctx context.Context) *ScheduleExecution {
	node, err := seuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (seuo *ScheduleExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := seuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seuo *ScheduleExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := seuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (seuo *ScheduleExecutionUpdateOne) defaults() {
	if _, ok := seuo.mutation.UpdatedAt(); !ok {
		v := scheduleexecution.UpdateDefaultUpdatedAt()
		seuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seuo *ScheduleExecutionUpdateOne) check() error {
	if v, ok := seuo.mutation.ExecutionStatus(); ok {
		if err := scheduleexecution.ExecutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "execution_status", err: fmt.Errorf(`ent: validator failed for field "ScheduleExecution.execution_status": %w`, err)}
		}
	}
	if seuo.mutation.ScheduleCleared() && len(seuo.mutation.ScheduleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduleExecution.schedule"`)
	}
	return nil
}

func (seuo *ScheduleExecutionUpdateOne) sqlSave(ctx context.Context) (_node *ScheduleExecution, err error) {
	if err := seuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduleexecution.Table, scheduleexecution.Columns, sqlgraph.NewFieldSpec(scheduleexecution.FieldID, field.TypeString))
	id, ok := seuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduleExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := seuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduleexecution.FieldID)
		for _, f := range fields {
			if !scheduleexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduleexecution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := seuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seuo.mutation.Status(); ok {
		_spec.SetField(scheduleexecution.FieldStatus, field.TypeString, value)
	}
	if value, ok := seuo.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduleexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if seuo.mutation.CreatedByCleared() {
		_spec.ClearField(scheduleexecution.FieldCreatedBy, field.TypeString)
	}
	if value, ok := seuo.mutation.UpdatedBy(); ok {
		_spec.SetField(scheduleexecution.FieldUpdatedBy, field.TypeString, value)
	}
	if seuo.mutation.UpdatedByCleared() {
		_spec.ClearField(scheduleexecution.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := seuo.mutation.PeriodStart(); ok {
		_spec.SetField(scheduleexecution.FieldPeriodStart, field.TypeTime, value)
	}
	if value, ok := seuo.mutation.PeriodEnd(); ok {
		_spec.SetField(scheduleexecution.FieldPeriodEnd, field.TypeTime, value)
	}
	if value, ok := seuo.mutation.ExecutionStatus(); ok {
		_spec.SetField(scheduleexecution.FieldExecutionStatus, field.TypeString, value)
	}
	if value, ok := seuo.mutation.InvoiceID(); ok {
		_spec.SetField(scheduleexecution.FieldInvoiceID, field.TypeString, value)
	}
	if seuo.mutation.InvoiceIDCleared() {
		_spec.ClearField(scheduleexecution.FieldInvoiceID, field.TypeString)
	}
	if value, ok := seuo.mutation.AmountGenerated(); ok {
		_spec.SetField(scheduleexecution.FieldAmountGenerated, field.TypeOther, value)
	}
	if value, ok := seuo.mutation.ProratedAmount(); ok {
		_spec.SetField(scheduleexecution.FieldProratedAmount, field.TypeOther, value)
	}
	if value, ok := seuo.mutation.ErrorMessage(); ok {
		_spec.SetField(scheduleexecution.FieldErrorMessage, field.TypeString, value)
	}
	if seuo.mutation.ErrorMessageCleared() {
		_spec.ClearField(scheduleexecution.FieldErrorMessage, field.TypeString)
	}
	_node = &ScheduleExecution{config: seuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, seuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduleexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	seuo.mutation.done = true
	return _node, nil
}

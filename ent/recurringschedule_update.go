// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/invoiceflow/invoiceflow/ent/auditlog"
	"github.com/invoiceflow/invoiceflow/ent/predicate"
	"github.com/invoiceflow/invoiceflow/ent/recurringschedule"
	"github.com/invoiceflow/invoiceflow/ent/scheduleexecution"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

// RecurringScheduleUpdate is the builder for updating RecurringSchedule entities.
type RecurringScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *RecurringScheduleMutation
}

// Where appends a list predicates to the RecurringScheduleUpdate builder.
func (rsu *RecurringScheduleUpdate) Where(ps ...predicate.RecurringSchedule) *RecurringScheduleUpdate {
	rsu.mutation.Where(ps...)
	return rsu
}

// SetStatus sets the "status" field.
func (rsu *RecurringScheduleUpdate) SetStatus(s string) *RecurringScheduleUpdate {
	rsu.mutation.SetStatus(s)
	return rsu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableStatus(s *string) *RecurringScheduleUpdate {
	if s != nil {
		rsu.SetStatus(*s)
	}
	return rsu
}

// SetUpdatedAt sets the "updated_at" field.
func (rsu *RecurringScheduleUpdate) SetUpdatedAt(t time.Time) *RecurringScheduleUpdate {
	rsu.mutation.SetUpdatedAt(t)
	return rsu
}

// SetUpdatedBy sets the "updated_by" field.
func (rsu *RecurringScheduleUpdate) SetUpdatedBy(s string) *RecurringScheduleUpdate {
	rsu.mutation.SetUpdatedBy(s)
	return rsu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableUpdatedBy(s *string) *RecurringScheduleUpdate {
	if s != nil {
		rsu.SetUpdatedBy(*s)
	}
	return rsu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (rsu *RecurringScheduleUpdate) ClearUpdatedBy() *RecurringScheduleUpdate {
	rsu.mutation.ClearUpdatedBy()
	return rsu
}

// SetMetadata sets the "metadata" field.
func (rsu *RecurringScheduleUpdate) SetMetadata(m map[string]string) *RecurringScheduleUpdate {
	rsu.mutation.SetMetadata(m)
	return rsu
}

// SetDescription sets the "description" field.
func (rsu *RecurringScheduleUpdate) SetDescription(s string) *RecurringScheduleUpdate {
	rsu.mutation.SetDescription(s)
	return rsu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableDescription(s *string) *RecurringScheduleUpdate {
	if s != nil {
		rsu.SetDescription(*s)
	}
	return rsu
}

// ClearDescription clears the value of the "description" field.
func (rsu *RecurringScheduleUpdate) ClearDescription() *RecurringScheduleUpdate {
	rsu.mutation.ClearDescription()
	return rsu
}

// SetIntervalType sets the "interval_type" field.
func (rsu *RecurringScheduleUpdate) SetIntervalType(s string) *RecurringScheduleUpdate {
	rsu.mutation.SetIntervalType(s)
	return rsu
}

// SetNillableIntervalType sets the "interval_type" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableIntervalType(s *string) *RecurringScheduleUpdate {
	if s != nil {
		rsu.SetIntervalType(*s)
	}
	return rsu
}

// SetCustomIntervalDays sets the "custom_interval_days" field.
func (rsu *RecurringScheduleUpdate) SetCustomIntervalDays(i int) *RecurringScheduleUpdate {
	rsu.mutation.ResetCustomIntervalDays()
	rsu.mutation.SetCustomIntervalDays(i)
	return rsu
}

// SetNillableCustomIntervalDays sets the "custom_interval_days" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableCustomIntervalDays(i *int) *RecurringScheduleUpdate {
	if i != nil {
		rsu.SetCustomIntervalDays(*i)
	}
	return rsu
}

// AddCustomIntervalDays adds i to the "custom_interval_days" field.
func (rsu *RecurringScheduleUpdate) AddCustomIntervalDays(i int) *RecurringScheduleUpdate {
	rsu.mutation.AddCustomIntervalDays(i)
	return rsu
}

// SetAnchorDay sets the "anchor_day" field.
func (rsu *RecurringScheduleUpdate) SetAnchorDay(i int) *RecurringScheduleUpdate {
	rsu.mutation.ResetAnchorDay()
	rsu.mutation.SetAnchorDay(i)
	return rsu
}

// SetNillableAnchorDay sets the "anchor_day" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableAnchorDay(i *int) *RecurringScheduleUpdate {
	if i != nil {
		rsu.SetAnchorDay(*i)
	}
	return rsu
}

// AddAnchorDay adds i to the "anchor_day" field.
func (rsu *RecurringScheduleUpdate) AddAnchorDay(i int) *RecurringScheduleUpdate {
	rsu.mutation.AddAnchorDay(i)
	return rsu
}

// SetEndDate sets the "end_date" field.
func (rsu *RecurringScheduleUpdate) SetEndDate(t time.Time) *RecurringScheduleUpdate {
	rsu.mutation.SetEndDate(t)
	return rsu
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableEndDate(t *time.Time) *RecurringScheduleUpdate {
	if t != nil {
		rsu.SetEndDate(*t)
	}
	return rsu
}

// ClearEndDate clears the value of the "end_date" field.
func (rsu *RecurringScheduleUpdate) ClearEndDate() *RecurringScheduleUpdate {
	rsu.mutation.ClearEndDate()
	return rsu
}

// SetNextRunDate sets the "next_run_date" field.
func (rsu *RecurringScheduleUpdate) SetNextRunDate(t time.Time) *RecurringScheduleUpdate {
	rsu.mutation.SetNextRunDate(t)
	return rsu
}

// SetNillableNextRunDate sets the "next_run_date" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableNextRunDate(t *time.Time) *RecurringScheduleUpdate {
	if t != nil {
		rsu.SetNextRunDate(*t)
	}
	return rsu
}

// SetLastRunDate sets the "last_run_date" field.
func (rsu *RecurringScheduleUpdate) SetLastRunDate(t time.Time) *RecurringScheduleUpdate {
	rsu.mutation.SetLastRunDate(t)
	return rsu
}

// SetNillableLastRunDate sets the "last_run_date" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableLastRunDate(t *time.Time) *RecurringScheduleUpdate {
	if t != nil {
		rsu.SetLastRunDate(*t)
	}
	return rsu
}

// ClearLastRunDate clears the value of the "last_run_date" field.
func (rsu *RecurringScheduleUpdate) ClearLastRunDate() *RecurringScheduleUpdate {
	rsu.mutation.ClearLastRunDate()
	return rsu
}

// SetTimezone sets the "timezone" field.
func (rsu *RecurringScheduleUpdate) SetTimezone(s string) *RecurringScheduleUpdate {
	rsu.mutation.SetTimezone(s)
	return rsu
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableTimezone(s *string) *RecurringScheduleUpdate {
	if s != nil {
		rsu.SetTimezone(*s)
	}
	return rsu
}

// SetScheduleStatus sets the "schedule_status" field.
func (rsu *RecurringScheduleUpdate) SetScheduleStatus(s string) *RecurringScheduleUpdate {
	rsu.mutation.SetScheduleStatus(s)
	return rsu
}

// SetNillableScheduleStatus sets the "schedule_status" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableScheduleStatus(s *string) *RecurringScheduleUpdate {
	if s != nil {
		rsu.SetScheduleStatus(*s)
	}
	return rsu
}

// SetPausedAt sets the "paused_at" field.
func (rsu *RecurringScheduleUpdate) SetPausedAt(t time.Time) *RecurringScheduleUpdate {
	rsu.mutation.SetPausedAt(t)
	return rsu
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillablePausedAt(t *time.Time) *RecurringScheduleUpdate {
	if t != nil {
		rsu.SetPausedAt(*t)
	}
	return rsu
}

// ClearPausedAt clears the value of the "paused_at" field.
func (rsu *RecurringScheduleUpdate) ClearPausedAt() *RecurringScheduleUpdate {
	rsu.mutation.ClearPausedAt()
	return rsu
}

// SetCancelledAt sets the "cancelled_at" field.
func (rsu *RecurringScheduleUpdate) SetCancelledAt(t time.Time) *RecurringScheduleUpdate {
	rsu.mutation.SetCancelledAt(t)
	return rsu
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableCancelledAt(t *time.Time) *RecurringScheduleUpdate {
	if t != nil {
		rsu.SetCancelledAt(*t)
	}
	return rsu
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (rsu *RecurringScheduleUpdate) ClearCancelledAt() *RecurringScheduleUpdate {
	rsu.mutation.ClearCancelledAt()
	return rsu
}

// SetCancellationReason sets the "cancellation_reason" field.
func (rsu *RecurringScheduleUpdate) SetCancellationReason(s string) *RecurringScheduleUpdate {
	rsu.mutation.SetCancellationReason(s)
	return rsu
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableCancellationReason(s *string) *RecurringScheduleUpdate {
	if s != nil {
		rsu.SetCancellationReason(*s)
	}
	return rsu
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (rsu *RecurringScheduleUpdate) ClearCancellationReason() *RecurringScheduleUpdate {
	rsu.mutation.ClearCancellationReason()
	return rsu
}

// SetCurrency sets the "currency" field.
func (rsu *RecurringScheduleUpdate) SetCurrency(s string) *RecurringScheduleUpdate {
	rsu.mutation.SetCurrency(s)
	return rsu
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableCurrency(s *string) *RecurringScheduleUpdate {
	if s != nil {
		rsu.SetCurrency(*s)
	}
	return rsu
}

// SetBaseAmount sets the "base_amount" field.
func (rsu *RecurringScheduleUpdate) SetBaseAmount(d decimal.Decimal) *RecurringScheduleUpdate {
	rsu.mutation.SetBaseAmount(d)
	return rsu
}

// SetNillableBaseAmount sets the "base_amount" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableBaseAmount(d *decimal.Decimal) *RecurringScheduleUpdate {
	if d != nil {
		rsu.SetBaseAmount(*d)
	}
	return rsu
}

// SetLineItems sets the "line_items" field.
func (rsu *RecurringScheduleUpdate) SetLineItems(tli []types.ScheduleLineItem) *RecurringScheduleUpdate {
	rsu.mutation.SetLineItems(tli)
	return rsu
}

// AppendLineItems appends tli to the "line_items" field.
func (rsu *RecurringScheduleUpdate) AppendLineItems(tli []types.ScheduleLineItem) *RecurringScheduleUpdate {
	rsu.mutation.AppendLineItems(tli)
	return rsu
}

// ClearLineItems clears the value of the "line_items" field.
func (rsu *RecurringScheduleUpdate) ClearLineItems() *RecurringScheduleUpdate {
	rsu.mutation.ClearLineItems()
	return rsu
}

// SetTaxRate sets the "tax_rate" field.
func (rsu *RecurringScheduleUpdate) SetTaxRate(d decimal.Decimal) *RecurringScheduleUpdate {
	rsu.mutation.SetTaxRate(d)
	return rsu
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableTaxRate(d *decimal.Decimal) *RecurringScheduleUpdate {
	if d != nil {
		rsu.SetTaxRate(*d)
	}
	return rsu
}

// SetTaxInclusive sets the "tax_inclusive" field.
func (rsu *RecurringScheduleUpdate) SetTaxInclusive(b bool) *RecurringScheduleUpdate {
	rsu.mutation.SetTaxInclusive(b)
	return rsu
}

// SetNillableTaxInclusive sets the "tax_inclusive" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableTaxInclusive(b *bool) *RecurringScheduleUpdate {
	if b != nil {
		rsu.SetTaxInclusive(*b)
	}
	return rsu
}

// SetProrationEnabled sets the "proration_enabled" field.
func (rsu *RecurringScheduleUpdate) SetProrationEnabled(b bool) *RecurringScheduleUpdate {
	rsu.mutation.SetProrationEnabled(b)
	return rsu
}

// SetNillableProrationEnabled sets the "proration_enabled" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableProrationEnabled(b *bool) *RecurringScheduleUpdate {
	if b != nil {
		rsu.SetProrationEnabled(*b)
	}
	return rsu
}

// SetInvoiceNotes sets the "invoice_notes" field.
func (rsu *RecurringScheduleUpdate) SetInvoiceNotes(s string) *RecurringScheduleUpdate {
	rsu.mutation.SetInvoiceNotes(s)
	return rsu
}

// SetNillableInvoiceNotes sets the "invoice_notes" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableInvoiceNotes(s *string) *RecurringScheduleUpdate {
	if s != nil {
		rsu.SetInvoiceNotes(*s)
	}
	return rsu
}

// ClearInvoiceNotes clears the value of the "invoice_notes" field.
func (rsu *RecurringScheduleUpdate) ClearInvoiceNotes() *RecurringScheduleUpdate {
	rsu.mutation.ClearInvoiceNotes()
	return rsu
}

// SetPaymentTermsDays sets the "payment_terms_days" field.
func (rsu *RecurringScheduleUpdate) SetPaymentTermsDays(i int) *RecurringScheduleUpdate {
	rsu.mutation.ResetPaymentTermsDays()
	rsu.mutation.SetPaymentTermsDays(i)
	return rsu
}

// SetNillablePaymentTermsDays sets the "payment_terms_days" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillablePaymentTermsDays(i *int) *RecurringScheduleUpdate {
	if i != nil {
		rsu.SetPaymentTermsDays(*i)
	}
	return rsu
}

// AddPaymentTermsDays adds i to the "payment_terms_days" field.
func (rsu *RecurringScheduleUpdate) AddPaymentTermsDays(i int) *RecurringScheduleUpdate {
	rsu.mutation.AddPaymentTermsDays(i)
	return rsu
}

// SetAutoCharge sets the "auto_charge" field.
func (rsu *RecurringScheduleUpdate) SetAutoCharge(b bool) *RecurringScheduleUpdate {
	rsu.mutation.SetAutoCharge(b)
	return rsu
}

// SetNillableAutoCharge sets the "auto_charge" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableAutoCharge(b *bool) *RecurringScheduleUpdate {
	if b != nil {
		rsu.SetAutoCharge(*b)
	}
	return rsu
}

// SetRetryEnabled sets the "retry_enabled" field.
func (rsu *RecurringScheduleUpdate) SetRetryEnabled(b bool) *RecurringScheduleUpdate {
	rsu.mutation.SetRetryEnabled(b)
	return rsu
}

// SetNillableRetryEnabled sets the "retry_enabled" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableRetryEnabled(b *bool) *RecurringScheduleUpdate {
	if b != nil {
		rsu.SetRetryEnabled(*b)
	}
	return rsu
}

// SetMaxRetryAttempts sets the "max_retry_attempts" field.
func (rsu *RecurringScheduleUpdate) SetMaxRetryAttempts(i int) *RecurringScheduleUpdate {
	rsu.mutation.ResetMaxRetryAttempts()
	rsu.mutation.SetMaxRetryAttempts(i)
	return rsu
}

// SetNillableMaxRetryAttempts sets the "max_retry_attempts" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableMaxRetryAttempts(i *int) *RecurringScheduleUpdate {
	if i != nil {
		rsu.SetMaxRetryAttempts(*i)
	}
	return rsu
}

// AddMaxRetryAttempts adds i to the "max_retry_attempts" field.
func (rsu *RecurringScheduleUpdate) AddMaxRetryAttempts(i int) *RecurringScheduleUpdate {
	rsu.mutation.AddMaxRetryAttempts(i)
	return rsu
}

// SetRetryIntervalHours sets the "retry_interval_hours" field.
func (rsu *RecurringScheduleUpdate) SetRetryIntervalHours(i int) *RecurringScheduleUpdate {
	rsu.mutation.ResetRetryIntervalHours()
	rsu.mutation.SetRetryIntervalHours(i)
	return rsu
}

// SetNillableRetryIntervalHours sets the "retry_interval_hours" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableRetryIntervalHours(i *int) *RecurringScheduleUpdate {
	if i != nil {
		rsu.SetRetryIntervalHours(*i)
	}
	return rsu
}

// AddRetryIntervalHours adds i to the "retry_interval_hours" field.
func (rsu *RecurringScheduleUpdate) AddRetryIntervalHours(i int) *RecurringScheduleUpdate {
	rsu.mutation.AddRetryIntervalHours(i)
	return rsu
}

// SetRetryBackoffMultiplier sets the "retry_backoff_multiplier" field.
func (rsu *RecurringScheduleUpdate) SetRetryBackoffMultiplier(f float64) *RecurringScheduleUpdate {
	rsu.mutation.ResetRetryBackoffMultiplier()
	rsu.mutation.SetRetryBackoffMultiplier(f)
	return rsu
}

// SetNillableRetryBackoffMultiplier sets the "retry_backoff_multiplier" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableRetryBackoffMultiplier(f *float64) *RecurringScheduleUpdate {
	if f != nil {
		rsu.SetRetryBackoffMultiplier(*f)
	}
	return rsu
}

// AddRetryBackoffMultiplier adds f to the "retry_backoff_multiplier" field.
func (rsu *RecurringScheduleUpdate) AddRetryBackoffMultiplier(f float64) *RecurringScheduleUpdate {
	rsu.mutation.AddRetryBackoffMultiplier(f)
	return rsu
}

// SetFailureNotificationSent sets the "failure_notification_sent" field.
func (rsu *RecurringScheduleUpdate) SetFailureNotificationSent(b bool) *RecurringScheduleUpdate {
	rsu.mutation.SetFailureNotificationSent(b)
	return rsu
}

// SetNillableFailureNotificationSent sets the "failure_notification_sent" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableFailureNotificationSent(b *bool) *RecurringScheduleUpdate {
	if b != nil {
		rsu.SetFailureNotificationSent(*b)
	}
	return rsu
}

// SetTotalInvoicesGenerated sets the "total_invoices_generated" field.
func (rsu *RecurringScheduleUpdate) SetTotalInvoicesGenerated(i int) *RecurringScheduleUpdate {
	rsu.mutation.ResetTotalInvoicesGenerated()
	rsu.mutation.SetTotalInvoicesGenerated(i)
	return rsu
}

// SetNillableTotalInvoicesGenerated sets the "total_invoices_generated" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableTotalInvoicesGenerated(i *int) *RecurringScheduleUpdate {
	if i != nil {
		rsu.SetTotalInvoicesGenerated(*i)
	}
	return rsu
}

// AddTotalInvoicesGenerated adds i to the "total_invoices_generated" field.
func (rsu *RecurringScheduleUpdate) AddTotalInvoicesGenerated(i int) *RecurringScheduleUpdate {
	rsu.mutation.AddTotalInvoicesGenerated(i)
	return rsu
}

// SetTotalAmountBilled sets the "total_amount_billed" field.
func (rsu *RecurringScheduleUpdate) SetTotalAmountBilled(d decimal.Decimal) *RecurringScheduleUpdate {
	rsu.mutation.SetTotalAmountBilled(d)
	return rsu
}

// SetNillableTotalAmountBilled sets the "total_amount_billed" field if the given value is not nil.
func (rsu *RecurringScheduleUpdate) SetNillableTotalAmountBilled(d *decimal.Decimal) *RecurringScheduleUpdate {
	if d != nil {
		rsu.SetTotalAmountBilled(*d)
	}
	return rsu
}

// AddExecutionIDs adds the "executions" edge to the ScheduleExecution entity by IDs.
func (rsu *RecurringScheduleUpdate) AddExecutionIDs(ids ...string) *RecurringScheduleUpdate {
	rsu.mutation.AddExecutionIDs(ids...)
	return rsu
}

// AddExecutions adds the "executions" edges to the ScheduleExecution entity.
func (rsu *RecurringScheduleUpdate) AddExecutions(s ...*ScheduleExecution) *RecurringScheduleUpdate {
	ids := make([]string, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return rsu.AddExecutionIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (rsu *RecurringScheduleUpdate) AddAuditLogIDs(ids ...string) *RecurringScheduleUpdate {
	rsu.mutation.AddAuditLogIDs(ids...)
	return rsu
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (rsu *RecurringScheduleUpdate) AddAuditLogs(a ...*AuditLog) *RecurringScheduleUpdate {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return rsu.AddAuditLogIDs(ids...)
}

// Mutation returns the RecurringScheduleMutation object of the builder.
func (rsu *RecurringScheduleUpdate) Mutation() *RecurringScheduleMutation {
	return rsu.mutation
}

// ClearExecutions clears all "executions" edges to the ScheduleExecution entity.
func (rsu *RecurringScheduleUpdate) ClearExecutions() *RecurringScheduleUpdate {
	rsu.mutation.ClearExecutions()
	return rsu
}

// RemoveExecutionIDs removes the "executions" edge to ScheduleExecution entities by IDs.
func (rsu *RecurringScheduleUpdate) RemoveExecutionIDs(ids ...string) *RecurringScheduleUpdate {
	rsu.mutation.RemoveExecutionIDs(ids...)
	return rsu
}

// RemoveExecutions removes "executions" edges to ScheduleExecution entities.
func (rsu *RecurringScheduleUpdate) RemoveExecutions(s ...*ScheduleExecution) *RecurringScheduleUpdate {
	ids := make([]string, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return rsu.RemoveExecutionIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (rsu *RecurringScheduleUpdate) ClearAuditLogs() *RecurringScheduleUpdate {
	rsu.mutation.ClearAuditLogs()
	return rsu
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (rsu *RecurringScheduleUpdate) RemoveAuditLogIDs(ids ...string) *RecurringScheduleUpdate {
	rsu.mutation.RemoveAuditLogIDs(ids...)
	return rsu
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (rsu *RecurringScheduleUpdate) RemoveAuditLogs(a ...*AuditLog) *RecurringScheduleUpdate {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return rsu.RemoveAuditLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (rsu *RecurringScheduleUpdate) Save(ctx context.Context) (int, error) {
	rsu.defaults()
	return withHooks(ctx, rsu.sqlSave, rsu.mutation, rsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rsu *RecurringScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := rsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (rsu *RecurringScheduleUpdate) Exec(ctx context.Context) error {
	_, err := rsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rsu *RecurringScheduleUpdate) ExecX(ctx context.Context) {
	if err := rsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rsu *RecurringScheduleUpdate) defaults() {
	if _, ok := rsu.mutation.UpdatedAt(); !ok {
		v := recurringschedule.UpdateDefaultUpdatedAt()
		rsu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rsu *RecurringScheduleUpdate) check() error {
	if v, ok := rsu.mutation.IntervalType(); ok {
		if err := recurringschedule.IntervalTypeValidator(v); err != nil {
			return &ValidationError{Name: "interval_type", err: fmt.Errorf(`ent: validator failed for field "RecurringSchedule.interval_type": %w`, err)}
		}
	}
	if v, ok := rsu.mutation.Currency(); ok {
		if err := recurringschedule.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "RecurringSchedule.currency": %w`, err)}
		}
	}
	if rsu.mutation.CustomerCleared() && len(rsu.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecurringSchedule.customer"`)
	}
	return nil
}

func (rsu *RecurringScheduleUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := rsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(recurringschedule.Table, recurringschedule.Columns, sqlgraph.NewFieldSpec(recurringschedule.FieldID, field.TypeString))
	if ps := rsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := rsu.mutation.Status(); ok {
		_spec.SetField(recurringschedule.FieldStatus, field.TypeString, value)
	}
	if value, ok := rsu.mutation.UpdatedAt(); ok {
		_spec.SetField(recurringschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if rsu.mutation.CreatedByCleared() {
		_spec.ClearField(recurringschedule.FieldCreatedBy, field.TypeString)
	}
	if value, ok := rsu.mutation.UpdatedBy(); ok {
		_spec.SetField(recurringschedule.FieldUpdatedBy, field.TypeString, value)
	}
	if rsu.mutation.UpdatedByCleared() {
		_spec.ClearField(recurringschedule.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := rsu.mutation.Metadata(); ok {
		_spec.SetField(recurringschedule.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := rsu.mutation.Description(); ok {
		_spec.SetField(recurringschedule.FieldDescription, field.TypeString, value)
	}
	if rsu.mutation.DescriptionCleared() {
		_spec.ClearField(recurringschedule.FieldDescription, field.TypeString)
	}
	if value, ok := rsu.mutation.IntervalType(); ok {
		_spec.SetField(recurringschedule.FieldIntervalType, field.TypeString, value)
	}
	if value, ok := rsu.mutation.CustomIntervalDays(); ok {
		_spec.SetField(recurringschedule.FieldCustomIntervalDays, field.TypeInt, value)
	}
	if value, ok := rsu.mutation.AddedCustomIntervalDays(); ok {
		_spec.AddField(recurringschedule.FieldCustomIntervalDays, field.TypeInt, value)
	}
	if value, ok := rsu.mutation.AnchorDay(); ok {
		_spec.SetField(recurringschedule.FieldAnchorDay, field.TypeInt, value)
	}
	if value, ok := rsu.mutation.AddedAnchorDay(); ok {
		_spec.AddField(recurringschedule.FieldAnchorDay, field.TypeInt, value)
	}
	if value, ok := rsu.mutation.EndDate(); ok {
		_spec.SetField(recurringschedule.FieldEndDate, field.TypeTime, value)
	}
	if rsu.mutation.EndDateCleared() {
		_spec.ClearField(recurringschedule.FieldEndDate, field.TypeTime)
	}
	if value, ok := rsu.mutation.NextRunDate(); ok {
		_spec.SetField(recurringschedule.FieldNextRunDate, field.TypeTime, value)
	}
	if value, ok := rsu.mutation.LastRunDate(); ok {
		_spec.SetField(recurringschedule.FieldLastRunDate, field.TypeTime, value)
	}
	if rsu.mutation.LastRunDateCleared() {
		_spec.ClearField(recurringschedule.FieldLastRunDate, field.TypeTime)
	}
	if value, ok := rsu.mutation.Timezone(); ok {
		_spec.SetField(recurringschedule.FieldTimezone, field.TypeString, value)
	}
	if value, ok := rsu.mutation.ScheduleStatus(); ok {
		_spec.SetField(recurringschedule.FieldScheduleStatus, field.TypeString, value)
	}
	if value, ok := rsu.mutation.PausedAt(); ok {
		_spec.SetField(recurringschedule.FieldPausedAt, field.TypeTime, value)
	}
	if rsu.mutation.PausedAtCleared() {
		_spec.ClearField(recurringschedule.FieldPausedAt, field.TypeTime)
	}
	if value, ok := rsu.mutation.CancelledAt(); ok {
		_spec.SetField(recurringschedule.FieldCancelledAt, field.TypeTime, value)
	}
	if rsu.mutation.CancelledAtCleared() {
		_spec.ClearField(recurringschedule.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := rsu.mutation.CancellationReason(); ok {
		_spec.SetField(recurringschedule.FieldCancellationReason, field.TypeString, value)
	}
	if rsu.mutation.CancellationReasonCleared() {
		_spec.ClearField(recurringschedule.FieldCancellationReason, field.TypeString)
	}
	if value, ok := rsu.mutation.Currency(); ok {
		_spec.SetField(recurringschedule.FieldCurrency, field.TypeString, value)
	}
	if value, ok := rsu.mutation.BaseAmount(); ok {
		_spec.SetField(recurringschedule.FieldBaseAmount, field.TypeOther, value)
	}
	if value, ok := rsu.mutation.LineItems(); ok {
		_spec.SetField(recurringschedule.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := rsu.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recurringschedule.FieldLineItems, value)
		})
	}
	if rsu.mutation.LineItemsCleared() {
		_spec.ClearField(recurringschedule.FieldLineItems, field.TypeJSON)
	}
	if value, ok := rsu.mutation.TaxRate(); ok {
		_spec.SetField(recurringschedule.FieldTaxRate, field.TypeOther, value)
	}
	if value, ok := rsu.mutation.TaxInclusive(); ok {
		_spec.SetField(recurringschedule.FieldTaxInclusive, field.TypeBool, value)
	}
	if value, ok := rsu.mutation.ProrationEnabled(); ok {
		_spec.SetField(recurringschedule.FieldProrationEnabled, field.TypeBool, value)
	}
	if value, ok := rsu.mutation.InvoiceNotes(); ok {
		_spec.SetField(recurringschedule.FieldInvoiceNotes, field.TypeString, value)
	}
	if rsu.mutation.InvoiceNotesCleared() {
		_spec.ClearField(recurringschedule.FieldInvoiceNotes, field.TypeString)
	}
	if value, ok := rsu.mutation.PaymentTermsDays(); ok {
		_spec.SetField(recurringschedule.FieldPaymentTermsDays, field.TypeInt, value)
	}
	if value, ok := rsu.mutation.AddedPaymentTermsDays(); ok {
		_spec.AddField(recurringschedule.FieldPaymentTermsDays, field.TypeInt, value)
	}
	if value, ok := rsu.mutation.AutoCharge(); ok {
		_spec.SetField(recurringschedule.FieldAutoCharge, field.TypeBool, value)
	}
	if value, ok := rsu.mutation.RetryEnabled(); ok {
		_spec.SetField(recurringschedule.FieldRetryEnabled, field.TypeBool, value)
	}
	if value, ok := rsu.mutation.MaxRetryAttempts(); ok {
		_spec.SetField(recurringschedule.FieldMaxRetryAttempts, field.TypeInt, value)
	}
	if value, ok := rsu.mutation.AddedMaxRetryAttempts(); ok {
		_spec.AddField(recurringschedule.FieldMaxRetryAttempts, field.TypeInt, value)
	}
	if value, ok := rsu.mutation.RetryIntervalHours(); ok {
		_spec.SetField(recurringschedule.FieldRetryIntervalHours, field.TypeInt, value)
	}
	if value, ok := rsu.mutation.AddedRetryIntervalHours(); ok {
		_spec.AddField(recurringschedule.FieldRetryIntervalHours, field.TypeInt, value)
	}
	if value, ok := rsu.mutation.RetryBackoffMultiplier(); ok {
		_spec.SetField(recurringschedule.FieldRetryBackoffMultiplier, field.TypeFloat64, value)
	}
	if value, ok := rsu.mutation.AddedRetryBackoffMultiplier(); ok {
		_spec.AddField(recurringschedule.FieldRetryBackoffMultiplier, field.TypeFloat64, value)
	}
	if value, ok := rsu.mutation.FailureNotificationSent(); ok {
		_spec.SetField(recurringschedule.FieldFailureNotificationSent, field.TypeBool, value)
	}
	if value, ok := rsu.mutation.TotalInvoicesGenerated(); ok {
		_spec.SetField(recurringschedule.FieldTotalInvoicesGenerated, field.TypeInt, value)
	}
	if value, ok := rsu.mutation.AddedTotalInvoicesGenerated(); ok {
		_spec.AddField(recurringschedule.FieldTotalInvoicesGenerated, field.TypeInt, value)
	}
	if value, ok := rsu.mutation.TotalAmountBilled(); ok {
		_spec.SetField(recurringschedule.FieldTotalAmountBilled, field.TypeOther, value)
	}
	if rsu.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recurringschedule.ExecutionsTable,
			Columns: []string{recurringschedule.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduleexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rsu.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !rsu.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recurringschedule.ExecutionsTable,
			Columns: []string{recurringschedule.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduleexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rsu.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recurringschedule.ExecutionsTable,
			Columns: []string{recurringschedule.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduleexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if rsu.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recurringschedule.AuditLogsTable,
			Columns: []string{recurringschedule.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rsu.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !rsu.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recurringschedule.AuditLogsTable,
			Columns: []string{recurringschedule.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rsu.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recurringschedule.AuditLogsTable,
			Columns: []string{recurringschedule.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, rsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recurringschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	rsu.mutation.done = true
	return n, nil
}

// RecurringScheduleUpdateOne is the builder for updating a single RecurringSchedule entity.
type RecurringScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecurringScheduleMutation
}

// SetStatus sets the "status" field.
func (rsuo *RecurringScheduleUpdateOne) SetStatus(s string) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetStatus(s)
	return rsuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableStatus(s *string) *RecurringScheduleUpdateOne {
	if s != nil {
		rsuo.SetStatus(*s)
	}
	return rsuo
}

// SetUpdatedAt sets the "updated_at" field.
func (rsuo *RecurringScheduleUpdateOne) SetUpdatedAt(t time.Time) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetUpdatedAt(t)
	return rsuo
}

// SetUpdatedBy sets the "updated_by" field.
func (rsuo *RecurringScheduleUpdateOne) SetUpdatedBy(s string) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetUpdatedBy(s)
	return rsuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableUpdatedBy(s *string) *RecurringScheduleUpdateOne {
	if s != nil {
		rsuo.SetUpdatedBy(*s)
	}
	return rsuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (rsuo *RecurringScheduleUpdateOne) ClearUpdatedBy() *RecurringScheduleUpdateOne {
	rsuo.mutation.ClearUpdatedBy()
	return rsuo
}

// SetMetadata sets the "metadata" field.
func (rsuo *RecurringScheduleUpdateOne) SetMetadata(m map[string]string) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetMetadata(m)
	return rsuo
}

// SetDescription sets the "description" field.
func (rsuo *RecurringScheduleUpdateOne) SetDescription(s string) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetDescription(s)
	return rsuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableDescription(s *string) *RecurringScheduleUpdateOne {
	if s != nil {
		rsuo.SetDescription(*s)
	}
	return rsuo
}

// ClearDescription clears the value of the "description" field.
func (rsuo *RecurringScheduleUpdateOne) ClearDescription() *RecurringScheduleUpdateOne {
	rsuo.mutation.ClearDescription()
	return rsuo
}

// SetIntervalType sets the "interval_type" field.
func (rsuo *RecurringScheduleUpdateOne) SetIntervalType(s string) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetIntervalType(s)
	return rsuo
}

// SetNillableIntervalType sets the "interval_type" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableIntervalType(s *string) *RecurringScheduleUpdateOne {
	if s != nil {
		rsuo.SetIntervalType(*s)
	}
	return rsuo
}

// SetCustomIntervalDays sets the "custom_interval_days" field.
func (rsuo *RecurringScheduleUpdateOne) SetCustomIntervalDays(i int) *RecurringScheduleUpdateOne {
	rsuo.mutation.ResetCustomIntervalDays()
	rsuo.mutation.SetCustomIntervalDays(i)
	return rsuo
}

// SetNillableCustomIntervalDays sets the "custom_interval_days" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableCustomIntervalDays(i *int) *RecurringScheduleUpdateOne {
	if i != nil {
		rsuo.SetCustomIntervalDays(*i)
	}
	return rsuo
}

// AddCustomIntervalDays adds i to the "custom_interval_days" field.
func (rsuo *RecurringScheduleUpdateOne) AddCustomIntervalDays(i int) *RecurringScheduleUpdateOne {
	rsuo.mutation.AddCustomIntervalDays(i)
	return rsuo
}

// SetAnchorDay sets the "anchor_day" field.
func (rsuo *RecurringScheduleUpdateOne) SetAnchorDay(i int) *RecurringScheduleUpdateOne {
	rsuo.mutation.ResetAnchorDay()
	rsuo.mutation.SetAnchorDay(i)
	return rsuo
}

// SetNillableAnchorDay sets the "anchor_day" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableAnchorDay(i *int) *RecurringScheduleUpdateOne {
	if i != nil {
		rsuo.SetAnchorDay(*i)
	}
	return rsuo
}

// AddAnchorDay adds i to the "anchor_day" field.
func (rsuo *RecurringScheduleUpdateOne) AddAnchorDay(i int) *RecurringScheduleUpdateOne {
	rsuo.mutation.AddAnchorDay(i)
	return rsuo
}

// SetEndDate sets the "end_date" field.
func (rsuo *RecurringScheduleUpdateOne) SetEndDate(t time.Time) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetEndDate(t)
	return rsuo
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableEndDate(t *time.Time) *RecurringScheduleUpdateOne {
	if t != nil {
		rsuo.SetEndDate(*t)
	}
	return rsuo
}

// ClearEndDate clears the value of the "end_date" field.
func (rsuo *RecurringScheduleUpdateOne) ClearEndDate() *RecurringScheduleUpdateOne {
	rsuo.mutation.ClearEndDate()
	return rsuo
}

// SetNextRunDate sets the "next_run_date" field.
func (rsuo *RecurringScheduleUpdateOne) SetNextRunDate(t time.Time) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetNextRunDate(t)
	return rsuo
}

// SetNillableNextRunDate sets the "next_run_date" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableNextRunDate(t *time.Time) *RecurringScheduleUpdateOne {
	if t != nil {
		rsuo.SetNextRunDate(*t)
	}
	return rsuo
}

// SetLastRunDate sets the "last_run_date" field.
func (rsuo *RecurringScheduleUpdateOne) SetLastRunDate(t time.Time) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetLastRunDate(t)
	return rsuo
}

// SetNillableLastRunDate sets the "last_run_date" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableLastRunDate(t *time.Time) *RecurringScheduleUpdateOne {
	if t != nil {
		rsuo.SetLastRunDate(*t)
	}
	return rsuo
}

// ClearLastRunDate clears the value of the "last_run_date" field.
func (rsuo *RecurringScheduleUpdateOne) ClearLastRunDate() *RecurringScheduleUpdateOne {
	rsuo.mutation.ClearLastRunDate()
	return rsuo
}

// SetTimezone sets the "timezone" field.
func (rsuo *RecurringScheduleUpdateOne) SetTimezone(s string) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetTimezone(s)
	return rsuo
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableTimezone(s *string) *RecurringScheduleUpdateOne {
	if s != nil {
		rsuo.SetTimezone(*s)
	}
	return rsuo
}

// SetScheduleStatus sets the "schedule_status" field.
func (rsuo *RecurringScheduleUpdateOne) SetScheduleStatus(s string) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetScheduleStatus(s)
	return rsuo
}

// SetNillableScheduleStatus sets the "schedule_status" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableScheduleStatus(s *string) *RecurringScheduleUpdateOne {
	if s != nil {
		rsuo.SetScheduleStatus(*s)
	}
	return rsuo
}

// SetPausedAt sets the "paused_at" field.
func (rsuo *RecurringScheduleUpdateOne) SetPausedAt(t time.Time) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetPausedAt(t)
	return rsuo
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillablePausedAt(t *time.Time) *RecurringScheduleUpdateOne {
	if t != nil {
		rsuo.SetPausedAt(*t)
	}
	return rsuo
}

// ClearPausedAt clears the value of the "paused_at" field.
func (rsuo *RecurringScheduleUpdateOne) ClearPausedAt() *RecurringScheduleUpdateOne {
	rsuo.mutation.ClearPausedAt()
	return rsuo
}

// SetCancelledAt sets the "cancelled_at" field.
func (rsuo *RecurringScheduleUpdateOne) SetCancelledAt(t time.Time) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetCancelledAt(t)
	return rsuo
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableCancelledAt(t *time.Time) *RecurringScheduleUpdateOne {
	if t != nil {
		rsuo.SetCancelledAt(*t)
	}
	return rsuo
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (rsuo *RecurringScheduleUpdateOne) ClearCancelledAt() *RecurringScheduleUpdateOne {
	rsuo.mutation.ClearCancelledAt()
	return rsuo
}

// SetCancellationReason sets the "cancellation_reason" field.
func (rsuo *RecurringScheduleUpdateOne) SetCancellationReason(s string) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetCancellationReason(s)
	return rsuo
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableCancellationReason(s *string) *RecurringScheduleUpdateOne {
	if s != nil {
		rsuo.SetCancellationReason(*s)
	}
	return rsuo
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (rsuo *RecurringScheduleUpdateOne) ClearCancellationReason() *RecurringScheduleUpdateOne {
	rsuo.mutation.ClearCancellationReason()
	return rsuo
}

// SetCurrency sets the "currency" field.
func (rsuo *RecurringScheduleUpdateOne) SetCurrency(s string) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetCurrency(s)
	return rsuo
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableCurrency(s *string) *RecurringScheduleUpdateOne {
	if s != nil {
		rsuo.SetCurrency(*s)
	}
	return rsuo
}

// SetBaseAmount sets the "base_amount" field.
func (rsuo *RecurringScheduleUpdateOne) SetBaseAmount(d decimal.Decimal) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetBaseAmount(d)
	return rsuo
}

// SetNillableBaseAmount sets the "base_amount" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableBaseAmount(d *decimal.Decimal) *RecurringScheduleUpdateOne {
	if d != nil {
		rsuo.SetBaseAmount(*d)
	}
	return rsuo
}

// SetLineItems sets the "line_items" field.
func (rsuo *RecurringScheduleUpdateOne) SetLineItems(tli []types.ScheduleLineItem) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetLineItems(tli)
	return rsuo
}

// AppendLineItems appends tli to the "line_items" field.
func (rsuo *RecurringScheduleUpdateOne) AppendLineItems(tli []types.ScheduleLineItem) *RecurringScheduleUpdateOne {
	rsuo.mutation.AppendLineItems(tli)
	return rsuo
}

// ClearLineItems clears the value of the "line_items" field.
func (rsuo *RecurringScheduleUpdateOne) ClearLineItems() *RecurringScheduleUpdateOne {
	rsuo.mutation.ClearLineItems()
	return rsuo
}

// SetTaxRate sets the "tax_rate" field.
func (rsuo *RecurringScheduleUpdateOne) SetTaxRate(d decimal.Decimal) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetTaxRate(d)
	return rsuo
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableTaxRate(d *decimal.Decimal) *RecurringScheduleUpdateOne {
	if d != nil {
		rsuo.SetTaxRate(*d)
	}
	return rsuo
}

// SetTaxInclusive sets the "tax_inclusive" field.
func (rsuo *RecurringScheduleUpdateOne) SetTaxInclusive(b bool) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetTaxInclusive(b)
	return rsuo
}

// SetNillableTaxInclusive sets the "tax_inclusive" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableTaxInclusive(b *bool) *RecurringScheduleUpdateOne {
	if b != nil {
		rsuo.SetTaxInclusive(*b)
	}
	return rsuo
}

// SetProrationEnabled sets the "proration_enabled" field.
func (rsuo *RecurringScheduleUpdateOne) SetProrationEnabled(b bool) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetProrationEnabled(b)
	return rsuo
}

// SetNillableProrationEnabled sets the "proration_enabled" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableProrationEnabled(b *bool) *RecurringScheduleUpdateOne {
	if b != nil {
		rsuo.SetProrationEnabled(*b)
	}
	return rsuo
}

// SetInvoiceNotes sets the "invoice_notes" field.
func (rsuo *RecurringScheduleUpdateOne) SetInvoiceNotes(s string) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetInvoiceNotes(s)
	return rsuo
}

// SetNillableInvoiceNotes sets the "invoice_notes" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableInvoiceNotes(s *string) *RecurringScheduleUpdateOne {
	if s != nil {
		rsuo.SetInvoiceNotes(*s)
	}
	return rsuo
}

// ClearInvoiceNotes clears the value of the "invoice_notes" field.
func (rsuo *RecurringScheduleUpdateOne) ClearInvoiceNotes() *RecurringScheduleUpdateOne {
	rsuo.mutation.ClearInvoiceNotes()
	return rsuo
}

// SetPaymentTermsDays sets the "payment_terms_days" field.
func (rsuo *RecurringScheduleUpdateOne) SetPaymentTermsDays(i int) *RecurringScheduleUpdateOne {
	rsuo.mutation.ResetPaymentTermsDays()
	rsuo.mutation.SetPaymentTermsDays(i)
	return rsuo
}

// SetNillablePaymentTermsDays sets the "payment_terms_days" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillablePaymentTermsDays(i *int) *RecurringScheduleUpdateOne {
	if i != nil {
		rsuo.SetPaymentTermsDays(*i)
	}
	return rsuo
}

// AddPaymentTermsDays adds i to the "payment_terms_days" field.
func (rsuo *RecurringScheduleUpdateOne) AddPaymentTermsDays(i int) *RecurringScheduleUpdateOne {
	rsuo.mutation.AddPaymentTermsDays(i)
	return rsuo
}

// SetAutoCharge sets the "auto_charge" field.
func (rsuo *RecurringScheduleUpdateOne) SetAutoCharge(b bool) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetAutoCharge(b)
	return rsuo
}

// SetNillableAutoCharge sets the "auto_charge" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableAutoCharge(b *bool) *RecurringScheduleUpdateOne {
	if b != nil {
		rsuo.SetAutoCharge(*b)
	}
	return rsuo
}

// SetRetryEnabled sets the "retry_enabled" field.
func (rsuo *RecurringScheduleUpdateOne) SetRetryEnabled(b bool) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetRetryEnabled(b)
	return rsuo
}

// SetNillableRetryEnabled sets the "retry_enabled" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableRetryEnabled(b *bool) *RecurringScheduleUpdateOne {
	if b != nil {
		rsuo.SetRetryEnabled(*b)
	}
	return rsuo
}

// SetMaxRetryAttempts sets the "max_retry_attempts" field.
func (rsuo *RecurringScheduleUpdateOne) SetMaxRetryAttempts(i int) *RecurringScheduleUpdateOne {
	rsuo.mutation.ResetMaxRetryAttempts()
	rsuo.mutation.SetMaxRetryAttempts(i)
	return rsuo
}

// SetNillableMaxRetryAttempts sets the "max_retry_attempts" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableMaxRetryAttempts(i *int) *RecurringScheduleUpdateOne {
	if i != nil {
		rsuo.SetMaxRetryAttempts(*i)
	}
	return rsuo
}

// AddMaxRetryAttempts adds i to the "max_retry_attempts" field.
func (rsuo *RecurringScheduleUpdateOne) AddMaxRetryAttempts(i int) *RecurringScheduleUpdateOne {
	rsuo.mutation.AddMaxRetryAttempts(i)
	return rsuo
}

// SetRetryIntervalHours sets the "retry_interval_hours" field.
func (rsuo *RecurringScheduleUpdateOne) SetRetryIntervalHours(i int) *RecurringScheduleUpdateOne {
	rsuo.mutation.ResetRetryIntervalHours()
	rsuo.mutation.SetRetryIntervalHours(i)
	return rsuo
}

// SetNillableRetryIntervalHours sets the "retry_interval_hours" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableRetryIntervalHours(i *int) *RecurringScheduleUpdateOne {
	if i != nil {
		rsuo.SetRetryIntervalHours(*i)
	}
	return rsuo
}

// AddRetryIntervalHours adds i to the "retry_interval_hours" field.
func (rsuo *RecurringScheduleUpdateOne) AddRetryIntervalHours(i int) *RecurringScheduleUpdateOne {
	rsuo.mutation.AddRetryIntervalHours(i)
	return rsuo
}

// SetRetryBackoffMultiplier sets the "retry_backoff_multiplier" field.
func (rsuo *RecurringScheduleUpdateOne) SetRetryBackoffMultiplier(f float64) *RecurringScheduleUpdateOne {
	rsuo.mutation.ResetRetryBackoffMultiplier()
	rsuo.mutation.SetRetryBackoffMultiplier(f)
	return rsuo
}

// SetNillableRetryBackoffMultiplier sets the "retry_backoff_multiplier" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableRetryBackoffMultiplier(f *float64) *RecurringScheduleUpdateOne {
	if f != nil {
		rsuo.SetRetryBackoffMultiplier(*f)
	}
	return rsuo
}

// AddRetryBackoffMultiplier adds f to the "retry_backoff_multiplier" field.
func (rsuo *RecurringScheduleUpdateOne) AddRetryBackoffMultiplier(f float64) *RecurringScheduleUpdateOne {
	rsuo.mutation.AddRetryBackoffMultiplier(f)
	return rsuo
}

// SetFailureNotificationSent sets the "failure_notification_sent" field.
func (rsuo *RecurringScheduleUpdateOne) SetFailureNotificationSent(b bool) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetFailureNotificationSent(b)
	return rsuo
}

// SetNillableFailureNotificationSent sets the "failure_notification_sent" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableFailureNotificationSent(b *bool) *RecurringScheduleUpdateOne {
	if b != nil {
		rsuo.SetFailureNotificationSent(*b)
	}
	return rsuo
}

// SetTotalInvoicesGenerated sets the "total_invoices_generated" field.
func (rsuo *RecurringScheduleUpdateOne) SetTotalInvoicesGenerated(i int) *RecurringScheduleUpdateOne {
	rsuo.mutation.ResetTotalInvoicesGenerated()
	rsuo.mutation.SetTotalInvoicesGenerated(i)
	return rsuo
}

// SetNillableTotalInvoicesGenerated sets the "total_invoices_generated" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableTotalInvoicesGenerated(i *int) *RecurringScheduleUpdateOne {
	if i != nil {
		rsuo.SetTotalInvoicesGenerated(*i)
	}
	return rsuo
}

// AddTotalInvoicesGenerated adds i to the "total_invoices_generated" field.
func (rsuo *RecurringScheduleUpdateOne) AddTotalInvoicesGenerated(i int) *RecurringScheduleUpdateOne {
	rsuo.mutation.AddTotalInvoicesGenerated(i)
	return rsuo
}

// SetTotalAmountBilled sets the "total_amount_billed" field.
func (rsuo *RecurringScheduleUpdateOne) SetTotalAmountBilled(d decimal.Decimal) *RecurringScheduleUpdateOne {
	rsuo.mutation.SetTotalAmountBilled(d)
	return rsuo
}

// SetNillableTotalAmountBilled sets the "total_amount_billed" field if the given value is not nil.
func (rsuo *RecurringScheduleUpdateOne) SetNillableTotalAmountBilled(d *decimal.Decimal) *RecurringScheduleUpdateOne {
	if d != nil {
		rsuo.SetTotalAmountBilled(*d)
	}
	return rsuo
}

// AddExecutionIDs adds the "executions" edge to the ScheduleExecution entity by IDs.
func (rsuo *RecurringScheduleUpdateOne) AddExecutionIDs(ids ...string) *RecurringScheduleUpdateOne {
	rsuo.mutation.AddExecutionIDs(ids...)
	return rsuo
}

// AddExecutions adds the "executions" edges to the ScheduleExecution entity.
func (rsuo *RecurringScheduleUpdateOne) AddExecutions(s ...*ScheduleExecution) *RecurringScheduleUpdateOne {
	ids := make([]string, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return rsuo.AddExecutionIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (rsuo *RecurringScheduleUpdateOne) AddAuditLogIDs(ids ...string) *RecurringScheduleUpdateOne {
	rsuo.mutation.AddAuditLogIDs(ids...)
	return rsuo
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (rsuo *RecurringScheduleUpdateOne) AddAuditLogs(a ...*AuditLog) *RecurringScheduleUpdateOne {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return rsuo.AddAuditLogIDs(ids...)
}

// Mutation returns the RecurringScheduleMutation object of the builder.
func (rsuo *RecurringScheduleUpdateOne) Mutation() *RecurringScheduleMutation {
	return rsuo.mutation
}

// ClearExecutions clears all "executions" edges to the ScheduleExecution entity.
func (rsuo *RecurringScheduleUpdateOne) ClearExecutions() *RecurringScheduleUpdateOne {
	rsuo.mutation.ClearExecutions()
	return rsuo
}

// RemoveExecutionIDs removes the "executions" edge to ScheduleExecution entities by IDs.
func (rsuo *RecurringScheduleUpdateOne) RemoveExecutionIDs(ids ...string) *RecurringScheduleUpdateOne {
	rsuo.mutation.RemoveExecutionIDs(ids...)
	return rsuo
}

// RemoveExecutions removes "executions" edges to ScheduleExecution entities.
func (rsuo *RecurringScheduleUpdateOne) RemoveExecutions(s ...*ScheduleExecution) *RecurringScheduleUpdateOne {
	ids := make([]string, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return rsuo.RemoveExecutionIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (rsuo *RecurringScheduleUpdateOne) ClearAuditLogs() *RecurringScheduleUpdateOne {
	rsuo.mutation.ClearAuditLogs()
	return rsuo
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (rsuo *RecurringScheduleUpdateOne) RemoveAuditLogIDs(ids ...string) *RecurringScheduleUpdateOne {
	rsuo.mutation.RemoveAuditLogIDs(ids...)
	return rsuo
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (rsuo *RecurringScheduleUpdateOne) RemoveAuditLogs(a ...*AuditLog) *RecurringScheduleUpdateOne {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return rsuo.RemoveAuditLogIDs(ids...)
}

// Where appends a list predicates to the RecurringScheduleUpdate builder.
func (rsuo *RecurringScheduleUpdateOne) Where(ps ...predicate.RecurringSchedule) *RecurringScheduleUpdateOne {
	rsuo.mutation.Where(ps...)
	return rsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (rsuo *RecurringScheduleUpdateOne) Select(field string, fields ...string) *RecurringScheduleUpdateOne {
	rsuo.fields = append([]string{field}, fields...)
	return rsuo
}

// Save executes the query and returns the updated RecurringSchedule entity.
func (rsuo *RecurringScheduleUpdateOne) Save(ctx context.Context) (*RecurringSchedule, error) {
	rsuo.defaults()
	return withHooks(ctx, rsuo.sqlSave, rsuo.mutation, rsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rsuo *RecurringScheduleUpdateOne) SaveX(ctx context.Context) *RecurringSchedule {
	node, err := rsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (rsuo *RecurringScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := rsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rsuo *RecurringScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := rsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rsuo *RecurringScheduleUpdateOne) defaults() {
	if _, ok := rsuo.mutation.UpdatedAt(); !ok {
		v := recurringschedule.UpdateDefaultUpdatedAt()
		rsuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rsuo *RecurringScheduleUpdateOne) check() error {
	if v, ok := rsuo.mutation.IntervalType(); ok {
		if err := recurringschedule.IntervalTypeValidator(v); err != nil {
			return &ValidationError{Name: "interval_type", err: fmt.Errorf(`ent: validator failed for field "RecurringSchedule.interval_type": %w`, err)}
		}
	}
	if v, ok := rsuo.mutation.Currency(); ok {
		if err := recurringschedule.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "RecurringSchedule.currency": %w`, err)}
		}
	}
	if rsuo.mutation.CustomerCleared() && len(rsuo.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecurringSchedule.customer"`)
	}
	return nil
}

func (rsuo *RecurringScheduleUpdateOne) sqlSave(ctx context.Context) (_node *RecurringSchedule, err error) {
	if err := rsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recurringschedule.Table, recurringschedule.Columns, sqlgraph.NewFieldSpec(recurringschedule.FieldID, field.TypeString))
	id, ok := rsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecurringSchedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := rsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recurringschedule.FieldID)
		for _, f := range fields {
			if !recurringschedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recurringschedule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := rsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := rsuo.mutation.Status(); ok {
		_spec.SetField(recurringschedule.FieldStatus, field.TypeString, value)
	}
	if value, ok := rsuo.mutation.UpdatedAt(); ok {
		_spec.SetField(recurringschedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if rsuo.mutation.CreatedByCleared() {
		_spec.ClearField(recurringschedule.FieldCreatedBy, field.TypeString)
	}
	if value, ok := rsuo.mutation.UpdatedBy(); ok {
		_spec.SetField(recurringschedule.FieldUpdatedBy, field.TypeString, value)
	}
	if rsuo.mutation.UpdatedByCleared() {
		_spec.ClearField(recurringschedule.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := rsuo.mutation.Metadata(); ok {
		_spec.SetField(recurringschedule.FieldMetadata, field.TypeJSON, value)
	}
	if value, ok := rsuo.mutation.Description(); ok {
		_spec.SetField(recurringschedule.FieldDescription, field.TypeString, value)
	}
	if rsuo.mutation.DescriptionCleared() {
		_spec.ClearField(recurringschedule.FieldDescription, field.TypeString)
	}
	if value, ok := rsuo.mutation.IntervalType(); ok {
		_spec.SetField(recurringschedule.FieldIntervalType, field.TypeString, value)
	}
	if value, ok := rsuo.mutation.CustomIntervalDays(); ok {
		_spec.SetField(recurringschedule.FieldCustomIntervalDays, field.TypeInt, value)
	}
	if value, ok := rsuo.mutation.AddedCustomIntervalDays(); ok {
		_spec.AddField(recurringschedule.FieldCustomIntervalDays, field.TypeInt, value)
	}
	if value, ok := rsuo.mutation.AnchorDay(); ok {
		_spec.SetField(recurringschedule.FieldAnchorDay, field.TypeInt, value)
	}
	if value, ok := rsuo.mutation.AddedAnchorDay(); ok {
		_spec.AddField(recurringschedule.FieldAnchorDay, field.TypeInt, value)
	}
	if value, ok := rsuo.mutation.EndDate(); ok {
		_spec.SetField(recurringschedule.FieldEndDate, field.TypeTime, value)
	}
	if rsuo.mutation.EndDateCleared() {
		_spec.ClearField(recurringschedule.FieldEndDate, field.TypeTime)
	}
	if value, ok := rsuo.mutation.NextRunDate(); ok {
		_spec.SetField(recurringschedule.FieldNextRunDate, field.TypeTime, value)
	}
	if value, ok := rsuo.mutation.LastRunDate(); ok {
		_spec.SetField(recurringschedule.FieldLastRunDate, field.TypeTime, value)
	}
	if rsuo.mutation.LastRunDateCleared() {
		_spec.ClearField(recurringschedule.FieldLastRunDate, field.TypeTime)
	}
	if value, ok := rsuo.mutation.Timezone(); ok {
		_spec.SetField(recurringschedule.FieldTimezone, field.TypeString, value)
	}
	if value, ok := rsuo.mutation.ScheduleStatus(); ok {
		_spec.SetField(recurringschedule.FieldScheduleStatus, field.TypeString, value)
	}
	if value, ok := rsuo.mutation.PausedAt(); ok {
		_spec.SetField(recurringschedule.FieldPausedAt, field.TypeTime, value)
	}
	if rsuo.mutation.PausedAtCleared() {
		_spec.ClearField(recurringschedule.FieldPausedAt, field.TypeTime)
	}
	if value, ok := rsuo.mutation.CancelledAt(); ok {
		_spec.SetField(recurringschedule.FieldCancelledAt, field.TypeTime, value)
	}
	if rsuo.mutation.CancelledAtCleared() {
		_spec.ClearField(recurringschedule.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := rsuo.mutation.CancellationReason(); ok {
		_spec.SetField(recurringschedule.FieldCancellationReason, field.TypeString, value)
	}
	if rsuo.mutation.CancellationReasonCleared() {
		_spec.ClearField(recurringschedule.FieldCancellationReason, field.TypeString)
	}
	if value, ok := rsuo.mutation.Currency(); ok {
		_spec.SetField(recurringschedule.FieldCurrency, field.TypeString, value)
	}
	if value, ok := rsuo.mutation.BaseAmount(); ok {
		_spec.SetField(recurringschedule.FieldBaseAmount, field.TypeOther, value)
	}
	if value, ok := rsuo.mutation.LineItems(); ok {
		_spec.SetField(recurringschedule.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := rsuo.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, recurringschedule.FieldLineItems, value)
		})
	}
	if rsuo.mutation.LineItemsCleared() {
		_spec.ClearField(recurringschedule.FieldLineItems, field.TypeJSON)
	}
	if value, ok := rsuo.mutation.TaxRate(); ok {
		_spec.SetField(recurringschedule.FieldTaxRate, field.TypeOther, value)
	}
	if value, ok := rsuo.mutation.TaxInclusive(); ok {
		_spec.SetField(recurringschedule.FieldTaxInclusive, field.TypeBool, value)
	}
	if value, ok := rsuo.mutation.ProrationEnabled(); ok {
		_spec.SetField(recurringschedule.FieldProrationEnabled, field.TypeBool, value)
	}
	if value, ok := rsuo.mutation.InvoiceNotes(); ok {
		_spec.SetField(recurringschedule.FieldInvoiceNotes, field.TypeString, value)
	}
	if rsuo.mutation.InvoiceNotesCleared() {
		_spec.ClearField(recurringschedule.FieldInvoiceNotes, field.TypeString)
	}
	if value, ok := rsuo.mutation.PaymentTermsDays(); ok {
		_spec.SetField(recurringschedule.FieldPaymentTermsDays, field.TypeInt, value)
	}
	if value, ok := rsuo.mutation.AddedPaymentTermsDays(); ok {
		_spec.AddField(recurringschedule.FieldPaymentTermsDays, field.TypeInt, value)
	}
	if value, ok := rsuo.mutation.AutoCharge(); ok {
		_spec.SetField(recurringschedule.FieldAutoCharge, field.TypeBool, value)
	}
	if value, ok := rsuo.mutation.RetryEnabled(); ok {
		_spec.SetField(recurringschedule.FieldRetryEnabled, field.TypeBool, value)
	}
	if value, ok := rsuo.mutation.MaxRetryAttempts(); ok {
		_spec.SetField(recurringschedule.FieldMaxRetryAttempts, field.TypeInt, value)
	}
	if value, ok := rsuo.mutation.AddedMaxRetryAttempts(); ok {
		_spec.AddField(recurringschedule.FieldMaxRetryAttempts, field.TypeInt, value)
	}
	if value, ok := rsuo.mutation.RetryIntervalHours(); ok {
		_spec.SetField(recurringschedule.FieldRetryIntervalHours, field.TypeInt, value)
	}
	if value, ok := rsuo.mutation.AddedRetryIntervalHours(); ok {
		_spec.AddField(recurringschedule.FieldRetryIntervalHours, field.TypeInt, value)
	}
	if value, ok := rsuo.mutation.RetryBackoffMultiplier(); ok {
		_spec.SetField(recurringschedule.FieldRetryBackoffMultiplier, field.TypeFloat64, value)
	}
	if value, ok := rsuo.mutation.AddedRetryBackoffMultiplier(); ok {
		_spec.AddField(recurringschedule.FieldRetryBackoffMultiplier, field.TypeFloat64, value)
	}
	if value, ok := rsuo.mutation.FailureNotificationSent(); ok {
		_spec.SetField(recurringschedule.FieldFailureNotificationSent, field.TypeBool, value)
	}
	if value, ok := rsuo.mutation.TotalInvoicesGenerated(); ok {
		_spec.SetField(recurringschedule.FieldTotalInvoicesGenerated, field.TypeInt, value)
	}
	if value, ok := rsuo.mutation.AddedTotalInvoicesGenerated(); ok {
		_spec.AddField(recurringschedule.FieldTotalInvoicesGenerated, field.TypeInt, value)
	}
	if value, ok := rsuo.mutation.TotalAmountBilled(); ok {
		_spec.SetField(recurringschedule.FieldTotalAmountBilled, field.TypeOther, value)
	}
	if rsuo.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recurringschedule.ExecutionsTable,
			Columns: []string{recurringschedule.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduleexecution.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rsuo.mutation.RemovedExecutionsIDs(); len(nodes) > 0 && !rsuo.mutation.ExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recurringschedule.ExecutionsTable,
			Columns: []string{recurringschedule.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduleexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rsuo.mutation.ExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recurringschedule.ExecutionsTable,
			Columns: []string{recurringschedule.ExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduleexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if rsuo.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recurringschedule.AuditLogsTable,
			Columns: []string{recurringschedule.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rsuo.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !rsuo.mutation.AuditLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recurringschedule.AuditLogsTable,
			Columns: []string{recurringschedule.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := rsuo.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recurringschedule.AuditLogsTable,
			Columns: []string{recurringschedule.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RecurringSchedule{config: rsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, rsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recurringschedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	rsuo.mutation.done = true
	return _node, nil
}

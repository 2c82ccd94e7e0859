// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/invoiceflow/invoiceflow/ent/auditlog"
	"github.com/invoiceflow/invoiceflow/ent/customer"
	"github.com/invoiceflow/invoiceflow/ent/recurringschedule"
	"github.com/invoiceflow/invoiceflow/ent/scheduleexecution"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

// RecurringScheduleCreate is the builder for creating a RecurringSchedule entity.
type RecurringScheduleCreate struct {
	config
	mutation *RecurringScheduleMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (rsc *RecurringScheduleCreate) SetTenantID(s string) *RecurringScheduleCreate {
	rsc.mutation.SetTenantID(s)
	return rsc
}

// SetStatus sets the "status" field.
func (rsc *RecurringScheduleCreate) SetStatus(s string) *RecurringScheduleCreate {
	rsc.mutation.SetStatus(s)
	return rsc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableStatus(s *string) *RecurringScheduleCreate {
	if s != nil {
		rsc.SetStatus(*s)
	}
	return rsc
}

// SetCreatedAt sets the "created_at" field.
func (rsc *RecurringScheduleCreate) SetCreatedAt(t time.Time) *RecurringScheduleCreate {
	rsc.mutation.SetCreatedAt(t)
	return rsc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableCreatedAt(t *time.Time) *RecurringScheduleCreate {
	if t != nil {
		rsc.SetCreatedAt(*t)
	}
	return rsc
}

// SetUpdatedAt sets the "updated_at" field.
func (rsc *RecurringScheduleCreate) SetUpdatedAt(t time.Time) *RecurringScheduleCreate {
	rsc.mutation.SetUpdatedAt(t)
	return rsc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableUpdatedAt(t *time.Time) *RecurringScheduleCreate {
	if t != nil {
		rsc.SetUpdatedAt(*t)
	}
	return rsc
}

// SetCreatedBy sets the "created_by" field.
func (rsc *RecurringScheduleCreate) SetCreatedBy(s string) *RecurringScheduleCreate {
	rsc.mutation.SetCreatedBy(s)
	return rsc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableCreatedBy(s *string) *RecurringScheduleCreate {
	if s != nil {
		rsc.SetCreatedBy(*s)
	}
	return rsc
}

// SetUpdatedBy sets the "updated_by" field.
func (rsc *RecurringScheduleCreate) SetUpdatedBy(s string) *RecurringScheduleCreate {
	rsc.mutation.SetUpdatedBy(s)
	return rsc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableUpdatedBy(s *string) *RecurringScheduleCreate {
	if s != nil {
		rsc.SetUpdatedBy(*s)
	}
	return rsc
}

// SetMetadata sets the "metadata" field.
func (rsc *RecurringScheduleCreate) SetMetadata(m map[string]string) *RecurringScheduleCreate {
	rsc.mutation.SetMetadata(m)
	return rsc
}

// SetCustomerID sets the "customer_id" field.
func (rsc *RecurringScheduleCreate) SetCustomerID(s string) *RecurringScheduleCreate {
	rsc.mutation.SetCustomerID(s)
	return rsc
}

// SetDescription sets the "description" field.
func (rsc *RecurringScheduleCreate) SetDescription(s string) *RecurringScheduleCreate {
	rsc.mutation.SetDescription(s)
	return rsc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableDescription(s *string) *RecurringScheduleCreate {
	if s != nil {
		rsc.SetDescription(*s)
	}
	return rsc
}

// SetIntervalType sets the "interval_type" field.
func (rsc *RecurringScheduleCreate) SetIntervalType(s string) *RecurringScheduleCreate {
	rsc.mutation.SetIntervalType(s)
	return rsc
}

// SetCustomIntervalDays sets the "custom_interval_days" field.
func (rsc *RecurringScheduleCreate) SetCustomIntervalDays(i int) *RecurringScheduleCreate {
	rsc.mutation.SetCustomIntervalDays(i)
	return rsc
}

// SetNillableCustomIntervalDays sets the "custom_interval_days" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableCustomIntervalDays(i *int) *RecurringScheduleCreate {
	if i != nil {
		rsc.SetCustomIntervalDays(*i)
	}
	return rsc
}

// SetAnchorDay sets the "anchor_day" field.
func (rsc *RecurringScheduleCreate) SetAnchorDay(i int) *RecurringScheduleCreate {
	rsc.mutation.SetAnchorDay(i)
	return rsc
}

// SetNillableAnchorDay sets the "anchor_day" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableAnchorDay(i *int) *RecurringScheduleCreate {
	if i != nil {
		rsc.SetAnchorDay(*i)
	}
	return rsc
}

// SetStartDate sets the "start_date" field.
func (rsc *RecurringScheduleCreate) SetStartDate(t time.Time) *RecurringScheduleCreate {
	rsc.mutation.SetStartDate(t)
	return rsc
}

// SetEndDate sets the "end_date" field.
func (rsc *RecurringScheduleCreate) SetEndDate(t time.Time) *RecurringScheduleCreate {
	rsc.mutation.SetEndDate(t)
	return rsc
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableEndDate(t *time.Time) *RecurringScheduleCreate {
	if t != nil {
		rsc.SetEndDate(*t)
	}
	return rsc
}

// SetNextRunDate sets the "next_run_date" field.
func (rsc *RecurringScheduleCreate) SetNextRunDate(t time.Time) *RecurringScheduleCreate {
	rsc.mutation.SetNextRunDate(t)
	return rsc
}

// SetLastRunDate sets the "last_run_date" field.
func (rsc *RecurringScheduleCreate) SetLastRunDate(t time.Time) *RecurringScheduleCreate {
	rsc.mutation.SetLastRunDate(t)
	return rsc
}

// SetNillableLastRunDate sets the "last_run_date" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableLastRunDate(t *time.Time) *RecurringScheduleCreate {
	if t != nil {
		rsc.SetLastRunDate(*t)
	}
	return rsc
}

// SetTimezone sets the "timezone" field.
func (rsc *RecurringScheduleCreate) SetTimezone(s string) *RecurringScheduleCreate {
	rsc.mutation.SetTimezone(s)
	return rsc
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableTimezone(s *string) *RecurringScheduleCreate {
	if s != nil {
		rsc.SetTimezone(*s)
	}
	return rsc
}

// SetScheduleStatus sets the "schedule_status" field.
func (rsc *RecurringScheduleCreate) SetScheduleStatus(s string) *RecurringScheduleCreate {
	rsc.mutation.SetScheduleStatus(s)
	return rsc
}

// SetNillableScheduleStatus sets the "schedule_status" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableScheduleStatus(s *string) *RecurringScheduleCreate {
	if s != nil {
		rsc.SetScheduleStatus(*s)
	}
	return rsc
}

// SetPausedAt sets the "paused_at" field.
func (rsc *RecurringScheduleCreate) SetPausedAt(t time.Time) *RecurringScheduleCreate {
	rsc.mutation.SetPausedAt(t)
	return rsc
}

// SetNillablePausedAt sets the "paused_at" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillablePausedAt(t *time.Time) *RecurringScheduleCreate {
	if t != nil {
		rsc.SetPausedAt(*t)
	}
	return rsc
}

// SetCancelledAt sets the "cancelled_at" field.
func (rsc *RecurringScheduleCreate) SetCancelledAt(t time.Time) *RecurringScheduleCreate {
	rsc.mutation.SetCancelledAt(t)
	return rsc
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableCancelledAt(t *time.Time) *RecurringScheduleCreate {
	if t != nil {
		rsc.SetCancelledAt(*t)
	}
	return rsc
}

// SetCancellationReason sets the "cancellation_reason" field.
func (rsc *RecurringScheduleCreate) SetCancellationReason(s string) *RecurringScheduleCreate {
	rsc.mutation.SetCancellationReason(s)
	return rsc
}

// SetNillableCancellationReason sets the "cancellation_reason" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableCancellationReason(s *string) *RecurringScheduleCreate {
	if s != nil {
		rsc.SetCancellationReason(*s)
	}
	return rsc
}

// SetCurrency sets the "currency" field.
func (rsc *RecurringScheduleCreate) SetCurrency(s string) *RecurringScheduleCreate {
	rsc.mutation.SetCurrency(s)
	return rsc
}

// SetBaseAmount sets the "base_amount" field.
func (rsc *RecurringScheduleCreate) SetBaseAmount(d decimal.Decimal) *RecurringScheduleCreate {
	rsc.mutation.SetBaseAmount(d)
	return rsc
}

// SetNillableBaseAmount sets the "base_amount" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableBaseAmount(d *decimal.Decimal) *RecurringScheduleCreate {
	if d != nil {
		rsc.SetBaseAmount(*d)
	}
	return rsc
}

// SetLineItems sets the "line_items" field.
func (rsc *RecurringScheduleCreate) SetLineItems(tli []types.ScheduleLineItem) *RecurringScheduleCreate {
	rsc.mutation.SetLineItems(tli)
	return rsc
}

// SetTaxRate sets the "tax_rate" field.
func (rsc *RecurringScheduleCreate) SetTaxRate(d decimal.Decimal) *RecurringScheduleCreate {
	rsc.mutation.SetTaxRate(d)
	return rsc
}

// SetNillableTaxRate sets the "tax_rate" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableTaxRate(d *decimal.Decimal) *RecurringScheduleCreate {
	if d != nil {
		rsc.SetTaxRate(*d)
	}
	return rsc
}

// SetTaxInclusive sets the "tax_inclusive" field.
func (rsc *RecurringScheduleCreate) SetTaxInclusive(b bool) *RecurringScheduleCreate {
	rsc.mutation.SetTaxInclusive(b)
	return rsc
}

// SetNillableTaxInclusive sets the "tax_inclusive" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableTaxInclusive(b *bool) *RecurringScheduleCreate {
	if b != nil {
		rsc.SetTaxInclusive(*b)
	}
	return rsc
}

// SetProrationEnabled sets the "proration_enabled" field.
func (rsc *RecurringScheduleCreate) SetProrationEnabled(b bool) *RecurringScheduleCreate {
	rsc.mutation.SetProrationEnabled(b)
	return rsc
}

// SetNillableProrationEnabled sets the "proration_enabled" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableProrationEnabled(b *bool) *RecurringScheduleCreate {
	if b != nil {
		rsc.SetProrationEnabled(*b)
	}
	return rsc
}

// SetInvoiceNotes sets the "invoice_notes" field.
func (rsc *RecurringScheduleCreate) SetInvoiceNotes(s string) *RecurringScheduleCreate {
	rsc.mutation.SetInvoiceNotes(s)
	return rsc
}

// SetNillableInvoiceNotes sets the "invoice_notes" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableInvoiceNotes(s *string) *RecurringScheduleCreate {
	if s != nil {
		rsc.SetInvoiceNotes(*s)
	}
	return rsc
}

// SetPaymentTermsDays sets the "payment_terms_days" field.
func (rsc *RecurringScheduleCreate) SetPaymentTermsDays(i int) *RecurringScheduleCreate {
	rsc.mutation.SetPaymentTermsDays(i)
	return rsc
}

// SetNillablePaymentTermsDays sets the "payment_terms_days" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillablePaymentTermsDays(i *int) *RecurringScheduleCreate {
	if i != nil {
		rsc.SetPaymentTermsDays(*i)
	}
	return rsc
}

// SetAutoCharge sets the "auto_charge" field.
func (rsc *RecurringScheduleCreate) SetAutoCharge(b bool) *RecurringScheduleCreate {
	rsc.mutation.SetAutoCharge(b)
	return rsc
}

// SetNillableAutoCharge sets the "auto_charge" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableAutoCharge(b *bool) *RecurringScheduleCreate {
	if b != nil {
		rsc.SetAutoCharge(*b)
	}
	return rsc
}

// SetRetryEnabled sets the "retry_enabled" field.
func (rsc *RecurringScheduleCreate) SetRetryEnabled(b bool) *RecurringScheduleCreate {
	rsc.mutation.SetRetryEnabled(b)
	return rsc
}

// SetNillableRetryEnabled sets the "retry_enabled" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableRetryEnabled(b *bool) *RecurringScheduleCreate {
	if b != nil {
		rsc.SetRetryEnabled(*b)
	}
	return rsc
}

// SetMaxRetryAttempts sets the "max_retry_attempts" field.
func (rsc *RecurringScheduleCreate) SetMaxRetryAttempts(i int) *RecurringScheduleCreate {
	rsc.mutation.SetMaxRetryAttempts(i)
	return rsc
}

// SetNillableMaxRetryAttempts sets the "max_retry_attempts" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableMaxRetryAttempts(i *int) *RecurringScheduleCreate {
	if i != nil {
		rsc.SetMaxRetryAttempts(*i)
	}
	return rsc
}

// SetRetryIntervalHours sets the "retry_interval_hours" field.
func (rsc *RecurringScheduleCreate) SetRetryIntervalHours(i int) *RecurringScheduleCreate {
	rsc.mutation.SetRetryIntervalHours(i)
	return rsc
}

// SetNillableRetryIntervalHours sets the "retry_interval_hours" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableRetryIntervalHours(i *int) *RecurringScheduleCreate {
	if i != nil {
		rsc.SetRetryIntervalHours(*i)
	}
	return rsc
}

// SetRetryBackoffMultiplier sets the "retry_backoff_multiplier" field.
func (rsc *RecurringScheduleCreate) SetRetryBackoffMultiplier(f float64) *RecurringScheduleCreate {
	rsc.mutation.SetRetryBackoffMultiplier(f)
	return rsc
}

// SetNillableRetryBackoffMultiplier sets the "retry_backoff_multiplier" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableRetryBackoffMultiplier(f *float64) *RecurringScheduleCreate {
	if f != nil {
		rsc.SetRetryBackoffMultiplier(*f)
	}
	return rsc
}

// SetFailureNotificationSent sets the "failure_notification_sent" field.
func (rsc *RecurringScheduleCreate) SetFailureNotificationSent(b bool) *RecurringScheduleCreate {
	rsc.mutation.SetFailureNotificationSent(b)
	return rsc
}

// SetNillableFailureNotificationSent sets the "failure_notification_sent" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableFailureNotificationSent(b *bool) *RecurringScheduleCreate {
	if b != nil {
		rsc.SetFailureNotificationSent(*b)
	}
	return rsc
}

// SetTotalInvoicesGenerated sets the "total_invoices_generated" field.
func (rsc *RecurringScheduleCreate) SetTotalInvoicesGenerated(i int) *RecurringScheduleCreate {
	rsc.mutation.SetTotalInvoicesGenerated(i)
	return rsc
}

// SetNillableTotalInvoicesGenerated sets the "total_invoices_generated" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableTotalInvoicesGenerated(i *int) *RecurringScheduleCreate {
	if i != nil {
		rsc.SetTotalInvoicesGenerated(*i)
	}
	return rsc
}

// SetTotalAmountBilled sets the "total_amount_billed" field.
func (rsc *RecurringScheduleCreate) SetTotalAmountBilled(d decimal.Decimal) *RecurringScheduleCreate {
	rsc.mutation.SetTotalAmountBilled(d)
	return rsc
}

// SetNillableTotalAmountBilled sets the "total_amount_billed" field if the given value is not nil.
func (rsc *RecurringScheduleCreate) SetNillableTotalAmountBilled(d *decimal.Decimal) *RecurringScheduleCreate {
	if d != nil {
		rsc.SetTotalAmountBilled(*d)
	}
	return rsc
}

// SetID sets the "id" field.
func (rsc *RecurringScheduleCreate) SetID(s string) *RecurringScheduleCreate {
	rsc.mutation.SetID(s)
	return rsc
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (rsc *RecurringScheduleCreate) SetCustomer(c *Customer) *RecurringScheduleCreate {
	return rsc.SetCustomerID(c.ID)
}

// AddExecutionIDs adds the "executions" edge to the ScheduleExecution entity by IDs.
func (rsc *RecurringScheduleCreate) AddExecutionIDs(ids ...string) *RecurringScheduleCreate {
	rsc.mutation.AddExecutionIDs(ids...)
	return rsc
}

// AddExecutions adds the "executions" edges to the ScheduleExecution entity.
func (rsc *RecurringScheduleCreate) AddExecutions(s ...*ScheduleExecution) *RecurringScheduleCreate {
	ids := make([]string, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return rsc.AddExecutionIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (rsc *RecurringScheduleCreate) AddAuditLogIDs(ids ...string) *RecurringScheduleCreate {
	rsc.mutation.AddAuditLogIDs(ids...)
	return rsc
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (rsc *RecurringScheduleCreate) AddAuditLogs(a ...*AuditLog) *RecurringScheduleCreate {
	ids := make([]string, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return rsc.AddAuditLogIDs(ids...)
}

// Mutation returns the RecurringScheduleMutation object of the builder.
func (rsc *RecurringScheduleCreate) Mutation() *RecurringScheduleMutation {
	return rsc.mutation
}

// Save creates the RecurringSchedule in the database.
func (rsc *RecurringScheduleCreate) Save(ctx context.Context) (*RecurringSchedule, error) {
	rsc.defaults()
	return withHooks(ctx, rsc.sqlSave, rsc.mutation, rsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rsc *RecurringScheduleCreate) SaveX(ctx context.Context) *RecurringSchedule {
	v, err := rsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rsc *RecurringScheduleCreate) Exec(ctx context.Context) error {
	_, err := rsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rsc *RecurringScheduleCreate) ExecX(ctx context.Context) {
	if err := rsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rsc *RecurringScheduleCreate) defaults() {
	if _, ok := rsc.mutation.Status(); !ok {
		v := recurringschedule.DefaultStatus
		rsc.mutation.SetStatus(v)
	}
	if _, ok := rsc.mutation.CreatedAt(); !ok {
		v := recurringschedule.DefaultCreatedAt()
		rsc.mutation.SetCreatedAt(v)
	}
	if _, ok := rsc.mutation.UpdatedAt(); !ok {
		v := recurringschedule.DefaultUpdatedAt()
		rsc.mutation.SetUpdatedAt(v)
	}
	if _, ok := rsc.mutation.Metadata(); !ok {
		v := recurringschedule.DefaultMetadata
		rsc.mutation.SetMetadata(v)
	}
	if _, ok := rsc.mutation.CustomIntervalDays(); !ok {
		v := recurringschedule.DefaultCustomIntervalDays
		rsc.mutation.SetCustomIntervalDays(v)
	}
	if _, ok := rsc.mutation.AnchorDay(); !ok {
		v := recurringschedule.DefaultAnchorDay
		rsc.mutation.SetAnchorDay(v)
	}
	if _, ok := rsc.mutation.Timezone(); !ok {
		v := recurringschedule.DefaultTimezone
		rsc.mutation.SetTimezone(v)
	}
	if _, ok := rsc.mutation.ScheduleStatus(); !ok {
		v := recurringschedule.DefaultScheduleStatus
		rsc.mutation.SetScheduleStatus(v)
	}
	if _, ok := rsc.mutation.BaseAmount(); !ok {
		v := recurringschedule.DefaultBaseAmount
		rsc.mutation.SetBaseAmount(v)
	}
	if _, ok := rsc.mutation.TaxRate(); !ok {
		v := recurringschedule.DefaultTaxRate
		rsc.mutation.SetTaxRate(v)
	}
	if _, ok := rsc.mutation.TaxInclusive(); !ok {
		v := recurringschedule.DefaultTaxInclusive
		rsc.mutation.SetTaxInclusive(v)
	}
	if _, ok := rsc.mutation.ProrationEnabled(); !ok {
		v := recurringschedule.DefaultProrationEnabled
		rsc.mutation.SetProrationEnabled(v)
	}
	if _, ok := rsc.mutation.PaymentTermsDays(); !ok {
		v := recurringschedule.DefaultPaymentTermsDays
		rsc.mutation.SetPaymentTermsDays(v)
	}
	if _, ok := rsc.mutation.AutoCharge(); !ok {
		v := recurringschedule.DefaultAutoCharge
		rsc.mutation.SetAutoCharge(v)
	}
	if _, ok := rsc.mutation.RetryEnabled(); !ok {
		v := recurringschedule.DefaultRetryEnabled
		rsc.mutation.SetRetryEnabled(v)
	}
	if _, ok := rsc.mutation.MaxRetryAttempts(); !ok {
		v := recurringschedule.DefaultMaxRetryAttempts
		rsc.mutation.SetMaxRetryAttempts(v)
	}
	if _, ok := rsc.mutation.RetryIntervalHours(); !ok {
		v := recurringschedule.DefaultRetryIntervalHours
		rsc.mutation.SetRetryIntervalHours(v)
	}
	if _, ok := rsc.mutation.RetryBackoffMultiplier(); !ok {
		v := recurringschedule.DefaultRetryBackoffMultiplier
		rsc.mutation.SetRetryBackoffMultiplier(v)
	}
	if _, ok := rsc.mutation.FailureNotificationSent(); !ok {
		v := recurringschedule.DefaultFailureNotificationSent
		rsc.mutation.SetFailureNotificationSent(v)
	}
	if _, ok := rsc.mutation.TotalInvoicesGenerated(); !ok {
		v := recurringschedule.DefaultTotalInvoicesGenerated
		rsc.mutation.SetTotalInvoicesGenerated(v)
	}
	if _, ok := rsc.mutation.TotalAmountBilled(); !ok {
		v := recurringschedule.DefaultTotalAmountBilled
		rsc.mutation.SetTotalAmountBilled(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rsc *RecurringScheduleCreate) check() error {
	if _, ok := rsc.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "RecurringSchedule.tenant_id"`)}
	}
	if v, ok := rsc.mutation.TenantID(); ok {
		if err := recurringschedule.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "RecurringSchedule.tenant_id": %w`, err)}
		}
	}
	if _, ok := rsc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RecurringSchedule.status"`)}
	}
	if _, ok := rsc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RecurringSchedule.created_at"`)}
	}
	if _, ok := rsc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RecurringSchedule.updated_at"`)}
	}
	if _, ok := rsc.mutation.Metadata(); !ok {
		return &ValidationError{Name: "metadata", err: errors.New(`ent: missing required field "RecurringSchedule.metadata"`)}
	}
	if _, ok := rsc.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`ent: missing required field "RecurringSchedule.customer_id"`)}
	}
	if v, ok := rsc.mutation.CustomerID(); ok {
		if err := recurringschedule.CustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "customer_id", err: fmt.Errorf(`ent: validator failed for field "RecurringSchedule.customer_id": %w`, err)}
		}
	}
	if _, ok := rsc.mutation.IntervalType(); !ok {
		return &ValidationError{Name: "interval_type", err: errors.New(`ent: missing required field "RecurringSchedule.interval_type"`)}
	}
	if v, ok := rsc.mutation.IntervalType(); ok {
		if err := recurringschedule.IntervalTypeValidator(v); err != nil {
			return &ValidationError{Name: "interval_type", err: fmt.Errorf(`ent: validator failed for field "RecurringSchedule.interval_type": %w`, err)}
		}
	}
	if _, ok := rsc.mutation.CustomIntervalDays(); !ok {
		return &ValidationError{Name: "custom_interval_days", err: errors.New(`ent: missing required field "RecurringSchedule.custom_interval_days"`)}
	}
	if _, ok := rsc.mutation.AnchorDay(); !ok {
		return &ValidationError{Name: "anchor_day", err: errors.New(`ent: missing required field "RecurringSchedule.anchor_day"`)}
	}
	if _, ok := rsc.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "RecurringSchedule.start_date"`)}
	}
	if _, ok := rsc.mutation.NextRunDate(); !ok {
		return &ValidationError{Name: "next_run_date", err: errors.New(`ent: missing required field "RecurringSchedule.next_run_date"`)}
	}
	if _, ok := rsc.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`ent: missing required field "RecurringSchedule.timezone"`)}
	}
	if _, ok := rsc.mutation.ScheduleStatus(); !ok {
		return &ValidationError{Name: "schedule_status", err: errors.New(`ent: missing required field "RecurringSchedule.schedule_status"`)}
	}
	if _, ok := rsc.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "RecurringSchedule.currency"`)}
	}
	if v, ok := rsc.mutation.Currency(); ok {
		if err := recurringschedule.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "RecurringSchedule.currency": %w`, err)}
		}
	}
	if _, ok := rsc.mutation.BaseAmount(); !ok {
		return &ValidationError{Name: "base_amount", err: errors.New(`ent: missing required field "RecurringSchedule.base_amount"`)}
	}
	if _, ok := rsc.mutation.TaxRate(); !ok {
		return &ValidationError{Name: "tax_rate", err: errors.New(`ent: missing required field "RecurringSchedule.tax_rate"`)}
	}
	if _, ok := rsc.mutation.TaxInclusive(); !ok {
		return &ValidationError{Name: "tax_inclusive", err: errors.New(`ent: missing required field "RecurringSchedule.tax_inclusive"`)}
	}
	if _, ok := rsc.mutation.ProrationEnabled(); !ok {
		return &ValidationError{Name: "proration_enabled", err: errors.New(`ent: missing required field "RecurringSchedule.proration_enabled"`)}
	}
	if _, ok := rsc.mutation.PaymentTermsDays(); !ok {
		return &ValidationError{Name: "payment_terms_days", err: errors.New(`ent: missing required field "RecurringSchedule.payment_terms_days"`)}
	}
	if _, ok := rsc.mutation.AutoCharge(); !ok {
		return &ValidationError{Name: "auto_charge", err: errors.New(`ent: missing required field "RecurringSchedule.auto_charge"`)}
	}
	if _, ok := rsc.mutation.RetryEnabled(); !ok {
		return &ValidationError{Name: "retry_enabled", err: errors.New(`ent: missing required field "RecurringSchedule.retry_enabled"`)}
	}
	if _, ok := rsc.mutation.MaxRetryAttempts(); !ok {
		return &ValidationError{Name: "max_retry_attempts", err: errors.New(`ent: missing required field "RecurringSchedule.max_retry_attempts"`)}
	}
	if _, ok := rsc.mutation.RetryIntervalHours(); !ok {
		return &ValidationError{Name: "retry_interval_hours", err: errors.New(`ent: missing required field "RecurringSchedule.retry_interval_hours"`)}
	}
	if _, ok := rsc.mutation.RetryBackoffMultiplier(); !ok {
		return &ValidationError{Name: "retry_backoff_multiplier", err: errors.New(`ent: missing required field "RecurringSchedule.retry_backoff_multiplier"`)}
	}
	if _, ok := rsc.mutation.FailureNotificationSent(); !ok {
		return &ValidationError{Name: "failure_notification_sent", err: errors.New(`ent: missing required field "RecurringSchedule.failure_notification_sent"`)}
	}
	if _, ok := rsc.mutation.TotalInvoicesGenerated(); !ok {
		return &ValidationError{Name: "total_invoices_generated", err: errors.New(`ent: missing required field "RecurringSchedule.total_invoices_generated"`)}
	}
	if _, ok := rsc.mutation.TotalAmountBilled(); !ok {
		return &ValidationError{Name: "total_amount_billed", err: errors.New(`ent: missing required field "RecurringSchedule.total_amount_billed"`)}
	}
	if len(rsc.mutation.CustomerIDs()) == 0 {
		return &ValidationError{Name: "customer", err: errors.New(`ent: missing required edge "RecurringSchedule.customer"`)}
	}
	return nil
}

func (rsc *RecurringScheduleCreate) sqlSave(ctx context.Context) (*RecurringSchedule, error) {
	if err := rsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rsc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RecurringSchedule.ID type: %T", _spec.ID.Value)
		}
	}
	rsc.mutation.id = &_node.ID
	rsc.mutation.done = true
	return _node, nil
}

func (rsc *RecurringScheduleCreate) createSpec() (*RecurringSchedule, *sqlgraph.CreateSpec) {
	var (
		_node = &RecurringSchedule{config: rsc.config}
		_spec = sqlgraph.NewCreateSpec(recurringschedule.Table, sqlgraph.NewFieldSpec(recurringschedule.FieldID, field.TypeString))
	)
	if id, ok := rsc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := rsc.mutation.TenantID(); ok {
		_spec.SetField(recurringschedule.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := rsc.mutation.Status(); ok {
		_spec.SetField(recurringschedule.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := rsc.mutation.CreatedAt(); ok {
		_spec.SetField(recurringschedule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := rsc.mutation.UpdatedAt(); ok {
		_spec.SetField(recurringschedule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := rsc.mutation.CreatedBy(); ok {
		_spec.SetField(recurringschedule.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := rsc.mutation.UpdatedBy(); ok {
		_spec.SetField(recurringschedule.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := rsc.mutation.Metadata(); ok {
		_spec.SetField(recurringschedule.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := rsc.mutation.Description(); ok {
		_spec.SetField(recurringschedule.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := rsc.mutation.IntervalType(); ok {
		_spec.SetField(recurringschedule.FieldIntervalType, field.TypeString, value)
		_node.IntervalType = value
	}
	if value, ok := rsc.mutation.CustomIntervalDays(); ok {
		_spec.SetField(recurringschedule.FieldCustomIntervalDays, field.TypeInt, value)
		_node.CustomIntervalDays = value
	}
	if value, ok := rsc.mutation.AnchorDay(); ok {
		_spec.SetField(recurringschedule.FieldAnchorDay, field.TypeInt, value)
		_node.AnchorDay = value
	}
	if value, ok := rsc.mutation.StartDate(); ok {
		_spec.SetField(recurringschedule.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := rsc.mutation.EndDate(); ok {
		_spec.SetField(recurringschedule.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	if value, ok := rsc.mutation.NextRunDate(); ok {
		_spec.SetField(recurringschedule.FieldNextRunDate, field.TypeTime, value)
		_node.NextRunDate = value
	}
	if value, ok := rsc.mutation.LastRunDate(); ok {
		_spec.SetField(recurringschedule.FieldLastRunDate, field.TypeTime, value)
		_node.LastRunDate = &value
	}
	if value, ok := rsc.mutation.Timezone(); ok {
		_spec.SetField(recurringschedule.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := rsc.mutation.ScheduleStatus(); ok {
		_spec.SetField(recurringschedule.FieldScheduleStatus, field.TypeString, value)
		_node.ScheduleStatus = value
	}
	if value, ok := rsc.mutation.PausedAt(); ok {
		_spec.SetField(recurringschedule.FieldPausedAt, field.TypeTime, value)
		_node.PausedAt = &value
	}
	if value, ok := rsc.mutation.CancelledAt(); ok {
		_spec.SetField(recurringschedule.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := rsc.mutation.CancellationReason(); ok {
		_spec.SetField(recurringschedule.FieldCancellationReason, field.TypeString, value)
		_node.CancellationReason = value
	}
	if value, ok := rsc.mutation.Currency(); ok {
		_spec.SetField(recurringschedule.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := rsc.mutation.BaseAmount(); ok {
		_spec.SetField(recurringschedule.FieldBaseAmount, field.TypeOther, value)
		_node.BaseAmount = value
	}
	if value, ok := rsc.mutation.LineItems(); ok {
		_spec.SetField(recurringschedule.FieldLineItems, field.TypeJSON, value)
		_node.LineItems = value
	}
	if value, ok := rsc.mutation.TaxRate(); ok {
		_spec.SetField(recurringschedule.FieldTaxRate, field.TypeOther, value)
		_node.TaxRate = value
	}
	if value, ok := rsc.mutation.TaxInclusive(); ok {
		_spec.SetField(recurringschedule.FieldTaxInclusive, field.TypeBool, value)
		_node.TaxInclusive = value
	}
	if value, ok := rsc.mutation.ProrationEnabled(); ok {
		_spec.SetField(recurringschedule.FieldProrationEnabled, field.TypeBool, value)
		_node.ProrationEnabled = value
	}
	if value, ok := rsc.mutation.InvoiceNotes(); ok {
		_spec.SetField(recurringschedule.FieldInvoiceNotes, field.TypeString, value)
		_node.InvoiceNotes = value
	}
	if value, ok := rsc.mutation.PaymentTermsDays(); ok {
		_spec.SetField(recurringschedule.FieldPaymentTermsDays, field.TypeInt, value)
		_node.PaymentTermsDays = value
	}
	if value, ok := rsc.mutation.AutoCharge(); ok {
		_spec.SetField(recurringschedule.FieldAutoCharge, field.TypeBool, value)
		_node.AutoCharge = value
	}
	if value, ok := rsc.mutation.RetryEnabled(); ok {
		_spec.SetField(recurringschedule.FieldRetryEnabled, field.TypeBool, value)
		_node.RetryEnabled = value
	}
	if value, ok := rsc.mutation.MaxRetryAttempts(); ok {
		_spec.SetField(recurringschedule.FieldMaxRetryAttempts, field.TypeInt, value)
		_node.MaxRetryAttempts = value
	}
	if value, ok := rsc.mutation.RetryIntervalHours(); ok {
		_spec.SetField(recurringschedule.FieldRetryIntervalHours, field.TypeInt, value)
		_node.RetryIntervalHours = value
	}
	if value, ok := rsc.mutation.RetryBackoffMultiplier(); ok {
		_spec.SetField(recurringschedule.FieldRetryBackoffMultiplier, field.TypeFloat64, value)
		_node.RetryBackoffMultiplier = value
	}
	if value, ok := rsc.mutation.FailureNotificationSent(); ok {
		_spec.SetField(recurringschedule.FieldFailureNotificationSent, field.TypeBool, value)
		_node.FailureNotificationSent = value
	}
	if value, ok := rsc.mutation.TotalInvoicesGenerated(); ok {
		_spec.SetField(recurringschedule.FieldTotalInvoicesGenerated, field.TypeInt, value)
		_node.TotalInvoicesGenerated = value
	}
	if value, ok := rsc.mutation.TotalAmountBilled(); ok {
		_spec.SetField(recurringschedule.FieldTotalAmountBilled, field.TypeOther, value)
		_node.TotalAmountBilled = value
	}
	if nodes := rsc.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recurringschedule.CustomerTable,
			Columns: []string{recurringschedule.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CustomerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := rsc.mutation.ExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := rsc.mutation.AuditLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecurringScheduleCreateBulk is the builder for creating many RecurringSchedule entities in bulk.
type RecurringScheduleCreateBulk struct {
	config
	err      error
	builders []*RecurringScheduleCreate
}

// Save creates the RecurringSchedule entities in the database.
func (rscb *RecurringScheduleCreateBulk) Save(ctx context.Context) ([]*RecurringSchedule, error) {
	if rscb.err != nil {
		return nil, rscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rscb.builders))
	nodes := make([]*RecurringSchedule, len(rscb.builders))
	mutators := make([]Mutator, len(rscb.builders))
	for i := range rscb.builders {
		func(i int, root context.Context) {
			builder := rscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecurringScheduleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, rscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rscb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, rscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rscb *RecurringScheduleCreateBulk) SaveX(ctx context.Context) []*RecurringSchedule {
	v, err := rscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rscb *RecurringScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := rscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rscb *RecurringScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := rscb.Exec(ctx); err != nil {
		panic(err)
	}
}

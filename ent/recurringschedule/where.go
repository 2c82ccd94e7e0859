// Code generated by ent, DO NOT EDIT.

package recurringschedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/invoiceflow/invoiceflow/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldTenantID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldUpdatedBy, v))
}

// CustomerID applies equality check predicate on the "customer_id" field. It's identical to CustomerIDEQ.
func CustomerID(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldCustomerID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldDescription, v))
}

// IntervalType applies equality check predicate on the "interval_type" field. It's identical to IntervalTypeEQ.
func IntervalType(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldIntervalType, v))
}

// CustomIntervalDays applies equality check predicate on the "custom_interval_days" field. It's identical to CustomIntervalDaysEQ.
func CustomIntervalDays(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldCustomIntervalDays, v))
}

// AnchorDay applies equality check predicate on the "anchor_day" field. It's identical to AnchorDayEQ.
func AnchorDay(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldAnchorDay, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldEndDate, v))
}

// NextRunDate applies equality check predicate on the "next_run_date" field. It's identical to NextRunDateEQ.
func NextRunDate(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldNextRunDate, v))
}

// LastRunDate applies equality check predicate on the "last_run_date" field. It's identical to LastRunDateEQ.
func LastRunDate(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldLastRunDate, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldTimezone, v))
}

// ScheduleStatus applies equality check predicate on the "schedule_status" field. It's identical to ScheduleStatusEQ.
func ScheduleStatus(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldScheduleStatus, v))
}

// PausedAt applies equality check predicate on the "paused_at" field. It's identical to PausedAtEQ.
func PausedAt(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldPausedAt, v))
}

// CancelledAt applies equality check predicate on the "cancelled_at" field. It's identical to CancelledAtEQ.
func CancelledAt(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldCancelledAt, v))
}

// CancellationReason applies equality check predicate on the "cancellation_reason" field. It's identical to CancellationReasonEQ.
func CancellationReason(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldCancellationReason, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldCurrency, v))
}

// BaseAmount applies equality check predicate on the "base_amount" field. It's identical to BaseAmountEQ.
func BaseAmount(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldBaseAmount, v))
}

// TaxRate applies equality check predicate on the "tax_rate" field. It's identical to TaxRateEQ.
func TaxRate(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldTaxRate, v))
}

// TaxInclusive applies equality check predicate on the "tax_inclusive" field. It's identical to TaxInclusiveEQ.
func TaxInclusive(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldTaxInclusive, v))
}

// ProrationEnabled applies equality check predicate on the "proration_enabled" field. It's identical to ProrationEnabledEQ.
func ProrationEnabled(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldProrationEnabled, v))
}

// InvoiceNotes applies equality check predicate on the "invoice_notes" field. It's identical to InvoiceNotesEQ.
func InvoiceNotes(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldInvoiceNotes, v))
}

// PaymentTermsDays applies equality check predicate on the "payment_terms_days" field. It's identical to PaymentTermsDaysEQ.
func PaymentTermsDays(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldPaymentTermsDays, v))
}

// AutoCharge applies equality check predicate on the "auto_charge" field. It's identical to AutoChargeEQ.
func AutoCharge(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldAutoCharge, v))
}

// RetryEnabled applies equality check predicate on the "retry_enabled" field. It's identical to RetryEnabledEQ.
func RetryEnabled(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldRetryEnabled, v))
}

// MaxRetryAttempts applies equality check predicate on the "max_retry_attempts" field. It's identical to MaxRetryAttemptsEQ.
func MaxRetryAttempts(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldMaxRetryAttempts, v))
}

// RetryIntervalHours applies equality check predicate on the "retry_interval_hours" field. It's identical to RetryIntervalHoursEQ.
func RetryIntervalHours(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldRetryIntervalHours, v))
}

// RetryBackoffMultiplier applies equality check predicate on the "retry_backoff_multiplier" field. It's identical to RetryBackoffMultiplierEQ.
func RetryBackoffMultiplier(v float64) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldRetryBackoffMultiplier, v))
}

// FailureNotificationSent applies equality check predicate on the "failure_notification_sent" field. It's identical to FailureNotificationSentEQ.
func FailureNotificationSent(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldFailureNotificationSent, v))
}

// TotalInvoicesGenerated applies equality check predicate on the "total_invoices_generated" field. It's identical to TotalInvoicesGeneratedEQ.
func TotalInvoicesGenerated(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldTotalInvoicesGenerated, v))
}

// TotalAmountBilled applies equality check predicate on the "total_amount_billed" field. It's identical to TotalAmountBilledEQ.
func TotalAmountBilled(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldTotalAmountBilled, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContainsFold(FieldTenantID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// CustomerIDEQ applies the EQ predicate on the "customer_id" field.
func CustomerIDEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldCustomerID, v))
}

// CustomerIDNEQ applies the NEQ predicate on the "customer_id" field.
func CustomerIDNEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldCustomerID, v))
}

// CustomerIDIn applies the In predicate on the "customer_id" field.
func CustomerIDIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldCustomerID, vs...))
}

// CustomerIDNotIn applies the NotIn predicate on the "customer_id" field.
func CustomerIDNotIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldCustomerID, vs...))
}

// CustomerIDGT applies the GT predicate on the "customer_id" field.
func CustomerIDGT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldCustomerID, v))
}

// CustomerIDGTE applies the GTE predicate on the "customer_id" field.
func CustomerIDGTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldCustomerID, v))
}

// CustomerIDLT applies the LT predicate on the "customer_id" field.
func CustomerIDLT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldCustomerID, v))
}

// CustomerIDLTE applies the LTE predicate on the "customer_id" field.
func CustomerIDLTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldCustomerID, v))
}

// CustomerIDContains applies the Contains predicate on the "customer_id" field.
func CustomerIDContains(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContains(FieldCustomerID, v))
}

// CustomerIDHasPrefix applies the HasPrefix predicate on the "customer_id" field.
func CustomerIDHasPrefix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasPrefix(FieldCustomerID, v))
}

// CustomerIDHasSuffix applies the HasSuffix predicate on the "customer_id" field.
func CustomerIDHasSuffix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasSuffix(FieldCustomerID, v))
}

// CustomerIDEqualFold applies the EqualFold predicate on the "customer_id" field.
func CustomerIDEqualFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEqualFold(FieldCustomerID, v))
}

// CustomerIDContainsFold applies the ContainsFold predicate on the "customer_id" field.
func CustomerIDContainsFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContainsFold(FieldCustomerID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContainsFold(FieldDescription, v))
}

// IntervalTypeEQ applies the EQ predicate on the "interval_type" field.
func IntervalTypeEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldIntervalType, v))
}

// IntervalTypeNEQ applies the NEQ predicate on the "interval_type" field.
func IntervalTypeNEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldIntervalType, v))
}

// IntervalTypeIn applies the In predicate on the "interval_type" field.
func IntervalTypeIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldIntervalType, vs...))
}

// IntervalTypeNotIn applies the NotIn predicate on the "interval_type" field.
func IntervalTypeNotIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldIntervalType, vs...))
}

// IntervalTypeGT applies the GT predicate on the "interval_type" field.
func IntervalTypeGT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldIntervalType, v))
}

// IntervalTypeGTE applies the GTE predicate on the "interval_type" field.
func IntervalTypeGTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldIntervalType, v))
}

// IntervalTypeLT applies the LT predicate on the "interval_type" field.
func IntervalTypeLT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldIntervalType, v))
}

// IntervalTypeLTE applies the LTE predicate on the "interval_type" field.
func IntervalTypeLTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldIntervalType, v))
}

// IntervalTypeContains applies the Contains predicate on the "interval_type" field.
func IntervalTypeContains(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContains(FieldIntervalType, v))
}

// IntervalTypeHasPrefix applies the HasPrefix predicate on the "interval_type" field.
func IntervalTypeHasPrefix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasPrefix(FieldIntervalType, v))
}

// IntervalTypeHasSuffix applies the HasSuffix predicate on the "interval_type" field.
func IntervalTypeHasSuffix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasSuffix(FieldIntervalType, v))
}

// IntervalTypeEqualFold applies the EqualFold predicate on the "interval_type" field.
func IntervalTypeEqualFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEqualFold(FieldIntervalType, v))
}

// IntervalTypeContainsFold applies the ContainsFold predicate on the "interval_type" field.
func IntervalTypeContainsFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContainsFold(FieldIntervalType, v))
}

// CustomIntervalDaysEQ applies the EQ predicate on the "custom_interval_days" field.
func CustomIntervalDaysEQ(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldCustomIntervalDays, v))
}

// CustomIntervalDaysNEQ applies the NEQ predicate on the "custom_interval_days" field.
func CustomIntervalDaysNEQ(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldCustomIntervalDays, v))
}

// CustomIntervalDaysIn applies the In predicate on the "custom_interval_days" field.
func CustomIntervalDaysIn(vs ...int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldCustomIntervalDays, vs...))
}

// CustomIntervalDaysNotIn applies the NotIn predicate on the "custom_interval_days" field.
func CustomIntervalDaysNotIn(vs ...int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldCustomIntervalDays, vs...))
}

// CustomIntervalDaysGT applies the GT predicate on the "custom_interval_days" field.
func CustomIntervalDaysGT(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldCustomIntervalDays, v))
}

// CustomIntervalDaysGTE applies the GTE predicate on the "custom_interval_days" field.
func CustomIntervalDaysGTE(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldCustomIntervalDays, v))
}

// CustomIntervalDaysLT applies the LT predicate on the "custom_interval_days" field.
func CustomIntervalDaysLT(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldCustomIntervalDays, v))
}

// CustomIntervalDaysLTE applies the LTE predicate on the "custom_interval_days" field.
func CustomIntervalDaysLTE(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldCustomIntervalDays, v))
}

// AnchorDayEQ applies the EQ predicate on the "anchor_day" field.
func AnchorDayEQ(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldAnchorDay, v))
}

// AnchorDayNEQ applies the NEQ predicate on the "anchor_day" field.
func AnchorDayNEQ(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldAnchorDay, v))
}

// AnchorDayIn applies the In predicate on the "anchor_day" field.
func AnchorDayIn(vs ...int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldAnchorDay, vs...))
}

// AnchorDayNotIn applies the NotIn predicate on the "anchor_day" field.
func AnchorDayNotIn(vs ...int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldAnchorDay, vs...))
}

// AnchorDayGT applies the GT predicate on the "anchor_day" field.
func AnchorDayGT(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldAnchorDay, v))
}

// AnchorDayGTE applies the GTE predicate on the "anchor_day" field.
func AnchorDayGTE(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldAnchorDay, v))
}

// AnchorDayLT applies the LT predicate on the "anchor_day" field.
func AnchorDayLT(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldAnchorDay, v))
}

// AnchorDayLTE applies the LTE predicate on the "anchor_day" field.
func AnchorDayLTE(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldAnchorDay, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldStartDate, v))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldEndDate, v))
}

// EndDateIsNil applies the IsNil predicate on the "end_date" field.
func EndDateIsNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIsNull(FieldEndDate))
}

// EndDateNotNil applies the NotNil predicate on the "end_date" field.
func EndDateNotNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotNull(FieldEndDate))
}

// NextRunDateEQ applies the EQ predicate on the "next_run_date" field.
func NextRunDateEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldNextRunDate, v))
}

// NextRunDateNEQ applies the NEQ predicate on the "next_run_date" field.
func NextRunDateNEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldNextRunDate, v))
}

// NextRunDateIn applies the In predicate on the "next_run_date" field.
func NextRunDateIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldNextRunDate, vs...))
}

// NextRunDateNotIn applies the NotIn predicate on the "next_run_date" field.
func NextRunDateNotIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldNextRunDate, vs...))
}

// NextRunDateGT applies the GT predicate on the "next_run_date" field.
func NextRunDateGT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldNextRunDate, v))
}

// NextRunDateGTE applies the GTE predicate on the "next_run_date" field.
func NextRunDateGTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldNextRunDate, v))
}

// NextRunDateLT applies the LT predicate on the "next_run_date" field.
func NextRunDateLT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldNextRunDate, v))
}

// NextRunDateLTE applies the LTE predicate on the "next_run_date" field.
func NextRunDateLTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldNextRunDate, v))
}

// LastRunDateEQ applies the EQ predicate on the "last_run_date" field.
func LastRunDateEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldLastRunDate, v))
}

// LastRunDateNEQ applies the NEQ predicate on the "last_run_date" field.
func LastRunDateNEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldLastRunDate, v))
}

// LastRunDateIn applies the In predicate on the "last_run_date" field.
func LastRunDateIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldLastRunDate, vs...))
}

// LastRunDateNotIn applies the NotIn predicate on the "last_run_date" field.
func LastRunDateNotIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldLastRunDate, vs...))
}

// LastRunDateGT applies the GT predicate on the "last_run_date" field.
func LastRunDateGT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldLastRunDate, v))
}

// LastRunDateGTE applies the GTE predicate on the "last_run_date" field.
func LastRunDateGTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldLastRunDate, v))
}

// LastRunDateLT applies the LT predicate on the "last_run_date" field.
func LastRunDateLT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldLastRunDate, v))
}

// LastRunDateLTE applies the LTE predicate on the "last_run_date" field.
func LastRunDateLTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldLastRunDate, v))
}

// LastRunDateIsNil applies the IsNil predicate on the "last_run_date" field.
func LastRunDateIsNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIsNull(FieldLastRunDate))
}

// LastRunDateNotNil applies the NotNil predicate on the "last_run_date" field.
func LastRunDateNotNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotNull(FieldLastRunDate))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContainsFold(FieldTimezone, v))
}

// ScheduleStatusEQ applies the EQ predicate on the "schedule_status" field.
func ScheduleStatusEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldScheduleStatus, v))
}

// ScheduleStatusNEQ applies the NEQ predicate on the "schedule_status" field.
func ScheduleStatusNEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldScheduleStatus, v))
}

// ScheduleStatusIn applies the In predicate on the "schedule_status" field.
func ScheduleStatusIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldScheduleStatus, vs...))
}

// ScheduleStatusNotIn applies the NotIn predicate on the "schedule_status" field.
func ScheduleStatusNotIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldScheduleStatus, vs...))
}

// ScheduleStatusGT applies the GT predicate on the "schedule_status" field.
func ScheduleStatusGT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldScheduleStatus, v))
}

// ScheduleStatusGTE applies the GTE predicate on the "schedule_status" field.
func ScheduleStatusGTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldScheduleStatus, v))
}

// ScheduleStatusLT applies the LT predicate on the "schedule_status" field.
func ScheduleStatusLT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldScheduleStatus, v))
}

// ScheduleStatusLTE applies the LTE predicate on the "schedule_status" field.
func ScheduleStatusLTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldScheduleStatus, v))
}

// ScheduleStatusContains applies the Contains predicate on the "schedule_status" field.
func ScheduleStatusContains(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContains(FieldScheduleStatus, v))
}

// ScheduleStatusHasPrefix applies the HasPrefix predicate on the "schedule_status" field.
func ScheduleStatusHasPrefix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasPrefix(FieldScheduleStatus, v))
}

// ScheduleStatusHasSuffix applies the HasSuffix predicate on the "schedule_status" field.
func ScheduleStatusHasSuffix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasSuffix(FieldScheduleStatus, v))
}

// ScheduleStatusEqualFold applies the EqualFold predicate on the "schedule_status" field.
func ScheduleStatusEqualFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEqualFold(FieldScheduleStatus, v))
}

// ScheduleStatusContainsFold applies the ContainsFold predicate on the "schedule_status" field.
func ScheduleStatusContainsFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContainsFold(FieldScheduleStatus, v))
}

// PausedAtEQ applies the EQ predicate on the "paused_at" field.
func PausedAtEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldPausedAt, v))
}

// PausedAtNEQ applies the NEQ predicate on the "paused_at" field.
func PausedAtNEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldPausedAt, v))
}

// PausedAtIn applies the In predicate on the "paused_at" field.
func PausedAtIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldPausedAt, vs...))
}

// PausedAtNotIn applies the NotIn predicate on the "paused_at" field.
func PausedAtNotIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldPausedAt, vs...))
}

// PausedAtGT applies the GT predicate on the "paused_at" field.
func PausedAtGT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldPausedAt, v))
}

// PausedAtGTE applies the GTE predicate on the "paused_at" field.
func PausedAtGTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldPausedAt, v))
}

// PausedAtLT applies the LT predicate on the "paused_at" field.
func PausedAtLT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldPausedAt, v))
}

// PausedAtLTE applies the LTE predicate on the "paused_at" field.
func PausedAtLTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldPausedAt, v))
}

// PausedAtIsNil applies the IsNil predicate on the "paused_at" field.
func PausedAtIsNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIsNull(FieldPausedAt))
}

// PausedAtNotNil applies the NotNil predicate on the "paused_at" field.
func PausedAtNotNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotNull(FieldPausedAt))
}

// CancelledAtEQ applies the EQ predicate on the "cancelled_at" field.
func CancelledAtEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldCancelledAt, v))
}

// CancelledAtNEQ applies the NEQ predicate on the "cancelled_at" field.
func CancelledAtNEQ(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldCancelledAt, v))
}

// CancelledAtIn applies the In predicate on the "cancelled_at" field.
func CancelledAtIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldCancelledAt, vs...))
}

// CancelledAtNotIn applies the NotIn predicate on the "cancelled_at" field.
func CancelledAtNotIn(vs ...time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldCancelledAt, vs...))
}

// CancelledAtGT applies the GT predicate on the "cancelled_at" field.
func CancelledAtGT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldCancelledAt, v))
}

// CancelledAtGTE applies the GTE predicate on the "cancelled_at" field.
func CancelledAtGTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldCancelledAt, v))
}

// CancelledAtLT applies the LT predicate on the "cancelled_at" field.
func CancelledAtLT(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldCancelledAt, v))
}

// CancelledAtLTE applies the LTE predicate on the "cancelled_at" field.
func CancelledAtLTE(v time.Time) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldCancelledAt, v))
}

// CancelledAtIsNil applies the IsNil predicate on the "cancelled_at" field.
func CancelledAtIsNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIsNull(FieldCancelledAt))
}

// CancelledAtNotNil applies the NotNil predicate on the "cancelled_at" field.
func CancelledAtNotNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotNull(FieldCancelledAt))
}

// CancellationReasonEQ applies the EQ predicate on the "cancellation_reason" field.
func CancellationReasonEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldCancellationReason, v))
}

// CancellationReasonNEQ applies the NEQ predicate on the "cancellation_reason" field.
func CancellationReasonNEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldCancellationReason, v))
}

// CancellationReasonIn applies the In predicate on the "cancellation_reason" field.
func CancellationReasonIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldCancellationReason, vs...))
}

// CancellationReasonNotIn applies the NotIn predicate on the "cancellation_reason" field.
func CancellationReasonNotIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldCancellationReason, vs...))
}

// CancellationReasonGT applies the GT predicate on the "cancellation_reason" field.
func CancellationReasonGT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldCancellationReason, v))
}

// CancellationReasonGTE applies the GTE predicate on the "cancellation_reason" field.
func CancellationReasonGTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldCancellationReason, v))
}

// CancellationReasonLT applies the LT predicate on the "cancellation_reason" field.
func CancellationReasonLT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldCancellationReason, v))
}

// CancellationReasonLTE applies the LTE predicate on the "cancellation_reason" field.
func CancellationReasonLTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldCancellationReason, v))
}

// CancellationReasonContains applies the Contains predicate on the "cancellation_reason" field.
func CancellationReasonContains(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContains(FieldCancellationReason, v))
}

// CancellationReasonHasPrefix applies the HasPrefix predicate on the "cancellation_reason" field.
func CancellationReasonHasPrefix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasPrefix(FieldCancellationReason, v))
}

// CancellationReasonHasSuffix applies the HasSuffix predicate on the "cancellation_reason" field.
func CancellationReasonHasSuffix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasSuffix(FieldCancellationReason, v))
}

// CancellationReasonIsNil applies the IsNil predicate on the "cancellation_reason" field.
func CancellationReasonIsNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIsNull(FieldCancellationReason))
}

// CancellationReasonNotNil applies the NotNil predicate on the "cancellation_reason" field.
func CancellationReasonNotNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotNull(FieldCancellationReason))
}

// CancellationReasonEqualFold applies the EqualFold predicate on the "cancellation_reason" field.
func CancellationReasonEqualFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEqualFold(FieldCancellationReason, v))
}

// CancellationReasonContainsFold applies the ContainsFold predicate on the "cancellation_reason" field.
func CancellationReasonContainsFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContainsFold(FieldCancellationReason, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContainsFold(FieldCurrency, v))
}

// BaseAmountEQ applies the EQ predicate on the "base_amount" field.
func BaseAmountEQ(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldBaseAmount, v))
}

// BaseAmountNEQ applies the NEQ predicate on the "base_amount" field.
func BaseAmountNEQ(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldBaseAmount, v))
}

// BaseAmountIn applies the In predicate on the "base_amount" field.
func BaseAmountIn(vs ...decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldBaseAmount, vs...))
}

// BaseAmountNotIn applies the NotIn predicate on the "base_amount" field.
func BaseAmountNotIn(vs ...decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldBaseAmount, vs...))
}

// BaseAmountGT applies the GT predicate on the "base_amount" field.
func BaseAmountGT(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldBaseAmount, v))
}

// BaseAmountGTE applies the GTE predicate on the "base_amount" field.
func BaseAmountGTE(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldBaseAmount, v))
}

// BaseAmountLT applies the LT predicate on the "base_amount" field.
func BaseAmountLT(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldBaseAmount, v))
}

// BaseAmountLTE applies the LTE predicate on the "base_amount" field.
func BaseAmountLTE(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldBaseAmount, v))
}

// LineItemsIsNil applies the IsNil predicate on the "line_items" field.
func LineItemsIsNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIsNull(FieldLineItems))
}

// LineItemsNotNil applies the NotNil predicate on the "line_items" field.
func LineItemsNotNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotNull(FieldLineItems))
}

// TaxRateEQ applies the EQ predicate on the "tax_rate" field.
func TaxRateEQ(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldTaxRate, v))
}

// TaxRateNEQ applies the NEQ predicate on the "tax_rate" field.
func TaxRateNEQ(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldTaxRate, v))
}

// TaxRateIn applies the In predicate on the "tax_rate" field.
func TaxRateIn(vs ...decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldTaxRate, vs...))
}

// TaxRateNotIn applies the NotIn predicate on the "tax_rate" field.
func TaxRateNotIn(vs ...decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldTaxRate, vs...))
}

// TaxRateGT applies the GT predicate on the "tax_rate" field.
func TaxRateGT(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldTaxRate, v))
}

// TaxRateGTE applies the GTE predicate on the "tax_rate" field.
func TaxRateGTE(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldTaxRate, v))
}

// TaxRateLT applies the LT predicate on the "tax_rate" field.
func TaxRateLT(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldTaxRate, v))
}

// TaxRateLTE applies the LTE predicate on the "tax_rate" field.
func TaxRateLTE(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldTaxRate, v))
}

// TaxInclusiveEQ applies the EQ predicate on the "tax_inclusive" field.
func TaxInclusiveEQ(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldTaxInclusive, v))
}

// TaxInclusiveNEQ applies the NEQ predicate on the "tax_inclusive" field.
func TaxInclusiveNEQ(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldTaxInclusive, v))
}

// ProrationEnabledEQ applies the EQ predicate on the "proration_enabled" field.
func ProrationEnabledEQ(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldProrationEnabled, v))
}

// ProrationEnabledNEQ applies the NEQ predicate on the "proration_enabled" field.
func ProrationEnabledNEQ(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldProrationEnabled, v))
}

// InvoiceNotesEQ applies the EQ predicate on the "invoice_notes" field.
func InvoiceNotesEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldInvoiceNotes, v))
}

// InvoiceNotesNEQ applies the NEQ predicate on the "invoice_notes" field.
func InvoiceNotesNEQ(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldInvoiceNotes, v))
}

// InvoiceNotesIn applies the In predicate on the "invoice_notes" field.
func InvoiceNotesIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldInvoiceNotes, vs...))
}

// InvoiceNotesNotIn applies the NotIn predicate on the "invoice_notes" field.
func InvoiceNotesNotIn(vs ...string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldInvoiceNotes, vs...))
}

// InvoiceNotesGT applies the GT predicate on the "invoice_notes" field.
func InvoiceNotesGT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldInvoiceNotes, v))
}

// InvoiceNotesGTE applies the GTE predicate on the "invoice_notes" field.
func InvoiceNotesGTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldInvoiceNotes, v))
}

// InvoiceNotesLT applies the LT predicate on the "invoice_notes" field.
func InvoiceNotesLT(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldInvoiceNotes, v))
}

// InvoiceNotesLTE applies the LTE predicate on the "invoice_notes" field.
func InvoiceNotesLTE(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldInvoiceNotes, v))
}

// InvoiceNotesContains applies the Contains predicate on the "invoice_notes" field.
func InvoiceNotesContains(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContains(FieldInvoiceNotes, v))
}

// InvoiceNotesHasPrefix applies the HasPrefix predicate on the "invoice_notes" field.
func InvoiceNotesHasPrefix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasPrefix(FieldInvoiceNotes, v))
}

// InvoiceNotesHasSuffix applies the HasSuffix predicate on the "invoice_notes" field.
func InvoiceNotesHasSuffix(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldHasSuffix(FieldInvoiceNotes, v))
}

// InvoiceNotesIsNil applies the IsNil predicate on the "invoice_notes" field.
func InvoiceNotesIsNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIsNull(FieldInvoiceNotes))
}

// InvoiceNotesNotNil applies the NotNil predicate on the "invoice_notes" field.
func InvoiceNotesNotNil() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotNull(FieldInvoiceNotes))
}

// InvoiceNotesEqualFold applies the EqualFold predicate on the "invoice_notes" field.
func InvoiceNotesEqualFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEqualFold(FieldInvoiceNotes, v))
}

// InvoiceNotesContainsFold applies the ContainsFold predicate on the "invoice_notes" field.
func InvoiceNotesContainsFold(v string) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldContainsFold(FieldInvoiceNotes, v))
}

// PaymentTermsDaysEQ applies the EQ predicate on the "payment_terms_days" field.
func PaymentTermsDaysEQ(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldPaymentTermsDays, v))
}

// PaymentTermsDaysNEQ applies the NEQ predicate on the "payment_terms_days" field.
func PaymentTermsDaysNEQ(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldPaymentTermsDays, v))
}

// PaymentTermsDaysIn applies the In predicate on the "payment_terms_days" field.
func PaymentTermsDaysIn(vs ...int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldPaymentTermsDays, vs...))
}

// PaymentTermsDaysNotIn applies the NotIn predicate on the "payment_terms_days" field.
func PaymentTermsDaysNotIn(vs ...int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldPaymentTermsDays, vs...))
}

// PaymentTermsDaysGT applies the GT predicate on the "payment_terms_days" field.
func PaymentTermsDaysGT(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldPaymentTermsDays, v))
}

// PaymentTermsDaysGTE applies the GTE predicate on the "payment_terms_days" field.
func PaymentTermsDaysGTE(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldPaymentTermsDays, v))
}

// PaymentTermsDaysLT applies the LT predicate on the "payment_terms_days" field.
func PaymentTermsDaysLT(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldPaymentTermsDays, v))
}

// PaymentTermsDaysLTE applies the LTE predicate on the "payment_terms_days" field.
func PaymentTermsDaysLTE(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldPaymentTermsDays, v))
}

// AutoChargeEQ applies the EQ predicate on the "auto_charge" field.
func AutoChargeEQ(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldAutoCharge, v))
}

// AutoChargeNEQ applies the NEQ predicate on the "auto_charge" field.
func AutoChargeNEQ(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldAutoCharge, v))
}

// RetryEnabledEQ applies the EQ predicate on the "retry_enabled" field.
func RetryEnabledEQ(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldRetryEnabled, v))
}

// RetryEnabledNEQ applies the NEQ predicate on the "retry_enabled" field.
func RetryEnabledNEQ(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldRetryEnabled, v))
}

// MaxRetryAttemptsEQ applies the EQ predicate on the "max_retry_attempts" field.
func MaxRetryAttemptsEQ(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldMaxRetryAttempts, v))
}

// MaxRetryAttemptsNEQ applies the NEQ predicate on the "max_retry_attempts" field.
func MaxRetryAttemptsNEQ(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldMaxRetryAttempts, v))
}

// MaxRetryAttemptsIn applies the In predicate on the "max_retry_attempts" field.
func MaxRetryAttemptsIn(vs ...int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldMaxRetryAttempts, vs...))
}

// MaxRetryAttemptsNotIn applies the NotIn predicate on the "max_retry_attempts" field.
func MaxRetryAttemptsNotIn(vs ...int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldMaxRetryAttempts, vs...))
}

// MaxRetryAttemptsGT applies the GT predicate on the "max_retry_attempts" field.
func MaxRetryAttemptsGT(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldMaxRetryAttempts, v))
}

// MaxRetryAttemptsGTE applies the GTE predicate on the "max_retry_attempts" field.
func MaxRetryAttemptsGTE(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldMaxRetryAttempts, v))
}

// MaxRetryAttemptsLT applies the LT predicate on the "max_retry_attempts" field.
func MaxRetryAttemptsLT(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldMaxRetryAttempts, v))
}

// MaxRetryAttemptsLTE applies the LTE predicate on the "max_retry_attempts" field.
func MaxRetryAttemptsLTE(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldMaxRetryAttempts, v))
}

// RetryIntervalHoursEQ applies the EQ predicate on the "retry_interval_hours" field.
func RetryIntervalHoursEQ(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldRetryIntervalHours, v))
}

// RetryIntervalHoursNEQ applies the NEQ predicate on the "retry_interval_hours" field.
func RetryIntervalHoursNEQ(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldRetryIntervalHours, v))
}

// RetryIntervalHoursIn applies the In predicate on the "retry_interval_hours" field.
func RetryIntervalHoursIn(vs ...int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldRetryIntervalHours, vs...))
}

// RetryIntervalHoursNotIn applies the NotIn predicate on the "retry_interval_hours" field.
func RetryIntervalHoursNotIn(vs ...int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldRetryIntervalHours, vs...))
}

// RetryIntervalHoursGT applies the GT predicate on the "retry_interval_hours" field.
func RetryIntervalHoursGT(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldRetryIntervalHours, v))
}

// RetryIntervalHoursGTE applies the GTE predicate on the "retry_interval_hours" field.
func RetryIntervalHoursGTE(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldRetryIntervalHours, v))
}

// RetryIntervalHoursLT applies the LT predicate on the "retry_interval_hours" field.
func RetryIntervalHoursLT(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldRetryIntervalHours, v))
}

// RetryIntervalHoursLTE applies the LTE predicate on the "retry_interval_hours" field.
func RetryIntervalHoursLTE(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldRetryIntervalHours, v))
}

// RetryBackoffMultiplierEQ applies the EQ predicate on the "retry_backoff_multiplier" field.
func RetryBackoffMultiplierEQ(v float64) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldRetryBackoffMultiplier, v))
}

// RetryBackoffMultiplierNEQ applies the NEQ predicate on the "retry_backoff_multiplier" field.
func RetryBackoffMultiplierNEQ(v float64) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldRetryBackoffMultiplier, v))
}

// RetryBackoffMultiplierIn applies the In predicate on the "retry_backoff_multiplier" field.
func RetryBackoffMultiplierIn(vs ...float64) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldRetryBackoffMultiplier, vs...))
}

// RetryBackoffMultiplierNotIn applies the NotIn predicate on the "retry_backoff_multiplier" field.
func RetryBackoffMultiplierNotIn(vs ...float64) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldRetryBackoffMultiplier, vs...))
}

// RetryBackoffMultiplierGT applies the GT predicate on the "retry_backoff_multiplier" field.
func RetryBackoffMultiplierGT(v float64) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldRetryBackoffMultiplier, v))
}

// RetryBackoffMultiplierGTE applies the GTE predicate on the "retry_backoff_multiplier" field.
func RetryBackoffMultiplierGTE(v float64) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldRetryBackoffMultiplier, v))
}

// RetryBackoffMultiplierLT applies the LT predicate on the "retry_backoff_multiplier" field.
func RetryBackoffMultiplierLT(v float64) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldRetryBackoffMultiplier, v))
}

// RetryBackoffMultiplierLTE applies the LTE predicate on the "retry_backoff_multiplier" field.
func RetryBackoffMultiplierLTE(v float64) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldRetryBackoffMultiplier, v))
}

// FailureNotificationSentEQ applies the EQ predicate on the "failure_notification_sent" field.
func FailureNotificationSentEQ(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldFailureNotificationSent, v))
}

// FailureNotificationSentNEQ applies the NEQ predicate on the "failure_notification_sent" field.
func FailureNotificationSentNEQ(v bool) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldFailureNotificationSent, v))
}

// TotalInvoicesGeneratedEQ applies the EQ predicate on the "total_invoices_generated" field.
func TotalInvoicesGeneratedEQ(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldTotalInvoicesGenerated, v))
}

// TotalInvoicesGeneratedNEQ applies the NEQ predicate on the "total_invoices_generated" field.
func TotalInvoicesGeneratedNEQ(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldTotalInvoicesGenerated, v))
}

// TotalInvoicesGeneratedIn applies the In predicate on the "total_invoices_generated" field.
func TotalInvoicesGeneratedIn(vs ...int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldTotalInvoicesGenerated, vs...))
}

// TotalInvoicesGeneratedNotIn applies the NotIn predicate on the "total_invoices_generated" field.
func TotalInvoicesGeneratedNotIn(vs ...int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldTotalInvoicesGenerated, vs...))
}

// TotalInvoicesGeneratedGT applies the GT predicate on the "total_invoices_generated" field.
func TotalInvoicesGeneratedGT(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldTotalInvoicesGenerated, v))
}

// TotalInvoicesGeneratedGTE applies the GTE predicate on the "total_invoices_generated" field.
func TotalInvoicesGeneratedGTE(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldTotalInvoicesGenerated, v))
}

// TotalInvoicesGeneratedLT applies the LT predicate on the "total_invoices_generated" field.
func TotalInvoicesGeneratedLT(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldTotalInvoicesGenerated, v))
}

// TotalInvoicesGeneratedLTE applies the LTE predicate on the "total_invoices_generated" field.
func TotalInvoicesGeneratedLTE(v int) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldTotalInvoicesGenerated, v))
}

// TotalAmountBilledEQ applies the EQ predicate on the "total_amount_billed" field.
func TotalAmountBilledEQ(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldEQ(FieldTotalAmountBilled, v))
}

// TotalAmountBilledNEQ applies the NEQ predicate on the "total_amount_billed" field.
func TotalAmountBilledNEQ(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNEQ(FieldTotalAmountBilled, v))
}

// TotalAmountBilledIn applies the In predicate on the "total_amount_billed" field.
func TotalAmountBilledIn(vs ...decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldIn(FieldTotalAmountBilled, vs...))
}

// TotalAmountBilledNotIn applies the NotIn predicate on the "total_amount_billed" field.
func TotalAmountBilledNotIn(vs ...decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldNotIn(FieldTotalAmountBilled, vs...))
}

// TotalAmountBilledGT applies the GT predicate on the "total_amount_billed" field.
func TotalAmountBilledGT(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGT(FieldTotalAmountBilled, v))
}

// TotalAmountBilledGTE applies the GTE predicate on the "total_amount_billed" field.
func TotalAmountBilledGTE(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldGTE(FieldTotalAmountBilled, v))
}

// TotalAmountBilledLT applies the LT predicate on the "total_amount_billed" field.
func TotalAmountBilledLT(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLT(FieldTotalAmountBilled, v))
}

// TotalAmountBilledLTE applies the LTE predicate on the "total_amount_billed" field.
func TotalAmountBilledLTE(v decimal.Decimal) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.FieldLTE(FieldTotalAmountBilled, v))
}

// HasCustomer applies the HasEdge predicate on the "customer" edge.
func HasCustomer() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CustomerTable, CustomerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCustomerWith applies the HasEdge predicate on the "customer" edge with a given conditions (other predicates).
func HasCustomerWith(preds ...predicate.Customer) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(func(s *sql.Selector) {
		step := newCustomerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutions applies the HasEdge predicate on the "executions" edge.
func HasExecutions() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionsWith applies the HasEdge predicate on the "executions" edge with a given conditions (other predicates).
func HasExecutionsWith(preds ...predicate.ScheduleExecution) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(func(s *sql.Selector) {
		step := newExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuditLogs applies the HasEdge predicate on the "audit_logs" edge.
func HasAuditLogs() predicate.RecurringSchedule {
	return predicate.RecurringSchedule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditLogsWith applies the HasEdge predicate on the "audit_logs" edge with a given conditions (other predicates).
func HasAuditLogsWith(preds ...predicate.AuditLog) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(func(s *sql.Selector) {
		step := newAuditLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecurringSchedule) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecurringSchedule) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecurringSchedule) predicate.RecurringSchedule {
	return predicate.RecurringSchedule(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package scheduleexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/invoiceflow/invoiceflow/ent/predicate"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldTenantID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldUpdatedAt, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldUpdatedBy, v))
}

// ScheduleID applies equality check predicate on the "schedule_id" field. It's identical to ScheduleIDEQ.
func ScheduleID(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldScheduleID, v))
}

// PeriodDate applies equality check predicate on the "period_date" field. It's identical to PeriodDateEQ.
func PeriodDate(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldPeriodDate, v))
}

// PeriodStart applies equality check predicate on the "period_start" field. It's identical to PeriodStartEQ.
func PeriodStart(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodEnd applies equality check predicate on the "period_end" field. It's identical to PeriodEndEQ.
func PeriodEnd(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldPeriodEnd, v))
}

// ExecutionStatus applies equality check predicate on the "execution_status" field. It's identical to ExecutionStatusEQ.
func ExecutionStatus(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldExecutionStatus, v))
}

// InvoiceID applies equality check predicate on the "invoice_id" field. It's identical to InvoiceIDEQ.
func InvoiceID(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldInvoiceID, v))
}

// AmountGenerated applies equality check predicate on the "amount_generated" field. It's identical to AmountGeneratedEQ.
func AmountGenerated(v decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldAmountGenerated, v))
}

// ProratedAmount applies equality check predicate on the "prorated_amount" field. It's identical to ProratedAmountEQ.
func ProratedAmount(v decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldProratedAmount, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContainsFold(FieldTenantID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldUpdatedAt, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContainsFold(FieldCreatedBy, v))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByContains applies the Contains predicate on the "updated_by" field.
func UpdatedByContains(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContains(FieldUpdatedBy, v))
}

// UpdatedByHasPrefix applies the HasPrefix predicate on the "updated_by" field.
func UpdatedByHasPrefix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasPrefix(FieldUpdatedBy, v))
}

// UpdatedByHasSuffix applies the HasSuffix predicate on the "updated_by" field.
func UpdatedByHasSuffix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasSuffix(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotNull(FieldUpdatedBy))
}

// UpdatedByEqualFold applies the EqualFold predicate on the "updated_by" field.
func UpdatedByEqualFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEqualFold(FieldUpdatedBy, v))
}

// UpdatedByContainsFold applies the ContainsFold predicate on the "updated_by" field.
func UpdatedByContainsFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContainsFold(FieldUpdatedBy, v))
}

// ScheduleIDEQ applies the EQ predicate on the "schedule_id" field.
func ScheduleIDEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldScheduleID, v))
}

// ScheduleIDNEQ applies the NEQ predicate on the "schedule_id" field.
func ScheduleIDNEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldScheduleID, v))
}

// ScheduleIDIn applies the In predicate on the "schedule_id" field.
func ScheduleIDIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldScheduleID, vs...))
}

// ScheduleIDNotIn applies the NotIn predicate on the "schedule_id" field.
func ScheduleIDNotIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldScheduleID, vs...))
}

// ScheduleIDGT applies the GT predicate on the "schedule_id" field.
func ScheduleIDGT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldScheduleID, v))
}

// ScheduleIDGTE applies the GTE predicate on the "schedule_id" field.
func ScheduleIDGTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldScheduleID, v))
}

// ScheduleIDLT applies the LT predicate on the "schedule_id" field.
func ScheduleIDLT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldScheduleID, v))
}

// ScheduleIDLTE applies the LTE predicate on the "schedule_id" field.
func ScheduleIDLTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldScheduleID, v))
}

// ScheduleIDContains applies the Contains predicate on the "schedule_id" field.
func ScheduleIDContains(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContains(FieldScheduleID, v))
}

// ScheduleIDHasPrefix applies the HasPrefix predicate on the "schedule_id" field.
func ScheduleIDHasPrefix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasPrefix(FieldScheduleID, v))
}

// ScheduleIDHasSuffix applies the HasSuffix predicate on the "schedule_id" field.
func ScheduleIDHasSuffix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasSuffix(FieldScheduleID, v))
}

// ScheduleIDEqualFold applies the EqualFold predicate on the "schedule_id" field.
func ScheduleIDEqualFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEqualFold(FieldScheduleID, v))
}

// ScheduleIDContainsFold applies the ContainsFold predicate on the "schedule_id" field.
func ScheduleIDContainsFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContainsFold(FieldScheduleID, v))
}

// PeriodDateEQ applies the EQ predicate on the "period_date" field.
func PeriodDateEQ(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldPeriodDate, v))
}

// PeriodDateNEQ applies the NEQ predicate on the "period_date" field.
func PeriodDateNEQ(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldPeriodDate, v))
}

// PeriodDateIn applies the In predicate on the "period_date" field.
func PeriodDateIn(vs ...time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldPeriodDate, vs...))
}

// PeriodDateNotIn applies the NotIn predicate on the "period_date" field.
func PeriodDateNotIn(vs ...time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldPeriodDate, vs...))
}

// PeriodDateGT applies the GT predicate on the "period_date" field.
func PeriodDateGT(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldPeriodDate, v))
}

// PeriodDateGTE applies the GTE predicate on the "period_date" field.
func PeriodDateGTE(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldPeriodDate, v))
}

// PeriodDateLT applies the LT predicate on the "period_date" field.
func PeriodDateLT(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldPeriodDate, v))
}

// PeriodDateLTE applies the LTE predicate on the "period_date" field.
func PeriodDateLTE(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldPeriodDate, v))
}

// PeriodStartEQ applies the EQ predicate on the "period_start" field.
func PeriodStartEQ(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldPeriodStart, v))
}

// PeriodStartNEQ applies the NEQ predicate on the "period_start" field.
func PeriodStartNEQ(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldPeriodStart, v))
}

// PeriodStartIn applies the In predicate on the "period_start" field.
func PeriodStartIn(vs ...time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldPeriodStart, vs...))
}

// PeriodStartNotIn applies the NotIn predicate on the "period_start" field.
func PeriodStartNotIn(vs ...time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldPeriodStart, vs...))
}

// PeriodStartGT applies the GT predicate on the "period_start" field.
func PeriodStartGT(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldPeriodStart, v))
}

// PeriodStartGTE applies the GTE predicate on the "period_start" field.
func PeriodStartGTE(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldPeriodStart, v))
}

// PeriodStartLT applies the LT predicate on the "period_start" field.
func PeriodStartLT(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldPeriodStart, v))
}

// PeriodStartLTE applies the LTE predicate on the "period_start" field.
func PeriodStartLTE(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldPeriodStart, v))
}

// PeriodEndEQ applies the EQ predicate on the "period_end" field.
func PeriodEndEQ(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldPeriodEnd, v))
}

// PeriodEndNEQ applies the NEQ predicate on the "period_end" field.
func PeriodEndNEQ(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldPeriodEnd, v))
}

// PeriodEndIn applies the In predicate on the "period_end" field.
func PeriodEndIn(vs ...time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldPeriodEnd, vs...))
}

// PeriodEndNotIn applies the NotIn predicate on the "period_end" field.
func PeriodEndNotIn(vs ...time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldPeriodEnd, vs...))
}

// PeriodEndGT applies the GT predicate on the "period_end" field.
func PeriodEndGT(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldPeriodEnd, v))
}

// PeriodEndGTE applies the GTE predicate on the "period_end" field.
func PeriodEndGTE(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldPeriodEnd, v))
}

// PeriodEndLT applies the LT predicate on the "period_end" field.
func PeriodEndLT(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldPeriodEnd, v))
}

// PeriodEndLTE applies the LTE predicate on the "period_end" field.
func PeriodEndLTE(v time.Time) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldPeriodEnd, v))
}

// ExecutionStatusEQ applies the EQ predicate on the "execution_status" field.
func ExecutionStatusEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldExecutionStatus, v))
}

// ExecutionStatusNEQ applies the NEQ predicate on the "execution_status" field.
func ExecutionStatusNEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldExecutionStatus, v))
}

// ExecutionStatusIn applies the In predicate on the "execution_status" field.
func ExecutionStatusIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldExecutionStatus, vs...))
}

// ExecutionStatusNotIn applies the NotIn predicate on the "execution_status" field.
func ExecutionStatusNotIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldExecutionStatus, vs...))
}

// ExecutionStatusGT applies the GT predicate on the "execution_status" field.
func ExecutionStatusGT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldExecutionStatus, v))
}

// ExecutionStatusGTE applies the GTE predicate on the "execution_status" field.
func ExecutionStatusGTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldExecutionStatus, v))
}

// ExecutionStatusLT applies the LT predicate on the "execution_status" field.
func ExecutionStatusLT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldExecutionStatus, v))
}

// ExecutionStatusLTE applies the LTE predicate on the "execution_status" field.
func ExecutionStatusLTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldExecutionStatus, v))
}

// ExecutionStatusContains applies the Contains predicate on the "execution_status" field.
func ExecutionStatusContains(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContains(FieldExecutionStatus, v))
}

// ExecutionStatusHasPrefix applies the HasPrefix predicate on the "execution_status" field.
func ExecutionStatusHasPrefix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasPrefix(FieldExecutionStatus, v))
}

// ExecutionStatusHasSuffix applies the HasSuffix predicate on the "execution_status" field.
func ExecutionStatusHasSuffix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasSuffix(FieldExecutionStatus, v))
}

// ExecutionStatusEqualFold applies the EqualFold predicate on the "execution_status" field.
func ExecutionStatusEqualFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEqualFold(FieldExecutionStatus, v))
}

// ExecutionStatusContainsFold applies the ContainsFold predicate on the "execution_status" field.
func ExecutionStatusContainsFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContainsFold(FieldExecutionStatus, v))
}

// InvoiceIDEQ applies the EQ predicate on the "invoice_id" field.
func InvoiceIDEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldInvoiceID, v))
}

// InvoiceIDNEQ applies the NEQ predicate on the "invoice_id" field.
func InvoiceIDNEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldInvoiceID, v))
}

// InvoiceIDIn applies the In predicate on the "invoice_id" field.
func InvoiceIDIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldInvoiceID, vs...))
}

// InvoiceIDNotIn applies the NotIn predicate on the "invoice_id" field.
func InvoiceIDNotIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldInvoiceID, vs...))
}

// InvoiceIDGT applies the GT predicate on the "invoice_id" field.
func InvoiceIDGT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldInvoiceID, v))
}

// InvoiceIDGTE applies the GTE predicate on the "invoice_id" field.
func InvoiceIDGTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldInvoiceID, v))
}

// InvoiceIDLT applies the LT predicate on the "invoice_id" field.
func InvoiceIDLT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldInvoiceID, v))
}

// InvoiceIDLTE applies the LTE predicate on the "invoice_id" field.
func InvoiceIDLTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldInvoiceID, v))
}

// InvoiceIDContains applies the Contains predicate on the "invoice_id" field.
func InvoiceIDContains(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContains(FieldInvoiceID, v))
}

// InvoiceIDHasPrefix applies the HasPrefix predicate on the "invoice_id" field.
func InvoiceIDHasPrefix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasPrefix(FieldInvoiceID, v))
}

// InvoiceIDHasSuffix applies the HasSuffix predicate on the "invoice_id" field.
func InvoiceIDHasSuffix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasSuffix(FieldInvoiceID, v))
}

// InvoiceIDIsNil applies the IsNil predicate on the "invoice_id" field.
func InvoiceIDIsNil() predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIsNull(FieldInvoiceID))
}

// InvoiceIDNotNil applies the NotNil predicate on the "invoice_id" field.
func InvoiceIDNotNil() predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotNull(FieldInvoiceID))
}

// InvoiceIDEqualFold applies the EqualFold predicate on the "invoice_id" field.
func InvoiceIDEqualFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEqualFold(FieldInvoiceID, v))
}

// InvoiceIDContainsFold applies the ContainsFold predicate on the "invoice_id" field.
func InvoiceIDContainsFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContainsFold(FieldInvoiceID, v))
}

// AmountGeneratedEQ applies the EQ predicate on the "amount_generated" field.
func AmountGeneratedEQ(v decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldAmountGenerated, v))
}

// AmountGeneratedNEQ applies the NEQ predicate on the "amount_generated" field.
func AmountGeneratedNEQ(v decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldAmountGenerated, v))
}

// AmountGeneratedIn applies the In predicate on the "amount_generated" field.
func AmountGeneratedIn(vs ...decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldAmountGenerated, vs...))
}

// AmountGeneratedNotIn applies the NotIn predicate on the "amount_generated" field.
func AmountGeneratedNotIn(vs ...decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldAmountGenerated, vs...))
}

// AmountGeneratedGT applies the GT predicate on the "amount_generated" field.
func AmountGeneratedGT(v decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldAmountGenerated, v))
}

// AmountGeneratedGTE applies the GTE predicate on the "amount_generated" field.
func AmountGeneratedGTE(v decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldAmountGenerated, v))
}

// AmountGeneratedLT applies the LT predicate on the "amount_generated" field.
func AmountGeneratedLT(v decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldAmountGenerated, v))
}

// AmountGeneratedLTE applies the LTE predicate on the "amount_generated" field.
func AmountGeneratedLTE(v decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldAmountGenerated, v))
}

// ProratedAmountEQ applies the EQ predicate on the "prorated_amount" field.
func ProratedAmountEQ(v decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldProratedAmount, v))
}

// ProratedAmountNEQ applies the NEQ predicate on the "prorated_amount" field.
func ProratedAmountNEQ(v decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldProratedAmount, v))
}

// ProratedAmountIn applies the In predicate on the "prorated_amount" field.
func ProratedAmountIn(vs ...decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldProratedAmount, vs...))
}

// ProratedAmountNotIn applies the NotIn predicate on the "prorated_amount" field.
func ProratedAmountNotIn(vs ...decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldProratedAmount, vs...))
}

// ProratedAmountGT applies the GT predicate on the "prorated_amount" field.
func ProratedAmountGT(v decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldProratedAmount, v))
}

// ProratedAmountGTE applies the GTE predicate on the "prorated_amount" field.
func ProratedAmountGTE(v decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldProratedAmount, v))
}

// ProratedAmountLT applies the LT predicate on the "prorated_amount" field.
func ProratedAmountLT(v decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldProratedAmount, v))
}

// ProratedAmountLTE applies the LTE predicate on the "prorated_amount" field.
func ProratedAmountLTE(v decimal.Decimal) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldProratedAmount, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasSchedule applies the HasEdge predicate on the "schedule" edge.
func HasSchedule() predicate.ScheduleExecution {
	return predicate.ScheduleExecution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ScheduleTable, ScheduleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScheduleWith applies the HasEdge predicate on the "schedule" edge with a given conditions (other predicates).
func HasScheduleWith(preds ...predicate.RecurringSchedule) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(func(s *sql.Selector) {
		step := newScheduleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduleExecution) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduleExecution) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduleExecution) predicate.ScheduleExecution {
	return predicate.ScheduleExecution(sql.NotPredicates(p))
}

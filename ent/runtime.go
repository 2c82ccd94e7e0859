// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/invoiceflow/invoiceflow/ent/auditlog"
	"github.com/invoiceflow/invoiceflow/ent/customer"
	"github.com/invoiceflow/invoiceflow/ent/invoice"
	"github.com/invoiceflow/invoiceflow/ent/invoicelineitem"
	"github.com/invoiceflow/invoiceflow/ent/payment"
	"github.com/invoiceflow/invoiceflow/ent/paymentattempt"
	"github.com/invoiceflow/invoiceflow/ent/recurringschedule"
	"github.com/invoiceflow/invoiceflow/ent/scheduleexecution"
	"github.com/invoiceflow/invoiceflow/ent/schema"
	"github.com/shopspring/decimal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescTenantID is the schema descriptor for tenant_id field.
	auditlogDescTenantID := auditlogMixinFields0[0].Descriptor()
	// auditlog.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	auditlog.TenantIDValidator = auditlogDescTenantID.Validators[0].(func(string) error)
	// auditlogDescStatus is the schema descriptor for status field.
	auditlogDescStatus := auditlogMixinFields0[1].Descriptor()
	// auditlog.DefaultStatus holds the default value on creation for the status field.
	auditlog.DefaultStatus = auditlogDescStatus.Default.(string)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[2].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescUpdatedAt is the schema descriptor for updated_at field.
	auditlogDescUpdatedAt := auditlogMixinFields0[3].Descriptor()
	// auditlog.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	auditlog.DefaultUpdatedAt = auditlogDescUpdatedAt.Default.(func() time.Time)
	// auditlog.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	auditlog.UpdateDefaultUpdatedAt = auditlogDescUpdatedAt.UpdateDefault.(func() time.Time)
	// auditlogDescScheduleID is the schema descriptor for schedule_id field.
	auditlogDescScheduleID := auditlogFields[1].Descriptor()
	// auditlog.ScheduleIDValidator is a validator for the "schedule_id" field. It is called by the builders before save.
	auditlog.ScheduleIDValidator = auditlogDescScheduleID.Validators[0].(func(string) error)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[2].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	customerMixin := schema.Customer{}.Mixin()
	customerMixinFields0 := customerMixin[0].Fields()
	_ = customerMixinFields0
	customerMixinFields1 := customerMixin[1].Fields()
	_ = customerMixinFields1
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescTenantID is the schema descriptor for tenant_id field.
	customerDescTenantID := customerMixinFields0[0].Descriptor()
	// customer.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	customer.TenantIDValidator = customerDescTenantID.Validators[0].(func(string) error)
	// customerDescStatus is the schema descriptor for status field.
	customerDescStatus := customerMixinFields0[1].Descriptor()
	// customer.DefaultStatus holds the default value on creation for the status field.
	customer.DefaultStatus = customerDescStatus.Default.(string)
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerMixinFields0[2].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerMixinFields0[3].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customerDescMetadata is the schema descriptor for metadata field.
	customerDescMetadata := customerMixinFields1[0].Descriptor()
	// customer.DefaultMetadata holds the default value on creation for the metadata field.
	customer.DefaultMetadata = customerDescMetadata.Default.(map[string]string)
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[2].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = customerDescName.Validators[0].(func(string) error)
	// customerDescTimezone is the schema descriptor for timezone field.
	customerDescTimezone := customerFields[4].Descriptor()
	// customer.DefaultTimezone holds the default value on creation for the timezone field.
	customer.DefaultTimezone = customerDescTimezone.Default.(string)
	invoiceMixin := schema.Invoice{}.Mixin()
	invoiceMixinFields0 := invoiceMixin[0].Fields()
	_ = invoiceMixinFields0
	invoiceMixinFields1 := invoiceMixin[1].Fields()
	_ = invoiceMixinFields1
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescTenantID is the schema descriptor for tenant_id field.
	invoiceDescTenantID := invoiceMixinFields0[0].Descriptor()
	// invoice.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	invoice.TenantIDValidator = invoiceDescTenantID.Validators[0].(func(string) error)
	// invoiceDescStatus is the schema descriptor for status field.
	invoiceDescStatus := invoiceMixinFields0[1].Descriptor()
	// invoice.DefaultStatus holds the default value on creation for the status field.
	invoice.DefaultStatus = invoiceDescStatus.Default.(string)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceMixinFields0[2].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceMixinFields0[3].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescMetadata is the schema descriptor for metadata field.
	invoiceDescMetadata := invoiceMixinFields1[0].Descriptor()
	// invoice.DefaultMetadata holds the default value on creation for the metadata field.
	invoice.DefaultMetadata = invoiceDescMetadata.Default.(map[string]string)
	// invoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	invoiceDescInvoiceNumber := invoiceFields[1].Descriptor()
	// invoice.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	invoice.InvoiceNumberValidator = invoiceDescInvoiceNumber.Validators[0].(func(string) error)
	// invoiceDescCustomerID is the schema descriptor for customer_id field.
	invoiceDescCustomerID := invoiceFields[2].Descriptor()
	// invoice.CustomerIDValidator is a validator for the "customer_id" field. It is called by the builders before save.
	invoice.CustomerIDValidator = invoiceDescCustomerID.Validators[0].(func(string) error)
	// invoiceDescCurrency is the schema descriptor for currency field.
	invoiceDescCurrency := invoiceFields[8].Descriptor()
	// invoice.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	invoice.CurrencyValidator = invoiceDescCurrency.Validators[0].(func(string) error)
	// invoiceDescSubtotal is the schema descriptor for subtotal field.
	invoiceDescSubtotal := invoiceFields[9].Descriptor()
	// invoice.DefaultSubtotal holds the default value on creation for the subtotal field.
	invoice.DefaultSubtotal = invoiceDescSubtotal.Default.(decimal.Decimal)
	// invoiceDescTaxTotal is the schema descriptor for tax_total field.
	invoiceDescTaxTotal := invoiceFields[10].Descriptor()
	// invoice.DefaultTaxTotal holds the default value on creation for the tax_total field.
	invoice.DefaultTaxTotal = invoiceDescTaxTotal.Default.(decimal.Decimal)
	// invoiceDescTotal is the schema descriptor for total field.
	invoiceDescTotal := invoiceFields[11].Descriptor()
	// invoice.DefaultTotal holds the default value on creation for the total field.
	invoice.DefaultTotal = invoiceDescTotal.Default.(decimal.Decimal)
	// invoiceDescAmountPaid is the schema descriptor for amount_paid field.
	invoiceDescAmountPaid := invoiceFields[12].Descriptor()
	// invoice.DefaultAmountPaid holds the default value on creation for the amount_paid field.
	invoice.DefaultAmountPaid = invoiceDescAmountPaid.Default.(decimal.Decimal)
	// invoiceDescAmountRemaining is the schema descriptor for amount_remaining field.
	invoiceDescAmountRemaining := invoiceFields[13].Descriptor()
	// invoice.DefaultAmountRemaining holds the default value on creation for the amount_remaining field.
	invoice.DefaultAmountRemaining = invoiceDescAmountRemaining.Default.(decimal.Decimal)
	// invoiceDescInvoiceStatus is the schema descriptor for invoice_status field.
	invoiceDescInvoiceStatus := invoiceFields[14].Descriptor()
	// invoice.InvoiceStatusValidator is a validator for the "invoice_status" field. It is called by the builders before save.
	invoice.InvoiceStatusValidator = invoiceDescInvoiceStatus.Validators[0].(func(string) error)
	// invoiceDescPaymentStatus is the schema descriptor for payment_status field.
	invoiceDescPaymentStatus := invoiceFields[15].Descriptor()
	// invoice.PaymentStatusValidator is a validator for the "payment_status" field. It is called by the builders before save.
	invoice.PaymentStatusValidator = invoiceDescPaymentStatus.Validators[0].(func(string) error)
	invoicelineitemMixin := schema.InvoiceLineItem{}.Mixin()
	invoicelineitemMixinFields0 := invoicelineitemMixin[0].Fields()
	_ = invoicelineitemMixinFields0
	invoicelineitemFields := schema.InvoiceLineItem{}.Fields()
	_ = invoicelineitemFields
	// invoicelineitemDescTenantID is the schema descriptor for tenant_id field.
	invoicelineitemDescTenantID := invoicelineitemMixinFields0[0].Descriptor()
	// invoicelineitem.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	invoicelineitem.TenantIDValidator = invoicelineitemDescTenantID.Validators[0].(func(string) error)
	// invoicelineitemDescStatus is the schema descriptor for status field.
	invoicelineitemDescStatus := invoicelineitemMixinFields0[1].Descriptor()
	// invoicelineitem.DefaultStatus holds the default value on creation for the status field.
	invoicelineitem.DefaultStatus = invoicelineitemDescStatus.Default.(string)
	// invoicelineitemDescCreatedAt is the schema descriptor for created_at field.
	invoicelineitemDescCreatedAt := invoicelineitemMixinFields0[2].Descriptor()
	// invoicelineitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoicelineitem.DefaultCreatedAt = invoicelineitemDescCreatedAt.Default.(func() time.Time)
	// invoicelineitemDescUpdatedAt is the schema descriptor for updated_at field.
	invoicelineitemDescUpdatedAt := invoicelineitemMixinFields0[3].Descriptor()
	// invoicelineitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoicelineitem.DefaultUpdatedAt = invoicelineitemDescUpdatedAt.Default.(func() time.Time)
	// invoicelineitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoicelineitem.UpdateDefaultUpdatedAt = invoicelineitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoicelineitemDescInvoiceID is the schema descriptor for invoice_id field.
	invoicelineitemDescInvoiceID := invoicelineitemFields[1].Descriptor()
	// invoicelineitem.InvoiceIDValidator is a validator for the "invoice_id" field. It is called by the builders before save.
	invoicelineitem.InvoiceIDValidator = invoicelineitemDescInvoiceID.Validators[0].(func(string) error)
	// invoicelineitemDescDescription is the schema descriptor for description field.
	invoicelineitemDescDescription := invoicelineitemFields[2].Descriptor()
	// invoicelineitem.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	invoicelineitem.DescriptionValidator = invoicelineitemDescDescription.Validators[0].(func(string) error)
	// invoicelineitemDescQuantity is the schema descriptor for quantity field.
	invoicelineitemDescQuantity := invoicelineitemFields[3].Descriptor()
	// invoicelineitem.DefaultQuantity holds the default value on creation for the quantity field.
	invoicelineitem.DefaultQuantity = invoicelineitemDescQuantity.Default.(decimal.Decimal)
	// invoicelineitemDescUnitPrice is the schema descriptor for unit_price field.
	invoicelineitemDescUnitPrice := invoicelineitemFields[4].Descriptor()
	// invoicelineitem.DefaultUnitPrice holds the default value on creation for the unit_price field.
	invoicelineitem.DefaultUnitPrice = invoicelineitemDescUnitPrice.Default.(decimal.Decimal)
	// invoicelineitemDescAmount is the schema descriptor for amount field.
	invoicelineitemDescAmount := invoicelineitemFields[5].Descriptor()
	// invoicelineitem.DefaultAmount holds the default value on creation for the amount field.
	invoicelineitem.DefaultAmount = invoicelineitemDescAmount.Default.(decimal.Decimal)
	// invoicelineitemDescProrated is the schema descriptor for prorated field.
	invoicelineitemDescProrated := invoicelineitemFields[6].Descriptor()
	// invoicelineitem.DefaultProrated holds the default value on creation for the prorated field.
	invoicelineitem.DefaultProrated = invoicelineitemDescProrated.Default.(bool)
	paymentMixin := schema.Payment{}.Mixin()
	paymentMixinFields0 := paymentMixin[0].Fields()
	_ = paymentMixinFields0
	paymentFields := schema.Payment{}.Fields()
	_ = paymentFields
	// paymentDescTenantID is the schema descriptor for tenant_id field.
	paymentDescTenantID := paymentMixinFields0[0].Descriptor()
	// payment.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	payment.TenantIDValidator = paymentDescTenantID.Validators[0].(func(string) error)
	// paymentDescStatus is the schema descriptor for status field.
	paymentDescStatus := paymentMixinFields0[1].Descriptor()
	// payment.DefaultStatus holds the default value on creation for the status field.
	payment.DefaultStatus = paymentDescStatus.Default.(string)
	// paymentDescCreatedAt is the schema descriptor for created_at field.
	paymentDescCreatedAt := paymentMixinFields0[2].Descriptor()
	// payment.DefaultCreatedAt holds the default value on creation for the created_at field.
	payment.DefaultCreatedAt = paymentDescCreatedAt.Default.(func() time.Time)
	// paymentDescUpdatedAt is the schema descriptor for updated_at field.
	paymentDescUpdatedAt := paymentMixinFields0[3].Descriptor()
	// payment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	payment.DefaultUpdatedAt = paymentDescUpdatedAt.Default.(func() time.Time)
	// payment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	payment.UpdateDefaultUpdatedAt = paymentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// paymentDescInvoiceID is the schema descriptor for invoice_id field.
	paymentDescInvoiceID := paymentFields[2].Descriptor()
	// payment.InvoiceIDValidator is a validator for the "invoice_id" field. It is called by the builders before save.
	payment.InvoiceIDValidator = paymentDescInvoiceID.Validators[0].(func(string) error)
	// paymentDescAmount is the schema descriptor for amount field.
	paymentDescAmount := paymentFields[4].Descriptor()
	// payment.DefaultAmount holds the default value on creation for the amount field.
	payment.DefaultAmount = paymentDescAmount.Default.(decimal.Decimal)
	// paymentDescCurrency is the schema descriptor for currency field.
	paymentDescCurrency := paymentFields[5].Descriptor()
	// payment.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	payment.CurrencyValidator = paymentDescCurrency.Validators[0].(func(string) error)
	// paymentDescPaymentStatus is the schema descriptor for payment_status field.
	paymentDescPaymentStatus := paymentFields[6].Descriptor()
	// payment.PaymentStatusValidator is a validator for the "payment_status" field. It is called by the builders before save.
	payment.PaymentStatusValidator = paymentDescPaymentStatus.Validators[0].(func(string) error)
	// paymentDescRetryCount is the schema descriptor for retry_count field.
	paymentDescRetryCount := paymentFields[9].Descriptor()
	// payment.DefaultRetryCount holds the default value on creation for the retry_count field.
	payment.DefaultRetryCount = paymentDescRetryCount.Default.(int)
	// paymentDescMaxRetries is the schema descriptor for max_retries field.
	paymentDescMaxRetries := paymentFields[10].Descriptor()
	// payment.DefaultMaxRetries holds the default value on creation for the max_retries field.
	payment.DefaultMaxRetries = paymentDescMaxRetries.Default.(int)
	paymentattemptMixin := schema.PaymentAttempt{}.Mixin()
	paymentattemptMixinFields0 := paymentattemptMixin[0].Fields()
	_ = paymentattemptMixinFields0
	paymentattemptFields := schema.PaymentAttempt{}.Fields()
	_ = paymentattemptFields
	// paymentattemptDescTenantID is the schema descriptor for tenant_id field.
	paymentattemptDescTenantID := paymentattemptMixinFields0[0].Descriptor()
	// paymentattempt.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	paymentattempt.TenantIDValidator = paymentattemptDescTenantID.Validators[0].(func(string) error)
	// paymentattemptDescStatus is the schema descriptor for status field.
	paymentattemptDescStatus := paymentattemptMixinFields0[1].Descriptor()
	// paymentattempt.DefaultStatus holds the default value on creation for the status field.
	paymentattempt.DefaultStatus = paymentattemptDescStatus.Default.(string)
	// paymentattemptDescCreatedAt is the schema descriptor for created_at field.
	paymentattemptDescCreatedAt := paymentattemptMixinFields0[2].Descriptor()
	// paymentattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	paymentattempt.DefaultCreatedAt = paymentattemptDescCreatedAt.Default.(func() time.Time)
	// paymentattemptDescUpdatedAt is the schema descriptor for updated_at field.
	paymentattemptDescUpdatedAt := paymentattemptMixinFields0[3].Descriptor()
	// paymentattempt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	paymentattempt.DefaultUpdatedAt = paymentattemptDescUpdatedAt.Default.(func() time.Time)
	// paymentattempt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	paymentattempt.UpdateDefaultUpdatedAt = paymentattemptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// paymentattemptDescPaymentID is the schema descriptor for payment_id field.
	paymentattemptDescPaymentID := paymentattemptFields[1].Descriptor()
	// paymentattempt.PaymentIDValidator is a validator for the "payment_id" field. It is called by the builders before save.
	paymentattempt.PaymentIDValidator = paymentattemptDescPaymentID.Validators[0].(func(string) error)
	// paymentattemptDescAttemptStatus is the schema descriptor for attempt_status field.
	paymentattemptDescAttemptStatus := paymentattemptFields[3].Descriptor()
	// paymentattempt.AttemptStatusValidator is a validator for the "attempt_status" field. It is called by the builders before save.
	paymentattempt.AttemptStatusValidator = paymentattemptDescAttemptStatus.Validators[0].(func(string) error)
	recurringscheduleMixin := schema.RecurringSchedule{}.Mixin()
	recurringscheduleMixinFields0 := recurringscheduleMixin[0].Fields()
	_ = recurringscheduleMixinFields0
	recurringscheduleMixinFields1 := recurringscheduleMixin[1].Fields()
	_ = recurringscheduleMixinFields1
	recurringscheduleFields := schema.RecurringSchedule{}.Fields()
	_ = recurringscheduleFields
	// recurringscheduleDescTenantID is the schema descriptor for tenant_id field.
	recurringscheduleDescTenantID := recurringscheduleMixinFields0[0].Descriptor()
	// recurringschedule.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	recurringschedule.TenantIDValidator = recurringscheduleDescTenantID.Validators[0].(func(string) error)
	// recurringscheduleDescStatus is the schema descriptor for status field.
	recurringscheduleDescStatus := recurringscheduleMixinFields0[1].Descriptor()
	// recurringschedule.DefaultStatus holds the default value on creation for the status field.
	recurringschedule.DefaultStatus = recurringscheduleDescStatus.Default.(string)
	// recurringscheduleDescCreatedAt is the schema descriptor for created_at field.
	recurringscheduleDescCreatedAt := recurringscheduleMixinFields0[2].Descriptor()
	// recurringschedule.DefaultCreatedAt holds the default value on creation for the created_at field.
	recurringschedule.DefaultCreatedAt = recurringscheduleDescCreatedAt.Default.(func() time.Time)
	// recurringscheduleDescUpdatedAt is the schema descriptor for updated_at field.
	recurringscheduleDescUpdatedAt := recurringscheduleMixinFields0[3].Descriptor()
	// recurringschedule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recurringschedule.DefaultUpdatedAt = recurringscheduleDescUpdatedAt.Default.(func() time.Time)
	// recurringschedule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recurringschedule.UpdateDefaultUpdatedAt = recurringscheduleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// recurringscheduleDescMetadata is the schema descriptor for metadata field.
	recurringscheduleDescMetadata := recurringscheduleMixinFields1[0].Descriptor()
	// recurringschedule.DefaultMetadata holds the default value on creation for the metadata field.
	recurringschedule.DefaultMetadata = recurringscheduleDescMetadata.Default.(map[string]string)
	// recurringscheduleDescCustomerID is the schema descriptor for customer_id field.
	recurringscheduleDescCustomerID := recurringscheduleFields[1].Descriptor()
	// recurringschedule.CustomerIDValidator is a validator for the "customer_id" field. It is called by the builders before save.
	recurringschedule.CustomerIDValidator = recurringscheduleDescCustomerID.Validators[0].(func(string) error)
	// recurringscheduleDescIntervalType is the schema descriptor for interval_type field.
	recurringscheduleDescIntervalType := recurringscheduleFields[3].Descriptor()
	// recurringschedule.IntervalTypeValidator is a validator for the "interval_type" field. It is called by the builders before save.
	recurringschedule.IntervalTypeValidator = recurringscheduleDescIntervalType.Validators[0].(func(string) error)
	// recurringscheduleDescCustomIntervalDays is the schema descriptor for custom_interval_days field.
	recurringscheduleDescCustomIntervalDays := recurringscheduleFields[4].Descriptor()
	// recurringschedule.DefaultCustomIntervalDays holds the default value on creation for the custom_interval_days field.
	recurringschedule.DefaultCustomIntervalDays = recurringscheduleDescCustomIntervalDays.Default.(int)
	// recurringscheduleDescAnchorDay is the schema descriptor for anchor_day field.
	recurringscheduleDescAnchorDay := recurringscheduleFields[5].Descriptor()
	// recurringschedule.DefaultAnchorDay holds the default value on creation for the anchor_day field.
	recurringschedule.DefaultAnchorDay = recurringscheduleDescAnchorDay.Default.(int)
	// recurringscheduleDescTimezone is the schema descriptor for timezone field.
	recurringscheduleDescTimezone := recurringscheduleFields[10].Descriptor()
	// recurringschedule.DefaultTimezone holds the default value on creation for the timezone field.
	recurringschedule.DefaultTimezone = recurringscheduleDescTimezone.Default.(string)
	// recurringscheduleDescScheduleStatus is the schema descriptor for schedule_status field.
	recurringscheduleDescScheduleStatus := recurringscheduleFields[11].Descriptor()
	// recurringschedule.DefaultScheduleStatus holds the default value on creation for the schedule_status field.
	recurringschedule.DefaultScheduleStatus = recurringscheduleDescScheduleStatus.Default.(string)
	// recurringscheduleDescCurrency is the schema descriptor for currency field.
	recurringscheduleDescCurrency := recurringscheduleFields[15].Descriptor()
	// recurringschedule.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	recurringschedule.CurrencyValidator = recurringscheduleDescCurrency.Validators[0].(func(string) error)
	// recurringscheduleDescBaseAmount is the schema descriptor for base_amount field.
	recurringscheduleDescBaseAmount := recurringscheduleFields[16].Descriptor()
	// recurringschedule.DefaultBaseAmount holds the default value on creation for the base_amount field.
	recurringschedule.DefaultBaseAmount = recurringscheduleDescBaseAmount.Default.(decimal.Decimal)
	// recurringscheduleDescTaxRate is the schema descriptor for tax_rate field.
	recurringscheduleDescTaxRate := recurringscheduleFields[18].Descriptor()
	// recurringschedule.DefaultTaxRate holds the default value on creation for the tax_rate field.
	recurringschedule.DefaultTaxRate = recurringscheduleDescTaxRate.Default.(decimal.Decimal)
	// recurringscheduleDescTaxInclusive is the schema descriptor for tax_inclusive field.
	recurringscheduleDescTaxInclusive := recurringscheduleFields[19].Descriptor()
	// recurringschedule.DefaultTaxInclusive holds the default value on creation for the tax_inclusive field.
	recurringschedule.DefaultTaxInclusive = recurringscheduleDescTaxInclusive.Default.(bool)
	// recurringscheduleDescProrationEnabled is the schema descriptor for proration_enabled field.
	recurringscheduleDescProrationEnabled := recurringscheduleFields[20].Descriptor()
	// recurringschedule.DefaultProrationEnabled holds the default value on creation for the proration_enabled field.
	recurringschedule.DefaultProrationEnabled = recurringscheduleDescProrationEnabled.Default.(bool)
	// recurringscheduleDescPaymentTermsDays is the schema descriptor for payment_terms_days field.
	recurringscheduleDescPaymentTermsDays := recurringscheduleFields[22].Descriptor()
	// recurringschedule.DefaultPaymentTermsDays holds the default value on creation for the payment_terms_days field.
	recurringschedule.DefaultPaymentTermsDays = recurringscheduleDescPaymentTermsDays.Default.(int)
	// recurringscheduleDescAutoCharge is the schema descriptor for auto_charge field.
	recurringscheduleDescAutoCharge := recurringscheduleFields[23].Descriptor()
	// recurringschedule.DefaultAutoCharge holds the default value on creation for the auto_charge field.
	recurringschedule.DefaultAutoCharge = recurringscheduleDescAutoCharge.Default.(bool)
	// recurringscheduleDescRetryEnabled is the schema descriptor for retry_enabled field.
	recurringscheduleDescRetryEnabled := recurringscheduleFields[24].Descriptor()
	// recurringschedule.DefaultRetryEnabled holds the default value on creation for the retry_enabled field.
	recurringschedule.DefaultRetryEnabled = recurringscheduleDescRetryEnabled.Default.(bool)
	// recurringscheduleDescMaxRetryAttempts is the schema descriptor for max_retry_attempts field.
	recurringscheduleDescMaxRetryAttempts := recurringscheduleFields[25].Descriptor()
	// recurringschedule.DefaultMaxRetryAttempts holds the default value on creation for the max_retry_attempts field.
	recurringschedule.DefaultMaxRetryAttempts = recurringscheduleDescMaxRetryAttempts.Default.(int)
	// recurringscheduleDescRetryIntervalHours is the schema descriptor for retry_interval_hours field.
	recurringscheduleDescRetryIntervalHours := recurringscheduleFields[26].Descriptor()
	// recurringschedule.DefaultRetryIntervalHours holds the default value on creation for the retry_interval_hours field.
	recurringschedule.DefaultRetryIntervalHours = recurringscheduleDescRetryIntervalHours.Default.(int)
	// recurringscheduleDescRetryBackoffMultiplier is the schema descriptor for retry_backoff_multiplier field.
	recurringscheduleDescRetryBackoffMultiplier := recurringscheduleFields[27].Descriptor()
	// recurringschedule.DefaultRetryBackoffMultiplier holds the default value on creation for the retry_backoff_multiplier field.
	recurringschedule.DefaultRetryBackoffMultiplier = recurringscheduleDescRetryBackoffMultiplier.Default.(float64)
	// recurringscheduleDescFailureNotificationSent is the schema descriptor for failure_notification_sent field.
	recurringscheduleDescFailureNotificationSent := recurringscheduleFields[28].Descriptor()
	// recurringschedule.DefaultFailureNotificationSent holds the default value on creation for the failure_notification_sent field.
	recurringschedule.DefaultFailureNotificationSent = recurringscheduleDescFailureNotificationSent.Default.(bool)
	// recurringscheduleDescTotalInvoicesGenerated is the schema descriptor for total_invoices_generated field.
	recurringscheduleDescTotalInvoicesGenerated := recurringscheduleFields[29].Descriptor()
	// recurringschedule.DefaultTotalInvoicesGenerated holds the default value on creation for the total_invoices_generated field.
	recurringschedule.DefaultTotalInvoicesGenerated = recurringscheduleDescTotalInvoicesGenerated.Default.(int)
	// recurringscheduleDescTotalAmountBilled is the schema descriptor for total_amount_billed field.
	recurringscheduleDescTotalAmountBilled := recurringscheduleFields[30].Descriptor()
	// recurringschedule.DefaultTotalAmountBilled holds the default value on creation for the total_amount_billed field.
	recurringschedule.DefaultTotalAmountBilled = recurringscheduleDescTotalAmountBilled.Default.(decimal.Decimal)
	scheduleexecutionMixin := schema.ScheduleExecution{}.Mixin()
	scheduleexecutionMixinFields0 := scheduleexecutionMixin[0].Fields()
	_ = scheduleexecutionMixinFields0
	scheduleexecutionFields := schema.ScheduleExecution{}.Fields()
	_ = scheduleexecutionFields
	// scheduleexecutionDescTenantID is the schema descriptor for tenant_id field.
	scheduleexecutionDescTenantID := scheduleexecutionMixinFields0[0].Descriptor()
	// scheduleexecution.TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	scheduleexecution.TenantIDValidator = scheduleexecutionDescTenantID.Validators[0].(func(string) error)
	// scheduleexecutionDescStatus is the schema descriptor for status field.
	scheduleexecutionDescStatus := scheduleexecutionMixinFields0[1].Descriptor()
	// scheduleexecution.DefaultStatus holds the default value on creation for the status field.
	scheduleexecution.DefaultStatus = scheduleexecutionDescStatus.Default.(string)
	// scheduleexecutionDescCreatedAt is the schema descriptor for created_at field.
	scheduleexecutionDescCreatedAt := scheduleexecutionMixinFields0[2].Descriptor()
	// scheduleexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduleexecution.DefaultCreatedAt = scheduleexecutionDescCreatedAt.Default.(func() time.Time)
	// scheduleexecutionDescUpdatedAt is the schema descriptor for updated_at field.
	scheduleexecutionDescUpdatedAt := scheduleexecutionMixinFields0[3].Descriptor()
	// scheduleexecution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scheduleexecution.DefaultUpdatedAt = scheduleexecutionDescUpdatedAt.Default.(func() time.Time)
	// scheduleexecution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scheduleexecution.UpdateDefaultUpdatedAt = scheduleexecutionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// scheduleexecutionDescScheduleID is the schema descriptor for schedule_id field.
	scheduleexecutionDescScheduleID := scheduleexecutionFields[1].Descriptor()
	// scheduleexecution.ScheduleIDValidator is a validator for the "schedule_id" field. It is called by the builders before save.
	scheduleexecution.ScheduleIDValidator = scheduleexecutionDescScheduleID.Validators[0].(func(string) error)
	// scheduleexecutionDescExecutionStatus is the schema descriptor for execution_status field.
	scheduleexecutionDescExecutionStatus := scheduleexecutionFields[5].Descriptor()
	// scheduleexecution.ExecutionStatusValidator is a validator for the "execution_status" field. It is called by the builders before save.
	scheduleexecution.ExecutionStatusValidator = scheduleexecutionDescExecutionStatus.Validators[0].(func(string) error)
	// scheduleexecutionDescAmountGenerated is the schema descriptor for amount_generated field.
	scheduleexecutionDescAmountGenerated := scheduleexecutionFields[7].Descriptor()
	// scheduleexecution.DefaultAmountGenerated holds the default value on creation for the amount_generated field.
	scheduleexecution.DefaultAmountGenerated = scheduleexecutionDescAmountGenerated.Default.(decimal.Decimal)
	// scheduleexecutionDescProratedAmount is the schema descriptor for prorated_amount field.
	scheduleexecutionDescProratedAmount := scheduleexecutionFields[8].Descriptor()
	// scheduleexecution.DefaultProratedAmount holds the default value on creation for the prorated_amount field.
	scheduleexecution.DefaultProratedAmount = scheduleexecutionDescProratedAmount.Default.(decimal.Decimal)
}

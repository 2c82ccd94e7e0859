// Code generated by ent, DO NOT EDIT.

package recurringschedule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shopspring/decimal"
)

const (
	// Label holds the string label denoting the recurringschedule type in the database.
	Label = "recurring_schedule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldUpdatedBy holds the string denoting the updated_by field in the database.
	FieldUpdatedBy = "updated_by"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCustomerID holds the string denoting the customer_id field in the database.
	FieldCustomerID = "customer_id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldIntervalType holds the string denoting the interval_type field in the database.
	FieldIntervalType = "interval_type"
	// FieldCustomIntervalDays holds the string denoting the custom_interval_days field in the database.
	FieldCustomIntervalDays = "custom_interval_days"
	// FieldAnchorDay holds the string denoting the anchor_day field in the database.
	FieldAnchorDay = "anchor_day"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldEndDate holds the string denoting the end_date field in the database.
	FieldEndDate = "end_date"
	// FieldNextRunDate holds the string denoting the next_run_date field in the database.
	FieldNextRunDate = "next_run_date"
	// FieldLastRunDate holds the string denoting the last_run_date field in the database.
	FieldLastRunDate = "last_run_date"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldScheduleStatus holds the string denoting the schedule_status field in the database.
	FieldScheduleStatus = "schedule_status"
	// FieldPausedAt holds the string denoting the paused_at field in the database.
	FieldPausedAt = "paused_at"
	// FieldCancelledAt holds the string denoting the cancelled_at field in the database.
	FieldCancelledAt = "cancelled_at"
	// FieldCancellationReason holds the string denoting the cancellation_reason field in the database.
	FieldCancellationReason = "cancellation_reason"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldBaseAmount holds the string denoting the base_amount field in the database.
	FieldBaseAmount = "base_amount"
	// FieldLineItems holds the string denoting the line_items field in the database.
	FieldLineItems = "line_items"
	// FieldTaxRate holds the string denoting the tax_rate field in the database.
	FieldTaxRate = "tax_rate"
	// FieldTaxInclusive holds the string denoting the tax_inclusive field in the database.
	FieldTaxInclusive = "tax_inclusive"
	// FieldProrationEnabled holds the string denoting the proration_enabled field in the database.
	FieldProrationEnabled = "proration_enabled"
	// FieldInvoiceNotes holds the string denoting the invoice_notes field in the database.
	FieldInvoiceNotes = "invoice_notes"
	// FieldPaymentTermsDays holds the string denoting the payment_terms_days field in the database.
	FieldPaymentTermsDays = "payment_terms_days"
	// FieldAutoCharge holds the string denoting the auto_charge field in the database.
	FieldAutoCharge = "auto_charge"
	// FieldRetryEnabled holds the string denoting the retry_enabled field in the database.
	FieldRetryEnabled = "retry_enabled"
	// FieldMaxRetryAttempts holds the string denoting the max_retry_attempts field in the database.
	FieldMaxRetryAttempts = "max_retry_attempts"
	// FieldRetryIntervalHours holds the string denoting the retry_interval_hours field in the database.
	FieldRetryIntervalHours = "retry_interval_hours"
	// FieldRetryBackoffMultiplier holds the string denoting the retry_backoff_multiplier field in the database.
	FieldRetryBackoffMultiplier = "retry_backoff_multiplier"
	// FieldFailureNotificationSent holds the string denoting the failure_notification_sent field in the database.
	FieldFailureNotificationSent = "failure_notification_sent"
	// FieldTotalInvoicesGenerated holds the string denoting the total_invoices_generated field in the database.
	FieldTotalInvoicesGenerated = "total_invoices_generated"
	// FieldTotalAmountBilled holds the string denoting the total_amount_billed field in the database.
	FieldTotalAmountBilled = "total_amount_billed"
	// EdgeCustomer holds the string denoting the customer edge name in mutations.
	EdgeCustomer = "customer"
	// EdgeExecutions holds the string denoting the executions edge name in mutations.
	EdgeExecutions = "executions"
	// EdgeAuditLogs holds the string denoting the audit_logs edge name in mutations.
	EdgeAuditLogs = "audit_logs"
	// Table holds the table name of the recurringschedule in the database.
	Table = "recurring_schedules"
	// CustomerTable is the table that holds the customer relation/edge.
	CustomerTable = "recurring_schedules"
	// CustomerInverseTable is the table name for the Customer entity.
	// It exists in this package in order to avoid circular dependency with the "customer" package.
	CustomerInverseTable = "customers"
	// CustomerColumn is the table column denoting the customer relation/edge.
	CustomerColumn = "customer_id"
	// ExecutionsTable is the table that holds the executions relation/edge.
	ExecutionsTable = "schedule_executions"
	// ExecutionsInverseTable is the table name for the ScheduleExecution entity.
	// It exists in this package in order to avoid circular dependency with the "scheduleexecution" package.
	ExecutionsInverseTable = "schedule_executions"
	// ExecutionsColumn is the table column denoting the executions relation/edge.
	ExecutionsColumn = "schedule_id"
	// AuditLogsTable is the table that holds the audit_logs relation/edge.
	AuditLogsTable = "audit_logs"
	// AuditLogsInverseTable is the table name for the AuditLog entity.
	// It exists in this package in order to avoid circular dependency with the "auditlog" package.
	AuditLogsInverseTable = "audit_logs"
	// AuditLogsColumn is the table column denoting the audit_logs relation/edge.
	AuditLogsColumn = "schedule_id"
)

// Columns holds all SQL columns for recurringschedule fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCreatedBy,
	FieldUpdatedBy,
	FieldMetadata,
	FieldCustomerID,
	FieldDescription,
	FieldIntervalType,
	FieldCustomIntervalDays,
	FieldAnchorDay,
	FieldStartDate,
	FieldEndDate,
	FieldNextRunDate,
	FieldLastRunDate,
	FieldTimezone,
	FieldScheduleStatus,
	FieldPausedAt,
	FieldCancelledAt,
	FieldCancellationReason,
	FieldCurrency,
	FieldBaseAmount,
	FieldLineItems,
	FieldTaxRate,
	FieldTaxInclusive,
	FieldProrationEnabled,
	FieldInvoiceNotes,
	FieldPaymentTermsDays,
	FieldAutoCharge,
	FieldRetryEnabled,
	FieldMaxRetryAttempts,
	FieldRetryIntervalHours,
	FieldRetryBackoffMultiplier,
	FieldFailureNotificationSent,
	FieldTotalInvoicesGenerated,
	FieldTotalAmountBilled,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	TenantIDValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultMetadata holds the default value on creation for the "metadata" field.
	DefaultMetadata map[string]string
	// CustomerIDValidator is a validator for the "customer_id" field. It is called by the builders before save.
	CustomerIDValidator func(string) error
	// IntervalTypeValidator is a validator for the "interval_type" field. It is called by the builders before save.
	IntervalTypeValidator func(string) error
	// DefaultCustomIntervalDays holds the default value on creation for the "custom_interval_days" field.
	DefaultCustomIntervalDays int
	// DefaultAnchorDay holds the default value on creation for the "anchor_day" field.
	DefaultAnchorDay int
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultScheduleStatus holds the default value on creation for the "schedule_status" field.
	DefaultScheduleStatus string
	// CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	CurrencyValidator func(string) error
	// DefaultBaseAmount holds the default value on creation for the "base_amount" field.
	DefaultBaseAmount decimal.Decimal
	// DefaultTaxRate holds the default value on creation for the "tax_rate" field.
	DefaultTaxRate decimal.Decimal
	// DefaultTaxInclusive holds the default value on creation for the "tax_inclusive" field.
	DefaultTaxInclusive bool
	// DefaultProrationEnabled holds the default value on creation for the "proration_enabled" field.
	DefaultProrationEnabled bool
	// DefaultPaymentTermsDays holds the default value on creation for the "payment_terms_days" field.
	DefaultPaymentTermsDays int
	// DefaultAutoCharge holds the default value on creation for the "auto_charge" field.
	DefaultAutoCharge bool
	// DefaultRetryEnabled holds the default value on creation for the "retry_enabled" field.
	DefaultRetryEnabled bool
	// DefaultMaxRetryAttempts holds the default value on creation for the "max_retry_attempts" field.
	DefaultMaxRetryAttempts int
	// DefaultRetryIntervalHours holds the default value on creation for the "retry_interval_hours" field.
	DefaultRetryIntervalHours int
	// DefaultRetryBackoffMultiplier holds the default value on creation for the "retry_backoff_multiplier" field.
	DefaultRetryBackoffMultiplier float64
	// DefaultFailureNotificationSent holds the default value on creation for the "failure_notification_sent" field.
	DefaultFailureNotificationSent bool
	// DefaultTotalInvoicesGenerated holds the default value on creation for the "total_invoices_generated" field.
	DefaultTotalInvoicesGenerated int
	// DefaultTotalAmountBilled holds the default value on creation for the "total_amount_billed" field.
	DefaultTotalAmountBilled decimal.Decimal
)

// OrderOption defines the ordering options for the RecurringSchedule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByUpdatedBy orders the results by the updated_by field.
func ByUpdatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedBy, opts...).ToFunc()
}

// ByCustomerID orders the results by the customer_id field.
func ByCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByIntervalType orders the results by the interval_type field.
func ByIntervalType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalType, opts...).ToFunc()
}

// ByCustomIntervalDays orders the results by the custom_interval_days field.
func ByCustomIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomIntervalDays, opts...).ToFunc()
}

// ByAnchorDay orders the results by the anchor_day field.
func ByAnchorDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnchorDay, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByEndDate orders the results by the end_date field.
func ByEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDate, opts...).ToFunc()
}

// ByNextRunDate orders the results by the next_run_date field.
func ByNextRunDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRunDate, opts...).ToFunc()
}

// ByLastRunDate orders the results by the last_run_date field.
func ByLastRunDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunDate, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByScheduleStatus orders the results by the schedule_status field.
func ByScheduleStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduleStatus, opts...).ToFunc()
}

// ByPausedAt orders the results by the paused_at field.
func ByPausedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPausedAt, opts...).ToFunc()
}

// ByCancelledAt orders the results by the cancelled_at field.
func ByCancelledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelledAt, opts...).ToFunc()
}

// ByCancellationReason orders the results by the cancellation_reason field.
func ByCancellationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancellationReason, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByBaseAmount orders the results by the base_amount field.
func ByBaseAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaseAmount, opts...).ToFunc()
}

// ByTaxRate orders the results by the tax_rate field.
func ByTaxRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxRate, opts...).ToFunc()
}

// ByTaxInclusive orders the results by the tax_inclusive field.
func ByTaxInclusive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxInclusive, opts...).ToFunc()
}

// ByProrationEnabled orders the results by the proration_enabled field.
func ByProrationEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProrationEnabled, opts...).ToFunc()
}

// ByInvoiceNotes orders the results by the invoice_notes field.
func ByInvoiceNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvoiceNotes, opts...).ToFunc()
}

// ByPaymentTermsDays orders the results by the payment_terms_days field.
func ByPaymentTermsDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentTermsDays, opts...).ToFunc()
}

// ByAutoCharge orders the results by the auto_charge field.
func ByAutoCharge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoCharge, opts...).ToFunc()
}

// ByRetryEnabled orders the results by the retry_enabled field.
func ByRetryEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryEnabled, opts...).ToFunc()
}

// ByMaxRetryAttempts orders the results by the max_retry_attempts field.
func ByMaxRetryAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetryAttempts, opts...).ToFunc()
}

// ByRetryIntervalHours orders the results by the retry_interval_hours field.
func ByRetryIntervalHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryIntervalHours, opts...).ToFunc()
}

// ByRetryBackoffMultiplier orders the results by the retry_backoff_multiplier field.
func ByRetryBackoffMultiplier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryBackoffMultiplier, opts...).ToFunc()
}

// ByFailureNotificationSent orders the results by the failure_notification_sent field.
func ByFailureNotificationSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureNotificationSent, opts...).ToFunc()
}

// ByTotalInvoicesGenerated orders the results by the total_invoices_generated field.
func ByTotalInvoicesGenerated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalInvoicesGenerated, opts...).ToFunc()
}

// ByTotalAmountBilled orders the results by the total_amount_billed field.
func ByTotalAmountBilled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmountBilled, opts...).ToFunc()
}

// ByCustomerField orders the results by customer field.
func ByCustomerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCustomerStep(), sql.OrderByField(field, opts...))
	}
}

// ByExecutionsCount orders the results by executions count.
func ByExecutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionsStep(), opts...)
	}
}

// ByExecutions orders the results by executions terms.
func ByExecutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuditLogsCount orders the results by audit_logs count.
func ByAuditLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditLogsStep(), opts...)
	}
}

// ByAuditLogs orders the results by audit_logs terms.
func ByAuditLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCustomerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CustomerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CustomerTable, CustomerColumn),
	)
}
func newExecutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionsTable, ExecutionsColumn),
	)
}
func newAuditLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditLogsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
	)
}

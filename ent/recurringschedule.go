// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/invoiceflow/invoiceflow/ent/customer"
	"github.com/invoiceflow/invoiceflow/ent/recurringschedule"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

// RecurringSchedule is the model entity for the RecurringSchedule schema.
type RecurringSchedule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// UpdatedBy holds the value of the "updated_by" field.
	UpdatedBy string `json:"updated_by,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]string `json:"metadata,omitempty"`
	// CustomerID holds the value of the "customer_id" field.
	CustomerID string `json:"customer_id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// IntervalType holds the value of the "interval_type" field.
	IntervalType string `json:"interval_type,omitempty"`
	// CustomIntervalDays holds the value of the "custom_interval_days" field.
	CustomIntervalDays int `json:"custom_interval_days,omitempty"`
	// AnchorDay holds the value of the "anchor_day" field.
	AnchorDay int `json:"anchor_day,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate time.Time `json:"start_date,omitempty"`
	// EndDate holds the value of the "end_date" field.
	EndDate *time.Time `json:"end_date,omitempty"`
	// NextRunDate holds the value of the "next_run_date" field.
	NextRunDate time.Time `json:"next_run_date,omitempty"`
	// LastRunDate holds the value of the "last_run_date" field.
	LastRunDate *time.Time `json:"last_run_date,omitempty"`
	// Timezone holds the value of the "timezone" field.
	Timezone string `json:"timezone,omitempty"`
	// ScheduleStatus holds the value of the "schedule_status" field.
	ScheduleStatus string `json:"schedule_status,omitempty"`
	// PausedAt holds the value of the "paused_at" field.
	PausedAt *time.Time `json:"paused_at,omitempty"`
	// CancelledAt holds the value of the "cancelled_at" field.
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	// CancellationReason holds the value of the "cancellation_reason" field.
	CancellationReason string `json:"cancellation_reason,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// BaseAmount holds the value of the "base_amount" field.
	BaseAmount decimal.Decimal `json:"base_amount,omitempty"`
	// LineItems holds the value of the "line_items" field.
	LineItems []types.ScheduleLineItem `json:"line_items,omitempty"`
	// TaxRate holds the value of the "tax_rate" field.
	TaxRate decimal.Decimal `json:"tax_rate,omitempty"`
	// TaxInclusive holds the value of the "tax_inclusive" field.
	TaxInclusive bool `json:"tax_inclusive,omitempty"`
	// ProrationEnabled holds the value of the "proration_enabled" field.
	ProrationEnabled bool `json:"proration_enabled,omitempty"`
	// InvoiceNotes holds the value of the "invoice_notes" field.
	InvoiceNotes string `json:"invoice_notes,omitempty"`
	// PaymentTermsDays holds the value of the "payment_terms_days" field.
	PaymentTermsDays int `json:"payment_terms_days,omitempty"`
	// AutoCharge holds the value of the "auto_charge" field.
	AutoCharge bool `json:"auto_charge,omitempty"`
	// RetryEnabled holds the value of the "retry_enabled" field.
	RetryEnabled bool `json:"retry_enabled,omitempty"`
	// MaxRetryAttempts holds the value of the "max_retry_attempts" field.
	MaxRetryAttempts int `json:"max_retry_attempts,omitempty"`
	// RetryIntervalHours holds the value of the "retry_interval_hours" field.
	RetryIntervalHours int `json:"retry_interval_hours,omitempty"`
	// RetryBackoffMultiplier holds the value of the "retry_backoff_multiplier" field.
	RetryBackoffMultiplier float64 `json:"retry_backoff_multiplier,omitempty"`
	// FailureNotificationSent holds the value of the "failure_notification_sent" field.
	FailureNotificationSent bool `json:"failure_notification_sent,omitempty"`
	// TotalInvoicesGenerated holds the value of the "total_invoices_generated" field.
	TotalInvoicesGenerated int `json:"total_invoices_generated,omitempty"`
	// TotalAmountBilled holds the value of the "total_amount_billed" field.
	TotalAmountBilled decimal.Decimal `json:"total_amount_billed,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecurringScheduleQuery when eager-loading is set.
	Edges        RecurringScheduleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecurringScheduleEdges holds the relations/edges for other nodes in the graph.
type RecurringScheduleEdges struct {
	// Customer holds the value of the customer edge.
	Customer *Customer `json:"customer,omitempty"`
	// Executions holds the value of the executions edge.
	Executions []*ScheduleExecution `json:"executions,omitempty"`
	// AuditLogs holds the value of the audit_logs edge.
	AuditLogs []*AuditLog `json:"audit_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CustomerOrErr returns the Customer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecurringScheduleEdges) CustomerOrErr() (*Customer, error) {
	if e.Customer != nil {
		return e.Customer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: customer.Label}
	}
	return nil, &NotLoadedError{edge: "customer"}
}

// ExecutionsOrErr returns the Executions value or an error if the edge
// was not loaded in eager-loading.
func (e RecurringScheduleEdges) ExecutionsOrErr() ([]*ScheduleExecution, error) {
	if e.loadedTypes[1] {
		return e.Executions, nil
	}
	return nil, &NotLoadedError{edge: "executions"}
}

// AuditLogsOrErr returns the AuditLogs value or an error if the edge
// was not loaded in eager-loading.
func (e RecurringScheduleEdges) AuditLogsOrErr() ([]*AuditLog, error) {
	if e.loadedTypes[2] {
		return e.AuditLogs, nil
	}
	return nil, &NotLoadedError{edge: "audit_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecurringSchedule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recurringschedule.FieldMetadata, recurringschedule.FieldLineItems:
			values[i] = new([]byte)
		case recurringschedule.FieldBaseAmount, recurringschedule.FieldTaxRate, recurringschedule.FieldTotalAmountBilled:
			values[i] = new(decimal.Decimal)
		case recurringschedule.FieldTaxInclusive, recurringschedule.FieldProrationEnabled, recurringschedule.FieldAutoCharge, recurringschedule.FieldRetryEnabled, recurringschedule.FieldFailureNotificationSent:
			values[i] = new(sql.NullBool)
		case recurringschedule.FieldRetryBackoffMultiplier:
			values[i] = new(sql.NullFloat64)
		case recurringschedule.FieldCustomIntervalDays, recurringschedule.FieldAnchorDay, recurringschedule.FieldPaymentTermsDays, recurringschedule.FieldMaxRetryAttempts, recurringschedule.FieldRetryIntervalHours, recurringschedule.FieldTotalInvoicesGenerated:
			values[i] = new(sql.NullInt64)
		case recurringschedule.FieldID, recurringschedule.FieldTenantID, recurringschedule.FieldStatus, recurringschedule.FieldCreatedBy, recurringschedule.FieldUpdatedBy, recurringschedule.FieldCustomerID, recurringschedule.FieldDescription, recurringschedule.FieldIntervalType, recurringschedule.FieldTimezone, recurringschedule.FieldScheduleStatus, recurringschedule.FieldCancellationReason, recurringschedule.FieldCurrency, recurringschedule.FieldInvoiceNotes:
			values[i] = new(sql.NullString)
		case recurringschedule.FieldCreatedAt, recurringschedule.FieldUpdatedAt, recurringschedule.FieldStartDate, recurringschedule.FieldEndDate, recurringschedule.FieldNextRunDate, recurringschedule.FieldLastRunDate, recurringschedule.FieldPausedAt, recurringschedule.FieldCancelledAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecurringSchedule fields.
func (rs *RecurringSchedule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recurringschedule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				rs.ID = value.String
			}
		case recurringschedule.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				rs.TenantID = value.String
			}
		case recurringschedule.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				rs.Status = value.String
			}
		case recurringschedule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				rs.CreatedAt = value.Time
			}
		case recurringschedule.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				rs.UpdatedAt = value.Time
			}
		case recurringschedule.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				rs.CreatedBy = value.String
			}
		case recurringschedule.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				rs.UpdatedBy = value.String
			}
		case recurringschedule.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &rs.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case recurringschedule.FieldCustomerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_id", values[i])
			} else if value.Valid {
				rs.CustomerID = value.String
			}
		case recurringschedule.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				rs.Description = value.String
			}
		case recurringschedule.FieldIntervalType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interval_type", values[i])
			} else if value.Valid {
				rs.IntervalType = value.String
			}
		case recurringschedule.FieldCustomIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field custom_interval_days", values[i])
			} else if value.Valid {
				rs.CustomIntervalDays = int(value.Int64)
			}
		case recurringschedule.FieldAnchorDay:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field anchor_day", values[i])
			} else if value.Valid {
				rs.AnchorDay = int(value.Int64)
			}
		case recurringschedule.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				rs.StartDate = value.Time
			}
		case recurringschedule.FieldEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				rs.EndDate = new(time.Time)
				*rs.EndDate = value.Time
			}
		case recurringschedule.FieldNextRunDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_run_date", values[i])
			} else if value.Valid {
				rs.NextRunDate = value.Time
			}
		case recurringschedule.FieldLastRunDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_date", values[i])
			} else if value.Valid {
				rs.LastRunDate = new(time.Time)
				*rs.LastRunDate = value.Time
			}
		case recurringschedule.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				rs.Timezone = value.String
			}
		case recurringschedule.FieldScheduleStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_status", values[i])
			} else if value.Valid {
				rs.ScheduleStatus = value.String
			}
		case recurringschedule.FieldPausedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paused_at", values[i])
			} else if value.Valid {
				rs.PausedAt = new(time.Time)
				*rs.PausedAt = value.Time
			}
		case recurringschedule.FieldCancelledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cancelled_at", values[i])
			} else if value.Valid {
				rs.CancelledAt = new(time.Time)
				*rs.CancelledAt = value.Time
			}
		case recurringschedule.FieldCancellationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cancellation_reason", values[i])
			} else if value.Valid {
				rs.CancellationReason = value.String
			}
		case recurringschedule.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				rs.Currency = value.String
			}
		case recurringschedule.FieldBaseAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field base_amount", values[i])
			} else if value != nil {
				rs.BaseAmount = *value
			}
		case recurringschedule.FieldLineItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field line_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &rs.LineItems); err != nil {
					return fmt.Errorf("unmarshal field line_items: %w", err)
				}
			}
		case recurringschedule.FieldTaxRate:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field tax_rate", values[i])
			} else if value != nil {
				rs.TaxRate = *value
			}
		case recurringschedule.FieldTaxInclusive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field tax_inclusive", values[i])
			} else if value.Valid {
				rs.TaxInclusive = value.Bool
			}
		case recurringschedule.FieldProrationEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field proration_enabled", values[i])
			} else if value.Valid {
				rs.ProrationEnabled = value.Bool
			}
		case recurringschedule.FieldInvoiceNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_notes", values[i])
			} else if value.Valid {
				rs.InvoiceNotes = value.String
			}
		case recurringschedule.FieldPaymentTermsDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field payment_terms_days", values[i])
			} else if value.Valid {
				rs.PaymentTermsDays = int(value.Int64)
			}
		case recurringschedule.FieldAutoCharge:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_charge", values[i])
			} else if value.Valid {
				rs.AutoCharge = value.Bool
			}
		case recurringschedule.FieldRetryEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field retry_enabled", values[i])
			} else if value.Valid {
				rs.RetryEnabled = value.Bool
			}
		case recurringschedule.FieldMaxRetryAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_retry_attempts", values[i])
			} else if value.Valid {
				rs.MaxRetryAttempts = int(value.Int64)
			}
		case recurringschedule.FieldRetryIntervalHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_interval_hours", values[i])
			} else if value.Valid {
				rs.RetryIntervalHours = int(value.Int64)
			}
		case recurringschedule.FieldRetryBackoffMultiplier:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_backoff_multiplier", values[i])
			} else if value.Valid {
				rs.RetryBackoffMultiplier = value.Float64
			}
		case recurringschedule.FieldFailureNotificationSent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field failure_notification_sent", values[i])
			} else if value.Valid {
				rs.FailureNotificationSent = value.Bool
			}
		case recurringschedule.FieldTotalInvoicesGenerated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_invoices_generated", values[i])
			} else if value.Valid {
				rs.TotalInvoicesGenerated = int(value.Int64)
			}
		case recurringschedule.FieldTotalAmountBilled:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount_billed", values[i])
			} else if value != nil {
				rs.TotalAmountBilled = *value
			}
		default:
			rs.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RecurringSchedule.
// This includes values selected through modifiers, order, etc.
func (rs *RecurringSchedule) Value(name string) (ent.Value, error) {
	return rs.selectValues.Get(name)
}

// QueryCustomer queries the "customer" edge of the RecurringSchedule entity.
func (rs *RecurringSchedule) QueryCustomer() *CustomerQuery {
	return NewRecurringScheduleClient(rs.config).QueryCustomer(rs)
}

// QueryExecutions queries the "executions" edge of the RecurringSchedule entity.
func (rs *RecurringSchedule) QueryExecutions() *ScheduleExecutionQuery {
	return NewRecurringScheduleClient(rs.config).QueryExecutions(rs)
}

// QueryAuditLogs queries the "audit_logs" edge of the RecurringSchedule entity.
func (rs *RecurringSchedule) QueryAuditLogs() *AuditLogQuery {
	return NewRecurringScheduleClient(rs.config).QueryAuditLogs(rs)
}

// Update returns a builder for updating this RecurringSchedule.
// Note that you need to call RecurringSchedule.Unwrap() before calling this method if this RecurringSchedule
// was returned from a transaction, and the transaction was committed or rolled back.
func (rs *RecurringSchedule) Update() *RecurringScheduleUpdateOne {
	return NewRecurringScheduleClient(rs.config).UpdateOne(rs)
}

// Unwrap unwraps the RecurringSchedule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (rs *RecurringSchedule) Unwrap() *RecurringSchedule {
	_tx, ok := rs.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecurringSchedule is not a transactional entity")
	}
	rs.config.driver = _tx.drv
	return rs
}

// String implements the fmt.Stringer.
func (rs *RecurringSchedule) String() string {
	var builder strings.Builder
	builder.WriteString("RecurringSchedule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", rs.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(rs.TenantID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(rs.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(rs.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(rs.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(rs.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(rs.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", rs.Metadata))
	builder.WriteString(", ")
	builder.WriteString("customer_id=")
	builder.WriteString(rs.CustomerID)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(rs.Description)
	builder.WriteString(", ")
	builder.WriteString("interval_type=")
	builder.WriteString(rs.IntervalType)
	builder.WriteString(", ")
	builder.WriteString("custom_interval_days=")
	builder.WriteString(fmt.Sprintf("%v", rs.CustomIntervalDays))
	builder.WriteString(", ")
	builder.WriteString("anchor_day=")
	builder.WriteString(fmt.Sprintf("%v", rs.AnchorDay))
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(rs.StartDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := rs.EndDate; v != nil {
		builder.WriteString("end_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("next_run_date=")
	builder.WriteString(rs.NextRunDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := rs.LastRunDate; v != nil {
		builder.WriteString("last_run_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(rs.Timezone)
	builder.WriteString(", ")
	builder.WriteString("schedule_status=")
	builder.WriteString(rs.ScheduleStatus)
	builder.WriteString(", ")
	if v := rs.PausedAt; v != nil {
		builder.WriteString("paused_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := rs.CancelledAt; v != nil {
		builder.WriteString("cancelled_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("cancellation_reason=")
	builder.WriteString(rs.CancellationReason)
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(rs.Currency)
	builder.WriteString(", ")
	builder.WriteString("base_amount=")
	builder.WriteString(fmt.Sprintf("%v", rs.BaseAmount))
	builder.WriteString(", ")
	builder.WriteString("line_items=")
	builder.WriteString(fmt.Sprintf("%v", rs.LineItems))
	builder.WriteString(", ")
	builder.WriteString("tax_rate=")
	builder.WriteString(fmt.Sprintf("%v", rs.TaxRate))
	builder.WriteString(", ")
	builder.WriteString("tax_inclusive=")
	builder.WriteString(fmt.Sprintf("%v", rs.TaxInclusive))
	builder.WriteString(", ")
	builder.WriteString("proration_enabled=")
	builder.WriteString(fmt.Sprintf("%v", rs.ProrationEnabled))
	builder.WriteString(", ")
	builder.WriteString("invoice_notes=")
	builder.WriteString(rs.InvoiceNotes)
	builder.WriteString(", ")
	builder.WriteString("payment_terms_days=")
	builder.WriteString(fmt.Sprintf("%v", rs.PaymentTermsDays))
	builder.WriteString(", ")
	builder.WriteString("auto_charge=")
	builder.WriteString(fmt.Sprintf("%v", rs.AutoCharge))
	builder.WriteString(", ")
	builder.WriteString("retry_enabled=")
	builder.WriteString(fmt.Sprintf("%v", rs.RetryEnabled))
	builder.WriteString(", ")
	builder.WriteString("max_retry_attempts=")
	builder.WriteString(fmt.Sprintf("%v", rs.MaxRetryAttempts))
	builder.WriteString(", ")
	builder.WriteString("retry_interval_hours=")
	builder.WriteString(fmt.Sprintf("%v", rs.RetryIntervalHours))
	builder.WriteString(", ")
	builder.WriteString("retry_backoff_multiplier=")
	builder.WriteString(fmt.Sprintf("%v", rs.RetryBackoffMultiplier))
	builder.WriteString(", ")
	builder.WriteString("failure_notification_sent=")
	builder.WriteString(fmt.Sprintf("%v", rs.FailureNotificationSent))
	builder.WriteString(", ")
	builder.WriteString("total_invoices_generated=")
	builder.WriteString(fmt.Sprintf("%v", rs.TotalInvoicesGenerated))
	builder.WriteString(", ")
	builder.WriteString("total_amount_billed=")
	builder.WriteString(fmt.Sprintf("%v", rs.TotalAmountBilled))
	builder.WriteByte(')')
	return builder.String()
}

// RecurringSchedules is a parsable slice of RecurringSchedule.
type RecurringSchedules []*RecurringSchedule

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/invoiceflow/invoiceflow/ent/recurringschedule"
	"github.com/invoiceflow/invoiceflow/ent/scheduleexecution"
	"github.com/shopspring/decimal"
)

// ScheduleExecution is the model entity for the ScheduleExecution schema.
type ScheduleExecution struct {
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
	// ScheduleID holds the value of the "schedule_id" field.
	ScheduleID string `json:"schedule_id,omitempty"`
	// PeriodDate holds the value of the "period_date" field.
	PeriodDate time.Time `json:"period_date,omitempty"`
	// PeriodStart holds the value of the "period_start" field.
	PeriodStart time.Time `json:"period_start,omitempty"`
	// PeriodEnd holds the value of the "period_end" field.
	PeriodEnd time.Time `json:"period_end,omitempty"`
	// ExecutionStatus holds the value of the "execution_status" field.
	ExecutionStatus string `json:"execution_status,omitempty"`
	// InvoiceID holds the value of the "invoice_id" field.
	InvoiceID *string `json:"invoice_id,omitempty"`
	// AmountGenerated holds the value of the "amount_generated" field.
	AmountGenerated decimal.Decimal `json:"amount_generated,omitempty"`
	// ProratedAmount holds the value of the "prorated_amount" field.
	ProratedAmount decimal.Decimal `json:"prorated_amount,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScheduleExecutionQuery when eager-loading is set.
	Edges        ScheduleExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScheduleExecutionEdges holds the relations/edges for other nodes in the graph.
type ScheduleExecutionEdges struct {
	// Schedule holds the value of the schedule edge.
	Schedule *RecurringSchedule `json:"schedule,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ScheduleOrErr returns the Schedule value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScheduleExecutionEdges) ScheduleOrErr() (*RecurringSchedule, error) {
	if e.Schedule != nil {
		return e.Schedule, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: recurringschedule.Label}
	}
	return nil, &NotLoadedError{edge: "schedule"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduleExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduleexecution.FieldAmountGenerated, scheduleexecution.FieldProratedAmount:
			values[i] = new(decimal.Decimal)
		case scheduleexecution.FieldID, scheduleexecution.FieldTenantID, scheduleexecution.FieldStatus, scheduleexecution.FieldCreatedBy, scheduleexecution.FieldUpdatedBy, scheduleexecution.FieldScheduleID, scheduleexecution.FieldExecutionStatus, scheduleexecution.FieldInvoiceID, scheduleexecution.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case scheduleexecution.FieldCreatedAt, scheduleexecution.FieldUpdatedAt, scheduleexecution.FieldPeriodDate, scheduleexecution.FieldPeriodStart, scheduleexecution.FieldPeriodEnd:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduleExecution fields.
func (se *ScheduleExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduleexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				se.ID = value.String
			}
		case scheduleexecution.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				se.TenantID = value.String
			}
		case scheduleexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				se.Status = value.String
			}
		case scheduleexecution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				se.CreatedAt = value.Time
			}
		case scheduleexecution.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				se.UpdatedAt = value.Time
			}
		case scheduleexecution.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				se.CreatedBy = value.String
			}
		case scheduleexecution.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				se.UpdatedBy = value.String
			}
		case scheduleexecution.FieldScheduleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schedule_id", values[i])
			} else if value.Valid {
				se.ScheduleID = value.String
			}
		case scheduleexecution.FieldPeriodDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_date", values[i])
			} else if value.Valid {
				se.PeriodDate = value.Time
			}
		case scheduleexecution.FieldPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_start", values[i])
			} else if value.Valid {
				se.PeriodStart = value.Time
			}
		case scheduleexecution.FieldPeriodEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field period_end", values[i])
			} else if value.Valid {
				se.PeriodEnd = value.Time
			}
		case scheduleexecution.FieldExecutionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_status", values[i])
			} else if value.Valid {
				se.ExecutionStatus = value.String
			}
		case scheduleexecution.FieldInvoiceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_id", values[i])
			} else if value.Valid {
				se.InvoiceID = new(string)
				*se.InvoiceID = value.String
			}
		case scheduleexecution.FieldAmountGenerated:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field amount_generated", values[i])
			} else if value != nil {
				se.AmountGenerated = *value
			}
		case scheduleexecution.FieldProratedAmount:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field prorated_amount", values[i])
			} else if value != nil {
				se.ProratedAmount = *value
			}
		case scheduleexecution.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				se.ErrorMessage = value.String
			}
		default:
			se.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduleExecution.
// This includes values selected through modifiers, order, etc.
func (se *ScheduleExecution) Value(name string) (ent.Value, error) {
	return se.selectValues.Get(name)
}

// QuerySchedule queries the "schedule" edge of the ScheduleExecution entity.
func (se *ScheduleExecution) QuerySchedule() *RecurringScheduleQuery {
	return NewScheduleExecutionClient(se.config).QuerySchedule(se)
}

// Update returns a builder for updating this ScheduleExecution.
// Note that you need to call ScheduleExecution.Unwrap() before calling this method if this ScheduleExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (se *ScheduleExecution) Update() *ScheduleExecutionUpdateOne {
	return NewScheduleExecutionClient(se.config).UpdateOne(se)
}

// Unwrap unwraps the ScheduleExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (se *ScheduleExecution) Unwrap() *ScheduleExecution {
	_tx, ok := se.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduleExecution is not a transactional entity")
	}
	se.config.driver = _tx.drv
	return se
}

// String implements the fmt.Stringer.
func (se *ScheduleExecution) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduleExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", se.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(se.TenantID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(se.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(se.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(se.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(se.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("updated_by=")
	builder.WriteString(se.UpdatedBy)
	builder.WriteString(", ")
	builder.WriteString("schedule_id=")
	builder.WriteString(se.ScheduleID)
	builder.WriteString(", ")
	builder.WriteString("period_date=")
	builder.WriteString(se.PeriodDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("period_start=")
	builder.WriteString(se.PeriodStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("period_end=")
	builder.WriteString(se.PeriodEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("execution_status=")
	builder.WriteString(se.ExecutionStatus)
	builder.WriteString(", ")
	if v := se.InvoiceID; v != nil {
		builder.WriteString("invoice_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("amount_generated=")
	builder.WriteString(fmt.Sprintf("%v", se.AmountGenerated))
	builder.WriteString(", ")
	builder.WriteString("prorated_amount=")
	builder.WriteString(fmt.Sprintf("%v", se.ProratedAmount))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(se.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// ScheduleExecutions is a parsable slice of ScheduleExecution.
type ScheduleExecutions []*ScheduleExecution

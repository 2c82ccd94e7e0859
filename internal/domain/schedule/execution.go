package schedule

import (
	"time"

	"github.com/invoiceflow/invoiceflow/ent"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

// Execution is the idempotency ledger row for one billing period of a
// schedule. The (tenant, schedule, period date) unique constraint in the
// store is what makes invoice generation exactly-once.
type Execution struct {
	ID              string                `json:"id"`
	ScheduleID      string                `json:"schedule_id"`
	PeriodDate      time.Time             `json:"period_date"`
	PeriodStart     time.Time             `json:"period_start"`
	PeriodEnd       time.Time             `json:"period_end"`
	ExecutionStatus types.ExecutionStatus `json:"execution_status"`
	InvoiceID       *string               `json:"invoice_id,omitempty"`
	AmountGenerated decimal.Decimal       `json:"amount_generated"`
	ProratedAmount  decimal.Decimal       `json:"prorated_amount"`
	ErrorMessage    string                `json:"error_message,omitempty"`

	types.BaseModel
}

// FromEntExecution converts an Ent schedule execution to a domain execution
func FromEntExecution(e *ent.ScheduleExecution) *Execution {
	if e == nil {
		return nil
	}
	return &Execution{
		ID:              e.ID,
		ScheduleID:      e.ScheduleID,
		PeriodDate:      e.PeriodDate,
		PeriodStart:     e.PeriodStart,
		PeriodEnd:       e.PeriodEnd,
		ExecutionStatus: types.ExecutionStatus(e.ExecutionStatus),
		InvoiceID:       e.InvoiceID,
		AmountGenerated: e.AmountGenerated,
		ProratedAmount:  e.ProratedAmount,
		ErrorMessage:    e.ErrorMessage,
		BaseModel: types.BaseModel{
			TenantID:  e.TenantID,
			Status:    types.Status(e.Status),
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
			CreatedBy: e.CreatedBy,
			UpdatedBy: e.UpdatedBy,
		},
	}
}

// FromEntExecutionList converts a list of Ent executions to domain executions
func FromEntExecutionList(executions []*ent.ScheduleExecution) []*Execution {
	result := make([]*Execution, len(executions))
	for i, e := range executions {
		result[i] = FromEntExecution(e)
	}
	return result
}

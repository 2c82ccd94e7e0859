package types

import (
	"time"

	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/samber/lo"
)

// ScheduleInterval is the billing cadence of a recurring schedule
type ScheduleInterval string

const (
	ScheduleIntervalWeekly     ScheduleInterval = "weekly"
	ScheduleIntervalBiweekly   ScheduleInterval = "biweekly"
	ScheduleIntervalMonthly    ScheduleInterval = "monthly"
	ScheduleIntervalQuarterly  ScheduleInterval = "quarterly"
	ScheduleIntervalYearly     ScheduleInterval = "yearly"
	ScheduleIntervalCustomDays ScheduleInterval = "custom_days"
)

func (s ScheduleInterval) String() string {
	return string(s)
}

func (s ScheduleInterval) Validate() error {
	allowed := []ScheduleInterval{
		ScheduleIntervalWeekly,
		ScheduleIntervalBiweekly,
		ScheduleIntervalMonthly,
		ScheduleIntervalQuarterly,
		ScheduleIntervalYearly,
		ScheduleIntervalCustomDays,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid schedule interval").
			WithHint("Invalid schedule interval").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsAnchored reports whether the interval lands on a day-of-month anchor
func (s ScheduleInterval) IsAnchored() bool {
	switch s {
	case ScheduleIntervalMonthly, ScheduleIntervalQuarterly, ScheduleIntervalYearly:
		return true
	default:
		return false
	}
}

// ScheduleLineItem is one line of the invoice template carried by a
// recurring schedule. Amounts are serialized as strings to keep the
// jsonb column precision-safe.
type ScheduleLineItem struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

// ScheduleStatus is the lifecycle state of a recurring schedule
type ScheduleStatus string

const (
	ScheduleStatusActive    ScheduleStatus = "active"
	ScheduleStatusPaused    ScheduleStatus = "paused"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
	ScheduleStatusCompleted ScheduleStatus = "completed"
	ScheduleStatusFailed    ScheduleStatus = "failed"
)

func (s ScheduleStatus) String() string {
	return string(s)
}

func (s ScheduleStatus) Validate() error {
	allowed := []ScheduleStatus{
		ScheduleStatusActive,
		ScheduleStatusPaused,
		ScheduleStatusCancelled,
		ScheduleStatusCompleted,
		ScheduleStatusFailed,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid schedule status").
			WithHint("Invalid schedule status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsTerminal reports whether the schedule can never bill again
func (s ScheduleStatus) IsTerminal() bool {
	switch s {
	case ScheduleStatusCancelled, ScheduleStatusCompleted, ScheduleStatusFailed:
		return true
	default:
		return false
	}
}

// ExecutionStatus is the outcome of a single billing period execution
type ExecutionStatus string

const (
	ExecutionStatusProcessing ExecutionStatus = "processing"
	ExecutionStatusGenerated  ExecutionStatus = "generated"
	ExecutionStatusSkipped    ExecutionStatus = "skipped"
	ExecutionStatusFailed     ExecutionStatus = "failed"
)

func (s ExecutionStatus) String() string {
	return string(s)
}

// AuditAction identifies the kind of change recorded in the schedule audit log
type AuditAction string

const (
	AuditActionCreated          AuditAction = "created"
	AuditActionUpdated          AuditAction = "updated"
	AuditActionPaused           AuditAction = "paused"
	AuditActionResumed          AuditAction = "resumed"
	AuditActionCancelled        AuditAction = "cancelled"
	AuditActionCompleted        AuditAction = "completed"
	AuditActionInvoiceGenerated AuditAction = "invoice_generated"
	AuditActionExecutionFailed  AuditAction = "execution_failed"
	AuditActionPaymentSucceeded AuditAction = "payment_succeeded"
	AuditActionPaymentFailed    AuditAction = "payment_failed"
	AuditActionRetriesExhausted AuditAction = "retries_exhausted"
)

func (a AuditAction) String() string {
	return string(a)
}

// ScheduleFilter is the filter for listing recurring schedules
type ScheduleFilter struct {
	*QueryFilter
	*TimeRangeFilter

	ScheduleIDs      []string           `json:"schedule_ids,omitempty" form:"schedule_ids"`
	CustomerIDs      []string           `json:"customer_ids,omitempty" form:"customer_ids"`
	ScheduleStatuses []ScheduleStatus   `json:"schedule_statuses,omitempty" form:"schedule_statuses"`
	Intervals        []ScheduleInterval `json:"intervals,omitempty" form:"intervals"`
	// DueBefore selects schedules whose next billing date is on or
	// before this instant
	DueBefore *time.Time `json:"due_before,omitempty" form:"due_before"`
}

// NewScheduleFilter creates a new schedule filter with default options
func NewScheduleFilter() *ScheduleFilter {
	return &ScheduleFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// NewNoLimitScheduleFilter creates a new schedule filter without pagination
func NewNoLimitScheduleFilter() *ScheduleFilter {
	return &ScheduleFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *ScheduleFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.TimeRangeFilter != nil {
		if err := f.TimeRangeFilter.Validate(); err != nil {
			return err
		}
	}
	for _, status := range f.ScheduleStatuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	for _, interval := range f.Intervals {
		if err := interval.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (f *ScheduleFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *ScheduleFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

func (f *ScheduleFilter) GetStatus() string {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetStatus()
	}
	return f.QueryFilter.GetStatus()
}

func (f *ScheduleFilter) GetSort() string {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetSort()
	}
	return f.QueryFilter.GetSort()
}

func (f *ScheduleFilter) GetOrder() string {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOrder()
	}
	return f.QueryFilter.GetOrder()
}

func (f *ScheduleFilter) GetExpand() Expand {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetExpand()
	}
	return f.QueryFilter.GetExpand()
}

func (f *ScheduleFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}

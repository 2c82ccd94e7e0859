package types

import (
	"time"

	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/samber/lo"
)

// PaymentStatus is the state of a payment collection attempt sequence
type PaymentStatus string

const (
	// PaymentStatusPending means no charge has been attempted yet
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusProcessing means a charge is in flight
	PaymentStatusProcessing PaymentStatus = "processing"
	// PaymentStatusSucceeded means the gateway confirmed the charge
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	// PaymentStatusFailed means the last attempt failed but a retry is scheduled
	PaymentStatusFailed PaymentStatus = "failed"
	// PaymentStatusFailedTerminal means the gateway declined in a way that
	// retrying cannot fix, such as a closed account
	PaymentStatusFailedTerminal PaymentStatus = "failed_terminal"
	// PaymentStatusExhausted means every allowed retry was consumed
	PaymentStatusExhausted PaymentStatus = "exhausted"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Validate() error {
	allowed := []PaymentStatus{
		PaymentStatusPending,
		PaymentStatusProcessing,
		PaymentStatusSucceeded,
		PaymentStatusFailed,
		PaymentStatusFailedTerminal,
		PaymentStatusExhausted,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid payment status").
			WithHint("Invalid payment status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsTerminal reports whether no further attempts will be made
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusSucceeded, PaymentStatusFailedTerminal, PaymentStatusExhausted:
		return true
	default:
		return false
	}
}

// PaymentFilter is the filter for listing payments
type PaymentFilter struct {
	*QueryFilter
	*TimeRangeFilter

	PaymentIDs      []string        `json:"payment_ids,omitempty" form:"payment_ids"`
	InvoiceIDs      []string        `json:"invoice_ids,omitempty" form:"invoice_ids"`
	ScheduleIDs     []string        `json:"schedule_ids,omitempty" form:"schedule_ids"`
	PaymentStatuses []PaymentStatus `json:"payment_statuses,omitempty" form:"payment_statuses"`
	// RetryDueBefore selects payments whose next retry is due on or
	// before this instant
	RetryDueBefore *time.Time `json:"retry_due_before,omitempty" form:"retry_due_before"`
}

// NewPaymentFilter creates a new payment filter with default options
func NewPaymentFilter() *PaymentFilter {
	return &PaymentFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// NewNoLimitPaymentFilter creates a new payment filter without pagination
func NewNoLimitPaymentFilter() *PaymentFilter {
	return &PaymentFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *PaymentFilter) Validate() error {
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
	for _, status := range f.PaymentStatuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (f *PaymentFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *PaymentFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

func (f *PaymentFilter) GetStatus() string {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetStatus()
	}
	return f.QueryFilter.GetStatus()
}

func (f *PaymentFilter) GetSort() string {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetSort()
	}
	return f.QueryFilter.GetSort()
}

func (f *PaymentFilter) GetOrder() string {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOrder()
	}
	return f.QueryFilter.GetOrder()
}

func (f *PaymentFilter) GetExpand() Expand {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetExpand()
	}
	return f.QueryFilter.GetExpand()
}

func (f *PaymentFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}

package schedule

import (
	"time"

	"github.com/invoiceflow/invoiceflow/ent"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

// Schedule represents a recurring billing schedule, one row per
// subscription. NextRunDate is the billing cursor: it is only advanced
// after a period has been successfully invoiced, so a failed period is
// picked up again by the next driver run.
type Schedule struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	Description string `json:"description,omitempty"`

	// IntervalType is a tagged variant: custom_days carries
	// CustomIntervalDays, the month based intervals carry AnchorDay.
	IntervalType       types.ScheduleInterval `json:"interval_type"`
	CustomIntervalDays int                    `json:"custom_interval_days,omitempty"`
	// AnchorDay is the day of month the cycle is pegged to. It is kept
	// verbatim even when a short month forces the billed date to clamp.
	AnchorDay int `json:"anchor_day,omitempty"`

	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	NextRunDate time.Time  `json:"next_run_date"`
	LastRunDate *time.Time `json:"last_run_date,omitempty"`
	Timezone    string     `json:"timezone"`

	ScheduleStatus     types.ScheduleStatus `json:"schedule_status"`
	PausedAt           *time.Time           `json:"paused_at,omitempty"`
	CancelledAt        *time.Time           `json:"cancelled_at,omitempty"`
	CancellationReason string               `json:"cancellation_reason,omitempty"`

	Currency         string                   `json:"currency"`
	BaseAmount       decimal.Decimal          `json:"base_amount"`
	LineItems        []types.ScheduleLineItem `json:"line_items,omitempty"`
	TaxRate          decimal.Decimal          `json:"tax_rate"`
	TaxInclusive     bool                     `json:"tax_inclusive"`
	ProrationEnabled bool                     `json:"proration_enabled"`
	InvoiceNotes     string                   `json:"invoice_notes,omitempty"`
	PaymentTermsDays int                      `json:"payment_terms_days"`

	AutoCharge             bool    `json:"auto_charge"`
	RetryEnabled           bool    `json:"retry_enabled"`
	MaxRetryAttempts       int     `json:"max_retry_attempts"`
	RetryIntervalHours     int     `json:"retry_interval_hours"`
	RetryBackoffMultiplier float64 `json:"retry_backoff_multiplier"`

	FailureNotificationSent bool            `json:"failure_notification_sent"`
	TotalInvoicesGenerated  int             `json:"total_invoices_generated"`
	TotalAmountBilled       decimal.Decimal `json:"total_amount_billed"`

	Metadata types.Metadata `json:"metadata,omitempty"`

	types.BaseModel
}

func (s *Schedule) Validate() error {
	if s.CustomerID == "" {
		return ierr.NewError("invalid customer id").
			WithHint("Customer id is required").
			Mark(ierr.ErrValidation)
	}
	if err := s.IntervalType.Validate(); err != nil {
		return err
	}
	if s.IntervalType == types.ScheduleIntervalCustomDays && s.CustomIntervalDays <= 0 {
		return ierr.NewError("invalid custom interval days").
			WithHint("Custom interval schedules need a positive day count").
			Mark(ierr.ErrValidation)
	}
	if s.IntervalType.IsAnchored() && (s.AnchorDay < 1 || s.AnchorDay > 31) {
		return ierr.NewError("invalid anchor day").
			WithHint("Anchor day must be between 1 and 31").
			WithReportableDetails(map[string]any{
				"anchor_day": s.AnchorDay,
			}).
			Mark(ierr.ErrValidation)
	}
	if s.Currency == "" {
		return ierr.NewError("invalid currency").
			WithHint("Currency is required").
			Mark(ierr.ErrValidation)
	}
	if s.BaseAmount.IsNegative() {
		return ierr.NewError("invalid base amount").
			WithHint("Base amount must not be negative").
			Mark(ierr.ErrValidation)
	}
	if s.TaxRate.IsNegative() {
		return ierr.NewError("invalid tax rate").
			WithHint("Tax rate must not be negative").
			Mark(ierr.ErrValidation)
	}
	if s.PaymentTermsDays < 0 {
		return ierr.NewError("invalid payment terms").
			WithHint("Payment terms days must not be negative").
			Mark(ierr.ErrValidation)
	}
	if s.Timezone != "" {
		if _, err := time.LoadLocation(s.Timezone); err != nil {
			return ierr.NewError("invalid timezone").
				WithHint("Timezone must be a valid IANA zone name").
				WithReportableDetails(map[string]any{
					"timezone": s.Timezone,
				}).
				Mark(ierr.ErrValidation)
		}
	}
	if s.EndDate != nil && s.EndDate.Before(s.StartDate) {
		return ierr.NewError("invalid end date").
			WithHint("End date must be after start date").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Location resolves the schedule's timezone, falling back to UTC
func (s *Schedule) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsDue reports whether the schedule should bill at the given instant
func (s *Schedule) IsDue(asOf time.Time) bool {
	if s.ScheduleStatus != types.ScheduleStatusActive {
		return false
	}
	return !s.NextRunDate.After(asOf)
}

// IsEnded reports whether the given period date falls past the
// schedule's end date
func (s *Schedule) IsEnded(periodDate time.Time) bool {
	return s.EndDate != nil && periodDate.After(*s.EndDate)
}

// NextPeriodDate returns the billing date following the given one
func (s *Schedule) NextPeriodDate(current time.Time) (time.Time, error) {
	return types.NextBillingDate(current, s.AnchorDay, s.IntervalType, s.CustomIntervalDays)
}

// FromEnt converts an Ent recurring schedule to a domain schedule
func FromEnt(s *ent.RecurringSchedule) *Schedule {
	if s == nil {
		return nil
	}
	return &Schedule{
		ID:                      s.ID,
		CustomerID:              s.CustomerID,
		Description:             s.Description,
		IntervalType:            types.ScheduleInterval(s.IntervalType),
		CustomIntervalDays:      s.CustomIntervalDays,
		AnchorDay:               s.AnchorDay,
		StartDate:               s.StartDate,
		EndDate:                 s.EndDate,
		NextRunDate:             s.NextRunDate,
		LastRunDate:             s.LastRunDate,
		Timezone:                s.Timezone,
		ScheduleStatus:          types.ScheduleStatus(s.ScheduleStatus),
		PausedAt:                s.PausedAt,
		CancelledAt:             s.CancelledAt,
		CancellationReason:      s.CancellationReason,
		Currency:                s.Currency,
		BaseAmount:              s.BaseAmount,
		LineItems:               s.LineItems,
		TaxRate:                 s.TaxRate,
		TaxInclusive:            s.TaxInclusive,
		ProrationEnabled:        s.ProrationEnabled,
		InvoiceNotes:            s.InvoiceNotes,
		PaymentTermsDays:        s.PaymentTermsDays,
		AutoCharge:              s.AutoCharge,
		RetryEnabled:            s.RetryEnabled,
		MaxRetryAttempts:        s.MaxRetryAttempts,
		RetryIntervalHours:      s.RetryIntervalHours,
		RetryBackoffMultiplier:  s.RetryBackoffMultiplier,
		FailureNotificationSent: s.FailureNotificationSent,
		TotalInvoicesGenerated:  s.TotalInvoicesGenerated,
		TotalAmountBilled:       s.TotalAmountBilled,
		Metadata:                s.Metadata,
		BaseModel: types.BaseModel{
			TenantID:  s.TenantID,
			Status:    types.Status(s.Status),
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
			CreatedBy: s.CreatedBy,
			UpdatedBy: s.UpdatedBy,
		},
	}
}

// FromEntList converts a list of Ent recurring schedules to domain schedules
func FromEntList(schedules []*ent.RecurringSchedule) []*Schedule {
	result := make([]*Schedule, len(schedules))
	for i, s := range schedules {
		result[i] = FromEnt(s)
	}
	return result
}

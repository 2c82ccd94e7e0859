package dto

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/invoiceflow/invoiceflow/internal/domain/auditlog"
	"github.com/invoiceflow/invoiceflow/internal/domain/customer"
	"github.com/invoiceflow/invoiceflow/internal/domain/schedule"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

type CreateScheduleRequest struct {
	CustomerID  string `json:"customer_id" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=255"`

	IntervalType       types.ScheduleInterval `json:"interval_type" validate:"required"`
	CustomIntervalDays int                    `json:"custom_interval_days,omitempty"`
	AnchorDay          int                    `json:"anchor_day,omitempty" validate:"omitempty,min=1,max=31"`

	StartDate time.Time  `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Timezone  string     `json:"timezone" validate:"omitempty,timezone"`

	Currency         string                   `json:"currency" validate:"required,len=3"`
	BaseAmount       decimal.Decimal          `json:"base_amount"`
	LineItems        []types.ScheduleLineItem `json:"line_items,omitempty"`
	TaxRate          decimal.Decimal          `json:"tax_rate"`
	TaxInclusive     bool                     `json:"tax_inclusive"`
	ProrationEnabled bool                     `json:"proration_enabled"`
	InvoiceNotes     string                   `json:"invoice_notes,omitempty"`
	PaymentTermsDays *int                     `json:"payment_terms_days,omitempty" validate:"omitempty,min=0"`

	AutoCharge             bool     `json:"auto_charge"`
	RetryEnabled           *bool    `json:"retry_enabled,omitempty"`
	MaxRetryAttempts       *int     `json:"max_retry_attempts,omitempty" validate:"omitempty,min=0,max=10"`
	RetryIntervalHours     *int     `json:"retry_interval_hours,omitempty" validate:"omitempty,min=1"`
	RetryBackoffMultiplier *float64 `json:"retry_backoff_multiplier,omitempty" validate:"omitempty,gte=1"`

	Metadata map[string]string `json:"metadata,omitempty"`
}

type UpdateScheduleRequest struct {
	Description      *string                  `json:"description" validate:"omitempty,max=255"`
	EndDate          *time.Time               `json:"end_date"`
	BaseAmount       *decimal.Decimal         `json:"base_amount"`
	LineItems        []types.ScheduleLineItem `json:"line_items,omitempty"`
	TaxRate          *decimal.Decimal         `json:"tax_rate"`
	TaxInclusive     *bool                    `json:"tax_inclusive"`
	ProrationEnabled *bool                    `json:"proration_enabled"`
	InvoiceNotes     *string                  `json:"invoice_notes"`
	PaymentTermsDays *int                     `json:"payment_terms_days" validate:"omitempty,min=0"`

	AutoCharge             *bool    `json:"auto_charge"`
	RetryEnabled           *bool    `json:"retry_enabled"`
	MaxRetryAttempts       *int     `json:"max_retry_attempts" validate:"omitempty,min=0,max=10"`
	RetryIntervalHours     *int     `json:"retry_interval_hours" validate:"omitempty,min=1"`
	RetryBackoffMultiplier *float64 `json:"retry_backoff_multiplier" validate:"omitempty,gte=1"`

	Metadata map[string]string `json:"metadata,omitempty"`
}

type CancelScheduleRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

type ScheduleResponse struct {
	*schedule.Schedule

	Customer *CustomerResponse `json:"customer,omitempty"`
}

// ListSchedulesResponse represents the response for listing schedules
type ListSchedulesResponse = types.ListResponse[*ScheduleResponse]

type ExecutionResponse struct {
	*schedule.Execution
}

// ListExecutionsResponse represents the response for listing schedule executions
type ListExecutionsResponse = types.ListResponse[*ExecutionResponse]

type AuditLogResponse struct {
	*auditlog.Entry
}

// ListAuditLogsResponse represents the response for listing audit entries
type ListAuditLogsResponse = types.ListResponse[*AuditLogResponse]

func (r *CreateScheduleRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return ierr.WithError(err).
			WithHint("Invalid schedule request").
			Mark(ierr.ErrValidation)
	}
	if err := r.IntervalType.Validate(); err != nil {
		return err
	}
	if r.IntervalType == types.ScheduleIntervalCustomDays && r.CustomIntervalDays <= 0 {
		return ierr.NewError("invalid custom interval days").
			WithHint("Custom interval schedules need a positive day count").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *UpdateScheduleRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *CancelScheduleRequest) Validate() error {
	return validator.New().Struct(r)
}

// ToSchedule builds a domain schedule with the anchor day defaulting to
// the start date's day of month for anchored intervals
func (r *CreateScheduleRequest) ToSchedule(ctx context.Context, defaults ScheduleDefaults) *schedule.Schedule {
	anchorDay := r.AnchorDay
	if r.IntervalType.IsAnchored() && anchorDay == 0 {
		anchorDay = r.StartDate.Day()
	}

	timezone := r.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	s := &schedule.Schedule{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SCHEDULE),
		CustomerID:         r.CustomerID,
		Description:        r.Description,
		IntervalType:       r.IntervalType,
		CustomIntervalDays: r.CustomIntervalDays,
		AnchorDay:          anchorDay,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		NextRunDate:        r.StartDate,
		Timezone:           timezone,
		ScheduleStatus:     types.ScheduleStatusActive,
		Currency:           r.Currency,
		BaseAmount:         r.BaseAmount,
		LineItems:          r.LineItems,
		TaxRate:            r.TaxRate,
		TaxInclusive:       r.TaxInclusive,
		ProrationEnabled:   r.ProrationEnabled,
		InvoiceNotes:       r.InvoiceNotes,
		PaymentTermsDays:   defaults.PaymentTermsDays,
		AutoCharge:         r.AutoCharge,

		RetryEnabled:           true,
		MaxRetryAttempts:       defaults.MaxRetryAttempts,
		RetryIntervalHours:     defaults.RetryIntervalHours,
		RetryBackoffMultiplier: defaults.RetryBackoffMultiplier,

		TotalAmountBilled: decimal.Zero,

		Metadata:  r.Metadata,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}

	if r.PaymentTermsDays != nil {
		s.PaymentTermsDays = *r.PaymentTermsDays
	}
	if r.RetryEnabled != nil {
		s.RetryEnabled = *r.RetryEnabled
	}
	if r.MaxRetryAttempts != nil {
		s.MaxRetryAttempts = *r.MaxRetryAttempts
	}
	if r.RetryIntervalHours != nil {
		s.RetryIntervalHours = *r.RetryIntervalHours
	}
	if r.RetryBackoffMultiplier != nil {
		s.RetryBackoffMultiplier = *r.RetryBackoffMultiplier
	}

	return s
}

// ScheduleDefaults carries tenant level retry and terms defaults applied
// when the request leaves them unset
type ScheduleDefaults struct {
	PaymentTermsDays       int
	MaxRetryAttempts       int
	RetryIntervalHours     int
	RetryBackoffMultiplier float64
}

// NewScheduleResponse builds a response, attaching the customer when expanded
func NewScheduleResponse(s *schedule.Schedule, c *customer.Customer) *ScheduleResponse {
	resp := &ScheduleResponse{Schedule: s}
	if c != nil {
		resp.Customer = &CustomerResponse{Customer: c}
	}
	return resp
}

package payment

import (
	"time"

	"github.com/invoiceflow/invoiceflow/ent"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

// Payment represents the collection state for one invoice charge. The
// retry cursor (NextRetryAt) is persisted here so the retry driver can
// sweep due payments without any in-memory timers.
type Payment struct {
	// Unique identifier for this payment
	ID string `json:"id"`
	// Unique key used in the idempotency_key field to prevent duplicate payment processing
	IdempotencyKey string `json:"idempotency_key"`
	// The invoice being collected
	InvoiceID string `json:"invoice_id"`
	// The schedule that produced the invoice, when recurring
	ScheduleID *string `json:"schedule_id,omitempty"`
	// The amount field specifies the payment value in the given currency
	Amount decimal.Decimal `json:"amount"`
	// The currency field uses a three-letter ISO code (USD, EUR, GBP, etc.)
	Currency string `json:"currency"`
	// The payment_status shows the current state of this payment
	PaymentStatus types.PaymentStatus `json:"payment_status"`
	// The payment_gateway field contains the name of the gateway used to process this transaction (optional)
	PaymentGateway *string `json:"payment_gateway,omitempty"`
	// The gateway_payment_id is the transaction identifier from the external payment gateway (optional)
	GatewayPaymentID *string `json:"gateway_payment_id,omitempty"`
	// Number of retries consumed so far
	RetryCount int `json:"retry_count"`
	// Retry budget for this payment, copied from the schedule policy
	MaxRetries int `json:"max_retries"`
	// When the next retry is due; nil once the payment is terminal
	NextRetryAt *time.Time `json:"next_retry_at,omitempty"`
	// The succeeded_at timestamp shows when this payment was successfully completed (optional)
	SucceededAt *time.Time `json:"succeeded_at,omitempty"`
	// The failed_at timestamp indicates when this payment last failed (optional)
	FailedAt *time.Time `json:"failed_at,omitempty"`
	// The error_message field provides details about why the payment failed (optional)
	ErrorMessage *string `json:"error_message,omitempty"`
	// The attempts array contains all processing attempts made for this payment (optional)
	Attempts []*Attempt `json:"attempts,omitempty"`

	types.BaseModel
}

// Attempt represents a single charge attempt against the gateway
type Attempt struct {
	ID string `json:"id"`
	// The payment_id links this attempt to its parent payment
	PaymentID string `json:"payment_id"`
	// The attempt_number shows the sequential order of this processing attempt
	AttemptNumber int `json:"attempt_number"`
	// The outcome of this specific attempt
	AttemptStatus types.PaymentStatus `json:"attempt_status"`
	// The gateway_attempt_id is the identifier from the external payment gateway for this attempt (optional)
	GatewayAttemptID *string `json:"gateway_attempt_id,omitempty"`
	// When the follow-up retry was scheduled, if any
	NextRetryAt *time.Time `json:"next_retry_at,omitempty"`
	// The error_message field explains why this particular attempt failed (optional)
	ErrorMessage *string `json:"error_message,omitempty"`

	types.BaseModel
}

// Validate validates the payment
func (p *Payment) Validate() error {
	if p.Amount.IsZero() || p.Amount.IsNegative() {
		return ierr.NewError("invalid amount").
			WithHint("Amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	if p.InvoiceID == "" {
		return ierr.NewError("invalid invoice id").
			WithHint("Invoice id is required").
			Mark(ierr.ErrValidation)
	}
	if p.Currency == "" {
		return ierr.NewError("invalid currency").
			WithHint("Currency is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Validate validates the payment attempt
func (a *Attempt) Validate() error {
	if a.PaymentID == "" {
		return ierr.NewError("invalid payment id").
			WithHint("Payment id is required").
			Mark(ierr.ErrValidation)
	}
	if a.AttemptNumber <= 0 {
		return ierr.NewError("invalid attempt number").
			WithHint("Attempt number must be positive").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// HasRetryBudget reports whether another retry may still be scheduled
func (p *Payment) HasRetryBudget() bool {
	return p.RetryCount < p.MaxRetries
}

// FromEnt converts an Ent payment to a domain payment
func FromEnt(p *ent.Payment) *Payment {
	if p == nil {
		return nil
	}

	payment := &Payment{
		ID:               p.ID,
		IdempotencyKey:   p.IdempotencyKey,
		InvoiceID:        p.InvoiceID,
		ScheduleID:       p.ScheduleID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		PaymentStatus:    types.PaymentStatus(p.PaymentStatus),
		PaymentGateway:   p.PaymentGateway,
		GatewayPaymentID: p.GatewayPaymentID,
		RetryCount:       p.RetryCount,
		MaxRetries:       p.MaxRetries,
		NextRetryAt:      p.NextRetryAt,
		SucceededAt:      p.SucceededAt,
		FailedAt:         p.FailedAt,
		ErrorMessage:     p.ErrorMessage,
		BaseModel: types.BaseModel{
			TenantID:  p.TenantID,
			Status:    types.Status(p.Status),
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
			CreatedBy: p.CreatedBy,
			UpdatedBy: p.UpdatedBy,
		},
	}

	if p.Edges.Attempts != nil {
		payment.Attempts = make([]*Attempt, len(p.Edges.Attempts))
		for i, a := range p.Edges.Attempts {
			payment.Attempts[i] = FromEntAttempt(a)
		}
	}

	return payment
}

// FromEntAttempt converts an Ent payment attempt to a domain attempt
func FromEntAttempt(a *ent.PaymentAttempt) *Attempt {
	if a == nil {
		return nil
	}
	return &Attempt{
		ID:               a.ID,
		PaymentID:        a.PaymentID,
		AttemptNumber:    a.AttemptNumber,
		AttemptStatus:    types.PaymentStatus(a.AttemptStatus),
		GatewayAttemptID: a.GatewayAttemptID,
		NextRetryAt:      a.NextRetryAt,
		ErrorMessage:     a.ErrorMessage,
		BaseModel: types.BaseModel{
			TenantID:  a.TenantID,
			Status:    types.Status(a.Status),
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
			CreatedBy: a.CreatedBy,
			UpdatedBy: a.UpdatedBy,
		},
	}
}

// FromEntList converts a list of Ent payments to domain payments
func FromEntList(payments []*ent.Payment) []*Payment {
	result := make([]*Payment, len(payments))
	for i, p := range payments {
		result[i] = FromEnt(p)
	}
	return result
}

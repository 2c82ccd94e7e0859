package invoice

import (
	"time"

	"github.com/invoiceflow/invoiceflow/ent"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents an invoice document with its line items
type Invoice struct {
	ID            string     `json:"id"`
	InvoiceNumber string     `json:"invoice_number"`
	CustomerID    string     `json:"customer_id"`
	ScheduleID    *string    `json:"schedule_id,omitempty"`
	IssueDate     time.Time  `json:"issue_date"`
	DueDate       time.Time  `json:"due_date"`
	PeriodStart   *time.Time `json:"period_start,omitempty"`
	PeriodEnd     *time.Time `json:"period_end,omitempty"`
	Currency      string     `json:"currency"`

	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxTotal        decimal.Decimal `json:"tax_total"`
	Total           decimal.Decimal `json:"total"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	AmountRemaining decimal.Decimal `json:"amount_remaining"`

	InvoiceStatus types.InvoiceStatus        `json:"invoice_status"`
	PaymentStatus types.InvoicePaymentStatus `json:"payment_status"`
	Notes         string                     `json:"notes,omitempty"`
	PaidAt        *time.Time                 `json:"paid_at,omitempty"`
	VoidedAt      *time.Time                 `json:"voided_at,omitempty"`

	LineItems []*LineItem    `json:"line_items,omitempty"`
	Metadata  types.Metadata `json:"metadata,omitempty"`

	types.BaseModel
}

// LineItem represents a single invoice line
type LineItem struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoice_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
	Prorated    bool            `json:"prorated"`

	types.BaseModel
}

func (i *Invoice) Validate() error {
	if i.CustomerID == "" {
		return ierr.NewError("invalid customer id").
			WithHint("Customer id is required").
			Mark(ierr.ErrValidation)
	}
	if i.Currency == "" {
		return ierr.NewError("invalid currency").
			WithHint("Currency is required").
			Mark(ierr.ErrValidation)
	}
	if i.Total.IsNegative() {
		return ierr.NewError("invalid total").
			WithHint("Invoice total must not be negative").
			Mark(ierr.ErrValidation)
	}
	if i.DueDate.Before(i.IssueDate) {
		return ierr.NewError("invalid due date").
			WithHint("Due date must not precede the issue date").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsPaid reports whether nothing remains to collect
func (i *Invoice) IsPaid() bool {
	return i.PaymentStatus == types.InvoicePaymentStatusSucceeded
}

// RecordPayment applies a collected amount and recomputes the
// remaining balance
func (i *Invoice) RecordPayment(amount decimal.Decimal, at time.Time) {
	i.AmountPaid = i.AmountPaid.Add(amount)
	i.AmountRemaining = i.Total.Sub(i.AmountPaid)
	if i.AmountRemaining.LessThanOrEqual(decimal.Zero) {
		i.AmountRemaining = decimal.Zero
		i.PaymentStatus = types.InvoicePaymentStatusSucceeded
		i.PaidAt = &at
	}
}

// FromEnt converts an Ent invoice to a domain invoice
func FromEnt(i *ent.Invoice) *Invoice {
	if i == nil {
		return nil
	}

	inv := &Invoice{
		ID:              i.ID,
		InvoiceNumber:   i.InvoiceNumber,
		CustomerID:      i.CustomerID,
		ScheduleID:      i.ScheduleID,
		IssueDate:       i.IssueDate,
		DueDate:         i.DueDate,
		PeriodStart:     i.PeriodStart,
		PeriodEnd:       i.PeriodEnd,
		Currency:        i.Currency,
		Subtotal:        i.Subtotal,
		TaxTotal:        i.TaxTotal,
		Total:           i.Total,
		AmountPaid:      i.AmountPaid,
		AmountRemaining: i.AmountRemaining,
		InvoiceStatus:   types.InvoiceStatus(i.InvoiceStatus),
		PaymentStatus:   types.InvoicePaymentStatus(i.PaymentStatus),
		Notes:           i.Notes,
		PaidAt:          i.PaidAt,
		VoidedAt:        i.VoidedAt,
		Metadata:        i.Metadata,
		BaseModel: types.BaseModel{
			TenantID:  i.TenantID,
			Status:    types.Status(i.Status),
			CreatedAt: i.CreatedAt,
			UpdatedAt: i.UpdatedAt,
			CreatedBy: i.CreatedBy,
			UpdatedBy: i.UpdatedBy,
		},
	}

	if i.Edges.LineItems != nil {
		inv.LineItems = make([]*LineItem, len(i.Edges.LineItems))
		for idx, li := range i.Edges.LineItems {
			inv.LineItems[idx] = FromEntLineItem(li)
		}
	}

	return inv
}

// FromEntLineItem converts an Ent invoice line item to a domain line item
func FromEntLineItem(li *ent.InvoiceLineItem) *LineItem {
	if li == nil {
		return nil
	}
	return &LineItem{
		ID:          li.ID,
		InvoiceID:   li.InvoiceID,
		Description: li.Description,
		Quantity:    li.Quantity,
		UnitPrice:   li.UnitPrice,
		Amount:      li.Amount,
		Prorated:    li.Prorated,
		BaseModel: types.BaseModel{
			TenantID:  li.TenantID,
			Status:    types.Status(li.Status),
			CreatedAt: li.CreatedAt,
			UpdatedAt: li.UpdatedAt,
			CreatedBy: li.CreatedBy,
			UpdatedBy: li.UpdatedBy,
		},
	}
}

// FromEntList converts a list of Ent invoices to domain invoices
func FromEntList(invoices []*ent.Invoice) []*Invoice {
	result := make([]*Invoice, len(invoices))
	for i, inv := range invoices {
		result[i] = FromEnt(inv)
	}
	return result
}

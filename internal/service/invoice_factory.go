package service

import (
	"time"

	"github.com/invoiceflow/invoiceflow/internal/domain/customer"
	"github.com/invoiceflow/invoiceflow/internal/domain/invoice"
	"github.com/invoiceflow/invoiceflow/internal/domain/schedule"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

// InvoiceFactory builds invoice documents from a schedule and a billing
// period. It is pure: no clock reads, no I/O, so the same inputs always
// produce the same invoice apart from generated identifiers.
type InvoiceFactory struct{}

func NewInvoiceFactory() *InvoiceFactory {
	return &InvoiceFactory{}
}

// BuildInvoice assembles the invoice for one billing period. periodStart
// is the date being billed and periodEnd is the following billing date.
// When proration is enabled and the schedule started mid-period, every
// line is scaled by the fraction of the period actually covered.
func (f *InvoiceFactory) BuildInvoice(
	sched *schedule.Schedule,
	cust *customer.Customer,
	periodStart time.Time,
	periodEnd time.Time,
) (*invoice.Invoice, error) {
	if cust == nil {
		return nil, ierr.NewError("missing customer").
			WithHint("The schedule's customer could not be loaded").
			WithReportableDetails(map[string]any{
				"schedule_id": sched.ID,
			}).
			Mark(ierr.ErrInvoiceGeneration)
	}
	if cust.Status == types.StatusDeleted {
		return nil, ierr.NewError("customer is deleted").
			WithHint("Invoices cannot be generated for deleted customers").
			WithReportableDetails(map[string]any{
				"schedule_id": sched.ID,
				"customer_id": cust.ID,
			}).
			Mark(ierr.ErrInvoiceGeneration)
	}
	if sched.Currency == "" {
		return nil, ierr.NewError("missing currency").
			WithHint("The schedule has no billing currency").
			WithReportableDetails(map[string]any{
				"schedule_id": sched.ID,
			}).
			Mark(ierr.ErrInvoiceGeneration)
	}
	if len(sched.LineItems) == 0 && sched.BaseAmount.IsZero() {
		return nil, ierr.NewError("nothing to bill").
			WithHint("The schedule has neither line items nor a base amount").
			WithReportableDetails(map[string]any{
				"schedule_id": sched.ID,
			}).
			Mark(ierr.ErrInvoiceGeneration)
	}
	if !periodEnd.After(periodStart) {
		return nil, ierr.NewError("invalid billing period").
			WithHint("The period end must follow the period start").
			WithReportableDetails(map[string]any{
				"schedule_id":  sched.ID,
				"period_start": periodStart,
				"period_end":   periodEnd,
			}).
			Mark(ierr.ErrInvoiceGeneration)
	}

	factor := f.prorationFactor(sched, periodStart, periodEnd)
	prorated := factor.LessThan(decimal.NewFromInt(1))

	invoiceID := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE)

	lines, err := f.buildLineItems(sched, invoiceID, factor, prorated)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, li := range lines {
		subtotal = subtotal.Add(li.Amount)
	}

	taxTotal, total := f.applyTax(sched, subtotal)

	inv := &invoice.Invoice{
		ID:            invoiceID,
		InvoiceNumber: types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_RECURRING_INVOICE),
		CustomerID:    cust.ID,
		ScheduleID:    &sched.ID,
		IssueDate:     periodStart,
		DueDate:       types.AddClampedDate(periodStart, 0, 0, sched.PaymentTermsDays),
		PeriodStart:   &periodStart,
		PeriodEnd:     &periodEnd,
		Currency:      sched.Currency,

		Subtotal:        subtotal,
		TaxTotal:        taxTotal,
		Total:           total,
		AmountPaid:      decimal.Zero,
		AmountRemaining: total,

		InvoiceStatus: types.InvoiceStatusFinalized,
		PaymentStatus: types.InvoicePaymentStatusPending,
		Notes:         sched.InvoiceNotes,
		LineItems:     lines,
	}

	return inv, nil
}

// prorationFactor returns the covered fraction of the period as a
// decimal in (0, 1]. A schedule that started on or before the period
// start covers the whole period.
func (f *InvoiceFactory) prorationFactor(sched *schedule.Schedule, periodStart, periodEnd time.Time) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if !sched.ProrationEnabled {
		return one
	}
	if !sched.StartDate.After(periodStart) {
		return one
	}
	if !sched.StartDate.Before(periodEnd) {
		return one
	}

	totalDays := types.DaysBetween(periodStart, periodEnd)
	coveredDays := types.DaysBetween(sched.StartDate, periodEnd)
	if totalDays <= 0 || coveredDays <= 0 || coveredDays >= totalDays {
		return one
	}

	return decimal.NewFromInt(int64(coveredDays)).Div(decimal.NewFromInt(int64(totalDays)))
}

func (f *InvoiceFactory) buildLineItems(sched *schedule.Schedule, invoiceID string, factor decimal.Decimal, prorated bool) ([]*invoice.LineItem, error) {
	if len(sched.LineItems) == 0 {
		amount := sched.BaseAmount.Mul(factor).RoundBank(2)
		description := sched.Description
		if description == "" {
			description = "Recurring charge"
		}
		return []*invoice.LineItem{{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM),
			InvoiceID:   invoiceID,
			Description: description,
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   sched.BaseAmount,
			Amount:      amount,
			Prorated:    prorated,
		}}, nil
	}

	lines := make([]*invoice.LineItem, 0, len(sched.LineItems))
	for _, tpl := range sched.LineItems {
		quantity, err := decimal.NewFromString(tpl.Quantity)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Line item quantity is not a valid number").
				WithReportableDetails(map[string]any{
					"schedule_id": sched.ID,
					"quantity":    tpl.Quantity,
				}).
				Mark(ierr.ErrInvoiceGeneration)
		}
		unitPrice, err := decimal.NewFromString(tpl.UnitPrice)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Line item unit price is not a valid number").
				WithReportableDetails(map[string]any{
					"schedule_id": sched.ID,
					"unit_price":  tpl.UnitPrice,
				}).
				Mark(ierr.ErrInvoiceGeneration)
		}

		amount := quantity.Mul(unitPrice).Mul(factor).RoundBank(2)
		lines = append(lines, &invoice.LineItem{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE_LINE_ITEM),
			InvoiceID:   invoiceID,
			Description: tpl.Description,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Amount:      amount,
			Prorated:    prorated,
		})
	}

	return lines, nil
}

// applyTax derives tax and grand total from the subtotal. With inclusive
// tax the subtotal already contains it, so the tax share is carved out;
// with exclusive tax it is added on top.
func (f *InvoiceFactory) applyTax(sched *schedule.Schedule, subtotal decimal.Decimal) (taxTotal, total decimal.Decimal) {
	if sched.TaxRate.IsZero() {
		return decimal.Zero, subtotal
	}

	if sched.TaxInclusive {
		one := decimal.NewFromInt(1)
		taxTotal = subtotal.Sub(subtotal.Div(one.Add(sched.TaxRate))).RoundBank(2)
		return taxTotal, subtotal
	}

	taxTotal = subtotal.Mul(sched.TaxRate).RoundBank(2)
	return taxTotal, subtotal.Add(taxTotal)
}

package service

import (
	"testing"
	"time"

	"github.com/invoiceflow/invoiceflow/internal/domain/customer"
	"github.com/invoiceflow/invoiceflow/internal/domain/schedule"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func factoryCustomer() *customer.Customer {
	return &customer.Customer{
		ID:       "cust_factory",
		Name:     "Factory Customer",
		Email:    "factory@example.com",
		Timezone: "UTC",
		BaseModel: types.BaseModel{
			TenantID: types.DefaultTenantID,
			Status:   types.StatusPublished,
		},
	}
}

func factorySchedule() *schedule.Schedule {
	return &schedule.Schedule{
		ID:               "sched_factory",
		CustomerID:       "cust_factory",
		Description:      "Pro plan",
		IntervalType:     types.ScheduleIntervalMonthly,
		AnchorDay:        1,
		StartDate:        time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		Timezone:         "UTC",
		ScheduleStatus:   types.ScheduleStatusActive,
		Currency:         "USD",
		BaseAmount:       decimal.NewFromInt(100),
		PaymentTermsDays: 30,
		BaseModel: types.BaseModel{
			TenantID: types.DefaultTenantID,
			Status:   types.StatusPublished,
		},
	}
}

func TestBuildInvoice_BaseAmount(t *testing.T) {
	f := NewInvoiceFactory()
	sched := factorySchedule()
	periodStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	inv, err := f.BuildInvoice(sched, factoryCustomer(), periodStart, periodEnd)
	require.NoError(t, err)

	assert.Equal(t, "cust_factory", inv.CustomerID)
	assert.Equal(t, "sched_factory", *inv.ScheduleID)
	assert.Equal(t, "USD", inv.Currency)
	assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, inv.TaxTotal.IsZero())
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(100)))
	assert.True(t, inv.AmountRemaining.Equal(inv.Total))
	assert.Equal(t, types.InvoiceStatusFinalized, inv.InvoiceStatus)
	assert.Equal(t, types.InvoicePaymentStatusPending, inv.PaymentStatus)
	assert.True(t, inv.IssueDate.Equal(periodStart))
	assert.True(t, inv.DueDate.Equal(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)))
	assert.True(t, inv.PeriodStart.Equal(periodStart))
	assert.True(t, inv.PeriodEnd.Equal(periodEnd))

	require.Len(t, inv.LineItems, 1)
	li := inv.LineItems[0]
	assert.Equal(t, "Pro plan", li.Description)
	assert.True(t, li.Quantity.Equal(decimal.NewFromInt(1)))
	assert.True(t, li.UnitPrice.Equal(decimal.NewFromInt(100)))
	assert.True(t, li.Amount.Equal(decimal.NewFromInt(100)))
	assert.False(t, li.Prorated)
}

func TestBuildInvoice_LineItemTemplates(t *testing.T) {
	f := NewInvoiceFactory()
	sched := factorySchedule()
	sched.BaseAmount = decimal.Zero
	sched.LineItems = []types.ScheduleLineItem{
		{Description: "Seats", Quantity: "5", UnitPrice: "20"},
		{Description: "Support", Quantity: "1", UnitPrice: "49.50"},
	}
	periodStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	inv, err := f.BuildInvoice(sched, factoryCustomer(), periodStart, periodEnd)
	require.NoError(t, err)

	require.Len(t, inv.LineItems, 2)
	assert.True(t, inv.LineItems[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, inv.LineItems[1].Amount.Equal(decimal.RequireFromString("49.50")))
	assert.True(t, inv.Subtotal.Equal(decimal.RequireFromString("149.50")))
	assert.True(t, inv.Total.Equal(inv.Subtotal))
}

func TestBuildInvoice_Proration(t *testing.T) {
	f := NewInvoiceFactory()
	periodStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	t.Run("mid period start scales the amount", func(t *testing.T) {
		sched := factorySchedule()
		sched.ProrationEnabled = true
		sched.BaseAmount = decimal.NewFromInt(310)
		sched.StartDate = time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC)

		inv, err := f.BuildInvoice(sched, factoryCustomer(), periodStart, periodEnd)
		require.NoError(t, err)

		// 16 of 31 days covered
		assert.True(t, inv.Total.Equal(decimal.NewFromInt(160)), "got %s", inv.Total)
		require.Len(t, inv.LineItems, 1)
		assert.True(t, inv.LineItems[0].Prorated)
	})

	t.Run("start on period boundary bills in full", func(t *testing.T) {
		sched := factorySchedule()
		sched.ProrationEnabled = true
		sched.StartDate = periodStart

		inv, err := f.BuildInvoice(sched, factoryCustomer(), periodStart, periodEnd)
		require.NoError(t, err)
		assert.True(t, inv.Total.Equal(decimal.NewFromInt(100)))
		assert.False(t, inv.LineItems[0].Prorated)
	})

	t.Run("proration disabled bills in full", func(t *testing.T) {
		sched := factorySchedule()
		sched.StartDate = time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC)

		inv, err := f.BuildInvoice(sched, factoryCustomer(), periodStart, periodEnd)
		require.NoError(t, err)
		assert.True(t, inv.Total.Equal(decimal.NewFromInt(100)))
		assert.False(t, inv.LineItems[0].Prorated)
	})
}

func TestBuildInvoice_Tax(t *testing.T) {
	f := NewInvoiceFactory()
	periodStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	t.Run("exclusive tax is added on top", func(t *testing.T) {
		sched := factorySchedule()
		sched.TaxRate = decimal.RequireFromString("0.1")

		inv, err := f.BuildInvoice(sched, factoryCustomer(), periodStart, periodEnd)
		require.NoError(t, err)
		assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(100)))
		assert.True(t, inv.TaxTotal.Equal(decimal.NewFromInt(10)))
		assert.True(t, inv.Total.Equal(decimal.NewFromInt(110)))
	})

	t.Run("inclusive tax is carved out of the subtotal", func(t *testing.T) {
		sched := factorySchedule()
		sched.TaxRate = decimal.RequireFromString("0.1")
		sched.TaxInclusive = true
		sched.BaseAmount = decimal.NewFromInt(110)

		inv, err := f.BuildInvoice(sched, factoryCustomer(), periodStart, periodEnd)
		require.NoError(t, err)
		assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(110)))
		assert.True(t, inv.TaxTotal.Equal(decimal.NewFromInt(10)), "got %s", inv.TaxTotal)
		assert.True(t, inv.Total.Equal(decimal.NewFromInt(110)))
	})
}

func TestBuildInvoice_Guards(t *testing.T) {
	f := NewInvoiceFactory()
	periodStart := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	t.Run("nil customer", func(t *testing.T) {
		_, err := f.BuildInvoice(factorySchedule(), nil, periodStart, periodEnd)
		require.Error(t, err)
		assert.True(t, ierr.IsInvoiceGeneration(err))
	})

	t.Run("deleted customer", func(t *testing.T) {
		cust := factoryCustomer()
		cust.Status = types.StatusDeleted
		_, err := f.BuildInvoice(factorySchedule(), cust, periodStart, periodEnd)
		require.Error(t, err)
		assert.True(t, ierr.IsInvoiceGeneration(err))
	})

	t.Run("missing currency", func(t *testing.T) {
		sched := factorySchedule()
		sched.Currency = ""
		_, err := f.BuildInvoice(sched, factoryCustomer(), periodStart, periodEnd)
		require.Error(t, err)
		assert.True(t, ierr.IsInvoiceGeneration(err))
	})

	t.Run("nothing to bill", func(t *testing.T) {
		sched := factorySchedule()
		sched.BaseAmount = decimal.Zero
		_, err := f.BuildInvoice(sched, factoryCustomer(), periodStart, periodEnd)
		require.Error(t, err)
		assert.True(t, ierr.IsInvoiceGeneration(err))
	})

	t.Run("inverted period", func(t *testing.T) {
		_, err := f.BuildInvoice(factorySchedule(), factoryCustomer(), periodEnd, periodStart)
		require.Error(t, err)
		assert.True(t, ierr.IsInvoiceGeneration(err))
	})

	t.Run("malformed line item quantity", func(t *testing.T) {
		sched := factorySchedule()
		sched.BaseAmount = decimal.Zero
		sched.LineItems = []types.ScheduleLineItem{
			{Description: "Seats", Quantity: "five", UnitPrice: "20"},
		}
		_, err := f.BuildInvoice(sched, factoryCustomer(), periodStart, periodEnd)
		require.Error(t, err)
		assert.True(t, ierr.IsInvoiceGeneration(err))
	})
}

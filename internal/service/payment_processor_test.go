package service

import (
	"testing"
	"time"

	"github.com/invoiceflow/invoiceflow/internal/domain/customer"
	"github.com/invoiceflow/invoiceflow/internal/domain/invoice"
	"github.com/invoiceflow/invoiceflow/internal/domain/schedule"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/idempotency"
	"github.com/invoiceflow/invoiceflow/internal/testutil"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PaymentProcessorSuite struct {
	testutil.BaseServiceTestSuite
	service  PaymentProcessorService
	testData struct {
		customer *customer.Customer
		schedule *schedule.Schedule
		invoice  *invoice.Invoice
	}
}

func TestPaymentProcessorService(t *testing.T) {
	suite.Run(t, new(PaymentProcessorSuite))
}

func (s *PaymentProcessorSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPaymentProcessorService(ServiceParams{
		Logger:       s.GetLogger(),
		Config:       s.GetConfig(),
		DB:           s.GetDB(),
		CustomerRepo: s.GetStores().CustomerRepo,
		ScheduleRepo: s.GetStores().ScheduleRepo,
		InvoiceRepo:  s.GetStores().InvoiceRepo,
		PaymentRepo:  s.GetStores().PaymentRepo,
		AuditLogRepo: s.GetStores().AuditLogRepo,
		Gateway:      s.GetGateway(),
		EmailSender:  s.GetEmailSender(),
		IdempGen:     idempotency.NewGenerator(),
	})
	s.setupTestData()
}

func (s *PaymentProcessorSuite) setupTestData() {
	s.testData.customer = &customer.Customer{
		ID:                     "cust_test_processor",
		Name:                   "Test Customer",
		Email:                  "processor@example.com",
		Timezone:               "UTC",
		GatewayCustomerID:      lo.ToPtr("cus_fake_123"),
		DefaultPaymentMethodID: lo.ToPtr("pm_fake_123"),
		BaseModel:              types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().CustomerRepo.Create(s.GetContext(), s.testData.customer))

	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	s.testData.schedule = &schedule.Schedule{
		ID:                     "sched_test_processor",
		CustomerID:             s.testData.customer.ID,
		IntervalType:           types.ScheduleIntervalMonthly,
		AnchorDay:              1,
		StartDate:              start,
		NextRunDate:            start,
		Timezone:               "UTC",
		ScheduleStatus:         types.ScheduleStatusActive,
		Currency:               "USD",
		BaseAmount:             decimal.NewFromInt(50),
		AutoCharge:             true,
		RetryEnabled:           true,
		MaxRetryAttempts:       3,
		RetryIntervalHours:     24,
		RetryBackoffMultiplier: 2,
		BaseModel:              types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ScheduleRepo.Create(s.GetContext(), s.testData.schedule))

	periodStart := start
	periodEnd := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	s.testData.invoice = &invoice.Invoice{
		ID:              "inv_test_processor",
		InvoiceNumber:   "INV-PROC-1",
		CustomerID:      s.testData.customer.ID,
		ScheduleID:      &s.testData.schedule.ID,
		IssueDate:       periodStart,
		DueDate:         periodStart.AddDate(0, 0, 30),
		PeriodStart:     &periodStart,
		PeriodEnd:       &periodEnd,
		Currency:        "USD",
		Subtotal:        decimal.NewFromInt(50),
		Total:           decimal.NewFromInt(50),
		AmountPaid:      decimal.Zero,
		AmountRemaining: decimal.NewFromInt(50),
		InvoiceStatus:   types.InvoiceStatusFinalized,
		PaymentStatus:   types.InvoicePaymentStatusPending,
		BaseModel:       types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().InvoiceRepo.CreateWithLineItems(s.GetContext(), s.testData.invoice))
}

func (s *PaymentProcessorSuite) TestCollectInvoice_Success() {
	p, err := s.service.CollectInvoice(s.GetContext(), s.testData.invoice, s.testData.schedule)
	s.NoError(err)
	s.NotNil(p)
	s.Equal(types.PaymentStatusSucceeded, p.PaymentStatus)
	s.Equal(1, p.RetryCount)
	s.NotNil(p.GatewayPaymentID)
	s.NotNil(p.SucceededAt)
	s.Nil(p.NextRetryAt)
	s.Equal(3, p.MaxRetries)
	s.True(p.Amount.Equal(s.testData.invoice.Total))

	attempts, err := s.GetStores().PaymentRepo.ListAttempts(s.GetContext(), p.ID)
	s.NoError(err)
	s.Len(attempts, 1)
	s.Equal(1, attempts[0].AttemptNumber)
	s.Equal(types.PaymentStatusSucceeded, attempts[0].AttemptStatus)
	s.NotNil(attempts[0].GatewayAttemptID)

	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.testData.invoice.ID)
	s.NoError(err)
	s.True(inv.IsPaid())
	s.True(inv.AmountRemaining.IsZero())
	s.NotNil(inv.PaidAt)

	entries, err := s.GetStores().AuditLogRepo.ListBySchedule(s.GetContext(), s.testData.schedule.ID, 0)
	s.NoError(err)
	s.Len(entries, 1)
	s.Equal(types.AuditActionPaymentSucceeded, entries[0].Action)
}

func (s *PaymentProcessorSuite) TestCollectInvoice_Idempotent() {
	first, err := s.service.CollectInvoice(s.GetContext(), s.testData.invoice, s.testData.schedule)
	s.NoError(err)

	second, err := s.service.CollectInvoice(s.GetContext(), s.testData.invoice, s.testData.schedule)
	s.NoError(err)
	s.Equal(first.ID, second.ID)

	// the existing payment short-circuits before the gateway
	s.Equal(1, s.GetGateway().Calls())

	payments, err := s.GetStores().PaymentRepo.List(s.GetContext(), types.NewNoLimitPaymentFilter())
	s.NoError(err)
	s.Len(payments, 1)
}

func (s *PaymentProcessorSuite) TestCollectInvoice_RetryableFailure() {
	s.GetGateway().Enqueue(testutil.ChargeOutcomeRetryable)

	p, err := s.service.CollectInvoice(s.GetContext(), s.testData.invoice, s.testData.schedule)
	s.NoError(err)
	s.Equal(types.PaymentStatusFailed, p.PaymentStatus)
	s.Equal(1, p.RetryCount)
	s.NotNil(p.FailedAt)
	s.NotNil(p.ErrorMessage)
	s.Contains(*p.ErrorMessage, "card declined")

	// first retry waits one interval
	s.NotNil(p.NextRetryAt)
	s.WithinDuration(time.Now().UTC().Add(24*time.Hour), *p.NextRetryAt, 5*time.Second)

	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.testData.invoice.ID)
	s.NoError(err)
	s.Equal(types.InvoicePaymentStatusFailed, inv.PaymentStatus)

	entries, err := s.GetStores().AuditLogRepo.ListBySchedule(s.GetContext(), s.testData.schedule.ID, 0)
	s.NoError(err)
	s.Len(entries, 1)
	s.Equal(types.AuditActionPaymentFailed, entries[0].Action)

	s.Empty(s.GetEmailSender().Sent())
}

func (s *PaymentProcessorSuite) TestAttemptCharge_BackoffGrows() {
	s.GetGateway().Enqueue(testutil.ChargeOutcomeRetryable, testutil.ChargeOutcomeRetryable)

	p, err := s.service.CollectInvoice(s.GetContext(), s.testData.invoice, s.testData.schedule)
	s.NoError(err)
	s.WithinDuration(time.Now().UTC().Add(24*time.Hour), *p.NextRetryAt, 5*time.Second)

	p, err = s.service.AttemptCharge(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(types.PaymentStatusFailed, p.PaymentStatus)
	s.Equal(2, p.RetryCount)
	s.WithinDuration(time.Now().UTC().Add(48*time.Hour), *p.NextRetryAt, 5*time.Second)
}

func (s *PaymentProcessorSuite) TestAttemptCharge_ExhaustsRetries() {
	s.GetGateway().Enqueue(
		testutil.ChargeOutcomeRetryable,
		testutil.ChargeOutcomeRetryable,
		testutil.ChargeOutcomeRetryable,
	)

	p, err := s.service.CollectInvoice(s.GetContext(), s.testData.invoice, s.testData.schedule)
	s.NoError(err)
	p, err = s.service.AttemptCharge(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(types.PaymentStatusFailed, p.PaymentStatus)

	p, err = s.service.AttemptCharge(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(types.PaymentStatusExhausted, p.PaymentStatus)
	s.Equal(3, p.RetryCount)
	s.Nil(p.NextRetryAt)

	attempts, err := s.GetStores().PaymentRepo.ListAttempts(s.GetContext(), p.ID)
	s.NoError(err)
	s.Len(attempts, 3)

	// the schedule is suspended and the customer notified exactly once
	sched, err := s.GetStores().ScheduleRepo.Get(s.GetContext(), s.testData.schedule.ID)
	s.NoError(err)
	s.Equal(types.ScheduleStatusFailed, sched.ScheduleStatus)
	s.True(sched.FailureNotificationSent)

	sent := s.GetEmailSender().Sent()
	s.Len(sent, 1)
	s.Equal(s.testData.customer.Email, sent[0].ToAddress)
	s.Contains(sent[0].Subject, s.testData.invoice.InvoiceNumber)

	entries, err := s.GetStores().AuditLogRepo.ListBySchedule(s.GetContext(), sched.ID, 0)
	s.NoError(err)
	s.Len(entries, 3)
	s.Equal(types.AuditActionRetriesExhausted, entries[0].Action)

	// terminal payments reject further attempts
	_, err = s.service.AttemptCharge(s.GetContext(), p.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PaymentProcessorSuite) TestCollectInvoice_TerminalDecline() {
	s.GetGateway().Enqueue(testutil.ChargeOutcomeTerminal)

	p, err := s.service.CollectInvoice(s.GetContext(), s.testData.invoice, s.testData.schedule)
	s.NoError(err)
	s.Equal(types.PaymentStatusFailedTerminal, p.PaymentStatus)
	s.Equal(1, p.RetryCount)
	s.Nil(p.NextRetryAt)

	attempts, err := s.GetStores().PaymentRepo.ListAttempts(s.GetContext(), p.ID)
	s.NoError(err)
	s.Len(attempts, 1)
	s.Equal(types.PaymentStatusFailedTerminal, attempts[0].AttemptStatus)
	s.Nil(attempts[0].NextRetryAt)

	// a hard decline never burns the retry schedule or the notification
	sched, err := s.GetStores().ScheduleRepo.Get(s.GetContext(), s.testData.schedule.ID)
	s.NoError(err)
	s.Equal(types.ScheduleStatusActive, sched.ScheduleStatus)
	s.False(sched.FailureNotificationSent)
	s.Empty(s.GetEmailSender().Sent())

	_, err = s.service.AttemptCharge(s.GetContext(), p.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *PaymentProcessorSuite) TestProcessDueRetries_Sweep() {
	s.GetGateway().Enqueue(testutil.ChargeOutcomeRetryable)

	p, err := s.service.CollectInvoice(s.GetContext(), s.testData.invoice, s.testData.schedule)
	s.NoError(err)
	s.Equal(types.PaymentStatusFailed, p.PaymentStatus)

	// not due yet
	report, err := s.service.ProcessDueRetries(s.GetContext(), time.Now().UTC())
	s.NoError(err)
	s.Equal(0, report.PaymentsExamined)

	// past the retry cursor the sweep picks it up and succeeds
	report, err = s.service.ProcessDueRetries(s.GetContext(), time.Now().UTC().Add(25*time.Hour))
	s.NoError(err)
	s.Equal(1, report.PaymentsExamined)
	s.Equal(1, report.Succeeded)

	reloaded, err := s.GetStores().PaymentRepo.Get(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(types.PaymentStatusSucceeded, reloaded.PaymentStatus)
	s.Equal(2, reloaded.RetryCount)

	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.testData.invoice.ID)
	s.NoError(err)
	s.True(inv.IsPaid())
}

func (s *PaymentProcessorSuite) TestProcessDueRetries_TalliesOutcomes() {
	s.GetGateway().Enqueue(testutil.ChargeOutcomeRetryable, testutil.ChargeOutcomeRetryable)

	p, err := s.service.CollectInvoice(s.GetContext(), s.testData.invoice, s.testData.schedule)
	s.NoError(err)

	report, err := s.service.ProcessDueRetries(s.GetContext(), time.Now().UTC().Add(25*time.Hour))
	s.NoError(err)
	s.Equal(1, report.PaymentsExamined)
	s.Equal(1, report.RetriesScheduled)

	reloaded, err := s.GetStores().PaymentRepo.Get(s.GetContext(), p.ID)
	s.NoError(err)
	s.Equal(types.PaymentStatusFailed, reloaded.PaymentStatus)
	s.Equal(2, reloaded.RetryCount)
}

func (s *PaymentProcessorSuite) TestCollectInvoice_NoRetryBudgetWithoutSchedule() {
	inv := &invoice.Invoice{
		ID:              "inv_one_off",
		InvoiceNumber:   "INV-ONEOFF-1",
		CustomerID:      s.testData.customer.ID,
		IssueDate:       time.Now().UTC(),
		DueDate:         time.Now().UTC().AddDate(0, 0, 30),
		Currency:        "USD",
		Subtotal:        decimal.NewFromInt(10),
		Total:           decimal.NewFromInt(10),
		AmountRemaining: decimal.NewFromInt(10),
		InvoiceStatus:   types.InvoiceStatusFinalized,
		PaymentStatus:   types.InvoicePaymentStatusPending,
		BaseModel:       types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().InvoiceRepo.CreateWithLineItems(s.GetContext(), inv))

	s.GetGateway().Enqueue(testutil.ChargeOutcomeRetryable)

	p, err := s.service.CollectInvoice(s.GetContext(), inv, nil)
	s.NoError(err)
	s.Nil(p.ScheduleID)
	s.Equal(0, p.MaxRetries)
	s.Equal(types.PaymentStatusExhausted, p.PaymentStatus)
	s.Nil(p.NextRetryAt)
}

package service

import (
	"testing"
	"time"

	"github.com/invoiceflow/invoiceflow/internal/domain/customer"
	"github.com/invoiceflow/invoiceflow/internal/domain/schedule"
	"github.com/invoiceflow/invoiceflow/internal/idempotency"
	"github.com/invoiceflow/invoiceflow/internal/testutil"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BillingServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  BillingService
	testData struct {
		customer *customer.Customer
		schedule *schedule.Schedule
	}
}

func TestBillingService(t *testing.T) {
	suite.Run(t, new(BillingServiceSuite))
}

func (s *BillingServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewBillingService(s.params())
	s.setupTestData()
}

func (s *BillingServiceSuite) params() ServiceParams {
	return ServiceParams{
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
	}
}

func (s *BillingServiceSuite) setupTestData() {
	s.testData.customer = &customer.Customer{
		ID:        "cust_billing_test",
		Name:      "Test Customer",
		Email:     "billing@example.com",
		Timezone:  "UTC",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().CustomerRepo.Create(s.GetContext(), s.testData.customer))

	start := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	s.testData.schedule = &schedule.Schedule{
		ID:                     "sched_billing_test",
		CustomerID:             s.testData.customer.ID,
		Description:            "Pro plan",
		IntervalType:           types.ScheduleIntervalMonthly,
		AnchorDay:              15,
		StartDate:              start,
		NextRunDate:            start,
		Timezone:               "UTC",
		ScheduleStatus:         types.ScheduleStatusActive,
		Currency:               "USD",
		BaseAmount:             decimal.NewFromInt(100),
		TaxRate:                decimal.Zero,
		PaymentTermsDays:       30,
		RetryEnabled:           true,
		MaxRetryAttempts:       3,
		RetryIntervalHours:     24,
		RetryBackoffMultiplier: 2,
		TotalAmountBilled:      decimal.Zero,
		BaseModel:              types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ScheduleRepo.Create(s.GetContext(), s.testData.schedule))
}

func (s *BillingServiceSuite) TestProcessDueSchedules_GeneratesInvoice() {
	asOf := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

	report, err := s.service.ProcessDueSchedules(s.GetContext(), asOf)
	s.NoError(err)
	s.Equal(1, report.SchedulesExamined)
	s.Equal(1, report.InvoicesGenerated)
	s.Equal(0, report.SchedulesFailed)
	s.Len(report.Outcomes, 1)
	s.Equal(s.testData.schedule.ID, report.Outcomes[0].ScheduleID)
	s.Equal("generated", report.Outcomes[0].Outcome)

	invoices, err := s.GetStores().InvoiceRepo.List(s.GetContext(), types.NewNoLimitInvoiceFilter())
	s.NoError(err)
	s.Len(invoices, 1)

	inv := invoices[0]
	s.Equal(inv.ID, *report.Outcomes[0].InvoiceID)
	s.Equal(s.testData.customer.ID, inv.CustomerID)
	s.Equal(s.testData.schedule.ID, *inv.ScheduleID)
	s.True(inv.Total.Equal(decimal.NewFromInt(100)))
	s.Equal(types.InvoiceStatusFinalized, inv.InvoiceStatus)
	s.Equal(types.InvoicePaymentStatusPending, inv.PaymentStatus)
	s.True(inv.DueDate.Equal(time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC)))

	// cursor advanced to the next anchored date
	sched, err := s.GetStores().ScheduleRepo.Get(s.GetContext(), s.testData.schedule.ID)
	s.NoError(err)
	s.True(sched.NextRunDate.Equal(time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)))
	s.Equal(1, sched.TotalInvoicesGenerated)
	s.True(sched.TotalAmountBilled.Equal(decimal.NewFromInt(100)))

	// ledger row settled
	execs, err := s.GetStores().ScheduleRepo.ListExecutions(s.GetContext(), sched.ID)
	s.NoError(err)
	s.Len(execs, 1)
	s.Equal(types.ExecutionStatusGenerated, execs[0].ExecutionStatus)
	s.Equal(inv.ID, *execs[0].InvoiceID)

	// audit trail records the generation
	entries, err := s.GetStores().AuditLogRepo.ListBySchedule(s.GetContext(), sched.ID, 0)
	s.NoError(err)
	s.Len(entries, 1)
	s.Equal(types.AuditActionInvoiceGenerated, entries[0].Action)
}

func (s *BillingServiceSuite) TestProcessDueSchedules_SecondRunIsNoop() {
	asOf := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

	_, err := s.service.ProcessDueSchedules(s.GetContext(), asOf)
	s.NoError(err)

	report, err := s.service.ProcessDueSchedules(s.GetContext(), asOf)
	s.NoError(err)
	s.Equal(0, report.InvoicesGenerated)

	invoices, err := s.GetStores().InvoiceRepo.List(s.GetContext(), types.NewNoLimitInvoiceFilter())
	s.NoError(err)
	s.Len(invoices, 1)
}

func (s *BillingServiceSuite) TestProcessDueSchedules_CatchesUpMissedPeriods() {
	// Three monthly periods behind
	asOf := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)

	report, err := s.service.ProcessDueSchedules(s.GetContext(), asOf)
	s.NoError(err)
	s.Equal(3, report.InvoicesGenerated)
	s.Len(report.Outcomes, 3)

	sched, err := s.GetStores().ScheduleRepo.Get(s.GetContext(), s.testData.schedule.ID)
	s.NoError(err)
	s.True(sched.NextRunDate.Equal(time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC)))
	s.Equal(3, sched.TotalInvoicesGenerated)
	s.True(sched.TotalAmountBilled.Equal(decimal.NewFromInt(300)))

	execs, err := s.GetStores().ScheduleRepo.ListExecutions(s.GetContext(), sched.ID)
	s.NoError(err)
	s.Len(execs, 3)
}

func (s *BillingServiceSuite) TestProcessDueSchedules_ReclaimsFailedExecution() {
	periodDate := s.testData.schedule.NextRunDate
	exec := &schedule.Execution{
		ID:              "exec_failed_claim",
		ScheduleID:      s.testData.schedule.ID,
		PeriodDate:      periodDate,
		PeriodStart:     periodDate,
		PeriodEnd:       time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC),
		ExecutionStatus: types.ExecutionStatusFailed,
		ErrorMessage:    "transient database error",
		BaseModel:       types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ScheduleRepo.CreateExecution(s.GetContext(), exec))

	report, err := s.service.ProcessDueSchedules(s.GetContext(), periodDate)
	s.NoError(err)
	s.Equal(1, report.InvoicesGenerated)

	reloaded, err := s.GetStores().ScheduleRepo.GetExecution(s.GetContext(), exec.ID)
	s.NoError(err)
	s.Equal(types.ExecutionStatusGenerated, reloaded.ExecutionStatus)
	s.NotNil(reloaded.InvoiceID)
	s.Empty(reloaded.ErrorMessage)
}

func (s *BillingServiceSuite) TestProcessDueSchedules_SkipsInFlightPeriod() {
	periodDate := s.testData.schedule.NextRunDate
	exec := &schedule.Execution{
		ID:              "exec_in_flight",
		ScheduleID:      s.testData.schedule.ID,
		PeriodDate:      periodDate,
		PeriodStart:     periodDate,
		PeriodEnd:       time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC),
		ExecutionStatus: types.ExecutionStatusProcessing,
		BaseModel:       types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ScheduleRepo.CreateExecution(s.GetContext(), exec))

	report, err := s.service.ProcessDueSchedules(s.GetContext(), periodDate)
	s.NoError(err)
	s.Equal(0, report.InvoicesGenerated)

	invoices, err := s.GetStores().InvoiceRepo.List(s.GetContext(), types.NewNoLimitInvoiceFilter())
	s.NoError(err)
	s.Empty(invoices)

	// cursor must not move while another driver owns the period
	sched, err := s.GetStores().ScheduleRepo.Get(s.GetContext(), s.testData.schedule.ID)
	s.NoError(err)
	s.True(sched.NextRunDate.Equal(periodDate))
}

func (s *BillingServiceSuite) TestProcessDueSchedules_ReclaimsStaleProcessingClaim() {
	periodDate := s.testData.schedule.NextRunDate
	exec := &schedule.Execution{
		ID:              "exec_stale_claim",
		ScheduleID:      s.testData.schedule.ID,
		PeriodDate:      periodDate,
		PeriodStart:     periodDate,
		PeriodEnd:       time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC),
		ExecutionStatus: types.ExecutionStatusProcessing,
		BaseModel:       types.GetDefaultBaseModel(s.GetContext()),
	}
	// a claim last touched hours ago belongs to a crashed driver
	exec.UpdatedAt = time.Now().UTC().Add(-2 * time.Hour)
	s.NoError(s.GetStores().ScheduleRepo.CreateExecution(s.GetContext(), exec))

	report, err := s.service.ProcessDueSchedules(s.GetContext(), periodDate)
	s.NoError(err)
	s.Equal(1, report.InvoicesGenerated)
	s.Equal(0, report.SchedulesFailed)

	reloaded, err := s.GetStores().ScheduleRepo.GetExecution(s.GetContext(), exec.ID)
	s.NoError(err)
	s.Equal(types.ExecutionStatusGenerated, reloaded.ExecutionStatus)
	s.NotNil(reloaded.InvoiceID)

	// the period settled, so the schedule is no longer due
	sched, err := s.GetStores().ScheduleRepo.Get(s.GetContext(), s.testData.schedule.ID)
	s.NoError(err)
	s.True(sched.NextRunDate.Equal(time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)))
}

func (s *BillingServiceSuite) TestProcessPeriod_PauseMidCycleFinishesInvoice() {
	ctx := s.GetContext()
	periodDate := s.testData.schedule.NextRunDate

	// the driver's copy of the row, loaded before the pause lands
	driverCopy, err := s.GetStores().ScheduleRepo.Get(ctx, s.testData.schedule.ID)
	s.NoError(err)

	paused, err := s.GetStores().ScheduleRepo.Get(ctx, s.testData.schedule.ID)
	s.NoError(err)
	paused.ScheduleStatus = types.ScheduleStatusPaused
	paused.PausedAt = lo.ToPtr(time.Now().UTC())
	s.NoError(s.GetStores().ScheduleRepo.Update(ctx, paused))

	bs := s.service.(*billingService)
	outcome, err := bs.processPeriod(ctx, driverCopy, periodDate)
	s.NoError(err)
	s.Equal(periodGenerated, outcome.status)

	invoices, err := s.GetStores().InvoiceRepo.List(ctx, types.NewNoLimitInvoiceFilter())
	s.NoError(err)
	s.Len(invoices, 1)

	// the cycle finished, but the cursor update must not undo the pause
	after, err := s.GetStores().ScheduleRepo.Get(ctx, s.testData.schedule.ID)
	s.NoError(err)
	s.Equal(types.ScheduleStatusPaused, after.ScheduleStatus)
	s.NotNil(after.PausedAt)
	s.True(after.NextRunDate.Equal(time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)))
	s.Equal(1, after.TotalInvoicesGenerated)
}

func (s *BillingServiceSuite) TestProcessDueSchedules_RepairsCursorAfterSettledPeriod() {
	periodDate := s.testData.schedule.NextRunDate
	periodEnd := time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)
	exec := &schedule.Execution{
		ID:              "exec_settled",
		ScheduleID:      s.testData.schedule.ID,
		PeriodDate:      periodDate,
		PeriodStart:     periodDate,
		PeriodEnd:       periodEnd,
		ExecutionStatus: types.ExecutionStatusGenerated,
		InvoiceID:       lo.ToPtr("inv_from_earlier_run"),
		BaseModel:       types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ScheduleRepo.CreateExecution(s.GetContext(), exec))

	report, err := s.service.ProcessDueSchedules(s.GetContext(), periodDate)
	s.NoError(err)
	s.Equal(0, report.InvoicesGenerated)
	s.Equal(1, report.PeriodsSkipped)

	sched, err := s.GetStores().ScheduleRepo.Get(s.GetContext(), s.testData.schedule.ID)
	s.NoError(err)
	s.True(sched.NextRunDate.Equal(periodEnd))
}

func (s *BillingServiceSuite) TestProcessDueSchedules_CompletesEndedSchedule() {
	sched, err := s.GetStores().ScheduleRepo.Get(s.GetContext(), s.testData.schedule.ID)
	s.NoError(err)
	sched.EndDate = lo.ToPtr(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	s.NoError(s.GetStores().ScheduleRepo.Update(s.GetContext(), sched))

	report, err := s.service.ProcessDueSchedules(s.GetContext(), sched.NextRunDate)
	s.NoError(err)
	s.Equal(0, report.InvoicesGenerated)
	s.Equal(1, report.PeriodsSkipped)

	reloaded, err := s.GetStores().ScheduleRepo.Get(s.GetContext(), sched.ID)
	s.NoError(err)
	s.Equal(types.ScheduleStatusCompleted, reloaded.ScheduleStatus)

	execs, err := s.GetStores().ScheduleRepo.ListExecutions(s.GetContext(), sched.ID)
	s.NoError(err)
	s.Len(execs, 1)
	s.Equal(types.ExecutionStatusSkipped, execs[0].ExecutionStatus)

	entries, err := s.GetStores().AuditLogRepo.ListBySchedule(s.GetContext(), sched.ID, 0)
	s.NoError(err)
	s.Len(entries, 1)
	s.Equal(types.AuditActionCompleted, entries[0].Action)
}

func (s *BillingServiceSuite) TestProcessDueSchedules_FailureKeepsCursor() {
	// Deleting the customer makes invoice generation fail
	s.NoError(s.GetStores().CustomerRepo.Delete(s.GetContext(), s.testData.customer.ID))

	periodDate := s.testData.schedule.NextRunDate
	report, err := s.service.ProcessDueSchedules(s.GetContext(), periodDate)
	s.NoError(err)
	s.Equal(0, report.InvoicesGenerated)
	s.Equal(1, report.SchedulesFailed)
	s.Len(report.Outcomes, 1)
	s.Equal("failed", report.Outcomes[0].Outcome)
	s.Contains(report.Outcomes[0].Error, "not found")

	sched, err := s.GetStores().ScheduleRepo.Get(s.GetContext(), s.testData.schedule.ID)
	s.NoError(err)
	s.True(sched.NextRunDate.Equal(periodDate))

	execs, err := s.GetStores().ScheduleRepo.ListExecutions(s.GetContext(), sched.ID)
	s.NoError(err)
	s.Len(execs, 1)
	s.Equal(types.ExecutionStatusFailed, execs[0].ExecutionStatus)
	s.Contains(execs[0].ErrorMessage, "not found")

	entries, err := s.GetStores().AuditLogRepo.ListBySchedule(s.GetContext(), sched.ID, 0)
	s.NoError(err)
	s.Len(entries, 1)
	s.Equal(types.AuditActionExecutionFailed, entries[0].Action)
}

func (s *BillingServiceSuite) TestProcessDueSchedules_AutoChargeCollectsPayment() {
	sched, err := s.GetStores().ScheduleRepo.Get(s.GetContext(), s.testData.schedule.ID)
	s.NoError(err)
	sched.AutoCharge = true
	s.NoError(s.GetStores().ScheduleRepo.Update(s.GetContext(), sched))

	report, err := s.service.ProcessDueSchedules(s.GetContext(), sched.NextRunDate)
	s.NoError(err)
	s.Equal(1, report.InvoicesGenerated)
	s.Equal(1, report.ChargesStarted)
	s.Equal(1, s.GetGateway().Calls())

	invoices, err := s.GetStores().InvoiceRepo.List(s.GetContext(), types.NewNoLimitInvoiceFilter())
	s.NoError(err)
	s.Len(invoices, 1)
	s.Equal(types.InvoicePaymentStatusSucceeded, invoices[0].PaymentStatus)

	payments, err := s.GetStores().PaymentRepo.List(s.GetContext(), types.NewNoLimitPaymentFilter())
	s.NoError(err)
	s.Len(payments, 1)
	s.Equal(types.PaymentStatusSucceeded, payments[0].PaymentStatus)
}

func (s *BillingServiceSuite) TestProcessDueSchedules_GatewayFailureKeepsInvoice() {
	sched, err := s.GetStores().ScheduleRepo.Get(s.GetContext(), s.testData.schedule.ID)
	s.NoError(err)
	sched.AutoCharge = true
	s.NoError(s.GetStores().ScheduleRepo.Update(s.GetContext(), sched))

	s.GetGateway().Enqueue(testutil.ChargeOutcomeRetryable)

	report, err := s.service.ProcessDueSchedules(s.GetContext(), sched.NextRunDate)
	s.NoError(err)
	s.Equal(1, report.InvoicesGenerated)

	// the invoice survives the failed charge and a retry is scheduled
	invoices, err := s.GetStores().InvoiceRepo.List(s.GetContext(), types.NewNoLimitInvoiceFilter())
	s.NoError(err)
	s.Len(invoices, 1)

	payments, err := s.GetStores().PaymentRepo.List(s.GetContext(), types.NewNoLimitPaymentFilter())
	s.NoError(err)
	s.Len(payments, 1)
	s.Equal(types.PaymentStatusFailed, payments[0].PaymentStatus)
	s.NotNil(payments[0].NextRetryAt)
}

func (s *BillingServiceSuite) TestProcessDueSchedules_IgnoresPausedSchedule() {
	sched, err := s.GetStores().ScheduleRepo.Get(s.GetContext(), s.testData.schedule.ID)
	s.NoError(err)
	sched.ScheduleStatus = types.ScheduleStatusPaused
	s.NoError(s.GetStores().ScheduleRepo.Update(s.GetContext(), sched))

	report, err := s.service.ProcessDueSchedules(s.GetContext(), sched.NextRunDate)
	s.NoError(err)
	s.Equal(0, report.SchedulesExamined)
	s.Equal(0, report.InvoicesGenerated)
}

func (s *BillingServiceSuite) TestProcessDueSchedules_NotDueYet() {
	asOf := time.Date(2025, time.January, 14, 23, 59, 59, 0, time.UTC)

	report, err := s.service.ProcessDueSchedules(s.GetContext(), asOf)
	s.NoError(err)
	s.Equal(0, report.SchedulesExamined)
}

func (s *BillingServiceSuite) TestProcessSchedule_SingleSchedule() {
	report, err := s.service.ProcessSchedule(s.GetContext(), s.testData.schedule.ID, s.testData.schedule.NextRunDate)
	s.NoError(err)
	s.Equal(1, report.SchedulesExamined)
	s.Equal(1, report.InvoicesGenerated)
}

func (s *BillingServiceSuite) TestProcessDueSchedules_ProratedFirstPeriod() {
	// Schedule starts mid period: anchor day 1 but the customer signed
	// up on the 16th of a 31 day month
	start := time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC)
	periodDate := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	prorated := &schedule.Schedule{
		ID:               "sched_prorated",
		CustomerID:       s.testData.customer.ID,
		IntervalType:     types.ScheduleIntervalMonthly,
		AnchorDay:        1,
		StartDate:        start,
		NextRunDate:      periodDate,
		Timezone:         "UTC",
		ScheduleStatus:   types.ScheduleStatusActive,
		Currency:         "USD",
		BaseAmount:       decimal.NewFromInt(310),
		ProrationEnabled: true,
		PaymentTermsDays: 30,
		BaseModel:        types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().ScheduleRepo.Create(s.GetContext(), prorated))

	report, err := s.service.ProcessSchedule(s.GetContext(), prorated.ID, periodDate)
	s.NoError(err)
	s.Equal(1, report.InvoicesGenerated)

	invoices, err := s.GetStores().InvoiceRepo.List(s.GetContext(), &types.InvoiceFilter{
		QueryFilter: types.NewNoLimitQueryFilter(),
		ScheduleIDs: []string{prorated.ID},
	})
	s.NoError(err)
	s.Len(invoices, 1)

	// 16 of 31 days covered: 310 * 16/31 = 160
	s.True(invoices[0].Total.Equal(decimal.NewFromInt(160)), "got %s", invoices[0].Total)
	s.Len(invoices[0].LineItems, 1)
	s.True(invoices[0].LineItems[0].Prorated)

	execs, err := s.GetStores().ScheduleRepo.ListExecutions(s.GetContext(), prorated.ID)
	s.NoError(err)
	s.Len(execs, 1)
	s.True(execs[0].ProratedAmount.Equal(invoices[0].Total))
}

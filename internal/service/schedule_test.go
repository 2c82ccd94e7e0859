package service

import (
	"testing"
	"time"

	"github.com/invoiceflow/invoiceflow/internal/api/dto"
	"github.com/invoiceflow/invoiceflow/internal/domain/customer"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/idempotency"
	"github.com/invoiceflow/invoiceflow/internal/testutil"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ScheduleServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  ScheduleService
	testData struct {
		customer *customer.Customer
	}
}

func TestScheduleService(t *testing.T) {
	suite.Run(t, new(ScheduleServiceSuite))
}

func (s *ScheduleServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewScheduleService(ServiceParams{
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

	s.testData.customer = &customer.Customer{
		ID:        "cust_test_schedule",
		Name:      "Test Customer",
		Email:     "schedule@example.com",
		Timezone:  "UTC",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().CustomerRepo.Create(s.GetContext(), s.testData.customer))
}

func (s *ScheduleServiceSuite) createSchedule() *dto.ScheduleResponse {
	resp, err := s.service.CreateSchedule(s.GetContext(), dto.CreateScheduleRequest{
		CustomerID:   s.testData.customer.ID,
		Description:  "Pro plan",
		IntervalType: types.ScheduleIntervalMonthly,
		StartDate:    time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
		Currency:     "USD",
		BaseAmount:   decimal.NewFromInt(100),
	})
	s.NoError(err)
	s.NotNil(resp)
	return resp
}

func (s *ScheduleServiceSuite) TestCreateSchedule() {
	resp := s.createSchedule()

	s.Equal(s.testData.customer.ID, resp.Schedule.CustomerID)
	s.Equal(types.ScheduleStatusActive, resp.Schedule.ScheduleStatus)
	s.Equal(types.ScheduleIntervalMonthly, resp.Schedule.IntervalType)

	// anchor defaults to the start date's day of month
	s.Equal(31, resp.Schedule.AnchorDay)
	s.True(resp.Schedule.NextRunDate.Equal(resp.Schedule.StartDate))

	// policy defaults come from config
	s.Equal(30, resp.Schedule.PaymentTermsDays)
	s.Equal(3, resp.Schedule.MaxRetryAttempts)
	s.Equal(24, resp.Schedule.RetryIntervalHours)
	s.Equal(float64(2), resp.Schedule.RetryBackoffMultiplier)

	entries, err := s.GetStores().AuditLogRepo.ListBySchedule(s.GetContext(), resp.Schedule.ID, 0)
	s.NoError(err)
	s.Len(entries, 1)
	s.Equal(types.AuditActionCreated, entries[0].Action)
}

func (s *ScheduleServiceSuite) TestCreateSchedule_ValidationFailures() {
	// unknown customer
	_, err := s.service.CreateSchedule(s.GetContext(), dto.CreateScheduleRequest{
		CustomerID:   "cust_missing",
		IntervalType: types.ScheduleIntervalMonthly,
		StartDate:    time.Now().UTC(),
		Currency:     "USD",
		BaseAmount:   decimal.NewFromInt(100),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	// custom interval without a day count
	_, err = s.service.CreateSchedule(s.GetContext(), dto.CreateScheduleRequest{
		CustomerID:   s.testData.customer.ID,
		IntervalType: types.ScheduleIntervalCustomDays,
		StartDate:    time.Now().UTC(),
		Currency:     "USD",
		BaseAmount:   decimal.NewFromInt(100),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ScheduleServiceSuite) TestPauseAndResumeSchedule() {
	created := s.createSchedule()

	paused, err := s.service.PauseSchedule(s.GetContext(), created.Schedule.ID)
	s.NoError(err)
	s.Equal(types.ScheduleStatusPaused, paused.Schedule.ScheduleStatus)
	s.NotNil(paused.Schedule.PausedAt)

	// the cursor survives the pause
	s.True(paused.Schedule.NextRunDate.Equal(created.Schedule.NextRunDate))

	// pausing twice is rejected
	_, err = s.service.PauseSchedule(s.GetContext(), created.Schedule.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	resumed, err := s.service.ResumeSchedule(s.GetContext(), created.Schedule.ID)
	s.NoError(err)
	s.Equal(types.ScheduleStatusActive, resumed.Schedule.ScheduleStatus)
	s.Nil(resumed.Schedule.PausedAt)

	// resuming an active schedule is rejected
	_, err = s.service.ResumeSchedule(s.GetContext(), created.Schedule.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	entries, err := s.GetStores().AuditLogRepo.ListBySchedule(s.GetContext(), created.Schedule.ID, 0)
	s.NoError(err)
	s.Len(entries, 3)
	s.Equal(types.AuditActionResumed, entries[0].Action)
	s.Equal(types.AuditActionPaused, entries[1].Action)
}

func (s *ScheduleServiceSuite) TestCancelSchedule() {
	created := s.createSchedule()

	cancelled, err := s.service.CancelSchedule(s.GetContext(), created.Schedule.ID, dto.CancelScheduleRequest{
		Reason: "customer churned",
	})
	s.NoError(err)
	s.Equal(types.ScheduleStatusCancelled, cancelled.Schedule.ScheduleStatus)
	s.NotNil(cancelled.Schedule.CancelledAt)
	s.Equal("customer churned", cancelled.Schedule.CancellationReason)

	// cancellation is final
	_, err = s.service.CancelSchedule(s.GetContext(), created.Schedule.ID, dto.CancelScheduleRequest{})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	_, err = s.service.ResumeSchedule(s.GetContext(), created.Schedule.ID)
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ScheduleServiceSuite) TestUpdateSchedule() {
	created := s.createSchedule()

	updated, err := s.service.UpdateSchedule(s.GetContext(), created.Schedule.ID, dto.UpdateScheduleRequest{
		Description: lo.ToPtr("Enterprise plan"),
		BaseAmount:  lo.ToPtr(decimal.NewFromInt(500)),
		AutoCharge:  lo.ToPtr(true),
	})
	s.NoError(err)
	s.Equal("Enterprise plan", updated.Schedule.Description)
	s.True(updated.Schedule.BaseAmount.Equal(decimal.NewFromInt(500)))
	s.True(updated.Schedule.AutoCharge)

	// untouched fields keep their values
	s.Equal(31, updated.Schedule.AnchorDay)
	s.Equal(30, updated.Schedule.PaymentTermsDays)

	entries, err := s.GetStores().AuditLogRepo.ListBySchedule(s.GetContext(), created.Schedule.ID, 0)
	s.NoError(err)
	s.Len(entries, 2)
	s.Equal(types.AuditActionUpdated, entries[0].Action)
}

func (s *ScheduleServiceSuite) TestUpdateSchedule_TerminalGuard() {
	created := s.createSchedule()

	_, err := s.service.CancelSchedule(s.GetContext(), created.Schedule.ID, dto.CancelScheduleRequest{})
	s.NoError(err)

	_, err = s.service.UpdateSchedule(s.GetContext(), created.Schedule.ID, dto.UpdateScheduleRequest{
		Description: lo.ToPtr("too late"),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ScheduleServiceSuite) TestDeleteSchedule() {
	created := s.createSchedule()

	s.NoError(s.service.DeleteSchedule(s.GetContext(), created.Schedule.ID))

	_, err := s.service.GetSchedule(s.GetContext(), created.Schedule.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	err = s.service.DeleteSchedule(s.GetContext(), "sched_missing")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ScheduleServiceSuite) TestListSchedules() {
	first := s.createSchedule()
	second := s.createSchedule()

	resp, err := s.service.ListSchedules(s.GetContext(), types.NewNoLimitScheduleFilter())
	s.NoError(err)
	s.Equal(2, resp.Pagination.Total)
	s.Len(resp.Items, 2)

	_, err = s.service.PauseSchedule(s.GetContext(), second.Schedule.ID)
	s.NoError(err)

	resp, err = s.service.ListSchedules(s.GetContext(), &types.ScheduleFilter{
		QueryFilter:      types.NewNoLimitQueryFilter(),
		ScheduleStatuses: []types.ScheduleStatus{types.ScheduleStatusActive},
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(first.Schedule.ID, resp.Items[0].Schedule.ID)
}

func (s *ScheduleServiceSuite) TestListAuditLogs_Limit() {
	created := s.createSchedule()

	_, err := s.service.PauseSchedule(s.GetContext(), created.Schedule.ID)
	s.NoError(err)
	_, err = s.service.ResumeSchedule(s.GetContext(), created.Schedule.ID)
	s.NoError(err)

	resp, err := s.service.ListAuditLogs(s.GetContext(), created.Schedule.ID, 2)
	s.NoError(err)
	s.Len(resp.Items, 2)
	s.Equal(types.AuditActionResumed, resp.Items[0].Entry.Action)

	_, err = s.service.ListAuditLogs(s.GetContext(), "sched_missing", 0)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ScheduleServiceSuite) TestListExecutions_EmptyForNewSchedule() {
	created := s.createSchedule()

	resp, err := s.service.ListExecutions(s.GetContext(), created.Schedule.ID)
	s.NoError(err)
	s.Empty(resp.Items)
}

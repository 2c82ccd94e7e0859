package service

import (
	"context"
	"time"

	"github.com/invoiceflow/invoiceflow/internal/api/dto"
	"github.com/invoiceflow/invoiceflow/internal/domain/auditlog"
	"github.com/invoiceflow/invoiceflow/internal/domain/schedule"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/samber/lo"
)

type ScheduleService interface {
	CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetSchedule(ctx context.Context, id string) (*dto.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, id string, req dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id string) error
	ListSchedules(ctx context.Context, filter *types.ScheduleFilter) (*dto.ListSchedulesResponse, error)

	PauseSchedule(ctx context.Context, id string) (*dto.ScheduleResponse, error)
	ResumeSchedule(ctx context.Context, id string) (*dto.ScheduleResponse, error)
	CancelSchedule(ctx context.Context, id string, req dto.CancelScheduleRequest) (*dto.ScheduleResponse, error)

	ListExecutions(ctx context.Context, scheduleID string) (*dto.ListExecutionsResponse, error)
	ListAuditLogs(ctx context.Context, scheduleID string, limit int) (*dto.ListAuditLogsResponse, error)
}

type scheduleService struct {
	ServiceParams
}

func NewScheduleService(params ServiceParams) ScheduleService {
	return &scheduleService{
		ServiceParams: params,
	}
}

func (s *scheduleService) CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cust, err := s.CustomerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	sched := req.ToSchedule(ctx, dto.ScheduleDefaults{
		PaymentTermsDays:       30,
		MaxRetryAttempts:       s.Config.Billing.DefaultMaxRetries,
		RetryIntervalHours:     s.Config.Billing.DefaultRetryIntervalHours,
		RetryBackoffMultiplier: s.Config.Billing.DefaultBackoffMultiplier,
	})
	if err := sched.Validate(); err != nil {
		return nil, err
	}

	if err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.ScheduleRepo.Create(txCtx, sched); err != nil {
			return err
		}
		return s.appendAudit(txCtx, sched.ID, types.AuditActionCreated, "schedule created", nil, auditValues(sched))
	}); err != nil {
		return nil, err
	}

	return dto.NewScheduleResponse(sched, cust), nil
}

func (s *scheduleService) GetSchedule(ctx context.Context, id string) (*dto.ScheduleResponse, error) {
	sched, err := s.ScheduleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewScheduleResponse(sched, nil), nil
}

func (s *scheduleService) UpdateSchedule(ctx context.Context, id string, req dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sched, err := s.ScheduleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if sched.ScheduleStatus.IsTerminal() {
		return nil, ierr.NewError("schedule is terminal").
			WithHint("Cancelled, completed and failed schedules cannot be updated").
			WithReportableDetails(map[string]any{
				"schedule_id":     id,
				"schedule_status": sched.ScheduleStatus,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	oldValues := auditValues(sched)

	if req.Description != nil {
		sched.Description = *req.Description
	}
	if req.EndDate != nil {
		sched.EndDate = req.EndDate
	}
	if req.BaseAmount != nil {
		sched.BaseAmount = *req.BaseAmount
	}
	if req.LineItems != nil {
		sched.LineItems = req.LineItems
	}
	if req.TaxRate != nil {
		sched.TaxRate = *req.TaxRate
	}
	if req.TaxInclusive != nil {
		sched.TaxInclusive = *req.TaxInclusive
	}
	if req.ProrationEnabled != nil {
		sched.ProrationEnabled = *req.ProrationEnabled
	}
	if req.InvoiceNotes != nil {
		sched.InvoiceNotes = *req.InvoiceNotes
	}
	if req.PaymentTermsDays != nil {
		sched.PaymentTermsDays = *req.PaymentTermsDays
	}
	if req.AutoCharge != nil {
		sched.AutoCharge = *req.AutoCharge
	}
	if req.RetryEnabled != nil {
		sched.RetryEnabled = *req.RetryEnabled
	}
	if req.MaxRetryAttempts != nil {
		sched.MaxRetryAttempts = *req.MaxRetryAttempts
	}
	if req.RetryIntervalHours != nil {
		sched.RetryIntervalHours = *req.RetryIntervalHours
	}
	if req.RetryBackoffMultiplier != nil {
		sched.RetryBackoffMultiplier = *req.RetryBackoffMultiplier
	}
	if req.Metadata != nil {
		sched.Metadata = req.Metadata
	}

	if err := sched.Validate(); err != nil {
		return nil, err
	}

	if err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.ScheduleRepo.Update(txCtx, sched); err != nil {
			return err
		}
		return s.appendAudit(txCtx, sched.ID, types.AuditActionUpdated, "schedule updated", oldValues, auditValues(sched))
	}); err != nil {
		return nil, err
	}

	return dto.NewScheduleResponse(sched, nil), nil
}

func (s *scheduleService) DeleteSchedule(ctx context.Context, id string) error {
	if _, err := s.ScheduleRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.ScheduleRepo.Delete(ctx, id)
}

func (s *scheduleService) ListSchedules(ctx context.Context, filter *types.ScheduleFilter) (*dto.ListSchedulesResponse, error) {
	if filter == nil {
		filter = types.NewScheduleFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	schedules, err := s.ScheduleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.ScheduleRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ScheduleResponse, len(schedules))
	for i, sched := range schedules {
		items[i] = dto.NewScheduleResponse(sched, nil)
	}

	if filter.GetExpand().Has(types.ExpandCustomer) {
		for _, item := range items {
			cust, err := s.CustomerRepo.Get(ctx, item.Schedule.CustomerID)
			if err != nil {
				s.Logger.Warnw("failed to expand customer on schedule",
					"schedule_id", item.Schedule.ID,
					"customer_id", item.Schedule.CustomerID,
					"error", err,
				)
				continue
			}
			item.Customer = &dto.CustomerResponse{Customer: cust}
		}
	}

	response := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &response, nil
}

// PauseSchedule stops billing without losing the cursor. Periods that
// come due while paused are billed after resume because NextRunDate is
// left untouched.
func (s *scheduleService) PauseSchedule(ctx context.Context, id string) (*dto.ScheduleResponse, error) {
	sched, err := s.ScheduleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if sched.ScheduleStatus != types.ScheduleStatusActive {
		return nil, ierr.NewError("schedule is not active").
			WithHint("Only active schedules can be paused").
			WithReportableDetails(map[string]any{
				"schedule_id":     id,
				"schedule_status": sched.ScheduleStatus,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	oldValues := map[string]interface{}{"schedule_status": sched.ScheduleStatus.String()}
	sched.ScheduleStatus = types.ScheduleStatusPaused
	sched.PausedAt = lo.ToPtr(time.Now().UTC())

	if err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.ScheduleRepo.Update(txCtx, sched); err != nil {
			return err
		}
		return s.appendAudit(txCtx, sched.ID, types.AuditActionPaused, "schedule paused", oldValues,
			map[string]interface{}{"schedule_status": sched.ScheduleStatus.String()})
	}); err != nil {
		return nil, err
	}

	return dto.NewScheduleResponse(sched, nil), nil
}

func (s *scheduleService) ResumeSchedule(ctx context.Context, id string) (*dto.ScheduleResponse, error) {
	sched, err := s.ScheduleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if sched.ScheduleStatus != types.ScheduleStatusPaused {
		return nil, ierr.NewError("schedule is not paused").
			WithHint("Only paused schedules can be resumed").
			WithReportableDetails(map[string]any{
				"schedule_id":     id,
				"schedule_status": sched.ScheduleStatus,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	oldValues := map[string]interface{}{"schedule_status": sched.ScheduleStatus.String()}
	sched.ScheduleStatus = types.ScheduleStatusActive
	sched.PausedAt = nil

	if err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.ScheduleRepo.Update(txCtx, sched); err != nil {
			return err
		}
		return s.appendAudit(txCtx, sched.ID, types.AuditActionResumed, "schedule resumed", oldValues,
			map[string]interface{}{"schedule_status": sched.ScheduleStatus.String()})
	}); err != nil {
		return nil, err
	}

	return dto.NewScheduleResponse(sched, nil), nil
}

func (s *scheduleService) CancelSchedule(ctx context.Context, id string, req dto.CancelScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sched, err := s.ScheduleRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if sched.ScheduleStatus.IsTerminal() {
		return nil, ierr.NewError("schedule is terminal").
			WithHint("The schedule is already in a terminal state").
			WithReportableDetails(map[string]any{
				"schedule_id":     id,
				"schedule_status": sched.ScheduleStatus,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	oldValues := map[string]interface{}{"schedule_status": sched.ScheduleStatus.String()}
	sched.ScheduleStatus = types.ScheduleStatusCancelled
	sched.CancelledAt = lo.ToPtr(time.Now().UTC())
	sched.CancellationReason = req.Reason

	if err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.ScheduleRepo.Update(txCtx, sched); err != nil {
			return err
		}
		return s.appendAudit(txCtx, sched.ID, types.AuditActionCancelled, "schedule cancelled", oldValues,
			map[string]interface{}{
				"schedule_status":     sched.ScheduleStatus.String(),
				"cancellation_reason": req.Reason,
			})
	}); err != nil {
		return nil, err
	}

	return dto.NewScheduleResponse(sched, nil), nil
}

func (s *scheduleService) ListExecutions(ctx context.Context, scheduleID string) (*dto.ListExecutionsResponse, error) {
	if _, err := s.ScheduleRepo.Get(ctx, scheduleID); err != nil {
		return nil, err
	}

	executions, err := s.ScheduleRepo.ListExecutions(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ExecutionResponse, len(executions))
	for i, e := range executions {
		items[i] = &dto.ExecutionResponse{Execution: e}
	}

	response := types.NewListResponse(items, len(items), len(items), 0)
	return &response, nil
}

func (s *scheduleService) ListAuditLogs(ctx context.Context, scheduleID string, limit int) (*dto.ListAuditLogsResponse, error) {
	if _, err := s.ScheduleRepo.Get(ctx, scheduleID); err != nil {
		return nil, err
	}

	entries, err := s.AuditLogRepo.ListBySchedule(ctx, scheduleID, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AuditLogResponse, len(entries))
	for i, e := range entries {
		items[i] = &dto.AuditLogResponse{Entry: e}
	}

	response := types.NewListResponse(items, len(items), len(items), 0)
	return &response, nil
}

func (s *scheduleService) appendAudit(ctx context.Context, scheduleID string, action types.AuditAction, description string, oldValues, newValues map[string]interface{}) error {
	return s.AuditLogRepo.Create(ctx, &auditlog.Entry{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_AUDIT_LOG),
		ScheduleID:  scheduleID,
		Action:      action,
		Description: description,
		OldValues:   oldValues,
		NewValues:   newValues,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	})
}

// auditValues captures the fields worth diffing in the audit trail
func auditValues(s *schedule.Schedule) map[string]interface{} {
	return map[string]interface{}{
		"schedule_status": s.ScheduleStatus.String(),
		"interval_type":   s.IntervalType.String(),
		"anchor_day":      s.AnchorDay,
		"next_run_date":   s.NextRunDate,
		"base_amount":     s.BaseAmount.String(),
		"tax_rate":        s.TaxRate.String(),
		"auto_charge":     s.AutoCharge,
		"retry_enabled":   s.RetryEnabled,
		"max_retries":     s.MaxRetryAttempts,
		"payment_terms":   s.PaymentTermsDays,
		"proration":       s.ProrationEnabled,
	}
}

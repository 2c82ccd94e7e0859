package service

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/invoiceflow/invoiceflow/internal/api/dto"
	"github.com/invoiceflow/invoiceflow/internal/domain/auditlog"
	"github.com/invoiceflow/invoiceflow/internal/domain/invoice"
	"github.com/invoiceflow/invoiceflow/internal/domain/schedule"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/samber/lo"
)

// BillingService drives due schedules through invoice generation. It is
// safe to run concurrently from several processes: the execution ledger's
// unique (tenant, schedule, period) constraint guarantees each period is
// invoiced at most once no matter how many drivers race.
type BillingService interface {
	ProcessDueSchedules(ctx context.Context, asOf time.Time) (*dto.ProcessingReport, error)
	ProcessSchedule(ctx context.Context, scheduleID string, asOf time.Time) (*dto.ProcessingReport, error)
}

type billingService struct {
	ServiceParams
	factory *InvoiceFactory
}

func NewBillingService(params ServiceParams) BillingService {
	return &billingService{
		ServiceParams: params,
		factory:       NewInvoiceFactory(),
	}
}

func (s *billingService) ProcessDueSchedules(ctx context.Context, asOf time.Time) (*dto.ProcessingReport, error) {
	report := &dto.ProcessingReport{}
	batchSize := s.Config.Billing.ProcessBatchSize

	s.Logger.Infow("processing due schedules", "as_of", asOf, "batch_size", batchSize)

	seen := make(map[string]bool)
	for {
		due, err := s.ScheduleRepo.ListDue(ctx, asOf, batchSize)
		if err != nil {
			return report, err
		}

		progressed := false
		for _, sched := range due {
			if seen[sched.ID] {
				continue
			}
			seen[sched.ID] = true
			progressed = true

			report.SchedulesExamined++
			s.processOneSchedule(ctx, sched.ID, asOf, report)
		}

		// A schedule that failed mid-catchup stays due, so stop once a
		// sweep yields nothing new
		if !progressed || len(due) < batchSize {
			break
		}
	}

	s.Logger.Infow("finished processing due schedules",
		"examined", report.SchedulesExamined,
		"generated", report.InvoicesGenerated,
		"skipped", report.PeriodsSkipped,
		"failed", report.SchedulesFailed,
		"charges_started", report.ChargesStarted,
	)

	return report, nil
}

func (s *billingService) ProcessSchedule(ctx context.Context, scheduleID string, asOf time.Time) (*dto.ProcessingReport, error) {
	report := &dto.ProcessingReport{SchedulesExamined: 1}
	s.processOneSchedule(ctx, scheduleID, asOf, report)
	return report, nil
}

// processOneSchedule catches the schedule up period by period until its
// cursor passes asOf. Errors are tallied, not propagated: one broken
// schedule must not stall the rest of the sweep.
func (s *billingService) processOneSchedule(ctx context.Context, scheduleID string, asOf time.Time, report *dto.ProcessingReport) {
	for {
		sched, err := s.ScheduleRepo.Get(ctx, scheduleID)
		if err != nil {
			s.Logger.Errorw("failed to load due schedule", "schedule_id", scheduleID, "error", err)
			report.SchedulesFailed++
			report.Outcomes = append(report.Outcomes, dto.ScheduleOutcome{
				ScheduleID: scheduleID,
				Outcome:    "failed",
				Error:      err.Error(),
			})
			return
		}

		if !sched.IsDue(asOf) {
			return
		}

		periodDate := sched.NextRunDate
		outcome, err := s.processPeriod(ctx, sched, periodDate)
		if err != nil {
			s.Logger.Errorw("failed to process billing period",
				"schedule_id", sched.ID,
				"period_date", periodDate,
				"error", err,
			)
			report.SchedulesFailed++
			report.Outcomes = append(report.Outcomes, dto.ScheduleOutcome{
				ScheduleID: sched.ID,
				PeriodDate: periodDate,
				Outcome:    "failed",
				Error:      err.Error(),
			})
			return
		}

		switch outcome.status {
		case periodGenerated:
			report.InvoicesGenerated++
			if outcome.chargeStarted {
				report.ChargesStarted++
			}
			report.Outcomes = append(report.Outcomes, dto.ScheduleOutcome{
				ScheduleID: sched.ID,
				PeriodDate: periodDate,
				Outcome:    "generated",
				InvoiceID:  outcome.invoiceID,
			})
		case periodSkipped, periodCompleted:
			report.PeriodsSkipped++
			if outcome.status == periodCompleted {
				report.Outcomes = append(report.Outcomes, dto.ScheduleOutcome{
					ScheduleID: sched.ID,
					PeriodDate: periodDate,
					Outcome:    "completed",
				})
				return
			}
			report.Outcomes = append(report.Outcomes, dto.ScheduleOutcome{
				ScheduleID: sched.ID,
				PeriodDate: periodDate,
				Outcome:    "skipped",
			})
		case periodConflict, periodInFlight:
			// another driver owns this period
			return
		}
	}
}

type periodStatus int

const (
	periodGenerated periodStatus = iota
	periodSkipped
	periodCompleted
	periodConflict
	periodInFlight
)

type periodOutcome struct {
	status        periodStatus
	chargeStarted bool
	invoiceID     *string
}

// processingClaimTTL bounds how long an unsettled `processing` row is
// honored. Claims commit together with their invoice, so a row older than
// this is debris from a crashed driver and gets retaken.
const processingClaimTTL = time.Hour

func claimIsStale(exec *schedule.Execution) bool {
	return time.Since(exec.UpdatedAt) > processingClaimTTL
}

// errPeriodClaimed rolls the billing transaction back when a concurrent
// driver wins the insert race on the execution ledger
var errPeriodClaimed = errors.New("billing period claimed by another driver")

// processPeriod handles exactly one billing period of the schedule. The
// idempotency claim, the invoice write and the cursor advance commit in
// one transaction: a crash mid-cycle leaves no trace at all and the next
// sweep simply retries the period.
func (s *billingService) processPeriod(ctx context.Context, sched *schedule.Schedule, periodDate time.Time) (*periodOutcome, error) {
	// Past the end date the schedule is finished: record a skipped
	// ledger row so the decision itself is auditable
	if sched.IsEnded(periodDate) {
		if err := s.completeSchedule(ctx, sched, periodDate); err != nil {
			return nil, err
		}
		return &periodOutcome{status: periodCompleted}, nil
	}

	periodEnd, err := sched.NextPeriodDate(periodDate)
	if err != nil {
		return nil, err
	}

	// A prior ledger row settles most periods before any invoice work
	prior, err := s.ScheduleRepo.GetExecutionByPeriod(ctx, sched.ID, periodDate)
	if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}
	if prior != nil {
		switch prior.ExecutionStatus {
		case types.ExecutionStatusProcessing:
			if !claimIsStale(prior) {
				return &periodOutcome{status: periodInFlight}, nil
			}
			// stale claim from a crashed driver, retaken below
		case types.ExecutionStatusFailed:
			// retaken below so a transient error does not permanently
			// wedge the period
		default:
			// generated or skipped by an earlier run; make sure the
			// cursor moved past it
			if !sched.NextRunDate.After(periodDate) {
				if err := s.advanceCursor(ctx, sched, periodDate, periodEnd); err != nil {
					return nil, err
				}
			}
			return &periodOutcome{status: periodSkipped}, nil
		}
	}

	cust, err := s.CustomerRepo.Get(ctx, sched.CustomerID)
	if err != nil {
		s.failExecution(ctx, sched, prior, periodDate, periodEnd, err)
		return nil, err
	}

	inv, err := s.factory.BuildInvoice(sched, cust, periodDate, periodEnd)
	if err != nil {
		s.failExecution(ctx, sched, prior, periodDate, periodEnd, err)
		return nil, err
	}
	inv.BaseModel = types.GetDefaultBaseModel(ctx)

	var exec *schedule.Execution
	if err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		var claimed bool
		var err error
		exec, claimed, err = s.claimPeriod(txCtx, sched, prior, periodDate, periodEnd)
		if err != nil {
			return err
		}
		if !claimed {
			return errPeriodClaimed
		}

		if err := s.InvoiceRepo.CreateWithLineItems(txCtx, inv); err != nil {
			return err
		}

		exec.ExecutionStatus = types.ExecutionStatusGenerated
		exec.InvoiceID = &inv.ID
		exec.ErrorMessage = ""
		exec.AmountGenerated = inv.Total
		if hasProratedLine(inv) {
			exec.ProratedAmount = inv.Total
		}
		if err := s.ScheduleRepo.UpdateExecution(txCtx, exec); err != nil {
			return err
		}

		// Re-read the schedule row before moving the cursor: a status
		// flip since the sweep loaded it (pause, cancel) must not be
		// overwritten by a full-row update
		fresh, err := s.ScheduleRepo.Get(txCtx, sched.ID)
		if err != nil {
			return err
		}
		fresh.LastRunDate = lo.ToPtr(periodDate)
		fresh.NextRunDate = periodEnd
		fresh.TotalInvoicesGenerated++
		fresh.TotalAmountBilled = fresh.TotalAmountBilled.Add(inv.Total)
		if err := s.ScheduleRepo.Update(txCtx, fresh); err != nil {
			return err
		}
		*sched = *fresh

		return s.AuditLogRepo.Create(txCtx, &auditlog.Entry{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_AUDIT_LOG),
			ScheduleID:  sched.ID,
			Action:      types.AuditActionInvoiceGenerated,
			Description: "invoice generated for billing period",
			InvoiceID:   &inv.ID,
			ExecutionID: &exec.ID,
			NewValues: map[string]interface{}{
				"invoice_number": inv.InvoiceNumber,
				"period_date":    periodDate,
				"total":          inv.Total.String(),
			},
			BaseModel: types.GetDefaultBaseModel(ctx),
		})
	}); err != nil {
		if errors.Is(err, errPeriodClaimed) {
			return &periodOutcome{status: periodConflict}, nil
		}
		s.failExecution(ctx, sched, prior, periodDate, periodEnd, err)
		return nil, err
	}

	outcome := &periodOutcome{status: periodGenerated, invoiceID: &inv.ID}

	// Collection runs after the billing transaction committed: a gateway
	// outage must never roll back a generated invoice
	if sched.AutoCharge {
		processor := NewPaymentProcessorService(s.ServiceParams)
		if _, err := processor.CollectInvoice(ctx, inv, sched); err != nil {
			s.Logger.Errorw("failed to start collection for invoice",
				"invoice_id", inv.ID,
				"schedule_id", sched.ID,
				"error", err,
			)
		} else {
			outcome.chargeStarted = true
		}
	}

	return outcome, nil
}

// claimPeriod takes the idempotency claim for one period inside the
// caller's transaction. A non-nil prior is a failed or stale processing
// row being retaken; otherwise a fresh row is inserted, and a constraint
// conflict means a concurrent driver won the period.
func (s *billingService) claimPeriod(ctx context.Context, sched *schedule.Schedule, prior *schedule.Execution, periodDate, periodEnd time.Time) (*schedule.Execution, bool, error) {
	if prior != nil {
		prior.ExecutionStatus = types.ExecutionStatusProcessing
		prior.ErrorMessage = ""
		if err := s.ScheduleRepo.UpdateExecution(ctx, prior); err != nil {
			return nil, false, err
		}
		return prior, true, nil
	}

	exec := &schedule.Execution{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SCHEDULE_EXECUTION),
		ScheduleID:      sched.ID,
		PeriodDate:      periodDate,
		PeriodStart:     periodDate,
		PeriodEnd:       periodEnd,
		ExecutionStatus: types.ExecutionStatusProcessing,
		BaseModel:       types.GetDefaultBaseModel(ctx),
	}
	if err := s.ScheduleRepo.CreateExecution(ctx, exec); err != nil {
		if ierr.IsAlreadyExists(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return exec, true, nil
}

// advanceCursor moves the schedule's billing cursor past an already
// settled period
func (s *billingService) advanceCursor(ctx context.Context, sched *schedule.Schedule, periodDate, periodEnd time.Time) error {
	sched.LastRunDate = lo.ToPtr(periodDate)
	sched.NextRunDate = periodEnd
	return s.ScheduleRepo.Update(ctx, sched)
}

// completeSchedule records the end-of-life transition: a skipped ledger
// row for the would-be period plus the terminal status flip
func (s *billingService) completeSchedule(ctx context.Context, sched *schedule.Schedule, periodDate time.Time) error {
	return s.DB.WithTx(ctx, func(txCtx context.Context) error {
		exec := &schedule.Execution{
			ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SCHEDULE_EXECUTION),
			ScheduleID:      sched.ID,
			PeriodDate:      periodDate,
			PeriodStart:     periodDate,
			PeriodEnd:       periodDate,
			ExecutionStatus: types.ExecutionStatusSkipped,
			ErrorMessage:    "schedule end date reached",
			BaseModel:       types.GetDefaultBaseModel(txCtx),
		}
		if err := s.ScheduleRepo.CreateExecution(txCtx, exec); err != nil {
			if !ierr.IsAlreadyExists(err) {
				return err
			}
		}

		oldStatus := sched.ScheduleStatus
		sched.ScheduleStatus = types.ScheduleStatusCompleted
		if err := s.ScheduleRepo.Update(txCtx, sched); err != nil {
			return err
		}

		return s.AuditLogRepo.Create(txCtx, &auditlog.Entry{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_AUDIT_LOG),
			ScheduleID:  sched.ID,
			Action:      types.AuditActionCompleted,
			Description: "schedule completed, end date reached",
			ExecutionID: &exec.ID,
			OldValues:   map[string]interface{}{"schedule_status": oldStatus.String()},
			NewValues:   map[string]interface{}{"schedule_status": sched.ScheduleStatus.String()},
			BaseModel:   types.GetDefaultBaseModel(txCtx),
		})
	})
}

// failExecution records the period as failed and appends the audit entry.
// The billing transaction has rolled back by now, so the failed row is
// written in its own operation and the cursor stays put for the next sweep
// to retry the period.
func (s *billingService) failExecution(ctx context.Context, sched *schedule.Schedule, prior *schedule.Execution, periodDate, periodEnd time.Time, cause error) {
	exec := prior
	if exec == nil {
		exec = &schedule.Execution{
			ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SCHEDULE_EXECUTION),
			ScheduleID:      sched.ID,
			PeriodDate:      periodDate,
			PeriodStart:     periodDate,
			PeriodEnd:       periodEnd,
			ExecutionStatus: types.ExecutionStatusFailed,
			ErrorMessage:    cause.Error(),
			BaseModel:       types.GetDefaultBaseModel(ctx),
		}
		if err := s.ScheduleRepo.CreateExecution(ctx, exec); err != nil {
			if ierr.IsAlreadyExists(err) {
				// another driver holds the period now and will settle it
				return
			}
			s.Logger.Errorw("failed to record failed execution",
				"schedule_id", sched.ID,
				"period_date", periodDate,
				"error", err,
			)
			return
		}
	} else {
		exec.ExecutionStatus = types.ExecutionStatusFailed
		exec.ErrorMessage = cause.Error()
		if err := s.ScheduleRepo.UpdateExecution(ctx, exec); err != nil {
			s.Logger.Errorw("failed to mark execution failed",
				"execution_id", exec.ID,
				"schedule_id", sched.ID,
				"error", err,
			)
		}
	}

	if err := s.AuditLogRepo.Create(ctx, &auditlog.Entry{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_AUDIT_LOG),
		ScheduleID:  sched.ID,
		Action:      types.AuditActionExecutionFailed,
		Description: "billing period failed",
		ExecutionID: &exec.ID,
		NewValues: map[string]interface{}{
			"period_date": exec.PeriodDate,
			"error":       cause.Error(),
		},
		BaseModel: types.GetDefaultBaseModel(ctx),
	}); err != nil {
		s.Logger.Errorw("failed to append audit entry for failed execution",
			"execution_id", exec.ID,
			"error", err,
		)
	}
}

func hasProratedLine(inv *invoice.Invoice) bool {
	for _, li := range inv.LineItems {
		if li.Prorated {
			return true
		}
	}
	return false
}

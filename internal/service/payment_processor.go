package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/invoiceflow/invoiceflow/internal/api/dto"
	"github.com/invoiceflow/invoiceflow/internal/domain/auditlog"
	"github.com/invoiceflow/invoiceflow/internal/domain/invoice"
	"github.com/invoiceflow/invoiceflow/internal/domain/payment"
	"github.com/invoiceflow/invoiceflow/internal/domain/schedule"
	"github.com/invoiceflow/invoiceflow/internal/email"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/gateway"
	"github.com/invoiceflow/invoiceflow/internal/idempotency"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/samber/lo"
)

// PaymentProcessorService drives payment collection with bounded
// exponential retries. Each attempt is its own ledger row; the parent
// payment carries the retry cursor so the retry sweep needs no timers.
type PaymentProcessorService interface {
	// CollectInvoice creates (or finds) the payment for an invoice and
	// runs the first charge attempt
	CollectInvoice(ctx context.Context, inv *invoice.Invoice, sched *schedule.Schedule) (*payment.Payment, error)
	// AttemptCharge runs one charge attempt against the gateway and
	// advances the payment state machine
	AttemptCharge(ctx context.Context, paymentID string) (*payment.Payment, error)
	// ProcessDueRetries sweeps payments whose retry cursor is due
	ProcessDueRetries(ctx context.Context, asOf time.Time) (*dto.RetryReport, error)
}

type paymentProcessorService struct {
	ServiceParams
}

func NewPaymentProcessorService(params ServiceParams) PaymentProcessorService {
	return &paymentProcessorService{
		ServiceParams: params,
	}
}

func (s *paymentProcessorService) CollectInvoice(ctx context.Context, inv *invoice.Invoice, sched *schedule.Schedule) (*payment.Payment, error) {
	key := s.IdempGen.GenerateKey(idempotency.ScopePayment, map[string]interface{}{
		"invoice_id": inv.ID,
	})

	existing, err := s.PaymentRepo.GetByIdempotencyKey(ctx, key)
	if err != nil && !ierr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	maxRetries := 0
	if sched != nil && sched.RetryEnabled {
		maxRetries = sched.MaxRetryAttempts
	}

	p := &payment.Payment{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT),
		IdempotencyKey: key,
		InvoiceID:      inv.ID,
		Amount:         inv.Total,
		Currency:       inv.Currency,
		PaymentStatus:  types.PaymentStatusPending,
		PaymentGateway: lo.ToPtr(s.Gateway.Name()),
		MaxRetries:     maxRetries,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
	if sched != nil {
		p.ScheduleID = &sched.ID
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.PaymentRepo.Create(ctx, p); err != nil {
		// another driver created it between our read and write
		if ierr.IsAlreadyExists(err) {
			return s.PaymentRepo.GetByIdempotencyKey(ctx, key)
		}
		return nil, err
	}

	return s.AttemptCharge(ctx, p.ID)
}

func (s *paymentProcessorService) AttemptCharge(ctx context.Context, paymentID string) (*payment.Payment, error) {
	p, err := s.PaymentRepo.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if p.PaymentStatus.IsTerminal() {
		return nil, ierr.NewError("payment is terminal").
			WithHint("No further attempts can be made for this payment").
			WithReportableDetails(map[string]any{
				"payment_id":     p.ID,
				"payment_status": p.PaymentStatus,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	inv, err := s.InvoiceRepo.Get(ctx, p.InvoiceID)
	if err != nil {
		return nil, err
	}

	cust, err := s.CustomerRepo.Get(ctx, inv.CustomerID)
	if err != nil {
		return nil, err
	}

	attemptNumber := p.RetryCount + 1
	attempt := &payment.Attempt{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PAYMENT_ATTEMPT),
		PaymentID:     p.ID,
		AttemptNumber: attemptNumber,
		AttemptStatus: types.PaymentStatusProcessing,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
	if err := s.PaymentRepo.CreateAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	p.PaymentStatus = types.PaymentStatusProcessing
	if err := s.PaymentRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("attempting charge",
		"payment_id", p.ID,
		"invoice_id", inv.ID,
		"attempt_number", attemptNumber,
		"amount", p.Amount,
		"currency", p.Currency,
	)

	req := &gateway.ChargeRequest{
		PaymentID:  p.ID,
		InvoiceID:  inv.ID,
		CustomerID: cust.ID,
		Amount:     p.Amount,
		Currency:   p.Currency,
		Metadata: types.Metadata{
			"invoice_number": inv.InvoiceNumber,
			"attempt":        fmt.Sprintf("%d", attemptNumber),
		},
	}
	if cust.GatewayCustomerID != nil {
		req.GatewayCustomerID = *cust.GatewayCustomerID
	}
	if cust.DefaultPaymentMethodID != nil {
		req.PaymentMethodID = *cust.DefaultPaymentMethodID
	}

	result, chargeErr := s.Gateway.Charge(ctx, req)
	if chargeErr == nil {
		return p, s.settleSuccess(ctx, p, inv, attempt, result)
	}
	return p, s.settleFailure(ctx, p, inv, attempt, chargeErr)
}

func (s *paymentProcessorService) settleSuccess(ctx context.Context, p *payment.Payment, inv *invoice.Invoice, attempt *payment.Attempt, result *gateway.ChargeResult) error {
	now := time.Now().UTC()

	return s.DB.WithTx(ctx, func(txCtx context.Context) error {
		attempt.AttemptStatus = types.PaymentStatusSucceeded
		attempt.GatewayAttemptID = &result.GatewayPaymentID
		if err := s.PaymentRepo.UpdateAttempt(txCtx, attempt); err != nil {
			return err
		}

		p.PaymentStatus = types.PaymentStatusSucceeded
		p.GatewayPaymentID = &result.GatewayPaymentID
		p.RetryCount = attempt.AttemptNumber
		p.SucceededAt = &now
		p.NextRetryAt = nil
		p.ErrorMessage = nil
		if err := s.PaymentRepo.Update(txCtx, p); err != nil {
			return err
		}

		inv.RecordPayment(p.Amount, now)
		if err := s.InvoiceRepo.Update(txCtx, inv); err != nil {
			return err
		}

		if p.ScheduleID == nil {
			return nil
		}
		return s.AuditLogRepo.Create(txCtx, &auditlog.Entry{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_AUDIT_LOG),
			ScheduleID:  *p.ScheduleID,
			Action:      types.AuditActionPaymentSucceeded,
			Description: "payment collected",
			InvoiceID:   &inv.ID,
			PaymentID:   &p.ID,
			NewValues: map[string]interface{}{
				"amount":         p.Amount.String(),
				"attempt_number": attempt.AttemptNumber,
			},
			BaseModel: types.GetDefaultBaseModel(txCtx),
		})
	})
}

func (s *paymentProcessorService) settleFailure(ctx context.Context, p *payment.Payment, inv *invoice.Invoice, attempt *payment.Attempt, chargeErr error) error {
	now := time.Now().UTC()
	p.RetryCount = attempt.AttemptNumber
	p.FailedAt = &now
	p.ErrorMessage = lo.ToPtr(chargeErr.Error())

	switch {
	case ierr.IsPaymentTerminal(chargeErr):
		p.PaymentStatus = types.PaymentStatusFailedTerminal
		p.NextRetryAt = nil
	case p.HasRetryBudget():
		p.PaymentStatus = types.PaymentStatusFailed
		p.NextRetryAt = lo.ToPtr(now.Add(s.retryDelay(ctx, p)))
	default:
		p.PaymentStatus = types.PaymentStatusExhausted
		p.NextRetryAt = nil
	}

	attempt.AttemptStatus = types.PaymentStatusFailed
	if p.PaymentStatus == types.PaymentStatusFailedTerminal {
		attempt.AttemptStatus = types.PaymentStatusFailedTerminal
	}
	attempt.NextRetryAt = p.NextRetryAt
	attempt.ErrorMessage = p.ErrorMessage

	s.Logger.Warnw("charge attempt failed",
		"payment_id", p.ID,
		"attempt_number", attempt.AttemptNumber,
		"payment_status", p.PaymentStatus,
		"next_retry_at", p.NextRetryAt,
		"error", chargeErr,
	)

	if err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.PaymentRepo.UpdateAttempt(txCtx, attempt); err != nil {
			return err
		}
		if err := s.PaymentRepo.Update(txCtx, p); err != nil {
			return err
		}

		inv.PaymentStatus = types.InvoicePaymentStatusFailed
		if err := s.InvoiceRepo.Update(txCtx, inv); err != nil {
			return err
		}

		if p.ScheduleID == nil {
			return nil
		}

		action := types.AuditActionPaymentFailed
		if p.PaymentStatus == types.PaymentStatusExhausted {
			action = types.AuditActionRetriesExhausted
		}
		return s.AuditLogRepo.Create(txCtx, &auditlog.Entry{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_AUDIT_LOG),
			ScheduleID:  *p.ScheduleID,
			Action:      action,
			Description: "payment attempt failed",
			InvoiceID:   &inv.ID,
			PaymentID:   &p.ID,
			NewValues: map[string]interface{}{
				"attempt_number": attempt.AttemptNumber,
				"payment_status": p.PaymentStatus.String(),
				"error":          chargeErr.Error(),
			},
			BaseModel: types.GetDefaultBaseModel(txCtx),
		})
	}); err != nil {
		return err
	}

	if p.PaymentStatus == types.PaymentStatusExhausted {
		s.handleExhausted(ctx, p, inv)
	}

	return nil
}

// retryDelay computes the exponential backoff before the next attempt:
// interval_hours scaled by multiplier^(failures-1)
func (s *paymentProcessorService) retryDelay(ctx context.Context, p *payment.Payment) time.Duration {
	intervalHours := s.Config.Billing.DefaultRetryIntervalHours
	multiplier := s.Config.Billing.DefaultBackoffMultiplier

	if p.ScheduleID != nil {
		if sched, err := s.ScheduleRepo.Get(ctx, *p.ScheduleID); err == nil {
			intervalHours = sched.RetryIntervalHours
			multiplier = sched.RetryBackoffMultiplier
		}
	}

	hours := float64(intervalHours) * math.Pow(multiplier, float64(p.RetryCount-1))
	return time.Duration(hours * float64(time.Hour))
}

// handleExhausted flips the schedule to failed and sends the one-off
// notification. The notification flag makes repeated sweeps idempotent.
func (s *paymentProcessorService) handleExhausted(ctx context.Context, p *payment.Payment, inv *invoice.Invoice) {
	if p.ScheduleID == nil {
		return
	}

	sched, err := s.ScheduleRepo.Get(ctx, *p.ScheduleID)
	if err != nil {
		s.Logger.Errorw("failed to load schedule after retry exhaustion",
			"schedule_id", *p.ScheduleID,
			"payment_id", p.ID,
			"error", err,
		)
		return
	}

	if sched.FailureNotificationSent {
		return
	}

	sched.ScheduleStatus = types.ScheduleStatusFailed
	sched.FailureNotificationSent = true
	if err := s.ScheduleRepo.Update(ctx, sched); err != nil {
		s.Logger.Errorw("failed to mark schedule failed after retry exhaustion",
			"schedule_id", sched.ID,
			"error", err,
		)
		return
	}

	cust, err := s.CustomerRepo.Get(ctx, sched.CustomerID)
	if err != nil || cust.Email == "" {
		return
	}

	_, err = s.EmailSender.SendEmail(ctx, email.SendEmailRequest{
		ToAddress: cust.Email,
		Subject:   fmt.Sprintf("Payment failed for invoice %s", inv.InvoiceNumber),
		Text: fmt.Sprintf(
			"We were unable to collect payment for invoice %s after %d attempts. "+
				"Recurring billing has been suspended until the payment method is updated.",
			inv.InvoiceNumber, p.RetryCount,
		),
	})
	if err != nil {
		s.Logger.Errorw("failed to send exhaustion notification",
			"schedule_id", sched.ID,
			"customer_id", cust.ID,
			"error", err,
		)
	}
}

func (s *paymentProcessorService) ProcessDueRetries(ctx context.Context, asOf time.Time) (*dto.RetryReport, error) {
	report := &dto.RetryReport{}
	batchSize := s.Config.Billing.ProcessBatchSize

	s.Logger.Infow("processing due payment retries", "as_of", asOf, "batch_size", batchSize)

	seen := make(map[string]bool)
	for {
		due, err := s.PaymentRepo.ListDueRetries(ctx, asOf, batchSize)
		if err != nil {
			return report, err
		}

		progressed := false
		for _, p := range due {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			progressed = true
			report.PaymentsExamined++

			updated, err := s.AttemptCharge(ctx, p.ID)
			if err != nil {
				s.Logger.Errorw("failed to run due retry",
					"payment_id", p.ID,
					"error", err,
				)
				continue
			}

			switch updated.PaymentStatus {
			case types.PaymentStatusSucceeded:
				report.Succeeded++
			case types.PaymentStatusFailed:
				report.RetriesScheduled++
			case types.PaymentStatusFailedTerminal:
				report.TerminalFailures++
			case types.PaymentStatusExhausted:
				report.Exhausted++
			}
		}

		if !progressed || len(due) < batchSize {
			break
		}
	}

	s.Logger.Infow("finished processing due payment retries",
		"examined", report.PaymentsExamined,
		"succeeded", report.Succeeded,
		"rescheduled", report.RetriesScheduled,
		"terminal", report.TerminalFailures,
		"exhausted", report.Exhausted,
	)

	return report, nil
}

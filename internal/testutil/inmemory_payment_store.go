package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/invoiceflow/invoiceflow/internal/domain/payment"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/samber/lo"
)

// InMemoryPaymentStore implements payment.Repository. Idempotency keys
// and attempt numbers are unique per tenant, matching the database
// indexes.
type InMemoryPaymentStore struct {
	*InMemoryStore[*payment.Payment]
	attempts *InMemoryStore[*payment.Attempt]
}

// NewInMemoryPaymentStore creates a new in-memory payment store
func NewInMemoryPaymentStore() *InMemoryPaymentStore {
	return &InMemoryPaymentStore{
		InMemoryStore: NewInMemoryStore[*payment.Payment](),
		attempts:      NewInMemoryStore[*payment.Attempt](),
	}
}

func copyPayment(p *payment.Payment) *payment.Payment {
	if p == nil {
		return nil
	}

	out := *p
	if p.ScheduleID != nil {
		out.ScheduleID = lo.ToPtr(*p.ScheduleID)
	}
	if p.PaymentGateway != nil {
		out.PaymentGateway = lo.ToPtr(*p.PaymentGateway)
	}
	if p.GatewayPaymentID != nil {
		out.GatewayPaymentID = lo.ToPtr(*p.GatewayPaymentID)
	}
	if p.NextRetryAt != nil {
		out.NextRetryAt = lo.ToPtr(*p.NextRetryAt)
	}
	if p.SucceededAt != nil {
		out.SucceededAt = lo.ToPtr(*p.SucceededAt)
	}
	if p.FailedAt != nil {
		out.FailedAt = lo.ToPtr(*p.FailedAt)
	}
	if p.ErrorMessage != nil {
		out.ErrorMessage = lo.ToPtr(*p.ErrorMessage)
	}
	out.Attempts = nil
	return &out
}

func copyAttempt(a *payment.Attempt) *payment.Attempt {
	if a == nil {
		return nil
	}

	out := *a
	if a.GatewayAttemptID != nil {
		out.GatewayAttemptID = lo.ToPtr(*a.GatewayAttemptID)
	}
	if a.NextRetryAt != nil {
		out.NextRetryAt = lo.ToPtr(*a.NextRetryAt)
	}
	if a.ErrorMessage != nil {
		out.ErrorMessage = lo.ToPtr(*a.ErrorMessage)
	}
	return &out
}

func (s *InMemoryPaymentStore) Create(ctx context.Context, p *payment.Payment) error {
	if p.IdempotencyKey != "" {
		existing, err := s.GetByIdempotencyKey(ctx, p.IdempotencyKey)
		if err != nil && !ierr.IsNotFound(err) {
			return err
		}
		if existing != nil {
			return ierr.NewError("payment already exists for idempotency key").
				WithHint("A payment with this idempotency key already exists").
				Mark(ierr.ErrAlreadyExists)
		}
	}

	if err := s.InMemoryStore.Create(ctx, p.ID, copyPayment(p)); err != nil {
		return ierr.WithError(err).
			WithHint("Payment with this id already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryPaymentStore) Get(ctx context.Context, id string) (*payment.Payment, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || p.Status == types.StatusDeleted {
		return nil, ierr.NewError("payment not found").
			WithHint("Payment not found").
			WithReportableDetails(map[string]any{
				"payment_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyPayment(p), nil
}

func (s *InMemoryPaymentStore) Update(ctx context.Context, p *payment.Payment) error {
	if err := s.InMemoryStore.Update(ctx, p.ID, copyPayment(p)); err != nil {
		return ierr.WithError(err).
			WithHint("Payment not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryPaymentStore) List(ctx context.Context, filter *types.PaymentFilter) ([]*payment.Payment, error) {
	items, err := s.InMemoryStore.List(ctx, filter, paymentFilterFn, paymentSortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(p *payment.Payment, _ int) *payment.Payment {
		return copyPayment(p)
	}), nil
}

func (s *InMemoryPaymentStore) Count(ctx context.Context, filter *types.PaymentFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, paymentFilterFn)
}

func (s *InMemoryPaymentStore) GetByIdempotencyKey(ctx context.Context, key string) (*payment.Payment, error) {
	filterFn := func(ctx context.Context, p *payment.Payment, _ interface{}) bool {
		return p.TenantID == types.GetTenantID(ctx) && p.IdempotencyKey == key
	}

	items, err := s.InMemoryStore.List(ctx, nil, filterFn, nil)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ierr.NewError("payment not found").
			WithHint("No payment found for this idempotency key").
			Mark(ierr.ErrNotFound)
	}
	return copyPayment(items[0]), nil
}

func (s *InMemoryPaymentStore) ListDueRetries(ctx context.Context, asOf time.Time, limit int) ([]*payment.Payment, error) {
	filterFn := func(ctx context.Context, p *payment.Payment, _ interface{}) bool {
		if p.TenantID != types.GetTenantID(ctx) {
			return false
		}
		if p.Status == types.StatusDeleted {
			return false
		}
		if p.PaymentStatus != types.PaymentStatusPending && p.PaymentStatus != types.PaymentStatusFailed {
			return false
		}
		return p.NextRetryAt != nil && !p.NextRetryAt.After(asOf)
	}

	items, err := s.InMemoryStore.List(ctx, nil, filterFn, nil)
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].NextRetryAt.Before(*items[j].NextRetryAt)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return lo.Map(items, func(p *payment.Payment, _ int) *payment.Payment {
		return copyPayment(p)
	}), nil
}

func (s *InMemoryPaymentStore) CreateAttempt(ctx context.Context, a *payment.Attempt) error {
	// Mirror the unique (payment, attempt_number) index
	existing, err := s.ListAttempts(ctx, a.PaymentID)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if e.AttemptNumber == a.AttemptNumber {
			return ierr.NewError("attempt number already exists").
				WithHint("This attempt has already been recorded").
				WithReportableDetails(map[string]any{
					"payment_id":     a.PaymentID,
					"attempt_number": a.AttemptNumber,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
	}

	if err := s.attempts.Create(ctx, a.ID, copyAttempt(a)); err != nil {
		return ierr.WithError(err).
			WithHint("Attempt with this id already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryPaymentStore) GetAttempt(ctx context.Context, id string) (*payment.Attempt, error) {
	a, err := s.attempts.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Attempt not found").
			Mark(ierr.ErrNotFound)
	}
	return copyAttempt(a), nil
}

func (s *InMemoryPaymentStore) UpdateAttempt(ctx context.Context, a *payment.Attempt) error {
	if err := s.attempts.Update(ctx, a.ID, copyAttempt(a)); err != nil {
		return ierr.WithError(err).
			WithHint("Attempt not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryPaymentStore) ListAttempts(ctx context.Context, paymentID string) ([]*payment.Attempt, error) {
	filterFn := func(ctx context.Context, a *payment.Attempt, _ interface{}) bool {
		return a.TenantID == types.GetTenantID(ctx) && a.PaymentID == paymentID
	}

	items, err := s.attempts.List(ctx, nil, filterFn, nil)
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].AttemptNumber < items[j].AttemptNumber
	})

	return lo.Map(items, func(a *payment.Attempt, _ int) *payment.Attempt {
		return copyAttempt(a)
	}), nil
}

func (s *InMemoryPaymentStore) GetLatestAttempt(ctx context.Context, paymentID string) (*payment.Attempt, error) {
	attempts, err := s.ListAttempts(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if len(attempts) == 0 {
		return nil, ierr.NewError("attempt not found").
			WithHint("No attempts recorded for this payment").
			Mark(ierr.ErrNotFound)
	}
	return attempts[len(attempts)-1], nil
}

// paymentFilterFn implements filtering logic for payments
func paymentFilterFn(ctx context.Context, p *payment.Payment, filter interface{}) bool {
	tenantID := types.GetTenantID(ctx)
	if tenantID != "" && p.TenantID != tenantID {
		return false
	}

	f, ok := filter.(*types.PaymentFilter)
	if !ok || f == nil {
		return p.Status != types.StatusDeleted
	}

	if p.Status == types.StatusDeleted {
		return false
	}

	if len(f.PaymentIDs) > 0 && !lo.Contains(f.PaymentIDs, p.ID) {
		return false
	}
	if len(f.InvoiceIDs) > 0 && !lo.Contains(f.InvoiceIDs, p.InvoiceID) {
		return false
	}
	if len(f.ScheduleIDs) > 0 {
		if p.ScheduleID == nil || !lo.Contains(f.ScheduleIDs, *p.ScheduleID) {
			return false
		}
	}
	if len(f.PaymentStatuses) > 0 && !lo.Contains(f.PaymentStatuses, p.PaymentStatus) {
		return false
	}
	if f.RetryDueBefore != nil {
		if p.NextRetryAt == nil || p.NextRetryAt.After(*f.RetryDueBefore) {
			return false
		}
	}

	if f.TimeRangeFilter != nil {
		if f.StartTime != nil && p.CreatedAt.Before(*f.StartTime) {
			return false
		}
		if f.EndTime != nil && p.CreatedAt.After(*f.EndTime) {
			return false
		}
	}

	return true
}

// paymentSortFn implements sorting logic for payments
func paymentSortFn(i, j *payment.Payment) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

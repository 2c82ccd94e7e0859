package ent

import (
	"context"
	"time"

	"github.com/invoiceflow/invoiceflow/ent"
	"github.com/invoiceflow/invoiceflow/ent/payment"
	"github.com/invoiceflow/invoiceflow/ent/paymentattempt"
	"github.com/invoiceflow/invoiceflow/internal/cache"
	domainPayment "github.com/invoiceflow/invoiceflow/internal/domain/payment"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/logger"
	"github.com/invoiceflow/invoiceflow/internal/postgres"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

type paymentRepository struct {
	client    postgres.IClient
	log       *logger.Logger
	queryOpts PaymentQueryOptions
	cache     cache.Cache
}

func NewPaymentRepository(client postgres.IClient, log *logger.Logger, cache cache.Cache) domainPayment.Repository {
	return &paymentRepository{
		client:    client,
		log:       log,
		queryOpts: PaymentQueryOptions{},
		cache:     cache,
	}
}

func (r *paymentRepository) Create(ctx context.Context, p *domainPayment.Payment) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating payment",
		"payment_id", p.ID,
		"tenant_id", p.TenantID,
		"invoice_id", p.InvoiceID,
		"idempotency_key", p.IdempotencyKey,
	)

	created, err := client.Payment.Create().
		SetID(p.ID).
		SetIdempotencyKey(p.IdempotencyKey).
		SetInvoiceID(p.InvoiceID).
		SetNillableScheduleID(p.ScheduleID).
		SetAmount(p.Amount).
		SetCurrency(p.Currency).
		SetPaymentStatus(string(p.PaymentStatus)).
		SetNillablePaymentGateway(p.PaymentGateway).
		SetNillableGatewayPaymentID(p.GatewayPaymentID).
		SetRetryCount(p.RetryCount).
		SetMaxRetries(p.MaxRetries).
		SetNillableNextRetryAt(p.NextRetryAt).
		SetNillableSucceededAt(p.SucceededAt).
		SetNillableFailedAt(p.FailedAt).
		SetNillableErrorMessage(p.ErrorMessage).
		SetTenantID(p.TenantID).
		SetStatus(string(p.Status)).
		SetCreatedAt(p.CreatedAt).
		SetUpdatedAt(p.UpdatedAt).
		SetCreatedBy(p.CreatedBy).
		SetUpdatedBy(p.UpdatedBy).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("A payment with this idempotency key already exists").
				WithReportableDetails(map[string]interface{}{
					"idempotency_key": p.IdempotencyKey,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create payment").
			WithReportableDetails(map[string]interface{}{
				"payment_id": p.ID,
				"invoice_id": p.InvoiceID,
			}).
			Mark(ierr.ErrDatabase)
	}

	*p = *domainPayment.FromEnt(created)
	return nil
}

func (r *paymentRepository) Get(ctx context.Context, id string) (*domainPayment.Payment, error) {
	if cached := r.GetCache(ctx, id); cached != nil {
		return cached, nil
	}

	client := r.client.Querier(ctx)

	p, err := client.Payment.Query().
		Where(
			payment.ID(id),
			payment.TenantID(types.GetTenantID(ctx)),
			payment.StatusNotIn(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Payment not found").
				WithReportableDetails(map[string]interface{}{
					"payment_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve payment").
			WithReportableDetails(map[string]interface{}{
				"payment_id": id,
			}).
			Mark(ierr.ErrDatabase)
	}

	paymentData := domainPayment.FromEnt(p)
	r.SetCache(ctx, paymentData)
	return paymentData, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *domainPayment.Payment) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("updating payment",
		"payment_id", p.ID,
		"tenant_id", p.TenantID,
		"payment_status", p.PaymentStatus,
		"retry_count", p.RetryCount,
	)

	update := client.Payment.Update().
		Where(
			payment.ID(p.ID),
			payment.TenantID(p.TenantID),
		).
		SetPaymentStatus(string(p.PaymentStatus)).
		SetNillablePaymentGateway(p.PaymentGateway).
		SetNillableGatewayPaymentID(p.GatewayPaymentID).
		SetRetryCount(p.RetryCount).
		SetNillableSucceededAt(p.SucceededAt).
		SetNillableFailedAt(p.FailedAt).
		SetNillableErrorMessage(p.ErrorMessage).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx))

	// NextRetryAt is cleared once the payment reaches a terminal state
	if p.NextRetryAt != nil {
		update = update.SetNextRetryAt(*p.NextRetryAt)
	} else {
		update = update.ClearNextRetryAt()
	}

	_, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Payment not found").
				WithReportableDetails(map[string]interface{}{
					"payment_id": p.ID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update payment").
			WithReportableDetails(map[string]interface{}{
				"payment_id": p.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	r.DeleteCache(ctx, p.ID)
	return nil
}

func (r *paymentRepository) List(ctx context.Context, filter *types.PaymentFilter) ([]*domainPayment.Payment, error) {
	if filter == nil {
		filter = types.NewPaymentFilter()
	}

	client := r.client.Querier(ctx)

	query := client.Payment.Query()
	if filter.GetExpand().Has(types.ExpandAttempts) {
		query = query.WithAttempts(func(q *ent.PaymentAttemptQuery) {
			q.Order(ent.Asc(paymentattempt.FieldAttemptNumber))
		})
	}
	query = r.queryOpts.applyEntityQueryOptions(ctx, filter, query)
	query = ApplyQueryOptions(ctx, query, filter, r.queryOpts)

	payments, err := query.All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payments").
			Mark(ierr.ErrDatabase)
	}

	return domainPayment.FromEntList(payments), nil
}

func (r *paymentRepository) Count(ctx context.Context, filter *types.PaymentFilter) (int, error) {
	client := r.client.Querier(ctx)

	query := client.Payment.Query()
	query = ApplyBaseFilters(ctx, query, filter, r.queryOpts)
	query = r.queryOpts.applyEntityQueryOptions(ctx, filter, query)

	count, err := query.Count(ctx)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count payments").
			Mark(ierr.ErrDatabase)
	}

	return count, nil
}

func (r *paymentRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domainPayment.Payment, error) {
	client := r.client.Querier(ctx)

	p, err := client.Payment.Query().
		Where(
			payment.IdempotencyKey(key),
			payment.TenantID(types.GetTenantID(ctx)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Payment not found").
				WithReportableDetails(map[string]interface{}{
					"idempotency_key": key,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve payment").
			WithReportableDetails(map[string]interface{}{
				"idempotency_key": key,
			}).
			Mark(ierr.ErrDatabase)
	}

	return domainPayment.FromEnt(p), nil
}

// ListDueRetries returns non-terminal payments whose retry cursor is due,
// oldest first so the longest-waiting payments are retried first
func (r *paymentRepository) ListDueRetries(ctx context.Context, asOf time.Time, limit int) ([]*domainPayment.Payment, error) {
	client := r.client.Querier(ctx)

	query := client.Payment.Query().
		Where(
			payment.TenantID(types.GetTenantID(ctx)),
			payment.PaymentStatusIn(
				string(types.PaymentStatusPending),
				string(types.PaymentStatusFailed),
			),
			payment.NextRetryAtNotNil(),
			payment.NextRetryAtLTE(asOf),
			payment.StatusNotIn(string(types.StatusDeleted)),
		).
		Order(ent.Asc(payment.FieldNextRetryAt))

	if limit > 0 {
		query = query.Limit(limit)
	}

	payments, err := query.All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list due payment retries").
			WithReportableDetails(map[string]interface{}{
				"as_of": asOf,
			}).
			Mark(ierr.ErrDatabase)
	}

	return domainPayment.FromEntList(payments), nil
}

// Payment attempt operations

func (r *paymentRepository) CreateAttempt(ctx context.Context, a *domainPayment.Attempt) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating payment attempt",
		"attempt_id", a.ID,
		"payment_id", a.PaymentID,
		"attempt_number", a.AttemptNumber,
	)

	created, err := client.PaymentAttempt.Create().
		SetID(a.ID).
		SetPaymentID(a.PaymentID).
		SetAttemptNumber(a.AttemptNumber).
		SetAttemptStatus(string(a.AttemptStatus)).
		SetNillableGatewayAttemptID(a.GatewayAttemptID).
		SetNillableNextRetryAt(a.NextRetryAt).
		SetNillableErrorMessage(a.ErrorMessage).
		SetTenantID(a.TenantID).
		SetStatus(string(a.Status)).
		SetCreatedAt(a.CreatedAt).
		SetUpdatedAt(a.UpdatedAt).
		SetCreatedBy(a.CreatedBy).
		SetUpdatedBy(a.UpdatedBy).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("An attempt with this number already exists for this payment").
				WithReportableDetails(map[string]interface{}{
					"payment_id":     a.PaymentID,
					"attempt_number": a.AttemptNumber,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create payment attempt").
			WithReportableDetails(map[string]interface{}{
				"attempt_id": a.ID,
				"payment_id": a.PaymentID,
			}).
			Mark(ierr.ErrDatabase)
	}

	*a = *domainPayment.FromEntAttempt(created)
	return nil
}

func (r *paymentRepository) GetAttempt(ctx context.Context, id string) (*domainPayment.Attempt, error) {
	client := r.client.Querier(ctx)

	a, err := client.PaymentAttempt.Query().
		Where(
			paymentattempt.ID(id),
			paymentattempt.TenantID(types.GetTenantID(ctx)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Payment attempt not found").
				WithReportableDetails(map[string]interface{}{
					"attempt_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve payment attempt").
			WithReportableDetails(map[string]interface{}{
				"attempt_id": id,
			}).
			Mark(ierr.ErrDatabase)
	}

	return domainPayment.FromEntAttempt(a), nil
}

func (r *paymentRepository) UpdateAttempt(ctx context.Context, a *domainPayment.Attempt) error {
	client := r.client.Querier(ctx)

	_, err := client.PaymentAttempt.Update().
		Where(
			paymentattempt.ID(a.ID),
			paymentattempt.TenantID(a.TenantID),
		).
		SetAttemptStatus(string(a.AttemptStatus)).
		SetNillableGatewayAttemptID(a.GatewayAttemptID).
		SetNillableNextRetryAt(a.NextRetryAt).
		SetNillableErrorMessage(a.ErrorMessage).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Payment attempt not found").
				WithReportableDetails(map[string]interface{}{
					"attempt_id": a.ID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update payment attempt").
			WithReportableDetails(map[string]interface{}{
				"attempt_id": a.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *paymentRepository) ListAttempts(ctx context.Context, paymentID string) ([]*domainPayment.Attempt, error) {
	client := r.client.Querier(ctx)

	attempts, err := client.PaymentAttempt.Query().
		Where(
			paymentattempt.PaymentID(paymentID),
			paymentattempt.TenantID(types.GetTenantID(ctx)),
		).
		Order(ent.Asc(paymentattempt.FieldAttemptNumber)).
		All(ctx)

	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payment attempts").
			WithReportableDetails(map[string]interface{}{
				"payment_id": paymentID,
			}).
			Mark(ierr.ErrDatabase)
	}

	result := make([]*domainPayment.Attempt, len(attempts))
	for i, a := range attempts {
		result[i] = domainPayment.FromEntAttempt(a)
	}
	return result, nil
}

func (r *paymentRepository) GetLatestAttempt(ctx context.Context, paymentID string) (*domainPayment.Attempt, error) {
	client := r.client.Querier(ctx)

	a, err := client.PaymentAttempt.Query().
		Where(
			paymentattempt.PaymentID(paymentID),
			paymentattempt.TenantID(types.GetTenantID(ctx)),
		).
		Order(ent.Desc(paymentattempt.FieldAttemptNumber)).
		First(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("No attempts found for payment").
				WithReportableDetails(map[string]interface{}{
					"payment_id": paymentID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve latest payment attempt").
			WithReportableDetails(map[string]interface{}{
				"payment_id": paymentID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return domainPayment.FromEntAttempt(a), nil
}

// PaymentQuery type alias for better readability
type PaymentQuery = *ent.PaymentQuery

// PaymentQueryOptions implements BaseQueryOptions for payment queries
type PaymentQueryOptions struct{}

func (o PaymentQueryOptions) ApplyTenantFilter(ctx context.Context, query PaymentQuery) PaymentQuery {
	return query.Where(payment.TenantID(types.GetTenantID(ctx)))
}

func (o PaymentQueryOptions) ApplyStatusFilter(query PaymentQuery, status string) PaymentQuery {
	if status == "" {
		return query.Where(payment.StatusNotIn(string(types.StatusDeleted)))
	}
	return query.Where(payment.Status(status))
}

func (o PaymentQueryOptions) ApplySortFilter(query PaymentQuery, field string, order string) PaymentQuery {
	orderFunc := ent.Desc
	if order == "asc" {
		orderFunc = ent.Asc
	}
	return query.Order(orderFunc(o.GetFieldName(field)))
}

func (o PaymentQueryOptions) ApplyPaginationFilter(query PaymentQuery, limit int, offset int) PaymentQuery {
	query = query.Limit(limit)
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}

func (o PaymentQueryOptions) GetFieldName(field string) string {
	switch field {
	case "created_at":
		return payment.FieldCreatedAt
	case "updated_at":
		return payment.FieldUpdatedAt
	case "payment_status":
		return payment.FieldPaymentStatus
	case "next_retry_at":
		return payment.FieldNextRetryAt
	default:
		return field
	}
}

func (o PaymentQueryOptions) applyEntityQueryOptions(_ context.Context, f *types.PaymentFilter, query PaymentQuery) PaymentQuery {
	if f == nil {
		return query
	}

	if len(f.PaymentIDs) > 0 {
		query = query.Where(payment.IDIn(f.PaymentIDs...))
	}

	if len(f.InvoiceIDs) > 0 {
		query = query.Where(payment.InvoiceIDIn(f.InvoiceIDs...))
	}

	if len(f.ScheduleIDs) > 0 {
		query = query.Where(payment.ScheduleIDIn(f.ScheduleIDs...))
	}

	if len(f.PaymentStatuses) > 0 {
		statuses := make([]string, len(f.PaymentStatuses))
		for i, s := range f.PaymentStatuses {
			statuses[i] = string(s)
		}
		query = query.Where(payment.PaymentStatusIn(statuses...))
	}

	if f.RetryDueBefore != nil {
		query = query.Where(
			payment.NextRetryAtNotNil(),
			payment.NextRetryAtLTE(*f.RetryDueBefore),
		)
	}

	if f.TimeRangeFilter != nil {
		if f.TimeRangeFilter.StartTime != nil {
			query = query.Where(payment.CreatedAtGTE(*f.TimeRangeFilter.StartTime))
		}
		if f.TimeRangeFilter.EndTime != nil {
			query = query.Where(payment.CreatedAtLTE(*f.TimeRangeFilter.EndTime))
		}
	}

	return query
}

func (r *paymentRepository) SetCache(ctx context.Context, p *domainPayment.Payment) {
	tenantID := types.GetTenantID(ctx)
	cacheKey := cache.GenerateKey(cache.PrefixPayment, tenantID, p.ID)
	r.cache.Set(ctx, cacheKey, p, cache.ExpiryDefaultInMemory)
}

func (r *paymentRepository) GetCache(ctx context.Context, key string) *domainPayment.Payment {
	tenantID := types.GetTenantID(ctx)
	cacheKey := cache.GenerateKey(cache.PrefixPayment, tenantID, key)
	if value, found := r.cache.Get(ctx, cacheKey); found {
		return value.(*domainPayment.Payment)
	}
	return nil
}

func (r *paymentRepository) DeleteCache(ctx context.Context, paymentID string) {
	tenantID := types.GetTenantID(ctx)
	cacheKey := cache.GenerateKey(cache.PrefixPayment, tenantID, paymentID)
	r.cache.Delete(ctx, cacheKey)
}

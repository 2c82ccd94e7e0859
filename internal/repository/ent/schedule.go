package ent

import (
	"context"
	"time"

	"github.com/invoiceflow/invoiceflow/ent"
	"github.com/invoiceflow/invoiceflow/ent/recurringschedule"
	"github.com/invoiceflow/invoiceflow/ent/scheduleexecution"
	"github.com/invoiceflow/invoiceflow/internal/cache"
	domainSchedule "github.com/invoiceflow/invoiceflow/internal/domain/schedule"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/logger"
	"github.com/invoiceflow/invoiceflow/internal/postgres"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

type scheduleRepository struct {
	client    postgres.IClient
	log       *logger.Logger
	queryOpts ScheduleQueryOptions
	cache     cache.Cache
}

func NewScheduleRepository(client postgres.IClient, log *logger.Logger, cache cache.Cache) domainSchedule.Repository {
	return &scheduleRepository{
		client:    client,
		log:       log,
		queryOpts: ScheduleQueryOptions{},
		cache:     cache,
	}
}

func (r *scheduleRepository) Create(ctx context.Context, s *domainSchedule.Schedule) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating schedule",
		"schedule_id", s.ID,
		"tenant_id", s.TenantID,
		"customer_id", s.CustomerID,
		"interval_type", s.IntervalType,
	)

	created, err := client.RecurringSchedule.Create().
		SetID(s.ID).
		SetCustomerID(s.CustomerID).
		SetDescription(s.Description).
		SetIntervalType(string(s.IntervalType)).
		SetCustomIntervalDays(s.CustomIntervalDays).
		SetAnchorDay(s.AnchorDay).
		SetStartDate(s.StartDate).
		SetNillableEndDate(s.EndDate).
		SetNextRunDate(s.NextRunDate).
		SetNillableLastRunDate(s.LastRunDate).
		SetTimezone(s.Timezone).
		SetScheduleStatus(string(s.ScheduleStatus)).
		SetNillablePausedAt(s.PausedAt).
		SetNillableCancelledAt(s.CancelledAt).
		SetCancellationReason(s.CancellationReason).
		SetCurrency(s.Currency).
		SetBaseAmount(s.BaseAmount).
		SetLineItems(s.LineItems).
		SetTaxRate(s.TaxRate).
		SetTaxInclusive(s.TaxInclusive).
		SetProrationEnabled(s.ProrationEnabled).
		SetInvoiceNotes(s.InvoiceNotes).
		SetPaymentTermsDays(s.PaymentTermsDays).
		SetAutoCharge(s.AutoCharge).
		SetRetryEnabled(s.RetryEnabled).
		SetMaxRetryAttempts(s.MaxRetryAttempts).
		SetRetryIntervalHours(s.RetryIntervalHours).
		SetRetryBackoffMultiplier(s.RetryBackoffMultiplier).
		SetFailureNotificationSent(s.FailureNotificationSent).
		SetTotalInvoicesGenerated(s.TotalInvoicesGenerated).
		SetTotalAmountBilled(s.TotalAmountBilled).
		SetMetadata(s.Metadata).
		SetTenantID(s.TenantID).
		SetStatus(string(s.Status)).
		SetCreatedAt(s.CreatedAt).
		SetUpdatedAt(s.UpdatedAt).
		SetCreatedBy(s.CreatedBy).
		SetUpdatedBy(s.UpdatedBy).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create schedule").
			WithReportableDetails(map[string]interface{}{
				"schedule_id": s.ID,
				"customer_id": s.CustomerID,
			}).
			Mark(ierr.ErrDatabase)
	}

	*s = *domainSchedule.FromEnt(created)
	return nil
}

func (r *scheduleRepository) Get(ctx context.Context, id string) (*domainSchedule.Schedule, error) {
	if cached := r.GetCache(ctx, id); cached != nil {
		return cached, nil
	}

	client := r.client.Querier(ctx)

	s, err := client.RecurringSchedule.Query().
		Where(
			recurringschedule.ID(id),
			recurringschedule.TenantID(types.GetTenantID(ctx)),
			recurringschedule.StatusNotIn(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Schedule not found").
				WithReportableDetails(map[string]interface{}{
					"schedule_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve schedule").
			WithReportableDetails(map[string]interface{}{
				"schedule_id": id,
			}).
			Mark(ierr.ErrDatabase)
	}

	scheduleData := domainSchedule.FromEnt(s)
	r.SetCache(ctx, scheduleData)
	return scheduleData, nil
}

func (r *scheduleRepository) Update(ctx context.Context, s *domainSchedule.Schedule) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("updating schedule",
		"schedule_id", s.ID,
		"tenant_id", s.TenantID,
		"schedule_status", s.ScheduleStatus,
	)

	_, err := client.RecurringSchedule.Update().
		Where(
			recurringschedule.ID(s.ID),
			recurringschedule.TenantID(s.TenantID),
		).
		SetDescription(s.Description).
		SetNillableEndDate(s.EndDate).
		SetNextRunDate(s.NextRunDate).
		SetNillableLastRunDate(s.LastRunDate).
		SetScheduleStatus(string(s.ScheduleStatus)).
		SetNillablePausedAt(s.PausedAt).
		SetNillableCancelledAt(s.CancelledAt).
		SetCancellationReason(s.CancellationReason).
		SetBaseAmount(s.BaseAmount).
		SetLineItems(s.LineItems).
		SetTaxRate(s.TaxRate).
		SetTaxInclusive(s.TaxInclusive).
		SetProrationEnabled(s.ProrationEnabled).
		SetInvoiceNotes(s.InvoiceNotes).
		SetPaymentTermsDays(s.PaymentTermsDays).
		SetAutoCharge(s.AutoCharge).
		SetRetryEnabled(s.RetryEnabled).
		SetMaxRetryAttempts(s.MaxRetryAttempts).
		SetRetryIntervalHours(s.RetryIntervalHours).
		SetRetryBackoffMultiplier(s.RetryBackoffMultiplier).
		SetFailureNotificationSent(s.FailureNotificationSent).
		SetTotalInvoicesGenerated(s.TotalInvoicesGenerated).
		SetTotalAmountBilled(s.TotalAmountBilled).
		SetMetadata(s.Metadata).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Schedule not found").
				WithReportableDetails(map[string]interface{}{
					"schedule_id": s.ID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update schedule").
			WithReportableDetails(map[string]interface{}{
				"schedule_id": s.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	r.DeleteCache(ctx, s.ID)
	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	client := r.client.Querier(ctx)

	_, err := client.RecurringSchedule.Update().
		Where(
			recurringschedule.ID(id),
			recurringschedule.TenantID(types.GetTenantID(ctx)),
		).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Schedule not found").
				WithReportableDetails(map[string]interface{}{
					"schedule_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to delete schedule").
			WithReportableDetails(map[string]interface{}{
				"schedule_id": id,
			}).
			Mark(ierr.ErrDatabase)
	}

	r.DeleteCache(ctx, id)
	return nil
}

func (r *scheduleRepository) List(ctx context.Context, filter *types.ScheduleFilter) ([]*domainSchedule.Schedule, error) {
	if filter == nil {
		filter = types.NewScheduleFilter()
	}

	client := r.client.Querier(ctx)

	query := client.RecurringSchedule.Query()
	query = r.queryOpts.applyEntityQueryOptions(ctx, filter, query)
	query = ApplyQueryOptions(ctx, query, filter, r.queryOpts)

	schedules, err := query.All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list schedules").
			Mark(ierr.ErrDatabase)
	}

	return domainSchedule.FromEntList(schedules), nil
}

func (r *scheduleRepository) Count(ctx context.Context, filter *types.ScheduleFilter) (int, error) {
	client := r.client.Querier(ctx)

	query := client.RecurringSchedule.Query()
	query = ApplyBaseFilters(ctx, query, filter, r.queryOpts)
	query = r.queryOpts.applyEntityQueryOptions(ctx, filter, query)

	count, err := query.Count(ctx)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count schedules").
			Mark(ierr.ErrDatabase)
	}

	return count, nil
}

// ListDue returns active schedules with next_run_date on or before asOf,
// oldest cursor first so the furthest-behind schedules are billed first.
func (r *scheduleRepository) ListDue(ctx context.Context, asOf time.Time, limit int) ([]*domainSchedule.Schedule, error) {
	client := r.client.Querier(ctx)

	query := client.RecurringSchedule.Query().
		Where(
			recurringschedule.TenantID(types.GetTenantID(ctx)),
			recurringschedule.ScheduleStatus(string(types.ScheduleStatusActive)),
			recurringschedule.NextRunDateLTE(asOf),
			recurringschedule.StatusNotIn(string(types.StatusDeleted)),
		).
		Order(ent.Asc(recurringschedule.FieldNextRunDate))

	if limit > 0 {
		query = query.Limit(limit)
	}

	schedules, err := query.All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list due schedules").
			WithReportableDetails(map[string]interface{}{
				"as_of": asOf,
			}).
			Mark(ierr.ErrDatabase)
	}

	return domainSchedule.FromEntList(schedules), nil
}

// Execution ledger operations

func (r *scheduleRepository) CreateExecution(ctx context.Context, e *domainSchedule.Execution) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating schedule execution",
		"execution_id", e.ID,
		"schedule_id", e.ScheduleID,
		"period_date", e.PeriodDate,
		"execution_status", e.ExecutionStatus,
	)

	created, err := client.ScheduleExecution.Create().
		SetID(e.ID).
		SetScheduleID(e.ScheduleID).
		SetPeriodDate(e.PeriodDate).
		SetPeriodStart(e.PeriodStart).
		SetPeriodEnd(e.PeriodEnd).
		SetExecutionStatus(string(e.ExecutionStatus)).
		SetNillableInvoiceID(e.InvoiceID).
		SetAmountGenerated(e.AmountGenerated).
		SetProratedAmount(e.ProratedAmount).
		SetErrorMessage(e.ErrorMessage).
		SetTenantID(e.TenantID).
		SetStatus(string(e.Status)).
		SetCreatedAt(e.CreatedAt).
		SetUpdatedAt(e.UpdatedAt).
		SetCreatedBy(e.CreatedBy).
		SetUpdatedBy(e.UpdatedBy).
		Save(ctx)

	if err != nil {
		// The unique (tenant, schedule, period) index surfaces as a
		// constraint error when another driver already claimed this
		// period; callers treat this as mark-conflict, not failure
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("Billing period already claimed").
				WithReportableDetails(map[string]interface{}{
					"schedule_id": e.ScheduleID,
					"period_date": e.PeriodDate,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create schedule execution").
			WithReportableDetails(map[string]interface{}{
				"execution_id": e.ID,
				"schedule_id":  e.ScheduleID,
			}).
			Mark(ierr.ErrDatabase)
	}

	*e = *domainSchedule.FromEntExecution(created)
	return nil
}

func (r *scheduleRepository) GetExecution(ctx context.Context, id string) (*domainSchedule.Execution, error) {
	client := r.client.Querier(ctx)

	e, err := client.ScheduleExecution.Query().
		Where(
			scheduleexecution.ID(id),
			scheduleexecution.TenantID(types.GetTenantID(ctx)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Schedule execution not found").
				WithReportableDetails(map[string]interface{}{
					"execution_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve schedule execution").
			WithReportableDetails(map[string]interface{}{
				"execution_id": id,
			}).
			Mark(ierr.ErrDatabase)
	}

	return domainSchedule.FromEntExecution(e), nil
}

func (r *scheduleRepository) GetExecutionByPeriod(ctx context.Context, scheduleID string, periodDate time.Time) (*domainSchedule.Execution, error) {
	client := r.client.Querier(ctx)

	e, err := client.ScheduleExecution.Query().
		Where(
			scheduleexecution.ScheduleID(scheduleID),
			scheduleexecution.PeriodDate(periodDate),
			scheduleexecution.TenantID(types.GetTenantID(ctx)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Schedule execution not found").
				WithReportableDetails(map[string]interface{}{
					"schedule_id": scheduleID,
					"period_date": periodDate,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve schedule execution").
			WithReportableDetails(map[string]interface{}{
				"schedule_id": scheduleID,
				"period_date": periodDate,
			}).
			Mark(ierr.ErrDatabase)
	}

	return domainSchedule.FromEntExecution(e), nil
}

func (r *scheduleRepository) UpdateExecution(ctx context.Context, e *domainSchedule.Execution) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("updating schedule execution",
		"execution_id", e.ID,
		"schedule_id", e.ScheduleID,
		"execution_status", e.ExecutionStatus,
	)

	_, err := client.ScheduleExecution.Update().
		Where(
			scheduleexecution.ID(e.ID),
			scheduleexecution.TenantID(e.TenantID),
		).
		SetExecutionStatus(string(e.ExecutionStatus)).
		SetNillableInvoiceID(e.InvoiceID).
		SetAmountGenerated(e.AmountGenerated).
		SetProratedAmount(e.ProratedAmount).
		SetErrorMessage(e.ErrorMessage).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Schedule execution not found").
				WithReportableDetails(map[string]interface{}{
					"execution_id": e.ID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update schedule execution").
			WithReportableDetails(map[string]interface{}{
				"execution_id": e.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *scheduleRepository) ListExecutions(ctx context.Context, scheduleID string) ([]*domainSchedule.Execution, error) {
	client := r.client.Querier(ctx)

	executions, err := client.ScheduleExecution.Query().
		Where(
			scheduleexecution.ScheduleID(scheduleID),
			scheduleexecution.TenantID(types.GetTenantID(ctx)),
		).
		Order(ent.Desc(scheduleexecution.FieldPeriodDate)).
		All(ctx)

	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list schedule executions").
			WithReportableDetails(map[string]interface{}{
				"schedule_id": scheduleID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return domainSchedule.FromEntExecutionList(executions), nil
}

// ScheduleQuery type alias for better readability
type ScheduleQuery = *ent.RecurringScheduleQuery

// ScheduleQueryOptions implements BaseQueryOptions for schedule queries
type ScheduleQueryOptions struct{}

func (o ScheduleQueryOptions) ApplyTenantFilter(ctx context.Context, query ScheduleQuery) ScheduleQuery {
	return query.Where(recurringschedule.TenantID(types.GetTenantID(ctx)))
}

func (o ScheduleQueryOptions) ApplyStatusFilter(query ScheduleQuery, status string) ScheduleQuery {
	if status == "" {
		return query.Where(recurringschedule.StatusNotIn(string(types.StatusDeleted)))
	}
	return query.Where(recurringschedule.Status(status))
}

func (o ScheduleQueryOptions) ApplySortFilter(query ScheduleQuery, field string, order string) ScheduleQuery {
	orderFunc := ent.Desc
	if order == "asc" {
		orderFunc = ent.Asc
	}
	return query.Order(orderFunc(o.GetFieldName(field)))
}

func (o ScheduleQueryOptions) ApplyPaginationFilter(query ScheduleQuery, limit int, offset int) ScheduleQuery {
	query = query.Limit(limit)
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}

func (o ScheduleQueryOptions) GetFieldName(field string) string {
	switch field {
	case "created_at":
		return recurringschedule.FieldCreatedAt
	case "updated_at":
		return recurringschedule.FieldUpdatedAt
	case "next_run_date":
		return recurringschedule.FieldNextRunDate
	case "schedule_status":
		return recurringschedule.FieldScheduleStatus
	default:
		return field
	}
}

func (o ScheduleQueryOptions) applyEntityQueryOptions(_ context.Context, f *types.ScheduleFilter, query ScheduleQuery) ScheduleQuery {
	if f == nil {
		return query
	}

	if len(f.ScheduleIDs) > 0 {
		query = query.Where(recurringschedule.IDIn(f.ScheduleIDs...))
	}

	if len(f.CustomerIDs) > 0 {
		query = query.Where(recurringschedule.CustomerIDIn(f.CustomerIDs...))
	}

	if len(f.ScheduleStatuses) > 0 {
		statuses := make([]string, len(f.ScheduleStatuses))
		for i, s := range f.ScheduleStatuses {
			statuses[i] = string(s)
		}
		query = query.Where(recurringschedule.ScheduleStatusIn(statuses...))
	}

	if len(f.Intervals) > 0 {
		intervals := make([]string, len(f.Intervals))
		for i, iv := range f.Intervals {
			intervals[i] = string(iv)
		}
		query = query.Where(recurringschedule.IntervalTypeIn(intervals...))
	}

	if f.DueBefore != nil {
		query = query.Where(recurringschedule.NextRunDateLTE(*f.DueBefore))
	}

	if f.TimeRangeFilter != nil {
		if f.TimeRangeFilter.StartTime != nil {
			query = query.Where(recurringschedule.CreatedAtGTE(*f.TimeRangeFilter.StartTime))
		}
		if f.TimeRangeFilter.EndTime != nil {
			query = query.Where(recurringschedule.CreatedAtLTE(*f.TimeRangeFilter.EndTime))
		}
	}

	return query
}

func (r *scheduleRepository) SetCache(ctx context.Context, s *domainSchedule.Schedule) {
	tenantID := types.GetTenantID(ctx)
	cacheKey := cache.GenerateKey(cache.PrefixSchedule, tenantID, s.ID)
	r.cache.Set(ctx, cacheKey, s, cache.ExpiryDefaultInMemory)
}

func (r *scheduleRepository) GetCache(ctx context.Context, key string) *domainSchedule.Schedule {
	tenantID := types.GetTenantID(ctx)
	cacheKey := cache.GenerateKey(cache.PrefixSchedule, tenantID, key)
	if value, found := r.cache.Get(ctx, cacheKey); found {
		return value.(*domainSchedule.Schedule)
	}
	return nil
}

func (r *scheduleRepository) DeleteCache(ctx context.Context, scheduleID string) {
	tenantID := types.GetTenantID(ctx)
	cacheKey := cache.GenerateKey(cache.PrefixSchedule, tenantID, scheduleID)
	r.cache.Delete(ctx, cacheKey)
}

package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/invoiceflow/invoiceflow/internal/domain/schedule"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/samber/lo"
)

// InMemoryScheduleStore implements schedule.Repository. The execution
// ledger enforces the same unique (tenant, schedule, period) rule the
// database index does, so claim races behave like production.
type InMemoryScheduleStore struct {
	*InMemoryStore[*schedule.Schedule]
	executions *InMemoryStore[*schedule.Execution]
}

// NewInMemoryScheduleStore creates a new in-memory schedule store
func NewInMemoryScheduleStore() *InMemoryScheduleStore {
	return &InMemoryScheduleStore{
		InMemoryStore: NewInMemoryStore[*schedule.Schedule](),
		executions:    NewInMemoryStore[*schedule.Execution](),
	}
}

func copySchedule(s *schedule.Schedule) *schedule.Schedule {
	if s == nil {
		return nil
	}

	out := *s
	out.Metadata = lo.Assign(map[string]string{}, s.Metadata)
	out.LineItems = append([]types.ScheduleLineItem(nil), s.LineItems...)
	if s.EndDate != nil {
		out.EndDate = lo.ToPtr(*s.EndDate)
	}
	if s.LastRunDate != nil {
		out.LastRunDate = lo.ToPtr(*s.LastRunDate)
	}
	if s.PausedAt != nil {
		out.PausedAt = lo.ToPtr(*s.PausedAt)
	}
	if s.CancelledAt != nil {
		out.CancelledAt = lo.ToPtr(*s.CancelledAt)
	}
	return &out
}

func copyExecution(e *schedule.Execution) *schedule.Execution {
	if e == nil {
		return nil
	}

	out := *e
	if e.InvoiceID != nil {
		out.InvoiceID = lo.ToPtr(*e.InvoiceID)
	}
	return &out
}

func (s *InMemoryScheduleStore) Create(ctx context.Context, sched *schedule.Schedule) error {
	if err := s.InMemoryStore.Create(ctx, sched.ID, copySchedule(sched)); err != nil {
		return ierr.WithError(err).
			WithHint("Schedule with this id already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryScheduleStore) Get(ctx context.Context, id string) (*schedule.Schedule, error) {
	sched, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || sched.Status == types.StatusDeleted {
		return nil, ierr.NewError("schedule not found").
			WithHint("Schedule not found").
			WithReportableDetails(map[string]any{
				"schedule_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copySchedule(sched), nil
}

func (s *InMemoryScheduleStore) Update(ctx context.Context, sched *schedule.Schedule) error {
	if err := s.InMemoryStore.Update(ctx, sched.ID, copySchedule(sched)); err != nil {
		return ierr.WithError(err).
			WithHint("Schedule not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryScheduleStore) Delete(ctx context.Context, id string) error {
	sched, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	sched.Status = types.StatusDeleted
	return s.InMemoryStore.Update(ctx, id, sched)
}

func (s *InMemoryScheduleStore) List(ctx context.Context, filter *types.ScheduleFilter) ([]*schedule.Schedule, error) {
	items, err := s.InMemoryStore.List(ctx, filter, scheduleFilterFn, scheduleSortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(sched *schedule.Schedule, _ int) *schedule.Schedule {
		return copySchedule(sched)
	}), nil
}

func (s *InMemoryScheduleStore) Count(ctx context.Context, filter *types.ScheduleFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, scheduleFilterFn)
}

func (s *InMemoryScheduleStore) ListDue(ctx context.Context, asOf time.Time, limit int) ([]*schedule.Schedule, error) {
	filterFn := func(ctx context.Context, sched *schedule.Schedule, _ interface{}) bool {
		if sched.TenantID != types.GetTenantID(ctx) {
			return false
		}
		if sched.Status == types.StatusDeleted {
			return false
		}
		if sched.ScheduleStatus != types.ScheduleStatusActive {
			return false
		}
		return !sched.NextRunDate.After(asOf)
	}

	items, err := s.InMemoryStore.List(ctx, nil, filterFn, nil)
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].NextRunDate.Before(items[j].NextRunDate)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return lo.Map(items, func(sched *schedule.Schedule, _ int) *schedule.Schedule {
		return copySchedule(sched)
	}), nil
}

func (s *InMemoryScheduleStore) CreateExecution(ctx context.Context, e *schedule.Execution) error {
	// Mirror the unique period index before inserting
	existing, err := s.GetExecutionByPeriod(ctx, e.ScheduleID, e.PeriodDate)
	if err != nil && !ierr.IsNotFound(err) {
		return err
	}
	if existing != nil {
		return ierr.NewError("execution already exists for period").
			WithHint("This billing period has already been claimed").
			WithReportableDetails(map[string]any{
				"schedule_id": e.ScheduleID,
				"period_date": e.PeriodDate,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	if err := s.executions.Create(ctx, e.ID, copyExecution(e)); err != nil {
		return ierr.WithError(err).
			WithHint("Execution with this id already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryScheduleStore) GetExecution(ctx context.Context, id string) (*schedule.Execution, error) {
	e, err := s.executions.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Execution not found").
			Mark(ierr.ErrNotFound)
	}
	return copyExecution(e), nil
}

func (s *InMemoryScheduleStore) GetExecutionByPeriod(ctx context.Context, scheduleID string, periodDate time.Time) (*schedule.Execution, error) {
	filterFn := func(ctx context.Context, e *schedule.Execution, _ interface{}) bool {
		return e.TenantID == types.GetTenantID(ctx) &&
			e.ScheduleID == scheduleID &&
			e.PeriodDate.Equal(periodDate)
	}

	items, err := s.executions.List(ctx, nil, filterFn, nil)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ierr.NewError("execution not found").
			WithHint("No execution recorded for this period").
			WithReportableDetails(map[string]any{
				"schedule_id": scheduleID,
				"period_date": periodDate,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyExecution(items[0]), nil
}

func (s *InMemoryScheduleStore) UpdateExecution(ctx context.Context, e *schedule.Execution) error {
	if err := s.executions.Update(ctx, e.ID, copyExecution(e)); err != nil {
		return ierr.WithError(err).
			WithHint("Execution not found").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryScheduleStore) ListExecutions(ctx context.Context, scheduleID string) ([]*schedule.Execution, error) {
	filterFn := func(ctx context.Context, e *schedule.Execution, _ interface{}) bool {
		return e.TenantID == types.GetTenantID(ctx) && e.ScheduleID == scheduleID
	}

	items, err := s.executions.List(ctx, nil, filterFn, nil)
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].PeriodDate.After(items[j].PeriodDate)
	})

	return lo.Map(items, func(e *schedule.Execution, _ int) *schedule.Execution {
		return copyExecution(e)
	}), nil
}

// scheduleFilterFn implements filtering logic for schedules
func scheduleFilterFn(ctx context.Context, sched *schedule.Schedule, filter interface{}) bool {
	tenantID := types.GetTenantID(ctx)
	if tenantID != "" && sched.TenantID != tenantID {
		return false
	}

	f, ok := filter.(*types.ScheduleFilter)
	if !ok || f == nil {
		return sched.Status != types.StatusDeleted
	}

	if sched.Status == types.StatusDeleted {
		return false
	}

	if len(f.ScheduleIDs) > 0 && !lo.Contains(f.ScheduleIDs, sched.ID) {
		return false
	}
	if len(f.CustomerIDs) > 0 && !lo.Contains(f.CustomerIDs, sched.CustomerID) {
		return false
	}
	if len(f.ScheduleStatuses) > 0 && !lo.Contains(f.ScheduleStatuses, sched.ScheduleStatus) {
		return false
	}
	if len(f.Intervals) > 0 && !lo.Contains(f.Intervals, sched.IntervalType) {
		return false
	}
	if f.DueBefore != nil && sched.NextRunDate.After(*f.DueBefore) {
		return false
	}

	if f.TimeRangeFilter != nil {
		if f.StartTime != nil && sched.CreatedAt.Before(*f.StartTime) {
			return false
		}
		if f.EndTime != nil && sched.CreatedAt.After(*f.EndTime) {
			return false
		}
	}

	return true
}

// scheduleSortFn implements sorting logic for schedules
func scheduleSortFn(i, j *schedule.Schedule) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

package testutil

import (
	"context"
	"sort"

	"github.com/invoiceflow/invoiceflow/internal/domain/auditlog"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/samber/lo"
)

// InMemoryAuditLogStore implements auditlog.Repository
type InMemoryAuditLogStore struct {
	*InMemoryStore[*auditlog.Entry]
}

// NewInMemoryAuditLogStore creates a new in-memory audit log store
func NewInMemoryAuditLogStore() *InMemoryAuditLogStore {
	return &InMemoryAuditLogStore{
		InMemoryStore: NewInMemoryStore[*auditlog.Entry](),
	}
}

func copyAuditEntry(e *auditlog.Entry) *auditlog.Entry {
	if e == nil {
		return nil
	}

	out := *e
	if e.InvoiceID != nil {
		out.InvoiceID = lo.ToPtr(*e.InvoiceID)
	}
	if e.ExecutionID != nil {
		out.ExecutionID = lo.ToPtr(*e.ExecutionID)
	}
	if e.PaymentID != nil {
		out.PaymentID = lo.ToPtr(*e.PaymentID)
	}
	out.OldValues = lo.Assign(map[string]interface{}{}, e.OldValues)
	out.NewValues = lo.Assign(map[string]interface{}{}, e.NewValues)
	return &out
}

func (s *InMemoryAuditLogStore) Create(ctx context.Context, e *auditlog.Entry) error {
	if err := s.InMemoryStore.Create(ctx, e.ID, copyAuditEntry(e)); err != nil {
		return ierr.WithError(err).
			WithHint("Audit entry with this id already exists").
			Mark(ierr.ErrAlreadyExists)
	}
	return nil
}

func (s *InMemoryAuditLogStore) ListBySchedule(ctx context.Context, scheduleID string, limit int) ([]*auditlog.Entry, error) {
	filterFn := func(ctx context.Context, e *auditlog.Entry, _ interface{}) bool {
		return e.TenantID == types.GetTenantID(ctx) && e.ScheduleID == scheduleID
	}

	items, err := s.InMemoryStore.List(ctx, nil, filterFn, nil)
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return lo.Map(items, func(e *auditlog.Entry, _ int) *auditlog.Entry {
		return copyAuditEntry(e)
	}), nil
}

package ent

import (
	"context"

	"github.com/invoiceflow/invoiceflow/ent"
	"github.com/invoiceflow/invoiceflow/ent/auditlog"
	domainAuditLog "github.com/invoiceflow/invoiceflow/internal/domain/auditlog"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/logger"
	"github.com/invoiceflow/invoiceflow/internal/postgres"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

// auditLogRepository is append-only: entries are written once and
// never updated, deleted, or cached
type auditLogRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewAuditLogRepository(client postgres.IClient, log *logger.Logger) domainAuditLog.Repository {
	return &auditLogRepository{
		client: client,
		log:    log,
	}
}

func (r *auditLogRepository) Create(ctx context.Context, e *domainAuditLog.Entry) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating audit log entry",
		"audit_id", e.ID,
		"schedule_id", e.ScheduleID,
		"action", e.Action,
	)

	_, err := client.AuditLog.Create().
		SetID(e.ID).
		SetScheduleID(e.ScheduleID).
		SetAction(string(e.Action)).
		SetDescription(e.Description).
		SetNillableInvoiceID(e.InvoiceID).
		SetNillableExecutionID(e.ExecutionID).
		SetNillablePaymentID(e.PaymentID).
		SetOldValues(e.OldValues).
		SetNewValues(e.NewValues).
		SetTenantID(e.TenantID).
		SetStatus(string(e.Status)).
		SetCreatedAt(e.CreatedAt).
		SetUpdatedAt(e.UpdatedAt).
		SetCreatedBy(e.CreatedBy).
		SetUpdatedBy(e.UpdatedBy).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create audit log entry").
			WithReportableDetails(map[string]interface{}{
				"schedule_id": e.ScheduleID,
				"action":      e.Action,
			}).
			Mark(ierr.ErrDatabase)
	}

	return nil
}

func (r *auditLogRepository) ListBySchedule(ctx context.Context, scheduleID string, limit int) ([]*domainAuditLog.Entry, error) {
	client := r.client.Querier(ctx)

	query := client.AuditLog.Query().
		Where(
			auditlog.ScheduleID(scheduleID),
			auditlog.TenantID(types.GetTenantID(ctx)),
		).
		Order(ent.Desc(auditlog.FieldCreatedAt))

	if limit > 0 {
		query = query.Limit(limit)
	}

	entries, err := query.All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list audit log entries").
			WithReportableDetails(map[string]interface{}{
				"schedule_id": scheduleID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return domainAuditLog.FromEntList(entries), nil
}

package ent

import (
	"context"
	"time"

	"github.com/invoiceflow/invoiceflow/ent"
	"github.com/invoiceflow/invoiceflow/ent/invoice"
	"github.com/invoiceflow/invoiceflow/ent/invoicelineitem"
	"github.com/invoiceflow/invoiceflow/internal/cache"
	domainInvoice "github.com/invoiceflow/invoiceflow/internal/domain/invoice"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/logger"
	"github.com/invoiceflow/invoiceflow/internal/postgres"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

type invoiceRepository struct {
	client    postgres.IClient
	log       *logger.Logger
	queryOpts InvoiceQueryOptions
	cache     cache.Cache
}

func NewInvoiceRepository(client postgres.IClient, log *logger.Logger, cache cache.Cache) domainInvoice.Repository {
	return &invoiceRepository{
		client:    client,
		log:       log,
		queryOpts: InvoiceQueryOptions{},
		cache:     cache,
	}
}

// CreateWithLineItems persists the invoice and its line items in one
// transaction so a partially written invoice can never be observed
func (r *invoiceRepository) CreateWithLineItems(ctx context.Context, inv *domainInvoice.Invoice) error {
	r.log.Debugw("creating invoice with line items",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"tenant_id", inv.TenantID,
		"line_items", len(inv.LineItems),
	)

	return r.client.WithTx(ctx, func(ctx context.Context) error {
		client := r.client.Querier(ctx)

		created, err := client.Invoice.Create().
			SetID(inv.ID).
			SetInvoiceNumber(inv.InvoiceNumber).
			SetCustomerID(inv.CustomerID).
			SetNillableScheduleID(inv.ScheduleID).
			SetIssueDate(inv.IssueDate).
			SetDueDate(inv.DueDate).
			SetNillablePeriodStart(inv.PeriodStart).
			SetNillablePeriodEnd(inv.PeriodEnd).
			SetCurrency(inv.Currency).
			SetSubtotal(inv.Subtotal).
			SetTaxTotal(inv.TaxTotal).
			SetTotal(inv.Total).
			SetAmountPaid(inv.AmountPaid).
			SetAmountRemaining(inv.AmountRemaining).
			SetInvoiceStatus(string(inv.InvoiceStatus)).
			SetPaymentStatus(string(inv.PaymentStatus)).
			SetNotes(inv.Notes).
			SetNillablePaidAt(inv.PaidAt).
			SetNillableVoidedAt(inv.VoidedAt).
			SetMetadata(inv.Metadata).
			SetTenantID(inv.TenantID).
			SetStatus(string(inv.Status)).
			SetCreatedAt(inv.CreatedAt).
			SetUpdatedAt(inv.UpdatedAt).
			SetCreatedBy(inv.CreatedBy).
			SetUpdatedBy(inv.UpdatedBy).
			Save(ctx)

		if err != nil {
			if ent.IsConstraintError(err) {
				return ierr.WithError(err).
					WithHint("An invoice with this number already exists").
					WithReportableDetails(map[string]interface{}{
						"invoice_number": inv.InvoiceNumber,
					}).
					Mark(ierr.ErrAlreadyExists)
			}
			return ierr.WithError(err).
				WithHint("Failed to create invoice").
				WithReportableDetails(map[string]interface{}{
					"invoice_id": inv.ID,
				}).
				Mark(ierr.ErrDatabase)
		}

		if len(inv.LineItems) > 0 {
			builders := make([]*ent.InvoiceLineItemCreate, len(inv.LineItems))
			for i, li := range inv.LineItems {
				builders[i] = client.InvoiceLineItem.Create().
					SetID(li.ID).
					SetInvoiceID(created.ID).
					SetDescription(li.Description).
					SetQuantity(li.Quantity).
					SetUnitPrice(li.UnitPrice).
					SetAmount(li.Amount).
					SetProrated(li.Prorated).
					SetTenantID(inv.TenantID).
					SetStatus(string(types.StatusPublished)).
					SetCreatedAt(inv.CreatedAt).
					SetUpdatedAt(inv.UpdatedAt).
					SetCreatedBy(inv.CreatedBy).
					SetUpdatedBy(inv.UpdatedBy)
			}
			if err := client.InvoiceLineItem.CreateBulk(builders...).Exec(ctx); err != nil {
				return ierr.WithError(err).
					WithHint("Failed to create invoice line items").
					WithReportableDetails(map[string]interface{}{
						"invoice_id": inv.ID,
					}).
					Mark(ierr.ErrDatabase)
			}
		}

		return nil
	})
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*domainInvoice.Invoice, error) {
	if cached := r.GetCache(ctx, id); cached != nil {
		return cached, nil
	}

	client := r.client.Querier(ctx)

	inv, err := client.Invoice.Query().
		Where(
			invoice.ID(id),
			invoice.TenantID(types.GetTenantID(ctx)),
			invoice.StatusNotIn(string(types.StatusDeleted)),
		).
		WithLineItems(func(q *ent.InvoiceLineItemQuery) {
			q.Where(invoicelineitem.StatusNotIn(string(types.StatusDeleted)))
		}).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Invoice not found").
				WithReportableDetails(map[string]interface{}{
					"invoice_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve invoice").
			WithReportableDetails(map[string]interface{}{
				"invoice_id": id,
			}).
			Mark(ierr.ErrDatabase)
	}

	invoiceData := domainInvoice.FromEnt(inv)
	r.SetCache(ctx, invoiceData)
	return invoiceData, nil
}

func (r *invoiceRepository) GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (*domainInvoice.Invoice, error) {
	client := r.client.Querier(ctx)

	inv, err := client.Invoice.Query().
		Where(
			invoice.InvoiceNumber(invoiceNumber),
			invoice.TenantID(types.GetTenantID(ctx)),
		).
		WithLineItems().
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Invoice not found").
				WithReportableDetails(map[string]interface{}{
					"invoice_number": invoiceNumber,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve invoice").
			WithReportableDetails(map[string]interface{}{
				"invoice_number": invoiceNumber,
			}).
			Mark(ierr.ErrDatabase)
	}

	return domainInvoice.FromEnt(inv), nil
}

func (r *invoiceRepository) Update(ctx context.Context, inv *domainInvoice.Invoice) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("updating invoice",
		"invoice_id", inv.ID,
		"tenant_id", inv.TenantID,
		"payment_status", inv.PaymentStatus,
	)

	_, err := client.Invoice.Update().
		Where(
			invoice.ID(inv.ID),
			invoice.TenantID(inv.TenantID),
		).
		SetAmountPaid(inv.AmountPaid).
		SetAmountRemaining(inv.AmountRemaining).
		SetInvoiceStatus(string(inv.InvoiceStatus)).
		SetPaymentStatus(string(inv.PaymentStatus)).
		SetNotes(inv.Notes).
		SetNillablePaidAt(inv.PaidAt).
		SetNillableVoidedAt(inv.VoidedAt).
		SetMetadata(inv.Metadata).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Invoice not found").
				WithReportableDetails(map[string]interface{}{
					"invoice_id": inv.ID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update invoice").
			WithReportableDetails(map[string]interface{}{
				"invoice_id": inv.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	r.DeleteCache(ctx, inv.ID)
	return nil
}

func (r *invoiceRepository) List(ctx context.Context, filter *types.InvoiceFilter) ([]*domainInvoice.Invoice, error) {
	if filter == nil {
		filter = types.NewInvoiceFilter()
	}

	client := r.client.Querier(ctx)

	query := client.Invoice.Query()
	if filter.GetExpand().Has(types.ExpandLineItems) {
		query = query.WithLineItems()
	}
	query = r.queryOpts.applyEntityQueryOptions(ctx, filter, query)
	query = ApplyQueryOptions(ctx, query, filter, r.queryOpts)

	invoices, err := query.All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}

	return domainInvoice.FromEntList(invoices), nil
}

func (r *invoiceRepository) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	client := r.client.Querier(ctx)

	query := client.Invoice.Query()
	query = ApplyBaseFilters(ctx, query, filter, r.queryOpts)
	query = r.queryOpts.applyEntityQueryOptions(ctx, filter, query)

	count, err := query.Count(ctx)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count invoices").
			Mark(ierr.ErrDatabase)
	}

	return count, nil
}

// InvoiceQuery type alias for better readability
type InvoiceQuery = *ent.InvoiceQuery

// InvoiceQueryOptions implements BaseQueryOptions for invoice queries
type InvoiceQueryOptions struct{}

func (o InvoiceQueryOptions) ApplyTenantFilter(ctx context.Context, query InvoiceQuery) InvoiceQuery {
	return query.Where(invoice.TenantID(types.GetTenantID(ctx)))
}

func (o InvoiceQueryOptions) ApplyStatusFilter(query InvoiceQuery, status string) InvoiceQuery {
	if status == "" {
		return query.Where(invoice.StatusNotIn(string(types.StatusDeleted)))
	}
	return query.Where(invoice.Status(status))
}

func (o InvoiceQueryOptions) ApplySortFilter(query InvoiceQuery, field string, order string) InvoiceQuery {
	orderFunc := ent.Desc
	if order == "asc" {
		orderFunc = ent.Asc
	}
	return query.Order(orderFunc(o.GetFieldName(field)))
}

func (o InvoiceQueryOptions) ApplyPaginationFilter(query InvoiceQuery, limit int, offset int) InvoiceQuery {
	query = query.Limit(limit)
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}

func (o InvoiceQueryOptions) GetFieldName(field string) string {
	switch field {
	case "created_at":
		return invoice.FieldCreatedAt
	case "updated_at":
		return invoice.FieldUpdatedAt
	case "issue_date":
		return invoice.FieldIssueDate
	case "due_date":
		return invoice.FieldDueDate
	case "invoice_number":
		return invoice.FieldInvoiceNumber
	default:
		return field
	}
}

func (o InvoiceQueryOptions) applyEntityQueryOptions(_ context.Context, f *types.InvoiceFilter, query InvoiceQuery) InvoiceQuery {
	if f == nil {
		return query
	}

	if len(f.InvoiceIDs) > 0 {
		query = query.Where(invoice.IDIn(f.InvoiceIDs...))
	}

	if len(f.CustomerIDs) > 0 {
		query = query.Where(invoice.CustomerIDIn(f.CustomerIDs...))
	}

	if len(f.ScheduleIDs) > 0 {
		query = query.Where(invoice.ScheduleIDIn(f.ScheduleIDs...))
	}

	if len(f.InvoiceStatus) > 0 {
		statuses := make([]string, len(f.InvoiceStatus))
		for i, s := range f.InvoiceStatus {
			statuses[i] = string(s)
		}
		query = query.Where(invoice.InvoiceStatusIn(statuses...))
	}

	if len(f.PaymentStatus) > 0 {
		statuses := make([]string, len(f.PaymentStatus))
		for i, s := range f.PaymentStatus {
			statuses[i] = string(s)
		}
		query = query.Where(invoice.PaymentStatusIn(statuses...))
	}

	if f.InvoiceNumber != "" {
		query = query.Where(invoice.InvoiceNumber(f.InvoiceNumber))
	}

	if f.TimeRangeFilter != nil {
		if f.TimeRangeFilter.StartTime != nil {
			query = query.Where(invoice.CreatedAtGTE(*f.TimeRangeFilter.StartTime))
		}
		if f.TimeRangeFilter.EndTime != nil {
			query = query.Where(invoice.CreatedAtLTE(*f.TimeRangeFilter.EndTime))
		}
	}

	return query
}

func (r *invoiceRepository) SetCache(ctx context.Context, inv *domainInvoice.Invoice) {
	tenantID := types.GetTenantID(ctx)
	cacheKey := cache.GenerateKey(cache.PrefixInvoice, tenantID, inv.ID)
	r.cache.Set(ctx, cacheKey, inv, cache.ExpiryDefaultInMemory)
}

func (r *invoiceRepository) GetCache(ctx context.Context, key string) *domainInvoice.Invoice {
	tenantID := types.GetTenantID(ctx)
	cacheKey := cache.GenerateKey(cache.PrefixInvoice, tenantID, key)
	if value, found := r.cache.Get(ctx, cacheKey); found {
		return value.(*domainInvoice.Invoice)
	}
	return nil
}

func (r *invoiceRepository) DeleteCache(ctx context.Context, invoiceID string) {
	tenantID := types.GetTenantID(ctx)
	cacheKey := cache.GenerateKey(cache.PrefixInvoice, tenantID, invoiceID)
	r.cache.Delete(ctx, cacheKey)
}

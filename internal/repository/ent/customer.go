package ent

import (
	"context"
	"time"

	"github.com/invoiceflow/invoiceflow/ent"
	"github.com/invoiceflow/invoiceflow/ent/customer"
	"github.com/invoiceflow/invoiceflow/internal/cache"
	domainCustomer "github.com/invoiceflow/invoiceflow/internal/domain/customer"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/logger"
	"github.com/invoiceflow/invoiceflow/internal/postgres"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

type customerRepository struct {
	client    postgres.IClient
	log       *logger.Logger
	queryOpts CustomerQueryOptions
	cache     cache.Cache
}

func NewCustomerRepository(client postgres.IClient, log *logger.Logger, cache cache.Cache) domainCustomer.Repository {
	return &customerRepository{
		client:    client,
		log:       log,
		queryOpts: CustomerQueryOptions{},
		cache:     cache,
	}
}

func (r *customerRepository) Create(ctx context.Context, c *domainCustomer.Customer) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating customer",
		"customer_id", c.ID,
		"tenant_id", c.TenantID,
	)

	created, err := client.Customer.Create().
		SetID(c.ID).
		SetExternalID(c.ExternalID).
		SetName(c.Name).
		SetEmail(c.Email).
		SetTimezone(c.Timezone).
		SetNillableGatewayCustomerID(c.GatewayCustomerID).
		SetNillableDefaultPaymentMethodID(c.DefaultPaymentMethodID).
		SetMetadata(c.Metadata).
		SetTenantID(c.TenantID).
		SetStatus(string(c.Status)).
		SetCreatedAt(c.CreatedAt).
		SetUpdatedAt(c.UpdatedAt).
		SetCreatedBy(c.CreatedBy).
		SetUpdatedBy(c.UpdatedBy).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("Customer already exists").
				WithReportableDetails(map[string]interface{}{
					"customer_id": c.ID,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create customer").
			WithReportableDetails(map[string]interface{}{
				"customer_id": c.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	*c = *domainCustomer.FromEnt(created)
	return nil
}

func (r *customerRepository) Get(ctx context.Context, id string) (*domainCustomer.Customer, error) {
	if cached := r.GetCache(ctx, id); cached != nil {
		return cached, nil
	}

	client := r.client.Querier(ctx)

	c, err := client.Customer.Query().
		Where(
			customer.ID(id),
			customer.TenantID(types.GetTenantID(ctx)),
			customer.StatusNotIn(string(types.StatusDeleted)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Customer not found").
				WithReportableDetails(map[string]interface{}{
					"customer_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve customer").
			WithReportableDetails(map[string]interface{}{
				"customer_id": id,
			}).
			Mark(ierr.ErrDatabase)
	}

	customerData := domainCustomer.FromEnt(c)
	r.SetCache(ctx, customerData)
	return customerData, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domainCustomer.Customer) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("updating customer",
		"customer_id", c.ID,
		"tenant_id", c.TenantID,
	)

	_, err := client.Customer.Update().
		Where(
			customer.ID(c.ID),
			customer.TenantID(c.TenantID),
		).
		SetName(c.Name).
		SetEmail(c.Email).
		SetTimezone(c.Timezone).
		SetNillableGatewayCustomerID(c.GatewayCustomerID).
		SetNillableDefaultPaymentMethodID(c.DefaultPaymentMethodID).
		SetMetadata(c.Metadata).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Customer not found").
				WithReportableDetails(map[string]interface{}{
					"customer_id": c.ID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update customer").
			WithReportableDetails(map[string]interface{}{
				"customer_id": c.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	r.DeleteCache(ctx, c.ID)
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("deleting customer",
		"customer_id", id,
		"tenant_id", types.GetTenantID(ctx),
	)

	_, err := client.Customer.Update().
		Where(
			customer.ID(id),
			customer.TenantID(types.GetTenantID(ctx)),
		).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Customer not found").
				WithReportableDetails(map[string]interface{}{
					"customer_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to delete customer").
			WithReportableDetails(map[string]interface{}{
				"customer_id": id,
			}).
			Mark(ierr.ErrDatabase)
	}

	r.DeleteCache(ctx, id)
	return nil
}

func (r *customerRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainCustomer.Customer, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	client := r.client.Querier(ctx)

	query := client.Customer.Query()
	query = ApplyQueryOptions(ctx, query, filter, r.queryOpts)

	customers, err := query.All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list customers").
			Mark(ierr.ErrDatabase)
	}

	return domainCustomer.FromEntList(customers), nil
}

func (r *customerRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	client := r.client.Querier(ctx)

	query := client.Customer.Query()
	query = ApplyBaseFilters(ctx, query, filter, r.queryOpts)

	count, err := query.Count(ctx)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count customers").
			Mark(ierr.ErrDatabase)
	}

	return count, nil
}

// CustomerQuery type alias for better readability
type CustomerQuery = *ent.CustomerQuery

// CustomerQueryOptions implements BaseQueryOptions for customer queries
type CustomerQueryOptions struct{}

func (o CustomerQueryOptions) ApplyTenantFilter(ctx context.Context, query CustomerQuery) CustomerQuery {
	return query.Where(customer.TenantID(types.GetTenantID(ctx)))
}

func (o CustomerQueryOptions) ApplyStatusFilter(query CustomerQuery, status string) CustomerQuery {
	if status == "" {
		return query.Where(customer.StatusNotIn(string(types.StatusDeleted)))
	}
	return query.Where(customer.Status(status))
}

func (o CustomerQueryOptions) ApplySortFilter(query CustomerQuery, field string, order string) CustomerQuery {
	orderFunc := ent.Desc
	if order == "asc" {
		orderFunc = ent.Asc
	}
	return query.Order(orderFunc(o.GetFieldName(field)))
}

func (o CustomerQueryOptions) ApplyPaginationFilter(query CustomerQuery, limit int, offset int) CustomerQuery {
	query = query.Limit(limit)
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}

func (o CustomerQueryOptions) GetFieldName(field string) string {
	switch field {
	case "created_at":
		return customer.FieldCreatedAt
	case "updated_at":
		return customer.FieldUpdatedAt
	case "name":
		return customer.FieldName
	default:
		return field
	}
}

func (r *customerRepository) SetCache(ctx context.Context, c *domainCustomer.Customer) {
	tenantID := types.GetTenantID(ctx)
	cacheKey := cache.GenerateKey(cache.PrefixCustomer, tenantID, c.ID)
	r.cache.Set(ctx, cacheKey, c, cache.ExpiryDefaultInMemory)
}

func (r *customerRepository) GetCache(ctx context.Context, key string) *domainCustomer.Customer {
	tenantID := types.GetTenantID(ctx)
	cacheKey := cache.GenerateKey(cache.PrefixCustomer, tenantID, key)
	if value, found := r.cache.Get(ctx, cacheKey); found {
		return value.(*domainCustomer.Customer)
	}
	return nil
}

func (r *customerRepository) DeleteCache(ctx context.Context, customerID string) {
	tenantID := types.GetTenantID(ctx)
	cacheKey := cache.GenerateKey(cache.PrefixCustomer, tenantID, customerID)
	r.cache.Delete(ctx, cacheKey)
}

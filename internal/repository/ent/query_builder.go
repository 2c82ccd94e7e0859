package ent

import (
	"context"

	"github.com/invoiceflow/invoiceflow/internal/types"
)

// ApplyBaseFilters scopes a query to the caller's tenant and the filter's
// row status. Every list query goes through this before entity-specific
// predicates are added.
func ApplyBaseFilters[T any](ctx context.Context, query T, filter types.BaseFilter, opts BaseQueryOptions[T]) T {
	query = opts.ApplyTenantFilter(ctx, query)
	query = opts.ApplyStatusFilter(query, filter.GetStatus())
	return query
}

// ApplyPagination applies limit and offset unless the filter asks for
// an unbounded result set
func ApplyPagination[T any](query T, filter types.BaseFilter, opts BaseQueryOptions[T]) T {
	if filter == nil {
		return query
	}

	if !filter.IsUnlimited() && filter.GetLimit() > 0 {
		query = opts.ApplyPaginationFilter(query, filter.GetLimit(), filter.GetOffset())
	}
	return query
}

// ApplySorting orders the query per the filter, falling back to
// newest-first when no filter is given
func ApplySorting[T any](query T, filter types.BaseFilter, opts BaseQueryOptions[T]) T {
	if filter == nil {
		return opts.ApplySortFilter(query, "created_at", "desc")
	}
	return opts.ApplySortFilter(query, filter.GetSort(), filter.GetOrder())
}

// ApplyQueryOptions runs the full chain of tenant scoping, sorting and
// pagination for a list query
func ApplyQueryOptions[T any](ctx context.Context, query T, filter types.BaseFilter, opts BaseQueryOptions[T]) T {
	query = ApplyBaseFilters(ctx, query, filter, opts)
	if filter == nil {
		return query
	}
	query = ApplySorting(query, filter, opts)
	return ApplyPagination(query, filter, opts)
}

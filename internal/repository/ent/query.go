package ent

import (
	"context"
)

// BaseQueryOptions is implemented once per entity so the generic
// helpers in query_builder.go can apply tenant scoping, status,
// sorting and pagination to any ent query type.
type BaseQueryOptions[T any] interface {
	ApplyTenantFilter(ctx context.Context, query T) T
	ApplyStatusFilter(query T, status string) T
	ApplySortFilter(query T, field string, order string) T
	ApplyPaginationFilter(query T, limit int, offset int) T
	// GetFieldName maps a filter sort key to its column name
	GetFieldName(field string) string
}

package types

import (
	"time"

	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/samber/lo"
)

var (
	// FILTER_DEFAULT_LIMIT is the default number of records to return
	FILTER_DEFAULT_LIMIT = 50
	// FILTER_DEFAULT_MAX_LIMIT is the maximum number of records to return
	FILTER_DEFAULT_MAX_LIMIT = 1000
	// FILTER_DEFAULT_OFFSET is the default offset for pagination
	FILTER_DEFAULT_OFFSET = 0
	// FILTER_DEFAULT_STATUS is the default status for filtering
	FILTER_DEFAULT_STATUS = StatusPublished
	// FILTER_DEFAULT_SORT is the default sort field
	FILTER_DEFAULT_SORT = "created_at"
	// FILTER_DEFAULT_ORDER is the default sort order
	FILTER_DEFAULT_ORDER = "desc"
)

// BaseFilter defines the common interface for all filters
type BaseFilter interface {
	GetLimit() int
	GetOffset() int
	GetStatus() string
	GetSort() string
	GetOrder() string
	GetExpand() Expand
	Validate() error
	IsUnlimited() bool
}

// QueryFilter represents a generic query filter with optional fields
type QueryFilter struct {
	Limit  *int    `json:"limit,omitempty" form:"limit" validate:"omitempty,min=1,max=1000"`
	Offset *int    `json:"offset,omitempty" form:"offset" validate:"omitempty,min=0"`
	Status *Status `json:"status,omitempty" form:"status"`
	Sort   *string `json:"sort,omitempty" form:"sort"`
	Order  *string `json:"order,omitempty" form:"order" validate:"omitempty,oneof=asc desc"`
	Expand *string `json:"expand,omitempty" form:"expand"`
}

// NewDefaultQueryFilter creates a new QueryFilter with default values
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(FILTER_DEFAULT_LIMIT),
		Offset: lo.ToPtr(FILTER_DEFAULT_OFFSET),
		Status: lo.ToPtr(FILTER_DEFAULT_STATUS),
		Sort:   lo.ToPtr(FILTER_DEFAULT_SORT),
		Order:  lo.ToPtr(FILTER_DEFAULT_ORDER),
	}
}

// NewNoLimitQueryFilter creates a new QueryFilter with no limit
func NewNoLimitQueryFilter() *QueryFilter {
	filter := NewDefaultQueryFilter()
	filter.Limit = nil
	return filter
}

func (f QueryFilter) Validate() error {
	if f.Limit != nil {
		if *f.Limit < 1 || *f.Limit > FILTER_DEFAULT_MAX_LIMIT {
			return ierr.NewError("invalid limit").
				WithHint("Limit must be between 1 and 1000").
				Mark(ierr.ErrValidation)
		}
	}
	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewError("invalid offset").
			WithHint("Offset must be non negative").
			Mark(ierr.ErrValidation)
	}
	if f.Order != nil && *f.Order != "asc" && *f.Order != "desc" {
		return ierr.NewError("invalid order").
			WithHint("Order must be either asc or desc").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (f QueryFilter) GetLimit() int {
	if f.Limit == nil {
		if f.IsUnlimited() {
			return 0
		}
		return FILTER_DEFAULT_LIMIT
	}
	return *f.Limit
}

func (f QueryFilter) GetOffset() int {
	if f.Offset == nil {
		return FILTER_DEFAULT_OFFSET
	}
	return *f.Offset
}

func (f QueryFilter) GetStatus() string {
	if f.Status == nil {
		return string(FILTER_DEFAULT_STATUS)
	}
	return string(*f.Status)
}

func (f QueryFilter) GetSort() string {
	if f.Sort == nil {
		return FILTER_DEFAULT_SORT
	}
	return *f.Sort
}

func (f QueryFilter) GetOrder() string {
	if f.Order == nil {
		return FILTER_DEFAULT_ORDER
	}
	return *f.Order
}

func (f QueryFilter) GetExpand() Expand {
	if f.Expand == nil {
		return NewExpand("")
	}
	return NewExpand(*f.Expand)
}

func (f QueryFilter) IsUnlimited() bool {
	return f.Limit == nil
}

// TimeRangeFilter adds time range filtering capabilities
type TimeRangeFilter struct {
	StartTime *time.Time `json:"start_time,omitempty" form:"start_time" validate:"omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty" form:"end_time" validate:"omitempty,gtfield=StartTime"`
}

func (f TimeRangeFilter) Validate() error {
	if f.StartTime != nil && f.EndTime != nil && f.StartTime.After(*f.EndTime) {
		return ierr.NewError("invalid time range").
			WithHint("Start time must be before end time").
			Mark(ierr.ErrValidation)
	}
	return nil
}

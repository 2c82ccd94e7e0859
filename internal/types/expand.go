package types

import (
	"strings"
)

// ExpandableField represents a field that can be expanded in API responses
type ExpandableField string

// Common expandable fields
const (
	ExpandCustomer  ExpandableField = "customer"
	ExpandSchedule  ExpandableField = "schedule"
	ExpandLineItems ExpandableField = "line_items"
	ExpandInvoice   ExpandableField = "invoice"
	ExpandAttempts  ExpandableField = "attempts"
)

// Expand represents the expand parameter in API requests
type Expand struct {
	Fields map[ExpandableField]bool
}

// NewExpand creates a new Expand from a comma-separated string of fields
func NewExpand(expand string) Expand {
	result := Expand{
		Fields: make(map[ExpandableField]bool),
	}
	if expand == "" {
		return result
	}

	for _, field := range strings.Split(expand, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		result.Fields[ExpandableField(field)] = true
	}

	return result
}

// Has checks if a field should be expanded
func (e Expand) Has(field ExpandableField) bool {
	return e.Fields[field]
}

// IsEmpty checks if no fields are to be expanded
func (e Expand) IsEmpty() bool {
	return len(e.Fields) == 0
}

// String returns a string representation of the expand
func (e Expand) String() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, string(field))
	}
	return strings.Join(fields, ",")
}

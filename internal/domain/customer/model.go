package customer

import (
	"time"

	"github.com/invoiceflow/invoiceflow/ent"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

// Customer represents a billed client relationship
type Customer struct {
	ID                     string         `json:"id"`
	ExternalID             string         `json:"external_id,omitempty"`
	Name                   string         `json:"name"`
	Email                  string         `json:"email,omitempty"`
	Timezone               string         `json:"timezone"`
	GatewayCustomerID      *string        `json:"gateway_customer_id,omitempty"`
	DefaultPaymentMethodID *string        `json:"default_payment_method_id,omitempty"`
	Metadata               types.Metadata `json:"metadata,omitempty"`

	types.BaseModel
}

func (c *Customer) Validate() error {
	if c.Name == "" {
		return ierr.NewError("invalid name").
			WithHint("Customer name is required").
			Mark(ierr.ErrValidation)
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return ierr.NewError("invalid timezone").
				WithHint("Timezone must be a valid IANA zone name").
				WithReportableDetails(map[string]any{
					"timezone": c.Timezone,
				}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

// Location resolves the customer's timezone, falling back to UTC
func (c *Customer) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FromEnt converts an Ent customer to a domain customer
func FromEnt(c *ent.Customer) *Customer {
	if c == nil {
		return nil
	}
	return &Customer{
		ID:                     c.ID,
		ExternalID:             c.ExternalID,
		Name:                   c.Name,
		Email:                  c.Email,
		Timezone:               c.Timezone,
		GatewayCustomerID:      c.GatewayCustomerID,
		DefaultPaymentMethodID: c.DefaultPaymentMethodID,
		Metadata:               c.Metadata,
		BaseModel: types.BaseModel{
			TenantID:  c.TenantID,
			Status:    types.Status(c.Status),
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
			CreatedBy: c.CreatedBy,
			UpdatedBy: c.UpdatedBy,
		},
	}
}

// FromEntList converts a list of Ent customers to domain customers
func FromEntList(customers []*ent.Customer) []*Customer {
	result := make([]*Customer, len(customers))
	for i, c := range customers {
		result[i] = FromEnt(c)
	}
	return result
}

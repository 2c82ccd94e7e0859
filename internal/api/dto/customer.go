package dto

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/invoiceflow/invoiceflow/internal/domain/customer"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

type CreateCustomerRequest struct {
	ExternalID             string            `json:"external_id"`
	Name                   string            `json:"name" validate:"required"`
	Email                  string            `json:"email" validate:"omitempty,email"`
	Timezone               string            `json:"timezone" validate:"omitempty,timezone"`
	GatewayCustomerID      *string           `json:"gateway_customer_id,omitempty"`
	DefaultPaymentMethodID *string           `json:"default_payment_method_id,omitempty"`
	Metadata               map[string]string `json:"metadata,omitempty"`
}

type UpdateCustomerRequest struct {
	Name                   *string           `json:"name"`
	Email                  *string           `json:"email" validate:"omitempty,email"`
	Timezone               *string           `json:"timezone" validate:"omitempty,timezone"`
	GatewayCustomerID      *string           `json:"gateway_customer_id"`
	DefaultPaymentMethodID *string           `json:"default_payment_method_id"`
	Metadata               map[string]string `json:"metadata,omitempty"`
}

type CustomerResponse struct {
	*customer.Customer
}

// ListCustomersResponse represents the response for listing customers
type ListCustomersResponse = types.ListResponse[*CustomerResponse]

func (r *CreateCustomerRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *CreateCustomerRequest) ToCustomer(ctx context.Context) *customer.Customer {
	timezone := r.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	return &customer.Customer{
		ID:                     types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CUSTOMER),
		ExternalID:             r.ExternalID,
		Name:                   r.Name,
		Email:                  r.Email,
		Timezone:               timezone,
		GatewayCustomerID:      r.GatewayCustomerID,
		DefaultPaymentMethodID: r.DefaultPaymentMethodID,
		Metadata:               r.Metadata,
		BaseModel:              types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateCustomerRequest) Validate() error {
	return validator.New().Struct(r)
}

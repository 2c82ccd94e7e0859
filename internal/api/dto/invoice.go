package dto

import (
	"github.com/invoiceflow/invoiceflow/internal/domain/invoice"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

type InvoiceResponse struct {
	*invoice.Invoice

	Customer *CustomerResponse `json:"customer,omitempty"`
}

// ListInvoicesResponse represents the response for listing invoices
type ListInvoicesResponse = types.ListResponse[*InvoiceResponse]

type VoidInvoiceRequest struct {
	Reason string `json:"reason,omitempty"`
}

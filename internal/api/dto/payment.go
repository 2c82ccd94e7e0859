package dto

import (
	"github.com/invoiceflow/invoiceflow/internal/domain/payment"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

type PaymentResponse struct {
	*payment.Payment
}

// ListPaymentsResponse represents the response for listing payments
type ListPaymentsResponse = types.ListResponse[*PaymentResponse]

type AttemptResponse struct {
	*payment.Attempt
}

// ListAttemptsResponse represents the response for listing payment attempts
type ListAttemptsResponse = types.ListResponse[*AttemptResponse]

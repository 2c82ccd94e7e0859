package gateway

import (
	"context"

	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

// ChargeRequest describes one outbound charge against the gateway
type ChargeRequest struct {
	PaymentID         string
	InvoiceID         string
	CustomerID        string
	GatewayCustomerID string
	PaymentMethodID   string
	Amount            decimal.Decimal
	Currency          string
	Metadata          types.Metadata
}

// ChargeResult is returned only on success; failures come back as
// errors marked ErrPaymentRetryable or ErrPaymentTerminal so the
// payment processor can drive its state machine off the mark.
type ChargeResult struct {
	GatewayPaymentID string
}

// Gateway is the outbound payment collaborator
type Gateway interface {
	Name() string
	// Charge attempts to collect the given amount. The call blocks on
	// network I/O and honours the context deadline; a timeout is a
	// retryable failure.
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}

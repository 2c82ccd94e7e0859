package gateway

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/invoiceflow/invoiceflow/internal/config"
	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

const gatewayNameStripe = "stripe"

// terminalDeclineCodes are issuer responses that retrying cannot fix
var terminalDeclineCodes = map[stripe.DeclineCode]bool{
	stripe.DeclineCodeStolenCard:            true,
	stripe.DeclineCodeLostCard:              true,
	stripe.DeclineCodeFraudulent:            true,
	stripe.DeclineCodeInvalidAccount:        true,
	stripe.DeclineCodeIncorrectNumber:       true,
	stripe.DeclineCodeExpiredCard:           true,
	stripe.DeclineCodePickupCard:            true,
	stripe.DeclineCodeRestrictedCard:        true,
	stripe.DeclineCodeSecurityViolation:     true,
	stripe.DeclineCodeTransactionNotAllowed: true,
}

// StripeGateway charges off-session via PaymentIntents
type StripeGateway struct {
	client  *stripe.Client
	timeout time.Duration
	logger  *logger.Logger
}

// NewStripeGateway creates a new Stripe gateway client
func NewStripeGateway(cfg *config.Configuration, logger *logger.Logger) Gateway {
	return &StripeGateway{
		client:  stripe.NewClient(cfg.Stripe.SecretKey, nil),
		timeout: cfg.Stripe.RequestTimeout,
		logger:  logger,
	}
}

func (g *StripeGateway) Name() string {
	return gatewayNameStripe
}

// Charge creates and confirms an off-session PaymentIntent. Connection
// level failures are retried in place with a short exponential backoff;
// everything that survives that is classified retryable or terminal for
// the payment state machine.
func (g *StripeGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error) {
	if req.GatewayCustomerID == "" || req.PaymentMethodID == "" {
		return nil, ierr.NewError("no saved payment method").
			WithHint("Customer has no gateway customer or saved payment method").
			WithReportableDetails(map[string]any{
				"customer_id": req.CustomerID,
			}).
			Mark(ierr.ErrPaymentTerminal)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	amountInCents := req.Amount.Mul(decimal.NewFromInt(100)).IntPart()
	params := &stripe.PaymentIntentCreateParams{
		Amount:        stripe.Int64(amountInCents),
		Currency:      stripe.String(req.Currency),
		Customer:      stripe.String(req.GatewayCustomerID),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		OffSession:    stripe.Bool(true),
		Confirm:       stripe.Bool(true),
		Metadata: map[string]string{
			"invoiceflow_payment_id": req.PaymentID,
			"invoice_id":             req.InvoiceID,
			"customer_id":            req.CustomerID,
		},
	}
	for k, v := range req.Metadata {
		params.Metadata[k] = v
	}

	var intent *stripe.PaymentIntent
	operation := func() error {
		var err error
		intent, err = g.client.V1PaymentIntents.Create(ctx, params)
		if err != nil && !isConnectionError(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		return nil, g.classifyError(req, err)
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return &ChargeResult{GatewayPaymentID: intent.ID}, nil
	case stripe.PaymentIntentStatusProcessing:
		// Treated as retryable; the retry driver will find the charge
		// settled or failed on the next pass
		return nil, ierr.NewError("payment intent still processing").
			WithHint("Gateway has not settled the charge yet").
			WithReportableDetails(map[string]any{
				"payment_intent_id": intent.ID,
			}).
			Mark(ierr.ErrPaymentRetryable)
	default:
		return nil, ierr.NewError("payment intent not completed").
			WithHint("Charge did not complete").
			WithReportableDetails(map[string]any{
				"payment_intent_id": intent.ID,
				"intent_status":     string(intent.Status),
			}).
			Mark(ierr.ErrPaymentTerminal)
	}
}

// classifyError maps a gateway failure onto the retryable/terminal split
func (g *StripeGateway) classifyError(req *ChargeRequest, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ierr.WithError(err).
			WithHint("Gateway call timed out").
			Mark(ierr.ErrPaymentRetryable)
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		details := map[string]any{
			"payment_id":   req.PaymentID,
			"stripe_code":  string(stripeErr.Code),
			"decline_code": string(stripeErr.DeclineCode),
		}

		if isConnectionError(err) {
			return ierr.WithError(err).
				WithHint("Gateway unreachable").
				WithReportableDetails(details).
				Mark(ierr.ErrPaymentRetryable)
		}

		if stripeErr.Code == stripe.ErrorCodeCardDeclined && !terminalDeclineCodes[stripeErr.DeclineCode] {
			// Generic and soft declines are worth retrying
			return ierr.WithError(err).
				WithHint("Card declined, retry possible").
				WithReportableDetails(details).
				Mark(ierr.ErrPaymentRetryable)
		}

		return ierr.WithError(err).
			WithHint("Payment declined permanently").
			WithReportableDetails(details).
			Mark(ierr.ErrPaymentTerminal)
	}

	g.logger.Errorw("unclassified gateway error", "error", err, "payment_id", req.PaymentID)
	return ierr.WithError(err).
		WithHint("Gateway call failed").
		Mark(ierr.ErrPaymentRetryable)
}

// isConnectionError reports whether the failure happened below the payment
// layer. Stripe surfaces transport problems as ErrorTypeAPI or a 5xx status;
// anything implementing net.Error never reached Stripe at all.
func isConnectionError(err error) bool {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return stripeErr.Type == stripe.ErrorTypeAPI ||
			stripeErr.HTTPStatusCode >= 500
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

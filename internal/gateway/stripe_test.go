package gateway

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v82"

	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/logger"
)

func TestIsConnectionError(t *testing.T) {
	assert.True(t, isConnectionError(&stripe.Error{Type: stripe.ErrorTypeAPI}))
	assert.True(t, isConnectionError(&stripe.Error{Type: stripe.ErrorTypeInvalidRequest, HTTPStatusCode: 502}))
	assert.False(t, isConnectionError(&stripe.Error{Type: stripe.ErrorTypeCard, HTTPStatusCode: 402}))
	assert.True(t, isConnectionError(&net.DNSError{Err: "lookup timed out", IsTimeout: true}))
	assert.False(t, isConnectionError(errors.New("something else")))
}

func TestClassifyError(t *testing.T) {
	g := &StripeGateway{logger: logger.GetLogger(), timeout: time.Second}
	req := &ChargeRequest{PaymentID: "pay_classify_test"}

	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{
			name:      "server side stripe outage",
			err:       &stripe.Error{Type: stripe.ErrorTypeAPI, HTTPStatusCode: 503},
			retryable: true,
		},
		{
			name:      "soft decline",
			err:       &stripe.Error{Code: stripe.ErrorCodeCardDeclined, DeclineCode: stripe.DeclineCodeInsufficientFunds, HTTPStatusCode: 402},
			retryable: true,
		},
		{
			name:      "hard decline",
			err:       &stripe.Error{Code: stripe.ErrorCodeCardDeclined, DeclineCode: stripe.DeclineCodeStolenCard, HTTPStatusCode: 402},
			retryable: false,
		},
		{
			name:      "timeout",
			err:       context.DeadlineExceeded,
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := g.classifyError(req, tt.err)
			if tt.retryable {
				assert.True(t, ierr.IsPaymentRetryable(classified))
			} else {
				assert.True(t, ierr.IsPaymentTerminal(classified))
			}
		})
	}
}

package testutil

import (
	"context"
	"fmt"
	"sync"

	ierr "github.com/invoiceflow/invoiceflow/internal/errors"
	"github.com/invoiceflow/invoiceflow/internal/gateway"
)

// ChargeOutcome scripts the result of a single fake gateway call
type ChargeOutcome string

const (
	ChargeOutcomeSuccess   ChargeOutcome = "success"
	ChargeOutcomeRetryable ChargeOutcome = "retryable"
	ChargeOutcomeTerminal  ChargeOutcome = "terminal"
)

// FakeGateway is a scriptable payment gateway for tests. Outcomes are
// consumed in order; once the script runs out every call succeeds.
type FakeGateway struct {
	mu       sync.Mutex
	script   []ChargeOutcome
	requests []*gateway.ChargeRequest
	calls    int
}

var _ gateway.Gateway = (*FakeGateway)(nil)

// NewFakeGateway creates a fake gateway with the given outcome script
func NewFakeGateway(script ...ChargeOutcome) *FakeGateway {
	return &FakeGateway{script: script}
}

func (g *FakeGateway) Name() string {
	return "fake"
}

func (g *FakeGateway) Charge(ctx context.Context, req *gateway.ChargeRequest) (*gateway.ChargeResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls++
	g.requests = append(g.requests, req)

	outcome := ChargeOutcomeSuccess
	if len(g.script) > 0 {
		outcome = g.script[0]
		g.script = g.script[1:]
	}

	switch outcome {
	case ChargeOutcomeRetryable:
		return nil, ierr.NewError("card declined").
			WithHint("The card was declined, retry may succeed").
			Mark(ierr.ErrPaymentRetryable)
	case ChargeOutcomeTerminal:
		return nil, ierr.NewError("card reported lost").
			WithHint("The card was permanently declined").
			Mark(ierr.ErrPaymentTerminal)
	default:
		return &gateway.ChargeResult{
			GatewayPaymentID: fmt.Sprintf("pi_fake_%d", g.calls),
		}, nil
	}
}

// Calls returns how many charges were attempted
func (g *FakeGateway) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// Requests returns the charge requests seen so far
func (g *FakeGateway) Requests() []*gateway.ChargeRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]*gateway.ChargeRequest(nil), g.requests...)
}

// Enqueue appends outcomes to the script
func (g *FakeGateway) Enqueue(outcomes ...ChargeOutcome) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.script = append(g.script, outcomes...)
}

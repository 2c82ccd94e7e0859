package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/invoiceflow/invoiceflow/internal/email"
)

// FakeEmailSender records outgoing emails instead of sending them
type FakeEmailSender struct {
	mu   sync.Mutex
	sent []email.SendEmailRequest
}

var _ email.Sender = (*FakeEmailSender)(nil)

// NewFakeEmailSender creates a fake email sender
func NewFakeEmailSender() *FakeEmailSender {
	return &FakeEmailSender{}
}

func (s *FakeEmailSender) SendEmail(ctx context.Context, req email.SendEmailRequest) (*email.SendEmailResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sent = append(s.sent, req)
	return &email.SendEmailResponse{
		MessageID: fmt.Sprintf("msg_fake_%d", len(s.sent)),
		Success:   true,
	}, nil
}

// Sent returns the emails recorded so far
func (s *FakeEmailSender) Sent() []email.SendEmailRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]email.SendEmailRequest(nil), s.sent...)
}

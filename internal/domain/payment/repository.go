package payment

import (
	"context"
	"time"

	"github.com/invoiceflow/invoiceflow/internal/types"
)

// Repository defines the interface for payment persistence
type Repository interface {
	// Payment operations
	Create(ctx context.Context, payment *Payment) error
	Get(ctx context.Context, id string) (*Payment, error)
	Update(ctx context.Context, payment *Payment) error
	List(ctx context.Context, filter *types.PaymentFilter) ([]*Payment, error)
	Count(ctx context.Context, filter *types.PaymentFilter) (int, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*Payment, error)
	// ListDueRetries returns non-terminal payments whose next retry is
	// due on or before asOf
	ListDueRetries(ctx context.Context, asOf time.Time, limit int) ([]*Payment, error)

	// Payment attempt operations
	CreateAttempt(ctx context.Context, attempt *Attempt) error
	GetAttempt(ctx context.Context, id string) (*Attempt, error)
	UpdateAttempt(ctx context.Context, attempt *Attempt) error
	ListAttempts(ctx context.Context, paymentID string) ([]*Attempt, error)
	GetLatestAttempt(ctx context.Context, paymentID string) (*Attempt, error)
}

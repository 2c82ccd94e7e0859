package invoice

import (
	"context"

	"github.com/invoiceflow/invoiceflow/internal/types"
)

// Repository defines the interface for invoice persistence
type Repository interface {
	// CreateWithLineItems persists the invoice and its line items
	// atomically
	CreateWithLineItems(ctx context.Context, invoice *Invoice) error
	Get(ctx context.Context, id string) (*Invoice, error)
	GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (*Invoice, error)
	Update(ctx context.Context, invoice *Invoice) error
	List(ctx context.Context, filter *types.InvoiceFilter) ([]*Invoice, error)
	Count(ctx context.Context, filter *types.InvoiceFilter) (int, error)
}

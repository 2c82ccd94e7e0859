package schedule

import (
	"context"
	"time"

	"github.com/invoiceflow/invoiceflow/internal/types"
)

// Repository defines the interface for schedule persistence
type Repository interface {
	// Schedule operations
	Create(ctx context.Context, schedule *Schedule) error
	Get(ctx context.Context, id string) (*Schedule, error)
	Update(ctx context.Context, schedule *Schedule) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.ScheduleFilter) ([]*Schedule, error)
	Count(ctx context.Context, filter *types.ScheduleFilter) (int, error)
	// ListDue returns active schedules whose next run date is on or
	// before asOf, oldest cursor first
	ListDue(ctx context.Context, asOf time.Time, limit int) ([]*Schedule, error)

	// Execution ledger operations
	CreateExecution(ctx context.Context, execution *Execution) error
	GetExecution(ctx context.Context, id string) (*Execution, error)
	// GetExecutionByPeriod looks up the ledger row for a schedule's
	// billing period date
	GetExecutionByPeriod(ctx context.Context, scheduleID string, periodDate time.Time) (*Execution, error)
	UpdateExecution(ctx context.Context, execution *Execution) error
	ListExecutions(ctx context.Context, scheduleID string) ([]*Execution, error)
}

package ports

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"

	"github.com/shopspring/decimal"
)

// WorkOrderStatistics summarizes work orders for reporting dashboards.
type WorkOrderStatistics struct {
	TotalWorkOrders       int
	CompletedWorkOrders   int
	ActiveWorkOrders      int
	OverdueWorkOrders     int
	TotalRevenue          decimal.Decimal
	AverageCompletionDays decimal.Decimal
}

// WorkOrderRepository defines the persistence contract for work order
// aggregates, including the reporting queries the back office runs.
type WorkOrderRepository interface {
	// Add persists a new work order aggregate to storage.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order aggregate,
	// including its owned quote.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetByCustomer retrieves all work orders opened for a customer.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*workorder.WorkOrder, error)

	// GetByVehicle retrieves all work orders opened for a vehicle.
	GetByVehicle(ctx context.Context, vehicleID kernel.UUID) ([]*workorder.WorkOrder, error)

	// GetByStatuses retrieves all work orders currently in any of the
	// given statuses.
	GetByStatuses(ctx context.Context, statuses []workorder.Status) ([]*workorder.WorkOrder, error)

	// GetAllActive retrieves work orders that are not completed,
	// delivered, or cancelled.
	GetAllActive(ctx context.Context) ([]*workorder.WorkOrder, error)

	// GetWithExpiredQuotes retrieves work orders awaiting approval whose
	// quote expired before the given moment.
	GetWithExpiredQuotes(ctx context.Context, now time.Time) ([]*workorder.WorkOrder, error)

	// GetStatusCounts returns the number of work orders per status.
	GetStatusCounts(ctx context.Context) (map[workorder.Status]int, error)

	// GetStatistics aggregates reporting statistics for work orders
	// created within [from, to). Zero times mean an unbounded range.
	GetStatistics(ctx context.Context, from, to time.Time) (WorkOrderStatistics, error)
}

package queries

import (
	"errors"
	"time"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetWorkOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetWorkOrderStatisticsQuery must be created via NewGetWorkOrderStatisticsQuery constructor",
)

// GetWorkOrderStatisticsQuery retrieves reporting statistics for work orders
// created within [From, To). Zero times mean an unbounded range.
//
// Example:
//
//	query, _ := NewGetWorkOrderStatisticsQuery(monthStart, monthEnd)
//	handler := NewGetWorkOrderStatisticsQueryHandler(db)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load statistics: %w", err)
//	}
//	fmt.Printf("Revenue: %s from %d delivered jobs\n",
//	    stats.TotalRevenue, stats.DeliveredWorkOrders)
type GetWorkOrderStatisticsQuery struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetWorkOrderStatisticsQuery creates a statistics query for the given
// creation date range. Either bound may be zero; a non-zero To must not
// precede From.
func NewGetWorkOrderStatisticsQuery(from, to time.Time) (GetWorkOrderStatisticsQuery, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return GetWorkOrderStatisticsQuery{}, errs.NewValueIsInvalidError("to cannot precede from")
	}

	return GetWorkOrderStatisticsQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderStatisticsQueryIsNotConstructed)
}

// From returns the inclusive lower bound of the creation date range.
func (q GetWorkOrderStatisticsQuery) From() time.Time {
	return q.from
}

// To returns the exclusive upper bound of the creation date range.
func (q GetWorkOrderStatisticsQuery) To() time.Time {
	return q.to
}

// GetWorkOrderStatisticsQueryResponse summarizes work orders for reporting
// dashboards. Revenue counts only delivered work orders with an approved
// quote.
type GetWorkOrderStatisticsQueryResponse struct {
	TotalWorkOrders     int
	ActiveWorkOrders    int
	DeliveredWorkOrders int
	StatusCounts        map[string]int
	ServiceTypeCounts   map[string]int
	PriorityCounts      map[string]int
	TotalRevenue        decimal.Decimal
}

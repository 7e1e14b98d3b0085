package queries

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/workorder"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetWorkOrderStatisticsQueryHandler aggregates work order statistics from
// the database for reporting dashboards.
type GetWorkOrderStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrderStatisticsQueryHandler creates a handler for statistics
// queries. Requires a GORM database connection for query execution.
func NewGetWorkOrderStatisticsQueryHandler(db *gorm.DB) GetWorkOrderStatisticsQueryHandler {
	return GetWorkOrderStatisticsQueryHandler{db: db}
}

// Handle executes the query. Counts are grouped per status, service type,
// and priority; revenue sums the approved quote totals of delivered work
// orders in the range.
func (h GetWorkOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderStatisticsQuery,
) (GetWorkOrderStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkOrderStatisticsQueryResponse{}, err
	}

	response := GetWorkOrderStatisticsQueryResponse{
		StatusCounts:      make(map[string]int),
		ServiceTypeCounts: make(map[string]int),
		PriorityCounts:    make(map[string]int),
		TotalRevenue:      decimal.Zero,
	}

	rangeFilter := `
		AND (CAST(? AS timestamptz) IS NULL OR w.created_at >= ?)
		AND (CAST(? AS timestamptz) IS NULL OR w.created_at < ?)
	`
	from := nullableTime(query.From())
	to := nullableTime(query.To())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT w.status, w.service_type, w.priority, COUNT(*)
		FROM work_orders w
		WHERE 1=1`+rangeFilter+`
		GROUP BY w.status, w.service_type, w.priority
	`, from, from, to, to).Rows()
	if err != nil {
		return GetWorkOrderStatisticsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, serviceType, priority string
		var count int

		if err = rows.Scan(&status, &serviceType, &priority, &count); err != nil {
			return GetWorkOrderStatisticsQueryResponse{}, err
		}

		response.TotalWorkOrders += count
		response.StatusCounts[status] += count
		response.ServiceTypeCounts[serviceType] += count
		response.PriorityCounts[priority] += count
	}
	if err = rows.Err(); err != nil {
		return GetWorkOrderStatisticsQueryResponse{}, err
	}

	response.DeliveredWorkOrders = response.StatusCounts[workorder.StatusDelivered.String()]
	for _, status := range []workorder.Status{
		workorder.StatusCompleted, workorder.StatusDelivered, workorder.StatusCancelled,
	} {
		response.ActiveWorkOrders -= response.StatusCounts[status.String()]
	}
	response.ActiveWorkOrders += response.TotalWorkOrders

	var revenue decimal.NullDecimal
	err = h.db.WithContext(ctx).Raw(`
		SELECT SUM(q.total_amount)
		FROM work_orders w
		JOIN quotes q ON q.work_order_id = w.id
		WHERE w.status = ?
		AND q.is_approved`+rangeFilter,
		workorder.StatusDelivered.String(), from, from, to, to,
	).Row().Scan(&revenue)
	if err != nil {
		return GetWorkOrderStatisticsQueryResponse{}, err
	}
	if revenue.Valid {
		response.TotalRevenue = revenue.Decimal
	}

	return response, nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

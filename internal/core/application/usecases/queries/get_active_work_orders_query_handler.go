package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveWorkOrdersQueryHandler loads the active work order board from the
// database. Joins customers and vehicles so the board can be rendered
// without further lookups.
type GetActiveWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveWorkOrdersQueryHandler creates a handler for board queries.
// Requires a GORM database connection for query execution.
func NewGetActiveWorkOrdersQueryHandler(db *gorm.DB) GetActiveWorkOrdersQueryHandler {
	return GetActiveWorkOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are ordered by priority (most urgent
// first) and then by requested date so the oldest urgent jobs surface at the
// top of the board.
func (h GetActiveWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveWorkOrdersQuery,
) ([]GetActiveWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]GetActiveWorkOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			w.id,
			w.status,
			w.service_type,
			w.priority,
			w.service_description,
			c.full_name,
			v.license_plate,
			w.requested_date,
			w.assigned_technician
		FROM work_orders w
		JOIN customers c ON c.id = w.customer_id
		JOIN vehicles v ON v.id = w.vehicle_id
		WHERE w.status NOT IN (?, ?, ?)
		ORDER BY
			CASE w.priority
				WHEN ? THEN 0
				WHEN ? THEN 1
				ELSE 2
			END,
			w.requested_date
	`,
		workorder.StatusCompleted.String(),
		workorder.StatusDelivered.String(),
		workorder.StatusCancelled.String(),
		workorder.ServicePriorityEmergency.String(),
		workorder.ServicePriorityHigh.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetActiveWorkOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.Status,
			&row.ServiceType,
			&row.Priority,
			&row.ServiceDescription,
			&row.CustomerName,
			&row.LicensePlate,
			&row.RequestedDate,
			&row.AssignedTechnician,
		)
		if err != nil {
			return nil, err
		}

		workOrderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = workOrderID

		board = append(board, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}

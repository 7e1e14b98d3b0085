package queries

import (
	"context"

	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveCustomersQueryHandler loads the active customer directory from
// the database, counting linked vehicles in the same pass.
type GetActiveCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveCustomersQueryHandler creates a handler for customer directory
// queries. Requires a GORM database connection for query execution.
func NewGetActiveCustomersQueryHandler(db *gorm.DB) GetActiveCustomersQueryHandler {
	return GetActiveCustomersQueryHandler{db: db}
}

// Handle executes the query. Results are ordered by full name.
func (h GetActiveCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveCustomersQuery,
) ([]GetActiveCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	directory := make([]GetActiveCustomersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.full_name,
			c.email,
			c.phone_number,
			c.preferred_contact_method,
			c.date_registered,
			COUNT(cv.vehicle_id)
		FROM customers c
		LEFT JOIN customer_vehicles cv ON cv.customer_id = c.id
		WHERE c.is_active AND NOT c.is_deleted
		GROUP BY
			c.id, c.full_name, c.email, c.phone_number,
			c.preferred_contact_method, c.date_registered
		ORDER BY c.full_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetActiveCustomersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.FullName,
			&row.Email,
			&row.PhoneNumber,
			&row.PreferredContactMethod,
			&row.DateRegistered,
			&row.VehicleCount,
		)
		if err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = customerID

		directory = append(directory, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return directory, nil
}

package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle
// aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetByCustomer retrieves all vehicles owned by a customer.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*vehicle.Vehicle, error)

	// GetByLicensePlate retrieves the vehicle carrying the given plate, or
	// an ObjectNotFoundError when none exists.
	GetByLicensePlate(ctx context.Context, plate vehicle.LicensePlate) (*vehicle.Vehicle, error)

	// GetByVin retrieves the vehicle with the given VIN, or an
	// ObjectNotFoundError when none exists.
	GetByVin(ctx context.Context, vin string) (*vehicle.Vehicle, error)
}

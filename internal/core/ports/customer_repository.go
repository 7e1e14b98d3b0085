package ports

import (
	"context"

	"workshop/internal/core/domain/model/customer"
	"workshop/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer
// aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves the customer registered with the given
	// normalized email, or an ObjectNotFoundError when none exists.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// ExistsWithEmail reports whether any customer is registered with the
	// given normalized email.
	ExistsWithEmail(ctx context.Context, email string) (bool, error)

	// GetAllActive retrieves every active customer.
	GetAllActive(ctx context.Context) ([]*customer.Customer, error)
}

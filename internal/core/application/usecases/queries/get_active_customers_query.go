package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetActiveCustomersQueryIsNotConstructed = errors.New(
	"GetActiveCustomersQuery must be created via NewGetActiveCustomersQuery constructor",
)

// GetActiveCustomersQuery retrieves the directory of active customers with
// the contact details the front desk needs, plus how many vehicles each one
// has on file.
type GetActiveCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveCustomersQuery creates a query to retrieve active customers.
// This is a parameterless query.
func NewGetActiveCustomersQuery() GetActiveCustomersQuery {
	return GetActiveCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveCustomersQueryIsNotConstructed)
}

// GetActiveCustomersQueryResponse is one row of the customer directory.
type GetActiveCustomersQueryResponse struct {
	ID                     kernel.UUID
	FullName               string
	Email                  string
	PhoneNumber            string
	PreferredContactMethod string
	DateRegistered         time.Time
	VehicleCount           int
}

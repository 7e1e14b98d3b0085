// Package queries contains read-only operations for the CQRS read side.
// Query handlers go straight to the database with raw SQL and return flat
// response structs, bypassing the aggregates entirely.
package queries

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetActiveWorkOrdersQueryIsNotConstructed = errors.New(
	"GetActiveWorkOrdersQuery must be created via NewGetActiveWorkOrdersQuery constructor",
)

// GetActiveWorkOrdersQuery retrieves the shop floor board: every work order
// that is not completed, delivered, or cancelled, joined with the customer
// and vehicle it belongs to.
//
// Example:
//
//	query := NewGetActiveWorkOrdersQuery()
//	handler := NewGetActiveWorkOrdersQueryHandler(db)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load the board: %w", err)
//	}
//	for _, row := range board {
//	    fmt.Printf("%s %s [%s]\n", row.LicensePlate, row.ServiceDescription, row.Status)
//	}
type GetActiveWorkOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveWorkOrdersQuery creates a query to retrieve the active board.
// This is a parameterless query.
func NewGetActiveWorkOrdersQuery() GetActiveWorkOrdersQuery {
	return GetActiveWorkOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveWorkOrdersQueryIsNotConstructed)
}

// GetActiveWorkOrdersQueryResponse is one row of the shop floor board.
type GetActiveWorkOrdersQueryResponse struct {
	ID                 kernel.UUID
	Status             string
	ServiceType        string
	Priority           string
	ServiceDescription string
	CustomerName       string
	LicensePlate       string
	RequestedDate      time.Time
	AssignedTechnician string
}

package commands

import (
	"context"

	"workshop/internal/core/domain/services"
	"workshop/internal/core/ports"
)

// RegisterCustomerCommandHandler handles the business logic for customer
// registration. Enforces email uniqueness and registers the optional first
// vehicle in the same transaction. After a successful commit the buffered
// domain events are handed to the event dispatcher.
//
// Example:
//
//	handler := NewRegisterCustomerCommandHandler(uowFactory, dispatcher)
//	cmd, _ := NewRegisterCustomerCommand(contact, "email", nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("customer registration failed: %w", err)
//	}
type RegisterCustomerCommandHandler struct {
	uowFactory      CustomerUoWFactory
	eventDispatcher ports.EventDispatcher
}

// NewRegisterCustomerCommandHandler creates a handler for customer
// registration operations.
func NewRegisterCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	eventDispatcher ports.EventDispatcher,
) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory:      uowFactory,
		eventDispatcher: eventDispatcher,
	}
}

// Handle processes the customer registration command.
// Delegates uniqueness checks and aggregate creation to the customer domain
// service, commits, then dispatches the registration event.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerService := services.NewCustomerService(uow.CustomerRepository(), uow.VehicleRepository())
	registered, err := customerService.RegisterNewCustomer(
		ctx, cmd.ContactInformation(), cmd.PreferredContactMethod(), cmd.FirstVehicle())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.eventDispatcher.Dispatch(ctx, registered.DomainEvents()); err != nil {
		return err
	}
	registered.ClearDomainEvents()

	return nil
}

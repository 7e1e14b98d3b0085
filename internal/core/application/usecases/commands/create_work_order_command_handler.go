package commands

import (
	"context"

	"workshop/internal/core/domain/model/workorder"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"
)

// CreateWorkOrderCommandHandler handles the business logic for opening work
// orders. Verifies that the customer and the vehicle exist and belong
// together before creating the Draft work order.
//
// Example:
//
//	handler := NewCreateWorkOrderCommandHandler(uowFactory, dispatcher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("work order creation failed: %w", err)
//	}
//	// Work order is now in Draft and ready for diagnosis
type CreateWorkOrderCommandHandler struct {
	uowFactory      UoWFactory
	eventDispatcher ports.EventDispatcher
}

// NewCreateWorkOrderCommandHandler creates a handler for work order creation
// operations.
func NewCreateWorkOrderCommandHandler(
	uowFactory UoWFactory,
	eventDispatcher ports.EventDispatcher,
) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory:      uowFactory,
		eventDispatcher: eventDispatcher,
	}
}

// Handle processes the work order creation command.
// Fails with an ObjectNotFoundError when the customer or vehicle is missing
// and with a ValueIsInvalidError when the vehicle belongs to someone else.
func (h *CreateWorkOrderCommandHandler) Handle(ctx context.Context, cmd CreateWorkOrderCommand) error {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	serviced, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	if !serviced.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewValueIsInvalidError("vehicle does not belong to the customer")
	}

	workOrder, err := workorder.NewWorkOrder(
		cmd.CustomerID(),
		cmd.VehicleID(),
		cmd.ServiceDescription(),
		cmd.ServiceType(),
		cmd.Priority(),
		cmd.RequestedDate(),
		cmd.CreatedBy(),
		cmd.CustomerNotes(),
	)
	if err != nil {
		return err
	}

	if err = uow.WorkOrderRepository().Add(ctx, workOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.eventDispatcher.Dispatch(ctx, workOrder.DomainEvents()); err != nil {
		return err
	}
	workOrder.ClearDomainEvents()

	return nil
}

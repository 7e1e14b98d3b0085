package commands

import (
	"context"

	"workshop/internal/core/domain/services"
)

// TransferVehicleCommandHandler handles vehicle ownership transfers.
// The previous owner, the vehicle, and the new owner are all updated within
// one transaction so the associations never diverge.
type TransferVehicleCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewTransferVehicleCommandHandler creates a handler for vehicle transfer
// operations.
func NewTransferVehicleCommandHandler(uowFactory CustomerUoWFactory) TransferVehicleCommandHandler {
	return TransferVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle transfer command.
// Delegates the cross-aggregate orchestration to the customer domain service
// and commits all three updates together.
func (h *TransferVehicleCommandHandler) Handle(ctx context.Context, cmd TransferVehicleCommand) error {
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
	if err := customerService.TransferVehicle(ctx, cmd.VehicleID(), cmd.NewCustomerID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
